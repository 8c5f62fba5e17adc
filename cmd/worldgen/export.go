package main

import (
	"encoding/hex"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/export/tiledb"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/export/tiles"
)

func exportCmd(args []string, log *logrus.Logger) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	grid := addGridFlags(fs)
	outPath := fs.String("out", "tile.wgt", "output tile file path")
	dbPath := fs.String("db", "", "sqlite tile index to record the export in (optional)")
	_ = fs.Parse(args)

	master, preset, spec, err := grid.resolve()
	if err != nil {
		log.Fatal(err)
	}
	samples, err := computeGrid(*grid.kind, spec, master, preset)
	if err != nil {
		log.Fatal(err)
	}

	header := tiles.Header{
		Kind: *grid.kind,
		Seed: master,
		X0:   spec.X0, Z0: spec.Z0,
		Width: spec.Width, Height: spec.Height,
		Step: spec.Step,
	}
	if err := tiles.Write(*outPath, header, samples); err != nil {
		log.Fatal(err)
	}
	digest := tiles.Digest(samples)
	digestHex := hex.EncodeToString(digest[:])

	if *dbPath != "" {
		db, err := tiledb.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		rec := tiledb.Record{
			Seed: master, Kind: *grid.kind,
			X0: spec.X0, Z0: spec.Z0,
			Width: spec.Width, Height: spec.Height, Step: spec.Step,
			Digest: digestHex, Path: *outPath,
			Created: time.Now().UTC(),
		}
		if err := db.Upsert(rec); err != nil {
			log.Fatal(err)
		}
	}

	log.WithFields(logrus.Fields{
		"kind":   *grid.kind,
		"out":    *outPath,
		"digest": digestHex[:12],
	}).Info("exported tile")
}
