package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/export/tiledb"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/seed"
)

func dbCmd(args []string, log *logrus.Logger) {
	fs := flag.NewFlagSet("db", flag.ExitOnError)
	dbPath := fs.String("db", "tiles.db", "sqlite tile index path")
	seedStr := fs.String("seed", "", "world seed to list tiles for (required)")
	kind := fs.String("kind", "", "filter by tile kind (optional)")
	limit := fs.Int("limit", 50, "max rows")
	_ = fs.Parse(args)

	if *seedStr == "" {
		fmt.Fprintln(os.Stderr, "missing -seed")
		os.Exit(2)
	}
	master := seed.FromString(*seedStr).MasterSeed()

	db, err := tiledb.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	recs, err := db.List(master, *kind, *limit)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tX0\tZ0\tSIZE\tSTEP\tDIGEST\tPATH\tCREATED")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%dx%d\t%g\t%.12s\t%s\t%s\n",
			r.Kind, r.X0, r.Z0, r.Width, r.Height, r.Step,
			r.Digest, r.Path, r.Created.Format("2006-01-02 15:04:05"))
	}
	_ = tw.Flush()
}
