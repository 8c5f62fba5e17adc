package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/transport/preview"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/hydrology"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/seed"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/tuning"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		seedStr    = flag.String("seed", "1337", "world seed (number or string)")
		configPath = flag.String("config", "", "tuning preset file (.yaml or .json, optional)")
		schemaPath = flag.String("schema", "schemas/preset.schema.json", "json schema for .json presets")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[previewd] ", log.LstdFlags|log.Lmicroseconds)

	preset := tuning.Default()
	if *configPath != "" {
		p, err := tuning.LoadAny(*configPath, *schemaPath)
		if err != nil {
			logger.Fatalf("load preset: %v", err)
		}
		preset = p
	}

	ws := seed.FromString(*seedStr)
	master := ws.MasterSeed()
	rivers := hydrology.NewRivers(master, preset.RegionSize, hydrology.NewCache(preset.RiverCacheMax))
	srv := preview.NewServer(master, preset.Workers, rivers, logger)

	ctx, cancel := signalContext()
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/seed", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain")
		fmt.Fprintf(rw, "seed=%q master=%016x preset=%s\n", ws.SeedString(), master, preset.Name)
	})
	mux.HandleFunc("/v1/tiles", srv.Handler())

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = httpSrv.Shutdown(ctx2)
	}()

	logger.Printf("preset=%s region_size=%d listening on %s", preset.Name, preset.RegionSize, *addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
