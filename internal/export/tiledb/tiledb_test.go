package tiledb

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenUpsertList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index", "tiles.sqlite")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	base := Record{
		Seed: 18446744073709551615, // max uint64 must survive the round trip
		Kind: "height",
		X0:   -1024, Z0: 2048,
		Width: 256, Height: 256, Step: 4,
		Digest:  "abc123",
		Path:    "tiles/height/r_-1_2.tile",
		Created: time.Unix(1700000000, 0),
	}
	if err := db.Upsert(base); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	other := base
	other.Kind = "humidity"
	other.Created = time.Unix(1700000100, 0)
	if err := db.Upsert(other); err != nil {
		t.Fatalf("upsert second: %v", err)
	}

	all, err := db.List(base.Seed, "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 tiles, got %d", len(all))
	}
	if all[0].Kind != "humidity" {
		t.Fatalf("newest-first ordering broken: %+v", all[0])
	}
	if all[0].Seed != base.Seed {
		t.Fatalf("seed round trip broken: %d", all[0].Seed)
	}

	heights, err := db.List(base.Seed, "height", 0)
	if err != nil {
		t.Fatalf("list kind: %v", err)
	}
	if len(heights) != 1 || heights[0].Path != base.Path {
		t.Fatalf("kind filter broken: %+v", heights)
	}
}

func TestUpsert_ReplacesSameGrid(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "tiles.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	r := Record{Seed: 7, Kind: "height", Width: 8, Height: 8, Step: 1, Digest: "one", Path: "a", Created: time.Unix(1, 0)}
	if err := db.Upsert(r); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	r.Digest = "two"
	r.Path = "b"
	r.Created = time.Unix(2, 0)
	if err := db.Upsert(r); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	got, err := db.List(7, "height", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Digest != "two" || got[0].Path != "b" {
		t.Fatalf("upsert did not replace: %+v", got)
	}
}
