// Package tiledb indexes exported tiles in a sqlite database so external
// viewers can find, list and verify them without scanning the filesystem.
package tiledb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one indexed tile.
type Record struct {
	Seed    uint64
	Kind    string
	X0, Z0  float64
	Width   int
	Height  int
	Step    float64
	Digest  string // hex sha-256 of the sample payload
	Path    string
	Created time.Time
}

// DB wraps the sqlite index.
type DB struct {
	db *sql.DB
}

// Open creates or opens the index at path, creating parent directories and
// the schema as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; the export flow is batch, not concurrent.
	db.SetMaxOpenConns(1)

	const schema = `
CREATE TABLE IF NOT EXISTS tiles (
	seed    TEXT NOT NULL,
	kind    TEXT NOT NULL,
	x0      REAL NOT NULL,
	z0      REAL NOT NULL,
	width   INTEGER NOT NULL,
	height  INTEGER NOT NULL,
	step    REAL NOT NULL,
	digest  TEXT NOT NULL,
	path    TEXT NOT NULL,
	created INTEGER NOT NULL,
	PRIMARY KEY (seed, kind, x0, z0, width, height, step)
);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tiledb schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Upsert records a tile, replacing any previous row for the same grid.
func (d *DB) Upsert(r Record) error {
	_, err := d.db.Exec(`
INSERT INTO tiles (seed, kind, x0, z0, width, height, step, digest, path, created)
VALUES (?,?,?,?,?,?,?,?,?,?)
ON CONFLICT (seed, kind, x0, z0, width, height, step)
DO UPDATE SET digest=excluded.digest, path=excluded.path, created=excluded.created`,
		fmt.Sprintf("%d", r.Seed), r.Kind, r.X0, r.Z0, r.Width, r.Height, r.Step,
		r.Digest, r.Path, r.Created.Unix())
	return err
}

// List returns tiles for a seed, newest first, optionally filtered by kind.
func (d *DB) List(seed uint64, kind string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT seed, kind, x0, z0, width, height, step, digest, path, created
FROM tiles WHERE seed = ?`
	args := []any{fmt.Sprintf("%d", seed)}
	if kind != "" {
		q += ` AND kind = ?`
		args = append(args, kind)
	}
	q += ` ORDER BY created DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var seedStr string
		var created int64
		if err := rows.Scan(&seedStr, &r.Kind, &r.X0, &r.Z0, &r.Width, &r.Height, &r.Step, &r.Digest, &r.Path, &created); err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(seedStr, "%d", &r.Seed); err != nil {
			return nil, fmt.Errorf("tiledb: bad seed %q: %w", seedStr, err)
		}
		r.Created = time.Unix(created, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}
