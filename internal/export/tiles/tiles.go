// Package tiles writes and reads region sample grids as deterministic
// files: a JSON header line followed by a zstd frame of little-endian
// float64 samples. The same grid always produces byte-identical sample
// payloads, so digests are stable across runs.
package tiles

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Header describes one tile file.
type Header struct {
	Version int     `json:"version"`
	Kind    string  `json:"kind"` // "height", "temperature", "humidity", "precipitation"
	Seed    uint64  `json:"seed"`
	X0      float64 `json:"x0"`
	Z0      float64 `json:"z0"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Step    float64 `json:"step"`
}

const version = 1

// Digest hashes the raw little-endian sample payload.
func Digest(samples []float64) [32]byte {
	h := sha256.New()
	var tmp [8]byte
	for _, v := range samples {
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		h.Write(tmp[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Write stores a tile at path, creating parent directories.
func Write(path string, h Header, samples []float64) error {
	if len(samples) != h.Width*h.Height {
		return fmt.Errorf("tile %s: %d samples for %dx%d grid", path, len(samples), h.Width, h.Height)
	}
	h.Version = version

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	hdr, err := json.Marshal(h)
	if err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	var tmp [8]byte
	for _, v := range samples {
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		if _, err := enc.Write(tmp[:]); err != nil {
			_ = enc.Close()
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// Read loads a tile written by Write.
func Read(path string) (Header, []float64, error) {
	var h Header
	f, err := os.Open(path)
	if err != nil {
		return h, nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadBytes('\n')
	if err != nil {
		return h, nil, fmt.Errorf("tile %s: header: %w", path, err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, nil, fmt.Errorf("tile %s: header: %w", path, err)
	}
	if h.Version != version {
		return h, nil, fmt.Errorf("tile %s: unsupported version %d", path, h.Version)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return h, nil, fmt.Errorf("tile %s: bad dimensions %dx%d", path, h.Width, h.Height)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return h, nil, err
	}
	defer dec.Close()

	n := h.Width * h.Height
	raw := make([]byte, n*8)
	if _, err := io.ReadFull(dec, raw); err != nil {
		return h, nil, fmt.Errorf("tile %s: payload: %w", path, err)
	}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return h, samples, nil
}
