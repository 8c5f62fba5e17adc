// Package seed is the single authority for turning a user-supplied seed into
// every deterministic value downstream. The same master seed always yields
// the same derived seed for a given (position, domain, scale) tuple, across
// runs and across goroutines.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
)

// WorldSeed owns the master seed and the per-domain sub-seeds. Immutable
// after construction, so it is safe to share across goroutines without
// locking.
type WorldSeed struct {
	master     uint64
	seedString string
	domains    [domainCount]uint64
}

// New draws a master seed from the OS random source and mixes it. The only
// non-deterministic entry point.
func New() *WorldSeed {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("seed: os random source unavailable: " + err.Error())
	}
	return FromUint64(binary.LittleEndian.Uint64(b[:]))
}

// FromUint64 builds a WorldSeed from a numeric seed.
func FromUint64(s uint64) *WorldSeed {
	w := &WorldSeed{master: mathx.Avalanche(s)}
	w.fillDomains()
	return w
}

// FromString builds a WorldSeed from an arbitrary string. The string is kept
// verbatim for display and hashed for computation.
func FromString(s string) *WorldSeed {
	w := &WorldSeed{
		master:     mathx.Avalanche(mathx.HashString(s)),
		seedString: s,
	}
	w.fillDomains()
	return w
}

// Domain seeds are cheap, so they are computed eagerly here rather than
// lazily guarded by a lock.
func (w *WorldSeed) fillDomains() {
	for d := Domain(0); d < domainCount; d++ {
		w.domains[d] = mathx.Avalanche(w.master ^ domainPrimes[d])
	}
}

func (w *WorldSeed) MasterSeed() uint64 {
	return w.master
}

// SeedString returns the original string seed, or the decimal master seed
// when the world was not constructed from a string.
func (w *WorldSeed) SeedString() string {
	if w.seedString != "" {
		return w.seedString
	}
	return strconv.FormatUint(w.master, 10)
}

// DomainSeed returns the sub-seed for one generation concern. Invalid
// domains fall back to the master seed.
func (w *WorldSeed) DomainSeed(d Domain) uint64 {
	if !d.Valid() {
		return w.master
	}
	return w.domains[d]
}

// Derive mixes a base seed with a position. Identical inputs always yield
// identical outputs; the coordinate hashes happen after the domain XOR so
// distinct domains stay uncorrelated at the same position.
func Derive(base uint64, x, y, z int64) uint64 {
	v := base
	v ^= mathx.Avalanche(uint64(x) * mathx.PrimeX)
	v ^= mathx.Avalanche(uint64(y) * mathx.PrimeY)
	v ^= mathx.Avalanche(uint64(z) * mathx.PrimeZ)
	return mathx.Avalanche(v)
}

// BlockSeed derives the per-block seed from the master seed.
func (w *WorldSeed) BlockSeed(x, y, z int64) uint64 {
	return Derive(w.master, x, y, z)
}

// FeatureSeed derives the per-block seed for one domain.
func (w *WorldSeed) FeatureSeed(x, y, z int64, d Domain) uint64 {
	return Derive(w.DomainSeed(d), x, y, z)
}

// ChunkSeed derives a seed from already-quantized chunk coordinates.
func (w *WorldSeed) ChunkSeed(cx, cy, cz int64) uint64 {
	return Derive(w.master, cx, cy, cz)
}

// ChunkFeatureSeed derives a per-domain seed from chunk coordinates.
func (w *WorldSeed) ChunkFeatureSeed(cx, cy, cz int64, d Domain) uint64 {
	return Derive(w.DomainSeed(d), cx, cy, cz)
}

// RegionSeed derives a seed from already-quantized region coordinates.
func (w *WorldSeed) RegionSeed(rx, ry, rz int64) uint64 {
	return Derive(w.master, rx, ry, rz)
}

// RegionFeatureSeed derives a per-domain seed from region coordinates.
func (w *WorldSeed) RegionFeatureSeed(rx, ry, rz int64, d Domain) uint64 {
	return Derive(w.DomainSeed(d), rx, ry, rz)
}

// ScaleSeed quantizes block coordinates to the given tier, then derives the
// per-domain seed at that tier.
func (w *WorldSeed) ScaleSeed(x, y, z int64, s Scale, d Domain) uint64 {
	return Derive(w.DomainSeed(d), s.Quantize(x), s.Quantize(y), s.Quantize(z))
}

// ToFloat maps a seed to [0,1) using its upper 32 bits.
func ToFloat(s uint64) float64 {
	return float64(s>>32) / (1 << 32)
}

// ToRange maps a seed to [min,max]. Returns min without consulting the seed
// when the span is empty or inverted (documented fallback, deterministic).
func ToRange(s uint64, min, max int32) int32 {
	if min >= max {
		return min
	}
	span := uint64(max) - uint64(min) + 1
	return min + int32((s>>32)%span)
}
