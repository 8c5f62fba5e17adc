// Package mathx holds the deterministic hashing and integer helpers the
// worldgen core is built on. Everything here is a pure function; keep it
// portable and stable across versions (no use of rand, no float hashing).
package mathx

// Avalanche mixes a 64-bit value so a one-bit input change flips roughly
// half of the output bits (splitmix64 finalizer).
func Avalanche(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Per-axis odd multipliers decorrelate coordinate axes before mixing.
const (
	PrimeX = 0x9e3779b97f4a7c15
	PrimeY = 0xc2b2ae3d27d4eb4f
	PrimeZ = 0xbf58476d1ce4e5b9
)

// Hash2 returns a stable hash for 2D integer coordinates + seed.
func Hash2(seed uint64, x, z int64) uint64 {
	v := seed ^ (uint64(x) * PrimeX) ^ (uint64(z) * PrimeZ)
	return Avalanche(v)
}

// Hash3 returns a stable hash for 3D integer coordinates + seed.
func Hash3(seed uint64, x, y, z int64) uint64 {
	v := seed ^ (uint64(x) * PrimeX) ^ (uint64(y) * PrimeY) ^ (uint64(z) * PrimeZ)
	return Avalanche(v)
}

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// HashString hashes an arbitrary string with FNV-1a followed by a final
// avalanche pass, so short or similar strings still land far apart.
func HashString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return Avalanche(h)
}

// FloorDiv divides truncating toward negative infinity. b must be > 0.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of a/b. b must be > 0.
func Mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func AbsInt(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
