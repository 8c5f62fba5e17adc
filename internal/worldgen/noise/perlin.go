// Package noise provides the coherent noise primitives every higher-level
// synthesis layer samples. All functions are pure: identical inputs always
// produce identical outputs, which is the property the whole save-file-free,
// infinite-world design depends on.
package noise

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
)

const invSqrt2 = 0.7071067811865476

// Eight unit gradients. Selected by the low bits of the corner hash so a
// corner's gradient depends only on (cellX, cellZ, seed), never on the
// fractional part of the query point.
var gradients = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{invSqrt2, invSqrt2}, {-invSqrt2, invSqrt2},
	{invSqrt2, -invSqrt2}, {-invSqrt2, -invSqrt2},
}

// fade is the 3t^2-2t^3 ease curve applied on both interpolation axes.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func gradDot(seed uint64, cx, cz int64, dx, dz float64) float64 {
	g := gradients[mathx.Hash2(seed, cx, cz)&7]
	return g[0]*dx + g[1]*dz
}

// Perlin samples classic 2D gradient noise at (x,z), scaled by frequency.
// Output is in [-1,1].
func Perlin(x, z float64, seed uint64, frequency float64) float64 {
	sx := x * frequency
	sz := z * frequency

	fx := math.Floor(sx)
	fz := math.Floor(sz)
	cx := int64(fx)
	cz := int64(fz)
	dx := sx - fx
	dz := sz - fz

	n00 := gradDot(seed, cx, cz, dx, dz)
	n10 := gradDot(seed, cx+1, cz, dx-1, dz)
	n01 := gradDot(seed, cx, cz+1, dx, dz-1)
	n11 := gradDot(seed, cx+1, cz+1, dx-1, dz-1)

	u := fade(dx)
	v := fade(dz)
	value := lerp(lerp(n00, n10, u), lerp(n01, n11, u), v)

	// Unit gradients keep |value| under sqrt(2)/2; rescale to use the full
	// documented range, then clamp.
	return clamp(value*math.Sqrt2, -1, 1)
}
