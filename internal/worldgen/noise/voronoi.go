package noise

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
)

// Voronoi returns the distance from (x,z) to the nearest of the hash-placed
// feature points in the surrounding 3x3 cell neighborhood, clamped to [0,1].
// One point per cell, placed deterministically from (cell, seed).
func Voronoi(x, z float64, seed uint64, frequency float64) float64 {
	sx := x * frequency
	sz := z * frequency
	cx := int64(math.Floor(sx))
	cz := int64(math.Floor(sz))

	minDist := math.MaxFloat64
	for dz := int64(-1); dz <= 1; dz++ {
		for dx := int64(-1); dx <= 1; dx++ {
			gx := cx + dx
			gz := cz + dz
			h := mathx.Hash2(seed, gx, gz)
			px := float64(gx) + float64(h&0xffff)/65536.0
			pz := float64(gz) + float64((h>>16)&0xffff)/65536.0
			ddx := px - sx
			ddz := pz - sz
			if d := math.Sqrt(ddx*ddx + ddz*ddz); d < minDist {
				minDist = d
			}
		}
	}
	return clamp(minDist, 0, 1)
}
