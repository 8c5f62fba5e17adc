package fractal

import "github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/noise"

// The named composites below are thin wrappers over the fractal primitives
// with tuned defaults, one per geological phenomenon. All outputs [0,1].

// MountainRidge emphasizes sharp connected ridgelines.
func MountainRidge(x, z float64, seed uint64) float64 {
	r := Ridged(x, z, seed, 5, 0.5, 2.0, 0.004)
	// Squaring sharpens the crests without moving the zero set.
	return r * r
}

// RiverPattern is the legacy single-pass river approximation: narrow bands
// where low-frequency ridged noise is near its maximum. The hydrology layer
// supersedes it but existing callers still sample it for quick masks.
func RiverPattern(x, z float64, seed uint64) float64 {
	r := Ridged(x, z, seed, 3, 0.5, 2.1, 0.002)
	if r < 0.94 {
		return 0
	}
	return (r - 0.94) / 0.06
}

// CaveSystem is a 3D density mask; values near 1 are open cave.
func CaveSystem(x, y, z float64, seed uint64) float64 {
	v := Ridged3D(x, y, z, seed, 4, 0.55, 2.0, 0.015)
	if v < 0.75 {
		return 0
	}
	return (v - 0.75) / 0.25
}

// OreVein is a 3D vein mask thresholded from turbulence, thin and sparse.
func OreVein(x, y, z float64, seed uint64) float64 {
	yShift := y * 0.9
	v := Turbulence(x+yShift, z-yShift, seed, 3, 0.6, 2.3, 0.03)
	if v < 0.6 {
		return 0
	}
	return clamp01((v - 0.6) / 0.4)
}

// Coastline perturbs a continental edge with medium-octave fBm so shorelines
// meander instead of following noise contours exactly.
func Coastline(x, z float64, seed uint64) float64 {
	base := FBM(x, z, seed, 4, 0.5, 2.0, 0.0008)
	detail := FBM(x, z, seed+7777, 3, 0.5, 2.2, 0.008)
	return clamp01((base+0.25*detail+1)/2)
}

// ErosionPattern returns how strongly a point is eroded: valleys and
// channel floors score high.
func ErosionPattern(x, z float64, seed uint64) float64 {
	r := 1 - MountainRidge(x, z, seed)
	wet := Turbulence(x, z, seed+4242, 3, 0.5, 2.0, 0.01)
	return clamp01(r * (0.5 + 0.5*wet))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GenerateVoronoiRegions exposes cell-distance noise with the composite
// layer's clamping conventions, for biome-edge masks.
func GenerateVoronoiRegions(x, z float64, seed uint64) float64 {
	return clamp01(noise.Voronoi(x, z, seed, 0.003))
}
