// Package terrain turns the noise stack into world elevation and exposes the
// batch sampling entry points bulk callers (visualization, voxel column
// generation) use.
package terrain

import (
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/fractal"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/noise"
)

const (
	// VoxelScale converts voxel-unit coordinates to noise-space coordinates.
	VoxelScale = 0.25

	// Elevation is hard-clamped to this symmetric range before returning.
	ElevationMax = 2048.0
	ElevationMin = -ElevationMax

	seaLevelBias = -0.12
)

// Elevation computes terrain height at a world-space point: continental base
// from combined multi-scale noise, mountain ridges added where the coastline
// mask is high inland, clamped to [ElevationMin, ElevationMax].
func Elevation(x, z float64, seed uint64) float64 {
	base := noise.Combined(x, z, seed) + seaLevelBias
	land := fractal.Coastline(x, z, seed+1009)

	h := base * 900

	// Ridges only grow inland, scaled by how far above the coast mask sits.
	if land > 0.5 {
		ridge := fractal.MountainRidge(x, z, seed+2003)
		h += ridge * (land - 0.5) * 2 * 1600
	}

	// Erosion shaves exposed slopes down toward their valleys.
	h -= fractal.ErosionPattern(x, z, seed+3001) * 120

	if h > ElevationMax {
		return ElevationMax
	}
	if h < ElevationMin {
		return ElevationMin
	}
	return h
}

// ElevationAtVoxel samples elevation for integer voxel coordinates,
// applying the fixed voxel-to-noise scale.
func ElevationAtVoxel(vx, vz int64, seed uint64) float64 {
	return Elevation(float64(vx)*VoxelScale, float64(vz)*VoxelScale, seed)
}
