// Package hydrology is the river layer: stochastic watershed sampling over
// the terrain noise stack, region-scoped river networks, lakes and valley
// carving. No global DEM is ever materialized; upstream drainage is
// approximated by ring sampling so the world stays infinite and stateless.
package hydrology

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/climate"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/noise"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/terrain"
)

const (
	// FlowThreshold is the accumulation below which no river exists.
	FlowThreshold = 0.35

	// Width/depth calibration.
	widthScale      = 40.0 // meters of width per unit of flow above threshold
	DepthWidthRatio = 0.15
	maxRiverDepth   = 10.0

	// Gradient flags along a traced path (elevation drop per meter).
	WaterfallMinGradient = 0.25
	RapidsMinGradient    = 0.12

	// Lake detection.
	lakeFlowThreshold  = 0.55
	flatnessThreshold  = 0.02
	pondChance         = 0.002
	lakeRadiusBase     = 20.0
	lakeRadiusFlowGain = 80.0

	// ValleyWidthFactor scales river width into the carved valley width.
	ValleyWidthFactor = 3.0

	ringSamples = 16
	ringRadius  = 120.0
)

// FlowAccumulation estimates how much water drains through (x,z), in [0,1].
// Sixteen ring samples contribute where their computed elevation is above
// the query point, weighted by elevation difference and the sample's
// precipitation; local precipitation and a regional watershed term are added
// on top.
func FlowAccumulation(x, z, elevation, precipitation float64, seed uint64) float64 {
	var flow float64
	for i := 0; i < ringSamples; i++ {
		angle := 2 * math.Pi * float64(i) / ringSamples
		sx := x + math.Cos(angle)*ringRadius
		sz := z + math.Sin(angle)*ringRadius
		se := terrain.Elevation(sx, sz, seed)
		if se <= elevation {
			continue
		}
		sc := climate.Calculate(sx, sz, se, seed)
		flow += (se - elevation) / 1000 * (sc.Precipitation / 4000) * (4.0 / ringSamples)
	}

	flow += precipitation / 4000 * 0.2

	watershed := (noise.AtScale(x, z, noise.ScaleRegional, seed+8101) + 1) / 2
	flow += watershed * 0.3

	return clamp01(flow)
}

// RiverWidth is exactly zero below FlowThreshold, then linear in the excess
// flow, narrowed at high elevation and perturbed +-20% by the seed.
func RiverWidth(flowAccumulation, elevation float64, seed uint64) float64 {
	if flowAccumulation < FlowThreshold {
		return 0
	}
	w := (flowAccumulation - FlowThreshold) * widthScale
	if elevation > 0 {
		w *= clamp01(1 - elevation/3000)
	}
	jitter := float64(mathx.Avalanche(seed)>>32) / (1 << 32)
	w *= 0.8 + 0.4*jitter
	return w
}

// RiverDepth follows width plus a flow bonus, capped at 10 m.
func RiverDepth(width, flowAccumulation float64) float64 {
	d := width*DepthWidthRatio + math.Min(flowAccumulation*2, 2)
	if d > maxRiverDepth {
		return maxRiverDepth
	}
	return d
}

// IsLakeLocation is true where flow accumulates on flat ground, or with low
// probability anywhere (isolated ponds).
func IsLakeLocation(x, z, elevation, flowAccumulation float64, seed uint64) bool {
	if flowAccumulation > lakeFlowThreshold && localGradient(x, z, seed) < flatnessThreshold {
		return true
	}
	h := mathx.Hash2(seed+9203, int64(math.Floor(x)), int64(math.Floor(z)))
	return float64(h>>32)/(1<<32) < pondChance
}

// IsRiverSource marks high, wet points as candidate springs.
func IsRiverSource(x, z float64, seed uint64) bool {
	elev := terrain.Elevation(x, z, seed)
	if elev < 500 {
		return false
	}
	sc := climate.Calculate(x, z, elev, seed)
	if sc.Precipitation < 700 {
		return false
	}
	h := mathx.Hash2(seed+6427, int64(math.Floor(x)), int64(math.Floor(z)))
	return float64(h>>32)/(1<<32) < 0.35
}

// localGradient is the finite-difference slope magnitude (per meter).
func localGradient(x, z float64, seed uint64) float64 {
	const d = 30.0
	gx := (terrain.Elevation(x+d, z, seed) - terrain.Elevation(x-d, z, seed)) / (2 * d)
	gz := (terrain.Elevation(x, z+d, seed) - terrain.Elevation(x, z-d, seed)) / (2 * d)
	return math.Sqrt(gx*gx + gz*gz)
}

func precipitationAt(x, z, elevation float64, seed uint64) float64 {
	return climate.Calculate(x, z, elevation, seed).Precipitation
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
