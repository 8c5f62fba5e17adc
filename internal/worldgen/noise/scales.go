package noise

// TerrainScale selects a fixed sampling frequency tier. Each tier is roughly
// 10x the previous, so continental shapes, regional hills, local bumps and
// micro detail stay statistically separate.
type TerrainScale uint8

const (
	ScaleContinental TerrainScale = iota
	ScaleRegional
	ScaleLocal
	ScaleMicro

	terrainScaleCount
)

var scaleFrequencies = [terrainScaleCount]float64{
	ScaleContinental: 0.0005,
	ScaleRegional:    0.005,
	ScaleLocal:       0.05,
	ScaleMicro:       0.5,
}

// Per-tier seed offsets keep the tiers of combined noise independent.
var scaleSeedOffsets = [terrainScaleCount]uint64{0, 101, 202, 303}

var scaleWeights = [terrainScaleCount]float64{0.4, 0.3, 0.2, 0.1}

// Frequency returns the sampling frequency for a tier.
func (s TerrainScale) Frequency() float64 {
	if s >= terrainScaleCount {
		return scaleFrequencies[ScaleLocal]
	}
	return scaleFrequencies[s]
}

// AtScale samples Perlin noise at the tier's fixed frequency. Output [-1,1].
func AtScale(x, z float64, s TerrainScale, seed uint64) float64 {
	return Perlin(x, z, seed+scaleSeedOffsetFor(s), s.Frequency())
}

func scaleSeedOffsetFor(s TerrainScale) uint64 {
	if s >= terrainScaleCount {
		return 0
	}
	return scaleSeedOffsets[s]
}

// Combined is the weighted sum of all four tiers (0.4/0.3/0.2/0.1,
// normalized), clamped to [-1,1].
func Combined(x, z float64, seed uint64) float64 {
	var sum, totalWeight float64
	for s := TerrainScale(0); s < terrainScaleCount; s++ {
		sum += AtScale(x, z, s, seed) * scaleWeights[s]
		totalWeight += scaleWeights[s]
	}
	return clamp(sum/totalWeight, -1, 1)
}

// Heightmap maps Combined into [0,1].
func Heightmap(x, z float64, seed uint64) float64 {
	return (Combined(x, z, seed) + 1) / 2
}

// Ridge produces sharp ridgelines at the zero crossings of regional-scale
// noise. Output [0,1].
func Ridge(x, z float64, seed uint64) float64 {
	v := AtScale(x, z, ScaleRegional, seed)
	if v < 0 {
		v = -v
	}
	return 1 - v
}
