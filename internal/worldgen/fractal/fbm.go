// Package fractal composes the noise primitives into fractal Brownian
// motion, ridged and turbulence variants, and the named geological masks the
// terrain pipeline samples. Every function here is pure; callers must not
// assume Gaussian-like output, the ridged and turbulence variants are
// heavy-tailed near 0 and 1.
package fractal

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/noise"
)

// Per-octave seed step. Each octave samples an independent seed so octaves
// do not correlate.
const octaveSeedStep = 100

// FBM sums octaves of Perlin noise, frequency scaled by lacunarity^i and
// amplitude by persistence^i, normalized by total amplitude. Output stays
// roughly in [-1,1].
func FBM(x, z float64, seed uint64, octaves int, persistence, lacunarity, baseFrequency float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var total, totalAmplitude float64
	amplitude := 1.0
	frequency := baseFrequency
	for i := 0; i < octaves; i++ {
		total += noise.Perlin(x, z, seed+uint64(i)*octaveSeedStep, frequency) * amplitude
		totalAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / totalAmplitude
}

// Ridged is 1-|fbm|, pushing values toward 1 along noise zero crossings.
// Output [0,1].
func Ridged(x, z float64, seed uint64, octaves int, persistence, lacunarity, baseFrequency float64) float64 {
	v := FBM(x, z, seed, octaves, persistence, lacunarity, baseFrequency)
	return 1 - math.Abs(v)
}

// Ridged3D approximates a third axis by blending two 2D samples taken at
// Y-dependent coordinate offsets. This is a deliberate simplification kept
// for compatibility with existing worlds, not true 3D gradient noise; cave
// and ore layouts would change if it were replaced.
func Ridged3D(x, y, z float64, seed uint64, octaves int, persistence, lacunarity, baseFrequency float64) float64 {
	yOffset := y * 0.7
	a := Ridged(x+yOffset, z, seed, octaves, persistence, lacunarity, baseFrequency)
	b := Ridged(x, z+yOffset, seed+octaveSeedStep*37, octaves, persistence, lacunarity, baseFrequency)
	t := 0.5 + 0.5*math.Sin(y*0.1)
	return a*(1-t) + b*t
}

// Turbulence sums |perlin| per octave, producing a billowy field in [0,1].
func Turbulence(x, z float64, seed uint64, octaves int, persistence, lacunarity, baseFrequency float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var total, totalAmplitude float64
	amplitude := 1.0
	frequency := baseFrequency
	for i := 0; i < octaves; i++ {
		total += math.Abs(noise.Perlin(x, z, seed+uint64(i)*octaveSeedStep, frequency)) * amplitude
		totalAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / totalAmplitude
}
