// Package climate derives physically-plausible climate fields from position,
// elevation and seed. Every calculation is a pure function; nothing here
// caches, so calls are safe from any number of goroutines in any order.
package climate

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/noise"
)

// TemperatureLapseRate is the fixed cooling per meter of elevation
// (-6.5 degC per 1000 m). Applied by the caller, not by Calculate, so
// sea-level fields can be derived once and re-lapsed per column.
const TemperatureLapseRate = 6.5 / 1000.0

const (
	// Virtual latitude: |z| in world units mapped onto a 0..1 pole proxy.
	latitudeExtent = 20000.0

	equatorTemp = 30.0
	poleTemp    = -5.0

	continentalTempSwing = 15.0
	regionalTempSwing    = 5.0

	// Humidity decay distance from the virtual ocean.
	oceanDecayDistance = 3000.0

	orographicMinElevation = 200.0
	orographicCap          = 800.0

	precipitationMax = 4000.0
)

// Sample is one climate reading. Transient; recompute on demand and cache at
// the call site if needed.
type Sample struct {
	Temperature   float64 // degC at sea level (lapse applied by caller)
	Humidity      float64 // [0,1]
	Precipitation float64 // mm/yr, [0,4000]
	WindExposure  float64 // [0,1]
	Seasonality   float64 // [0,1]
}

// Calculate composes all sub-fields into one sample for (x,z) at the given
// elevation.
func Calculate(x, z, elevation float64, seed uint64) Sample {
	temp := BaseTemperature(x, z, seed)
	hum := Humidity(x, z, elevation, seed)
	return Sample{
		Temperature:   temp,
		Humidity:      hum,
		Precipitation: Precipitation(x, z, elevation, temp, hum, seed),
		WindExposure:  WindExposure(x, z, elevation, seed),
		Seasonality:   Seasonality(x, z, seed),
	}
}

// ApplyLapse cools a sea-level temperature for elevation above zero.
func ApplyLapse(temperature, elevation float64) float64 {
	if elevation <= 0 {
		return temperature
	}
	return temperature - elevation*TemperatureLapseRate
}

// BaseTemperature is the latitude-band gradient (30 degC at the equator
// proxy down to -5 at the pole proxy) plus continental (+-15) and regional
// (+-5) noise. Elevation lapse is intentionally not applied here.
func BaseTemperature(x, z float64, seed uint64) float64 {
	lat := math.Min(math.Abs(z)/latitudeExtent, 1)
	base := equatorTemp + (poleTemp-equatorTemp)*lat
	base += noise.AtScale(x, z, noise.ScaleContinental, seed+11) * continentalTempSwing
	base += noise.AtScale(x, z, noise.ScaleRegional, seed+23) * regionalTempSwing
	return base
}

// oceanDistance is a virtual distance-to-ocean proxy: low continental noise
// means open water nearby, high means deep inland.
func oceanDistance(x, z float64, seed uint64) float64 {
	continental := noise.AtScale(x, z, noise.ScaleContinental, seed+37)
	return (continental + 1) / 2 * 2 * oceanDecayDistance
}

// rainShadow estimates the upwind barrier effect. Wind blows from -x; when
// terrain noise upwind sits higher than here, moisture is stripped.
func rainShadow(x, z, elevation float64, seed uint64) float64 {
	const upwindStep = 400.0
	upwind := noise.Heightmap(x-upwindStep, z, seed+41) * 2048
	barrier := upwind - elevation
	if barrier <= 0 {
		return 1
	}
	return clamp01(1 - barrier/2500.0)
}

// Humidity decays exponentially with ocean distance, reduced by rain shadow
// and altitude, and perturbed +-30% by local noise. Output [0,1].
func Humidity(x, z, elevation float64, seed uint64) float64 {
	h := math.Exp(-oceanDistance(x, z, seed) / oceanDecayDistance)
	h *= rainShadow(x, z, elevation, seed)
	if elevation > 1000 {
		h *= clamp01(1 - (elevation-1000)/3000)
	}
	h *= 1 + 0.3*noise.AtScale(x, z, noise.ScaleLocal, seed+53)
	return clamp01(h)
}

// Precipitation scales humidity by a warm-air capacity factor, adds an
// orographic bonus on rising terrain above freezing, and modulates with
// seasonal and regional noise. Output [0,4000] mm/yr.
func Precipitation(x, z, elevation, temperature, humidity float64, seed uint64) float64 {
	capacity := clamp01((temperature + 10) / 40)
	p := humidity * capacity * 2500

	if elevation > orographicMinElevation && temperature >= 0 {
		bonus := (elevation - orographicMinElevation) * 0.8
		if bonus > orographicCap {
			bonus = orographicCap
		}
		p += bonus * humidity
	}

	seasonal := 1 + 0.2*Seasonality(x, z, seed)*noise.AtScale(x, z, noise.ScaleRegional, seed+67)
	regional := 1 + 0.15*noise.AtScale(x, z, noise.ScaleRegional, seed+79)
	p *= seasonal * regional

	if p < 0 {
		return 0
	}
	if p > precipitationMax {
		return precipitationMax
	}
	return p
}

// WindExposure rises with elevation and local slope. Output [0,1].
func WindExposure(x, z, elevation float64, seed uint64) float64 {
	const step = 50.0
	h := noise.Heightmap(x, z, seed+83)
	gx := noise.Heightmap(x+step, z, seed+83) - h
	gz := noise.Heightmap(x, z+step, seed+83) - h
	slope := math.Sqrt(gx*gx + gz*gz)
	exposure := clamp01(elevation/2048)*0.6 + clamp01(slope*8)*0.4
	return clamp01(exposure)
}

// Seasonality grows toward the poles and deep inland (continentality).
// Output [0,1].
func Seasonality(x, z float64, seed uint64) float64 {
	lat := math.Min(math.Abs(z)/latitudeExtent, 1)
	continentality := clamp01(oceanDistance(x, z, seed) / (2 * oceanDecayDistance))
	return clamp01(0.2 + 0.5*lat + 0.3*continentality)
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
