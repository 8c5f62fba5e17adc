package terrain

import (
	"runtime"
	"sync"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/climate"
)

// TileSpec describes a rectangular sample grid: world-space origin, grid
// dimensions and the world-space step between samples.
type TileSpec struct {
	X0, Z0        float64
	Width, Height int
	Step          float64
}

func (s TileSpec) at(i, j int) (x, z float64) {
	return s.X0 + float64(i)*s.Step, s.Z0 + float64(j)*s.Step
}

// HeightTile fills a row-major elevation grid. Rows are sharded across
// workers; every sample is independent, so the result is identical to a
// sequential fill.
func HeightTile(spec TileSpec, seed uint64, workers int) []float64 {
	out := make([]float64, spec.Width*spec.Height)
	shardRows(spec.Height, workers, func(j int) {
		for i := 0; i < spec.Width; i++ {
			x, z := spec.at(i, j)
			out[i+j*spec.Width] = Elevation(x, z, seed)
		}
	})
	return out
}

// ClimateTile fills parallel row-major climate grids for the same spec.
// Temperatures have the elevation lapse already applied.
func ClimateTile(spec TileSpec, seed uint64, workers int) (temperature, humidity, precipitation []float64) {
	n := spec.Width * spec.Height
	temperature = make([]float64, n)
	humidity = make([]float64, n)
	precipitation = make([]float64, n)
	shardRows(spec.Height, workers, func(j int) {
		for i := 0; i < spec.Width; i++ {
			x, z := spec.at(i, j)
			elev := Elevation(x, z, seed)
			s := climate.Calculate(x, z, elev, seed)
			idx := i + j*spec.Width
			temperature[idx] = climate.ApplyLapse(s.Temperature, elev)
			humidity[idx] = s.Humidity
			precipitation[idx] = s.Precipitation
		}
	})
	return temperature, humidity, precipitation
}

// shardRows runs fn for each row index, split over workers. workers <= 0
// means GOMAXPROCS.
func shardRows(rows, workers int, fn func(j int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		for j := 0; j < rows; j++ {
			fn(j)
		}
		return
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := w; j < rows; j += workers {
				fn(j)
			}
		}(w)
	}
	wg.Wait()
}
