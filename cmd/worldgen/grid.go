package main

import (
	"flag"
	"fmt"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/hydrology"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/seed"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/terrain"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/tuning"
)

// gridFlags are the tile-selection flags shared by render and export.
type gridFlags struct {
	seedStr *string
	kind    *string
	config  *string
	schema  *string
	x0      *float64
	z0      *float64
	width   *int
	height  *int
	step    *float64
}

func addGridFlags(fs *flag.FlagSet) gridFlags {
	return gridFlags{
		seedStr: fs.String("seed", "", "world seed (number or string; required)"),
		kind:    fs.String("kind", "height", "tile kind: height, temperature, humidity, precipitation, rivers"),
		config:  fs.String("config", "", "tuning preset file (.yaml or .json, optional)"),
		schema:  fs.String("schema", "schemas/preset.schema.json", "json schema for .json presets"),
		x0:      fs.Float64("x0", 0, "tile origin x in world units"),
		z0:      fs.Float64("z0", 0, "tile origin z in world units"),
		width:   fs.Int("width", 0, "samples per row (0: preset default)"),
		height:  fs.Int("height", 0, "sample rows (0: preset default)"),
		step:    fs.Float64("step", 0, "world units per sample (0: preset default)"),
	}
}

func (g gridFlags) resolve() (uint64, tuning.Preset, terrain.TileSpec, error) {
	if *g.seedStr == "" {
		return 0, tuning.Preset{}, terrain.TileSpec{}, fmt.Errorf("missing -seed")
	}
	ws := seed.FromString(*g.seedStr)

	preset := tuning.Default()
	if *g.config != "" {
		p, err := tuning.LoadAny(*g.config, *g.schema)
		if err != nil {
			return 0, tuning.Preset{}, terrain.TileSpec{}, fmt.Errorf("load preset: %w", err)
		}
		preset = p
	}

	spec := terrain.TileSpec{
		X0: *g.x0, Z0: *g.z0,
		Width:  preset.Tile.Width,
		Height: preset.Tile.Height,
		Step:   preset.Tile.Step,
	}
	if *g.width > 0 {
		spec.Width = *g.width
	}
	if *g.height > 0 {
		spec.Height = *g.height
	}
	if *g.step > 0 {
		spec.Step = *g.step
	}
	return ws.MasterSeed(), preset, spec, nil
}

// computeGrid produces the samples for one tile kind.
func computeGrid(kind string, spec terrain.TileSpec, master uint64, preset tuning.Preset) ([]float64, error) {
	switch kind {
	case "height":
		return terrain.HeightTile(spec, master, preset.Workers), nil
	case "temperature":
		temp, _, _ := terrain.ClimateTile(spec, master, preset.Workers)
		return temp, nil
	case "humidity":
		_, hum, _ := terrain.ClimateTile(spec, master, preset.Workers)
		return hum, nil
	case "precipitation":
		_, _, precip := terrain.ClimateTile(spec, master, preset.Workers)
		return precip, nil
	case "rivers":
		rivers := hydrology.NewRivers(master, preset.RegionSize, hydrology.NewCache(preset.RiverCacheMax))
		out := make([]float64, spec.Width*spec.Height)
		for j := 0; j < spec.Height; j++ {
			for i := 0; i < spec.Width; i++ {
				x := spec.X0 + float64(i)*spec.Step
				z := spec.Z0 + float64(j)*spec.Step
				out[i+j*spec.Width] = rivers.Carve(terrain.Elevation(x, z, master), x, z)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown tile kind %q", kind)
	}
}
