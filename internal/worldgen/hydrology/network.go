package hydrology

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/terrain"
)

// RiverPoint is one sample along a traced river path.
type RiverPoint struct {
	X, Z      float64
	Elevation float64
	Width     float64
	Depth     float64
	Waterfall bool
	Rapids    bool
}

// RiverPath is an ordered source-to-mouth sequence of points.
type RiverPath struct {
	Points []RiverPoint
}

// Lake is a standing-water disc.
type Lake struct {
	X, Z      float64
	Elevation float64
	Radius    float64
}

// Network owns the rivers and lakes generated together for one region.
// Immutable once generated.
type Network struct {
	RegionX    int64
	RegionZ    int64
	RegionSize int64
	Rivers     []RiverPath
	Lakes      []Lake
}

const (
	sourceGridDiv  = 8
	maxTraceSteps  = 192
	traceStepLen   = 24.0
	maxLakesPerDiv = 1
)

// GenerateNetwork builds the river network for one region. Pure: the same
// (region, seed) always yields the same network. A non-positive regionSize
// deterministically yields an empty network (documented fallback for the
// precondition violation).
func GenerateNetwork(regionX, regionZ, regionSize int64, seed uint64) *Network {
	n := &Network{RegionX: regionX, RegionZ: regionZ, RegionSize: regionSize}
	if regionSize <= 0 {
		return n
	}

	x0 := float64(regionX * regionSize)
	z0 := float64(regionZ * regionSize)
	cell := float64(regionSize) / sourceGridDiv

	for gz := int64(0); gz < sourceGridDiv; gz++ {
		for gx := int64(0); gx < sourceGridDiv; gx++ {
			// One jittered candidate per cell so sources do not align to
			// the grid.
			h := mathx.Hash2(seed+5501, regionX*sourceGridDiv+gx, regionZ*sourceGridDiv+gz)
			jx := float64(h&0xffff) / 65536.0
			jz := float64((h>>16)&0xffff) / 65536.0
			cx := x0 + (float64(gx)+jx)*cell
			cz := z0 + (float64(gz)+jz)*cell

			if IsRiverSource(cx, cz, seed) {
				if path := TraceRiverPath(cx, cz, regionSize, seed); len(path.Points) > 1 {
					n.Rivers = append(n.Rivers, path)
				}
			}

			elev := terrain.Elevation(cx, cz, seed)
			precip := precipitationAt(cx, cz, elev, seed)
			flow := FlowAccumulation(cx, cz, elev, precip, seed)
			if IsLakeLocation(cx, cz, elev, flow, seed) {
				n.Lakes = append(n.Lakes, Lake{
					X: cx, Z: cz, Elevation: elev,
					Radius: lakeRadiusBase + flow*lakeRadiusFlowGain,
				})
			}
		}
	}
	return n
}

// TraceRiverPath walks downhill from a source, recording samples until the
// path reaches water level, finds no lower ground, or leaves the region by
// more than one region width.
func TraceRiverPath(startX, startZ float64, regionSize int64, seed uint64) RiverPath {
	var path RiverPath
	x, z := startX, startZ
	limit := float64(regionSize) * 2

	for step := 0; step < maxTraceSteps; step++ {
		elev := terrain.Elevation(x, z, seed)
		precip := precipitationAt(x, z, elev, seed)
		flow := FlowAccumulation(x, z, elev, precip, seed)
		width := RiverWidth(flow, elev, seed)
		if width <= 0 {
			// Below the flow threshold the channel is a trickle; keep a
			// minimal bed so the path stays connected.
			width = 1.5
		}

		nx, nz, nelev, ok := lowestNeighbor(x, z, elev, seed)
		gradient := 0.0
		if ok {
			gradient = (elev - nelev) / traceStepLen
		}

		path.Points = append(path.Points, RiverPoint{
			X: x, Z: z,
			Elevation: elev,
			Width:     width,
			Depth:     RiverDepth(width, flow),
			Waterfall: gradient > WaterfallMinGradient,
			Rapids:    gradient > RapidsMinGradient && gradient <= WaterfallMinGradient,
		})

		if !ok || elev <= 0 {
			break // terminal basin or ocean mouth
		}
		if math.Abs(nx-startX) > limit || math.Abs(nz-startZ) > limit {
			break // left the watershed we own
		}
		x, z = nx, nz
	}
	return path
}

// lowestNeighbor scans eight compass directions one step out and returns the
// lowest strictly-downhill position.
func lowestNeighbor(x, z, elev float64, seed uint64) (nx, nz, nelev float64, ok bool) {
	best := elev
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		cx := x + math.Cos(angle)*traceStepLen
		cz := z + math.Sin(angle)*traceStepLen
		ce := terrain.Elevation(cx, cz, seed)
		if ce < best {
			best = ce
			nx, nz, nelev = cx, cz, ce
			ok = true
		}
	}
	return nx, nz, nelev, ok
}
