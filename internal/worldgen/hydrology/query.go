package hydrology

import (
	"math"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"
)

// DefaultRegionSize is the region width used when the caller does not pick
// one; a region owns every river source inside it.
const DefaultRegionSize = 1024

// QueryResult is the composite answer for one point.
type QueryResult struct {
	River     bool
	Lake      bool
	Waterfall bool
	Rapids    bool
	Width     float64
	Depth     float64
	Elevation float64
	Distance  float64 // to the nearest path point, when River
}

// Rivers is the public read surface over region networks. It owns nothing
// global: the cache is injected, so tests and callers control lifetime and
// bounds.
type Rivers struct {
	seed       uint64
	regionSize int64
	cache      *Cache
}

// NewRivers builds a sampler. A non-positive regionSize falls back to
// DefaultRegionSize.
func NewRivers(seed uint64, regionSize int64, cache *Cache) *Rivers {
	if regionSize <= 0 {
		regionSize = DefaultRegionSize
	}
	return &Rivers{seed: seed, regionSize: regionSize, cache: cache}
}

// Network returns the (cached) network owning region (rx, rz).
func (r *Rivers) Network(rx, rz int64) *Network {
	k := Key{RX: rx, RZ: rz, Size: r.regionSize}
	return r.cache.Get(k, func() *Network {
		return GenerateNetwork(rx, rz, r.regionSize, r.seed)
	})
}

// Query reports river/lake presence at a world-space point, scanning the
// owning region's network for the nearest path point within its width.
func (r *Rivers) Query(x, z float64) QueryResult {
	rx := mathx.FloorDiv(int64(math.Floor(x)), r.regionSize)
	rz := mathx.FloorDiv(int64(math.Floor(z)), r.regionSize)
	n := r.Network(rx, rz)

	var res QueryResult
	best := math.MaxFloat64

	for pi := range n.Rivers {
		pts := n.Rivers[pi].Points
		for qi := range pts {
			p := &pts[qi]
			dx := p.X - x
			dz := p.Z - z
			d := math.Sqrt(dx*dx + dz*dz)
			if d > p.Width/2+traceStepLen {
				continue
			}
			if d < best {
				best = d
				res.River = d <= p.Width/2
				res.Waterfall = res.River && p.Waterfall
				res.Rapids = res.River && p.Rapids
				res.Width = p.Width
				res.Depth = p.Depth
				res.Elevation = p.Elevation
				res.Distance = d
			}
		}
	}

	for li := range n.Lakes {
		l := &n.Lakes[li]
		dx := l.X - x
		dz := l.Z - z
		if math.Sqrt(dx*dx+dz*dz) <= l.Radius {
			res.Lake = true
			if !res.River {
				res.Elevation = l.Elevation
			}
			break
		}
	}
	return res
}

// Carve lowers a base elevation near rivers, tapering across the valley so
// the cross-section is a smooth valley rather than a trench.
func (r *Rivers) Carve(baseElevation, x, z float64) float64 {
	q := r.Query(x, z)
	if q.Width <= 0 {
		return baseElevation
	}

	valleyHalf := ValleyWidthFactor * q.Width / 2
	if q.Distance >= valleyHalf {
		return baseElevation
	}

	t := 1 - q.Distance/valleyHalf
	carve := q.Depth * t * t
	return baseElevation - carve
}
