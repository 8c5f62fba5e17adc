package seed

import "github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/mathx"

// Scale is a coordinate-quantization tier. Coarser tiers shift coordinates
// right by a fixed bit count: 16 blocks per chunk, 256 per region, 4096 per
// continental cell.
type Scale uint8

const (
	ScaleBlock Scale = iota
	ScaleChunk
	ScaleRegion
	ScaleContinental

	scaleCount
)

var scaleShift = [scaleCount]uint{
	ScaleBlock:       0,
	ScaleChunk:       4,
	ScaleRegion:      8,
	ScaleContinental: 12,
}

var scaleNames = [scaleCount]string{
	ScaleBlock:       "BLOCK",
	ScaleChunk:       "CHUNK",
	ScaleRegion:      "REGION",
	ScaleContinental: "CONTINENTAL",
}

func (s Scale) Valid() bool {
	return s < scaleCount
}

func (s Scale) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return scaleNames[s]
}

// Quantize converts a block coordinate to this tier. Uses floor semantics so
// negative coordinates do not seam at the origin: -1 and -15 share a chunk,
// -1 and 0 do not.
func (s Scale) Quantize(v int64) int64 {
	if !s.Valid() || s == ScaleBlock {
		return v
	}
	return mathx.FloorDiv(v, 1<<scaleShift[s])
}
