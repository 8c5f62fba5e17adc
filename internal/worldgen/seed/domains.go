package seed

// Domain is a generation concern with its own seed space. Different domains
// sampled at the same coordinate must never correlate.
type Domain uint8

const (
	DomainTerrain Domain = iota
	DomainCaves
	DomainOres
	DomainStructures
	DomainBiomes
	DomainWeather
	DomainWater
	DomainVegetation

	domainCount
)

// Large odd constants, one per domain, XORed into the master seed before the
// avalanche pass. Indexed by the Domain ordinal.
var domainPrimes = [domainCount]uint64{
	DomainTerrain:    0x9e3779b97f4a7c55,
	DomainCaves:      0xc2b2ae3d27d4eb4f,
	DomainOres:       0x165667b19e3779f9,
	DomainStructures: 0xd6e8feb86659fd93,
	DomainBiomes:     0xa0761d6478bd642f,
	DomainWeather:    0xe7037ed1a0b428db,
	DomainWater:      0x8ebc6af09c88c6e3,
	DomainVegetation: 0x589965cc75374cc3,
}

var domainNames = [domainCount]string{
	DomainTerrain:    "TERRAIN",
	DomainCaves:      "CAVES",
	DomainOres:       "ORES",
	DomainStructures: "STRUCTURES",
	DomainBiomes:     "BIOMES",
	DomainWeather:    "WEATHER",
	DomainWater:      "WATER",
	DomainVegetation: "VEGETATION",
}

// Domains lists every domain in ordinal order.
func Domains() []Domain {
	out := make([]Domain, domainCount)
	for i := range out {
		out[i] = Domain(i)
	}
	return out
}

func (d Domain) Valid() bool {
	return d < domainCount
}

func (d Domain) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return domainNames[d]
}
