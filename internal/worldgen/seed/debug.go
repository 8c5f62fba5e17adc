package seed

import "fmt"

// DebugInfo is a diagnostic record of one seed derivation. No side effects;
// intended for log output and seed-inspection tooling.
type DebugInfo struct {
	Master  uint64 `json:"master"`
	Base    uint64 `json:"base"`
	Final   uint64 `json:"final"`
	X       int64  `json:"x"`
	Y       int64  `json:"y"`
	Z       int64  `json:"z"`
	QX      int64  `json:"qx"`
	QY      int64  `json:"qy"`
	QZ      int64  `json:"qz"`
	Domain  string `json:"domain"`
	Scale   string `json:"scale"`
	SeedStr string `json:"seed_string"`
}

// Debug reports how the seed for (x,y,z) at the given tier and domain is put
// together.
func (w *WorldSeed) Debug(x, y, z int64, s Scale, d Domain) DebugInfo {
	return DebugInfo{
		Master:  w.master,
		Base:    w.DomainSeed(d),
		Final:   w.ScaleSeed(x, y, z, s, d),
		X:       x,
		Y:       y,
		Z:       z,
		QX:      s.Quantize(x),
		QY:      s.Quantize(y),
		QZ:      s.Quantize(z),
		Domain:  d.String(),
		Scale:   s.String(),
		SeedStr: w.SeedString(),
	}
}

func (i DebugInfo) String() string {
	return fmt.Sprintf("seed %s/%s (%d,%d,%d)->(%d,%d,%d) base=%016x final=%016x",
		i.Domain, i.Scale, i.X, i.Y, i.Z, i.QX, i.QY, i.QZ, i.Base, i.Final)
}
