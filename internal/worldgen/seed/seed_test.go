package seed

import (
	"fmt"
	"testing"
)

func TestDeterminism_TwoInstancesAgree(t *testing.T) {
	w1 := FromString("TestWorld123")
	w2 := FromString("TestWorld123")

	if w1.MasterSeed() != w2.MasterSeed() {
		t.Fatalf("master seeds differ: %d vs %d", w1.MasterSeed(), w2.MasterSeed())
	}

	for x := int64(-40); x <= 40; x += 7 {
		for z := int64(-40); z <= 40; z += 11 {
			if w1.BlockSeed(x, 5, z) != w2.BlockSeed(x, 5, z) {
				t.Fatalf("block seed mismatch at (%d,5,%d)", x, z)
			}
			for _, d := range Domains() {
				if w1.FeatureSeed(x, 5, z, d) != w2.FeatureSeed(x, 5, z, d) {
					t.Fatalf("feature seed mismatch at (%d,5,%d) domain %s", x, z, d)
				}
			}
			if w1.ScaleSeed(x, 5, z, ScaleRegion, DomainBiomes) != w2.ScaleSeed(x, 5, z, ScaleRegion, DomainBiomes) {
				t.Fatalf("scale seed mismatch at (%d,5,%d)", x, z)
			}
		}
	}
}

func TestEndToEnd_TestWorld123(t *testing.T) {
	w1 := FromString("TestWorld123")
	w2 := FromString("TestWorld123")

	if w1.BlockSeed(100, 50, 200) != w2.BlockSeed(100, 50, 200) {
		t.Fatalf("block seeds differ for identical worlds")
	}
	terr1 := w1.FeatureSeed(100, 50, 200, DomainTerrain)
	terr2 := w2.FeatureSeed(100, 50, 200, DomainTerrain)
	if terr1 != terr2 {
		t.Fatalf("terrain feature seeds differ")
	}
	if terr1 == w1.FeatureSeed(100, 50, 200, DomainCaves) {
		t.Fatalf("terrain and caves collide at (100,50,200)")
	}
	if w1.SeedString() != "TestWorld123" {
		t.Fatalf("seed string not preserved: %q", w1.SeedString())
	}
}

func TestFeatureSeparation(t *testing.T) {
	w := FromUint64(987654321)
	collisions := 0
	const n = 2000
	for i := int64(0); i < n; i++ {
		x, y, z := i*31-500, i%64, i*17-900
		if w.FeatureSeed(x, y, z, DomainTerrain) == w.FeatureSeed(x, y, z, DomainCaves) {
			collisions++
		}
	}
	if collisions > n/100 {
		t.Fatalf("%d/%d terrain/caves collisions", collisions, n)
	}
}

func TestStringSeeds_NoCollisionsInSmallSample(t *testing.T) {
	seen := map[uint64]string{}
	for i := 1; i <= 20; i++ {
		s := fmt.Sprintf("World%d", i)
		m := FromString(s).MasterSeed()
		if prev, ok := seen[m]; ok {
			t.Fatalf("master seed collision: %q and %q", prev, s)
		}
		seen[m] = s
	}
}

func TestNumericSeedString(t *testing.T) {
	w := FromUint64(7)
	want := fmt.Sprintf("%d", w.MasterSeed())
	if w.SeedString() != want {
		t.Fatalf("seed string %q, want decimal master %q", w.SeedString(), want)
	}
}

func TestToFloat_Range(t *testing.T) {
	w := FromUint64(1)
	for i := int64(0); i < 5000; i++ {
		f := ToFloat(w.BlockSeed(i, 0, -i))
		if f < 0 || f >= 1 {
			t.Fatalf("ToFloat out of [0,1): %v", f)
		}
	}
}

func TestToRange_Contract(t *testing.T) {
	w := FromUint64(2)
	for i := int64(0); i < 2000; i++ {
		s := w.BlockSeed(i, 1, i*3)
		v := ToRange(s, -10, 10)
		if v < -10 || v > 10 {
			t.Fatalf("ToRange out of [-10,10]: %d", v)
		}
	}
	if ToRange(12345, 4, 4) != 4 {
		t.Fatalf("ToRange(min==max) != min")
	}
	if ToRange(12345, 9, 3) != 9 {
		t.Fatalf("ToRange(min>max) fallback != min")
	}
}

func TestToRange_HitsBounds(t *testing.T) {
	w := FromUint64(3)
	hitMin, hitMax := false, false
	for i := int64(0); i < 4000 && !(hitMin && hitMax); i++ {
		switch ToRange(w.BlockSeed(i, 2, -i*5), 0, 3) {
		case 0:
			hitMin = true
		case 3:
			hitMax = true
		}
	}
	if !hitMin || !hitMax {
		t.Fatalf("range bounds never hit: min=%v max=%v", hitMin, hitMax)
	}
}

func TestScaleQuantization(t *testing.T) {
	w := FromUint64(44)

	// -1 and -15 share the chunk [-16,-1]; -1 and 0 do not.
	if w.ScaleSeed(-1, 0, 8, ScaleChunk, DomainTerrain) != w.ScaleSeed(-15, 3, 8, ScaleChunk, DomainTerrain) {
		t.Fatalf("coordinates in the same chunk produced different seeds")
	}
	if w.ScaleSeed(-1, 0, 8, ScaleChunk, DomainTerrain) == w.ScaleSeed(0, 0, 8, ScaleChunk, DomainTerrain) {
		t.Fatalf("chunk boundary crossing did not change the seed")
	}

	if ScaleChunk.Quantize(-1) != -1 || ScaleChunk.Quantize(-16) != -1 || ScaleChunk.Quantize(-17) != -2 {
		t.Fatalf("chunk quantization not floor division: %d %d %d",
			ScaleChunk.Quantize(-1), ScaleChunk.Quantize(-16), ScaleChunk.Quantize(-17))
	}
	if ScaleRegion.Quantize(255) != 0 || ScaleRegion.Quantize(256) != 1 {
		t.Fatalf("region quantization wrong")
	}
	if ScaleContinental.Quantize(4095) != 0 || ScaleContinental.Quantize(-4096) != -1 {
		t.Fatalf("continental quantization wrong")
	}
	if ScaleBlock.Quantize(-123) != -123 {
		t.Fatalf("block tier must not quantize")
	}
}

func TestDomainSeedsStable(t *testing.T) {
	w := FromString("stable")
	for _, d := range Domains() {
		a := w.DomainSeed(d)
		b := w.DomainSeed(d)
		if a != b {
			t.Fatalf("domain seed unstable for %s", d)
		}
		if a == w.MasterSeed() {
			t.Fatalf("domain %s seed equals master seed", d)
		}
	}
}

func TestDebugInfo(t *testing.T) {
	w := FromString("dbg")
	info := w.Debug(100, 50, 200, ScaleChunk, DomainOres)
	if info.QX != 6 || info.QY != 3 || info.QZ != 12 {
		t.Fatalf("debug quantization wrong: %+v", info)
	}
	if info.Domain != "ORES" || info.Scale != "CHUNK" {
		t.Fatalf("debug names wrong: %+v", info)
	}
	if info.Final != w.ScaleSeed(100, 50, 200, ScaleChunk, DomainOres) {
		t.Fatalf("debug final seed mismatch")
	}
	if info.String() == "" {
		t.Fatalf("empty debug string")
	}
}

func TestRandomSeedsDiffer(t *testing.T) {
	if New().MasterSeed() == New().MasterSeed() {
		t.Fatalf("two random worlds share a master seed")
	}
}
