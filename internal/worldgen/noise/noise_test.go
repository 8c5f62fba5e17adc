package noise

import (
	"math"
	"testing"
)

func TestPerlin_RangeAndDeterminism(t *testing.T) {
	const seed = 0xdeadbeefcafe
	for i := 0; i < 4000; i++ {
		x := float64(i)*1.37 - 2500
		z := float64(i)*-0.91 + 700
		v := Perlin(x, z, seed, 0.05)
		if math.IsNaN(v) || v < -1 || v > 1 {
			t.Fatalf("perlin out of range at (%v,%v): %v", x, z, v)
		}
		if v != Perlin(x, z, seed, 0.05) {
			t.Fatalf("perlin not deterministic at (%v,%v)", x, z)
		}
	}
}

func TestPerlin_SeedsDecorrelate(t *testing.T) {
	same := 0
	const n = 500
	for i := 0; i < n; i++ {
		x := float64(i) * 3.1
		if Perlin(x, -x, 1, 0.05) == Perlin(x, -x, 2, 0.05) {
			same++
		}
	}
	if same > n/10 {
		t.Fatalf("different seeds produce equal samples %d/%d times", same, n)
	}
}

func TestPerlin_Smoothness(t *testing.T) {
	// Adjacent samples at a small step should not jump: the field is
	// continuous, so the max step delta stays well below the full range.
	const seed = 99
	prev := Perlin(0, 0, seed, 0.05)
	for i := 1; i < 2000; i++ {
		x := float64(i) * 0.1
		v := Perlin(x, 42.5, seed, 0.05)
		if math.Abs(v-prev) > 0.2 {
			t.Fatalf("discontinuity at x=%v: %v -> %v", x, prev, v)
		}
		prev = v
	}
}

func TestPerlin_ZeroAtLatticeIsConsistent(t *testing.T) {
	// On integer lattice points the offset is zero, so the value is the dot
	// of a gradient with the zero vector (up to float rounding of x*freq).
	if v := Perlin(40, 60, 7, 0.25); math.Abs(v) > 1e-9 {
		t.Fatalf("lattice point value %v, want ~0", v)
	}
}

func TestVoronoi_Range(t *testing.T) {
	for i := 0; i < 3000; i++ {
		x := float64(i)*2.7 - 4000
		z := float64(i)*1.3 - 1000
		v := Voronoi(x, z, 555, 0.02)
		if v < 0 || v > 1 {
			t.Fatalf("voronoi out of [0,1] at (%v,%v): %v", x, z, v)
		}
		if v != Voronoi(x, z, 555, 0.02) {
			t.Fatalf("voronoi not deterministic")
		}
	}
}

func TestCombinedAndHeightmap_Range(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float64(i)*13.7 - 10000
		z := float64(i)*-7.3 + 3000
		c := Combined(x, z, 31337)
		if c < -1 || c > 1 {
			t.Fatalf("combined out of [-1,1]: %v", c)
		}
		h := Heightmap(x, z, 31337)
		if h < 0 || h > 1 {
			t.Fatalf("heightmap out of [0,1]: %v", h)
		}
	}
}

func TestRidge_Range(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float64(i)*5.1 - 5000
		v := Ridge(x, x*0.7, 777)
		if v < 0 || v > 1 {
			t.Fatalf("ridge out of [0,1]: %v", v)
		}
	}
}

func TestScaleFrequencies_Ordered(t *testing.T) {
	if !(ScaleContinental.Frequency() < ScaleRegional.Frequency() &&
		ScaleRegional.Frequency() < ScaleLocal.Frequency() &&
		ScaleLocal.Frequency() < ScaleMicro.Frequency()) {
		t.Fatalf("frequency tiers not strictly increasing")
	}
}
