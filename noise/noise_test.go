package noise

import (
	"math"
	"math/rand"
	"testing"
)

func TestSourcesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for _, kind := range []string{KindPerlin, KindOpenSimplex, KindFlat} {
		src, err := New(kind)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		for i := 0; i < 2000; i++ {
			x := rng.Float64()*400 - 200
			y := rng.Float64()*400 - 200
			if v := src.Eval2(x, y); v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%s.Eval2(%f, %f) = %f, expected in [0,1]", kind, x, y, v)
			}
		}
	}
}

func TestSourcesDeterministic(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindOpenSimplex} {
		a, _ := New(kind)
		b, _ := New(kind)
		for i := 0; i < 100; i++ {
			x, y := float64(i)*0.37, float64(i)*-0.11+3
			if va, vb := a.Eval2(x, y), b.Eval2(x, y); math.Float64bits(va) != math.Float64bits(vb) {
				t.Errorf("%s not deterministic at (%f, %f): %v != %v", kind, x, y, va, vb)
			}
		}
	}
}

func TestPerlinVaries(t *testing.T) {
	p := NewPerlin()
	seen := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		seen[p.Eval2(float64(i)*0.31+0.5, 0.7)] = true
	}
	if len(seen) < 10 {
		t.Errorf("expected varied noise values, got %d distinct", len(seen))
	}
}

func TestPerlinLatticeIsMidpoint(t *testing.T) {
	p := NewPerlin()
	for _, pt := range [][2]float64{{0, 0}, {1, 2}, {5, 3}} {
		if v := p.Eval2(pt[0], pt[1]); math.Abs(v-0.5) > 1e-9 {
			t.Errorf("Eval2(%v) = %f, expected 0.5 on a lattice point", pt, v)
		}
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New("worley"); err == nil {
		t.Error("expected error for unknown noise kind")
	}
}

func TestFractalSingleOctaveMatchesSource(t *testing.T) {
	src := NewPerlin()
	f := NewFractal(src, 1, 0.5, 2)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.13, float64(i)*0.29
		if a, b := f.Eval2(x, y), src.Eval2(x, y); a != b {
			t.Fatalf("single octave fractal differs at (%f, %f): %f != %f", x, y, a, b)
		}
	}
}

func TestFractalRange(t *testing.T) {
	f := NewFractal(NewOpenSimplex(), 5, 0.5, 2)
	for i := 0; i < 500; i++ {
		x, y := float64(i)*0.71, float64(i)*-0.43
		if v := f.Eval2(x, y); v < 0 || v > 1 {
			t.Fatalf("Eval2(%f, %f) = %f, expected in [0,1]", x, y, v)
		}
	}
}

func TestFractalAmplitudes(t *testing.T) {
	f := NewFractal(Constant(0.25), 3, 0.5, 2)
	want := []float64{1, 0.5, 0.25}
	for i, a := range f.Amplitudes {
		if a != want[i] {
			t.Errorf("Amplitudes[%d] = %f, want %f", i, a, want[i])
		}
	}
	if v := f.Eval2(3, 4); math.Abs(v-0.25) > 1e-12 {
		t.Errorf("constant fractal = %f, want 0.25", v)
	}
}

func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-0.5: 0, 0: 0, 0.3: 0.3, 1: 1, 1.2: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%f) = %f, want %f", in, got, want)
		}
	}
	if got := Constant(1.7).Eval2(0, 0); got != 1 {
		t.Errorf("Constant(1.7) = %f, want clamped 1", got)
	}
}
