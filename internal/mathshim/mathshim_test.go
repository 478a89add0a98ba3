package mathshim

import (
	"math"
	"testing"
)

func TestDefaultMatchesStdlib(t *testing.T) {
	shim := Default()
	for _, x := range []float32{0, 0.5, 1, math.Pi, -2.3, 10} {
		if got, want := shim.Cos(x), float32(math.Cos(float64(x))); got != want {
			t.Errorf("Cos(%v) = %v, want %v", x, got, want)
		}
		if got, want := shim.Sin(x), float32(math.Sin(float64(x))); got != want {
			t.Errorf("Sin(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestFastTableCosApproximatesStdlib(t *testing.T) {
	shim := NewFastTable()
	for _, x := range []float32{0, 0.5, 1, 2, 3.14, -1.5} {
		got := shim.Cos(x)
		want := float32(math.Cos(float64(x)))
		if math.Abs(float64(got-want)) > 0.01 {
			t.Errorf("Cos(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestFastTableSinApproximatesStdlib(t *testing.T) {
	shim := NewFastTable()
	for _, x := range []float32{0, 0.5, 1, 2, 3.14, -1.5} {
		got := shim.Sin(x)
		want := float32(math.Sin(float64(x)))
		if math.Abs(float64(got-want)) > 0.01 {
			t.Errorf("Sin(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestFastTableExp2AndSqrtMatchStdlib(t *testing.T) {
	shim := NewFastTable()
	for _, x := range []float32{0, 1, 2, -3, 5.5} {
		if got, want := shim.Exp2(x), float32(math.Exp2(float64(x))); got != want {
			t.Errorf("Exp2(%v) = %v, want %v", x, got, want)
		}
	}
	for _, x := range []float32{0, 1, 4, 9, 16.5} {
		if got, want := shim.Sqrt(x), float32(math.Sqrt(float64(x))); got != want {
			t.Errorf("Sqrt(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestFastTableVariantReturnsNonEmpty(t *testing.T) {
	if v := FastTableVariant(); v == "" {
		t.Error("FastTableVariant() = \"\", want a non-empty label")
	}
}
