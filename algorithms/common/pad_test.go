package common

import (
	"math"
	"testing"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 512, 1 << 20} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -8, 3, 400, 513} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		0:   1,
		1:   1,
		4:   4, // exact powers are preserved
		5:   8,
		400: 512,
		512: 512,
		513: 1024,
	}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPadTo(t *testing.T) {
	signal := []float64{1, 2, 3}

	padded := PadTo(signal, 8)
	if len(padded) != 8 {
		t.Fatalf("len = %d, want 8", len(padded))
	}
	for i, want := range []float64{1, 2, 3, 0, 0, 0, 0, 0} {
		if padded[i] != want {
			t.Errorf("padded[%d] = %f, want %f", i, padded[i], want)
		}
	}

	// Truncation when target is shorter
	truncated := PadTo(signal, 2)
	if len(truncated) != 2 || truncated[0] != 1 || truncated[1] != 2 {
		t.Errorf("PadTo truncation wrong: %v", truncated)
	}

	// Fresh slice, input never aliased
	padded[0] = 99
	if signal[0] != 1 {
		t.Error("PadTo aliased its input")
	}
}

func TestMeanVariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	if got := Mean(x); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("Mean = %f, want 3.0", got)
	}
	if got := Variance(x); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Variance = %f, want 2.5", got)
	}
	if Mean(nil) != 0 || Variance(nil) != 0 {
		t.Error("empty-slice stats should be 0")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1.5, 1e300}) {
		t.Error("finite slice reported non-finite")
	}
	if AllFinite([]float64{0, math.NaN()}) {
		t.Error("NaN not detected")
	}
	if AllFinite([]float64{math.Inf(-1)}) {
		t.Error("Inf not detected")
	}
}
