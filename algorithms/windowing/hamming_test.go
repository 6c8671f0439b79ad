package windowing

import (
	"math"
	"testing"
)

func TestHammingShape(t *testing.T) {
	h := NewHamming(400)
	coeffs := h.Coefficients()

	// Endpoints at 0.54 - 0.46 = 0.08, peak near 1.0 at the middle
	if math.Abs(coeffs[0]-0.08) > 1e-3 {
		t.Errorf("coeffs[0] = %f, want ~0.08", coeffs[0])
	}
	if math.Abs(coeffs[399]-0.08) > 1e-3 {
		t.Errorf("coeffs[399] = %f, want ~0.08", coeffs[399])
	}
	mid := coeffs[200]
	if mid < 0.99 {
		t.Errorf("coeffs[200] = %f, want close to 1.0", mid)
	}

	// Symmetric window
	for i := 0; i < 200; i++ {
		if math.Abs(coeffs[i]-coeffs[399-i]) > 1e-12 {
			t.Errorf("asymmetry at %d: %f != %f", i, coeffs[i], coeffs[399-i])
		}
	}
}

func TestHammingApply(t *testing.T) {
	h := NewHamming(8)
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	windowed, err := h.Apply(signal)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	coeffs := h.Coefficients()
	for i := range windowed {
		if windowed[i] != coeffs[i] {
			t.Errorf("windowed[%d] = %f, want %f", i, windowed[i], coeffs[i])
		}
	}
	// Input untouched
	if signal[0] != 1 {
		t.Error("Apply modified its input")
	}
}

func TestHammingSizeMismatch(t *testing.T) {
	h := NewHamming(8)
	if _, err := h.Apply(make([]float64, 7)); err == nil {
		t.Error("expected error for mismatched signal length")
	}
	if err := h.ApplyInPlace(make([]float64, 9)); err == nil {
		t.Error("expected error for mismatched signal length")
	}
}
