package filters

import (
	"fmt"
)

// DefaultPreEmphasisCoefficient is the standard speech value
// (ITU-T G.191 recommendation).
const DefaultPreEmphasisCoefficient = 0.97

// PreEmphasis implements a first-order pre-emphasis filter,
// y[n] = x[n] - α*x[n-1], which boosts high frequencies ahead of feature
// extraction. With zero initial state the first output sample equals the
// first input sample.
//
// Reference: L.R. Rabiner, R.W. Schafer, "Digital Processing of Speech
// Signals", Prentice-Hall, 1978, Chapter 4.
type PreEmphasis struct {
	coefficient float64 // Pre-emphasis coefficient α
	lastSample  float64 // Previous input sample x[n-1]
}

// NewPreEmphasis creates a pre-emphasis filter with the given coefficient.
// Typical speech values sit in 0.9-0.99.
func NewPreEmphasis(coefficient float64) *PreEmphasis {
	return &PreEmphasis{coefficient: coefficient}
}

// NewPreEmphasisDefault creates a pre-emphasis filter with the standard
// speech coefficient (0.97)
func NewPreEmphasisDefault() *PreEmphasis {
	return NewPreEmphasis(DefaultPreEmphasisCoefficient)
}

// Process applies pre-emphasis to a single sample and advances the
// filter state
func (pe *PreEmphasis) Process(input float64) float64 {
	output := input - pe.coefficient*pe.lastSample
	pe.lastSample = input
	return output
}

// ProcessBuffer applies pre-emphasis to an entire buffer of samples
func (pe *PreEmphasis) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	for i, sample := range input {
		output[i] = pe.Process(sample)
	}
	return output
}

// Reset clears the filter's internal state.
// Call this when processing discontinuous audio segments.
func (pe *PreEmphasis) Reset() {
	pe.lastSample = 0.0
}

// SetCoefficient updates the pre-emphasis coefficient
func (pe *PreEmphasis) SetCoefficient(coefficient float64) error {
	if coefficient <= 0.0 || coefficient >= 1.0 {
		return fmt.Errorf("coefficient must be between 0 and 1, got %f", coefficient)
	}
	pe.coefficient = coefficient
	return nil
}

// GetCoefficient returns the current coefficient
func (pe *PreEmphasis) GetCoefficient() float64 {
	return pe.coefficient
}
