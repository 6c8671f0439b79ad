package spectral

import (
	"math"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/common"
)

// flatnessEpsilon floors power bins before the logarithm so a near-empty
// bin never produces -Inf.
const flatnessEpsilon = 1e-10

// SpectralFlatness computes spectral flatness (Wiener entropy): the ratio
// of the geometric mean to the arithmetic mean of the power spectrum.
// A flat (white-noise-like) spectrum scores 1.0, a single tone scores
// near 0. Synthesized voices tend to sit in a narrower flatness band than
// natural ones, which is why the classifier front end tracks this.
type SpectralFlatness struct {
	power *PowerSpectrum
}

// NewSpectralFlatness creates a new spectral flatness calculator
func NewSpectralFlatness() *SpectralFlatness {
	return &SpectralFlatness{
		power: NewPowerSpectrum(),
	}
}

// Compute calculates spectral flatness for a real frame.
// The frame length must be a power of two. An all-silent frame yields 0.
func (sf *SpectralFlatness) Compute(frame []float64) (float64, error) {
	powerSpectrum, err := sf.power.Compute(frame)
	if err != nil {
		return 0, err
	}
	return sf.FromPowerSpectrum(powerSpectrum), nil
}

// FromPowerSpectrum calculates flatness from an existing power spectrum.
// Result is clamped to [0, 1].
func (sf *SpectralFlatness) FromPowerSpectrum(powerSpectrum []float64) float64 {
	if len(powerSpectrum) == 0 {
		return 0.0
	}

	arithmeticMean := common.Mean(powerSpectrum)
	if arithmeticMean <= flatnessEpsilon {
		// Degenerate (silent) spectrum
		return 0.0
	}

	// Geometric mean in the log domain, each bin floored so log never
	// sees zero
	logSum := 0.0
	for _, p := range powerSpectrum {
		logSum += math.Log(math.Max(p, flatnessEpsilon))
	}
	geometricMean := math.Exp(logSum / float64(len(powerSpectrum)))

	flatness := geometricMean / arithmeticMean
	if flatness > 1.0 {
		flatness = 1.0
	}

	return flatness
}

// ComputeFrames processes multiple frames efficiently
func (sf *SpectralFlatness) ComputeFrames(frames [][]float64) ([]float64, error) {
	if len(frames) == 0 {
		return []float64{}, nil
	}

	flatness := make([]float64, len(frames))
	for t, frame := range frames {
		v, err := sf.Compute(frame)
		if err != nil {
			return nil, err
		}
		flatness[t] = v
	}

	return flatness, nil
}
