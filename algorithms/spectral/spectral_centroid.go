package spectral

// SpectralCentroid computes the spectral centroid (center of mass) of a frame
type SpectralCentroid struct {
	sampleRate  int
	power       *PowerSpectrum
	freqBins    []float64 // Pre-calculated frequency bins for efficiency
	initialized bool
}

// NewSpectralCentroid creates a new spectral centroid calculator
func NewSpectralCentroid(sampleRate int) *SpectralCentroid {
	return &SpectralCentroid{
		sampleRate: sampleRate,
		power:      NewPowerSpectrum(),
	}
}

// Compute calculates the power-weighted mean frequency of a real frame.
// The frame length must be a power of two. Returns 0 for a frame with no
// power rather than dividing by zero.
func (sc *SpectralCentroid) Compute(frame []float64) (float64, error) {
	powerSpectrum, err := sc.power.Compute(frame)
	if err != nil {
		return 0, err
	}
	return sc.FromPowerSpectrum(powerSpectrum), nil
}

// FromPowerSpectrum calculates the centroid from an existing power spectrum
func (sc *SpectralCentroid) FromPowerSpectrum(powerSpectrum []float64) float64 {
	if len(powerSpectrum) == 0 {
		return 0.0
	}

	if !sc.initialized || len(sc.freqBins) != len(powerSpectrum) {
		sc.initializeFreqBins(len(powerSpectrum))
	}

	numerator := 0.0
	denominator := 0.0

	for i := range powerSpectrum {
		numerator += sc.freqBins[i] * powerSpectrum[i]
		denominator += powerSpectrum[i]
	}

	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// ComputeFrames processes multiple frames efficiently
func (sc *SpectralCentroid) ComputeFrames(frames [][]float64) ([]float64, error) {
	if len(frames) == 0 {
		return []float64{}, nil
	}

	centroids := make([]float64, len(frames))
	for t, frame := range frames {
		c, err := sc.Compute(frame)
		if err != nil {
			return nil, err
		}
		centroids[t] = c
	}

	return centroids, nil
}

// initializeFreqBins pre-calculates frequency bins.
// Bin k of an N-point transform sits at k*sampleRate/N Hz, and
// N = (numBins-1)*2 for a real-input power spectrum.
func (sc *SpectralCentroid) initializeFreqBins(numBins int) {
	sc.freqBins = make([]float64, numBins)
	for i := 0; i < numBins; i++ {
		sc.freqBins[i] = float64(i) * float64(sc.sampleRate) / float64((numBins-1)*2)
	}
	sc.initialized = true
}

// GetFrequencyBins returns the frequency bins used for calculation
func (sc *SpectralCentroid) GetFrequencyBins() []float64 {
	if !sc.initialized {
		return nil
	}

	// Return copy to prevent modification
	bins := make([]float64, len(sc.freqBins))
	copy(bins, sc.freqBins)
	return bins
}
