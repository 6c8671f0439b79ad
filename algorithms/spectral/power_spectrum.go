package spectral

// PowerSpectrum computes power spectral density from real-valued frames.
//
// For a real input of N samples only the first N/2+1 transform bins are
// meaningful (conjugate symmetry), so that is all Compute returns. The DC
// bin (0) and Nyquist bin (N/2) carry no imaginary component for a real
// input and reduce to a squared real part.
type PowerSpectrum struct {
	fft *FFT
}

// NewPowerSpectrum creates a new power spectrum calculator
func NewPowerSpectrum() *PowerSpectrum {
	return &PowerSpectrum{
		fft: NewFFT(),
	}
}

// Compute computes the power spectrum of a real frame.
// The frame length must be a power of two. The result has
// len(frame)/2 + 1 non-negative values, one per bin up to Nyquist.
func (ps *PowerSpectrum) Compute(frame []float64) ([]float64, error) {
	spectrum, err := ps.fft.TransformReal(frame)
	if err != nil {
		return nil, err
	}
	return ps.FromSpectrum(spectrum), nil
}

// FromSpectrum computes per-bin power from an already-transformed
// spectrum, keeping bins [0, N/2].
func (ps *PowerSpectrum) FromSpectrum(spectrum []complex128) []float64 {
	n := len(spectrum)
	if n == 0 {
		return []float64{}
	}

	numBins := n/2 + 1
	power := make([]float64, numBins)

	// DC has no imaginary counterpart for real input
	power[0] = real(spectrum[0]) * real(spectrum[0])

	for k := 1; k < numBins-1; k++ {
		re := real(spectrum[k])
		im := imag(spectrum[k])
		power[k] = re*re + im*im
	}

	// Nyquist bin, purely real for real input
	if numBins > 1 {
		re := real(spectrum[n/2])
		power[numBins-1] = re * re
	}

	return power
}

// ComputeFrames processes multiple frames
func (ps *PowerSpectrum) ComputeFrames(frames [][]float64) ([][]float64, error) {
	if len(frames) == 0 {
		return [][]float64{}, nil
	}

	power := make([][]float64, len(frames))
	for t, frame := range frames {
		p, err := ps.Compute(frame)
		if err != nil {
			return nil, err
		}
		power[t] = p
	}

	return power, nil
}
