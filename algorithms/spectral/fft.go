package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/common"
)

// ErrNotPowerOfTwo is returned when a transform input length is not a
// power of two. This is a precondition failure: callers are expected to
// pad with common.PadTo / common.NextPowerOfTwo before transforming.
var ErrNotPowerOfTwo = errors.New("length must be a power of two")

// FFT provides radix-2 Fast Fourier Transform functionality.
//
// The forward transform is an iterative in-place decimation-in-time
// implementation (bit-reversal permutation followed by butterfly stages
// with twiddle factors exp(-2πi·k/N)). A recursive even/odd formulation
// is kept in this file as the reference implementation and test oracle.
type FFT struct {
	// No state needed - stateless calculation
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Transform computes the forward DFT of x.
// The input length must be a power of two, otherwise ErrNotPowerOfTwo is
// returned. The input is never modified; the result is a fresh slice of
// the same length.
func (f *FFT) Transform(x []complex128) ([]complex128, error) {
	n := len(x)
	if !common.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fft: transform of %d samples: %w", n, ErrNotPowerOfTwo)
	}

	out := make([]complex128, n)
	copy(out, x)

	// Bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	// Butterfly stages
	for length := 2; length <= n; length <<= 1 {
		wl := cmplx.Exp(complex(0, -2*math.Pi/float64(length)))
		half := length >> 1
		for start := 0; start < n; start += length {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := out[start+k]
				v := out[start+k+half] * w
				out[start+k] = u + v
				out[start+k+half] = u - v
				w *= wl
			}
		}
	}

	return out, nil
}

// TransformReal computes the forward DFT of a real-valued frame.
func (f *FFT) TransformReal(frame []float64) ([]complex128, error) {
	x := make([]complex128, len(frame))
	for i, v := range frame {
		x[i] = complex(v, 0)
	}
	return f.Transform(x)
}

// Inverse computes the true inverse DFT via the conjugation identity
// IDFT(x) = conj(DFT(conj(x))) / N.
//
// Note that the spectral-domain filters in algorithms/filters do NOT use
// this; they reuse the forward transform as an approximate inverse for
// parity with the deployed classifier front end. Inverse is the correct
// choice for callers that need faithful time-domain reconstruction.
func (f *FFT) Inverse(x []complex128) ([]complex128, error) {
	n := len(x)
	conj := make([]complex128, n)
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}

	out, err := f.Transform(conj)
	if err != nil {
		return nil, err
	}

	scale := 1.0 / float64(n)
	for i, v := range out {
		out[i] = cmplx.Conj(v) * complex(scale, 0)
	}
	return out, nil
}

// InverseReal computes the inverse DFT and returns the real part only
func (f *FFT) InverseReal(x []complex128) ([]float64, error) {
	result, err := f.Inverse(x)
	if err != nil {
		return nil, err
	}

	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}
	return realResult, nil
}

// recursiveTransform is the textbook radix-2 decimation-in-time DFT:
// split into even/odd subsequences, transform each, recombine with
// twiddle factors. It allocates per recursion level and exists purely as
// the reference against which the iterative Transform is verified.
// Length must be a power of two (unchecked).
func recursiveTransform(x []complex128) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	evenOut := recursiveTransform(even)
	oddOut := recursiveTransform(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		twiddle := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		t := twiddle * oddOut[k]
		out[k] = evenOut[k] + t
		out[k+n/2] = evenOut[k] - t
	}
	return out
}
