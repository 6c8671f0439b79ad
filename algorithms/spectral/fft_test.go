package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
)

// testSignal builds a deterministic multi-tone test signal
func testSignal(n int) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		x[i] = math.Sin(2*math.Pi*3*t) + 0.5*math.Cos(2*math.Pi*11*t) + 0.25*math.Sin(2*math.Pi*57*t+0.3)
	}
	return x
}

func TestTransformImpulse(t *testing.T) {
	// FFT of a unit impulse is flat: every bin equals 1
	f := NewFFT()
	x := make([]complex128, 8)
	x[0] = 1

	out, err := f.Transform(x)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i, v := range out {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Errorf("out[%d] = %v, want 1+0i", i, v)
		}
	}
}

func TestTransformSinusoid(t *testing.T) {
	// Pure cosine at bin 2 of an 8-point transform peaks at bins 2 and 6
	f := NewFFT()
	n := 8
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = math.Cos(2 * math.Pi * 2 * float64(i) / float64(n))
	}

	out, err := f.TransformReal(x)
	if err != nil {
		t.Fatalf("TransformReal: %v", err)
	}
	for i := 0; i < n; i++ {
		mag := cmplx.Abs(out[i])
		if i == 2 || i == 6 {
			if math.Abs(mag-4.0) > 1e-10 { // N/2
				t.Errorf("|out[%d]| = %f, want 4.0", i, mag)
			}
		} else if mag > 1e-10 {
			t.Errorf("|out[%d]| = %f, want ~0", i, mag)
		}
	}
}

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	f := NewFFT()
	for _, n := range []int{3, 100, 400, 500} {
		_, err := f.TransformReal(make([]float64, n))
		if !errors.Is(err, ErrNotPowerOfTwo) {
			t.Errorf("TransformReal(len %d) err = %v, want ErrNotPowerOfTwo", n, err)
		}
	}
}

func TestTransformMatchesRecursiveReference(t *testing.T) {
	f := NewFFT()
	signal := testSignal(64)
	x := make([]complex128, len(signal))
	for i, v := range signal {
		x[i] = complex(v, 0)
	}

	iterative, err := f.Transform(x)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	reference := recursiveTransform(x)

	for i := range iterative {
		if cmplx.Abs(iterative[i]-reference[i]) > 1e-9 {
			t.Errorf("bin %d: iterative %v != recursive %v", i, iterative[i], reference[i])
		}
	}
}

func TestTransformMatchesGoDSP(t *testing.T) {
	// Cross-check against the mjibson/go-dsp implementation
	f := NewFFT()
	signal := testSignal(256)

	ours, err := f.TransformReal(signal)
	if err != nil {
		t.Fatalf("TransformReal: %v", err)
	}
	theirs := dspfft.FFTReal(signal)

	for i := range ours {
		if cmplx.Abs(ours[i]-theirs[i]) > 1e-9 {
			t.Errorf("bin %d: got %v, go-dsp %v", i, ours[i], theirs[i])
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	f := NewFFT()
	signal := testSignal(512)

	spectrum, err := f.TransformReal(signal)
	if err != nil {
		t.Fatalf("TransformReal: %v", err)
	}
	recovered, err := f.InverseReal(spectrum)
	if err != nil {
		t.Fatalf("InverseReal: %v", err)
	}

	for i := range signal {
		if math.Abs(recovered[i]-signal[i]) > 1e-3 {
			t.Errorf("sample %d: got %f, want %f", i, recovered[i], signal[i])
		}
	}
}

func TestDoubleTransformIsTimeReversal(t *testing.T) {
	// Applying the forward transform twice and scaling by 1/N yields the
	// time-reversed signal, which is exactly what the spectral filters
	// rely on when they reuse the forward transform as an inverse.
	f := NewFFT()
	signal := testSignal(128)
	n := len(signal)

	once, err := f.TransformReal(signal)
	if err != nil {
		t.Fatalf("TransformReal: %v", err)
	}
	twice, err := f.Transform(once)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	for i := 0; i < n; i++ {
		got := real(twice[i]) / float64(n)
		want := signal[(n-i)%n]
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("sample %d: got %f, want %f", i, got, want)
		}
	}
}

func BenchmarkTransform512(b *testing.B) {
	f := NewFFT()
	x := make([]complex128, 512)
	for i, v := range testSignal(512) {
		x[i] = complex(v, 0)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Transform(x); err != nil {
			b.Fatal(err)
		}
	}
}
