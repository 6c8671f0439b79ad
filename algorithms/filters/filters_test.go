package filters

import (
	"math"
	"testing"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/spectral"
)

func TestPreEmphasisConstantSignal(t *testing.T) {
	// y[0] = c, then every sample becomes c*(1-alpha)
	pe := NewPreEmphasis(0.97)
	c := 2.0
	out := pe.ProcessBuffer([]float64{c, c, c, c, c})

	if out[0] != c {
		t.Errorf("out[0] = %f, want %f", out[0], c)
	}
	want := c * (1 - 0.97)
	for i := 1; i < len(out); i++ {
		if math.Abs(out[i]-want) > 1e-12 {
			t.Errorf("out[%d] = %f, want %f", i, out[i], want)
		}
	}
}

func TestPreEmphasisKnownValues(t *testing.T) {
	pe := NewPreEmphasisDefault()
	out := pe.ProcessBuffer([]float64{1.0, 2.0, 3.0})

	if out[0] != 1.0 {
		t.Errorf("out[0] = %f, want 1.0", out[0])
	}
	if math.Abs(out[1]-(2.0-0.97*1.0)) > 1e-12 {
		t.Errorf("out[1] = %f, want 1.03", out[1])
	}
	if math.Abs(out[2]-(3.0-0.97*2.0)) > 1e-12 {
		t.Errorf("out[2] = %f, want 1.06", out[2])
	}
}

func TestPreEmphasisReset(t *testing.T) {
	pe := NewPreEmphasisDefault()
	pe.Process(5.0)
	pe.Reset()
	if got := pe.Process(1.0); got != 1.0 {
		t.Errorf("Process after Reset = %f, want 1.0", got)
	}
}

func TestPreEmphasisSetCoefficient(t *testing.T) {
	pe := NewPreEmphasisDefault()
	if err := pe.SetCoefficient(1.5); err == nil {
		t.Error("expected error for coefficient >= 1")
	}
	if err := pe.SetCoefficient(0.95); err != nil {
		t.Errorf("SetCoefficient(0.95): %v", err)
	}
	if pe.GetCoefficient() != 0.95 {
		t.Errorf("coefficient = %f, want 0.95", pe.GetCoefficient())
	}
}

// twoToneSignal mixes a low and a high tone at 16 kHz
func twoToneSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := 0; i < n; i++ {
		ts := float64(i) / 16000.0
		signal[i] = math.Sin(2*math.Pi*1000*ts) + math.Sin(2*math.Pi*6000*ts)
	}
	return signal
}

// binPower computes the power spectrum of a signal for bin inspection
func binPower(t *testing.T, signal []float64) []float64 {
	t.Helper()
	power, err := spectral.NewPowerSpectrum().Compute(signal)
	if err != nil {
		t.Fatalf("power spectrum: %v", err)
	}
	return power
}

func TestLowPassRemovesHighTone(t *testing.T) {
	sf := NewSpectralFilter()
	signal := twoToneSignal(512)

	// 4 kHz cutoff at 16 kHz sampling = 0.25 normalized
	filtered, err := sf.LowPass(signal, 0.25)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	if len(filtered) != len(signal) {
		t.Fatalf("len = %d, want %d", len(filtered), len(signal))
	}

	power := binPower(t, filtered)
	lowBin := 1000 * 512 / 16000  // 32
	highBin := 6000 * 512 / 16000 // 192

	if power[lowBin] < 1e-3 {
		t.Errorf("low tone attenuated: power[%d] = %g", lowBin, power[lowBin])
	}
	if power[highBin] > power[lowBin]*1e-6 {
		t.Errorf("high tone survived: power[%d] = %g vs power[%d] = %g",
			highBin, power[highBin], lowBin, power[lowBin])
	}
}

func TestHighPassRemovesLowTone(t *testing.T) {
	sf := NewSpectralFilter()
	signal := twoToneSignal(512)

	filtered, err := sf.HighPass(signal, 0.25)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}

	power := binPower(t, filtered)
	lowBin := 1000 * 512 / 16000
	highBin := 6000 * 512 / 16000

	if power[highBin] < 1e-3 {
		t.Errorf("high tone attenuated: power[%d] = %g", highBin, power[highBin])
	}
	if power[lowBin] > power[highBin]*1e-6 {
		t.Errorf("low tone survived: power[%d] = %g vs power[%d] = %g",
			lowBin, power[lowBin], highBin, power[highBin])
	}
}

func TestSpectralFilterPadsOddLengths(t *testing.T) {
	sf := NewSpectralFilter()
	// 400 samples is not a power of two; the filter pads internally and
	// returns the original length
	filtered, err := sf.LowPass(twoToneSignal(400), 0.25)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	if len(filtered) != 400 {
		t.Errorf("len = %d, want 400", len(filtered))
	}
}

func TestSpectralFilterCutoffValidation(t *testing.T) {
	sf := NewSpectralFilter()
	if _, err := sf.LowPass(twoToneSignal(64), -0.1); err == nil {
		t.Error("expected error for negative cutoff")
	}
	if _, err := sf.HighPass(twoToneSignal(64), 0.6); err == nil {
		t.Error("expected error for cutoff above Nyquist")
	}
}
