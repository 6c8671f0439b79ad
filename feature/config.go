package feature

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/common"
	"github.com/Andrewmet1/voiceguard-dsp/algorithms/filters"
)

// Config holds the fixed extraction parameters. The defaults are the
// ones the voice-authenticity classifier was trained against and must be
// reproduced exactly for its scores to mean anything; they are
// configurable for experimentation, not for production tuning.
type Config struct {
	// SampleRate is the assumed input rate used to derive frame timing
	SampleRate int `yaml:"sample_rate" json:"sample_rate"`

	// FrameLength is the number of samples per analysis frame
	// (400 = 25 ms at 16 kHz)
	FrameLength int `yaml:"frame_length" json:"frame_length"`

	// FrameStep is the number of samples between frame starts
	// (160 = 10 ms at 16 kHz)
	FrameStep int `yaml:"frame_step" json:"frame_step"`

	// FFTSize is the transform size for spectral analysis. Must be a
	// power of two and at least FrameLength; frames are zero-padded up
	// to it.
	FFTSize int `yaml:"fft_size" json:"fft_size"`

	// NumCoefficients is the number of cepstral coefficients retained
	// per frame
	NumCoefficients int `yaml:"num_coefficients" json:"num_coefficients"`

	// PreEmphasis is the pre-emphasis coefficient applied to the
	// waveform before framing
	PreEmphasis float64 `yaml:"pre_emphasis" json:"pre_emphasis"`

	// BatchSize bounds how many frames a worker processes at a time.
	// Purely a throughput/memory knob: it never changes the numbers.
	BatchSize int `yaml:"batch_size" json:"batch_size"`
}

// DefaultConfig returns the extraction parameters used by the deployed
// classifier
func DefaultConfig() Config {
	return Config{
		SampleRate:      16000,
		FrameLength:     400,
		FrameStep:       160,
		FFTSize:         512,
		NumCoefficients: 20,
		PreEmphasis:     filters.DefaultPreEmphasisCoefficient,
		BatchSize:       32,
	}
}

// LoadConfig reads a YAML config file, overlaying it on the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.FrameLength <= 0 {
		return fmt.Errorf("frame length must be positive, got %d", c.FrameLength)
	}
	if c.FrameStep <= 0 {
		return fmt.Errorf("frame step must be positive, got %d", c.FrameStep)
	}
	if !common.IsPowerOfTwo(c.FFTSize) {
		return fmt.Errorf("fft size must be a power of two, got %d", c.FFTSize)
	}
	if c.FFTSize < c.FrameLength {
		return fmt.Errorf("fft size (%d) must be at least frame length (%d)", c.FFTSize, c.FrameLength)
	}
	if c.NumCoefficients <= 0 || c.NumCoefficients > c.FFTSize/2+1 {
		return fmt.Errorf("num coefficients must be in [1, %d], got %d", c.FFTSize/2+1, c.NumCoefficients)
	}
	if c.PreEmphasis < 0 || c.PreEmphasis >= 1.0 {
		return fmt.Errorf("pre-emphasis must be in [0, 1), got %f", c.PreEmphasis)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}
