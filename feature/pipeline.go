package feature

import (
	"fmt"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/filters"
	"github.com/Andrewmet1/voiceguard-dsp/logging"
)

// Pipeline drives the full feature extraction chain: pre-emphasis,
// framing, cepstral coefficient extraction. It is a pure function of the
// waveform and its configuration; nothing is retained between calls and
// the caller owns the returned matrix outright.
type Pipeline struct {
	config   Config
	framer   *Framer
	cepstral *CepstralExtractor
	logger   logging.Logger
}

// NewPipeline creates a pipeline from a validated configuration
func NewPipeline(config Config) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	framer, err := NewFramer(config.FrameLength, config.FrameStep)
	if err != nil {
		return nil, err
	}

	cepstral, err := NewCepstralExtractor(config.FrameLength, config.FFTSize, config.NumCoefficients, config.BatchSize)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		config:   config,
		framer:   framer,
		cepstral: cepstral,
		logger: logging.WithFields(logging.Fields{
			"component": "feature_pipeline",
		}),
	}, nil
}

// NewDefaultPipeline creates a pipeline with the deployed classifier's
// parameters
func NewDefaultPipeline() *Pipeline {
	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates
		panic(err)
	}
	return p
}

// ExtractFeatures turns a mono waveform into a [numFrames][numCoefficients]
// coefficient matrix with rows in frame order. The waveform is only
// read. On failure no partial matrix is returned; the caller decides
// whether to skip the segment or abort the request.
func (p *Pipeline) ExtractFeatures(waveform []float64, sampleRate int) ([][]float64, error) {
	if len(waveform) == 0 {
		return nil, fmt.Errorf("empty waveform")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if sampleRate != p.config.SampleRate {
		p.logger.Warn("sample rate differs from configured rate, frame timing will be off", logging.Fields{
			"sample_rate": sampleRate,
			"configured":  p.config.SampleRate,
		})
	}

	samples := waveform
	if p.config.PreEmphasis > 0 {
		// A fresh filter per call keeps the pipeline stateless
		samples = filters.NewPreEmphasis(p.config.PreEmphasis).ProcessBuffer(waveform)
	}

	frames := p.framer.Frame(samples)

	coefficients, err := p.cepstral.Extract(frames)
	if err != nil {
		return nil, fmt.Errorf("cepstral extraction: %w", err)
	}

	p.logger.Debug("extracted features", logging.Fields{
		"num_frames":       len(coefficients),
		"num_coefficients": p.config.NumCoefficients,
		"waveform_samples": len(waveform),
	})

	return coefficients, nil
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() Config {
	return p.config
}
