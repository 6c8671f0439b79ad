package feature

import (
	"fmt"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/common"
)

// Framer splits a continuous waveform into fixed-length overlapping
// frames. Frames start at offsets 0, step, 2*step, ... for every start
// offset inside the signal; the final frame is zero-padded on the right
// so every frame has exactly frameLength samples. Nothing is dropped or
// truncated, which keeps the frame count at ceil(len(signal)/frameStep).
type Framer struct {
	frameLength int
	frameStep   int
}

// NewFramer creates a framer. frameStep may be smaller than frameLength
// for overlapping frames.
func NewFramer(frameLength, frameStep int) (*Framer, error) {
	if frameLength <= 0 {
		return nil, fmt.Errorf("frame length must be positive, got %d", frameLength)
	}
	if frameStep <= 0 {
		return nil, fmt.Errorf("frame step must be positive, got %d", frameStep)
	}
	return &Framer{
		frameLength: frameLength,
		frameStep:   frameStep,
	}, nil
}

// Frame splits the signal into frames. Each returned frame is a fresh
// slice; the input is only read.
func (f *Framer) Frame(signal []float64) [][]float64 {
	if len(signal) == 0 {
		return [][]float64{}
	}

	frames := make([][]float64, 0, f.NumFrames(len(signal)))
	for start := 0; start < len(signal); start += f.frameStep {
		end := start + f.frameLength
		if end > len(signal) {
			end = len(signal)
		}
		// PadTo also handles the common case of a full frame
		frames = append(frames, common.PadTo(signal[start:end], f.frameLength))
	}
	return frames
}

// NumFrames returns the number of frames Frame will produce for a signal
// of the given length: ceil(signalLength / frameStep).
func (f *Framer) NumFrames(signalLength int) int {
	if signalLength <= 0 {
		return 0
	}
	return (signalLength + f.frameStep - 1) / f.frameStep
}

// FrameLength returns the configured frame length
func (f *Framer) FrameLength() int {
	return f.frameLength
}

// FrameStep returns the configured frame step
func (f *Framer) FrameStep() int {
	return f.frameStep
}
