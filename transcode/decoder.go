package transcode

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/Andrewmet1/voiceguard-dsp/logging"
)

// AudioData represents decoded audio data
type AudioData struct {
	PCM        []float64     `json:"-"` // Mono PCM in [-1, 1]
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"` // Channel count of the source, before downmix
	BitDepth   int           `json:"bit_depth"`
	Duration   time.Duration `json:"duration"`
}

// DecodeWAVFile decodes a WAV file into mono float64 PCM.
// Multi-channel sources are downmixed by averaging; integer samples are
// normalized to [-1, 1]. Compressed formats are the recording/import
// collaborator's problem, not this package's.
func DecodeWAVFile(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return data, nil
}

// DecodeWAV decodes WAV content from a seekable reader
func DecodeWAV(r io.ReadSeeker) (*AudioData, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("no PCM data")
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	bitDepth := int(decoder.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}

	pcm := downmix(buf.Data, channels, 1.0/float64(int64(1)<<(bitDepth-1)))

	sampleRate := buf.Format.SampleRate
	duration := time.Duration(float64(len(pcm)) / float64(sampleRate) * float64(time.Second))

	logging.Debug("decoded WAV", logging.Fields{
		"sample_rate": sampleRate,
		"channels":    channels,
		"bit_depth":   bitDepth,
		"samples":     len(pcm),
		"duration":    duration.String(),
	})

	return &AudioData{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
		Duration:   duration,
	}, nil
}

// downmix converts interleaved integer samples to mono float64,
// averaging across channels and scaling into [-1, 1]
func downmix(data []int, channels int, scale float64) []float64 {
	numFrames := len(data) / channels
	pcm := make([]float64, numFrames)

	for i := 0; i < numFrames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(data[i*channels+c])
		}
		pcm[i] = sum / float64(channels) * scale
	}
	return pcm
}
