package feature

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/Andrewmet1/voiceguard-dsp/algorithms/common"
	"github.com/Andrewmet1/voiceguard-dsp/algorithms/spectral"
	"github.com/Andrewmet1/voiceguard-dsp/algorithms/windowing"
)

// logEpsilon floors the power spectrum before the logarithm so silent
// frames produce finite coefficients instead of log(0).
const logEpsilon = 1e-6

// basisCache memoizes cosine basis matrices keyed by numBins. The
// matrices are immutable after construction and shared across extractor
// instances and worker goroutines.
var basisCache = struct {
	sync.Mutex
	m map[int][][]float64
}{m: make(map[int][][]float64)}

// cosineBasis returns the numBins x numBins cosine projection basis with
// basis[k][n] = cos(2k(n+1)π / (2*numBins)), a DCT-II-like kernel. Rows
// are indexed by output coefficient so a projection is a row dot product.
func cosineBasis(numBins int) [][]float64 {
	basisCache.Lock()
	defer basisCache.Unlock()

	if basis, ok := basisCache.m[numBins]; ok {
		return basis
	}

	basis := make([][]float64, numBins)
	for k := 0; k < numBins; k++ {
		basis[k] = make([]float64, numBins)
		for n := 0; n < numBins; n++ {
			basis[k][n] = math.Cos(2 * float64(k) * float64(n+1) * math.Pi / (2 * float64(numBins)))
		}
	}

	basisCache.m[numBins] = basis
	return basis
}

// CepstralExtractor turns fixed-length frames into cepstral coefficient
// vectors: Hamming window, zero-pad to the transform size, power
// spectrum, log, cosine projection, keep the first numCoefficients
// values.
//
// Frames are processed in batches purely for throughput; batches are
// independent and the batch size never changes the numbers a frame
// produces.
type CepstralExtractor struct {
	frameLength     int
	fftSize         int
	numCoefficients int
	batchSize       int
	numBins         int

	window *windowing.Hamming
	power  *spectral.PowerSpectrum
	basis  [][]float64
}

// NewCepstralExtractor creates an extractor. fftSize must be a power of
// two and at least frameLength; frames shorter than fftSize are
// zero-padded before transforming.
func NewCepstralExtractor(frameLength, fftSize, numCoefficients, batchSize int) (*CepstralExtractor, error) {
	if frameLength <= 0 {
		return nil, fmt.Errorf("frame length must be positive, got %d", frameLength)
	}
	if !common.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("fft size must be a power of two, got %d", fftSize)
	}
	if fftSize < frameLength {
		return nil, fmt.Errorf("fft size (%d) must be at least frame length (%d)", fftSize, frameLength)
	}
	numBins := fftSize/2 + 1
	if numCoefficients <= 0 || numCoefficients > numBins {
		return nil, fmt.Errorf("num coefficients must be in [1, %d], got %d", numBins, numCoefficients)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	return &CepstralExtractor{
		frameLength:     frameLength,
		fftSize:         fftSize,
		numCoefficients: numCoefficients,
		batchSize:       batchSize,
		numBins:         numBins,
		window:          windowing.NewHamming(frameLength),
		power:           spectral.NewPowerSpectrum(),
		basis:           cosineBasis(numBins),
	}, nil
}

// Extract computes coefficient vectors for a batch of frames. Every
// frame must have exactly the configured frame length. Rows of the
// result follow the input frame order regardless of how batches are
// scheduled; on any failure no partial matrix is returned.
func (ce *CepstralExtractor) Extract(frames [][]float64) ([][]float64, error) {
	if len(frames) == 0 {
		return [][]float64{}, nil
	}

	numBatches := (len(frames) + ce.batchSize - 1) / ce.batchSize
	coefficients := make([][]float64, len(frames))

	type batchJob struct {
		start, end int
	}
	jobs := make(chan batchJob, numBatches)

	numWorkers := min(runtime.NumCPU(), numBatches)

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				for i := job.start; i < job.end; i++ {
					row, err := ce.extractFrame(frames[i])
					if err != nil {
						errOnce.Do(func() {
							firstErr = fmt.Errorf("frame %d: %w", i, err)
						})
						return
					}
					coefficients[i] = row
				}
			}
		}()
	}

	for b := 0; b < numBatches; b++ {
		start := b * ce.batchSize
		jobs <- batchJob{
			start: start,
			end:   min(start+ce.batchSize, len(frames)),
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return coefficients, nil
}

// extractFrame runs the per-frame pipeline: window, pad, power spectrum,
// log, cosine projection.
func (ce *CepstralExtractor) extractFrame(frame []float64) ([]float64, error) {
	windowed, err := ce.window.Apply(frame)
	if err != nil {
		return nil, err
	}

	power, err := ce.power.Compute(common.PadTo(windowed, ce.fftSize))
	if err != nil {
		return nil, err
	}

	logPower := make([]float64, len(power))
	for i, p := range power {
		logPower[i] = math.Log(p + logEpsilon)
	}

	// Only the retained rows of the basis are projected; the remaining
	// outputs would be discarded anyway
	row := make([]float64, ce.numCoefficients)
	for k := range row {
		row[k] = common.Dot(ce.basis[k], logPower)
	}
	return row, nil
}

// NumCoefficients returns how many coefficients each frame yields
func (ce *CepstralExtractor) NumCoefficients() int {
	return ce.numCoefficients
}
