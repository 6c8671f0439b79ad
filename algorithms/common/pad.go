package common

import "math/bits"

// IsPowerOfTwo checks if n is a power of 2 using bit manipulation.
// Powers of 2 have exactly one bit set, so (n & (n-1)) == 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo returns the next power of 2 >= size.
// For exact powers of 2 the same value is returned; the size-1
// subtraction is what keeps 8 from becoming 16.
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}
	return 1 << bits.Len64(uint64(size-1))
}

// PadTo returns signal right-padded with zeros to exactly size samples.
// A signal already at least size samples long is returned truncated to
// size. The result is always a fresh slice; the input is never modified.
//
// The cepstral path depends on this: analysis frames are 400 samples but
// the transform operates on 512, and the gap is bridged here rather than
// implicitly inside the transform.
func PadTo(signal []float64, size int) []float64 {
	padded := make([]float64, size)
	copy(padded, signal)
	return padded
}
