package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions used across algorithms using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}
	return stat.Mean(x, nil)
}

// Variance calculates the sample variance of a slice using gonum
func Variance(x []float64) float64 {
	if len(x) < 2 {
		return 0.0
	}
	return stat.Variance(x, nil)
}

// StdDev calculates the sample standard deviation of a slice
func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Sum calculates the sum of all elements using gonum
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}
	return floats.Sum(x)
}

// Max returns the maximum value in a slice
func Max(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}
	return floats.Max(x)
}

// Min returns the minimum value in a slice
func Min(x []float64) float64 {
	if len(x) == 0 {
		return 0.0
	}
	return floats.Min(x)
}

// Dot computes the dot product of two equal-length slices using gonum
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// AllFinite reports whether every element is a finite number (no NaN/Inf)
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
