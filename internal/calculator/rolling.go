package calculator

import (
	"errors"
	"math"
)

// RollingMean computes the trailing simple moving average of values
// over the given window. result[i] is the mean of values[i-window+1..i]
// inclusive; the first window-1 entries are NaN (insufficient history).
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	means := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			means[i] = sum / float64(window)
		} else {
			means[i] = math.NaN()
		}
	}
	return means, nil
}
