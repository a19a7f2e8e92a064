package signal

import (
	"signaljob/internal/calculator"
	"signaljob/internal/model"
)

// Undefined marks rows inside the warmup prefix, where fewer than
// window observations exist and no signal can be derived.
const Undefined = -1

// Series holds the per-row signal aligned with the input dataset.
// Each value is 1 (close above its rolling mean), 0 (at or below), or
// Undefined.
type Series struct {
	Window int
	Values []int
}

// Derive computes the rolling-mean signal for every row. A row signals
// 1 only when its close strictly exceeds the trailing mean; ties go
// to 0. Output depends on nothing but the dataset and the window.
func Derive(ds *model.Dataset, window int) (*Series, error) {
	means, err := calculator.RollingMean(ds.Closes, window)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(ds.Closes))
	for i, c := range ds.Closes {
		if i < window-1 {
			values[i] = Undefined
			continue
		}
		if c > means[i] {
			values[i] = 1
		} else {
			values[i] = 0
		}
	}
	return &Series{Window: window, Values: values}, nil
}

// Evaluable returns the number of rows with a defined signal.
func (s *Series) Evaluable() int {
	n := 0
	for _, v := range s.Values {
		if v != Undefined {
			n++
		}
	}
	return n
}

// Positives returns the number of rows signalling 1.
func (s *Series) Positives() int {
	n := 0
	for _, v := range s.Values {
		if v == 1 {
			n++
		}
	}
	return n
}
