package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signaljob/internal/model"
)

func TestDerive_RisingSeries(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2, 3, 4, 5}}

	s, err := Derive(ds, 3)
	require.NoError(t, err)

	// Warmup prefix undefined; each later close exceeds its trailing
	// mean (3>2, 4>3, 5>4).
	assert.Equal(t, []int{Undefined, Undefined, 1, 1, 1}, s.Values)
	assert.Equal(t, 3, s.Evaluable())
	assert.Equal(t, 3, s.Positives())
}

func TestDerive_TieGoesToZero(t *testing.T) {
	// A constant series makes every close exactly equal its mean.
	ds := &model.Dataset{Closes: []float64{2, 2, 2, 2}}

	s, err := Derive(ds, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{Undefined, 0, 0, 0}, s.Values)
	assert.Zero(t, s.Positives())
}

func TestDerive_FallingSeries(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{5, 4, 3, 2, 1}}

	s, err := Derive(ds, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{Undefined, Undefined, 0, 0, 0}, s.Values)
}

func TestDerive_WindowOne(t *testing.T) {
	// With window 1 the mean is the close itself, so every signal is 0.
	ds := &model.Dataset{Closes: []float64{1, 9, 3}}

	s, err := Derive(ds, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, s.Values)
	assert.Equal(t, 3, s.Evaluable())
}

func TestDerive_WindowEqualsRows(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2, 6}}

	s, err := Derive(ds, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Evaluable())
	assert.Equal(t, 1, s.Values[2]) // 6 > mean 3
}

func TestDerive_WindowLargerThanRows(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2}}

	s, err := Derive(ds, 5)
	require.NoError(t, err)
	assert.Zero(t, s.Evaluable())
}

func TestDerive_Deterministic(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{3.3, 1.1, 4.4, 1.5, 9.2, 6.6}}

	a, err := Derive(ds, 4)
	require.NoError(t, err)
	b, err := Derive(ds, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
}

func TestDerive_InvalidWindow(t *testing.T) {
	_, err := Derive(&model.Dataset{Closes: []float64{1}}, 0)
	require.Error(t, err)
}
