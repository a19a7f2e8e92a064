package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signaljob/internal/config"
	"signaljob/internal/model"
)

func testCfg() *config.Config {
	return &config.Config{Seed: 42, Window: 3, Version: "v1"}
}

func TestAggregate_Success(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2, 3, 4, 5}}
	s, err := Derive(ds, 3)
	require.NoError(t, err)

	m, err := Aggregate(s, testCfg(), ds.Len(), 25*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, "v1", m.Version)
	assert.Equal(t, 5, m.RowsProcessed)
	assert.Equal(t, "signal_rate", m.Metric)
	assert.Equal(t, 1.0, m.Value)
	assert.Equal(t, int64(25), m.LatencyMS)
	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, "success", m.Status)
}

func TestAggregate_RateWithinBounds(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{5, 1, 4, 2, 6, 3, 7}}
	s, err := Derive(ds, 2)
	require.NoError(t, err)

	m, err := Aggregate(s, testCfg(), ds.Len(), time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Value, 0.0)
	assert.LessOrEqual(t, m.Value, 1.0)
}

func TestAggregate_RoundsToFourDecimals(t *testing.T) {
	// 1 positive out of 3 evaluable rows: 0.3333...
	ds := &model.Dataset{Closes: []float64{2, 2, 2, 2, 3}}
	s, err := Derive(ds, 3)
	require.NoError(t, err)

	m, err := Aggregate(s, testCfg(), ds.Len(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.3333, m.Value)
}

func TestAggregate_WindowEqualsRows(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2, 3}}
	cfg := &config.Config{Seed: 1, Window: 3, Version: "v1"}
	s, err := Derive(ds, cfg.Window)
	require.NoError(t, err)

	m, err := Aggregate(s, cfg, ds.Len(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, m.RowsProcessed)
	assert.Equal(t, 1.0, m.Value) // single evaluable row, 3 > mean 2
}

func TestAggregate_NoEvaluableRows(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2}}
	s, err := Derive(ds, 5)
	require.NoError(t, err)

	_, err = Aggregate(s, testCfg(), ds.Len(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no evaluable rows")
}

func TestAggregate_LatencyNeverNegative(t *testing.T) {
	ds := &model.Dataset{Closes: []float64{1, 2}}
	s, err := Derive(ds, 1)
	require.NoError(t, err)

	m, err := Aggregate(s, testCfg(), ds.Len(), -time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.LatencyMS)
}
