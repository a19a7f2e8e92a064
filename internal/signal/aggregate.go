package signal

import (
	"fmt"
	"math"
	"time"

	"signaljob/internal/config"
	"signaljob/internal/model"
)

// Aggregate reduces a signal series into the summary record. rows is
// the full dataset length including the warmup prefix. The rate is
// rounded to 4 decimal places. A series with no evaluable rows (window
// larger than the dataset) is a reportable error, not a zero rate.
func Aggregate(s *Series, cfg *config.Config, rows int, elapsed time.Duration) (*model.RunMetrics, error) {
	evaluable := s.Evaluable()
	if evaluable == 0 {
		return nil, fmt.Errorf("no evaluable rows: window %d exceeds %d data rows", s.Window, rows)
	}

	rate := float64(s.Positives()) / float64(evaluable)

	latency := elapsed.Milliseconds()
	if latency < 0 {
		latency = 0
	}

	return &model.RunMetrics{
		Version:       cfg.Version,
		RowsProcessed: rows,
		Metric:        "signal_rate",
		Value:         math.Round(rate*1e4) / 1e4,
		LatencyMS:     latency,
		Seed:          cfg.Seed,
		Status:        "success",
	}, nil
}
