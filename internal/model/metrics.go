package model

// RunMetrics is the terminal success artifact of one job run.
// Field order matches the emitted JSON document.
type RunMetrics struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMS     int64   `json:"latency_ms"`
	Seed          int64   `json:"seed"`
	Status        string  `json:"status"`
}

// ErrorReport is the terminal artifact when any pipeline stage fails.
type ErrorReport struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}
