package recorder

import "signaljob/internal/model"

// Recorder persists run summaries for later analysis. Recording is
// best-effort: a recorder failure never fails the job itself.
type Recorder interface {
	RecordRun(m *model.RunMetrics) error
	Close() error
}
