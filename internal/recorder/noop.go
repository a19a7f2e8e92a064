package recorder

import "signaljob/internal/model"

// Noop is a no-op implementation used when no history database is
// configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordRun(_ *model.RunMetrics) error { return nil }
func (n *Noop) Close() error                        { return nil }
