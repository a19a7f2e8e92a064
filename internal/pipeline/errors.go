package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindConfig  Kind = "ConfigError"
	KindData    Kind = "DataError"
	KindMetrics Kind = "MetricsError"
	KindWrite   Kind = "WriteError"
)

// Error tags a stage failure with its kind. The first three kinds are
// converted into an error document at the pipeline boundary; KindWrite
// means the output sink itself failed and only the exit code and log
// can carry the failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the kind of a pipeline error.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}
