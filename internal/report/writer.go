package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"signaljob/internal/model"
)

// Writer serializes the terminal artifact of a run to a JSON file.
// Every run writes exactly one document, success or error.
type Writer struct {
	path string
	echo io.Writer
}

// NewWriter returns a Writer targeting path. When echo is non-nil the
// final document is also copied there (stdout in the real job).
func NewWriter(path string, echo io.Writer) *Writer {
	return &Writer{path: path, echo: echo}
}

// WriteSuccess emits the 7-field success document.
func (w *Writer) WriteSuccess(m *model.RunMetrics) error {
	return w.write(m)
}

// WriteError emits the 3-field error document. version comes from the
// loaded config, or "unknown" when config never loaded.
func (w *Writer) WriteError(version, message string) error {
	return w.write(&model.ErrorReport{
		Version:      version,
		Status:       "error",
		ErrorMessage: message,
	})
}

func (w *Writer) write(doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if w.echo != nil {
		_, _ = w.echo.Write(data)
	}
	return nil
}
