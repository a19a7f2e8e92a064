package pipeline

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"signaljob/internal/config"
	"signaljob/internal/dataset"
	"signaljob/internal/recorder"
	"signaljob/internal/report"
	"signaljob/internal/signal"
)

// Options carries the paths and collaborators for one run.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string

	// Recorder persists run history; nil means no recording.
	Recorder recorder.Recorder
	// Echo receives a copy of the final JSON document; nil disables.
	Echo io.Writer
}

// Run executes the whole pipeline once: load config, load data, derive
// signals, aggregate metrics, write the result. Every failure except a
// failed write still produces a JSON error document at OutputPath. The
// returned error is nil only on the full success path.
func Run(log zerolog.Logger, opts Options) error {
	start := time.Now()
	writer := report.NewWriter(opts.OutputPath, opts.Echo)
	rec := opts.Recorder
	if rec == nil {
		rec = recorder.NewNoop()
	}

	// Version for the error document before config is available.
	version := "unknown"

	log.Info().Msg("job started")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fail(log, writer, version, wrap(KindConfig, err))
	}
	version = cfg.Version
	log.Info().
		Int64("seed", cfg.Seed).
		Int("window", cfg.Window).
		Str("version", cfg.Version).
		Msg("config loaded")

	ds, err := dataset.Load(opts.InputPath)
	if err != nil {
		return fail(log, writer, version, wrap(KindData, err))
	}
	log.Info().Int("rows", ds.Len()).Msg("data loaded")

	series, err := signal.Derive(ds, cfg.Window)
	if err != nil {
		return fail(log, writer, version, wrap(KindConfig, err))
	}
	log.Info().Int("window", cfg.Window).Msg("rolling mean calculated")
	log.Info().Msg("signals generated")

	metrics, err := signal.Aggregate(series, cfg, ds.Len(), time.Since(start))
	if err != nil {
		return fail(log, writer, version, wrap(KindMetrics, err))
	}

	if err := writer.WriteSuccess(metrics); err != nil {
		log.Error().Err(err).Msg("write result failed")
		return wrap(KindWrite, err)
	}
	if err := rec.RecordRun(metrics); err != nil {
		log.Warn().Err(err).Msg("record run history failed")
	}

	log.Info().
		Float64("signal_rate", metrics.Value).
		Int("rows_processed", metrics.RowsProcessed).
		Msg("metrics written")
	log.Info().Int64("latency_ms", metrics.LatencyMS).Msg("job completed successfully")
	return nil
}

// fail converts a stage failure into the JSON error document and
// returns the original error. If even the error document cannot be
// written the run is aborted with KindWrite.
func fail(log zerolog.Logger, w *report.Writer, version string, perr *Error) error {
	log.Error().Str("kind", string(perr.Kind)).Err(perr.Err).Msg("pipeline stage failed")
	if werr := w.WriteError(version, perr.Err.Error()); werr != nil {
		log.Error().Err(werr).Msg("write error record failed")
		return wrap(KindWrite, werr)
	}
	return perr
}
