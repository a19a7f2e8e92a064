package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"signaljob/internal/pipeline"
	"signaljob/internal/recorder"
)

var (
	inputPath  string
	configPath string
	outputPath string
	logPath    string
	historyDB  string
)

var rootCmd = &cobra.Command{
	Use:   "signaljob",
	Short: "Compute a rolling-mean signal summary from OHLCV data",
	Long: `signaljob reads one OHLCV CSV file, derives a binary signal per row by
comparing each close to its trailing rolling mean, and writes a single
JSON summary document plus a timestamped log.

Example:
  signaljob --input data/prices.csv --config config.yaml \
            --output out/metrics.json --log-file out/run.log`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the OHLCV CSV file")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the YAML config file")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path of the JSON result document")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "path of the run log")
	rootCmd.Flags().StringVar(&historyDB, "history-db", "", "optional SQLite database recording run history")

	for _, name := range []string{"input", "config", "output", "log-file"} {
		if err := rootCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        logFile,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	var rec recorder.Recorder = recorder.NewNoop()
	if historyDB != "" {
		sr, err := recorder.NewSQLite(historyDB)
		if err != nil {
			logger.Warn().Err(err).Msg("open history db failed, continuing without run history")
		} else {
			rec = sr
			defer sr.Close()
		}
	}

	return pipeline.Run(logger, pipeline.Options{
		ConfigPath: configPath,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Recorder:   rec,
		Echo:       cmd.OutOrStdout(),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
