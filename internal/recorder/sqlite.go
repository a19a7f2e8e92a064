package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"signaljob/internal/model"
)

// SQLiteRecorder appends one row per run to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (or creates) the history database and runs
// migrations.
func NewSQLite(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_history (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			version        TEXT,
			rows_processed INTEGER,
			signal_rate    REAL,
			latency_ms     INTEGER,
			seed           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_ts ON run_history(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// RecordRun appends one run summary.
func (r *SQLiteRecorder) RecordRun(m *model.RunMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO run_history
		(timestamp, version, rows_processed, signal_rate, latency_ms, seed)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), m.Version, m.RowsProcessed, m.Value, m.LatencyMS, m.Seed,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
