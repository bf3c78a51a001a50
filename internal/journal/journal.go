// Package journal keeps an optional SQLite history of evaluation runs,
// for answering "why has the gate been failing all week". It is only
// opened when enabled in config; the default verdict path writes nothing.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"powerful/internal/check"
)

// Journal wraps the history database.
type Journal struct {
	db *sql.DB
}

// Entry is one recorded evaluation.
type Entry struct {
	ID     string
	At     time.Time
	Code   int
	Reason string
	SSID   string
}

// Open creates or opens the history database at path. Enables WAL mode
// and a 5-second busy timeout.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return j, nil
}

// Close cleanly shuts down the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id     TEXT PRIMARY KEY,
		at     INTEGER NOT NULL,
		code   INTEGER NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		ssid   TEXT NOT NULL DEFAULT ''
	)`
	if _, err := j.db.Exec(schema); err != nil {
		return err
	}
	_, err := j.db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_at ON runs(at)`)
	return err
}

// Record appends one evaluation result.
func (j *Journal) Record(res check.Result) error {
	_, err := j.db.Exec(
		`INSERT INTO runs (id, at, code, reason, ssid) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().Unix(), res.Code, res.Reason, res.SSID,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, at, code, reason, ssid FROM runs ORDER BY at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &at, &e.Code, &e.Reason, &e.SSID); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.At = time.Unix(at, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
