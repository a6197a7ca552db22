// Package index maintains a derived sqlite ledger of session turns under
// the workspace state directory. The markdown transcripts remain the
// source of truth; the ledger only serves fast history queries, and a
// failed ledger write must never fail a chat turn.
package index

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Turn is one ledger row.
type Turn struct {
	ID    string `json:"id"`
	RunID string `json:"run_id"`
	Day   string `json:"day"`
	At    string `json:"at"` // HH:MM:SS
	Role  string `json:"role"`
	Chars int    `json:"chars"`
}

// Init opens (and if needed creates) the ledger at baseDir/turns.db.
// The baseDir parameter lets tests use t.TempDir() instead of a real
// workspace state directory.
func Init(baseDir string) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, "turns.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	_ = os.Chmod(dbPath, 0600)
	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read user_version: %w", err)
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS turns (
		  id      TEXT PRIMARY KEY,
		  run_id  TEXT NOT NULL DEFAULT '',
		  day     TEXT NOT NULL,
		  at      TEXT NOT NULL,
		  role    TEXT NOT NULL,
		  chars   INTEGER NOT NULL,
		  created INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_turns_day ON turns(day);
		CREATE INDEX IF NOT EXISTS idx_turns_run ON turns(run_id);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", CurrentSchemaVersion)); err != nil {
			return fmt.Errorf("failed to set user_version: %w", err)
		}
	}
	return nil
}

// NewTurnID generates a ULID for a ledger row.
func NewTurnID(at time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(at), entropy).String()
}

// RecordTurn inserts one turn row.
func RecordTurn(db *sql.DB, runID string, at time.Time, role string, chars int) error {
	_, err := db.Exec(
		`INSERT INTO turns (id, run_id, day, at, role, chars, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		NewTurnID(at), runID, at.Format("2006-01-02"), at.Format("15:04:05"), role, chars, at.Unix(),
	)
	return err
}

// RecentTurns returns up to limit turns, newest first.
func RecentTurns(db *sql.DB, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT id, run_id, day, at, role, chars FROM turns ORDER BY created DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.RunID, &t.Day, &t.At, &t.Role, &t.Chars); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// RunTurns returns the turns recorded for a single orchestration run,
// oldest first.
func RunTurns(db *sql.DB, runID string) ([]Turn, error) {
	rows, err := db.Query(
		`SELECT id, run_id, day, at, role, chars FROM turns WHERE run_id = ? ORDER BY created ASC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.RunID, &t.Day, &t.At, &t.Role, &t.Chars); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
