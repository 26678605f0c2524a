// Package storage provides SQLite-based persistence for completed round
// times. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundEntry represents a single completed round. Times are stored as
// integer milliseconds; lower is better.
type RoundEntry struct {
	ID        int64
	RuleID    string
	Millis    int64
	CreatedAt time.Time
}

// Duration returns the round time as a time.Duration.
func (e RoundEntry) Duration() time.Duration {
	return time.Duration(e.Millis) * time.Millisecond
}

// RuleStats contains aggregated statistics for one rule set.
type RuleStats struct {
	RuleID     string
	Rounds     int
	BestMillis int64
	AvgMillis  float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rule_id TEXT NOT NULL,
			millis INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_rule_id ON rounds(rule_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_fastest ON rounds(rule_id, millis ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a completed round for the given rule set.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(ruleID string, elapsed time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (rule_id, millis) VALUES (?, ?)",
		ruleID, elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the N fastest rounds for the given rule set.
// Results are ordered by time ascending (fastest first).
func (s *Store) TopRounds(ruleID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, rule_id, millis, created_at
		 FROM rounds
		 WHERE rule_id = ?
		 ORDER BY millis ASC
		 LIMIT ?`,
		ruleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RuleID, &e.Millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTime returns the fastest round for the given rule set.
// Returns 0 if no rounds exist.
func (s *Store) BestTime(ruleID string) (time.Duration, error) {
	var millis sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(millis) FROM rounds WHERE rule_id = ?",
		ruleID,
	).Scan(&millis)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !millis.Valid {
		return 0, nil
	}

	return time.Duration(millis.Int64) * time.Millisecond, nil
}

// ClearRounds deletes all rounds for the given rule set.
func (s *Store) ClearRounds(ruleID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE rule_id = ?", ruleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// GetRuleStats retrieves aggregated statistics for one rule set.
func (s *Store) GetRuleStats(ruleID string) (*RuleStats, error) {
	stats := &RuleStats{RuleID: ruleID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(millis), 0), COALESCE(AVG(millis), 0)
		 FROM rounds WHERE rule_id = ?`,
		ruleID,
	).Scan(&stats.Rounds, &stats.BestMillis, &stats.AvgMillis)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get rule stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE rule_id = ? ORDER BY created_at DESC LIMIT 1`,
		ruleID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
