// Package storage provides the SQLite round journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN keeps the journal inside the process. Nothing survives exit.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection for the round journal.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID           int64
	Score        int
	Best         int // High score after this round was settled
	NewRecord    bool
	Cause        string
	Ticks        int
	PipesSpawned int // Pairs spawned in the session so far
	EndedAt      time.Time
}

// Summary aggregates every round in the journal.
type Summary struct {
	Rounds   int
	Best     int
	AvgScore float64
}

// Open creates or opens the journal. dsn is either MemoryDSN, a file: URI,
// or a path; for plain paths the parent directories are created and a
// leading ~ is expanded.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	inMemory := dsn == MemoryDSN
	if !inMemory && !strings.HasPrefix(dsn, "file:") {
		// Expand ~ to home directory
		if dsn[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}

		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

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
			score INTEGER NOT NULL,
			best INTEGER NOT NULL,
			new_record INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			pipes_spawned INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
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

// SaveRound records a finished round and returns its ID.
// ID and EndedAt are assigned by the database.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.Score < 0 || r.Best < r.Score {
		return 0, fmt.Errorf("storage: inconsistent round: score %d, best %d", r.Score, r.Best)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (score, best, new_record, cause, ticks, pipes_spawned)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Best, r.NewRecord, r.Cause, r.Ticks, r.PipesSpawned,
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

// RecentRounds returns the last rounds played, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	return s.queryRounds("ORDER BY id DESC", limit)
}

// TopRounds returns the best rounds. Ties go to the earlier round.
func (s *Store) TopRounds(limit int) ([]RoundRecord, error) {
	return s.queryRounds("ORDER BY score DESC, id ASC", limit)
}

func (s *Store) queryRounds(order string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, best, new_record, cause, ticks, pipes_spawned, ended_at
		 FROM rounds `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Best, &r.NewRecord, &r.Cause,
			&r.Ticks, &r.PipesSpawned, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = parseTime(endedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary returns aggregate statistics for the journal.
// An empty journal yields the zero Summary.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0) FROM rounds`,
	).Scan(&sum.Rounds, &sum.Best, &sum.AvgScore)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	return sum, nil
}

// LastRound returns the most recent round, or sql.ErrNoRows if the journal
// is empty.
func (s *Store) LastRound() (RoundRecord, error) {
	records, err := s.RecentRounds(1)
	if err != nil {
		return RoundRecord{}, err
	}
	if len(records) == 0 {
		return RoundRecord{}, fmt.Errorf("storage: no rounds: %w", sql.ErrNoRows)
	}
	return records[0], nil
}

// IsEmpty reports whether err means the journal had nothing to return.
func IsEmpty(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// parseTime handles both time.Time and the string forms SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
