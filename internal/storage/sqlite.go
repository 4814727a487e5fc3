// Package storage keeps the results of the rounds played in this session.
// It uses an in-memory SQLite database through the pure-Go modernc.org/sqlite
// driver; nothing is written to disk and the data is gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored for a finished round.
const (
	OutcomeWin      = "win"
	OutcomeGameOver = "game_over"
	OutcomeQuit     = "quit"
)

// Store manages the in-memory database of session results.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID        int64
	Variant   string
	Outcome   string
	Score     int
	Blocks    int // Blocks cleared
	Ticks     int
	Duration  time.Duration
	CreatedAt time.Time
}

// VariantStats summarises all rounds of one variant.
type VariantStats struct {
	Variant   string
	Rounds    int
	Wins      int
	BestScore int
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Test connection
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			blocks INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			created_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant, score DESC);
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

// SaveResult records a finished round. A zero CreatedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO results (variant, outcome, score, blocks, ticks, duration_ns, created_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Variant, r.Outcome, r.Score, r.Blocks, r.Ticks, int64(r.Duration), r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Results returns the most recent rounds, newest first.
func (s *Store) Results(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, outcome, score, blocks, ticks, duration_ns, created_ns
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var durNS, createdNS int64
		if err := rows.Scan(&r.ID, &r.Variant, &r.Outcome, &r.Score, &r.Blocks, &r.Ticks, &durNS, &createdNS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durNS)
		r.CreatedAt = time.Unix(0, createdNS)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Best returns the highest score recorded for the variant, or 0 if none.
func (s *Store) Best(variant string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE variant = ?",
		variant,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats returns per-variant totals ordered by variant name.
func (s *Store) Stats() ([]VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), MAX(score)
		 FROM results
		 GROUP BY variant
		 ORDER BY variant`,
		OutcomeWin,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var out []VariantStats
	for rows.Next() {
		var v VariantStats
		if err := rows.Scan(&v.Variant, &v.Rounds, &v.Wins, &v.BestScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
