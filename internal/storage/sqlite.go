// Package storage persists the run history and the high score in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no cgo is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL,
	player     TEXT NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS kv (
	name       TEXT PRIMARY KEY,
	value      INTEGER NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

const (
	insertRunSQL = `INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)`

	topRunsSQL = `
SELECT id, game_id, player, score, created_at
FROM scores
WHERE game_id = ?
ORDER BY score DESC, id ASC
LIMIT ?`

	bestRunSQL = `SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`

	statsSQL = `
SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
FROM scores
WHERE game_id = ?`

	clearRunsSQL = `DELETE FROM scores WHERE game_id = ?`
)

// Store is an open scores database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string // SSH user or local username; may be empty
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every run of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open opens the database at dbPath, creating it and its parent
// directories if needed. A leading ~ is expanded to the home directory.
func Open(dbPath string) (*Store, error) {
	path, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; serialize on one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func resolvePath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore appends a finished run and returns its row ID.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	res, err := s.db.Exec(insertRunSQL, gameID, player, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit runs, best first. Equal scores keep the
// order they were recorded in. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(topRunsSQL, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best recorded run, or 0 with no runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	if err := s.db.QueryRow(bestRunSQL, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// ClearScores deletes every run of the game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(clearRunsSQL, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates the runs of the game. LastPlayed is zero with no runs.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(statsSQL, gameID).Scan(
		&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// parseTime accepts driver-native times and SQLite text timestamps.
func parseTime(v any) time.Time {
	var text string
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		text = t
	case []byte:
		text = string(t)
	default:
		return time.Time{}
	}
	for _, layout := range []string{time.DateTime, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
