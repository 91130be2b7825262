package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// GetInt returns the integer stored under key, or 0 if the key was never set.
func (s *Store) GetInt(key string) (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM kv WHERE name = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, nil
}

// RaiseInt stores value under key unless a larger value is already there,
// and returns the stored value. The comparison happens inside one statement.
func (s *Store) RaiseInt(key string, value int) (int, error) {
	var stored int
	err := s.db.QueryRow(
		`INSERT INTO kv (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			value = MAX(kv.value, excluded.value),
			updated_at = CURRENT_TIMESTAMP
		 RETURNING value`,
		key, value,
	).Scan(&stored)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return stored, nil
}

// DeleteKey removes key. Deleting a missing key is not an error.
func (s *Store) DeleteKey(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE name = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Memory keeps values for the life of the process. It stands in for the
// database when it cannot be opened.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// GetInt returns the value under key, or 0.
func (m *Memory) GetInt(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// RaiseInt stores value under key if it beats the current value.
func (m *Memory) RaiseInt(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value > m.values[key] {
		m.values[key] = value
	}
	return m.values[key], nil
}
