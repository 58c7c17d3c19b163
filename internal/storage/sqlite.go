package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const slotsSchema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteSlots stores slots as rows of a single key/value table.
type SQLiteSlots struct {
	db *sql.DB

	mu     sync.Mutex
	closed bool
}

// OpenSQLiteSlots opens (or creates) the slot database at path.
// Use ":memory:" for a throwaway database.
func OpenSQLiteSlots(path string) (*SQLiteSlots, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite slots: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite slots: open: %w", err)
	}
	// A single connection keeps ":memory:" databases consistent and
	// serialises writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite slots: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(slotsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite slots: schema: %w", err)
	}

	return &SQLiteSlots{db: db}, nil
}

func (s *SQLiteSlots) Get(key string) ([]byte, bool, error) {
	if err := s.check(key); err != nil {
		return nil, false, err
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite slots: get %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteSlots) Set(key string, value []byte) error {
	if err := s.check(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("sqlite slots: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteSlots) Remove(key string) error {
	if err := s.check(key); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite slots: remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteSlots) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *SQLiteSlots) check(key string) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return validateKey(key)
}
