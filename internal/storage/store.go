package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store is a durable, namespaced key-value store backed by a single SQLite
// table. Each value is a whole-collection payload; every Put is a full
// synchronous overwrite, there is no partial-write or append primitive.
type Store struct {
	db        *sql.DB
	namespace string
	path      string
}

// Open opens (or creates) the store at path. Every key is prefixed with
// namespace so independent stores can share one database file.
func Open(path, namespace string) (*Store, error) {
	if path == "" {
		path = "clinicore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		name  TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}

	log.Debug().
		Str("path", path).
		Str("namespace", namespace).
		Msg("Store opened")

	return &Store{db: db, namespace: namespace, path: path}, nil
}

// key returns the namespaced row key for name.
func (s *Store) key(name string) string {
	return s.namespace + name
}

// Get reads the raw value stored under name. The second return value is
// false when no value exists; that is not an error.
func (s *Store) Get(name string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM state WHERE name = ?`, s.key(name)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read key %s: %w", s.key(name), err)
	}
	return value, true, nil
}

// Put overwrites the value stored under name.
func (s *Store) Put(name string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO state(name, value) VALUES(?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		s.key(name), value,
	)
	if err != nil {
		return fmt.Errorf("write key %s: %w", s.key(name), err)
	}
	return nil
}

// Delete removes the value stored under name. Deleting a missing key is
// not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM state WHERE name = ?`, s.key(name)); err != nil {
		return fmt.Errorf("delete key %s: %w", s.key(name), err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
