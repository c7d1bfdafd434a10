// Package sqlite persists question-bank collections in a single SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wordplay/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.Store using SQLite. Each collection is one row
// holding its serialized JSON array.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements Store
var (
	_ ports.Store       = (*Store)(nil)
	_ ports.Timestamped = (*Store)(nil)
)

// Open opens (or creates) the database at path. An empty path selects
// DefaultPath().
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS collections (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wordplay", "bank.db")
}

// Path returns the database file in use
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// checkSchema stamps a fresh database and refuses one written by a newer layout
func (s *Store) checkSchema() error {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
		if err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to read metadata: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("unsupported schema version %q (want %s)", version, schemaVersion)
	}
	return nil
}

// Load returns the stored collection, or nil if it was never written
func (s *Store) Load(c ports.Collection) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, string(c)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c, err)
	}
	return []byte(value), nil
}

// Save writes every collection inside one transaction
func (s *Store) Save(data map[ports.Collection][]byte) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	for c, value := range data {
		if err := tx.put(c, value, now); err != nil {
			tx.rollback()
			return fmt.Errorf("failed to save %s: %w", c, err)
		}
	}
	if err := tx.commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// UpdatedAt reports when a collection was last written; zero if never
func (s *Store) UpdatedAt(c ports.Collection) (time.Time, error) {
	var millis int64
	err := s.db.QueryRow(`SELECT updated_at FROM collections WHERE key = ?`, string(c)).Scan(&millis)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
