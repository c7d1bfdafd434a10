// Package filesystem persists question-bank collections in a JSON file.
package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"wordplay/internal/ports"
)

// Store implements ports.Store with one JSON document mapping each
// collection key to its serialized array. Saves replace the whole file
// through a rename, so readers see either the old or the new document.
type Store struct {
	mu   sync.Mutex
	path string
}

// Ensure Store implements Store
var (
	_ ports.Store       = (*Store)(nil)
	_ ports.Timestamped = (*Store)(nil)
)

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load returns the collection, or nil when the file or key is absent
func (s *Store) Load(c ports.Collection) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[string(c)]
	if !ok {
		return nil, nil
	}
	return []byte(raw), nil
}

// Save merges the given collections into the document and replaces the file
func (s *Store) Save(data map[ports.Collection][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	for c, value := range data {
		if !json.Valid(value) {
			return fmt.Errorf("refusing to save %s: not valid JSON", c)
		}
		doc[string(c)] = json.RawMessage(value)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	return s.replace(out)
}

// UpdatedAt reports the modification time of the document holding c; zero
// if the file or the collection is absent
func (s *Store) UpdatedAt(c ports.Collection) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return time.Time{}, err
	}
	if _, ok := doc[string(c)]; !ok {
		return time.Time{}, nil
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat store: %w", err)
	}
	return info.ModTime(), nil
}

// Close is a no-op; every Save is already durable
func (s *Store) Close() error {
	return nil
}

func (s *Store) readDocument() (map[string]json.RawMessage, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	doc := make(map[string]json.RawMessage)
	if len(strings.TrimSpace(string(content))) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) replace(content []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
