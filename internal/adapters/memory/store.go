// Package memory provides an in-process ports.Store, used by tests and
// throwaway sessions.
package memory

import (
	"maps"
	"sync"

	"wordplay/internal/ports"
)

// Store implements ports.Store with a map
type Store struct {
	mu    sync.RWMutex
	data  map[ports.Collection][]byte
	saves int
}

// Ensure Store implements ports.Store
var _ ports.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{data: make(map[ports.Collection][]byte)}
}

// Load returns a copy of the collection, or nil if absent
func (s *Store) Load(c ports.Collection) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[c]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// Save overwrites the given collections under one lock
func (s *Store) Save(data map[ports.Collection][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c, v := range data {
		s.data[c] = append([]byte(nil), v...)
	}
	s.saves++
	return nil
}

// Put seeds raw collection data, bypassing encoding
func (s *Store) Put(c ports.Collection, data string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[c] = []byte(data)
}

// Saves counts Save calls
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Snapshot returns a copy of all stored collections
func (s *Store) Snapshot() map[ports.Collection][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data)
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
