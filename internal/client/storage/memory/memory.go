// Package memory provides an in-memory storage.KeyValue for tests and
// for sessions that must not touch the disk.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/egovcms/internal/client/storage"
)

// Storage in-memory key/value storage
type Storage struct {
	data map[string]string
	mu   sync.RWMutex
}

// New creates an empty storage
func New() *Storage {
	return &Storage{data: make(map[string]string)}
}

// Get returns the value stored under key
func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

// Set stores value under key
func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Remove deletes key
func (s *Storage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len returns number of stored keys
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
