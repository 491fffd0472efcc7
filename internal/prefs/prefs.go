// Package prefs persists user preferences in a small process-wide key-value
// store. Reads never fail: a missing or undecodable value degrades to the
// default, which keeps the UI paths free of error plumbing.
package prefs

import (
	"sync"

	"shade-cli/internal/settings"
)

// Backend is the narrow surface the store needs from durable storage. Keeping
// it to two integer operations lets tests swap in Memory without touching a
// real settings database.
type Backend interface {
	// GetInt reads the integer stored under key. ok is false when the key is
	// absent or the stored value is not an integer.
	GetInt(key string) (v int64, ok bool)
	// SetInt writes the integer under key, persisting immediately.
	SetInt(key string, v int64)
}

// Store exposes the display-setting preference over a Backend.
type Store struct {
	backend Backend
}

func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Get returns the stored display setting, or settings.Default when the slot
// is absent or holds an unknown ordinal. It has no failure path.
func (s *Store) Get() settings.DisplaySetting {
	v, ok := s.backend.GetInt(settings.Key)
	if !ok {
		return settings.Default
	}
	return settings.FromOrdinal(v)
}

// Set persists the variant's ordinal. Storage failures are not surfaced here;
// the backend is responsible for best-effort durability.
func (s *Store) Set(v settings.DisplaySetting) {
	s.backend.SetInt(settings.Key, v.Ordinal())
}

// Memory is an in-process Backend for tests and for running without a
// settings directory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]int64
}

func NewMemory() *Memory {
	return &Memory{values: map[string]int64{}}
}

func (m *Memory) GetInt(key string) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) SetInt(key string, v int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = v
}
