// Package store holds the current headline settings value.
package store

import (
	"sync"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// Listener is notified synchronously after every Replace with the new value
// and its revision number.
type Listener func(next headline.HeadlineSettings, revision uint64)

// Store is a value holder: Replace swaps the whole settings value and the
// next Get observes it immediately.
type Store struct {
	mu        sync.RWMutex
	current   headline.HeadlineSettings
	revision  uint64
	listeners []Listener
}

// New creates a store seeded with initial.
func New(initial headline.HeadlineSettings) *Store {
	return &Store{current: initial.Clone()}
}

// Get returns a copy of the current settings.
func (s *Store) Get() headline.HeadlineSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// Revision returns how many times the value has been replaced.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// Replace installs next as the current value and notifies listeners.
func (s *Store) Replace(next headline.HeadlineSettings) {
	s.mu.Lock()
	s.current = next.Clone()
	s.revision++
	snapshot := s.current.Clone()
	revision := s.revision
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot, revision)
	}
}

// Update applies fn to the current value and replaces it with the result.
// A non-nil error leaves the store untouched.
func (s *Store) Update(fn func(headline.HeadlineSettings) (headline.HeadlineSettings, error)) error {
	next, err := fn(s.Get())
	if err != nil {
		return err
	}
	s.Replace(next)
	return nil
}

// Subscribe registers a listener for future replacements.
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}
