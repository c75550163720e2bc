// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"sync"
)

// Store holds the current [State] and tells subscribers about every change.
// Subscribers receive snapshots in the order the updates were applied.
type Store struct {
	mu    sync.RWMutex
	state State

	// notifyMu keeps notifications in update order.
	notifyMu sync.Mutex
	subsMu   sync.Mutex
	subs     map[int]func(State)
	nextID   int
}

// NewStore returns a store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]func(State))}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update applies fn to the state and notifies subscribers. It reports false,
// without notifying, when fn returns false.
func (s *Store) Update(fn func(*State) bool) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := s.state.clone()
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	s.state = next
	snapshot := next.clone()
	s.mu.Unlock()

	s.subsMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, notify := range subs {
		notify(snapshot)
	}
	return true
}

// Subscribe registers fn and returns a function that removes it.
// fn must not call Update.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}
