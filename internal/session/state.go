// Package session holds the per-session user state of the feedback viewer.
package session

import "sync"

// Snapshot is a point-in-time copy of the session fields.
type Snapshot struct {
	Username     string
	UserWasSaved bool
}

// State is the session state container. The zero value is not usable;
// construct it with New and pass the pointer to whatever needs it.
//
// An empty username means no user has been selected yet.
type State struct {
	mu           sync.RWMutex
	username     string
	userWasSaved bool

	subsMu sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
}

// New creates a State seeded with the given username.
func New(username string) *State {
	return &State{
		username: username,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Username returns the current username.
func (s *State) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// UserWasSaved reports whether a save action has completed.
func (s *State) UserWasSaved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userWasSaved
}

// Snapshot returns both fields read under one lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Username: s.username, UserWasSaved: s.userWasSaved}
}

// SetUsername replaces the username and notifies subscribers.
func (s *State) SetUsername(name string) {
	s.mu.Lock()
	s.username = name
	snap := Snapshot{Username: s.username, UserWasSaved: s.userWasSaved}
	s.mu.Unlock()

	s.publish(snap)
}

// SetUserWasSaved replaces the saved flag and notifies subscribers.
func (s *State) SetUserWasSaved(saved bool) {
	s.mu.Lock()
	s.userWasSaved = saved
	snap := Snapshot{Username: s.username, UserWasSaved: s.userWasSaved}
	s.mu.Unlock()

	s.publish(snap)
}

// Subscribe registers fn to be called with a snapshot after every setter
// call. Callbacks run synchronously on the setter's goroutine, so they
// should return quickly.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *State) publish(snap Snapshot) {
	s.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
