// Package store holds the application state: three independent slices, each
// mutated only through its own transition functions.
//
// Transitions are pure value functions (UsersState.BeginFetch and friends).
// Store serialises their application; callers never hold the lock while
// waiting on the network.
package store

import "sync"

// State is the full application state.
type State struct {
	Users     UsersState     `json:"users"`
	Auth      AuthState      `json:"auth"`
	Analytics AnalyticsState `json:"analytics"`
}

// Store owns the application state. Construct one per process and pass it to
// the services that dispatch into it.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns a store with every slice idle and empty.
func New() *Store {
	return &Store{state: State{
		Users:     NewUsersState(),
		Auth:      NewAuthState(),
		Analytics: NewAnalyticsState(),
	}}
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Users:     s.state.Users.Clone(),
		Auth:      s.state.Auth.Clone(),
		Analytics: s.state.Analytics.Clone(),
	}
}

// Users returns a copy of the user slice.
func (s *Store) Users() UsersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Users.Clone()
}

// Auth returns a copy of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth.Clone()
}

// Analytics returns a copy of the analytics slice.
func (s *Store) Analytics() AnalyticsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Analytics.Clone()
}

// UpdateUsers applies fn to the user slice atomically and returns a copy of
// the result.
func (s *Store) UpdateUsers(fn func(UsersState) UsersState) UsersState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = fn(s.state.Users)
	return s.state.Users.Clone()
}

// UpdateAuth applies fn to the auth slice atomically.
func (s *Store) UpdateAuth(fn func(AuthState) AuthState) AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth = fn(s.state.Auth)
	return s.state.Auth.Clone()
}

// UpdateAnalytics applies fn to the analytics slice atomically.
func (s *Store) UpdateAnalytics(fn func(AnalyticsState) AnalyticsState) AnalyticsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Analytics = fn(s.state.Analytics)
	return s.state.Analytics.Clone()
}
