package session

import (
	"sync"
)

// Role is the application role a user holds in the portal
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAlumni  Role = "ALUMNI"
	RoleAdmin   Role = "ADMIN"
)

// DefaultRole is stored when the identity provider did not assign a role
const DefaultRole = RoleStudent

// Roles lists the roles a user may choose during onboarding
var Roles = []Role{RoleStudent, RoleAlumni, RoleAdmin}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Identity is the authenticated user as delivered by the auth callback
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// State is a point-in-time copy of a session. Identity and Token are either
// both set or both empty.
type State struct {
	Identity *Identity `json:"user,omitempty"`
	Token    string    `json:"token,omitempty"`
}

func (s State) Authenticated() bool {
	return s.Identity != nil && s.Token != ""
}

// Store holds one session. It performs no I/O; see Persisted for the storage-backed variant.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// New returns an unauthenticated store
func New() *Store {
	return &Store{listeners: make(map[int]func(State))}
}

// Login replaces the current session. Every call notifies subscribers, even
// when the arguments match the current state.
func (s *Store) Login(identity Identity, token string) {
	s.set(State{Identity: &identity, Token: token})
}

// Logout clears identity and token
func (s *Store) Logout() {
	s.set(State{})
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn for every mutation and returns a func that removes it
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// restore loads state without notifying subscribers
func (s *Store) restore(state State) {
	if !state.Authenticated() {
		state = State{}
	}
	s.mu.Lock()
	s.state = state.clone()
	s.mu.Unlock()
}

func (s *Store) set(state State) {
	s.mu.Lock()
	s.state = state
	snapshot := s.state.clone()
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s State) clone() State {
	if s.Identity == nil {
		return State{Token: s.Token}
	}
	identity := *s.Identity
	return State{Identity: &identity, Token: s.Token}
}
