package session

import (
	"sync"

	"github.com/proctorly/itemsel/internal/irt"
)

// Registry holds live sessions and serializes access per session id.
// Concurrent updates for the same session would corrupt the theta/SE
// history, so every state access runs under that session's lock; different
// sessions proceed independently.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state *AbilityState
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Create registers a new session. It fails with ErrSessionExists when the
// id is already live.
func (r *Registry) Create(sessionID string, model irt.Model) (*AbilityState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; ok {
		return nil, ErrSessionExists
	}
	st := newAbilityState(sessionID, model)
	r.sessions[sessionID] = &entry{state: st}
	return st.clone(), nil
}

// lookup returns the entry for a session id.
func (r *Registry) lookup(sessionID string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sessionID]
	return e, ok
}

// With runs fn with exclusive access to the session's state. The state must
// not be retained past fn's return.
func (r *Registry) With(sessionID string, fn func(*AbilityState) error) error {
	e, ok := r.lookup(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Get returns a copy of the session's current state.
func (r *Registry) Get(sessionID string) (*AbilityState, error) {
	var cp *AbilityState
	err := r.With(sessionID, func(s *AbilityState) error {
		cp = s.clone()
		return nil
	})
	return cp, err
}
