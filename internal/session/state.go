// Package session owns per-session ability state and orchestrates the
// selection pipeline: pool filtering, scoring, bias guarding, ranking, and
// the audit trail.
package session

import (
	"errors"

	"github.com/proctorly/itemsel/internal/irt"
)

// Lifecycle errors.
var (
	ErrSessionExists    = errors.New("session already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFinalized = errors.New("session is finalized")
	ErrAlreadyAnswered  = errors.New("item already answered in this session")
)

// Phase is the session lifecycle stage. Transitions only move forward:
// initialized → answered (repeatedly) → finalized.
type Phase string

const (
	PhaseInitialized Phase = "initialized"
	PhaseAnswered    Phase = "answered"
	PhaseFinalized   Phase = "finalized"
)

// AbilityState is the per-session ability estimate and answer history. It is
// exclusively owned by its session: all reads and writes go through the
// registry's per-session lock, and once finalized the state is a read-only
// snapshot.
type AbilityState struct {
	SessionID string
	Model     irt.Model
	Phase     Phase

	Theta   float64
	SE      float64
	CILower float64
	CIUpper float64

	// Answered holds answered item ids in strict submission order.
	Answered []string

	// AnsweredDifficulties mirrors Answered with each item's difficulty,
	// for the next-difficulty heuristic.
	AnsweredDifficulties []float64

	// Degraded is true when any update in this session fell back to the
	// deterministic heuristic.
	Degraded bool
}

// newAbilityState starts a session at the scale midpoint with maximum
// uncertainty.
func newAbilityState(sessionID string, model irt.Model) *AbilityState {
	return &AbilityState{
		SessionID: sessionID,
		Model:     model,
		Phase:     PhaseInitialized,
		Theta:     0,
		SE:        1,
		CILower:   -1.96,
		CIUpper:   1.96,
	}
}

// HasAnswered reports whether the item was already answered in this session.
func (s *AbilityState) HasAnswered(itemID string) bool {
	for _, id := range s.Answered {
		if id == itemID {
			return true
		}
	}
	return false
}

// apply folds one update result into the state. Callers hold the session
// lock and have already rejected finalized sessions and repeat answers.
func (s *AbilityState) apply(itemID string, difficulty float64, res irt.UpdateResult) {
	s.Theta = res.Theta
	s.SE = res.SE
	s.CILower = res.CILower
	s.CIUpper = res.CIUpper
	s.Answered = append(s.Answered, itemID)
	s.AnsweredDifficulties = append(s.AnsweredDifficulties, difficulty)
	s.Phase = PhaseAnswered
	if res.Degraded {
		s.Degraded = true
	}
}

// clone returns a copy safe to hand out without the session lock.
func (s *AbilityState) clone() *AbilityState {
	cp := *s
	cp.Answered = append([]string(nil), s.Answered...)
	cp.AnsweredDifficulties = append([]float64(nil), s.AnsweredDifficulties...)
	return &cp
}
