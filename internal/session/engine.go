package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
	"github.com/proctorly/itemsel/internal/scoring"
	"github.com/proctorly/itemsel/internal/selection"
	"github.com/proctorly/itemsel/internal/store"
)

// Decision is the outcome of one Select call. Result is non-nil only when
// Outcome is OutcomeSelected.
type Decision struct {
	Outcome selection.Outcome
	Result  *selection.Result
}

// Engine wires the selection pipeline together: candidate pool, scorer,
// bias guard, selector, and the persistent audit trail. It is the
// composition root's single entry point for session operations.
type Engine struct {
	sessions *Registry
	pool     *catalog.Pool
	scorer   *scoring.Scorer
	guard    selection.Guard
	selector *selection.Selector

	// Repositories are optional: nil repos skip persistence, which the
	// simulation harness uses to run without a database.
	decisions store.DecisionRepo
	responses store.ResponseRepo
	snapshots store.SnapshotRepo

	log *zap.Logger
	now func() time.Time
}

// Config carries the engine's collaborators.
type Config struct {
	Pool     *catalog.Pool
	Scorer   *scoring.Scorer
	Guard    selection.Guard
	Selector *selection.Selector

	Decisions store.DecisionRepo
	Responses store.ResponseRepo
	Snapshots store.SnapshotRepo

	Log *zap.Logger
}

// NewEngine creates an engine from its collaborators.
func NewEngine(cfg Config) *Engine {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		sessions:  NewRegistry(),
		pool:      cfg.Pool,
		scorer:    cfg.Scorer,
		guard:     cfg.Guard,
		selector:  cfg.Selector,
		decisions: cfg.Decisions,
		responses: cfg.Responses,
		snapshots: cfg.Snapshots,
		log:       log,
		now:       time.Now,
	}
}

// StartSession registers a new session at theta=0, SE=1.
func (e *Engine) StartSession(sessionID string, model irt.Model) (*AbilityState, error) {
	st, err := e.sessions.Create(sessionID, model)
	if err != nil {
		return nil, err
	}
	e.log.Info("session started",
		zap.String("session_id", sessionID),
		zap.String("model", model.String()))
	return st, nil
}

// State returns a copy of the session's current ability state.
func (e *Engine) State(sessionID string) (*AbilityState, error) {
	return e.sessions.Get(sessionID)
}

// Select runs one selection decision for the session: load the candidate
// pool under the session's constraints (answered items excluded), score it
// at the current ability estimate, filter fairness risk, and rank. The
// decision is appended to the audit log before it is returned.
//
// Infeasible constraints and an exhausted bias filter are explicit outcomes,
// not errors; collaborator failures degrade to cached or default values.
func (e *Engine) Select(ctx context.Context, sessionID string, c catalog.Constraints, strat scoring.Strategy) (*Decision, error) {
	var theta float64
	var answered []string
	err := e.sessions.With(sessionID, func(s *AbilityState) error {
		if s.Phase == PhaseFinalized {
			return ErrSessionFinalized
		}
		theta = s.Theta
		answered = append([]string(nil), s.Answered...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	items, err := e.pool.Load(ctx, c.WithExcluded(answered...))
	if err != nil {
		// Catalog unreachable with nothing cached: there is no pool to
		// select from, so this surfaces as no_item_available.
		e.log.Warn("candidate pool unavailable",
			zap.String("session_id", sessionID),
			zap.String("kind", string(selection.FailureDataUnavailable)),
			zap.Error(err))
		return &Decision{Outcome: selection.OutcomeNoItemAvailable}, nil
	}
	if len(items) == 0 {
		e.log.Info("no item satisfies constraints",
			zap.String("session_id", sessionID),
			zap.String("kind", string(selection.FailureConstraintInfeasible)))
		return &Decision{Outcome: selection.OutcomeNoItemAvailable}, nil
	}

	candidates := e.scorer.ScoreAll(ctx, items, theta, strat)

	guarded := e.guard.Filter(candidates)
	if guarded.Exhausted {
		e.log.Warn("bias filter exhausted the pool",
			zap.String("session_id", sessionID),
			zap.String("kind", string(selection.FailureBiasExhausted)),
			zap.Int("pool_size", len(items)),
			zap.Float64("threshold", guarded.ActiveThreshold))
		return &Decision{Outcome: selection.OutcomeBiasFilterExhausted}, nil
	}
	if len(guarded.Survivors) == 0 {
		return &Decision{Outcome: selection.OutcomeNoItemAvailable}, nil
	}

	winner, ok := e.selector.Pick(guarded.Survivors, strat)
	if !ok {
		return &Decision{Outcome: selection.OutcomeNoItemAvailable}, nil
	}

	res := selection.NewResult(winner, strat, len(items), guarded.Relaxed, e.now())
	e.appendDecision(ctx, sessionID, res)

	e.log.Info("item selected",
		zap.String("session_id", sessionID),
		zap.String("item_id", res.ItemID),
		zap.String("strategy", res.Strategy),
		zap.Float64("score", res.Breakdown.Total),
		zap.Bool("bias_relaxed", res.BiasRelaxed))
	return &Decision{Outcome: selection.OutcomeSelected, Result: res}, nil
}

// UpdateAbility folds one scored response into the session's ability
// estimate. Updates for a session are serialized; each answered item
// transitions the state exactly once and finalized sessions reject updates.
func (e *Engine) UpdateAbility(ctx context.Context, sessionID, itemID string, resp irt.Response) (irt.UpdateResult, error) {
	it, found, err := e.pool.ItemByID(ctx, itemID)
	if err != nil {
		return irt.UpdateResult{}, fmt.Errorf("resolve item %q: %w", itemID, err)
	}
	if !found {
		return irt.UpdateResult{}, fmt.Errorf("unknown item %q", itemID)
	}

	var res irt.UpdateResult
	err = e.sessions.With(sessionID, func(s *AbilityState) error {
		if s.Phase == PhaseFinalized {
			return ErrSessionFinalized
		}
		if s.HasAnswered(itemID) {
			return ErrAlreadyAnswered
		}

		before := s.Theta
		res = irt.Update(s.Theta, s.SE, it.Difficulty, it.Discrimination, it.Guessing, resp.Score(), s.Model)
		s.apply(itemID, it.Difficulty, res)

		if res.Degraded {
			e.log.Warn("ability update degraded to fallback",
				zap.String("session_id", sessionID),
				zap.String("item_id", itemID),
				zap.String("kind", string(selection.FailureNumeric)))
		}

		e.appendResponse(ctx, sessionID, itemID, resp.Score(), before, res)
		return nil
	})
	if err != nil {
		return irt.UpdateResult{}, err
	}
	return res, nil
}

// ItemByID resolves a catalog item from the pool's cached snapshot.
func (e *Engine) ItemByID(ctx context.Context, itemID string) (catalog.Item, bool, error) {
	return e.pool.ItemByID(ctx, itemID)
}

// NextDifficulty returns the preferred difficulty of the session's next
// item, from the gap structure of what was already answered.
func (e *Engine) NextDifficulty(sessionID string) (float64, error) {
	var next float64
	err := e.sessions.With(sessionID, func(s *AbilityState) error {
		next = irt.OptimalNextDifficulty(s.Theta, s.AnsweredDifficulties)
		return nil
	})
	return next, err
}

// Finalize ends the session. The state becomes a read-only snapshot,
// persisted for reporting; further selects and updates are rejected.
func (e *Engine) Finalize(ctx context.Context, sessionID string) (*store.SessionSnapshot, error) {
	var snap *store.SessionSnapshot
	err := e.sessions.With(sessionID, func(s *AbilityState) error {
		if s.Phase == PhaseFinalized {
			return ErrSessionFinalized
		}
		s.Phase = PhaseFinalized
		snap = &store.SessionSnapshot{
			SessionID:     s.SessionID,
			Model:         s.Model.String(),
			Theta:         s.Theta,
			StandardError: s.SE,
			CILower:       s.CILower,
			CIUpper:       s.CIUpper,
			AnsweredItems: append([]string(nil), s.Answered...),
			FinalizedAt:   e.now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if e.snapshots != nil {
		if err := e.snapshots.Save(ctx, snap); err != nil {
			// The in-memory state is already finalized; persistence
			// failure is logged, not surfaced.
			e.log.Error("persist session snapshot failed",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}

	e.log.Info("session finalized",
		zap.String("session_id", sessionID),
		zap.Float64("theta", snap.Theta),
		zap.Float64("se", snap.StandardError),
		zap.Int("answered", len(snap.AnsweredItems)))
	return snap, nil
}

// appendDecision records the decision on the audit log. Append failures are
// absorbed: the selection already happened and the caller gets the result.
func (e *Engine) appendDecision(ctx context.Context, sessionID string, res *selection.Result) {
	if e.decisions == nil {
		return
	}
	rec := &store.DecisionRecord{
		Timestamp: res.Timestamp,
		SessionID: sessionID,
		ItemID:    res.ItemID,
		Strategy:  res.Strategy,
		Breakdown: map[string]float64{
			"information":    res.Breakdown.Information,
			"match":          res.Breakdown.Match,
			"effectiveness":  res.Breakdown.Effectiveness,
			"bias":           res.Breakdown.Bias,
			"skill_coverage": float64(res.Breakdown.SkillCoverage),
			"total":          res.Breakdown.Total,
		},
		Rationale:   res.Rationale,
		PoolSize:    res.PoolSize,
		BiasRelaxed: res.BiasRelaxed,
	}
	if err := e.decisions.Append(ctx, rec); err != nil {
		e.log.Warn("append decision log failed",
			zap.String("session_id", sessionID),
			zap.String("item_id", res.ItemID),
			zap.Error(err))
	}
}

// appendResponse records the ability transition on the audit log.
func (e *Engine) appendResponse(ctx context.Context, sessionID, itemID string, score, before float64, res irt.UpdateResult) {
	if e.responses == nil {
		return
	}
	rec := &store.ResponseRecord{
		Timestamp:     e.now(),
		SessionID:     sessionID,
		ItemID:        itemID,
		ResponseScore: score,
		ThetaBefore:   before,
		ThetaAfter:    res.Theta,
		SEAfter:       res.SE,
		Converged:     res.Converged,
		Degraded:      res.Degraded,
	}
	if err := e.responses.Append(ctx, rec); err != nil {
		e.log.Warn("append response log failed",
			zap.String("session_id", sessionID),
			zap.String("item_id", itemID),
			zap.Error(err))
	}
}
