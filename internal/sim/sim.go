// Package sim runs synthetic adaptive sessions against the real selection
// pipeline: a simulated candidate with a known true ability answers each
// selected item stochastically under the response model, and the run reports
// how quickly the estimate converges on the truth.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
	"github.com/proctorly/itemsel/internal/scoring"
	"github.com/proctorly/itemsel/internal/selection"
	"github.com/proctorly/itemsel/internal/session"
)

// Config shapes one simulated session.
type Config struct {
	// TrueTheta is the simulated candidate's actual ability.
	TrueTheta float64

	// Items is the number of items to administer.
	Items int

	// Model is the response model for probability draws and updates.
	Model irt.Model

	// Strategy picks each next item.
	Strategy scoring.Strategy

	// Seed makes runs reproducible.
	Seed int64
}

// Step is one administered item in a run.
type Step struct {
	ItemID     string
	Difficulty float64
	Correct    bool
	Theta      float64
	SE         float64
	Rationale  string
}

// Report summarizes a finished run.
type Report struct {
	SessionID  string
	TrueTheta  float64
	FinalTheta float64
	FinalSE    float64
	Steps      []Step

	// Stopped is set when the run ended early (pool exhausted or bias
	// filter exhausted) with the outcome that ended it.
	Stopped selection.Outcome
}

// Runner drives simulated sessions through an engine.
type Runner struct {
	engine *session.Engine
	rng    *rand.Rand
	log    *zap.Logger
}

// NewRunner creates a runner. The random source drives the simulated
// candidate's answers; the engine's own selector randomness is independent.
func NewRunner(engine *session.Engine, rng *rand.Rand, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{engine: engine, rng: rng, log: log}
}

// Run administers cfg.Items items to a fresh simulated session and returns
// the convergence trail.
func (r *Runner) Run(ctx context.Context, sessionID string, cfg Config) (*Report, error) {
	if cfg.Items <= 0 {
		return nil, fmt.Errorf("item count must be positive, got %d", cfg.Items)
	}
	if cfg.Strategy == nil {
		cfg.Strategy = scoring.Default()
	}

	if _, err := r.engine.StartSession(sessionID, cfg.Model); err != nil {
		return nil, fmt.Errorf("start simulated session: %w", err)
	}

	rep := &Report{SessionID: sessionID, TrueTheta: cfg.TrueTheta}
	for i := 0; i < cfg.Items; i++ {
		dec, err := r.engine.Select(ctx, sessionID, catalog.Constraints{}, cfg.Strategy)
		if err != nil {
			return nil, fmt.Errorf("select item %d: %w", i+1, err)
		}
		if dec.Outcome != selection.OutcomeSelected {
			rep.Stopped = dec.Outcome
			break
		}

		// The item is known to exist: Select just returned it.
		it, _, _ := r.engine.ItemByID(ctx, dec.Result.ItemID)
		correct := r.answer(cfg, it)
		res, err := r.engine.UpdateAbility(ctx, sessionID, dec.Result.ItemID, irt.CorrectResponse(correct))
		if err != nil {
			return nil, fmt.Errorf("update after item %d: %w", i+1, err)
		}

		rep.Steps = append(rep.Steps, Step{
			ItemID:     dec.Result.ItemID,
			Difficulty: it.Difficulty,
			Correct:    correct,
			Theta:      res.Theta,
			SE:         res.SE,
			Rationale:  dec.Result.Rationale,
		})
		r.log.Debug("simulated step",
			zap.Int("step", i+1),
			zap.String("item_id", dec.Result.ItemID),
			zap.Bool("correct", correct),
			zap.Float64("theta", res.Theta),
			zap.Float64("se", res.SE))
	}

	snap, err := r.engine.Finalize(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("finalize simulated session: %w", err)
	}
	rep.FinalTheta = snap.Theta
	rep.FinalSE = snap.StandardError
	return rep, nil
}

// answer draws a stochastic response from the true ability: correct with the
// model probability of the administered item.
func (r *Runner) answer(cfg Config, it catalog.Item) bool {
	p := irt.Probability(cfg.TrueTheta, it.Difficulty, it.Discrimination, it.Guessing, cfg.Model)
	return r.rng.Float64() < p
}

// SyntheticCatalog builds an in-memory item bank with difficulties spread
// uniformly over the theta scale, for simulations without a database.
func SyntheticCatalog(n int, seed int64) catalog.Catalog {
	rng := rand.New(rand.NewSource(seed))
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			ID:             fmt.Sprintf("sim-%04d", i),
			Difficulty:     irt.ThetaMin + rng.Float64()*(irt.ThetaMax-irt.ThetaMin),
			Discrimination: 0.5 + rng.Float64()*1.5,
			Guessing:       rng.Float64() * 0.25,
			Type:           "mcq",
			Skills:         []string{fmt.Sprintf("skill-%d", i%8)},
			Duration:       time.Duration(1+rng.Intn(10)) * time.Minute,
			Effectiveness:  0.3 + rng.Float64()*0.6,
			Bias:           rng.Float64() * 0.25,
			Active:         true,
		}
	}
	return memoryCatalog(items)
}

type memoryCatalog []catalog.Item

func (m memoryCatalog) ActiveItems(ctx context.Context) ([]catalog.Item, error) {
	return m, nil
}
