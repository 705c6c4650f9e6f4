package scoring

import (
	"context"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
)

// Degraded dimension labels recorded when a dimension falls back to a
// default instead of failing the selection (fail-open).
const (
	DegradedExternalScores = "external_scores"
	DegradedInformation    = "information"
	DegradedSelectionScore = "selection_score"
)

// Candidate is an item with its computed scoring dimensions and final
// selection score. Candidates live only for the duration of one decision;
// the chosen one's breakdown is persisted on the decision record.
type Candidate struct {
	Item catalog.Item

	Information   float64
	Match         float64
	Effectiveness float64
	Bias          float64
	SkillCoverage int

	Score float64

	// Degraded lists the dimensions that fell back to defaults.
	Degraded []string
}

// Scorer computes candidate scores for a filtered pool.
type Scorer struct {
	provider Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewScorer creates a scorer. A nil provider skips external lookups and uses
// the scores carried on the catalog rows.
func NewScorer(provider Provider, lookupTimeout time.Duration, log *zap.Logger) *Scorer {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{provider: provider, timeout: lookupTimeout, log: log}
}

// ScoreAll scores every item in the pool at the given ability estimate.
// Items are independent and CPU-bound, so scoring fans out across cores.
// A failure computing any single dimension contributes 0 (or the catalog
// default) for that dimension only and is recorded on the candidate; no
// failure aborts the decision.
func (s *Scorer) ScoreAll(ctx context.Context, items []catalog.Item, theta float64, strat Strategy) []Candidate {
	out := make([]Candidate, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range items {
		g.Go(func() error {
			out[i] = s.scoreOne(gctx, items[i], theta, strat)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return out
}

func (s *Scorer) scoreOne(ctx context.Context, it catalog.Item, theta float64, strat Strategy) Candidate {
	c := Candidate{
		Item:          it,
		Effectiveness: it.Effectiveness,
		Bias:          it.Bias,
		SkillCoverage: len(it.Skills),
	}

	// Information value is always computed under 2PL regardless of the
	// session's response model.
	info := irt.Information(theta, it.Difficulty, it.Discrimination, 0, irt.Model2PL)
	if math.IsNaN(info) || math.IsInf(info, 0) || info < 0 {
		info = 0
		c.Degraded = append(c.Degraded, DegradedInformation)
	}
	c.Information = info

	c.Match = math.Max(0, 1-math.Abs(it.Difficulty-theta)/3)

	if s.provider != nil {
		lctx, cancel := context.WithTimeout(ctx, s.timeout)
		scores, err := s.provider.ItemScores(lctx, it.ID)
		cancel()
		if err != nil {
			// Proceed with the catalog row's values rather than waiting
			// or failing.
			c.Degraded = append(c.Degraded, DegradedExternalScores)
			s.log.Debug("external scores unavailable, using defaults",
				zap.String("item_id", it.ID),
				zap.Error(err))
		} else {
			c.Effectiveness = clampUnit(scores.Effectiveness)
			c.Bias = clampUnit(scores.Bias)
		}
	}

	score := strat.Score(Dimensions{
		Information:   c.Information,
		Match:         c.Match,
		Effectiveness: c.Effectiveness,
		Bias:          c.Bias,
		SkillCount:    c.SkillCoverage,
	})
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
		c.Degraded = append(c.Degraded, DegradedSelectionScore)
	}
	c.Score = score
	return c
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
