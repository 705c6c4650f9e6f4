package selection

import (
	"math/rand"
	"sort"

	"github.com/proctorly/itemsel/internal/scoring"
)

// Selector ranks bias-filtered candidates and picks the winner. The random
// source is injected so weighted draws are reproducible in tests and in the
// simulation harness.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector around the given random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick ranks the candidates by selection score and chooses the winner under
// the strategy's sampling rule: deterministic top-1 (ties broken by lowest
// item id) for most strategies, a score-proportional draw from the top 3 for
// the adaptive hybrid. The second return is false when there are no
// candidates.
func (s *Selector) Pick(candidates []scoring.Candidate, strat scoring.Strategy) (scoring.Candidate, bool) {
	if len(candidates) == 0 {
		return scoring.Candidate{}, false
	}

	ranked := make([]scoring.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.ID < ranked[j].Item.ID
	})

	n := strat.SampleTopN()
	if n <= 1 || len(ranked) == 1 {
		return ranked[0], true
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return s.weightedDraw(ranked[:n]), true
}

// weightedDraw samples one candidate with probability proportional to its
// score. Non-positive total score degenerates to the top-ranked candidate.
func (s *Selector) weightedDraw(top []scoring.Candidate) scoring.Candidate {
	var total float64
	for _, c := range top {
		if c.Score > 0 {
			total += c.Score
		}
	}
	if total <= 0 {
		return top[0]
	}

	r := s.rng.Float64() * total
	for _, c := range top {
		if c.Score <= 0 {
			continue
		}
		r -= c.Score
		if r < 0 {
			return c
		}
	}
	return top[len(top)-1]
}
