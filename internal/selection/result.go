package selection

import (
	"strings"
	"time"

	"github.com/proctorly/itemsel/internal/scoring"
)

// Breakdown is the per-dimension score decomposition persisted with every
// decision for fairness and audit reporting.
type Breakdown struct {
	Information   float64 `json:"information"`
	Match         float64 `json:"match"`
	Effectiveness float64 `json:"effectiveness"`
	Bias          float64 `json:"bias"`
	SkillCoverage int     `json:"skill_coverage"`
	Total         float64 `json:"total"`
}

// Result is one completed selection decision.
type Result struct {
	ItemID    string
	Strategy  string
	Breakdown Breakdown
	Rationale string
	PoolSize  int

	// BiasRelaxed is true when the winner passed only under the relaxed
	// bias threshold.
	BiasRelaxed bool

	Timestamp time.Time
}

// Rationale thresholds. A dimension crossing its threshold contributes one
// human-readable clause to the decision rationale.
const (
	rationaleInfoThreshold  = 0.7
	rationaleEffThreshold   = 0.8
	rationaleBiasThreshold  = 0.1
	rationaleSkillThreshold = 2
)

// buildRationale explains a winning candidate in terms of the thresholds it
// crossed. With no crossings the generic fallback applies.
func buildRationale(c scoring.Candidate) string {
	var reasons []string
	if c.Information > rationaleInfoThreshold {
		reasons = append(reasons, "high information value")
	}
	if c.Effectiveness > rationaleEffThreshold {
		reasons = append(reasons, "proven effectiveness")
	}
	if c.Bias < rationaleBiasThreshold {
		reasons = append(reasons, "low bias risk")
	}
	if c.SkillCoverage > rationaleSkillThreshold {
		reasons = append(reasons, "broad skill coverage")
	}
	if len(reasons) == 0 {
		return "selected based on adaptive algorithm"
	}
	return strings.Join(reasons, ", ")
}

// NewResult assembles the decision record for a winning candidate.
func NewResult(winner scoring.Candidate, strat scoring.Strategy, poolSize int, relaxed bool, now time.Time) *Result {
	return &Result{
		ItemID:   winner.Item.ID,
		Strategy: strat.Name(),
		Breakdown: Breakdown{
			Information:   winner.Information,
			Match:         winner.Match,
			Effectiveness: winner.Effectiveness,
			Bias:          winner.Bias,
			SkillCoverage: winner.SkillCoverage,
			Total:         winner.Score,
		},
		Rationale:   buildRationale(winner),
		PoolSize:    poolSize,
		BiasRelaxed: relaxed,
		Timestamp:   now,
	}
}
