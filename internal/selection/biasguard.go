package selection

import "github.com/proctorly/itemsel/internal/scoring"

// Bias guard defaults.
const (
	DefaultBiasThreshold = 0.3
	DefaultRelaxedBias   = 0.5
	minSurvivorFraction  = 0.3
)

// Guard removes high-bias candidates before ranking. Items at or above the
// active threshold never pass; if the initial pass keeps fewer than 30% of
// the pool, the threshold is relaxed exactly once.
type Guard struct {
	Threshold        float64
	RelaxedThreshold float64
}

// NewGuard returns a guard with the standard thresholds.
func NewGuard() Guard {
	return Guard{Threshold: DefaultBiasThreshold, RelaxedThreshold: DefaultRelaxedBias}
}

// GuardResult reports the surviving candidates and which threshold was
// active when they passed.
type GuardResult struct {
	Survivors       []scoring.Candidate
	ActiveThreshold float64

	// Relaxed is true when the relaxation step was taken. Any returned item
	// with bias at or above the base threshold is explained by this flag.
	Relaxed bool

	// Exhausted is true when the pool is empty even after relaxation. The
	// caller must surface this explicitly rather than fall back to an
	// unfiltered pool.
	Exhausted bool
}

// Filter applies the bias threshold, relaxing it once if too few survive.
// An empty input pool is the caller's ConstraintInfeasible case, not a bias
// exhaustion.
func (g Guard) Filter(candidates []scoring.Candidate) GuardResult {
	if len(candidates) == 0 {
		return GuardResult{ActiveThreshold: g.Threshold}
	}

	survivors := below(candidates, g.Threshold)

	if float64(len(survivors)) >= minSurvivorFraction*float64(len(candidates)) {
		return GuardResult{Survivors: survivors, ActiveThreshold: g.Threshold}
	}

	relaxed := below(candidates, g.RelaxedThreshold)
	return GuardResult{
		Survivors:       relaxed,
		ActiveThreshold: g.RelaxedThreshold,
		Relaxed:         true,
		Exhausted:       len(relaxed) == 0,
	}
}

func below(candidates []scoring.Candidate, threshold float64) []scoring.Candidate {
	var out []scoring.Candidate
	for _, c := range candidates {
		if c.Bias < threshold {
			out = append(out, c)
		}
	}
	return out
}
