package irt

import "math"

// UpdateResult reports the outcome of one ability update.
type UpdateResult struct {
	// Theta is the new ability estimate, clamped to [ThetaMin, ThetaMax].
	Theta float64

	// SE is the combined standard error after folding in the new item's
	// information. It is always > 0 and never larger than the prior SE.
	SE float64

	// Delta is Theta minus the prior estimate.
	Delta float64

	// InformationGain is the total precision 1/SE² after the update.
	InformationGain float64

	// CILower and CIUpper bound the 95% confidence interval (±1.96·SE).
	CILower float64
	CIUpper float64

	// Converged is true when the estimate moved by less than 0.001.
	Converged bool

	// Degraded is true when a numeric failure forced the deterministic
	// fallback (or the prior state). Degradations are reported here and
	// logged by the caller; they are never surfaced as errors.
	Degraded bool
}

const (
	// searchRadius bounds the likelihood search around the current estimate.
	searchRadius = 3.0

	// probFloor keeps log-likelihood terms finite.
	probFloor = 0.001
	probCeil  = 0.999

	convergenceDelta = 0.001

	ciZ = 1.96
)

// Update folds one scored response into the ability estimate.
//
// The new theta minimizes the response's negative log-likelihood (Bernoulli
// for a binary score, linearly weighted for partial credit) penalized by a
// Gaussian prior centered on the current estimate with the current SE. The
// penalty keeps the single-response optimum interior to the search window;
// without it a correct answer would always drive the estimate to the window
// edge. The search is a deterministic shrinking grid over
// [theta-3, theta+3].
//
// Any numeric failure degrades to the fallback step 0.1·(score-0.5), or to
// the prior state when even the inputs are unusable. Degradations are
// flagged, never returned as errors.
func Update(theta, se, b, a, c, responseScore float64, model Model) UpdateResult {
	if !finite(theta) || !finite(se) || se <= 0 || !finite(b) || !finite(a) || !finite(c) || !finite(responseScore) {
		prior := ClampTheta(theta)
		if !finite(theta) {
			prior = 0
		}
		priorSE := se
		if !finite(se) || se <= 0 {
			priorSE = 1
		}
		return UpdateResult{
			Theta:           prior,
			SE:              priorSE,
			InformationGain: 1 / (priorSE * priorSE),
			CILower:         prior - ciZ*priorSE,
			CIUpper:         prior + ciZ*priorSE,
			Degraded:        true,
		}
	}

	score := clamp01(responseScore)

	newTheta, ok := minimizeNLL(theta, se, b, a, c, score, model)
	degraded := false
	if !ok {
		newTheta = theta + 0.1*(score-0.5)
		degraded = true
	}
	newTheta = ClampTheta(newTheta)

	// Additive information: 1/SE_combined² = 1/SE_old² + I(new theta).
	info := Information(newTheta, b, a, c, model)
	if !finite(info) || info < 0 {
		info = 0
		degraded = true
	}
	totalInfo := 1/(se*se) + info
	combinedSE := 1 / math.Sqrt(totalInfo)

	delta := newTheta - theta
	return UpdateResult{
		Theta:           newTheta,
		SE:              combinedSE,
		Delta:           delta,
		InformationGain: totalInfo,
		CILower:         newTheta - ciZ*combinedSE,
		CIUpper:         newTheta + ciZ*combinedSE,
		Converged:       math.Abs(delta) < convergenceDelta,
		Degraded:        degraded,
	}
}

// minimizeNLL runs the bounded shrinking-grid search. Returns false when the
// objective degenerates (NaN/Inf at every probe).
func minimizeNLL(theta, se, b, a, c, score float64, model Model) (float64, bool) {
	const (
		points = 25
		rounds = 5
	)

	lo := theta - searchRadius
	hi := theta + searchRadius

	best := theta
	for r := 0; r < rounds; r++ {
		step := (hi - lo) / float64(points-1)
		bestObj := math.Inf(1)
		found := false
		for i := 0; i < points; i++ {
			t := lo + float64(i)*step
			obj := penalizedNLL(t, theta, se, b, a, c, score, model)
			if !finite(obj) {
				continue
			}
			// Strict improvement keeps the first (lowest-theta) probe on
			// ties, so repeated runs pick the same point.
			if obj < bestObj {
				bestObj = obj
				best = t
				found = true
			}
		}
		if !found {
			return 0, false
		}
		lo = best - step
		hi = best + step
	}

	if !finite(best) {
		return 0, false
	}
	return best, true
}

// penalizedNLL is the search objective: response negative log-likelihood
// plus the Gaussian prior penalty (t-theta)²/(2·se²).
func penalizedNLL(t, theta, se, b, a, c, score float64, model Model) float64 {
	p := Probability(t, b, a, c, model)
	if p < probFloor {
		p = probFloor
	}
	if p > probCeil {
		p = probCeil
	}
	nll := -(score*math.Log(p) + (1-score)*math.Log(1-p))
	d := t - theta
	return nll + d*d/(2*se*se)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
