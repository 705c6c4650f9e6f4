// Package scoring computes the blended selection score for each candidate
// item: Fisher information at the current ability estimate combined with
// difficulty match, external effectiveness, and external bias risk under a
// named strategy.
package scoring

import "math"

// Dimensions are the per-candidate inputs a strategy blends into one score.
// All values except SkillCount are in [0,1].
type Dimensions struct {
	Information   float64
	Match         float64
	Effectiveness float64
	Bias          float64
	SkillCount    int
}

// Strategy is a closed weighting policy over the scoring dimensions.
// The package-level values and constructors below are the full set.
type Strategy interface {
	// Name is the stable identifier used in config, logs, and the
	// decision record.
	Name() string

	// Score blends the dimensions into a single selection score.
	Score(d Dimensions) float64

	// SampleTopN is how many top-ranked candidates the selector may sample
	// among. 1 means a deterministic top pick.
	SampleTopN() int
}

// Weights configure the balanced-coverage blend. They should sum to 1.
type Weights struct {
	Information   float64
	Match         float64
	Effectiveness float64
	Bias          float64
}

// DefaultWeights is the standard balanced-coverage weighting.
func DefaultWeights() Weights {
	return Weights{Information: 0.4, Match: 0.3, Effectiveness: 0.2, Bias: 0.1}
}

// MaxInformation prioritizes measurement precision above all else.
var MaxInformation Strategy = maxInformation{}

type maxInformation struct{}

func (maxInformation) Name() string    { return "max_information" }
func (maxInformation) SampleTopN() int { return 1 }
func (maxInformation) Score(d Dimensions) float64 {
	return 0.7*d.Information + 0.2*d.Effectiveness + 0.1*(1-d.Bias)
}

// TargetedDifficulty prioritizes items whose difficulty sits close to the
// current ability estimate.
var TargetedDifficulty Strategy = targetedDifficulty{}

type targetedDifficulty struct{}

func (targetedDifficulty) Name() string    { return "targeted_difficulty" }
func (targetedDifficulty) SampleTopN() int { return 1 }
func (targetedDifficulty) Score(d Dimensions) float64 {
	return 0.5*d.Match + 0.3*d.Information + 0.1*d.Effectiveness + 0.1*(1-d.Bias)
}

// SkillExploration favors items covering many skill areas, saturating at 5.
var SkillExploration Strategy = skillExploration{}

type skillExploration struct{}

func (skillExploration) Name() string    { return "skill_exploration" }
func (skillExploration) SampleTopN() int { return 1 }
func (skillExploration) Score(d Dimensions) float64 {
	coverage := math.Min(1, float64(d.SkillCount)/5)
	return 0.4*coverage + 0.3*d.Information + 0.2*d.Effectiveness + 0.1*(1-d.Bias)
}

type balancedCoverage struct {
	w Weights
}

func (balancedCoverage) Name() string    { return "balanced_coverage" }
func (balancedCoverage) SampleTopN() int { return 1 }
func (b balancedCoverage) Score(d Dimensions) float64 {
	return b.w.Information*d.Information +
		b.w.Match*d.Match +
		b.w.Effectiveness*d.Effectiveness +
		b.w.Bias*(1-d.Bias)
}

// BalancedCoverage blends all four dimensions with configurable weights.
func BalancedCoverage(w Weights) Strategy {
	return balancedCoverage{w: w}
}

type adaptiveHybrid struct {
	balancedCoverage
}

func (adaptiveHybrid) Name() string { return "adaptive_hybrid" }

// SampleTopN makes the hybrid strategy draw from the top 3 candidates with
// score-proportional probability rather than always taking the top 1.
func (adaptiveHybrid) SampleTopN() int { return 3 }

// AdaptiveHybrid scores like BalancedCoverage but lets the selector sample
// among the top 3 candidates. It is the default strategy.
func AdaptiveHybrid(w Weights) Strategy {
	return adaptiveHybrid{balancedCoverage{w: w}}
}

// Default returns the engine's default strategy.
func Default() Strategy {
	return AdaptiveHybrid(DefaultWeights())
}

// Parse maps a strategy name to a Strategy, using the default balanced
// weights where applicable. Unknown names fall back to the default.
func Parse(name string) Strategy {
	switch name {
	case MaxInformation.Name():
		return MaxInformation
	case TargetedDifficulty.Name():
		return TargetedDifficulty
	case SkillExploration.Name():
		return SkillExploration
	case "balanced_coverage":
		return BalancedCoverage(DefaultWeights())
	default:
		return Default()
	}
}
