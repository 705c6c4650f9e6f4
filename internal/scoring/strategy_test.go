package scoring

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMaxInformation_Formula(t *testing.T) {
	d := Dimensions{Information: 0.5, Match: 0.9, Effectiveness: 0.8, Bias: 0.2}
	// 0.7*0.5 + 0.2*0.8 + 0.1*0.8 = 0.35 + 0.16 + 0.08 = 0.59
	if got := MaxInformation.Score(d); !almostEqual(got, 0.59) {
		t.Errorf("score = %f, want 0.59", got)
	}
}

func TestTargetedDifficulty_Formula(t *testing.T) {
	d := Dimensions{Information: 0.4, Match: 0.6, Effectiveness: 0.5, Bias: 0.1}
	// 0.5*0.6 + 0.3*0.4 + 0.1*0.5 + 0.1*0.9 = 0.30 + 0.12 + 0.05 + 0.09 = 0.56
	if got := TargetedDifficulty.Score(d); !almostEqual(got, 0.56) {
		t.Errorf("score = %f, want 0.56", got)
	}
}

func TestSkillExploration_Formula(t *testing.T) {
	d := Dimensions{Information: 0.5, Effectiveness: 0.5, Bias: 0.5, SkillCount: 3}
	// 0.4*(3/5) + 0.3*0.5 + 0.2*0.5 + 0.1*0.5 = 0.24 + 0.15 + 0.10 + 0.05 = 0.54
	if got := SkillExploration.Score(d); !almostEqual(got, 0.54) {
		t.Errorf("score = %f, want 0.54", got)
	}
}

func TestSkillExploration_CoverageSaturates(t *testing.T) {
	few := SkillExploration.Score(Dimensions{SkillCount: 5})
	many := SkillExploration.Score(Dimensions{SkillCount: 50})
	if !almostEqual(few, many) {
		t.Errorf("coverage should saturate at 5 skills: %f vs %f", few, many)
	}
}

func TestBalancedCoverage_DefaultWeights(t *testing.T) {
	d := Dimensions{Information: 1, Match: 1, Effectiveness: 1, Bias: 0}
	// All dimensions perfect: weights sum to 1.
	if got := BalancedCoverage(DefaultWeights()).Score(d); !almostEqual(got, 1.0) {
		t.Errorf("score = %f, want 1.0", got)
	}
}

func TestBalancedCoverage_CustomWeights(t *testing.T) {
	w := Weights{Information: 1}
	d := Dimensions{Information: 0.3, Match: 1, Effectiveness: 1, Bias: 0}
	if got := BalancedCoverage(w).Score(d); !almostEqual(got, 0.3) {
		t.Errorf("score = %f, want 0.3", got)
	}
}

func TestAdaptiveHybrid_SameFormulaAsBalanced(t *testing.T) {
	d := Dimensions{Information: 0.6, Match: 0.4, Effectiveness: 0.7, Bias: 0.2}
	hybrid := AdaptiveHybrid(DefaultWeights()).Score(d)
	balanced := BalancedCoverage(DefaultWeights()).Score(d)
	if !almostEqual(hybrid, balanced) {
		t.Errorf("hybrid %f != balanced %f", hybrid, balanced)
	}
}

func TestSampleTopN(t *testing.T) {
	if got := AdaptiveHybrid(DefaultWeights()).SampleTopN(); got != 3 {
		t.Errorf("hybrid SampleTopN = %d, want 3", got)
	}
	for _, s := range []Strategy{MaxInformation, TargetedDifficulty, SkillExploration, BalancedCoverage(DefaultWeights())} {
		if got := s.SampleTopN(); got != 1 {
			t.Errorf("%s SampleTopN = %d, want 1", s.Name(), got)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"max_information", "max_information"},
		{"targeted_difficulty", "targeted_difficulty"},
		{"skill_exploration", "skill_exploration"},
		{"balanced_coverage", "balanced_coverage"},
		{"adaptive_hybrid", "adaptive_hybrid"},
		{"", "adaptive_hybrid"},
		{"nonsense", "adaptive_hybrid"},
	}
	for _, tt := range tests {
		if got := Parse(tt.in).Name(); got != tt.want {
			t.Errorf("Parse(%q).Name() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
