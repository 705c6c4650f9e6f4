package irt

import "testing"

func TestResponseScorePrecedence(t *testing.T) {
	correct := true
	partial := 0.5
	quality := 0.9

	tests := []struct {
		name string
		r    Response
		want float64
	}{
		{"correct true", CorrectResponse(true), 1},
		{"correct false", CorrectResponse(false), 0},
		{"partial", PartialResponse(0.5), 0.5},
		{"quality wins over partial and correct", Response{Correct: &correct, PartialCredit: &partial, QualityScore: &quality}, 0.9},
		{"partial wins over correct", Response{Correct: &correct, PartialCredit: &partial}, 0.5},
		{"empty response scores zero", Response{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Score(); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponseScoreBounds(t *testing.T) {
	// Out-of-range inputs clamp to [0,1].
	if got := PartialResponse(1.7).Score(); got != 1 {
		t.Errorf("partial 1.7 = %v, want 1", got)
	}
	if got := PartialResponse(-0.3).Score(); got != 0 {
		t.Errorf("partial -0.3 = %v, want 0", got)
	}
}

func TestResponseQualityMultiplier(t *testing.T) {
	r := PartialResponse(0.5)

	// 0.5 * 1.2 = 0.6
	r.QualityMultiplier = 1.2
	if got := r.Score(); !almostEqual(got, 0.6) {
		t.Errorf("multiplier 1.2: %v, want 0.6", got)
	}

	// Multiplier clamps to [0.8, 1.2]: 3.0 behaves as 1.2.
	r.QualityMultiplier = 3.0
	if got := r.Score(); !almostEqual(got, 0.6) {
		t.Errorf("multiplier 3.0: %v, want 0.6 (clamped to 1.2)", got)
	}

	// 0.5 * 0.8 = 0.4
	r.QualityMultiplier = 0.1
	if got := r.Score(); !almostEqual(got, 0.4) {
		t.Errorf("multiplier 0.1: %v, want 0.4 (clamped to 0.8)", got)
	}

	// The product never escapes [0,1].
	full := CorrectResponse(true)
	full.QualityMultiplier = 1.2
	if got := full.Score(); got != 1 {
		t.Errorf("1.0 * 1.2 = %v, want 1 (clamped)", got)
	}
}
