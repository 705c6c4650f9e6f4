package irt

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestProbability_OpenUnitInterval(t *testing.T) {
	models := []Model{Model1PL, Model2PL, Model3PL}
	for _, m := range models {
		for theta := -4.0; theta <= 4.0; theta += 0.5 {
			for b := -3.0; b <= 3.0; b += 0.75 {
				p := Probability(theta, b, 1.2, 0.2, m)
				if p <= 0 || p >= 1 {
					t.Errorf("Probability(%v, %v, %s) = %f, want in (0,1)", theta, b, m, p)
				}
			}
		}
	}
}

func TestProbability_StrictlyIncreasingInTheta(t *testing.T) {
	for _, m := range []Model{Model1PL, Model2PL, Model3PL} {
		prev := -1.0
		for theta := -4.0; theta <= 4.0; theta += 0.25 {
			p := Probability(theta, 0.5, 1.5, 0.25, m)
			if p <= prev {
				t.Fatalf("%s: probability not strictly increasing at theta=%v: %f <= %f", m, theta, p, prev)
			}
			prev = p
		}
	}
}

func TestProbability_ExponentClampExtremes(t *testing.T) {
	// a·(theta-b) beyond ±700 must map to exactly 0 or 1, not overflow.
	if got := Probability(0, -1000, 1, 0, Model2PL); got != 1 {
		t.Errorf("high-extreme probability = %v, want exactly 1", got)
	}
	if got := Probability(0, 1000, 1, 0, Model2PL); got != 0 {
		t.Errorf("low-extreme probability = %v, want exactly 0", got)
	}
	// 3PL bottoms out at the guessing floor.
	if got := Probability(0, 1000, 1, 0.2, Model3PL); !almostEqual(got, 0.2) {
		t.Errorf("3PL low-extreme = %v, want 0.2", got)
	}
}

func TestProbability_MidpointIsHalf(t *testing.T) {
	// At theta = b the 2PL sigmoid is exactly 0.5 regardless of a.
	if got := Probability(1.3, 1.3, 2.0, 0, Model2PL); !almostEqual(got, 0.5) {
		t.Errorf("Probability at theta=b = %f, want 0.5", got)
	}
}

func TestInformation_2PLMaximizedAtDifficulty(t *testing.T) {
	const b = 0.7
	const a = 1.4
	atB := Information(b, b, a, 0, Model2PL)
	for theta := -4.0; theta <= 4.0; theta += 0.1 {
		if math.Abs(theta-b) < 1e-9 {
			continue
		}
		if Information(theta, b, a, 0, Model2PL) >= atB {
			t.Fatalf("information at theta=%v >= information at b=%v", theta, b)
		}
	}
	// Peak value is a²·0.25 = 1.96·0.25 = 0.49.
	if !almostEqual(atB, 0.49) {
		t.Errorf("peak information = %f, want 0.49", atB)
	}
}

func TestInformation_1PLIsPQ(t *testing.T) {
	p := Probability(0.5, 0, 1, 0, Model1PL)
	want := p * (1 - p)
	if got := Information(0.5, 0, 1, 0, Model1PL); !almostEqual(got, want) {
		t.Errorf("1PL information = %f, want %f", got, want)
	}
}

func TestInformation_3PLZeroDivisionGuard(t *testing.T) {
	// At the clamped extreme p=1 for c=0, so p(1-p)=0 and the guard fires.
	if got := Information(0, -1000, 1, 0, Model3PL); got != 0 {
		t.Errorf("3PL guard returned %v, want 0", got)
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in   string
		want Model
	}{
		{"1PL", Model1PL},
		{"2PL", Model2PL},
		{"3pl", Model3PL},
		{"garbage", Model2PL},
	}
	for _, tt := range tests {
		if got := ParseModel(tt.in); got != tt.want {
			t.Errorf("ParseModel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampTheta(t *testing.T) {
	if got := ClampTheta(-7); got != ThetaMin {
		t.Errorf("ClampTheta(-7) = %v, want %v", got, ThetaMin)
	}
	if got := ClampTheta(9); got != ThetaMax {
		t.Errorf("ClampTheta(9) = %v, want %v", got, ThetaMax)
	}
	if got := ClampTheta(1.25); got != 1.25 {
		t.Errorf("ClampTheta(1.25) = %v, want 1.25", got)
	}
}
