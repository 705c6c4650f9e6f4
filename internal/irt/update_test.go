package irt

import (
	"math"
	"testing"
)

func TestUpdate_CorrectAnswerRaisesTheta(t *testing.T) {
	// theta=0, item(b=0, a=1), correct, 2PL: estimate must move up and the
	// combined SE must shrink below the prior SE of 1.
	res := Update(0, 1, 0, 1, 0, 1, Model2PL)

	if res.Theta <= 0 {
		t.Errorf("Theta = %f, want > 0", res.Theta)
	}
	if res.SE >= 1 {
		t.Errorf("SE = %f, want < 1", res.SE)
	}
	if res.Degraded {
		t.Error("unexpected degraded flag")
	}
	if res.Delta != res.Theta {
		t.Errorf("Delta = %f, want %f", res.Delta, res.Theta)
	}
}

func TestUpdate_WrongAnswerLowersTheta(t *testing.T) {
	res := Update(0, 1, 0, 1, 0, 0, Model2PL)
	if res.Theta >= 0 {
		t.Errorf("Theta = %f, want < 0", res.Theta)
	}
}

func TestUpdate_SECombinedNeverExceedsInputs(t *testing.T) {
	// 1/SE_c² = 1/SE_old² + I implies SE_c <= SE_old and SE_c <= 1/√I.
	cases := []struct {
		theta, se, b, a, score float64
	}{
		{0, 1, 0, 1, 1},
		{2, 0.5, 1, 1.8, 0},
		{-3, 2, -2.5, 0.7, 0.5},
		{1, 0.3, 1, 2.2, 1},
	}
	for _, c := range cases {
		res := Update(c.theta, c.se, c.b, c.a, 0, c.score, Model2PL)
		if res.SE > c.se+1e-12 {
			t.Errorf("Update(%+v): SE %f > prior %f", c, res.SE, c.se)
		}
		info := Information(res.Theta, c.b, c.a, 0, Model2PL)
		if info > 0 {
			newSE := 1 / math.Sqrt(info)
			if res.SE > newSE+1e-12 {
				t.Errorf("Update(%+v): SE %f > item SE %f", c, res.SE, newSE)
			}
		}
	}
}

func TestUpdate_InformationGainMatchesSE(t *testing.T) {
	res := Update(0.5, 0.8, 0.2, 1.3, 0, 1, Model2PL)
	want := 1 / (res.SE * res.SE)
	if !almostEqual(res.InformationGain, want) {
		t.Errorf("InformationGain = %f, want 1/SE² = %f", res.InformationGain, want)
	}
}

func TestUpdate_ConfidenceInterval(t *testing.T) {
	res := Update(0, 1, 0, 1, 0, 1, Model2PL)
	// ±1.96·SE around the new estimate.
	if !almostEqual(res.CIUpper-res.Theta, 1.96*res.SE) {
		t.Errorf("CI upper offset = %f, want %f", res.CIUpper-res.Theta, 1.96*res.SE)
	}
	if !almostEqual(res.Theta-res.CILower, 1.96*res.SE) {
		t.Errorf("CI lower offset = %f, want %f", res.Theta-res.CILower, 1.96*res.SE)
	}
}

func TestUpdate_PartialCreditBetweenBinaryOutcomes(t *testing.T) {
	wrong := Update(0, 1, 0, 1, 0, 0, Model2PL)
	half := Update(0, 1, 0, 1, 0, 0.5, Model2PL)
	right := Update(0, 1, 0, 1, 0, 1, Model2PL)
	if !(wrong.Theta < half.Theta && half.Theta < right.Theta) {
		t.Errorf("partial credit not ordered: %f, %f, %f", wrong.Theta, half.Theta, right.Theta)
	}
}

func TestUpdate_ThetaStaysInBounds(t *testing.T) {
	res := Update(3.9, 1, 3.5, 1, 0, 1, Model2PL)
	if res.Theta > ThetaMax {
		t.Errorf("Theta = %f, want <= %f", res.Theta, ThetaMax)
	}
	res = Update(-3.9, 1, -3.5, 1, 0, 0, Model2PL)
	if res.Theta < ThetaMin {
		t.Errorf("Theta = %f, want >= %f", res.Theta, ThetaMin)
	}
}

func TestUpdate_DegradesOnBadInputs(t *testing.T) {
	res := Update(math.NaN(), 1, 0, 1, 0, 1, Model2PL)
	if !res.Degraded {
		t.Fatal("expected degraded result for NaN theta")
	}
	if res.Theta != 0 || res.SE != 1 {
		t.Errorf("degraded state = (%f, %f), want prior defaults (0, 1)", res.Theta, res.SE)
	}

	res = Update(1.5, -2, 0, 1, 0, 1, Model2PL)
	if !res.Degraded {
		t.Fatal("expected degraded result for non-positive SE")
	}
	if res.Theta != 1.5 {
		t.Errorf("degraded theta = %f, want prior 1.5", res.Theta)
	}
	if res.SE <= 0 {
		t.Errorf("degraded SE = %f, want > 0", res.SE)
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	first := Update(0.3, 0.9, -0.2, 1.1, 0, 1, Model2PL)
	for i := 0; i < 10; i++ {
		if got := Update(0.3, 0.9, -0.2, 1.1, 0, 1, Model2PL); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestUpdate_ConvergedFlagOnTinyMove(t *testing.T) {
	// Very tight prior: the penalty dominates and the estimate barely moves.
	res := Update(0, 0.01, 0, 1, 0, 1, Model2PL)
	if math.Abs(res.Delta) >= 0.001 && !res.Converged {
		t.Skip("estimate moved more than the convergence threshold")
	}
	if math.Abs(res.Delta) < 0.001 && !res.Converged {
		t.Errorf("Delta %f below threshold but Converged = false", res.Delta)
	}
}

func TestResponseScore(t *testing.T) {
	tests := []struct {
		name string
		r    Response
		want float64
	}{
		{"correct", CorrectResponse(true), 1},
		{"incorrect", CorrectResponse(false), 0},
		{"partial", PartialResponse(0.6), 0.6},
		{"partial clamped", PartialResponse(1.4), 1},
		{"quality wins over correct", func() Response {
			q := 0.7
			r := CorrectResponse(false)
			r.QualityScore = &q
			return r
		}(), 0.7},
		{"multiplier applied", Response{PartialCredit: f64(0.5), QualityMultiplier: 1.2}, 0.6},
		{"multiplier clamped low", Response{PartialCredit: f64(0.5), QualityMultiplier: 0.1}, 0.4},
		{"multiplier clamped high", Response{PartialCredit: f64(0.5), QualityMultiplier: 9}, 0.6},
		{"empty response", Response{}, 0},
	}
	for _, tt := range tests {
		if got := tt.r.Score(); !almostEqual(got, tt.want) {
			t.Errorf("%s: Score() = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func f64(v float64) *float64 { return &v }
