package irt

import "testing"

func TestOptimalNextDifficulty_NoHistory(t *testing.T) {
	if got := OptimalNextDifficulty(0.8, nil); !almostEqual(got, 0.8) {
		t.Errorf("got %f, want 0.8", got)
	}
}

func TestOptimalNextDifficulty_AboveCoveredRange(t *testing.T) {
	// theta=2 above covered [-1, 1] → step toward the uncovered high side.
	if got := OptimalNextDifficulty(2, []float64{-1, 0, 1}); !almostEqual(got, 2.5) {
		t.Errorf("got %f, want 2.5", got)
	}
}

func TestOptimalNextDifficulty_BelowCoveredRange(t *testing.T) {
	if got := OptimalNextDifficulty(-2, []float64{-1, 0, 1}); !almostEqual(got, -2.5) {
		t.Errorf("got %f, want -2.5", got)
	}
}

func TestOptimalNextDifficulty_EdgeStepClamped(t *testing.T) {
	if got := OptimalNextDifficulty(3.8, []float64{0, 1}); got > ThetaMax {
		t.Errorf("got %f, want <= %f", got, ThetaMax)
	}
}

func TestOptimalNextDifficulty_GapMidpoint(t *testing.T) {
	// theta=1.0 inside covered [-1, 3]; the only gap (-1, 3) has midpoint 1.0,
	// which is within 1.0 of theta.
	if got := OptimalNextDifficulty(1.0, []float64{-1, 3}); !almostEqual(got, 1.0) {
		t.Errorf("got %f, want 1.0", got)
	}
}

func TestOptimalNextDifficulty_FarMidpointsIgnored(t *testing.T) {
	// Gap (2, 3.8) has midpoint 2.9, more than 1.0 from theta=0.5; the
	// qualifying gap (0, 2) with midpoint 1.0 wins.
	got := OptimalNextDifficulty(0.5, []float64{0, 2, 3.8, -0.5})
	if !almostEqual(got, 1.0) {
		t.Errorf("got %f, want 1.0", got)
	}
}

func TestOptimalNextDifficulty_NoQualifyingGapDefaultsToTheta(t *testing.T) {
	// Dense coverage around theta: every gap is tiny and none beats theta.
	got := OptimalNextDifficulty(0.05, []float64{-0.1, 0, 0.1, 0.2})
	if !almostEqual(got, 0.05) {
		t.Errorf("got %f, want 0.05", got)
	}
}

func TestOptimalNextDifficulty_FirstLargestGapWins(t *testing.T) {
	// Two gaps of equal width 1.0 with midpoints equidistant from theta=0:
	// (-1.5,-0.5) and (0.5,1.5). The ascending scan keeps the first, since
	// the second does not strictly exceed it.
	got := OptimalNextDifficulty(0, []float64{-1.5, -0.5, 0.5, 1.5})
	if !almostEqual(got, -1.0) {
		t.Errorf("got %f, want -1.0 (first gap in ascending order)", got)
	}
}

func TestOptimalNextDifficulty_InputOrderIrrelevant(t *testing.T) {
	a := OptimalNextDifficulty(0.5, []float64{2, -1, 0.4, 1})
	b := OptimalNextDifficulty(0.5, []float64{-1, 0.4, 1, 2})
	if !almostEqual(a, b) {
		t.Errorf("order-dependent result: %f vs %f", a, b)
	}
}
