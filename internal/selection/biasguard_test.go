package selection

import (
	"testing"

	"github.com/proctorly/itemsel/internal/scoring"
)

func candWithBias(id string, bias float64) scoring.Candidate {
	return scoring.Candidate{
		Item: itemWithID(id),
		Bias: bias,
	}
}

func TestGuard_KeepsLowBiasPool(t *testing.T) {
	g := NewGuard()
	pool := []scoring.Candidate{
		candWithBias("a", 0.1),
		candWithBias("b", 0.2),
		candWithBias("c", 0.45),
	}
	res := g.Filter(pool)
	// 2/3 ≈ 67% survive the base threshold: no relaxation.
	if res.Relaxed {
		t.Error("unexpected relaxation")
	}
	if len(res.Survivors) != 2 {
		t.Errorf("got %d survivors, want 2", len(res.Survivors))
	}
	if res.ActiveThreshold != DefaultBiasThreshold {
		t.Errorf("active threshold = %v, want %v", res.ActiveThreshold, DefaultBiasThreshold)
	}
}

func TestGuard_RelaxesWhenFewSurvive(t *testing.T) {
	// 10 candidates, 8 at bias 0.4 and 2 at 0.2: only 20% survive the base
	// threshold, so the guard relaxes to 0.5 and all 10 pass.
	g := NewGuard()
	var pool []scoring.Candidate
	for i := 0; i < 8; i++ {
		pool = append(pool, candWithBias(id(i), 0.4))
	}
	pool = append(pool, candWithBias("x1", 0.2), candWithBias("x2", 0.2))

	res := g.Filter(pool)
	if !res.Relaxed {
		t.Fatal("expected relaxation")
	}
	if len(res.Survivors) != 10 {
		t.Errorf("got %d survivors after relaxation, want 10", len(res.Survivors))
	}
	if res.ActiveThreshold != DefaultRelaxedBias {
		t.Errorf("active threshold = %v, want %v", res.ActiveThreshold, DefaultRelaxedBias)
	}
	if res.Exhausted {
		t.Error("pool is not exhausted")
	}
}

func TestGuard_NeverPassesActiveThreshold(t *testing.T) {
	g := NewGuard()
	pools := [][]scoring.Candidate{
		{candWithBias("a", 0.05), candWithBias("b", 0.31), candWithBias("c", 0.12)},
		{candWithBias("a", 0.4), candWithBias("b", 0.45)},
		{candWithBias("a", 0.29), candWithBias("b", 0.6), candWithBias("c", 0.9)},
	}
	for _, pool := range pools {
		res := g.Filter(pool)
		for _, c := range res.Survivors {
			if c.Bias >= res.ActiveThreshold {
				t.Errorf("candidate %s with bias %v passed threshold %v",
					c.Item.ID, c.Bias, res.ActiveThreshold)
			}
		}
	}
}

func TestGuard_ExhaustedAfterRelaxation(t *testing.T) {
	g := NewGuard()
	pool := []scoring.Candidate{
		candWithBias("a", 0.7),
		candWithBias("b", 0.9),
	}
	res := g.Filter(pool)
	if !res.Relaxed || !res.Exhausted {
		t.Errorf("want relaxed+exhausted, got %+v", res)
	}
	if len(res.Survivors) != 0 {
		t.Errorf("got %d survivors, want 0", len(res.Survivors))
	}
}

func TestGuard_EmptyInputIsNotExhaustion(t *testing.T) {
	res := NewGuard().Filter(nil)
	if res.Exhausted || res.Relaxed {
		t.Errorf("empty input should be infeasible upstream, got %+v", res)
	}
}

func id(i int) string {
	return string(rune('a' + i))
}
