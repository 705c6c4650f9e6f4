package sim

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
	"github.com/proctorly/itemsel/internal/scoring"
	"github.com/proctorly/itemsel/internal/selection"
	"github.com/proctorly/itemsel/internal/session"
)

func newSimEngine(cat catalog.Catalog, seed int64) *session.Engine {
	return session.NewEngine(session.Config{
		Pool:     catalog.NewPool(cat, catalog.DefaultPoolConfig(), nil),
		Scorer:   scoring.NewScorer(nil, 0, nil),
		Guard:    selection.NewGuard(),
		Selector: selection.NewSelector(rand.New(rand.NewSource(seed))),
	})
}

func TestRunConvergesTowardTrueTheta(t *testing.T) {
	cat := SyntheticCatalog(150, 7)
	engine := newSimEngine(cat, 7)
	runner := NewRunner(engine, rand.New(rand.NewSource(7)), nil)

	rep, err := runner.Run(context.Background(), "sim-1", Config{
		TrueTheta: 1.5,
		Items:     30,
		Model:     irt.Model2PL,
		Strategy:  scoring.MaxInformation,
		Seed:      7,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rep.Steps) != 30 {
		t.Fatalf("steps = %d, want 30", len(rep.Steps))
	}

	// After 30 adaptive items the estimate should be in the truth's
	// neighborhood and far more certain than the SE=1 prior.
	if math.Abs(rep.FinalTheta-rep.TrueTheta) > 1.0 {
		t.Errorf("final theta = %v, want within 1.0 of true %v", rep.FinalTheta, rep.TrueTheta)
	}
	if rep.FinalSE >= 0.6 {
		t.Errorf("final SE = %v, want < 0.6 after 30 items", rep.FinalSE)
	}

	// SE never increases along the trail.
	prev := 1.0
	for i, st := range rep.Steps {
		if st.SE > prev+1e-12 {
			t.Errorf("step %d: SE rose from %v to %v", i, prev, st.SE)
		}
		prev = st.SE
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func() *Report {
		cat := SyntheticCatalog(80, 11)
		engine := newSimEngine(cat, 11)
		runner := NewRunner(engine, rand.New(rand.NewSource(11)), nil)
		rep, err := runner.Run(context.Background(), "sim-r", Config{
			TrueTheta: -0.5,
			Items:     10,
			Model:     irt.Model2PL,
			Strategy:  scoring.AdaptiveHybrid(scoring.DefaultWeights()),
		})
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return rep
	}

	a, b := run(), run()
	if a.FinalTheta != b.FinalTheta || a.FinalSE != b.FinalSE {
		t.Errorf("runs diverged: (%v, %v) vs (%v, %v)", a.FinalTheta, a.FinalSE, b.FinalTheta, b.FinalSE)
	}
	for i := range a.Steps {
		if a.Steps[i].ItemID != b.Steps[i].ItemID {
			t.Errorf("step %d: item %s vs %s", i, a.Steps[i].ItemID, b.Steps[i].ItemID)
		}
	}
}

func TestRunStopsWhenPoolExhausted(t *testing.T) {
	cat := SyntheticCatalog(5, 3)
	engine := newSimEngine(cat, 3)
	runner := NewRunner(engine, rand.New(rand.NewSource(3)), nil)

	rep, err := runner.Run(context.Background(), "sim-x", Config{
		TrueTheta: 0,
		Items:     20,
		Model:     irt.Model2PL,
		Strategy:  scoring.MaxInformation,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rep.Steps) != 5 {
		t.Errorf("steps = %d, want 5 (catalog size)", len(rep.Steps))
	}
	if rep.Stopped != selection.OutcomeNoItemAvailable {
		t.Errorf("stopped = %v, want no_item_available", rep.Stopped)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	engine := newSimEngine(SyntheticCatalog(10, 1), 1)
	runner := NewRunner(engine, rand.New(rand.NewSource(1)), nil)
	if _, err := runner.Run(context.Background(), "sim-bad", Config{Items: 0}); err == nil {
		t.Error("expected error for zero item count")
	}
}

func TestSyntheticCatalogBounds(t *testing.T) {
	cat := SyntheticCatalog(50, 42)
	items, err := cat.ActiveItems(context.Background())
	if err != nil {
		t.Fatalf("active items: %v", err)
	}
	if len(items) != 50 {
		t.Fatalf("items = %d, want 50", len(items))
	}
	for _, it := range items {
		if it.Difficulty < irt.ThetaMin || it.Difficulty > irt.ThetaMax {
			t.Errorf("item %s difficulty %v outside scale", it.ID, it.Difficulty)
		}
		if it.Discrimination <= 0 {
			t.Errorf("item %s discrimination %v not positive", it.ID, it.Discrimination)
		}
		if it.Bias < 0 || it.Bias >= selection.DefaultBiasThreshold+0.2 {
			t.Errorf("item %s bias %v outside synthetic range", it.ID, it.Bias)
		}
	}
}
