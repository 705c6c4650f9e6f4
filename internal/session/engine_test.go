package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
	"github.com/proctorly/itemsel/internal/scoring"
	"github.com/proctorly/itemsel/internal/selection"
)

type fakeCatalog struct {
	items []catalog.Item
	err   error
}

func (f *fakeCatalog) ActiveItems(ctx context.Context) ([]catalog.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func spreadItems() []catalog.Item {
	var items []catalog.Item
	for i, b := range []float64{-2, -1, -0.5, 0, 0.5, 1, 2} {
		items = append(items, catalog.Item{
			ID:             string(rune('a'+i)) + "-item",
			Difficulty:     b,
			Discrimination: 1.0,
			Type:           "mcq",
			Skills:         []string{"algebra"},
			Effectiveness:  0.5,
			Bias:           0.1,
			Active:         true,
		})
	}
	return items
}

func newTestEngine(t *testing.T, cat catalog.Catalog) *Engine {
	t.Helper()
	return NewEngine(Config{
		Pool:     catalog.NewPool(cat, catalog.DefaultPoolConfig(), nil),
		Scorer:   scoring.NewScorer(nil, 0, nil),
		Guard:    selection.NewGuard(),
		Selector: selection.NewSelector(rand.New(rand.NewSource(1))),
	})
}

func TestStartSessionDuplicate(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})

	st, err := e.StartSession("s1", irt.Model2PL)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.Theta != 0 || st.SE != 1 {
		t.Errorf("initial state = (%v, %v), want (0, 1)", st.Theta, st.SE)
	}
	if st.Phase != PhaseInitialized {
		t.Errorf("phase = %v, want initialized", st.Phase)
	}

	if _, err := e.StartSession("s1", irt.Model2PL); !errors.Is(err, ErrSessionExists) {
		t.Errorf("duplicate start err = %v, want ErrSessionExists", err)
	}
}

func TestSelectReturnsItem(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	dec, err := e.Select(context.Background(), "s1", catalog.Constraints{}, scoring.MaxInformation)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if dec.Outcome != selection.OutcomeSelected {
		t.Fatalf("outcome = %v, want selected", dec.Outcome)
	}
	if dec.Result == nil || dec.Result.ItemID == "" {
		t.Fatal("expected a concrete winning item")
	}
	if dec.Result.PoolSize != 7 {
		t.Errorf("pool size = %d, want 7", dec.Result.PoolSize)
	}
	if dec.Result.Rationale == "" {
		t.Error("expected a non-empty rationale")
	}

	// At theta=0 the max-information winner is the b=0 item.
	if dec.Result.ItemID != "d-item" {
		t.Errorf("winner = %s, want d-item (b=0 at theta=0)", dec.Result.ItemID)
	}
}

func TestSelectInfeasibleConstraints(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	// min above max leaves an empty range.
	dec, err := e.Select(context.Background(), "s1", catalog.Constraints{
		MinDifficulty: 3.5,
		MaxDifficulty: -3.5,
	}, scoring.Default())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if dec.Outcome != selection.OutcomeNoItemAvailable {
		t.Errorf("outcome = %v, want no_item_available", dec.Outcome)
	}
	if dec.Result != nil {
		t.Error("expected nil result for infeasible constraints")
	}
}

func TestSelectBiasRelaxation(t *testing.T) {
	// 8 of 10 items at bias 0.4, 2 at 0.2: only 20% pass the base
	// threshold, so the guard relaxes to 0.5 and all 10 qualify.
	var items []catalog.Item
	for i := 0; i < 10; i++ {
		bias := 0.4
		if i < 2 {
			bias = 0.2
		}
		items = append(items, catalog.Item{
			ID:             string(rune('a'+i)) + "-q",
			Difficulty:     float64(i)*0.1 - 0.5,
			Discrimination: 1.0,
			Type:           "mcq",
			Effectiveness:  0.5,
			Bias:           bias,
			Active:         true,
		})
	}
	e := newTestEngine(t, &fakeCatalog{items: items})
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	dec, err := e.Select(context.Background(), "s1", catalog.Constraints{}, scoring.MaxInformation)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if dec.Outcome != selection.OutcomeSelected {
		t.Fatalf("outcome = %v, want selected", dec.Outcome)
	}
	if !dec.Result.BiasRelaxed {
		t.Error("expected the bias_relaxed flag on the decision")
	}
}

func TestSelectBiasExhausted(t *testing.T) {
	items := spreadItems()
	for i := range items {
		items[i].Bias = 0.6 // above even the relaxed threshold
	}
	e := newTestEngine(t, &fakeCatalog{items: items})
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	dec, err := e.Select(context.Background(), "s1", catalog.Constraints{}, scoring.Default())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if dec.Outcome != selection.OutcomeBiasFilterExhausted {
		t.Errorf("outcome = %v, want bias_filter_exhausted", dec.Outcome)
	}
}

func TestSelectExcludesAnsweredItems(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 7; i++ {
		dec, err := e.Select(ctx, "s1", catalog.Constraints{}, scoring.MaxInformation)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if dec.Outcome != selection.OutcomeSelected {
			t.Fatalf("select %d: outcome = %v", i, dec.Outcome)
		}
		if seen[dec.Result.ItemID] {
			t.Fatalf("select %d: item %s selected twice", i, dec.Result.ItemID)
		}
		seen[dec.Result.ItemID] = true

		if _, err := e.UpdateAbility(ctx, "s1", dec.Result.ItemID, irt.CorrectResponse(true)); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	// Catalog exhausted: everything was answered.
	dec, err := e.Select(ctx, "s1", catalog.Constraints{}, scoring.MaxInformation)
	if err != nil {
		t.Fatalf("final select: %v", err)
	}
	if dec.Outcome != selection.OutcomeNoItemAvailable {
		t.Errorf("outcome = %v, want no_item_available after exhausting catalog", dec.Outcome)
	}
}

func TestUpdateAbilityCorrectAnswerRaisesTheta(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	// d-item has b=0, a=1: a correct answer at theta=0 must raise theta
	// and shrink SE below the prior 1.0.
	res, err := e.UpdateAbility(ctx, "s1", "d-item", irt.CorrectResponse(true))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Theta <= 0 {
		t.Errorf("theta = %v, want > 0 after correct answer", res.Theta)
	}
	if res.SE >= 1 {
		t.Errorf("SE = %v, want < 1", res.SE)
	}

	st, err := e.State("s1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st.Phase != PhaseAnswered {
		t.Errorf("phase = %v, want answered", st.Phase)
	}
	if len(st.Answered) != 1 || st.Answered[0] != "d-item" {
		t.Errorf("answered = %v, want [d-item]", st.Answered)
	}
	if st.Theta != res.Theta || st.SE != res.SE {
		t.Error("state does not reflect the update result")
	}
}

func TestUpdateAbilityRejectsRepeatAnswer(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := e.UpdateAbility(ctx, "s1", "d-item", irt.CorrectResponse(true)); err != nil {
		t.Fatalf("first update: %v", err)
	}
	_, err := e.UpdateAbility(ctx, "s1", "d-item", irt.CorrectResponse(false))
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("repeat update err = %v, want ErrAlreadyAnswered", err)
	}
}

func TestUpdateAbilityUnknownItem(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.UpdateAbility(context.Background(), "s1", "nope", irt.CorrectResponse(true)); err == nil {
		t.Error("expected error for unknown item id")
	}
}

func TestFinalizeMakesSessionReadOnly(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.UpdateAbility(ctx, "s1", "d-item", irt.CorrectResponse(true)); err != nil {
		t.Fatalf("update: %v", err)
	}

	snap, err := e.Finalize(ctx, "s1")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if snap.SessionID != "s1" || snap.Model != "2PL" {
		t.Errorf("snapshot header = (%s, %s), want (s1, 2PL)", snap.SessionID, snap.Model)
	}
	if len(snap.AnsweredItems) != 1 || snap.AnsweredItems[0] != "d-item" {
		t.Errorf("answered items = %v, want [d-item]", snap.AnsweredItems)
	}

	// No transition is reversible.
	if _, err := e.UpdateAbility(ctx, "s1", "e-item", irt.CorrectResponse(true)); !errors.Is(err, ErrSessionFinalized) {
		t.Errorf("update after finalize err = %v, want ErrSessionFinalized", err)
	}
	if _, err := e.Select(ctx, "s1", catalog.Constraints{}, scoring.Default()); !errors.Is(err, ErrSessionFinalized) {
		t.Errorf("select after finalize err = %v, want ErrSessionFinalized", err)
	}
	if _, err := e.Finalize(ctx, "s1"); !errors.Is(err, ErrSessionFinalized) {
		t.Errorf("double finalize err = %v, want ErrSessionFinalized", err)
	}
}

func TestNextDifficultyTracksGaps(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	// No history: the estimate itself is the target.
	next, err := e.NextDifficulty("s1")
	if err != nil {
		t.Fatalf("next difficulty: %v", err)
	}
	if next != 0 {
		t.Errorf("next = %v, want 0 for fresh session", next)
	}

	if _, err := e.UpdateAbility(ctx, "s1", "b-item", irt.CorrectResponse(true)); err != nil {
		t.Fatalf("update: %v", err)
	}
	next, err = e.NextDifficulty("s1")
	if err != nil {
		t.Fatalf("next difficulty: %v", err)
	}
	if next < irt.ThetaMin || next > irt.ThetaMax {
		t.Errorf("next = %v, outside theta bounds", next)
	}
}

func TestSessionNotFound(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()

	if _, err := e.Select(ctx, "ghost", catalog.Constraints{}, scoring.Default()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("select err = %v, want ErrSessionNotFound", err)
	}
	if _, err := e.UpdateAbility(ctx, "ghost", "d-item", irt.CorrectResponse(true)); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("update err = %v, want ErrSessionNotFound", err)
	}
	if _, err := e.Finalize(ctx, "ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("finalize err = %v, want ErrSessionNotFound", err)
	}
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	e := newTestEngine(t, &fakeCatalog{items: spreadItems()})
	ctx := context.Background()
	if _, err := e.StartSession("s1", irt.Model2PL); err != nil {
		t.Fatalf("start: %v", err)
	}

	ids := []string{"a-item", "b-item", "c-item", "d-item", "e-item", "f-item", "g-item"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.UpdateAbility(ctx, "s1", id, irt.CorrectResponse(true)); err != nil {
				t.Errorf("update %s: %v", id, err)
			}
		}()
	}
	wg.Wait()

	st, err := e.State("s1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(st.Answered) != len(ids) {
		t.Errorf("answered = %d items, want %d", len(st.Answered), len(ids))
	}
	if len(st.Answered) != len(st.AnsweredDifficulties) {
		t.Error("answered ids and difficulties out of sync")
	}
}
