package scoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
)

func testItem(id string, b float64) catalog.Item {
	return catalog.Item{
		ID:             id,
		Difficulty:     b,
		Discrimination: 1.2,
		Type:           "coding",
		Skills:         []string{"algorithms", "go"},
		Effectiveness:  catalog.DefaultEffectiveness,
		Bias:           catalog.DefaultBias,
		Active:         true,
	}
}

func TestScoreAll_InformationAndMatch(t *testing.T) {
	s := NewScorer(nil, 0, nil)
	items := []catalog.Item{testItem("a", 0), testItem("b", 3)}

	got := s.ScoreAll(context.Background(), items, 0, MaxInformation)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}

	// Item at b=theta carries maximal information and perfect match.
	wantInfo := irt.Information(0, 0, 1.2, 0, irt.Model2PL)
	if !almostEqual(got[0].Information, wantInfo) {
		t.Errorf("information = %f, want %f", got[0].Information, wantInfo)
	}
	if !almostEqual(got[0].Match, 1.0) {
		t.Errorf("match = %f, want 1.0", got[0].Match)
	}
	// |3-0|/3 = 1 → match 0.
	if !almostEqual(got[1].Match, 0.0) {
		t.Errorf("far match = %f, want 0.0", got[1].Match)
	}
	if got[0].Information <= got[1].Information {
		t.Error("on-target item should carry more information")
	}
}

func TestScoreAll_NilProviderUsesCatalogScores(t *testing.T) {
	s := NewScorer(nil, 0, nil)
	it := testItem("a", 0)
	it.Effectiveness = 0.9
	it.Bias = 0.25

	got := s.ScoreAll(context.Background(), []catalog.Item{it}, 0, MaxInformation)
	if got[0].Effectiveness != 0.9 || got[0].Bias != 0.25 {
		t.Errorf("catalog scores not used: %+v", got[0])
	}
	if len(got[0].Degraded) != 0 {
		t.Errorf("unexpected degradations: %v", got[0].Degraded)
	}
}

func TestScoreAll_ProviderOverridesCatalogScores(t *testing.T) {
	p := &StaticProvider{ByID: map[string]Scores{
		"a": {Effectiveness: 0.8, Bias: 0.02},
	}}
	s := NewScorer(p, time.Second, nil)

	got := s.ScoreAll(context.Background(), []catalog.Item{testItem("a", 0)}, 0, MaxInformation)
	if got[0].Effectiveness != 0.8 || got[0].Bias != 0.02 {
		t.Errorf("provider scores not applied: %+v", got[0])
	}
}

func TestScoreAll_ProviderFailureFailsOpen(t *testing.T) {
	p := &StaticProvider{Err: errors.New("scoring service down")}
	s := NewScorer(p, time.Second, nil)
	it := testItem("a", 0)

	got := s.ScoreAll(context.Background(), []catalog.Item{it}, 0, MaxInformation)
	// Falls back to the catalog row values and records the degradation.
	if got[0].Effectiveness != it.Effectiveness || got[0].Bias != it.Bias {
		t.Errorf("fallback scores wrong: %+v", got[0])
	}
	if !slices.Contains(got[0].Degraded, DegradedExternalScores) {
		t.Errorf("degradation not recorded: %v", got[0].Degraded)
	}
	if got[0].Score <= 0 {
		t.Error("selection score should still be computed from defaults")
	}
}

func TestScoreAll_SlowProviderDoesNotBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, `{"effectiveness_score":0.9,"bias_score":0.1}`)
	}))
	defer srv.Close()

	s := NewScorer(NewHTTPProvider(srv.URL, 20*time.Millisecond), 20*time.Millisecond, nil)
	it := testItem("a", 0)

	start := time.Now()
	got := s.ScoreAll(context.Background(), []catalog.Item{it}, 0, MaxInformation)
	if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
		t.Errorf("scoring blocked on slow provider for %v", elapsed)
	}
	if !slices.Contains(got[0].Degraded, DegradedExternalScores) {
		t.Errorf("timeout degradation not recorded: %v", got[0].Degraded)
	}
	if got[0].Effectiveness != it.Effectiveness {
		t.Errorf("expected catalog fallback, got %+v", got[0])
	}
}

func TestHTTPProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/items/it-1/scores" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"effectiveness_score":0.66,"bias_score":0.12}`)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second)
	got, err := p.ItemScores(context.Background(), "it-1")
	if err != nil {
		t.Fatalf("ItemScores: %v", err)
	}
	if got.Effectiveness != 0.66 || got.Bias != 0.12 {
		t.Errorf("got %+v", got)
	}
}

func TestHTTPProvider_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second)
	if _, err := p.ItemScores(context.Background(), "it-1"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestScoreAll_ResultsKeepInputOrder(t *testing.T) {
	s := NewScorer(nil, 0, nil)
	var items []catalog.Item
	for i := 0; i < 64; i++ {
		items = append(items, testItem(fmt.Sprintf("it-%02d", i), float64(i%7)-3))
	}
	got := s.ScoreAll(context.Background(), items, 0.5, Default())
	for i, c := range got {
		if c.Item.ID != items[i].ID {
			t.Fatalf("result %d out of order: %s", i, c.Item.ID)
		}
	}
}
