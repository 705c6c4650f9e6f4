package selection

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/scoring"
)

func itemWithID(id string) catalog.Item {
	return catalog.Item{ID: id, Difficulty: 0, Discrimination: 1, Type: "coding", Active: true}
}

func candWithScore(id string, score float64) scoring.Candidate {
	return scoring.Candidate{Item: itemWithID(id), Score: score}
}

func TestPick_DeterministicTopOne(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(1)))
	pool := []scoring.Candidate{
		candWithScore("b", 0.5),
		candWithScore("a", 0.9),
		candWithScore("c", 0.7),
	}
	for i := 0; i < 20; i++ {
		got, ok := s.Pick(pool, scoring.MaxInformation)
		if !ok || got.Item.ID != "a" {
			t.Fatalf("run %d: got %q, want deterministic winner \"a\"", i, got.Item.ID)
		}
	}
}

func TestPick_TieBrokenByLowestID(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(1)))
	pool := []scoring.Candidate{
		candWithScore("zz", 0.8),
		candWithScore("aa", 0.8),
		candWithScore("mm", 0.8),
	}
	got, ok := s.Pick(pool, scoring.TargetedDifficulty)
	if !ok || got.Item.ID != "aa" {
		t.Errorf("got %q, want \"aa\"", got.Item.ID)
	}
}

func TestPick_EmptyPool(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(1)))
	if _, ok := s.Pick(nil, scoring.MaxInformation); ok {
		t.Fatal("expected no winner from empty pool")
	}
}

func TestPick_HybridSamplingProportions(t *testing.T) {
	// Scores [10, 5, 1]: over many draws item "a" should win with
	// frequency 10/16, "b" 5/16, "c" 1/16.
	s := NewSelector(rand.New(rand.NewSource(42)))
	pool := []scoring.Candidate{
		candWithScore("a", 10),
		candWithScore("b", 5),
		candWithScore("c", 1),
	}

	const draws = 20000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		got, ok := s.Pick(pool, scoring.Default())
		if !ok {
			t.Fatal("no winner")
		}
		counts[got.Item.ID]++
	}

	wantA := 10.0 / 16.0
	gotA := float64(counts["a"]) / draws
	if math.Abs(gotA-wantA) > 0.05 {
		t.Errorf("item a frequency = %.3f, want %.3f ± 0.05", gotA, wantA)
	}
	wantB := 5.0 / 16.0
	gotB := float64(counts["b"]) / draws
	if math.Abs(gotB-wantB) > 0.05 {
		t.Errorf("item b frequency = %.3f, want %.3f ± 0.05", gotB, wantB)
	}
	if counts["c"] == 0 {
		t.Error("item c was never drawn")
	}
}

func TestPick_HybridSamplesOnlyTopThree(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(7)))
	pool := []scoring.Candidate{
		candWithScore("a", 10),
		candWithScore("b", 9),
		candWithScore("c", 8),
		candWithScore("d", 7),
	}
	for i := 0; i < 5000; i++ {
		got, _ := s.Pick(pool, scoring.Default())
		if got.Item.ID == "d" {
			t.Fatal("candidate outside the top 3 was drawn")
		}
	}
}

func TestPick_HybridSeedReproducible(t *testing.T) {
	pool := []scoring.Candidate{
		candWithScore("a", 3),
		candWithScore("b", 2),
		candWithScore("c", 1),
	}
	run := func() []string {
		s := NewSelector(rand.New(rand.NewSource(99)))
		var seq []string
		for i := 0; i < 50; i++ {
			got, _ := s.Pick(pool, scoring.Default())
			seq = append(seq, got.Item.ID)
		}
		return seq
	}
	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs across identical seeds: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestPick_NonPositiveScoresDegenerate(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(1)))
	pool := []scoring.Candidate{
		candWithScore("b", 0),
		candWithScore("a", 0),
	}
	got, ok := s.Pick(pool, scoring.Default())
	if !ok || got.Item.ID != "a" {
		t.Errorf("got %q, want top-ranked \"a\"", got.Item.ID)
	}
}

func TestBuildRationale(t *testing.T) {
	tests := []struct {
		name string
		c    scoring.Candidate
		want string
	}{
		{
			"all thresholds crossed",
			scoring.Candidate{Information: 0.8, Effectiveness: 0.9, Bias: 0.05, SkillCoverage: 3},
			"high information value, proven effectiveness, low bias risk, broad skill coverage",
		},
		{
			"information only",
			scoring.Candidate{Information: 0.75, Effectiveness: 0.5, Bias: 0.2},
			"high information value",
		},
		{
			"nothing crossed",
			scoring.Candidate{Information: 0.3, Effectiveness: 0.5, Bias: 0.2},
			"selected based on adaptive algorithm",
		},
	}
	for _, tt := range tests {
		if got := buildRationale(tt.c); got != tt.want {
			t.Errorf("%s: rationale = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewResult(t *testing.T) {
	winner := scoring.Candidate{
		Item:          itemWithID("it-9"),
		Information:   0.8,
		Match:         0.9,
		Effectiveness: 0.6,
		Bias:          0.05,
		SkillCoverage: 1,
		Score:         0.77,
	}
	now := time.Now()
	res := NewResult(winner, scoring.MaxInformation, 42, true, now)

	if res.ItemID != "it-9" || res.PoolSize != 42 || !res.BiasRelaxed {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Strategy != "max_information" {
		t.Errorf("strategy = %q", res.Strategy)
	}
	if res.Breakdown.Total != 0.77 {
		t.Errorf("breakdown total = %v", res.Breakdown.Total)
	}
	if res.Rationale != "high information value, low bias risk" {
		t.Errorf("rationale = %q", res.Rationale)
	}
	if !res.Timestamp.Equal(now) {
		t.Error("timestamp not preserved")
	}
}
