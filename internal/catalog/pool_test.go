package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeCatalog is a Catalog stub with a switchable error.
type fakeCatalog struct {
	items []Item
	err   error
	calls int
}

func (f *fakeCatalog) ActiveItems(ctx context.Context) ([]Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func testItems() []Item {
	return []Item{
		{ID: "it-3", Difficulty: 1.5, Discrimination: 1, Type: "coding", Skills: []string{"algorithms"}, Technologies: []string{"go"}, Duration: 10 * time.Minute, Active: true},
		{ID: "it-1", Difficulty: -0.5, Discrimination: 1, Type: "coding", Skills: []string{"data-structures"}, Technologies: []string{"go"}, Duration: 5 * time.Minute, Active: true},
		{ID: "it-2", Difficulty: 0.5, Discrimination: 1, Type: "multiple_choice", Skills: []string{"sql"}, Technologies: []string{"postgres"}, Duration: 2 * time.Minute, Active: true},
		{ID: "it-4", Difficulty: 3.0, Discrimination: 1, Type: "coding", Skills: []string{"concurrency"}, Technologies: []string{"go"}, Duration: 20 * time.Minute, Active: true},
	}
}

func newTestPool(t *testing.T, cat Catalog, cfg PoolConfig) *Pool {
	t.Helper()
	return NewPool(cat, cfg, nil)
}

func TestLoad_OrderedByDifficulty(t *testing.T) {
	p := newTestPool(t, &fakeCatalog{items: testItems()}, DefaultPoolConfig())
	got, err := p.Load(context.Background(), Constraints{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d items, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Difficulty < got[i-1].Difficulty {
			t.Errorf("items not in ascending difficulty order at %d", i)
		}
	}
}

func TestLoad_NeverReturnsExcludedIDs(t *testing.T) {
	p := newTestPool(t, &fakeCatalog{items: testItems()}, DefaultPoolConfig())

	// Every permutation of exclusions must be honored.
	exclusions := [][]string{
		nil,
		{"it-1"},
		{"it-2", "it-4"},
		{"it-1", "it-2", "it-3", "it-4"},
	}
	for _, excl := range exclusions {
		got, err := p.Load(context.Background(), Constraints{ExcludedIDs: excl})
		if err != nil {
			t.Fatalf("load with exclusions %v: %v", excl, err)
		}
		for _, it := range got {
			for _, id := range excl {
				if it.ID == id {
					t.Errorf("excluded id %q returned (exclusions %v)", id, excl)
				}
			}
		}
	}
}

func TestLoad_InfeasibleRangeIsEmpty(t *testing.T) {
	// min > max can match nothing; the engine maps this to no_item_available.
	p := newTestPool(t, &fakeCatalog{items: testItems()}, DefaultPoolConfig())
	got, err := p.Load(context.Background(), Constraints{MinDifficulty: 3.5, MaxDifficulty: -3.5})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestLoad_FiltersByTechnologySkillTypeDuration(t *testing.T) {
	p := newTestPool(t, &fakeCatalog{items: testItems()}, DefaultPoolConfig())
	ctx := context.Background()

	got, _ := p.Load(ctx, Constraints{RequiredTechnologies: []string{"postgres"}})
	if len(got) != 1 || got[0].ID != "it-2" {
		t.Errorf("technology filter: got %v", ids(got))
	}

	got, _ = p.Load(ctx, Constraints{SkillAreas: []string{"algorithms", "concurrency"}})
	if len(got) != 2 {
		t.Errorf("skill filter: got %v", ids(got))
	}

	got, _ = p.Load(ctx, Constraints{PreferredTypes: []string{"multiple_choice"}})
	if len(got) != 1 || got[0].ID != "it-2" {
		t.Errorf("type filter: got %v", ids(got))
	}

	got, _ = p.Load(ctx, Constraints{MaxDuration: 6 * time.Minute})
	if len(got) != 2 {
		t.Errorf("duration filter: got %v", ids(got))
	}
}

func TestLoad_CapsPoolSize(t *testing.T) {
	var many []Item
	for i := 0; i < 50; i++ {
		many = append(many, Item{
			ID:             fmt.Sprintf("it-%03d", i),
			Difficulty:     float64(i%9) - 4,
			Discrimination: 1,
			Type:           "coding",
			Active:         true,
		})
	}
	p := newTestPool(t, &fakeCatalog{items: many}, PoolConfig{Cap: 10, TTL: time.Hour})
	got, err := p.Load(context.Background(), Constraints{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("got %d items, want cap of 10", len(got))
	}
}

func TestLoad_CachesWithinTTL(t *testing.T) {
	cat := &fakeCatalog{items: testItems()}
	p := newTestPool(t, cat, PoolConfig{Cap: 200, TTL: time.Hour})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := p.Load(ctx, Constraints{}); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	if cat.calls != 1 {
		t.Errorf("catalog fetched %d times within TTL, want 1", cat.calls)
	}
}

func TestLoad_StaleSnapshotOnRefreshFailure(t *testing.T) {
	cat := &fakeCatalog{items: testItems()}
	p := newTestPool(t, cat, PoolConfig{Cap: 200, TTL: time.Nanosecond})
	ctx := context.Background()

	if _, err := p.Load(ctx, Constraints{}); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	// Subsequent refresh fails; the stale snapshot must still be served.
	cat.err = errors.New("catalog store unreachable")
	time.Sleep(time.Millisecond)
	got, err := p.Load(ctx, Constraints{})
	if err != nil {
		t.Fatalf("load after refresh failure: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("got %d items from stale snapshot, want 4", len(got))
	}
}

func TestLoad_ErrorWithoutAnySnapshot(t *testing.T) {
	p := newTestPool(t, &fakeCatalog{err: errors.New("down")}, DefaultPoolConfig())
	if _, err := p.Load(context.Background(), Constraints{}); err == nil {
		t.Fatal("expected error when no snapshot was ever loaded")
	}
}

func TestLoad_AvoidSimilarCollapsesDuplicates(t *testing.T) {
	items := []Item{
		{ID: "b", Difficulty: 0.2, Discrimination: 1, Type: "coding", Skills: []string{"sql", "joins"}, Active: true},
		{ID: "a", Difficulty: 0.4, Discrimination: 1, Type: "coding", Skills: []string{"joins", "sql"}, Active: true},
		{ID: "c", Difficulty: 0.6, Discrimination: 1, Type: "coding", Skills: []string{"sql"}, Active: true},
	}
	p := newTestPool(t, &fakeCatalog{items: items}, DefaultPoolConfig())
	got, err := p.Load(context.Background(), Constraints{AvoidSimilar: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// "a" and "b" share type and skill set; lowest id wins.
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 items", ids(got))
	}
	for _, it := range got {
		if it.ID == "b" {
			t.Error("duplicate representative not collapsed to lowest id")
		}
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
