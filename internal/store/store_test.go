package store

import (
	"context"
	"testing"
	"time"

	"github.com/proctorly/itemsel/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "q-hard", Difficulty: 1.5, Discrimination: 1.2, Type: "coding", Skills: []string{"go"}, Duration: 20 * time.Minute, Effectiveness: 0.7, Bias: 0.1, Active: true},
		{ID: "q-easy", Difficulty: -1.0, Discrimination: 0.9, Type: "mcq", Skills: []string{"sql"}, Duration: 5 * time.Minute, Effectiveness: 0.5, Bias: 0.05, Active: true},
		{ID: "q-retired", Difficulty: 0.0, Discrimination: 1.0, Type: "mcq", Skills: []string{"go"}, Duration: 5 * time.Minute, Effectiveness: 0.5, Bias: 0.1, Active: false},
	}
}

func TestCatalogReplaceAndActiveItems(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, testItems()); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	items, err := repo.ActiveItems(ctx)
	if err != nil {
		t.Fatalf("active items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("active items = %d, want 2 (retired item excluded)", len(items))
	}

	// Ascending difficulty: q-easy (-1.0) before q-hard (1.5).
	if items[0].ID != "q-easy" || items[1].ID != "q-hard" {
		t.Errorf("order = [%s %s], want [q-easy q-hard]", items[0].ID, items[1].ID)
	}
	if items[1].Duration != 20*time.Minute {
		t.Errorf("duration = %v, want 20m", items[1].Duration)
	}
	if items[0].Skills[0] != "sql" {
		t.Errorf("skills = %v, want [sql]", items[0].Skills)
	}
}

func TestCatalogReplaceAllSwapsContents(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, testItems()); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	replacement := []catalog.Item{
		{ID: "q-new", Difficulty: 0.2, Discrimination: 1.1, Type: "coding", Active: true},
	}
	if err := repo.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count after replace = %d, want 1", count)
	}
}

func TestDecisionAppendAndRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.DecisionRepo()
	ctx := context.Background()

	recs := []*DecisionRecord{
		{SessionID: "sess-1", ItemID: "q1", Strategy: "max_information", Breakdown: map[string]float64{"information": 0.8}, Rationale: "high information gain at current ability", PoolSize: 12},
		{SessionID: "sess-2", ItemID: "q2", Strategy: "balanced", Breakdown: map[string]float64{"information": 0.4}, Rationale: "selected based on adaptive algorithm", PoolSize: 30, BiasRelaxed: true},
		{SessionID: "sess-1", ItemID: "q3", Strategy: "max_information", Breakdown: map[string]float64{"information": 0.6}, Rationale: "selected based on adaptive algorithm", PoolSize: 11},
	}
	for i, rec := range recs {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Append assigns increasing sequence numbers.
	if recs[0].Sequence >= recs[1].Sequence || recs[1].Sequence >= recs[2].Sequence {
		t.Errorf("sequences not increasing: %d %d %d", recs[0].Sequence, recs[1].Sequence, recs[2].Sequence)
	}

	bySess, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(bySess) != 2 {
		t.Fatalf("sess-1 decisions = %d, want 2", len(bySess))
	}
	if bySess[0].ItemID != "q1" || bySess[1].ItemID != "q3" {
		t.Errorf("sess-1 order = [%s %s], want [q1 q3]", bySess[0].ItemID, bySess[1].ItemID)
	}
	if bySess[0].Breakdown["information"] != 0.8 {
		t.Errorf("breakdown round-trip = %v, want 0.8", bySess[0].Breakdown["information"])
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].ItemID != "q3" || recent[1].ItemID != "q2" {
		t.Errorf("recent order = [%s %s], want [q3 q2]", recent[0].ItemID, recent[1].ItemID)
	}
	if !recent[1].BiasRelaxed {
		t.Error("expected bias_relaxed to round-trip")
	}
}

func TestResponseAppendAndRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResponseRepo()
	ctx := context.Background()

	recs := []*ResponseRecord{
		{SessionID: "sess-1", ItemID: "q1", ResponseScore: 1.0, ThetaBefore: 0.0, ThetaAfter: 0.4, SEAfter: 0.9, Converged: false},
		{SessionID: "sess-1", ItemID: "q2", ResponseScore: 0.0, ThetaBefore: 0.4, ThetaAfter: 0.1, SEAfter: 0.8, Converged: false, Degraded: true},
	}
	for i, rec := range recs {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("responses = %d, want 2", len(got))
	}
	if got[0].ThetaAfter != 0.4 || got[1].ThetaAfter != 0.1 {
		t.Errorf("theta trail = [%v %v], want [0.4 0.1]", got[0].ThetaAfter, got[1].ThetaAfter)
	}
	if !got[1].Degraded {
		t.Error("expected degraded flag to round-trip")
	}
}

func TestDecisionAndResponseShareSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	dec := &DecisionRecord{SessionID: "s", ItemID: "q1", Strategy: "balanced", Breakdown: map[string]float64{}, Rationale: "selected based on adaptive algorithm", PoolSize: 1}
	if err := s.DecisionRepo().Append(ctx, dec); err != nil {
		t.Fatalf("append decision: %v", err)
	}
	resp := &ResponseRecord{SessionID: "s", ItemID: "q1", ResponseScore: 1}
	if err := s.ResponseRepo().Append(ctx, resp); err != nil {
		t.Fatalf("append response: %v", err)
	}

	// The global counter orders events across tables.
	if resp.Sequence != dec.Sequence+1 {
		t.Errorf("response sequence = %d, want %d", resp.Sequence, dec.Sequence+1)
	}
}

func TestSnapshotSaveAndBySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &SessionSnapshot{
		SessionID:     "sess-1",
		Model:         "2PL",
		Theta:         0.42,
		StandardError: 0.31,
		CILower:       -0.19,
		CIUpper:       1.03,
		AnsweredItems: []string{"q1", "q2", "q3"},
		FinalizedAt:   now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Theta != 0.42 || snap.StandardError != 0.31 {
		t.Errorf("estimate = (%v, %v), want (0.42, 0.31)", snap.Theta, snap.StandardError)
	}
	if len(snap.AnsweredItems) != 3 || snap.AnsweredItems[0] != "q1" {
		t.Errorf("answered items = %v, want [q1 q2 q3]", snap.AnsweredItems)
	}
}

func TestSnapshotSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	first := &SessionSnapshot{SessionID: "sess-1", Model: "2PL", Theta: 0.1, StandardError: 0.9, AnsweredItems: []string{"q1"}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	second := &SessionSnapshot{SessionID: "sess-1", Model: "2PL", Theta: 0.5, StandardError: 0.4, AnsweredItems: []string{"q1", "q2"}}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	snap, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if snap.Theta != 0.5 {
		t.Errorf("theta = %v, want 0.5 (latest save wins)", snap.Theta)
	}

	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}
