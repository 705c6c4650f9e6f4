package catalog

import (
	"strings"
	"testing"
	"time"
)

const validCatalogJSON = `{
	"items": [
		{
			"id": "go-chan-01",
			"difficulty": 0.8,
			"discrimination": 1.4,
			"guessing": 0.1,
			"type": "coding",
			"skills": ["concurrency", "channels"],
			"technologies": ["go"],
			"duration_minutes": 12,
			"effectiveness_score": 0.75,
			"bias_score": 0.05
		},
		{
			"id": "sql-join-02",
			"difficulty": -0.5,
			"discrimination": 1.0,
			"type": "multiple_choice"
		}
	]
}`

func TestParseFile_Valid(t *testing.T) {
	items, err := ParseFile([]byte(validCatalogJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "go-chan-01" || first.Duration != 12*time.Minute {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Effectiveness != 0.75 || first.Bias != 0.05 {
		t.Errorf("explicit scores not preserved: %+v", first)
	}

	// Second item omits optional fields: documented defaults apply.
	second := items[1]
	if second.Effectiveness != DefaultEffectiveness {
		t.Errorf("effectiveness = %v, want default %v", second.Effectiveness, DefaultEffectiveness)
	}
	if second.Bias != DefaultBias {
		t.Errorf("bias = %v, want default %v", second.Bias, DefaultBias)
	}
	if !second.Active {
		t.Error("active should default to true")
	}
}

func TestParseFile_RejectsOutOfRangeDifficulty(t *testing.T) {
	raw := `{"items":[{"id":"x","difficulty":7.5,"discrimination":1,"type":"coding"}]}`
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Fatal("expected schema validation error for difficulty 7.5")
	}
}

func TestParseFile_RejectsMissingRequired(t *testing.T) {
	raw := `{"items":[{"id":"x","difficulty":0.5}]}`
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Fatal("expected schema validation error for missing fields")
	}
}

func TestParseFile_RejectsUnknownFields(t *testing.T) {
	raw := `{"items":[{"id":"x","difficulty":0.5,"discrimination":1,"type":"coding","bogus":1}]}`
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Fatal("expected schema validation error for unknown field")
	}
}

func TestParseFile_RejectsDuplicateIDs(t *testing.T) {
	raw := `{"items":[
		{"id":"x","difficulty":0.5,"discrimination":1,"type":"coding"},
		{"id":"x","difficulty":1.5,"discrimination":1,"type":"coding"}
	]}`
	_, err := ParseFile([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestParseFile_RejectsInvalidJSON(t *testing.T) {
	if _, err := ParseFile([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
