package catalog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema validates catalog import files before anything touches the
// store. IRT parameters outside these ranges are almost always data-entry
// mistakes, so they are rejected at the door.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type":    "number",
						"minimum": -4,
						"maximum": 4,
					},
					"discrimination": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
						"maximum":          4,
					},
					"guessing": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 0.5,
					},
					"type": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"skills": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"technologies": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"duration_minutes": map[string]any{
						"type":    "number",
						"minimum": 0,
					},
					"effectiveness_score": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"bias_score": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"active": map[string]any{"type": "boolean"},
				},
				"required":             []any{"id", "difficulty", "discrimination", "type"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// itemFile mirrors the JSON wire format of a catalog import file.
type itemFile struct {
	Items []itemRow `json:"items"`
}

type itemRow struct {
	ID              string   `json:"id"`
	Difficulty      float64  `json:"difficulty"`
	Discrimination  float64  `json:"discrimination"`
	Guessing        float64  `json:"guessing"`
	Type            string   `json:"type"`
	Skills          []string `json:"skills"`
	Technologies    []string `json:"technologies"`
	DurationMinutes float64  `json:"duration_minutes"`
	Effectiveness   *float64 `json:"effectiveness_score"`
	Bias            *float64 `json:"bias_score"`
	Active          *bool    `json:"active"`
}

// ParseFile validates a catalog JSON document and converts it to items.
// Missing effectiveness/bias scores take the documented defaults; missing
// active flags default to true.
func ParseFile(raw []byte) ([]Item, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compileCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var file itemFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Items))
	items := make([]Item, 0, len(file.Items))
	for _, row := range file.Items {
		if seen[row.ID] {
			return nil, fmt.Errorf("duplicate item id %q", row.ID)
		}
		seen[row.ID] = true
		items = append(items, row.toItem())
	}
	return items, nil
}

func (r itemRow) toItem() Item {
	it := Item{
		ID:             r.ID,
		Difficulty:     r.Difficulty,
		Discrimination: r.Discrimination,
		Guessing:       r.Guessing,
		Type:           r.Type,
		Skills:         r.Skills,
		Technologies:   r.Technologies,
		Duration:       time.Duration(r.DurationMinutes * float64(time.Minute)),
		Effectiveness:  DefaultEffectiveness,
		Bias:           DefaultBias,
		Active:         true,
	}
	if r.Effectiveness != nil {
		it.Effectiveness = *r.Effectiveness
	}
	if r.Bias != nil {
		it.Bias = *r.Bias
	}
	if r.Active != nil {
		it.Active = *r.Active
	}
	return it
}

// compileCatalogSchema compiles the catalog schema once.
func compileCatalogSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}
