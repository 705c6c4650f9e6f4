package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent is one appended selection decision. The table is the
// append-only decision log consumed by fairness and audit reporting.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the decision belongs to"),
		field.String("item_id").
			NotEmpty().
			Comment("The chosen item"),
		field.String("strategy").
			NotEmpty().
			Comment("Selection strategy name"),
		field.JSON("breakdown", map[string]float64{}).
			Comment("Per-dimension score decomposition"),
		field.String("rationale").
			NotEmpty().
			Comment("Human-readable selection rationale"),
		field.Int("pool_size").
			Comment("Candidate pool size after constraint filtering"),
		field.Bool("bias_relaxed").
			Default(false).
			Comment("True when the winner passed only the relaxed bias threshold"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}
