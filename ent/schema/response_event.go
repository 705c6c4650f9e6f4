package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records one ability update: the scored response and the
// estimate transition it caused.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the response belongs to"),
		field.String("item_id").
			NotEmpty().
			Comment("Item that was answered"),
		field.Float("response_score").
			Comment("Derived response score in [0,1]"),
		field.Float("theta_before").
			Comment("Ability estimate before the update"),
		field.Float("theta_after").
			Comment("Ability estimate after the update"),
		field.Float("se_after").
			Comment("Combined standard error after the update"),
		field.Bool("converged").
			Comment("Whether the estimate moved less than the convergence delta"),
		field.Bool("degraded").
			Default(false).
			Comment("True when a numeric failure forced the fallback heuristic"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
