package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot is the read-only final state of a finalized session:
// the last ability estimate, its uncertainty, and the answered items in
// submission order.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("One snapshot per finalized session"),
		field.String("model").
			NotEmpty().
			Comment("IRT model label (1PL/2PL/3PL)"),
		field.Float("theta").
			Comment("Final ability estimate"),
		field.Float("standard_error").
			Comment("Final standard error"),
		field.Float("ci_lower").
			Comment("95% confidence interval lower bound"),
		field.Float("ci_upper").
			Comment("95% confidence interval upper bound"),
		field.JSON("answered_items", []string{}).
			Comment("Answered item ids in submission order"),
		field.Time("finalized_at").
			Default(time.Now).
			Comment("When the session was finalized"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("finalized_at"),
	}
}
