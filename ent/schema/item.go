package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is one row of the assessment item catalog, including its IRT
// parameters and the externally supplied effectiveness/bias scores.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			NotEmpty().
			Comment("Stable external identifier"),
		field.Float("difficulty").
			Comment("IRT difficulty b"),
		field.Float("discrimination").
			Comment("IRT discrimination a"),
		field.Float("guessing").
			Default(0).
			Comment("IRT guessing c (3PL only)"),
		field.String("item_type").
			NotEmpty().
			Comment("coding, multiple_choice, free_response, ..."),
		field.JSON("skills", []string{}).
			Optional().
			Comment("Skill areas the item covers"),
		field.JSON("technologies", []string{}).
			Optional().
			Comment("Technologies the item exercises"),
		field.Int64("duration_secs").
			Default(0).
			Comment("Expected time to answer, in seconds"),
		field.Float("effectiveness_score").
			Default(0.5).
			Comment("ML-predicted effectiveness, default 0.5 when unscored"),
		field.Float("bias_score").
			Default(0.1).
			Comment("ML-predicted fairness risk, default 0.1 when unscored"),
		field.Bool("active").
			Default(true).
			Comment("Inactive items never enter a candidate pool"),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("active"),
		index.Fields("difficulty"),
	}
}
