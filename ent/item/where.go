// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
	"github.com/proctorly/itemsel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDiscrimination, v))
}

// Guessing applies equality check predicate on the "guessing" field. It's identical to GuessingEQ.
func Guessing(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldGuessing, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemType, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDurationSecs, v))
}

// EffectivenessScore applies equality check predicate on the "effectiveness_score" field. It's identical to EffectivenessScoreEQ.
func EffectivenessScore(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEffectivenessScore, v))
}

// BiasScore applies equality check predicate on the "bias_score" field. It's identical to BiasScoreEQ.
func BiasScore(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldBiasScore, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldActive, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficulty, v))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDiscrimination, v))
}

// GuessingEQ applies the EQ predicate on the "guessing" field.
func GuessingEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldGuessing, v))
}

// GuessingNEQ applies the NEQ predicate on the "guessing" field.
func GuessingNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldGuessing, v))
}

// GuessingIn applies the In predicate on the "guessing" field.
func GuessingIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldGuessing, vs...))
}

// GuessingNotIn applies the NotIn predicate on the "guessing" field.
func GuessingNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldGuessing, vs...))
}

// GuessingGT applies the GT predicate on the "guessing" field.
func GuessingGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldGuessing, v))
}

// GuessingGTE applies the GTE predicate on the "guessing" field.
func GuessingGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldGuessing, v))
}

// GuessingLT applies the LT predicate on the "guessing" field.
func GuessingLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldGuessing, v))
}

// GuessingLTE applies the LTE predicate on the "guessing" field.
func GuessingLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldGuessing, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemType, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldSkills))
}

// TechnologiesIsNil applies the IsNil predicate on the "technologies" field.
func TechnologiesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldTechnologies))
}

// TechnologiesNotNil applies the NotNil predicate on the "technologies" field.
func TechnologiesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldTechnologies))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDurationSecs, v))
}

// EffectivenessScoreEQ applies the EQ predicate on the "effectiveness_score" field.
func EffectivenessScoreEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreNEQ applies the NEQ predicate on the "effectiveness_score" field.
func EffectivenessScoreNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreIn applies the In predicate on the "effectiveness_score" field.
func EffectivenessScoreIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreNotIn applies the NotIn predicate on the "effectiveness_score" field.
func EffectivenessScoreNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreGT applies the GT predicate on the "effectiveness_score" field.
func EffectivenessScoreGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldEffectivenessScore, v))
}

// EffectivenessScoreGTE applies the GTE predicate on the "effectiveness_score" field.
func EffectivenessScoreGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldEffectivenessScore, v))
}

// EffectivenessScoreLT applies the LT predicate on the "effectiveness_score" field.
func EffectivenessScoreLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldEffectivenessScore, v))
}

// EffectivenessScoreLTE applies the LTE predicate on the "effectiveness_score" field.
func EffectivenessScoreLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldEffectivenessScore, v))
}

// BiasScoreEQ applies the EQ predicate on the "bias_score" field.
func BiasScoreEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldBiasScore, v))
}

// BiasScoreNEQ applies the NEQ predicate on the "bias_score" field.
func BiasScoreNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldBiasScore, v))
}

// BiasScoreIn applies the In predicate on the "bias_score" field.
func BiasScoreIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldBiasScore, vs...))
}

// BiasScoreNotIn applies the NotIn predicate on the "bias_score" field.
func BiasScoreNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldBiasScore, vs...))
}

// BiasScoreGT applies the GT predicate on the "bias_score" field.
func BiasScoreGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldBiasScore, v))
}

// BiasScoreGTE applies the GTE predicate on the "bias_score" field.
func BiasScoreGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldBiasScore, v))
}

// BiasScoreLT applies the LT predicate on the "bias_score" field.
func BiasScoreLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldBiasScore, v))
}

// BiasScoreLTE applies the LTE predicate on the "bias_score" field.
func BiasScoreLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldBiasScore, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
