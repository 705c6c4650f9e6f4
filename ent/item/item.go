// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDiscrimination holds the string denoting the discrimination field in the database.
	FieldDiscrimination = "discrimination"
	// FieldGuessing holds the string denoting the guessing field in the database.
	FieldGuessing = "guessing"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldTechnologies holds the string denoting the technologies field in the database.
	FieldTechnologies = "technologies"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldEffectivenessScore holds the string denoting the effectiveness_score field in the database.
	FieldEffectivenessScore = "effectiveness_score"
	// FieldBiasScore holds the string denoting the bias_score field in the database.
	FieldBiasScore = "bias_score"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldDifficulty,
	FieldDiscrimination,
	FieldGuessing,
	FieldItemType,
	FieldSkills,
	FieldTechnologies,
	FieldDurationSecs,
	FieldEffectivenessScore,
	FieldBiasScore,
	FieldActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DefaultGuessing holds the default value on creation for the "guessing" field.
	DefaultGuessing float64
	// ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	ItemTypeValidator func(string) error
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int64
	// DefaultEffectivenessScore holds the default value on creation for the "effectiveness_score" field.
	DefaultEffectivenessScore float64
	// DefaultBiasScore holds the default value on creation for the "bias_score" field.
	DefaultBiasScore float64
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDiscrimination orders the results by the discrimination field.
func ByDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscrimination, opts...).ToFunc()
}

// ByGuessing orders the results by the guessing field.
func ByGuessing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessing, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByEffectivenessScore orders the results by the effectiveness_score field.
func ByEffectivenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectivenessScore, opts...).ToFunc()
}

// ByBiasScore orders the results by the bias_score field.
func ByBiasScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiasScore, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
