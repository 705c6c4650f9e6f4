// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/proctorly/itemsel/ent/decisionevent"
	"github.com/proctorly/itemsel/ent/item"
	"github.com/proctorly/itemsel/ent/responseevent"
	"github.com/proctorly/itemsel/ent/schema"
	"github.com/proctorly/itemsel/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescSessionID is the schema descriptor for session_id field.
	decisioneventDescSessionID := decisioneventFields[0].Descriptor()
	// decisionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	decisionevent.SessionIDValidator = decisioneventDescSessionID.Validators[0].(func(string) error)
	// decisioneventDescItemID is the schema descriptor for item_id field.
	decisioneventDescItemID := decisioneventFields[1].Descriptor()
	// decisionevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	decisionevent.ItemIDValidator = decisioneventDescItemID.Validators[0].(func(string) error)
	// decisioneventDescStrategy is the schema descriptor for strategy field.
	decisioneventDescStrategy := decisioneventFields[2].Descriptor()
	// decisionevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	decisionevent.StrategyValidator = decisioneventDescStrategy.Validators[0].(func(string) error)
	// decisioneventDescRationale is the schema descriptor for rationale field.
	decisioneventDescRationale := decisioneventFields[4].Descriptor()
	// decisionevent.RationaleValidator is a validator for the "rationale" field. It is called by the builders before save.
	decisionevent.RationaleValidator = decisioneventDescRationale.Validators[0].(func(string) error)
	// decisioneventDescBiasRelaxed is the schema descriptor for bias_relaxed field.
	decisioneventDescBiasRelaxed := decisioneventFields[6].Descriptor()
	// decisionevent.DefaultBiasRelaxed holds the default value on creation for the bias_relaxed field.
	decisionevent.DefaultBiasRelaxed = decisioneventDescBiasRelaxed.Default.(bool)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescGuessing is the schema descriptor for guessing field.
	itemDescGuessing := itemFields[3].Descriptor()
	// item.DefaultGuessing holds the default value on creation for the guessing field.
	item.DefaultGuessing = itemDescGuessing.Default.(float64)
	// itemDescItemType is the schema descriptor for item_type field.
	itemDescItemType := itemFields[4].Descriptor()
	// item.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	item.ItemTypeValidator = itemDescItemType.Validators[0].(func(string) error)
	// itemDescDurationSecs is the schema descriptor for duration_secs field.
	itemDescDurationSecs := itemFields[7].Descriptor()
	// item.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	item.DefaultDurationSecs = itemDescDurationSecs.Default.(int64)
	// itemDescEffectivenessScore is the schema descriptor for effectiveness_score field.
	itemDescEffectivenessScore := itemFields[8].Descriptor()
	// item.DefaultEffectivenessScore holds the default value on creation for the effectiveness_score field.
	item.DefaultEffectivenessScore = itemDescEffectivenessScore.Default.(float64)
	// itemDescBiasScore is the schema descriptor for bias_score field.
	itemDescBiasScore := itemFields[9].Descriptor()
	// item.DefaultBiasScore holds the default value on creation for the bias_score field.
	item.DefaultBiasScore = itemDescBiasScore.Default.(float64)
	// itemDescActive is the schema descriptor for active field.
	itemDescActive := itemFields[10].Descriptor()
	// item.DefaultActive holds the default value on creation for the active field.
	item.DefaultActive = itemDescActive.Default.(bool)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[1].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescDegraded is the schema descriptor for degraded field.
	responseeventDescDegraded := responseeventFields[7].Descriptor()
	// responseevent.DefaultDegraded holds the default value on creation for the degraded field.
	responseevent.DefaultDegraded = responseeventDescDegraded.Default.(bool)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescSessionID is the schema descriptor for session_id field.
	sessionsnapshotDescSessionID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsnapshot.SessionIDValidator = sessionsnapshotDescSessionID.Validators[0].(func(string) error)
	// sessionsnapshotDescModel is the schema descriptor for model field.
	sessionsnapshotDescModel := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	sessionsnapshot.ModelValidator = sessionsnapshotDescModel.Validators[0].(func(string) error)
	// sessionsnapshotDescFinalizedAt is the schema descriptor for finalized_at field.
	sessionsnapshotDescFinalizedAt := sessionsnapshotFields[7].Descriptor()
	// sessionsnapshot.DefaultFinalizedAt holds the default value on creation for the finalized_at field.
	sessionsnapshot.DefaultFinalizedAt = sessionsnapshotDescFinalizedAt.Default.(func() time.Time)
}
