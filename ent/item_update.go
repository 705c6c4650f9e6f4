// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/item"
	"github.com/proctorly/itemsel/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdate) SetItemID(v string) *ItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdate) SetDifficulty(v float64) *ItemUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDifficulty(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdate) AddDifficulty(v float64) *ItemUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ItemUpdate) SetDiscrimination(v float64) *ItemUpdate {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDiscrimination(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ItemUpdate) AddDiscrimination(v float64) *ItemUpdate {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetGuessing sets the "guessing" field.
func (_u *ItemUpdate) SetGuessing(v float64) *ItemUpdate {
	_u.mutation.ResetGuessing()
	_u.mutation.SetGuessing(v)
	return _u
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableGuessing(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetGuessing(*v)
	}
	return _u
}

// AddGuessing adds value to the "guessing" field.
func (_u *ItemUpdate) AddGuessing(v float64) *ItemUpdate {
	_u.mutation.AddGuessing(v)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdate) SetItemType(v string) *ItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemType(v *string) *ItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ItemUpdate) SetSkills(v []string) *ItemUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ItemUpdate) AppendSkills(v []string) *ItemUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ItemUpdate) ClearSkills() *ItemUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetTechnologies sets the "technologies" field.
func (_u *ItemUpdate) SetTechnologies(v []string) *ItemUpdate {
	_u.mutation.SetTechnologies(v)
	return _u
}

// AppendTechnologies appends value to the "technologies" field.
func (_u *ItemUpdate) AppendTechnologies(v []string) *ItemUpdate {
	_u.mutation.AppendTechnologies(v)
	return _u
}

// ClearTechnologies clears the value of the "technologies" field.
func (_u *ItemUpdate) ClearTechnologies() *ItemUpdate {
	_u.mutation.ClearTechnologies()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ItemUpdate) SetDurationSecs(v int64) *ItemUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDurationSecs(v *int64) *ItemUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ItemUpdate) AddDurationSecs(v int64) *ItemUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *ItemUpdate) SetEffectivenessScore(v float64) *ItemUpdate {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableEffectivenessScore(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *ItemUpdate) AddEffectivenessScore(v float64) *ItemUpdate {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// SetBiasScore sets the "bias_score" field.
func (_u *ItemUpdate) SetBiasScore(v float64) *ItemUpdate {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableBiasScore(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *ItemUpdate) AddBiasScore(v float64) *ItemUpdate {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ItemUpdate) SetActive(v bool) *ItemUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableActive(v *bool) *ItemUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessing(); ok {
		_spec.AddField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(item.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(item.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technologies(); ok {
		_spec.SetField(item.FieldTechnologies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechnologies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTechnologies, value)
		})
	}
	if _u.mutation.TechnologiesCleared() {
		_spec.ClearField(item.FieldTechnologies, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(item.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(item.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(item.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(item.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(item.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(item.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(item.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdateOne) SetItemID(v string) *ItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdateOne) SetDifficulty(v float64) *ItemUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDifficulty(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdateOne) AddDifficulty(v float64) *ItemUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ItemUpdateOne) SetDiscrimination(v float64) *ItemUpdateOne {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDiscrimination(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ItemUpdateOne) AddDiscrimination(v float64) *ItemUpdateOne {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetGuessing sets the "guessing" field.
func (_u *ItemUpdateOne) SetGuessing(v float64) *ItemUpdateOne {
	_u.mutation.ResetGuessing()
	_u.mutation.SetGuessing(v)
	return _u
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableGuessing(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetGuessing(*v)
	}
	return _u
}

// AddGuessing adds value to the "guessing" field.
func (_u *ItemUpdateOne) AddGuessing(v float64) *ItemUpdateOne {
	_u.mutation.AddGuessing(v)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdateOne) SetItemType(v string) *ItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemType(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ItemUpdateOne) SetSkills(v []string) *ItemUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ItemUpdateOne) AppendSkills(v []string) *ItemUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ItemUpdateOne) ClearSkills() *ItemUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetTechnologies sets the "technologies" field.
func (_u *ItemUpdateOne) SetTechnologies(v []string) *ItemUpdateOne {
	_u.mutation.SetTechnologies(v)
	return _u
}

// AppendTechnologies appends value to the "technologies" field.
func (_u *ItemUpdateOne) AppendTechnologies(v []string) *ItemUpdateOne {
	_u.mutation.AppendTechnologies(v)
	return _u
}

// ClearTechnologies clears the value of the "technologies" field.
func (_u *ItemUpdateOne) ClearTechnologies() *ItemUpdateOne {
	_u.mutation.ClearTechnologies()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ItemUpdateOne) SetDurationSecs(v int64) *ItemUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDurationSecs(v *int64) *ItemUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ItemUpdateOne) AddDurationSecs(v int64) *ItemUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *ItemUpdateOne) SetEffectivenessScore(v float64) *ItemUpdateOne {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableEffectivenessScore(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *ItemUpdateOne) AddEffectivenessScore(v float64) *ItemUpdateOne {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// SetBiasScore sets the "bias_score" field.
func (_u *ItemUpdateOne) SetBiasScore(v float64) *ItemUpdateOne {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableBiasScore(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *ItemUpdateOne) AddBiasScore(v float64) *ItemUpdateOne {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ItemUpdateOne) SetActive(v bool) *ItemUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableActive(v *bool) *ItemUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessing(); ok {
		_spec.AddField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(item.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(item.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technologies(); ok {
		_spec.SetField(item.FieldTechnologies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechnologies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTechnologies, value)
		})
	}
	if _u.mutation.TechnologiesCleared() {
		_spec.ClearField(item.FieldTechnologies, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(item.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(item.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(item.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(item.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(item.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(item.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(item.FieldActive, field.TypeBool, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
