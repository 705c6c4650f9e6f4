// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/decisionevent"
	"github.com/proctorly/itemsel/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdate) SetSessionID(v string) *DecisionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableSessionID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *DecisionEventUpdate) SetItemID(v string) *DecisionEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableItemID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *DecisionEventUpdate) SetStrategy(v string) *DecisionEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStrategy(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *DecisionEventUpdate) SetBreakdown(v map[string]float64) *DecisionEventUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *DecisionEventUpdate) SetRationale(v string) *DecisionEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableRationale(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetPoolSize sets the "pool_size" field.
func (_u *DecisionEventUpdate) SetPoolSize(v int) *DecisionEventUpdate {
	_u.mutation.ResetPoolSize()
	_u.mutation.SetPoolSize(v)
	return _u
}

// SetNillablePoolSize sets the "pool_size" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillablePoolSize(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetPoolSize(*v)
	}
	return _u
}

// AddPoolSize adds value to the "pool_size" field.
func (_u *DecisionEventUpdate) AddPoolSize(v int) *DecisionEventUpdate {
	_u.mutation.AddPoolSize(v)
	return _u
}

// SetBiasRelaxed sets the "bias_relaxed" field.
func (_u *DecisionEventUpdate) SetBiasRelaxed(v bool) *DecisionEventUpdate {
	_u.mutation.SetBiasRelaxed(v)
	return _u
}

// SetNillableBiasRelaxed sets the "bias_relaxed" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableBiasRelaxed(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetBiasRelaxed(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := decisionevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := decisionevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rationale(); ok {
		if err := decisionevent.RationaleValidator(v); err != nil {
			return &ValidationError{Name: "rationale", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.rationale": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(decisionevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(decisionevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(decisionevent.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(decisionevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoolSize(); ok {
		_spec.SetField(decisionevent.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoolSize(); ok {
		_spec.AddField(decisionevent.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BiasRelaxed(); ok {
		_spec.SetField(decisionevent.FieldBiasRelaxed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdateOne) SetSessionID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableSessionID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *DecisionEventUpdateOne) SetItemID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableItemID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *DecisionEventUpdateOne) SetStrategy(v string) *DecisionEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStrategy(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *DecisionEventUpdateOne) SetBreakdown(v map[string]float64) *DecisionEventUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *DecisionEventUpdateOne) SetRationale(v string) *DecisionEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableRationale(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetPoolSize sets the "pool_size" field.
func (_u *DecisionEventUpdateOne) SetPoolSize(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetPoolSize()
	_u.mutation.SetPoolSize(v)
	return _u
}

// SetNillablePoolSize sets the "pool_size" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillablePoolSize(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetPoolSize(*v)
	}
	return _u
}

// AddPoolSize adds value to the "pool_size" field.
func (_u *DecisionEventUpdateOne) AddPoolSize(v int) *DecisionEventUpdateOne {
	_u.mutation.AddPoolSize(v)
	return _u
}

// SetBiasRelaxed sets the "bias_relaxed" field.
func (_u *DecisionEventUpdateOne) SetBiasRelaxed(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetBiasRelaxed(v)
	return _u
}

// SetNillableBiasRelaxed sets the "bias_relaxed" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableBiasRelaxed(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetBiasRelaxed(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := decisionevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := decisionevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rationale(); ok {
		if err := decisionevent.RationaleValidator(v); err != nil {
			return &ValidationError{Name: "rationale", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.rationale": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(decisionevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(decisionevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(decisionevent.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(decisionevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoolSize(); ok {
		_spec.SetField(decisionevent.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoolSize(); ok {
		_spec.AddField(decisionevent.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BiasRelaxed(); ok {
		_spec.SetField(decisionevent.FieldBiasRelaxed, field.TypeBool, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
