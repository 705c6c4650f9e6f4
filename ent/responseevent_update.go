// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/predicate"
	"github.com/proctorly/itemsel/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v string) *ResponseEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetResponseScore sets the "response_score" field.
func (_u *ResponseEventUpdate) SetResponseScore(v float64) *ResponseEventUpdate {
	_u.mutation.ResetResponseScore()
	_u.mutation.SetResponseScore(v)
	return _u
}

// SetNillableResponseScore sets the "response_score" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableResponseScore(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetResponseScore(*v)
	}
	return _u
}

// AddResponseScore adds value to the "response_score" field.
func (_u *ResponseEventUpdate) AddResponseScore(v float64) *ResponseEventUpdate {
	_u.mutation.AddResponseScore(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *ResponseEventUpdate) SetThetaBefore(v float64) *ResponseEventUpdate {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableThetaBefore(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *ResponseEventUpdate) AddThetaBefore(v float64) *ResponseEventUpdate {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdate) SetThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableThetaAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdate) AddThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetSeAfter sets the "se_after" field.
func (_u *ResponseEventUpdate) SetSeAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetSeAfter()
	_u.mutation.SetSeAfter(v)
	return _u
}

// SetNillableSeAfter sets the "se_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSeAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetSeAfter(*v)
	}
	return _u
}

// AddSeAfter adds value to the "se_after" field.
func (_u *ResponseEventUpdate) AddSeAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddSeAfter(v)
	return _u
}

// SetConverged sets the "converged" field.
func (_u *ResponseEventUpdate) SetConverged(v bool) *ResponseEventUpdate {
	_u.mutation.SetConverged(v)
	return _u
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableConverged(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetConverged(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ResponseEventUpdate) SetDegraded(v bool) *ResponseEventUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDegraded(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseScore(); ok {
		_spec.SetField(responseevent.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseScore(); ok {
		_spec.AddField(responseevent.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(responseevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(responseevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeAfter(); ok {
		_spec.SetField(responseevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeAfter(); ok {
		_spec.AddField(responseevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Converged(); ok {
		_spec.SetField(responseevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(responseevent.FieldDegraded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetResponseScore sets the "response_score" field.
func (_u *ResponseEventUpdateOne) SetResponseScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetResponseScore()
	_u.mutation.SetResponseScore(v)
	return _u
}

// SetNillableResponseScore sets the "response_score" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableResponseScore(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetResponseScore(*v)
	}
	return _u
}

// AddResponseScore adds value to the "response_score" field.
func (_u *ResponseEventUpdateOne) AddResponseScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddResponseScore(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *ResponseEventUpdateOne) SetThetaBefore(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableThetaBefore(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *ResponseEventUpdateOne) AddThetaBefore(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdateOne) SetThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableThetaAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdateOne) AddThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetSeAfter sets the "se_after" field.
func (_u *ResponseEventUpdateOne) SetSeAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetSeAfter()
	_u.mutation.SetSeAfter(v)
	return _u
}

// SetNillableSeAfter sets the "se_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSeAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSeAfter(*v)
	}
	return _u
}

// AddSeAfter adds value to the "se_after" field.
func (_u *ResponseEventUpdateOne) AddSeAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddSeAfter(v)
	return _u
}

// SetConverged sets the "converged" field.
func (_u *ResponseEventUpdateOne) SetConverged(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetConverged(v)
	return _u
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableConverged(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetConverged(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ResponseEventUpdateOne) SetDegraded(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDegraded(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseScore(); ok {
		_spec.SetField(responseevent.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseScore(); ok {
		_spec.AddField(responseevent.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(responseevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(responseevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeAfter(); ok {
		_spec.SetField(responseevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeAfter(); ok {
		_spec.AddField(responseevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Converged(); ok {
		_spec.SetField(responseevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(responseevent.FieldDegraded, field.TypeBool, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
