// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/predicate"
	"github.com/proctorly/itemsel/ent/sessionsnapshot"
)

// SessionSnapshotUpdate is the builder for updating SessionSnapshot entities.
type SessionSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (_u *SessionSnapshotUpdate) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSnapshotUpdate) SetSessionID(v string) *SessionSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableSessionID(v *string) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionSnapshotUpdate) SetModel(v string) *SessionSnapshotUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableModel(v *string) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *SessionSnapshotUpdate) SetTheta(v float64) *SessionSnapshotUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableTheta(v *float64) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *SessionSnapshotUpdate) AddTheta(v float64) *SessionSnapshotUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *SessionSnapshotUpdate) SetStandardError(v float64) *SessionSnapshotUpdate {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableStandardError(v *float64) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *SessionSnapshotUpdate) AddStandardError(v float64) *SessionSnapshotUpdate {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetCiLower sets the "ci_lower" field.
func (_u *SessionSnapshotUpdate) SetCiLower(v float64) *SessionSnapshotUpdate {
	_u.mutation.ResetCiLower()
	_u.mutation.SetCiLower(v)
	return _u
}

// SetNillableCiLower sets the "ci_lower" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableCiLower(v *float64) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetCiLower(*v)
	}
	return _u
}

// AddCiLower adds value to the "ci_lower" field.
func (_u *SessionSnapshotUpdate) AddCiLower(v float64) *SessionSnapshotUpdate {
	_u.mutation.AddCiLower(v)
	return _u
}

// SetCiUpper sets the "ci_upper" field.
func (_u *SessionSnapshotUpdate) SetCiUpper(v float64) *SessionSnapshotUpdate {
	_u.mutation.ResetCiUpper()
	_u.mutation.SetCiUpper(v)
	return _u
}

// SetNillableCiUpper sets the "ci_upper" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableCiUpper(v *float64) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetCiUpper(*v)
	}
	return _u
}

// AddCiUpper adds value to the "ci_upper" field.
func (_u *SessionSnapshotUpdate) AddCiUpper(v float64) *SessionSnapshotUpdate {
	_u.mutation.AddCiUpper(v)
	return _u
}

// SetAnsweredItems sets the "answered_items" field.
func (_u *SessionSnapshotUpdate) SetAnsweredItems(v []string) *SessionSnapshotUpdate {
	_u.mutation.SetAnsweredItems(v)
	return _u
}

// AppendAnsweredItems appends value to the "answered_items" field.
func (_u *SessionSnapshotUpdate) AppendAnsweredItems(v []string) *SessionSnapshotUpdate {
	_u.mutation.AppendAnsweredItems(v)
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *SessionSnapshotUpdate) SetFinalizedAt(v time.Time) *SessionSnapshotUpdate {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableFinalizedAt(v *time.Time) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_u *SessionSnapshotUpdate) Mutation() *SessionSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := sessionsnapshot.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.model": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(sessionsnapshot.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(sessionsnapshot.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(sessionsnapshot.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(sessionsnapshot.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(sessionsnapshot.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiLower(); ok {
		_spec.SetField(sessionsnapshot.FieldCiLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiLower(); ok {
		_spec.AddField(sessionsnapshot.FieldCiLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiUpper(); ok {
		_spec.SetField(sessionsnapshot.FieldCiUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiUpper(); ok {
		_spec.AddField(sessionsnapshot.FieldCiUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredItems(); ok {
		_spec.SetField(sessionsnapshot.FieldAnsweredItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnsweredItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsnapshot.FieldAnsweredItems, value)
		})
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldFinalizedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionSnapshotUpdateOne is the builder for updating a single SessionSnapshot entity.
type SessionSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSnapshotUpdateOne) SetSessionID(v string) *SessionSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableSessionID(v *string) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionSnapshotUpdateOne) SetModel(v string) *SessionSnapshotUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableModel(v *string) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *SessionSnapshotUpdateOne) SetTheta(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableTheta(v *float64) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *SessionSnapshotUpdateOne) AddTheta(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *SessionSnapshotUpdateOne) SetStandardError(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableStandardError(v *float64) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *SessionSnapshotUpdateOne) AddStandardError(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetCiLower sets the "ci_lower" field.
func (_u *SessionSnapshotUpdateOne) SetCiLower(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.ResetCiLower()
	_u.mutation.SetCiLower(v)
	return _u
}

// SetNillableCiLower sets the "ci_lower" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableCiLower(v *float64) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetCiLower(*v)
	}
	return _u
}

// AddCiLower adds value to the "ci_lower" field.
func (_u *SessionSnapshotUpdateOne) AddCiLower(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.AddCiLower(v)
	return _u
}

// SetCiUpper sets the "ci_upper" field.
func (_u *SessionSnapshotUpdateOne) SetCiUpper(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.ResetCiUpper()
	_u.mutation.SetCiUpper(v)
	return _u
}

// SetNillableCiUpper sets the "ci_upper" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableCiUpper(v *float64) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetCiUpper(*v)
	}
	return _u
}

// AddCiUpper adds value to the "ci_upper" field.
func (_u *SessionSnapshotUpdateOne) AddCiUpper(v float64) *SessionSnapshotUpdateOne {
	_u.mutation.AddCiUpper(v)
	return _u
}

// SetAnsweredItems sets the "answered_items" field.
func (_u *SessionSnapshotUpdateOne) SetAnsweredItems(v []string) *SessionSnapshotUpdateOne {
	_u.mutation.SetAnsweredItems(v)
	return _u
}

// AppendAnsweredItems appends value to the "answered_items" field.
func (_u *SessionSnapshotUpdateOne) AppendAnsweredItems(v []string) *SessionSnapshotUpdateOne {
	_u.mutation.AppendAnsweredItems(v)
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *SessionSnapshotUpdateOne) SetFinalizedAt(v time.Time) *SessionSnapshotUpdateOne {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableFinalizedAt(v *time.Time) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_u *SessionSnapshotUpdateOne) Mutation() *SessionSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (_u *SessionSnapshotUpdateOne) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionSnapshotUpdateOne) Select(field string, fields ...string) *SessionSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionSnapshot entity.
func (_u *SessionSnapshotUpdateOne) Save(ctx context.Context) (*SessionSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSnapshotUpdateOne) SaveX(ctx context.Context) *SessionSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := sessionsnapshot.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.model": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *SessionSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsnapshot.FieldID)
		for _, f := range fields {
			if !sessionsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsnapshot.FieldID {
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
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(sessionsnapshot.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(sessionsnapshot.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(sessionsnapshot.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(sessionsnapshot.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(sessionsnapshot.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiLower(); ok {
		_spec.SetField(sessionsnapshot.FieldCiLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiLower(); ok {
		_spec.AddField(sessionsnapshot.FieldCiLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiUpper(); ok {
		_spec.SetField(sessionsnapshot.FieldCiUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiUpper(); ok {
		_spec.AddField(sessionsnapshot.FieldCiUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredItems(); ok {
		_spec.SetField(sessionsnapshot.FieldAnsweredItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnsweredItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsnapshot.FieldAnsweredItems, value)
		})
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldFinalizedAt, field.TypeTime, value)
	}
	_node = &SessionSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
