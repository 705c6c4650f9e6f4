// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/sessionsnapshot"
)

// SessionSnapshotCreate is the builder for creating a SessionSnapshot entity.
type SessionSnapshotCreate struct {
	config
	mutation *SessionSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionSnapshotCreate) SetSessionID(v string) *SessionSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *SessionSnapshotCreate) SetModel(v string) *SessionSnapshotCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTheta sets the "theta" field.
func (_c *SessionSnapshotCreate) SetTheta(v float64) *SessionSnapshotCreate {
	_c.mutation.SetTheta(v)
	return _c
}

// SetStandardError sets the "standard_error" field.
func (_c *SessionSnapshotCreate) SetStandardError(v float64) *SessionSnapshotCreate {
	_c.mutation.SetStandardError(v)
	return _c
}

// SetCiLower sets the "ci_lower" field.
func (_c *SessionSnapshotCreate) SetCiLower(v float64) *SessionSnapshotCreate {
	_c.mutation.SetCiLower(v)
	return _c
}

// SetCiUpper sets the "ci_upper" field.
func (_c *SessionSnapshotCreate) SetCiUpper(v float64) *SessionSnapshotCreate {
	_c.mutation.SetCiUpper(v)
	return _c
}

// SetAnsweredItems sets the "answered_items" field.
func (_c *SessionSnapshotCreate) SetAnsweredItems(v []string) *SessionSnapshotCreate {
	_c.mutation.SetAnsweredItems(v)
	return _c
}

// SetFinalizedAt sets the "finalized_at" field.
func (_c *SessionSnapshotCreate) SetFinalizedAt(v time.Time) *SessionSnapshotCreate {
	_c.mutation.SetFinalizedAt(v)
	return _c
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_c *SessionSnapshotCreate) SetNillableFinalizedAt(v *time.Time) *SessionSnapshotCreate {
	if v != nil {
		_c.SetFinalizedAt(*v)
	}
	return _c
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_c *SessionSnapshotCreate) Mutation() *SessionSnapshotMutation {
	return _c.mutation
}

// Save creates the SessionSnapshot in the database.
func (_c *SessionSnapshotCreate) Save(ctx context.Context) (*SessionSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSnapshotCreate) SaveX(ctx context.Context) *SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionSnapshotCreate) defaults() {
	if _, ok := _c.mutation.FinalizedAt(); !ok {
		v := sessionsnapshot.DefaultFinalizedAt()
		_c.mutation.SetFinalizedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "SessionSnapshot.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := sessionsnapshot.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "SessionSnapshot.theta"`)}
	}
	if _, ok := _c.mutation.StandardError(); !ok {
		return &ValidationError{Name: "standard_error", err: errors.New(`ent: missing required field "SessionSnapshot.standard_error"`)}
	}
	if _, ok := _c.mutation.CiLower(); !ok {
		return &ValidationError{Name: "ci_lower", err: errors.New(`ent: missing required field "SessionSnapshot.ci_lower"`)}
	}
	if _, ok := _c.mutation.CiUpper(); !ok {
		return &ValidationError{Name: "ci_upper", err: errors.New(`ent: missing required field "SessionSnapshot.ci_upper"`)}
	}
	if _, ok := _c.mutation.AnsweredItems(); !ok {
		return &ValidationError{Name: "answered_items", err: errors.New(`ent: missing required field "SessionSnapshot.answered_items"`)}
	}
	if _, ok := _c.mutation.FinalizedAt(); !ok {
		return &ValidationError{Name: "finalized_at", err: errors.New(`ent: missing required field "SessionSnapshot.finalized_at"`)}
	}
	return nil
}

func (_c *SessionSnapshotCreate) sqlSave(ctx context.Context) (*SessionSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionSnapshotCreate) createSpec() (*SessionSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsnapshot.Table, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(sessionsnapshot.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Theta(); ok {
		_spec.SetField(sessionsnapshot.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := _c.mutation.StandardError(); ok {
		_spec.SetField(sessionsnapshot.FieldStandardError, field.TypeFloat64, value)
		_node.StandardError = value
	}
	if value, ok := _c.mutation.CiLower(); ok {
		_spec.SetField(sessionsnapshot.FieldCiLower, field.TypeFloat64, value)
		_node.CiLower = value
	}
	if value, ok := _c.mutation.CiUpper(); ok {
		_spec.SetField(sessionsnapshot.FieldCiUpper, field.TypeFloat64, value)
		_node.CiUpper = value
	}
	if value, ok := _c.mutation.AnsweredItems(); ok {
		_spec.SetField(sessionsnapshot.FieldAnsweredItems, field.TypeJSON, value)
		_node.AnsweredItems = value
	}
	if value, ok := _c.mutation.FinalizedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldFinalizedAt, field.TypeTime, value)
		_node.FinalizedAt = value
	}
	return _node, _spec
}

// SessionSnapshotCreateBulk is the builder for creating many SessionSnapshot entities in bulk.
type SessionSnapshotCreateBulk struct {
	config
	err      error
	builders []*SessionSnapshotCreate
}

// Save creates the SessionSnapshot entities in the database.
func (_c *SessionSnapshotCreateBulk) Save(ctx context.Context) ([]*SessionSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionSnapshotCreateBulk) SaveX(ctx context.Context) []*SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
