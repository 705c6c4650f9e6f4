// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proctorly/itemsel/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemCreate) SetItemID(v string) *ItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemCreate) SetDifficulty(v float64) *ItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetDiscrimination sets the "discrimination" field.
func (_c *ItemCreate) SetDiscrimination(v float64) *ItemCreate {
	_c.mutation.SetDiscrimination(v)
	return _c
}

// SetGuessing sets the "guessing" field.
func (_c *ItemCreate) SetGuessing(v float64) *ItemCreate {
	_c.mutation.SetGuessing(v)
	return _c
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_c *ItemCreate) SetNillableGuessing(v *float64) *ItemCreate {
	if v != nil {
		_c.SetGuessing(*v)
	}
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ItemCreate) SetItemType(v string) *ItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ItemCreate) SetSkills(v []string) *ItemCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetTechnologies sets the "technologies" field.
func (_c *ItemCreate) SetTechnologies(v []string) *ItemCreate {
	_c.mutation.SetTechnologies(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ItemCreate) SetDurationSecs(v int64) *ItemCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDurationSecs(v *int64) *ItemCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_c *ItemCreate) SetEffectivenessScore(v float64) *ItemCreate {
	_c.mutation.SetEffectivenessScore(v)
	return _c
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_c *ItemCreate) SetNillableEffectivenessScore(v *float64) *ItemCreate {
	if v != nil {
		_c.SetEffectivenessScore(*v)
	}
	return _c
}

// SetBiasScore sets the "bias_score" field.
func (_c *ItemCreate) SetBiasScore(v float64) *ItemCreate {
	_c.mutation.SetBiasScore(v)
	return _c
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_c *ItemCreate) SetNillableBiasScore(v *float64) *ItemCreate {
	if v != nil {
		_c.SetBiasScore(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ItemCreate) SetActive(v bool) *ItemCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ItemCreate) SetNillableActive(v *bool) *ItemCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.Guessing(); !ok {
		v := item.DefaultGuessing
		_c.mutation.SetGuessing(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := item.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.EffectivenessScore(); !ok {
		v := item.DefaultEffectivenessScore
		_c.mutation.SetEffectivenessScore(v)
	}
	if _, ok := _c.mutation.BiasScore(); !ok {
		v := item.DefaultBiasScore
		_c.mutation.SetBiasScore(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := item.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	if _, ok := _c.mutation.Discrimination(); !ok {
		return &ValidationError{Name: "discrimination", err: errors.New(`ent: missing required field "Item.discrimination"`)}
	}
	if _, ok := _c.mutation.Guessing(); !ok {
		return &ValidationError{Name: "guessing", err: errors.New(`ent: missing required field "Item.guessing"`)}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "Item.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "Item.duration_secs"`)}
	}
	if _, ok := _c.mutation.EffectivenessScore(); !ok {
		return &ValidationError{Name: "effectiveness_score", err: errors.New(`ent: missing required field "Item.effectiveness_score"`)}
	}
	if _, ok := _c.mutation.BiasScore(); !ok {
		return &ValidationError{Name: "bias_score", err: errors.New(`ent: missing required field "Item.bias_score"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Item.active"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
		_node.Discrimination = value
	}
	if value, ok := _c.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
		_node.Guessing = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(item.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Technologies(); ok {
		_spec.SetField(item.FieldTechnologies, field.TypeJSON, value)
		_node.Technologies = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(item.FieldDurationSecs, field.TypeInt64, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.EffectivenessScore(); ok {
		_spec.SetField(item.FieldEffectivenessScore, field.TypeFloat64, value)
		_node.EffectivenessScore = value
	}
	if value, ok := _c.mutation.BiasScore(); ok {
		_spec.SetField(item.FieldBiasScore, field.TypeFloat64, value)
		_node.BiasScore = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(item.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
