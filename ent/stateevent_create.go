// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cognify/ent/stateevent"
)

// StateEventCreate is the builder for creating a StateEvent entity.
type StateEventCreate struct {
	config
	mutation *StateEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StateEventCreate) SetSequence(v int64) *StateEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StateEventCreate) SetTimestamp(v time.Time) *StateEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StateEventCreate) SetNillableTimestamp(v *time.Time) *StateEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StateEventCreate) SetSessionID(v string) *StateEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *StateEventCreate) SetNillableSessionID(v *string) *StateEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *StateEventCreate) SetState(v string) *StateEventCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *StateEventCreate) SetScore(v int) *StateEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetFacial sets the "facial" field.
func (_c *StateEventCreate) SetFacial(v string) *StateEventCreate {
	_c.mutation.SetFacial(v)
	return _c
}

// SetNillableFacial sets the "facial" field if the given value is not nil.
func (_c *StateEventCreate) SetNillableFacial(v *string) *StateEventCreate {
	if v != nil {
		_c.SetFacial(*v)
	}
	return _c
}

// SetVocal sets the "vocal" field.
func (_c *StateEventCreate) SetVocal(v string) *StateEventCreate {
	_c.mutation.SetVocal(v)
	return _c
}

// SetNillableVocal sets the "vocal" field if the given value is not nil.
func (_c *StateEventCreate) SetNillableVocal(v *string) *StateEventCreate {
	if v != nil {
		_c.SetVocal(*v)
	}
	return _c
}

// SetRephraseCount sets the "rephrase_count" field.
func (_c *StateEventCreate) SetRephraseCount(v int) *StateEventCreate {
	_c.mutation.SetRephraseCount(v)
	return _c
}

// SetBackspaceCount sets the "backspace_count" field.
func (_c *StateEventCreate) SetBackspaceCount(v int) *StateEventCreate {
	_c.mutation.SetBackspaceCount(v)
	return _c
}

// Mutation returns the StateEventMutation object of the builder.
func (_c *StateEventCreate) Mutation() *StateEventMutation {
	return _c.mutation
}

// Save creates the StateEvent in the database.
func (_c *StateEventCreate) Save(ctx context.Context) (*StateEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateEventCreate) SaveX(ctx context.Context) *StateEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stateevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StateEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StateEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "StateEvent.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := stateevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "StateEvent.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "StateEvent.score"`)}
	}
	if _, ok := _c.mutation.RephraseCount(); !ok {
		return &ValidationError{Name: "rephrase_count", err: errors.New(`ent: missing required field "StateEvent.rephrase_count"`)}
	}
	if _, ok := _c.mutation.BackspaceCount(); !ok {
		return &ValidationError{Name: "backspace_count", err: errors.New(`ent: missing required field "StateEvent.backspace_count"`)}
	}
	return nil
}

func (_c *StateEventCreate) sqlSave(ctx context.Context) (*StateEvent, error) {
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

func (_c *StateEventCreate) createSpec() (*StateEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StateEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stateevent.Table, sqlgraph.NewFieldSpec(stateevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stateevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stateevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(stateevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(stateevent.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(stateevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Facial(); ok {
		_spec.SetField(stateevent.FieldFacial, field.TypeString, value)
		_node.Facial = value
	}
	if value, ok := _c.mutation.Vocal(); ok {
		_spec.SetField(stateevent.FieldVocal, field.TypeString, value)
		_node.Vocal = value
	}
	if value, ok := _c.mutation.RephraseCount(); ok {
		_spec.SetField(stateevent.FieldRephraseCount, field.TypeInt, value)
		_node.RephraseCount = value
	}
	if value, ok := _c.mutation.BackspaceCount(); ok {
		_spec.SetField(stateevent.FieldBackspaceCount, field.TypeInt, value)
		_node.BackspaceCount = value
	}
	return _node, _spec
}

// StateEventCreateBulk is the builder for creating many StateEvent entities in bulk.
type StateEventCreateBulk struct {
	config
	err      error
	builders []*StateEventCreate
}

// Save creates the StateEvent entities in the database.
func (_c *StateEventCreateBulk) Save(ctx context.Context) ([]*StateEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateEventMutation)
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
func (_c *StateEventCreateBulk) SaveX(ctx context.Context) []*StateEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
