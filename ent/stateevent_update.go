// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cognify/ent/predicate"
	"github.com/abhisek/cognify/ent/stateevent"
)

// StateEventUpdate is the builder for updating StateEvent entities.
type StateEventUpdate struct {
	config
	hooks    []Hook
	mutation *StateEventMutation
}

// Where appends a list predicates to the StateEventUpdate builder.
func (_u *StateEventUpdate) Where(ps ...predicate.StateEvent) *StateEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StateEventUpdate) SetSessionID(v string) *StateEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableSessionID(v *string) *StateEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *StateEventUpdate) ClearSessionID() *StateEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *StateEventUpdate) SetState(v string) *StateEventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableState(v *string) *StateEventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *StateEventUpdate) SetScore(v int) *StateEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableScore(v *int) *StateEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StateEventUpdate) AddScore(v int) *StateEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFacial sets the "facial" field.
func (_u *StateEventUpdate) SetFacial(v string) *StateEventUpdate {
	_u.mutation.SetFacial(v)
	return _u
}

// SetNillableFacial sets the "facial" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableFacial(v *string) *StateEventUpdate {
	if v != nil {
		_u.SetFacial(*v)
	}
	return _u
}

// ClearFacial clears the value of the "facial" field.
func (_u *StateEventUpdate) ClearFacial() *StateEventUpdate {
	_u.mutation.ClearFacial()
	return _u
}

// SetVocal sets the "vocal" field.
func (_u *StateEventUpdate) SetVocal(v string) *StateEventUpdate {
	_u.mutation.SetVocal(v)
	return _u
}

// SetNillableVocal sets the "vocal" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableVocal(v *string) *StateEventUpdate {
	if v != nil {
		_u.SetVocal(*v)
	}
	return _u
}

// ClearVocal clears the value of the "vocal" field.
func (_u *StateEventUpdate) ClearVocal() *StateEventUpdate {
	_u.mutation.ClearVocal()
	return _u
}

// SetRephraseCount sets the "rephrase_count" field.
func (_u *StateEventUpdate) SetRephraseCount(v int) *StateEventUpdate {
	_u.mutation.ResetRephraseCount()
	_u.mutation.SetRephraseCount(v)
	return _u
}

// SetNillableRephraseCount sets the "rephrase_count" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableRephraseCount(v *int) *StateEventUpdate {
	if v != nil {
		_u.SetRephraseCount(*v)
	}
	return _u
}

// AddRephraseCount adds value to the "rephrase_count" field.
func (_u *StateEventUpdate) AddRephraseCount(v int) *StateEventUpdate {
	_u.mutation.AddRephraseCount(v)
	return _u
}

// SetBackspaceCount sets the "backspace_count" field.
func (_u *StateEventUpdate) SetBackspaceCount(v int) *StateEventUpdate {
	_u.mutation.ResetBackspaceCount()
	_u.mutation.SetBackspaceCount(v)
	return _u
}

// SetNillableBackspaceCount sets the "backspace_count" field if the given value is not nil.
func (_u *StateEventUpdate) SetNillableBackspaceCount(v *int) *StateEventUpdate {
	if v != nil {
		_u.SetBackspaceCount(*v)
	}
	return _u
}

// AddBackspaceCount adds value to the "backspace_count" field.
func (_u *StateEventUpdate) AddBackspaceCount(v int) *StateEventUpdate {
	_u.mutation.AddBackspaceCount(v)
	return _u
}

// Mutation returns the StateEventMutation object of the builder.
func (_u *StateEventUpdate) Mutation() *StateEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateEventUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := stateevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "StateEvent.state": %w`, err)}
		}
	}
	return nil
}

func (_u *StateEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stateevent.Table, stateevent.Columns, sqlgraph.NewFieldSpec(stateevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stateevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(stateevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(stateevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(stateevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(stateevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Facial(); ok {
		_spec.SetField(stateevent.FieldFacial, field.TypeString, value)
	}
	if _u.mutation.FacialCleared() {
		_spec.ClearField(stateevent.FieldFacial, field.TypeString)
	}
	if value, ok := _u.mutation.Vocal(); ok {
		_spec.SetField(stateevent.FieldVocal, field.TypeString, value)
	}
	if _u.mutation.VocalCleared() {
		_spec.ClearField(stateevent.FieldVocal, field.TypeString)
	}
	if value, ok := _u.mutation.RephraseCount(); ok {
		_spec.SetField(stateevent.FieldRephraseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRephraseCount(); ok {
		_spec.AddField(stateevent.FieldRephraseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackspaceCount(); ok {
		_spec.SetField(stateevent.FieldBackspaceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackspaceCount(); ok {
		_spec.AddField(stateevent.FieldBackspaceCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateEventUpdateOne is the builder for updating a single StateEvent entity.
type StateEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StateEventUpdateOne) SetSessionID(v string) *StateEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableSessionID(v *string) *StateEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *StateEventUpdateOne) ClearSessionID() *StateEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *StateEventUpdateOne) SetState(v string) *StateEventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableState(v *string) *StateEventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *StateEventUpdateOne) SetScore(v int) *StateEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableScore(v *int) *StateEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StateEventUpdateOne) AddScore(v int) *StateEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFacial sets the "facial" field.
func (_u *StateEventUpdateOne) SetFacial(v string) *StateEventUpdateOne {
	_u.mutation.SetFacial(v)
	return _u
}

// SetNillableFacial sets the "facial" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableFacial(v *string) *StateEventUpdateOne {
	if v != nil {
		_u.SetFacial(*v)
	}
	return _u
}

// ClearFacial clears the value of the "facial" field.
func (_u *StateEventUpdateOne) ClearFacial() *StateEventUpdateOne {
	_u.mutation.ClearFacial()
	return _u
}

// SetVocal sets the "vocal" field.
func (_u *StateEventUpdateOne) SetVocal(v string) *StateEventUpdateOne {
	_u.mutation.SetVocal(v)
	return _u
}

// SetNillableVocal sets the "vocal" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableVocal(v *string) *StateEventUpdateOne {
	if v != nil {
		_u.SetVocal(*v)
	}
	return _u
}

// ClearVocal clears the value of the "vocal" field.
func (_u *StateEventUpdateOne) ClearVocal() *StateEventUpdateOne {
	_u.mutation.ClearVocal()
	return _u
}

// SetRephraseCount sets the "rephrase_count" field.
func (_u *StateEventUpdateOne) SetRephraseCount(v int) *StateEventUpdateOne {
	_u.mutation.ResetRephraseCount()
	_u.mutation.SetRephraseCount(v)
	return _u
}

// SetNillableRephraseCount sets the "rephrase_count" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableRephraseCount(v *int) *StateEventUpdateOne {
	if v != nil {
		_u.SetRephraseCount(*v)
	}
	return _u
}

// AddRephraseCount adds value to the "rephrase_count" field.
func (_u *StateEventUpdateOne) AddRephraseCount(v int) *StateEventUpdateOne {
	_u.mutation.AddRephraseCount(v)
	return _u
}

// SetBackspaceCount sets the "backspace_count" field.
func (_u *StateEventUpdateOne) SetBackspaceCount(v int) *StateEventUpdateOne {
	_u.mutation.ResetBackspaceCount()
	_u.mutation.SetBackspaceCount(v)
	return _u
}

// SetNillableBackspaceCount sets the "backspace_count" field if the given value is not nil.
func (_u *StateEventUpdateOne) SetNillableBackspaceCount(v *int) *StateEventUpdateOne {
	if v != nil {
		_u.SetBackspaceCount(*v)
	}
	return _u
}

// AddBackspaceCount adds value to the "backspace_count" field.
func (_u *StateEventUpdateOne) AddBackspaceCount(v int) *StateEventUpdateOne {
	_u.mutation.AddBackspaceCount(v)
	return _u
}

// Mutation returns the StateEventMutation object of the builder.
func (_u *StateEventUpdateOne) Mutation() *StateEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateEventUpdate builder.
func (_u *StateEventUpdateOne) Where(ps ...predicate.StateEvent) *StateEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateEventUpdateOne) Select(field string, fields ...string) *StateEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateEvent entity.
func (_u *StateEventUpdateOne) Save(ctx context.Context) (*StateEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateEventUpdateOne) SaveX(ctx context.Context) *StateEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateEventUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := stateevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "StateEvent.state": %w`, err)}
		}
	}
	return nil
}

func (_u *StateEventUpdateOne) sqlSave(ctx context.Context) (_node *StateEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stateevent.Table, stateevent.Columns, sqlgraph.NewFieldSpec(stateevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stateevent.FieldID)
		for _, f := range fields {
			if !stateevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stateevent.FieldID {
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
		_spec.SetField(stateevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(stateevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(stateevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(stateevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(stateevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Facial(); ok {
		_spec.SetField(stateevent.FieldFacial, field.TypeString, value)
	}
	if _u.mutation.FacialCleared() {
		_spec.ClearField(stateevent.FieldFacial, field.TypeString)
	}
	if value, ok := _u.mutation.Vocal(); ok {
		_spec.SetField(stateevent.FieldVocal, field.TypeString, value)
	}
	if _u.mutation.VocalCleared() {
		_spec.ClearField(stateevent.FieldVocal, field.TypeString)
	}
	if value, ok := _u.mutation.RephraseCount(); ok {
		_spec.SetField(stateevent.FieldRephraseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRephraseCount(); ok {
		_spec.AddField(stateevent.FieldRephraseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackspaceCount(); ok {
		_spec.SetField(stateevent.FieldBackspaceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackspaceCount(); ok {
		_spec.AddField(stateevent.FieldBackspaceCount, field.TypeInt, value)
	}
	_node = &StateEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
