// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksander/retain/ent/predicate"
	"github.com/ksander/retain/ent/ratingevent"
)

// RatingEventUpdate is the builder for updating RatingEvent entities.
type RatingEventUpdate struct {
	config
	hooks    []Hook
	mutation *RatingEventMutation
}

// Where appends a list predicates to the RatingEventUpdate builder.
func (_u *RatingEventUpdate) Where(ps ...predicate.RatingEvent) *RatingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RatingEventUpdate) SetSessionID(v string) *RatingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableSessionID(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RatingEventUpdate) ClearSessionID() *RatingEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *RatingEventUpdate) SetUnitID(v string) *RatingEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableUnitID(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetOldRating sets the "old_rating" field.
func (_u *RatingEventUpdate) SetOldRating(v int) *RatingEventUpdate {
	_u.mutation.ResetOldRating()
	_u.mutation.SetOldRating(v)
	return _u
}

// SetNillableOldRating sets the "old_rating" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableOldRating(v *int) *RatingEventUpdate {
	if v != nil {
		_u.SetOldRating(*v)
	}
	return _u
}

// AddOldRating adds value to the "old_rating" field.
func (_u *RatingEventUpdate) AddOldRating(v int) *RatingEventUpdate {
	_u.mutation.AddOldRating(v)
	return _u
}

// SetNewRating sets the "new_rating" field.
func (_u *RatingEventUpdate) SetNewRating(v int) *RatingEventUpdate {
	_u.mutation.ResetNewRating()
	_u.mutation.SetNewRating(v)
	return _u
}

// SetNillableNewRating sets the "new_rating" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableNewRating(v *int) *RatingEventUpdate {
	if v != nil {
		_u.SetNewRating(*v)
	}
	return _u
}

// AddNewRating adds value to the "new_rating" field.
func (_u *RatingEventUpdate) AddNewRating(v int) *RatingEventUpdate {
	_u.mutation.AddNewRating(v)
	return _u
}

// SetExpected sets the "expected" field.
func (_u *RatingEventUpdate) SetExpected(v float64) *RatingEventUpdate {
	_u.mutation.ResetExpected()
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableExpected(v *float64) *RatingEventUpdate {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// AddExpected adds value to the "expected" field.
func (_u *RatingEventUpdate) AddExpected(v float64) *RatingEventUpdate {
	_u.mutation.AddExpected(v)
	return _u
}

// SetObserved sets the "observed" field.
func (_u *RatingEventUpdate) SetObserved(v float64) *RatingEventUpdate {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableObserved(v *float64) *RatingEventUpdate {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *RatingEventUpdate) AddObserved(v float64) *RatingEventUpdate {
	_u.mutation.AddObserved(v)
	return _u
}

// Mutation returns the RatingEventMutation object of the builder.
func (_u *RatingEventUpdate) Mutation() *RatingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingEventUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := ratingevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratingevent.Table, ratingevent.Columns, sqlgraph.NewFieldSpec(ratingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ratingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ratingevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(ratingevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldRating(); ok {
		_spec.SetField(ratingevent.FieldOldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOldRating(); ok {
		_spec.AddField(ratingevent.FieldOldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewRating(); ok {
		_spec.SetField(ratingevent.FieldNewRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewRating(); ok {
		_spec.AddField(ratingevent.FieldNewRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(ratingevent.FieldExpected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpected(); ok {
		_spec.AddField(ratingevent.FieldExpected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(ratingevent.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(ratingevent.FieldObserved, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingEventUpdateOne is the builder for updating a single RatingEvent entity.
type RatingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RatingEventUpdateOne) SetSessionID(v string) *RatingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableSessionID(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RatingEventUpdateOne) ClearSessionID() *RatingEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *RatingEventUpdateOne) SetUnitID(v string) *RatingEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableUnitID(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetOldRating sets the "old_rating" field.
func (_u *RatingEventUpdateOne) SetOldRating(v int) *RatingEventUpdateOne {
	_u.mutation.ResetOldRating()
	_u.mutation.SetOldRating(v)
	return _u
}

// SetNillableOldRating sets the "old_rating" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableOldRating(v *int) *RatingEventUpdateOne {
	if v != nil {
		_u.SetOldRating(*v)
	}
	return _u
}

// AddOldRating adds value to the "old_rating" field.
func (_u *RatingEventUpdateOne) AddOldRating(v int) *RatingEventUpdateOne {
	_u.mutation.AddOldRating(v)
	return _u
}

// SetNewRating sets the "new_rating" field.
func (_u *RatingEventUpdateOne) SetNewRating(v int) *RatingEventUpdateOne {
	_u.mutation.ResetNewRating()
	_u.mutation.SetNewRating(v)
	return _u
}

// SetNillableNewRating sets the "new_rating" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableNewRating(v *int) *RatingEventUpdateOne {
	if v != nil {
		_u.SetNewRating(*v)
	}
	return _u
}

// AddNewRating adds value to the "new_rating" field.
func (_u *RatingEventUpdateOne) AddNewRating(v int) *RatingEventUpdateOne {
	_u.mutation.AddNewRating(v)
	return _u
}

// SetExpected sets the "expected" field.
func (_u *RatingEventUpdateOne) SetExpected(v float64) *RatingEventUpdateOne {
	_u.mutation.ResetExpected()
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableExpected(v *float64) *RatingEventUpdateOne {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// AddExpected adds value to the "expected" field.
func (_u *RatingEventUpdateOne) AddExpected(v float64) *RatingEventUpdateOne {
	_u.mutation.AddExpected(v)
	return _u
}

// SetObserved sets the "observed" field.
func (_u *RatingEventUpdateOne) SetObserved(v float64) *RatingEventUpdateOne {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableObserved(v *float64) *RatingEventUpdateOne {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *RatingEventUpdateOne) AddObserved(v float64) *RatingEventUpdateOne {
	_u.mutation.AddObserved(v)
	return _u
}

// Mutation returns the RatingEventMutation object of the builder.
func (_u *RatingEventUpdateOne) Mutation() *RatingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RatingEventUpdate builder.
func (_u *RatingEventUpdateOne) Where(ps ...predicate.RatingEvent) *RatingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingEventUpdateOne) Select(field string, fields ...string) *RatingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RatingEvent entity.
func (_u *RatingEventUpdateOne) Save(ctx context.Context) (*RatingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingEventUpdateOne) SaveX(ctx context.Context) *RatingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingEventUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := ratingevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingEventUpdateOne) sqlSave(ctx context.Context) (_node *RatingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratingevent.Table, ratingevent.Columns, sqlgraph.NewFieldSpec(ratingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RatingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratingevent.FieldID)
		for _, f := range fields {
			if !ratingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratingevent.FieldID {
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
		_spec.SetField(ratingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ratingevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(ratingevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldRating(); ok {
		_spec.SetField(ratingevent.FieldOldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOldRating(); ok {
		_spec.AddField(ratingevent.FieldOldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewRating(); ok {
		_spec.SetField(ratingevent.FieldNewRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewRating(); ok {
		_spec.AddField(ratingevent.FieldNewRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(ratingevent.FieldExpected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpected(); ok {
		_spec.AddField(ratingevent.FieldExpected, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(ratingevent.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(ratingevent.FieldObserved, field.TypeFloat64, value)
	}
	_node = &RatingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
