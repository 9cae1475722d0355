// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/categorymastery"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
)

// CategoryMasteryUpdate is the builder for updating CategoryMastery entities.
type CategoryMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryMasteryMutation
}

// Where appends a list predicates to the CategoryMasteryUpdate builder.
func (_u *CategoryMasteryUpdate) Where(ps ...predicate.CategoryMastery) *CategoryMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CategoryMasteryUpdate) SetCategoryID(v string) *CategoryMasteryUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableCategoryID(v *string) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *CategoryMasteryUpdate) SetTotalCorrect(v int) *CategoryMasteryUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableTotalCorrect(v *int) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *CategoryMasteryUpdate) AddTotalCorrect(v int) *CategoryMasteryUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalAnswered sets the "total_answered" field.
func (_u *CategoryMasteryUpdate) SetTotalAnswered(v int) *CategoryMasteryUpdate {
	_u.mutation.ResetTotalAnswered()
	_u.mutation.SetTotalAnswered(v)
	return _u
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableTotalAnswered(v *int) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetTotalAnswered(*v)
	}
	return _u
}

// AddTotalAnswered adds value to the "total_answered" field.
func (_u *CategoryMasteryUpdate) AddTotalAnswered(v int) *CategoryMasteryUpdate {
	_u.mutation.AddTotalAnswered(v)
	return _u
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (_u *CategoryMasteryUpdate) SetWeightedCorrectScore(v float64) *CategoryMasteryUpdate {
	_u.mutation.ResetWeightedCorrectScore()
	_u.mutation.SetWeightedCorrectScore(v)
	return _u
}

// SetNillableWeightedCorrectScore sets the "weighted_correct_score" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableWeightedCorrectScore(v *float64) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetWeightedCorrectScore(*v)
	}
	return _u
}

// AddWeightedCorrectScore adds value to the "weighted_correct_score" field.
func (_u *CategoryMasteryUpdate) AddWeightedCorrectScore(v float64) *CategoryMasteryUpdate {
	_u.mutation.AddWeightedCorrectScore(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *CategoryMasteryUpdate) SetMasteryLevel(v string) *CategoryMasteryUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableMasteryLevel(v *string) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetLastAnswered sets the "last_answered" field.
func (_u *CategoryMasteryUpdate) SetLastAnswered(v time.Time) *CategoryMasteryUpdate {
	_u.mutation.SetLastAnswered(v)
	return _u
}

// SetNillableLastAnswered sets the "last_answered" field if the given value is not nil.
func (_u *CategoryMasteryUpdate) SetNillableLastAnswered(v *time.Time) *CategoryMasteryUpdate {
	if v != nil {
		_u.SetLastAnswered(*v)
	}
	return _u
}

// ClearLastAnswered clears the value of the "last_answered" field.
func (_u *CategoryMasteryUpdate) ClearLastAnswered() *CategoryMasteryUpdate {
	_u.mutation.ClearLastAnswered()
	return _u
}

// Mutation returns the CategoryMasteryMutation object of the builder.
func (_u *CategoryMasteryUpdate) Mutation() *CategoryMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryMasteryUpdate) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := categorymastery.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCorrect(); ok {
		if err := categorymastery.TotalCorrectValidator(v); err != nil {
			return &ValidationError{Name: "total_correct", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAnswered(); ok {
		if err := categorymastery.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_answered": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorymastery.Table, categorymastery.Columns, sqlgraph.NewFieldSpec(categorymastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(categorymastery.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(categorymastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(categorymastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAnswered(); ok {
		_spec.SetField(categorymastery.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(categorymastery.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightedCorrectScore(); ok {
		_spec.SetField(categorymastery.FieldWeightedCorrectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedCorrectScore(); ok {
		_spec.AddField(categorymastery.FieldWeightedCorrectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(categorymastery.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAnswered(); ok {
		_spec.SetField(categorymastery.FieldLastAnswered, field.TypeTime, value)
	}
	if _u.mutation.LastAnsweredCleared() {
		_spec.ClearField(categorymastery.FieldLastAnswered, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorymastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryMasteryUpdateOne is the builder for updating a single CategoryMastery entity.
type CategoryMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryMasteryMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *CategoryMasteryUpdateOne) SetCategoryID(v string) *CategoryMasteryUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableCategoryID(v *string) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *CategoryMasteryUpdateOne) SetTotalCorrect(v int) *CategoryMasteryUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableTotalCorrect(v *int) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *CategoryMasteryUpdateOne) AddTotalCorrect(v int) *CategoryMasteryUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalAnswered sets the "total_answered" field.
func (_u *CategoryMasteryUpdateOne) SetTotalAnswered(v int) *CategoryMasteryUpdateOne {
	_u.mutation.ResetTotalAnswered()
	_u.mutation.SetTotalAnswered(v)
	return _u
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableTotalAnswered(v *int) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetTotalAnswered(*v)
	}
	return _u
}

// AddTotalAnswered adds value to the "total_answered" field.
func (_u *CategoryMasteryUpdateOne) AddTotalAnswered(v int) *CategoryMasteryUpdateOne {
	_u.mutation.AddTotalAnswered(v)
	return _u
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (_u *CategoryMasteryUpdateOne) SetWeightedCorrectScore(v float64) *CategoryMasteryUpdateOne {
	_u.mutation.ResetWeightedCorrectScore()
	_u.mutation.SetWeightedCorrectScore(v)
	return _u
}

// SetNillableWeightedCorrectScore sets the "weighted_correct_score" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableWeightedCorrectScore(v *float64) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetWeightedCorrectScore(*v)
	}
	return _u
}

// AddWeightedCorrectScore adds value to the "weighted_correct_score" field.
func (_u *CategoryMasteryUpdateOne) AddWeightedCorrectScore(v float64) *CategoryMasteryUpdateOne {
	_u.mutation.AddWeightedCorrectScore(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *CategoryMasteryUpdateOne) SetMasteryLevel(v string) *CategoryMasteryUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableMasteryLevel(v *string) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetLastAnswered sets the "last_answered" field.
func (_u *CategoryMasteryUpdateOne) SetLastAnswered(v time.Time) *CategoryMasteryUpdateOne {
	_u.mutation.SetLastAnswered(v)
	return _u
}

// SetNillableLastAnswered sets the "last_answered" field if the given value is not nil.
func (_u *CategoryMasteryUpdateOne) SetNillableLastAnswered(v *time.Time) *CategoryMasteryUpdateOne {
	if v != nil {
		_u.SetLastAnswered(*v)
	}
	return _u
}

// ClearLastAnswered clears the value of the "last_answered" field.
func (_u *CategoryMasteryUpdateOne) ClearLastAnswered() *CategoryMasteryUpdateOne {
	_u.mutation.ClearLastAnswered()
	return _u
}

// Mutation returns the CategoryMasteryMutation object of the builder.
func (_u *CategoryMasteryUpdateOne) Mutation() *CategoryMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryMasteryUpdate builder.
func (_u *CategoryMasteryUpdateOne) Where(ps ...predicate.CategoryMastery) *CategoryMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryMasteryUpdateOne) Select(field string, fields ...string) *CategoryMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryMastery entity.
func (_u *CategoryMasteryUpdateOne) Save(ctx context.Context) (*CategoryMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryMasteryUpdateOne) SaveX(ctx context.Context) *CategoryMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := categorymastery.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCorrect(); ok {
		if err := categorymastery.TotalCorrectValidator(v); err != nil {
			return &ValidationError{Name: "total_correct", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAnswered(); ok {
		if err := categorymastery.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_answered": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryMasteryUpdateOne) sqlSave(ctx context.Context) (_node *CategoryMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorymastery.Table, categorymastery.Columns, sqlgraph.NewFieldSpec(categorymastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categorymastery.FieldID)
		for _, f := range fields {
			if !categorymastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categorymastery.FieldID {
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
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(categorymastery.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(categorymastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(categorymastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAnswered(); ok {
		_spec.SetField(categorymastery.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(categorymastery.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightedCorrectScore(); ok {
		_spec.SetField(categorymastery.FieldWeightedCorrectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedCorrectScore(); ok {
		_spec.AddField(categorymastery.FieldWeightedCorrectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(categorymastery.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAnswered(); ok {
		_spec.SetField(categorymastery.FieldLastAnswered, field.TypeTime, value)
	}
	if _u.mutation.LastAnsweredCleared() {
		_spec.ClearField(categorymastery.FieldLastAnswered, field.TypeTime)
	}
	_node = &CategoryMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorymastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
