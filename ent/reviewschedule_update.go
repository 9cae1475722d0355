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
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/reviewschedule"
)

// ReviewScheduleUpdate is the builder for updating ReviewSchedule entities.
type ReviewScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdate) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewScheduleUpdate) SetQuestionID(v string) *ReviewScheduleUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableQuestionID(v *string) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReviewScheduleUpdate) SetCategoryID(v string) *ReviewScheduleUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableCategoryID(v *string) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewScheduleUpdate) SetEaseFactor(v float64) *ReviewScheduleUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableEaseFactor(v *float64) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewScheduleUpdate) AddEaseFactor(v float64) *ReviewScheduleUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdate) SetIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableIntervalDays(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdate) AddIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewScheduleUpdate) SetRepetitions(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableRepetitions(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewScheduleUpdate) AddRepetitions(v int) *ReviewScheduleUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewScheduleUpdate) SetNextReview(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableNextReview(v *time.Time) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *ReviewScheduleUpdate) SetLastReviewed(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableLastReviewed(v *time.Time) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *ReviewScheduleUpdate) ClearLastReviewed() *ReviewScheduleUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdate) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reviewschedule.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := reviewschedule.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewschedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewschedule.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(reviewschedule.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewschedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewschedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewschedule.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewschedule.FieldLastReviewed, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewScheduleUpdateOne is the builder for updating a single ReviewSchedule entity.
type ReviewScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewScheduleUpdateOne) SetQuestionID(v string) *ReviewScheduleUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableQuestionID(v *string) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReviewScheduleUpdateOne) SetCategoryID(v string) *ReviewScheduleUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableCategoryID(v *string) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewScheduleUpdateOne) SetEaseFactor(v float64) *ReviewScheduleUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableEaseFactor(v *float64) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewScheduleUpdateOne) AddEaseFactor(v float64) *ReviewScheduleUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) SetIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableIntervalDays(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) AddIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewScheduleUpdateOne) SetRepetitions(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableRepetitions(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewScheduleUpdateOne) AddRepetitions(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewScheduleUpdateOne) SetNextReview(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableNextReview(v *time.Time) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *ReviewScheduleUpdateOne) SetLastReviewed(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableLastReviewed(v *time.Time) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *ReviewScheduleUpdateOne) ClearLastReviewed() *ReviewScheduleUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdateOne) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdateOne) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewScheduleUpdateOne) Select(field string, fields ...string) *ReviewScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewSchedule entity.
func (_u *ReviewScheduleUpdateOne) Save(ctx context.Context) (*ReviewSchedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) SaveX(ctx context.Context) *ReviewSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reviewschedule.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := reviewschedule.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewschedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdateOne) sqlSave(ctx context.Context) (_node *ReviewSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewschedule.FieldID)
		for _, f := range fields {
			if !reviewschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewschedule.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewschedule.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(reviewschedule.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewschedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewschedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewschedule.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewschedule.FieldLastReviewed, field.TypeTime)
	}
	_node = &ReviewSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
