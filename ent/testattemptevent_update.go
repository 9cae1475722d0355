// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/testattemptevent"
)

// TestAttemptEventUpdate is the builder for updating TestAttemptEvent entities.
type TestAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *TestAttemptEventMutation
}

// Where appends a list predicates to the TestAttemptEventUpdate builder.
func (_u *TestAttemptEventUpdate) Where(ps ...predicate.TestAttemptEvent) *TestAttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TestAttemptEventUpdate) SetSessionID(v string) *TestAttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestAttemptEventUpdate) SetNillableSessionID(v *string) *TestAttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestAttemptEventUpdate) SetTotalQuestions(v int) *TestAttemptEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestAttemptEventUpdate) SetNillableTotalQuestions(v *int) *TestAttemptEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestAttemptEventUpdate) AddTotalQuestions(v int) *TestAttemptEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestAttemptEventUpdate) SetCorrectCount(v int) *TestAttemptEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestAttemptEventUpdate) SetNillableCorrectCount(v *int) *TestAttemptEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestAttemptEventUpdate) AddCorrectCount(v int) *TestAttemptEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TestAttemptEventUpdate) SetAccuracy(v float64) *TestAttemptEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TestAttemptEventUpdate) SetNillableAccuracy(v *float64) *TestAttemptEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TestAttemptEventUpdate) AddAccuracy(v float64) *TestAttemptEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestAttemptEventUpdate) SetDurationSecs(v int) *TestAttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestAttemptEventUpdate) SetNillableDurationSecs(v *int) *TestAttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestAttemptEventUpdate) AddDurationSecs(v int) *TestAttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TestAttemptEventMutation object of the builder.
func (_u *TestAttemptEventUpdate) Mutation() *TestAttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestAttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := testattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := testattemptevent.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := testattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.correct_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TestAttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testattemptevent.Table, testattemptevent.Columns, sqlgraph.NewFieldSpec(testattemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(testattemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(testattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(testattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(testattemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(testattemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testattemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testattemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestAttemptEventUpdateOne is the builder for updating a single TestAttemptEvent entity.
type TestAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestAttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TestAttemptEventUpdateOne) SetSessionID(v string) *TestAttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestAttemptEventUpdateOne) SetNillableSessionID(v *string) *TestAttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestAttemptEventUpdateOne) SetTotalQuestions(v int) *TestAttemptEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestAttemptEventUpdateOne) SetNillableTotalQuestions(v *int) *TestAttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestAttemptEventUpdateOne) AddTotalQuestions(v int) *TestAttemptEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestAttemptEventUpdateOne) SetCorrectCount(v int) *TestAttemptEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestAttemptEventUpdateOne) SetNillableCorrectCount(v *int) *TestAttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestAttemptEventUpdateOne) AddCorrectCount(v int) *TestAttemptEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TestAttemptEventUpdateOne) SetAccuracy(v float64) *TestAttemptEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TestAttemptEventUpdateOne) SetNillableAccuracy(v *float64) *TestAttemptEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TestAttemptEventUpdateOne) AddAccuracy(v float64) *TestAttemptEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestAttemptEventUpdateOne) SetDurationSecs(v int) *TestAttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestAttemptEventUpdateOne) SetNillableDurationSecs(v *int) *TestAttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestAttemptEventUpdateOne) AddDurationSecs(v int) *TestAttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TestAttemptEventMutation object of the builder.
func (_u *TestAttemptEventUpdateOne) Mutation() *TestAttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestAttemptEventUpdate builder.
func (_u *TestAttemptEventUpdateOne) Where(ps ...predicate.TestAttemptEvent) *TestAttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestAttemptEventUpdateOne) Select(field string, fields ...string) *TestAttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestAttemptEvent entity.
func (_u *TestAttemptEventUpdateOne) Save(ctx context.Context) (*TestAttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestAttemptEventUpdateOne) SaveX(ctx context.Context) *TestAttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestAttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := testattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := testattemptevent.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := testattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.correct_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TestAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *TestAttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testattemptevent.Table, testattemptevent.Columns, sqlgraph.NewFieldSpec(testattemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testattemptevent.FieldID)
		for _, f := range fields {
			if !testattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testattemptevent.FieldID {
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
		_spec.SetField(testattemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(testattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(testattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(testattemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(testattemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testattemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testattemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &TestAttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
