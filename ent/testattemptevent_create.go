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
	"github.com/jmsone/JeopardyTrainer-sub000/ent/testattemptevent"
)

// TestAttemptEventCreate is the builder for creating a TestAttemptEvent entity.
type TestAttemptEventCreate struct {
	config
	mutation *TestAttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *TestAttemptEventCreate) SetSequence(v int64) *TestAttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestAttemptEventCreate) SetTimestamp(v time.Time) *TestAttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TestAttemptEventCreate) SetNillableTimestamp(v *time.Time) *TestAttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TestAttemptEventCreate) SetSessionID(v string) *TestAttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TestAttemptEventCreate) SetTotalQuestions(v int) *TestAttemptEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *TestAttemptEventCreate) SetCorrectCount(v int) *TestAttemptEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *TestAttemptEventCreate) SetAccuracy(v float64) *TestAttemptEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *TestAttemptEventCreate) SetDurationSecs(v int) *TestAttemptEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *TestAttemptEventCreate) SetNillableDurationSecs(v *int) *TestAttemptEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the TestAttemptEventMutation object of the builder.
func (_c *TestAttemptEventCreate) Mutation() *TestAttemptEventMutation {
	return _c.mutation
}

// Save creates the TestAttemptEvent in the database.
func (_c *TestAttemptEventCreate) Save(ctx context.Context) (*TestAttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestAttemptEventCreate) SaveX(ctx context.Context) *TestAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestAttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestAttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := testattemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := testattemptevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestAttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TestAttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestAttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TestAttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := testattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "TestAttemptEvent.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := testattemptevent.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "TestAttemptEvent.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := testattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "TestAttemptEvent.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "TestAttemptEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "TestAttemptEvent.duration_secs"`)}
	}
	return nil
}

func (_c *TestAttemptEventCreate) sqlSave(ctx context.Context) (*TestAttemptEvent, error) {
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

func (_c *TestAttemptEventCreate) createSpec() (*TestAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TestAttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testattemptevent.Table, sqlgraph.NewFieldSpec(testattemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(testattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(testattemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(testattemptevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(testattemptevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(testattemptevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(testattemptevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestAttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestAttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TestAttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *TestAttemptEventUpsertOne {
	_c.conflict = opts
	return &TestAttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestAttemptEventCreate) OnConflictColumns(columns ...string) *TestAttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestAttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// TestAttemptEventUpsertOne is the builder for "upsert"-ing
	//  one TestAttemptEvent node.
	TestAttemptEventUpsertOne struct {
		create *TestAttemptEventCreate
	}

	// TestAttemptEventUpsert is the "OnConflict" setter.
	TestAttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *TestAttemptEventUpsert) SetSessionID(v string) *TestAttemptEventUpsert {
	u.Set(testattemptevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TestAttemptEventUpsert) UpdateSessionID() *TestAttemptEventUpsert {
	u.SetExcluded(testattemptevent.FieldSessionID)
	return u
}

// SetTotalQuestions sets the "total_questions" field.
func (u *TestAttemptEventUpsert) SetTotalQuestions(v int) *TestAttemptEventUpsert {
	u.Set(testattemptevent.FieldTotalQuestions, v)
	return u
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *TestAttemptEventUpsert) UpdateTotalQuestions() *TestAttemptEventUpsert {
	u.SetExcluded(testattemptevent.FieldTotalQuestions)
	return u
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *TestAttemptEventUpsert) AddTotalQuestions(v int) *TestAttemptEventUpsert {
	u.Add(testattemptevent.FieldTotalQuestions, v)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *TestAttemptEventUpsert) SetCorrectCount(v int) *TestAttemptEventUpsert {
	u.Set(testattemptevent.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *TestAttemptEventUpsert) UpdateCorrectCount() *TestAttemptEventUpsert {
	u.SetExcluded(testattemptevent.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *TestAttemptEventUpsert) AddCorrectCount(v int) *TestAttemptEventUpsert {
	u.Add(testattemptevent.FieldCorrectCount, v)
	return u
}

// SetAccuracy sets the "accuracy" field.
func (u *TestAttemptEventUpsert) SetAccuracy(v float64) *TestAttemptEventUpsert {
	u.Set(testattemptevent.FieldAccuracy, v)
	return u
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *TestAttemptEventUpsert) UpdateAccuracy() *TestAttemptEventUpsert {
	u.SetExcluded(testattemptevent.FieldAccuracy)
	return u
}

// AddAccuracy adds v to the "accuracy" field.
func (u *TestAttemptEventUpsert) AddAccuracy(v float64) *TestAttemptEventUpsert {
	u.Add(testattemptevent.FieldAccuracy, v)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *TestAttemptEventUpsert) SetDurationSecs(v int) *TestAttemptEventUpsert {
	u.Set(testattemptevent.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *TestAttemptEventUpsert) UpdateDurationSecs() *TestAttemptEventUpsert {
	u.SetExcluded(testattemptevent.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *TestAttemptEventUpsert) AddDurationSecs(v int) *TestAttemptEventUpsert {
	u.Add(testattemptevent.FieldDurationSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TestAttemptEventUpsertOne) UpdateNewValues() *TestAttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(testattemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(testattemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestAttemptEventUpsertOne) Ignore() *TestAttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestAttemptEventUpsertOne) DoNothing() *TestAttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestAttemptEventCreate.OnConflict
// documentation for more info.
func (u *TestAttemptEventUpsertOne) Update(set func(*TestAttemptEventUpsert)) *TestAttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestAttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TestAttemptEventUpsertOne) SetSessionID(v string) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TestAttemptEventUpsertOne) UpdateSessionID() *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *TestAttemptEventUpsertOne) SetTotalQuestions(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *TestAttemptEventUpsertOne) AddTotalQuestions(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *TestAttemptEventUpsertOne) UpdateTotalQuestions() *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *TestAttemptEventUpsertOne) SetCorrectCount(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *TestAttemptEventUpsertOne) AddCorrectCount(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *TestAttemptEventUpsertOne) UpdateCorrectCount() *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *TestAttemptEventUpsertOne) SetAccuracy(v float64) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *TestAttemptEventUpsertOne) AddAccuracy(v float64) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *TestAttemptEventUpsertOne) UpdateAccuracy() *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateAccuracy()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *TestAttemptEventUpsertOne) SetDurationSecs(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *TestAttemptEventUpsertOne) AddDurationSecs(v int) *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *TestAttemptEventUpsertOne) UpdateDurationSecs() *TestAttemptEventUpsertOne {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *TestAttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestAttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestAttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestAttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestAttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestAttemptEventCreateBulk is the builder for creating many TestAttemptEvent entities in bulk.
type TestAttemptEventCreateBulk struct {
	config
	err      error
	builders []*TestAttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TestAttemptEvent entities in the database.
func (_c *TestAttemptEventCreateBulk) Save(ctx context.Context) ([]*TestAttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestAttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestAttemptEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TestAttemptEventCreateBulk) SaveX(ctx context.Context) []*TestAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestAttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestAttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TestAttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestAttemptEventUpsertBulk {
	_c.conflict = opts
	return &TestAttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestAttemptEventCreateBulk) OnConflictColumns(columns ...string) *TestAttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestAttemptEventUpsertBulk{
		create: _c,
	}
}

// TestAttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TestAttemptEvent nodes.
type TestAttemptEventUpsertBulk struct {
	create *TestAttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TestAttemptEventUpsertBulk) UpdateNewValues() *TestAttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(testattemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(testattemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestAttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestAttemptEventUpsertBulk) Ignore() *TestAttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestAttemptEventUpsertBulk) DoNothing() *TestAttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestAttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *TestAttemptEventUpsertBulk) Update(set func(*TestAttemptEventUpsert)) *TestAttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestAttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TestAttemptEventUpsertBulk) SetSessionID(v string) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TestAttemptEventUpsertBulk) UpdateSessionID() *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *TestAttemptEventUpsertBulk) SetTotalQuestions(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *TestAttemptEventUpsertBulk) AddTotalQuestions(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *TestAttemptEventUpsertBulk) UpdateTotalQuestions() *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *TestAttemptEventUpsertBulk) SetCorrectCount(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *TestAttemptEventUpsertBulk) AddCorrectCount(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *TestAttemptEventUpsertBulk) UpdateCorrectCount() *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *TestAttemptEventUpsertBulk) SetAccuracy(v float64) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *TestAttemptEventUpsertBulk) AddAccuracy(v float64) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *TestAttemptEventUpsertBulk) UpdateAccuracy() *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateAccuracy()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *TestAttemptEventUpsertBulk) SetDurationSecs(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *TestAttemptEventUpsertBulk) AddDurationSecs(v int) *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *TestAttemptEventUpsertBulk) UpdateDurationSecs() *TestAttemptEventUpsertBulk {
	return u.Update(func(s *TestAttemptEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *TestAttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TestAttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestAttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestAttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
