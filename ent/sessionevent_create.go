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
	"github.com/jmsone/JeopardyTrainer-sub000/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *SessionEventCreate) SetMode(v string) *SessionEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetQuestionsServed sets the "questions_served" field.
func (_c *SessionEventCreate) SetQuestionsServed(v int) *SessionEventCreate {
	_c.mutation.SetQuestionsServed(v)
	return _c
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionsServed(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionsServed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *SessionEventCreate) SetCorrectAnswers(v int) *SessionEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCorrectAnswers(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		v := sessionevent.DefaultQuestionsServed
		_c.mutation.SetQuestionsServed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := sessionevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "SessionEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := sessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		return &ValidationError{Name: "questions_served", err: errors.New(`ent: missing required field "SessionEvent.questions_served"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "SessionEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
		_node.QuestionsServed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionEventCreate) OnConflict(opts ...sql.ConflictOption) *SessionEventUpsertOne {
	_c.conflict = opts
	return &SessionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionEventCreate) OnConflictColumns(columns ...string) *SessionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionEventUpsertOne{
		create: _c,
	}
}

type (
	// SessionEventUpsertOne is the builder for "upsert"-ing
	//  one SessionEvent node.
	SessionEventUpsertOne struct {
		create *SessionEventCreate
	}

	// SessionEventUpsert is the "OnConflict" setter.
	SessionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsert) SetSessionID(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateSessionID() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldSessionID)
	return u
}

// SetMode sets the "mode" field.
func (u *SessionEventUpsert) SetMode(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateMode() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldMode)
	return u
}

// SetAction sets the "action" field.
func (u *SessionEventUpsert) SetAction(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateAction() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldAction)
	return u
}

// SetQuestionsServed sets the "questions_served" field.
func (u *SessionEventUpsert) SetQuestionsServed(v int) *SessionEventUpsert {
	u.Set(sessionevent.FieldQuestionsServed, v)
	return u
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateQuestionsServed() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldQuestionsServed)
	return u
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *SessionEventUpsert) AddQuestionsServed(v int) *SessionEventUpsert {
	u.Add(sessionevent.FieldQuestionsServed, v)
	return u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *SessionEventUpsert) SetCorrectAnswers(v int) *SessionEventUpsert {
	u.Set(sessionevent.FieldCorrectAnswers, v)
	return u
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateCorrectAnswers() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldCorrectAnswers)
	return u
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *SessionEventUpsert) AddCorrectAnswers(v int) *SessionEventUpsert {
	u.Add(sessionevent.FieldCorrectAnswers, v)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionEventUpsert) SetDurationSecs(v int) *SessionEventUpsert {
	u.Set(sessionevent.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateDurationSecs() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionEventUpsert) AddDurationSecs(v int) *SessionEventUpsert {
	u.Add(sessionevent.FieldDurationSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionEventUpsertOne) UpdateNewValues() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(sessionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(sessionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionEventUpsertOne) Ignore() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionEventUpsertOne) DoNothing() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionEventCreate.OnConflict
// documentation for more info.
func (u *SessionEventUpsertOne) Update(set func(*SessionEventUpsert)) *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsertOne) SetSessionID(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateSessionID() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetMode sets the "mode" field.
func (u *SessionEventUpsertOne) SetMode(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateMode() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateMode()
	})
}

// SetAction sets the "action" field.
func (u *SessionEventUpsertOne) SetAction(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateAction() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateAction()
	})
}

// SetQuestionsServed sets the "questions_served" field.
func (u *SessionEventUpsertOne) SetQuestionsServed(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetQuestionsServed(v)
	})
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *SessionEventUpsertOne) AddQuestionsServed(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddQuestionsServed(v)
	})
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateQuestionsServed() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateQuestionsServed()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *SessionEventUpsertOne) SetCorrectAnswers(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *SessionEventUpsertOne) AddCorrectAnswers(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateCorrectAnswers() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionEventUpsertOne) SetDurationSecs(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionEventUpsertOne) AddDurationSecs(v int) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateDurationSecs() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *SessionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionEventUpsertBulk {
	_c.conflict = opts
	return &SessionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionEventCreateBulk) OnConflictColumns(columns ...string) *SessionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionEventUpsertBulk{
		create: _c,
	}
}

// SessionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionEvent nodes.
type SessionEventUpsertBulk struct {
	create *SessionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionEventUpsertBulk) UpdateNewValues() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(sessionevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(sessionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionEventUpsertBulk) Ignore() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionEventUpsertBulk) DoNothing() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionEventCreateBulk.OnConflict
// documentation for more info.
func (u *SessionEventUpsertBulk) Update(set func(*SessionEventUpsert)) *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsertBulk) SetSessionID(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateSessionID() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetMode sets the "mode" field.
func (u *SessionEventUpsertBulk) SetMode(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateMode() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateMode()
	})
}

// SetAction sets the "action" field.
func (u *SessionEventUpsertBulk) SetAction(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateAction() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateAction()
	})
}

// SetQuestionsServed sets the "questions_served" field.
func (u *SessionEventUpsertBulk) SetQuestionsServed(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetQuestionsServed(v)
	})
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *SessionEventUpsertBulk) AddQuestionsServed(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddQuestionsServed(v)
	})
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateQuestionsServed() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateQuestionsServed()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *SessionEventUpsertBulk) SetCorrectAnswers(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *SessionEventUpsertBulk) AddCorrectAnswers(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateCorrectAnswers() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionEventUpsertBulk) SetDurationSecs(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionEventUpsertBulk) AddDurationSecs(v int) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateDurationSecs() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *SessionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
