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
	"github.com/jmsone/JeopardyTrainer-sub000/ent/reviewschedule"
)

// ReviewScheduleCreate is the builder for creating a ReviewSchedule entity.
type ReviewScheduleCreate struct {
	config
	mutation *ReviewScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewScheduleCreate) SetQuestionID(v string) *ReviewScheduleCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ReviewScheduleCreate) SetCategoryID(v string) *ReviewScheduleCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewScheduleCreate) SetEaseFactor(v float64) *ReviewScheduleCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableEaseFactor(v *float64) *ReviewScheduleCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewScheduleCreate) SetIntervalDays(v int) *ReviewScheduleCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableIntervalDays(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewScheduleCreate) SetRepetitions(v int) *ReviewScheduleCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableRepetitions(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *ReviewScheduleCreate) SetNextReview(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *ReviewScheduleCreate) SetLastReviewed(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableLastReviewed(v *time.Time) *ReviewScheduleCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_c *ReviewScheduleCreate) Mutation() *ReviewScheduleMutation {
	return _c.mutation
}

// Save creates the ReviewSchedule in the database.
func (_c *ReviewScheduleCreate) Save(ctx context.Context) (*ReviewSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewScheduleCreate) SaveX(ctx context.Context) *ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewScheduleCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewschedule.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewschedule.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := reviewschedule.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewScheduleCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReviewSchedule.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := reviewschedule.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "ReviewSchedule.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := reviewschedule.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewSchedule.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewSchedule.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewSchedule.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := reviewschedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "ReviewSchedule.next_review"`)}
	}
	return nil
}

func (_c *ReviewScheduleCreate) sqlSave(ctx context.Context) (*ReviewSchedule, error) {
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

func (_c *ReviewScheduleCreate) createSpec() (*ReviewSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewschedule.Table, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewschedule.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(reviewschedule.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewschedule.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(reviewschedule.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertOne {
	_c.conflict = opts
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflictColumns(columns ...string) *ReviewScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ReviewScheduleUpsertOne is the builder for "upsert"-ing
	//  one ReviewSchedule node.
	ReviewScheduleUpsertOne struct {
		create *ReviewScheduleCreate
	}

	// ReviewScheduleUpsert is the "OnConflict" setter.
	ReviewScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *ReviewScheduleUpsert) SetQuestionID(v string) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateQuestionID() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldQuestionID)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *ReviewScheduleUpsert) SetCategoryID(v string) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateCategoryID() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldCategoryID)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsert) SetEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateEaseFactor() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsert) AddEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldEaseFactor, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsert) SetIntervalDays(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateIntervalDays() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsert) AddIntervalDays(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldIntervalDays, v)
	return u
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsert) SetRepetitions(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldRepetitions, v)
	return u
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateRepetitions() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldRepetitions)
	return u
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsert) AddRepetitions(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldRepetitions, v)
	return u
}

// SetNextReview sets the "next_review" field.
func (u *ReviewScheduleUpsert) SetNextReview(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldNextReview, v)
	return u
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateNextReview() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldNextReview)
	return u
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsert) SetLastReviewed(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldLastReviewed, v)
	return u
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateLastReviewed() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldLastReviewed)
	return u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsert) ClearLastReviewed() *ReviewScheduleUpsert {
	u.SetNull(reviewschedule.FieldLastReviewed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertOne) UpdateNewValues() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewScheduleUpsertOne) Ignore() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertOne) DoNothing() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreate.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertOne) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *ReviewScheduleUpsertOne) SetQuestionID(v string) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateQuestionID() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *ReviewScheduleUpsertOne) SetCategoryID(v string) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateCategoryID() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateCategoryID()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) SetEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) AddEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateEaseFactor() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertOne) SetIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertOne) AddIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateIntervalDays() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsertOne) SetRepetitions(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsertOne) AddRepetitions(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateRepetitions() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateRepetitions()
	})
}

// SetNextReview sets the "next_review" field.
func (u *ReviewScheduleUpsertOne) SetNextReview(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetNextReview(v)
	})
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateNextReview() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateNextReview()
	})
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsertOne) SetLastReviewed(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewed(v)
	})
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateLastReviewed() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewed()
	})
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsertOne) ClearLastReviewed() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewed()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewScheduleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewScheduleCreateBulk is the builder for creating many ReviewSchedule entities in bulk.
type ReviewScheduleCreateBulk struct {
	config
	err      error
	builders []*ReviewScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewSchedule entities in the database.
func (_c *ReviewScheduleCreateBulk) Save(ctx context.Context) ([]*ReviewSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewScheduleMutation)
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
func (_c *ReviewScheduleCreateBulk) SaveX(ctx context.Context) []*ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertBulk {
	_c.conflict = opts
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflictColumns(columns ...string) *ReviewScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// ReviewScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewSchedule nodes.
type ReviewScheduleUpsertBulk struct {
	create *ReviewScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) UpdateNewValues() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) Ignore() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertBulk) DoNothing() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertBulk) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *ReviewScheduleUpsertBulk) SetQuestionID(v string) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateQuestionID() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *ReviewScheduleUpsertBulk) SetCategoryID(v string) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateCategoryID() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateCategoryID()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) SetEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) AddEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateEaseFactor() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) SetIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) AddIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateIntervalDays() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsertBulk) SetRepetitions(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsertBulk) AddRepetitions(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateRepetitions() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateRepetitions()
	})
}

// SetNextReview sets the "next_review" field.
func (u *ReviewScheduleUpsertBulk) SetNextReview(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetNextReview(v)
	})
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateNextReview() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateNextReview()
	})
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsertBulk) SetLastReviewed(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewed(v)
	})
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateLastReviewed() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewed()
	})
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsertBulk) ClearLastReviewed() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewed()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
