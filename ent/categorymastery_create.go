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
)

// CategoryMasteryCreate is the builder for creating a CategoryMastery entity.
type CategoryMasteryCreate struct {
	config
	mutation *CategoryMasteryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategoryID sets the "category_id" field.
func (_c *CategoryMasteryCreate) SetCategoryID(v string) *CategoryMasteryCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetTotalCorrect sets the "total_correct" field.
func (_c *CategoryMasteryCreate) SetTotalCorrect(v int) *CategoryMasteryCreate {
	_c.mutation.SetTotalCorrect(v)
	return _c
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_c *CategoryMasteryCreate) SetNillableTotalCorrect(v *int) *CategoryMasteryCreate {
	if v != nil {
		_c.SetTotalCorrect(*v)
	}
	return _c
}

// SetTotalAnswered sets the "total_answered" field.
func (_c *CategoryMasteryCreate) SetTotalAnswered(v int) *CategoryMasteryCreate {
	_c.mutation.SetTotalAnswered(v)
	return _c
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_c *CategoryMasteryCreate) SetNillableTotalAnswered(v *int) *CategoryMasteryCreate {
	if v != nil {
		_c.SetTotalAnswered(*v)
	}
	return _c
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (_c *CategoryMasteryCreate) SetWeightedCorrectScore(v float64) *CategoryMasteryCreate {
	_c.mutation.SetWeightedCorrectScore(v)
	return _c
}

// SetNillableWeightedCorrectScore sets the "weighted_correct_score" field if the given value is not nil.
func (_c *CategoryMasteryCreate) SetNillableWeightedCorrectScore(v *float64) *CategoryMasteryCreate {
	if v != nil {
		_c.SetWeightedCorrectScore(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *CategoryMasteryCreate) SetMasteryLevel(v string) *CategoryMasteryCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *CategoryMasteryCreate) SetNillableMasteryLevel(v *string) *CategoryMasteryCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetLastAnswered sets the "last_answered" field.
func (_c *CategoryMasteryCreate) SetLastAnswered(v time.Time) *CategoryMasteryCreate {
	_c.mutation.SetLastAnswered(v)
	return _c
}

// SetNillableLastAnswered sets the "last_answered" field if the given value is not nil.
func (_c *CategoryMasteryCreate) SetNillableLastAnswered(v *time.Time) *CategoryMasteryCreate {
	if v != nil {
		_c.SetLastAnswered(*v)
	}
	return _c
}

// Mutation returns the CategoryMasteryMutation object of the builder.
func (_c *CategoryMasteryCreate) Mutation() *CategoryMasteryMutation {
	return _c.mutation
}

// Save creates the CategoryMastery in the database.
func (_c *CategoryMasteryCreate) Save(ctx context.Context) (*CategoryMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryMasteryCreate) SaveX(ctx context.Context) *CategoryMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryMasteryCreate) defaults() {
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		v := categorymastery.DefaultTotalCorrect
		_c.mutation.SetTotalCorrect(v)
	}
	if _, ok := _c.mutation.TotalAnswered(); !ok {
		v := categorymastery.DefaultTotalAnswered
		_c.mutation.SetTotalAnswered(v)
	}
	if _, ok := _c.mutation.WeightedCorrectScore(); !ok {
		v := categorymastery.DefaultWeightedCorrectScore
		_c.mutation.SetWeightedCorrectScore(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := categorymastery.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryMasteryCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "CategoryMastery.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := categorymastery.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		return &ValidationError{Name: "total_correct", err: errors.New(`ent: missing required field "CategoryMastery.total_correct"`)}
	}
	if v, ok := _c.mutation.TotalCorrect(); ok {
		if err := categorymastery.TotalCorrectValidator(v); err != nil {
			return &ValidationError{Name: "total_correct", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAnswered(); !ok {
		return &ValidationError{Name: "total_answered", err: errors.New(`ent: missing required field "CategoryMastery.total_answered"`)}
	}
	if v, ok := _c.mutation.TotalAnswered(); ok {
		if err := categorymastery.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "CategoryMastery.total_answered": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeightedCorrectScore(); !ok {
		return &ValidationError{Name: "weighted_correct_score", err: errors.New(`ent: missing required field "CategoryMastery.weighted_correct_score"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "CategoryMastery.mastery_level"`)}
	}
	return nil
}

func (_c *CategoryMasteryCreate) sqlSave(ctx context.Context) (*CategoryMastery, error) {
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

func (_c *CategoryMasteryCreate) createSpec() (*CategoryMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categorymastery.Table, sqlgraph.NewFieldSpec(categorymastery.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(categorymastery.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.TotalCorrect(); ok {
		_spec.SetField(categorymastery.FieldTotalCorrect, field.TypeInt, value)
		_node.TotalCorrect = value
	}
	if value, ok := _c.mutation.TotalAnswered(); ok {
		_spec.SetField(categorymastery.FieldTotalAnswered, field.TypeInt, value)
		_node.TotalAnswered = value
	}
	if value, ok := _c.mutation.WeightedCorrectScore(); ok {
		_spec.SetField(categorymastery.FieldWeightedCorrectScore, field.TypeFloat64, value)
		_node.WeightedCorrectScore = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(categorymastery.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.LastAnswered(); ok {
		_spec.SetField(categorymastery.FieldLastAnswered, field.TypeTime, value)
		_node.LastAnswered = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CategoryMastery.Create().
//		SetCategoryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CategoryMasteryUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *CategoryMasteryCreate) OnConflict(opts ...sql.ConflictOption) *CategoryMasteryUpsertOne {
	_c.conflict = opts
	return &CategoryMasteryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CategoryMasteryCreate) OnConflictColumns(columns ...string) *CategoryMasteryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CategoryMasteryUpsertOne{
		create: _c,
	}
}

type (
	// CategoryMasteryUpsertOne is the builder for "upsert"-ing
	//  one CategoryMastery node.
	CategoryMasteryUpsertOne struct {
		create *CategoryMasteryCreate
	}

	// CategoryMasteryUpsert is the "OnConflict" setter.
	CategoryMasteryUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategoryID sets the "category_id" field.
func (u *CategoryMasteryUpsert) SetCategoryID(v string) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateCategoryID() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldCategoryID)
	return u
}

// SetTotalCorrect sets the "total_correct" field.
func (u *CategoryMasteryUpsert) SetTotalCorrect(v int) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldTotalCorrect, v)
	return u
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateTotalCorrect() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldTotalCorrect)
	return u
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *CategoryMasteryUpsert) AddTotalCorrect(v int) *CategoryMasteryUpsert {
	u.Add(categorymastery.FieldTotalCorrect, v)
	return u
}

// SetTotalAnswered sets the "total_answered" field.
func (u *CategoryMasteryUpsert) SetTotalAnswered(v int) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldTotalAnswered, v)
	return u
}

// UpdateTotalAnswered sets the "total_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateTotalAnswered() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldTotalAnswered)
	return u
}

// AddTotalAnswered adds v to the "total_answered" field.
func (u *CategoryMasteryUpsert) AddTotalAnswered(v int) *CategoryMasteryUpsert {
	u.Add(categorymastery.FieldTotalAnswered, v)
	return u
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (u *CategoryMasteryUpsert) SetWeightedCorrectScore(v float64) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldWeightedCorrectScore, v)
	return u
}

// UpdateWeightedCorrectScore sets the "weighted_correct_score" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateWeightedCorrectScore() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldWeightedCorrectScore)
	return u
}

// AddWeightedCorrectScore adds v to the "weighted_correct_score" field.
func (u *CategoryMasteryUpsert) AddWeightedCorrectScore(v float64) *CategoryMasteryUpsert {
	u.Add(categorymastery.FieldWeightedCorrectScore, v)
	return u
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *CategoryMasteryUpsert) SetMasteryLevel(v string) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldMasteryLevel, v)
	return u
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateMasteryLevel() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldMasteryLevel)
	return u
}

// SetLastAnswered sets the "last_answered" field.
func (u *CategoryMasteryUpsert) SetLastAnswered(v time.Time) *CategoryMasteryUpsert {
	u.Set(categorymastery.FieldLastAnswered, v)
	return u
}

// UpdateLastAnswered sets the "last_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsert) UpdateLastAnswered() *CategoryMasteryUpsert {
	u.SetExcluded(categorymastery.FieldLastAnswered)
	return u
}

// ClearLastAnswered clears the value of the "last_answered" field.
func (u *CategoryMasteryUpsert) ClearLastAnswered() *CategoryMasteryUpsert {
	u.SetNull(categorymastery.FieldLastAnswered)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CategoryMasteryUpsertOne) UpdateNewValues() *CategoryMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CategoryMasteryUpsertOne) Ignore() *CategoryMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CategoryMasteryUpsertOne) DoNothing() *CategoryMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CategoryMasteryCreate.OnConflict
// documentation for more info.
func (u *CategoryMasteryUpsertOne) Update(set func(*CategoryMasteryUpsert)) *CategoryMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CategoryMasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *CategoryMasteryUpsertOne) SetCategoryID(v string) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateCategoryID() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateCategoryID()
	})
}

// SetTotalCorrect sets the "total_correct" field.
func (u *CategoryMasteryUpsertOne) SetTotalCorrect(v int) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetTotalCorrect(v)
	})
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *CategoryMasteryUpsertOne) AddTotalCorrect(v int) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddTotalCorrect(v)
	})
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateTotalCorrect() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateTotalCorrect()
	})
}

// SetTotalAnswered sets the "total_answered" field.
func (u *CategoryMasteryUpsertOne) SetTotalAnswered(v int) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetTotalAnswered(v)
	})
}

// AddTotalAnswered adds v to the "total_answered" field.
func (u *CategoryMasteryUpsertOne) AddTotalAnswered(v int) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddTotalAnswered(v)
	})
}

// UpdateTotalAnswered sets the "total_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateTotalAnswered() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateTotalAnswered()
	})
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (u *CategoryMasteryUpsertOne) SetWeightedCorrectScore(v float64) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetWeightedCorrectScore(v)
	})
}

// AddWeightedCorrectScore adds v to the "weighted_correct_score" field.
func (u *CategoryMasteryUpsertOne) AddWeightedCorrectScore(v float64) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddWeightedCorrectScore(v)
	})
}

// UpdateWeightedCorrectScore sets the "weighted_correct_score" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateWeightedCorrectScore() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateWeightedCorrectScore()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *CategoryMasteryUpsertOne) SetMasteryLevel(v string) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateMasteryLevel() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetLastAnswered sets the "last_answered" field.
func (u *CategoryMasteryUpsertOne) SetLastAnswered(v time.Time) *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetLastAnswered(v)
	})
}

// UpdateLastAnswered sets the "last_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsertOne) UpdateLastAnswered() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateLastAnswered()
	})
}

// ClearLastAnswered clears the value of the "last_answered" field.
func (u *CategoryMasteryUpsertOne) ClearLastAnswered() *CategoryMasteryUpsertOne {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.ClearLastAnswered()
	})
}

// Exec executes the query.
func (u *CategoryMasteryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CategoryMasteryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CategoryMasteryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CategoryMasteryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CategoryMasteryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CategoryMasteryCreateBulk is the builder for creating many CategoryMastery entities in bulk.
type CategoryMasteryCreateBulk struct {
	config
	err      error
	builders []*CategoryMasteryCreate
	conflict []sql.ConflictOption
}

// Save creates the CategoryMastery entities in the database.
func (_c *CategoryMasteryCreateBulk) Save(ctx context.Context) ([]*CategoryMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryMasteryMutation)
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
func (_c *CategoryMasteryCreateBulk) SaveX(ctx context.Context) []*CategoryMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CategoryMastery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CategoryMasteryUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *CategoryMasteryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CategoryMasteryUpsertBulk {
	_c.conflict = opts
	return &CategoryMasteryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CategoryMasteryCreateBulk) OnConflictColumns(columns ...string) *CategoryMasteryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CategoryMasteryUpsertBulk{
		create: _c,
	}
}

// CategoryMasteryUpsertBulk is the builder for "upsert"-ing
// a bulk of CategoryMastery nodes.
type CategoryMasteryUpsertBulk struct {
	create *CategoryMasteryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CategoryMasteryUpsertBulk) UpdateNewValues() *CategoryMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CategoryMastery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CategoryMasteryUpsertBulk) Ignore() *CategoryMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CategoryMasteryUpsertBulk) DoNothing() *CategoryMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CategoryMasteryCreateBulk.OnConflict
// documentation for more info.
func (u *CategoryMasteryUpsertBulk) Update(set func(*CategoryMasteryUpsert)) *CategoryMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CategoryMasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *CategoryMasteryUpsertBulk) SetCategoryID(v string) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateCategoryID() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateCategoryID()
	})
}

// SetTotalCorrect sets the "total_correct" field.
func (u *CategoryMasteryUpsertBulk) SetTotalCorrect(v int) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetTotalCorrect(v)
	})
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *CategoryMasteryUpsertBulk) AddTotalCorrect(v int) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddTotalCorrect(v)
	})
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateTotalCorrect() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateTotalCorrect()
	})
}

// SetTotalAnswered sets the "total_answered" field.
func (u *CategoryMasteryUpsertBulk) SetTotalAnswered(v int) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetTotalAnswered(v)
	})
}

// AddTotalAnswered adds v to the "total_answered" field.
func (u *CategoryMasteryUpsertBulk) AddTotalAnswered(v int) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddTotalAnswered(v)
	})
}

// UpdateTotalAnswered sets the "total_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateTotalAnswered() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateTotalAnswered()
	})
}

// SetWeightedCorrectScore sets the "weighted_correct_score" field.
func (u *CategoryMasteryUpsertBulk) SetWeightedCorrectScore(v float64) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetWeightedCorrectScore(v)
	})
}

// AddWeightedCorrectScore adds v to the "weighted_correct_score" field.
func (u *CategoryMasteryUpsertBulk) AddWeightedCorrectScore(v float64) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.AddWeightedCorrectScore(v)
	})
}

// UpdateWeightedCorrectScore sets the "weighted_correct_score" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateWeightedCorrectScore() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateWeightedCorrectScore()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *CategoryMasteryUpsertBulk) SetMasteryLevel(v string) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateMasteryLevel() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetLastAnswered sets the "last_answered" field.
func (u *CategoryMasteryUpsertBulk) SetLastAnswered(v time.Time) *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.SetLastAnswered(v)
	})
}

// UpdateLastAnswered sets the "last_answered" field to the value that was provided on create.
func (u *CategoryMasteryUpsertBulk) UpdateLastAnswered() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.UpdateLastAnswered()
	})
}

// ClearLastAnswered clears the value of the "last_answered" field.
func (u *CategoryMasteryUpsertBulk) ClearLastAnswered() *CategoryMasteryUpsertBulk {
	return u.Update(func(s *CategoryMasteryUpsert) {
		s.ClearLastAnswered()
	})
}

// Exec executes the query.
func (u *CategoryMasteryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CategoryMasteryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CategoryMasteryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CategoryMasteryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
