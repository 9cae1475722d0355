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
	"github.com/jmsone/JeopardyTrainer-sub000/ent/achievementevent"
)

// AchievementEventCreate is the builder for creating a AchievementEvent entity.
type AchievementEventCreate struct {
	config
	mutation *AchievementEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AchievementEventCreate) SetSequence(v int64) *AchievementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AchievementEventCreate) SetTimestamp(v time.Time) *AchievementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AchievementEventCreate) SetNillableTimestamp(v *time.Time) *AchievementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAchievementType sets the "achievement_type" field.
func (_c *AchievementEventCreate) SetAchievementType(v string) *AchievementEventCreate {
	_c.mutation.SetAchievementType(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AchievementEventCreate) SetTier(v string) *AchievementEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *AchievementEventCreate) SetCategoryID(v string) *AchievementEventCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *AchievementEventCreate) SetNillableCategoryID(v *string) *AchievementEventCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AchievementEventCreate) SetSessionID(v string) *AchievementEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AchievementEventCreate) SetReason(v string) *AchievementEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the AchievementEventMutation object of the builder.
func (_c *AchievementEventCreate) Mutation() *AchievementEventMutation {
	return _c.mutation
}

// Save creates the AchievementEvent in the database.
func (_c *AchievementEventCreate) Save(ctx context.Context) (*AchievementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementEventCreate) SaveX(ctx context.Context) *AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := achievementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AchievementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AchievementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AchievementType(); !ok {
		return &ValidationError{Name: "achievement_type", err: errors.New(`ent: missing required field "AchievementEvent.achievement_type"`)}
	}
	if v, ok := _c.mutation.AchievementType(); ok {
		if err := achievementevent.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AchievementEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := achievementevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AchievementEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := achievementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AchievementEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := achievementevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *AchievementEventCreate) sqlSave(ctx context.Context) (*AchievementEvent, error) {
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

func (_c *AchievementEventCreate) createSpec() (*AchievementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementevent.Table, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(achievementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(achievementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AchievementType(); ok {
		_spec.SetField(achievementevent.FieldAchievementType, field.TypeString, value)
		_node.AchievementType = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(achievementevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(achievementevent.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(achievementevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(achievementevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementEventCreate) OnConflict(opts ...sql.ConflictOption) *AchievementEventUpsertOne {
	_c.conflict = opts
	return &AchievementEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementEventCreate) OnConflictColumns(columns ...string) *AchievementEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementEventUpsertOne{
		create: _c,
	}
}

type (
	// AchievementEventUpsertOne is the builder for "upsert"-ing
	//  one AchievementEvent node.
	AchievementEventUpsertOne struct {
		create *AchievementEventCreate
	}

	// AchievementEventUpsert is the "OnConflict" setter.
	AchievementEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementEventUpsert) SetAchievementType(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldAchievementType, v)
	return u
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateAchievementType() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldAchievementType)
	return u
}

// SetTier sets the "tier" field.
func (u *AchievementEventUpsert) SetTier(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateTier() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldTier)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *AchievementEventUpsert) SetCategoryID(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateCategoryID() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldCategoryID)
	return u
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *AchievementEventUpsert) ClearCategoryID() *AchievementEventUpsert {
	u.SetNull(achievementevent.FieldCategoryID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AchievementEventUpsert) SetSessionID(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateSessionID() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldSessionID)
	return u
}

// SetReason sets the "reason" field.
func (u *AchievementEventUpsert) SetReason(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateReason() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementEventUpsertOne) UpdateNewValues() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(achievementevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(achievementevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AchievementEventUpsertOne) Ignore() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementEventUpsertOne) DoNothing() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementEventCreate.OnConflict
// documentation for more info.
func (u *AchievementEventUpsertOne) Update(set func(*AchievementEventUpsert)) *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementEventUpsertOne) SetAchievementType(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetAchievementType(v)
	})
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateAchievementType() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateAchievementType()
	})
}

// SetTier sets the "tier" field.
func (u *AchievementEventUpsertOne) SetTier(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateTier() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateTier()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *AchievementEventUpsertOne) SetCategoryID(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateCategoryID() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateCategoryID()
	})
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *AchievementEventUpsertOne) ClearCategoryID() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.ClearCategoryID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AchievementEventUpsertOne) SetSessionID(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateSessionID() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *AchievementEventUpsertOne) SetReason(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateReason() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *AchievementEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AchievementEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AchievementEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AchievementEventCreateBulk is the builder for creating many AchievementEvent entities in bulk.
type AchievementEventCreateBulk struct {
	config
	err      error
	builders []*AchievementEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AchievementEvent entities in the database.
func (_c *AchievementEventCreateBulk) Save(ctx context.Context) ([]*AchievementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementEventMutation)
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
func (_c *AchievementEventCreateBulk) SaveX(ctx context.Context) []*AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AchievementEventUpsertBulk {
	_c.conflict = opts
	return &AchievementEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementEventCreateBulk) OnConflictColumns(columns ...string) *AchievementEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementEventUpsertBulk{
		create: _c,
	}
}

// AchievementEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AchievementEvent nodes.
type AchievementEventUpsertBulk struct {
	create *AchievementEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementEventUpsertBulk) UpdateNewValues() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(achievementevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(achievementevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AchievementEventUpsertBulk) Ignore() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementEventUpsertBulk) DoNothing() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementEventCreateBulk.OnConflict
// documentation for more info.
func (u *AchievementEventUpsertBulk) Update(set func(*AchievementEventUpsert)) *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementEventUpsertBulk) SetAchievementType(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetAchievementType(v)
	})
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateAchievementType() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateAchievementType()
	})
}

// SetTier sets the "tier" field.
func (u *AchievementEventUpsertBulk) SetTier(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateTier() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateTier()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *AchievementEventUpsertBulk) SetCategoryID(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateCategoryID() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateCategoryID()
	})
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *AchievementEventUpsertBulk) ClearCategoryID() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.ClearCategoryID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AchievementEventUpsertBulk) SetSessionID(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateSessionID() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *AchievementEventUpsertBulk) SetReason(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateReason() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *AchievementEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AchievementEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
