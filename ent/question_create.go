// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionCreate) SetQuestionID(v string) *QuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *QuestionCreate) SetCategoryID(v string) *QuestionCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionCreate) SetPrompt(v string) *QuestionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionCreate) SetAnswer(v string) *QuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetChoices sets the "choices" field.
func (_c *QuestionCreate) SetChoices(v []string) *QuestionCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *string) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *QuestionCreate) SetSource(v string) *QuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSource(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := question.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Question.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Question.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := question.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Question.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Question.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Question.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Question.source"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(question.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsert) SetQuestionID(v string) *QuestionUpsert {
	u.Set(question.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionID() *QuestionUpsert {
	u.SetExcluded(question.FieldQuestionID)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *QuestionUpsert) SetCategoryID(v string) *QuestionUpsert {
	u.Set(question.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCategoryID() *QuestionUpsert {
	u.SetExcluded(question.FieldCategoryID)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsert) SetPrompt(v string) *QuestionUpsert {
	u.Set(question.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePrompt() *QuestionUpsert {
	u.SetExcluded(question.FieldPrompt)
	return u
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsert) SetAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldAnswer)
	return u
}

// SetChoices sets the "choices" field.
func (u *QuestionUpsert) SetChoices(v []string) *QuestionUpsert {
	u.Set(question.FieldChoices, v)
	return u
}

// UpdateChoices sets the "choices" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateChoices() *QuestionUpsert {
	u.SetExcluded(question.FieldChoices)
	return u
}

// ClearChoices clears the value of the "choices" field.
func (u *QuestionUpsert) ClearChoices() *QuestionUpsert {
	u.SetNull(question.FieldChoices)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsert) SetDifficulty(v string) *QuestionUpsert {
	u.Set(question.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficulty)
	return u
}

// SetExplanation sets the "explanation" field.
func (u *QuestionUpsert) SetExplanation(v string) *QuestionUpsert {
	u.Set(question.FieldExplanation, v)
	return u
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateExplanation() *QuestionUpsert {
	u.SetExcluded(question.FieldExplanation)
	return u
}

// ClearExplanation clears the value of the "explanation" field.
func (u *QuestionUpsert) ClearExplanation() *QuestionUpsert {
	u.SetNull(question.FieldExplanation)
	return u
}

// SetSource sets the "source" field.
func (u *QuestionUpsert) SetSource(v string) *QuestionUpsert {
	u.Set(question.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSource() *QuestionUpsert {
	u.SetExcluded(question.FieldSource)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsertOne) SetQuestionID(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *QuestionUpsertOne) SetCategoryID(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCategoryID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategoryID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsertOne) SetPrompt(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePrompt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrompt()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertOne) SetAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetChoices sets the "choices" field.
func (u *QuestionUpsertOne) SetChoices(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetChoices(v)
	})
}

// UpdateChoices sets the "choices" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateChoices() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateChoices()
	})
}

// ClearChoices clears the value of the "choices" field.
func (u *QuestionUpsertOne) ClearChoices() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearChoices()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertOne) SetDifficulty(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetExplanation sets the "explanation" field.
func (u *QuestionUpsertOne) SetExplanation(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateExplanation() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateExplanation()
	})
}

// ClearExplanation clears the value of the "explanation" field.
func (u *QuestionUpsertOne) ClearExplanation() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearExplanation()
	})
}

// SetSource sets the "source" field.
func (u *QuestionUpsertOne) SetSource(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSource() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsertBulk) SetQuestionID(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *QuestionUpsertBulk) SetCategoryID(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCategoryID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategoryID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsertBulk) SetPrompt(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePrompt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrompt()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertBulk) SetAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetChoices sets the "choices" field.
func (u *QuestionUpsertBulk) SetChoices(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetChoices(v)
	})
}

// UpdateChoices sets the "choices" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateChoices() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateChoices()
	})
}

// ClearChoices clears the value of the "choices" field.
func (u *QuestionUpsertBulk) ClearChoices() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearChoices()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertBulk) SetDifficulty(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetExplanation sets the "explanation" field.
func (u *QuestionUpsertBulk) SetExplanation(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateExplanation() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateExplanation()
	})
}

// ClearExplanation clears the value of the "explanation" field.
func (u *QuestionUpsertBulk) ClearExplanation() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearExplanation()
	})
}

// SetSource sets the "source" field.
func (u *QuestionUpsertBulk) SetSource(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSource() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
