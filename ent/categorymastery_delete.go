// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/categorymastery"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
)

// CategoryMasteryDelete is the builder for deleting a CategoryMastery entity.
type CategoryMasteryDelete struct {
	config
	hooks    []Hook
	mutation *CategoryMasteryMutation
}

// Where appends a list predicates to the CategoryMasteryDelete builder.
func (_d *CategoryMasteryDelete) Where(ps ...predicate.CategoryMastery) *CategoryMasteryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CategoryMasteryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryMasteryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CategoryMasteryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(categorymastery.Table, sqlgraph.NewFieldSpec(categorymastery.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CategoryMasteryDeleteOne is the builder for deleting a single CategoryMastery entity.
type CategoryMasteryDeleteOne struct {
	_d *CategoryMasteryDelete
}

// Where appends a list predicates to the CategoryMasteryDelete builder.
func (_d *CategoryMasteryDeleteOne) Where(ps ...predicate.CategoryMastery) *CategoryMasteryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CategoryMasteryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{categorymastery.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryMasteryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
