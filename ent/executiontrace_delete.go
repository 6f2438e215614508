// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ExecutionTraceDelete is the builder for deleting a ExecutionTrace entity.
type ExecutionTraceDelete struct {
	config
	hooks    []Hook
	mutation *ExecutionTraceMutation
}

// Where appends a list predicates to the ExecutionTraceDelete builder.
func (_d *ExecutionTraceDelete) Where(ps ...predicate.ExecutionTrace) *ExecutionTraceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExecutionTraceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionTraceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExecutionTraceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(executiontrace.Table, sqlgraph.NewFieldSpec(executiontrace.FieldID, field.TypeInt))
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

// ExecutionTraceDeleteOne is the builder for deleting a single ExecutionTrace entity.
type ExecutionTraceDeleteOne struct {
	_d *ExecutionTraceDelete
}

// Where appends a list predicates to the ExecutionTraceDelete builder.
func (_d *ExecutionTraceDeleteOne) Where(ps ...predicate.ExecutionTrace) *ExecutionTraceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExecutionTraceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{executiontrace.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionTraceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
