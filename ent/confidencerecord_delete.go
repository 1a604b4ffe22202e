// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/ent/predicate"
)

// ConfidenceRecordDelete is the builder for deleting a ConfidenceRecord entity.
type ConfidenceRecordDelete struct {
	config
	hooks    []Hook
	mutation *ConfidenceRecordMutation
}

// Where appends a list predicates to the ConfidenceRecordDelete builder.
func (_d *ConfidenceRecordDelete) Where(ps ...predicate.ConfidenceRecord) *ConfidenceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConfidenceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfidenceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConfidenceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(confidencerecord.Table, sqlgraph.NewFieldSpec(confidencerecord.FieldID, field.TypeInt))
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

// ConfidenceRecordDeleteOne is the builder for deleting a single ConfidenceRecord entity.
type ConfidenceRecordDeleteOne struct {
	_d *ConfidenceRecordDelete
}

// Where appends a list predicates to the ConfidenceRecordDelete builder.
func (_d *ConfidenceRecordDeleteOne) Where(ps ...predicate.ConfidenceRecord) *ConfidenceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConfidenceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{confidencerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfidenceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
