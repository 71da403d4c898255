// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/runtimesetting"
)

// RuntimeSettingDelete is the builder for deleting a RuntimeSetting entity.
type RuntimeSettingDelete struct {
	config
	hooks    []Hook
	mutation *RuntimeSettingMutation
}

// Where appends a list predicates to the RuntimeSettingDelete builder.
func (_d *RuntimeSettingDelete) Where(ps ...predicate.RuntimeSetting) *RuntimeSettingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RuntimeSettingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RuntimeSettingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RuntimeSettingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(runtimesetting.Table, sqlgraph.NewFieldSpec(runtimesetting.FieldID, field.TypeInt))
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

// RuntimeSettingDeleteOne is the builder for deleting a single RuntimeSetting entity.
type RuntimeSettingDeleteOne struct {
	_d *RuntimeSettingDelete
}

// Where appends a list predicates to the RuntimeSettingDelete builder.
func (_d *RuntimeSettingDeleteOne) Where(ps ...predicate.RuntimeSetting) *RuntimeSettingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RuntimeSettingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{runtimesetting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RuntimeSettingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
