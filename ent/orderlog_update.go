// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// OrderLogUpdate is the builder for updating OrderLog entities.
type OrderLogUpdate struct {
	config
	hooks    []Hook
	mutation *OrderLogMutation
}

// Where appends a list predicates to the OrderLogUpdate builder.
func (_u *OrderLogUpdate) Where(ps ...predicate.OrderLog) *OrderLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *OrderLogUpdate) SetStage(v orderlog.Stage) *OrderLogUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *OrderLogUpdate) SetNillableStage(v *orderlog.Stage) *OrderLogUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *OrderLogUpdate) SetLevel(v orderlog.Level) *OrderLogUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *OrderLogUpdate) SetNillableLevel(v *orderlog.Level) *OrderLogUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OrderLogUpdate) SetMessage(v string) *OrderLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OrderLogUpdate) SetNillableMessage(v *string) *OrderLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OrderLogUpdate) SetMeta(v map[string]interface{}) *OrderLogUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OrderLogUpdate) ClearMeta() *OrderLogUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// Mutation returns the OrderLogMutation object of the builder.
func (_u *OrderLogUpdate) Mutation() *OrderLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderLogUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := orderlog.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "OrderLog.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := orderlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrderLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderlog.Table, orderlog.Columns, sqlgraph.NewFieldSpec(orderlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(orderlog.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(orderlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(orderlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(orderlog.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(orderlog.FieldMeta, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderLogUpdateOne is the builder for updating a single OrderLog entity.
type OrderLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderLogMutation
}

// SetStage sets the "stage" field.
func (_u *OrderLogUpdateOne) SetStage(v orderlog.Stage) *OrderLogUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *OrderLogUpdateOne) SetNillableStage(v *orderlog.Stage) *OrderLogUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *OrderLogUpdateOne) SetLevel(v orderlog.Level) *OrderLogUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *OrderLogUpdateOne) SetNillableLevel(v *orderlog.Level) *OrderLogUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OrderLogUpdateOne) SetMessage(v string) *OrderLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OrderLogUpdateOne) SetNillableMessage(v *string) *OrderLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OrderLogUpdateOne) SetMeta(v map[string]interface{}) *OrderLogUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OrderLogUpdateOne) ClearMeta() *OrderLogUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// Mutation returns the OrderLogMutation object of the builder.
func (_u *OrderLogUpdateOne) Mutation() *OrderLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrderLogUpdate builder.
func (_u *OrderLogUpdateOne) Where(ps ...predicate.OrderLog) *OrderLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderLogUpdateOne) Select(field string, fields ...string) *OrderLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderLog entity.
func (_u *OrderLogUpdateOne) Save(ctx context.Context) (*OrderLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderLogUpdateOne) SaveX(ctx context.Context) *OrderLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderLogUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := orderlog.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "OrderLog.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := orderlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrderLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderLogUpdateOne) sqlSave(ctx context.Context) (_node *OrderLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderlog.Table, orderlog.Columns, sqlgraph.NewFieldSpec(orderlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderlog.FieldID)
		for _, f := range fields {
			if !orderlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(orderlog.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(orderlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(orderlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(orderlog.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(orderlog.FieldMeta, field.TypeJSON)
	}
	_node = &OrderLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
