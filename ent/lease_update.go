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
	"github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// LeaseUpdate is the builder for updating Lease entities.
type LeaseUpdate struct {
	config
	hooks    []Hook
	mutation *LeaseMutation
}

// Where appends a list predicates to the LeaseUpdate builder.
func (_u *LeaseUpdate) Where(ps ...predicate.Lease) *LeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *LeaseUpdate) SetScopeType(v lease.ScopeType) *LeaseUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableScopeType(v *lease.ScopeType) *LeaseUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *LeaseUpdate) SetScopeKey(v string) *LeaseUpdate {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableScopeKey(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (_u *LeaseUpdate) SetOwnerOrderID(v int) *LeaseUpdate {
	_u.mutation.ResetOwnerOrderID()
	_u.mutation.SetOwnerOrderID(v)
	return _u
}

// SetNillableOwnerOrderID sets the "owner_order_id" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableOwnerOrderID(v *int) *LeaseUpdate {
	if v != nil {
		_u.SetOwnerOrderID(*v)
	}
	return _u
}

// AddOwnerOrderID adds value to the "owner_order_id" field.
func (_u *LeaseUpdate) AddOwnerOrderID(v int) *LeaseUpdate {
	_u.mutation.AddOwnerOrderID(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LeaseUpdate) SetLeaseExpiresAt(v time.Time) *LeaseUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableLeaseExpiresAt(v *time.Time) *LeaseUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// Mutation returns the LeaseMutation object of the builder.
func (_u *LeaseUpdate) Mutation() *LeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseUpdate) check() error {
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := lease.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Lease.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lease.Table, lease.Columns, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(lease.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(lease.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerOrderID(); ok {
		_spec.SetField(lease.FieldOwnerOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwnerOrderID(); ok {
		_spec.AddField(lease.FieldOwnerOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(lease.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaseUpdateOne is the builder for updating a single Lease entity.
type LeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaseMutation
}

// SetScopeType sets the "scope_type" field.
func (_u *LeaseUpdateOne) SetScopeType(v lease.ScopeType) *LeaseUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableScopeType(v *lease.ScopeType) *LeaseUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *LeaseUpdateOne) SetScopeKey(v string) *LeaseUpdateOne {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableScopeKey(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (_u *LeaseUpdateOne) SetOwnerOrderID(v int) *LeaseUpdateOne {
	_u.mutation.ResetOwnerOrderID()
	_u.mutation.SetOwnerOrderID(v)
	return _u
}

// SetNillableOwnerOrderID sets the "owner_order_id" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableOwnerOrderID(v *int) *LeaseUpdateOne {
	if v != nil {
		_u.SetOwnerOrderID(*v)
	}
	return _u
}

// AddOwnerOrderID adds value to the "owner_order_id" field.
func (_u *LeaseUpdateOne) AddOwnerOrderID(v int) *LeaseUpdateOne {
	_u.mutation.AddOwnerOrderID(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LeaseUpdateOne) SetLeaseExpiresAt(v time.Time) *LeaseUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *LeaseUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// Mutation returns the LeaseMutation object of the builder.
func (_u *LeaseUpdateOne) Mutation() *LeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaseUpdate builder.
func (_u *LeaseUpdateOne) Where(ps ...predicate.Lease) *LeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaseUpdateOne) Select(field string, fields ...string) *LeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lease entity.
func (_u *LeaseUpdateOne) Save(ctx context.Context) (*Lease, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseUpdateOne) SaveX(ctx context.Context) *Lease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseUpdateOne) check() error {
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := lease.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Lease.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaseUpdateOne) sqlSave(ctx context.Context) (_node *Lease, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lease.Table, lease.Columns, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lease.FieldID)
		for _, f := range fields {
			if !lease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lease.FieldID {
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
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(lease.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(lease.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerOrderID(); ok {
		_spec.SetField(lease.FieldOwnerOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwnerOrderID(); ok {
		_spec.AddField(lease.FieldOwnerOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(lease.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	_node = &Lease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
