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
)

// LeaseCreate is the builder for creating a Lease entity.
type LeaseCreate struct {
	config
	mutation *LeaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScopeType sets the "scope_type" field.
func (_c *LeaseCreate) SetScopeType(v lease.ScopeType) *LeaseCreate {
	_c.mutation.SetScopeType(v)
	return _c
}

// SetScopeKey sets the "scope_key" field.
func (_c *LeaseCreate) SetScopeKey(v string) *LeaseCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (_c *LeaseCreate) SetOwnerOrderID(v int) *LeaseCreate {
	_c.mutation.SetOwnerOrderID(v)
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *LeaseCreate) SetLeaseExpiresAt(v time.Time) *LeaseCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// Mutation returns the LeaseMutation object of the builder.
func (_c *LeaseCreate) Mutation() *LeaseMutation {
	return _c.mutation
}

// Save creates the Lease in the database.
func (_c *LeaseCreate) Save(ctx context.Context) (*Lease, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaseCreate) SaveX(ctx context.Context) *Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaseCreate) check() error {
	if _, ok := _c.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "Lease.scope_type"`)}
	}
	if v, ok := _c.mutation.ScopeType(); ok {
		if err := lease.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Lease.scope_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "Lease.scope_key"`)}
	}
	if _, ok := _c.mutation.OwnerOrderID(); !ok {
		return &ValidationError{Name: "owner_order_id", err: errors.New(`ent: missing required field "Lease.owner_order_id"`)}
	}
	if _, ok := _c.mutation.LeaseExpiresAt(); !ok {
		return &ValidationError{Name: "lease_expires_at", err: errors.New(`ent: missing required field "Lease.lease_expires_at"`)}
	}
	return nil
}

func (_c *LeaseCreate) sqlSave(ctx context.Context) (*Lease, error) {
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

func (_c *LeaseCreate) createSpec() (*Lease, *sqlgraph.CreateSpec) {
	var (
		_node = &Lease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lease.Table, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ScopeType(); ok {
		_spec.SetField(lease.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(lease.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.OwnerOrderID(); ok {
		_spec.SetField(lease.FieldOwnerOrderID, field.TypeInt, value)
		_node.OwnerOrderID = value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(lease.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lease.Create().
//		SetScopeType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaseUpsert) {
//			SetScopeType(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaseCreate) OnConflict(opts ...sql.ConflictOption) *LeaseUpsertOne {
	_c.conflict = opts
	return &LeaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaseCreate) OnConflictColumns(columns ...string) *LeaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaseUpsertOne{
		create: _c,
	}
}

type (
	// LeaseUpsertOne is the builder for "upsert"-ing
	//  one Lease node.
	LeaseUpsertOne struct {
		create *LeaseCreate
	}

	// LeaseUpsert is the "OnConflict" setter.
	LeaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetScopeType sets the "scope_type" field.
func (u *LeaseUpsert) SetScopeType(v lease.ScopeType) *LeaseUpsert {
	u.Set(lease.FieldScopeType, v)
	return u
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateScopeType() *LeaseUpsert {
	u.SetExcluded(lease.FieldScopeType)
	return u
}

// SetScopeKey sets the "scope_key" field.
func (u *LeaseUpsert) SetScopeKey(v string) *LeaseUpsert {
	u.Set(lease.FieldScopeKey, v)
	return u
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateScopeKey() *LeaseUpsert {
	u.SetExcluded(lease.FieldScopeKey)
	return u
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (u *LeaseUpsert) SetOwnerOrderID(v int) *LeaseUpsert {
	u.Set(lease.FieldOwnerOrderID, v)
	return u
}

// UpdateOwnerOrderID sets the "owner_order_id" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateOwnerOrderID() *LeaseUpsert {
	u.SetExcluded(lease.FieldOwnerOrderID)
	return u
}

// AddOwnerOrderID adds v to the "owner_order_id" field.
func (u *LeaseUpsert) AddOwnerOrderID(v int) *LeaseUpsert {
	u.Add(lease.FieldOwnerOrderID, v)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaseUpsert) SetLeaseExpiresAt(v time.Time) *LeaseUpsert {
	u.Set(lease.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateLeaseExpiresAt() *LeaseUpsert {
	u.SetExcluded(lease.FieldLeaseExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeaseUpsertOne) UpdateNewValues() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeaseUpsertOne) Ignore() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaseUpsertOne) DoNothing() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaseCreate.OnConflict
// documentation for more info.
func (u *LeaseUpsertOne) Update(set func(*LeaseUpsert)) *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetScopeType sets the "scope_type" field.
func (u *LeaseUpsertOne) SetScopeType(v lease.ScopeType) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetScopeType(v)
	})
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateScopeType() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateScopeType()
	})
}

// SetScopeKey sets the "scope_key" field.
func (u *LeaseUpsertOne) SetScopeKey(v string) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetScopeKey(v)
	})
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateScopeKey() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateScopeKey()
	})
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (u *LeaseUpsertOne) SetOwnerOrderID(v int) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetOwnerOrderID(v)
	})
}

// AddOwnerOrderID adds v to the "owner_order_id" field.
func (u *LeaseUpsertOne) AddOwnerOrderID(v int) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.AddOwnerOrderID(v)
	})
}

// UpdateOwnerOrderID sets the "owner_order_id" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateOwnerOrderID() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateOwnerOrderID()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaseUpsertOne) SetLeaseExpiresAt(v time.Time) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateLeaseExpiresAt() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// Exec executes the query.
func (u *LeaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeaseUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeaseUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeaseCreateBulk is the builder for creating many Lease entities in bulk.
type LeaseCreateBulk struct {
	config
	err      error
	builders []*LeaseCreate
	conflict []sql.ConflictOption
}

// Save creates the Lease entities in the database.
func (_c *LeaseCreateBulk) Save(ctx context.Context) ([]*Lease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaseMutation)
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
func (_c *LeaseCreateBulk) SaveX(ctx context.Context) []*Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lease.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaseUpsert) {
//			SetScopeType(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeaseUpsertBulk {
	_c.conflict = opts
	return &LeaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaseCreateBulk) OnConflictColumns(columns ...string) *LeaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaseUpsertBulk{
		create: _c,
	}
}

// LeaseUpsertBulk is the builder for "upsert"-ing
// a bulk of Lease nodes.
type LeaseUpsertBulk struct {
	create *LeaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeaseUpsertBulk) UpdateNewValues() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeaseUpsertBulk) Ignore() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaseUpsertBulk) DoNothing() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaseCreateBulk.OnConflict
// documentation for more info.
func (u *LeaseUpsertBulk) Update(set func(*LeaseUpsert)) *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetScopeType sets the "scope_type" field.
func (u *LeaseUpsertBulk) SetScopeType(v lease.ScopeType) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetScopeType(v)
	})
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateScopeType() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateScopeType()
	})
}

// SetScopeKey sets the "scope_key" field.
func (u *LeaseUpsertBulk) SetScopeKey(v string) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetScopeKey(v)
	})
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateScopeKey() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateScopeKey()
	})
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (u *LeaseUpsertBulk) SetOwnerOrderID(v int) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetOwnerOrderID(v)
	})
}

// AddOwnerOrderID adds v to the "owner_order_id" field.
func (u *LeaseUpsertBulk) AddOwnerOrderID(v int) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.AddOwnerOrderID(v)
	})
}

// UpdateOwnerOrderID sets the "owner_order_id" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateOwnerOrderID() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateOwnerOrderID()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaseUpsertBulk) SetLeaseExpiresAt(v time.Time) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateLeaseExpiresAt() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// Exec executes the query.
func (u *LeaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
