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
	"github.com/lumenlabs/lumen/ent/runtimesetting"
)

// RuntimeSettingCreate is the builder for creating a RuntimeSetting entity.
type RuntimeSettingCreate struct {
	config
	mutation *RuntimeSettingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *RuntimeSettingCreate) SetKey(v string) *RuntimeSettingCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *RuntimeSettingCreate) SetValue(v string) *RuntimeSettingCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RuntimeSettingCreate) SetUpdatedAt(v time.Time) *RuntimeSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RuntimeSettingCreate) SetNillableUpdatedAt(v *time.Time) *RuntimeSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RuntimeSettingMutation object of the builder.
func (_c *RuntimeSettingCreate) Mutation() *RuntimeSettingMutation {
	return _c.mutation
}

// Save creates the RuntimeSetting in the database.
func (_c *RuntimeSettingCreate) Save(ctx context.Context) (*RuntimeSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuntimeSettingCreate) SaveX(ctx context.Context) *RuntimeSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuntimeSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuntimeSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuntimeSettingCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := runtimesetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuntimeSettingCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "RuntimeSetting.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "RuntimeSetting.value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RuntimeSetting.updated_at"`)}
	}
	return nil
}

func (_c *RuntimeSettingCreate) sqlSave(ctx context.Context) (*RuntimeSetting, error) {
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

func (_c *RuntimeSettingCreate) createSpec() (*RuntimeSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &RuntimeSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runtimesetting.Table, sqlgraph.NewFieldSpec(runtimesetting.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(runtimesetting.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(runtimesetting.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(runtimesetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuntimeSetting.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuntimeSettingUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *RuntimeSettingCreate) OnConflict(opts ...sql.ConflictOption) *RuntimeSettingUpsertOne {
	_c.conflict = opts
	return &RuntimeSettingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuntimeSettingCreate) OnConflictColumns(columns ...string) *RuntimeSettingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuntimeSettingUpsertOne{
		create: _c,
	}
}

type (
	// RuntimeSettingUpsertOne is the builder for "upsert"-ing
	//  one RuntimeSetting node.
	RuntimeSettingUpsertOne struct {
		create *RuntimeSettingCreate
	}

	// RuntimeSettingUpsert is the "OnConflict" setter.
	RuntimeSettingUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *RuntimeSettingUpsert) SetKey(v string) *RuntimeSettingUpsert {
	u.Set(runtimesetting.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *RuntimeSettingUpsert) UpdateKey() *RuntimeSettingUpsert {
	u.SetExcluded(runtimesetting.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *RuntimeSettingUpsert) SetValue(v string) *RuntimeSettingUpsert {
	u.Set(runtimesetting.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *RuntimeSettingUpsert) UpdateValue() *RuntimeSettingUpsert {
	u.SetExcluded(runtimesetting.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeSettingUpsert) SetUpdatedAt(v time.Time) *RuntimeSettingUpsert {
	u.Set(runtimesetting.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeSettingUpsert) UpdateUpdatedAt() *RuntimeSettingUpsert {
	u.SetExcluded(runtimesetting.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RuntimeSettingUpsertOne) UpdateNewValues() *RuntimeSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuntimeSettingUpsertOne) Ignore() *RuntimeSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuntimeSettingUpsertOne) DoNothing() *RuntimeSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuntimeSettingCreate.OnConflict
// documentation for more info.
func (u *RuntimeSettingUpsertOne) Update(set func(*RuntimeSettingUpsert)) *RuntimeSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuntimeSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *RuntimeSettingUpsertOne) SetKey(v string) *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *RuntimeSettingUpsertOne) UpdateKey() *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *RuntimeSettingUpsertOne) SetValue(v string) *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *RuntimeSettingUpsertOne) UpdateValue() *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeSettingUpsertOne) SetUpdatedAt(v time.Time) *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeSettingUpsertOne) UpdateUpdatedAt() *RuntimeSettingUpsertOne {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuntimeSettingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuntimeSettingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuntimeSettingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuntimeSettingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuntimeSettingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuntimeSettingCreateBulk is the builder for creating many RuntimeSetting entities in bulk.
type RuntimeSettingCreateBulk struct {
	config
	err      error
	builders []*RuntimeSettingCreate
	conflict []sql.ConflictOption
}

// Save creates the RuntimeSetting entities in the database.
func (_c *RuntimeSettingCreateBulk) Save(ctx context.Context) ([]*RuntimeSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuntimeSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuntimeSettingMutation)
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
func (_c *RuntimeSettingCreateBulk) SaveX(ctx context.Context) []*RuntimeSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuntimeSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuntimeSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuntimeSetting.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuntimeSettingUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *RuntimeSettingCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuntimeSettingUpsertBulk {
	_c.conflict = opts
	return &RuntimeSettingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuntimeSettingCreateBulk) OnConflictColumns(columns ...string) *RuntimeSettingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuntimeSettingUpsertBulk{
		create: _c,
	}
}

// RuntimeSettingUpsertBulk is the builder for "upsert"-ing
// a bulk of RuntimeSetting nodes.
type RuntimeSettingUpsertBulk struct {
	create *RuntimeSettingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RuntimeSettingUpsertBulk) UpdateNewValues() *RuntimeSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuntimeSetting.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuntimeSettingUpsertBulk) Ignore() *RuntimeSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuntimeSettingUpsertBulk) DoNothing() *RuntimeSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuntimeSettingCreateBulk.OnConflict
// documentation for more info.
func (u *RuntimeSettingUpsertBulk) Update(set func(*RuntimeSettingUpsert)) *RuntimeSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuntimeSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *RuntimeSettingUpsertBulk) SetKey(v string) *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *RuntimeSettingUpsertBulk) UpdateKey() *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *RuntimeSettingUpsertBulk) SetValue(v string) *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *RuntimeSettingUpsertBulk) UpdateValue() *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeSettingUpsertBulk) SetUpdatedAt(v time.Time) *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeSettingUpsertBulk) UpdateUpdatedAt() *RuntimeSettingUpsertBulk {
	return u.Update(func(s *RuntimeSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuntimeSettingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuntimeSettingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuntimeSettingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuntimeSettingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
