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
	"github.com/lumenlabs/lumen/ent/orderlog"
)

// OrderLogCreate is the builder for creating a OrderLog entity.
type OrderLogCreate struct {
	config
	mutation *OrderLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrderID sets the "order_id" field.
func (_c *OrderLogCreate) SetOrderID(v int) *OrderLogCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *OrderLogCreate) SetStage(v orderlog.Stage) *OrderLogCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *OrderLogCreate) SetNillableStage(v *orderlog.Stage) *OrderLogCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *OrderLogCreate) SetLevel(v orderlog.Level) *OrderLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *OrderLogCreate) SetNillableLevel(v *orderlog.Level) *OrderLogCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *OrderLogCreate) SetMessage(v string) *OrderLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetMeta sets the "meta" field.
func (_c *OrderLogCreate) SetMeta(v map[string]interface{}) *OrderLogCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderLogCreate) SetCreatedAt(v time.Time) *OrderLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderLogCreate) SetNillableCreatedAt(v *time.Time) *OrderLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the OrderLogMutation object of the builder.
func (_c *OrderLogCreate) Mutation() *OrderLogMutation {
	return _c.mutation
}

// Save creates the OrderLog in the database.
func (_c *OrderLogCreate) Save(ctx context.Context) (*OrderLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderLogCreate) SaveX(ctx context.Context) *OrderLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderLogCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := orderlog.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := orderlog.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orderlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderLogCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "OrderLog.order_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "OrderLog.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := orderlog.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "OrderLog.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "OrderLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := orderlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrderLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "OrderLog.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrderLog.created_at"`)}
	}
	return nil
}

func (_c *OrderLogCreate) sqlSave(ctx context.Context) (*OrderLog, error) {
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

func (_c *OrderLogCreate) createSpec() (*OrderLog, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderlog.Table, sqlgraph.NewFieldSpec(orderlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(orderlog.FieldOrderID, field.TypeInt, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(orderlog.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(orderlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(orderlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(orderlog.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orderlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderLog.Create().
//		SetOrderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderLogUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderLogCreate) OnConflict(opts ...sql.ConflictOption) *OrderLogUpsertOne {
	_c.conflict = opts
	return &OrderLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderLogCreate) OnConflictColumns(columns ...string) *OrderLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderLogUpsertOne{
		create: _c,
	}
}

type (
	// OrderLogUpsertOne is the builder for "upsert"-ing
	//  one OrderLog node.
	OrderLogUpsertOne struct {
		create *OrderLogCreate
	}

	// OrderLogUpsert is the "OnConflict" setter.
	OrderLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStage sets the "stage" field.
func (u *OrderLogUpsert) SetStage(v orderlog.Stage) *OrderLogUpsert {
	u.Set(orderlog.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *OrderLogUpsert) UpdateStage() *OrderLogUpsert {
	u.SetExcluded(orderlog.FieldStage)
	return u
}

// SetLevel sets the "level" field.
func (u *OrderLogUpsert) SetLevel(v orderlog.Level) *OrderLogUpsert {
	u.Set(orderlog.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *OrderLogUpsert) UpdateLevel() *OrderLogUpsert {
	u.SetExcluded(orderlog.FieldLevel)
	return u
}

// SetMessage sets the "message" field.
func (u *OrderLogUpsert) SetMessage(v string) *OrderLogUpsert {
	u.Set(orderlog.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *OrderLogUpsert) UpdateMessage() *OrderLogUpsert {
	u.SetExcluded(orderlog.FieldMessage)
	return u
}

// SetMeta sets the "meta" field.
func (u *OrderLogUpsert) SetMeta(v map[string]interface{}) *OrderLogUpsert {
	u.Set(orderlog.FieldMeta, v)
	return u
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OrderLogUpsert) UpdateMeta() *OrderLogUpsert {
	u.SetExcluded(orderlog.FieldMeta)
	return u
}

// ClearMeta clears the value of the "meta" field.
func (u *OrderLogUpsert) ClearMeta() *OrderLogUpsert {
	u.SetNull(orderlog.FieldMeta)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderLogUpsertOne) UpdateNewValues() *OrderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.OrderID(); exists {
			s.SetIgnore(orderlog.FieldOrderID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(orderlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderLogUpsertOne) Ignore() *OrderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderLogUpsertOne) DoNothing() *OrderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderLogCreate.OnConflict
// documentation for more info.
func (u *OrderLogUpsertOne) Update(set func(*OrderLogUpsert)) *OrderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *OrderLogUpsertOne) SetStage(v orderlog.Stage) *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *OrderLogUpsertOne) UpdateStage() *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateStage()
	})
}

// SetLevel sets the "level" field.
func (u *OrderLogUpsertOne) SetLevel(v orderlog.Level) *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *OrderLogUpsertOne) UpdateLevel() *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateLevel()
	})
}

// SetMessage sets the "message" field.
func (u *OrderLogUpsertOne) SetMessage(v string) *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *OrderLogUpsertOne) UpdateMessage() *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateMessage()
	})
}

// SetMeta sets the "meta" field.
func (u *OrderLogUpsertOne) SetMeta(v map[string]interface{}) *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OrderLogUpsertOne) UpdateMeta() *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *OrderLogUpsertOne) ClearMeta() *OrderLogUpsertOne {
	return u.Update(func(s *OrderLogUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *OrderLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderLogCreateBulk is the builder for creating many OrderLog entities in bulk.
type OrderLogCreateBulk struct {
	config
	err      error
	builders []*OrderLogCreate
	conflict []sql.ConflictOption
}

// Save creates the OrderLog entities in the database.
func (_c *OrderLogCreateBulk) Save(ctx context.Context) ([]*OrderLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderLogMutation)
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
func (_c *OrderLogCreateBulk) SaveX(ctx context.Context) []*OrderLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderLogUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderLogUpsertBulk {
	_c.conflict = opts
	return &OrderLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderLogCreateBulk) OnConflictColumns(columns ...string) *OrderLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderLogUpsertBulk{
		create: _c,
	}
}

// OrderLogUpsertBulk is the builder for "upsert"-ing
// a bulk of OrderLog nodes.
type OrderLogUpsertBulk struct {
	create *OrderLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderLogUpsertBulk) UpdateNewValues() *OrderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.OrderID(); exists {
				s.SetIgnore(orderlog.FieldOrderID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(orderlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderLogUpsertBulk) Ignore() *OrderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderLogUpsertBulk) DoNothing() *OrderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderLogCreateBulk.OnConflict
// documentation for more info.
func (u *OrderLogUpsertBulk) Update(set func(*OrderLogUpsert)) *OrderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *OrderLogUpsertBulk) SetStage(v orderlog.Stage) *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *OrderLogUpsertBulk) UpdateStage() *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateStage()
	})
}

// SetLevel sets the "level" field.
func (u *OrderLogUpsertBulk) SetLevel(v orderlog.Level) *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *OrderLogUpsertBulk) UpdateLevel() *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateLevel()
	})
}

// SetMessage sets the "message" field.
func (u *OrderLogUpsertBulk) SetMessage(v string) *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *OrderLogUpsertBulk) UpdateMessage() *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateMessage()
	})
}

// SetMeta sets the "meta" field.
func (u *OrderLogUpsertBulk) SetMeta(v map[string]interface{}) *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OrderLogUpsertBulk) UpdateMeta() *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *OrderLogUpsertBulk) ClearMeta() *OrderLogUpsertBulk {
	return u.Update(func(s *OrderLogUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *OrderLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
