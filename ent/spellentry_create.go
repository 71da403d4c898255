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
	"github.com/lumenlabs/lumen/ent/spellentry"
)

// SpellEntryCreate is the builder for creating a SpellEntry entity.
type SpellEntryCreate struct {
	config
	mutation *SpellEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTextHash sets the "text_hash" field.
func (_c *SpellEntryCreate) SetTextHash(v string) *SpellEntryCreate {
	_c.mutation.SetTextHash(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SpellEntryCreate) SetLanguage(v string) *SpellEntryCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCorrected sets the "corrected" field.
func (_c *SpellEntryCreate) SetCorrected(v string) *SpellEntryCreate {
	_c.mutation.SetCorrected(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpellEntryCreate) SetCreatedAt(v time.Time) *SpellEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpellEntryCreate) SetNillableCreatedAt(v *time.Time) *SpellEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SpellEntryMutation object of the builder.
func (_c *SpellEntryCreate) Mutation() *SpellEntryMutation {
	return _c.mutation
}

// Save creates the SpellEntry in the database.
func (_c *SpellEntryCreate) Save(ctx context.Context) (*SpellEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpellEntryCreate) SaveX(ctx context.Context) *SpellEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpellEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpellEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpellEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spellentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpellEntryCreate) check() error {
	if _, ok := _c.mutation.TextHash(); !ok {
		return &ValidationError{Name: "text_hash", err: errors.New(`ent: missing required field "SpellEntry.text_hash"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SpellEntry.language"`)}
	}
	if _, ok := _c.mutation.Corrected(); !ok {
		return &ValidationError{Name: "corrected", err: errors.New(`ent: missing required field "SpellEntry.corrected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpellEntry.created_at"`)}
	}
	return nil
}

func (_c *SpellEntryCreate) sqlSave(ctx context.Context) (*SpellEntry, error) {
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

func (_c *SpellEntryCreate) createSpec() (*SpellEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SpellEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spellentry.Table, sqlgraph.NewFieldSpec(spellentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TextHash(); ok {
		_spec.SetField(spellentry.FieldTextHash, field.TypeString, value)
		_node.TextHash = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(spellentry.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Corrected(); ok {
		_spec.SetField(spellentry.FieldCorrected, field.TypeString, value)
		_node.Corrected = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spellentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpellEntry.Create().
//		SetTextHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpellEntryUpsert) {
//			SetTextHash(v+v).
//		}).
//		Exec(ctx)
func (_c *SpellEntryCreate) OnConflict(opts ...sql.ConflictOption) *SpellEntryUpsertOne {
	_c.conflict = opts
	return &SpellEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpellEntryCreate) OnConflictColumns(columns ...string) *SpellEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpellEntryUpsertOne{
		create: _c,
	}
}

type (
	// SpellEntryUpsertOne is the builder for "upsert"-ing
	//  one SpellEntry node.
	SpellEntryUpsertOne struct {
		create *SpellEntryCreate
	}

	// SpellEntryUpsert is the "OnConflict" setter.
	SpellEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTextHash sets the "text_hash" field.
func (u *SpellEntryUpsert) SetTextHash(v string) *SpellEntryUpsert {
	u.Set(spellentry.FieldTextHash, v)
	return u
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SpellEntryUpsert) UpdateTextHash() *SpellEntryUpsert {
	u.SetExcluded(spellentry.FieldTextHash)
	return u
}

// SetLanguage sets the "language" field.
func (u *SpellEntryUpsert) SetLanguage(v string) *SpellEntryUpsert {
	u.Set(spellentry.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SpellEntryUpsert) UpdateLanguage() *SpellEntryUpsert {
	u.SetExcluded(spellentry.FieldLanguage)
	return u
}

// SetCorrected sets the "corrected" field.
func (u *SpellEntryUpsert) SetCorrected(v string) *SpellEntryUpsert {
	u.Set(spellentry.FieldCorrected, v)
	return u
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *SpellEntryUpsert) UpdateCorrected() *SpellEntryUpsert {
	u.SetExcluded(spellentry.FieldCorrected)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SpellEntryUpsertOne) UpdateNewValues() *SpellEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(spellentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpellEntryUpsertOne) Ignore() *SpellEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpellEntryUpsertOne) DoNothing() *SpellEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpellEntryCreate.OnConflict
// documentation for more info.
func (u *SpellEntryUpsertOne) Update(set func(*SpellEntryUpsert)) *SpellEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpellEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTextHash sets the "text_hash" field.
func (u *SpellEntryUpsertOne) SetTextHash(v string) *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetTextHash(v)
	})
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SpellEntryUpsertOne) UpdateTextHash() *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateTextHash()
	})
}

// SetLanguage sets the "language" field.
func (u *SpellEntryUpsertOne) SetLanguage(v string) *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SpellEntryUpsertOne) UpdateLanguage() *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateLanguage()
	})
}

// SetCorrected sets the "corrected" field.
func (u *SpellEntryUpsertOne) SetCorrected(v string) *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetCorrected(v)
	})
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *SpellEntryUpsertOne) UpdateCorrected() *SpellEntryUpsertOne {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateCorrected()
	})
}

// Exec executes the query.
func (u *SpellEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpellEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpellEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpellEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpellEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpellEntryCreateBulk is the builder for creating many SpellEntry entities in bulk.
type SpellEntryCreateBulk struct {
	config
	err      error
	builders []*SpellEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the SpellEntry entities in the database.
func (_c *SpellEntryCreateBulk) Save(ctx context.Context) ([]*SpellEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpellEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpellEntryMutation)
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
func (_c *SpellEntryCreateBulk) SaveX(ctx context.Context) []*SpellEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpellEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpellEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpellEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpellEntryUpsert) {
//			SetTextHash(v+v).
//		}).
//		Exec(ctx)
func (_c *SpellEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpellEntryUpsertBulk {
	_c.conflict = opts
	return &SpellEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpellEntryCreateBulk) OnConflictColumns(columns ...string) *SpellEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpellEntryUpsertBulk{
		create: _c,
	}
}

// SpellEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of SpellEntry nodes.
type SpellEntryUpsertBulk struct {
	create *SpellEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SpellEntryUpsertBulk) UpdateNewValues() *SpellEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(spellentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpellEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpellEntryUpsertBulk) Ignore() *SpellEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpellEntryUpsertBulk) DoNothing() *SpellEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpellEntryCreateBulk.OnConflict
// documentation for more info.
func (u *SpellEntryUpsertBulk) Update(set func(*SpellEntryUpsert)) *SpellEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpellEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTextHash sets the "text_hash" field.
func (u *SpellEntryUpsertBulk) SetTextHash(v string) *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetTextHash(v)
	})
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SpellEntryUpsertBulk) UpdateTextHash() *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateTextHash()
	})
}

// SetLanguage sets the "language" field.
func (u *SpellEntryUpsertBulk) SetLanguage(v string) *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SpellEntryUpsertBulk) UpdateLanguage() *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateLanguage()
	})
}

// SetCorrected sets the "corrected" field.
func (u *SpellEntryUpsertBulk) SetCorrected(v string) *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.SetCorrected(v)
	})
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *SpellEntryUpsertBulk) UpdateCorrected() *SpellEntryUpsertBulk {
	return u.Update(func(s *SpellEntryUpsert) {
		s.UpdateCorrected()
	})
}

// Exec executes the query.
func (u *SpellEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpellEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpellEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpellEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
