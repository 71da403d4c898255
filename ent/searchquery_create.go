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
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// SearchQueryCreate is the builder for creating a SearchQuery entity.
type SearchQueryCreate struct {
	config
	mutation *SearchQueryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetValue sets the "value" field.
func (_c *SearchQueryCreate) SetValue(v string) *SearchQueryCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetOriginalValue sets the "original_value" field.
func (_c *SearchQueryCreate) SetOriginalValue(v string) *SearchQueryCreate {
	_c.mutation.SetOriginalValue(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SearchQueryCreate) SetLanguage(v string) *SearchQueryCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableLanguage(v *string) *SearchQueryCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetFiletype sets the "filetype" field.
func (_c *SearchQueryCreate) SetFiletype(v string) *SearchQueryCreate {
	_c.mutation.SetFiletype(v)
	return _c
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableFiletype(v *string) *SearchQueryCreate {
	if v != nil {
		_c.SetFiletype(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchQueryCreate) SetCreatedAt(v time.Time) *SearchQueryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableCreatedAt(v *time.Time) *SearchQueryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SearchQueryCreate) SetUpdatedAt(v time.Time) *SearchQueryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableUpdatedAt(v *time.Time) *SearchQueryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddIntentIDs adds the "intents" edge to the Intent entity by IDs.
func (_c *SearchQueryCreate) AddIntentIDs(ids ...int) *SearchQueryCreate {
	_c.mutation.AddIntentIDs(ids...)
	return _c
}

// AddIntents adds the "intents" edges to the Intent entity.
func (_c *SearchQueryCreate) AddIntents(v ...*Intent) *SearchQueryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIntentIDs(ids...)
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_c *SearchQueryCreate) Mutation() *SearchQueryMutation {
	return _c.mutation
}

// Save creates the SearchQuery in the database.
func (_c *SearchQueryCreate) Save(ctx context.Context) (*SearchQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchQueryCreate) SaveX(ctx context.Context) *SearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchQueryCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := searchquery.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Filetype(); !ok {
		v := searchquery.DefaultFiletype
		_c.mutation.SetFiletype(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchquery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := searchquery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchQueryCreate) check() error {
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SearchQuery.value"`)}
	}
	if _, ok := _c.mutation.OriginalValue(); !ok {
		return &ValidationError{Name: "original_value", err: errors.New(`ent: missing required field "SearchQuery.original_value"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SearchQuery.language"`)}
	}
	if _, ok := _c.mutation.Filetype(); !ok {
		return &ValidationError{Name: "filetype", err: errors.New(`ent: missing required field "SearchQuery.filetype"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchQuery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SearchQuery.updated_at"`)}
	}
	return nil
}

func (_c *SearchQueryCreate) sqlSave(ctx context.Context) (*SearchQuery, error) {
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

func (_c *SearchQueryCreate) createSpec() (*SearchQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchquery.Table, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(searchquery.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.OriginalValue(); ok {
		_spec.SetField(searchquery.FieldOriginalValue, field.TypeString, value)
		_node.OriginalValue = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(searchquery.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Filetype(); ok {
		_spec.SetField(searchquery.FieldFiletype, field.TypeString, value)
		_node.Filetype = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchquery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(searchquery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SearchQuery.Create().
//		SetValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SearchQueryUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *SearchQueryCreate) OnConflict(opts ...sql.ConflictOption) *SearchQueryUpsertOne {
	_c.conflict = opts
	return &SearchQueryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SearchQueryCreate) OnConflictColumns(columns ...string) *SearchQueryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SearchQueryUpsertOne{
		create: _c,
	}
}

type (
	// SearchQueryUpsertOne is the builder for "upsert"-ing
	//  one SearchQuery node.
	SearchQueryUpsertOne struct {
		create *SearchQueryCreate
	}

	// SearchQueryUpsert is the "OnConflict" setter.
	SearchQueryUpsert struct {
		*sql.UpdateSet
	}
)

// SetValue sets the "value" field.
func (u *SearchQueryUpsert) SetValue(v string) *SearchQueryUpsert {
	u.Set(searchquery.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SearchQueryUpsert) UpdateValue() *SearchQueryUpsert {
	u.SetExcluded(searchquery.FieldValue)
	return u
}

// SetOriginalValue sets the "original_value" field.
func (u *SearchQueryUpsert) SetOriginalValue(v string) *SearchQueryUpsert {
	u.Set(searchquery.FieldOriginalValue, v)
	return u
}

// UpdateOriginalValue sets the "original_value" field to the value that was provided on create.
func (u *SearchQueryUpsert) UpdateOriginalValue() *SearchQueryUpsert {
	u.SetExcluded(searchquery.FieldOriginalValue)
	return u
}

// SetLanguage sets the "language" field.
func (u *SearchQueryUpsert) SetLanguage(v string) *SearchQueryUpsert {
	u.Set(searchquery.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SearchQueryUpsert) UpdateLanguage() *SearchQueryUpsert {
	u.SetExcluded(searchquery.FieldLanguage)
	return u
}

// SetFiletype sets the "filetype" field.
func (u *SearchQueryUpsert) SetFiletype(v string) *SearchQueryUpsert {
	u.Set(searchquery.FieldFiletype, v)
	return u
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *SearchQueryUpsert) UpdateFiletype() *SearchQueryUpsert {
	u.SetExcluded(searchquery.FieldFiletype)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SearchQueryUpsert) SetUpdatedAt(v time.Time) *SearchQueryUpsert {
	u.Set(searchquery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SearchQueryUpsert) UpdateUpdatedAt() *SearchQueryUpsert {
	u.SetExcluded(searchquery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SearchQueryUpsertOne) UpdateNewValues() *SearchQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(searchquery.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SearchQueryUpsertOne) Ignore() *SearchQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SearchQueryUpsertOne) DoNothing() *SearchQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SearchQueryCreate.OnConflict
// documentation for more info.
func (u *SearchQueryUpsertOne) Update(set func(*SearchQueryUpsert)) *SearchQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SearchQueryUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *SearchQueryUpsertOne) SetValue(v string) *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SearchQueryUpsertOne) UpdateValue() *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateValue()
	})
}

// SetOriginalValue sets the "original_value" field.
func (u *SearchQueryUpsertOne) SetOriginalValue(v string) *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetOriginalValue(v)
	})
}

// UpdateOriginalValue sets the "original_value" field to the value that was provided on create.
func (u *SearchQueryUpsertOne) UpdateOriginalValue() *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateOriginalValue()
	})
}

// SetLanguage sets the "language" field.
func (u *SearchQueryUpsertOne) SetLanguage(v string) *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SearchQueryUpsertOne) UpdateLanguage() *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateLanguage()
	})
}

// SetFiletype sets the "filetype" field.
func (u *SearchQueryUpsertOne) SetFiletype(v string) *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *SearchQueryUpsertOne) UpdateFiletype() *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateFiletype()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SearchQueryUpsertOne) SetUpdatedAt(v time.Time) *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SearchQueryUpsertOne) UpdateUpdatedAt() *SearchQueryUpsertOne {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SearchQueryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SearchQueryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SearchQueryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SearchQueryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SearchQueryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SearchQueryCreateBulk is the builder for creating many SearchQuery entities in bulk.
type SearchQueryCreateBulk struct {
	config
	err      error
	builders []*SearchQueryCreate
	conflict []sql.ConflictOption
}

// Save creates the SearchQuery entities in the database.
func (_c *SearchQueryCreateBulk) Save(ctx context.Context) ([]*SearchQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchQueryMutation)
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
func (_c *SearchQueryCreateBulk) SaveX(ctx context.Context) []*SearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SearchQuery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SearchQueryUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *SearchQueryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SearchQueryUpsertBulk {
	_c.conflict = opts
	return &SearchQueryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SearchQueryCreateBulk) OnConflictColumns(columns ...string) *SearchQueryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SearchQueryUpsertBulk{
		create: _c,
	}
}

// SearchQueryUpsertBulk is the builder for "upsert"-ing
// a bulk of SearchQuery nodes.
type SearchQueryUpsertBulk struct {
	create *SearchQueryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SearchQueryUpsertBulk) UpdateNewValues() *SearchQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(searchquery.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SearchQuery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SearchQueryUpsertBulk) Ignore() *SearchQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SearchQueryUpsertBulk) DoNothing() *SearchQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SearchQueryCreateBulk.OnConflict
// documentation for more info.
func (u *SearchQueryUpsertBulk) Update(set func(*SearchQueryUpsert)) *SearchQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SearchQueryUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *SearchQueryUpsertBulk) SetValue(v string) *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SearchQueryUpsertBulk) UpdateValue() *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateValue()
	})
}

// SetOriginalValue sets the "original_value" field.
func (u *SearchQueryUpsertBulk) SetOriginalValue(v string) *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetOriginalValue(v)
	})
}

// UpdateOriginalValue sets the "original_value" field to the value that was provided on create.
func (u *SearchQueryUpsertBulk) UpdateOriginalValue() *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateOriginalValue()
	})
}

// SetLanguage sets the "language" field.
func (u *SearchQueryUpsertBulk) SetLanguage(v string) *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SearchQueryUpsertBulk) UpdateLanguage() *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateLanguage()
	})
}

// SetFiletype sets the "filetype" field.
func (u *SearchQueryUpsertBulk) SetFiletype(v string) *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *SearchQueryUpsertBulk) UpdateFiletype() *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateFiletype()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SearchQueryUpsertBulk) SetUpdatedAt(v time.Time) *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SearchQueryUpsertBulk) UpdateUpdatedAt() *SearchQueryUpsertBulk {
	return u.Update(func(s *SearchQueryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SearchQueryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SearchQueryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SearchQueryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SearchQueryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
