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
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// IntentCreate is the builder for creating a Intent entity.
type IntentCreate struct {
	config
	mutation *IntentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentText sets the "intent_text" field.
func (_c *IntentCreate) SetIntentText(v string) *IntentCreate {
	_c.mutation.SetIntentText(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *IntentCreate) SetTitle(v string) *IntentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *IntentCreate) SetSummary(v string) *IntentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *IntentCreate) SetNillableSummary(v *string) *IntentCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetFiletype sets the "filetype" field.
func (_c *IntentCreate) SetFiletype(v string) *IntentCreate {
	_c.mutation.SetFiletype(v)
	return _c
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_c *IntentCreate) SetNillableFiletype(v *string) *IntentCreate {
	if v != nil {
		_c.SetFiletype(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntentCreate) SetCreatedAt(v time.Time) *IntentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntentCreate) SetNillableCreatedAt(v *time.Time) *IntentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddQueryIDs adds the "queries" edge to the SearchQuery entity by IDs.
func (_c *IntentCreate) AddQueryIDs(ids ...int) *IntentCreate {
	_c.mutation.AddQueryIDs(ids...)
	return _c
}

// AddQueries adds the "queries" edges to the SearchQuery entity.
func (_c *IntentCreate) AddQueries(v ...*SearchQuery) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQueryIDs(ids...)
}

// AddArticleIDs adds the "articles" edge to the Article entity by IDs.
func (_c *IntentCreate) AddArticleIDs(ids ...int) *IntentCreate {
	_c.mutation.AddArticleIDs(ids...)
	return _c
}

// AddArticles adds the "articles" edges to the Article entity.
func (_c *IntentCreate) AddArticles(v ...*Article) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArticleIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_c *IntentCreate) Mutation() *IntentMutation {
	return _c.mutation
}

// Save creates the Intent in the database.
func (_c *IntentCreate) Save(ctx context.Context) (*Intent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntentCreate) SaveX(ctx context.Context) *Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntentCreate) defaults() {
	if _, ok := _c.mutation.Filetype(); !ok {
		v := intent.DefaultFiletype
		_c.mutation.SetFiletype(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntentCreate) check() error {
	if _, ok := _c.mutation.IntentText(); !ok {
		return &ValidationError{Name: "intent_text", err: errors.New(`ent: missing required field "Intent.intent_text"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Intent.title"`)}
	}
	if _, ok := _c.mutation.Filetype(); !ok {
		return &ValidationError{Name: "filetype", err: errors.New(`ent: missing required field "Intent.filetype"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Intent.created_at"`)}
	}
	return nil
}

func (_c *IntentCreate) sqlSave(ctx context.Context) (*Intent, error) {
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

func (_c *IntentCreate) createSpec() (*Intent, *sqlgraph.CreateSpec) {
	var (
		_node = &Intent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intent.Table, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IntentText(); ok {
		_spec.SetField(intent.FieldIntentText, field.TypeString, value)
		_node.IntentText = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(intent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Filetype(); ok {
		_spec.SetField(intent.FieldFiletype, field.TypeString, value)
		_node.Filetype = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
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
//	client.Intent.Create().
//		SetIntentText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentUpsert) {
//			SetIntentText(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentCreate) OnConflict(opts ...sql.ConflictOption) *IntentUpsertOne {
	_c.conflict = opts
	return &IntentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentCreate) OnConflictColumns(columns ...string) *IntentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentUpsertOne{
		create: _c,
	}
}

type (
	// IntentUpsertOne is the builder for "upsert"-ing
	//  one Intent node.
	IntentUpsertOne struct {
		create *IntentCreate
	}

	// IntentUpsert is the "OnConflict" setter.
	IntentUpsert struct {
		*sql.UpdateSet
	}
)

// SetIntentText sets the "intent_text" field.
func (u *IntentUpsert) SetIntentText(v string) *IntentUpsert {
	u.Set(intent.FieldIntentText, v)
	return u
}

// UpdateIntentText sets the "intent_text" field to the value that was provided on create.
func (u *IntentUpsert) UpdateIntentText() *IntentUpsert {
	u.SetExcluded(intent.FieldIntentText)
	return u
}

// SetTitle sets the "title" field.
func (u *IntentUpsert) SetTitle(v string) *IntentUpsert {
	u.Set(intent.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsert) UpdateTitle() *IntentUpsert {
	u.SetExcluded(intent.FieldTitle)
	return u
}

// SetSummary sets the "summary" field.
func (u *IntentUpsert) SetSummary(v string) *IntentUpsert {
	u.Set(intent.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IntentUpsert) UpdateSummary() *IntentUpsert {
	u.SetExcluded(intent.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *IntentUpsert) ClearSummary() *IntentUpsert {
	u.SetNull(intent.FieldSummary)
	return u
}

// SetFiletype sets the "filetype" field.
func (u *IntentUpsert) SetFiletype(v string) *IntentUpsert {
	u.Set(intent.FieldFiletype, v)
	return u
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *IntentUpsert) UpdateFiletype() *IntentUpsert {
	u.SetExcluded(intent.FieldFiletype)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IntentUpsertOne) UpdateNewValues() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(intent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntentUpsertOne) Ignore() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentUpsertOne) DoNothing() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentCreate.OnConflict
// documentation for more info.
func (u *IntentUpsertOne) Update(set func(*IntentUpsert)) *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntentText sets the "intent_text" field.
func (u *IntentUpsertOne) SetIntentText(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetIntentText(v)
	})
}

// UpdateIntentText sets the "intent_text" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateIntentText() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateIntentText()
	})
}

// SetTitle sets the "title" field.
func (u *IntentUpsertOne) SetTitle(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateTitle() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *IntentUpsertOne) SetSummary(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateSummary() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *IntentUpsertOne) ClearSummary() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearSummary()
	})
}

// SetFiletype sets the "filetype" field.
func (u *IntentUpsertOne) SetFiletype(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateFiletype() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateFiletype()
	})
}

// Exec executes the query.
func (u *IntentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntentCreateBulk is the builder for creating many Intent entities in bulk.
type IntentCreateBulk struct {
	config
	err      error
	builders []*IntentCreate
	conflict []sql.ConflictOption
}

// Save creates the Intent entities in the database.
func (_c *IntentCreateBulk) Save(ctx context.Context) ([]*Intent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntentMutation)
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
func (_c *IntentCreateBulk) SaveX(ctx context.Context) []*Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Intent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentUpsert) {
//			SetIntentText(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntentUpsertBulk {
	_c.conflict = opts
	return &IntentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentCreateBulk) OnConflictColumns(columns ...string) *IntentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentUpsertBulk{
		create: _c,
	}
}

// IntentUpsertBulk is the builder for "upsert"-ing
// a bulk of Intent nodes.
type IntentUpsertBulk struct {
	create *IntentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IntentUpsertBulk) UpdateNewValues() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(intent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntentUpsertBulk) Ignore() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentUpsertBulk) DoNothing() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentCreateBulk.OnConflict
// documentation for more info.
func (u *IntentUpsertBulk) Update(set func(*IntentUpsert)) *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntentText sets the "intent_text" field.
func (u *IntentUpsertBulk) SetIntentText(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetIntentText(v)
	})
}

// UpdateIntentText sets the "intent_text" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateIntentText() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateIntentText()
	})
}

// SetTitle sets the "title" field.
func (u *IntentUpsertBulk) SetTitle(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateTitle() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *IntentUpsertBulk) SetSummary(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateSummary() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *IntentUpsertBulk) ClearSummary() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearSummary()
	})
}

// SetFiletype sets the "filetype" field.
func (u *IntentUpsertBulk) SetFiletype(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateFiletype() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateFiletype()
	})
}

// Exec executes the query.
func (u *IntentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
