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
)

// ArticleCreate is the builder for creating a Article entity.
type ArticleCreate struct {
	config
	mutation *ArticleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentID sets the "intent_id" field.
func (_c *ArticleCreate) SetIntentID(v int) *ArticleCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArticleCreate) SetTitle(v string) *ArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ArticleCreate) SetSlug(v string) *ArticleCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArticleCreate) SetSummary(v string) *ArticleCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableSummary(v *string) *ArticleCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ArticleCreate) SetContent(v string) *ArticleCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableContent(v *string) *ArticleCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetFiletype sets the "filetype" field.
func (_c *ArticleCreate) SetFiletype(v string) *ArticleCreate {
	_c.mutation.SetFiletype(v)
	return _c
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableFiletype(v *string) *ArticleCreate {
	if v != nil {
		_c.SetFiletype(*v)
	}
	return _c
}

// SetGeneratedBy sets the "generated_by" field.
func (_c *ArticleCreate) SetGeneratedBy(v string) *ArticleCreate {
	_c.mutation.SetGeneratedBy(v)
	return _c
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableGeneratedBy(v *string) *ArticleCreate {
	if v != nil {
		_c.SetGeneratedBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ArticleCreate) SetStatus(v article.Status) *ArticleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableStatus(v *article.Status) *ArticleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleCreate) SetCreatedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableCreatedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArticleCreate) SetUpdatedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableUpdatedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *ArticleCreate) SetIntent(v *Intent) *ArticleCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (_c *ArticleCreate) Mutation() *ArticleMutation {
	return _c.mutation
}

// Save creates the Article in the database.
func (_c *ArticleCreate) Save(ctx context.Context) (*Article, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleCreate) SaveX(ctx context.Context) *Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleCreate) defaults() {
	if _, ok := _c.mutation.Filetype(); !ok {
		v := article.DefaultFiletype
		_c.mutation.SetFiletype(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := article.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := article.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := article.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleCreate) check() error {
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "Article.intent_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Article.title"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Article.slug"`)}
	}
	if _, ok := _c.mutation.Filetype(); !ok {
		return &ValidationError{Name: "filetype", err: errors.New(`ent: missing required field "Article.filetype"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Article.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := article.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Article.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Article.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Article.updated_at"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "Article.intent"`)}
	}
	return nil
}

func (_c *ArticleCreate) sqlSave(ctx context.Context) (*Article, error) {
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

func (_c *ArticleCreate) createSpec() (*Article, *sqlgraph.CreateSpec) {
	var (
		_node = &Article{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(article.Table, sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(article.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(article.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Filetype(); ok {
		_spec.SetField(article.FieldFiletype, field.TypeString, value)
		_node.Filetype = value
	}
	if value, ok := _c.mutation.GeneratedBy(); ok {
		_spec.SetField(article.FieldGeneratedBy, field.TypeString, value)
		_node.GeneratedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(article.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(article.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.IntentTable,
			Columns: []string{article.IntentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IntentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Article.Create().
//		SetIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArticleUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArticleCreate) OnConflict(opts ...sql.ConflictOption) *ArticleUpsertOne {
	_c.conflict = opts
	return &ArticleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArticleCreate) OnConflictColumns(columns ...string) *ArticleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArticleUpsertOne{
		create: _c,
	}
}

type (
	// ArticleUpsertOne is the builder for "upsert"-ing
	//  one Article node.
	ArticleUpsertOne struct {
		create *ArticleCreate
	}

	// ArticleUpsert is the "OnConflict" setter.
	ArticleUpsert struct {
		*sql.UpdateSet
	}
)

// SetIntentID sets the "intent_id" field.
func (u *ArticleUpsert) SetIntentID(v int) *ArticleUpsert {
	u.Set(article.FieldIntentID, v)
	return u
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateIntentID() *ArticleUpsert {
	u.SetExcluded(article.FieldIntentID)
	return u
}

// SetTitle sets the "title" field.
func (u *ArticleUpsert) SetTitle(v string) *ArticleUpsert {
	u.Set(article.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateTitle() *ArticleUpsert {
	u.SetExcluded(article.FieldTitle)
	return u
}

// SetSlug sets the "slug" field.
func (u *ArticleUpsert) SetSlug(v string) *ArticleUpsert {
	u.Set(article.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSlug() *ArticleUpsert {
	u.SetExcluded(article.FieldSlug)
	return u
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsert) SetSummary(v string) *ArticleUpsert {
	u.Set(article.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSummary() *ArticleUpsert {
	u.SetExcluded(article.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsert) ClearSummary() *ArticleUpsert {
	u.SetNull(article.FieldSummary)
	return u
}

// SetContent sets the "content" field.
func (u *ArticleUpsert) SetContent(v string) *ArticleUpsert {
	u.Set(article.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateContent() *ArticleUpsert {
	u.SetExcluded(article.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *ArticleUpsert) ClearContent() *ArticleUpsert {
	u.SetNull(article.FieldContent)
	return u
}

// SetFiletype sets the "filetype" field.
func (u *ArticleUpsert) SetFiletype(v string) *ArticleUpsert {
	u.Set(article.FieldFiletype, v)
	return u
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateFiletype() *ArticleUpsert {
	u.SetExcluded(article.FieldFiletype)
	return u
}

// SetGeneratedBy sets the "generated_by" field.
func (u *ArticleUpsert) SetGeneratedBy(v string) *ArticleUpsert {
	u.Set(article.FieldGeneratedBy, v)
	return u
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateGeneratedBy() *ArticleUpsert {
	u.SetExcluded(article.FieldGeneratedBy)
	return u
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (u *ArticleUpsert) ClearGeneratedBy() *ArticleUpsert {
	u.SetNull(article.FieldGeneratedBy)
	return u
}

// SetStatus sets the "status" field.
func (u *ArticleUpsert) SetStatus(v article.Status) *ArticleUpsert {
	u.Set(article.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateStatus() *ArticleUpsert {
	u.SetExcluded(article.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsert) SetUpdatedAt(v time.Time) *ArticleUpsert {
	u.Set(article.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateUpdatedAt() *ArticleUpsert {
	u.SetExcluded(article.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ArticleUpsertOne) UpdateNewValues() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(article.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArticleUpsertOne) Ignore() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArticleUpsertOne) DoNothing() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArticleCreate.OnConflict
// documentation for more info.
func (u *ArticleUpsertOne) Update(set func(*ArticleUpsert)) *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArticleUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntentID sets the "intent_id" field.
func (u *ArticleUpsertOne) SetIntentID(v int) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateIntentID() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateIntentID()
	})
}

// SetTitle sets the "title" field.
func (u *ArticleUpsertOne) SetTitle(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateTitle() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *ArticleUpsertOne) SetSlug(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSlug() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSlug()
	})
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsertOne) SetSummary(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsertOne) ClearSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSummary()
	})
}

// SetContent sets the "content" field.
func (u *ArticleUpsertOne) SetContent(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateContent() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ArticleUpsertOne) ClearContent() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearContent()
	})
}

// SetFiletype sets the "filetype" field.
func (u *ArticleUpsertOne) SetFiletype(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateFiletype() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateFiletype()
	})
}

// SetGeneratedBy sets the "generated_by" field.
func (u *ArticleUpsertOne) SetGeneratedBy(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetGeneratedBy(v)
	})
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateGeneratedBy() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateGeneratedBy()
	})
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (u *ArticleUpsertOne) ClearGeneratedBy() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearGeneratedBy()
	})
}

// SetStatus sets the "status" field.
func (u *ArticleUpsertOne) SetStatus(v article.Status) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateStatus() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsertOne) SetUpdatedAt(v time.Time) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateUpdatedAt() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArticleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArticleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArticleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArticleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArticleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArticleCreateBulk is the builder for creating many Article entities in bulk.
type ArticleCreateBulk struct {
	config
	err      error
	builders []*ArticleCreate
	conflict []sql.ConflictOption
}

// Save creates the Article entities in the database.
func (_c *ArticleCreateBulk) Save(ctx context.Context) ([]*Article, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Article, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleMutation)
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
func (_c *ArticleCreateBulk) SaveX(ctx context.Context) []*Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Article.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArticleUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArticleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArticleUpsertBulk {
	_c.conflict = opts
	return &ArticleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArticleCreateBulk) OnConflictColumns(columns ...string) *ArticleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArticleUpsertBulk{
		create: _c,
	}
}

// ArticleUpsertBulk is the builder for "upsert"-ing
// a bulk of Article nodes.
type ArticleUpsertBulk struct {
	create *ArticleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ArticleUpsertBulk) UpdateNewValues() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(article.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArticleUpsertBulk) Ignore() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArticleUpsertBulk) DoNothing() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArticleCreateBulk.OnConflict
// documentation for more info.
func (u *ArticleUpsertBulk) Update(set func(*ArticleUpsert)) *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArticleUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntentID sets the "intent_id" field.
func (u *ArticleUpsertBulk) SetIntentID(v int) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateIntentID() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateIntentID()
	})
}

// SetTitle sets the "title" field.
func (u *ArticleUpsertBulk) SetTitle(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateTitle() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *ArticleUpsertBulk) SetSlug(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSlug() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSlug()
	})
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsertBulk) SetSummary(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsertBulk) ClearSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSummary()
	})
}

// SetContent sets the "content" field.
func (u *ArticleUpsertBulk) SetContent(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateContent() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ArticleUpsertBulk) ClearContent() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearContent()
	})
}

// SetFiletype sets the "filetype" field.
func (u *ArticleUpsertBulk) SetFiletype(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetFiletype(v)
	})
}

// UpdateFiletype sets the "filetype" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateFiletype() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateFiletype()
	})
}

// SetGeneratedBy sets the "generated_by" field.
func (u *ArticleUpsertBulk) SetGeneratedBy(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetGeneratedBy(v)
	})
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateGeneratedBy() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateGeneratedBy()
	})
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (u *ArticleUpsertBulk) ClearGeneratedBy() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearGeneratedBy()
	})
}

// SetStatus sets the "status" field.
func (u *ArticleUpsertBulk) SetStatus(v article.Status) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateStatus() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsertBulk) SetUpdatedAt(v time.Time) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateUpdatedAt() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArticleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArticleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArticleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArticleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
