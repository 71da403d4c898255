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
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
)

// MailThreadCreate is the builder for creating a MailThread entity.
type MailThreadCreate struct {
	config
	mutation *MailThreadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUID sets the "uid" field.
func (_c *MailThreadCreate) SetUID(v string) *MailThreadCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MailThreadCreate) SetTitle(v string) *MailThreadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableTitle(v *string) *MailThreadCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetUserSetTitle sets the "user_set_title" field.
func (_c *MailThreadCreate) SetUserSetTitle(v bool) *MailThreadCreate {
	_c.mutation.SetUserSetTitle(v)
	return _c
}

// SetNillableUserSetTitle sets the "user_set_title" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableUserSetTitle(v *bool) *MailThreadCreate {
	if v != nil {
		_c.SetUserSetTitle(*v)
	}
	return _c
}

// SetContextSummary sets the "context_summary" field.
func (_c *MailThreadCreate) SetContextSummary(v string) *MailThreadCreate {
	_c.mutation.SetContextSummary(v)
	return _c
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableContextSummary(v *string) *MailThreadCreate {
	if v != nil {
		_c.SetContextSummary(*v)
	}
	return _c
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (_c *MailThreadCreate) SetSummaryTokenCount(v int) *MailThreadCreate {
	_c.mutation.SetSummaryTokenCount(v)
	return _c
}

// SetNillableSummaryTokenCount sets the "summary_token_count" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableSummaryTokenCount(v *int) *MailThreadCreate {
	if v != nil {
		_c.SetSummaryTokenCount(*v)
	}
	return _c
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (_c *MailThreadCreate) SetLastSummarizedReplyID(v int) *MailThreadCreate {
	_c.mutation.SetLastSummarizedReplyID(v)
	return _c
}

// SetNillableLastSummarizedReplyID sets the "last_summarized_reply_id" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableLastSummarizedReplyID(v *int) *MailThreadCreate {
	if v != nil {
		_c.SetLastSummarizedReplyID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MailThreadCreate) SetCreatedAt(v time.Time) *MailThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableCreatedAt(v *time.Time) *MailThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MailThreadCreate) SetUpdatedAt(v time.Time) *MailThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MailThreadCreate) SetNillableUpdatedAt(v *time.Time) *MailThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddReplyIDs adds the "replies" edge to the MailReply entity by IDs.
func (_c *MailThreadCreate) AddReplyIDs(ids ...int) *MailThreadCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the MailReply entity.
func (_c *MailThreadCreate) AddReplies(v ...*MailReply) *MailThreadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the MailThreadMutation object of the builder.
func (_c *MailThreadCreate) Mutation() *MailThreadMutation {
	return _c.mutation
}

// Save creates the MailThread in the database.
func (_c *MailThreadCreate) Save(ctx context.Context) (*MailThread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MailThreadCreate) SaveX(ctx context.Context) *MailThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MailThreadCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := mailthread.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.UserSetTitle(); !ok {
		v := mailthread.DefaultUserSetTitle
		_c.mutation.SetUserSetTitle(v)
	}
	if _, ok := _c.mutation.SummaryTokenCount(); !ok {
		v := mailthread.DefaultSummaryTokenCount
		_c.mutation.SetSummaryTokenCount(v)
	}
	if _, ok := _c.mutation.LastSummarizedReplyID(); !ok {
		v := mailthread.DefaultLastSummarizedReplyID
		_c.mutation.SetLastSummarizedReplyID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mailthread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mailthread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MailThreadCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "MailThread.uid"`)}
	}
	if _, ok := _c.mutation.UserSetTitle(); !ok {
		return &ValidationError{Name: "user_set_title", err: errors.New(`ent: missing required field "MailThread.user_set_title"`)}
	}
	if _, ok := _c.mutation.SummaryTokenCount(); !ok {
		return &ValidationError{Name: "summary_token_count", err: errors.New(`ent: missing required field "MailThread.summary_token_count"`)}
	}
	if _, ok := _c.mutation.LastSummarizedReplyID(); !ok {
		return &ValidationError{Name: "last_summarized_reply_id", err: errors.New(`ent: missing required field "MailThread.last_summarized_reply_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MailThread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MailThread.updated_at"`)}
	}
	return nil
}

func (_c *MailThreadCreate) sqlSave(ctx context.Context) (*MailThread, error) {
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

func (_c *MailThreadCreate) createSpec() (*MailThread, *sqlgraph.CreateSpec) {
	var (
		_node = &MailThread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mailthread.Table, sqlgraph.NewFieldSpec(mailthread.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(mailthread.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(mailthread.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.UserSetTitle(); ok {
		_spec.SetField(mailthread.FieldUserSetTitle, field.TypeBool, value)
		_node.UserSetTitle = value
	}
	if value, ok := _c.mutation.ContextSummary(); ok {
		_spec.SetField(mailthread.FieldContextSummary, field.TypeString, value)
		_node.ContextSummary = value
	}
	if value, ok := _c.mutation.SummaryTokenCount(); ok {
		_spec.SetField(mailthread.FieldSummaryTokenCount, field.TypeInt, value)
		_node.SummaryTokenCount = value
	}
	if value, ok := _c.mutation.LastSummarizedReplyID(); ok {
		_spec.SetField(mailthread.FieldLastSummarizedReplyID, field.TypeInt, value)
		_node.LastSummarizedReplyID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mailthread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mailthread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mailthread.RepliesTable,
			Columns: []string{mailthread.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mailreply.FieldID, field.TypeInt),
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
//	client.MailThread.Create().
//		SetUID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailThreadUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailThreadCreate) OnConflict(opts ...sql.ConflictOption) *MailThreadUpsertOne {
	_c.conflict = opts
	return &MailThreadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailThread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailThreadCreate) OnConflictColumns(columns ...string) *MailThreadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailThreadUpsertOne{
		create: _c,
	}
}

type (
	// MailThreadUpsertOne is the builder for "upsert"-ing
	//  one MailThread node.
	MailThreadUpsertOne struct {
		create *MailThreadCreate
	}

	// MailThreadUpsert is the "OnConflict" setter.
	MailThreadUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *MailThreadUpsert) SetTitle(v string) *MailThreadUpsert {
	u.Set(mailthread.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateTitle() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *MailThreadUpsert) ClearTitle() *MailThreadUpsert {
	u.SetNull(mailthread.FieldTitle)
	return u
}

// SetUserSetTitle sets the "user_set_title" field.
func (u *MailThreadUpsert) SetUserSetTitle(v bool) *MailThreadUpsert {
	u.Set(mailthread.FieldUserSetTitle, v)
	return u
}

// UpdateUserSetTitle sets the "user_set_title" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateUserSetTitle() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldUserSetTitle)
	return u
}

// SetContextSummary sets the "context_summary" field.
func (u *MailThreadUpsert) SetContextSummary(v string) *MailThreadUpsert {
	u.Set(mailthread.FieldContextSummary, v)
	return u
}

// UpdateContextSummary sets the "context_summary" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateContextSummary() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldContextSummary)
	return u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (u *MailThreadUpsert) ClearContextSummary() *MailThreadUpsert {
	u.SetNull(mailthread.FieldContextSummary)
	return u
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (u *MailThreadUpsert) SetSummaryTokenCount(v int) *MailThreadUpsert {
	u.Set(mailthread.FieldSummaryTokenCount, v)
	return u
}

// UpdateSummaryTokenCount sets the "summary_token_count" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateSummaryTokenCount() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldSummaryTokenCount)
	return u
}

// AddSummaryTokenCount adds v to the "summary_token_count" field.
func (u *MailThreadUpsert) AddSummaryTokenCount(v int) *MailThreadUpsert {
	u.Add(mailthread.FieldSummaryTokenCount, v)
	return u
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (u *MailThreadUpsert) SetLastSummarizedReplyID(v int) *MailThreadUpsert {
	u.Set(mailthread.FieldLastSummarizedReplyID, v)
	return u
}

// UpdateLastSummarizedReplyID sets the "last_summarized_reply_id" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateLastSummarizedReplyID() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldLastSummarizedReplyID)
	return u
}

// AddLastSummarizedReplyID adds v to the "last_summarized_reply_id" field.
func (u *MailThreadUpsert) AddLastSummarizedReplyID(v int) *MailThreadUpsert {
	u.Add(mailthread.FieldLastSummarizedReplyID, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MailThreadUpsert) SetUpdatedAt(v time.Time) *MailThreadUpsert {
	u.Set(mailthread.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MailThreadUpsert) UpdateUpdatedAt() *MailThreadUpsert {
	u.SetExcluded(mailthread.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MailThread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailThreadUpsertOne) UpdateNewValues() *MailThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UID(); exists {
			s.SetIgnore(mailthread.FieldUID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mailthread.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailThread.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MailThreadUpsertOne) Ignore() *MailThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailThreadUpsertOne) DoNothing() *MailThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailThreadCreate.OnConflict
// documentation for more info.
func (u *MailThreadUpsertOne) Update(set func(*MailThreadUpsert)) *MailThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MailThreadUpsertOne) SetTitle(v string) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateTitle() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *MailThreadUpsertOne) ClearTitle() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.ClearTitle()
	})
}

// SetUserSetTitle sets the "user_set_title" field.
func (u *MailThreadUpsertOne) SetUserSetTitle(v bool) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetUserSetTitle(v)
	})
}

// UpdateUserSetTitle sets the "user_set_title" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateUserSetTitle() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateUserSetTitle()
	})
}

// SetContextSummary sets the "context_summary" field.
func (u *MailThreadUpsertOne) SetContextSummary(v string) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetContextSummary(v)
	})
}

// UpdateContextSummary sets the "context_summary" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateContextSummary() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateContextSummary()
	})
}

// ClearContextSummary clears the value of the "context_summary" field.
func (u *MailThreadUpsertOne) ClearContextSummary() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.ClearContextSummary()
	})
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (u *MailThreadUpsertOne) SetSummaryTokenCount(v int) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetSummaryTokenCount(v)
	})
}

// AddSummaryTokenCount adds v to the "summary_token_count" field.
func (u *MailThreadUpsertOne) AddSummaryTokenCount(v int) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.AddSummaryTokenCount(v)
	})
}

// UpdateSummaryTokenCount sets the "summary_token_count" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateSummaryTokenCount() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateSummaryTokenCount()
	})
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (u *MailThreadUpsertOne) SetLastSummarizedReplyID(v int) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetLastSummarizedReplyID(v)
	})
}

// AddLastSummarizedReplyID adds v to the "last_summarized_reply_id" field.
func (u *MailThreadUpsertOne) AddLastSummarizedReplyID(v int) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.AddLastSummarizedReplyID(v)
	})
}

// UpdateLastSummarizedReplyID sets the "last_summarized_reply_id" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateLastSummarizedReplyID() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateLastSummarizedReplyID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MailThreadUpsertOne) SetUpdatedAt(v time.Time) *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MailThreadUpsertOne) UpdateUpdatedAt() *MailThreadUpsertOne {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MailThreadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailThreadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailThreadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MailThreadUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MailThreadUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MailThreadCreateBulk is the builder for creating many MailThread entities in bulk.
type MailThreadCreateBulk struct {
	config
	err      error
	builders []*MailThreadCreate
	conflict []sql.ConflictOption
}

// Save creates the MailThread entities in the database.
func (_c *MailThreadCreateBulk) Save(ctx context.Context) ([]*MailThread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MailThread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MailThreadMutation)
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
func (_c *MailThreadCreateBulk) SaveX(ctx context.Context) []*MailThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MailThread.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailThreadUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailThreadCreateBulk) OnConflict(opts ...sql.ConflictOption) *MailThreadUpsertBulk {
	_c.conflict = opts
	return &MailThreadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailThread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailThreadCreateBulk) OnConflictColumns(columns ...string) *MailThreadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailThreadUpsertBulk{
		create: _c,
	}
}

// MailThreadUpsertBulk is the builder for "upsert"-ing
// a bulk of MailThread nodes.
type MailThreadUpsertBulk struct {
	create *MailThreadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MailThread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailThreadUpsertBulk) UpdateNewValues() *MailThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UID(); exists {
				s.SetIgnore(mailthread.FieldUID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mailthread.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailThread.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MailThreadUpsertBulk) Ignore() *MailThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailThreadUpsertBulk) DoNothing() *MailThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailThreadCreateBulk.OnConflict
// documentation for more info.
func (u *MailThreadUpsertBulk) Update(set func(*MailThreadUpsert)) *MailThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MailThreadUpsertBulk) SetTitle(v string) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateTitle() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *MailThreadUpsertBulk) ClearTitle() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.ClearTitle()
	})
}

// SetUserSetTitle sets the "user_set_title" field.
func (u *MailThreadUpsertBulk) SetUserSetTitle(v bool) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetUserSetTitle(v)
	})
}

// UpdateUserSetTitle sets the "user_set_title" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateUserSetTitle() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateUserSetTitle()
	})
}

// SetContextSummary sets the "context_summary" field.
func (u *MailThreadUpsertBulk) SetContextSummary(v string) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetContextSummary(v)
	})
}

// UpdateContextSummary sets the "context_summary" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateContextSummary() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateContextSummary()
	})
}

// ClearContextSummary clears the value of the "context_summary" field.
func (u *MailThreadUpsertBulk) ClearContextSummary() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.ClearContextSummary()
	})
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (u *MailThreadUpsertBulk) SetSummaryTokenCount(v int) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetSummaryTokenCount(v)
	})
}

// AddSummaryTokenCount adds v to the "summary_token_count" field.
func (u *MailThreadUpsertBulk) AddSummaryTokenCount(v int) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.AddSummaryTokenCount(v)
	})
}

// UpdateSummaryTokenCount sets the "summary_token_count" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateSummaryTokenCount() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateSummaryTokenCount()
	})
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (u *MailThreadUpsertBulk) SetLastSummarizedReplyID(v int) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetLastSummarizedReplyID(v)
	})
}

// AddLastSummarizedReplyID adds v to the "last_summarized_reply_id" field.
func (u *MailThreadUpsertBulk) AddLastSummarizedReplyID(v int) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.AddLastSummarizedReplyID(v)
	})
}

// UpdateLastSummarizedReplyID sets the "last_summarized_reply_id" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateLastSummarizedReplyID() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateLastSummarizedReplyID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MailThreadUpsertBulk) SetUpdatedAt(v time.Time) *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MailThreadUpsertBulk) UpdateUpdatedAt() *MailThreadUpsertBulk {
	return u.Update(func(s *MailThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MailThreadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MailThreadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailThreadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailThreadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
