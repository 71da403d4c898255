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
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
)

// MailReplyCreate is the builder for creating a MailReply entity.
type MailReplyCreate struct {
	config
	mutation *MailReplyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *MailReplyCreate) SetThreadID(v int) *MailReplyCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MailReplyCreate) SetRole(v mailreply.Role) *MailReplyCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MailReplyCreate) SetStatus(v mailreply.Status) *MailReplyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MailReplyCreate) SetNillableStatus(v *mailreply.Status) *MailReplyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MailReplyCreate) SetContent(v string) *MailReplyCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUnread sets the "unread" field.
func (_c *MailReplyCreate) SetUnread(v bool) *MailReplyCreate {
	_c.mutation.SetUnread(v)
	return _c
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_c *MailReplyCreate) SetNillableUnread(v *bool) *MailReplyCreate {
	if v != nil {
		_c.SetUnread(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MailReplyCreate) SetCreatedAt(v time.Time) *MailReplyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MailReplyCreate) SetNillableCreatedAt(v *time.Time) *MailReplyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetThread sets the "thread" edge to the MailThread entity.
func (_c *MailReplyCreate) SetThread(v *MailThread) *MailReplyCreate {
	return _c.SetThreadID(v.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the MailAttachment entity by IDs.
func (_c *MailReplyCreate) AddAttachmentIDs(ids ...int) *MailReplyCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the MailAttachment entity.
func (_c *MailReplyCreate) AddAttachments(v ...*MailAttachment) *MailReplyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// Mutation returns the MailReplyMutation object of the builder.
func (_c *MailReplyCreate) Mutation() *MailReplyMutation {
	return _c.mutation
}

// Save creates the MailReply in the database.
func (_c *MailReplyCreate) Save(ctx context.Context) (*MailReply, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MailReplyCreate) SaveX(ctx context.Context) *MailReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailReplyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailReplyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MailReplyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mailreply.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Unread(); !ok {
		v := mailreply.DefaultUnread
		_c.mutation.SetUnread(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mailreply.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MailReplyCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "MailReply.thread_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "MailReply.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := mailreply.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MailReply.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MailReply.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mailreply.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MailReply.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MailReply.content"`)}
	}
	if _, ok := _c.mutation.Unread(); !ok {
		return &ValidationError{Name: "unread", err: errors.New(`ent: missing required field "MailReply.unread"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MailReply.created_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "MailReply.thread"`)}
	}
	return nil
}

func (_c *MailReplyCreate) sqlSave(ctx context.Context) (*MailReply, error) {
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

func (_c *MailReplyCreate) createSpec() (*MailReply, *sqlgraph.CreateSpec) {
	var (
		_node = &MailReply{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mailreply.Table, sqlgraph.NewFieldSpec(mailreply.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(mailreply.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mailreply.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(mailreply.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Unread(); ok {
		_spec.SetField(mailreply.FieldUnread, field.TypeBool, value)
		_node.Unread = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mailreply.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mailreply.ThreadTable,
			Columns: []string{mailreply.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mailthread.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mailreply.AttachmentsTable,
			Columns: []string{mailreply.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mailattachment.FieldID, field.TypeInt),
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
//	client.MailReply.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailReplyUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailReplyCreate) OnConflict(opts ...sql.ConflictOption) *MailReplyUpsertOne {
	_c.conflict = opts
	return &MailReplyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailReply.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailReplyCreate) OnConflictColumns(columns ...string) *MailReplyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailReplyUpsertOne{
		create: _c,
	}
}

type (
	// MailReplyUpsertOne is the builder for "upsert"-ing
	//  one MailReply node.
	MailReplyUpsertOne struct {
		create *MailReplyCreate
	}

	// MailReplyUpsert is the "OnConflict" setter.
	MailReplyUpsert struct {
		*sql.UpdateSet
	}
)

// SetThreadID sets the "thread_id" field.
func (u *MailReplyUpsert) SetThreadID(v int) *MailReplyUpsert {
	u.Set(mailreply.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MailReplyUpsert) UpdateThreadID() *MailReplyUpsert {
	u.SetExcluded(mailreply.FieldThreadID)
	return u
}

// SetRole sets the "role" field.
func (u *MailReplyUpsert) SetRole(v mailreply.Role) *MailReplyUpsert {
	u.Set(mailreply.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MailReplyUpsert) UpdateRole() *MailReplyUpsert {
	u.SetExcluded(mailreply.FieldRole)
	return u
}

// SetStatus sets the "status" field.
func (u *MailReplyUpsert) SetStatus(v mailreply.Status) *MailReplyUpsert {
	u.Set(mailreply.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MailReplyUpsert) UpdateStatus() *MailReplyUpsert {
	u.SetExcluded(mailreply.FieldStatus)
	return u
}

// SetContent sets the "content" field.
func (u *MailReplyUpsert) SetContent(v string) *MailReplyUpsert {
	u.Set(mailreply.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MailReplyUpsert) UpdateContent() *MailReplyUpsert {
	u.SetExcluded(mailreply.FieldContent)
	return u
}

// SetUnread sets the "unread" field.
func (u *MailReplyUpsert) SetUnread(v bool) *MailReplyUpsert {
	u.Set(mailreply.FieldUnread, v)
	return u
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *MailReplyUpsert) UpdateUnread() *MailReplyUpsert {
	u.SetExcluded(mailreply.FieldUnread)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MailReply.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailReplyUpsertOne) UpdateNewValues() *MailReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mailreply.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailReply.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MailReplyUpsertOne) Ignore() *MailReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailReplyUpsertOne) DoNothing() *MailReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailReplyCreate.OnConflict
// documentation for more info.
func (u *MailReplyUpsertOne) Update(set func(*MailReplyUpsert)) *MailReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailReplyUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *MailReplyUpsertOne) SetThreadID(v int) *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MailReplyUpsertOne) UpdateThreadID() *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateThreadID()
	})
}

// SetRole sets the "role" field.
func (u *MailReplyUpsertOne) SetRole(v mailreply.Role) *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MailReplyUpsertOne) UpdateRole() *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateRole()
	})
}

// SetStatus sets the "status" field.
func (u *MailReplyUpsertOne) SetStatus(v mailreply.Status) *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MailReplyUpsertOne) UpdateStatus() *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *MailReplyUpsertOne) SetContent(v string) *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MailReplyUpsertOne) UpdateContent() *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateContent()
	})
}

// SetUnread sets the "unread" field.
func (u *MailReplyUpsertOne) SetUnread(v bool) *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetUnread(v)
	})
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *MailReplyUpsertOne) UpdateUnread() *MailReplyUpsertOne {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateUnread()
	})
}

// Exec executes the query.
func (u *MailReplyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailReplyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailReplyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MailReplyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MailReplyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MailReplyCreateBulk is the builder for creating many MailReply entities in bulk.
type MailReplyCreateBulk struct {
	config
	err      error
	builders []*MailReplyCreate
	conflict []sql.ConflictOption
}

// Save creates the MailReply entities in the database.
func (_c *MailReplyCreateBulk) Save(ctx context.Context) ([]*MailReply, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MailReply, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MailReplyMutation)
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
func (_c *MailReplyCreateBulk) SaveX(ctx context.Context) []*MailReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailReplyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailReplyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MailReply.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailReplyUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailReplyCreateBulk) OnConflict(opts ...sql.ConflictOption) *MailReplyUpsertBulk {
	_c.conflict = opts
	return &MailReplyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailReply.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailReplyCreateBulk) OnConflictColumns(columns ...string) *MailReplyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailReplyUpsertBulk{
		create: _c,
	}
}

// MailReplyUpsertBulk is the builder for "upsert"-ing
// a bulk of MailReply nodes.
type MailReplyUpsertBulk struct {
	create *MailReplyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MailReply.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailReplyUpsertBulk) UpdateNewValues() *MailReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mailreply.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailReply.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MailReplyUpsertBulk) Ignore() *MailReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailReplyUpsertBulk) DoNothing() *MailReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailReplyCreateBulk.OnConflict
// documentation for more info.
func (u *MailReplyUpsertBulk) Update(set func(*MailReplyUpsert)) *MailReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailReplyUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *MailReplyUpsertBulk) SetThreadID(v int) *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MailReplyUpsertBulk) UpdateThreadID() *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateThreadID()
	})
}

// SetRole sets the "role" field.
func (u *MailReplyUpsertBulk) SetRole(v mailreply.Role) *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MailReplyUpsertBulk) UpdateRole() *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateRole()
	})
}

// SetStatus sets the "status" field.
func (u *MailReplyUpsertBulk) SetStatus(v mailreply.Status) *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MailReplyUpsertBulk) UpdateStatus() *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *MailReplyUpsertBulk) SetContent(v string) *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MailReplyUpsertBulk) UpdateContent() *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateContent()
	})
}

// SetUnread sets the "unread" field.
func (u *MailReplyUpsertBulk) SetUnread(v bool) *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.SetUnread(v)
	})
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *MailReplyUpsertBulk) UpdateUnread() *MailReplyUpsertBulk {
	return u.Update(func(s *MailReplyUpsert) {
		s.UpdateUnread()
	})
}

// Exec executes the query.
func (u *MailReplyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MailReplyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailReplyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailReplyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
