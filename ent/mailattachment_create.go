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
)

// MailAttachmentCreate is the builder for creating a MailAttachment entity.
type MailAttachmentCreate struct {
	config
	mutation *MailAttachmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReplyID sets the "reply_id" field.
func (_c *MailAttachmentCreate) SetReplyID(v int) *MailAttachmentCreate {
	_c.mutation.SetReplyID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MailAttachmentCreate) SetKind(v mailattachment.Kind) *MailAttachmentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *MailAttachmentCreate) SetMimeType(v string) *MailAttachmentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *MailAttachmentCreate) SetFilename(v string) *MailAttachmentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_c *MailAttachmentCreate) SetNillableFilename(v *string) *MailAttachmentCreate {
	if v != nil {
		_c.SetFilename(*v)
	}
	return _c
}

// SetTextContent sets the "text_content" field.
func (_c *MailAttachmentCreate) SetTextContent(v string) *MailAttachmentCreate {
	_c.mutation.SetTextContent(v)
	return _c
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (_c *MailAttachmentCreate) SetNillableTextContent(v *string) *MailAttachmentCreate {
	if v != nil {
		_c.SetTextContent(*v)
	}
	return _c
}

// SetBinaryContent sets the "binary_content" field.
func (_c *MailAttachmentCreate) SetBinaryContent(v []byte) *MailAttachmentCreate {
	_c.mutation.SetBinaryContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MailAttachmentCreate) SetCreatedAt(v time.Time) *MailAttachmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MailAttachmentCreate) SetNillableCreatedAt(v *time.Time) *MailAttachmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReply sets the "reply" edge to the MailReply entity.
func (_c *MailAttachmentCreate) SetReply(v *MailReply) *MailAttachmentCreate {
	return _c.SetReplyID(v.ID)
}

// Mutation returns the MailAttachmentMutation object of the builder.
func (_c *MailAttachmentCreate) Mutation() *MailAttachmentMutation {
	return _c.mutation
}

// Save creates the MailAttachment in the database.
func (_c *MailAttachmentCreate) Save(ctx context.Context) (*MailAttachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MailAttachmentCreate) SaveX(ctx context.Context) *MailAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailAttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailAttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MailAttachmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mailattachment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MailAttachmentCreate) check() error {
	if _, ok := _c.mutation.ReplyID(); !ok {
		return &ValidationError{Name: "reply_id", err: errors.New(`ent: missing required field "MailAttachment.reply_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "MailAttachment.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := mailattachment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MailAttachment.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "MailAttachment.mime_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MailAttachment.created_at"`)}
	}
	if len(_c.mutation.ReplyIDs()) == 0 {
		return &ValidationError{Name: "reply", err: errors.New(`ent: missing required edge "MailAttachment.reply"`)}
	}
	return nil
}

func (_c *MailAttachmentCreate) sqlSave(ctx context.Context) (*MailAttachment, error) {
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

func (_c *MailAttachmentCreate) createSpec() (*MailAttachment, *sqlgraph.CreateSpec) {
	var (
		_node = &MailAttachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mailattachment.Table, sqlgraph.NewFieldSpec(mailattachment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(mailattachment.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(mailattachment.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(mailattachment.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.TextContent(); ok {
		_spec.SetField(mailattachment.FieldTextContent, field.TypeString, value)
		_node.TextContent = &value
	}
	if value, ok := _c.mutation.BinaryContent(); ok {
		_spec.SetField(mailattachment.FieldBinaryContent, field.TypeBytes, value)
		_node.BinaryContent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mailattachment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReplyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mailattachment.ReplyTable,
			Columns: []string{mailattachment.ReplyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mailreply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReplyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MailAttachment.Create().
//		SetReplyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailAttachmentUpsert) {
//			SetReplyID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailAttachmentCreate) OnConflict(opts ...sql.ConflictOption) *MailAttachmentUpsertOne {
	_c.conflict = opts
	return &MailAttachmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailAttachmentCreate) OnConflictColumns(columns ...string) *MailAttachmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailAttachmentUpsertOne{
		create: _c,
	}
}

type (
	// MailAttachmentUpsertOne is the builder for "upsert"-ing
	//  one MailAttachment node.
	MailAttachmentUpsertOne struct {
		create *MailAttachmentCreate
	}

	// MailAttachmentUpsert is the "OnConflict" setter.
	MailAttachmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetReplyID sets the "reply_id" field.
func (u *MailAttachmentUpsert) SetReplyID(v int) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldReplyID, v)
	return u
}

// UpdateReplyID sets the "reply_id" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateReplyID() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldReplyID)
	return u
}

// SetKind sets the "kind" field.
func (u *MailAttachmentUpsert) SetKind(v mailattachment.Kind) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateKind() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldKind)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *MailAttachmentUpsert) SetMimeType(v string) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateMimeType() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldMimeType)
	return u
}

// SetFilename sets the "filename" field.
func (u *MailAttachmentUpsert) SetFilename(v string) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateFilename() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldFilename)
	return u
}

// ClearFilename clears the value of the "filename" field.
func (u *MailAttachmentUpsert) ClearFilename() *MailAttachmentUpsert {
	u.SetNull(mailattachment.FieldFilename)
	return u
}

// SetTextContent sets the "text_content" field.
func (u *MailAttachmentUpsert) SetTextContent(v string) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldTextContent, v)
	return u
}

// UpdateTextContent sets the "text_content" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateTextContent() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldTextContent)
	return u
}

// ClearTextContent clears the value of the "text_content" field.
func (u *MailAttachmentUpsert) ClearTextContent() *MailAttachmentUpsert {
	u.SetNull(mailattachment.FieldTextContent)
	return u
}

// SetBinaryContent sets the "binary_content" field.
func (u *MailAttachmentUpsert) SetBinaryContent(v []byte) *MailAttachmentUpsert {
	u.Set(mailattachment.FieldBinaryContent, v)
	return u
}

// UpdateBinaryContent sets the "binary_content" field to the value that was provided on create.
func (u *MailAttachmentUpsert) UpdateBinaryContent() *MailAttachmentUpsert {
	u.SetExcluded(mailattachment.FieldBinaryContent)
	return u
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (u *MailAttachmentUpsert) ClearBinaryContent() *MailAttachmentUpsert {
	u.SetNull(mailattachment.FieldBinaryContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailAttachmentUpsertOne) UpdateNewValues() *MailAttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mailattachment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MailAttachmentUpsertOne) Ignore() *MailAttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailAttachmentUpsertOne) DoNothing() *MailAttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailAttachmentCreate.OnConflict
// documentation for more info.
func (u *MailAttachmentUpsertOne) Update(set func(*MailAttachmentUpsert)) *MailAttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailAttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetReplyID sets the "reply_id" field.
func (u *MailAttachmentUpsertOne) SetReplyID(v int) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetReplyID(v)
	})
}

// UpdateReplyID sets the "reply_id" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateReplyID() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateReplyID()
	})
}

// SetKind sets the "kind" field.
func (u *MailAttachmentUpsertOne) SetKind(v mailattachment.Kind) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateKind() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateKind()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *MailAttachmentUpsertOne) SetMimeType(v string) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateMimeType() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateMimeType()
	})
}

// SetFilename sets the "filename" field.
func (u *MailAttachmentUpsertOne) SetFilename(v string) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateFilename() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *MailAttachmentUpsertOne) ClearFilename() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearFilename()
	})
}

// SetTextContent sets the "text_content" field.
func (u *MailAttachmentUpsertOne) SetTextContent(v string) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetTextContent(v)
	})
}

// UpdateTextContent sets the "text_content" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateTextContent() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateTextContent()
	})
}

// ClearTextContent clears the value of the "text_content" field.
func (u *MailAttachmentUpsertOne) ClearTextContent() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearTextContent()
	})
}

// SetBinaryContent sets the "binary_content" field.
func (u *MailAttachmentUpsertOne) SetBinaryContent(v []byte) *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetBinaryContent(v)
	})
}

// UpdateBinaryContent sets the "binary_content" field to the value that was provided on create.
func (u *MailAttachmentUpsertOne) UpdateBinaryContent() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateBinaryContent()
	})
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (u *MailAttachmentUpsertOne) ClearBinaryContent() *MailAttachmentUpsertOne {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearBinaryContent()
	})
}

// Exec executes the query.
func (u *MailAttachmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailAttachmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailAttachmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MailAttachmentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MailAttachmentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MailAttachmentCreateBulk is the builder for creating many MailAttachment entities in bulk.
type MailAttachmentCreateBulk struct {
	config
	err      error
	builders []*MailAttachmentCreate
	conflict []sql.ConflictOption
}

// Save creates the MailAttachment entities in the database.
func (_c *MailAttachmentCreateBulk) Save(ctx context.Context) ([]*MailAttachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MailAttachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MailAttachmentMutation)
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
func (_c *MailAttachmentCreateBulk) SaveX(ctx context.Context) []*MailAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailAttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailAttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MailAttachment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MailAttachmentUpsert) {
//			SetReplyID(v+v).
//		}).
//		Exec(ctx)
func (_c *MailAttachmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *MailAttachmentUpsertBulk {
	_c.conflict = opts
	return &MailAttachmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MailAttachmentCreateBulk) OnConflictColumns(columns ...string) *MailAttachmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MailAttachmentUpsertBulk{
		create: _c,
	}
}

// MailAttachmentUpsertBulk is the builder for "upsert"-ing
// a bulk of MailAttachment nodes.
type MailAttachmentUpsertBulk struct {
	create *MailAttachmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MailAttachmentUpsertBulk) UpdateNewValues() *MailAttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mailattachment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MailAttachment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MailAttachmentUpsertBulk) Ignore() *MailAttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MailAttachmentUpsertBulk) DoNothing() *MailAttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MailAttachmentCreateBulk.OnConflict
// documentation for more info.
func (u *MailAttachmentUpsertBulk) Update(set func(*MailAttachmentUpsert)) *MailAttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MailAttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetReplyID sets the "reply_id" field.
func (u *MailAttachmentUpsertBulk) SetReplyID(v int) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetReplyID(v)
	})
}

// UpdateReplyID sets the "reply_id" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateReplyID() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateReplyID()
	})
}

// SetKind sets the "kind" field.
func (u *MailAttachmentUpsertBulk) SetKind(v mailattachment.Kind) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateKind() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateKind()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *MailAttachmentUpsertBulk) SetMimeType(v string) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateMimeType() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateMimeType()
	})
}

// SetFilename sets the "filename" field.
func (u *MailAttachmentUpsertBulk) SetFilename(v string) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateFilename() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *MailAttachmentUpsertBulk) ClearFilename() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearFilename()
	})
}

// SetTextContent sets the "text_content" field.
func (u *MailAttachmentUpsertBulk) SetTextContent(v string) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetTextContent(v)
	})
}

// UpdateTextContent sets the "text_content" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateTextContent() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateTextContent()
	})
}

// ClearTextContent clears the value of the "text_content" field.
func (u *MailAttachmentUpsertBulk) ClearTextContent() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearTextContent()
	})
}

// SetBinaryContent sets the "binary_content" field.
func (u *MailAttachmentUpsertBulk) SetBinaryContent(v []byte) *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.SetBinaryContent(v)
	})
}

// UpdateBinaryContent sets the "binary_content" field to the value that was provided on create.
func (u *MailAttachmentUpsertBulk) UpdateBinaryContent() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.UpdateBinaryContent()
	})
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (u *MailAttachmentUpsertBulk) ClearBinaryContent() *MailAttachmentUpsertBulk {
	return u.Update(func(s *MailAttachmentUpsert) {
		s.ClearBinaryContent()
	})
}

// Exec executes the query.
func (u *MailAttachmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MailAttachmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MailAttachmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MailAttachmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
