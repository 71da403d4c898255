// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// MailAttachmentUpdate is the builder for updating MailAttachment entities.
type MailAttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *MailAttachmentMutation
}

// Where appends a list predicates to the MailAttachmentUpdate builder.
func (_u *MailAttachmentUpdate) Where(ps ...predicate.MailAttachment) *MailAttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReplyID sets the "reply_id" field.
func (_u *MailAttachmentUpdate) SetReplyID(v int) *MailAttachmentUpdate {
	_u.mutation.SetReplyID(v)
	return _u
}

// SetNillableReplyID sets the "reply_id" field if the given value is not nil.
func (_u *MailAttachmentUpdate) SetNillableReplyID(v *int) *MailAttachmentUpdate {
	if v != nil {
		_u.SetReplyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MailAttachmentUpdate) SetKind(v mailattachment.Kind) *MailAttachmentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MailAttachmentUpdate) SetNillableKind(v *mailattachment.Kind) *MailAttachmentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MailAttachmentUpdate) SetMimeType(v string) *MailAttachmentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MailAttachmentUpdate) SetNillableMimeType(v *string) *MailAttachmentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *MailAttachmentUpdate) SetFilename(v string) *MailAttachmentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *MailAttachmentUpdate) SetNillableFilename(v *string) *MailAttachmentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *MailAttachmentUpdate) ClearFilename() *MailAttachmentUpdate {
	_u.mutation.ClearFilename()
	return _u
}

// SetTextContent sets the "text_content" field.
func (_u *MailAttachmentUpdate) SetTextContent(v string) *MailAttachmentUpdate {
	_u.mutation.SetTextContent(v)
	return _u
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (_u *MailAttachmentUpdate) SetNillableTextContent(v *string) *MailAttachmentUpdate {
	if v != nil {
		_u.SetTextContent(*v)
	}
	return _u
}

// ClearTextContent clears the value of the "text_content" field.
func (_u *MailAttachmentUpdate) ClearTextContent() *MailAttachmentUpdate {
	_u.mutation.ClearTextContent()
	return _u
}

// SetBinaryContent sets the "binary_content" field.
func (_u *MailAttachmentUpdate) SetBinaryContent(v []byte) *MailAttachmentUpdate {
	_u.mutation.SetBinaryContent(v)
	return _u
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (_u *MailAttachmentUpdate) ClearBinaryContent() *MailAttachmentUpdate {
	_u.mutation.ClearBinaryContent()
	return _u
}

// SetReply sets the "reply" edge to the MailReply entity.
func (_u *MailAttachmentUpdate) SetReply(v *MailReply) *MailAttachmentUpdate {
	return _u.SetReplyID(v.ID)
}

// Mutation returns the MailAttachmentMutation object of the builder.
func (_u *MailAttachmentUpdate) Mutation() *MailAttachmentMutation {
	return _u.mutation
}

// ClearReply clears the "reply" edge to the MailReply entity.
func (_u *MailAttachmentUpdate) ClearReply() *MailAttachmentUpdate {
	_u.mutation.ClearReply()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MailAttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailAttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MailAttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailAttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MailAttachmentUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := mailattachment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MailAttachment.kind": %w`, err)}
		}
	}
	if _u.mutation.ReplyCleared() && len(_u.mutation.ReplyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MailAttachment.reply"`)
	}
	return nil
}

func (_u *MailAttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mailattachment.Table, mailattachment.Columns, sqlgraph.NewFieldSpec(mailattachment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mailattachment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mailattachment.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(mailattachment.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(mailattachment.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.TextContent(); ok {
		_spec.SetField(mailattachment.FieldTextContent, field.TypeString, value)
	}
	if _u.mutation.TextContentCleared() {
		_spec.ClearField(mailattachment.FieldTextContent, field.TypeString)
	}
	if value, ok := _u.mutation.BinaryContent(); ok {
		_spec.SetField(mailattachment.FieldBinaryContent, field.TypeBytes, value)
	}
	if _u.mutation.BinaryContentCleared() {
		_spec.ClearField(mailattachment.FieldBinaryContent, field.TypeBytes)
	}
	if _u.mutation.ReplyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReplyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MailAttachmentUpdateOne is the builder for updating a single MailAttachment entity.
type MailAttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MailAttachmentMutation
}

// SetReplyID sets the "reply_id" field.
func (_u *MailAttachmentUpdateOne) SetReplyID(v int) *MailAttachmentUpdateOne {
	_u.mutation.SetReplyID(v)
	return _u
}

// SetNillableReplyID sets the "reply_id" field if the given value is not nil.
func (_u *MailAttachmentUpdateOne) SetNillableReplyID(v *int) *MailAttachmentUpdateOne {
	if v != nil {
		_u.SetReplyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MailAttachmentUpdateOne) SetKind(v mailattachment.Kind) *MailAttachmentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MailAttachmentUpdateOne) SetNillableKind(v *mailattachment.Kind) *MailAttachmentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MailAttachmentUpdateOne) SetMimeType(v string) *MailAttachmentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MailAttachmentUpdateOne) SetNillableMimeType(v *string) *MailAttachmentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *MailAttachmentUpdateOne) SetFilename(v string) *MailAttachmentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *MailAttachmentUpdateOne) SetNillableFilename(v *string) *MailAttachmentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *MailAttachmentUpdateOne) ClearFilename() *MailAttachmentUpdateOne {
	_u.mutation.ClearFilename()
	return _u
}

// SetTextContent sets the "text_content" field.
func (_u *MailAttachmentUpdateOne) SetTextContent(v string) *MailAttachmentUpdateOne {
	_u.mutation.SetTextContent(v)
	return _u
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (_u *MailAttachmentUpdateOne) SetNillableTextContent(v *string) *MailAttachmentUpdateOne {
	if v != nil {
		_u.SetTextContent(*v)
	}
	return _u
}

// ClearTextContent clears the value of the "text_content" field.
func (_u *MailAttachmentUpdateOne) ClearTextContent() *MailAttachmentUpdateOne {
	_u.mutation.ClearTextContent()
	return _u
}

// SetBinaryContent sets the "binary_content" field.
func (_u *MailAttachmentUpdateOne) SetBinaryContent(v []byte) *MailAttachmentUpdateOne {
	_u.mutation.SetBinaryContent(v)
	return _u
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (_u *MailAttachmentUpdateOne) ClearBinaryContent() *MailAttachmentUpdateOne {
	_u.mutation.ClearBinaryContent()
	return _u
}

// SetReply sets the "reply" edge to the MailReply entity.
func (_u *MailAttachmentUpdateOne) SetReply(v *MailReply) *MailAttachmentUpdateOne {
	return _u.SetReplyID(v.ID)
}

// Mutation returns the MailAttachmentMutation object of the builder.
func (_u *MailAttachmentUpdateOne) Mutation() *MailAttachmentMutation {
	return _u.mutation
}

// ClearReply clears the "reply" edge to the MailReply entity.
func (_u *MailAttachmentUpdateOne) ClearReply() *MailAttachmentUpdateOne {
	_u.mutation.ClearReply()
	return _u
}

// Where appends a list predicates to the MailAttachmentUpdate builder.
func (_u *MailAttachmentUpdateOne) Where(ps ...predicate.MailAttachment) *MailAttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MailAttachmentUpdateOne) Select(field string, fields ...string) *MailAttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MailAttachment entity.
func (_u *MailAttachmentUpdateOne) Save(ctx context.Context) (*MailAttachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailAttachmentUpdateOne) SaveX(ctx context.Context) *MailAttachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MailAttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailAttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MailAttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := mailattachment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MailAttachment.kind": %w`, err)}
		}
	}
	if _u.mutation.ReplyCleared() && len(_u.mutation.ReplyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MailAttachment.reply"`)
	}
	return nil
}

func (_u *MailAttachmentUpdateOne) sqlSave(ctx context.Context) (_node *MailAttachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mailattachment.Table, mailattachment.Columns, sqlgraph.NewFieldSpec(mailattachment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MailAttachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mailattachment.FieldID)
		for _, f := range fields {
			if !mailattachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mailattachment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mailattachment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mailattachment.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(mailattachment.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(mailattachment.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.TextContent(); ok {
		_spec.SetField(mailattachment.FieldTextContent, field.TypeString, value)
	}
	if _u.mutation.TextContentCleared() {
		_spec.ClearField(mailattachment.FieldTextContent, field.TypeString)
	}
	if value, ok := _u.mutation.BinaryContent(); ok {
		_spec.SetField(mailattachment.FieldBinaryContent, field.TypeBytes, value)
	}
	if _u.mutation.BinaryContentCleared() {
		_spec.ClearField(mailattachment.FieldBinaryContent, field.TypeBytes)
	}
	if _u.mutation.ReplyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReplyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MailAttachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
