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
	"github.com/lumenlabs/lumen/ent/mailthread"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// MailReplyUpdate is the builder for updating MailReply entities.
type MailReplyUpdate struct {
	config
	hooks    []Hook
	mutation *MailReplyMutation
}

// Where appends a list predicates to the MailReplyUpdate builder.
func (_u *MailReplyUpdate) Where(ps ...predicate.MailReply) *MailReplyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *MailReplyUpdate) SetThreadID(v int) *MailReplyUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *MailReplyUpdate) SetNillableThreadID(v *int) *MailReplyUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MailReplyUpdate) SetRole(v mailreply.Role) *MailReplyUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MailReplyUpdate) SetNillableRole(v *mailreply.Role) *MailReplyUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MailReplyUpdate) SetStatus(v mailreply.Status) *MailReplyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MailReplyUpdate) SetNillableStatus(v *mailreply.Status) *MailReplyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MailReplyUpdate) SetContent(v string) *MailReplyUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MailReplyUpdate) SetNillableContent(v *string) *MailReplyUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetUnread sets the "unread" field.
func (_u *MailReplyUpdate) SetUnread(v bool) *MailReplyUpdate {
	_u.mutation.SetUnread(v)
	return _u
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_u *MailReplyUpdate) SetNillableUnread(v *bool) *MailReplyUpdate {
	if v != nil {
		_u.SetUnread(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the MailThread entity.
func (_u *MailReplyUpdate) SetThread(v *MailThread) *MailReplyUpdate {
	return _u.SetThreadID(v.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the MailAttachment entity by IDs.
func (_u *MailReplyUpdate) AddAttachmentIDs(ids ...int) *MailReplyUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the MailAttachment entity.
func (_u *MailReplyUpdate) AddAttachments(v ...*MailAttachment) *MailReplyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the MailReplyMutation object of the builder.
func (_u *MailReplyUpdate) Mutation() *MailReplyMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the MailThread entity.
func (_u *MailReplyUpdate) ClearThread() *MailReplyUpdate {
	_u.mutation.ClearThread()
	return _u
}

// ClearAttachments clears all "attachments" edges to the MailAttachment entity.
func (_u *MailReplyUpdate) ClearAttachments() *MailReplyUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to MailAttachment entities by IDs.
func (_u *MailReplyUpdate) RemoveAttachmentIDs(ids ...int) *MailReplyUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to MailAttachment entities.
func (_u *MailReplyUpdate) RemoveAttachments(v ...*MailAttachment) *MailReplyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MailReplyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailReplyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MailReplyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailReplyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MailReplyUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := mailreply.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MailReply.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mailreply.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MailReply.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MailReply.thread"`)
	}
	return nil
}

func (_u *MailReplyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mailreply.Table, mailreply.Columns, sqlgraph.NewFieldSpec(mailreply.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(mailreply.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mailreply.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(mailreply.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unread(); ok {
		_spec.SetField(mailreply.FieldUnread, field.TypeBool, value)
	}
	if _u.mutation.ThreadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailreply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MailReplyUpdateOne is the builder for updating a single MailReply entity.
type MailReplyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MailReplyMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *MailReplyUpdateOne) SetThreadID(v int) *MailReplyUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *MailReplyUpdateOne) SetNillableThreadID(v *int) *MailReplyUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MailReplyUpdateOne) SetRole(v mailreply.Role) *MailReplyUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MailReplyUpdateOne) SetNillableRole(v *mailreply.Role) *MailReplyUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MailReplyUpdateOne) SetStatus(v mailreply.Status) *MailReplyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MailReplyUpdateOne) SetNillableStatus(v *mailreply.Status) *MailReplyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MailReplyUpdateOne) SetContent(v string) *MailReplyUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MailReplyUpdateOne) SetNillableContent(v *string) *MailReplyUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetUnread sets the "unread" field.
func (_u *MailReplyUpdateOne) SetUnread(v bool) *MailReplyUpdateOne {
	_u.mutation.SetUnread(v)
	return _u
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_u *MailReplyUpdateOne) SetNillableUnread(v *bool) *MailReplyUpdateOne {
	if v != nil {
		_u.SetUnread(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the MailThread entity.
func (_u *MailReplyUpdateOne) SetThread(v *MailThread) *MailReplyUpdateOne {
	return _u.SetThreadID(v.ID)
}

// AddAttachmentIDs adds the "attachments" edge to the MailAttachment entity by IDs.
func (_u *MailReplyUpdateOne) AddAttachmentIDs(ids ...int) *MailReplyUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the MailAttachment entity.
func (_u *MailReplyUpdateOne) AddAttachments(v ...*MailAttachment) *MailReplyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the MailReplyMutation object of the builder.
func (_u *MailReplyUpdateOne) Mutation() *MailReplyMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the MailThread entity.
func (_u *MailReplyUpdateOne) ClearThread() *MailReplyUpdateOne {
	_u.mutation.ClearThread()
	return _u
}

// ClearAttachments clears all "attachments" edges to the MailAttachment entity.
func (_u *MailReplyUpdateOne) ClearAttachments() *MailReplyUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to MailAttachment entities by IDs.
func (_u *MailReplyUpdateOne) RemoveAttachmentIDs(ids ...int) *MailReplyUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to MailAttachment entities.
func (_u *MailReplyUpdateOne) RemoveAttachments(v ...*MailAttachment) *MailReplyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Where appends a list predicates to the MailReplyUpdate builder.
func (_u *MailReplyUpdateOne) Where(ps ...predicate.MailReply) *MailReplyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MailReplyUpdateOne) Select(field string, fields ...string) *MailReplyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MailReply entity.
func (_u *MailReplyUpdateOne) Save(ctx context.Context) (*MailReply, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailReplyUpdateOne) SaveX(ctx context.Context) *MailReply {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MailReplyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailReplyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MailReplyUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := mailreply.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MailReply.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mailreply.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MailReply.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MailReply.thread"`)
	}
	return nil
}

func (_u *MailReplyUpdateOne) sqlSave(ctx context.Context) (_node *MailReply, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mailreply.Table, mailreply.Columns, sqlgraph.NewFieldSpec(mailreply.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MailReply.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mailreply.FieldID)
		for _, f := range fields {
			if !mailreply.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mailreply.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(mailreply.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mailreply.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(mailreply.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unread(); ok {
		_spec.SetField(mailreply.FieldUnread, field.TypeBool, value)
	}
	if _u.mutation.ThreadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MailReply{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailreply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
