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
	"github.com/lumenlabs/lumen/ent/predicate"
)

// MailThreadUpdate is the builder for updating MailThread entities.
type MailThreadUpdate struct {
	config
	hooks    []Hook
	mutation *MailThreadMutation
}

// Where appends a list predicates to the MailThreadUpdate builder.
func (_u *MailThreadUpdate) Where(ps ...predicate.MailThread) *MailThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MailThreadUpdate) SetTitle(v string) *MailThreadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MailThreadUpdate) SetNillableTitle(v *string) *MailThreadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *MailThreadUpdate) ClearTitle() *MailThreadUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetUserSetTitle sets the "user_set_title" field.
func (_u *MailThreadUpdate) SetUserSetTitle(v bool) *MailThreadUpdate {
	_u.mutation.SetUserSetTitle(v)
	return _u
}

// SetNillableUserSetTitle sets the "user_set_title" field if the given value is not nil.
func (_u *MailThreadUpdate) SetNillableUserSetTitle(v *bool) *MailThreadUpdate {
	if v != nil {
		_u.SetUserSetTitle(*v)
	}
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *MailThreadUpdate) SetContextSummary(v string) *MailThreadUpdate {
	_u.mutation.SetContextSummary(v)
	return _u
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_u *MailThreadUpdate) SetNillableContextSummary(v *string) *MailThreadUpdate {
	if v != nil {
		_u.SetContextSummary(*v)
	}
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *MailThreadUpdate) ClearContextSummary() *MailThreadUpdate {
	_u.mutation.ClearContextSummary()
	return _u
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (_u *MailThreadUpdate) SetSummaryTokenCount(v int) *MailThreadUpdate {
	_u.mutation.ResetSummaryTokenCount()
	_u.mutation.SetSummaryTokenCount(v)
	return _u
}

// SetNillableSummaryTokenCount sets the "summary_token_count" field if the given value is not nil.
func (_u *MailThreadUpdate) SetNillableSummaryTokenCount(v *int) *MailThreadUpdate {
	if v != nil {
		_u.SetSummaryTokenCount(*v)
	}
	return _u
}

// AddSummaryTokenCount adds value to the "summary_token_count" field.
func (_u *MailThreadUpdate) AddSummaryTokenCount(v int) *MailThreadUpdate {
	_u.mutation.AddSummaryTokenCount(v)
	return _u
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (_u *MailThreadUpdate) SetLastSummarizedReplyID(v int) *MailThreadUpdate {
	_u.mutation.ResetLastSummarizedReplyID()
	_u.mutation.SetLastSummarizedReplyID(v)
	return _u
}

// SetNillableLastSummarizedReplyID sets the "last_summarized_reply_id" field if the given value is not nil.
func (_u *MailThreadUpdate) SetNillableLastSummarizedReplyID(v *int) *MailThreadUpdate {
	if v != nil {
		_u.SetLastSummarizedReplyID(*v)
	}
	return _u
}

// AddLastSummarizedReplyID adds value to the "last_summarized_reply_id" field.
func (_u *MailThreadUpdate) AddLastSummarizedReplyID(v int) *MailThreadUpdate {
	_u.mutation.AddLastSummarizedReplyID(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MailThreadUpdate) SetUpdatedAt(v time.Time) *MailThreadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReplyIDs adds the "replies" edge to the MailReply entity by IDs.
func (_u *MailThreadUpdate) AddReplyIDs(ids ...int) *MailThreadUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the MailReply entity.
func (_u *MailThreadUpdate) AddReplies(v ...*MailReply) *MailThreadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the MailThreadMutation object of the builder.
func (_u *MailThreadUpdate) Mutation() *MailThreadMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the MailReply entity.
func (_u *MailThreadUpdate) ClearReplies() *MailThreadUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to MailReply entities by IDs.
func (_u *MailThreadUpdate) RemoveReplyIDs(ids ...int) *MailThreadUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to MailReply entities.
func (_u *MailThreadUpdate) RemoveReplies(v ...*MailReply) *MailThreadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MailThreadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MailThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MailThreadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mailthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MailThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mailthread.Table, mailthread.Columns, sqlgraph.NewFieldSpec(mailthread.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mailthread.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(mailthread.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UserSetTitle(); ok {
		_spec.SetField(mailthread.FieldUserSetTitle, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(mailthread.FieldContextSummary, field.TypeString, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(mailthread.FieldContextSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryTokenCount(); ok {
		_spec.SetField(mailthread.FieldSummaryTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryTokenCount(); ok {
		_spec.AddField(mailthread.FieldSummaryTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSummarizedReplyID(); ok {
		_spec.SetField(mailthread.FieldLastSummarizedReplyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSummarizedReplyID(); ok {
		_spec.AddField(mailthread.FieldLastSummarizedReplyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mailthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MailThreadUpdateOne is the builder for updating a single MailThread entity.
type MailThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MailThreadMutation
}

// SetTitle sets the "title" field.
func (_u *MailThreadUpdateOne) SetTitle(v string) *MailThreadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MailThreadUpdateOne) SetNillableTitle(v *string) *MailThreadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *MailThreadUpdateOne) ClearTitle() *MailThreadUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetUserSetTitle sets the "user_set_title" field.
func (_u *MailThreadUpdateOne) SetUserSetTitle(v bool) *MailThreadUpdateOne {
	_u.mutation.SetUserSetTitle(v)
	return _u
}

// SetNillableUserSetTitle sets the "user_set_title" field if the given value is not nil.
func (_u *MailThreadUpdateOne) SetNillableUserSetTitle(v *bool) *MailThreadUpdateOne {
	if v != nil {
		_u.SetUserSetTitle(*v)
	}
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *MailThreadUpdateOne) SetContextSummary(v string) *MailThreadUpdateOne {
	_u.mutation.SetContextSummary(v)
	return _u
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_u *MailThreadUpdateOne) SetNillableContextSummary(v *string) *MailThreadUpdateOne {
	if v != nil {
		_u.SetContextSummary(*v)
	}
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *MailThreadUpdateOne) ClearContextSummary() *MailThreadUpdateOne {
	_u.mutation.ClearContextSummary()
	return _u
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (_u *MailThreadUpdateOne) SetSummaryTokenCount(v int) *MailThreadUpdateOne {
	_u.mutation.ResetSummaryTokenCount()
	_u.mutation.SetSummaryTokenCount(v)
	return _u
}

// SetNillableSummaryTokenCount sets the "summary_token_count" field if the given value is not nil.
func (_u *MailThreadUpdateOne) SetNillableSummaryTokenCount(v *int) *MailThreadUpdateOne {
	if v != nil {
		_u.SetSummaryTokenCount(*v)
	}
	return _u
}

// AddSummaryTokenCount adds value to the "summary_token_count" field.
func (_u *MailThreadUpdateOne) AddSummaryTokenCount(v int) *MailThreadUpdateOne {
	_u.mutation.AddSummaryTokenCount(v)
	return _u
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (_u *MailThreadUpdateOne) SetLastSummarizedReplyID(v int) *MailThreadUpdateOne {
	_u.mutation.ResetLastSummarizedReplyID()
	_u.mutation.SetLastSummarizedReplyID(v)
	return _u
}

// SetNillableLastSummarizedReplyID sets the "last_summarized_reply_id" field if the given value is not nil.
func (_u *MailThreadUpdateOne) SetNillableLastSummarizedReplyID(v *int) *MailThreadUpdateOne {
	if v != nil {
		_u.SetLastSummarizedReplyID(*v)
	}
	return _u
}

// AddLastSummarizedReplyID adds value to the "last_summarized_reply_id" field.
func (_u *MailThreadUpdateOne) AddLastSummarizedReplyID(v int) *MailThreadUpdateOne {
	_u.mutation.AddLastSummarizedReplyID(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MailThreadUpdateOne) SetUpdatedAt(v time.Time) *MailThreadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReplyIDs adds the "replies" edge to the MailReply entity by IDs.
func (_u *MailThreadUpdateOne) AddReplyIDs(ids ...int) *MailThreadUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the MailReply entity.
func (_u *MailThreadUpdateOne) AddReplies(v ...*MailReply) *MailThreadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the MailThreadMutation object of the builder.
func (_u *MailThreadUpdateOne) Mutation() *MailThreadMutation {
	return _u.mutation
}

// ClearReplies clears all "replies" edges to the MailReply entity.
func (_u *MailThreadUpdateOne) ClearReplies() *MailThreadUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to MailReply entities by IDs.
func (_u *MailThreadUpdateOne) RemoveReplyIDs(ids ...int) *MailThreadUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to MailReply entities.
func (_u *MailThreadUpdateOne) RemoveReplies(v ...*MailReply) *MailThreadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Where appends a list predicates to the MailThreadUpdate builder.
func (_u *MailThreadUpdateOne) Where(ps ...predicate.MailThread) *MailThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MailThreadUpdateOne) Select(field string, fields ...string) *MailThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MailThread entity.
func (_u *MailThreadUpdateOne) Save(ctx context.Context) (*MailThread, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MailThreadUpdateOne) SaveX(ctx context.Context) *MailThread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MailThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MailThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MailThreadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mailthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MailThreadUpdateOne) sqlSave(ctx context.Context) (_node *MailThread, err error) {
	_spec := sqlgraph.NewUpdateSpec(mailthread.Table, mailthread.Columns, sqlgraph.NewFieldSpec(mailthread.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MailThread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mailthread.FieldID)
		for _, f := range fields {
			if !mailthread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mailthread.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mailthread.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(mailthread.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UserSetTitle(); ok {
		_spec.SetField(mailthread.FieldUserSetTitle, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(mailthread.FieldContextSummary, field.TypeString, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(mailthread.FieldContextSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryTokenCount(); ok {
		_spec.SetField(mailthread.FieldSummaryTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryTokenCount(); ok {
		_spec.AddField(mailthread.FieldSummaryTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSummarizedReplyID(); ok {
		_spec.SetField(mailthread.FieldLastSummarizedReplyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSummarizedReplyID(); ok {
		_spec.AddField(mailthread.FieldLastSummarizedReplyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mailthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MailThread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mailthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
