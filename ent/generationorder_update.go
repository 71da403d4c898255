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
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// GenerationOrderUpdate is the builder for updating GenerationOrder entities.
type GenerationOrderUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationOrderMutation
}

// Where appends a list predicates to the GenerationOrderUpdate builder.
func (_u *GenerationOrderUpdate) Where(ps ...predicate.GenerationOrder) *GenerationOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *GenerationOrderUpdate) SetQueryID(v int) *GenerationOrderUpdate {
	_u.mutation.ResetQueryID()
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableQueryID(v *int) *GenerationOrderUpdate {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// AddQueryID adds value to the "query_id" field.
func (_u *GenerationOrderUpdate) AddQueryID(v int) *GenerationOrderUpdate {
	_u.mutation.AddQueryID(v)
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *GenerationOrderUpdate) ClearQueryID() *GenerationOrderUpdate {
	_u.mutation.ClearQueryID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *GenerationOrderUpdate) SetKind(v generationorder.Kind) *GenerationOrderUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableKind(v *generationorder.Kind) *GenerationOrderUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *GenerationOrderUpdate) SetIntentID(v int) *GenerationOrderUpdate {
	_u.mutation.ResetIntentID()
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableIntentID(v *int) *GenerationOrderUpdate {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// AddIntentID adds value to the "intent_id" field.
func (_u *GenerationOrderUpdate) AddIntentID(v int) *GenerationOrderUpdate {
	_u.mutation.AddIntentID(v)
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *GenerationOrderUpdate) ClearIntentID() *GenerationOrderUpdate {
	_u.mutation.ClearIntentID()
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *GenerationOrderUpdate) SetArticleID(v int) *GenerationOrderUpdate {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableArticleID(v *int) *GenerationOrderUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *GenerationOrderUpdate) AddArticleID(v int) *GenerationOrderUpdate {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *GenerationOrderUpdate) ClearArticleID() *GenerationOrderUpdate {
	_u.mutation.ClearArticleID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationOrderUpdate) SetStatus(v generationorder.Status) *GenerationOrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableStatus(v *generationorder.Status) *GenerationOrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *GenerationOrderUpdate) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableRequestedBy(v *generationorder.RequestedBy) *GenerationOrderUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *GenerationOrderUpdate) SetRequestPayload(v map[string]interface{}) *GenerationOrderUpdate {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *GenerationOrderUpdate) ClearRequestPayload() *GenerationOrderUpdate {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *GenerationOrderUpdate) SetResultSummary(v string) *GenerationOrderUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableResultSummary(v *string) *GenerationOrderUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *GenerationOrderUpdate) ClearResultSummary() *GenerationOrderUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationOrderUpdate) SetErrorMessage(v string) *GenerationOrderUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableErrorMessage(v *string) *GenerationOrderUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationOrderUpdate) ClearErrorMessage() *GenerationOrderUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationOrderUpdate) SetStartedAt(v time.Time) *GenerationOrderUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableStartedAt(v *time.Time) *GenerationOrderUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationOrderUpdate) ClearStartedAt() *GenerationOrderUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationOrderUpdate) SetFinishedAt(v time.Time) *GenerationOrderUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationOrderUpdate) SetNillableFinishedAt(v *time.Time) *GenerationOrderUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationOrderUpdate) ClearFinishedAt() *GenerationOrderUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationOrderUpdate) SetUpdatedAt(v time.Time) *GenerationOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationOrderMutation object of the builder.
func (_u *GenerationOrderUpdate) Mutation() *GenerationOrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generationorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationOrderUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationorder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBy(); ok {
		if err := generationorder.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationorder.Table, generationorder.Columns, sqlgraph.NewFieldSpec(generationorder.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(generationorder.FieldQueryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryID(); ok {
		_spec.AddField(generationorder.FieldQueryID, field.TypeInt, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(generationorder.FieldQueryID, field.TypeInt)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationorder.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(generationorder.FieldIntentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentID(); ok {
		_spec.AddField(generationorder.FieldIntentID, field.TypeInt, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(generationorder.FieldIntentID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(generationorder.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(generationorder.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(generationorder.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(generationorder.FieldRequestedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(generationorder.FieldRequestPayload, field.TypeJSON, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(generationorder.FieldRequestPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(generationorder.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(generationorder.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationorder.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationorder.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationorder.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationorder.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationorder.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationorder.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generationorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationOrderUpdateOne is the builder for updating a single GenerationOrder entity.
type GenerationOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationOrderMutation
}

// SetQueryID sets the "query_id" field.
func (_u *GenerationOrderUpdateOne) SetQueryID(v int) *GenerationOrderUpdateOne {
	_u.mutation.ResetQueryID()
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableQueryID(v *int) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// AddQueryID adds value to the "query_id" field.
func (_u *GenerationOrderUpdateOne) AddQueryID(v int) *GenerationOrderUpdateOne {
	_u.mutation.AddQueryID(v)
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *GenerationOrderUpdateOne) ClearQueryID() *GenerationOrderUpdateOne {
	_u.mutation.ClearQueryID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *GenerationOrderUpdateOne) SetKind(v generationorder.Kind) *GenerationOrderUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableKind(v *generationorder.Kind) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *GenerationOrderUpdateOne) SetIntentID(v int) *GenerationOrderUpdateOne {
	_u.mutation.ResetIntentID()
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableIntentID(v *int) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// AddIntentID adds value to the "intent_id" field.
func (_u *GenerationOrderUpdateOne) AddIntentID(v int) *GenerationOrderUpdateOne {
	_u.mutation.AddIntentID(v)
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *GenerationOrderUpdateOne) ClearIntentID() *GenerationOrderUpdateOne {
	_u.mutation.ClearIntentID()
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *GenerationOrderUpdateOne) SetArticleID(v int) *GenerationOrderUpdateOne {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableArticleID(v *int) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *GenerationOrderUpdateOne) AddArticleID(v int) *GenerationOrderUpdateOne {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *GenerationOrderUpdateOne) ClearArticleID() *GenerationOrderUpdateOne {
	_u.mutation.ClearArticleID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationOrderUpdateOne) SetStatus(v generationorder.Status) *GenerationOrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableStatus(v *generationorder.Status) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *GenerationOrderUpdateOne) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableRequestedBy(v *generationorder.RequestedBy) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *GenerationOrderUpdateOne) SetRequestPayload(v map[string]interface{}) *GenerationOrderUpdateOne {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *GenerationOrderUpdateOne) ClearRequestPayload() *GenerationOrderUpdateOne {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *GenerationOrderUpdateOne) SetResultSummary(v string) *GenerationOrderUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableResultSummary(v *string) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *GenerationOrderUpdateOne) ClearResultSummary() *GenerationOrderUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationOrderUpdateOne) SetErrorMessage(v string) *GenerationOrderUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableErrorMessage(v *string) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationOrderUpdateOne) ClearErrorMessage() *GenerationOrderUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationOrderUpdateOne) SetStartedAt(v time.Time) *GenerationOrderUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableStartedAt(v *time.Time) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationOrderUpdateOne) ClearStartedAt() *GenerationOrderUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationOrderUpdateOne) SetFinishedAt(v time.Time) *GenerationOrderUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationOrderUpdateOne) SetNillableFinishedAt(v *time.Time) *GenerationOrderUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationOrderUpdateOne) ClearFinishedAt() *GenerationOrderUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationOrderUpdateOne) SetUpdatedAt(v time.Time) *GenerationOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationOrderMutation object of the builder.
func (_u *GenerationOrderUpdateOne) Mutation() *GenerationOrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationOrderUpdate builder.
func (_u *GenerationOrderUpdateOne) Where(ps ...predicate.GenerationOrder) *GenerationOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationOrderUpdateOne) Select(field string, fields ...string) *GenerationOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationOrder entity.
func (_u *GenerationOrderUpdateOne) Save(ctx context.Context) (*GenerationOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationOrderUpdateOne) SaveX(ctx context.Context) *GenerationOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generationorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationOrderUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationorder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBy(); ok {
		if err := generationorder.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationOrderUpdateOne) sqlSave(ctx context.Context) (_node *GenerationOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationorder.Table, generationorder.Columns, sqlgraph.NewFieldSpec(generationorder.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationorder.FieldID)
		for _, f := range fields {
			if !generationorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationorder.FieldID {
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
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(generationorder.FieldQueryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryID(); ok {
		_spec.AddField(generationorder.FieldQueryID, field.TypeInt, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(generationorder.FieldQueryID, field.TypeInt)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationorder.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(generationorder.FieldIntentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentID(); ok {
		_spec.AddField(generationorder.FieldIntentID, field.TypeInt, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(generationorder.FieldIntentID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(generationorder.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(generationorder.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(generationorder.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(generationorder.FieldRequestedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(generationorder.FieldRequestPayload, field.TypeJSON, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(generationorder.FieldRequestPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(generationorder.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(generationorder.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationorder.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationorder.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationorder.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationorder.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationorder.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationorder.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generationorder.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GenerationOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
