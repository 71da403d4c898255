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
)

// GenerationOrderCreate is the builder for creating a GenerationOrder entity.
type GenerationOrderCreate struct {
	config
	mutation *GenerationOrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueryID sets the "query_id" field.
func (_c *GenerationOrderCreate) SetQueryID(v int) *GenerationOrderCreate {
	_c.mutation.SetQueryID(v)
	return _c
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableQueryID(v *int) *GenerationOrderCreate {
	if v != nil {
		_c.SetQueryID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *GenerationOrderCreate) SetKind(v generationorder.Kind) *GenerationOrderCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetIntentID sets the "intent_id" field.
func (_c *GenerationOrderCreate) SetIntentID(v int) *GenerationOrderCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableIntentID(v *int) *GenerationOrderCreate {
	if v != nil {
		_c.SetIntentID(*v)
	}
	return _c
}

// SetArticleID sets the "article_id" field.
func (_c *GenerationOrderCreate) SetArticleID(v int) *GenerationOrderCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableArticleID(v *int) *GenerationOrderCreate {
	if v != nil {
		_c.SetArticleID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationOrderCreate) SetStatus(v generationorder.Status) *GenerationOrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableStatus(v *generationorder.Status) *GenerationOrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *GenerationOrderCreate) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableRequestedBy(v *generationorder.RequestedBy) *GenerationOrderCreate {
	if v != nil {
		_c.SetRequestedBy(*v)
	}
	return _c
}

// SetRequestPayload sets the "request_payload" field.
func (_c *GenerationOrderCreate) SetRequestPayload(v map[string]interface{}) *GenerationOrderCreate {
	_c.mutation.SetRequestPayload(v)
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *GenerationOrderCreate) SetResultSummary(v string) *GenerationOrderCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableResultSummary(v *string) *GenerationOrderCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationOrderCreate) SetErrorMessage(v string) *GenerationOrderCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableErrorMessage(v *string) *GenerationOrderCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationOrderCreate) SetCreatedAt(v time.Time) *GenerationOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableCreatedAt(v *time.Time) *GenerationOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GenerationOrderCreate) SetStartedAt(v time.Time) *GenerationOrderCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableStartedAt(v *time.Time) *GenerationOrderCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *GenerationOrderCreate) SetFinishedAt(v time.Time) *GenerationOrderCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableFinishedAt(v *time.Time) *GenerationOrderCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GenerationOrderCreate) SetUpdatedAt(v time.Time) *GenerationOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GenerationOrderCreate) SetNillableUpdatedAt(v *time.Time) *GenerationOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationOrderMutation object of the builder.
func (_c *GenerationOrderCreate) Mutation() *GenerationOrderMutation {
	return _c.mutation
}

// Save creates the GenerationOrder in the database.
func (_c *GenerationOrderCreate) Save(ctx context.Context) (*GenerationOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationOrderCreate) SaveX(ctx context.Context) *GenerationOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationOrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := generationorder.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		v := generationorder.DefaultRequestedBy
		_c.mutation.SetRequestedBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generationorder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationOrderCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GenerationOrder.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := generationorder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationOrder.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "GenerationOrder.requested_by"`)}
	}
	if v, ok := _c.mutation.RequestedBy(); ok {
		if err := generationorder.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`ent: validator failed for field "GenerationOrder.requested_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GenerationOrder.updated_at"`)}
	}
	return nil
}

func (_c *GenerationOrderCreate) sqlSave(ctx context.Context) (*GenerationOrder, error) {
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

func (_c *GenerationOrderCreate) createSpec() (*GenerationOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationorder.Table, sqlgraph.NewFieldSpec(generationorder.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QueryID(); ok {
		_spec.SetField(generationorder.FieldQueryID, field.TypeInt, value)
		_node.QueryID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(generationorder.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.IntentID(); ok {
		_spec.SetField(generationorder.FieldIntentID, field.TypeInt, value)
		_node.IntentID = &value
	}
	if value, ok := _c.mutation.ArticleID(); ok {
		_spec.SetField(generationorder.FieldArticleID, field.TypeInt, value)
		_node.ArticleID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationorder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(generationorder.FieldRequestedBy, field.TypeEnum, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.RequestPayload(); ok {
		_spec.SetField(generationorder.FieldRequestPayload, field.TypeJSON, value)
		_node.RequestPayload = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(generationorder.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationorder.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(generationorder.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(generationorder.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generationorder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationOrder.Create().
//		SetQueryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationOrderUpsert) {
//			SetQueryID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationOrderCreate) OnConflict(opts ...sql.ConflictOption) *GenerationOrderUpsertOne {
	_c.conflict = opts
	return &GenerationOrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationOrderCreate) OnConflictColumns(columns ...string) *GenerationOrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationOrderUpsertOne{
		create: _c,
	}
}

type (
	// GenerationOrderUpsertOne is the builder for "upsert"-ing
	//  one GenerationOrder node.
	GenerationOrderUpsertOne struct {
		create *GenerationOrderCreate
	}

	// GenerationOrderUpsert is the "OnConflict" setter.
	GenerationOrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueryID sets the "query_id" field.
func (u *GenerationOrderUpsert) SetQueryID(v int) *GenerationOrderUpsert {
	u.Set(generationorder.FieldQueryID, v)
	return u
}

// UpdateQueryID sets the "query_id" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateQueryID() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldQueryID)
	return u
}

// AddQueryID adds v to the "query_id" field.
func (u *GenerationOrderUpsert) AddQueryID(v int) *GenerationOrderUpsert {
	u.Add(generationorder.FieldQueryID, v)
	return u
}

// ClearQueryID clears the value of the "query_id" field.
func (u *GenerationOrderUpsert) ClearQueryID() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldQueryID)
	return u
}

// SetKind sets the "kind" field.
func (u *GenerationOrderUpsert) SetKind(v generationorder.Kind) *GenerationOrderUpsert {
	u.Set(generationorder.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateKind() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldKind)
	return u
}

// SetIntentID sets the "intent_id" field.
func (u *GenerationOrderUpsert) SetIntentID(v int) *GenerationOrderUpsert {
	u.Set(generationorder.FieldIntentID, v)
	return u
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateIntentID() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldIntentID)
	return u
}

// AddIntentID adds v to the "intent_id" field.
func (u *GenerationOrderUpsert) AddIntentID(v int) *GenerationOrderUpsert {
	u.Add(generationorder.FieldIntentID, v)
	return u
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *GenerationOrderUpsert) ClearIntentID() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldIntentID)
	return u
}

// SetArticleID sets the "article_id" field.
func (u *GenerationOrderUpsert) SetArticleID(v int) *GenerationOrderUpsert {
	u.Set(generationorder.FieldArticleID, v)
	return u
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateArticleID() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldArticleID)
	return u
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationOrderUpsert) AddArticleID(v int) *GenerationOrderUpsert {
	u.Add(generationorder.FieldArticleID, v)
	return u
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationOrderUpsert) ClearArticleID() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldArticleID)
	return u
}

// SetStatus sets the "status" field.
func (u *GenerationOrderUpsert) SetStatus(v generationorder.Status) *GenerationOrderUpsert {
	u.Set(generationorder.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateStatus() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldStatus)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *GenerationOrderUpsert) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderUpsert {
	u.Set(generationorder.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateRequestedBy() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldRequestedBy)
	return u
}

// SetRequestPayload sets the "request_payload" field.
func (u *GenerationOrderUpsert) SetRequestPayload(v map[string]interface{}) *GenerationOrderUpsert {
	u.Set(generationorder.FieldRequestPayload, v)
	return u
}

// UpdateRequestPayload sets the "request_payload" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateRequestPayload() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldRequestPayload)
	return u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (u *GenerationOrderUpsert) ClearRequestPayload() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldRequestPayload)
	return u
}

// SetResultSummary sets the "result_summary" field.
func (u *GenerationOrderUpsert) SetResultSummary(v string) *GenerationOrderUpsert {
	u.Set(generationorder.FieldResultSummary, v)
	return u
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateResultSummary() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldResultSummary)
	return u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *GenerationOrderUpsert) ClearResultSummary() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldResultSummary)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationOrderUpsert) SetErrorMessage(v string) *GenerationOrderUpsert {
	u.Set(generationorder.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateErrorMessage() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationOrderUpsert) ClearErrorMessage() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationOrderUpsert) SetStartedAt(v time.Time) *GenerationOrderUpsert {
	u.Set(generationorder.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateStartedAt() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationOrderUpsert) ClearStartedAt() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *GenerationOrderUpsert) SetFinishedAt(v time.Time) *GenerationOrderUpsert {
	u.Set(generationorder.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateFinishedAt() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *GenerationOrderUpsert) ClearFinishedAt() *GenerationOrderUpsert {
	u.SetNull(generationorder.FieldFinishedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationOrderUpsert) SetUpdatedAt(v time.Time) *GenerationOrderUpsert {
	u.Set(generationorder.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationOrderUpsert) UpdateUpdatedAt() *GenerationOrderUpsert {
	u.SetExcluded(generationorder.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationOrderUpsertOne) UpdateNewValues() *GenerationOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generationorder.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationOrderUpsertOne) Ignore() *GenerationOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationOrderUpsertOne) DoNothing() *GenerationOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationOrderCreate.OnConflict
// documentation for more info.
func (u *GenerationOrderUpsertOne) Update(set func(*GenerationOrderUpsert)) *GenerationOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueryID sets the "query_id" field.
func (u *GenerationOrderUpsertOne) SetQueryID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetQueryID(v)
	})
}

// AddQueryID adds v to the "query_id" field.
func (u *GenerationOrderUpsertOne) AddQueryID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddQueryID(v)
	})
}

// UpdateQueryID sets the "query_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateQueryID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateQueryID()
	})
}

// ClearQueryID clears the value of the "query_id" field.
func (u *GenerationOrderUpsertOne) ClearQueryID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearQueryID()
	})
}

// SetKind sets the "kind" field.
func (u *GenerationOrderUpsertOne) SetKind(v generationorder.Kind) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateKind() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateKind()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *GenerationOrderUpsertOne) SetIntentID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetIntentID(v)
	})
}

// AddIntentID adds v to the "intent_id" field.
func (u *GenerationOrderUpsertOne) AddIntentID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateIntentID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *GenerationOrderUpsertOne) ClearIntentID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearIntentID()
	})
}

// SetArticleID sets the "article_id" field.
func (u *GenerationOrderUpsertOne) SetArticleID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetArticleID(v)
	})
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationOrderUpsertOne) AddArticleID(v int) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddArticleID(v)
	})
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateArticleID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateArticleID()
	})
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationOrderUpsertOne) ClearArticleID() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearArticleID()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationOrderUpsertOne) SetStatus(v generationorder.Status) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateStatus() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *GenerationOrderUpsertOne) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateRequestedBy() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetRequestPayload sets the "request_payload" field.
func (u *GenerationOrderUpsertOne) SetRequestPayload(v map[string]interface{}) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetRequestPayload(v)
	})
}

// UpdateRequestPayload sets the "request_payload" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateRequestPayload() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateRequestPayload()
	})
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (u *GenerationOrderUpsertOne) ClearRequestPayload() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearRequestPayload()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *GenerationOrderUpsertOne) SetResultSummary(v string) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateResultSummary() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *GenerationOrderUpsertOne) ClearResultSummary() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearResultSummary()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationOrderUpsertOne) SetErrorMessage(v string) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateErrorMessage() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationOrderUpsertOne) ClearErrorMessage() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationOrderUpsertOne) SetStartedAt(v time.Time) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateStartedAt() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationOrderUpsertOne) ClearStartedAt() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *GenerationOrderUpsertOne) SetFinishedAt(v time.Time) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateFinishedAt() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *GenerationOrderUpsertOne) ClearFinishedAt() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearFinishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationOrderUpsertOne) SetUpdatedAt(v time.Time) *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertOne) UpdateUpdatedAt() *GenerationOrderUpsertOne {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GenerationOrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationOrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationOrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationOrderUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationOrderUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationOrderCreateBulk is the builder for creating many GenerationOrder entities in bulk.
type GenerationOrderCreateBulk struct {
	config
	err      error
	builders []*GenerationOrderCreate
	conflict []sql.ConflictOption
}

// Save creates the GenerationOrder entities in the database.
func (_c *GenerationOrderCreateBulk) Save(ctx context.Context) ([]*GenerationOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationOrderMutation)
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
func (_c *GenerationOrderCreateBulk) SaveX(ctx context.Context) []*GenerationOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationOrder.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationOrderUpsert) {
//			SetQueryID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationOrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationOrderUpsertBulk {
	_c.conflict = opts
	return &GenerationOrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationOrderCreateBulk) OnConflictColumns(columns ...string) *GenerationOrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationOrderUpsertBulk{
		create: _c,
	}
}

// GenerationOrderUpsertBulk is the builder for "upsert"-ing
// a bulk of GenerationOrder nodes.
type GenerationOrderUpsertBulk struct {
	create *GenerationOrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationOrderUpsertBulk) UpdateNewValues() *GenerationOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generationorder.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationOrder.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationOrderUpsertBulk) Ignore() *GenerationOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationOrderUpsertBulk) DoNothing() *GenerationOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationOrderCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationOrderUpsertBulk) Update(set func(*GenerationOrderUpsert)) *GenerationOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueryID sets the "query_id" field.
func (u *GenerationOrderUpsertBulk) SetQueryID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetQueryID(v)
	})
}

// AddQueryID adds v to the "query_id" field.
func (u *GenerationOrderUpsertBulk) AddQueryID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddQueryID(v)
	})
}

// UpdateQueryID sets the "query_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateQueryID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateQueryID()
	})
}

// ClearQueryID clears the value of the "query_id" field.
func (u *GenerationOrderUpsertBulk) ClearQueryID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearQueryID()
	})
}

// SetKind sets the "kind" field.
func (u *GenerationOrderUpsertBulk) SetKind(v generationorder.Kind) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateKind() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateKind()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *GenerationOrderUpsertBulk) SetIntentID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetIntentID(v)
	})
}

// AddIntentID adds v to the "intent_id" field.
func (u *GenerationOrderUpsertBulk) AddIntentID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateIntentID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *GenerationOrderUpsertBulk) ClearIntentID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearIntentID()
	})
}

// SetArticleID sets the "article_id" field.
func (u *GenerationOrderUpsertBulk) SetArticleID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetArticleID(v)
	})
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationOrderUpsertBulk) AddArticleID(v int) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.AddArticleID(v)
	})
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateArticleID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateArticleID()
	})
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationOrderUpsertBulk) ClearArticleID() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearArticleID()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationOrderUpsertBulk) SetStatus(v generationorder.Status) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateStatus() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *GenerationOrderUpsertBulk) SetRequestedBy(v generationorder.RequestedBy) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateRequestedBy() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetRequestPayload sets the "request_payload" field.
func (u *GenerationOrderUpsertBulk) SetRequestPayload(v map[string]interface{}) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetRequestPayload(v)
	})
}

// UpdateRequestPayload sets the "request_payload" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateRequestPayload() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateRequestPayload()
	})
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (u *GenerationOrderUpsertBulk) ClearRequestPayload() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearRequestPayload()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *GenerationOrderUpsertBulk) SetResultSummary(v string) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateResultSummary() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *GenerationOrderUpsertBulk) ClearResultSummary() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearResultSummary()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationOrderUpsertBulk) SetErrorMessage(v string) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateErrorMessage() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationOrderUpsertBulk) ClearErrorMessage() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationOrderUpsertBulk) SetStartedAt(v time.Time) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateStartedAt() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationOrderUpsertBulk) ClearStartedAt() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *GenerationOrderUpsertBulk) SetFinishedAt(v time.Time) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateFinishedAt() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *GenerationOrderUpsertBulk) ClearFinishedAt() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.ClearFinishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationOrderUpsertBulk) SetUpdatedAt(v time.Time) *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationOrderUpsertBulk) UpdateUpdatedAt() *GenerationOrderUpsertBulk {
	return u.Update(func(s *GenerationOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GenerationOrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationOrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationOrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationOrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
