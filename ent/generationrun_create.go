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
	"github.com/lumenlabs/lumen/ent/generationrun"
)

// GenerationRunCreate is the builder for creating a GenerationRun entity.
type GenerationRunCreate struct {
	config
	mutation *GenerationRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrderID sets the "order_id" field.
func (_c *GenerationRunCreate) SetOrderID(v int) *GenerationRunCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableOrderID(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetArticleID sets the "article_id" field.
func (_c *GenerationRunCreate) SetArticleID(v int) *GenerationRunCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableArticleID(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetArticleID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *GenerationRunCreate) SetKind(v generationrun.Kind) *GenerationRunCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableKind(v *generationrun.Kind) *GenerationRunCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationRunCreate) SetStatus(v generationrun.Status) *GenerationRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableStatus(v *generationrun.Status) *GenerationRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *GenerationRunCreate) SetAttempts(v int) *GenerationRunCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableAttempts(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *GenerationRunCreate) SetDurationMs(v int64) *GenerationRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableDurationMs(v *int64) *GenerationRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (_c *GenerationRunCreate) SetLlmDurationMs(v int64) *GenerationRunCreate {
	_c.mutation.SetLlmDurationMs(v)
	return _c
}

// SetNillableLlmDurationMs sets the "llm_duration_ms" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableLlmDurationMs(v *int64) *GenerationRunCreate {
	if v != nil {
		_c.SetLlmDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationRunCreate) SetErrorMessage(v string) *GenerationRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableErrorMessage(v *string) *GenerationRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationRunCreate) SetCreatedAt(v time.Time) *GenerationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableCreatedAt(v *time.Time) *GenerationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GenerationRunCreate) SetUpdatedAt(v time.Time) *GenerationRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableUpdatedAt(v *time.Time) *GenerationRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_c *GenerationRunCreate) Mutation() *GenerationRunMutation {
	return _c.mutation
}

// Save creates the GenerationRun in the database.
func (_c *GenerationRunCreate) Save(ctx context.Context) (*GenerationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationRunCreate) SaveX(ctx context.Context) *GenerationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationRunCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := generationrun.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := generationrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := generationrun.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := generationrun.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.LlmDurationMs(); !ok {
		v := generationrun.DefaultLlmDurationMs
		_c.mutation.SetLlmDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generationrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationRunCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GenerationRun.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := generationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "GenerationRun.attempts"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "GenerationRun.duration_ms"`)}
	}
	if _, ok := _c.mutation.LlmDurationMs(); !ok {
		return &ValidationError{Name: "llm_duration_ms", err: errors.New(`ent: missing required field "GenerationRun.llm_duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GenerationRun.updated_at"`)}
	}
	return nil
}

func (_c *GenerationRunCreate) sqlSave(ctx context.Context) (*GenerationRun, error) {
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

func (_c *GenerationRunCreate) createSpec() (*GenerationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationrun.Table, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(generationrun.FieldOrderID, field.TypeInt, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.ArticleID(); ok {
		_spec.SetField(generationrun.FieldArticleID, field.TypeInt, value)
		_node.ArticleID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(generationrun.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(generationrun.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(generationrun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.LlmDurationMs(); ok {
		_spec.SetField(generationrun.FieldLlmDurationMs, field.TypeInt64, value)
		_node.LlmDurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generationrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationRun.Create().
//		SetOrderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationRunUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationRunCreate) OnConflict(opts ...sql.ConflictOption) *GenerationRunUpsertOne {
	_c.conflict = opts
	return &GenerationRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationRunCreate) OnConflictColumns(columns ...string) *GenerationRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationRunUpsertOne{
		create: _c,
	}
}

type (
	// GenerationRunUpsertOne is the builder for "upsert"-ing
	//  one GenerationRun node.
	GenerationRunUpsertOne struct {
		create *GenerationRunCreate
	}

	// GenerationRunUpsert is the "OnConflict" setter.
	GenerationRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrderID sets the "order_id" field.
func (u *GenerationRunUpsert) SetOrderID(v int) *GenerationRunUpsert {
	u.Set(generationrun.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateOrderID() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldOrderID)
	return u
}

// AddOrderID adds v to the "order_id" field.
func (u *GenerationRunUpsert) AddOrderID(v int) *GenerationRunUpsert {
	u.Add(generationrun.FieldOrderID, v)
	return u
}

// ClearOrderID clears the value of the "order_id" field.
func (u *GenerationRunUpsert) ClearOrderID() *GenerationRunUpsert {
	u.SetNull(generationrun.FieldOrderID)
	return u
}

// SetArticleID sets the "article_id" field.
func (u *GenerationRunUpsert) SetArticleID(v int) *GenerationRunUpsert {
	u.Set(generationrun.FieldArticleID, v)
	return u
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateArticleID() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldArticleID)
	return u
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationRunUpsert) AddArticleID(v int) *GenerationRunUpsert {
	u.Add(generationrun.FieldArticleID, v)
	return u
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationRunUpsert) ClearArticleID() *GenerationRunUpsert {
	u.SetNull(generationrun.FieldArticleID)
	return u
}

// SetKind sets the "kind" field.
func (u *GenerationRunUpsert) SetKind(v generationrun.Kind) *GenerationRunUpsert {
	u.Set(generationrun.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateKind() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldKind)
	return u
}

// SetStatus sets the "status" field.
func (u *GenerationRunUpsert) SetStatus(v generationrun.Status) *GenerationRunUpsert {
	u.Set(generationrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateStatus() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *GenerationRunUpsert) SetAttempts(v int) *GenerationRunUpsert {
	u.Set(generationrun.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateAttempts() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *GenerationRunUpsert) AddAttempts(v int) *GenerationRunUpsert {
	u.Add(generationrun.FieldAttempts, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *GenerationRunUpsert) SetDurationMs(v int64) *GenerationRunUpsert {
	u.Set(generationrun.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateDurationMs() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *GenerationRunUpsert) AddDurationMs(v int64) *GenerationRunUpsert {
	u.Add(generationrun.FieldDurationMs, v)
	return u
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (u *GenerationRunUpsert) SetLlmDurationMs(v int64) *GenerationRunUpsert {
	u.Set(generationrun.FieldLlmDurationMs, v)
	return u
}

// UpdateLlmDurationMs sets the "llm_duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateLlmDurationMs() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldLlmDurationMs)
	return u
}

// AddLlmDurationMs adds v to the "llm_duration_ms" field.
func (u *GenerationRunUpsert) AddLlmDurationMs(v int64) *GenerationRunUpsert {
	u.Add(generationrun.FieldLlmDurationMs, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationRunUpsert) SetErrorMessage(v string) *GenerationRunUpsert {
	u.Set(generationrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateErrorMessage() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationRunUpsert) ClearErrorMessage() *GenerationRunUpsert {
	u.SetNull(generationrun.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationRunUpsert) SetUpdatedAt(v time.Time) *GenerationRunUpsert {
	u.Set(generationrun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationRunUpsert) UpdateUpdatedAt() *GenerationRunUpsert {
	u.SetExcluded(generationrun.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationRunUpsertOne) UpdateNewValues() *GenerationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generationrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationRunUpsertOne) Ignore() *GenerationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationRunUpsertOne) DoNothing() *GenerationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationRunCreate.OnConflict
// documentation for more info.
func (u *GenerationRunUpsertOne) Update(set func(*GenerationRunUpsert)) *GenerationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *GenerationRunUpsertOne) SetOrderID(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetOrderID(v)
	})
}

// AddOrderID adds v to the "order_id" field.
func (u *GenerationRunUpsertOne) AddOrderID(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateOrderID() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *GenerationRunUpsertOne) ClearOrderID() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearOrderID()
	})
}

// SetArticleID sets the "article_id" field.
func (u *GenerationRunUpsertOne) SetArticleID(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetArticleID(v)
	})
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationRunUpsertOne) AddArticleID(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddArticleID(v)
	})
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateArticleID() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateArticleID()
	})
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationRunUpsertOne) ClearArticleID() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearArticleID()
	})
}

// SetKind sets the "kind" field.
func (u *GenerationRunUpsertOne) SetKind(v generationrun.Kind) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateKind() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationRunUpsertOne) SetStatus(v generationrun.Status) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateStatus() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *GenerationRunUpsertOne) SetAttempts(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *GenerationRunUpsertOne) AddAttempts(v int) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateAttempts() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateAttempts()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *GenerationRunUpsertOne) SetDurationMs(v int64) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *GenerationRunUpsertOne) AddDurationMs(v int64) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateDurationMs() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateDurationMs()
	})
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (u *GenerationRunUpsertOne) SetLlmDurationMs(v int64) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetLlmDurationMs(v)
	})
}

// AddLlmDurationMs adds v to the "llm_duration_ms" field.
func (u *GenerationRunUpsertOne) AddLlmDurationMs(v int64) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddLlmDurationMs(v)
	})
}

// UpdateLlmDurationMs sets the "llm_duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateLlmDurationMs() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateLlmDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationRunUpsertOne) SetErrorMessage(v string) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateErrorMessage() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationRunUpsertOne) ClearErrorMessage() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationRunUpsertOne) SetUpdatedAt(v time.Time) *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationRunUpsertOne) UpdateUpdatedAt() *GenerationRunUpsertOne {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GenerationRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationRunUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationRunUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationRunCreateBulk is the builder for creating many GenerationRun entities in bulk.
type GenerationRunCreateBulk struct {
	config
	err      error
	builders []*GenerationRunCreate
	conflict []sql.ConflictOption
}

// Save creates the GenerationRun entities in the database.
func (_c *GenerationRunCreateBulk) Save(ctx context.Context) ([]*GenerationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationRunMutation)
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
func (_c *GenerationRunCreateBulk) SaveX(ctx context.Context) []*GenerationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationRunUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationRunUpsertBulk {
	_c.conflict = opts
	return &GenerationRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationRunCreateBulk) OnConflictColumns(columns ...string) *GenerationRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationRunUpsertBulk{
		create: _c,
	}
}

// GenerationRunUpsertBulk is the builder for "upsert"-ing
// a bulk of GenerationRun nodes.
type GenerationRunUpsertBulk struct {
	create *GenerationRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GenerationRunUpsertBulk) UpdateNewValues() *GenerationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generationrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationRunUpsertBulk) Ignore() *GenerationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationRunUpsertBulk) DoNothing() *GenerationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationRunCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationRunUpsertBulk) Update(set func(*GenerationRunUpsert)) *GenerationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *GenerationRunUpsertBulk) SetOrderID(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetOrderID(v)
	})
}

// AddOrderID adds v to the "order_id" field.
func (u *GenerationRunUpsertBulk) AddOrderID(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateOrderID() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *GenerationRunUpsertBulk) ClearOrderID() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearOrderID()
	})
}

// SetArticleID sets the "article_id" field.
func (u *GenerationRunUpsertBulk) SetArticleID(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetArticleID(v)
	})
}

// AddArticleID adds v to the "article_id" field.
func (u *GenerationRunUpsertBulk) AddArticleID(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddArticleID(v)
	})
}

// UpdateArticleID sets the "article_id" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateArticleID() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateArticleID()
	})
}

// ClearArticleID clears the value of the "article_id" field.
func (u *GenerationRunUpsertBulk) ClearArticleID() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearArticleID()
	})
}

// SetKind sets the "kind" field.
func (u *GenerationRunUpsertBulk) SetKind(v generationrun.Kind) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateKind() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationRunUpsertBulk) SetStatus(v generationrun.Status) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateStatus() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *GenerationRunUpsertBulk) SetAttempts(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *GenerationRunUpsertBulk) AddAttempts(v int) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateAttempts() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateAttempts()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *GenerationRunUpsertBulk) SetDurationMs(v int64) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *GenerationRunUpsertBulk) AddDurationMs(v int64) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateDurationMs() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateDurationMs()
	})
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (u *GenerationRunUpsertBulk) SetLlmDurationMs(v int64) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetLlmDurationMs(v)
	})
}

// AddLlmDurationMs adds v to the "llm_duration_ms" field.
func (u *GenerationRunUpsertBulk) AddLlmDurationMs(v int64) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.AddLlmDurationMs(v)
	})
}

// UpdateLlmDurationMs sets the "llm_duration_ms" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateLlmDurationMs() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateLlmDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationRunUpsertBulk) SetErrorMessage(v string) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateErrorMessage() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationRunUpsertBulk) ClearErrorMessage() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GenerationRunUpsertBulk) SetUpdatedAt(v time.Time) *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GenerationRunUpsertBulk) UpdateUpdatedAt() *GenerationRunUpsertBulk {
	return u.Update(func(s *GenerationRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GenerationRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
