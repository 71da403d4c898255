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
	"github.com/lumenlabs/lumen/ent/predicate"
)

// GenerationRunUpdate is the builder for updating GenerationRun entities.
type GenerationRunUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationRunMutation
}

// Where appends a list predicates to the GenerationRunUpdate builder.
func (_u *GenerationRunUpdate) Where(ps ...predicate.GenerationRun) *GenerationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *GenerationRunUpdate) SetOrderID(v int) *GenerationRunUpdate {
	_u.mutation.ResetOrderID()
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableOrderID(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// AddOrderID adds value to the "order_id" field.
func (_u *GenerationRunUpdate) AddOrderID(v int) *GenerationRunUpdate {
	_u.mutation.AddOrderID(v)
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *GenerationRunUpdate) ClearOrderID() *GenerationRunUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *GenerationRunUpdate) SetArticleID(v int) *GenerationRunUpdate {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableArticleID(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *GenerationRunUpdate) AddArticleID(v int) *GenerationRunUpdate {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *GenerationRunUpdate) ClearArticleID() *GenerationRunUpdate {
	_u.mutation.ClearArticleID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *GenerationRunUpdate) SetKind(v generationrun.Kind) *GenerationRunUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableKind(v *generationrun.Kind) *GenerationRunUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationRunUpdate) SetStatus(v generationrun.Status) *GenerationRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableStatus(v *generationrun.Status) *GenerationRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GenerationRunUpdate) SetAttempts(v int) *GenerationRunUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableAttempts(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *GenerationRunUpdate) AddAttempts(v int) *GenerationRunUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationRunUpdate) SetDurationMs(v int64) *GenerationRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableDurationMs(v *int64) *GenerationRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationRunUpdate) AddDurationMs(v int64) *GenerationRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (_u *GenerationRunUpdate) SetLlmDurationMs(v int64) *GenerationRunUpdate {
	_u.mutation.ResetLlmDurationMs()
	_u.mutation.SetLlmDurationMs(v)
	return _u
}

// SetNillableLlmDurationMs sets the "llm_duration_ms" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableLlmDurationMs(v *int64) *GenerationRunUpdate {
	if v != nil {
		_u.SetLlmDurationMs(*v)
	}
	return _u
}

// AddLlmDurationMs adds value to the "llm_duration_ms" field.
func (_u *GenerationRunUpdate) AddLlmDurationMs(v int64) *GenerationRunUpdate {
	_u.mutation.AddLlmDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationRunUpdate) SetErrorMessage(v string) *GenerationRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableErrorMessage(v *string) *GenerationRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationRunUpdate) ClearErrorMessage() *GenerationRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationRunUpdate) SetUpdatedAt(v time.Time) *GenerationRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_u *GenerationRunUpdate) Mutation() *GenerationRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationRunUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationrun.Table, generationrun.Columns, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(generationrun.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderID(); ok {
		_spec.AddField(generationrun.FieldOrderID, field.TypeInt, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(generationrun.FieldOrderID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(generationrun.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(generationrun.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(generationrun.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(generationrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(generationrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LlmDurationMs(); ok {
		_spec.SetField(generationrun.FieldLlmDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmDurationMs(); ok {
		_spec.AddField(generationrun.FieldLlmDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationRunUpdateOne is the builder for updating a single GenerationRun entity.
type GenerationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationRunMutation
}

// SetOrderID sets the "order_id" field.
func (_u *GenerationRunUpdateOne) SetOrderID(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetOrderID()
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableOrderID(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// AddOrderID adds value to the "order_id" field.
func (_u *GenerationRunUpdateOne) AddOrderID(v int) *GenerationRunUpdateOne {
	_u.mutation.AddOrderID(v)
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *GenerationRunUpdateOne) ClearOrderID() *GenerationRunUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *GenerationRunUpdateOne) SetArticleID(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableArticleID(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *GenerationRunUpdateOne) AddArticleID(v int) *GenerationRunUpdateOne {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *GenerationRunUpdateOne) ClearArticleID() *GenerationRunUpdateOne {
	_u.mutation.ClearArticleID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *GenerationRunUpdateOne) SetKind(v generationrun.Kind) *GenerationRunUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableKind(v *generationrun.Kind) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationRunUpdateOne) SetStatus(v generationrun.Status) *GenerationRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableStatus(v *generationrun.Status) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GenerationRunUpdateOne) SetAttempts(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableAttempts(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *GenerationRunUpdateOne) AddAttempts(v int) *GenerationRunUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationRunUpdateOne) SetDurationMs(v int64) *GenerationRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableDurationMs(v *int64) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationRunUpdateOne) AddDurationMs(v int64) *GenerationRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (_u *GenerationRunUpdateOne) SetLlmDurationMs(v int64) *GenerationRunUpdateOne {
	_u.mutation.ResetLlmDurationMs()
	_u.mutation.SetLlmDurationMs(v)
	return _u
}

// SetNillableLlmDurationMs sets the "llm_duration_ms" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableLlmDurationMs(v *int64) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetLlmDurationMs(*v)
	}
	return _u
}

// AddLlmDurationMs adds value to the "llm_duration_ms" field.
func (_u *GenerationRunUpdateOne) AddLlmDurationMs(v int64) *GenerationRunUpdateOne {
	_u.mutation.AddLlmDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationRunUpdateOne) SetErrorMessage(v string) *GenerationRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableErrorMessage(v *string) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationRunUpdateOne) ClearErrorMessage() *GenerationRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GenerationRunUpdateOne) SetUpdatedAt(v time.Time) *GenerationRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_u *GenerationRunUpdateOne) Mutation() *GenerationRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationRunUpdate builder.
func (_u *GenerationRunUpdateOne) Where(ps ...predicate.GenerationRun) *GenerationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationRunUpdateOne) Select(field string, fields ...string) *GenerationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationRun entity.
func (_u *GenerationRunUpdateOne) Save(ctx context.Context) (*GenerationRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationRunUpdateOne) SaveX(ctx context.Context) *GenerationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GenerationRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationRunUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationRunUpdateOne) sqlSave(ctx context.Context) (_node *GenerationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationrun.Table, generationrun.Columns, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationrun.FieldID)
		for _, f := range fields {
			if !generationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationrun.FieldID {
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
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(generationrun.FieldOrderID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderID(); ok {
		_spec.AddField(generationrun.FieldOrderID, field.TypeInt, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(generationrun.FieldOrderID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(generationrun.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(generationrun.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(generationrun.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(generationrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(generationrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LlmDurationMs(); ok {
		_spec.SetField(generationrun.FieldLlmDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmDurationMs(); ok {
		_spec.AddField(generationrun.FieldLlmDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GenerationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
