// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/llmfailure"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// LLMFailureUpdate is the builder for updating LLMFailure entities.
type LLMFailureUpdate struct {
	config
	hooks    []Hook
	mutation *LLMFailureMutation
}

// Where appends a list predicates to the LLMFailureUpdate builder.
func (_u *LLMFailureUpdate) Where(ps ...predicate.LLMFailure) *LLMFailureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMFailureUpdate) SetProvider(v string) *LLMFailureUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableProvider(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetComponent sets the "component" field.
func (_u *LLMFailureUpdate) SetComponent(v string) *LLMFailureUpdate {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableComponent(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LLMFailureUpdate) SetTrigger(v string) *LLMFailureUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableTrigger(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *LLMFailureUpdate) SetCorrelationID(v string) *LLMFailureUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableCorrelationID(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *LLMFailureUpdate) SetAttempt(v int) *LLMFailureUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableAttempt(v *int) *LLMFailureUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *LLMFailureUpdate) AddAttempt(v int) *LLMFailureUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMFailureUpdate) SetDurationMs(v int64) *LLMFailureUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableDurationMs(v *int64) *LLMFailureUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMFailureUpdate) AddDurationMs(v int64) *LLMFailureUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorName sets the "error_name" field.
func (_u *LLMFailureUpdate) SetErrorName(v string) *LLMFailureUpdate {
	_u.mutation.SetErrorName(v)
	return _u
}

// SetNillableErrorName sets the "error_name" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableErrorName(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetErrorName(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMFailureUpdate) SetErrorMessage(v string) *LLMFailureUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableErrorMessage(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *LLMFailureUpdate) SetRequestSnapshot(v string) *LLMFailureUpdate {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// SetNillableRequestSnapshot sets the "request_snapshot" field if the given value is not nil.
func (_u *LLMFailureUpdate) SetNillableRequestSnapshot(v *string) *LLMFailureUpdate {
	if v != nil {
		_u.SetRequestSnapshot(*v)
	}
	return _u
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (_u *LLMFailureUpdate) ClearRequestSnapshot() *LLMFailureUpdate {
	_u.mutation.ClearRequestSnapshot()
	return _u
}

// Mutation returns the LLMFailureMutation object of the builder.
func (_u *LLMFailureUpdate) Mutation() *LLMFailureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMFailureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMFailureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMFailureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMFailureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMFailureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmfailure.Table, llmfailure.Columns, sqlgraph.NewFieldSpec(llmfailure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmfailure.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(llmfailure.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(llmfailure.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(llmfailure.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(llmfailure.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(llmfailure.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmfailure.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmfailure.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorName(); ok {
		_spec.SetField(llmfailure.FieldErrorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmfailure.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(llmfailure.FieldRequestSnapshot, field.TypeString, value)
	}
	if _u.mutation.RequestSnapshotCleared() {
		_spec.ClearField(llmfailure.FieldRequestSnapshot, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMFailureUpdateOne is the builder for updating a single LLMFailure entity.
type LLMFailureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMFailureMutation
}

// SetProvider sets the "provider" field.
func (_u *LLMFailureUpdateOne) SetProvider(v string) *LLMFailureUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableProvider(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetComponent sets the "component" field.
func (_u *LLMFailureUpdateOne) SetComponent(v string) *LLMFailureUpdateOne {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableComponent(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LLMFailureUpdateOne) SetTrigger(v string) *LLMFailureUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableTrigger(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *LLMFailureUpdateOne) SetCorrelationID(v string) *LLMFailureUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableCorrelationID(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *LLMFailureUpdateOne) SetAttempt(v int) *LLMFailureUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableAttempt(v *int) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *LLMFailureUpdateOne) AddAttempt(v int) *LLMFailureUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMFailureUpdateOne) SetDurationMs(v int64) *LLMFailureUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableDurationMs(v *int64) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMFailureUpdateOne) AddDurationMs(v int64) *LLMFailureUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorName sets the "error_name" field.
func (_u *LLMFailureUpdateOne) SetErrorName(v string) *LLMFailureUpdateOne {
	_u.mutation.SetErrorName(v)
	return _u
}

// SetNillableErrorName sets the "error_name" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableErrorName(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetErrorName(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMFailureUpdateOne) SetErrorMessage(v string) *LLMFailureUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableErrorMessage(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *LLMFailureUpdateOne) SetRequestSnapshot(v string) *LLMFailureUpdateOne {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// SetNillableRequestSnapshot sets the "request_snapshot" field if the given value is not nil.
func (_u *LLMFailureUpdateOne) SetNillableRequestSnapshot(v *string) *LLMFailureUpdateOne {
	if v != nil {
		_u.SetRequestSnapshot(*v)
	}
	return _u
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (_u *LLMFailureUpdateOne) ClearRequestSnapshot() *LLMFailureUpdateOne {
	_u.mutation.ClearRequestSnapshot()
	return _u
}

// Mutation returns the LLMFailureMutation object of the builder.
func (_u *LLMFailureUpdateOne) Mutation() *LLMFailureMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMFailureUpdate builder.
func (_u *LLMFailureUpdateOne) Where(ps ...predicate.LLMFailure) *LLMFailureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMFailureUpdateOne) Select(field string, fields ...string) *LLMFailureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMFailure entity.
func (_u *LLMFailureUpdateOne) Save(ctx context.Context) (*LLMFailure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMFailureUpdateOne) SaveX(ctx context.Context) *LLMFailure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMFailureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMFailureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMFailureUpdateOne) sqlSave(ctx context.Context) (_node *LLMFailure, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmfailure.Table, llmfailure.Columns, sqlgraph.NewFieldSpec(llmfailure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMFailure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmfailure.FieldID)
		for _, f := range fields {
			if !llmfailure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmfailure.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmfailure.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(llmfailure.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(llmfailure.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(llmfailure.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(llmfailure.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(llmfailure.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmfailure.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmfailure.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorName(); ok {
		_spec.SetField(llmfailure.FieldErrorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmfailure.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(llmfailure.FieldRequestSnapshot, field.TypeString, value)
	}
	if _u.mutation.RequestSnapshotCleared() {
		_spec.ClearField(llmfailure.FieldRequestSnapshot, field.TypeString)
	}
	_node = &LLMFailure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
