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
	"github.com/lumenlabs/lumen/ent/llmfailure"
)

// LLMFailureCreate is the builder for creating a LLMFailure entity.
type LLMFailureCreate struct {
	config
	mutation *LLMFailureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *LLMFailureCreate) SetProvider(v string) *LLMFailureCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetComponent sets the "component" field.
func (_c *LLMFailureCreate) SetComponent(v string) *LLMFailureCreate {
	_c.mutation.SetComponent(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *LLMFailureCreate) SetTrigger(v string) *LLMFailureCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *LLMFailureCreate) SetCorrelationID(v string) *LLMFailureCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *LLMFailureCreate) SetAttempt(v int) *LLMFailureCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMFailureCreate) SetDurationMs(v int64) *LLMFailureCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetErrorName sets the "error_name" field.
func (_c *LLMFailureCreate) SetErrorName(v string) *LLMFailureCreate {
	_c.mutation.SetErrorName(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMFailureCreate) SetErrorMessage(v string) *LLMFailureCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_c *LLMFailureCreate) SetRequestSnapshot(v string) *LLMFailureCreate {
	_c.mutation.SetRequestSnapshot(v)
	return _c
}

// SetNillableRequestSnapshot sets the "request_snapshot" field if the given value is not nil.
func (_c *LLMFailureCreate) SetNillableRequestSnapshot(v *string) *LLMFailureCreate {
	if v != nil {
		_c.SetRequestSnapshot(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMFailureCreate) SetCreatedAt(v time.Time) *LLMFailureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMFailureCreate) SetNillableCreatedAt(v *time.Time) *LLMFailureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LLMFailureMutation object of the builder.
func (_c *LLMFailureCreate) Mutation() *LLMFailureMutation {
	return _c.mutation
}

// Save creates the LLMFailure in the database.
func (_c *LLMFailureCreate) Save(ctx context.Context) (*LLMFailure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMFailureCreate) SaveX(ctx context.Context) *LLMFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMFailureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMFailureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMFailureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmfailure.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMFailureCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMFailure.provider"`)}
	}
	if _, ok := _c.mutation.Component(); !ok {
		return &ValidationError{Name: "component", err: errors.New(`ent: missing required field "LLMFailure.component"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "LLMFailure.trigger"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "LLMFailure.correlation_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "LLMFailure.attempt"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LLMFailure.duration_ms"`)}
	}
	if _, ok := _c.mutation.ErrorName(); !ok {
		return &ValidationError{Name: "error_name", err: errors.New(`ent: missing required field "LLMFailure.error_name"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "LLMFailure.error_message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMFailure.created_at"`)}
	}
	return nil
}

func (_c *LLMFailureCreate) sqlSave(ctx context.Context) (*LLMFailure, error) {
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

func (_c *LLMFailureCreate) createSpec() (*LLMFailure, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMFailure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmfailure.Table, sqlgraph.NewFieldSpec(llmfailure.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmfailure.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Component(); ok {
		_spec.SetField(llmfailure.FieldComponent, field.TypeString, value)
		_node.Component = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(llmfailure.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(llmfailure.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(llmfailure.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llmfailure.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorName(); ok {
		_spec.SetField(llmfailure.FieldErrorName, field.TypeString, value)
		_node.ErrorName = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmfailure.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RequestSnapshot(); ok {
		_spec.SetField(llmfailure.FieldRequestSnapshot, field.TypeString, value)
		_node.RequestSnapshot = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmfailure.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMFailure.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMFailureUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMFailureCreate) OnConflict(opts ...sql.ConflictOption) *LLMFailureUpsertOne {
	_c.conflict = opts
	return &LLMFailureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMFailureCreate) OnConflictColumns(columns ...string) *LLMFailureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMFailureUpsertOne{
		create: _c,
	}
}

type (
	// LLMFailureUpsertOne is the builder for "upsert"-ing
	//  one LLMFailure node.
	LLMFailureUpsertOne struct {
		create *LLMFailureCreate
	}

	// LLMFailureUpsert is the "OnConflict" setter.
	LLMFailureUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMFailureUpsert) SetProvider(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateProvider() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldProvider)
	return u
}

// SetComponent sets the "component" field.
func (u *LLMFailureUpsert) SetComponent(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldComponent, v)
	return u
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateComponent() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldComponent)
	return u
}

// SetTrigger sets the "trigger" field.
func (u *LLMFailureUpsert) SetTrigger(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldTrigger, v)
	return u
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateTrigger() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldTrigger)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *LLMFailureUpsert) SetCorrelationID(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateCorrelationID() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldCorrelationID)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *LLMFailureUpsert) SetAttempt(v int) *LLMFailureUpsert {
	u.Set(llmfailure.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateAttempt() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *LLMFailureUpsert) AddAttempt(v int) *LLMFailureUpsert {
	u.Add(llmfailure.FieldAttempt, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMFailureUpsert) SetDurationMs(v int64) *LLMFailureUpsert {
	u.Set(llmfailure.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateDurationMs() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMFailureUpsert) AddDurationMs(v int64) *LLMFailureUpsert {
	u.Add(llmfailure.FieldDurationMs, v)
	return u
}

// SetErrorName sets the "error_name" field.
func (u *LLMFailureUpsert) SetErrorName(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldErrorName, v)
	return u
}

// UpdateErrorName sets the "error_name" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateErrorName() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldErrorName)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMFailureUpsert) SetErrorMessage(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateErrorMessage() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldErrorMessage)
	return u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (u *LLMFailureUpsert) SetRequestSnapshot(v string) *LLMFailureUpsert {
	u.Set(llmfailure.FieldRequestSnapshot, v)
	return u
}

// UpdateRequestSnapshot sets the "request_snapshot" field to the value that was provided on create.
func (u *LLMFailureUpsert) UpdateRequestSnapshot() *LLMFailureUpsert {
	u.SetExcluded(llmfailure.FieldRequestSnapshot)
	return u
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (u *LLMFailureUpsert) ClearRequestSnapshot() *LLMFailureUpsert {
	u.SetNull(llmfailure.FieldRequestSnapshot)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMFailureUpsertOne) UpdateNewValues() *LLMFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmfailure.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMFailureUpsertOne) Ignore() *LLMFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMFailureUpsertOne) DoNothing() *LLMFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMFailureCreate.OnConflict
// documentation for more info.
func (u *LLMFailureUpsertOne) Update(set func(*LLMFailureUpsert)) *LLMFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMFailureUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMFailureUpsertOne) SetProvider(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateProvider() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateProvider()
	})
}

// SetComponent sets the "component" field.
func (u *LLMFailureUpsertOne) SetComponent(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetComponent(v)
	})
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateComponent() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateComponent()
	})
}

// SetTrigger sets the "trigger" field.
func (u *LLMFailureUpsertOne) SetTrigger(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateTrigger() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateTrigger()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *LLMFailureUpsertOne) SetCorrelationID(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateCorrelationID() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetAttempt sets the "attempt" field.
func (u *LLMFailureUpsertOne) SetAttempt(v int) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *LLMFailureUpsertOne) AddAttempt(v int) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateAttempt() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateAttempt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMFailureUpsertOne) SetDurationMs(v int64) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMFailureUpsertOne) AddDurationMs(v int64) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateDurationMs() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateDurationMs()
	})
}

// SetErrorName sets the "error_name" field.
func (u *LLMFailureUpsertOne) SetErrorName(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetErrorName(v)
	})
}

// UpdateErrorName sets the "error_name" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateErrorName() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateErrorName()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMFailureUpsertOne) SetErrorMessage(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateErrorMessage() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (u *LLMFailureUpsertOne) SetRequestSnapshot(v string) *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetRequestSnapshot(v)
	})
}

// UpdateRequestSnapshot sets the "request_snapshot" field to the value that was provided on create.
func (u *LLMFailureUpsertOne) UpdateRequestSnapshot() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateRequestSnapshot()
	})
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (u *LLMFailureUpsertOne) ClearRequestSnapshot() *LLMFailureUpsertOne {
	return u.Update(func(s *LLMFailureUpsert) {
		s.ClearRequestSnapshot()
	})
}

// Exec executes the query.
func (u *LLMFailureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMFailureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMFailureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMFailureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMFailureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMFailureCreateBulk is the builder for creating many LLMFailure entities in bulk.
type LLMFailureCreateBulk struct {
	config
	err      error
	builders []*LLMFailureCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMFailure entities in the database.
func (_c *LLMFailureCreateBulk) Save(ctx context.Context) ([]*LLMFailure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMFailure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMFailureMutation)
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
func (_c *LLMFailureCreateBulk) SaveX(ctx context.Context) []*LLMFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMFailureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMFailureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMFailure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMFailureUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMFailureCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMFailureUpsertBulk {
	_c.conflict = opts
	return &LLMFailureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMFailureCreateBulk) OnConflictColumns(columns ...string) *LLMFailureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMFailureUpsertBulk{
		create: _c,
	}
}

// LLMFailureUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMFailure nodes.
type LLMFailureUpsertBulk struct {
	create *LLMFailureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMFailureUpsertBulk) UpdateNewValues() *LLMFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmfailure.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMFailure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMFailureUpsertBulk) Ignore() *LLMFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMFailureUpsertBulk) DoNothing() *LLMFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMFailureCreateBulk.OnConflict
// documentation for more info.
func (u *LLMFailureUpsertBulk) Update(set func(*LLMFailureUpsert)) *LLMFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMFailureUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMFailureUpsertBulk) SetProvider(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateProvider() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateProvider()
	})
}

// SetComponent sets the "component" field.
func (u *LLMFailureUpsertBulk) SetComponent(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetComponent(v)
	})
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateComponent() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateComponent()
	})
}

// SetTrigger sets the "trigger" field.
func (u *LLMFailureUpsertBulk) SetTrigger(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateTrigger() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateTrigger()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *LLMFailureUpsertBulk) SetCorrelationID(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateCorrelationID() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetAttempt sets the "attempt" field.
func (u *LLMFailureUpsertBulk) SetAttempt(v int) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *LLMFailureUpsertBulk) AddAttempt(v int) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateAttempt() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateAttempt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMFailureUpsertBulk) SetDurationMs(v int64) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMFailureUpsertBulk) AddDurationMs(v int64) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateDurationMs() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateDurationMs()
	})
}

// SetErrorName sets the "error_name" field.
func (u *LLMFailureUpsertBulk) SetErrorName(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetErrorName(v)
	})
}

// UpdateErrorName sets the "error_name" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateErrorName() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateErrorName()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMFailureUpsertBulk) SetErrorMessage(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateErrorMessage() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (u *LLMFailureUpsertBulk) SetRequestSnapshot(v string) *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.SetRequestSnapshot(v)
	})
}

// UpdateRequestSnapshot sets the "request_snapshot" field to the value that was provided on create.
func (u *LLMFailureUpsertBulk) UpdateRequestSnapshot() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.UpdateRequestSnapshot()
	})
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (u *LLMFailureUpsertBulk) ClearRequestSnapshot() *LLMFailureUpsertBulk {
	return u.Update(func(s *LLMFailureUpsert) {
		s.ClearRequestSnapshot()
	})
}

// Exec executes the query.
func (u *LLMFailureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMFailureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMFailureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMFailureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
