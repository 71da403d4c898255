// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/spellentry"
)

// SpellEntryUpdate is the builder for updating SpellEntry entities.
type SpellEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SpellEntryMutation
}

// Where appends a list predicates to the SpellEntryUpdate builder.
func (_u *SpellEntryUpdate) Where(ps ...predicate.SpellEntry) *SpellEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTextHash sets the "text_hash" field.
func (_u *SpellEntryUpdate) SetTextHash(v string) *SpellEntryUpdate {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *SpellEntryUpdate) SetNillableTextHash(v *string) *SpellEntryUpdate {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SpellEntryUpdate) SetLanguage(v string) *SpellEntryUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SpellEntryUpdate) SetNillableLanguage(v *string) *SpellEntryUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *SpellEntryUpdate) SetCorrected(v string) *SpellEntryUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *SpellEntryUpdate) SetNillableCorrected(v *string) *SpellEntryUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// Mutation returns the SpellEntryMutation object of the builder.
func (_u *SpellEntryUpdate) Mutation() *SpellEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpellEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpellEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpellEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpellEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SpellEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(spellentry.Table, spellentry.Columns, sqlgraph.NewFieldSpec(spellentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(spellentry.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(spellentry.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(spellentry.FieldCorrected, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spellentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpellEntryUpdateOne is the builder for updating a single SpellEntry entity.
type SpellEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpellEntryMutation
}

// SetTextHash sets the "text_hash" field.
func (_u *SpellEntryUpdateOne) SetTextHash(v string) *SpellEntryUpdateOne {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *SpellEntryUpdateOne) SetNillableTextHash(v *string) *SpellEntryUpdateOne {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SpellEntryUpdateOne) SetLanguage(v string) *SpellEntryUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SpellEntryUpdateOne) SetNillableLanguage(v *string) *SpellEntryUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *SpellEntryUpdateOne) SetCorrected(v string) *SpellEntryUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *SpellEntryUpdateOne) SetNillableCorrected(v *string) *SpellEntryUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// Mutation returns the SpellEntryMutation object of the builder.
func (_u *SpellEntryUpdateOne) Mutation() *SpellEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpellEntryUpdate builder.
func (_u *SpellEntryUpdateOne) Where(ps ...predicate.SpellEntry) *SpellEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpellEntryUpdateOne) Select(field string, fields ...string) *SpellEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpellEntry entity.
func (_u *SpellEntryUpdateOne) Save(ctx context.Context) (*SpellEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpellEntryUpdateOne) SaveX(ctx context.Context) *SpellEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpellEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpellEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SpellEntryUpdateOne) sqlSave(ctx context.Context) (_node *SpellEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(spellentry.Table, spellentry.Columns, sqlgraph.NewFieldSpec(spellentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpellEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spellentry.FieldID)
		for _, f := range fields {
			if !spellentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spellentry.FieldID {
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
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(spellentry.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(spellentry.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(spellentry.FieldCorrected, field.TypeString, value)
	}
	_node = &SpellEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spellentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
