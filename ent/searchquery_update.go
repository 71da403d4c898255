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
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// SearchQueryUpdate is the builder for updating SearchQuery entities.
type SearchQueryUpdate struct {
	config
	hooks    []Hook
	mutation *SearchQueryMutation
}

// Where appends a list predicates to the SearchQueryUpdate builder.
func (_u *SearchQueryUpdate) Where(ps ...predicate.SearchQuery) *SearchQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *SearchQueryUpdate) SetValue(v string) *SearchQueryUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableValue(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetOriginalValue sets the "original_value" field.
func (_u *SearchQueryUpdate) SetOriginalValue(v string) *SearchQueryUpdate {
	_u.mutation.SetOriginalValue(v)
	return _u
}

// SetNillableOriginalValue sets the "original_value" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableOriginalValue(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetOriginalValue(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SearchQueryUpdate) SetLanguage(v string) *SearchQueryUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableLanguage(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *SearchQueryUpdate) SetFiletype(v string) *SearchQueryUpdate {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableFiletype(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SearchQueryUpdate) SetUpdatedAt(v time.Time) *SearchQueryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIntentIDs adds the "intents" edge to the Intent entity by IDs.
func (_u *SearchQueryUpdate) AddIntentIDs(ids ...int) *SearchQueryUpdate {
	_u.mutation.AddIntentIDs(ids...)
	return _u
}

// AddIntents adds the "intents" edges to the Intent entity.
func (_u *SearchQueryUpdate) AddIntents(v ...*Intent) *SearchQueryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIntentIDs(ids...)
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_u *SearchQueryUpdate) Mutation() *SearchQueryMutation {
	return _u.mutation
}

// ClearIntents clears all "intents" edges to the Intent entity.
func (_u *SearchQueryUpdate) ClearIntents() *SearchQueryUpdate {
	_u.mutation.ClearIntents()
	return _u
}

// RemoveIntentIDs removes the "intents" edge to Intent entities by IDs.
func (_u *SearchQueryUpdate) RemoveIntentIDs(ids ...int) *SearchQueryUpdate {
	_u.mutation.RemoveIntentIDs(ids...)
	return _u
}

// RemoveIntents removes "intents" edges to Intent entities.
func (_u *SearchQueryUpdate) RemoveIntents(v ...*Intent) *SearchQueryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIntentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchQueryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SearchQueryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := searchquery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SearchQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchquery.Table, searchquery.Columns, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(searchquery.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalValue(); ok {
		_spec.SetField(searchquery.FieldOriginalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(searchquery.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(searchquery.FieldFiletype, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(searchquery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIntentsIDs(); len(nodes) > 0 && !_u.mutation.IntentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchQueryUpdateOne is the builder for updating a single SearchQuery entity.
type SearchQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchQueryMutation
}

// SetValue sets the "value" field.
func (_u *SearchQueryUpdateOne) SetValue(v string) *SearchQueryUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableValue(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetOriginalValue sets the "original_value" field.
func (_u *SearchQueryUpdateOne) SetOriginalValue(v string) *SearchQueryUpdateOne {
	_u.mutation.SetOriginalValue(v)
	return _u
}

// SetNillableOriginalValue sets the "original_value" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableOriginalValue(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetOriginalValue(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SearchQueryUpdateOne) SetLanguage(v string) *SearchQueryUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableLanguage(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *SearchQueryUpdateOne) SetFiletype(v string) *SearchQueryUpdateOne {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableFiletype(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SearchQueryUpdateOne) SetUpdatedAt(v time.Time) *SearchQueryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIntentIDs adds the "intents" edge to the Intent entity by IDs.
func (_u *SearchQueryUpdateOne) AddIntentIDs(ids ...int) *SearchQueryUpdateOne {
	_u.mutation.AddIntentIDs(ids...)
	return _u
}

// AddIntents adds the "intents" edges to the Intent entity.
func (_u *SearchQueryUpdateOne) AddIntents(v ...*Intent) *SearchQueryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIntentIDs(ids...)
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_u *SearchQueryUpdateOne) Mutation() *SearchQueryMutation {
	return _u.mutation
}

// ClearIntents clears all "intents" edges to the Intent entity.
func (_u *SearchQueryUpdateOne) ClearIntents() *SearchQueryUpdateOne {
	_u.mutation.ClearIntents()
	return _u
}

// RemoveIntentIDs removes the "intents" edge to Intent entities by IDs.
func (_u *SearchQueryUpdateOne) RemoveIntentIDs(ids ...int) *SearchQueryUpdateOne {
	_u.mutation.RemoveIntentIDs(ids...)
	return _u
}

// RemoveIntents removes "intents" edges to Intent entities.
func (_u *SearchQueryUpdateOne) RemoveIntents(v ...*Intent) *SearchQueryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIntentIDs(ids...)
}

// Where appends a list predicates to the SearchQueryUpdate builder.
func (_u *SearchQueryUpdateOne) Where(ps ...predicate.SearchQuery) *SearchQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchQueryUpdateOne) Select(field string, fields ...string) *SearchQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchQuery entity.
func (_u *SearchQueryUpdateOne) Save(ctx context.Context) (*SearchQuery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchQueryUpdateOne) SaveX(ctx context.Context) *SearchQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SearchQueryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := searchquery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SearchQueryUpdateOne) sqlSave(ctx context.Context) (_node *SearchQuery, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchquery.Table, searchquery.Columns, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchquery.FieldID)
		for _, f := range fields {
			if !searchquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchquery.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(searchquery.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalValue(); ok {
		_spec.SetField(searchquery.FieldOriginalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(searchquery.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(searchquery.FieldFiletype, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(searchquery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIntentsIDs(); len(nodes) > 0 && !_u.mutation.IntentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   searchquery.IntentsTable,
			Columns: searchquery.IntentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SearchQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
