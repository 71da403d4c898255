// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// IntentUpdate is the builder for updating Intent entities.
type IntentUpdate struct {
	config
	hooks    []Hook
	mutation *IntentMutation
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdate) Where(ps ...predicate.Intent) *IntentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntentText sets the "intent_text" field.
func (_u *IntentUpdate) SetIntentText(v string) *IntentUpdate {
	_u.mutation.SetIntentText(v)
	return _u
}

// SetNillableIntentText sets the "intent_text" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableIntentText(v *string) *IntentUpdate {
	if v != nil {
		_u.SetIntentText(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IntentUpdate) SetTitle(v string) *IntentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableTitle(v *string) *IntentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IntentUpdate) SetSummary(v string) *IntentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableSummary(v *string) *IntentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IntentUpdate) ClearSummary() *IntentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *IntentUpdate) SetFiletype(v string) *IntentUpdate {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableFiletype(v *string) *IntentUpdate {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// AddQueryIDs adds the "queries" edge to the SearchQuery entity by IDs.
func (_u *IntentUpdate) AddQueryIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the SearchQuery entity.
func (_u *IntentUpdate) AddQueries(v ...*SearchQuery) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddArticleIDs adds the "articles" edge to the Article entity by IDs.
func (_u *IntentUpdate) AddArticleIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddArticleIDs(ids...)
	return _u
}

// AddArticles adds the "articles" edges to the Article entity.
func (_u *IntentUpdate) AddArticles(v ...*Article) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticleIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdate) Mutation() *IntentMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the SearchQuery entity.
func (_u *IntentUpdate) ClearQueries() *IntentUpdate {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to SearchQuery entities by IDs.
func (_u *IntentUpdate) RemoveQueryIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to SearchQuery entities.
func (_u *IntentUpdate) RemoveQueries(v ...*SearchQuery) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearArticles clears all "articles" edges to the Article entity.
func (_u *IntentUpdate) ClearArticles() *IntentUpdate {
	_u.mutation.ClearArticles()
	return _u
}

// RemoveArticleIDs removes the "articles" edge to Article entities by IDs.
func (_u *IntentUpdate) RemoveArticleIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveArticleIDs(ids...)
	return _u
}

// RemoveArticles removes "articles" edges to Article entities.
func (_u *IntentUpdate) RemoveArticles(v ...*Article) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IntentText(); ok {
		_spec.SetField(intent.FieldIntentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(intent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(intent.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(intent.FieldFiletype, field.TypeString, value)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticlesIDs(); len(nodes) > 0 && !_u.mutation.ArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntentUpdateOne is the builder for updating a single Intent entity.
type IntentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntentMutation
}

// SetIntentText sets the "intent_text" field.
func (_u *IntentUpdateOne) SetIntentText(v string) *IntentUpdateOne {
	_u.mutation.SetIntentText(v)
	return _u
}

// SetNillableIntentText sets the "intent_text" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableIntentText(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetIntentText(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IntentUpdateOne) SetTitle(v string) *IntentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableTitle(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IntentUpdateOne) SetSummary(v string) *IntentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableSummary(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IntentUpdateOne) ClearSummary() *IntentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *IntentUpdateOne) SetFiletype(v string) *IntentUpdateOne {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableFiletype(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// AddQueryIDs adds the "queries" edge to the SearchQuery entity by IDs.
func (_u *IntentUpdateOne) AddQueryIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the SearchQuery entity.
func (_u *IntentUpdateOne) AddQueries(v ...*SearchQuery) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddArticleIDs adds the "articles" edge to the Article entity by IDs.
func (_u *IntentUpdateOne) AddArticleIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddArticleIDs(ids...)
	return _u
}

// AddArticles adds the "articles" edges to the Article entity.
func (_u *IntentUpdateOne) AddArticles(v ...*Article) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticleIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdateOne) Mutation() *IntentMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the SearchQuery entity.
func (_u *IntentUpdateOne) ClearQueries() *IntentUpdateOne {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to SearchQuery entities by IDs.
func (_u *IntentUpdateOne) RemoveQueryIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to SearchQuery entities.
func (_u *IntentUpdateOne) RemoveQueries(v ...*SearchQuery) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearArticles clears all "articles" edges to the Article entity.
func (_u *IntentUpdateOne) ClearArticles() *IntentUpdateOne {
	_u.mutation.ClearArticles()
	return _u
}

// RemoveArticleIDs removes the "articles" edge to Article entities by IDs.
func (_u *IntentUpdateOne) RemoveArticleIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveArticleIDs(ids...)
	return _u
}

// RemoveArticles removes "articles" edges to Article entities.
func (_u *IntentUpdateOne) RemoveArticles(v ...*Article) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticleIDs(ids...)
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdateOne) Where(ps ...predicate.Intent) *IntentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntentUpdateOne) Select(field string, fields ...string) *IntentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intent entity.
func (_u *IntentUpdateOne) Save(ctx context.Context) (*Intent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdateOne) SaveX(ctx context.Context) *Intent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntentUpdateOne) sqlSave(ctx context.Context) (_node *Intent, err error) {
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Intent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intent.FieldID)
		for _, f := range fields {
			if !intent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intent.FieldID {
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
	if value, ok := _u.mutation.IntentText(); ok {
		_spec.SetField(intent.FieldIntentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(intent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(intent.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(intent.FieldFiletype, field.TypeString, value)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   intent.QueriesTable,
			Columns: intent.QueriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticlesIDs(); len(nodes) > 0 && !_u.mutation.ArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.ArticlesTable,
			Columns: []string{intent.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Intent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
