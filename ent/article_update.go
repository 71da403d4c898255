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
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ArticleUpdate is the builder for updating Article entities.
type ArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleMutation
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdate) Where(ps ...predicate.Article) *ArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *ArticleUpdate) SetIntentID(v int) *ArticleUpdate {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableIntentID(v *int) *ArticleUpdate {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleUpdate) SetTitle(v string) *ArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableTitle(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ArticleUpdate) SetSlug(v string) *ArticleUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSlug(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleUpdate) SetSummary(v string) *ArticleUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSummary(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArticleUpdate) ClearSummary() *ArticleUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetContent sets the "content" field.
func (_u *ArticleUpdate) SetContent(v string) *ArticleUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableContent(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ArticleUpdate) ClearContent() *ArticleUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *ArticleUpdate) SetFiletype(v string) *ArticleUpdate {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableFiletype(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *ArticleUpdate) SetGeneratedBy(v string) *ArticleUpdate {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableGeneratedBy(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (_u *ArticleUpdate) ClearGeneratedBy() *ArticleUpdate {
	_u.mutation.ClearGeneratedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArticleUpdate) SetStatus(v article.Status) *ArticleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableStatus(v *article.Status) *ArticleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdate) SetUpdatedAt(v time.Time) *ArticleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_u *ArticleUpdate) SetIntent(v *Intent) *ArticleUpdate {
	return _u.SetIntentID(v.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdate) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (_u *ArticleUpdate) ClearIntent() *ArticleUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := article.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Article.status": %w`, err)}
		}
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.intent"`)
	}
	return nil
}

func (_u *ArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(article.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(article.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(article.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(article.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(article.FieldFiletype, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(article.FieldGeneratedBy, field.TypeString, value)
	}
	if _u.mutation.GeneratedByCleared() {
		_spec.ClearField(article.FieldGeneratedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(article.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.IntentTable,
			Columns: []string{article.IntentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.IntentTable,
			Columns: []string{article.IntentColumn},
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
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleUpdateOne is the builder for updating a single Article entity.
type ArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleMutation
}

// SetIntentID sets the "intent_id" field.
func (_u *ArticleUpdateOne) SetIntentID(v int) *ArticleUpdateOne {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableIntentID(v *int) *ArticleUpdateOne {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleUpdateOne) SetTitle(v string) *ArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableTitle(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ArticleUpdateOne) SetSlug(v string) *ArticleUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSlug(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleUpdateOne) SetSummary(v string) *ArticleUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSummary(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArticleUpdateOne) ClearSummary() *ArticleUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetContent sets the "content" field.
func (_u *ArticleUpdateOne) SetContent(v string) *ArticleUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableContent(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ArticleUpdateOne) ClearContent() *ArticleUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetFiletype sets the "filetype" field.
func (_u *ArticleUpdateOne) SetFiletype(v string) *ArticleUpdateOne {
	_u.mutation.SetFiletype(v)
	return _u
}

// SetNillableFiletype sets the "filetype" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableFiletype(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetFiletype(*v)
	}
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *ArticleUpdateOne) SetGeneratedBy(v string) *ArticleUpdateOne {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableGeneratedBy(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (_u *ArticleUpdateOne) ClearGeneratedBy() *ArticleUpdateOne {
	_u.mutation.ClearGeneratedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArticleUpdateOne) SetStatus(v article.Status) *ArticleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableStatus(v *article.Status) *ArticleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdateOne) SetUpdatedAt(v time.Time) *ArticleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_u *ArticleUpdateOne) SetIntent(v *Intent) *ArticleUpdateOne {
	return _u.SetIntentID(v.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdateOne) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (_u *ArticleUpdateOne) ClearIntent() *ArticleUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdateOne) Where(ps ...predicate.Article) *ArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleUpdateOne) Select(field string, fields ...string) *ArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Article entity.
func (_u *ArticleUpdateOne) Save(ctx context.Context) (*Article, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdateOne) SaveX(ctx context.Context) *Article {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := article.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Article.status": %w`, err)}
		}
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.intent"`)
	}
	return nil
}

func (_u *ArticleUpdateOne) sqlSave(ctx context.Context) (_node *Article, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Article.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, article.FieldID)
		for _, f := range fields {
			if !article.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != article.FieldID {
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
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(article.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(article.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(article.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(article.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Filetype(); ok {
		_spec.SetField(article.FieldFiletype, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(article.FieldGeneratedBy, field.TypeString, value)
	}
	if _u.mutation.GeneratedByCleared() {
		_spec.ClearField(article.FieldGeneratedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(article.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.IntentTable,
			Columns: []string{article.IntentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.IntentTable,
			Columns: []string{article.IntentColumn},
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
	_node = &Article{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
