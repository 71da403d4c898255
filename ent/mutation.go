// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/generationrun"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/ent/llmfailure"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
	"github.com/lumenlabs/lumen/ent/orderevent"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/runtimesetting"
	"github.com/lumenlabs/lumen/ent/searchquery"
	"github.com/lumenlabs/lumen/ent/spellentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticle         = "Article"
	TypeGenerationOrder = "GenerationOrder"
	TypeGenerationRun   = "GenerationRun"
	TypeIntent          = "Intent"
	TypeLLMFailure      = "LLMFailure"
	TypeLease           = "Lease"
	TypeMailAttachment  = "MailAttachment"
	TypeMailReply       = "MailReply"
	TypeMailThread      = "MailThread"
	TypeOrderEvent      = "OrderEvent"
	TypeOrderLog        = "OrderLog"
	TypeRuntimeSetting  = "RuntimeSetting"
	TypeSearchQuery     = "SearchQuery"
	TypeSpellEntry      = "SpellEntry"
)

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	title         *string
	slug          *string
	summary       *string
	content       *string
	filetype      *string
	generated_by  *string
	status        *article.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	intent        *int
	clearedintent bool
	done          bool
	oldValue      func(context.Context) (*Article, error)
	predicates    []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id int) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *ArticleMutation) SetIntentID(i int) {
	m.intent = &i
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *ArticleMutation) IntentID() (r int, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldIntentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *ArticleMutation) ResetIntentID() {
	m.intent = nil
}

// SetTitle sets the "title" field.
func (m *ArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArticleMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *ArticleMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ArticleMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ArticleMutation) ResetSlug() {
	m.slug = nil
}

// SetSummary sets the "summary" field.
func (m *ArticleMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArticleMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArticleMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[article.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArticleMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArticleMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, article.FieldSummary)
}

// SetContent sets the "content" field.
func (m *ArticleMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArticleMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *ArticleMutation) ClearContent() {
	m.content = nil
	m.clearedFields[article.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *ArticleMutation) ContentCleared() bool {
	_, ok := m.clearedFields[article.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *ArticleMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, article.FieldContent)
}

// SetFiletype sets the "filetype" field.
func (m *ArticleMutation) SetFiletype(s string) {
	m.filetype = &s
}

// Filetype returns the value of the "filetype" field in the mutation.
func (m *ArticleMutation) Filetype() (r string, exists bool) {
	v := m.filetype
	if v == nil {
		return
	}
	return *v, true
}

// OldFiletype returns the old "filetype" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldFiletype(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiletype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiletype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiletype: %w", err)
	}
	return oldValue.Filetype, nil
}

// ResetFiletype resets all changes to the "filetype" field.
func (m *ArticleMutation) ResetFiletype() {
	m.filetype = nil
}

// SetGeneratedBy sets the "generated_by" field.
func (m *ArticleMutation) SetGeneratedBy(s string) {
	m.generated_by = &s
}

// GeneratedBy returns the value of the "generated_by" field in the mutation.
func (m *ArticleMutation) GeneratedBy() (r string, exists bool) {
	v := m.generated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedBy returns the old "generated_by" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldGeneratedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedBy: %w", err)
	}
	return oldValue.GeneratedBy, nil
}

// ClearGeneratedBy clears the value of the "generated_by" field.
func (m *ArticleMutation) ClearGeneratedBy() {
	m.generated_by = nil
	m.clearedFields[article.FieldGeneratedBy] = struct{}{}
}

// GeneratedByCleared returns if the "generated_by" field was cleared in this mutation.
func (m *ArticleMutation) GeneratedByCleared() bool {
	_, ok := m.clearedFields[article.FieldGeneratedBy]
	return ok
}

// ResetGeneratedBy resets all changes to the "generated_by" field.
func (m *ArticleMutation) ResetGeneratedBy() {
	m.generated_by = nil
	delete(m.clearedFields, article.FieldGeneratedBy)
}

// SetStatus sets the "status" field.
func (m *ArticleMutation) SetStatus(a article.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ArticleMutation) Status() (r article.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldStatus(ctx context.Context) (v article.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ArticleMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArticleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArticleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArticleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *ArticleMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[article.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *ArticleMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *ArticleMutation) IntentIDs() (ids []int) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *ArticleMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.intent != nil {
		fields = append(fields, article.FieldIntentID)
	}
	if m.title != nil {
		fields = append(fields, article.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, article.FieldSlug)
	}
	if m.summary != nil {
		fields = append(fields, article.FieldSummary)
	}
	if m.content != nil {
		fields = append(fields, article.FieldContent)
	}
	if m.filetype != nil {
		fields = append(fields, article.FieldFiletype)
	}
	if m.generated_by != nil {
		fields = append(fields, article.FieldGeneratedBy)
	}
	if m.status != nil {
		fields = append(fields, article.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, article.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, article.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldIntentID:
		return m.IntentID()
	case article.FieldTitle:
		return m.Title()
	case article.FieldSlug:
		return m.Slug()
	case article.FieldSummary:
		return m.Summary()
	case article.FieldContent:
		return m.Content()
	case article.FieldFiletype:
		return m.Filetype()
	case article.FieldGeneratedBy:
		return m.GeneratedBy()
	case article.FieldStatus:
		return m.Status()
	case article.FieldCreatedAt:
		return m.CreatedAt()
	case article.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldIntentID:
		return m.OldIntentID(ctx)
	case article.FieldTitle:
		return m.OldTitle(ctx)
	case article.FieldSlug:
		return m.OldSlug(ctx)
	case article.FieldSummary:
		return m.OldSummary(ctx)
	case article.FieldContent:
		return m.OldContent(ctx)
	case article.FieldFiletype:
		return m.OldFiletype(ctx)
	case article.FieldGeneratedBy:
		return m.OldGeneratedBy(ctx)
	case article.FieldStatus:
		return m.OldStatus(ctx)
	case article.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case article.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldIntentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case article.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case article.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case article.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case article.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case article.FieldFiletype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiletype(v)
		return nil
	case article.FieldGeneratedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedBy(v)
		return nil
	case article.FieldStatus:
		v, ok := value.(article.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case article.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case article.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(article.FieldSummary) {
		fields = append(fields, article.FieldSummary)
	}
	if m.FieldCleared(article.FieldContent) {
		fields = append(fields, article.FieldContent)
	}
	if m.FieldCleared(article.FieldGeneratedBy) {
		fields = append(fields, article.FieldGeneratedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	switch name {
	case article.FieldSummary:
		m.ClearSummary()
		return nil
	case article.FieldContent:
		m.ClearContent()
		return nil
	case article.FieldGeneratedBy:
		m.ClearGeneratedBy()
		return nil
	}
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldIntentID:
		m.ResetIntentID()
		return nil
	case article.FieldTitle:
		m.ResetTitle()
		return nil
	case article.FieldSlug:
		m.ResetSlug()
		return nil
	case article.FieldSummary:
		m.ResetSummary()
		return nil
	case article.FieldContent:
		m.ResetContent()
		return nil
	case article.FieldFiletype:
		m.ResetFiletype()
		return nil
	case article.FieldGeneratedBy:
		m.ResetGeneratedBy()
		return nil
	case article.FieldStatus:
		m.ResetStatus()
		return nil
	case article.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case article.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, article.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, article.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case article.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	switch name {
	case article.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	switch name {
	case article.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown Article edge %s", name)
}

// GenerationOrderMutation represents an operation that mutates the GenerationOrder nodes in the graph.
type GenerationOrderMutation struct {
	config
	op              Op
	typ             string
	id              *int
	query_id        *int
	addquery_id     *int
	kind            *generationorder.Kind
	intent_id       *int
	addintent_id    *int
	article_id      *int
	addarticle_id   *int
	status          *generationorder.Status
	requested_by    *generationorder.RequestedBy
	request_payload *map[string]interface{}
	result_summary  *string
	error_message   *string
	created_at      *time.Time
	started_at      *time.Time
	finished_at     *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*GenerationOrder, error)
	predicates      []predicate.GenerationOrder
}

var _ ent.Mutation = (*GenerationOrderMutation)(nil)

// generationorderOption allows management of the mutation configuration using functional options.
type generationorderOption func(*GenerationOrderMutation)

// newGenerationOrderMutation creates new mutation for the GenerationOrder entity.
func newGenerationOrderMutation(c config, op Op, opts ...generationorderOption) *GenerationOrderMutation {
	m := &GenerationOrderMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationOrderID sets the ID field of the mutation.
func withGenerationOrderID(id int) generationorderOption {
	return func(m *GenerationOrderMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationOrder
		)
		m.oldValue = func(ctx context.Context) (*GenerationOrder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationOrder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationOrder sets the old GenerationOrder of the mutation.
func withGenerationOrder(node *GenerationOrder) generationorderOption {
	return func(m *GenerationOrderMutation) {
		m.oldValue = func(context.Context) (*GenerationOrder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationOrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationOrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationOrderMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationOrderMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationOrder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueryID sets the "query_id" field.
func (m *GenerationOrderMutation) SetQueryID(i int) {
	m.query_id = &i
	m.addquery_id = nil
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *GenerationOrderMutation) QueryID() (r int, exists bool) {
	v := m.query_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldQueryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// AddQueryID adds i to the "query_id" field.
func (m *GenerationOrderMutation) AddQueryID(i int) {
	if m.addquery_id != nil {
		*m.addquery_id += i
	} else {
		m.addquery_id = &i
	}
}

// AddedQueryID returns the value that was added to the "query_id" field in this mutation.
func (m *GenerationOrderMutation) AddedQueryID() (r int, exists bool) {
	v := m.addquery_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearQueryID clears the value of the "query_id" field.
func (m *GenerationOrderMutation) ClearQueryID() {
	m.query_id = nil
	m.addquery_id = nil
	m.clearedFields[generationorder.FieldQueryID] = struct{}{}
}

// QueryIDCleared returns if the "query_id" field was cleared in this mutation.
func (m *GenerationOrderMutation) QueryIDCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldQueryID]
	return ok
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *GenerationOrderMutation) ResetQueryID() {
	m.query_id = nil
	m.addquery_id = nil
	delete(m.clearedFields, generationorder.FieldQueryID)
}

// SetKind sets the "kind" field.
func (m *GenerationOrderMutation) SetKind(ge generationorder.Kind) {
	m.kind = &ge
}

// Kind returns the value of the "kind" field in the mutation.
func (m *GenerationOrderMutation) Kind() (r generationorder.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldKind(ctx context.Context) (v generationorder.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *GenerationOrderMutation) ResetKind() {
	m.kind = nil
}

// SetIntentID sets the "intent_id" field.
func (m *GenerationOrderMutation) SetIntentID(i int) {
	m.intent_id = &i
	m.addintent_id = nil
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *GenerationOrderMutation) IntentID() (r int, exists bool) {
	v := m.intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldIntentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// AddIntentID adds i to the "intent_id" field.
func (m *GenerationOrderMutation) AddIntentID(i int) {
	if m.addintent_id != nil {
		*m.addintent_id += i
	} else {
		m.addintent_id = &i
	}
}

// AddedIntentID returns the value that was added to the "intent_id" field in this mutation.
func (m *GenerationOrderMutation) AddedIntentID() (r int, exists bool) {
	v := m.addintent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearIntentID clears the value of the "intent_id" field.
func (m *GenerationOrderMutation) ClearIntentID() {
	m.intent_id = nil
	m.addintent_id = nil
	m.clearedFields[generationorder.FieldIntentID] = struct{}{}
}

// IntentIDCleared returns if the "intent_id" field was cleared in this mutation.
func (m *GenerationOrderMutation) IntentIDCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldIntentID]
	return ok
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *GenerationOrderMutation) ResetIntentID() {
	m.intent_id = nil
	m.addintent_id = nil
	delete(m.clearedFields, generationorder.FieldIntentID)
}

// SetArticleID sets the "article_id" field.
func (m *GenerationOrderMutation) SetArticleID(i int) {
	m.article_id = &i
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *GenerationOrderMutation) ArticleID() (r int, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldArticleID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds i to the "article_id" field.
func (m *GenerationOrderMutation) AddArticleID(i int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += i
	} else {
		m.addarticle_id = &i
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *GenerationOrderMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearArticleID clears the value of the "article_id" field.
func (m *GenerationOrderMutation) ClearArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	m.clearedFields[generationorder.FieldArticleID] = struct{}{}
}

// ArticleIDCleared returns if the "article_id" field was cleared in this mutation.
func (m *GenerationOrderMutation) ArticleIDCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldArticleID]
	return ok
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *GenerationOrderMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	delete(m.clearedFields, generationorder.FieldArticleID)
}

// SetStatus sets the "status" field.
func (m *GenerationOrderMutation) SetStatus(ge generationorder.Status) {
	m.status = &ge
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationOrderMutation) Status() (r generationorder.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldStatus(ctx context.Context) (v generationorder.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GenerationOrderMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *GenerationOrderMutation) SetRequestedBy(gb generationorder.RequestedBy) {
	m.requested_by = &gb
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *GenerationOrderMutation) RequestedBy() (r generationorder.RequestedBy, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldRequestedBy(ctx context.Context) (v generationorder.RequestedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *GenerationOrderMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetRequestPayload sets the "request_payload" field.
func (m *GenerationOrderMutation) SetRequestPayload(value map[string]interface{}) {
	m.request_payload = &value
}

// RequestPayload returns the value of the "request_payload" field in the mutation.
func (m *GenerationOrderMutation) RequestPayload() (r map[string]interface{}, exists bool) {
	v := m.request_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestPayload returns the old "request_payload" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldRequestPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestPayload: %w", err)
	}
	return oldValue.RequestPayload, nil
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (m *GenerationOrderMutation) ClearRequestPayload() {
	m.request_payload = nil
	m.clearedFields[generationorder.FieldRequestPayload] = struct{}{}
}

// RequestPayloadCleared returns if the "request_payload" field was cleared in this mutation.
func (m *GenerationOrderMutation) RequestPayloadCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldRequestPayload]
	return ok
}

// ResetRequestPayload resets all changes to the "request_payload" field.
func (m *GenerationOrderMutation) ResetRequestPayload() {
	m.request_payload = nil
	delete(m.clearedFields, generationorder.FieldRequestPayload)
}

// SetResultSummary sets the "result_summary" field.
func (m *GenerationOrderMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *GenerationOrderMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldResultSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *GenerationOrderMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[generationorder.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *GenerationOrderMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *GenerationOrderMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, generationorder.FieldResultSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationOrderMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationOrderMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GenerationOrderMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generationorder.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GenerationOrderMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationOrderMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generationorder.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationOrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationOrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationOrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GenerationOrderMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GenerationOrderMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *GenerationOrderMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[generationorder.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *GenerationOrderMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GenerationOrderMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, generationorder.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *GenerationOrderMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *GenerationOrderMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *GenerationOrderMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[generationorder.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *GenerationOrderMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[generationorder.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *GenerationOrderMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, generationorder.FieldFinishedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GenerationOrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GenerationOrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GenerationOrder entity.
// If the GenerationOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationOrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GenerationOrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GenerationOrderMutation builder.
func (m *GenerationOrderMutation) Where(ps ...predicate.GenerationOrder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationOrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationOrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationOrder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationOrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationOrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationOrder).
func (m *GenerationOrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationOrderMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.query_id != nil {
		fields = append(fields, generationorder.FieldQueryID)
	}
	if m.kind != nil {
		fields = append(fields, generationorder.FieldKind)
	}
	if m.intent_id != nil {
		fields = append(fields, generationorder.FieldIntentID)
	}
	if m.article_id != nil {
		fields = append(fields, generationorder.FieldArticleID)
	}
	if m.status != nil {
		fields = append(fields, generationorder.FieldStatus)
	}
	if m.requested_by != nil {
		fields = append(fields, generationorder.FieldRequestedBy)
	}
	if m.request_payload != nil {
		fields = append(fields, generationorder.FieldRequestPayload)
	}
	if m.result_summary != nil {
		fields = append(fields, generationorder.FieldResultSummary)
	}
	if m.error_message != nil {
		fields = append(fields, generationorder.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, generationorder.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, generationorder.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, generationorder.FieldFinishedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, generationorder.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationOrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationorder.FieldQueryID:
		return m.QueryID()
	case generationorder.FieldKind:
		return m.Kind()
	case generationorder.FieldIntentID:
		return m.IntentID()
	case generationorder.FieldArticleID:
		return m.ArticleID()
	case generationorder.FieldStatus:
		return m.Status()
	case generationorder.FieldRequestedBy:
		return m.RequestedBy()
	case generationorder.FieldRequestPayload:
		return m.RequestPayload()
	case generationorder.FieldResultSummary:
		return m.ResultSummary()
	case generationorder.FieldErrorMessage:
		return m.ErrorMessage()
	case generationorder.FieldCreatedAt:
		return m.CreatedAt()
	case generationorder.FieldStartedAt:
		return m.StartedAt()
	case generationorder.FieldFinishedAt:
		return m.FinishedAt()
	case generationorder.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationOrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationorder.FieldQueryID:
		return m.OldQueryID(ctx)
	case generationorder.FieldKind:
		return m.OldKind(ctx)
	case generationorder.FieldIntentID:
		return m.OldIntentID(ctx)
	case generationorder.FieldArticleID:
		return m.OldArticleID(ctx)
	case generationorder.FieldStatus:
		return m.OldStatus(ctx)
	case generationorder.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case generationorder.FieldRequestPayload:
		return m.OldRequestPayload(ctx)
	case generationorder.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case generationorder.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generationorder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generationorder.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case generationorder.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case generationorder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationOrder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationOrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationorder.FieldQueryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case generationorder.FieldKind:
		v, ok := value.(generationorder.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case generationorder.FieldIntentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case generationorder.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case generationorder.FieldStatus:
		v, ok := value.(generationorder.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationorder.FieldRequestedBy:
		v, ok := value.(generationorder.RequestedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case generationorder.FieldRequestPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestPayload(v)
		return nil
	case generationorder.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case generationorder.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generationorder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generationorder.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case generationorder.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case generationorder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationOrder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationOrderMutation) AddedFields() []string {
	var fields []string
	if m.addquery_id != nil {
		fields = append(fields, generationorder.FieldQueryID)
	}
	if m.addintent_id != nil {
		fields = append(fields, generationorder.FieldIntentID)
	}
	if m.addarticle_id != nil {
		fields = append(fields, generationorder.FieldArticleID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationOrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationorder.FieldQueryID:
		return m.AddedQueryID()
	case generationorder.FieldIntentID:
		return m.AddedIntentID()
	case generationorder.FieldArticleID:
		return m.AddedArticleID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationOrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationorder.FieldQueryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueryID(v)
		return nil
	case generationorder.FieldIntentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentID(v)
		return nil
	case generationorder.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationOrder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationOrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationorder.FieldQueryID) {
		fields = append(fields, generationorder.FieldQueryID)
	}
	if m.FieldCleared(generationorder.FieldIntentID) {
		fields = append(fields, generationorder.FieldIntentID)
	}
	if m.FieldCleared(generationorder.FieldArticleID) {
		fields = append(fields, generationorder.FieldArticleID)
	}
	if m.FieldCleared(generationorder.FieldRequestPayload) {
		fields = append(fields, generationorder.FieldRequestPayload)
	}
	if m.FieldCleared(generationorder.FieldResultSummary) {
		fields = append(fields, generationorder.FieldResultSummary)
	}
	if m.FieldCleared(generationorder.FieldErrorMessage) {
		fields = append(fields, generationorder.FieldErrorMessage)
	}
	if m.FieldCleared(generationorder.FieldStartedAt) {
		fields = append(fields, generationorder.FieldStartedAt)
	}
	if m.FieldCleared(generationorder.FieldFinishedAt) {
		fields = append(fields, generationorder.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationOrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationOrderMutation) ClearField(name string) error {
	switch name {
	case generationorder.FieldQueryID:
		m.ClearQueryID()
		return nil
	case generationorder.FieldIntentID:
		m.ClearIntentID()
		return nil
	case generationorder.FieldArticleID:
		m.ClearArticleID()
		return nil
	case generationorder.FieldRequestPayload:
		m.ClearRequestPayload()
		return nil
	case generationorder.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case generationorder.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case generationorder.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case generationorder.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationOrder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationOrderMutation) ResetField(name string) error {
	switch name {
	case generationorder.FieldQueryID:
		m.ResetQueryID()
		return nil
	case generationorder.FieldKind:
		m.ResetKind()
		return nil
	case generationorder.FieldIntentID:
		m.ResetIntentID()
		return nil
	case generationorder.FieldArticleID:
		m.ResetArticleID()
		return nil
	case generationorder.FieldStatus:
		m.ResetStatus()
		return nil
	case generationorder.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case generationorder.FieldRequestPayload:
		m.ResetRequestPayload()
		return nil
	case generationorder.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case generationorder.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generationorder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generationorder.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case generationorder.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case generationorder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationOrder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationOrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationOrderMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationOrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationOrderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationOrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationOrderMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationOrderMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationOrder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationOrderMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationOrder edge %s", name)
}

// GenerationRunMutation represents an operation that mutates the GenerationRun nodes in the graph.
type GenerationRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	order_id           *int
	addorder_id        *int
	article_id         *int
	addarticle_id      *int
	kind               *generationrun.Kind
	status             *generationrun.Status
	attempts           *int
	addattempts        *int
	duration_ms        *int64
	addduration_ms     *int64
	llm_duration_ms    *int64
	addllm_duration_ms *int64
	error_message      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GenerationRun, error)
	predicates         []predicate.GenerationRun
}

var _ ent.Mutation = (*GenerationRunMutation)(nil)

// generationrunOption allows management of the mutation configuration using functional options.
type generationrunOption func(*GenerationRunMutation)

// newGenerationRunMutation creates new mutation for the GenerationRun entity.
func newGenerationRunMutation(c config, op Op, opts ...generationrunOption) *GenerationRunMutation {
	m := &GenerationRunMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationRunID sets the ID field of the mutation.
func withGenerationRunID(id int) generationrunOption {
	return func(m *GenerationRunMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationRun
		)
		m.oldValue = func(ctx context.Context) (*GenerationRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationRun sets the old GenerationRun of the mutation.
func withGenerationRun(node *GenerationRun) generationrunOption {
	return func(m *GenerationRunMutation) {
		m.oldValue = func(context.Context) (*GenerationRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *GenerationRunMutation) SetOrderID(i int) {
	m.order_id = &i
	m.addorder_id = nil
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *GenerationRunMutation) OrderID() (r int, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldOrderID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// AddOrderID adds i to the "order_id" field.
func (m *GenerationRunMutation) AddOrderID(i int) {
	if m.addorder_id != nil {
		*m.addorder_id += i
	} else {
		m.addorder_id = &i
	}
}

// AddedOrderID returns the value that was added to the "order_id" field in this mutation.
func (m *GenerationRunMutation) AddedOrderID() (r int, exists bool) {
	v := m.addorder_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearOrderID clears the value of the "order_id" field.
func (m *GenerationRunMutation) ClearOrderID() {
	m.order_id = nil
	m.addorder_id = nil
	m.clearedFields[generationrun.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *GenerationRunMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[generationrun.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *GenerationRunMutation) ResetOrderID() {
	m.order_id = nil
	m.addorder_id = nil
	delete(m.clearedFields, generationrun.FieldOrderID)
}

// SetArticleID sets the "article_id" field.
func (m *GenerationRunMutation) SetArticleID(i int) {
	m.article_id = &i
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *GenerationRunMutation) ArticleID() (r int, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldArticleID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds i to the "article_id" field.
func (m *GenerationRunMutation) AddArticleID(i int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += i
	} else {
		m.addarticle_id = &i
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *GenerationRunMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearArticleID clears the value of the "article_id" field.
func (m *GenerationRunMutation) ClearArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	m.clearedFields[generationrun.FieldArticleID] = struct{}{}
}

// ArticleIDCleared returns if the "article_id" field was cleared in this mutation.
func (m *GenerationRunMutation) ArticleIDCleared() bool {
	_, ok := m.clearedFields[generationrun.FieldArticleID]
	return ok
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *GenerationRunMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	delete(m.clearedFields, generationrun.FieldArticleID)
}

// SetKind sets the "kind" field.
func (m *GenerationRunMutation) SetKind(ge generationrun.Kind) {
	m.kind = &ge
}

// Kind returns the value of the "kind" field in the mutation.
func (m *GenerationRunMutation) Kind() (r generationrun.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldKind(ctx context.Context) (v generationrun.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *GenerationRunMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *GenerationRunMutation) SetStatus(ge generationrun.Status) {
	m.status = &ge
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationRunMutation) Status() (r generationrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldStatus(ctx context.Context) (v generationrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GenerationRunMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *GenerationRunMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *GenerationRunMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *GenerationRunMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *GenerationRunMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *GenerationRunMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *GenerationRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *GenerationRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *GenerationRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *GenerationRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *GenerationRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetLlmDurationMs sets the "llm_duration_ms" field.
func (m *GenerationRunMutation) SetLlmDurationMs(i int64) {
	m.llm_duration_ms = &i
	m.addllm_duration_ms = nil
}

// LlmDurationMs returns the value of the "llm_duration_ms" field in the mutation.
func (m *GenerationRunMutation) LlmDurationMs() (r int64, exists bool) {
	v := m.llm_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmDurationMs returns the old "llm_duration_ms" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldLlmDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmDurationMs: %w", err)
	}
	return oldValue.LlmDurationMs, nil
}

// AddLlmDurationMs adds i to the "llm_duration_ms" field.
func (m *GenerationRunMutation) AddLlmDurationMs(i int64) {
	if m.addllm_duration_ms != nil {
		*m.addllm_duration_ms += i
	} else {
		m.addllm_duration_ms = &i
	}
}

// AddedLlmDurationMs returns the value that was added to the "llm_duration_ms" field in this mutation.
func (m *GenerationRunMutation) AddedLlmDurationMs() (r int64, exists bool) {
	v := m.addllm_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmDurationMs resets all changes to the "llm_duration_ms" field.
func (m *GenerationRunMutation) ResetLlmDurationMs() {
	m.llm_duration_ms = nil
	m.addllm_duration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GenerationRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generationrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GenerationRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generationrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generationrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GenerationRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GenerationRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GenerationRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GenerationRunMutation builder.
func (m *GenerationRunMutation) Where(ps ...predicate.GenerationRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationRun).
func (m *GenerationRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.order_id != nil {
		fields = append(fields, generationrun.FieldOrderID)
	}
	if m.article_id != nil {
		fields = append(fields, generationrun.FieldArticleID)
	}
	if m.kind != nil {
		fields = append(fields, generationrun.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, generationrun.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, generationrun.FieldAttempts)
	}
	if m.duration_ms != nil {
		fields = append(fields, generationrun.FieldDurationMs)
	}
	if m.llm_duration_ms != nil {
		fields = append(fields, generationrun.FieldLlmDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, generationrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, generationrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, generationrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationrun.FieldOrderID:
		return m.OrderID()
	case generationrun.FieldArticleID:
		return m.ArticleID()
	case generationrun.FieldKind:
		return m.Kind()
	case generationrun.FieldStatus:
		return m.Status()
	case generationrun.FieldAttempts:
		return m.Attempts()
	case generationrun.FieldDurationMs:
		return m.DurationMs()
	case generationrun.FieldLlmDurationMs:
		return m.LlmDurationMs()
	case generationrun.FieldErrorMessage:
		return m.ErrorMessage()
	case generationrun.FieldCreatedAt:
		return m.CreatedAt()
	case generationrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationrun.FieldOrderID:
		return m.OldOrderID(ctx)
	case generationrun.FieldArticleID:
		return m.OldArticleID(ctx)
	case generationrun.FieldKind:
		return m.OldKind(ctx)
	case generationrun.FieldStatus:
		return m.OldStatus(ctx)
	case generationrun.FieldAttempts:
		return m.OldAttempts(ctx)
	case generationrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case generationrun.FieldLlmDurationMs:
		return m.OldLlmDurationMs(ctx)
	case generationrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generationrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generationrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationrun.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case generationrun.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case generationrun.FieldKind:
		v, ok := value.(generationrun.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case generationrun.FieldStatus:
		v, ok := value.(generationrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationrun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case generationrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case generationrun.FieldLlmDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmDurationMs(v)
		return nil
	case generationrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generationrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generationrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationRunMutation) AddedFields() []string {
	var fields []string
	if m.addorder_id != nil {
		fields = append(fields, generationrun.FieldOrderID)
	}
	if m.addarticle_id != nil {
		fields = append(fields, generationrun.FieldArticleID)
	}
	if m.addattempts != nil {
		fields = append(fields, generationrun.FieldAttempts)
	}
	if m.addduration_ms != nil {
		fields = append(fields, generationrun.FieldDurationMs)
	}
	if m.addllm_duration_ms != nil {
		fields = append(fields, generationrun.FieldLlmDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationrun.FieldOrderID:
		return m.AddedOrderID()
	case generationrun.FieldArticleID:
		return m.AddedArticleID()
	case generationrun.FieldAttempts:
		return m.AddedAttempts()
	case generationrun.FieldDurationMs:
		return m.AddedDurationMs()
	case generationrun.FieldLlmDurationMs:
		return m.AddedLlmDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationrun.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderID(v)
		return nil
	case generationrun.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case generationrun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case generationrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case generationrun.FieldLlmDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationrun.FieldOrderID) {
		fields = append(fields, generationrun.FieldOrderID)
	}
	if m.FieldCleared(generationrun.FieldArticleID) {
		fields = append(fields, generationrun.FieldArticleID)
	}
	if m.FieldCleared(generationrun.FieldErrorMessage) {
		fields = append(fields, generationrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationRunMutation) ClearField(name string) error {
	switch name {
	case generationrun.FieldOrderID:
		m.ClearOrderID()
		return nil
	case generationrun.FieldArticleID:
		m.ClearArticleID()
		return nil
	case generationrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown GenerationRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationRunMutation) ResetField(name string) error {
	switch name {
	case generationrun.FieldOrderID:
		m.ResetOrderID()
		return nil
	case generationrun.FieldArticleID:
		m.ResetArticleID()
		return nil
	case generationrun.FieldKind:
		m.ResetKind()
		return nil
	case generationrun.FieldStatus:
		m.ResetStatus()
		return nil
	case generationrun.FieldAttempts:
		m.ResetAttempts()
		return nil
	case generationrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case generationrun.FieldLlmDurationMs:
		m.ResetLlmDurationMs()
		return nil
	case generationrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generationrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generationrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationRun edge %s", name)
}

// IntentMutation represents an operation that mutates the Intent nodes in the graph.
type IntentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	intent_text     *string
	title           *string
	summary         *string
	filetype        *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	queries         map[int]struct{}
	removedqueries  map[int]struct{}
	clearedqueries  bool
	articles        map[int]struct{}
	removedarticles map[int]struct{}
	clearedarticles bool
	done            bool
	oldValue        func(context.Context) (*Intent, error)
	predicates      []predicate.Intent
}

var _ ent.Mutation = (*IntentMutation)(nil)

// intentOption allows management of the mutation configuration using functional options.
type intentOption func(*IntentMutation)

// newIntentMutation creates new mutation for the Intent entity.
func newIntentMutation(c config, op Op, opts ...intentOption) *IntentMutation {
	m := &IntentMutation{
		config:        c,
		op:            op,
		typ:           TypeIntent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntentID sets the ID field of the mutation.
func withIntentID(id int) intentOption {
	return func(m *IntentMutation) {
		var (
			err   error
			once  sync.Once
			value *Intent
		)
		m.oldValue = func(ctx context.Context) (*Intent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Intent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntent sets the old Intent of the mutation.
func withIntent(node *Intent) intentOption {
	return func(m *IntentMutation) {
		m.oldValue = func(context.Context) (*Intent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Intent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentText sets the "intent_text" field.
func (m *IntentMutation) SetIntentText(s string) {
	m.intent_text = &s
}

// IntentText returns the value of the "intent_text" field in the mutation.
func (m *IntentMutation) IntentText() (r string, exists bool) {
	v := m.intent_text
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentText returns the old "intent_text" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldIntentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentText: %w", err)
	}
	return oldValue.IntentText, nil
}

// ResetIntentText resets all changes to the "intent_text" field.
func (m *IntentMutation) ResetIntentText() {
	m.intent_text = nil
}

// SetTitle sets the "title" field.
func (m *IntentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IntentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IntentMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *IntentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *IntentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *IntentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[intent.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *IntentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[intent.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *IntentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, intent.FieldSummary)
}

// SetFiletype sets the "filetype" field.
func (m *IntentMutation) SetFiletype(s string) {
	m.filetype = &s
}

// Filetype returns the value of the "filetype" field in the mutation.
func (m *IntentMutation) Filetype() (r string, exists bool) {
	v := m.filetype
	if v == nil {
		return
	}
	return *v, true
}

// OldFiletype returns the old "filetype" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldFiletype(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiletype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiletype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiletype: %w", err)
	}
	return oldValue.Filetype, nil
}

// ResetFiletype resets all changes to the "filetype" field.
func (m *IntentMutation) ResetFiletype() {
	m.filetype = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IntentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddQueryIDs adds the "queries" edge to the SearchQuery entity by ids.
func (m *IntentMutation) AddQueryIDs(ids ...int) {
	if m.queries == nil {
		m.queries = make(map[int]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the SearchQuery entity.
func (m *IntentMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the SearchQuery entity was cleared.
func (m *IntentMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the SearchQuery entity by IDs.
func (m *IntentMutation) RemoveQueryIDs(ids ...int) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the SearchQuery entity.
func (m *IntentMutation) RemovedQueriesIDs() (ids []int) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *IntentMutation) QueriesIDs() (ids []int) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *IntentMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// AddArticleIDs adds the "articles" edge to the Article entity by ids.
func (m *IntentMutation) AddArticleIDs(ids ...int) {
	if m.articles == nil {
		m.articles = make(map[int]struct{})
	}
	for i := range ids {
		m.articles[ids[i]] = struct{}{}
	}
}

// ClearArticles clears the "articles" edge to the Article entity.
func (m *IntentMutation) ClearArticles() {
	m.clearedarticles = true
}

// ArticlesCleared reports if the "articles" edge to the Article entity was cleared.
func (m *IntentMutation) ArticlesCleared() bool {
	return m.clearedarticles
}

// RemoveArticleIDs removes the "articles" edge to the Article entity by IDs.
func (m *IntentMutation) RemoveArticleIDs(ids ...int) {
	if m.removedarticles == nil {
		m.removedarticles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.articles, ids[i])
		m.removedarticles[ids[i]] = struct{}{}
	}
}

// RemovedArticles returns the removed IDs of the "articles" edge to the Article entity.
func (m *IntentMutation) RemovedArticlesIDs() (ids []int) {
	for id := range m.removedarticles {
		ids = append(ids, id)
	}
	return
}

// ArticlesIDs returns the "articles" edge IDs in the mutation.
func (m *IntentMutation) ArticlesIDs() (ids []int) {
	for id := range m.articles {
		ids = append(ids, id)
	}
	return
}

// ResetArticles resets all changes to the "articles" edge.
func (m *IntentMutation) ResetArticles() {
	m.articles = nil
	m.clearedarticles = false
	m.removedarticles = nil
}

// Where appends a list predicates to the IntentMutation builder.
func (m *IntentMutation) Where(ps ...predicate.Intent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Intent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Intent).
func (m *IntentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.intent_text != nil {
		fields = append(fields, intent.FieldIntentText)
	}
	if m.title != nil {
		fields = append(fields, intent.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, intent.FieldSummary)
	}
	if m.filetype != nil {
		fields = append(fields, intent.FieldFiletype)
	}
	if m.created_at != nil {
		fields = append(fields, intent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intent.FieldIntentText:
		return m.IntentText()
	case intent.FieldTitle:
		return m.Title()
	case intent.FieldSummary:
		return m.Summary()
	case intent.FieldFiletype:
		return m.Filetype()
	case intent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intent.FieldIntentText:
		return m.OldIntentText(ctx)
	case intent.FieldTitle:
		return m.OldTitle(ctx)
	case intent.FieldSummary:
		return m.OldSummary(ctx)
	case intent.FieldFiletype:
		return m.OldFiletype(ctx)
	case intent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Intent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intent.FieldIntentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentText(v)
		return nil
	case intent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case intent.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case intent.FieldFiletype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiletype(v)
		return nil
	case intent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Intent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intent.FieldSummary) {
		fields = append(fields, intent.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntentMutation) ClearField(name string) error {
	switch name {
	case intent.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Intent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntentMutation) ResetField(name string) error {
	switch name {
	case intent.FieldIntentText:
		m.ResetIntentText()
		return nil
	case intent.FieldTitle:
		m.ResetTitle()
		return nil
	case intent.FieldSummary:
		m.ResetSummary()
		return nil
	case intent.FieldFiletype:
		m.ResetFiletype()
		return nil
	case intent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.queries != nil {
		edges = append(edges, intent.EdgeQueries)
	}
	if m.articles != nil {
		edges = append(edges, intent.EdgeArticles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intent.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeArticles:
		ids := make([]ent.Value, 0, len(m.articles))
		for id := range m.articles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedqueries != nil {
		edges = append(edges, intent.EdgeQueries)
	}
	if m.removedarticles != nil {
		edges = append(edges, intent.EdgeArticles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case intent.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeArticles:
		ids := make([]ent.Value, 0, len(m.removedarticles))
		for id := range m.removedarticles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedqueries {
		edges = append(edges, intent.EdgeQueries)
	}
	if m.clearedarticles {
		edges = append(edges, intent.EdgeArticles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntentMutation) EdgeCleared(name string) bool {
	switch name {
	case intent.EdgeQueries:
		return m.clearedqueries
	case intent.EdgeArticles:
		return m.clearedarticles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Intent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntentMutation) ResetEdge(name string) error {
	switch name {
	case intent.EdgeQueries:
		m.ResetQueries()
		return nil
	case intent.EdgeArticles:
		m.ResetArticles()
		return nil
	}
	return fmt.Errorf("unknown Intent edge %s", name)
}

// LLMFailureMutation represents an operation that mutates the LLMFailure nodes in the graph.
type LLMFailureMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	component        *string
	trigger          *string
	correlation_id   *string
	attempt          *int
	addattempt       *int
	duration_ms      *int64
	addduration_ms   *int64
	error_name       *string
	error_message    *string
	request_snapshot *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMFailure, error)
	predicates       []predicate.LLMFailure
}

var _ ent.Mutation = (*LLMFailureMutation)(nil)

// llmfailureOption allows management of the mutation configuration using functional options.
type llmfailureOption func(*LLMFailureMutation)

// newLLMFailureMutation creates new mutation for the LLMFailure entity.
func newLLMFailureMutation(c config, op Op, opts ...llmfailureOption) *LLMFailureMutation {
	m := &LLMFailureMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMFailure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMFailureID sets the ID field of the mutation.
func withLLMFailureID(id int) llmfailureOption {
	return func(m *LLMFailureMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMFailure
		)
		m.oldValue = func(ctx context.Context) (*LLMFailure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMFailure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMFailure sets the old LLMFailure of the mutation.
func withLLMFailure(node *LLMFailure) llmfailureOption {
	return func(m *LLMFailureMutation) {
		m.oldValue = func(context.Context) (*LLMFailure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMFailureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMFailureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMFailureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMFailureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMFailure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMFailureMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMFailureMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMFailureMutation) ResetProvider() {
	m.provider = nil
}

// SetComponent sets the "component" field.
func (m *LLMFailureMutation) SetComponent(s string) {
	m.component = &s
}

// Component returns the value of the "component" field in the mutation.
func (m *LLMFailureMutation) Component() (r string, exists bool) {
	v := m.component
	if v == nil {
		return
	}
	return *v, true
}

// OldComponent returns the old "component" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldComponent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponent: %w", err)
	}
	return oldValue.Component, nil
}

// ResetComponent resets all changes to the "component" field.
func (m *LLMFailureMutation) ResetComponent() {
	m.component = nil
}

// SetTrigger sets the "trigger" field.
func (m *LLMFailureMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *LLMFailureMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *LLMFailureMutation) ResetTrigger() {
	m.trigger = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *LLMFailureMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *LLMFailureMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *LLMFailureMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetAttempt sets the "attempt" field.
func (m *LLMFailureMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *LLMFailureMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *LLMFailureMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *LLMFailureMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *LLMFailureMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMFailureMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMFailureMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMFailureMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMFailureMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMFailureMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorName sets the "error_name" field.
func (m *LLMFailureMutation) SetErrorName(s string) {
	m.error_name = &s
}

// ErrorName returns the value of the "error_name" field in the mutation.
func (m *LLMFailureMutation) ErrorName() (r string, exists bool) {
	v := m.error_name
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorName returns the old "error_name" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldErrorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorName: %w", err)
	}
	return oldValue.ErrorName, nil
}

// ResetErrorName resets all changes to the "error_name" field.
func (m *LLMFailureMutation) ResetErrorName() {
	m.error_name = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMFailureMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMFailureMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMFailureMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (m *LLMFailureMutation) SetRequestSnapshot(s string) {
	m.request_snapshot = &s
}

// RequestSnapshot returns the value of the "request_snapshot" field in the mutation.
func (m *LLMFailureMutation) RequestSnapshot() (r string, exists bool) {
	v := m.request_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestSnapshot returns the old "request_snapshot" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldRequestSnapshot(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestSnapshot: %w", err)
	}
	return oldValue.RequestSnapshot, nil
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (m *LLMFailureMutation) ClearRequestSnapshot() {
	m.request_snapshot = nil
	m.clearedFields[llmfailure.FieldRequestSnapshot] = struct{}{}
}

// RequestSnapshotCleared returns if the "request_snapshot" field was cleared in this mutation.
func (m *LLMFailureMutation) RequestSnapshotCleared() bool {
	_, ok := m.clearedFields[llmfailure.FieldRequestSnapshot]
	return ok
}

// ResetRequestSnapshot resets all changes to the "request_snapshot" field.
func (m *LLMFailureMutation) ResetRequestSnapshot() {
	m.request_snapshot = nil
	delete(m.clearedFields, llmfailure.FieldRequestSnapshot)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMFailureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMFailureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMFailure entity.
// If the LLMFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMFailureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMFailureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMFailureMutation builder.
func (m *LLMFailureMutation) Where(ps ...predicate.LLMFailure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMFailureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMFailureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMFailure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMFailureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMFailureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMFailure).
func (m *LLMFailureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMFailureMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.provider != nil {
		fields = append(fields, llmfailure.FieldProvider)
	}
	if m.component != nil {
		fields = append(fields, llmfailure.FieldComponent)
	}
	if m.trigger != nil {
		fields = append(fields, llmfailure.FieldTrigger)
	}
	if m.correlation_id != nil {
		fields = append(fields, llmfailure.FieldCorrelationID)
	}
	if m.attempt != nil {
		fields = append(fields, llmfailure.FieldAttempt)
	}
	if m.duration_ms != nil {
		fields = append(fields, llmfailure.FieldDurationMs)
	}
	if m.error_name != nil {
		fields = append(fields, llmfailure.FieldErrorName)
	}
	if m.error_message != nil {
		fields = append(fields, llmfailure.FieldErrorMessage)
	}
	if m.request_snapshot != nil {
		fields = append(fields, llmfailure.FieldRequestSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, llmfailure.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMFailureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmfailure.FieldProvider:
		return m.Provider()
	case llmfailure.FieldComponent:
		return m.Component()
	case llmfailure.FieldTrigger:
		return m.Trigger()
	case llmfailure.FieldCorrelationID:
		return m.CorrelationID()
	case llmfailure.FieldAttempt:
		return m.Attempt()
	case llmfailure.FieldDurationMs:
		return m.DurationMs()
	case llmfailure.FieldErrorName:
		return m.ErrorName()
	case llmfailure.FieldErrorMessage:
		return m.ErrorMessage()
	case llmfailure.FieldRequestSnapshot:
		return m.RequestSnapshot()
	case llmfailure.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMFailureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmfailure.FieldProvider:
		return m.OldProvider(ctx)
	case llmfailure.FieldComponent:
		return m.OldComponent(ctx)
	case llmfailure.FieldTrigger:
		return m.OldTrigger(ctx)
	case llmfailure.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case llmfailure.FieldAttempt:
		return m.OldAttempt(ctx)
	case llmfailure.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llmfailure.FieldErrorName:
		return m.OldErrorName(ctx)
	case llmfailure.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmfailure.FieldRequestSnapshot:
		return m.OldRequestSnapshot(ctx)
	case llmfailure.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMFailure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMFailureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmfailure.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmfailure.FieldComponent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponent(v)
		return nil
	case llmfailure.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case llmfailure.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case llmfailure.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case llmfailure.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llmfailure.FieldErrorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorName(v)
		return nil
	case llmfailure.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmfailure.FieldRequestSnapshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestSnapshot(v)
		return nil
	case llmfailure.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMFailure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMFailureMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, llmfailure.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llmfailure.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMFailureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmfailure.FieldAttempt:
		return m.AddedAttempt()
	case llmfailure.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMFailureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmfailure.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case llmfailure.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMFailure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMFailureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmfailure.FieldRequestSnapshot) {
		fields = append(fields, llmfailure.FieldRequestSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMFailureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMFailureMutation) ClearField(name string) error {
	switch name {
	case llmfailure.FieldRequestSnapshot:
		m.ClearRequestSnapshot()
		return nil
	}
	return fmt.Errorf("unknown LLMFailure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMFailureMutation) ResetField(name string) error {
	switch name {
	case llmfailure.FieldProvider:
		m.ResetProvider()
		return nil
	case llmfailure.FieldComponent:
		m.ResetComponent()
		return nil
	case llmfailure.FieldTrigger:
		m.ResetTrigger()
		return nil
	case llmfailure.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case llmfailure.FieldAttempt:
		m.ResetAttempt()
		return nil
	case llmfailure.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llmfailure.FieldErrorName:
		m.ResetErrorName()
		return nil
	case llmfailure.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmfailure.FieldRequestSnapshot:
		m.ResetRequestSnapshot()
		return nil
	case llmfailure.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMFailure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMFailureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMFailureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMFailureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMFailureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMFailureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMFailureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMFailureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMFailure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMFailureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMFailure edge %s", name)
}

// LeaseMutation represents an operation that mutates the Lease nodes in the graph.
type LeaseMutation struct {
	config
	op                Op
	typ               string
	id                *int
	scope_type        *lease.ScopeType
	scope_key         *string
	owner_order_id    *int
	addowner_order_id *int
	lease_expires_at  *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Lease, error)
	predicates        []predicate.Lease
}

var _ ent.Mutation = (*LeaseMutation)(nil)

// leaseOption allows management of the mutation configuration using functional options.
type leaseOption func(*LeaseMutation)

// newLeaseMutation creates new mutation for the Lease entity.
func newLeaseMutation(c config, op Op, opts ...leaseOption) *LeaseMutation {
	m := &LeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseID sets the ID field of the mutation.
func withLeaseID(id int) leaseOption {
	return func(m *LeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Lease
		)
		m.oldValue = func(ctx context.Context) (*Lease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLease sets the old Lease of the mutation.
func withLease(node *Lease) leaseOption {
	return func(m *LeaseMutation) {
		m.oldValue = func(context.Context) (*Lease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScopeType sets the "scope_type" field.
func (m *LeaseMutation) SetScopeType(lt lease.ScopeType) {
	m.scope_type = &lt
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *LeaseMutation) ScopeType() (r lease.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldScopeType(ctx context.Context) (v lease.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *LeaseMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeKey sets the "scope_key" field.
func (m *LeaseMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *LeaseMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *LeaseMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetOwnerOrderID sets the "owner_order_id" field.
func (m *LeaseMutation) SetOwnerOrderID(i int) {
	m.owner_order_id = &i
	m.addowner_order_id = nil
}

// OwnerOrderID returns the value of the "owner_order_id" field in the mutation.
func (m *LeaseMutation) OwnerOrderID() (r int, exists bool) {
	v := m.owner_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerOrderID returns the old "owner_order_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldOwnerOrderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerOrderID: %w", err)
	}
	return oldValue.OwnerOrderID, nil
}

// AddOwnerOrderID adds i to the "owner_order_id" field.
func (m *LeaseMutation) AddOwnerOrderID(i int) {
	if m.addowner_order_id != nil {
		*m.addowner_order_id += i
	} else {
		m.addowner_order_id = &i
	}
}

// AddedOwnerOrderID returns the value that was added to the "owner_order_id" field in this mutation.
func (m *LeaseMutation) AddedOwnerOrderID() (r int, exists bool) {
	v := m.addowner_order_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerOrderID resets all changes to the "owner_order_id" field.
func (m *LeaseMutation) ResetOwnerOrderID() {
	m.owner_order_id = nil
	m.addowner_order_id = nil
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *LeaseMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *LeaseMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldLeaseExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *LeaseMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
}

// Where appends a list predicates to the LeaseMutation builder.
func (m *LeaseMutation) Where(ps ...predicate.Lease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lease).
func (m *LeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.scope_type != nil {
		fields = append(fields, lease.FieldScopeType)
	}
	if m.scope_key != nil {
		fields = append(fields, lease.FieldScopeKey)
	}
	if m.owner_order_id != nil {
		fields = append(fields, lease.FieldOwnerOrderID)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, lease.FieldLeaseExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldScopeType:
		return m.ScopeType()
	case lease.FieldScopeKey:
		return m.ScopeKey()
	case lease.FieldOwnerOrderID:
		return m.OwnerOrderID()
	case lease.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lease.FieldScopeType:
		return m.OldScopeType(ctx)
	case lease.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case lease.FieldOwnerOrderID:
		return m.OldOwnerOrderID(ctx)
	case lease.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lease.FieldScopeType:
		v, ok := value.(lease.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case lease.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case lease.FieldOwnerOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerOrderID(v)
		return nil
	case lease.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseMutation) AddedFields() []string {
	var fields []string
	if m.addowner_order_id != nil {
		fields = append(fields, lease.FieldOwnerOrderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldOwnerOrderID:
		return m.AddedOwnerOrderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lease.FieldOwnerOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerOrderID(v)
		return nil
	}
	return fmt.Errorf("unknown Lease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Lease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseMutation) ResetField(name string) error {
	switch name {
	case lease.FieldScopeType:
		m.ResetScopeType()
		return nil
	case lease.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case lease.FieldOwnerOrderID:
		m.ResetOwnerOrderID()
		return nil
	case lease.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lease edge %s", name)
}

// MailAttachmentMutation represents an operation that mutates the MailAttachment nodes in the graph.
type MailAttachmentMutation struct {
	config
	op             Op
	typ            string
	id             *int
	kind           *mailattachment.Kind
	mime_type      *string
	filename       *string
	text_content   *string
	binary_content *[]byte
	created_at     *time.Time
	clearedFields  map[string]struct{}
	reply          *int
	clearedreply   bool
	done           bool
	oldValue       func(context.Context) (*MailAttachment, error)
	predicates     []predicate.MailAttachment
}

var _ ent.Mutation = (*MailAttachmentMutation)(nil)

// mailattachmentOption allows management of the mutation configuration using functional options.
type mailattachmentOption func(*MailAttachmentMutation)

// newMailAttachmentMutation creates new mutation for the MailAttachment entity.
func newMailAttachmentMutation(c config, op Op, opts ...mailattachmentOption) *MailAttachmentMutation {
	m := &MailAttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeMailAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMailAttachmentID sets the ID field of the mutation.
func withMailAttachmentID(id int) mailattachmentOption {
	return func(m *MailAttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *MailAttachment
		)
		m.oldValue = func(ctx context.Context) (*MailAttachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MailAttachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMailAttachment sets the old MailAttachment of the mutation.
func withMailAttachment(node *MailAttachment) mailattachmentOption {
	return func(m *MailAttachmentMutation) {
		m.oldValue = func(context.Context) (*MailAttachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MailAttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MailAttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MailAttachmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MailAttachmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MailAttachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReplyID sets the "reply_id" field.
func (m *MailAttachmentMutation) SetReplyID(i int) {
	m.reply = &i
}

// ReplyID returns the value of the "reply_id" field in the mutation.
func (m *MailAttachmentMutation) ReplyID() (r int, exists bool) {
	v := m.reply
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyID returns the old "reply_id" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldReplyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyID: %w", err)
	}
	return oldValue.ReplyID, nil
}

// ResetReplyID resets all changes to the "reply_id" field.
func (m *MailAttachmentMutation) ResetReplyID() {
	m.reply = nil
}

// SetKind sets the "kind" field.
func (m *MailAttachmentMutation) SetKind(value mailattachment.Kind) {
	m.kind = &value
}

// Kind returns the value of the "kind" field in the mutation.
func (m *MailAttachmentMutation) Kind() (r mailattachment.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldKind(ctx context.Context) (v mailattachment.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *MailAttachmentMutation) ResetKind() {
	m.kind = nil
}

// SetMimeType sets the "mime_type" field.
func (m *MailAttachmentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *MailAttachmentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *MailAttachmentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFilename sets the "filename" field.
func (m *MailAttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *MailAttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *MailAttachmentMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[mailattachment.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *MailAttachmentMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[mailattachment.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *MailAttachmentMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, mailattachment.FieldFilename)
}

// SetTextContent sets the "text_content" field.
func (m *MailAttachmentMutation) SetTextContent(s string) {
	m.text_content = &s
}

// TextContent returns the value of the "text_content" field in the mutation.
func (m *MailAttachmentMutation) TextContent() (r string, exists bool) {
	v := m.text_content
	if v == nil {
		return
	}
	return *v, true
}

// OldTextContent returns the old "text_content" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldTextContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextContent: %w", err)
	}
	return oldValue.TextContent, nil
}

// ClearTextContent clears the value of the "text_content" field.
func (m *MailAttachmentMutation) ClearTextContent() {
	m.text_content = nil
	m.clearedFields[mailattachment.FieldTextContent] = struct{}{}
}

// TextContentCleared returns if the "text_content" field was cleared in this mutation.
func (m *MailAttachmentMutation) TextContentCleared() bool {
	_, ok := m.clearedFields[mailattachment.FieldTextContent]
	return ok
}

// ResetTextContent resets all changes to the "text_content" field.
func (m *MailAttachmentMutation) ResetTextContent() {
	m.text_content = nil
	delete(m.clearedFields, mailattachment.FieldTextContent)
}

// SetBinaryContent sets the "binary_content" field.
func (m *MailAttachmentMutation) SetBinaryContent(b []byte) {
	m.binary_content = &b
}

// BinaryContent returns the value of the "binary_content" field in the mutation.
func (m *MailAttachmentMutation) BinaryContent() (r []byte, exists bool) {
	v := m.binary_content
	if v == nil {
		return
	}
	return *v, true
}

// OldBinaryContent returns the old "binary_content" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldBinaryContent(ctx context.Context) (v *[]byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBinaryContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBinaryContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBinaryContent: %w", err)
	}
	return oldValue.BinaryContent, nil
}

// ClearBinaryContent clears the value of the "binary_content" field.
func (m *MailAttachmentMutation) ClearBinaryContent() {
	m.binary_content = nil
	m.clearedFields[mailattachment.FieldBinaryContent] = struct{}{}
}

// BinaryContentCleared returns if the "binary_content" field was cleared in this mutation.
func (m *MailAttachmentMutation) BinaryContentCleared() bool {
	_, ok := m.clearedFields[mailattachment.FieldBinaryContent]
	return ok
}

// ResetBinaryContent resets all changes to the "binary_content" field.
func (m *MailAttachmentMutation) ResetBinaryContent() {
	m.binary_content = nil
	delete(m.clearedFields, mailattachment.FieldBinaryContent)
}

// SetCreatedAt sets the "created_at" field.
func (m *MailAttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MailAttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MailAttachment entity.
// If the MailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailAttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MailAttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReply clears the "reply" edge to the MailReply entity.
func (m *MailAttachmentMutation) ClearReply() {
	m.clearedreply = true
	m.clearedFields[mailattachment.FieldReplyID] = struct{}{}
}

// ReplyCleared reports if the "reply" edge to the MailReply entity was cleared.
func (m *MailAttachmentMutation) ReplyCleared() bool {
	return m.clearedreply
}

// ReplyIDs returns the "reply" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReplyID instead. It exists only for internal usage by the builders.
func (m *MailAttachmentMutation) ReplyIDs() (ids []int) {
	if id := m.reply; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReply resets all changes to the "reply" edge.
func (m *MailAttachmentMutation) ResetReply() {
	m.reply = nil
	m.clearedreply = false
}

// Where appends a list predicates to the MailAttachmentMutation builder.
func (m *MailAttachmentMutation) Where(ps ...predicate.MailAttachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MailAttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MailAttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MailAttachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MailAttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MailAttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MailAttachment).
func (m *MailAttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MailAttachmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.reply != nil {
		fields = append(fields, mailattachment.FieldReplyID)
	}
	if m.kind != nil {
		fields = append(fields, mailattachment.FieldKind)
	}
	if m.mime_type != nil {
		fields = append(fields, mailattachment.FieldMimeType)
	}
	if m.filename != nil {
		fields = append(fields, mailattachment.FieldFilename)
	}
	if m.text_content != nil {
		fields = append(fields, mailattachment.FieldTextContent)
	}
	if m.binary_content != nil {
		fields = append(fields, mailattachment.FieldBinaryContent)
	}
	if m.created_at != nil {
		fields = append(fields, mailattachment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MailAttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mailattachment.FieldReplyID:
		return m.ReplyID()
	case mailattachment.FieldKind:
		return m.Kind()
	case mailattachment.FieldMimeType:
		return m.MimeType()
	case mailattachment.FieldFilename:
		return m.Filename()
	case mailattachment.FieldTextContent:
		return m.TextContent()
	case mailattachment.FieldBinaryContent:
		return m.BinaryContent()
	case mailattachment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MailAttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mailattachment.FieldReplyID:
		return m.OldReplyID(ctx)
	case mailattachment.FieldKind:
		return m.OldKind(ctx)
	case mailattachment.FieldMimeType:
		return m.OldMimeType(ctx)
	case mailattachment.FieldFilename:
		return m.OldFilename(ctx)
	case mailattachment.FieldTextContent:
		return m.OldTextContent(ctx)
	case mailattachment.FieldBinaryContent:
		return m.OldBinaryContent(ctx)
	case mailattachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MailAttachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailAttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mailattachment.FieldReplyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyID(v)
		return nil
	case mailattachment.FieldKind:
		v, ok := value.(mailattachment.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case mailattachment.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case mailattachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case mailattachment.FieldTextContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextContent(v)
		return nil
	case mailattachment.FieldBinaryContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBinaryContent(v)
		return nil
	case mailattachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MailAttachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MailAttachmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MailAttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailAttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MailAttachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MailAttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mailattachment.FieldFilename) {
		fields = append(fields, mailattachment.FieldFilename)
	}
	if m.FieldCleared(mailattachment.FieldTextContent) {
		fields = append(fields, mailattachment.FieldTextContent)
	}
	if m.FieldCleared(mailattachment.FieldBinaryContent) {
		fields = append(fields, mailattachment.FieldBinaryContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MailAttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MailAttachmentMutation) ClearField(name string) error {
	switch name {
	case mailattachment.FieldFilename:
		m.ClearFilename()
		return nil
	case mailattachment.FieldTextContent:
		m.ClearTextContent()
		return nil
	case mailattachment.FieldBinaryContent:
		m.ClearBinaryContent()
		return nil
	}
	return fmt.Errorf("unknown MailAttachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MailAttachmentMutation) ResetField(name string) error {
	switch name {
	case mailattachment.FieldReplyID:
		m.ResetReplyID()
		return nil
	case mailattachment.FieldKind:
		m.ResetKind()
		return nil
	case mailattachment.FieldMimeType:
		m.ResetMimeType()
		return nil
	case mailattachment.FieldFilename:
		m.ResetFilename()
		return nil
	case mailattachment.FieldTextContent:
		m.ResetTextContent()
		return nil
	case mailattachment.FieldBinaryContent:
		m.ResetBinaryContent()
		return nil
	case mailattachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MailAttachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MailAttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.reply != nil {
		edges = append(edges, mailattachment.EdgeReply)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MailAttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mailattachment.EdgeReply:
		if id := m.reply; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MailAttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MailAttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MailAttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreply {
		edges = append(edges, mailattachment.EdgeReply)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MailAttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case mailattachment.EdgeReply:
		return m.clearedreply
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MailAttachmentMutation) ClearEdge(name string) error {
	switch name {
	case mailattachment.EdgeReply:
		m.ClearReply()
		return nil
	}
	return fmt.Errorf("unknown MailAttachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MailAttachmentMutation) ResetEdge(name string) error {
	switch name {
	case mailattachment.EdgeReply:
		m.ResetReply()
		return nil
	}
	return fmt.Errorf("unknown MailAttachment edge %s", name)
}

// MailReplyMutation represents an operation that mutates the MailReply nodes in the graph.
type MailReplyMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	role               *mailreply.Role
	status             *mailreply.Status
	content            *string
	unread             *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	thread             *int
	clearedthread      bool
	attachments        map[int]struct{}
	removedattachments map[int]struct{}
	clearedattachments bool
	done               bool
	oldValue           func(context.Context) (*MailReply, error)
	predicates         []predicate.MailReply
}

var _ ent.Mutation = (*MailReplyMutation)(nil)

// mailreplyOption allows management of the mutation configuration using functional options.
type mailreplyOption func(*MailReplyMutation)

// newMailReplyMutation creates new mutation for the MailReply entity.
func newMailReplyMutation(c config, op Op, opts ...mailreplyOption) *MailReplyMutation {
	m := &MailReplyMutation{
		config:        c,
		op:            op,
		typ:           TypeMailReply,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMailReplyID sets the ID field of the mutation.
func withMailReplyID(id int) mailreplyOption {
	return func(m *MailReplyMutation) {
		var (
			err   error
			once  sync.Once
			value *MailReply
		)
		m.oldValue = func(ctx context.Context) (*MailReply, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MailReply.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMailReply sets the old MailReply of the mutation.
func withMailReply(node *MailReply) mailreplyOption {
	return func(m *MailReplyMutation) {
		m.oldValue = func(context.Context) (*MailReply, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MailReplyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MailReplyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MailReplyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MailReplyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MailReply.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *MailReplyMutation) SetThreadID(i int) {
	m.thread = &i
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MailReplyMutation) ThreadID() (r int, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldThreadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MailReplyMutation) ResetThreadID() {
	m.thread = nil
}

// SetRole sets the "role" field.
func (m *MailReplyMutation) SetRole(value mailreply.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MailReplyMutation) Role() (r mailreply.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldRole(ctx context.Context) (v mailreply.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MailReplyMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *MailReplyMutation) SetStatus(value mailreply.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MailReplyMutation) Status() (r mailreply.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldStatus(ctx context.Context) (v mailreply.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MailReplyMutation) ResetStatus() {
	m.status = nil
}

// SetContent sets the "content" field.
func (m *MailReplyMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MailReplyMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MailReplyMutation) ResetContent() {
	m.content = nil
}

// SetUnread sets the "unread" field.
func (m *MailReplyMutation) SetUnread(b bool) {
	m.unread = &b
}

// Unread returns the value of the "unread" field in the mutation.
func (m *MailReplyMutation) Unread() (r bool, exists bool) {
	v := m.unread
	if v == nil {
		return
	}
	return *v, true
}

// OldUnread returns the old "unread" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldUnread(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnread is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnread requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnread: %w", err)
	}
	return oldValue.Unread, nil
}

// ResetUnread resets all changes to the "unread" field.
func (m *MailReplyMutation) ResetUnread() {
	m.unread = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MailReplyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MailReplyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MailReply entity.
// If the MailReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailReplyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MailReplyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the MailThread entity.
func (m *MailReplyMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[mailreply.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the MailThread entity was cleared.
func (m *MailReplyMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *MailReplyMutation) ThreadIDs() (ids []int) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *MailReplyMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// AddAttachmentIDs adds the "attachments" edge to the MailAttachment entity by ids.
func (m *MailReplyMutation) AddAttachmentIDs(ids ...int) {
	if m.attachments == nil {
		m.attachments = make(map[int]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the MailAttachment entity.
func (m *MailReplyMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the MailAttachment entity was cleared.
func (m *MailReplyMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the MailAttachment entity by IDs.
func (m *MailReplyMutation) RemoveAttachmentIDs(ids ...int) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the MailAttachment entity.
func (m *MailReplyMutation) RemovedAttachmentsIDs() (ids []int) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *MailReplyMutation) AttachmentsIDs() (ids []int) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *MailReplyMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the MailReplyMutation builder.
func (m *MailReplyMutation) Where(ps ...predicate.MailReply) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MailReplyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MailReplyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MailReply, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MailReplyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MailReplyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MailReply).
func (m *MailReplyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MailReplyMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.thread != nil {
		fields = append(fields, mailreply.FieldThreadID)
	}
	if m.role != nil {
		fields = append(fields, mailreply.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, mailreply.FieldStatus)
	}
	if m.content != nil {
		fields = append(fields, mailreply.FieldContent)
	}
	if m.unread != nil {
		fields = append(fields, mailreply.FieldUnread)
	}
	if m.created_at != nil {
		fields = append(fields, mailreply.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MailReplyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mailreply.FieldThreadID:
		return m.ThreadID()
	case mailreply.FieldRole:
		return m.Role()
	case mailreply.FieldStatus:
		return m.Status()
	case mailreply.FieldContent:
		return m.Content()
	case mailreply.FieldUnread:
		return m.Unread()
	case mailreply.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MailReplyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mailreply.FieldThreadID:
		return m.OldThreadID(ctx)
	case mailreply.FieldRole:
		return m.OldRole(ctx)
	case mailreply.FieldStatus:
		return m.OldStatus(ctx)
	case mailreply.FieldContent:
		return m.OldContent(ctx)
	case mailreply.FieldUnread:
		return m.OldUnread(ctx)
	case mailreply.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MailReply field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailReplyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mailreply.FieldThreadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case mailreply.FieldRole:
		v, ok := value.(mailreply.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case mailreply.FieldStatus:
		v, ok := value.(mailreply.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mailreply.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case mailreply.FieldUnread:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnread(v)
		return nil
	case mailreply.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MailReply field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MailReplyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MailReplyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailReplyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MailReply numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MailReplyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MailReplyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MailReplyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MailReply nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MailReplyMutation) ResetField(name string) error {
	switch name {
	case mailreply.FieldThreadID:
		m.ResetThreadID()
		return nil
	case mailreply.FieldRole:
		m.ResetRole()
		return nil
	case mailreply.FieldStatus:
		m.ResetStatus()
		return nil
	case mailreply.FieldContent:
		m.ResetContent()
		return nil
	case mailreply.FieldUnread:
		m.ResetUnread()
		return nil
	case mailreply.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MailReply field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MailReplyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.thread != nil {
		edges = append(edges, mailreply.EdgeThread)
	}
	if m.attachments != nil {
		edges = append(edges, mailreply.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MailReplyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mailreply.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	case mailreply.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MailReplyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattachments != nil {
		edges = append(edges, mailreply.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MailReplyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mailreply.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MailReplyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedthread {
		edges = append(edges, mailreply.EdgeThread)
	}
	if m.clearedattachments {
		edges = append(edges, mailreply.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MailReplyMutation) EdgeCleared(name string) bool {
	switch name {
	case mailreply.EdgeThread:
		return m.clearedthread
	case mailreply.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MailReplyMutation) ClearEdge(name string) error {
	switch name {
	case mailreply.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown MailReply unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MailReplyMutation) ResetEdge(name string) error {
	switch name {
	case mailreply.EdgeThread:
		m.ResetThread()
		return nil
	case mailreply.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown MailReply edge %s", name)
}

// MailThreadMutation represents an operation that mutates the MailThread nodes in the graph.
type MailThreadMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	uid                         *string
	title                       *string
	user_set_title              *bool
	context_summary             *string
	summary_token_count         *int
	addsummary_token_count      *int
	last_summarized_reply_id    *int
	addlast_summarized_reply_id *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	replies                     map[int]struct{}
	removedreplies              map[int]struct{}
	clearedreplies              bool
	done                        bool
	oldValue                    func(context.Context) (*MailThread, error)
	predicates                  []predicate.MailThread
}

var _ ent.Mutation = (*MailThreadMutation)(nil)

// mailthreadOption allows management of the mutation configuration using functional options.
type mailthreadOption func(*MailThreadMutation)

// newMailThreadMutation creates new mutation for the MailThread entity.
func newMailThreadMutation(c config, op Op, opts ...mailthreadOption) *MailThreadMutation {
	m := &MailThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeMailThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMailThreadID sets the ID field of the mutation.
func withMailThreadID(id int) mailthreadOption {
	return func(m *MailThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *MailThread
		)
		m.oldValue = func(ctx context.Context) (*MailThread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MailThread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMailThread sets the old MailThread of the mutation.
func withMailThread(node *MailThread) mailthreadOption {
	return func(m *MailThreadMutation) {
		m.oldValue = func(context.Context) (*MailThread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MailThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MailThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MailThreadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MailThreadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MailThread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *MailThreadMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *MailThreadMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *MailThreadMutation) ResetUID() {
	m.uid = nil
}

// SetTitle sets the "title" field.
func (m *MailThreadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MailThreadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *MailThreadMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[mailthread.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *MailThreadMutation) TitleCleared() bool {
	_, ok := m.clearedFields[mailthread.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *MailThreadMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, mailthread.FieldTitle)
}

// SetUserSetTitle sets the "user_set_title" field.
func (m *MailThreadMutation) SetUserSetTitle(b bool) {
	m.user_set_title = &b
}

// UserSetTitle returns the value of the "user_set_title" field in the mutation.
func (m *MailThreadMutation) UserSetTitle() (r bool, exists bool) {
	v := m.user_set_title
	if v == nil {
		return
	}
	return *v, true
}

// OldUserSetTitle returns the old "user_set_title" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldUserSetTitle(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserSetTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserSetTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserSetTitle: %w", err)
	}
	return oldValue.UserSetTitle, nil
}

// ResetUserSetTitle resets all changes to the "user_set_title" field.
func (m *MailThreadMutation) ResetUserSetTitle() {
	m.user_set_title = nil
}

// SetContextSummary sets the "context_summary" field.
func (m *MailThreadMutation) SetContextSummary(s string) {
	m.context_summary = &s
}

// ContextSummary returns the value of the "context_summary" field in the mutation.
func (m *MailThreadMutation) ContextSummary() (r string, exists bool) {
	v := m.context_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSummary returns the old "context_summary" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldContextSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSummary: %w", err)
	}
	return oldValue.ContextSummary, nil
}

// ClearContextSummary clears the value of the "context_summary" field.
func (m *MailThreadMutation) ClearContextSummary() {
	m.context_summary = nil
	m.clearedFields[mailthread.FieldContextSummary] = struct{}{}
}

// ContextSummaryCleared returns if the "context_summary" field was cleared in this mutation.
func (m *MailThreadMutation) ContextSummaryCleared() bool {
	_, ok := m.clearedFields[mailthread.FieldContextSummary]
	return ok
}

// ResetContextSummary resets all changes to the "context_summary" field.
func (m *MailThreadMutation) ResetContextSummary() {
	m.context_summary = nil
	delete(m.clearedFields, mailthread.FieldContextSummary)
}

// SetSummaryTokenCount sets the "summary_token_count" field.
func (m *MailThreadMutation) SetSummaryTokenCount(i int) {
	m.summary_token_count = &i
	m.addsummary_token_count = nil
}

// SummaryTokenCount returns the value of the "summary_token_count" field in the mutation.
func (m *MailThreadMutation) SummaryTokenCount() (r int, exists bool) {
	v := m.summary_token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryTokenCount returns the old "summary_token_count" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldSummaryTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryTokenCount: %w", err)
	}
	return oldValue.SummaryTokenCount, nil
}

// AddSummaryTokenCount adds i to the "summary_token_count" field.
func (m *MailThreadMutation) AddSummaryTokenCount(i int) {
	if m.addsummary_token_count != nil {
		*m.addsummary_token_count += i
	} else {
		m.addsummary_token_count = &i
	}
}

// AddedSummaryTokenCount returns the value that was added to the "summary_token_count" field in this mutation.
func (m *MailThreadMutation) AddedSummaryTokenCount() (r int, exists bool) {
	v := m.addsummary_token_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSummaryTokenCount resets all changes to the "summary_token_count" field.
func (m *MailThreadMutation) ResetSummaryTokenCount() {
	m.summary_token_count = nil
	m.addsummary_token_count = nil
}

// SetLastSummarizedReplyID sets the "last_summarized_reply_id" field.
func (m *MailThreadMutation) SetLastSummarizedReplyID(i int) {
	m.last_summarized_reply_id = &i
	m.addlast_summarized_reply_id = nil
}

// LastSummarizedReplyID returns the value of the "last_summarized_reply_id" field in the mutation.
func (m *MailThreadMutation) LastSummarizedReplyID() (r int, exists bool) {
	v := m.last_summarized_reply_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSummarizedReplyID returns the old "last_summarized_reply_id" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldLastSummarizedReplyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSummarizedReplyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSummarizedReplyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSummarizedReplyID: %w", err)
	}
	return oldValue.LastSummarizedReplyID, nil
}

// AddLastSummarizedReplyID adds i to the "last_summarized_reply_id" field.
func (m *MailThreadMutation) AddLastSummarizedReplyID(i int) {
	if m.addlast_summarized_reply_id != nil {
		*m.addlast_summarized_reply_id += i
	} else {
		m.addlast_summarized_reply_id = &i
	}
}

// AddedLastSummarizedReplyID returns the value that was added to the "last_summarized_reply_id" field in this mutation.
func (m *MailThreadMutation) AddedLastSummarizedReplyID() (r int, exists bool) {
	v := m.addlast_summarized_reply_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSummarizedReplyID resets all changes to the "last_summarized_reply_id" field.
func (m *MailThreadMutation) ResetLastSummarizedReplyID() {
	m.last_summarized_reply_id = nil
	m.addlast_summarized_reply_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MailThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MailThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MailThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MailThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MailThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MailThread entity.
// If the MailThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MailThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MailThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddReplyIDs adds the "replies" edge to the MailReply entity by ids.
func (m *MailThreadMutation) AddReplyIDs(ids ...int) {
	if m.replies == nil {
		m.replies = make(map[int]struct{})
	}
	for i := range ids {
		m.replies[ids[i]] = struct{}{}
	}
}

// ClearReplies clears the "replies" edge to the MailReply entity.
func (m *MailThreadMutation) ClearReplies() {
	m.clearedreplies = true
}

// RepliesCleared reports if the "replies" edge to the MailReply entity was cleared.
func (m *MailThreadMutation) RepliesCleared() bool {
	return m.clearedreplies
}

// RemoveReplyIDs removes the "replies" edge to the MailReply entity by IDs.
func (m *MailThreadMutation) RemoveReplyIDs(ids ...int) {
	if m.removedreplies == nil {
		m.removedreplies = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.replies, ids[i])
		m.removedreplies[ids[i]] = struct{}{}
	}
}

// RemovedReplies returns the removed IDs of the "replies" edge to the MailReply entity.
func (m *MailThreadMutation) RemovedRepliesIDs() (ids []int) {
	for id := range m.removedreplies {
		ids = append(ids, id)
	}
	return
}

// RepliesIDs returns the "replies" edge IDs in the mutation.
func (m *MailThreadMutation) RepliesIDs() (ids []int) {
	for id := range m.replies {
		ids = append(ids, id)
	}
	return
}

// ResetReplies resets all changes to the "replies" edge.
func (m *MailThreadMutation) ResetReplies() {
	m.replies = nil
	m.clearedreplies = false
	m.removedreplies = nil
}

// Where appends a list predicates to the MailThreadMutation builder.
func (m *MailThreadMutation) Where(ps ...predicate.MailThread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MailThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MailThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MailThread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MailThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MailThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MailThread).
func (m *MailThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MailThreadMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.uid != nil {
		fields = append(fields, mailthread.FieldUID)
	}
	if m.title != nil {
		fields = append(fields, mailthread.FieldTitle)
	}
	if m.user_set_title != nil {
		fields = append(fields, mailthread.FieldUserSetTitle)
	}
	if m.context_summary != nil {
		fields = append(fields, mailthread.FieldContextSummary)
	}
	if m.summary_token_count != nil {
		fields = append(fields, mailthread.FieldSummaryTokenCount)
	}
	if m.last_summarized_reply_id != nil {
		fields = append(fields, mailthread.FieldLastSummarizedReplyID)
	}
	if m.created_at != nil {
		fields = append(fields, mailthread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mailthread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MailThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mailthread.FieldUID:
		return m.UID()
	case mailthread.FieldTitle:
		return m.Title()
	case mailthread.FieldUserSetTitle:
		return m.UserSetTitle()
	case mailthread.FieldContextSummary:
		return m.ContextSummary()
	case mailthread.FieldSummaryTokenCount:
		return m.SummaryTokenCount()
	case mailthread.FieldLastSummarizedReplyID:
		return m.LastSummarizedReplyID()
	case mailthread.FieldCreatedAt:
		return m.CreatedAt()
	case mailthread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MailThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mailthread.FieldUID:
		return m.OldUID(ctx)
	case mailthread.FieldTitle:
		return m.OldTitle(ctx)
	case mailthread.FieldUserSetTitle:
		return m.OldUserSetTitle(ctx)
	case mailthread.FieldContextSummary:
		return m.OldContextSummary(ctx)
	case mailthread.FieldSummaryTokenCount:
		return m.OldSummaryTokenCount(ctx)
	case mailthread.FieldLastSummarizedReplyID:
		return m.OldLastSummarizedReplyID(ctx)
	case mailthread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mailthread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MailThread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mailthread.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case mailthread.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case mailthread.FieldUserSetTitle:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserSetTitle(v)
		return nil
	case mailthread.FieldContextSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSummary(v)
		return nil
	case mailthread.FieldSummaryTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryTokenCount(v)
		return nil
	case mailthread.FieldLastSummarizedReplyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSummarizedReplyID(v)
		return nil
	case mailthread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mailthread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MailThread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MailThreadMutation) AddedFields() []string {
	var fields []string
	if m.addsummary_token_count != nil {
		fields = append(fields, mailthread.FieldSummaryTokenCount)
	}
	if m.addlast_summarized_reply_id != nil {
		fields = append(fields, mailthread.FieldLastSummarizedReplyID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MailThreadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mailthread.FieldSummaryTokenCount:
		return m.AddedSummaryTokenCount()
	case mailthread.FieldLastSummarizedReplyID:
		return m.AddedLastSummarizedReplyID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MailThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mailthread.FieldSummaryTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSummaryTokenCount(v)
		return nil
	case mailthread.FieldLastSummarizedReplyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSummarizedReplyID(v)
		return nil
	}
	return fmt.Errorf("unknown MailThread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MailThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mailthread.FieldTitle) {
		fields = append(fields, mailthread.FieldTitle)
	}
	if m.FieldCleared(mailthread.FieldContextSummary) {
		fields = append(fields, mailthread.FieldContextSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MailThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MailThreadMutation) ClearField(name string) error {
	switch name {
	case mailthread.FieldTitle:
		m.ClearTitle()
		return nil
	case mailthread.FieldContextSummary:
		m.ClearContextSummary()
		return nil
	}
	return fmt.Errorf("unknown MailThread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MailThreadMutation) ResetField(name string) error {
	switch name {
	case mailthread.FieldUID:
		m.ResetUID()
		return nil
	case mailthread.FieldTitle:
		m.ResetTitle()
		return nil
	case mailthread.FieldUserSetTitle:
		m.ResetUserSetTitle()
		return nil
	case mailthread.FieldContextSummary:
		m.ResetContextSummary()
		return nil
	case mailthread.FieldSummaryTokenCount:
		m.ResetSummaryTokenCount()
		return nil
	case mailthread.FieldLastSummarizedReplyID:
		m.ResetLastSummarizedReplyID()
		return nil
	case mailthread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mailthread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MailThread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MailThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.replies != nil {
		edges = append(edges, mailthread.EdgeReplies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MailThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mailthread.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.replies))
		for id := range m.replies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MailThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreplies != nil {
		edges = append(edges, mailthread.EdgeReplies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MailThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mailthread.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.removedreplies))
		for id := range m.removedreplies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MailThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreplies {
		edges = append(edges, mailthread.EdgeReplies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MailThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case mailthread.EdgeReplies:
		return m.clearedreplies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MailThreadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MailThread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MailThreadMutation) ResetEdge(name string) error {
	switch name {
	case mailthread.EdgeReplies:
		m.ResetReplies()
		return nil
	}
	return fmt.Errorf("unknown MailThread edge %s", name)
}

// OrderEventMutation represents an operation that mutates the OrderEvent nodes in the graph.
type OrderEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	order_id      *int
	addorder_id   *int
	seq           *int
	addseq        *int
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrderEvent, error)
	predicates    []predicate.OrderEvent
}

var _ ent.Mutation = (*OrderEventMutation)(nil)

// ordereventOption allows management of the mutation configuration using functional options.
type ordereventOption func(*OrderEventMutation)

// newOrderEventMutation creates new mutation for the OrderEvent entity.
func newOrderEventMutation(c config, op Op, opts ...ordereventOption) *OrderEventMutation {
	m := &OrderEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderEventID sets the ID field of the mutation.
func withOrderEventID(id int) ordereventOption {
	return func(m *OrderEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderEvent
		)
		m.oldValue = func(ctx context.Context) (*OrderEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderEvent sets the old OrderEvent of the mutation.
func withOrderEvent(node *OrderEvent) ordereventOption {
	return func(m *OrderEventMutation) {
		m.oldValue = func(context.Context) (*OrderEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *OrderEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *OrderEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *OrderEventMutation) ResetChannel() {
	m.channel = nil
}

// SetOrderID sets the "order_id" field.
func (m *OrderEventMutation) SetOrderID(i int) {
	m.order_id = &i
	m.addorder_id = nil
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderEventMutation) OrderID() (r int, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldOrderID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// AddOrderID adds i to the "order_id" field.
func (m *OrderEventMutation) AddOrderID(i int) {
	if m.addorder_id != nil {
		*m.addorder_id += i
	} else {
		m.addorder_id = &i
	}
}

// AddedOrderID returns the value that was added to the "order_id" field in this mutation.
func (m *OrderEventMutation) AddedOrderID() (r int, exists bool) {
	v := m.addorder_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearOrderID clears the value of the "order_id" field.
func (m *OrderEventMutation) ClearOrderID() {
	m.order_id = nil
	m.addorder_id = nil
	m.clearedFields[orderevent.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *OrderEventMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[orderevent.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderEventMutation) ResetOrderID() {
	m.order_id = nil
	m.addorder_id = nil
	delete(m.clearedFields, orderevent.FieldOrderID)
}

// SetSeq sets the "seq" field.
func (m *OrderEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *OrderEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *OrderEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *OrderEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *OrderEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetEventType sets the "event_type" field.
func (m *OrderEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *OrderEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *OrderEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *OrderEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OrderEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *OrderEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrderEventMutation builder.
func (m *OrderEventMutation) Where(ps ...predicate.OrderEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderEvent).
func (m *OrderEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.channel != nil {
		fields = append(fields, orderevent.FieldChannel)
	}
	if m.order_id != nil {
		fields = append(fields, orderevent.FieldOrderID)
	}
	if m.seq != nil {
		fields = append(fields, orderevent.FieldSeq)
	}
	if m.event_type != nil {
		fields = append(fields, orderevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, orderevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, orderevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderevent.FieldChannel:
		return m.Channel()
	case orderevent.FieldOrderID:
		return m.OrderID()
	case orderevent.FieldSeq:
		return m.Seq()
	case orderevent.FieldEventType:
		return m.EventType()
	case orderevent.FieldPayload:
		return m.Payload()
	case orderevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderevent.FieldChannel:
		return m.OldChannel(ctx)
	case orderevent.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderevent.FieldSeq:
		return m.OldSeq(ctx)
	case orderevent.FieldEventType:
		return m.OldEventType(ctx)
	case orderevent.FieldPayload:
		return m.OldPayload(ctx)
	case orderevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case orderevent.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case orderevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case orderevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case orderevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderEventMutation) AddedFields() []string {
	var fields []string
	if m.addorder_id != nil {
		fields = append(fields, orderevent.FieldOrderID)
	}
	if m.addseq != nil {
		fields = append(fields, orderevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderevent.FieldOrderID:
		return m.AddedOrderID()
	case orderevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderevent.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderID(v)
		return nil
	case orderevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown OrderEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderevent.FieldOrderID) {
		fields = append(fields, orderevent.FieldOrderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderEventMutation) ClearField(name string) error {
	switch name {
	case orderevent.FieldOrderID:
		m.ClearOrderID()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderEventMutation) ResetField(name string) error {
	switch name {
	case orderevent.FieldChannel:
		m.ResetChannel()
		return nil
	case orderevent.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderevent.FieldSeq:
		m.ResetSeq()
		return nil
	case orderevent.FieldEventType:
		m.ResetEventType()
		return nil
	case orderevent.FieldPayload:
		m.ResetPayload()
		return nil
	case orderevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrderEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrderEvent edge %s", name)
}

// OrderLogMutation represents an operation that mutates the OrderLog nodes in the graph.
type OrderLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	order_id      *int
	addorder_id   *int
	stage         *orderlog.Stage
	level         *orderlog.Level
	message       *string
	meta          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrderLog, error)
	predicates    []predicate.OrderLog
}

var _ ent.Mutation = (*OrderLogMutation)(nil)

// orderlogOption allows management of the mutation configuration using functional options.
type orderlogOption func(*OrderLogMutation)

// newOrderLogMutation creates new mutation for the OrderLog entity.
func newOrderLogMutation(c config, op Op, opts ...orderlogOption) *OrderLogMutation {
	m := &OrderLogMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderLogID sets the ID field of the mutation.
func withOrderLogID(id int) orderlogOption {
	return func(m *OrderLogMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderLog
		)
		m.oldValue = func(ctx context.Context) (*OrderLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderLog sets the old OrderLog of the mutation.
func withOrderLog(node *OrderLog) orderlogOption {
	return func(m *OrderLogMutation) {
		m.oldValue = func(context.Context) (*OrderLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderLogMutation) SetOrderID(i int) {
	m.order_id = &i
	m.addorder_id = nil
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderLogMutation) OrderID() (r int, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldOrderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// AddOrderID adds i to the "order_id" field.
func (m *OrderLogMutation) AddOrderID(i int) {
	if m.addorder_id != nil {
		*m.addorder_id += i
	} else {
		m.addorder_id = &i
	}
}

// AddedOrderID returns the value that was added to the "order_id" field in this mutation.
func (m *OrderLogMutation) AddedOrderID() (r int, exists bool) {
	v := m.addorder_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderLogMutation) ResetOrderID() {
	m.order_id = nil
	m.addorder_id = nil
}

// SetStage sets the "stage" field.
func (m *OrderLogMutation) SetStage(o orderlog.Stage) {
	m.stage = &o
}

// Stage returns the value of the "stage" field in the mutation.
func (m *OrderLogMutation) Stage() (r orderlog.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldStage(ctx context.Context) (v orderlog.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *OrderLogMutation) ResetStage() {
	m.stage = nil
}

// SetLevel sets the "level" field.
func (m *OrderLogMutation) SetLevel(o orderlog.Level) {
	m.level = &o
}

// Level returns the value of the "level" field in the mutation.
func (m *OrderLogMutation) Level() (r orderlog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldLevel(ctx context.Context) (v orderlog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *OrderLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *OrderLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *OrderLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *OrderLogMutation) ResetMessage() {
	m.message = nil
}

// SetMeta sets the "meta" field.
func (m *OrderLogMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *OrderLogMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *OrderLogMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[orderlog.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *OrderLogMutation) MetaCleared() bool {
	_, ok := m.clearedFields[orderlog.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *OrderLogMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, orderlog.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderLog entity.
// If the OrderLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrderLogMutation builder.
func (m *OrderLogMutation) Where(ps ...predicate.OrderLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderLog).
func (m *OrderLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.order_id != nil {
		fields = append(fields, orderlog.FieldOrderID)
	}
	if m.stage != nil {
		fields = append(fields, orderlog.FieldStage)
	}
	if m.level != nil {
		fields = append(fields, orderlog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, orderlog.FieldMessage)
	}
	if m.meta != nil {
		fields = append(fields, orderlog.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, orderlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderlog.FieldOrderID:
		return m.OrderID()
	case orderlog.FieldStage:
		return m.Stage()
	case orderlog.FieldLevel:
		return m.Level()
	case orderlog.FieldMessage:
		return m.Message()
	case orderlog.FieldMeta:
		return m.Meta()
	case orderlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderlog.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderlog.FieldStage:
		return m.OldStage(ctx)
	case orderlog.FieldLevel:
		return m.OldLevel(ctx)
	case orderlog.FieldMessage:
		return m.OldMessage(ctx)
	case orderlog.FieldMeta:
		return m.OldMeta(ctx)
	case orderlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderlog.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderlog.FieldStage:
		v, ok := value.(orderlog.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case orderlog.FieldLevel:
		v, ok := value.(orderlog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case orderlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case orderlog.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case orderlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderLogMutation) AddedFields() []string {
	var fields []string
	if m.addorder_id != nil {
		fields = append(fields, orderlog.FieldOrderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderlog.FieldOrderID:
		return m.AddedOrderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderlog.FieldOrderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderID(v)
		return nil
	}
	return fmt.Errorf("unknown OrderLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderlog.FieldMeta) {
		fields = append(fields, orderlog.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderLogMutation) ClearField(name string) error {
	switch name {
	case orderlog.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown OrderLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderLogMutation) ResetField(name string) error {
	switch name {
	case orderlog.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderlog.FieldStage:
		m.ResetStage()
		return nil
	case orderlog.FieldLevel:
		m.ResetLevel()
		return nil
	case orderlog.FieldMessage:
		m.ResetMessage()
		return nil
	case orderlog.FieldMeta:
		m.ResetMeta()
		return nil
	case orderlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrderLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrderLog edge %s", name)
}

// RuntimeSettingMutation represents an operation that mutates the RuntimeSetting nodes in the graph.
type RuntimeSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RuntimeSetting, error)
	predicates    []predicate.RuntimeSetting
}

var _ ent.Mutation = (*RuntimeSettingMutation)(nil)

// runtimesettingOption allows management of the mutation configuration using functional options.
type runtimesettingOption func(*RuntimeSettingMutation)

// newRuntimeSettingMutation creates new mutation for the RuntimeSetting entity.
func newRuntimeSettingMutation(c config, op Op, opts ...runtimesettingOption) *RuntimeSettingMutation {
	m := &RuntimeSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeRuntimeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuntimeSettingID sets the ID field of the mutation.
func withRuntimeSettingID(id int) runtimesettingOption {
	return func(m *RuntimeSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *RuntimeSetting
		)
		m.oldValue = func(ctx context.Context) (*RuntimeSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuntimeSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuntimeSetting sets the old RuntimeSetting of the mutation.
func withRuntimeSetting(node *RuntimeSetting) runtimesettingOption {
	return func(m *RuntimeSettingMutation) {
		m.oldValue = func(context.Context) (*RuntimeSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuntimeSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuntimeSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuntimeSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuntimeSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuntimeSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *RuntimeSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *RuntimeSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the RuntimeSetting entity.
// If the RuntimeSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *RuntimeSettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *RuntimeSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *RuntimeSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the RuntimeSetting entity.
// If the RuntimeSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *RuntimeSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuntimeSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuntimeSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RuntimeSetting entity.
// If the RuntimeSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuntimeSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RuntimeSettingMutation builder.
func (m *RuntimeSettingMutation) Where(ps ...predicate.RuntimeSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuntimeSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuntimeSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuntimeSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuntimeSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuntimeSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuntimeSetting).
func (m *RuntimeSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuntimeSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, runtimesetting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, runtimesetting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, runtimesetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuntimeSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runtimesetting.FieldKey:
		return m.Key()
	case runtimesetting.FieldValue:
		return m.Value()
	case runtimesetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuntimeSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runtimesetting.FieldKey:
		return m.OldKey(ctx)
	case runtimesetting.FieldValue:
		return m.OldValue(ctx)
	case runtimesetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RuntimeSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuntimeSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runtimesetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case runtimesetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case runtimesetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RuntimeSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuntimeSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuntimeSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuntimeSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RuntimeSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuntimeSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuntimeSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuntimeSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RuntimeSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuntimeSettingMutation) ResetField(name string) error {
	switch name {
	case runtimesetting.FieldKey:
		m.ResetKey()
		return nil
	case runtimesetting.FieldValue:
		m.ResetValue()
		return nil
	case runtimesetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RuntimeSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuntimeSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuntimeSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuntimeSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuntimeSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuntimeSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuntimeSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuntimeSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RuntimeSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuntimeSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RuntimeSetting edge %s", name)
}

// SearchQueryMutation represents an operation that mutates the SearchQuery nodes in the graph.
type SearchQueryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	value          *string
	original_value *string
	language       *string
	filetype       *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	intents        map[int]struct{}
	removedintents map[int]struct{}
	clearedintents bool
	done           bool
	oldValue       func(context.Context) (*SearchQuery, error)
	predicates     []predicate.SearchQuery
}

var _ ent.Mutation = (*SearchQueryMutation)(nil)

// searchqueryOption allows management of the mutation configuration using functional options.
type searchqueryOption func(*SearchQueryMutation)

// newSearchQueryMutation creates new mutation for the SearchQuery entity.
func newSearchQueryMutation(c config, op Op, opts ...searchqueryOption) *SearchQueryMutation {
	m := &SearchQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchQueryID sets the ID field of the mutation.
func withSearchQueryID(id int) searchqueryOption {
	return func(m *SearchQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchQuery
		)
		m.oldValue = func(ctx context.Context) (*SearchQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchQuery sets the old SearchQuery of the mutation.
func withSearchQuery(node *SearchQuery) searchqueryOption {
	return func(m *SearchQueryMutation) {
		m.oldValue = func(context.Context) (*SearchQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchQueryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchQueryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *SearchQueryMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SearchQueryMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SearchQueryMutation) ResetValue() {
	m.value = nil
}

// SetOriginalValue sets the "original_value" field.
func (m *SearchQueryMutation) SetOriginalValue(s string) {
	m.original_value = &s
}

// OriginalValue returns the value of the "original_value" field in the mutation.
func (m *SearchQueryMutation) OriginalValue() (r string, exists bool) {
	v := m.original_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalValue returns the old "original_value" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldOriginalValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalValue: %w", err)
	}
	return oldValue.OriginalValue, nil
}

// ResetOriginalValue resets all changes to the "original_value" field.
func (m *SearchQueryMutation) ResetOriginalValue() {
	m.original_value = nil
}

// SetLanguage sets the "language" field.
func (m *SearchQueryMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SearchQueryMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SearchQueryMutation) ResetLanguage() {
	m.language = nil
}

// SetFiletype sets the "filetype" field.
func (m *SearchQueryMutation) SetFiletype(s string) {
	m.filetype = &s
}

// Filetype returns the value of the "filetype" field in the mutation.
func (m *SearchQueryMutation) Filetype() (r string, exists bool) {
	v := m.filetype
	if v == nil {
		return
	}
	return *v, true
}

// OldFiletype returns the old "filetype" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldFiletype(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiletype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiletype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiletype: %w", err)
	}
	return oldValue.Filetype, nil
}

// ResetFiletype resets all changes to the "filetype" field.
func (m *SearchQueryMutation) ResetFiletype() {
	m.filetype = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchQueryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchQueryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchQueryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SearchQueryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SearchQueryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SearchQueryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIntentIDs adds the "intents" edge to the Intent entity by ids.
func (m *SearchQueryMutation) AddIntentIDs(ids ...int) {
	if m.intents == nil {
		m.intents = make(map[int]struct{})
	}
	for i := range ids {
		m.intents[ids[i]] = struct{}{}
	}
}

// ClearIntents clears the "intents" edge to the Intent entity.
func (m *SearchQueryMutation) ClearIntents() {
	m.clearedintents = true
}

// IntentsCleared reports if the "intents" edge to the Intent entity was cleared.
func (m *SearchQueryMutation) IntentsCleared() bool {
	return m.clearedintents
}

// RemoveIntentIDs removes the "intents" edge to the Intent entity by IDs.
func (m *SearchQueryMutation) RemoveIntentIDs(ids ...int) {
	if m.removedintents == nil {
		m.removedintents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.intents, ids[i])
		m.removedintents[ids[i]] = struct{}{}
	}
}

// RemovedIntents returns the removed IDs of the "intents" edge to the Intent entity.
func (m *SearchQueryMutation) RemovedIntentsIDs() (ids []int) {
	for id := range m.removedintents {
		ids = append(ids, id)
	}
	return
}

// IntentsIDs returns the "intents" edge IDs in the mutation.
func (m *SearchQueryMutation) IntentsIDs() (ids []int) {
	for id := range m.intents {
		ids = append(ids, id)
	}
	return
}

// ResetIntents resets all changes to the "intents" edge.
func (m *SearchQueryMutation) ResetIntents() {
	m.intents = nil
	m.clearedintents = false
	m.removedintents = nil
}

// Where appends a list predicates to the SearchQueryMutation builder.
func (m *SearchQueryMutation) Where(ps ...predicate.SearchQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchQuery).
func (m *SearchQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchQueryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.value != nil {
		fields = append(fields, searchquery.FieldValue)
	}
	if m.original_value != nil {
		fields = append(fields, searchquery.FieldOriginalValue)
	}
	if m.language != nil {
		fields = append(fields, searchquery.FieldLanguage)
	}
	if m.filetype != nil {
		fields = append(fields, searchquery.FieldFiletype)
	}
	if m.created_at != nil {
		fields = append(fields, searchquery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, searchquery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchquery.FieldValue:
		return m.Value()
	case searchquery.FieldOriginalValue:
		return m.OriginalValue()
	case searchquery.FieldLanguage:
		return m.Language()
	case searchquery.FieldFiletype:
		return m.Filetype()
	case searchquery.FieldCreatedAt:
		return m.CreatedAt()
	case searchquery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchquery.FieldValue:
		return m.OldValue(ctx)
	case searchquery.FieldOriginalValue:
		return m.OldOriginalValue(ctx)
	case searchquery.FieldLanguage:
		return m.OldLanguage(ctx)
	case searchquery.FieldFiletype:
		return m.OldFiletype(ctx)
	case searchquery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case searchquery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchquery.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case searchquery.FieldOriginalValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalValue(v)
		return nil
	case searchquery.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case searchquery.FieldFiletype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiletype(v)
		return nil
	case searchquery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case searchquery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchQueryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchQueryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SearchQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchQueryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchQueryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SearchQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchQueryMutation) ResetField(name string) error {
	switch name {
	case searchquery.FieldValue:
		m.ResetValue()
		return nil
	case searchquery.FieldOriginalValue:
		m.ResetOriginalValue()
		return nil
	case searchquery.FieldLanguage:
		m.ResetLanguage()
		return nil
	case searchquery.FieldFiletype:
		m.ResetFiletype()
		return nil
	case searchquery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case searchquery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intents != nil {
		edges = append(edges, searchquery.EdgeIntents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchQueryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchquery.EdgeIntents:
		ids := make([]ent.Value, 0, len(m.intents))
		for id := range m.intents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedintents != nil {
		edges = append(edges, searchquery.EdgeIntents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchQueryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case searchquery.EdgeIntents:
		ids := make([]ent.Value, 0, len(m.removedintents))
		for id := range m.removedintents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintents {
		edges = append(edges, searchquery.EdgeIntents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchQueryMutation) EdgeCleared(name string) bool {
	switch name {
	case searchquery.EdgeIntents:
		return m.clearedintents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchQueryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SearchQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchQueryMutation) ResetEdge(name string) error {
	switch name {
	case searchquery.EdgeIntents:
		m.ResetIntents()
		return nil
	}
	return fmt.Errorf("unknown SearchQuery edge %s", name)
}

// SpellEntryMutation represents an operation that mutates the SpellEntry nodes in the graph.
type SpellEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	text_hash     *string
	language      *string
	corrected     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SpellEntry, error)
	predicates    []predicate.SpellEntry
}

var _ ent.Mutation = (*SpellEntryMutation)(nil)

// spellentryOption allows management of the mutation configuration using functional options.
type spellentryOption func(*SpellEntryMutation)

// newSpellEntryMutation creates new mutation for the SpellEntry entity.
func newSpellEntryMutation(c config, op Op, opts ...spellentryOption) *SpellEntryMutation {
	m := &SpellEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSpellEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpellEntryID sets the ID field of the mutation.
func withSpellEntryID(id int) spellentryOption {
	return func(m *SpellEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SpellEntry
		)
		m.oldValue = func(ctx context.Context) (*SpellEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpellEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpellEntry sets the old SpellEntry of the mutation.
func withSpellEntry(node *SpellEntry) spellentryOption {
	return func(m *SpellEntryMutation) {
		m.oldValue = func(context.Context) (*SpellEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpellEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpellEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpellEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpellEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpellEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTextHash sets the "text_hash" field.
func (m *SpellEntryMutation) SetTextHash(s string) {
	m.text_hash = &s
}

// TextHash returns the value of the "text_hash" field in the mutation.
func (m *SpellEntryMutation) TextHash() (r string, exists bool) {
	v := m.text_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTextHash returns the old "text_hash" field's value of the SpellEntry entity.
// If the SpellEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpellEntryMutation) OldTextHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextHash: %w", err)
	}
	return oldValue.TextHash, nil
}

// ResetTextHash resets all changes to the "text_hash" field.
func (m *SpellEntryMutation) ResetTextHash() {
	m.text_hash = nil
}

// SetLanguage sets the "language" field.
func (m *SpellEntryMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SpellEntryMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the SpellEntry entity.
// If the SpellEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpellEntryMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SpellEntryMutation) ResetLanguage() {
	m.language = nil
}

// SetCorrected sets the "corrected" field.
func (m *SpellEntryMutation) SetCorrected(s string) {
	m.corrected = &s
}

// Corrected returns the value of the "corrected" field in the mutation.
func (m *SpellEntryMutation) Corrected() (r string, exists bool) {
	v := m.corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrected returns the old "corrected" field's value of the SpellEntry entity.
// If the SpellEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpellEntryMutation) OldCorrected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrected: %w", err)
	}
	return oldValue.Corrected, nil
}

// ResetCorrected resets all changes to the "corrected" field.
func (m *SpellEntryMutation) ResetCorrected() {
	m.corrected = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpellEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpellEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpellEntry entity.
// If the SpellEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpellEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpellEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SpellEntryMutation builder.
func (m *SpellEntryMutation) Where(ps ...predicate.SpellEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpellEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpellEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpellEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpellEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpellEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpellEntry).
func (m *SpellEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpellEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.text_hash != nil {
		fields = append(fields, spellentry.FieldTextHash)
	}
	if m.language != nil {
		fields = append(fields, spellentry.FieldLanguage)
	}
	if m.corrected != nil {
		fields = append(fields, spellentry.FieldCorrected)
	}
	if m.created_at != nil {
		fields = append(fields, spellentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpellEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spellentry.FieldTextHash:
		return m.TextHash()
	case spellentry.FieldLanguage:
		return m.Language()
	case spellentry.FieldCorrected:
		return m.Corrected()
	case spellentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpellEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spellentry.FieldTextHash:
		return m.OldTextHash(ctx)
	case spellentry.FieldLanguage:
		return m.OldLanguage(ctx)
	case spellentry.FieldCorrected:
		return m.OldCorrected(ctx)
	case spellentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpellEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpellEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spellentry.FieldTextHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextHash(v)
		return nil
	case spellentry.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case spellentry.FieldCorrected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrected(v)
		return nil
	case spellentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpellEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpellEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpellEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpellEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SpellEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpellEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpellEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpellEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SpellEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpellEntryMutation) ResetField(name string) error {
	switch name {
	case spellentry.FieldTextHash:
		m.ResetTextHash()
		return nil
	case spellentry.FieldLanguage:
		m.ResetLanguage()
		return nil
	case spellentry.FieldCorrected:
		m.ResetCorrected()
		return nil
	case spellentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpellEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpellEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpellEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpellEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpellEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpellEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpellEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpellEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SpellEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpellEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SpellEntry edge %s", name)
}
