// Code generated by ent, DO NOT EDIT.

package article

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the article type in the database.
	Label = "article"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldFiletype holds the string denoting the filetype field in the database.
	FieldFiletype = "filetype"
	// FieldGeneratedBy holds the string denoting the generated_by field in the database.
	FieldGeneratedBy = "generated_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIntent holds the string denoting the intent edge name in mutations.
	EdgeIntent = "intent"
	// Table holds the table name of the article in the database.
	Table = "articles"
	// IntentTable is the table that holds the intent relation/edge.
	IntentTable = "articles"
	// IntentInverseTable is the table name for the Intent entity.
	// It exists in this package in order to avoid circular dependency with the "intent" package.
	IntentInverseTable = "intents"
	// IntentColumn is the table column denoting the intent relation/edge.
	IntentColumn = "intent_id"
)

// Columns holds all SQL columns for article fields.
var Columns = []string{
	FieldID,
	FieldIntentID,
	FieldTitle,
	FieldSlug,
	FieldSummary,
	FieldContent,
	FieldFiletype,
	FieldGeneratedBy,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFiletype holds the default value on creation for the "filetype" field.
	DefaultFiletype string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPreviewReady is the default value of the Status enum.
const DefaultStatus = StatusPreviewReady

// Status values.
const (
	StatusPreviewReady      Status = "preview_ready"
	StatusContentGenerating Status = "content_generating"
	StatusContentReady      Status = "content_ready"
	StatusContentFailed     Status = "content_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPreviewReady, StatusContentGenerating, StatusContentReady, StatusContentFailed:
		return nil
	default:
		return fmt.Errorf("article: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Article queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByFiletype orders the results by the filetype field.
func ByFiletype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiletype, opts...).ToFunc()
}

// ByGeneratedBy orders the results by the generated_by field.
func ByGeneratedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIntentField orders the results by intent field.
func ByIntentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntentStep(), sql.OrderByField(field, opts...))
	}
}
func newIntentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
	)
}
