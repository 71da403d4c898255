// Code generated by ent, DO NOT EDIT.

package generationorder

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationorder type in the database.
	Label = "generation_order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQueryID holds the string denoting the query_id field in the database.
	FieldQueryID = "query_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldArticleID holds the string denoting the article_id field in the database.
	FieldArticleID = "article_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// FieldRequestPayload holds the string denoting the request_payload field in the database.
	FieldRequestPayload = "request_payload"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the generationorder in the database.
	Table = "generation_orders"
)

// Columns holds all SQL columns for generationorder fields.
var Columns = []string{
	FieldID,
	FieldQueryID,
	FieldKind,
	FieldIntentID,
	FieldArticleID,
	FieldStatus,
	FieldRequestedBy,
	FieldRequestPayload,
	FieldResultSummary,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindQueryFull             Kind = "query_full"
	KindIntentRegen           Kind = "intent_regen"
	KindArticleRegenKeepTitle Kind = "article_regen_keep_title"
	KindMailReply             Kind = "mail_reply"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindQueryFull, KindIntentRegen, KindArticleRegenKeepTitle, KindMailReply:
		return nil
	default:
		return fmt.Errorf("generationorder: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("generationorder: invalid enum value for status field: %q", s)
	}
}

// RequestedBy defines the type for the "requested_by" enum field.
type RequestedBy string

// RequestedByUser is the default value of the RequestedBy enum.
const DefaultRequestedBy = RequestedByUser

// RequestedBy values.
const (
	RequestedByUser   RequestedBy = "user"
	RequestedBySystem RequestedBy = "system"
)

func (rb RequestedBy) String() string {
	return string(rb)
}

// RequestedByValidator is a validator for the "requested_by" field enum values. It is called by the builders before save.
func RequestedByValidator(rb RequestedBy) error {
	switch rb {
	case RequestedByUser, RequestedBySystem:
		return nil
	default:
		return fmt.Errorf("generationorder: invalid enum value for requested_by field: %q", rb)
	}
}

// OrderOption defines the ordering options for the GenerationOrder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueryID orders the results by the query_id field.
func ByQueryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByArticleID orders the results by the article_id field.
func ByArticleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
