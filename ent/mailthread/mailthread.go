// Code generated by ent, DO NOT EDIT.

package mailthread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mailthread type in the database.
	Label = "mail_thread"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUID holds the string denoting the uid field in the database.
	FieldUID = "uid"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldUserSetTitle holds the string denoting the user_set_title field in the database.
	FieldUserSetTitle = "user_set_title"
	// FieldContextSummary holds the string denoting the context_summary field in the database.
	FieldContextSummary = "context_summary"
	// FieldSummaryTokenCount holds the string denoting the summary_token_count field in the database.
	FieldSummaryTokenCount = "summary_token_count"
	// FieldLastSummarizedReplyID holds the string denoting the last_summarized_reply_id field in the database.
	FieldLastSummarizedReplyID = "last_summarized_reply_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeReplies holds the string denoting the replies edge name in mutations.
	EdgeReplies = "replies"
	// Table holds the table name of the mailthread in the database.
	Table = "mail_threads"
	// RepliesTable is the table that holds the replies relation/edge.
	RepliesTable = "mail_replies"
	// RepliesInverseTable is the table name for the MailReply entity.
	// It exists in this package in order to avoid circular dependency with the "mailreply" package.
	RepliesInverseTable = "mail_replies"
	// RepliesColumn is the table column denoting the replies relation/edge.
	RepliesColumn = "thread_id"
)

// Columns holds all SQL columns for mailthread fields.
var Columns = []string{
	FieldID,
	FieldUID,
	FieldTitle,
	FieldUserSetTitle,
	FieldContextSummary,
	FieldSummaryTokenCount,
	FieldLastSummarizedReplyID,
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
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultUserSetTitle holds the default value on creation for the "user_set_title" field.
	DefaultUserSetTitle bool
	// DefaultSummaryTokenCount holds the default value on creation for the "summary_token_count" field.
	DefaultSummaryTokenCount int
	// DefaultLastSummarizedReplyID holds the default value on creation for the "last_summarized_reply_id" field.
	DefaultLastSummarizedReplyID int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MailThread queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUID orders the results by the uid field.
func ByUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByUserSetTitle orders the results by the user_set_title field.
func ByUserSetTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserSetTitle, opts...).ToFunc()
}

// ByContextSummary orders the results by the context_summary field.
func ByContextSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextSummary, opts...).ToFunc()
}

// BySummaryTokenCount orders the results by the summary_token_count field.
func BySummaryTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryTokenCount, opts...).ToFunc()
}

// ByLastSummarizedReplyID orders the results by the last_summarized_reply_id field.
func ByLastSummarizedReplyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSummarizedReplyID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRepliesCount orders the results by replies count.
func ByRepliesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRepliesStep(), opts...)
	}
}

// ByReplies orders the results by replies terms.
func ByReplies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRepliesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRepliesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RepliesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
	)
}
