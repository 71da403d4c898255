// Code generated by ent, DO NOT EDIT.

package mailattachment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mailattachment type in the database.
	Label = "mail_attachment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReplyID holds the string denoting the reply_id field in the database.
	FieldReplyID = "reply_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldTextContent holds the string denoting the text_content field in the database.
	FieldTextContent = "text_content"
	// FieldBinaryContent holds the string denoting the binary_content field in the database.
	FieldBinaryContent = "binary_content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReply holds the string denoting the reply edge name in mutations.
	EdgeReply = "reply"
	// Table holds the table name of the mailattachment in the database.
	Table = "mail_attachments"
	// ReplyTable is the table that holds the reply relation/edge.
	ReplyTable = "mail_attachments"
	// ReplyInverseTable is the table name for the MailReply entity.
	// It exists in this package in order to avoid circular dependency with the "mailreply" package.
	ReplyInverseTable = "mail_replies"
	// ReplyColumn is the table column denoting the reply relation/edge.
	ReplyColumn = "reply_id"
)

// Columns holds all SQL columns for mailattachment fields.
var Columns = []string{
	FieldID,
	FieldReplyID,
	FieldKind,
	FieldMimeType,
	FieldFilename,
	FieldTextContent,
	FieldBinaryContent,
	FieldCreatedAt,
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
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindText, KindImage:
		return nil
	default:
		return fmt.Errorf("mailattachment: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the MailAttachment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReplyID orders the results by the reply_id field.
func ByReplyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByTextContent orders the results by the text_content field.
func ByTextContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReplyField orders the results by reply field.
func ByReplyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReplyStep(), sql.OrderByField(field, opts...))
	}
}
func newReplyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReplyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReplyTable, ReplyColumn),
	)
}
