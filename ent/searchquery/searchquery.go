// Code generated by ent, DO NOT EDIT.

package searchquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the searchquery type in the database.
	Label = "search_query"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldOriginalValue holds the string denoting the original_value field in the database.
	FieldOriginalValue = "original_value"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFiletype holds the string denoting the filetype field in the database.
	FieldFiletype = "filetype"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIntents holds the string denoting the intents edge name in mutations.
	EdgeIntents = "intents"
	// Table holds the table name of the searchquery in the database.
	Table = "queries"
	// IntentsTable is the table that holds the intents relation/edge. The primary key declared below.
	IntentsTable = "query_intents"
	// IntentsInverseTable is the table name for the Intent entity.
	// It exists in this package in order to avoid circular dependency with the "intent" package.
	IntentsInverseTable = "intents"
)

// Columns holds all SQL columns for searchquery fields.
var Columns = []string{
	FieldID,
	FieldValue,
	FieldOriginalValue,
	FieldLanguage,
	FieldFiletype,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// IntentsPrimaryKey and IntentsColumn2 are the table columns denoting the
	// primary key for the intents relation (M2M).
	IntentsPrimaryKey = []string{"query_id", "intent_id"}
)

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
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultFiletype holds the default value on creation for the "filetype" field.
	DefaultFiletype string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchQuery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByOriginalValue orders the results by the original_value field.
func ByOriginalValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalValue, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByFiletype orders the results by the filetype field.
func ByFiletype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiletype, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIntentsCount orders the results by intents count.
func ByIntentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIntentsStep(), opts...)
	}
}

// ByIntents orders the results by intents terms.
func ByIntents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newIntentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, IntentsTable, IntentsPrimaryKey...),
	)
}
