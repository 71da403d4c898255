// Code generated by ent, DO NOT EDIT.

package spellentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the spellentry type in the database.
	Label = "spell_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTextHash holds the string denoting the text_hash field in the database.
	FieldTextHash = "text_hash"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCorrected holds the string denoting the corrected field in the database.
	FieldCorrected = "corrected"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the spellentry in the database.
	Table = "spell_entries"
)

// Columns holds all SQL columns for spellentry fields.
var Columns = []string{
	FieldID,
	FieldTextHash,
	FieldLanguage,
	FieldCorrected,
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

// OrderOption defines the ordering options for the SpellEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTextHash orders the results by the text_hash field.
func ByTextHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextHash, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCorrected orders the results by the corrected field.
func ByCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrected, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
