// Code generated by ent, DO NOT EDIT.

package lease

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lease type in the database.
	Label = "lease"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeKey holds the string denoting the scope_key field in the database.
	FieldScopeKey = "scope_key"
	// FieldOwnerOrderID holds the string denoting the owner_order_id field in the database.
	FieldOwnerOrderID = "owner_order_id"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// Table holds the table name of the lease in the database.
	Table = "leases"
)

// Columns holds all SQL columns for lease fields.
var Columns = []string{
	FieldID,
	FieldScopeType,
	FieldScopeKey,
	FieldOwnerOrderID,
	FieldLeaseExpiresAt,
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

// ScopeType defines the type for the "scope_type" enum field.
type ScopeType string

// ScopeType values.
const (
	ScopeTypeQuery   ScopeType = "query"
	ScopeTypeIntent  ScopeType = "intent"
	ScopeTypeArticle ScopeType = "article"
)

func (st ScopeType) String() string {
	return string(st)
}

// ScopeTypeValidator is a validator for the "scope_type" field enum values. It is called by the builders before save.
func ScopeTypeValidator(st ScopeType) error {
	switch st {
	case ScopeTypeQuery, ScopeTypeIntent, ScopeTypeArticle:
		return nil
	default:
		return fmt.Errorf("lease: invalid enum value for scope_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Lease queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeKey orders the results by the scope_key field.
func ByScopeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeKey, opts...).ToFunc()
}

// ByOwnerOrderID orders the results by the owner_order_id field.
func ByOwnerOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerOrderID, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}
