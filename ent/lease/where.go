// Code generated by ent, DO NOT EDIT.

package lease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldID, id))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldScopeKey, v))
}

// OwnerOrderID applies equality check predicate on the "owner_order_id" field. It's identical to OwnerOrderIDEQ.
func OwnerOrderID(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldOwnerOrderID, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldScopeKey, v))
}

// OwnerOrderIDEQ applies the EQ predicate on the "owner_order_id" field.
func OwnerOrderIDEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldOwnerOrderID, v))
}

// OwnerOrderIDNEQ applies the NEQ predicate on the "owner_order_id" field.
func OwnerOrderIDNEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldOwnerOrderID, v))
}

// OwnerOrderIDIn applies the In predicate on the "owner_order_id" field.
func OwnerOrderIDIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldOwnerOrderID, vs...))
}

// OwnerOrderIDNotIn applies the NotIn predicate on the "owner_order_id" field.
func OwnerOrderIDNotIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldOwnerOrderID, vs...))
}

// OwnerOrderIDGT applies the GT predicate on the "owner_order_id" field.
func OwnerOrderIDGT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldOwnerOrderID, v))
}

// OwnerOrderIDGTE applies the GTE predicate on the "owner_order_id" field.
func OwnerOrderIDGTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldOwnerOrderID, v))
}

// OwnerOrderIDLT applies the LT predicate on the "owner_order_id" field.
func OwnerOrderIDLT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldOwnerOrderID, v))
}

// OwnerOrderIDLTE applies the LTE predicate on the "owner_order_id" field.
func OwnerOrderIDLTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldOwnerOrderID, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.NotPredicates(p))
}
