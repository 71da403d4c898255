// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/lease"
)

// Lease is the model entity for the Lease schema.
type Lease struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType lease.ScopeType `json:"scope_type,omitempty"`
	// query:{queryId}, intent:{queryId}:{intentId}, article:{articleId}
	ScopeKey string `json:"scope_key,omitempty"`
	// OwnerOrderID holds the value of the "owner_order_id" field.
	OwnerOrderID int `json:"owner_order_id,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt time.Time `json:"lease_expires_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lease) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lease.FieldID, lease.FieldOwnerOrderID:
			values[i] = new(sql.NullInt64)
		case lease.FieldScopeType, lease.FieldScopeKey:
			values[i] = new(sql.NullString)
		case lease.FieldLeaseExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lease fields.
func (_m *Lease) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lease.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lease.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = lease.ScopeType(value.String)
			}
		case lease.FieldScopeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_key", values[i])
			} else if value.Valid {
				_m.ScopeKey = value.String
			}
		case lease.FieldOwnerOrderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_order_id", values[i])
			} else if value.Valid {
				_m.OwnerOrderID = int(value.Int64)
			}
		case lease.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lease.
// This includes values selected through modifiers, order, etc.
func (_m *Lease) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lease.
// Note that you need to call Lease.Unwrap() before calling this method if this Lease
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lease) Update() *LeaseUpdateOne {
	return NewLeaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lease entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lease) Unwrap() *Lease {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lease is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lease) String() string {
	var builder strings.Builder
	builder.WriteString("Lease(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_key=")
	builder.WriteString(_m.ScopeKey)
	builder.WriteString(", ")
	builder.WriteString("owner_order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerOrderID))
	builder.WriteString(", ")
	builder.WriteString("lease_expires_at=")
	builder.WriteString(_m.LeaseExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leases is a parsable slice of Lease.
type Leases []*Lease
