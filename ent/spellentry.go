// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/spellentry"
)

// SpellEntry is the model entity for the SpellEntry schema.
type SpellEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SHA-256 of the lowercased input
	TextHash string `json:"text_hash,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Corrected holds the value of the "corrected" field.
	Corrected string `json:"corrected,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpellEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case spellentry.FieldID:
			values[i] = new(sql.NullInt64)
		case spellentry.FieldTextHash, spellentry.FieldLanguage, spellentry.FieldCorrected:
			values[i] = new(sql.NullString)
		case spellentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpellEntry fields.
func (_m *SpellEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case spellentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case spellentry.FieldTextHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_hash", values[i])
			} else if value.Valid {
				_m.TextHash = value.String
			}
		case spellentry.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case spellentry.FieldCorrected:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected", values[i])
			} else if value.Valid {
				_m.Corrected = value.String
			}
		case spellentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpellEntry.
// This includes values selected through modifiers, order, etc.
func (_m *SpellEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SpellEntry.
// Note that you need to call SpellEntry.Unwrap() before calling this method if this SpellEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpellEntry) Update() *SpellEntryUpdateOne {
	return NewSpellEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpellEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpellEntry) Unwrap() *SpellEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpellEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpellEntry) String() string {
	var builder strings.Builder
	builder.WriteString("SpellEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text_hash=")
	builder.WriteString(_m.TextHash)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("corrected=")
	builder.WriteString(_m.Corrected)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpellEntries is a parsable slice of SpellEntry.
type SpellEntries []*SpellEntry
