// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// SearchQuery is the model entity for the SearchQuery schema.
type SearchQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Clean, spell-corrected query text
	Value string `json:"value,omitempty"`
	// Pre-correction user input
	OriginalValue string `json:"original_value,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Parsed from filetype: operators; last one wins
	Filetype string `json:"filetype,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchQueryQuery when eager-loading is set.
	Edges        SearchQueryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchQueryEdges holds the relations/edges for other nodes in the graph.
type SearchQueryEdges struct {
	// Intents holds the value of the intents edge.
	Intents []*Intent `json:"intents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntentsOrErr returns the Intents value or an error if the edge
// was not loaded in eager-loading.
func (e SearchQueryEdges) IntentsOrErr() ([]*Intent, error) {
	if e.loadedTypes[0] {
		return e.Intents, nil
	}
	return nil, &NotLoadedError{edge: "intents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchquery.FieldID:
			values[i] = new(sql.NullInt64)
		case searchquery.FieldValue, searchquery.FieldOriginalValue, searchquery.FieldLanguage, searchquery.FieldFiletype:
			values[i] = new(sql.NullString)
		case searchquery.FieldCreatedAt, searchquery.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchQuery fields.
func (_m *SearchQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchquery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case searchquery.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case searchquery.FieldOriginalValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_value", values[i])
			} else if value.Valid {
				_m.OriginalValue = value.String
			}
		case searchquery.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case searchquery.FieldFiletype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filetype", values[i])
			} else if value.Valid {
				_m.Filetype = value.String
			}
		case searchquery.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case searchquery.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SearchQuery.
// This includes values selected through modifiers, order, etc.
func (_m *SearchQuery) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntents queries the "intents" edge of the SearchQuery entity.
func (_m *SearchQuery) QueryIntents() *IntentQuery {
	return NewSearchQueryClient(_m.config).QueryIntents(_m)
}

// Update returns a builder for updating this SearchQuery.
// Note that you need to call SearchQuery.Unwrap() before calling this method if this SearchQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchQuery) Update() *SearchQueryUpdateOne {
	return NewSearchQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchQuery) Unwrap() *SearchQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchQuery) String() string {
	var builder strings.Builder
	builder.WriteString("SearchQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("original_value=")
	builder.WriteString(_m.OriginalValue)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("filetype=")
	builder.WriteString(_m.Filetype)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchQueries is a parsable slice of SearchQuery.
type SearchQueries []*SearchQuery
