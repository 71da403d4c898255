// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/intent"
)

// Intent is the model entity for the Intent schema.
type Intent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IntentText holds the value of the "intent_text" field.
	IntentText string `json:"intent_text,omitempty"`
	// Display title proposed by the provider
	Title string `json:"title,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Filetype holds the value of the "filetype" field.
	Filetype string `json:"filetype,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntentQuery when eager-loading is set.
	Edges        IntentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntentEdges holds the relations/edges for other nodes in the graph.
type IntentEdges struct {
	// Queries holds the value of the queries edge.
	Queries []*SearchQuery `json:"queries,omitempty"`
	// Articles holds the value of the articles edge.
	Articles []*Article `json:"articles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) QueriesOrErr() ([]*SearchQuery, error) {
	if e.loadedTypes[0] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// ArticlesOrErr returns the Articles value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) ArticlesOrErr() ([]*Article, error) {
	if e.loadedTypes[1] {
		return e.Articles, nil
	}
	return nil, &NotLoadedError{edge: "articles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Intent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intent.FieldID:
			values[i] = new(sql.NullInt64)
		case intent.FieldIntentText, intent.FieldTitle, intent.FieldSummary, intent.FieldFiletype:
			values[i] = new(sql.NullString)
		case intent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Intent fields.
func (_m *Intent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case intent.FieldIntentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_text", values[i])
			} else if value.Valid {
				_m.IntentText = value.String
			}
		case intent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case intent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case intent.FieldFiletype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filetype", values[i])
			} else if value.Valid {
				_m.Filetype = value.String
			}
		case intent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Intent.
// This includes values selected through modifiers, order, etc.
func (_m *Intent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQueries queries the "queries" edge of the Intent entity.
func (_m *Intent) QueryQueries() *SearchQueryQuery {
	return NewIntentClient(_m.config).QueryQueries(_m)
}

// QueryArticles queries the "articles" edge of the Intent entity.
func (_m *Intent) QueryArticles() *ArticleQuery {
	return NewIntentClient(_m.config).QueryArticles(_m)
}

// Update returns a builder for updating this Intent.
// Note that you need to call Intent.Unwrap() before calling this method if this Intent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Intent) Update() *IntentUpdateOne {
	return NewIntentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Intent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Intent) Unwrap() *Intent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Intent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Intent) String() string {
	var builder strings.Builder
	builder.WriteString("Intent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent_text=")
	builder.WriteString(_m.IntentText)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("filetype=")
	builder.WriteString(_m.Filetype)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Intents is a parsable slice of Intent.
type Intents []*Intent
