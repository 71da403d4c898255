// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/mailthread"
)

// MailThread is the model entity for the MailThread schema.
type MailThread struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External identifier used in URLs and event channels
	UID string `json:"uid,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// True once the user renames the thread; blocks auto-derivation
	UserSetTitle bool `json:"user_set_title,omitempty"`
	// LLM summary of older replies beyond the sliding window
	ContextSummary string `json:"context_summary,omitempty"`
	// SummaryTokenCount holds the value of the "summary_token_count" field.
	SummaryTokenCount int `json:"summary_token_count,omitempty"`
	// Highest reply id covered by context_summary
	LastSummarizedReplyID int `json:"last_summarized_reply_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MailThreadQuery when eager-loading is set.
	Edges        MailThreadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MailThreadEdges holds the relations/edges for other nodes in the graph.
type MailThreadEdges struct {
	// Replies holds the value of the replies edge.
	Replies []*MailReply `json:"replies,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RepliesOrErr returns the Replies value or an error if the edge
// was not loaded in eager-loading.
func (e MailThreadEdges) RepliesOrErr() ([]*MailReply, error) {
	if e.loadedTypes[0] {
		return e.Replies, nil
	}
	return nil, &NotLoadedError{edge: "replies"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MailThread) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mailthread.FieldUserSetTitle:
			values[i] = new(sql.NullBool)
		case mailthread.FieldID, mailthread.FieldSummaryTokenCount, mailthread.FieldLastSummarizedReplyID:
			values[i] = new(sql.NullInt64)
		case mailthread.FieldUID, mailthread.FieldTitle, mailthread.FieldContextSummary:
			values[i] = new(sql.NullString)
		case mailthread.FieldCreatedAt, mailthread.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MailThread fields.
func (_m *MailThread) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mailthread.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mailthread.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case mailthread.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case mailthread.FieldUserSetTitle:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field user_set_title", values[i])
			} else if value.Valid {
				_m.UserSetTitle = value.Bool
			}
		case mailthread.FieldContextSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_summary", values[i])
			} else if value.Valid {
				_m.ContextSummary = value.String
			}
		case mailthread.FieldSummaryTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field summary_token_count", values[i])
			} else if value.Valid {
				_m.SummaryTokenCount = int(value.Int64)
			}
		case mailthread.FieldLastSummarizedReplyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_summarized_reply_id", values[i])
			} else if value.Valid {
				_m.LastSummarizedReplyID = int(value.Int64)
			}
		case mailthread.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mailthread.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MailThread.
// This includes values selected through modifiers, order, etc.
func (_m *MailThread) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReplies queries the "replies" edge of the MailThread entity.
func (_m *MailThread) QueryReplies() *MailReplyQuery {
	return NewMailThreadClient(_m.config).QueryReplies(_m)
}

// Update returns a builder for updating this MailThread.
// Note that you need to call MailThread.Unwrap() before calling this method if this MailThread
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MailThread) Update() *MailThreadUpdateOne {
	return NewMailThreadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MailThread entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MailThread) Unwrap() *MailThread {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MailThread is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MailThread) String() string {
	var builder strings.Builder
	builder.WriteString("MailThread(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("user_set_title=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserSetTitle))
	builder.WriteString(", ")
	builder.WriteString("context_summary=")
	builder.WriteString(_m.ContextSummary)
	builder.WriteString(", ")
	builder.WriteString("summary_token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryTokenCount))
	builder.WriteString(", ")
	builder.WriteString("last_summarized_reply_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSummarizedReplyID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MailThreads is a parsable slice of MailThread.
type MailThreads []*MailThread
