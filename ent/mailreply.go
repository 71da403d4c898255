// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
)

// MailReply is the model entity for the MailReply schema.
type MailReply struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID int `json:"thread_id,omitempty"`
	// Role holds the value of the "role" field.
	Role mailreply.Role `json:"role,omitempty"`
	// Status holds the value of the "status" field.
	Status mailreply.Status `json:"status,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Unread holds the value of the "unread" field.
	Unread bool `json:"unread,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MailReplyQuery when eager-loading is set.
	Edges        MailReplyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MailReplyEdges holds the relations/edges for other nodes in the graph.
type MailReplyEdges struct {
	// Thread holds the value of the thread edge.
	Thread *MailThread `json:"thread,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*MailAttachment `json:"attachments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MailReplyEdges) ThreadOrErr() (*MailThread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mailthread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e MailReplyEdges) AttachmentsOrErr() ([]*MailAttachment, error) {
	if e.loadedTypes[1] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MailReply) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mailreply.FieldUnread:
			values[i] = new(sql.NullBool)
		case mailreply.FieldID, mailreply.FieldThreadID:
			values[i] = new(sql.NullInt64)
		case mailreply.FieldRole, mailreply.FieldStatus, mailreply.FieldContent:
			values[i] = new(sql.NullString)
		case mailreply.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MailReply fields.
func (_m *MailReply) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mailreply.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mailreply.FieldThreadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = int(value.Int64)
			}
		case mailreply.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = mailreply.Role(value.String)
			}
		case mailreply.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mailreply.Status(value.String)
			}
		case mailreply.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case mailreply.FieldUnread:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unread", values[i])
			} else if value.Valid {
				_m.Unread = value.Bool
			}
		case mailreply.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MailReply.
// This includes values selected through modifiers, order, etc.
func (_m *MailReply) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the MailReply entity.
func (_m *MailReply) QueryThread() *MailThreadQuery {
	return NewMailReplyClient(_m.config).QueryThread(_m)
}

// QueryAttachments queries the "attachments" edge of the MailReply entity.
func (_m *MailReply) QueryAttachments() *MailAttachmentQuery {
	return NewMailReplyClient(_m.config).QueryAttachments(_m)
}

// Update returns a builder for updating this MailReply.
// Note that you need to call MailReply.Unwrap() before calling this method if this MailReply
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MailReply) Update() *MailReplyUpdateOne {
	return NewMailReplyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MailReply entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MailReply) Unwrap() *MailReply {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MailReply is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MailReply) String() string {
	var builder strings.Builder
	builder.WriteString("MailReply(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThreadID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("unread=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unread))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MailReplies is a parsable slice of MailReply.
type MailReplies []*MailReply
