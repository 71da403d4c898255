// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
)

// MailAttachment is the model entity for the MailAttachment schema.
type MailAttachment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReplyID holds the value of the "reply_id" field.
	ReplyID int `json:"reply_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind mailattachment.Kind `json:"kind,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// TextContent holds the value of the "text_content" field.
	TextContent *string `json:"text_content,omitempty"`
	// BinaryContent holds the value of the "binary_content" field.
	BinaryContent *[]byte `json:"binary_content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MailAttachmentQuery when eager-loading is set.
	Edges        MailAttachmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MailAttachmentEdges holds the relations/edges for other nodes in the graph.
type MailAttachmentEdges struct {
	// Reply holds the value of the reply edge.
	Reply *MailReply `json:"reply,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReplyOrErr returns the Reply value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MailAttachmentEdges) ReplyOrErr() (*MailReply, error) {
	if e.Reply != nil {
		return e.Reply, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mailreply.Label}
	}
	return nil, &NotLoadedError{edge: "reply"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MailAttachment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mailattachment.FieldBinaryContent:
			values[i] = new([]byte)
		case mailattachment.FieldID, mailattachment.FieldReplyID:
			values[i] = new(sql.NullInt64)
		case mailattachment.FieldKind, mailattachment.FieldMimeType, mailattachment.FieldFilename, mailattachment.FieldTextContent:
			values[i] = new(sql.NullString)
		case mailattachment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MailAttachment fields.
func (_m *MailAttachment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mailattachment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mailattachment.FieldReplyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reply_id", values[i])
			} else if value.Valid {
				_m.ReplyID = int(value.Int64)
			}
		case mailattachment.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = mailattachment.Kind(value.String)
			}
		case mailattachment.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case mailattachment.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case mailattachment.FieldTextContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_content", values[i])
			} else if value.Valid {
				_m.TextContent = new(string)
				*_m.TextContent = value.String
			}
		case mailattachment.FieldBinaryContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field binary_content", values[i])
			} else if value != nil {
				_m.BinaryContent = value
			}
		case mailattachment.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MailAttachment.
// This includes values selected through modifiers, order, etc.
func (_m *MailAttachment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReply queries the "reply" edge of the MailAttachment entity.
func (_m *MailAttachment) QueryReply() *MailReplyQuery {
	return NewMailAttachmentClient(_m.config).QueryReply(_m)
}

// Update returns a builder for updating this MailAttachment.
// Note that you need to call MailAttachment.Unwrap() before calling this method if this MailAttachment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MailAttachment) Update() *MailAttachmentUpdateOne {
	return NewMailAttachmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MailAttachment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MailAttachment) Unwrap() *MailAttachment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MailAttachment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MailAttachment) String() string {
	var builder strings.Builder
	builder.WriteString("MailAttachment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("reply_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplyID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	if v := _m.TextContent; v != nil {
		builder.WriteString("text_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BinaryContent; v != nil {
		builder.WriteString("binary_content=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MailAttachments is a parsable slice of MailAttachment.
type MailAttachments []*MailAttachment
