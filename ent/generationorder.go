// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/generationorder"
)

// GenerationOrder is the model entity for the GenerationOrder schema.
type GenerationOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Nil for mail_reply orders
	QueryID *int `json:"query_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind generationorder.Kind `json:"kind,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID *int `json:"intent_id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID *int `json:"article_id,omitempty"`
	// Status holds the value of the "status" field.
	Status generationorder.Status `json:"status,omitempty"`
	// RequestedBy holds the value of the "requested_by" field.
	RequestedBy generationorder.RequestedBy `json:"requested_by,omitempty"`
	// Kind-specific request data (keepTitle, threadId, userReplyId, ...)
	RequestPayload map[string]interface{} `json:"request_payload,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary string `json:"result_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationorder.FieldRequestPayload:
			values[i] = new([]byte)
		case generationorder.FieldID, generationorder.FieldQueryID, generationorder.FieldIntentID, generationorder.FieldArticleID:
			values[i] = new(sql.NullInt64)
		case generationorder.FieldKind, generationorder.FieldStatus, generationorder.FieldRequestedBy, generationorder.FieldResultSummary, generationorder.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case generationorder.FieldCreatedAt, generationorder.FieldStartedAt, generationorder.FieldFinishedAt, generationorder.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationOrder fields.
func (_m *GenerationOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationorder.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationorder.FieldQueryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field query_id", values[i])
			} else if value.Valid {
				_m.QueryID = new(int)
				*_m.QueryID = int(value.Int64)
			}
		case generationorder.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = generationorder.Kind(value.String)
			}
		case generationorder.FieldIntentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = new(int)
				*_m.IntentID = int(value.Int64)
			}
		case generationorder.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = new(int)
				*_m.ArticleID = int(value.Int64)
			}
		case generationorder.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = generationorder.Status(value.String)
			}
		case generationorder.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = generationorder.RequestedBy(value.String)
			}
		case generationorder.FieldRequestPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestPayload); err != nil {
					return fmt.Errorf("unmarshal field request_payload: %w", err)
				}
			}
		case generationorder.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = value.String
			}
		case generationorder.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case generationorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generationorder.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case generationorder.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case generationorder.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationOrder.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationOrder.
// Note that you need to call GenerationOrder.Unwrap() before calling this method if this GenerationOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationOrder) Update() *GenerationOrderUpdateOne {
	return NewGenerationOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationOrder) Unwrap() *GenerationOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationOrder) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationOrder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.QueryID; v != nil {
		builder.WriteString("query_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.IntentID; v != nil {
		builder.WriteString("intent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ArticleID; v != nil {
		builder.WriteString("article_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedBy))
	builder.WriteString(", ")
	builder.WriteString("request_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestPayload))
	builder.WriteString(", ")
	builder.WriteString("result_summary=")
	builder.WriteString(_m.ResultSummary)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationOrders is a parsable slice of GenerationOrder.
type GenerationOrders []*GenerationOrder
