package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationOrder holds the schema definition for a unit of generation work.
//
// Status transitions form a DAG:
//
//	queued → running → {completed, failed}
//	queued → cancelled
//
// started_at is set exactly on the queued→running claim; finished_at exactly
// on entry to any terminal state. Orders have no attempt counter; retries
// live at the provider-call level, a failed pipeline fails the order.
type GenerationOrder struct {
	ent.Schema
}

// Fields of the GenerationOrder.
func (GenerationOrder) Fields() []ent.Field {
	return []ent.Field{
		field.Int("query_id").
			Optional().
			Nillable().
			Comment("Nil for mail_reply orders"),
		field.Enum("kind").
			Values("query_full", "intent_regen", "article_regen_keep_title", "mail_reply"),
		field.Int("intent_id").
			Optional().
			Nillable(),
		field.Int("article_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "cancelled").
			Default("queued"),
		field.Enum("requested_by").
			Values("user", "system").
			Default("user"),
		field.JSON("request_payload", map[string]interface{}{}).
			Optional().
			Comment("Kind-specific request data (keepTitle, threadId, userReplyId, ...)"),
		field.Text("result_summary").
			Optional(),
		field.Text("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the GenerationOrder.
func (GenerationOrder) Indexes() []ent.Index {
	return []ent.Index{
		// Worker poll: oldest queued first
		index.Fields("status", "created_at"),
		// Conflict checks at order acceptance
		index.Fields("query_id", "status"),
	}
}
