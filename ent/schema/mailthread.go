package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MailThread holds the schema definition for a mail conversation thread.
type MailThread struct {
	ent.Schema
}

// Fields of the MailThread.
func (MailThread) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			Comment("External identifier used in URLs and event channels"),
		field.Text("title").
			Optional().
			Default(""),
		field.Bool("user_set_title").
			Default(false).
			Comment("True once the user renames the thread; blocks auto-derivation"),
		field.Text("context_summary").
			Optional().
			Comment("LLM summary of older replies beyond the sliding window"),
		field.Int("summary_token_count").
			Default(0),
		field.Int("last_summarized_reply_id").
			Default(0).
			Comment("Highest reply id covered by context_summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MailThread.
func (MailThread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("replies", MailReply.Type),
	}
}
