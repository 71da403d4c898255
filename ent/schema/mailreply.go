package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MailReply holds the schema definition for a single message in a thread.
type MailReply struct {
	ent.Schema
}

// Fields of the MailReply.
func (MailReply) Fields() []ent.Field {
	return []ent.Field{
		field.Int("thread_id"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Enum("status").
			Values("pending", "streaming", "completed", "error").
			Default("completed"),
		field.Text("content"),
		field.Bool("unread").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MailReply.
func (MailReply) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", MailThread.Type).
			Ref("replies").
			Field("thread_id").
			Unique().
			Required(),
		edge.To("attachments", MailAttachment.Type),
	}
}

// Indexes of the MailReply.
func (MailReply) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
		index.Fields("thread_id", "unread"),
	}
}
