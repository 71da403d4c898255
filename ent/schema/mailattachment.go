package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MailAttachment holds the schema definition for reply attachments.
// Text attachments store UTF-8 in text_content; image attachments store
// provider-generated binaries in binary_content.
type MailAttachment struct {
	ent.Schema
}

// Fields of the MailAttachment.
func (MailAttachment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("reply_id"),
		field.Enum("kind").
			Values("text", "image"),
		field.String("mime_type"),
		field.String("filename").
			Optional(),
		field.Text("text_content").
			Optional().
			Nillable(),
		field.Bytes("binary_content").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MailAttachment.
func (MailAttachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("reply", MailReply.Type).
			Ref("attachments").
			Field("reply_id").
			Unique().
			Required(),
	}
}

// Indexes of the MailAttachment.
func (MailAttachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reply_id"),
	}
}
