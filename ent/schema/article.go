package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for a generated article.
type Article struct {
	ent.Schema
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.Int("intent_id"),
		field.Text("title"),
		field.String("slug").
			Unique().
			Comment("Includes the filetype extension, e.g. sqlite-fts5.md"),
		field.Text("summary").
			Optional(),
		field.Text("content").
			Optional().
			Nillable().
			Comment("Nil until the content phase has run"),
		field.String("filetype").
			Default("md"),
		field.String("generated_by").
			Optional().
			Comment("Provider/model identifier"),
		field.Enum("status").
			Values("preview_ready", "content_generating", "content_ready", "content_failed").
			Default("preview_ready"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Article.
func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("articles").
			Field("intent_id").
			Unique().
			Required(),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id"),
		index.Fields("status"),
	}
}
