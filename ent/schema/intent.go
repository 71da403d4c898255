package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intent holds the schema definition for a resolved search intent.
// Intents are shared across queries via the query_intents link table.
type Intent struct {
	ent.Schema
}

// Fields of the Intent.
func (Intent) Fields() []ent.Field {
	return []ent.Field{
		field.Text("intent_text"),
		field.Text("title").
			Comment("Display title proposed by the provider"),
		field.Text("summary").
			Optional(),
		field.String("filetype").
			Default("md"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Intent.
func (Intent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("queries", SearchQuery.Type).
			Ref("intents"),
		edge.To("articles", Article.Type),
	}
}

// Indexes of the Intent.
func (Intent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_text", "filetype").Unique(),
	}
}
