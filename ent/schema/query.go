package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchQuery holds the schema definition for a submitted search query.
// The stored value is the spell-corrected query; original_value preserves
// what the user actually typed. The type is named SearchQuery because
// "Query" is a predeclared ent identifier; the table stays "queries".
type SearchQuery struct {
	ent.Schema
}

// Annotations of the SearchQuery.
func (SearchQuery) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queries"},
	}
}

// Fields of the SearchQuery.
func (SearchQuery) Fields() []ent.Field {
	return []ent.Field{
		field.Text("value").
			Comment("Clean, spell-corrected query text"),
		field.Text("original_value").
			Comment("Pre-correction user input"),
		field.String("language").
			Default("en"),
		field.String("filetype").
			Default("md").
			Comment("Parsed from filetype: operators; last one wins"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SearchQuery.
func (SearchQuery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("intents", Intent.Type).
			StorageKey(edge.Table("query_intents"), edge.Columns("query_id", "intent_id")),
	}
}

// Indexes of the SearchQuery.
func (SearchQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("value", "language").Unique(),
	}
}
