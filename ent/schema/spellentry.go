package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpellEntry holds the schema definition for cached spell corrections.
type SpellEntry struct {
	ent.Schema
}

// Fields of the SpellEntry.
func (SpellEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("text_hash").
			Comment("SHA-256 of the lowercased input"),
		field.String("language"),
		field.Text("corrected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SpellEntry.
func (SpellEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("text_hash", "language").Unique(),
	}
}
