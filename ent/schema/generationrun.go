package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationRun holds the schema definition for article generation run stats.
// One row per provider invocation; aggregated for latency estimation.
type GenerationRun struct {
	ent.Schema
}

// Fields of the GenerationRun.
func (GenerationRun) Fields() []ent.Field {
	return []ent.Field{
		field.Int("order_id").
			Optional().
			Nillable(),
		field.Int("article_id").
			Optional().
			Nillable().
			Comment("Set once the article row exists"),
		field.Enum("kind").
			Values("preview", "content").
			Default("content"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Int("attempts").
			Default(0),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock for the whole run"),
		field.Int64("llm_duration_ms").
			Default(0).
			Comment("Time spent inside the winning provider attempt"),
		field.Text("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the GenerationRun.
func (GenerationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "kind", "created_at"),
	}
}
