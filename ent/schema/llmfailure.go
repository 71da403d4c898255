package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMFailure holds the schema definition for failed provider attempts.
// One row per failed attempt; written by the retry executor for post-mortems.
type LLMFailure struct {
	ent.Schema
}

// Fields of the LLMFailure.
func (LLMFailure) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider identifier (stub, grpc, ...)"),
		field.String("component").
			Comment("Engine component that made the call (search_pipeline, mail_pipeline, query)"),
		field.String("trigger").
			Comment("Operation name (resolve_intents, create_article, ...)"),
		field.String("correlation_id"),
		field.Int("attempt"),
		field.Int64("duration_ms"),
		field.String("error_name"),
		field.Text("error_message"),
		field.Text("request_snapshot").
			Optional().
			Nillable().
			Comment("Reconstructed request body; only recorded on timeout"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMFailure.
func (LLMFailure) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger", "created_at"),
	}
}
