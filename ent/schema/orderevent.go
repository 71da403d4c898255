package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrderEvent holds the schema definition for the append-only event log.
// Events are keyed by channel ("order:{id}" or "mail:{uid}") with a dense,
// per-channel seq starting at 1. (channel, seq) is unique; rows are immutable.
type OrderEvent struct {
	ent.Schema
}

// Fields of the OrderEvent.
func (OrderEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Immutable(),
		field.Int("order_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Owning order; nil for mail-topic events"),
		field.Int("seq").
			Immutable().
			Comment("Per-channel sequence, dense from 1"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OrderEvent.
func (OrderEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "seq").Unique(),
		index.Fields("order_id"),
	}
}
