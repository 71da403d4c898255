package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrderLog holds the schema definition for operator-facing breadcrumbs.
// No uniqueness constraints; rows are written best-effort during pipelines.
type OrderLog struct {
	ent.Schema
}

// Fields of the OrderLog.
func (OrderLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("order_id").
			Immutable(),
		field.Enum("stage").
			Values("order", "spell", "intent", "article").
			Default("order"),
		field.Enum("level").
			Values("debug", "info", "warn", "error").
			Default("info"),
		field.Text("message"),
		field.JSON("meta", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OrderLog.
func (OrderLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "created_at"),
	}
}
