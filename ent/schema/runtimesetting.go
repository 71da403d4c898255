package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RuntimeSetting holds the schema definition for DB-backed tunables.
// Read through the settings cache with a short TTL; unknown or malformed
// values fall back to compiled-in defaults.
type RuntimeSetting struct {
	ent.Schema
}

// Fields of the RuntimeSetting.
func (RuntimeSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.String("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
