package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lease holds the schema definition for advisory resource leases.
// A row is valid only while lease_expires_at > now; expired rows are garbage
// and are deleted at acquisition time.
type Lease struct {
	ent.Schema
}

// Fields of the Lease.
func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("scope_type").
			Values("query", "intent", "article"),
		field.String("scope_key").
			Comment("query:{queryId}, intent:{queryId}:{intentId}, article:{articleId}"),
		field.Int("owner_order_id"),
		field.Time("lease_expires_at"),
	}
}

// Indexes of the Lease.
func (Lease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope_type", "scope_key").Unique(),
		index.Fields("owner_order_id"),
		index.Fields("lease_expires_at"),
	}
}
