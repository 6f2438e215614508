package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryConfig holds the schema definition for the MemoryConfig entity — the
// per-group memory backend profile. At most one active config per group; the
// explicit "disabled" profile turns off all three memory types.
type MemoryConfig struct {
	ent.Schema
}

// Fields of the MemoryConfig.
func (MemoryConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("group_id").
			Immutable(),
		field.Enum("backend_type").
			Values("default", "databricks", "disabled").
			Default("default"),
		field.Bool("short_term_enabled").
			Default(true),
		field.Bool("long_term_enabled").
			Default(true),
		field.Bool("entity_enabled").
			Default(true),
		field.JSON("embedder", map[string]interface{}{}).
			Optional().
			Comment("Custom embedder config; presence triggers local vector storage"),
		field.JSON("databricks", map[string]interface{}{}).
			Optional().
			Comment("Endpoint / index settings for the databricks backend"),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MemoryConfig.
func (MemoryConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "is_active"),
	}
}
