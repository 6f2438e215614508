package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolRecord holds the schema definition for the ToolRecord entity — a
// group-scoped tool registration resolvable by id or name from crew configs.
type ToolRecord struct {
	ent.Schema
}

// Fields of the ToolRecord.
func (ToolRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.String("group_id").
			Immutable(),
		field.String("kind").
			Default("builtin").
			Comment("builtin, mcp, databricks, powerbi — mcp tools fan out"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Stored tool configuration; agent overrides merge over this"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolRecord.
func (ToolRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "name").
			Unique(),
	}
}
