package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngineSetting holds the schema definition for the EngineSetting entity —
// per-engine configuration flags (e.g. crewai / "crewai_debug_tracing")
// consulted once and cached by the trace writer.
type EngineSetting struct {
	ent.Schema
}

// Fields of the EngineSetting.
func (EngineSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("engine").
			Comment("Engine name, e.g. \"crewai\""),
		field.String("key"),
		field.String("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EngineSetting.
func (EngineSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engine", "key").
			Unique(),
	}
}
