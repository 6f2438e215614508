package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlowRecord holds the schema definition for the FlowRecord entity — a
// persisted flow definition (nodes, edges, starting points). The incoming
// request's flow_config may override starting points at build time.
type FlowRecord struct {
	ent.Schema
}

// Fields of the FlowRecord.
func (FlowRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("flow_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("name"),
		field.JSON("nodes", []map[string]interface{}{}).
			Optional(),
		field.JSON("edges", []map[string]interface{}{}).
			Optional(),
		field.JSON("starting_points", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FlowRecord.
func (FlowRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "name"),
	}
}
