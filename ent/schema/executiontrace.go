package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionTrace holds the schema definition for the ExecutionTrace entity —
// one structured event in the life of a job. Rows are append-only; insertion
// order (the serial id) is the ordering within a job.
//
// There is deliberately no SQL foreign key to executions: the trace writer
// verifies job existence itself (with a bounded-retry orphan policy), and a
// referential failure must never be able to reject a batch.
type ExecutionTrace struct {
	ent.Schema
}

// Fields of the ExecutionTrace.
func (ExecutionTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("event_source").
			Comment("Logical emitter, e.g. Agent[role], Task[id], Crew[name]"),
		field.String("event_context").
			Optional().
			Comment("Free-text context for the event"),
		field.String("event_type").
			Comment("Closed vocabulary — anything else is dropped by the writer"),
		field.Text("output").
			Optional(),
		field.JSON("trace_metadata", map[string]interface{}{}).
			Optional(),
		field.String("group_id").
			Immutable().
			Comment("Matches the owning Execution's group_id"),
		field.String("group_email").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExecutionTrace.
func (ExecutionTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("group_id", "job_id"),
		index.Fields("event_type"),
		index.Fields("created_at"),
	}
}
