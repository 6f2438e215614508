package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for the ExecutionLog entity — one
// unstructured log line forwarded from a worker process. Pure append-only.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Immutable().
			Comment("The job_id of the originating execution"),
		field.Text("content"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("group_email").
			Optional(),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "timestamp"),
		index.Fields("group_id"),
	}
}
