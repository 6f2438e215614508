package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity — the
// authoritative lifecycle record of one job.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		// The internal id (serial) is the monotonic identity; job_id is the
		// caller-supplied external key, unique within a group.
		field.String("job_id").
			Immutable().
			Comment("Caller-supplied opaque identifier, unique per group"),
		field.String("group_id").
			Immutable().
			Comment("Owning tenant — stamped on every persisted row"),
		field.String("group_email").
			Optional().
			Comment("Email of the user who submitted the job"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "stopped").
			Default("pending"),
		field.Bool("is_stopping").
			Default(false).
			Comment("Set while a stop request is in flight; only valid when status=running"),
		field.String("stop_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the job was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the worker began processing (pending → running)"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set exactly once, on the terminal transition"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Caller-supplied structured inputs"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Text("error").
			Optional().
			Nillable(),
		field.JSON("partial_results", []map[string]interface{}{}).
			Optional().
			Comment("Results posted by the worker before a stop"),
		field.String("run_name").
			Optional(),
		field.String("created_by_email").
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Node that ran the worker — for startup orphan cleanup"),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "job_id").
			Unique(),
		index.Fields("group_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("pod_id").
			Annotations(entsql.IndexWhere("pod_id IS NOT NULL")),
	}
}
