// Code generated by ent, DO NOT EDIT.

package executiontrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the executiontrace type in the database.
	Label = "execution_trace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldEventSource holds the string denoting the event_source field in the database.
	FieldEventSource = "event_source"
	// FieldEventContext holds the string denoting the event_context field in the database.
	FieldEventContext = "event_context"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldTraceMetadata holds the string denoting the trace_metadata field in the database.
	FieldTraceMetadata = "trace_metadata"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldGroupEmail holds the string denoting the group_email field in the database.
	FieldGroupEmail = "group_email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the executiontrace in the database.
	Table = "execution_traces"
)

// Columns holds all SQL columns for executiontrace fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldEventSource,
	FieldEventContext,
	FieldEventType,
	FieldOutput,
	FieldTraceMetadata,
	FieldGroupID,
	FieldGroupEmail,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExecutionTrace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByEventSource orders the results by the event_source field.
func ByEventSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventSource, opts...).ToFunc()
}

// ByEventContext orders the results by the event_context field.
func ByEventContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventContext, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByGroupEmail orders the results by the group_email field.
func ByGroupEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
