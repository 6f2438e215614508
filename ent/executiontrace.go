// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/executiontrace"
)

// ExecutionTrace is the model entity for the ExecutionTrace schema.
type ExecutionTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Logical emitter, e.g. Agent[role], Task[id], Crew[name]
	EventSource string `json:"event_source,omitempty"`
	// Free-text context for the event
	EventContext string `json:"event_context,omitempty"`
	// Closed vocabulary — anything else is dropped by the writer
	EventType string `json:"event_type,omitempty"`
	// Output holds the value of the "output" field.
	Output string `json:"output,omitempty"`
	// TraceMetadata holds the value of the "trace_metadata" field.
	TraceMetadata map[string]interface{} `json:"trace_metadata,omitempty"`
	// Matches the owning Execution's group_id
	GroupID string `json:"group_id,omitempty"`
	// GroupEmail holds the value of the "group_email" field.
	GroupEmail string `json:"group_email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executiontrace.FieldTraceMetadata:
			values[i] = new([]byte)
		case executiontrace.FieldID:
			values[i] = new(sql.NullInt64)
		case executiontrace.FieldJobID, executiontrace.FieldEventSource, executiontrace.FieldEventContext, executiontrace.FieldEventType, executiontrace.FieldOutput, executiontrace.FieldGroupID, executiontrace.FieldGroupEmail:
			values[i] = new(sql.NullString)
		case executiontrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionTrace fields.
func (_m *ExecutionTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executiontrace.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case executiontrace.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case executiontrace.FieldEventSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_source", values[i])
			} else if value.Valid {
				_m.EventSource = value.String
			}
		case executiontrace.FieldEventContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_context", values[i])
			} else if value.Valid {
				_m.EventContext = value.String
			}
		case executiontrace.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case executiontrace.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case executiontrace.FieldTraceMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trace_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TraceMetadata); err != nil {
					return fmt.Errorf("unmarshal field trace_metadata: %w", err)
				}
			}
		case executiontrace.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case executiontrace.FieldGroupEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_email", values[i])
			} else if value.Valid {
				_m.GroupEmail = value.String
			}
		case executiontrace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionTrace.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExecutionTrace.
// Note that you need to call ExecutionTrace.Unwrap() before calling this method if this ExecutionTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionTrace) Update() *ExecutionTraceUpdateOne {
	return NewExecutionTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionTrace) Unwrap() *ExecutionTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionTrace) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("event_source=")
	builder.WriteString(_m.EventSource)
	builder.WriteString(", ")
	builder.WriteString("event_context=")
	builder.WriteString(_m.EventContext)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("trace_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.TraceMetadata))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("group_email=")
	builder.WriteString(_m.GroupEmail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionTraces is a parsable slice of ExecutionTrace.
type ExecutionTraces []*ExecutionTrace
