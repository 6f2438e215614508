// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/flowrecord"
)

// FlowRecord is the model entity for the FlowRecord schema.
type FlowRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Nodes holds the value of the "nodes" field.
	Nodes []map[string]interface{} `json:"nodes,omitempty"`
	// Edges holds the value of the "edges" field.
	Edges []map[string]interface{} `json:"edges,omitempty"`
	// StartingPoints holds the value of the "starting_points" field.
	StartingPoints []string `json:"starting_points,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowrecord.FieldNodes, flowrecord.FieldEdges, flowrecord.FieldStartingPoints:
			values[i] = new([]byte)
		case flowrecord.FieldID, flowrecord.FieldGroupID, flowrecord.FieldName:
			values[i] = new(sql.NullString)
		case flowrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowRecord fields.
func (_m *FlowRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case flowrecord.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case flowrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case flowrecord.FieldNodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nodes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Nodes); err != nil {
					return fmt.Errorf("unmarshal field nodes: %w", err)
				}
			}
		case flowrecord.FieldEdges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field edges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Edges); err != nil {
					return fmt.Errorf("unmarshal field edges: %w", err)
				}
			}
		case flowrecord.FieldStartingPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field starting_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StartingPoints); err != nil {
					return fmt.Errorf("unmarshal field starting_points: %w", err)
				}
			}
		case flowrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FlowRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FlowRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FlowRecord.
// Note that you need to call FlowRecord.Unwrap() before calling this method if this FlowRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowRecord) Update() *FlowRecordUpdateOne {
	return NewFlowRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowRecord) Unwrap() *FlowRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlowRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FlowRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Nodes))
	builder.WriteString(", ")
	builder.WriteString("edges=")
	builder.WriteString(fmt.Sprintf("%v", _m.Edges))
	builder.WriteString(", ")
	builder.WriteString("starting_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartingPoints))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlowRecords is a parsable slice of FlowRecord.
type FlowRecords []*FlowRecord
