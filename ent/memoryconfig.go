// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/memoryconfig"
)

// MemoryConfig is the model entity for the MemoryConfig schema.
type MemoryConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// BackendType holds the value of the "backend_type" field.
	BackendType memoryconfig.BackendType `json:"backend_type,omitempty"`
	// ShortTermEnabled holds the value of the "short_term_enabled" field.
	ShortTermEnabled bool `json:"short_term_enabled,omitempty"`
	// LongTermEnabled holds the value of the "long_term_enabled" field.
	LongTermEnabled bool `json:"long_term_enabled,omitempty"`
	// EntityEnabled holds the value of the "entity_enabled" field.
	EntityEnabled bool `json:"entity_enabled,omitempty"`
	// Custom embedder config; presence triggers local vector storage
	Embedder map[string]interface{} `json:"embedder,omitempty"`
	// Endpoint / index settings for the databricks backend
	Databricks map[string]interface{} `json:"databricks,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryconfig.FieldEmbedder, memoryconfig.FieldDatabricks:
			values[i] = new([]byte)
		case memoryconfig.FieldShortTermEnabled, memoryconfig.FieldLongTermEnabled, memoryconfig.FieldEntityEnabled, memoryconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case memoryconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case memoryconfig.FieldGroupID, memoryconfig.FieldBackendType:
			values[i] = new(sql.NullString)
		case memoryconfig.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryConfig fields.
func (_m *MemoryConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case memoryconfig.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case memoryconfig.FieldBackendType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend_type", values[i])
			} else if value.Valid {
				_m.BackendType = memoryconfig.BackendType(value.String)
			}
		case memoryconfig.FieldShortTermEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field short_term_enabled", values[i])
			} else if value.Valid {
				_m.ShortTermEnabled = value.Bool
			}
		case memoryconfig.FieldLongTermEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field long_term_enabled", values[i])
			} else if value.Valid {
				_m.LongTermEnabled = value.Bool
			}
		case memoryconfig.FieldEntityEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field entity_enabled", values[i])
			} else if value.Valid {
				_m.EntityEnabled = value.Bool
			}
		case memoryconfig.FieldEmbedder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedder", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedder); err != nil {
					return fmt.Errorf("unmarshal field embedder: %w", err)
				}
			}
		case memoryconfig.FieldDatabricks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field databricks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Databricks); err != nil {
					return fmt.Errorf("unmarshal field databricks: %w", err)
				}
			}
		case memoryconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case memoryconfig.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryConfig.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MemoryConfig.
// Note that you need to call MemoryConfig.Unwrap() before calling this method if this MemoryConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryConfig) Update() *MemoryConfigUpdateOne {
	return NewMemoryConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryConfig) Unwrap() *MemoryConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryConfig) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("backend_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackendType))
	builder.WriteString(", ")
	builder.WriteString("short_term_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShortTermEnabled))
	builder.WriteString(", ")
	builder.WriteString("long_term_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongTermEnabled))
	builder.WriteString(", ")
	builder.WriteString("entity_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityEnabled))
	builder.WriteString(", ")
	builder.WriteString("embedder=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedder))
	builder.WriteString(", ")
	builder.WriteString("databricks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Databricks))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryConfigs is a parsable slice of MemoryConfig.
type MemoryConfigs []*MemoryConfig
