// Code generated by ent, DO NOT EDIT.

package memoryconfig

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryconfig type in the database.
	Label = "memory_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldBackendType holds the string denoting the backend_type field in the database.
	FieldBackendType = "backend_type"
	// FieldShortTermEnabled holds the string denoting the short_term_enabled field in the database.
	FieldShortTermEnabled = "short_term_enabled"
	// FieldLongTermEnabled holds the string denoting the long_term_enabled field in the database.
	FieldLongTermEnabled = "long_term_enabled"
	// FieldEntityEnabled holds the string denoting the entity_enabled field in the database.
	FieldEntityEnabled = "entity_enabled"
	// FieldEmbedder holds the string denoting the embedder field in the database.
	FieldEmbedder = "embedder"
	// FieldDatabricks holds the string denoting the databricks field in the database.
	FieldDatabricks = "databricks"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the memoryconfig in the database.
	Table = "memory_configs"
)

// Columns holds all SQL columns for memoryconfig fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldBackendType,
	FieldShortTermEnabled,
	FieldLongTermEnabled,
	FieldEntityEnabled,
	FieldEmbedder,
	FieldDatabricks,
	FieldIsActive,
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
	// DefaultShortTermEnabled holds the default value on creation for the "short_term_enabled" field.
	DefaultShortTermEnabled bool
	// DefaultLongTermEnabled holds the default value on creation for the "long_term_enabled" field.
	DefaultLongTermEnabled bool
	// DefaultEntityEnabled holds the default value on creation for the "entity_enabled" field.
	DefaultEntityEnabled bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// BackendType defines the type for the "backend_type" enum field.
type BackendType string

// BackendTypeDefault is the default value of the BackendType enum.
const DefaultBackendType = BackendTypeDefault

// BackendType values.
const (
	BackendTypeDefault    BackendType = "default"
	BackendTypeDatabricks BackendType = "databricks"
	BackendTypeDisabled   BackendType = "disabled"
)

func (bt BackendType) String() string {
	return string(bt)
}

// BackendTypeValidator is a validator for the "backend_type" field enum values. It is called by the builders before save.
func BackendTypeValidator(bt BackendType) error {
	switch bt {
	case BackendTypeDefault, BackendTypeDatabricks, BackendTypeDisabled:
		return nil
	default:
		return fmt.Errorf("memoryconfig: invalid enum value for backend_type field: %q", bt)
	}
}

// OrderOption defines the ordering options for the MemoryConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByBackendType orders the results by the backend_type field.
func ByBackendType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackendType, opts...).ToFunc()
}

// ByShortTermEnabled orders the results by the short_term_enabled field.
func ByShortTermEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortTermEnabled, opts...).ToFunc()
}

// ByLongTermEnabled orders the results by the long_term_enabled field.
func ByLongTermEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongTermEnabled, opts...).ToFunc()
}

// ByEntityEnabled orders the results by the entity_enabled field.
func ByEntityEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityEnabled, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
