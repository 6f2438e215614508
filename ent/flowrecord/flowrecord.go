// Code generated by ent, DO NOT EDIT.

package flowrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flowrecord type in the database.
	Label = "flow_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "flow_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNodes holds the string denoting the nodes field in the database.
	FieldNodes = "nodes"
	// FieldEdges holds the string denoting the edges field in the database.
	FieldEdges = "edges"
	// FieldStartingPoints holds the string denoting the starting_points field in the database.
	FieldStartingPoints = "starting_points"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the flowrecord in the database.
	Table = "flow_records"
)

// Columns holds all SQL columns for flowrecord fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldName,
	FieldNodes,
	FieldEdges,
	FieldStartingPoints,
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

// OrderOption defines the ordering options for the FlowRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
