// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EngineSetting is the predicate function for enginesetting builders.
type EngineSetting func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// ExecutionTrace is the predicate function for executiontrace builders.
type ExecutionTrace func(*sql.Selector)

// FlowRecord is the predicate function for flowrecord builders.
type FlowRecord func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupMembership is the predicate function for groupmembership builders.
type GroupMembership func(*sql.Selector)

// MemoryConfig is the predicate function for memoryconfig builders.
type MemoryConfig func(*sql.Selector)

// ToolRecord is the predicate function for toolrecord builders.
type ToolRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
