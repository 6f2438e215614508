// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/enginesetting"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/ent/executionlog"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/ent/flowrecord"
	"github.com/kasal-project/kasal/ent/group"
	"github.com/kasal-project/kasal/ent/groupmembership"
	"github.com/kasal-project/kasal/ent/memoryconfig"
	"github.com/kasal-project/kasal/ent/predicate"
	"github.com/kasal-project/kasal/ent/toolrecord"
	"github.com/kasal-project/kasal/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEngineSetting   = "EngineSetting"
	TypeExecution       = "Execution"
	TypeExecutionLog    = "ExecutionLog"
	TypeExecutionTrace  = "ExecutionTrace"
	TypeFlowRecord      = "FlowRecord"
	TypeGroup           = "Group"
	TypeGroupMembership = "GroupMembership"
	TypeMemoryConfig    = "MemoryConfig"
	TypeToolRecord      = "ToolRecord"
	TypeUser            = "User"
)

// EngineSettingMutation represents an operation that mutates the EngineSetting nodes in the graph.
type EngineSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	engine        *string
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EngineSetting, error)
	predicates    []predicate.EngineSetting
}

var _ ent.Mutation = (*EngineSettingMutation)(nil)

// enginesettingOption allows management of the mutation configuration using functional options.
type enginesettingOption func(*EngineSettingMutation)

// newEngineSettingMutation creates new mutation for the EngineSetting entity.
func newEngineSettingMutation(c config, op Op, opts ...enginesettingOption) *EngineSettingMutation {
	m := &EngineSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeEngineSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngineSettingID sets the ID field of the mutation.
func withEngineSettingID(id int) enginesettingOption {
	return func(m *EngineSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *EngineSetting
		)
		m.oldValue = func(ctx context.Context) (*EngineSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngineSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngineSetting sets the old EngineSetting of the mutation.
func withEngineSetting(node *EngineSetting) enginesettingOption {
	return func(m *EngineSettingMutation) {
		m.oldValue = func(context.Context) (*EngineSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngineSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngineSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngineSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngineSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngineSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngine sets the "engine" field.
func (m *EngineSettingMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *EngineSettingMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ResetEngine resets all changes to the "engine" field.
func (m *EngineSettingMutation) ResetEngine() {
	m.engine = nil
}

// SetKey sets the "key" field.
func (m *EngineSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *EngineSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *EngineSettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *EngineSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *EngineSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *EngineSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EngineSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EngineSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EngineSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EngineSettingMutation builder.
func (m *EngineSettingMutation) Where(ps ...predicate.EngineSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngineSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngineSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngineSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngineSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngineSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngineSetting).
func (m *EngineSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngineSettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.engine != nil {
		fields = append(fields, enginesetting.FieldEngine)
	}
	if m.key != nil {
		fields = append(fields, enginesetting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, enginesetting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, enginesetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngineSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enginesetting.FieldEngine:
		return m.Engine()
	case enginesetting.FieldKey:
		return m.Key()
	case enginesetting.FieldValue:
		return m.Value()
	case enginesetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngineSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enginesetting.FieldEngine:
		return m.OldEngine(ctx)
	case enginesetting.FieldKey:
		return m.OldKey(ctx)
	case enginesetting.FieldValue:
		return m.OldValue(ctx)
	case enginesetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EngineSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngineSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enginesetting.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case enginesetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case enginesetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case enginesetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EngineSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngineSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngineSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngineSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EngineSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngineSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngineSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngineSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EngineSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngineSettingMutation) ResetField(name string) error {
	switch name {
	case enginesetting.FieldEngine:
		m.ResetEngine()
		return nil
	case enginesetting.FieldKey:
		m.ResetKey()
		return nil
	case enginesetting.FieldValue:
		m.ResetValue()
		return nil
	case enginesetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EngineSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngineSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngineSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngineSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngineSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngineSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngineSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngineSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EngineSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngineSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EngineSetting edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	job_id                *string
	group_id              *string
	group_email           *string
	status                *execution.Status
	is_stopping           *bool
	stop_reason           *string
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	inputs                *map[string]interface{}
	result                *map[string]interface{}
	error                 *string
	partial_results       *[]map[string]interface{}
	appendpartial_results []map[string]interface{}
	run_name              *string
	created_by_email      *string
	pod_id                *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Execution, error)
	predicates            []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id int) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ExecutionMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExecutionMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExecutionMutation) ResetJobID() {
	m.job_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *ExecutionMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ExecutionMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ExecutionMutation) ResetGroupID() {
	m.group_id = nil
}

// SetGroupEmail sets the "group_email" field.
func (m *ExecutionMutation) SetGroupEmail(s string) {
	m.group_email = &s
}

// GroupEmail returns the value of the "group_email" field in the mutation.
func (m *ExecutionMutation) GroupEmail() (r string, exists bool) {
	v := m.group_email
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupEmail returns the old "group_email" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldGroupEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupEmail: %w", err)
	}
	return oldValue.GroupEmail, nil
}

// ClearGroupEmail clears the value of the "group_email" field.
func (m *ExecutionMutation) ClearGroupEmail() {
	m.group_email = nil
	m.clearedFields[execution.FieldGroupEmail] = struct{}{}
}

// GroupEmailCleared returns if the "group_email" field was cleared in this mutation.
func (m *ExecutionMutation) GroupEmailCleared() bool {
	_, ok := m.clearedFields[execution.FieldGroupEmail]
	return ok
}

// ResetGroupEmail resets all changes to the "group_email" field.
func (m *ExecutionMutation) ResetGroupEmail() {
	m.group_email = nil
	delete(m.clearedFields, execution.FieldGroupEmail)
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetIsStopping sets the "is_stopping" field.
func (m *ExecutionMutation) SetIsStopping(b bool) {
	m.is_stopping = &b
}

// IsStopping returns the value of the "is_stopping" field in the mutation.
func (m *ExecutionMutation) IsStopping() (r bool, exists bool) {
	v := m.is_stopping
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStopping returns the old "is_stopping" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldIsStopping(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStopping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStopping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStopping: %w", err)
	}
	return oldValue.IsStopping, nil
}

// ResetIsStopping resets all changes to the "is_stopping" field.
func (m *ExecutionMutation) ResetIsStopping() {
	m.is_stopping = nil
}

// SetStopReason sets the "stop_reason" field.
func (m *ExecutionMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *ExecutionMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStopReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ClearStopReason clears the value of the "stop_reason" field.
func (m *ExecutionMutation) ClearStopReason() {
	m.stop_reason = nil
	m.clearedFields[execution.FieldStopReason] = struct{}{}
}

// StopReasonCleared returns if the "stop_reason" field was cleared in this mutation.
func (m *ExecutionMutation) StopReasonCleared() bool {
	_, ok := m.clearedFields[execution.FieldStopReason]
	return ok
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *ExecutionMutation) ResetStopReason() {
	m.stop_reason = nil
	delete(m.clearedFields, execution.FieldStopReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[execution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, execution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// SetInputs sets the "inputs" field.
func (m *ExecutionMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *ExecutionMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *ExecutionMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[execution.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *ExecutionMutation) InputsCleared() bool {
	_, ok := m.clearedFields[execution.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *ExecutionMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, execution.FieldInputs)
}

// SetResult sets the "result" field.
func (m *ExecutionMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ExecutionMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ExecutionMutation) ClearResult() {
	m.result = nil
	m.clearedFields[execution.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExecutionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[execution.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExecutionMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, execution.FieldResult)
}

// SetError sets the "error" field.
func (m *ExecutionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ExecutionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[execution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[execution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, execution.FieldError)
}

// SetPartialResults sets the "partial_results" field.
func (m *ExecutionMutation) SetPartialResults(value []map[string]interface{}) {
	m.partial_results = &value
	m.appendpartial_results = nil
}

// PartialResults returns the value of the "partial_results" field in the mutation.
func (m *ExecutionMutation) PartialResults() (r []map[string]interface{}, exists bool) {
	v := m.partial_results
	if v == nil {
		return
	}
	return *v, true
}

// OldPartialResults returns the old "partial_results" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPartialResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartialResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartialResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartialResults: %w", err)
	}
	return oldValue.PartialResults, nil
}

// AppendPartialResults adds value to the "partial_results" field.
func (m *ExecutionMutation) AppendPartialResults(value []map[string]interface{}) {
	m.appendpartial_results = append(m.appendpartial_results, value...)
}

// AppendedPartialResults returns the list of values that were appended to the "partial_results" field in this mutation.
func (m *ExecutionMutation) AppendedPartialResults() ([]map[string]interface{}, bool) {
	if len(m.appendpartial_results) == 0 {
		return nil, false
	}
	return m.appendpartial_results, true
}

// ClearPartialResults clears the value of the "partial_results" field.
func (m *ExecutionMutation) ClearPartialResults() {
	m.partial_results = nil
	m.appendpartial_results = nil
	m.clearedFields[execution.FieldPartialResults] = struct{}{}
}

// PartialResultsCleared returns if the "partial_results" field was cleared in this mutation.
func (m *ExecutionMutation) PartialResultsCleared() bool {
	_, ok := m.clearedFields[execution.FieldPartialResults]
	return ok
}

// ResetPartialResults resets all changes to the "partial_results" field.
func (m *ExecutionMutation) ResetPartialResults() {
	m.partial_results = nil
	m.appendpartial_results = nil
	delete(m.clearedFields, execution.FieldPartialResults)
}

// SetRunName sets the "run_name" field.
func (m *ExecutionMutation) SetRunName(s string) {
	m.run_name = &s
}

// RunName returns the value of the "run_name" field in the mutation.
func (m *ExecutionMutation) RunName() (r string, exists bool) {
	v := m.run_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRunName returns the old "run_name" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRunName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunName: %w", err)
	}
	return oldValue.RunName, nil
}

// ClearRunName clears the value of the "run_name" field.
func (m *ExecutionMutation) ClearRunName() {
	m.run_name = nil
	m.clearedFields[execution.FieldRunName] = struct{}{}
}

// RunNameCleared returns if the "run_name" field was cleared in this mutation.
func (m *ExecutionMutation) RunNameCleared() bool {
	_, ok := m.clearedFields[execution.FieldRunName]
	return ok
}

// ResetRunName resets all changes to the "run_name" field.
func (m *ExecutionMutation) ResetRunName() {
	m.run_name = nil
	delete(m.clearedFields, execution.FieldRunName)
}

// SetCreatedByEmail sets the "created_by_email" field.
func (m *ExecutionMutation) SetCreatedByEmail(s string) {
	m.created_by_email = &s
}

// CreatedByEmail returns the value of the "created_by_email" field in the mutation.
func (m *ExecutionMutation) CreatedByEmail() (r string, exists bool) {
	v := m.created_by_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByEmail returns the old "created_by_email" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCreatedByEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByEmail: %w", err)
	}
	return oldValue.CreatedByEmail, nil
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (m *ExecutionMutation) ClearCreatedByEmail() {
	m.created_by_email = nil
	m.clearedFields[execution.FieldCreatedByEmail] = struct{}{}
}

// CreatedByEmailCleared returns if the "created_by_email" field was cleared in this mutation.
func (m *ExecutionMutation) CreatedByEmailCleared() bool {
	_, ok := m.clearedFields[execution.FieldCreatedByEmail]
	return ok
}

// ResetCreatedByEmail resets all changes to the "created_by_email" field.
func (m *ExecutionMutation) ResetCreatedByEmail() {
	m.created_by_email = nil
	delete(m.clearedFields, execution.FieldCreatedByEmail)
}

// SetPodID sets the "pod_id" field.
func (m *ExecutionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ExecutionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ExecutionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[execution.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ExecutionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ExecutionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, execution.FieldPodID)
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.job_id != nil {
		fields = append(fields, execution.FieldJobID)
	}
	if m.group_id != nil {
		fields = append(fields, execution.FieldGroupID)
	}
	if m.group_email != nil {
		fields = append(fields, execution.FieldGroupEmail)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.is_stopping != nil {
		fields = append(fields, execution.FieldIsStopping)
	}
	if m.stop_reason != nil {
		fields = append(fields, execution.FieldStopReason)
	}
	if m.created_at != nil {
		fields = append(fields, execution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.inputs != nil {
		fields = append(fields, execution.FieldInputs)
	}
	if m.result != nil {
		fields = append(fields, execution.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, execution.FieldError)
	}
	if m.partial_results != nil {
		fields = append(fields, execution.FieldPartialResults)
	}
	if m.run_name != nil {
		fields = append(fields, execution.FieldRunName)
	}
	if m.created_by_email != nil {
		fields = append(fields, execution.FieldCreatedByEmail)
	}
	if m.pod_id != nil {
		fields = append(fields, execution.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldJobID:
		return m.JobID()
	case execution.FieldGroupID:
		return m.GroupID()
	case execution.FieldGroupEmail:
		return m.GroupEmail()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldIsStopping:
		return m.IsStopping()
	case execution.FieldStopReason:
		return m.StopReason()
	case execution.FieldCreatedAt:
		return m.CreatedAt()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	case execution.FieldInputs:
		return m.Inputs()
	case execution.FieldResult:
		return m.Result()
	case execution.FieldError:
		return m.Error()
	case execution.FieldPartialResults:
		return m.PartialResults()
	case execution.FieldRunName:
		return m.RunName()
	case execution.FieldCreatedByEmail:
		return m.CreatedByEmail()
	case execution.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldJobID:
		return m.OldJobID(ctx)
	case execution.FieldGroupID:
		return m.OldGroupID(ctx)
	case execution.FieldGroupEmail:
		return m.OldGroupEmail(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldIsStopping:
		return m.OldIsStopping(ctx)
	case execution.FieldStopReason:
		return m.OldStopReason(ctx)
	case execution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case execution.FieldInputs:
		return m.OldInputs(ctx)
	case execution.FieldResult:
		return m.OldResult(ctx)
	case execution.FieldError:
		return m.OldError(ctx)
	case execution.FieldPartialResults:
		return m.OldPartialResults(ctx)
	case execution.FieldRunName:
		return m.OldRunName(ctx)
	case execution.FieldCreatedByEmail:
		return m.OldCreatedByEmail(ctx)
	case execution.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case execution.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case execution.FieldGroupEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupEmail(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldIsStopping:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStopping(v)
		return nil
	case execution.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	case execution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case execution.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case execution.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case execution.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case execution.FieldPartialResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartialResults(v)
		return nil
	case execution.FieldRunName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunName(v)
		return nil
	case execution.FieldCreatedByEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByEmail(v)
		return nil
	case execution.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldGroupEmail) {
		fields = append(fields, execution.FieldGroupEmail)
	}
	if m.FieldCleared(execution.FieldStopReason) {
		fields = append(fields, execution.FieldStopReason)
	}
	if m.FieldCleared(execution.FieldStartedAt) {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.FieldCleared(execution.FieldInputs) {
		fields = append(fields, execution.FieldInputs)
	}
	if m.FieldCleared(execution.FieldResult) {
		fields = append(fields, execution.FieldResult)
	}
	if m.FieldCleared(execution.FieldError) {
		fields = append(fields, execution.FieldError)
	}
	if m.FieldCleared(execution.FieldPartialResults) {
		fields = append(fields, execution.FieldPartialResults)
	}
	if m.FieldCleared(execution.FieldRunName) {
		fields = append(fields, execution.FieldRunName)
	}
	if m.FieldCleared(execution.FieldCreatedByEmail) {
		fields = append(fields, execution.FieldCreatedByEmail)
	}
	if m.FieldCleared(execution.FieldPodID) {
		fields = append(fields, execution.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldGroupEmail:
		m.ClearGroupEmail()
		return nil
	case execution.FieldStopReason:
		m.ClearStopReason()
		return nil
	case execution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case execution.FieldInputs:
		m.ClearInputs()
		return nil
	case execution.FieldResult:
		m.ClearResult()
		return nil
	case execution.FieldError:
		m.ClearError()
		return nil
	case execution.FieldPartialResults:
		m.ClearPartialResults()
		return nil
	case execution.FieldRunName:
		m.ClearRunName()
		return nil
	case execution.FieldCreatedByEmail:
		m.ClearCreatedByEmail()
		return nil
	case execution.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldJobID:
		m.ResetJobID()
		return nil
	case execution.FieldGroupID:
		m.ResetGroupID()
		return nil
	case execution.FieldGroupEmail:
		m.ResetGroupEmail()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldIsStopping:
		m.ResetIsStopping()
		return nil
	case execution.FieldStopReason:
		m.ResetStopReason()
		return nil
	case execution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case execution.FieldInputs:
		m.ResetInputs()
		return nil
	case execution.FieldResult:
		m.ResetResult()
		return nil
	case execution.FieldError:
		m.ResetError()
		return nil
	case execution.FieldPartialResults:
		m.ResetPartialResults()
		return nil
	case execution.FieldRunName:
		m.ResetRunName()
		return nil
	case execution.FieldCreatedByEmail:
		m.ResetCreatedByEmail()
		return nil
	case execution.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Execution edge %s", name)
}

// ExecutionLogMutation represents an operation that mutates the ExecutionLog nodes in the graph.
type ExecutionLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	execution_id  *string
	content       *string
	timestamp     *time.Time
	group_id      *string
	group_email   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExecutionLog, error)
	predicates    []predicate.ExecutionLog
}

var _ ent.Mutation = (*ExecutionLogMutation)(nil)

// executionlogOption allows management of the mutation configuration using functional options.
type executionlogOption func(*ExecutionLogMutation)

// newExecutionLogMutation creates new mutation for the ExecutionLog entity.
func newExecutionLogMutation(c config, op Op, opts ...executionlogOption) *ExecutionLogMutation {
	m := &ExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionLogID sets the ID field of the mutation.
func withExecutionLogID(id int) executionlogOption {
	return func(m *ExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionLog sets the old ExecutionLog of the mutation.
func withExecutionLog(node *ExecutionLog) executionlogOption {
	return func(m *ExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionLogMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionLogMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetContent sets the "content" field.
func (m *ExecutionLogMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExecutionLogMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExecutionLogMutation) ResetContent() {
	m.content = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExecutionLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExecutionLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExecutionLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *ExecutionLogMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ExecutionLogMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ExecutionLogMutation) ResetGroupID() {
	m.group_id = nil
}

// SetGroupEmail sets the "group_email" field.
func (m *ExecutionLogMutation) SetGroupEmail(s string) {
	m.group_email = &s
}

// GroupEmail returns the value of the "group_email" field in the mutation.
func (m *ExecutionLogMutation) GroupEmail() (r string, exists bool) {
	v := m.group_email
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupEmail returns the old "group_email" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldGroupEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupEmail: %w", err)
	}
	return oldValue.GroupEmail, nil
}

// ClearGroupEmail clears the value of the "group_email" field.
func (m *ExecutionLogMutation) ClearGroupEmail() {
	m.group_email = nil
	m.clearedFields[executionlog.FieldGroupEmail] = struct{}{}
}

// GroupEmailCleared returns if the "group_email" field was cleared in this mutation.
func (m *ExecutionLogMutation) GroupEmailCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldGroupEmail]
	return ok
}

// ResetGroupEmail resets all changes to the "group_email" field.
func (m *ExecutionLogMutation) ResetGroupEmail() {
	m.group_email = nil
	delete(m.clearedFields, executionlog.FieldGroupEmail)
}

// Where appends a list predicates to the ExecutionLogMutation builder.
func (m *ExecutionLogMutation) Where(ps ...predicate.ExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionLog).
func (m *ExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.execution_id != nil {
		fields = append(fields, executionlog.FieldExecutionID)
	}
	if m.content != nil {
		fields = append(fields, executionlog.FieldContent)
	}
	if m.timestamp != nil {
		fields = append(fields, executionlog.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, executionlog.FieldGroupID)
	}
	if m.group_email != nil {
		fields = append(fields, executionlog.FieldGroupEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.ExecutionID()
	case executionlog.FieldContent:
		return m.Content()
	case executionlog.FieldTimestamp:
		return m.Timestamp()
	case executionlog.FieldGroupID:
		return m.GroupID()
	case executionlog.FieldGroupEmail:
		return m.GroupEmail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionlog.FieldContent:
		return m.OldContent(ctx)
	case executionlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case executionlog.FieldGroupID:
		return m.OldGroupID(ctx)
	case executionlog.FieldGroupEmail:
		return m.OldGroupEmail(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionlog.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case executionlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case executionlog.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case executionlog.FieldGroupEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupEmail(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionlog.FieldGroupEmail) {
		fields = append(fields, executionlog.FieldGroupEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ClearField(name string) error {
	switch name {
	case executionlog.FieldGroupEmail:
		m.ClearGroupEmail()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ResetField(name string) error {
	switch name {
	case executionlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionlog.FieldContent:
		m.ResetContent()
		return nil
	case executionlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case executionlog.FieldGroupID:
		m.ResetGroupID()
		return nil
	case executionlog.FieldGroupEmail:
		m.ResetGroupEmail()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExecutionLog edge %s", name)
}

// ExecutionTraceMutation represents an operation that mutates the ExecutionTrace nodes in the graph.
type ExecutionTraceMutation struct {
	config
	op             Op
	typ            string
	id             *int
	job_id         *string
	event_source   *string
	event_context  *string
	event_type     *string
	output         *string
	trace_metadata *map[string]interface{}
	group_id       *string
	group_email    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExecutionTrace, error)
	predicates     []predicate.ExecutionTrace
}

var _ ent.Mutation = (*ExecutionTraceMutation)(nil)

// executiontraceOption allows management of the mutation configuration using functional options.
type executiontraceOption func(*ExecutionTraceMutation)

// newExecutionTraceMutation creates new mutation for the ExecutionTrace entity.
func newExecutionTraceMutation(c config, op Op, opts ...executiontraceOption) *ExecutionTraceMutation {
	m := &ExecutionTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionTraceID sets the ID field of the mutation.
func withExecutionTraceID(id int) executiontraceOption {
	return func(m *ExecutionTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionTrace
		)
		m.oldValue = func(ctx context.Context) (*ExecutionTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionTrace sets the old ExecutionTrace of the mutation.
func withExecutionTrace(node *ExecutionTrace) executiontraceOption {
	return func(m *ExecutionTraceMutation) {
		m.oldValue = func(context.Context) (*ExecutionTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionTraceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionTraceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ExecutionTraceMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExecutionTraceMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExecutionTraceMutation) ResetJobID() {
	m.job_id = nil
}

// SetEventSource sets the "event_source" field.
func (m *ExecutionTraceMutation) SetEventSource(s string) {
	m.event_source = &s
}

// EventSource returns the value of the "event_source" field in the mutation.
func (m *ExecutionTraceMutation) EventSource() (r string, exists bool) {
	v := m.event_source
	if v == nil {
		return
	}
	return *v, true
}

// OldEventSource returns the old "event_source" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldEventSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventSource: %w", err)
	}
	return oldValue.EventSource, nil
}

// ResetEventSource resets all changes to the "event_source" field.
func (m *ExecutionTraceMutation) ResetEventSource() {
	m.event_source = nil
}

// SetEventContext sets the "event_context" field.
func (m *ExecutionTraceMutation) SetEventContext(s string) {
	m.event_context = &s
}

// EventContext returns the value of the "event_context" field in the mutation.
func (m *ExecutionTraceMutation) EventContext() (r string, exists bool) {
	v := m.event_context
	if v == nil {
		return
	}
	return *v, true
}

// OldEventContext returns the old "event_context" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldEventContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventContext: %w", err)
	}
	return oldValue.EventContext, nil
}

// ClearEventContext clears the value of the "event_context" field.
func (m *ExecutionTraceMutation) ClearEventContext() {
	m.event_context = nil
	m.clearedFields[executiontrace.FieldEventContext] = struct{}{}
}

// EventContextCleared returns if the "event_context" field was cleared in this mutation.
func (m *ExecutionTraceMutation) EventContextCleared() bool {
	_, ok := m.clearedFields[executiontrace.FieldEventContext]
	return ok
}

// ResetEventContext resets all changes to the "event_context" field.
func (m *ExecutionTraceMutation) ResetEventContext() {
	m.event_context = nil
	delete(m.clearedFields, executiontrace.FieldEventContext)
}

// SetEventType sets the "event_type" field.
func (m *ExecutionTraceMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ExecutionTraceMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ExecutionTraceMutation) ResetEventType() {
	m.event_type = nil
}

// SetOutput sets the "output" field.
func (m *ExecutionTraceMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *ExecutionTraceMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ExecutionTraceMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[executiontrace.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ExecutionTraceMutation) OutputCleared() bool {
	_, ok := m.clearedFields[executiontrace.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ExecutionTraceMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, executiontrace.FieldOutput)
}

// SetTraceMetadata sets the "trace_metadata" field.
func (m *ExecutionTraceMutation) SetTraceMetadata(value map[string]interface{}) {
	m.trace_metadata = &value
}

// TraceMetadata returns the value of the "trace_metadata" field in the mutation.
func (m *ExecutionTraceMutation) TraceMetadata() (r map[string]interface{}, exists bool) {
	v := m.trace_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceMetadata returns the old "trace_metadata" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldTraceMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceMetadata: %w", err)
	}
	return oldValue.TraceMetadata, nil
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (m *ExecutionTraceMutation) ClearTraceMetadata() {
	m.trace_metadata = nil
	m.clearedFields[executiontrace.FieldTraceMetadata] = struct{}{}
}

// TraceMetadataCleared returns if the "trace_metadata" field was cleared in this mutation.
func (m *ExecutionTraceMutation) TraceMetadataCleared() bool {
	_, ok := m.clearedFields[executiontrace.FieldTraceMetadata]
	return ok
}

// ResetTraceMetadata resets all changes to the "trace_metadata" field.
func (m *ExecutionTraceMutation) ResetTraceMetadata() {
	m.trace_metadata = nil
	delete(m.clearedFields, executiontrace.FieldTraceMetadata)
}

// SetGroupID sets the "group_id" field.
func (m *ExecutionTraceMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ExecutionTraceMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ExecutionTraceMutation) ResetGroupID() {
	m.group_id = nil
}

// SetGroupEmail sets the "group_email" field.
func (m *ExecutionTraceMutation) SetGroupEmail(s string) {
	m.group_email = &s
}

// GroupEmail returns the value of the "group_email" field in the mutation.
func (m *ExecutionTraceMutation) GroupEmail() (r string, exists bool) {
	v := m.group_email
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupEmail returns the old "group_email" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldGroupEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupEmail: %w", err)
	}
	return oldValue.GroupEmail, nil
}

// ClearGroupEmail clears the value of the "group_email" field.
func (m *ExecutionTraceMutation) ClearGroupEmail() {
	m.group_email = nil
	m.clearedFields[executiontrace.FieldGroupEmail] = struct{}{}
}

// GroupEmailCleared returns if the "group_email" field was cleared in this mutation.
func (m *ExecutionTraceMutation) GroupEmailCleared() bool {
	_, ok := m.clearedFields[executiontrace.FieldGroupEmail]
	return ok
}

// ResetGroupEmail resets all changes to the "group_email" field.
func (m *ExecutionTraceMutation) ResetGroupEmail() {
	m.group_email = nil
	delete(m.clearedFields, executiontrace.FieldGroupEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionTrace entity.
// If the ExecutionTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExecutionTraceMutation builder.
func (m *ExecutionTraceMutation) Where(ps ...predicate.ExecutionTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionTrace).
func (m *ExecutionTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionTraceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job_id != nil {
		fields = append(fields, executiontrace.FieldJobID)
	}
	if m.event_source != nil {
		fields = append(fields, executiontrace.FieldEventSource)
	}
	if m.event_context != nil {
		fields = append(fields, executiontrace.FieldEventContext)
	}
	if m.event_type != nil {
		fields = append(fields, executiontrace.FieldEventType)
	}
	if m.output != nil {
		fields = append(fields, executiontrace.FieldOutput)
	}
	if m.trace_metadata != nil {
		fields = append(fields, executiontrace.FieldTraceMetadata)
	}
	if m.group_id != nil {
		fields = append(fields, executiontrace.FieldGroupID)
	}
	if m.group_email != nil {
		fields = append(fields, executiontrace.FieldGroupEmail)
	}
	if m.created_at != nil {
		fields = append(fields, executiontrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executiontrace.FieldJobID:
		return m.JobID()
	case executiontrace.FieldEventSource:
		return m.EventSource()
	case executiontrace.FieldEventContext:
		return m.EventContext()
	case executiontrace.FieldEventType:
		return m.EventType()
	case executiontrace.FieldOutput:
		return m.Output()
	case executiontrace.FieldTraceMetadata:
		return m.TraceMetadata()
	case executiontrace.FieldGroupID:
		return m.GroupID()
	case executiontrace.FieldGroupEmail:
		return m.GroupEmail()
	case executiontrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executiontrace.FieldJobID:
		return m.OldJobID(ctx)
	case executiontrace.FieldEventSource:
		return m.OldEventSource(ctx)
	case executiontrace.FieldEventContext:
		return m.OldEventContext(ctx)
	case executiontrace.FieldEventType:
		return m.OldEventType(ctx)
	case executiontrace.FieldOutput:
		return m.OldOutput(ctx)
	case executiontrace.FieldTraceMetadata:
		return m.OldTraceMetadata(ctx)
	case executiontrace.FieldGroupID:
		return m.OldGroupID(ctx)
	case executiontrace.FieldGroupEmail:
		return m.OldGroupEmail(ctx)
	case executiontrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executiontrace.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case executiontrace.FieldEventSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventSource(v)
		return nil
	case executiontrace.FieldEventContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventContext(v)
		return nil
	case executiontrace.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case executiontrace.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case executiontrace.FieldTraceMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceMetadata(v)
		return nil
	case executiontrace.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case executiontrace.FieldGroupEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupEmail(v)
		return nil
	case executiontrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionTraceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionTraceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExecutionTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executiontrace.FieldEventContext) {
		fields = append(fields, executiontrace.FieldEventContext)
	}
	if m.FieldCleared(executiontrace.FieldOutput) {
		fields = append(fields, executiontrace.FieldOutput)
	}
	if m.FieldCleared(executiontrace.FieldTraceMetadata) {
		fields = append(fields, executiontrace.FieldTraceMetadata)
	}
	if m.FieldCleared(executiontrace.FieldGroupEmail) {
		fields = append(fields, executiontrace.FieldGroupEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionTraceMutation) ClearField(name string) error {
	switch name {
	case executiontrace.FieldEventContext:
		m.ClearEventContext()
		return nil
	case executiontrace.FieldOutput:
		m.ClearOutput()
		return nil
	case executiontrace.FieldTraceMetadata:
		m.ClearTraceMetadata()
		return nil
	case executiontrace.FieldGroupEmail:
		m.ClearGroupEmail()
		return nil
	}
	return fmt.Errorf("unknown ExecutionTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionTraceMutation) ResetField(name string) error {
	switch name {
	case executiontrace.FieldJobID:
		m.ResetJobID()
		return nil
	case executiontrace.FieldEventSource:
		m.ResetEventSource()
		return nil
	case executiontrace.FieldEventContext:
		m.ResetEventContext()
		return nil
	case executiontrace.FieldEventType:
		m.ResetEventType()
		return nil
	case executiontrace.FieldOutput:
		m.ResetOutput()
		return nil
	case executiontrace.FieldTraceMetadata:
		m.ResetTraceMetadata()
		return nil
	case executiontrace.FieldGroupID:
		m.ResetGroupID()
		return nil
	case executiontrace.FieldGroupEmail:
		m.ResetGroupEmail()
		return nil
	case executiontrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionTraceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionTraceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionTraceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExecutionTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionTraceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExecutionTrace edge %s", name)
}

// FlowRecordMutation represents an operation that mutates the FlowRecord nodes in the graph.
type FlowRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	group_id              *string
	name                  *string
	nodes                 *[]map[string]interface{}
	appendnodes           []map[string]interface{}
	edges                 *[]map[string]interface{}
	appendedges           []map[string]interface{}
	starting_points       *[]string
	appendstarting_points []string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*FlowRecord, error)
	predicates            []predicate.FlowRecord
}

var _ ent.Mutation = (*FlowRecordMutation)(nil)

// flowrecordOption allows management of the mutation configuration using functional options.
type flowrecordOption func(*FlowRecordMutation)

// newFlowRecordMutation creates new mutation for the FlowRecord entity.
func newFlowRecordMutation(c config, op Op, opts ...flowrecordOption) *FlowRecordMutation {
	m := &FlowRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowRecordID sets the ID field of the mutation.
func withFlowRecordID(id string) flowrecordOption {
	return func(m *FlowRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowRecord
		)
		m.oldValue = func(ctx context.Context) (*FlowRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowRecord sets the old FlowRecord of the mutation.
func withFlowRecord(node *FlowRecord) flowrecordOption {
	return func(m *FlowRecordMutation) {
		m.oldValue = func(context.Context) (*FlowRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FlowRecord entities.
func (m *FlowRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *FlowRecordMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *FlowRecordMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *FlowRecordMutation) ResetGroupID() {
	m.group_id = nil
}

// SetName sets the "name" field.
func (m *FlowRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FlowRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FlowRecordMutation) ResetName() {
	m.name = nil
}

// SetNodes sets the "nodes" field.
func (m *FlowRecordMutation) SetNodes(value []map[string]interface{}) {
	m.nodes = &value
	m.appendnodes = nil
}

// Nodes returns the value of the "nodes" field in the mutation.
func (m *FlowRecordMutation) Nodes() (r []map[string]interface{}, exists bool) {
	v := m.nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldNodes returns the old "nodes" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldNodes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodes: %w", err)
	}
	return oldValue.Nodes, nil
}

// AppendNodes adds value to the "nodes" field.
func (m *FlowRecordMutation) AppendNodes(value []map[string]interface{}) {
	m.appendnodes = append(m.appendnodes, value...)
}

// AppendedNodes returns the list of values that were appended to the "nodes" field in this mutation.
func (m *FlowRecordMutation) AppendedNodes() ([]map[string]interface{}, bool) {
	if len(m.appendnodes) == 0 {
		return nil, false
	}
	return m.appendnodes, true
}

// ClearNodes clears the value of the "nodes" field.
func (m *FlowRecordMutation) ClearNodes() {
	m.nodes = nil
	m.appendnodes = nil
	m.clearedFields[flowrecord.FieldNodes] = struct{}{}
}

// NodesCleared returns if the "nodes" field was cleared in this mutation.
func (m *FlowRecordMutation) NodesCleared() bool {
	_, ok := m.clearedFields[flowrecord.FieldNodes]
	return ok
}

// ResetNodes resets all changes to the "nodes" field.
func (m *FlowRecordMutation) ResetNodes() {
	m.nodes = nil
	m.appendnodes = nil
	delete(m.clearedFields, flowrecord.FieldNodes)
}

// SetEdges sets the "edges" field.
func (m *FlowRecordMutation) SetEdges(value []map[string]interface{}) {
	m.edges = &value
	m.appendedges = nil
}

// Edges returns the value of the "edges" field in the mutation.
func (m *FlowRecordMutation) Edges() (r []map[string]interface{}, exists bool) {
	v := m.edges
	if v == nil {
		return
	}
	return *v, true
}

// OldEdges returns the old "edges" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldEdges(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdges: %w", err)
	}
	return oldValue.Edges, nil
}

// AppendEdges adds value to the "edges" field.
func (m *FlowRecordMutation) AppendEdges(value []map[string]interface{}) {
	m.appendedges = append(m.appendedges, value...)
}

// AppendedEdges returns the list of values that were appended to the "edges" field in this mutation.
func (m *FlowRecordMutation) AppendedEdges() ([]map[string]interface{}, bool) {
	if len(m.appendedges) == 0 {
		return nil, false
	}
	return m.appendedges, true
}

// ClearEdges clears the value of the "edges" field.
func (m *FlowRecordMutation) ClearEdges() {
	m.edges = nil
	m.appendedges = nil
	m.clearedFields[flowrecord.FieldEdges] = struct{}{}
}

// EdgesCleared returns if the "edges" field was cleared in this mutation.
func (m *FlowRecordMutation) EdgesCleared() bool {
	_, ok := m.clearedFields[flowrecord.FieldEdges]
	return ok
}

// ResetEdges resets all changes to the "edges" field.
func (m *FlowRecordMutation) ResetEdges() {
	m.edges = nil
	m.appendedges = nil
	delete(m.clearedFields, flowrecord.FieldEdges)
}

// SetStartingPoints sets the "starting_points" field.
func (m *FlowRecordMutation) SetStartingPoints(s []string) {
	m.starting_points = &s
	m.appendstarting_points = nil
}

// StartingPoints returns the value of the "starting_points" field in the mutation.
func (m *FlowRecordMutation) StartingPoints() (r []string, exists bool) {
	v := m.starting_points
	if v == nil {
		return
	}
	return *v, true
}

// OldStartingPoints returns the old "starting_points" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldStartingPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartingPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartingPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartingPoints: %w", err)
	}
	return oldValue.StartingPoints, nil
}

// AppendStartingPoints adds s to the "starting_points" field.
func (m *FlowRecordMutation) AppendStartingPoints(s []string) {
	m.appendstarting_points = append(m.appendstarting_points, s...)
}

// AppendedStartingPoints returns the list of values that were appended to the "starting_points" field in this mutation.
func (m *FlowRecordMutation) AppendedStartingPoints() ([]string, bool) {
	if len(m.appendstarting_points) == 0 {
		return nil, false
	}
	return m.appendstarting_points, true
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (m *FlowRecordMutation) ClearStartingPoints() {
	m.starting_points = nil
	m.appendstarting_points = nil
	m.clearedFields[flowrecord.FieldStartingPoints] = struct{}{}
}

// StartingPointsCleared returns if the "starting_points" field was cleared in this mutation.
func (m *FlowRecordMutation) StartingPointsCleared() bool {
	_, ok := m.clearedFields[flowrecord.FieldStartingPoints]
	return ok
}

// ResetStartingPoints resets all changes to the "starting_points" field.
func (m *FlowRecordMutation) ResetStartingPoints() {
	m.starting_points = nil
	m.appendstarting_points = nil
	delete(m.clearedFields, flowrecord.FieldStartingPoints)
}

// SetCreatedAt sets the "created_at" field.
func (m *FlowRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlowRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FlowRecord entity.
// If the FlowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlowRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FlowRecordMutation builder.
func (m *FlowRecordMutation) Where(ps ...predicate.FlowRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowRecord).
func (m *FlowRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.group_id != nil {
		fields = append(fields, flowrecord.FieldGroupID)
	}
	if m.name != nil {
		fields = append(fields, flowrecord.FieldName)
	}
	if m.nodes != nil {
		fields = append(fields, flowrecord.FieldNodes)
	}
	if m.edges != nil {
		fields = append(fields, flowrecord.FieldEdges)
	}
	if m.starting_points != nil {
		fields = append(fields, flowrecord.FieldStartingPoints)
	}
	if m.created_at != nil {
		fields = append(fields, flowrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowrecord.FieldGroupID:
		return m.GroupID()
	case flowrecord.FieldName:
		return m.Name()
	case flowrecord.FieldNodes:
		return m.Nodes()
	case flowrecord.FieldEdges:
		return m.Edges()
	case flowrecord.FieldStartingPoints:
		return m.StartingPoints()
	case flowrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowrecord.FieldGroupID:
		return m.OldGroupID(ctx)
	case flowrecord.FieldName:
		return m.OldName(ctx)
	case flowrecord.FieldNodes:
		return m.OldNodes(ctx)
	case flowrecord.FieldEdges:
		return m.OldEdges(ctx)
	case flowrecord.FieldStartingPoints:
		return m.OldStartingPoints(ctx)
	case flowrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FlowRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowrecord.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case flowrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case flowrecord.FieldNodes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodes(v)
		return nil
	case flowrecord.FieldEdges:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdges(v)
		return nil
	case flowrecord.FieldStartingPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartingPoints(v)
		return nil
	case flowrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FlowRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FlowRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flowrecord.FieldNodes) {
		fields = append(fields, flowrecord.FieldNodes)
	}
	if m.FieldCleared(flowrecord.FieldEdges) {
		fields = append(fields, flowrecord.FieldEdges)
	}
	if m.FieldCleared(flowrecord.FieldStartingPoints) {
		fields = append(fields, flowrecord.FieldStartingPoints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowRecordMutation) ClearField(name string) error {
	switch name {
	case flowrecord.FieldNodes:
		m.ClearNodes()
		return nil
	case flowrecord.FieldEdges:
		m.ClearEdges()
		return nil
	case flowrecord.FieldStartingPoints:
		m.ClearStartingPoints()
		return nil
	}
	return fmt.Errorf("unknown FlowRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowRecordMutation) ResetField(name string) error {
	switch name {
	case flowrecord.FieldGroupID:
		m.ResetGroupID()
		return nil
	case flowrecord.FieldName:
		m.ResetName()
		return nil
	case flowrecord.FieldNodes:
		m.ResetNodes()
		return nil
	case flowrecord.FieldEdges:
		m.ResetEdges()
		return nil
	case flowrecord.FieldStartingPoints:
		m.ResetStartingPoints()
		return nil
	case flowrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FlowRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FlowRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FlowRecord edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	email_domain       *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	memberships        map[int]struct{}
	removedmemberships map[int]struct{}
	clearedmemberships bool
	done               bool
	oldValue           func(context.Context) (*Group, error)
	predicates         []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id string) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// SetEmailDomain sets the "email_domain" field.
func (m *GroupMutation) SetEmailDomain(s string) {
	m.email_domain = &s
}

// EmailDomain returns the value of the "email_domain" field in the mutation.
func (m *GroupMutation) EmailDomain() (r string, exists bool) {
	v := m.email_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDomain returns the old "email_domain" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldEmailDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDomain: %w", err)
	}
	return oldValue.EmailDomain, nil
}

// ClearEmailDomain clears the value of the "email_domain" field.
func (m *GroupMutation) ClearEmailDomain() {
	m.email_domain = nil
	m.clearedFields[group.FieldEmailDomain] = struct{}{}
}

// EmailDomainCleared returns if the "email_domain" field was cleared in this mutation.
func (m *GroupMutation) EmailDomainCleared() bool {
	_, ok := m.clearedFields[group.FieldEmailDomain]
	return ok
}

// ResetEmailDomain resets all changes to the "email_domain" field.
func (m *GroupMutation) ResetEmailDomain() {
	m.email_domain = nil
	delete(m.clearedFields, group.FieldEmailDomain)
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMembershipIDs adds the "memberships" edge to the GroupMembership entity by ids.
func (m *GroupMutation) AddMembershipIDs(ids ...int) {
	if m.memberships == nil {
		m.memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the GroupMembership entity.
func (m *GroupMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the GroupMembership entity was cleared.
func (m *GroupMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the GroupMembership entity by IDs.
func (m *GroupMutation) RemoveMembershipIDs(ids ...int) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the GroupMembership entity.
func (m *GroupMutation) RemovedMembershipsIDs() (ids []int) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *GroupMutation) MembershipsIDs() (ids []int) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *GroupMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.email_domain != nil {
		fields = append(fields, group.FieldEmailDomain)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldName:
		return m.Name()
	case group.FieldEmailDomain:
		return m.EmailDomain()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldEmailDomain:
		return m.OldEmailDomain(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldEmailDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDomain(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldEmailDomain) {
		fields = append(fields, group.FieldEmailDomain)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldEmailDomain:
		m.ClearEmailDomain()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldEmailDomain:
		m.ResetEmailDomain()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.memberships != nil {
		edges = append(edges, group.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmemberships != nil {
		edges = append(edges, group.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmemberships {
		edges = append(edges, group.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// GroupMembershipMutation represents an operation that mutates the GroupMembership nodes in the graph.
type GroupMembershipMutation struct {
	config
	op            Op
	typ           string
	id            *int
	role          *groupmembership.Role
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	group         *string
	clearedgroup  bool
	done          bool
	oldValue      func(context.Context) (*GroupMembership, error)
	predicates    []predicate.GroupMembership
}

var _ ent.Mutation = (*GroupMembershipMutation)(nil)

// groupmembershipOption allows management of the mutation configuration using functional options.
type groupmembershipOption func(*GroupMembershipMutation)

// newGroupMembershipMutation creates new mutation for the GroupMembership entity.
func newGroupMembershipMutation(c config, op Op, opts ...groupmembershipOption) *GroupMembershipMutation {
	m := &GroupMembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupMembershipID sets the ID field of the mutation.
func withGroupMembershipID(id int) groupmembershipOption {
	return func(m *GroupMembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupMembership
		)
		m.oldValue = func(ctx context.Context) (*GroupMembership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupMembership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupMembership sets the old GroupMembership of the mutation.
func withGroupMembership(node *GroupMembership) groupmembershipOption {
	return func(m *GroupMembershipMutation) {
		m.oldValue = func(context.Context) (*GroupMembership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMembershipMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMembershipMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupMembership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *GroupMembershipMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GroupMembershipMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the GroupMembership entity.
// If the GroupMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMembershipMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GroupMembershipMutation) ResetUserID() {
	m.user = nil
}

// SetGroupID sets the "group_id" field.
func (m *GroupMembershipMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupMembershipMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupMembership entity.
// If the GroupMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMembershipMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupMembershipMutation) ResetGroupID() {
	m.group = nil
}

// SetRole sets the "role" field.
func (m *GroupMembershipMutation) SetRole(gr groupmembership.Role) {
	m.role = &gr
}

// Role returns the value of the "role" field in the mutation.
func (m *GroupMembershipMutation) Role() (r groupmembership.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the GroupMembership entity.
// If the GroupMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMembershipMutation) OldRole(ctx context.Context) (v groupmembership.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *GroupMembershipMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMembershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMembershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GroupMembership entity.
// If the GroupMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMembershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMembershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *GroupMembershipMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[groupmembership.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *GroupMembershipMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *GroupMembershipMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *GroupMembershipMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *GroupMembershipMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[groupmembership.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *GroupMembershipMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GroupMembershipMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GroupMembershipMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the GroupMembershipMutation builder.
func (m *GroupMembershipMutation) Where(ps ...predicate.GroupMembership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupMembership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupMembership).
func (m *GroupMembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMembershipMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, groupmembership.FieldUserID)
	}
	if m.group != nil {
		fields = append(fields, groupmembership.FieldGroupID)
	}
	if m.role != nil {
		fields = append(fields, groupmembership.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, groupmembership.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupmembership.FieldUserID:
		return m.UserID()
	case groupmembership.FieldGroupID:
		return m.GroupID()
	case groupmembership.FieldRole:
		return m.Role()
	case groupmembership.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupmembership.FieldUserID:
		return m.OldUserID(ctx)
	case groupmembership.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupmembership.FieldRole:
		return m.OldRole(ctx)
	case groupmembership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GroupMembership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupmembership.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case groupmembership.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupmembership.FieldRole:
		v, ok := value.(groupmembership.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case groupmembership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GroupMembership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMembershipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMembershipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupMembership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMembershipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMembershipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupMembership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMembershipMutation) ResetField(name string) error {
	switch name {
	case groupmembership.FieldUserID:
		m.ResetUserID()
		return nil
	case groupmembership.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupmembership.FieldRole:
		m.ResetRole()
		return nil
	case groupmembership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GroupMembership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, groupmembership.EdgeUser)
	}
	if m.group != nil {
		edges = append(edges, groupmembership.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMembershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case groupmembership.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case groupmembership.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMembershipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, groupmembership.EdgeUser)
	}
	if m.clearedgroup {
		edges = append(edges, groupmembership.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMembershipMutation) EdgeCleared(name string) bool {
	switch name {
	case groupmembership.EdgeUser:
		return m.cleareduser
	case groupmembership.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMembershipMutation) ClearEdge(name string) error {
	switch name {
	case groupmembership.EdgeUser:
		m.ClearUser()
		return nil
	case groupmembership.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown GroupMembership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMembershipMutation) ResetEdge(name string) error {
	switch name {
	case groupmembership.EdgeUser:
		m.ResetUser()
		return nil
	case groupmembership.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown GroupMembership edge %s", name)
}

// MemoryConfigMutation represents an operation that mutates the MemoryConfig nodes in the graph.
type MemoryConfigMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	group_id           *string
	backend_type       *memoryconfig.BackendType
	short_term_enabled *bool
	long_term_enabled  *bool
	entity_enabled     *bool
	embedder           *map[string]interface{}
	databricks         *map[string]interface{}
	is_active          *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MemoryConfig, error)
	predicates         []predicate.MemoryConfig
}

var _ ent.Mutation = (*MemoryConfigMutation)(nil)

// memoryconfigOption allows management of the mutation configuration using functional options.
type memoryconfigOption func(*MemoryConfigMutation)

// newMemoryConfigMutation creates new mutation for the MemoryConfig entity.
func newMemoryConfigMutation(c config, op Op, opts ...memoryconfigOption) *MemoryConfigMutation {
	m := &MemoryConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryConfigID sets the ID field of the mutation.
func withMemoryConfigID(id int) memoryconfigOption {
	return func(m *MemoryConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryConfig
		)
		m.oldValue = func(ctx context.Context) (*MemoryConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryConfig sets the old MemoryConfig of the mutation.
func withMemoryConfig(node *MemoryConfig) memoryconfigOption {
	return func(m *MemoryConfigMutation) {
		m.oldValue = func(context.Context) (*MemoryConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *MemoryConfigMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *MemoryConfigMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *MemoryConfigMutation) ResetGroupID() {
	m.group_id = nil
}

// SetBackendType sets the "backend_type" field.
func (m *MemoryConfigMutation) SetBackendType(mt memoryconfig.BackendType) {
	m.backend_type = &mt
}

// BackendType returns the value of the "backend_type" field in the mutation.
func (m *MemoryConfigMutation) BackendType() (r memoryconfig.BackendType, exists bool) {
	v := m.backend_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBackendType returns the old "backend_type" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldBackendType(ctx context.Context) (v memoryconfig.BackendType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackendType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackendType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackendType: %w", err)
	}
	return oldValue.BackendType, nil
}

// ResetBackendType resets all changes to the "backend_type" field.
func (m *MemoryConfigMutation) ResetBackendType() {
	m.backend_type = nil
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (m *MemoryConfigMutation) SetShortTermEnabled(b bool) {
	m.short_term_enabled = &b
}

// ShortTermEnabled returns the value of the "short_term_enabled" field in the mutation.
func (m *MemoryConfigMutation) ShortTermEnabled() (r bool, exists bool) {
	v := m.short_term_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldShortTermEnabled returns the old "short_term_enabled" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldShortTermEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortTermEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortTermEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortTermEnabled: %w", err)
	}
	return oldValue.ShortTermEnabled, nil
}

// ResetShortTermEnabled resets all changes to the "short_term_enabled" field.
func (m *MemoryConfigMutation) ResetShortTermEnabled() {
	m.short_term_enabled = nil
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (m *MemoryConfigMutation) SetLongTermEnabled(b bool) {
	m.long_term_enabled = &b
}

// LongTermEnabled returns the value of the "long_term_enabled" field in the mutation.
func (m *MemoryConfigMutation) LongTermEnabled() (r bool, exists bool) {
	v := m.long_term_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldLongTermEnabled returns the old "long_term_enabled" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldLongTermEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongTermEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongTermEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongTermEnabled: %w", err)
	}
	return oldValue.LongTermEnabled, nil
}

// ResetLongTermEnabled resets all changes to the "long_term_enabled" field.
func (m *MemoryConfigMutation) ResetLongTermEnabled() {
	m.long_term_enabled = nil
}

// SetEntityEnabled sets the "entity_enabled" field.
func (m *MemoryConfigMutation) SetEntityEnabled(b bool) {
	m.entity_enabled = &b
}

// EntityEnabled returns the value of the "entity_enabled" field in the mutation.
func (m *MemoryConfigMutation) EntityEnabled() (r bool, exists bool) {
	v := m.entity_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityEnabled returns the old "entity_enabled" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldEntityEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityEnabled: %w", err)
	}
	return oldValue.EntityEnabled, nil
}

// ResetEntityEnabled resets all changes to the "entity_enabled" field.
func (m *MemoryConfigMutation) ResetEntityEnabled() {
	m.entity_enabled = nil
}

// SetEmbedder sets the "embedder" field.
func (m *MemoryConfigMutation) SetEmbedder(value map[string]interface{}) {
	m.embedder = &value
}

// Embedder returns the value of the "embedder" field in the mutation.
func (m *MemoryConfigMutation) Embedder() (r map[string]interface{}, exists bool) {
	v := m.embedder
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedder returns the old "embedder" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldEmbedder(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedder: %w", err)
	}
	return oldValue.Embedder, nil
}

// ClearEmbedder clears the value of the "embedder" field.
func (m *MemoryConfigMutation) ClearEmbedder() {
	m.embedder = nil
	m.clearedFields[memoryconfig.FieldEmbedder] = struct{}{}
}

// EmbedderCleared returns if the "embedder" field was cleared in this mutation.
func (m *MemoryConfigMutation) EmbedderCleared() bool {
	_, ok := m.clearedFields[memoryconfig.FieldEmbedder]
	return ok
}

// ResetEmbedder resets all changes to the "embedder" field.
func (m *MemoryConfigMutation) ResetEmbedder() {
	m.embedder = nil
	delete(m.clearedFields, memoryconfig.FieldEmbedder)
}

// SetDatabricks sets the "databricks" field.
func (m *MemoryConfigMutation) SetDatabricks(value map[string]interface{}) {
	m.databricks = &value
}

// Databricks returns the value of the "databricks" field in the mutation.
func (m *MemoryConfigMutation) Databricks() (r map[string]interface{}, exists bool) {
	v := m.databricks
	if v == nil {
		return
	}
	return *v, true
}

// OldDatabricks returns the old "databricks" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldDatabricks(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatabricks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatabricks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatabricks: %w", err)
	}
	return oldValue.Databricks, nil
}

// ClearDatabricks clears the value of the "databricks" field.
func (m *MemoryConfigMutation) ClearDatabricks() {
	m.databricks = nil
	m.clearedFields[memoryconfig.FieldDatabricks] = struct{}{}
}

// DatabricksCleared returns if the "databricks" field was cleared in this mutation.
func (m *MemoryConfigMutation) DatabricksCleared() bool {
	_, ok := m.clearedFields[memoryconfig.FieldDatabricks]
	return ok
}

// ResetDatabricks resets all changes to the "databricks" field.
func (m *MemoryConfigMutation) ResetDatabricks() {
	m.databricks = nil
	delete(m.clearedFields, memoryconfig.FieldDatabricks)
}

// SetIsActive sets the "is_active" field.
func (m *MemoryConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *MemoryConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *MemoryConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryConfig entity.
// If the MemoryConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MemoryConfigMutation builder.
func (m *MemoryConfigMutation) Where(ps ...predicate.MemoryConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryConfig).
func (m *MemoryConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.group_id != nil {
		fields = append(fields, memoryconfig.FieldGroupID)
	}
	if m.backend_type != nil {
		fields = append(fields, memoryconfig.FieldBackendType)
	}
	if m.short_term_enabled != nil {
		fields = append(fields, memoryconfig.FieldShortTermEnabled)
	}
	if m.long_term_enabled != nil {
		fields = append(fields, memoryconfig.FieldLongTermEnabled)
	}
	if m.entity_enabled != nil {
		fields = append(fields, memoryconfig.FieldEntityEnabled)
	}
	if m.embedder != nil {
		fields = append(fields, memoryconfig.FieldEmbedder)
	}
	if m.databricks != nil {
		fields = append(fields, memoryconfig.FieldDatabricks)
	}
	if m.is_active != nil {
		fields = append(fields, memoryconfig.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, memoryconfig.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryconfig.FieldGroupID:
		return m.GroupID()
	case memoryconfig.FieldBackendType:
		return m.BackendType()
	case memoryconfig.FieldShortTermEnabled:
		return m.ShortTermEnabled()
	case memoryconfig.FieldLongTermEnabled:
		return m.LongTermEnabled()
	case memoryconfig.FieldEntityEnabled:
		return m.EntityEnabled()
	case memoryconfig.FieldEmbedder:
		return m.Embedder()
	case memoryconfig.FieldDatabricks:
		return m.Databricks()
	case memoryconfig.FieldIsActive:
		return m.IsActive()
	case memoryconfig.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryconfig.FieldGroupID:
		return m.OldGroupID(ctx)
	case memoryconfig.FieldBackendType:
		return m.OldBackendType(ctx)
	case memoryconfig.FieldShortTermEnabled:
		return m.OldShortTermEnabled(ctx)
	case memoryconfig.FieldLongTermEnabled:
		return m.OldLongTermEnabled(ctx)
	case memoryconfig.FieldEntityEnabled:
		return m.OldEntityEnabled(ctx)
	case memoryconfig.FieldEmbedder:
		return m.OldEmbedder(ctx)
	case memoryconfig.FieldDatabricks:
		return m.OldDatabricks(ctx)
	case memoryconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	case memoryconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryconfig.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case memoryconfig.FieldBackendType:
		v, ok := value.(memoryconfig.BackendType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackendType(v)
		return nil
	case memoryconfig.FieldShortTermEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortTermEnabled(v)
		return nil
	case memoryconfig.FieldLongTermEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongTermEnabled(v)
		return nil
	case memoryconfig.FieldEntityEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityEnabled(v)
		return nil
	case memoryconfig.FieldEmbedder:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedder(v)
		return nil
	case memoryconfig.FieldDatabricks:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatabricks(v)
		return nil
	case memoryconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case memoryconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryconfig.FieldEmbedder) {
		fields = append(fields, memoryconfig.FieldEmbedder)
	}
	if m.FieldCleared(memoryconfig.FieldDatabricks) {
		fields = append(fields, memoryconfig.FieldDatabricks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryConfigMutation) ClearField(name string) error {
	switch name {
	case memoryconfig.FieldEmbedder:
		m.ClearEmbedder()
		return nil
	case memoryconfig.FieldDatabricks:
		m.ClearDatabricks()
		return nil
	}
	return fmt.Errorf("unknown MemoryConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryConfigMutation) ResetField(name string) error {
	switch name {
	case memoryconfig.FieldGroupID:
		m.ResetGroupID()
		return nil
	case memoryconfig.FieldBackendType:
		m.ResetBackendType()
		return nil
	case memoryconfig.FieldShortTermEnabled:
		m.ResetShortTermEnabled()
		return nil
	case memoryconfig.FieldLongTermEnabled:
		m.ResetLongTermEnabled()
		return nil
	case memoryconfig.FieldEntityEnabled:
		m.ResetEntityEnabled()
		return nil
	case memoryconfig.FieldEmbedder:
		m.ResetEmbedder()
		return nil
	case memoryconfig.FieldDatabricks:
		m.ResetDatabricks()
		return nil
	case memoryconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	case memoryconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryConfig edge %s", name)
}

// ToolRecordMutation represents an operation that mutates the ToolRecord nodes in the graph.
type ToolRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	group_id      *string
	kind          *string
	_config       *map[string]interface{}
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ToolRecord, error)
	predicates    []predicate.ToolRecord
}

var _ ent.Mutation = (*ToolRecordMutation)(nil)

// toolrecordOption allows management of the mutation configuration using functional options.
type toolrecordOption func(*ToolRecordMutation)

// newToolRecordMutation creates new mutation for the ToolRecord entity.
func newToolRecordMutation(c config, op Op, opts ...toolrecordOption) *ToolRecordMutation {
	m := &ToolRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeToolRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolRecordID sets the ID field of the mutation.
func withToolRecordID(id int) toolrecordOption {
	return func(m *ToolRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolRecord
		)
		m.oldValue = func(ctx context.Context) (*ToolRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolRecord sets the old ToolRecord of the mutation.
func withToolRecord(node *ToolRecord) toolrecordOption {
	return func(m *ToolRecordMutation) {
		m.oldValue = func(context.Context) (*ToolRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolRecordMutation) ResetName() {
	m.name = nil
}

// SetGroupID sets the "group_id" field.
func (m *ToolRecordMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ToolRecordMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ToolRecordMutation) ResetGroupID() {
	m.group_id = nil
}

// SetKind sets the "kind" field.
func (m *ToolRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ToolRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ToolRecordMutation) ResetKind() {
	m.kind = nil
}

// SetConfig sets the "config" field.
func (m *ToolRecordMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ToolRecordMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ToolRecordMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[toolrecord.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ToolRecordMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[toolrecord.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ToolRecordMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, toolrecord.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *ToolRecordMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ToolRecordMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ToolRecordMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolRecord entity.
// If the ToolRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolRecordMutation builder.
func (m *ToolRecordMutation) Where(ps ...predicate.ToolRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolRecord).
func (m *ToolRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, toolrecord.FieldName)
	}
	if m.group_id != nil {
		fields = append(fields, toolrecord.FieldGroupID)
	}
	if m.kind != nil {
		fields = append(fields, toolrecord.FieldKind)
	}
	if m._config != nil {
		fields = append(fields, toolrecord.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, toolrecord.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, toolrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolrecord.FieldName:
		return m.Name()
	case toolrecord.FieldGroupID:
		return m.GroupID()
	case toolrecord.FieldKind:
		return m.Kind()
	case toolrecord.FieldConfig:
		return m.Config()
	case toolrecord.FieldEnabled:
		return m.Enabled()
	case toolrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolrecord.FieldName:
		return m.OldName(ctx)
	case toolrecord.FieldGroupID:
		return m.OldGroupID(ctx)
	case toolrecord.FieldKind:
		return m.OldKind(ctx)
	case toolrecord.FieldConfig:
		return m.OldConfig(ctx)
	case toolrecord.FieldEnabled:
		return m.OldEnabled(ctx)
	case toolrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case toolrecord.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case toolrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case toolrecord.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case toolrecord.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case toolrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolrecord.FieldConfig) {
		fields = append(fields, toolrecord.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolRecordMutation) ClearField(name string) error {
	switch name {
	case toolrecord.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown ToolRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolRecordMutation) ResetField(name string) error {
	switch name {
	case toolrecord.FieldName:
		m.ResetName()
		return nil
	case toolrecord.FieldGroupID:
		m.ResetGroupID()
		return nil
	case toolrecord.FieldKind:
		m.ResetKind()
		return nil
	case toolrecord.FieldConfig:
		m.ResetConfig()
		return nil
	case toolrecord.FieldEnabled:
		m.ResetEnabled()
		return nil
	case toolrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolRecord edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	email              *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	memberships        map[int]struct{}
	removedmemberships map[int]struct{}
	clearedmemberships bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMembershipIDs adds the "memberships" edge to the GroupMembership entity by ids.
func (m *UserMutation) AddMembershipIDs(ids ...int) {
	if m.memberships == nil {
		m.memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the GroupMembership entity.
func (m *UserMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the GroupMembership entity was cleared.
func (m *UserMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the GroupMembership entity by IDs.
func (m *UserMutation) RemoveMembershipIDs(ids ...int) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the GroupMembership entity.
func (m *UserMutation) RemovedMembershipsIDs() (ids []int) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *UserMutation) MembershipsIDs() (ids []int) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *UserMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.memberships != nil {
		edges = append(edges, user.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmemberships != nil {
		edges = append(edges, user.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmemberships {
		edges = append(edges, user.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
