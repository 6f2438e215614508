// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/memoryconfig"
	"github.com/kasal-project/kasal/ent/predicate"
)

// MemoryConfigUpdate is the builder for updating MemoryConfig entities.
type MemoryConfigUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryConfigMutation
}

// Where appends a list predicates to the MemoryConfigUpdate builder.
func (_u *MemoryConfigUpdate) Where(ps ...predicate.MemoryConfig) *MemoryConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBackendType sets the "backend_type" field.
func (_u *MemoryConfigUpdate) SetBackendType(v memoryconfig.BackendType) *MemoryConfigUpdate {
	_u.mutation.SetBackendType(v)
	return _u
}

// SetNillableBackendType sets the "backend_type" field if the given value is not nil.
func (_u *MemoryConfigUpdate) SetNillableBackendType(v *memoryconfig.BackendType) *MemoryConfigUpdate {
	if v != nil {
		_u.SetBackendType(*v)
	}
	return _u
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (_u *MemoryConfigUpdate) SetShortTermEnabled(v bool) *MemoryConfigUpdate {
	_u.mutation.SetShortTermEnabled(v)
	return _u
}

// SetNillableShortTermEnabled sets the "short_term_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdate) SetNillableShortTermEnabled(v *bool) *MemoryConfigUpdate {
	if v != nil {
		_u.SetShortTermEnabled(*v)
	}
	return _u
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (_u *MemoryConfigUpdate) SetLongTermEnabled(v bool) *MemoryConfigUpdate {
	_u.mutation.SetLongTermEnabled(v)
	return _u
}

// SetNillableLongTermEnabled sets the "long_term_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdate) SetNillableLongTermEnabled(v *bool) *MemoryConfigUpdate {
	if v != nil {
		_u.SetLongTermEnabled(*v)
	}
	return _u
}

// SetEntityEnabled sets the "entity_enabled" field.
func (_u *MemoryConfigUpdate) SetEntityEnabled(v bool) *MemoryConfigUpdate {
	_u.mutation.SetEntityEnabled(v)
	return _u
}

// SetNillableEntityEnabled sets the "entity_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdate) SetNillableEntityEnabled(v *bool) *MemoryConfigUpdate {
	if v != nil {
		_u.SetEntityEnabled(*v)
	}
	return _u
}

// SetEmbedder sets the "embedder" field.
func (_u *MemoryConfigUpdate) SetEmbedder(v map[string]interface{}) *MemoryConfigUpdate {
	_u.mutation.SetEmbedder(v)
	return _u
}

// ClearEmbedder clears the value of the "embedder" field.
func (_u *MemoryConfigUpdate) ClearEmbedder() *MemoryConfigUpdate {
	_u.mutation.ClearEmbedder()
	return _u
}

// SetDatabricks sets the "databricks" field.
func (_u *MemoryConfigUpdate) SetDatabricks(v map[string]interface{}) *MemoryConfigUpdate {
	_u.mutation.SetDatabricks(v)
	return _u
}

// ClearDatabricks clears the value of the "databricks" field.
func (_u *MemoryConfigUpdate) ClearDatabricks() *MemoryConfigUpdate {
	_u.mutation.ClearDatabricks()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MemoryConfigUpdate) SetIsActive(v bool) *MemoryConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MemoryConfigUpdate) SetNillableIsActive(v *bool) *MemoryConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the MemoryConfigMutation object of the builder.
func (_u *MemoryConfigUpdate) Mutation() *MemoryConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryConfigUpdate) check() error {
	if v, ok := _u.mutation.BackendType(); ok {
		if err := memoryconfig.BackendTypeValidator(v); err != nil {
			return &ValidationError{Name: "backend_type", err: fmt.Errorf(`ent: validator failed for field "MemoryConfig.backend_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryconfig.Table, memoryconfig.Columns, sqlgraph.NewFieldSpec(memoryconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BackendType(); ok {
		_spec.SetField(memoryconfig.FieldBackendType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShortTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldShortTermEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LongTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldLongTermEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EntityEnabled(); ok {
		_spec.SetField(memoryconfig.FieldEntityEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Embedder(); ok {
		_spec.SetField(memoryconfig.FieldEmbedder, field.TypeJSON, value)
	}
	if _u.mutation.EmbedderCleared() {
		_spec.ClearField(memoryconfig.FieldEmbedder, field.TypeJSON)
	}
	if value, ok := _u.mutation.Databricks(); ok {
		_spec.SetField(memoryconfig.FieldDatabricks, field.TypeJSON, value)
	}
	if _u.mutation.DatabricksCleared() {
		_spec.ClearField(memoryconfig.FieldDatabricks, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(memoryconfig.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryConfigUpdateOne is the builder for updating a single MemoryConfig entity.
type MemoryConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryConfigMutation
}

// SetBackendType sets the "backend_type" field.
func (_u *MemoryConfigUpdateOne) SetBackendType(v memoryconfig.BackendType) *MemoryConfigUpdateOne {
	_u.mutation.SetBackendType(v)
	return _u
}

// SetNillableBackendType sets the "backend_type" field if the given value is not nil.
func (_u *MemoryConfigUpdateOne) SetNillableBackendType(v *memoryconfig.BackendType) *MemoryConfigUpdateOne {
	if v != nil {
		_u.SetBackendType(*v)
	}
	return _u
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (_u *MemoryConfigUpdateOne) SetShortTermEnabled(v bool) *MemoryConfigUpdateOne {
	_u.mutation.SetShortTermEnabled(v)
	return _u
}

// SetNillableShortTermEnabled sets the "short_term_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdateOne) SetNillableShortTermEnabled(v *bool) *MemoryConfigUpdateOne {
	if v != nil {
		_u.SetShortTermEnabled(*v)
	}
	return _u
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (_u *MemoryConfigUpdateOne) SetLongTermEnabled(v bool) *MemoryConfigUpdateOne {
	_u.mutation.SetLongTermEnabled(v)
	return _u
}

// SetNillableLongTermEnabled sets the "long_term_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdateOne) SetNillableLongTermEnabled(v *bool) *MemoryConfigUpdateOne {
	if v != nil {
		_u.SetLongTermEnabled(*v)
	}
	return _u
}

// SetEntityEnabled sets the "entity_enabled" field.
func (_u *MemoryConfigUpdateOne) SetEntityEnabled(v bool) *MemoryConfigUpdateOne {
	_u.mutation.SetEntityEnabled(v)
	return _u
}

// SetNillableEntityEnabled sets the "entity_enabled" field if the given value is not nil.
func (_u *MemoryConfigUpdateOne) SetNillableEntityEnabled(v *bool) *MemoryConfigUpdateOne {
	if v != nil {
		_u.SetEntityEnabled(*v)
	}
	return _u
}

// SetEmbedder sets the "embedder" field.
func (_u *MemoryConfigUpdateOne) SetEmbedder(v map[string]interface{}) *MemoryConfigUpdateOne {
	_u.mutation.SetEmbedder(v)
	return _u
}

// ClearEmbedder clears the value of the "embedder" field.
func (_u *MemoryConfigUpdateOne) ClearEmbedder() *MemoryConfigUpdateOne {
	_u.mutation.ClearEmbedder()
	return _u
}

// SetDatabricks sets the "databricks" field.
func (_u *MemoryConfigUpdateOne) SetDatabricks(v map[string]interface{}) *MemoryConfigUpdateOne {
	_u.mutation.SetDatabricks(v)
	return _u
}

// ClearDatabricks clears the value of the "databricks" field.
func (_u *MemoryConfigUpdateOne) ClearDatabricks() *MemoryConfigUpdateOne {
	_u.mutation.ClearDatabricks()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MemoryConfigUpdateOne) SetIsActive(v bool) *MemoryConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MemoryConfigUpdateOne) SetNillableIsActive(v *bool) *MemoryConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the MemoryConfigMutation object of the builder.
func (_u *MemoryConfigUpdateOne) Mutation() *MemoryConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryConfigUpdate builder.
func (_u *MemoryConfigUpdateOne) Where(ps ...predicate.MemoryConfig) *MemoryConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryConfigUpdateOne) Select(field string, fields ...string) *MemoryConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryConfig entity.
func (_u *MemoryConfigUpdateOne) Save(ctx context.Context) (*MemoryConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryConfigUpdateOne) SaveX(ctx context.Context) *MemoryConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryConfigUpdateOne) check() error {
	if v, ok := _u.mutation.BackendType(); ok {
		if err := memoryconfig.BackendTypeValidator(v); err != nil {
			return &ValidationError{Name: "backend_type", err: fmt.Errorf(`ent: validator failed for field "MemoryConfig.backend_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryConfigUpdateOne) sqlSave(ctx context.Context) (_node *MemoryConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryconfig.Table, memoryconfig.Columns, sqlgraph.NewFieldSpec(memoryconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryconfig.FieldID)
		for _, f := range fields {
			if !memoryconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BackendType(); ok {
		_spec.SetField(memoryconfig.FieldBackendType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShortTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldShortTermEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LongTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldLongTermEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EntityEnabled(); ok {
		_spec.SetField(memoryconfig.FieldEntityEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Embedder(); ok {
		_spec.SetField(memoryconfig.FieldEmbedder, field.TypeJSON, value)
	}
	if _u.mutation.EmbedderCleared() {
		_spec.ClearField(memoryconfig.FieldEmbedder, field.TypeJSON)
	}
	if value, ok := _u.mutation.Databricks(); ok {
		_spec.SetField(memoryconfig.FieldDatabricks, field.TypeJSON, value)
	}
	if _u.mutation.DatabricksCleared() {
		_spec.ClearField(memoryconfig.FieldDatabricks, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(memoryconfig.FieldIsActive, field.TypeBool, value)
	}
	_node = &MemoryConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
