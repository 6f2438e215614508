// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/predicate"
	"github.com/kasal-project/kasal/ent/toolrecord"
)

// ToolRecordUpdate is the builder for updating ToolRecord entities.
type ToolRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ToolRecordMutation
}

// Where appends a list predicates to the ToolRecordUpdate builder.
func (_u *ToolRecordUpdate) Where(ps ...predicate.ToolRecord) *ToolRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolRecordUpdate) SetName(v string) *ToolRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolRecordUpdate) SetNillableName(v *string) *ToolRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ToolRecordUpdate) SetKind(v string) *ToolRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ToolRecordUpdate) SetNillableKind(v *string) *ToolRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ToolRecordUpdate) SetConfig(v map[string]interface{}) *ToolRecordUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ToolRecordUpdate) ClearConfig() *ToolRecordUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ToolRecordUpdate) SetEnabled(v bool) *ToolRecordUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ToolRecordUpdate) SetNillableEnabled(v *bool) *ToolRecordUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ToolRecordMutation object of the builder.
func (_u *ToolRecordUpdate) Mutation() *ToolRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolrecord.Table, toolrecord.Columns, sqlgraph.NewFieldSpec(toolrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(toolrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(toolrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(toolrecord.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(toolrecord.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(toolrecord.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolRecordUpdateOne is the builder for updating a single ToolRecord entity.
type ToolRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolRecordMutation
}

// SetName sets the "name" field.
func (_u *ToolRecordUpdateOne) SetName(v string) *ToolRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolRecordUpdateOne) SetNillableName(v *string) *ToolRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ToolRecordUpdateOne) SetKind(v string) *ToolRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ToolRecordUpdateOne) SetNillableKind(v *string) *ToolRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ToolRecordUpdateOne) SetConfig(v map[string]interface{}) *ToolRecordUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ToolRecordUpdateOne) ClearConfig() *ToolRecordUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ToolRecordUpdateOne) SetEnabled(v bool) *ToolRecordUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ToolRecordUpdateOne) SetNillableEnabled(v *bool) *ToolRecordUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ToolRecordMutation object of the builder.
func (_u *ToolRecordUpdateOne) Mutation() *ToolRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolRecordUpdate builder.
func (_u *ToolRecordUpdateOne) Where(ps ...predicate.ToolRecord) *ToolRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolRecordUpdateOne) Select(field string, fields ...string) *ToolRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolRecord entity.
func (_u *ToolRecordUpdateOne) Save(ctx context.Context) (*ToolRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolRecordUpdateOne) SaveX(ctx context.Context) *ToolRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolRecordUpdateOne) sqlSave(ctx context.Context) (_node *ToolRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolrecord.Table, toolrecord.Columns, sqlgraph.NewFieldSpec(toolrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolrecord.FieldID)
		for _, f := range fields {
			if !toolrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolrecord.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(toolrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(toolrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(toolrecord.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(toolrecord.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(toolrecord.FieldEnabled, field.TypeBool, value)
	}
	_node = &ToolRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
