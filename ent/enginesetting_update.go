// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/enginesetting"
	"github.com/kasal-project/kasal/ent/predicate"
)

// EngineSettingUpdate is the builder for updating EngineSetting entities.
type EngineSettingUpdate struct {
	config
	hooks    []Hook
	mutation *EngineSettingMutation
}

// Where appends a list predicates to the EngineSettingUpdate builder.
func (_u *EngineSettingUpdate) Where(ps ...predicate.EngineSetting) *EngineSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEngine sets the "engine" field.
func (_u *EngineSettingUpdate) SetEngine(v string) *EngineSettingUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *EngineSettingUpdate) SetNillableEngine(v *string) *EngineSettingUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *EngineSettingUpdate) SetKey(v string) *EngineSettingUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *EngineSettingUpdate) SetNillableKey(v *string) *EngineSettingUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *EngineSettingUpdate) SetValue(v string) *EngineSettingUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *EngineSettingUpdate) SetNillableValue(v *string) *EngineSettingUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngineSettingUpdate) SetUpdatedAt(v time.Time) *EngineSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngineSettingMutation object of the builder.
func (_u *EngineSettingUpdate) Mutation() *EngineSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngineSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngineSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngineSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngineSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngineSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enginesetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EngineSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(enginesetting.Table, enginesetting.Columns, sqlgraph.NewFieldSpec(enginesetting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(enginesetting.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(enginesetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(enginesetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enginesetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enginesetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngineSettingUpdateOne is the builder for updating a single EngineSetting entity.
type EngineSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngineSettingMutation
}

// SetEngine sets the "engine" field.
func (_u *EngineSettingUpdateOne) SetEngine(v string) *EngineSettingUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *EngineSettingUpdateOne) SetNillableEngine(v *string) *EngineSettingUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *EngineSettingUpdateOne) SetKey(v string) *EngineSettingUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *EngineSettingUpdateOne) SetNillableKey(v *string) *EngineSettingUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *EngineSettingUpdateOne) SetValue(v string) *EngineSettingUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *EngineSettingUpdateOne) SetNillableValue(v *string) *EngineSettingUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngineSettingUpdateOne) SetUpdatedAt(v time.Time) *EngineSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngineSettingMutation object of the builder.
func (_u *EngineSettingUpdateOne) Mutation() *EngineSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngineSettingUpdate builder.
func (_u *EngineSettingUpdateOne) Where(ps ...predicate.EngineSetting) *EngineSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngineSettingUpdateOne) Select(field string, fields ...string) *EngineSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngineSetting entity.
func (_u *EngineSettingUpdateOne) Save(ctx context.Context) (*EngineSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngineSettingUpdateOne) SaveX(ctx context.Context) *EngineSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngineSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngineSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngineSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enginesetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EngineSettingUpdateOne) sqlSave(ctx context.Context) (_node *EngineSetting, err error) {
	_spec := sqlgraph.NewUpdateSpec(enginesetting.Table, enginesetting.Columns, sqlgraph.NewFieldSpec(enginesetting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngineSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enginesetting.FieldID)
		for _, f := range fields {
			if !enginesetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enginesetting.FieldID {
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
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(enginesetting.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(enginesetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(enginesetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enginesetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EngineSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enginesetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
