// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/flowrecord"
	"github.com/kasal-project/kasal/ent/predicate"
)

// FlowRecordUpdate is the builder for updating FlowRecord entities.
type FlowRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FlowRecordMutation
}

// Where appends a list predicates to the FlowRecordUpdate builder.
func (_u *FlowRecordUpdate) Where(ps ...predicate.FlowRecord) *FlowRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FlowRecordUpdate) SetName(v string) *FlowRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlowRecordUpdate) SetNillableName(v *string) *FlowRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNodes sets the "nodes" field.
func (_u *FlowRecordUpdate) SetNodes(v []map[string]interface{}) *FlowRecordUpdate {
	_u.mutation.SetNodes(v)
	return _u
}

// AppendNodes appends value to the "nodes" field.
func (_u *FlowRecordUpdate) AppendNodes(v []map[string]interface{}) *FlowRecordUpdate {
	_u.mutation.AppendNodes(v)
	return _u
}

// ClearNodes clears the value of the "nodes" field.
func (_u *FlowRecordUpdate) ClearNodes() *FlowRecordUpdate {
	_u.mutation.ClearNodes()
	return _u
}

// SetEdges sets the "edges" field.
func (_u *FlowRecordUpdate) SetEdges(v []map[string]interface{}) *FlowRecordUpdate {
	_u.mutation.SetEdges(v)
	return _u
}

// AppendEdges appends value to the "edges" field.
func (_u *FlowRecordUpdate) AppendEdges(v []map[string]interface{}) *FlowRecordUpdate {
	_u.mutation.AppendEdges(v)
	return _u
}

// ClearEdges clears the value of the "edges" field.
func (_u *FlowRecordUpdate) ClearEdges() *FlowRecordUpdate {
	_u.mutation.ClearEdges()
	return _u
}

// SetStartingPoints sets the "starting_points" field.
func (_u *FlowRecordUpdate) SetStartingPoints(v []string) *FlowRecordUpdate {
	_u.mutation.SetStartingPoints(v)
	return _u
}

// AppendStartingPoints appends value to the "starting_points" field.
func (_u *FlowRecordUpdate) AppendStartingPoints(v []string) *FlowRecordUpdate {
	_u.mutation.AppendStartingPoints(v)
	return _u
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (_u *FlowRecordUpdate) ClearStartingPoints() *FlowRecordUpdate {
	_u.mutation.ClearStartingPoints()
	return _u
}

// Mutation returns the FlowRecordMutation object of the builder.
func (_u *FlowRecordUpdate) Mutation() *FlowRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FlowRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(flowrecord.Table, flowrecord.Columns, sqlgraph.NewFieldSpec(flowrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(flowrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nodes(); ok {
		_spec.SetField(flowrecord.FieldNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldNodes, value)
		})
	}
	if _u.mutation.NodesCleared() {
		_spec.ClearField(flowrecord.FieldNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Edges(); ok {
		_spec.SetField(flowrecord.FieldEdges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldEdges, value)
		})
	}
	if _u.mutation.EdgesCleared() {
		_spec.ClearField(flowrecord.FieldEdges, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartingPoints(); ok {
		_spec.SetField(flowrecord.FieldStartingPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStartingPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldStartingPoints, value)
		})
	}
	if _u.mutation.StartingPointsCleared() {
		_spec.ClearField(flowrecord.FieldStartingPoints, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowRecordUpdateOne is the builder for updating a single FlowRecord entity.
type FlowRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowRecordMutation
}

// SetName sets the "name" field.
func (_u *FlowRecordUpdateOne) SetName(v string) *FlowRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FlowRecordUpdateOne) SetNillableName(v *string) *FlowRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNodes sets the "nodes" field.
func (_u *FlowRecordUpdateOne) SetNodes(v []map[string]interface{}) *FlowRecordUpdateOne {
	_u.mutation.SetNodes(v)
	return _u
}

// AppendNodes appends value to the "nodes" field.
func (_u *FlowRecordUpdateOne) AppendNodes(v []map[string]interface{}) *FlowRecordUpdateOne {
	_u.mutation.AppendNodes(v)
	return _u
}

// ClearNodes clears the value of the "nodes" field.
func (_u *FlowRecordUpdateOne) ClearNodes() *FlowRecordUpdateOne {
	_u.mutation.ClearNodes()
	return _u
}

// SetEdges sets the "edges" field.
func (_u *FlowRecordUpdateOne) SetEdges(v []map[string]interface{}) *FlowRecordUpdateOne {
	_u.mutation.SetEdges(v)
	return _u
}

// AppendEdges appends value to the "edges" field.
func (_u *FlowRecordUpdateOne) AppendEdges(v []map[string]interface{}) *FlowRecordUpdateOne {
	_u.mutation.AppendEdges(v)
	return _u
}

// ClearEdges clears the value of the "edges" field.
func (_u *FlowRecordUpdateOne) ClearEdges() *FlowRecordUpdateOne {
	_u.mutation.ClearEdges()
	return _u
}

// SetStartingPoints sets the "starting_points" field.
func (_u *FlowRecordUpdateOne) SetStartingPoints(v []string) *FlowRecordUpdateOne {
	_u.mutation.SetStartingPoints(v)
	return _u
}

// AppendStartingPoints appends value to the "starting_points" field.
func (_u *FlowRecordUpdateOne) AppendStartingPoints(v []string) *FlowRecordUpdateOne {
	_u.mutation.AppendStartingPoints(v)
	return _u
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (_u *FlowRecordUpdateOne) ClearStartingPoints() *FlowRecordUpdateOne {
	_u.mutation.ClearStartingPoints()
	return _u
}

// Mutation returns the FlowRecordMutation object of the builder.
func (_u *FlowRecordUpdateOne) Mutation() *FlowRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlowRecordUpdate builder.
func (_u *FlowRecordUpdateOne) Where(ps ...predicate.FlowRecord) *FlowRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowRecordUpdateOne) Select(field string, fields ...string) *FlowRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowRecord entity.
func (_u *FlowRecordUpdateOne) Save(ctx context.Context) (*FlowRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRecordUpdateOne) SaveX(ctx context.Context) *FlowRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FlowRecordUpdateOne) sqlSave(ctx context.Context) (_node *FlowRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(flowrecord.Table, flowrecord.Columns, sqlgraph.NewFieldSpec(flowrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowrecord.FieldID)
		for _, f := range fields {
			if !flowrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowrecord.FieldID {
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
		_spec.SetField(flowrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nodes(); ok {
		_spec.SetField(flowrecord.FieldNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldNodes, value)
		})
	}
	if _u.mutation.NodesCleared() {
		_spec.ClearField(flowrecord.FieldNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Edges(); ok {
		_spec.SetField(flowrecord.FieldEdges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldEdges, value)
		})
	}
	if _u.mutation.EdgesCleared() {
		_spec.ClearField(flowrecord.FieldEdges, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartingPoints(); ok {
		_spec.SetField(flowrecord.FieldStartingPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStartingPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrecord.FieldStartingPoints, value)
		})
	}
	if _u.mutation.StartingPointsCleared() {
		_spec.ClearField(flowrecord.FieldStartingPoints, field.TypeJSON)
	}
	_node = &FlowRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
