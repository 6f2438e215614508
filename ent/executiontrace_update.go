// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ExecutionTraceUpdate is the builder for updating ExecutionTrace entities.
type ExecutionTraceUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionTraceMutation
}

// Where appends a list predicates to the ExecutionTraceUpdate builder.
func (_u *ExecutionTraceUpdate) Where(ps ...predicate.ExecutionTrace) *ExecutionTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventSource sets the "event_source" field.
func (_u *ExecutionTraceUpdate) SetEventSource(v string) *ExecutionTraceUpdate {
	_u.mutation.SetEventSource(v)
	return _u
}

// SetNillableEventSource sets the "event_source" field if the given value is not nil.
func (_u *ExecutionTraceUpdate) SetNillableEventSource(v *string) *ExecutionTraceUpdate {
	if v != nil {
		_u.SetEventSource(*v)
	}
	return _u
}

// SetEventContext sets the "event_context" field.
func (_u *ExecutionTraceUpdate) SetEventContext(v string) *ExecutionTraceUpdate {
	_u.mutation.SetEventContext(v)
	return _u
}

// SetNillableEventContext sets the "event_context" field if the given value is not nil.
func (_u *ExecutionTraceUpdate) SetNillableEventContext(v *string) *ExecutionTraceUpdate {
	if v != nil {
		_u.SetEventContext(*v)
	}
	return _u
}

// ClearEventContext clears the value of the "event_context" field.
func (_u *ExecutionTraceUpdate) ClearEventContext() *ExecutionTraceUpdate {
	_u.mutation.ClearEventContext()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ExecutionTraceUpdate) SetEventType(v string) *ExecutionTraceUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ExecutionTraceUpdate) SetNillableEventType(v *string) *ExecutionTraceUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionTraceUpdate) SetOutput(v string) *ExecutionTraceUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionTraceUpdate) SetNillableOutput(v *string) *ExecutionTraceUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionTraceUpdate) ClearOutput() *ExecutionTraceUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetTraceMetadata sets the "trace_metadata" field.
func (_u *ExecutionTraceUpdate) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceUpdate {
	_u.mutation.SetTraceMetadata(v)
	return _u
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (_u *ExecutionTraceUpdate) ClearTraceMetadata() *ExecutionTraceUpdate {
	_u.mutation.ClearTraceMetadata()
	return _u
}

// SetGroupEmail sets the "group_email" field.
func (_u *ExecutionTraceUpdate) SetGroupEmail(v string) *ExecutionTraceUpdate {
	_u.mutation.SetGroupEmail(v)
	return _u
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_u *ExecutionTraceUpdate) SetNillableGroupEmail(v *string) *ExecutionTraceUpdate {
	if v != nil {
		_u.SetGroupEmail(*v)
	}
	return _u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (_u *ExecutionTraceUpdate) ClearGroupEmail() *ExecutionTraceUpdate {
	_u.mutation.ClearGroupEmail()
	return _u
}

// Mutation returns the ExecutionTraceMutation object of the builder.
func (_u *ExecutionTraceUpdate) Mutation() *ExecutionTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(executiontrace.Table, executiontrace.Columns, sqlgraph.NewFieldSpec(executiontrace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventSource(); ok {
		_spec.SetField(executiontrace.FieldEventSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventContext(); ok {
		_spec.SetField(executiontrace.FieldEventContext, field.TypeString, value)
	}
	if _u.mutation.EventContextCleared() {
		_spec.ClearField(executiontrace.FieldEventContext, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(executiontrace.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executiontrace.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(executiontrace.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.TraceMetadata(); ok {
		_spec.SetField(executiontrace.FieldTraceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TraceMetadataCleared() {
		_spec.ClearField(executiontrace.FieldTraceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.GroupEmail(); ok {
		_spec.SetField(executiontrace.FieldGroupEmail, field.TypeString, value)
	}
	if _u.mutation.GroupEmailCleared() {
		_spec.ClearField(executiontrace.FieldGroupEmail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiontrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionTraceUpdateOne is the builder for updating a single ExecutionTrace entity.
type ExecutionTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionTraceMutation
}

// SetEventSource sets the "event_source" field.
func (_u *ExecutionTraceUpdateOne) SetEventSource(v string) *ExecutionTraceUpdateOne {
	_u.mutation.SetEventSource(v)
	return _u
}

// SetNillableEventSource sets the "event_source" field if the given value is not nil.
func (_u *ExecutionTraceUpdateOne) SetNillableEventSource(v *string) *ExecutionTraceUpdateOne {
	if v != nil {
		_u.SetEventSource(*v)
	}
	return _u
}

// SetEventContext sets the "event_context" field.
func (_u *ExecutionTraceUpdateOne) SetEventContext(v string) *ExecutionTraceUpdateOne {
	_u.mutation.SetEventContext(v)
	return _u
}

// SetNillableEventContext sets the "event_context" field if the given value is not nil.
func (_u *ExecutionTraceUpdateOne) SetNillableEventContext(v *string) *ExecutionTraceUpdateOne {
	if v != nil {
		_u.SetEventContext(*v)
	}
	return _u
}

// ClearEventContext clears the value of the "event_context" field.
func (_u *ExecutionTraceUpdateOne) ClearEventContext() *ExecutionTraceUpdateOne {
	_u.mutation.ClearEventContext()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ExecutionTraceUpdateOne) SetEventType(v string) *ExecutionTraceUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ExecutionTraceUpdateOne) SetNillableEventType(v *string) *ExecutionTraceUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionTraceUpdateOne) SetOutput(v string) *ExecutionTraceUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionTraceUpdateOne) SetNillableOutput(v *string) *ExecutionTraceUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionTraceUpdateOne) ClearOutput() *ExecutionTraceUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetTraceMetadata sets the "trace_metadata" field.
func (_u *ExecutionTraceUpdateOne) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceUpdateOne {
	_u.mutation.SetTraceMetadata(v)
	return _u
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (_u *ExecutionTraceUpdateOne) ClearTraceMetadata() *ExecutionTraceUpdateOne {
	_u.mutation.ClearTraceMetadata()
	return _u
}

// SetGroupEmail sets the "group_email" field.
func (_u *ExecutionTraceUpdateOne) SetGroupEmail(v string) *ExecutionTraceUpdateOne {
	_u.mutation.SetGroupEmail(v)
	return _u
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_u *ExecutionTraceUpdateOne) SetNillableGroupEmail(v *string) *ExecutionTraceUpdateOne {
	if v != nil {
		_u.SetGroupEmail(*v)
	}
	return _u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (_u *ExecutionTraceUpdateOne) ClearGroupEmail() *ExecutionTraceUpdateOne {
	_u.mutation.ClearGroupEmail()
	return _u
}

// Mutation returns the ExecutionTraceMutation object of the builder.
func (_u *ExecutionTraceUpdateOne) Mutation() *ExecutionTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionTraceUpdate builder.
func (_u *ExecutionTraceUpdateOne) Where(ps ...predicate.ExecutionTrace) *ExecutionTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionTraceUpdateOne) Select(field string, fields ...string) *ExecutionTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionTrace entity.
func (_u *ExecutionTraceUpdateOne) Save(ctx context.Context) (*ExecutionTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionTraceUpdateOne) SaveX(ctx context.Context) *ExecutionTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionTraceUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionTrace, err error) {
	_spec := sqlgraph.NewUpdateSpec(executiontrace.Table, executiontrace.Columns, sqlgraph.NewFieldSpec(executiontrace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executiontrace.FieldID)
		for _, f := range fields {
			if !executiontrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executiontrace.FieldID {
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
	if value, ok := _u.mutation.EventSource(); ok {
		_spec.SetField(executiontrace.FieldEventSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventContext(); ok {
		_spec.SetField(executiontrace.FieldEventContext, field.TypeString, value)
	}
	if _u.mutation.EventContextCleared() {
		_spec.ClearField(executiontrace.FieldEventContext, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(executiontrace.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executiontrace.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(executiontrace.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.TraceMetadata(); ok {
		_spec.SetField(executiontrace.FieldTraceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TraceMetadataCleared() {
		_spec.ClearField(executiontrace.FieldTraceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.GroupEmail(); ok {
		_spec.SetField(executiontrace.FieldGroupEmail, field.TypeString, value)
	}
	if _u.mutation.GroupEmailCleared() {
		_spec.ClearField(executiontrace.FieldGroupEmail, field.TypeString)
	}
	_node = &ExecutionTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiontrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
