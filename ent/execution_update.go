// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupEmail sets the "group_email" field.
func (_u *ExecutionUpdate) SetGroupEmail(v string) *ExecutionUpdate {
	_u.mutation.SetGroupEmail(v)
	return _u
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableGroupEmail(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetGroupEmail(*v)
	}
	return _u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (_u *ExecutionUpdate) ClearGroupEmail() *ExecutionUpdate {
	_u.mutation.ClearGroupEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsStopping sets the "is_stopping" field.
func (_u *ExecutionUpdate) SetIsStopping(v bool) *ExecutionUpdate {
	_u.mutation.SetIsStopping(v)
	return _u
}

// SetNillableIsStopping sets the "is_stopping" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableIsStopping(v *bool) *ExecutionUpdate {
	if v != nil {
		_u.SetIsStopping(*v)
	}
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *ExecutionUpdate) SetStopReason(v string) *ExecutionUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStopReason(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *ExecutionUpdate) ClearStopReason() *ExecutionUpdate {
	_u.mutation.ClearStopReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdate) SetStartedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStartedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdate) ClearStartedAt() *ExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *ExecutionUpdate) SetInputs(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *ExecutionUpdate) ClearInputs() *ExecutionUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdate) SetResult(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdate) ClearResult() *ExecutionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionUpdate) SetError(v string) *ExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableError(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionUpdate) ClearError() *ExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetPartialResults sets the "partial_results" field.
func (_u *ExecutionUpdate) SetPartialResults(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetPartialResults(v)
	return _u
}

// AppendPartialResults appends value to the "partial_results" field.
func (_u *ExecutionUpdate) AppendPartialResults(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.AppendPartialResults(v)
	return _u
}

// ClearPartialResults clears the value of the "partial_results" field.
func (_u *ExecutionUpdate) ClearPartialResults() *ExecutionUpdate {
	_u.mutation.ClearPartialResults()
	return _u
}

// SetRunName sets the "run_name" field.
func (_u *ExecutionUpdate) SetRunName(v string) *ExecutionUpdate {
	_u.mutation.SetRunName(v)
	return _u
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRunName(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetRunName(*v)
	}
	return _u
}

// ClearRunName clears the value of the "run_name" field.
func (_u *ExecutionUpdate) ClearRunName() *ExecutionUpdate {
	_u.mutation.ClearRunName()
	return _u
}

// SetCreatedByEmail sets the "created_by_email" field.
func (_u *ExecutionUpdate) SetCreatedByEmail(v string) *ExecutionUpdate {
	_u.mutation.SetCreatedByEmail(v)
	return _u
}

// SetNillableCreatedByEmail sets the "created_by_email" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCreatedByEmail(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCreatedByEmail(*v)
	}
	return _u
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (_u *ExecutionUpdate) ClearCreatedByEmail() *ExecutionUpdate {
	_u.mutation.ClearCreatedByEmail()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdate) SetPodID(v string) *ExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePodID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdate) ClearPodID() *ExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupEmail(); ok {
		_spec.SetField(execution.FieldGroupEmail, field.TypeString, value)
	}
	if _u.mutation.GroupEmailCleared() {
		_spec.ClearField(execution.FieldGroupEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStopping(); ok {
		_spec.SetField(execution.FieldIsStopping, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(execution.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(execution.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(execution.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(execution.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(execution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PartialResults(); ok {
		_spec.SetField(execution.FieldPartialResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartialResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldPartialResults, value)
		})
	}
	if _u.mutation.PartialResultsCleared() {
		_spec.ClearField(execution.FieldPartialResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunName(); ok {
		_spec.SetField(execution.FieldRunName, field.TypeString, value)
	}
	if _u.mutation.RunNameCleared() {
		_spec.ClearField(execution.FieldRunName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByEmail(); ok {
		_spec.SetField(execution.FieldCreatedByEmail, field.TypeString, value)
	}
	if _u.mutation.CreatedByEmailCleared() {
		_spec.ClearField(execution.FieldCreatedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetGroupEmail sets the "group_email" field.
func (_u *ExecutionUpdateOne) SetGroupEmail(v string) *ExecutionUpdateOne {
	_u.mutation.SetGroupEmail(v)
	return _u
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableGroupEmail(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetGroupEmail(*v)
	}
	return _u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (_u *ExecutionUpdateOne) ClearGroupEmail() *ExecutionUpdateOne {
	_u.mutation.ClearGroupEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsStopping sets the "is_stopping" field.
func (_u *ExecutionUpdateOne) SetIsStopping(v bool) *ExecutionUpdateOne {
	_u.mutation.SetIsStopping(v)
	return _u
}

// SetNillableIsStopping sets the "is_stopping" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableIsStopping(v *bool) *ExecutionUpdateOne {
	if v != nil {
		_u.SetIsStopping(*v)
	}
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *ExecutionUpdateOne) SetStopReason(v string) *ExecutionUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStopReason(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *ExecutionUpdateOne) ClearStopReason() *ExecutionUpdateOne {
	_u.mutation.ClearStopReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdateOne) SetStartedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdateOne) ClearStartedAt() *ExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *ExecutionUpdateOne) SetInputs(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *ExecutionUpdateOne) ClearInputs() *ExecutionUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdateOne) SetResult(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdateOne) ClearResult() *ExecutionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionUpdateOne) SetError(v string) *ExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableError(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionUpdateOne) ClearError() *ExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetPartialResults sets the "partial_results" field.
func (_u *ExecutionUpdateOne) SetPartialResults(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetPartialResults(v)
	return _u
}

// AppendPartialResults appends value to the "partial_results" field.
func (_u *ExecutionUpdateOne) AppendPartialResults(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.AppendPartialResults(v)
	return _u
}

// ClearPartialResults clears the value of the "partial_results" field.
func (_u *ExecutionUpdateOne) ClearPartialResults() *ExecutionUpdateOne {
	_u.mutation.ClearPartialResults()
	return _u
}

// SetRunName sets the "run_name" field.
func (_u *ExecutionUpdateOne) SetRunName(v string) *ExecutionUpdateOne {
	_u.mutation.SetRunName(v)
	return _u
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRunName(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRunName(*v)
	}
	return _u
}

// ClearRunName clears the value of the "run_name" field.
func (_u *ExecutionUpdateOne) ClearRunName() *ExecutionUpdateOne {
	_u.mutation.ClearRunName()
	return _u
}

// SetCreatedByEmail sets the "created_by_email" field.
func (_u *ExecutionUpdateOne) SetCreatedByEmail(v string) *ExecutionUpdateOne {
	_u.mutation.SetCreatedByEmail(v)
	return _u
}

// SetNillableCreatedByEmail sets the "created_by_email" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCreatedByEmail(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedByEmail(*v)
	}
	return _u
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (_u *ExecutionUpdateOne) ClearCreatedByEmail() *ExecutionUpdateOne {
	_u.mutation.ClearCreatedByEmail()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdateOne) SetPodID(v string) *ExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePodID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdateOne) ClearPodID() *ExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.GroupEmail(); ok {
		_spec.SetField(execution.FieldGroupEmail, field.TypeString, value)
	}
	if _u.mutation.GroupEmailCleared() {
		_spec.ClearField(execution.FieldGroupEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStopping(); ok {
		_spec.SetField(execution.FieldIsStopping, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(execution.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(execution.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(execution.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(execution.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(execution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PartialResults(); ok {
		_spec.SetField(execution.FieldPartialResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartialResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldPartialResults, value)
		})
	}
	if _u.mutation.PartialResultsCleared() {
		_spec.ClearField(execution.FieldPartialResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunName(); ok {
		_spec.SetField(execution.FieldRunName, field.TypeString, value)
	}
	if _u.mutation.RunNameCleared() {
		_spec.ClearField(execution.FieldRunName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByEmail(); ok {
		_spec.SetField(execution.FieldCreatedByEmail, field.TypeString, value)
	}
	if _u.mutation.CreatedByEmailCleared() {
		_spec.ClearField(execution.FieldCreatedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
