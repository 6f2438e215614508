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
	"github.com/kasal-project/kasal/ent/execution"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *ExecutionCreate) SetJobID(v string) *ExecutionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ExecutionCreate) SetGroupID(v string) *ExecutionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetGroupEmail sets the "group_email" field.
func (_c *ExecutionCreate) SetGroupEmail(v string) *ExecutionCreate {
	_c.mutation.SetGroupEmail(v)
	return _c
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableGroupEmail(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetGroupEmail(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsStopping sets the "is_stopping" field.
func (_c *ExecutionCreate) SetIsStopping(v bool) *ExecutionCreate {
	_c.mutation.SetIsStopping(v)
	return _c
}

// SetNillableIsStopping sets the "is_stopping" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableIsStopping(v *bool) *ExecutionCreate {
	if v != nil {
		_c.SetIsStopping(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *ExecutionCreate) SetStopReason(v string) *ExecutionCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStopReason(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionCreate) SetCreatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionCreate) SetStartedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStartedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *ExecutionCreate) SetInputs(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ExecutionCreate) SetResult(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *ExecutionCreate) SetError(v string) *ExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableError(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetPartialResults sets the "partial_results" field.
func (_c *ExecutionCreate) SetPartialResults(v []map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetPartialResults(v)
	return _c
}

// SetRunName sets the "run_name" field.
func (_c *ExecutionCreate) SetRunName(v string) *ExecutionCreate {
	_c.mutation.SetRunName(v)
	return _c
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRunName(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetRunName(*v)
	}
	return _c
}

// SetCreatedByEmail sets the "created_by_email" field.
func (_c *ExecutionCreate) SetCreatedByEmail(v string) *ExecutionCreate {
	_c.mutation.SetCreatedByEmail(v)
	return _c
}

// SetNillableCreatedByEmail sets the "created_by_email" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedByEmail(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedByEmail(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ExecutionCreate) SetPodID(v string) *ExecutionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillablePodID(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsStopping(); !ok {
		v := execution.DefaultIsStopping
		_c.mutation.SetIsStopping(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := execution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Execution.job_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Execution.group_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsStopping(); !ok {
		return &ValidationError{Name: "is_stopping", err: errors.New(`ent: missing required field "Execution.is_stopping"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Execution.created_at"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(execution.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(execution.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.GroupEmail(); ok {
		_spec.SetField(execution.FieldGroupEmail, field.TypeString, value)
		_node.GroupEmail = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsStopping(); ok {
		_spec.SetField(execution.FieldIsStopping, field.TypeBool, value)
		_node.IsStopping = value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(execution.FieldStopReason, field.TypeString, value)
		_node.StopReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(execution.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(execution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.PartialResults(); ok {
		_spec.SetField(execution.FieldPartialResults, field.TypeJSON, value)
		_node.PartialResults = value
	}
	if value, ok := _c.mutation.RunName(); ok {
		_spec.SetField(execution.FieldRunName, field.TypeString, value)
		_node.RunName = value
	}
	if value, ok := _c.mutation.CreatedByEmail(); ok {
		_spec.SetField(execution.FieldCreatedByEmail, field.TypeString, value)
		_node.CreatedByEmail = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Execution.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionUpsertOne {
	_c.conflict = opts
	return &ExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Execution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionCreate) OnConflictColumns(columns ...string) *ExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionUpsertOne is the builder for "upsert"-ing
	//  one Execution node.
	ExecutionUpsertOne struct {
		create *ExecutionCreate
	}

	// ExecutionUpsert is the "OnConflict" setter.
	ExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionUpsert) SetGroupEmail(v string) *ExecutionUpsert {
	u.Set(execution.FieldGroupEmail, v)
	return u
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateGroupEmail() *ExecutionUpsert {
	u.SetExcluded(execution.FieldGroupEmail)
	return u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionUpsert) ClearGroupEmail() *ExecutionUpsert {
	u.SetNull(execution.FieldGroupEmail)
	return u
}

// SetStatus sets the "status" field.
func (u *ExecutionUpsert) SetStatus(v execution.Status) *ExecutionUpsert {
	u.Set(execution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateStatus() *ExecutionUpsert {
	u.SetExcluded(execution.FieldStatus)
	return u
}

// SetIsStopping sets the "is_stopping" field.
func (u *ExecutionUpsert) SetIsStopping(v bool) *ExecutionUpsert {
	u.Set(execution.FieldIsStopping, v)
	return u
}

// UpdateIsStopping sets the "is_stopping" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateIsStopping() *ExecutionUpsert {
	u.SetExcluded(execution.FieldIsStopping)
	return u
}

// SetStopReason sets the "stop_reason" field.
func (u *ExecutionUpsert) SetStopReason(v string) *ExecutionUpsert {
	u.Set(execution.FieldStopReason, v)
	return u
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateStopReason() *ExecutionUpsert {
	u.SetExcluded(execution.FieldStopReason)
	return u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *ExecutionUpsert) ClearStopReason() *ExecutionUpsert {
	u.SetNull(execution.FieldStopReason)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ExecutionUpsert) SetStartedAt(v time.Time) *ExecutionUpsert {
	u.Set(execution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateStartedAt() *ExecutionUpsert {
	u.SetExcluded(execution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExecutionUpsert) ClearStartedAt() *ExecutionUpsert {
	u.SetNull(execution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionUpsert) SetCompletedAt(v time.Time) *ExecutionUpsert {
	u.Set(execution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateCompletedAt() *ExecutionUpsert {
	u.SetExcluded(execution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionUpsert) ClearCompletedAt() *ExecutionUpsert {
	u.SetNull(execution.FieldCompletedAt)
	return u
}

// SetInputs sets the "inputs" field.
func (u *ExecutionUpsert) SetInputs(v map[string]interface{}) *ExecutionUpsert {
	u.Set(execution.FieldInputs, v)
	return u
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateInputs() *ExecutionUpsert {
	u.SetExcluded(execution.FieldInputs)
	return u
}

// ClearInputs clears the value of the "inputs" field.
func (u *ExecutionUpsert) ClearInputs() *ExecutionUpsert {
	u.SetNull(execution.FieldInputs)
	return u
}

// SetResult sets the "result" field.
func (u *ExecutionUpsert) SetResult(v map[string]interface{}) *ExecutionUpsert {
	u.Set(execution.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateResult() *ExecutionUpsert {
	u.SetExcluded(execution.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *ExecutionUpsert) ClearResult() *ExecutionUpsert {
	u.SetNull(execution.FieldResult)
	return u
}

// SetError sets the "error" field.
func (u *ExecutionUpsert) SetError(v string) *ExecutionUpsert {
	u.Set(execution.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateError() *ExecutionUpsert {
	u.SetExcluded(execution.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *ExecutionUpsert) ClearError() *ExecutionUpsert {
	u.SetNull(execution.FieldError)
	return u
}

// SetPartialResults sets the "partial_results" field.
func (u *ExecutionUpsert) SetPartialResults(v []map[string]interface{}) *ExecutionUpsert {
	u.Set(execution.FieldPartialResults, v)
	return u
}

// UpdatePartialResults sets the "partial_results" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdatePartialResults() *ExecutionUpsert {
	u.SetExcluded(execution.FieldPartialResults)
	return u
}

// ClearPartialResults clears the value of the "partial_results" field.
func (u *ExecutionUpsert) ClearPartialResults() *ExecutionUpsert {
	u.SetNull(execution.FieldPartialResults)
	return u
}

// SetRunName sets the "run_name" field.
func (u *ExecutionUpsert) SetRunName(v string) *ExecutionUpsert {
	u.Set(execution.FieldRunName, v)
	return u
}

// UpdateRunName sets the "run_name" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateRunName() *ExecutionUpsert {
	u.SetExcluded(execution.FieldRunName)
	return u
}

// ClearRunName clears the value of the "run_name" field.
func (u *ExecutionUpsert) ClearRunName() *ExecutionUpsert {
	u.SetNull(execution.FieldRunName)
	return u
}

// SetCreatedByEmail sets the "created_by_email" field.
func (u *ExecutionUpsert) SetCreatedByEmail(v string) *ExecutionUpsert {
	u.Set(execution.FieldCreatedByEmail, v)
	return u
}

// UpdateCreatedByEmail sets the "created_by_email" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdateCreatedByEmail() *ExecutionUpsert {
	u.SetExcluded(execution.FieldCreatedByEmail)
	return u
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (u *ExecutionUpsert) ClearCreatedByEmail() *ExecutionUpsert {
	u.SetNull(execution.FieldCreatedByEmail)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ExecutionUpsert) SetPodID(v string) *ExecutionUpsert {
	u.Set(execution.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ExecutionUpsert) UpdatePodID() *ExecutionUpsert {
	u.SetExcluded(execution.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ExecutionUpsert) ClearPodID() *ExecutionUpsert {
	u.SetNull(execution.FieldPodID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Execution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionUpsertOne) UpdateNewValues() *ExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(execution.FieldJobID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(execution.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(execution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Execution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionUpsertOne) Ignore() *ExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionUpsertOne) DoNothing() *ExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionCreate.OnConflict
// documentation for more info.
func (u *ExecutionUpsertOne) Update(set func(*ExecutionUpsert)) *ExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionUpsertOne) SetGroupEmail(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateGroupEmail() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionUpsertOne) ClearGroupEmail() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearGroupEmail()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionUpsertOne) SetStatus(v execution.Status) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateStatus() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetIsStopping sets the "is_stopping" field.
func (u *ExecutionUpsertOne) SetIsStopping(v bool) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetIsStopping(v)
	})
}

// UpdateIsStopping sets the "is_stopping" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateIsStopping() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateIsStopping()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *ExecutionUpsertOne) SetStopReason(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateStopReason() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *ExecutionUpsertOne) ClearStopReason() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearStopReason()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ExecutionUpsertOne) SetStartedAt(v time.Time) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateStartedAt() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExecutionUpsertOne) ClearStartedAt() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionUpsertOne) SetCompletedAt(v time.Time) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateCompletedAt() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionUpsertOne) ClearCompletedAt() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInputs sets the "inputs" field.
func (u *ExecutionUpsertOne) SetInputs(v map[string]interface{}) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateInputs() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *ExecutionUpsertOne) ClearInputs() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearInputs()
	})
}

// SetResult sets the "result" field.
func (u *ExecutionUpsertOne) SetResult(v map[string]interface{}) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateResult() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *ExecutionUpsertOne) ClearResult() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *ExecutionUpsertOne) SetError(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateError() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ExecutionUpsertOne) ClearError() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearError()
	})
}

// SetPartialResults sets the "partial_results" field.
func (u *ExecutionUpsertOne) SetPartialResults(v []map[string]interface{}) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetPartialResults(v)
	})
}

// UpdatePartialResults sets the "partial_results" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdatePartialResults() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdatePartialResults()
	})
}

// ClearPartialResults clears the value of the "partial_results" field.
func (u *ExecutionUpsertOne) ClearPartialResults() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearPartialResults()
	})
}

// SetRunName sets the "run_name" field.
func (u *ExecutionUpsertOne) SetRunName(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetRunName(v)
	})
}

// UpdateRunName sets the "run_name" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateRunName() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateRunName()
	})
}

// ClearRunName clears the value of the "run_name" field.
func (u *ExecutionUpsertOne) ClearRunName() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearRunName()
	})
}

// SetCreatedByEmail sets the "created_by_email" field.
func (u *ExecutionUpsertOne) SetCreatedByEmail(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetCreatedByEmail(v)
	})
}

// UpdateCreatedByEmail sets the "created_by_email" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdateCreatedByEmail() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateCreatedByEmail()
	})
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (u *ExecutionUpsertOne) ClearCreatedByEmail() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearCreatedByEmail()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ExecutionUpsertOne) SetPodID(v string) *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ExecutionUpsertOne) UpdatePodID() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ExecutionUpsertOne) ClearPodID() *ExecutionUpsertOne {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearPodID()
	})
}

// Exec executes the query.
func (u *ExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Execution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionUpsertBulk {
	_c.conflict = opts
	return &ExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Execution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionCreateBulk) OnConflictColumns(columns ...string) *ExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionUpsertBulk{
		create: _c,
	}
}

// ExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of Execution nodes.
type ExecutionUpsertBulk struct {
	create *ExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Execution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionUpsertBulk) UpdateNewValues() *ExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(execution.FieldJobID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(execution.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(execution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Execution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionUpsertBulk) Ignore() *ExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionUpsertBulk) DoNothing() *ExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionUpsertBulk) Update(set func(*ExecutionUpsert)) *ExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionUpsertBulk) SetGroupEmail(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateGroupEmail() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionUpsertBulk) ClearGroupEmail() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearGroupEmail()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionUpsertBulk) SetStatus(v execution.Status) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateStatus() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetIsStopping sets the "is_stopping" field.
func (u *ExecutionUpsertBulk) SetIsStopping(v bool) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetIsStopping(v)
	})
}

// UpdateIsStopping sets the "is_stopping" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateIsStopping() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateIsStopping()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *ExecutionUpsertBulk) SetStopReason(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateStopReason() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *ExecutionUpsertBulk) ClearStopReason() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearStopReason()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ExecutionUpsertBulk) SetStartedAt(v time.Time) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateStartedAt() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExecutionUpsertBulk) ClearStartedAt() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionUpsertBulk) SetCompletedAt(v time.Time) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateCompletedAt() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionUpsertBulk) ClearCompletedAt() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInputs sets the "inputs" field.
func (u *ExecutionUpsertBulk) SetInputs(v map[string]interface{}) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateInputs() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *ExecutionUpsertBulk) ClearInputs() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearInputs()
	})
}

// SetResult sets the "result" field.
func (u *ExecutionUpsertBulk) SetResult(v map[string]interface{}) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateResult() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *ExecutionUpsertBulk) ClearResult() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *ExecutionUpsertBulk) SetError(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateError() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ExecutionUpsertBulk) ClearError() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearError()
	})
}

// SetPartialResults sets the "partial_results" field.
func (u *ExecutionUpsertBulk) SetPartialResults(v []map[string]interface{}) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetPartialResults(v)
	})
}

// UpdatePartialResults sets the "partial_results" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdatePartialResults() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdatePartialResults()
	})
}

// ClearPartialResults clears the value of the "partial_results" field.
func (u *ExecutionUpsertBulk) ClearPartialResults() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearPartialResults()
	})
}

// SetRunName sets the "run_name" field.
func (u *ExecutionUpsertBulk) SetRunName(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetRunName(v)
	})
}

// UpdateRunName sets the "run_name" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateRunName() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateRunName()
	})
}

// ClearRunName clears the value of the "run_name" field.
func (u *ExecutionUpsertBulk) ClearRunName() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearRunName()
	})
}

// SetCreatedByEmail sets the "created_by_email" field.
func (u *ExecutionUpsertBulk) SetCreatedByEmail(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetCreatedByEmail(v)
	})
}

// UpdateCreatedByEmail sets the "created_by_email" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdateCreatedByEmail() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdateCreatedByEmail()
	})
}

// ClearCreatedByEmail clears the value of the "created_by_email" field.
func (u *ExecutionUpsertBulk) ClearCreatedByEmail() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearCreatedByEmail()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ExecutionUpsertBulk) SetPodID(v string) *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ExecutionUpsertBulk) UpdatePodID() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ExecutionUpsertBulk) ClearPodID() *ExecutionUpsertBulk {
	return u.Update(func(s *ExecutionUpsert) {
		s.ClearPodID()
	})
}

// Exec executes the query.
func (u *ExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
