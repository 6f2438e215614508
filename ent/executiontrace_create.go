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
	"github.com/kasal-project/kasal/ent/executiontrace"
)

// ExecutionTraceCreate is the builder for creating a ExecutionTrace entity.
type ExecutionTraceCreate struct {
	config
	mutation *ExecutionTraceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *ExecutionTraceCreate) SetJobID(v string) *ExecutionTraceCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetEventSource sets the "event_source" field.
func (_c *ExecutionTraceCreate) SetEventSource(v string) *ExecutionTraceCreate {
	_c.mutation.SetEventSource(v)
	return _c
}

// SetEventContext sets the "event_context" field.
func (_c *ExecutionTraceCreate) SetEventContext(v string) *ExecutionTraceCreate {
	_c.mutation.SetEventContext(v)
	return _c
}

// SetNillableEventContext sets the "event_context" field if the given value is not nil.
func (_c *ExecutionTraceCreate) SetNillableEventContext(v *string) *ExecutionTraceCreate {
	if v != nil {
		_c.SetEventContext(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ExecutionTraceCreate) SetEventType(v string) *ExecutionTraceCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExecutionTraceCreate) SetOutput(v string) *ExecutionTraceCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *ExecutionTraceCreate) SetNillableOutput(v *string) *ExecutionTraceCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetTraceMetadata sets the "trace_metadata" field.
func (_c *ExecutionTraceCreate) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceCreate {
	_c.mutation.SetTraceMetadata(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ExecutionTraceCreate) SetGroupID(v string) *ExecutionTraceCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetGroupEmail sets the "group_email" field.
func (_c *ExecutionTraceCreate) SetGroupEmail(v string) *ExecutionTraceCreate {
	_c.mutation.SetGroupEmail(v)
	return _c
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_c *ExecutionTraceCreate) SetNillableGroupEmail(v *string) *ExecutionTraceCreate {
	if v != nil {
		_c.SetGroupEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionTraceCreate) SetCreatedAt(v time.Time) *ExecutionTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionTraceCreate) SetNillableCreatedAt(v *time.Time) *ExecutionTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExecutionTraceMutation object of the builder.
func (_c *ExecutionTraceCreate) Mutation() *ExecutionTraceMutation {
	return _c.mutation
}

// Save creates the ExecutionTrace in the database.
func (_c *ExecutionTraceCreate) Save(ctx context.Context) (*ExecutionTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionTraceCreate) SaveX(ctx context.Context) *ExecutionTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionTraceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executiontrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionTraceCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ExecutionTrace.job_id"`)}
	}
	if _, ok := _c.mutation.EventSource(); !ok {
		return &ValidationError{Name: "event_source", err: errors.New(`ent: missing required field "ExecutionTrace.event_source"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ExecutionTrace.event_type"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "ExecutionTrace.group_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionTrace.created_at"`)}
	}
	return nil
}

func (_c *ExecutionTraceCreate) sqlSave(ctx context.Context) (*ExecutionTrace, error) {
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

func (_c *ExecutionTraceCreate) createSpec() (*ExecutionTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executiontrace.Table, sqlgraph.NewFieldSpec(executiontrace.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(executiontrace.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.EventSource(); ok {
		_spec.SetField(executiontrace.FieldEventSource, field.TypeString, value)
		_node.EventSource = value
	}
	if value, ok := _c.mutation.EventContext(); ok {
		_spec.SetField(executiontrace.FieldEventContext, field.TypeString, value)
		_node.EventContext = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(executiontrace.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(executiontrace.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.TraceMetadata(); ok {
		_spec.SetField(executiontrace.FieldTraceMetadata, field.TypeJSON, value)
		_node.TraceMetadata = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(executiontrace.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.GroupEmail(); ok {
		_spec.SetField(executiontrace.FieldGroupEmail, field.TypeString, value)
		_node.GroupEmail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executiontrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionTrace.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionTraceUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionTraceCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionTraceUpsertOne {
	_c.conflict = opts
	return &ExecutionTraceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionTraceCreate) OnConflictColumns(columns ...string) *ExecutionTraceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionTraceUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionTraceUpsertOne is the builder for "upsert"-ing
	//  one ExecutionTrace node.
	ExecutionTraceUpsertOne struct {
		create *ExecutionTraceCreate
	}

	// ExecutionTraceUpsert is the "OnConflict" setter.
	ExecutionTraceUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventSource sets the "event_source" field.
func (u *ExecutionTraceUpsert) SetEventSource(v string) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldEventSource, v)
	return u
}

// UpdateEventSource sets the "event_source" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateEventSource() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldEventSource)
	return u
}

// SetEventContext sets the "event_context" field.
func (u *ExecutionTraceUpsert) SetEventContext(v string) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldEventContext, v)
	return u
}

// UpdateEventContext sets the "event_context" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateEventContext() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldEventContext)
	return u
}

// ClearEventContext clears the value of the "event_context" field.
func (u *ExecutionTraceUpsert) ClearEventContext() *ExecutionTraceUpsert {
	u.SetNull(executiontrace.FieldEventContext)
	return u
}

// SetEventType sets the "event_type" field.
func (u *ExecutionTraceUpsert) SetEventType(v string) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateEventType() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldEventType)
	return u
}

// SetOutput sets the "output" field.
func (u *ExecutionTraceUpsert) SetOutput(v string) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateOutput() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *ExecutionTraceUpsert) ClearOutput() *ExecutionTraceUpsert {
	u.SetNull(executiontrace.FieldOutput)
	return u
}

// SetTraceMetadata sets the "trace_metadata" field.
func (u *ExecutionTraceUpsert) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldTraceMetadata, v)
	return u
}

// UpdateTraceMetadata sets the "trace_metadata" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateTraceMetadata() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldTraceMetadata)
	return u
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (u *ExecutionTraceUpsert) ClearTraceMetadata() *ExecutionTraceUpsert {
	u.SetNull(executiontrace.FieldTraceMetadata)
	return u
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionTraceUpsert) SetGroupEmail(v string) *ExecutionTraceUpsert {
	u.Set(executiontrace.FieldGroupEmail, v)
	return u
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionTraceUpsert) UpdateGroupEmail() *ExecutionTraceUpsert {
	u.SetExcluded(executiontrace.FieldGroupEmail)
	return u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionTraceUpsert) ClearGroupEmail() *ExecutionTraceUpsert {
	u.SetNull(executiontrace.FieldGroupEmail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionTraceUpsertOne) UpdateNewValues() *ExecutionTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(executiontrace.FieldJobID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(executiontrace.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(executiontrace.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionTraceUpsertOne) Ignore() *ExecutionTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionTraceUpsertOne) DoNothing() *ExecutionTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionTraceCreate.OnConflict
// documentation for more info.
func (u *ExecutionTraceUpsertOne) Update(set func(*ExecutionTraceUpsert)) *ExecutionTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventSource sets the "event_source" field.
func (u *ExecutionTraceUpsertOne) SetEventSource(v string) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventSource(v)
	})
}

// UpdateEventSource sets the "event_source" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateEventSource() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventSource()
	})
}

// SetEventContext sets the "event_context" field.
func (u *ExecutionTraceUpsertOne) SetEventContext(v string) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventContext(v)
	})
}

// UpdateEventContext sets the "event_context" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateEventContext() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventContext()
	})
}

// ClearEventContext clears the value of the "event_context" field.
func (u *ExecutionTraceUpsertOne) ClearEventContext() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearEventContext()
	})
}

// SetEventType sets the "event_type" field.
func (u *ExecutionTraceUpsertOne) SetEventType(v string) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateEventType() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventType()
	})
}

// SetOutput sets the "output" field.
func (u *ExecutionTraceUpsertOne) SetOutput(v string) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateOutput() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ExecutionTraceUpsertOne) ClearOutput() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearOutput()
	})
}

// SetTraceMetadata sets the "trace_metadata" field.
func (u *ExecutionTraceUpsertOne) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetTraceMetadata(v)
	})
}

// UpdateTraceMetadata sets the "trace_metadata" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateTraceMetadata() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateTraceMetadata()
	})
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (u *ExecutionTraceUpsertOne) ClearTraceMetadata() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearTraceMetadata()
	})
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionTraceUpsertOne) SetGroupEmail(v string) *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionTraceUpsertOne) UpdateGroupEmail() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionTraceUpsertOne) ClearGroupEmail() *ExecutionTraceUpsertOne {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearGroupEmail()
	})
}

// Exec executes the query.
func (u *ExecutionTraceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionTraceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionTraceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionTraceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionTraceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionTraceCreateBulk is the builder for creating many ExecutionTrace entities in bulk.
type ExecutionTraceCreateBulk struct {
	config
	err      error
	builders []*ExecutionTraceCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionTrace entities in the database.
func (_c *ExecutionTraceCreateBulk) Save(ctx context.Context) ([]*ExecutionTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionTraceMutation)
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
func (_c *ExecutionTraceCreateBulk) SaveX(ctx context.Context) []*ExecutionTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionTrace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionTraceUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionTraceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionTraceUpsertBulk {
	_c.conflict = opts
	return &ExecutionTraceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionTraceCreateBulk) OnConflictColumns(columns ...string) *ExecutionTraceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionTraceUpsertBulk{
		create: _c,
	}
}

// ExecutionTraceUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionTrace nodes.
type ExecutionTraceUpsertBulk struct {
	create *ExecutionTraceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionTraceUpsertBulk) UpdateNewValues() *ExecutionTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(executiontrace.FieldJobID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(executiontrace.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(executiontrace.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionTrace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionTraceUpsertBulk) Ignore() *ExecutionTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionTraceUpsertBulk) DoNothing() *ExecutionTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionTraceCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionTraceUpsertBulk) Update(set func(*ExecutionTraceUpsert)) *ExecutionTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventSource sets the "event_source" field.
func (u *ExecutionTraceUpsertBulk) SetEventSource(v string) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventSource(v)
	})
}

// UpdateEventSource sets the "event_source" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateEventSource() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventSource()
	})
}

// SetEventContext sets the "event_context" field.
func (u *ExecutionTraceUpsertBulk) SetEventContext(v string) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventContext(v)
	})
}

// UpdateEventContext sets the "event_context" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateEventContext() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventContext()
	})
}

// ClearEventContext clears the value of the "event_context" field.
func (u *ExecutionTraceUpsertBulk) ClearEventContext() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearEventContext()
	})
}

// SetEventType sets the "event_type" field.
func (u *ExecutionTraceUpsertBulk) SetEventType(v string) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateEventType() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateEventType()
	})
}

// SetOutput sets the "output" field.
func (u *ExecutionTraceUpsertBulk) SetOutput(v string) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateOutput() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ExecutionTraceUpsertBulk) ClearOutput() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearOutput()
	})
}

// SetTraceMetadata sets the "trace_metadata" field.
func (u *ExecutionTraceUpsertBulk) SetTraceMetadata(v map[string]interface{}) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetTraceMetadata(v)
	})
}

// UpdateTraceMetadata sets the "trace_metadata" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateTraceMetadata() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateTraceMetadata()
	})
}

// ClearTraceMetadata clears the value of the "trace_metadata" field.
func (u *ExecutionTraceUpsertBulk) ClearTraceMetadata() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearTraceMetadata()
	})
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionTraceUpsertBulk) SetGroupEmail(v string) *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionTraceUpsertBulk) UpdateGroupEmail() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionTraceUpsertBulk) ClearGroupEmail() *ExecutionTraceUpsertBulk {
	return u.Update(func(s *ExecutionTraceUpsert) {
		s.ClearGroupEmail()
	})
}

// Exec executes the query.
func (u *ExecutionTraceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionTraceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionTraceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionTraceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
