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
	"github.com/kasal-project/kasal/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionLogCreate) SetExecutionID(v string) *ExecutionLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ExecutionLogCreate) SetContent(v string) *ExecutionLogCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExecutionLogCreate) SetTimestamp(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableTimestamp(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ExecutionLogCreate) SetGroupID(v string) *ExecutionLogCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetGroupEmail sets the "group_email" field.
func (_c *ExecutionLogCreate) SetGroupEmail(v string) *ExecutionLogCreate {
	_c.mutation.SetGroupEmail(v)
	return _c
}

// SetNillableGroupEmail sets the "group_email" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableGroupEmail(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetGroupEmail(*v)
	}
	return _c
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := executionlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionLog.execution_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExecutionLog.content"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExecutionLog.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "ExecutionLog.group_id"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
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

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(executionlog.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(executionlog.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(executionlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(executionlog.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.GroupEmail(); ok {
		_spec.SetField(executionlog.FieldGroupEmail, field.TypeString, value)
		_node.GroupEmail = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionLog.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionLogUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionLogCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionLogUpsertOne {
	_c.conflict = opts
	return &ExecutionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionLogCreate) OnConflictColumns(columns ...string) *ExecutionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionLogUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionLogUpsertOne is the builder for "upsert"-ing
	//  one ExecutionLog node.
	ExecutionLogUpsertOne struct {
		create *ExecutionLogCreate
	}

	// ExecutionLogUpsert is the "OnConflict" setter.
	ExecutionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetContent sets the "content" field.
func (u *ExecutionLogUpsert) SetContent(v string) *ExecutionLogUpsert {
	u.Set(executionlog.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateContent() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldContent)
	return u
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionLogUpsert) SetGroupEmail(v string) *ExecutionLogUpsert {
	u.Set(executionlog.FieldGroupEmail, v)
	return u
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateGroupEmail() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldGroupEmail)
	return u
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionLogUpsert) ClearGroupEmail() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldGroupEmail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionLogUpsertOne) UpdateNewValues() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ExecutionID(); exists {
			s.SetIgnore(executionlog.FieldExecutionID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(executionlog.FieldTimestamp)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(executionlog.FieldGroupID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionLogUpsertOne) Ignore() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionLogUpsertOne) DoNothing() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionLogCreate.OnConflict
// documentation for more info.
func (u *ExecutionLogUpsertOne) Update(set func(*ExecutionLogUpsert)) *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *ExecutionLogUpsertOne) SetContent(v string) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateContent() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateContent()
	})
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionLogUpsertOne) SetGroupEmail(v string) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateGroupEmail() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionLogUpsertOne) ClearGroupEmail() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearGroupEmail()
	})
}

// Exec executes the query.
func (u *ExecutionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
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
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionLogUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionLogUpsertBulk {
	_c.conflict = opts
	return &ExecutionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionLogCreateBulk) OnConflictColumns(columns ...string) *ExecutionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionLogUpsertBulk{
		create: _c,
	}
}

// ExecutionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionLog nodes.
type ExecutionLogUpsertBulk struct {
	create *ExecutionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionLogUpsertBulk) UpdateNewValues() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ExecutionID(); exists {
				s.SetIgnore(executionlog.FieldExecutionID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(executionlog.FieldTimestamp)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(executionlog.FieldGroupID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionLogUpsertBulk) Ignore() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionLogUpsertBulk) DoNothing() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionLogUpsertBulk) Update(set func(*ExecutionLogUpsert)) *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *ExecutionLogUpsertBulk) SetContent(v string) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateContent() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateContent()
	})
}

// SetGroupEmail sets the "group_email" field.
func (u *ExecutionLogUpsertBulk) SetGroupEmail(v string) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetGroupEmail(v)
	})
}

// UpdateGroupEmail sets the "group_email" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateGroupEmail() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateGroupEmail()
	})
}

// ClearGroupEmail clears the value of the "group_email" field.
func (u *ExecutionLogUpsertBulk) ClearGroupEmail() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearGroupEmail()
	})
}

// Exec executes the query.
func (u *ExecutionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
