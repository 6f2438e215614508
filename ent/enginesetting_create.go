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
)

// EngineSettingCreate is the builder for creating a EngineSetting entity.
type EngineSettingCreate struct {
	config
	mutation *EngineSettingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngine sets the "engine" field.
func (_c *EngineSettingCreate) SetEngine(v string) *EngineSettingCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *EngineSettingCreate) SetKey(v string) *EngineSettingCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *EngineSettingCreate) SetValue(v string) *EngineSettingCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EngineSettingCreate) SetUpdatedAt(v time.Time) *EngineSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EngineSettingCreate) SetNillableUpdatedAt(v *time.Time) *EngineSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EngineSettingMutation object of the builder.
func (_c *EngineSettingCreate) Mutation() *EngineSettingMutation {
	return _c.mutation
}

// Save creates the EngineSetting in the database.
func (_c *EngineSettingCreate) Save(ctx context.Context) (*EngineSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngineSettingCreate) SaveX(ctx context.Context) *EngineSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngineSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngineSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngineSettingCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := enginesetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngineSettingCreate) check() error {
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "EngineSetting.engine"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "EngineSetting.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "EngineSetting.value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EngineSetting.updated_at"`)}
	}
	return nil
}

func (_c *EngineSettingCreate) sqlSave(ctx context.Context) (*EngineSetting, error) {
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

func (_c *EngineSettingCreate) createSpec() (*EngineSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &EngineSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enginesetting.Table, sqlgraph.NewFieldSpec(enginesetting.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(enginesetting.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(enginesetting.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(enginesetting.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(enginesetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngineSetting.Create().
//		SetEngine(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngineSettingUpsert) {
//			SetEngine(v+v).
//		}).
//		Exec(ctx)
func (_c *EngineSettingCreate) OnConflict(opts ...sql.ConflictOption) *EngineSettingUpsertOne {
	_c.conflict = opts
	return &EngineSettingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngineSettingCreate) OnConflictColumns(columns ...string) *EngineSettingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngineSettingUpsertOne{
		create: _c,
	}
}

type (
	// EngineSettingUpsertOne is the builder for "upsert"-ing
	//  one EngineSetting node.
	EngineSettingUpsertOne struct {
		create *EngineSettingCreate
	}

	// EngineSettingUpsert is the "OnConflict" setter.
	EngineSettingUpsert struct {
		*sql.UpdateSet
	}
)

// SetEngine sets the "engine" field.
func (u *EngineSettingUpsert) SetEngine(v string) *EngineSettingUpsert {
	u.Set(enginesetting.FieldEngine, v)
	return u
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *EngineSettingUpsert) UpdateEngine() *EngineSettingUpsert {
	u.SetExcluded(enginesetting.FieldEngine)
	return u
}

// SetKey sets the "key" field.
func (u *EngineSettingUpsert) SetKey(v string) *EngineSettingUpsert {
	u.Set(enginesetting.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EngineSettingUpsert) UpdateKey() *EngineSettingUpsert {
	u.SetExcluded(enginesetting.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *EngineSettingUpsert) SetValue(v string) *EngineSettingUpsert {
	u.Set(enginesetting.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EngineSettingUpsert) UpdateValue() *EngineSettingUpsert {
	u.SetExcluded(enginesetting.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngineSettingUpsert) SetUpdatedAt(v time.Time) *EngineSettingUpsert {
	u.Set(enginesetting.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngineSettingUpsert) UpdateUpdatedAt() *EngineSettingUpsert {
	u.SetExcluded(enginesetting.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EngineSettingUpsertOne) UpdateNewValues() *EngineSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EngineSettingUpsertOne) Ignore() *EngineSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngineSettingUpsertOne) DoNothing() *EngineSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngineSettingCreate.OnConflict
// documentation for more info.
func (u *EngineSettingUpsertOne) Update(set func(*EngineSettingUpsert)) *EngineSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngineSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEngine sets the "engine" field.
func (u *EngineSettingUpsertOne) SetEngine(v string) *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *EngineSettingUpsertOne) UpdateEngine() *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateEngine()
	})
}

// SetKey sets the "key" field.
func (u *EngineSettingUpsertOne) SetKey(v string) *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EngineSettingUpsertOne) UpdateKey() *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *EngineSettingUpsertOne) SetValue(v string) *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EngineSettingUpsertOne) UpdateValue() *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngineSettingUpsertOne) SetUpdatedAt(v time.Time) *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngineSettingUpsertOne) UpdateUpdatedAt() *EngineSettingUpsertOne {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngineSettingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngineSettingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngineSettingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EngineSettingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EngineSettingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EngineSettingCreateBulk is the builder for creating many EngineSetting entities in bulk.
type EngineSettingCreateBulk struct {
	config
	err      error
	builders []*EngineSettingCreate
	conflict []sql.ConflictOption
}

// Save creates the EngineSetting entities in the database.
func (_c *EngineSettingCreateBulk) Save(ctx context.Context) ([]*EngineSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngineSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngineSettingMutation)
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
func (_c *EngineSettingCreateBulk) SaveX(ctx context.Context) []*EngineSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngineSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngineSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngineSetting.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngineSettingUpsert) {
//			SetEngine(v+v).
//		}).
//		Exec(ctx)
func (_c *EngineSettingCreateBulk) OnConflict(opts ...sql.ConflictOption) *EngineSettingUpsertBulk {
	_c.conflict = opts
	return &EngineSettingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngineSettingCreateBulk) OnConflictColumns(columns ...string) *EngineSettingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngineSettingUpsertBulk{
		create: _c,
	}
}

// EngineSettingUpsertBulk is the builder for "upsert"-ing
// a bulk of EngineSetting nodes.
type EngineSettingUpsertBulk struct {
	create *EngineSettingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EngineSettingUpsertBulk) UpdateNewValues() *EngineSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngineSetting.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EngineSettingUpsertBulk) Ignore() *EngineSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngineSettingUpsertBulk) DoNothing() *EngineSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngineSettingCreateBulk.OnConflict
// documentation for more info.
func (u *EngineSettingUpsertBulk) Update(set func(*EngineSettingUpsert)) *EngineSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngineSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEngine sets the "engine" field.
func (u *EngineSettingUpsertBulk) SetEngine(v string) *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *EngineSettingUpsertBulk) UpdateEngine() *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateEngine()
	})
}

// SetKey sets the "key" field.
func (u *EngineSettingUpsertBulk) SetKey(v string) *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EngineSettingUpsertBulk) UpdateKey() *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *EngineSettingUpsertBulk) SetValue(v string) *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EngineSettingUpsertBulk) UpdateValue() *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngineSettingUpsertBulk) SetUpdatedAt(v time.Time) *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngineSettingUpsertBulk) UpdateUpdatedAt() *EngineSettingUpsertBulk {
	return u.Update(func(s *EngineSettingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngineSettingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EngineSettingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngineSettingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngineSettingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
