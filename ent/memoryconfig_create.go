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
	"github.com/kasal-project/kasal/ent/memoryconfig"
)

// MemoryConfigCreate is the builder for creating a MemoryConfig entity.
type MemoryConfigCreate struct {
	config
	mutation *MemoryConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *MemoryConfigCreate) SetGroupID(v string) *MemoryConfigCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetBackendType sets the "backend_type" field.
func (_c *MemoryConfigCreate) SetBackendType(v memoryconfig.BackendType) *MemoryConfigCreate {
	_c.mutation.SetBackendType(v)
	return _c
}

// SetNillableBackendType sets the "backend_type" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableBackendType(v *memoryconfig.BackendType) *MemoryConfigCreate {
	if v != nil {
		_c.SetBackendType(*v)
	}
	return _c
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (_c *MemoryConfigCreate) SetShortTermEnabled(v bool) *MemoryConfigCreate {
	_c.mutation.SetShortTermEnabled(v)
	return _c
}

// SetNillableShortTermEnabled sets the "short_term_enabled" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableShortTermEnabled(v *bool) *MemoryConfigCreate {
	if v != nil {
		_c.SetShortTermEnabled(*v)
	}
	return _c
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (_c *MemoryConfigCreate) SetLongTermEnabled(v bool) *MemoryConfigCreate {
	_c.mutation.SetLongTermEnabled(v)
	return _c
}

// SetNillableLongTermEnabled sets the "long_term_enabled" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableLongTermEnabled(v *bool) *MemoryConfigCreate {
	if v != nil {
		_c.SetLongTermEnabled(*v)
	}
	return _c
}

// SetEntityEnabled sets the "entity_enabled" field.
func (_c *MemoryConfigCreate) SetEntityEnabled(v bool) *MemoryConfigCreate {
	_c.mutation.SetEntityEnabled(v)
	return _c
}

// SetNillableEntityEnabled sets the "entity_enabled" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableEntityEnabled(v *bool) *MemoryConfigCreate {
	if v != nil {
		_c.SetEntityEnabled(*v)
	}
	return _c
}

// SetEmbedder sets the "embedder" field.
func (_c *MemoryConfigCreate) SetEmbedder(v map[string]interface{}) *MemoryConfigCreate {
	_c.mutation.SetEmbedder(v)
	return _c
}

// SetDatabricks sets the "databricks" field.
func (_c *MemoryConfigCreate) SetDatabricks(v map[string]interface{}) *MemoryConfigCreate {
	_c.mutation.SetDatabricks(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *MemoryConfigCreate) SetIsActive(v bool) *MemoryConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableIsActive(v *bool) *MemoryConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryConfigCreate) SetCreatedAt(v time.Time) *MemoryConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryConfigCreate) SetNillableCreatedAt(v *time.Time) *MemoryConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the MemoryConfigMutation object of the builder.
func (_c *MemoryConfigCreate) Mutation() *MemoryConfigMutation {
	return _c.mutation
}

// Save creates the MemoryConfig in the database.
func (_c *MemoryConfigCreate) Save(ctx context.Context) (*MemoryConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryConfigCreate) SaveX(ctx context.Context) *MemoryConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryConfigCreate) defaults() {
	if _, ok := _c.mutation.BackendType(); !ok {
		v := memoryconfig.DefaultBackendType
		_c.mutation.SetBackendType(v)
	}
	if _, ok := _c.mutation.ShortTermEnabled(); !ok {
		v := memoryconfig.DefaultShortTermEnabled
		_c.mutation.SetShortTermEnabled(v)
	}
	if _, ok := _c.mutation.LongTermEnabled(); !ok {
		v := memoryconfig.DefaultLongTermEnabled
		_c.mutation.SetLongTermEnabled(v)
	}
	if _, ok := _c.mutation.EntityEnabled(); !ok {
		v := memoryconfig.DefaultEntityEnabled
		_c.mutation.SetEntityEnabled(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := memoryconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryConfigCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "MemoryConfig.group_id"`)}
	}
	if _, ok := _c.mutation.BackendType(); !ok {
		return &ValidationError{Name: "backend_type", err: errors.New(`ent: missing required field "MemoryConfig.backend_type"`)}
	}
	if v, ok := _c.mutation.BackendType(); ok {
		if err := memoryconfig.BackendTypeValidator(v); err != nil {
			return &ValidationError{Name: "backend_type", err: fmt.Errorf(`ent: validator failed for field "MemoryConfig.backend_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShortTermEnabled(); !ok {
		return &ValidationError{Name: "short_term_enabled", err: errors.New(`ent: missing required field "MemoryConfig.short_term_enabled"`)}
	}
	if _, ok := _c.mutation.LongTermEnabled(); !ok {
		return &ValidationError{Name: "long_term_enabled", err: errors.New(`ent: missing required field "MemoryConfig.long_term_enabled"`)}
	}
	if _, ok := _c.mutation.EntityEnabled(); !ok {
		return &ValidationError{Name: "entity_enabled", err: errors.New(`ent: missing required field "MemoryConfig.entity_enabled"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "MemoryConfig.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryConfig.created_at"`)}
	}
	return nil
}

func (_c *MemoryConfigCreate) sqlSave(ctx context.Context) (*MemoryConfig, error) {
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

func (_c *MemoryConfigCreate) createSpec() (*MemoryConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryconfig.Table, sqlgraph.NewFieldSpec(memoryconfig.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(memoryconfig.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.BackendType(); ok {
		_spec.SetField(memoryconfig.FieldBackendType, field.TypeEnum, value)
		_node.BackendType = value
	}
	if value, ok := _c.mutation.ShortTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldShortTermEnabled, field.TypeBool, value)
		_node.ShortTermEnabled = value
	}
	if value, ok := _c.mutation.LongTermEnabled(); ok {
		_spec.SetField(memoryconfig.FieldLongTermEnabled, field.TypeBool, value)
		_node.LongTermEnabled = value
	}
	if value, ok := _c.mutation.EntityEnabled(); ok {
		_spec.SetField(memoryconfig.FieldEntityEnabled, field.TypeBool, value)
		_node.EntityEnabled = value
	}
	if value, ok := _c.mutation.Embedder(); ok {
		_spec.SetField(memoryconfig.FieldEmbedder, field.TypeJSON, value)
		_node.Embedder = value
	}
	if value, ok := _c.mutation.Databricks(); ok {
		_spec.SetField(memoryconfig.FieldDatabricks, field.TypeJSON, value)
		_node.Databricks = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(memoryconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MemoryConfig.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemoryConfigUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *MemoryConfigCreate) OnConflict(opts ...sql.ConflictOption) *MemoryConfigUpsertOne {
	_c.conflict = opts
	return &MemoryConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemoryConfigCreate) OnConflictColumns(columns ...string) *MemoryConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemoryConfigUpsertOne{
		create: _c,
	}
}

type (
	// MemoryConfigUpsertOne is the builder for "upsert"-ing
	//  one MemoryConfig node.
	MemoryConfigUpsertOne struct {
		create *MemoryConfigCreate
	}

	// MemoryConfigUpsert is the "OnConflict" setter.
	MemoryConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetBackendType sets the "backend_type" field.
func (u *MemoryConfigUpsert) SetBackendType(v memoryconfig.BackendType) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldBackendType, v)
	return u
}

// UpdateBackendType sets the "backend_type" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateBackendType() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldBackendType)
	return u
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (u *MemoryConfigUpsert) SetShortTermEnabled(v bool) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldShortTermEnabled, v)
	return u
}

// UpdateShortTermEnabled sets the "short_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateShortTermEnabled() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldShortTermEnabled)
	return u
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (u *MemoryConfigUpsert) SetLongTermEnabled(v bool) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldLongTermEnabled, v)
	return u
}

// UpdateLongTermEnabled sets the "long_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateLongTermEnabled() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldLongTermEnabled)
	return u
}

// SetEntityEnabled sets the "entity_enabled" field.
func (u *MemoryConfigUpsert) SetEntityEnabled(v bool) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldEntityEnabled, v)
	return u
}

// UpdateEntityEnabled sets the "entity_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateEntityEnabled() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldEntityEnabled)
	return u
}

// SetEmbedder sets the "embedder" field.
func (u *MemoryConfigUpsert) SetEmbedder(v map[string]interface{}) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldEmbedder, v)
	return u
}

// UpdateEmbedder sets the "embedder" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateEmbedder() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldEmbedder)
	return u
}

// ClearEmbedder clears the value of the "embedder" field.
func (u *MemoryConfigUpsert) ClearEmbedder() *MemoryConfigUpsert {
	u.SetNull(memoryconfig.FieldEmbedder)
	return u
}

// SetDatabricks sets the "databricks" field.
func (u *MemoryConfigUpsert) SetDatabricks(v map[string]interface{}) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldDatabricks, v)
	return u
}

// UpdateDatabricks sets the "databricks" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateDatabricks() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldDatabricks)
	return u
}

// ClearDatabricks clears the value of the "databricks" field.
func (u *MemoryConfigUpsert) ClearDatabricks() *MemoryConfigUpsert {
	u.SetNull(memoryconfig.FieldDatabricks)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *MemoryConfigUpsert) SetIsActive(v bool) *MemoryConfigUpsert {
	u.Set(memoryconfig.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MemoryConfigUpsert) UpdateIsActive() *MemoryConfigUpsert {
	u.SetExcluded(memoryconfig.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MemoryConfigUpsertOne) UpdateNewValues() *MemoryConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(memoryconfig.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(memoryconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MemoryConfigUpsertOne) Ignore() *MemoryConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemoryConfigUpsertOne) DoNothing() *MemoryConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemoryConfigCreate.OnConflict
// documentation for more info.
func (u *MemoryConfigUpsertOne) Update(set func(*MemoryConfigUpsert)) *MemoryConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemoryConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetBackendType sets the "backend_type" field.
func (u *MemoryConfigUpsertOne) SetBackendType(v memoryconfig.BackendType) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetBackendType(v)
	})
}

// UpdateBackendType sets the "backend_type" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateBackendType() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateBackendType()
	})
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (u *MemoryConfigUpsertOne) SetShortTermEnabled(v bool) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetShortTermEnabled(v)
	})
}

// UpdateShortTermEnabled sets the "short_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateShortTermEnabled() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateShortTermEnabled()
	})
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (u *MemoryConfigUpsertOne) SetLongTermEnabled(v bool) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetLongTermEnabled(v)
	})
}

// UpdateLongTermEnabled sets the "long_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateLongTermEnabled() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateLongTermEnabled()
	})
}

// SetEntityEnabled sets the "entity_enabled" field.
func (u *MemoryConfigUpsertOne) SetEntityEnabled(v bool) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetEntityEnabled(v)
	})
}

// UpdateEntityEnabled sets the "entity_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateEntityEnabled() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateEntityEnabled()
	})
}

// SetEmbedder sets the "embedder" field.
func (u *MemoryConfigUpsertOne) SetEmbedder(v map[string]interface{}) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetEmbedder(v)
	})
}

// UpdateEmbedder sets the "embedder" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateEmbedder() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateEmbedder()
	})
}

// ClearEmbedder clears the value of the "embedder" field.
func (u *MemoryConfigUpsertOne) ClearEmbedder() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.ClearEmbedder()
	})
}

// SetDatabricks sets the "databricks" field.
func (u *MemoryConfigUpsertOne) SetDatabricks(v map[string]interface{}) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetDatabricks(v)
	})
}

// UpdateDatabricks sets the "databricks" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateDatabricks() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateDatabricks()
	})
}

// ClearDatabricks clears the value of the "databricks" field.
func (u *MemoryConfigUpsertOne) ClearDatabricks() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.ClearDatabricks()
	})
}

// SetIsActive sets the "is_active" field.
func (u *MemoryConfigUpsertOne) SetIsActive(v bool) *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MemoryConfigUpsertOne) UpdateIsActive() *MemoryConfigUpsertOne {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *MemoryConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemoryConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemoryConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MemoryConfigUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MemoryConfigUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MemoryConfigCreateBulk is the builder for creating many MemoryConfig entities in bulk.
type MemoryConfigCreateBulk struct {
	config
	err      error
	builders []*MemoryConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the MemoryConfig entities in the database.
func (_c *MemoryConfigCreateBulk) Save(ctx context.Context) ([]*MemoryConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryConfigMutation)
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
func (_c *MemoryConfigCreateBulk) SaveX(ctx context.Context) []*MemoryConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MemoryConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemoryConfigUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *MemoryConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *MemoryConfigUpsertBulk {
	_c.conflict = opts
	return &MemoryConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemoryConfigCreateBulk) OnConflictColumns(columns ...string) *MemoryConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemoryConfigUpsertBulk{
		create: _c,
	}
}

// MemoryConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of MemoryConfig nodes.
type MemoryConfigUpsertBulk struct {
	create *MemoryConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MemoryConfigUpsertBulk) UpdateNewValues() *MemoryConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(memoryconfig.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(memoryconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MemoryConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MemoryConfigUpsertBulk) Ignore() *MemoryConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemoryConfigUpsertBulk) DoNothing() *MemoryConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemoryConfigCreateBulk.OnConflict
// documentation for more info.
func (u *MemoryConfigUpsertBulk) Update(set func(*MemoryConfigUpsert)) *MemoryConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemoryConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetBackendType sets the "backend_type" field.
func (u *MemoryConfigUpsertBulk) SetBackendType(v memoryconfig.BackendType) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetBackendType(v)
	})
}

// UpdateBackendType sets the "backend_type" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateBackendType() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateBackendType()
	})
}

// SetShortTermEnabled sets the "short_term_enabled" field.
func (u *MemoryConfigUpsertBulk) SetShortTermEnabled(v bool) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetShortTermEnabled(v)
	})
}

// UpdateShortTermEnabled sets the "short_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateShortTermEnabled() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateShortTermEnabled()
	})
}

// SetLongTermEnabled sets the "long_term_enabled" field.
func (u *MemoryConfigUpsertBulk) SetLongTermEnabled(v bool) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetLongTermEnabled(v)
	})
}

// UpdateLongTermEnabled sets the "long_term_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateLongTermEnabled() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateLongTermEnabled()
	})
}

// SetEntityEnabled sets the "entity_enabled" field.
func (u *MemoryConfigUpsertBulk) SetEntityEnabled(v bool) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetEntityEnabled(v)
	})
}

// UpdateEntityEnabled sets the "entity_enabled" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateEntityEnabled() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateEntityEnabled()
	})
}

// SetEmbedder sets the "embedder" field.
func (u *MemoryConfigUpsertBulk) SetEmbedder(v map[string]interface{}) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetEmbedder(v)
	})
}

// UpdateEmbedder sets the "embedder" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateEmbedder() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateEmbedder()
	})
}

// ClearEmbedder clears the value of the "embedder" field.
func (u *MemoryConfigUpsertBulk) ClearEmbedder() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.ClearEmbedder()
	})
}

// SetDatabricks sets the "databricks" field.
func (u *MemoryConfigUpsertBulk) SetDatabricks(v map[string]interface{}) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetDatabricks(v)
	})
}

// UpdateDatabricks sets the "databricks" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateDatabricks() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateDatabricks()
	})
}

// ClearDatabricks clears the value of the "databricks" field.
func (u *MemoryConfigUpsertBulk) ClearDatabricks() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.ClearDatabricks()
	})
}

// SetIsActive sets the "is_active" field.
func (u *MemoryConfigUpsertBulk) SetIsActive(v bool) *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MemoryConfigUpsertBulk) UpdateIsActive() *MemoryConfigUpsertBulk {
	return u.Update(func(s *MemoryConfigUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *MemoryConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MemoryConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemoryConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemoryConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
