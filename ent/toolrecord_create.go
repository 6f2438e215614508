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
	"github.com/kasal-project/kasal/ent/toolrecord"
)

// ToolRecordCreate is the builder for creating a ToolRecord entity.
type ToolRecordCreate struct {
	config
	mutation *ToolRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ToolRecordCreate) SetName(v string) *ToolRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ToolRecordCreate) SetGroupID(v string) *ToolRecordCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ToolRecordCreate) SetKind(v string) *ToolRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ToolRecordCreate) SetNillableKind(v *string) *ToolRecordCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *ToolRecordCreate) SetConfig(v map[string]interface{}) *ToolRecordCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ToolRecordCreate) SetEnabled(v bool) *ToolRecordCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ToolRecordCreate) SetNillableEnabled(v *bool) *ToolRecordCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolRecordCreate) SetCreatedAt(v time.Time) *ToolRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolRecordCreate) SetNillableCreatedAt(v *time.Time) *ToolRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ToolRecordMutation object of the builder.
func (_c *ToolRecordCreate) Mutation() *ToolRecordMutation {
	return _c.mutation
}

// Save creates the ToolRecord in the database.
func (_c *ToolRecordCreate) Save(ctx context.Context) (*ToolRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolRecordCreate) SaveX(ctx context.Context) *ToolRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolRecordCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := toolrecord.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := toolrecord.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolRecordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ToolRecord.name"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "ToolRecord.group_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ToolRecord.kind"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ToolRecord.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolRecord.created_at"`)}
	}
	return nil
}

func (_c *ToolRecordCreate) sqlSave(ctx context.Context) (*ToolRecord, error) {
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

func (_c *ToolRecordCreate) createSpec() (*ToolRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolrecord.Table, sqlgraph.NewFieldSpec(toolrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(toolrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(toolrecord.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(toolrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(toolrecord.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(toolrecord.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolRecord.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolRecordUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolRecordCreate) OnConflict(opts ...sql.ConflictOption) *ToolRecordUpsertOne {
	_c.conflict = opts
	return &ToolRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolRecordCreate) OnConflictColumns(columns ...string) *ToolRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolRecordUpsertOne{
		create: _c,
	}
}

type (
	// ToolRecordUpsertOne is the builder for "upsert"-ing
	//  one ToolRecord node.
	ToolRecordUpsertOne struct {
		create *ToolRecordCreate
	}

	// ToolRecordUpsert is the "OnConflict" setter.
	ToolRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ToolRecordUpsert) SetName(v string) *ToolRecordUpsert {
	u.Set(toolrecord.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolRecordUpsert) UpdateName() *ToolRecordUpsert {
	u.SetExcluded(toolrecord.FieldName)
	return u
}

// SetKind sets the "kind" field.
func (u *ToolRecordUpsert) SetKind(v string) *ToolRecordUpsert {
	u.Set(toolrecord.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ToolRecordUpsert) UpdateKind() *ToolRecordUpsert {
	u.SetExcluded(toolrecord.FieldKind)
	return u
}

// SetConfig sets the "config" field.
func (u *ToolRecordUpsert) SetConfig(v map[string]interface{}) *ToolRecordUpsert {
	u.Set(toolrecord.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolRecordUpsert) UpdateConfig() *ToolRecordUpsert {
	u.SetExcluded(toolrecord.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *ToolRecordUpsert) ClearConfig() *ToolRecordUpsert {
	u.SetNull(toolrecord.FieldConfig)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ToolRecordUpsert) SetEnabled(v bool) *ToolRecordUpsert {
	u.Set(toolrecord.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ToolRecordUpsert) UpdateEnabled() *ToolRecordUpsert {
	u.SetExcluded(toolrecord.FieldEnabled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ToolRecordUpsertOne) UpdateNewValues() *ToolRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(toolrecord.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolRecordUpsertOne) Ignore() *ToolRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolRecordUpsertOne) DoNothing() *ToolRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolRecordCreate.OnConflict
// documentation for more info.
func (u *ToolRecordUpsertOne) Update(set func(*ToolRecordUpsert)) *ToolRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ToolRecordUpsertOne) SetName(v string) *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolRecordUpsertOne) UpdateName() *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateName()
	})
}

// SetKind sets the "kind" field.
func (u *ToolRecordUpsertOne) SetKind(v string) *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ToolRecordUpsertOne) UpdateKind() *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateKind()
	})
}

// SetConfig sets the "config" field.
func (u *ToolRecordUpsertOne) SetConfig(v map[string]interface{}) *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolRecordUpsertOne) UpdateConfig() *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *ToolRecordUpsertOne) ClearConfig() *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.ClearConfig()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ToolRecordUpsertOne) SetEnabled(v bool) *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ToolRecordUpsertOne) UpdateEnabled() *ToolRecordUpsertOne {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *ToolRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolRecordCreateBulk is the builder for creating many ToolRecord entities in bulk.
type ToolRecordCreateBulk struct {
	config
	err      error
	builders []*ToolRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolRecord entities in the database.
func (_c *ToolRecordCreateBulk) Save(ctx context.Context) ([]*ToolRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolRecordMutation)
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
func (_c *ToolRecordCreateBulk) SaveX(ctx context.Context) []*ToolRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolRecordUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolRecordUpsertBulk {
	_c.conflict = opts
	return &ToolRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolRecordCreateBulk) OnConflictColumns(columns ...string) *ToolRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolRecordUpsertBulk{
		create: _c,
	}
}

// ToolRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolRecord nodes.
type ToolRecordUpsertBulk struct {
	create *ToolRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ToolRecordUpsertBulk) UpdateNewValues() *ToolRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(toolrecord.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolRecordUpsertBulk) Ignore() *ToolRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolRecordUpsertBulk) DoNothing() *ToolRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ToolRecordUpsertBulk) Update(set func(*ToolRecordUpsert)) *ToolRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ToolRecordUpsertBulk) SetName(v string) *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolRecordUpsertBulk) UpdateName() *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateName()
	})
}

// SetKind sets the "kind" field.
func (u *ToolRecordUpsertBulk) SetKind(v string) *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ToolRecordUpsertBulk) UpdateKind() *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateKind()
	})
}

// SetConfig sets the "config" field.
func (u *ToolRecordUpsertBulk) SetConfig(v map[string]interface{}) *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolRecordUpsertBulk) UpdateConfig() *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *ToolRecordUpsertBulk) ClearConfig() *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.ClearConfig()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ToolRecordUpsertBulk) SetEnabled(v bool) *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ToolRecordUpsertBulk) UpdateEnabled() *ToolRecordUpsertBulk {
	return u.Update(func(s *ToolRecordUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *ToolRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
