// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kasal-project/kasal/ent/flowrecord"
)

// FlowRecordCreate is the builder for creating a FlowRecord entity.
type FlowRecordCreate struct {
	config
	mutation *FlowRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *FlowRecordCreate) SetGroupID(v string) *FlowRecordCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FlowRecordCreate) SetName(v string) *FlowRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNodes sets the "nodes" field.
func (_c *FlowRecordCreate) SetNodes(v []map[string]interface{}) *FlowRecordCreate {
	_c.mutation.SetNodes(v)
	return _c
}

// SetEdges sets the "edges" field.
func (_c *FlowRecordCreate) SetEdges(v []map[string]interface{}) *FlowRecordCreate {
	_c.mutation.SetEdges(v)
	return _c
}

// SetStartingPoints sets the "starting_points" field.
func (_c *FlowRecordCreate) SetStartingPoints(v []string) *FlowRecordCreate {
	_c.mutation.SetStartingPoints(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlowRecordCreate) SetCreatedAt(v time.Time) *FlowRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlowRecordCreate) SetNillableCreatedAt(v *time.Time) *FlowRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlowRecordCreate) SetID(v string) *FlowRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FlowRecordMutation object of the builder.
func (_c *FlowRecordCreate) Mutation() *FlowRecordMutation {
	return _c.mutation
}

// Save creates the FlowRecord in the database.
func (_c *FlowRecordCreate) Save(ctx context.Context) (*FlowRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowRecordCreate) SaveX(ctx context.Context) *FlowRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flowrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowRecordCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "FlowRecord.group_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FlowRecord.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FlowRecord.created_at"`)}
	}
	return nil
}

func (_c *FlowRecordCreate) sqlSave(ctx context.Context) (*FlowRecord, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FlowRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowRecordCreate) createSpec() (*FlowRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowrecord.Table, sqlgraph.NewFieldSpec(flowrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(flowrecord.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(flowrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Nodes(); ok {
		_spec.SetField(flowrecord.FieldNodes, field.TypeJSON, value)
		_node.Nodes = value
	}
	if value, ok := _c.mutation.Edges(); ok {
		_spec.SetField(flowrecord.FieldEdges, field.TypeJSON, value)
		_node.Edges = value
	}
	if value, ok := _c.mutation.StartingPoints(); ok {
		_spec.SetField(flowrecord.FieldStartingPoints, field.TypeJSON, value)
		_node.StartingPoints = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flowrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlowRecord.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowRecordUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowRecordCreate) OnConflict(opts ...sql.ConflictOption) *FlowRecordUpsertOne {
	_c.conflict = opts
	return &FlowRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowRecordCreate) OnConflictColumns(columns ...string) *FlowRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowRecordUpsertOne{
		create: _c,
	}
}

type (
	// FlowRecordUpsertOne is the builder for "upsert"-ing
	//  one FlowRecord node.
	FlowRecordUpsertOne struct {
		create *FlowRecordCreate
	}

	// FlowRecordUpsert is the "OnConflict" setter.
	FlowRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *FlowRecordUpsert) SetName(v string) *FlowRecordUpsert {
	u.Set(flowrecord.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowRecordUpsert) UpdateName() *FlowRecordUpsert {
	u.SetExcluded(flowrecord.FieldName)
	return u
}

// SetNodes sets the "nodes" field.
func (u *FlowRecordUpsert) SetNodes(v []map[string]interface{}) *FlowRecordUpsert {
	u.Set(flowrecord.FieldNodes, v)
	return u
}

// UpdateNodes sets the "nodes" field to the value that was provided on create.
func (u *FlowRecordUpsert) UpdateNodes() *FlowRecordUpsert {
	u.SetExcluded(flowrecord.FieldNodes)
	return u
}

// ClearNodes clears the value of the "nodes" field.
func (u *FlowRecordUpsert) ClearNodes() *FlowRecordUpsert {
	u.SetNull(flowrecord.FieldNodes)
	return u
}

// SetEdges sets the "edges" field.
func (u *FlowRecordUpsert) SetEdges(v []map[string]interface{}) *FlowRecordUpsert {
	u.Set(flowrecord.FieldEdges, v)
	return u
}

// UpdateEdges sets the "edges" field to the value that was provided on create.
func (u *FlowRecordUpsert) UpdateEdges() *FlowRecordUpsert {
	u.SetExcluded(flowrecord.FieldEdges)
	return u
}

// ClearEdges clears the value of the "edges" field.
func (u *FlowRecordUpsert) ClearEdges() *FlowRecordUpsert {
	u.SetNull(flowrecord.FieldEdges)
	return u
}

// SetStartingPoints sets the "starting_points" field.
func (u *FlowRecordUpsert) SetStartingPoints(v []string) *FlowRecordUpsert {
	u.Set(flowrecord.FieldStartingPoints, v)
	return u
}

// UpdateStartingPoints sets the "starting_points" field to the value that was provided on create.
func (u *FlowRecordUpsert) UpdateStartingPoints() *FlowRecordUpsert {
	u.SetExcluded(flowrecord.FieldStartingPoints)
	return u
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (u *FlowRecordUpsert) ClearStartingPoints() *FlowRecordUpsert {
	u.SetNull(flowrecord.FieldStartingPoints)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flowrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowRecordUpsertOne) UpdateNewValues() *FlowRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(flowrecord.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(flowrecord.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(flowrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlowRecordUpsertOne) Ignore() *FlowRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowRecordUpsertOne) DoNothing() *FlowRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowRecordCreate.OnConflict
// documentation for more info.
func (u *FlowRecordUpsertOne) Update(set func(*FlowRecordUpsert)) *FlowRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *FlowRecordUpsertOne) SetName(v string) *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowRecordUpsertOne) UpdateName() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateName()
	})
}

// SetNodes sets the "nodes" field.
func (u *FlowRecordUpsertOne) SetNodes(v []map[string]interface{}) *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetNodes(v)
	})
}

// UpdateNodes sets the "nodes" field to the value that was provided on create.
func (u *FlowRecordUpsertOne) UpdateNodes() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateNodes()
	})
}

// ClearNodes clears the value of the "nodes" field.
func (u *FlowRecordUpsertOne) ClearNodes() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearNodes()
	})
}

// SetEdges sets the "edges" field.
func (u *FlowRecordUpsertOne) SetEdges(v []map[string]interface{}) *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetEdges(v)
	})
}

// UpdateEdges sets the "edges" field to the value that was provided on create.
func (u *FlowRecordUpsertOne) UpdateEdges() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateEdges()
	})
}

// ClearEdges clears the value of the "edges" field.
func (u *FlowRecordUpsertOne) ClearEdges() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearEdges()
	})
}

// SetStartingPoints sets the "starting_points" field.
func (u *FlowRecordUpsertOne) SetStartingPoints(v []string) *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetStartingPoints(v)
	})
}

// UpdateStartingPoints sets the "starting_points" field to the value that was provided on create.
func (u *FlowRecordUpsertOne) UpdateStartingPoints() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateStartingPoints()
	})
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (u *FlowRecordUpsertOne) ClearStartingPoints() *FlowRecordUpsertOne {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearStartingPoints()
	})
}

// Exec executes the query.
func (u *FlowRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlowRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlowRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FlowRecordUpsertOne.ID is not supported by MySQL driver. Use FlowRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlowRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlowRecordCreateBulk is the builder for creating many FlowRecord entities in bulk.
type FlowRecordCreateBulk struct {
	config
	err      error
	builders []*FlowRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the FlowRecord entities in the database.
func (_c *FlowRecordCreateBulk) Save(ctx context.Context) ([]*FlowRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowRecordMutation)
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
func (_c *FlowRecordCreateBulk) SaveX(ctx context.Context) []*FlowRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlowRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlowRecordUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlowRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlowRecordUpsertBulk {
	_c.conflict = opts
	return &FlowRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlowRecordCreateBulk) OnConflictColumns(columns ...string) *FlowRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlowRecordUpsertBulk{
		create: _c,
	}
}

// FlowRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of FlowRecord nodes.
type FlowRecordUpsertBulk struct {
	create *FlowRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(flowrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FlowRecordUpsertBulk) UpdateNewValues() *FlowRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(flowrecord.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(flowrecord.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(flowrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlowRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlowRecordUpsertBulk) Ignore() *FlowRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlowRecordUpsertBulk) DoNothing() *FlowRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlowRecordCreateBulk.OnConflict
// documentation for more info.
func (u *FlowRecordUpsertBulk) Update(set func(*FlowRecordUpsert)) *FlowRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlowRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *FlowRecordUpsertBulk) SetName(v string) *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FlowRecordUpsertBulk) UpdateName() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateName()
	})
}

// SetNodes sets the "nodes" field.
func (u *FlowRecordUpsertBulk) SetNodes(v []map[string]interface{}) *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetNodes(v)
	})
}

// UpdateNodes sets the "nodes" field to the value that was provided on create.
func (u *FlowRecordUpsertBulk) UpdateNodes() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateNodes()
	})
}

// ClearNodes clears the value of the "nodes" field.
func (u *FlowRecordUpsertBulk) ClearNodes() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearNodes()
	})
}

// SetEdges sets the "edges" field.
func (u *FlowRecordUpsertBulk) SetEdges(v []map[string]interface{}) *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetEdges(v)
	})
}

// UpdateEdges sets the "edges" field to the value that was provided on create.
func (u *FlowRecordUpsertBulk) UpdateEdges() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateEdges()
	})
}

// ClearEdges clears the value of the "edges" field.
func (u *FlowRecordUpsertBulk) ClearEdges() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearEdges()
	})
}

// SetStartingPoints sets the "starting_points" field.
func (u *FlowRecordUpsertBulk) SetStartingPoints(v []string) *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.SetStartingPoints(v)
	})
}

// UpdateStartingPoints sets the "starting_points" field to the value that was provided on create.
func (u *FlowRecordUpsertBulk) UpdateStartingPoints() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.UpdateStartingPoints()
	})
}

// ClearStartingPoints clears the value of the "starting_points" field.
func (u *FlowRecordUpsertBulk) ClearStartingPoints() *FlowRecordUpsertBulk {
	return u.Update(func(s *FlowRecordUpsert) {
		s.ClearStartingPoints()
	})
}

// Exec executes the query.
func (u *FlowRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FlowRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlowRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlowRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
