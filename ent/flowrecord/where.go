// Code generated by ent, DO NOT EDIT.

package flowrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldContainsFold(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldGroupID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldContainsFold(FieldGroupID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldContainsFold(FieldName, v))
}

// NodesIsNil applies the IsNil predicate on the "nodes" field.
func NodesIsNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIsNull(FieldNodes))
}

// NodesNotNil applies the NotNil predicate on the "nodes" field.
func NodesNotNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotNull(FieldNodes))
}

// EdgesIsNil applies the IsNil predicate on the "edges" field.
func EdgesIsNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIsNull(FieldEdges))
}

// EdgesNotNil applies the NotNil predicate on the "edges" field.
func EdgesNotNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotNull(FieldEdges))
}

// StartingPointsIsNil applies the IsNil predicate on the "starting_points" field.
func StartingPointsIsNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIsNull(FieldStartingPoints))
}

// StartingPointsNotNil applies the NotNil predicate on the "starting_points" field.
func StartingPointsNotNil() predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotNull(FieldStartingPoints))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FlowRecord {
	return predicate.FlowRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowRecord) predicate.FlowRecord {
	return predicate.FlowRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowRecord) predicate.FlowRecord {
	return predicate.FlowRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowRecord) predicate.FlowRecord {
	return predicate.FlowRecord(sql.NotPredicates(p))
}
