// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldName, v))
}

// EmailDomain applies equality check predicate on the "email_domain" field. It's identical to EmailDomainEQ.
func EmailDomain(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldEmailDomain, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldName, v))
}

// EmailDomainEQ applies the EQ predicate on the "email_domain" field.
func EmailDomainEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldEmailDomain, v))
}

// EmailDomainNEQ applies the NEQ predicate on the "email_domain" field.
func EmailDomainNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldEmailDomain, v))
}

// EmailDomainIn applies the In predicate on the "email_domain" field.
func EmailDomainIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldEmailDomain, vs...))
}

// EmailDomainNotIn applies the NotIn predicate on the "email_domain" field.
func EmailDomainNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldEmailDomain, vs...))
}

// EmailDomainGT applies the GT predicate on the "email_domain" field.
func EmailDomainGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldEmailDomain, v))
}

// EmailDomainGTE applies the GTE predicate on the "email_domain" field.
func EmailDomainGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldEmailDomain, v))
}

// EmailDomainLT applies the LT predicate on the "email_domain" field.
func EmailDomainLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldEmailDomain, v))
}

// EmailDomainLTE applies the LTE predicate on the "email_domain" field.
func EmailDomainLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldEmailDomain, v))
}

// EmailDomainContains applies the Contains predicate on the "email_domain" field.
func EmailDomainContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldEmailDomain, v))
}

// EmailDomainHasPrefix applies the HasPrefix predicate on the "email_domain" field.
func EmailDomainHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldEmailDomain, v))
}

// EmailDomainHasSuffix applies the HasSuffix predicate on the "email_domain" field.
func EmailDomainHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldEmailDomain, v))
}

// EmailDomainIsNil applies the IsNil predicate on the "email_domain" field.
func EmailDomainIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldEmailDomain))
}

// EmailDomainNotNil applies the NotNil predicate on the "email_domain" field.
func EmailDomainNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldEmailDomain))
}

// EmailDomainEqualFold applies the EqualFold predicate on the "email_domain" field.
func EmailDomainEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldEmailDomain, v))
}

// EmailDomainContainsFold applies the ContainsFold predicate on the "email_domain" field.
func EmailDomainContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldEmailDomain, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMemberships applies the HasEdge predicate on the "memberships" edge.
func HasMemberships() predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipsWith applies the HasEdge predicate on the "memberships" edge with a given conditions (other predicates).
func HasMembershipsWith(preds ...predicate.GroupMembership) predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := newMembershipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Group) predicate.Group {
	return predicate.Group(sql.NotPredicates(p))
}
