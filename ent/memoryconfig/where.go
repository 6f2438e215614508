// Code generated by ent, DO NOT EDIT.

package memoryconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldGroupID, v))
}

// ShortTermEnabled applies equality check predicate on the "short_term_enabled" field. It's identical to ShortTermEnabledEQ.
func ShortTermEnabled(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldShortTermEnabled, v))
}

// LongTermEnabled applies equality check predicate on the "long_term_enabled" field. It's identical to LongTermEnabledEQ.
func LongTermEnabled(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldLongTermEnabled, v))
}

// EntityEnabled applies equality check predicate on the "entity_enabled" field. It's identical to EntityEnabledEQ.
func EntityEnabled(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldEntityEnabled, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldContainsFold(FieldGroupID, v))
}

// BackendTypeEQ applies the EQ predicate on the "backend_type" field.
func BackendTypeEQ(v BackendType) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldBackendType, v))
}

// BackendTypeNEQ applies the NEQ predicate on the "backend_type" field.
func BackendTypeNEQ(v BackendType) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldBackendType, v))
}

// BackendTypeIn applies the In predicate on the "backend_type" field.
func BackendTypeIn(vs ...BackendType) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIn(FieldBackendType, vs...))
}

// BackendTypeNotIn applies the NotIn predicate on the "backend_type" field.
func BackendTypeNotIn(vs ...BackendType) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotIn(FieldBackendType, vs...))
}

// ShortTermEnabledEQ applies the EQ predicate on the "short_term_enabled" field.
func ShortTermEnabledEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldShortTermEnabled, v))
}

// ShortTermEnabledNEQ applies the NEQ predicate on the "short_term_enabled" field.
func ShortTermEnabledNEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldShortTermEnabled, v))
}

// LongTermEnabledEQ applies the EQ predicate on the "long_term_enabled" field.
func LongTermEnabledEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldLongTermEnabled, v))
}

// LongTermEnabledNEQ applies the NEQ predicate on the "long_term_enabled" field.
func LongTermEnabledNEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldLongTermEnabled, v))
}

// EntityEnabledEQ applies the EQ predicate on the "entity_enabled" field.
func EntityEnabledEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldEntityEnabled, v))
}

// EntityEnabledNEQ applies the NEQ predicate on the "entity_enabled" field.
func EntityEnabledNEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldEntityEnabled, v))
}

// EmbedderIsNil applies the IsNil predicate on the "embedder" field.
func EmbedderIsNil() predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIsNull(FieldEmbedder))
}

// EmbedderNotNil applies the NotNil predicate on the "embedder" field.
func EmbedderNotNil() predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotNull(FieldEmbedder))
}

// DatabricksIsNil applies the IsNil predicate on the "databricks" field.
func DatabricksIsNil() predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIsNull(FieldDatabricks))
}

// DatabricksNotNil applies the NotNil predicate on the "databricks" field.
func DatabricksNotNil() predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotNull(FieldDatabricks))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryConfig) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryConfig) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryConfig) predicate.MemoryConfig {
	return predicate.MemoryConfig(sql.NotPredicates(p))
}
