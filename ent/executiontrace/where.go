// Code generated by ent, DO NOT EDIT.

package executiontrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldJobID, v))
}

// EventSource applies equality check predicate on the "event_source" field. It's identical to EventSourceEQ.
func EventSource(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventSource, v))
}

// EventContext applies equality check predicate on the "event_context" field. It's identical to EventContextEQ.
func EventContext(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventContext, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventType, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldOutput, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldGroupID, v))
}

// GroupEmail applies equality check predicate on the "group_email" field. It's identical to GroupEmailEQ.
func GroupEmail(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldGroupEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldJobID, v))
}

// EventSourceEQ applies the EQ predicate on the "event_source" field.
func EventSourceEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventSource, v))
}

// EventSourceNEQ applies the NEQ predicate on the "event_source" field.
func EventSourceNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldEventSource, v))
}

// EventSourceIn applies the In predicate on the "event_source" field.
func EventSourceIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldEventSource, vs...))
}

// EventSourceNotIn applies the NotIn predicate on the "event_source" field.
func EventSourceNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldEventSource, vs...))
}

// EventSourceGT applies the GT predicate on the "event_source" field.
func EventSourceGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldEventSource, v))
}

// EventSourceGTE applies the GTE predicate on the "event_source" field.
func EventSourceGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldEventSource, v))
}

// EventSourceLT applies the LT predicate on the "event_source" field.
func EventSourceLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldEventSource, v))
}

// EventSourceLTE applies the LTE predicate on the "event_source" field.
func EventSourceLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldEventSource, v))
}

// EventSourceContains applies the Contains predicate on the "event_source" field.
func EventSourceContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldEventSource, v))
}

// EventSourceHasPrefix applies the HasPrefix predicate on the "event_source" field.
func EventSourceHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldEventSource, v))
}

// EventSourceHasSuffix applies the HasSuffix predicate on the "event_source" field.
func EventSourceHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldEventSource, v))
}

// EventSourceEqualFold applies the EqualFold predicate on the "event_source" field.
func EventSourceEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldEventSource, v))
}

// EventSourceContainsFold applies the ContainsFold predicate on the "event_source" field.
func EventSourceContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldEventSource, v))
}

// EventContextEQ applies the EQ predicate on the "event_context" field.
func EventContextEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventContext, v))
}

// EventContextNEQ applies the NEQ predicate on the "event_context" field.
func EventContextNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldEventContext, v))
}

// EventContextIn applies the In predicate on the "event_context" field.
func EventContextIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldEventContext, vs...))
}

// EventContextNotIn applies the NotIn predicate on the "event_context" field.
func EventContextNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldEventContext, vs...))
}

// EventContextGT applies the GT predicate on the "event_context" field.
func EventContextGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldEventContext, v))
}

// EventContextGTE applies the GTE predicate on the "event_context" field.
func EventContextGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldEventContext, v))
}

// EventContextLT applies the LT predicate on the "event_context" field.
func EventContextLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldEventContext, v))
}

// EventContextLTE applies the LTE predicate on the "event_context" field.
func EventContextLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldEventContext, v))
}

// EventContextContains applies the Contains predicate on the "event_context" field.
func EventContextContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldEventContext, v))
}

// EventContextHasPrefix applies the HasPrefix predicate on the "event_context" field.
func EventContextHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldEventContext, v))
}

// EventContextHasSuffix applies the HasSuffix predicate on the "event_context" field.
func EventContextHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldEventContext, v))
}

// EventContextIsNil applies the IsNil predicate on the "event_context" field.
func EventContextIsNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIsNull(FieldEventContext))
}

// EventContextNotNil applies the NotNil predicate on the "event_context" field.
func EventContextNotNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotNull(FieldEventContext))
}

// EventContextEqualFold applies the EqualFold predicate on the "event_context" field.
func EventContextEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldEventContext, v))
}

// EventContextContainsFold applies the ContainsFold predicate on the "event_context" field.
func EventContextContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldEventContext, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldEventType, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldOutput, v))
}

// TraceMetadataIsNil applies the IsNil predicate on the "trace_metadata" field.
func TraceMetadataIsNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIsNull(FieldTraceMetadata))
}

// TraceMetadataNotNil applies the NotNil predicate on the "trace_metadata" field.
func TraceMetadataNotNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotNull(FieldTraceMetadata))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldGroupID, v))
}

// GroupEmailEQ applies the EQ predicate on the "group_email" field.
func GroupEmailEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldGroupEmail, v))
}

// GroupEmailNEQ applies the NEQ predicate on the "group_email" field.
func GroupEmailNEQ(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldGroupEmail, v))
}

// GroupEmailIn applies the In predicate on the "group_email" field.
func GroupEmailIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldGroupEmail, vs...))
}

// GroupEmailNotIn applies the NotIn predicate on the "group_email" field.
func GroupEmailNotIn(vs ...string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldGroupEmail, vs...))
}

// GroupEmailGT applies the GT predicate on the "group_email" field.
func GroupEmailGT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldGroupEmail, v))
}

// GroupEmailGTE applies the GTE predicate on the "group_email" field.
func GroupEmailGTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldGroupEmail, v))
}

// GroupEmailLT applies the LT predicate on the "group_email" field.
func GroupEmailLT(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldGroupEmail, v))
}

// GroupEmailLTE applies the LTE predicate on the "group_email" field.
func GroupEmailLTE(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldGroupEmail, v))
}

// GroupEmailContains applies the Contains predicate on the "group_email" field.
func GroupEmailContains(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContains(FieldGroupEmail, v))
}

// GroupEmailHasPrefix applies the HasPrefix predicate on the "group_email" field.
func GroupEmailHasPrefix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasPrefix(FieldGroupEmail, v))
}

// GroupEmailHasSuffix applies the HasSuffix predicate on the "group_email" field.
func GroupEmailHasSuffix(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldHasSuffix(FieldGroupEmail, v))
}

// GroupEmailIsNil applies the IsNil predicate on the "group_email" field.
func GroupEmailIsNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIsNull(FieldGroupEmail))
}

// GroupEmailNotNil applies the NotNil predicate on the "group_email" field.
func GroupEmailNotNil() predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotNull(FieldGroupEmail))
}

// GroupEmailEqualFold applies the EqualFold predicate on the "group_email" field.
func GroupEmailEqualFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEqualFold(FieldGroupEmail, v))
}

// GroupEmailContainsFold applies the ContainsFold predicate on the "group_email" field.
func GroupEmailContainsFold(v string) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldContainsFold(FieldGroupEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionTrace) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionTrace) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionTrace) predicate.ExecutionTrace {
	return predicate.ExecutionTrace(sql.NotPredicates(p))
}
