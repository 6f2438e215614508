// Code generated by ent, DO NOT EDIT.

package execution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kasal-project/kasal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldJobID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldGroupID, v))
}

// GroupEmail applies equality check predicate on the "group_email" field. It's identical to GroupEmailEQ.
func GroupEmail(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldGroupEmail, v))
}

// IsStopping applies equality check predicate on the "is_stopping" field. It's identical to IsStoppingEQ.
func IsStopping(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldIsStopping, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStopReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldError, v))
}

// RunName applies equality check predicate on the "run_name" field. It's identical to RunNameEQ.
func RunName(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRunName, v))
}

// CreatedByEmail applies equality check predicate on the "created_by_email" field. It's identical to CreatedByEmailEQ.
func CreatedByEmail(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedByEmail, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldPodID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldJobID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldGroupID, v))
}

// GroupEmailEQ applies the EQ predicate on the "group_email" field.
func GroupEmailEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldGroupEmail, v))
}

// GroupEmailNEQ applies the NEQ predicate on the "group_email" field.
func GroupEmailNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldGroupEmail, v))
}

// GroupEmailIn applies the In predicate on the "group_email" field.
func GroupEmailIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldGroupEmail, vs...))
}

// GroupEmailNotIn applies the NotIn predicate on the "group_email" field.
func GroupEmailNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldGroupEmail, vs...))
}

// GroupEmailGT applies the GT predicate on the "group_email" field.
func GroupEmailGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldGroupEmail, v))
}

// GroupEmailGTE applies the GTE predicate on the "group_email" field.
func GroupEmailGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldGroupEmail, v))
}

// GroupEmailLT applies the LT predicate on the "group_email" field.
func GroupEmailLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldGroupEmail, v))
}

// GroupEmailLTE applies the LTE predicate on the "group_email" field.
func GroupEmailLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldGroupEmail, v))
}

// GroupEmailContains applies the Contains predicate on the "group_email" field.
func GroupEmailContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldGroupEmail, v))
}

// GroupEmailHasPrefix applies the HasPrefix predicate on the "group_email" field.
func GroupEmailHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldGroupEmail, v))
}

// GroupEmailHasSuffix applies the HasSuffix predicate on the "group_email" field.
func GroupEmailHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldGroupEmail, v))
}

// GroupEmailIsNil applies the IsNil predicate on the "group_email" field.
func GroupEmailIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldGroupEmail))
}

// GroupEmailNotNil applies the NotNil predicate on the "group_email" field.
func GroupEmailNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldGroupEmail))
}

// GroupEmailEqualFold applies the EqualFold predicate on the "group_email" field.
func GroupEmailEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldGroupEmail, v))
}

// GroupEmailContainsFold applies the ContainsFold predicate on the "group_email" field.
func GroupEmailContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldGroupEmail, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatus, vs...))
}

// IsStoppingEQ applies the EQ predicate on the "is_stopping" field.
func IsStoppingEQ(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldIsStopping, v))
}

// IsStoppingNEQ applies the NEQ predicate on the "is_stopping" field.
func IsStoppingNEQ(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldIsStopping, v))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonIsNil applies the IsNil predicate on the "stop_reason" field.
func StopReasonIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldStopReason))
}

// StopReasonNotNil applies the NotNil predicate on the "stop_reason" field.
func StopReasonNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldStopReason))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldStopReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCompletedAt))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldInputs))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldResult))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldError, v))
}

// PartialResultsIsNil applies the IsNil predicate on the "partial_results" field.
func PartialResultsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldPartialResults))
}

// PartialResultsNotNil applies the NotNil predicate on the "partial_results" field.
func PartialResultsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldPartialResults))
}

// RunNameEQ applies the EQ predicate on the "run_name" field.
func RunNameEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRunName, v))
}

// RunNameNEQ applies the NEQ predicate on the "run_name" field.
func RunNameNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRunName, v))
}

// RunNameIn applies the In predicate on the "run_name" field.
func RunNameIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRunName, vs...))
}

// RunNameNotIn applies the NotIn predicate on the "run_name" field.
func RunNameNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRunName, vs...))
}

// RunNameGT applies the GT predicate on the "run_name" field.
func RunNameGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRunName, v))
}

// RunNameGTE applies the GTE predicate on the "run_name" field.
func RunNameGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRunName, v))
}

// RunNameLT applies the LT predicate on the "run_name" field.
func RunNameLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRunName, v))
}

// RunNameLTE applies the LTE predicate on the "run_name" field.
func RunNameLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRunName, v))
}

// RunNameContains applies the Contains predicate on the "run_name" field.
func RunNameContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldRunName, v))
}

// RunNameHasPrefix applies the HasPrefix predicate on the "run_name" field.
func RunNameHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldRunName, v))
}

// RunNameHasSuffix applies the HasSuffix predicate on the "run_name" field.
func RunNameHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldRunName, v))
}

// RunNameIsNil applies the IsNil predicate on the "run_name" field.
func RunNameIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRunName))
}

// RunNameNotNil applies the NotNil predicate on the "run_name" field.
func RunNameNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRunName))
}

// RunNameEqualFold applies the EqualFold predicate on the "run_name" field.
func RunNameEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldRunName, v))
}

// RunNameContainsFold applies the ContainsFold predicate on the "run_name" field.
func RunNameContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldRunName, v))
}

// CreatedByEmailEQ applies the EQ predicate on the "created_by_email" field.
func CreatedByEmailEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedByEmail, v))
}

// CreatedByEmailNEQ applies the NEQ predicate on the "created_by_email" field.
func CreatedByEmailNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCreatedByEmail, v))
}

// CreatedByEmailIn applies the In predicate on the "created_by_email" field.
func CreatedByEmailIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCreatedByEmail, vs...))
}

// CreatedByEmailNotIn applies the NotIn predicate on the "created_by_email" field.
func CreatedByEmailNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCreatedByEmail, vs...))
}

// CreatedByEmailGT applies the GT predicate on the "created_by_email" field.
func CreatedByEmailGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCreatedByEmail, v))
}

// CreatedByEmailGTE applies the GTE predicate on the "created_by_email" field.
func CreatedByEmailGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCreatedByEmail, v))
}

// CreatedByEmailLT applies the LT predicate on the "created_by_email" field.
func CreatedByEmailLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCreatedByEmail, v))
}

// CreatedByEmailLTE applies the LTE predicate on the "created_by_email" field.
func CreatedByEmailLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCreatedByEmail, v))
}

// CreatedByEmailContains applies the Contains predicate on the "created_by_email" field.
func CreatedByEmailContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldCreatedByEmail, v))
}

// CreatedByEmailHasPrefix applies the HasPrefix predicate on the "created_by_email" field.
func CreatedByEmailHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldCreatedByEmail, v))
}

// CreatedByEmailHasSuffix applies the HasSuffix predicate on the "created_by_email" field.
func CreatedByEmailHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldCreatedByEmail, v))
}

// CreatedByEmailIsNil applies the IsNil predicate on the "created_by_email" field.
func CreatedByEmailIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCreatedByEmail))
}

// CreatedByEmailNotNil applies the NotNil predicate on the "created_by_email" field.
func CreatedByEmailNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCreatedByEmail))
}

// CreatedByEmailEqualFold applies the EqualFold predicate on the "created_by_email" field.
func CreatedByEmailEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldCreatedByEmail, v))
}

// CreatedByEmailContainsFold applies the ContainsFold predicate on the "created_by_email" field.
func CreatedByEmailContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldCreatedByEmail, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldPodID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.NotPredicates(p))
}
