// Code generated by ent, DO NOT EDIT.

package queuetask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldID, id))
}

// Namespace applies equality check predicate on the "namespace" field. It's identical to NamespaceEQ.
func Namespace(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldNamespace, v))
}

// TaskGroupID applies equality check predicate on the "task_group_id" field. It's identical to TaskGroupIDEQ.
func TaskGroupID(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldTaskGroupID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldSessionID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldPrompt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldOutput, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldErrorMessage, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldAttempt, v))
}

// NamespaceEQ applies the EQ predicate on the "namespace" field.
func NamespaceEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldNamespace, v))
}

// NamespaceNEQ applies the NEQ predicate on the "namespace" field.
func NamespaceNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldNamespace, v))
}

// NamespaceIn applies the In predicate on the "namespace" field.
func NamespaceIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldNamespace, vs...))
}

// NamespaceNotIn applies the NotIn predicate on the "namespace" field.
func NamespaceNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldNamespace, vs...))
}

// NamespaceGT applies the GT predicate on the "namespace" field.
func NamespaceGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldNamespace, v))
}

// NamespaceGTE applies the GTE predicate on the "namespace" field.
func NamespaceGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldNamespace, v))
}

// NamespaceLT applies the LT predicate on the "namespace" field.
func NamespaceLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldNamespace, v))
}

// NamespaceLTE applies the LTE predicate on the "namespace" field.
func NamespaceLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldNamespace, v))
}

// NamespaceContains applies the Contains predicate on the "namespace" field.
func NamespaceContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldNamespace, v))
}

// NamespaceHasPrefix applies the HasPrefix predicate on the "namespace" field.
func NamespaceHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldNamespace, v))
}

// NamespaceHasSuffix applies the HasSuffix predicate on the "namespace" field.
func NamespaceHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldNamespace, v))
}

// NamespaceEqualFold applies the EqualFold predicate on the "namespace" field.
func NamespaceEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldNamespace, v))
}

// NamespaceContainsFold applies the ContainsFold predicate on the "namespace" field.
func NamespaceContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldNamespace, v))
}

// TaskGroupIDEQ applies the EQ predicate on the "task_group_id" field.
func TaskGroupIDEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldTaskGroupID, v))
}

// TaskGroupIDNEQ applies the NEQ predicate on the "task_group_id" field.
func TaskGroupIDNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldTaskGroupID, v))
}

// TaskGroupIDIn applies the In predicate on the "task_group_id" field.
func TaskGroupIDIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldTaskGroupID, vs...))
}

// TaskGroupIDNotIn applies the NotIn predicate on the "task_group_id" field.
func TaskGroupIDNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldTaskGroupID, vs...))
}

// TaskGroupIDGT applies the GT predicate on the "task_group_id" field.
func TaskGroupIDGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldTaskGroupID, v))
}

// TaskGroupIDGTE applies the GTE predicate on the "task_group_id" field.
func TaskGroupIDGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldTaskGroupID, v))
}

// TaskGroupIDLT applies the LT predicate on the "task_group_id" field.
func TaskGroupIDLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldTaskGroupID, v))
}

// TaskGroupIDLTE applies the LTE predicate on the "task_group_id" field.
func TaskGroupIDLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldTaskGroupID, v))
}

// TaskGroupIDContains applies the Contains predicate on the "task_group_id" field.
func TaskGroupIDContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldTaskGroupID, v))
}

// TaskGroupIDHasPrefix applies the HasPrefix predicate on the "task_group_id" field.
func TaskGroupIDHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldTaskGroupID, v))
}

// TaskGroupIDHasSuffix applies the HasSuffix predicate on the "task_group_id" field.
func TaskGroupIDHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldTaskGroupID, v))
}

// TaskGroupIDEqualFold applies the EqualFold predicate on the "task_group_id" field.
func TaskGroupIDEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldTaskGroupID, v))
}

// TaskGroupIDContainsFold applies the ContainsFold predicate on the "task_group_id" field.
func TaskGroupIDContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldTaskGroupID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldStatus, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldPrompt, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v TaskType) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v TaskType) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...TaskType) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...TaskType) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldTaskType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldOutput, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ClarificationIsNil applies the IsNil predicate on the "clarification" field.
func ClarificationIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldClarification))
}

// ClarificationNotNil applies the NotNil predicate on the "clarification" field.
func ClarificationNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldClarification))
}

// EventsIsNil applies the IsNil predicate on the "events" field.
func EventsIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldEvents))
}

// EventsNotNil applies the NotNil predicate on the "events" field.
func EventsNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldEvents))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldAttempt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.NotPredicates(p))
}
