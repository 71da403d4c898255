// Code generated by ent, DO NOT EDIT.

package llmfailure

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldProvider, v))
}

// Component applies equality check predicate on the "component" field. It's identical to ComponentEQ.
func Component(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldComponent, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldTrigger, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldCorrelationID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldAttempt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorName applies equality check predicate on the "error_name" field. It's identical to ErrorNameEQ.
func ErrorName(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldErrorName, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldErrorMessage, v))
}

// RequestSnapshot applies equality check predicate on the "request_snapshot" field. It's identical to RequestSnapshotEQ.
func RequestSnapshot(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldRequestSnapshot, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldCreatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldProvider, v))
}

// ComponentEQ applies the EQ predicate on the "component" field.
func ComponentEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldComponent, v))
}

// ComponentNEQ applies the NEQ predicate on the "component" field.
func ComponentNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldComponent, v))
}

// ComponentIn applies the In predicate on the "component" field.
func ComponentIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldComponent, vs...))
}

// ComponentNotIn applies the NotIn predicate on the "component" field.
func ComponentNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldComponent, vs...))
}

// ComponentGT applies the GT predicate on the "component" field.
func ComponentGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldComponent, v))
}

// ComponentGTE applies the GTE predicate on the "component" field.
func ComponentGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldComponent, v))
}

// ComponentLT applies the LT predicate on the "component" field.
func ComponentLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldComponent, v))
}

// ComponentLTE applies the LTE predicate on the "component" field.
func ComponentLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldComponent, v))
}

// ComponentContains applies the Contains predicate on the "component" field.
func ComponentContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldComponent, v))
}

// ComponentHasPrefix applies the HasPrefix predicate on the "component" field.
func ComponentHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldComponent, v))
}

// ComponentHasSuffix applies the HasSuffix predicate on the "component" field.
func ComponentHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldComponent, v))
}

// ComponentEqualFold applies the EqualFold predicate on the "component" field.
func ComponentEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldComponent, v))
}

// ComponentContainsFold applies the ContainsFold predicate on the "component" field.
func ComponentContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldComponent, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldTrigger, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldCorrelationID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldAttempt, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorNameEQ applies the EQ predicate on the "error_name" field.
func ErrorNameEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldErrorName, v))
}

// ErrorNameNEQ applies the NEQ predicate on the "error_name" field.
func ErrorNameNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldErrorName, v))
}

// ErrorNameIn applies the In predicate on the "error_name" field.
func ErrorNameIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldErrorName, vs...))
}

// ErrorNameNotIn applies the NotIn predicate on the "error_name" field.
func ErrorNameNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldErrorName, vs...))
}

// ErrorNameGT applies the GT predicate on the "error_name" field.
func ErrorNameGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldErrorName, v))
}

// ErrorNameGTE applies the GTE predicate on the "error_name" field.
func ErrorNameGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldErrorName, v))
}

// ErrorNameLT applies the LT predicate on the "error_name" field.
func ErrorNameLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldErrorName, v))
}

// ErrorNameLTE applies the LTE predicate on the "error_name" field.
func ErrorNameLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldErrorName, v))
}

// ErrorNameContains applies the Contains predicate on the "error_name" field.
func ErrorNameContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldErrorName, v))
}

// ErrorNameHasPrefix applies the HasPrefix predicate on the "error_name" field.
func ErrorNameHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldErrorName, v))
}

// ErrorNameHasSuffix applies the HasSuffix predicate on the "error_name" field.
func ErrorNameHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldErrorName, v))
}

// ErrorNameEqualFold applies the EqualFold predicate on the "error_name" field.
func ErrorNameEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldErrorName, v))
}

// ErrorNameContainsFold applies the ContainsFold predicate on the "error_name" field.
func ErrorNameContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldErrorName, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RequestSnapshotEQ applies the EQ predicate on the "request_snapshot" field.
func RequestSnapshotEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldRequestSnapshot, v))
}

// RequestSnapshotNEQ applies the NEQ predicate on the "request_snapshot" field.
func RequestSnapshotNEQ(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldRequestSnapshot, v))
}

// RequestSnapshotIn applies the In predicate on the "request_snapshot" field.
func RequestSnapshotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldRequestSnapshot, vs...))
}

// RequestSnapshotNotIn applies the NotIn predicate on the "request_snapshot" field.
func RequestSnapshotNotIn(vs ...string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldRequestSnapshot, vs...))
}

// RequestSnapshotGT applies the GT predicate on the "request_snapshot" field.
func RequestSnapshotGT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldRequestSnapshot, v))
}

// RequestSnapshotGTE applies the GTE predicate on the "request_snapshot" field.
func RequestSnapshotGTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldRequestSnapshot, v))
}

// RequestSnapshotLT applies the LT predicate on the "request_snapshot" field.
func RequestSnapshotLT(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldRequestSnapshot, v))
}

// RequestSnapshotLTE applies the LTE predicate on the "request_snapshot" field.
func RequestSnapshotLTE(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldRequestSnapshot, v))
}

// RequestSnapshotContains applies the Contains predicate on the "request_snapshot" field.
func RequestSnapshotContains(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContains(FieldRequestSnapshot, v))
}

// RequestSnapshotHasPrefix applies the HasPrefix predicate on the "request_snapshot" field.
func RequestSnapshotHasPrefix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasPrefix(FieldRequestSnapshot, v))
}

// RequestSnapshotHasSuffix applies the HasSuffix predicate on the "request_snapshot" field.
func RequestSnapshotHasSuffix(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldHasSuffix(FieldRequestSnapshot, v))
}

// RequestSnapshotIsNil applies the IsNil predicate on the "request_snapshot" field.
func RequestSnapshotIsNil() predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIsNull(FieldRequestSnapshot))
}

// RequestSnapshotNotNil applies the NotNil predicate on the "request_snapshot" field.
func RequestSnapshotNotNil() predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotNull(FieldRequestSnapshot))
}

// RequestSnapshotEqualFold applies the EqualFold predicate on the "request_snapshot" field.
func RequestSnapshotEqualFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEqualFold(FieldRequestSnapshot, v))
}

// RequestSnapshotContainsFold applies the ContainsFold predicate on the "request_snapshot" field.
func RequestSnapshotContainsFold(v string) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldContainsFold(FieldRequestSnapshot, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMFailure {
	return predicate.LLMFailure(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMFailure) predicate.LLMFailure {
	return predicate.LLMFailure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMFailure) predicate.LLMFailure {
	return predicate.LLMFailure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMFailure) predicate.LLMFailure {
	return predicate.LLMFailure(sql.NotPredicates(p))
}
