// Code generated by ent, DO NOT EDIT.

package generationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldOrderID, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldArticleID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldAttempts, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldDurationMs, v))
}

// LlmDurationMs applies equality check predicate on the "llm_duration_ms" field. It's identical to LlmDurationMsEQ.
func LlmDurationMs(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldLlmDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotNull(FieldOrderID))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDIsNil applies the IsNil predicate on the "article_id" field.
func ArticleIDIsNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIsNull(FieldArticleID))
}

// ArticleIDNotNil applies the NotNil predicate on the "article_id" field.
func ArticleIDNotNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotNull(FieldArticleID))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldAttempts, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldDurationMs, v))
}

// LlmDurationMsEQ applies the EQ predicate on the "llm_duration_ms" field.
func LlmDurationMsEQ(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldLlmDurationMs, v))
}

// LlmDurationMsNEQ applies the NEQ predicate on the "llm_duration_ms" field.
func LlmDurationMsNEQ(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldLlmDurationMs, v))
}

// LlmDurationMsIn applies the In predicate on the "llm_duration_ms" field.
func LlmDurationMsIn(vs ...int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldLlmDurationMs, vs...))
}

// LlmDurationMsNotIn applies the NotIn predicate on the "llm_duration_ms" field.
func LlmDurationMsNotIn(vs ...int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldLlmDurationMs, vs...))
}

// LlmDurationMsGT applies the GT predicate on the "llm_duration_ms" field.
func LlmDurationMsGT(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldLlmDurationMs, v))
}

// LlmDurationMsGTE applies the GTE predicate on the "llm_duration_ms" field.
func LlmDurationMsGTE(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldLlmDurationMs, v))
}

// LlmDurationMsLT applies the LT predicate on the "llm_duration_ms" field.
func LlmDurationMsLT(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldLlmDurationMs, v))
}

// LlmDurationMsLTE applies the LTE predicate on the "llm_duration_ms" field.
func LlmDurationMsLTE(v int64) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldLlmDurationMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.NotPredicates(p))
}
