// Code generated by ent, DO NOT EDIT.

package generationorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldID, id))
}

// QueryID applies equality check predicate on the "query_id" field. It's identical to QueryIDEQ.
func QueryID(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldQueryID, v))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldIntentID, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldArticleID, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldResultSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldFinishedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueryIDEQ applies the EQ predicate on the "query_id" field.
func QueryIDEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldQueryID, v))
}

// QueryIDNEQ applies the NEQ predicate on the "query_id" field.
func QueryIDNEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldQueryID, v))
}

// QueryIDIn applies the In predicate on the "query_id" field.
func QueryIDIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldQueryID, vs...))
}

// QueryIDNotIn applies the NotIn predicate on the "query_id" field.
func QueryIDNotIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldQueryID, vs...))
}

// QueryIDGT applies the GT predicate on the "query_id" field.
func QueryIDGT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldQueryID, v))
}

// QueryIDGTE applies the GTE predicate on the "query_id" field.
func QueryIDGTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldQueryID, v))
}

// QueryIDLT applies the LT predicate on the "query_id" field.
func QueryIDLT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldQueryID, v))
}

// QueryIDLTE applies the LTE predicate on the "query_id" field.
func QueryIDLTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldQueryID, v))
}

// QueryIDIsNil applies the IsNil predicate on the "query_id" field.
func QueryIDIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldQueryID))
}

// QueryIDNotNil applies the NotNil predicate on the "query_id" field.
func QueryIDNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldQueryID))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldKind, vs...))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDIsNil applies the IsNil predicate on the "intent_id" field.
func IntentIDIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldIntentID))
}

// IntentIDNotNil applies the NotNil predicate on the "intent_id" field.
func IntentIDNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldIntentID))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v int) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDIsNil applies the IsNil predicate on the "article_id" field.
func ArticleIDIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldArticleID))
}

// ArticleIDNotNil applies the NotNil predicate on the "article_id" field.
func ArticleIDNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldArticleID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v RequestedBy) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v RequestedBy) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...RequestedBy) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...RequestedBy) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestPayloadIsNil applies the IsNil predicate on the "request_payload" field.
func RequestPayloadIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldRequestPayload))
}

// RequestPayloadNotNil applies the NotNil predicate on the "request_payload" field.
func RequestPayloadNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldRequestPayload))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldContainsFold(FieldResultSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotNull(FieldFinishedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationOrder) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationOrder) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationOrder) predicate.GenerationOrder {
	return predicate.GenerationOrder(sql.NotPredicates(p))
}
