// Code generated by ent, DO NOT EDIT.

package mailthread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldTitle, v))
}

// UserSetTitle applies equality check predicate on the "user_set_title" field. It's identical to UserSetTitleEQ.
func UserSetTitle(v bool) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUserSetTitle, v))
}

// ContextSummary applies equality check predicate on the "context_summary" field. It's identical to ContextSummaryEQ.
func ContextSummary(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldContextSummary, v))
}

// SummaryTokenCount applies equality check predicate on the "summary_token_count" field. It's identical to SummaryTokenCountEQ.
func SummaryTokenCount(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldSummaryTokenCount, v))
}

// LastSummarizedReplyID applies equality check predicate on the "last_summarized_reply_id" field. It's identical to LastSummarizedReplyIDEQ.
func LastSummarizedReplyID(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldLastSummarizedReplyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUpdatedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContainsFold(FieldUID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.MailThread {
	return predicate.MailThread(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.MailThread {
	return predicate.MailThread(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContainsFold(FieldTitle, v))
}

// UserSetTitleEQ applies the EQ predicate on the "user_set_title" field.
func UserSetTitleEQ(v bool) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUserSetTitle, v))
}

// UserSetTitleNEQ applies the NEQ predicate on the "user_set_title" field.
func UserSetTitleNEQ(v bool) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldUserSetTitle, v))
}

// ContextSummaryEQ applies the EQ predicate on the "context_summary" field.
func ContextSummaryEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldContextSummary, v))
}

// ContextSummaryNEQ applies the NEQ predicate on the "context_summary" field.
func ContextSummaryNEQ(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldContextSummary, v))
}

// ContextSummaryIn applies the In predicate on the "context_summary" field.
func ContextSummaryIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldContextSummary, vs...))
}

// ContextSummaryNotIn applies the NotIn predicate on the "context_summary" field.
func ContextSummaryNotIn(vs ...string) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldContextSummary, vs...))
}

// ContextSummaryGT applies the GT predicate on the "context_summary" field.
func ContextSummaryGT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldContextSummary, v))
}

// ContextSummaryGTE applies the GTE predicate on the "context_summary" field.
func ContextSummaryGTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldContextSummary, v))
}

// ContextSummaryLT applies the LT predicate on the "context_summary" field.
func ContextSummaryLT(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldContextSummary, v))
}

// ContextSummaryLTE applies the LTE predicate on the "context_summary" field.
func ContextSummaryLTE(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldContextSummary, v))
}

// ContextSummaryContains applies the Contains predicate on the "context_summary" field.
func ContextSummaryContains(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContains(FieldContextSummary, v))
}

// ContextSummaryHasPrefix applies the HasPrefix predicate on the "context_summary" field.
func ContextSummaryHasPrefix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasPrefix(FieldContextSummary, v))
}

// ContextSummaryHasSuffix applies the HasSuffix predicate on the "context_summary" field.
func ContextSummaryHasSuffix(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldHasSuffix(FieldContextSummary, v))
}

// ContextSummaryIsNil applies the IsNil predicate on the "context_summary" field.
func ContextSummaryIsNil() predicate.MailThread {
	return predicate.MailThread(sql.FieldIsNull(FieldContextSummary))
}

// ContextSummaryNotNil applies the NotNil predicate on the "context_summary" field.
func ContextSummaryNotNil() predicate.MailThread {
	return predicate.MailThread(sql.FieldNotNull(FieldContextSummary))
}

// ContextSummaryEqualFold applies the EqualFold predicate on the "context_summary" field.
func ContextSummaryEqualFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldEqualFold(FieldContextSummary, v))
}

// ContextSummaryContainsFold applies the ContainsFold predicate on the "context_summary" field.
func ContextSummaryContainsFold(v string) predicate.MailThread {
	return predicate.MailThread(sql.FieldContainsFold(FieldContextSummary, v))
}

// SummaryTokenCountEQ applies the EQ predicate on the "summary_token_count" field.
func SummaryTokenCountEQ(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldSummaryTokenCount, v))
}

// SummaryTokenCountNEQ applies the NEQ predicate on the "summary_token_count" field.
func SummaryTokenCountNEQ(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldSummaryTokenCount, v))
}

// SummaryTokenCountIn applies the In predicate on the "summary_token_count" field.
func SummaryTokenCountIn(vs ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldSummaryTokenCount, vs...))
}

// SummaryTokenCountNotIn applies the NotIn predicate on the "summary_token_count" field.
func SummaryTokenCountNotIn(vs ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldSummaryTokenCount, vs...))
}

// SummaryTokenCountGT applies the GT predicate on the "summary_token_count" field.
func SummaryTokenCountGT(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldSummaryTokenCount, v))
}

// SummaryTokenCountGTE applies the GTE predicate on the "summary_token_count" field.
func SummaryTokenCountGTE(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldSummaryTokenCount, v))
}

// SummaryTokenCountLT applies the LT predicate on the "summary_token_count" field.
func SummaryTokenCountLT(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldSummaryTokenCount, v))
}

// SummaryTokenCountLTE applies the LTE predicate on the "summary_token_count" field.
func SummaryTokenCountLTE(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldSummaryTokenCount, v))
}

// LastSummarizedReplyIDEQ applies the EQ predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDEQ(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldLastSummarizedReplyID, v))
}

// LastSummarizedReplyIDNEQ applies the NEQ predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDNEQ(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldLastSummarizedReplyID, v))
}

// LastSummarizedReplyIDIn applies the In predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDIn(vs ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldLastSummarizedReplyID, vs...))
}

// LastSummarizedReplyIDNotIn applies the NotIn predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDNotIn(vs ...int) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldLastSummarizedReplyID, vs...))
}

// LastSummarizedReplyIDGT applies the GT predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDGT(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldLastSummarizedReplyID, v))
}

// LastSummarizedReplyIDGTE applies the GTE predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDGTE(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldLastSummarizedReplyID, v))
}

// LastSummarizedReplyIDLT applies the LT predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDLT(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldLastSummarizedReplyID, v))
}

// LastSummarizedReplyIDLTE applies the LTE predicate on the "last_summarized_reply_id" field.
func LastSummarizedReplyIDLTE(v int) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldLastSummarizedReplyID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MailThread {
	return predicate.MailThread(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReplies applies the HasEdge predicate on the "replies" edge.
func HasReplies() predicate.MailThread {
	return predicate.MailThread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepliesWith applies the HasEdge predicate on the "replies" edge with a given conditions (other predicates).
func HasRepliesWith(preds ...predicate.MailReply) predicate.MailThread {
	return predicate.MailThread(func(s *sql.Selector) {
		step := newRepliesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MailThread) predicate.MailThread {
	return predicate.MailThread(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MailThread) predicate.MailThread {
	return predicate.MailThread(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MailThread) predicate.MailThread {
	return predicate.MailThread(sql.NotPredicates(p))
}
