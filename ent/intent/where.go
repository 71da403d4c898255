// Code generated by ent, DO NOT EDIT.

package intent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldID, id))
}

// IntentText applies equality check predicate on the "intent_text" field. It's identical to IntentTextEQ.
func IntentText(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldIntentText, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldSummary, v))
}

// Filetype applies equality check predicate on the "filetype" field. It's identical to FiletypeEQ.
func Filetype(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldFiletype, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCreatedAt, v))
}

// IntentTextEQ applies the EQ predicate on the "intent_text" field.
func IntentTextEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldIntentText, v))
}

// IntentTextNEQ applies the NEQ predicate on the "intent_text" field.
func IntentTextNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldIntentText, v))
}

// IntentTextIn applies the In predicate on the "intent_text" field.
func IntentTextIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldIntentText, vs...))
}

// IntentTextNotIn applies the NotIn predicate on the "intent_text" field.
func IntentTextNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldIntentText, vs...))
}

// IntentTextGT applies the GT predicate on the "intent_text" field.
func IntentTextGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldIntentText, v))
}

// IntentTextGTE applies the GTE predicate on the "intent_text" field.
func IntentTextGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldIntentText, v))
}

// IntentTextLT applies the LT predicate on the "intent_text" field.
func IntentTextLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldIntentText, v))
}

// IntentTextLTE applies the LTE predicate on the "intent_text" field.
func IntentTextLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldIntentText, v))
}

// IntentTextContains applies the Contains predicate on the "intent_text" field.
func IntentTextContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldIntentText, v))
}

// IntentTextHasPrefix applies the HasPrefix predicate on the "intent_text" field.
func IntentTextHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldIntentText, v))
}

// IntentTextHasSuffix applies the HasSuffix predicate on the "intent_text" field.
func IntentTextHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldIntentText, v))
}

// IntentTextEqualFold applies the EqualFold predicate on the "intent_text" field.
func IntentTextEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldIntentText, v))
}

// IntentTextContainsFold applies the ContainsFold predicate on the "intent_text" field.
func IntentTextContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldIntentText, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Intent {
	return predicate.Intent(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Intent {
	return predicate.Intent(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldSummary, v))
}

// FiletypeEQ applies the EQ predicate on the "filetype" field.
func FiletypeEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldFiletype, v))
}

// FiletypeNEQ applies the NEQ predicate on the "filetype" field.
func FiletypeNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldFiletype, v))
}

// FiletypeIn applies the In predicate on the "filetype" field.
func FiletypeIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldFiletype, vs...))
}

// FiletypeNotIn applies the NotIn predicate on the "filetype" field.
func FiletypeNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldFiletype, vs...))
}

// FiletypeGT applies the GT predicate on the "filetype" field.
func FiletypeGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldFiletype, v))
}

// FiletypeGTE applies the GTE predicate on the "filetype" field.
func FiletypeGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldFiletype, v))
}

// FiletypeLT applies the LT predicate on the "filetype" field.
func FiletypeLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldFiletype, v))
}

// FiletypeLTE applies the LTE predicate on the "filetype" field.
func FiletypeLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldFiletype, v))
}

// FiletypeContains applies the Contains predicate on the "filetype" field.
func FiletypeContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldFiletype, v))
}

// FiletypeHasPrefix applies the HasPrefix predicate on the "filetype" field.
func FiletypeHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldFiletype, v))
}

// FiletypeHasSuffix applies the HasSuffix predicate on the "filetype" field.
func FiletypeHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldFiletype, v))
}

// FiletypeEqualFold applies the EqualFold predicate on the "filetype" field.
func FiletypeEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldFiletype, v))
}

// FiletypeContainsFold applies the ContainsFold predicate on the "filetype" field.
func FiletypeContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldFiletype, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQueries applies the HasEdge predicate on the "queries" edge.
func HasQueries() predicate.Intent {
	return predicate.Intent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, QueriesTable, QueriesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueriesWith applies the HasEdge predicate on the "queries" edge with a given conditions (other predicates).
func HasQueriesWith(preds ...predicate.SearchQuery) predicate.Intent {
	return predicate.Intent(func(s *sql.Selector) {
		step := newQueriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArticles applies the HasEdge predicate on the "articles" edge.
func HasArticles() predicate.Intent {
	return predicate.Intent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArticlesTable, ArticlesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticlesWith applies the HasEdge predicate on the "articles" edge with a given conditions (other predicates).
func HasArticlesWith(preds ...predicate.Article) predicate.Intent {
	return predicate.Intent(func(s *sql.Selector) {
		step := newArticlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.NotPredicates(p))
}
