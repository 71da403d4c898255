// Code generated by ent, DO NOT EDIT.

package searchquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldID, id))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldValue, v))
}

// OriginalValue applies equality check predicate on the "original_value" field. It's identical to OriginalValueEQ.
func OriginalValue(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldOriginalValue, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldLanguage, v))
}

// Filetype applies equality check predicate on the "filetype" field. It's identical to FiletypeEQ.
func Filetype(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldFiletype, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldUpdatedAt, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldValue, v))
}

// OriginalValueEQ applies the EQ predicate on the "original_value" field.
func OriginalValueEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldOriginalValue, v))
}

// OriginalValueNEQ applies the NEQ predicate on the "original_value" field.
func OriginalValueNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldOriginalValue, v))
}

// OriginalValueIn applies the In predicate on the "original_value" field.
func OriginalValueIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldOriginalValue, vs...))
}

// OriginalValueNotIn applies the NotIn predicate on the "original_value" field.
func OriginalValueNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldOriginalValue, vs...))
}

// OriginalValueGT applies the GT predicate on the "original_value" field.
func OriginalValueGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldOriginalValue, v))
}

// OriginalValueGTE applies the GTE predicate on the "original_value" field.
func OriginalValueGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldOriginalValue, v))
}

// OriginalValueLT applies the LT predicate on the "original_value" field.
func OriginalValueLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldOriginalValue, v))
}

// OriginalValueLTE applies the LTE predicate on the "original_value" field.
func OriginalValueLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldOriginalValue, v))
}

// OriginalValueContains applies the Contains predicate on the "original_value" field.
func OriginalValueContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldOriginalValue, v))
}

// OriginalValueHasPrefix applies the HasPrefix predicate on the "original_value" field.
func OriginalValueHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldOriginalValue, v))
}

// OriginalValueHasSuffix applies the HasSuffix predicate on the "original_value" field.
func OriginalValueHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldOriginalValue, v))
}

// OriginalValueEqualFold applies the EqualFold predicate on the "original_value" field.
func OriginalValueEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldOriginalValue, v))
}

// OriginalValueContainsFold applies the ContainsFold predicate on the "original_value" field.
func OriginalValueContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldOriginalValue, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldLanguage, v))
}

// FiletypeEQ applies the EQ predicate on the "filetype" field.
func FiletypeEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldFiletype, v))
}

// FiletypeNEQ applies the NEQ predicate on the "filetype" field.
func FiletypeNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldFiletype, v))
}

// FiletypeIn applies the In predicate on the "filetype" field.
func FiletypeIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldFiletype, vs...))
}

// FiletypeNotIn applies the NotIn predicate on the "filetype" field.
func FiletypeNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldFiletype, vs...))
}

// FiletypeGT applies the GT predicate on the "filetype" field.
func FiletypeGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldFiletype, v))
}

// FiletypeGTE applies the GTE predicate on the "filetype" field.
func FiletypeGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldFiletype, v))
}

// FiletypeLT applies the LT predicate on the "filetype" field.
func FiletypeLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldFiletype, v))
}

// FiletypeLTE applies the LTE predicate on the "filetype" field.
func FiletypeLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldFiletype, v))
}

// FiletypeContains applies the Contains predicate on the "filetype" field.
func FiletypeContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldFiletype, v))
}

// FiletypeHasPrefix applies the HasPrefix predicate on the "filetype" field.
func FiletypeHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldFiletype, v))
}

// FiletypeHasSuffix applies the HasSuffix predicate on the "filetype" field.
func FiletypeHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldFiletype, v))
}

// FiletypeEqualFold applies the EqualFold predicate on the "filetype" field.
func FiletypeEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldFiletype, v))
}

// FiletypeContainsFold applies the ContainsFold predicate on the "filetype" field.
func FiletypeContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldFiletype, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIntents applies the HasEdge predicate on the "intents" edge.
func HasIntents() predicate.SearchQuery {
	return predicate.SearchQuery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, IntentsTable, IntentsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentsWith applies the HasEdge predicate on the "intents" edge with a given conditions (other predicates).
func HasIntentsWith(preds ...predicate.Intent) predicate.SearchQuery {
	return predicate.SearchQuery(func(s *sql.Selector) {
		step := newIntentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.NotPredicates(p))
}
