// Code generated by ent, DO NOT EDIT.

package spellentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLTE(FieldID, id))
}

// TextHash applies equality check predicate on the "text_hash" field. It's identical to TextHashEQ.
func TextHash(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldTextHash, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldLanguage, v))
}

// Corrected applies equality check predicate on the "corrected" field. It's identical to CorrectedEQ.
func Corrected(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldCorrected, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TextHashEQ applies the EQ predicate on the "text_hash" field.
func TextHashEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldTextHash, v))
}

// TextHashNEQ applies the NEQ predicate on the "text_hash" field.
func TextHashNEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNEQ(FieldTextHash, v))
}

// TextHashIn applies the In predicate on the "text_hash" field.
func TextHashIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldIn(FieldTextHash, vs...))
}

// TextHashNotIn applies the NotIn predicate on the "text_hash" field.
func TextHashNotIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNotIn(FieldTextHash, vs...))
}

// TextHashGT applies the GT predicate on the "text_hash" field.
func TextHashGT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGT(FieldTextHash, v))
}

// TextHashGTE applies the GTE predicate on the "text_hash" field.
func TextHashGTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGTE(FieldTextHash, v))
}

// TextHashLT applies the LT predicate on the "text_hash" field.
func TextHashLT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLT(FieldTextHash, v))
}

// TextHashLTE applies the LTE predicate on the "text_hash" field.
func TextHashLTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLTE(FieldTextHash, v))
}

// TextHashContains applies the Contains predicate on the "text_hash" field.
func TextHashContains(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContains(FieldTextHash, v))
}

// TextHashHasPrefix applies the HasPrefix predicate on the "text_hash" field.
func TextHashHasPrefix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasPrefix(FieldTextHash, v))
}

// TextHashHasSuffix applies the HasSuffix predicate on the "text_hash" field.
func TextHashHasSuffix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasSuffix(FieldTextHash, v))
}

// TextHashEqualFold applies the EqualFold predicate on the "text_hash" field.
func TextHashEqualFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEqualFold(FieldTextHash, v))
}

// TextHashContainsFold applies the ContainsFold predicate on the "text_hash" field.
func TextHashContainsFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContainsFold(FieldTextHash, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContainsFold(FieldLanguage, v))
}

// CorrectedEQ applies the EQ predicate on the "corrected" field.
func CorrectedEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldCorrected, v))
}

// CorrectedNEQ applies the NEQ predicate on the "corrected" field.
func CorrectedNEQ(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNEQ(FieldCorrected, v))
}

// CorrectedIn applies the In predicate on the "corrected" field.
func CorrectedIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldIn(FieldCorrected, vs...))
}

// CorrectedNotIn applies the NotIn predicate on the "corrected" field.
func CorrectedNotIn(vs ...string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNotIn(FieldCorrected, vs...))
}

// CorrectedGT applies the GT predicate on the "corrected" field.
func CorrectedGT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGT(FieldCorrected, v))
}

// CorrectedGTE applies the GTE predicate on the "corrected" field.
func CorrectedGTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGTE(FieldCorrected, v))
}

// CorrectedLT applies the LT predicate on the "corrected" field.
func CorrectedLT(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLT(FieldCorrected, v))
}

// CorrectedLTE applies the LTE predicate on the "corrected" field.
func CorrectedLTE(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLTE(FieldCorrected, v))
}

// CorrectedContains applies the Contains predicate on the "corrected" field.
func CorrectedContains(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContains(FieldCorrected, v))
}

// CorrectedHasPrefix applies the HasPrefix predicate on the "corrected" field.
func CorrectedHasPrefix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasPrefix(FieldCorrected, v))
}

// CorrectedHasSuffix applies the HasSuffix predicate on the "corrected" field.
func CorrectedHasSuffix(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldHasSuffix(FieldCorrected, v))
}

// CorrectedEqualFold applies the EqualFold predicate on the "corrected" field.
func CorrectedEqualFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEqualFold(FieldCorrected, v))
}

// CorrectedContainsFold applies the ContainsFold predicate on the "corrected" field.
func CorrectedContainsFold(v string) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldContainsFold(FieldCorrected, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpellEntry {
	return predicate.SpellEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpellEntry) predicate.SpellEntry {
	return predicate.SpellEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpellEntry) predicate.SpellEntry {
	return predicate.SpellEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpellEntry) predicate.SpellEntry {
	return predicate.SpellEntry(sql.NotPredicates(p))
}
