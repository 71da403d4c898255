// Code generated by ent, DO NOT EDIT.

package mailattachment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lumenlabs/lumen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldID, id))
}

// ReplyID applies equality check predicate on the "reply_id" field. It's identical to ReplyIDEQ.
func ReplyID(v int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldReplyID, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldMimeType, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldFilename, v))
}

// TextContent applies equality check predicate on the "text_content" field. It's identical to TextContentEQ.
func TextContent(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldTextContent, v))
}

// BinaryContent applies equality check predicate on the "binary_content" field. It's identical to BinaryContentEQ.
func BinaryContent(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldBinaryContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// ReplyIDEQ applies the EQ predicate on the "reply_id" field.
func ReplyIDEQ(v int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldReplyID, v))
}

// ReplyIDNEQ applies the NEQ predicate on the "reply_id" field.
func ReplyIDNEQ(v int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldReplyID, v))
}

// ReplyIDIn applies the In predicate on the "reply_id" field.
func ReplyIDIn(vs ...int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldReplyID, vs...))
}

// ReplyIDNotIn applies the NotIn predicate on the "reply_id" field.
func ReplyIDNotIn(vs ...int) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldReplyID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldKind, vs...))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContainsFold(FieldMimeType, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameIsNil applies the IsNil predicate on the "filename" field.
func FilenameIsNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIsNull(FieldFilename))
}

// FilenameNotNil applies the NotNil predicate on the "filename" field.
func FilenameNotNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotNull(FieldFilename))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContainsFold(FieldFilename, v))
}

// TextContentEQ applies the EQ predicate on the "text_content" field.
func TextContentEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldTextContent, v))
}

// TextContentNEQ applies the NEQ predicate on the "text_content" field.
func TextContentNEQ(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldTextContent, v))
}

// TextContentIn applies the In predicate on the "text_content" field.
func TextContentIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldTextContent, vs...))
}

// TextContentNotIn applies the NotIn predicate on the "text_content" field.
func TextContentNotIn(vs ...string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldTextContent, vs...))
}

// TextContentGT applies the GT predicate on the "text_content" field.
func TextContentGT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldTextContent, v))
}

// TextContentGTE applies the GTE predicate on the "text_content" field.
func TextContentGTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldTextContent, v))
}

// TextContentLT applies the LT predicate on the "text_content" field.
func TextContentLT(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldTextContent, v))
}

// TextContentLTE applies the LTE predicate on the "text_content" field.
func TextContentLTE(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldTextContent, v))
}

// TextContentContains applies the Contains predicate on the "text_content" field.
func TextContentContains(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContains(FieldTextContent, v))
}

// TextContentHasPrefix applies the HasPrefix predicate on the "text_content" field.
func TextContentHasPrefix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasPrefix(FieldTextContent, v))
}

// TextContentHasSuffix applies the HasSuffix predicate on the "text_content" field.
func TextContentHasSuffix(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldHasSuffix(FieldTextContent, v))
}

// TextContentIsNil applies the IsNil predicate on the "text_content" field.
func TextContentIsNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIsNull(FieldTextContent))
}

// TextContentNotNil applies the NotNil predicate on the "text_content" field.
func TextContentNotNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotNull(FieldTextContent))
}

// TextContentEqualFold applies the EqualFold predicate on the "text_content" field.
func TextContentEqualFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEqualFold(FieldTextContent, v))
}

// TextContentContainsFold applies the ContainsFold predicate on the "text_content" field.
func TextContentContainsFold(v string) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldContainsFold(FieldTextContent, v))
}

// BinaryContentEQ applies the EQ predicate on the "binary_content" field.
func BinaryContentEQ(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldBinaryContent, v))
}

// BinaryContentNEQ applies the NEQ predicate on the "binary_content" field.
func BinaryContentNEQ(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldBinaryContent, v))
}

// BinaryContentIn applies the In predicate on the "binary_content" field.
func BinaryContentIn(vs ...[]byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldBinaryContent, vs...))
}

// BinaryContentNotIn applies the NotIn predicate on the "binary_content" field.
func BinaryContentNotIn(vs ...[]byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldBinaryContent, vs...))
}

// BinaryContentGT applies the GT predicate on the "binary_content" field.
func BinaryContentGT(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldBinaryContent, v))
}

// BinaryContentGTE applies the GTE predicate on the "binary_content" field.
func BinaryContentGTE(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldBinaryContent, v))
}

// BinaryContentLT applies the LT predicate on the "binary_content" field.
func BinaryContentLT(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldBinaryContent, v))
}

// BinaryContentLTE applies the LTE predicate on the "binary_content" field.
func BinaryContentLTE(v []byte) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldBinaryContent, v))
}

// BinaryContentIsNil applies the IsNil predicate on the "binary_content" field.
func BinaryContentIsNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIsNull(FieldBinaryContent))
}

// BinaryContentNotNil applies the NotNil predicate on the "binary_content" field.
func BinaryContentNotNil() predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotNull(FieldBinaryContent))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MailAttachment {
	return predicate.MailAttachment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReply applies the HasEdge predicate on the "reply" edge.
func HasReply() predicate.MailAttachment {
	return predicate.MailAttachment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReplyTable, ReplyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReplyWith applies the HasEdge predicate on the "reply" edge with a given conditions (other predicates).
func HasReplyWith(preds ...predicate.MailReply) predicate.MailAttachment {
	return predicate.MailAttachment(func(s *sql.Selector) {
		step := newReplyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MailAttachment) predicate.MailAttachment {
	return predicate.MailAttachment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MailAttachment) predicate.MailAttachment {
	return predicate.MailAttachment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MailAttachment) predicate.MailAttachment {
	return predicate.MailAttachment(sql.NotPredicates(p))
}
