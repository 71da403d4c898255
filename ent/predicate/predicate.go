// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// GenerationOrder is the predicate function for generationorder builders.
type GenerationOrder func(*sql.Selector)

// GenerationRun is the predicate function for generationrun builders.
type GenerationRun func(*sql.Selector)

// Intent is the predicate function for intent builders.
type Intent func(*sql.Selector)

// LLMFailure is the predicate function for llmfailure builders.
type LLMFailure func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// MailAttachment is the predicate function for mailattachment builders.
type MailAttachment func(*sql.Selector)

// MailReply is the predicate function for mailreply builders.
type MailReply func(*sql.Selector)

// MailThread is the predicate function for mailthread builders.
type MailThread func(*sql.Selector)

// OrderEvent is the predicate function for orderevent builders.
type OrderEvent func(*sql.Selector)

// OrderLog is the predicate function for orderlog builders.
type OrderLog func(*sql.Selector)

// RuntimeSetting is the predicate function for runtimesetting builders.
type RuntimeSetting func(*sql.Selector)

// SearchQuery is the predicate function for searchquery builders.
type SearchQuery func(*sql.Selector)

// SpellEntry is the predicate function for spellentry builders.
type SpellEntry func(*sql.Selector)
