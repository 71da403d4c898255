// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/generationrun"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/llmfailure"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
	"github.com/lumenlabs/lumen/ent/orderevent"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/ent/runtimesetting"
	"github.com/lumenlabs/lumen/ent/schema"
	"github.com/lumenlabs/lumen/ent/searchquery"
	"github.com/lumenlabs/lumen/ent/spellentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescFiletype is the schema descriptor for filetype field.
	articleDescFiletype := articleFields[5].Descriptor()
	// article.DefaultFiletype holds the default value on creation for the filetype field.
	article.DefaultFiletype = articleDescFiletype.Default.(string)
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleFields[8].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	// articleDescUpdatedAt is the schema descriptor for updated_at field.
	articleDescUpdatedAt := articleFields[9].Descriptor()
	// article.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	article.DefaultUpdatedAt = articleDescUpdatedAt.Default.(func() time.Time)
	// article.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	article.UpdateDefaultUpdatedAt = articleDescUpdatedAt.UpdateDefault.(func() time.Time)
	generationorderFields := schema.GenerationOrder{}.Fields()
	_ = generationorderFields
	// generationorderDescCreatedAt is the schema descriptor for created_at field.
	generationorderDescCreatedAt := generationorderFields[9].Descriptor()
	// generationorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationorder.DefaultCreatedAt = generationorderDescCreatedAt.Default.(func() time.Time)
	// generationorderDescUpdatedAt is the schema descriptor for updated_at field.
	generationorderDescUpdatedAt := generationorderFields[12].Descriptor()
	// generationorder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generationorder.DefaultUpdatedAt = generationorderDescUpdatedAt.Default.(func() time.Time)
	// generationorder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generationorder.UpdateDefaultUpdatedAt = generationorderDescUpdatedAt.UpdateDefault.(func() time.Time)
	generationrunFields := schema.GenerationRun{}.Fields()
	_ = generationrunFields
	// generationrunDescAttempts is the schema descriptor for attempts field.
	generationrunDescAttempts := generationrunFields[4].Descriptor()
	// generationrun.DefaultAttempts holds the default value on creation for the attempts field.
	generationrun.DefaultAttempts = generationrunDescAttempts.Default.(int)
	// generationrunDescDurationMs is the schema descriptor for duration_ms field.
	generationrunDescDurationMs := generationrunFields[5].Descriptor()
	// generationrun.DefaultDurationMs holds the default value on creation for the duration_ms field.
	generationrun.DefaultDurationMs = generationrunDescDurationMs.Default.(int64)
	// generationrunDescLlmDurationMs is the schema descriptor for llm_duration_ms field.
	generationrunDescLlmDurationMs := generationrunFields[6].Descriptor()
	// generationrun.DefaultLlmDurationMs holds the default value on creation for the llm_duration_ms field.
	generationrun.DefaultLlmDurationMs = generationrunDescLlmDurationMs.Default.(int64)
	// generationrunDescCreatedAt is the schema descriptor for created_at field.
	generationrunDescCreatedAt := generationrunFields[8].Descriptor()
	// generationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationrun.DefaultCreatedAt = generationrunDescCreatedAt.Default.(func() time.Time)
	// generationrunDescUpdatedAt is the schema descriptor for updated_at field.
	generationrunDescUpdatedAt := generationrunFields[9].Descriptor()
	// generationrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generationrun.DefaultUpdatedAt = generationrunDescUpdatedAt.Default.(func() time.Time)
	// generationrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generationrun.UpdateDefaultUpdatedAt = generationrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	intentFields := schema.Intent{}.Fields()
	_ = intentFields
	// intentDescFiletype is the schema descriptor for filetype field.
	intentDescFiletype := intentFields[3].Descriptor()
	// intent.DefaultFiletype holds the default value on creation for the filetype field.
	intent.DefaultFiletype = intentDescFiletype.Default.(string)
	// intentDescCreatedAt is the schema descriptor for created_at field.
	intentDescCreatedAt := intentFields[4].Descriptor()
	// intent.DefaultCreatedAt holds the default value on creation for the created_at field.
	intent.DefaultCreatedAt = intentDescCreatedAt.Default.(func() time.Time)
	llmfailureFields := schema.LLMFailure{}.Fields()
	_ = llmfailureFields
	// llmfailureDescCreatedAt is the schema descriptor for created_at field.
	llmfailureDescCreatedAt := llmfailureFields[9].Descriptor()
	// llmfailure.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmfailure.DefaultCreatedAt = llmfailureDescCreatedAt.Default.(func() time.Time)
	mailattachmentFields := schema.MailAttachment{}.Fields()
	_ = mailattachmentFields
	// mailattachmentDescCreatedAt is the schema descriptor for created_at field.
	mailattachmentDescCreatedAt := mailattachmentFields[6].Descriptor()
	// mailattachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	mailattachment.DefaultCreatedAt = mailattachmentDescCreatedAt.Default.(func() time.Time)
	mailreplyFields := schema.MailReply{}.Fields()
	_ = mailreplyFields
	// mailreplyDescUnread is the schema descriptor for unread field.
	mailreplyDescUnread := mailreplyFields[4].Descriptor()
	// mailreply.DefaultUnread holds the default value on creation for the unread field.
	mailreply.DefaultUnread = mailreplyDescUnread.Default.(bool)
	// mailreplyDescCreatedAt is the schema descriptor for created_at field.
	mailreplyDescCreatedAt := mailreplyFields[5].Descriptor()
	// mailreply.DefaultCreatedAt holds the default value on creation for the created_at field.
	mailreply.DefaultCreatedAt = mailreplyDescCreatedAt.Default.(func() time.Time)
	mailthreadFields := schema.MailThread{}.Fields()
	_ = mailthreadFields
	// mailthreadDescTitle is the schema descriptor for title field.
	mailthreadDescTitle := mailthreadFields[1].Descriptor()
	// mailthread.DefaultTitle holds the default value on creation for the title field.
	mailthread.DefaultTitle = mailthreadDescTitle.Default.(string)
	// mailthreadDescUserSetTitle is the schema descriptor for user_set_title field.
	mailthreadDescUserSetTitle := mailthreadFields[2].Descriptor()
	// mailthread.DefaultUserSetTitle holds the default value on creation for the user_set_title field.
	mailthread.DefaultUserSetTitle = mailthreadDescUserSetTitle.Default.(bool)
	// mailthreadDescSummaryTokenCount is the schema descriptor for summary_token_count field.
	mailthreadDescSummaryTokenCount := mailthreadFields[4].Descriptor()
	// mailthread.DefaultSummaryTokenCount holds the default value on creation for the summary_token_count field.
	mailthread.DefaultSummaryTokenCount = mailthreadDescSummaryTokenCount.Default.(int)
	// mailthreadDescLastSummarizedReplyID is the schema descriptor for last_summarized_reply_id field.
	mailthreadDescLastSummarizedReplyID := mailthreadFields[5].Descriptor()
	// mailthread.DefaultLastSummarizedReplyID holds the default value on creation for the last_summarized_reply_id field.
	mailthread.DefaultLastSummarizedReplyID = mailthreadDescLastSummarizedReplyID.Default.(int)
	// mailthreadDescCreatedAt is the schema descriptor for created_at field.
	mailthreadDescCreatedAt := mailthreadFields[6].Descriptor()
	// mailthread.DefaultCreatedAt holds the default value on creation for the created_at field.
	mailthread.DefaultCreatedAt = mailthreadDescCreatedAt.Default.(func() time.Time)
	// mailthreadDescUpdatedAt is the schema descriptor for updated_at field.
	mailthreadDescUpdatedAt := mailthreadFields[7].Descriptor()
	// mailthread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mailthread.DefaultUpdatedAt = mailthreadDescUpdatedAt.Default.(func() time.Time)
	// mailthread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mailthread.UpdateDefaultUpdatedAt = mailthreadDescUpdatedAt.UpdateDefault.(func() time.Time)
	ordereventFields := schema.OrderEvent{}.Fields()
	_ = ordereventFields
	// ordereventDescCreatedAt is the schema descriptor for created_at field.
	ordereventDescCreatedAt := ordereventFields[5].Descriptor()
	// orderevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderevent.DefaultCreatedAt = ordereventDescCreatedAt.Default.(func() time.Time)
	orderlogFields := schema.OrderLog{}.Fields()
	_ = orderlogFields
	// orderlogDescCreatedAt is the schema descriptor for created_at field.
	orderlogDescCreatedAt := orderlogFields[5].Descriptor()
	// orderlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderlog.DefaultCreatedAt = orderlogDescCreatedAt.Default.(func() time.Time)
	runtimesettingFields := schema.RuntimeSetting{}.Fields()
	_ = runtimesettingFields
	// runtimesettingDescUpdatedAt is the schema descriptor for updated_at field.
	runtimesettingDescUpdatedAt := runtimesettingFields[2].Descriptor()
	// runtimesetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	runtimesetting.DefaultUpdatedAt = runtimesettingDescUpdatedAt.Default.(func() time.Time)
	// runtimesetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	runtimesetting.UpdateDefaultUpdatedAt = runtimesettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	searchqueryFields := schema.SearchQuery{}.Fields()
	_ = searchqueryFields
	// searchqueryDescLanguage is the schema descriptor for language field.
	searchqueryDescLanguage := searchqueryFields[2].Descriptor()
	// searchquery.DefaultLanguage holds the default value on creation for the language field.
	searchquery.DefaultLanguage = searchqueryDescLanguage.Default.(string)
	// searchqueryDescFiletype is the schema descriptor for filetype field.
	searchqueryDescFiletype := searchqueryFields[3].Descriptor()
	// searchquery.DefaultFiletype holds the default value on creation for the filetype field.
	searchquery.DefaultFiletype = searchqueryDescFiletype.Default.(string)
	// searchqueryDescCreatedAt is the schema descriptor for created_at field.
	searchqueryDescCreatedAt := searchqueryFields[4].Descriptor()
	// searchquery.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchquery.DefaultCreatedAt = searchqueryDescCreatedAt.Default.(func() time.Time)
	// searchqueryDescUpdatedAt is the schema descriptor for updated_at field.
	searchqueryDescUpdatedAt := searchqueryFields[5].Descriptor()
	// searchquery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	searchquery.DefaultUpdatedAt = searchqueryDescUpdatedAt.Default.(func() time.Time)
	// searchquery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	searchquery.UpdateDefaultUpdatedAt = searchqueryDescUpdatedAt.UpdateDefault.(func() time.Time)
	spellentryFields := schema.SpellEntry{}.Fields()
	_ = spellentryFields
	// spellentryDescCreatedAt is the schema descriptor for created_at field.
	spellentryDescCreatedAt := spellentryFields[3].Descriptor()
	// spellentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	spellentry.DefaultCreatedAt = spellentryDescCreatedAt.Default.(func() time.Time)
}
