package queue

import (
	"context"
	"fmt"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/services"
)

// MailExecutor runs mail_reply orders.
type MailExecutor struct {
	provider  llm.Provider
	executor  *llm.Executor
	settings  *services.SettingsService
	mail      *services.MailService
	orders    *services.OrderService
	publisher *events.Publisher
}

// NewMailExecutor wires the mail reply pipeline.
func NewMailExecutor(
	provider llm.Provider,
	executor *llm.Executor,
	settings *services.SettingsService,
	mail *services.MailService,
	orders *services.OrderService,
	publisher *events.Publisher,
) *MailExecutor {
	return &MailExecutor{
		provider:  provider,
		executor:  executor,
		settings:  settings,
		mail:      mail,
		orders:    orders,
		publisher: publisher,
	}
}

// mailRequest is the decoded request_payload of a mail_reply order.
type mailRequest struct {
	ThreadUID      string
	UserReplyID    int
	RequestedModel string
}

func decodeMailRequest(payload map[string]any) (mailRequest, error) {
	req := mailRequest{}
	uid, _ := payload["threadUid"].(string)
	if uid == "" {
		return req, fmt.Errorf("mail order payload has no threadUid")
	}
	req.ThreadUID = uid
	// JSON round-trips numbers as float64.
	if v, ok := payload["userReplyId"].(float64); ok {
		req.UserReplyID = int(v)
	} else if v, ok := payload["userReplyId"].(int); ok {
		req.UserReplyID = v
	}
	req.RequestedModel, _ = payload["requestedModel"].(string)
	return req, nil
}

// Execute runs the mail reply pipeline for one order.
func (e *MailExecutor) Execute(ctx context.Context, order *ent.GenerationOrder) *ExecutionResult {
	req, err := decodeMailRequest(order.RequestPayload)
	if err != nil {
		return &ExecutionResult{Err: err}
	}
	channel := events.MailChannel(req.ThreadUID)

	thread, err := e.mail.ThreadByUID(ctx, req.ThreadUID)
	if err != nil {
		return e.fail(ctx, order, channel, req.ThreadUID, fmt.Errorf("load thread %s: %w", req.ThreadUID, err))
	}
	history, err := e.mail.RepliesAscending(ctx, thread.ID)
	if err != nil {
		return e.fail(ctx, order, channel, thread.UID, err)
	}
	if len(history) == 0 {
		return e.fail(ctx, order, channel, thread.UID, fmt.Errorf("thread %s has no replies", thread.UID))
	}

	e.emit(ctx, channel, order.ID, events.MailJobStartedPayload{
		OrderID:   order.ID,
		ThreadUID: thread.UID,
	})
	e.orders.AppendLog(ctx, order.ID, orderlog.StageOrder, orderlog.LevelInfo,
		fmt.Sprintf("mail pipeline started for thread %s", thread.UID), nil)

	cfg := e.settings.Snapshot(ctx)

	userReply := latestUserReply(history, req.UserReplyID)
	if userReply == nil {
		return e.fail(ctx, order, channel, thread.UID, fmt.Errorf("thread %s has no user reply to answer", thread.UID))
	}

	summary, summaryTokens, err := e.maybeSummarize(ctx, thread, history, cfg)
	if err != nil {
		return e.fail(ctx, order, channel, thread.UID, err)
	}

	window := history
	if len(window) > cfg.MailMaxMessages {
		window = window[len(window)-cfg.MailMaxMessages:]
	}

	policy := llm.AttachmentPolicy{
		MaxCount:     cfg.MailAttachmentsMaxCount,
		MaxTextChars: cfg.MailAttachmentsMaxTextChars,
	}
	out, _, err := llm.Do(ctx, e.executor, llm.CallSpec{
		Provider:    e.provider.Name(),
		Component:   "mail_pipeline",
		Trigger:     "generate_reply",
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
		Snapshot:    func() string { return userReply.Content },
	}, func(ctx context.Context) (*llm.ReplyOutput, error) {
		return e.provider.GenerateReply(ctx, llm.ReplyInput{
			History:   toMessages(window),
			Summary:   summary,
			UserInput: userReply.Content,
			Policy:    policy,
			Model:     req.RequestedModel,
		})
	})
	if err != nil {
		return e.fail(ctx, order, channel, thread.UID, err)
	}
	if out == nil || out.Content == "" {
		return e.fail(ctx, order, channel, thread.UID, fmt.Errorf("provider returned an empty reply"))
	}

	reply, err := e.mail.AppendAssistantReply(ctx, thread.ID, out.Content)
	if err != nil {
		return e.fail(ctx, order, channel, thread.UID, err)
	}

	attachments := out.Attachments
	if policy.MaxCount >= 0 && len(attachments) > policy.MaxCount {
		attachments = attachments[:policy.MaxCount]
	}
	for _, att := range attachments {
		if err := e.storeAttachment(ctx, reply.ID, att, policy, cfg); err != nil {
			return e.fail(ctx, order, channel, thread.UID, err)
		}
	}

	title := thread.Title
	if !thread.UserSetTitle && thread.Title == "" {
		if derived := services.DeriveTitle(userReply.Content); derived != "" {
			if changed, err := e.mail.SetDerivedTitle(ctx, thread.ID, derived); err == nil && changed {
				title = derived
			}
		}
	}

	unread, err := e.mail.UnreadCount(ctx, thread.ID)
	if err != nil {
		return e.fail(ctx, order, channel, thread.UID, err)
	}

	e.emit(ctx, channel, order.ID, events.MailReplyCreatedPayload{
		ThreadUID: thread.UID,
		Reply: events.MailReplyRef{
			ID:              reply.ID,
			Role:            string(reply.Role),
			Content:         reply.Content,
			Status:          string(reply.Status),
			AttachmentCount: len(attachments),
		},
	})
	e.emit(ctx, channel, order.ID, events.MailThreadUpdatedPayload{
		ThreadUID:         thread.UID,
		Title:             title,
		SummaryTokenCount: summaryTokens,
	})
	e.emit(ctx, channel, order.ID, events.MailUnreadChangedPayload{
		ThreadUID:   thread.UID,
		UnreadCount: unread,
	})
	e.emit(ctx, channel, order.ID, events.MailJobCompletedPayload{
		OrderID:   order.ID,
		ThreadUID: thread.UID,
		ReplyID:   reply.ID,
	})

	return &ExecutionResult{
		Summary: fmt.Sprintf("reply %d generated with %d attachment(s)", reply.ID, len(attachments)),
	}
}

// maybeSummarize refreshes the thread's context summary when the full
// history exceeds the trigger and the stored summary no longer covers it.
// Returns the summary to hand to the provider and its token count.
func (e *MailExecutor) maybeSummarize(ctx context.Context, thread *ent.MailThread, history []*ent.MailReply, cfg services.Settings) (string, int, error) {
	estimate := services.EstimateTokens(history)
	lastReplyID := history[len(history)-1].ID

	if estimate < cfg.MailSummaryTriggerTokens || thread.LastSummarizedReplyID >= lastReplyID {
		return thread.ContextSummary, thread.SummaryTokenCount, nil
	}

	summary, _, err := llm.Do(ctx, e.executor, llm.CallSpec{
		Provider:    e.provider.Name(),
		Component:   "mail_pipeline",
		Trigger:     "summarize_thread",
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
	}, func(ctx context.Context) (string, error) {
		return e.provider.SummarizeThread(ctx, llm.SummaryInput{Messages: toMessages(history)})
	})
	if err != nil {
		return "", 0, err
	}

	if err := e.mail.UpdateSummary(ctx, thread.ID, summary, estimate, lastReplyID); err != nil {
		return "", 0, err
	}
	return summary, estimate, nil
}

func (e *MailExecutor) storeAttachment(ctx context.Context, replyID int, att llm.ReplyAttachment, policy llm.AttachmentPolicy, cfg services.Settings) error {
	switch att.Kind {
	case llm.AttachmentText:
		text := att.Text
		if policy.MaxTextChars > 0 && len(text) > policy.MaxTextChars {
			text = text[:policy.MaxTextChars]
		}
		_, err := e.mail.AddTextAttachment(ctx, replyID, att.Filename, text)
		return err

	case llm.AttachmentImage:
		img, _, err := llm.Do(ctx, e.executor, llm.CallSpec{
			Provider:    e.provider.Name(),
			Component:   "mail_pipeline",
			Trigger:     "create_image",
			MaxAttempts: cfg.RetryMaxAttempts,
			Timeout:     cfg.RetryTimeout,
			Snapshot:    func() string { return att.ImageDescription },
		}, func(ctx context.Context) (*llm.ImageOutput, error) {
			return e.provider.CreateImage(ctx, llm.ImageInput{
				Description: att.ImageDescription,
				Quality:     att.ImageQuality,
			})
		})
		if err != nil {
			return err
		}
		_, err = e.mail.AddImageAttachment(ctx, replyID, att.Filename, img.MimeType, img.Data)
		return err

	default:
		return fmt.Errorf("unknown attachment kind %q", att.Kind)
	}
}

// latestUserReply prefers the reply named on the order, falling back to
// the newest user-role message.
func latestUserReply(history []*ent.MailReply, userReplyID int) *ent.MailReply {
	for _, r := range history {
		if userReplyID > 0 && r.ID == userReplyID {
			return r
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == mailreply.RoleUser {
			return history[i]
		}
	}
	return nil
}

func toMessages(replies []*ent.MailReply) []llm.Message {
	out := make([]llm.Message, 0, len(replies))
	for _, r := range replies {
		out = append(out, llm.Message{Role: string(r.Role), Content: r.Content})
	}
	return out
}

func (e *MailExecutor) fail(ctx context.Context, order *ent.GenerationOrder, channel, threadUID string, cause error) *ExecutionResult {
	e.emit(ctx, channel, order.ID, events.MailJobFailedPayload{
		OrderID:   order.ID,
		ThreadUID: threadUID,
		Error:     cause.Error(),
	})
	return &ExecutionResult{Err: cause}
}

func (e *MailExecutor) emit(ctx context.Context, channel string, orderID int, payload events.Payload) {
	if _, err := e.publisher.Emit(ctx, channel, orderID, payload); err != nil {
		e.orders.AppendLog(ctx, orderID, orderlog.StageOrder, orderlog.LevelWarn,
			fmt.Sprintf("event %s not delivered: %v", payload.EventType(), err), nil)
	}
}
