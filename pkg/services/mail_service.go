package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
)

// maxDerivedTitleLen caps auto-derived thread titles, in runes.
const maxDerivedTitleLen = 64

// MailSubmission reports an accepted user reply and its generation order.
type MailSubmission struct {
	ThreadUID   string `json:"threadUid"`
	UserReplyID int    `json:"userReplyId"`
	OrderID     int    `json:"jobId"`
}

// ThreadView is a thread with its replies and unread count.
type ThreadView struct {
	Thread      *ent.MailThread
	Replies     []*ent.MailReply
	UnreadCount int
}

// MailService persists mail threads, replies, and attachments, and
// enqueues mail_reply orders for user submissions.
type MailService struct {
	db     *ent.Client
	orders *OrderService
}

// NewMailService creates a MailService.
func NewMailService(db *ent.Client, orders *OrderService) *MailService {
	return &MailService{db: db, orders: orders}
}

// CreateThread starts a thread with the user's first message and enqueues
// its reply order. An explicit title pins the thread against auto-derivation.
func (s *MailService) CreateThread(ctx context.Context, title, content, requestedModel string) (*MailSubmission, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "required")
	}

	thread, err := s.db.MailThread.Create().
		SetUID(uuid.NewString()).
		SetTitle(title).
		SetUserSetTitle(title != "").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	return s.appendAndEnqueue(ctx, thread, content, requestedModel)
}

// AppendUserReply appends a user message to an existing thread and enqueues
// its reply order.
func (s *MailService) AppendUserReply(ctx context.Context, uid, content, requestedModel string) (*MailSubmission, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "required")
	}
	thread, err := s.ThreadByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.appendAndEnqueue(ctx, thread, content, requestedModel)
}

func (s *MailService) appendAndEnqueue(ctx context.Context, thread *ent.MailThread, content, requestedModel string) (*MailSubmission, error) {
	reply, err := s.db.MailReply.Create().
		SetThreadID(thread.ID).
		SetRole(mailreply.RoleUser).
		SetStatus(mailreply.StatusCompleted).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append user reply: %w", err)
	}

	payload := map[string]any{
		"threadUid":   thread.UID,
		"threadId":    thread.ID,
		"userReplyId": reply.ID,
	}
	if requestedModel != "" {
		payload["requestedModel"] = requestedModel
	}
	order, err := s.orders.EnqueueMailOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	return &MailSubmission{ThreadUID: thread.UID, UserReplyID: reply.ID, OrderID: order.ID}, nil
}

// ThreadByUID loads a thread by its external identifier.
func (s *MailService) ThreadByUID(ctx context.Context, uid string) (*ent.MailThread, error) {
	thread, err := s.db.MailThread.Query().Where(mailthread.UID(uid)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load thread %s: %w", uid, err)
	}
	return thread, nil
}

// GetThread returns the thread with replies (attachments eager-loaded,
// oldest first) and the current unread count.
func (s *MailService) GetThread(ctx context.Context, uid string) (*ThreadView, error) {
	thread, err := s.ThreadByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	replies, err := s.db.MailReply.Query().
		Where(mailreply.ThreadID(thread.ID)).
		WithAttachments(func(q *ent.MailAttachmentQuery) {
			q.Order(ent.Asc(mailattachment.FieldID))
		}).
		Order(ent.Asc(mailreply.FieldCreatedAt), ent.Asc(mailreply.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load replies for thread %s: %w", uid, err)
	}
	unread, err := s.UnreadCount(ctx, thread.ID)
	if err != nil {
		return nil, err
	}
	return &ThreadView{Thread: thread, Replies: replies, UnreadCount: unread}, nil
}

// RepliesAscending returns the full reply history, oldest first.
func (s *MailService) RepliesAscending(ctx context.Context, threadID int) ([]*ent.MailReply, error) {
	rows, err := s.db.MailReply.Query().
		Where(mailreply.ThreadID(threadID)).
		Order(ent.Asc(mailreply.FieldCreatedAt), ent.Asc(mailreply.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}
	return rows, nil
}

// Reply loads one reply by id.
func (s *MailService) Reply(ctx context.Context, id int) (*ent.MailReply, error) {
	row, err := s.db.MailReply.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reply %d: %w", id, err)
	}
	return row, nil
}

// AppendAssistantReply persists the generated reply, unread until the
// client opens the thread.
func (s *MailService) AppendAssistantReply(ctx context.Context, threadID int, content string) (*ent.MailReply, error) {
	reply, err := s.db.MailReply.Create().
		SetThreadID(threadID).
		SetRole(mailreply.RoleAssistant).
		SetStatus(mailreply.StatusCompleted).
		SetContent(content).
		SetUnread(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append assistant reply: %w", err)
	}
	return reply, nil
}

// AddTextAttachment stores a UTF-8 text attachment on a reply.
func (s *MailService) AddTextAttachment(ctx context.Context, replyID int, filename, text string) (*ent.MailAttachment, error) {
	row, err := s.db.MailAttachment.Create().
		SetReplyID(replyID).
		SetKind(mailattachment.KindText).
		SetMimeType("text/plain; charset=utf-8").
		SetFilename(filename).
		SetTextContent(text).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store text attachment: %w", err)
	}
	return row, nil
}

// AddImageAttachment stores a provider-generated image on a reply.
func (s *MailService) AddImageAttachment(ctx context.Context, replyID int, filename, mimeType string, data []byte) (*ent.MailAttachment, error) {
	row, err := s.db.MailAttachment.Create().
		SetReplyID(replyID).
		SetKind(mailattachment.KindImage).
		SetMimeType(mimeType).
		SetFilename(filename).
		SetBinaryContent(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store image attachment: %w", err)
	}
	return row, nil
}

// UpdateSummary replaces the thread's context summary and its coverage
// marker.
func (s *MailService) UpdateSummary(ctx context.Context, threadID int, summary string, tokenCount, lastReplyID int) error {
	_, err := s.db.MailThread.UpdateOneID(threadID).
		SetContextSummary(summary).
		SetSummaryTokenCount(tokenCount).
		SetLastSummarizedReplyID(lastReplyID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update thread summary: %w", err)
	}
	return nil
}

// SetDerivedTitle applies an auto-derived title unless the user has pinned
// one. Reports whether the title changed.
func (s *MailService) SetDerivedTitle(ctx context.Context, threadID int, title string) (bool, error) {
	n, err := s.db.MailThread.Update().
		Where(mailthread.ID(threadID), mailthread.UserSetTitle(false)).
		SetTitle(title).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to set derived title: %w", err)
	}
	return n > 0, nil
}

// UnreadCount counts unread replies on a thread.
func (s *MailService) UnreadCount(ctx context.Context, threadID int) (int, error) {
	n, err := s.db.MailReply.Query().
		Where(mailreply.ThreadID(threadID), mailreply.Unread(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread replies: %w", err)
	}
	return n, nil
}

// EstimateTokens approximates the provider token count of a history as
// ceil(total characters / 4).
func EstimateTokens(replies []*ent.MailReply) int {
	total := 0
	for _, r := range replies {
		total += utf8.RuneCountInString(r.Content)
	}
	return (total + 3) / 4
}

// DeriveTitle builds a thread title from the first user message: first
// non-empty line, markdown markers stripped, whitespace collapsed, capped
// at 64 runes with an ellipsis.
func DeriveTitle(content string) string {
	var line string
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSpace(l)
		l = strings.TrimLeft(l, "#>*-` ")
		l = strings.NewReplacer("*", "", "_", "", "`", "", "[", "", "]", "", "(", "", ")", "").Replace(l)
		l = strings.Join(strings.Fields(l), " ")
		if l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return ""
	}
	runes := []rune(line)
	if len(runes) <= maxDerivedTitleLen {
		return line
	}
	return string(runes[:maxDerivedTitleLen-1]) + "…"
}
