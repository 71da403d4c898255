package models

import (
	"encoding/base64"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/pkg/services"
)

// CreateThreadRequest is the body of POST /api/mail/thread.
type CreateThreadRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content" binding:"required"`
	Model   string `json:"model,omitempty"`
}

// AppendReplyRequest is the body of POST /api/mail/thread/{uid}/reply.
type AppendReplyRequest struct {
	Content string `json:"content" binding:"required"`
	Model   string `json:"model,omitempty"`
}

// AttachmentResponse is one attachment projection. Image bytes travel
// base64-encoded.
type AttachmentResponse struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	MimeType string `json:"mimeType"`
	Filename string `json:"filename,omitempty"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
}

// ReplyResponse is one reply with its attachments.
type ReplyResponse struct {
	ID          int                  `json:"id"`
	Role        string               `json:"role"`
	Status      string               `json:"status"`
	Content     string               `json:"content"`
	Unread      bool                 `json:"unread"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ThreadResponse is the full thread projection.
type ThreadResponse struct {
	UID               string          `json:"uid"`
	Title             string          `json:"title"`
	UserSetTitle      bool            `json:"userSetTitle"`
	SummaryTokenCount int             `json:"summaryTokenCount,omitempty"`
	UnreadCount       int             `json:"unreadCount"`
	Replies           []ReplyResponse `json:"replies"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewThreadResponse projects a thread view.
func NewThreadResponse(view *services.ThreadView) ThreadResponse {
	replies := make([]ReplyResponse, 0, len(view.Replies))
	for _, r := range view.Replies {
		replies = append(replies, newReplyResponse(r))
	}
	return ThreadResponse{
		UID:               view.Thread.UID,
		Title:             view.Thread.Title,
		UserSetTitle:      view.Thread.UserSetTitle,
		SummaryTokenCount: view.Thread.SummaryTokenCount,
		UnreadCount:       view.UnreadCount,
		Replies:           replies,
		CreatedAt:         view.Thread.CreatedAt,
		UpdatedAt:         view.Thread.UpdatedAt,
	}
}

func newReplyResponse(r *ent.MailReply) ReplyResponse {
	out := ReplyResponse{
		ID:        r.ID,
		Role:      string(r.Role),
		Status:    string(r.Status),
		Content:   r.Content,
		Unread:    r.Unread,
		CreatedAt: r.CreatedAt,
	}
	for _, a := range r.Edges.Attachments {
		att := AttachmentResponse{
			ID:       a.ID,
			Kind:     string(a.Kind),
			MimeType: a.MimeType,
			Filename: a.Filename,
		}
		if a.Kind == mailattachment.KindText && a.TextContent != nil {
			att.Text = *a.TextContent
		}
		if a.Kind == mailattachment.KindImage && a.BinaryContent != nil {
			att.Data = base64.StdEncoding.EncodeToString(*a.BinaryContent)
		}
		out.Attachments = append(out.Attachments, att)
	}
	return out
}
