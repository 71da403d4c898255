// Package events provides durable event publication and real-time delivery.
//
// Every event is appended to the order_events table with a per-channel dense
// sequence number, then broadcast via PostgreSQL NOTIFY in the same
// transaction (NOTIFY is transactional and fires on COMMIT). Clients that
// reconnect replay persisted events by seq and then continue live, so the
// durable append always happens before any fan-out.
package events

import "strconv"

// Search order event types.
const (
	EventTypeOrderStarted    = "order.started"
	EventTypeOrderProgress   = "order.progress"
	EventTypeIntentUpserted  = "intent.upserted"
	EventTypeArticleUpserted = "article.upserted"
	EventTypeOrderCompleted  = "order.completed"
	EventTypeOrderFailed     = "order.failed"
)

// Mail order event types.
const (
	EventTypeMailJobStarted    = "mail.job.started"
	EventTypeMailReplyCreated  = "mail.reply.created"
	EventTypeMailThreadUpdated = "mail.thread.updated"
	EventTypeMailUnreadChanged = "mail.unread.changed"
	EventTypeMailJobCompleted  = "mail.job.completed"
	EventTypeMailJobFailed     = "mail.job.failed"
)

// Pipeline stages reported by order.progress.
const (
	StageOrder   = "order"
	StageSpell   = "spell"
	StageIntent  = "intent"
	StageArticle = "article"
)

// OrderChannel returns the event channel for one search order. Each order
// gets its own channel, so seq runs dense from 1 per order and a terminal
// event never leaks into a later order's stream. Format: "order:{orderId}".
func OrderChannel(orderID int) string {
	return "order:" + strconv.Itoa(orderID)
}

// MailChannel returns the event channel for a mail thread.
// Format: "mail:{threadUid}".
func MailChannel(threadUID string) string {
	return "mail:" + threadUID
}

// IsTerminal reports whether an event type ends its stream. SSE handlers
// close the response after writing a terminal event.
func IsTerminal(eventType string) bool {
	switch eventType {
	case EventTypeOrderCompleted, EventTypeOrderFailed,
		EventTypeMailJobCompleted, EventTypeMailJobFailed:
		return true
	}
	return false
}
