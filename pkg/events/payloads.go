package events

// Payload is implemented by every typed event payload. The event type is
// stored in its own column and injected into the NOTIFY envelope; payload
// JSON carries only the event fields.
type Payload interface {
	EventType() string
}

// OrderStartedPayload announces the queued → running transition.
type OrderStartedPayload struct {
	OrderID  int    `json:"orderId"`
	QueryID  int    `json:"queryId"`
	Kind     string `json:"kind"`
	IntentID *int   `json:"intentId,omitempty"`
}

func (OrderStartedPayload) EventType() string { return EventTypeOrderStarted }

// OrderProgressPayload marks entry into a pipeline stage.
type OrderProgressPayload struct {
	OrderID int    `json:"orderId"`
	QueryID int    `json:"queryId"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func (OrderProgressPayload) EventType() string { return EventTypeOrderProgress }

// IntentRef is the intent projection carried by intent.upserted.
type IntentRef struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// IntentUpsertedPayload is emitted once per resolved intent row.
type IntentUpsertedPayload struct {
	OrderID int       `json:"orderId"`
	QueryID int       `json:"queryId"`
	Intent  IntentRef `json:"intent"`
}

func (IntentUpsertedPayload) EventType() string { return EventTypeIntentUpserted }

// ArticleRef is the article projection carried by article.upserted.
type ArticleRef struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary,omitempty"`
}

// ArticleUpsertedPayload is emitted after each article write.
type ArticleUpsertedPayload struct {
	OrderID  int        `json:"orderId"`
	QueryID  int        `json:"queryId"`
	IntentID int        `json:"intentId"`
	Article  ArticleRef `json:"article"`
}

func (ArticleUpsertedPayload) EventType() string { return EventTypeArticleUpserted }

// OrderCompletedPayload is the terminal success event.
type OrderCompletedPayload struct {
	OrderID       int    `json:"orderId"`
	QueryID       int    `json:"queryId"`
	Status        string `json:"status"`
	ResultSummary string `json:"resultSummary,omitempty"`
}

func (OrderCompletedPayload) EventType() string { return EventTypeOrderCompleted }

// OrderFailedPayload is the terminal failure event. Emitted before the
// status row flips to failed so subscribers never observe a terminal status
// without its event.
type OrderFailedPayload struct {
	OrderID int    `json:"orderId"`
	QueryID int    `json:"queryId"`
	Message string `json:"message"`
}

func (OrderFailedPayload) EventType() string { return EventTypeOrderFailed }

// MailJobStartedPayload announces a mail_reply order starting.
type MailJobStartedPayload struct {
	OrderID   int    `json:"orderId"`
	ThreadUID string `json:"threadUid"`
}

func (MailJobStartedPayload) EventType() string { return EventTypeMailJobStarted }

// MailReplyRef is the reply projection carried by mail.reply.created.
type MailReplyRef struct {
	ID              int    `json:"id"`
	Role            string `json:"role"`
	Content         string `json:"content"`
	Status          string `json:"status"`
	AttachmentCount int    `json:"attachmentCount"`
}

// MailReplyCreatedPayload is emitted when the assistant reply is persisted.
type MailReplyCreatedPayload struct {
	ThreadUID string       `json:"threadUid"`
	Reply     MailReplyRef `json:"reply"`
}

func (MailReplyCreatedPayload) EventType() string { return EventTypeMailReplyCreated }

// MailThreadUpdatedPayload reports thread metadata changes (title, summary).
type MailThreadUpdatedPayload struct {
	ThreadUID         string `json:"threadUid"`
	Title             string `json:"title"`
	SummaryTokenCount int    `json:"summaryTokenCount,omitempty"`
}

func (MailThreadUpdatedPayload) EventType() string { return EventTypeMailThreadUpdated }

// MailUnreadChangedPayload carries refreshed unread counts for a thread.
type MailUnreadChangedPayload struct {
	ThreadUID   string `json:"threadUid"`
	UnreadCount int    `json:"unreadCount"`
}

func (MailUnreadChangedPayload) EventType() string { return EventTypeMailUnreadChanged }

// MailJobCompletedPayload is the terminal success event for a mail order.
type MailJobCompletedPayload struct {
	OrderID   int    `json:"orderId"`
	ThreadUID string `json:"threadUid"`
	ReplyID   int    `json:"replyId"`
}

func (MailJobCompletedPayload) EventType() string { return EventTypeMailJobCompleted }

// MailJobFailedPayload is the terminal failure event for a mail order.
type MailJobFailedPayload struct {
	OrderID   int    `json:"orderId"`
	ThreadUID string `json:"threadUid"`
	Error     string `json:"error"`
}

func (MailJobFailedPayload) EventType() string { return EventTypeMailJobFailed }
