package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/services"
	testdb "github.com/lumenlabs/lumen/test/database"
)

type mailFixture struct {
	executor *MailExecutor
	mail     *services.MailService
	settings *services.SettingsService
	events   *services.EventService
}

func newMailFixture(t *testing.T, client *database.Client) *mailFixture {
	t.Helper()
	provider := llm.NewStubProvider("test-model")
	llmExec := llm.NewExecutor(client.Client)
	settings := services.NewSettingsService(client.Client)
	orders := services.NewOrderService(client.Client, services.NewArticleService(client.Client))
	mail := services.NewMailService(client.Client, orders)
	publisher := events.NewPublisher(client.DB())

	return &mailFixture{
		executor: NewMailExecutor(provider, llmExec, settings, mail, orders, publisher),
		mail:     mail,
		settings: settings,
		events:   services.NewEventService(client.Client),
	}
}

func claimMailOrder(t *testing.T, client *database.Client, orderID int) *ent.GenerationOrder {
	t.Helper()
	order, err := client.GenerationOrder.UpdateOneID(orderID).
		SetStatus(generationorder.StatusRunning).
		SetStartedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return order
}

func TestMailExecutor_Reply(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newMailFixture(t, client)
	ctx := context.Background()

	sub, err := fx.mail.CreateThread(ctx, "", "How do leases expire?", "")
	require.NoError(t, err)
	order := claimMailOrder(t, client, sub.OrderID)

	result := fx.executor.Execute(ctx, order)
	require.NotNil(t, result)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Summary, "0 attachment(s)")

	t.Run("assistant reply stored unread", func(t *testing.T) {
		view, err := fx.mail.GetThread(ctx, sub.ThreadUID)
		require.NoError(t, err)
		require.Len(t, view.Replies, 2)
		last := view.Replies[1]
		assert.Equal(t, mailreply.RoleAssistant, last.Role)
		assert.Contains(t, last.Content, "How do leases expire?")
		assert.Equal(t, 1, view.UnreadCount)
	})

	t.Run("title derived from the user message", func(t *testing.T) {
		thread, err := fx.mail.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.Equal(t, "How do leases expire?", thread.Title)
		assert.False(t, thread.UserSetTitle)
	})

	t.Run("event stream ends with the terminal job event", func(t *testing.T) {
		evs, err := fx.events.GetCatchupEvents(ctx, events.MailChannel(sub.ThreadUID), 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 5)
		assert.Equal(t, []string{
			events.EventTypeMailJobStarted,
			events.EventTypeMailReplyCreated,
			events.EventTypeMailThreadUpdated,
			events.EventTypeMailUnreadChanged,
			events.EventTypeMailJobCompleted,
		}, eventTypes(evs))

		for i, ev := range evs {
			assert.Equal(t, i+1, ev.Seq)
		}
	})
}

func TestMailExecutor_Attachments(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newMailFixture(t, client)
	ctx := context.Background()

	sub, err := fx.mail.CreateThread(ctx, "", "Please include an attachment with notes", "")
	require.NoError(t, err)
	order := claimMailOrder(t, client, sub.OrderID)

	result := fx.executor.Execute(ctx, order)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Summary, "1 attachment(s)")

	view, err := fx.mail.GetThread(ctx, sub.ThreadUID)
	require.NoError(t, err)
	require.Len(t, view.Replies, 2)
	atts := view.Replies[1].Edges.Attachments
	require.Len(t, atts, 1)
	assert.Equal(t, "notes.txt", atts[0].Filename)
}

func TestMailExecutor_AttachmentCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newMailFixture(t, client)
	ctx := context.Background()

	require.NoError(t, fx.settings.Set(ctx, services.SettingMailAttachMaxCount, "0"))

	sub, err := fx.mail.CreateThread(ctx, "", "Please include an attachment with notes", "")
	require.NoError(t, err)
	order := claimMailOrder(t, client, sub.OrderID)

	result := fx.executor.Execute(ctx, order)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Summary, "0 attachment(s)")
}

func TestMailExecutor_Summarization(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newMailFixture(t, client)
	ctx := context.Background()

	// Trigger at one token so any history qualifies.
	require.NoError(t, fx.settings.Set(ctx, services.SettingMailSummaryTriggerToks, "1"))

	sub, err := fx.mail.CreateThread(ctx, "", "summarize this long exchange", "")
	require.NoError(t, err)
	order := claimMailOrder(t, client, sub.OrderID)

	result := fx.executor.Execute(ctx, order)
	require.NoError(t, result.Err)

	thread, err := fx.mail.ThreadByUID(ctx, sub.ThreadUID)
	require.NoError(t, err)
	assert.Contains(t, thread.ContextSummary, "Conversation with 1 messages")
	assert.Positive(t, thread.SummaryTokenCount)
	assert.Equal(t, sub.UserReplyID, thread.LastSummarizedReplyID)
}

func TestMailExecutor_Failures(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newMailFixture(t, client)
	ctx := context.Background()

	t.Run("payload without threadUid", func(t *testing.T) {
		order, err := client.GenerationOrder.Create().
			SetKind(generationorder.KindMailReply).
			SetStatus(generationorder.StatusRunning).
			SetRequestedBy(generationorder.RequestedByUser).
			SetRequestPayload(map[string]any{}).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		result := fx.executor.Execute(ctx, order)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "no threadUid")
	})

	t.Run("unknown thread emits the failure event", func(t *testing.T) {
		order, err := client.GenerationOrder.Create().
			SetKind(generationorder.KindMailReply).
			SetStatus(generationorder.StatusRunning).
			SetRequestedBy(generationorder.RequestedByUser).
			SetRequestPayload(map[string]any{"threadUid": "ghost-thread"}).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		result := fx.executor.Execute(ctx, order)
		require.Error(t, result.Err)

		evs, err := fx.events.GetCatchupEvents(ctx, events.MailChannel("ghost-thread"), 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 1)
		assert.Equal(t, events.EventTypeMailJobFailed, evs[0].Type)
	})
}
