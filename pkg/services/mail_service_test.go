package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/pkg/database"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain line", "Remind me to water the plants", "Remind me to water the plants"},
		{"first non-empty line wins", "\n\n  \nsecond paragraph here\nmore", "second paragraph here"},
		{"markdown stripped", "# **Remind me** to _water_ the `plants`", "Remind me to water the plants"},
		{"quote and list markers stripped", "> - item one", "item one"},
		{"whitespace collapsed", "too    many   spaces", "too many spaces"},
		{"empty content", "   \n\n  ", ""},
		{"trailing body ignored", "Remind me to buy milk\n\nThanks", "Remind me to buy milk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.content))
		})
	}

	t.Run("long line truncates with ellipsis", func(t *testing.T) {
		long := strings.Repeat("word ", 40)
		got := DeriveTitle(long)
		runes := []rune(got)
		assert.Len(t, runes, maxDerivedTitleLen)
		assert.Equal(t, '…', runes[len(runes)-1])
	})
}

func TestEstimateTokens(t *testing.T) {
	mk := func(contents ...string) []*ent.MailReply {
		out := make([]*ent.MailReply, 0, len(contents))
		for _, c := range contents {
			out = append(out, &ent.MailReply{Content: c})
		}
		return out
	}

	assert.Equal(t, 0, EstimateTokens(nil))
	assert.Equal(t, 1, EstimateTokens(mk("abcd")))
	assert.Equal(t, 2, EstimateTokens(mk("abcde")), "ceil division")
	assert.Equal(t, 2, EstimateTokens(mk("abcd", "efgh")))
	assert.Equal(t, 1, EstimateTokens(mk("héll")), "runes, not bytes")
}

func setupTestMailService(t *testing.T, client *database.Client) *MailService {
	t.Helper()
	orders := NewOrderService(client.Client, NewArticleService(client.Client))
	return NewMailService(client.Client, orders)
}

func TestMailService_CreateThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestMailService(t, client)
	ctx := context.Background()

	t.Run("creates thread, reply, and order", func(t *testing.T) {
		sub, err := svc.CreateThread(ctx, "", "How do leases work?", "")
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ThreadUID)
		assert.NotZero(t, sub.UserReplyID)
		assert.NotZero(t, sub.OrderID)

		thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.False(t, thread.UserSetTitle)

		order, err := client.GenerationOrder.Get(ctx, sub.OrderID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.KindMailReply, order.Kind)
		assert.Equal(t, sub.ThreadUID, order.RequestPayload["threadUid"])
	})

	t.Run("explicit title pins the thread", func(t *testing.T) {
		sub, err := svc.CreateThread(ctx, "My title", "content", "")
		require.NoError(t, err)
		thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.True(t, thread.UserSetTitle)
		assert.Equal(t, "My title", thread.Title)
	})

	t.Run("requested model travels in the payload", func(t *testing.T) {
		sub, err := svc.CreateThread(ctx, "", "content", "fancy-model")
		require.NoError(t, err)
		order, err := client.GenerationOrder.Get(ctx, sub.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "fancy-model", order.RequestPayload["requestedModel"])
	})

	t.Run("blank content rejected", func(t *testing.T) {
		_, err := svc.CreateThread(ctx, "", "   ", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestMailService_Replies(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestMailService(t, client)
	ctx := context.Background()

	sub, err := svc.CreateThread(ctx, "", "first message", "")
	require.NoError(t, err)
	thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
	require.NoError(t, err)

	t.Run("append user reply enqueues a new order", func(t *testing.T) {
		next, err := svc.AppendUserReply(ctx, sub.ThreadUID, "second message", "")
		require.NoError(t, err)
		assert.Equal(t, sub.ThreadUID, next.ThreadUID)
		assert.NotEqual(t, sub.OrderID, next.OrderID)
	})

	t.Run("assistant reply arrives unread", func(t *testing.T) {
		reply, err := svc.AppendAssistantReply(ctx, thread.ID, "here is the answer")
		require.NoError(t, err)
		assert.Equal(t, mailreply.RoleAssistant, reply.Role)
		assert.True(t, reply.Unread)

		unread, err := svc.UnreadCount(ctx, thread.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, unread)
	})

	t.Run("history is oldest first", func(t *testing.T) {
		history, err := svc.RepliesAscending(ctx, thread.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, "first message", history[0].Content)
		assert.Equal(t, mailreply.RoleAssistant, history[2].Role)
	})

	t.Run("get thread eager-loads attachments", func(t *testing.T) {
		history, err := svc.RepliesAscending(ctx, thread.ID)
		require.NoError(t, err)
		last := history[len(history)-1]
		_, err = svc.AddTextAttachment(ctx, last.ID, "notes.txt", "attached text")
		require.NoError(t, err)

		view, err := svc.GetThread(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.Equal(t, 1, view.UnreadCount)
		require.Len(t, view.Replies, 3)
		require.Len(t, view.Replies[2].Edges.Attachments, 1)
		require.NotNil(t, view.Replies[2].Edges.Attachments[0].TextContent)
		assert.Equal(t, "attached text", *view.Replies[2].Edges.Attachments[0].TextContent)
	})

	t.Run("unknown thread uid", func(t *testing.T) {
		_, err := svc.GetThread(ctx, "no-such-uid")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMailService_Titles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestMailService(t, client)
	ctx := context.Background()

	t.Run("derived title applies to untitled threads", func(t *testing.T) {
		sub, err := svc.CreateThread(ctx, "", "Remind me to water the plants\n\nThanks", "")
		require.NoError(t, err)
		thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)

		changed, err := svc.SetDerivedTitle(ctx, thread.ID, DeriveTitle("Remind me to water the plants\n\nThanks"))
		require.NoError(t, err)
		assert.True(t, changed)

		got, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.Equal(t, "Remind me to water the plants", got.Title)
	})

	t.Run("user-set title wins", func(t *testing.T) {
		sub, err := svc.CreateThread(ctx, "Pinned", "whatever content", "")
		require.NoError(t, err)
		thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)

		changed, err := svc.SetDerivedTitle(ctx, thread.ID, "derived")
		require.NoError(t, err)
		assert.False(t, changed)

		got, err := svc.ThreadByUID(ctx, sub.ThreadUID)
		require.NoError(t, err)
		assert.Equal(t, "Pinned", got.Title)
	})
}

func TestMailService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestMailService(t, client)
	ctx := context.Background()

	sub, err := svc.CreateThread(ctx, "", "long conversation", "")
	require.NoError(t, err)
	thread, err := svc.ThreadByUID(ctx, sub.ThreadUID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSummary(ctx, thread.ID, "summary text", 1200, sub.UserReplyID))

	got, err := svc.ThreadByUID(ctx, sub.ThreadUID)
	require.NoError(t, err)
	assert.Equal(t, "summary text", got.ContextSummary)
	assert.Equal(t, 1200, got.SummaryTokenCount)
	assert.Equal(t, sub.UserReplyID, got.LastSummarizedReplyID)
}
