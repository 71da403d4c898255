package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/pkg/database"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func insertTestEvent(t *testing.T, client *database.Client, channel string, seq int, eventType string, payload map[string]any) {
	t.Helper()
	create := client.OrderEvent.Create().
		SetChannel(channel).
		SetSeq(seq).
		SetEventType(eventType)
	if payload != nil {
		create.SetPayload(payload)
	}
	require.NoError(t, create.Exec(context.Background()))
}

func TestEventService_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	for seq := 1; seq <= 5; seq++ {
		insertTestEvent(t, client, "order:1", seq, "progress", map[string]any{"step": seq})
	}
	insertTestEvent(t, client, "order:2", 1, "order.started", nil)

	t.Run("returns the channel in seq order", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, "order:1", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 5)
		for i, ev := range got {
			assert.Equal(t, i+1, ev.Seq)
			assert.Equal(t, "progress", ev.Type)
		}
	})

	t.Run("afterSeq skips the prefix", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, "order:1", 3, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 4, got[0].Seq)
		assert.Equal(t, 5, got[1].Seq)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, "order:1", 0, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[1].Seq)
	})

	t.Run("channels do not bleed", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, "order:2", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "order.started", got[0].Type)
	})

	t.Run("empty channel", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, "order:999", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	insertTestEvent(t, client, "order:7", 1, "order.completed", map[string]any{"orderId": float64(7)})
	insertTestEvent(t, client, "order:7", 2, "order.failed", nil)

	t.Run("found", func(t *testing.T) {
		ev, err := svc.GetEvent(ctx, "order:7", 1)
		require.NoError(t, err)
		assert.Equal(t, "order.completed", ev.Type)
		assert.Equal(t, float64(7), ev.Payload["orderId"])
	})

	t.Run("nil payload projects as empty map", func(t *testing.T) {
		ev, err := svc.GetEvent(ctx, "order:7", 2)
		require.NoError(t, err)
		require.NotNil(t, ev.Payload)
		assert.Empty(t, ev.Payload)
	})

	t.Run("missing seq", func(t *testing.T) {
		_, err := svc.GetEvent(ctx, "order:7", 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventService_MaxSeq(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("empty channel is zero", func(t *testing.T) {
		seq, err := svc.MaxSeq(ctx, "mail:empty")
		require.NoError(t, err)
		assert.Equal(t, 0, seq)
	})

	t.Run("returns the highest seq", func(t *testing.T) {
		insertTestEvent(t, client, "mail:abc", 1, "mail.job.started", nil)
		insertTestEvent(t, client, "mail:abc", 2, "mail.job.completed", nil)

		seq, err := svc.MaxSeq(ctx, "mail:abc")
		require.NoError(t, err)
		assert.Equal(t, 2, seq)
	})
}
