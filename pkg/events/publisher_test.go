package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/test/util"
)

func TestBuildEnvelope(t *testing.T) {
	t.Run("injects type and seq", func(t *testing.T) {
		payload, err := json.Marshal(OrderStartedPayload{OrderID: 3, QueryID: 1, Kind: "query_full"})
		require.NoError(t, err)

		envelope, err := buildEnvelope("order:1", 5, EventTypeOrderStarted, payload)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal([]byte(envelope), &fields))
		assert.Equal(t, EventTypeOrderStarted, fields["type"])
		assert.Equal(t, float64(5), fields["seq"])
		assert.Equal(t, float64(3), fields["orderId"])
		assert.NotContains(t, fields, "truncated")
	})

	t.Run("oversized payload collapses to routing stub", func(t *testing.T) {
		big, err := json.Marshal(map[string]any{"content": strings.Repeat("x", notifyLimit+100)})
		require.NoError(t, err)

		envelope, err := buildEnvelope("order:1", 7, EventTypeArticleUpserted, big)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(envelope), notifyLimit)

		var fields map[string]any
		require.NoError(t, json.Unmarshal([]byte(envelope), &fields))
		assert.Equal(t, EventTypeArticleUpserted, fields["type"])
		assert.Equal(t, "order:1", fields["channel"])
		assert.Equal(t, float64(7), fields["seq"])
		assert.Equal(t, true, fields["truncated"])
		assert.NotContains(t, fields, "content")
	})
}

func TestPublisher_Emit(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	p := NewPublisher(db)
	ctx := context.Background()

	t.Run("assigns dense per-channel seq", func(t *testing.T) {
		seq1, err := p.Emit(ctx, "order:1", 0, OrderProgressPayload{OrderID: 1, QueryID: 1, Stage: StageIntent})
		require.NoError(t, err)
		seq2, err := p.Emit(ctx, "order:1", 0, OrderProgressPayload{OrderID: 1, QueryID: 1, Stage: StageArticle})
		require.NoError(t, err)
		assert.Equal(t, 1, seq1)
		assert.Equal(t, 2, seq2)

		// Another channel starts its own sequence.
		seqOther, err := p.Emit(ctx, "order:2", 0, OrderProgressPayload{OrderID: 2, QueryID: 2, Stage: StageIntent})
		require.NoError(t, err)
		assert.Equal(t, 1, seqOther)
	})

	t.Run("persists event rows", func(t *testing.T) {
		var count int
		err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM order_events WHERE channel = $1", "order:1").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var eventType string
		var payload []byte
		err = db.QueryRowContext(ctx,
			"SELECT event_type, payload FROM order_events WHERE channel = $1 AND seq = 1", "order:1").
			Scan(&eventType, &payload)
		require.NoError(t, err)
		assert.Equal(t, EventTypeOrderProgress, eventType)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(payload, &fields))
		assert.Equal(t, StageIntent, fields["stage"])
	})
}
