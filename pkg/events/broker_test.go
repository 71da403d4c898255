package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_SubscribeAndDispatch(t *testing.T) {
	b := NewBroker()

	ch, unsub, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	defer unsub()

	b.Dispatch("order:1", []byte(`{"type":"order.started","seq":1,"orderId":7}`))

	n := <-ch
	assert.Equal(t, "order:1", n.Channel)
	assert.Equal(t, 1, n.Seq)
	assert.Equal(t, "order.started", n.Type)
	assert.False(t, n.Truncated)

	var body map[string]any
	require.NoError(t, json.Unmarshal(n.Data, &body))
	assert.Equal(t, float64(7), body["orderId"])
}

func TestBroker_ChannelIsolation(t *testing.T) {
	b := NewBroker()

	ch1, unsub1, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	defer unsub1()
	ch2, unsub2, err := b.Subscribe(context.Background(), "order:2")
	require.NoError(t, err)
	defer unsub2()

	b.Dispatch("order:2", []byte(`{"type":"order.started","seq":1}`))

	select {
	case n := <-ch2:
		assert.Equal(t, "order:2", n.Channel)
	default:
		t.Fatal("subscriber of order:2 received nothing")
	}
	select {
	case <-ch1:
		t.Fatal("subscriber of order:1 received a foreign event")
	default:
	}
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()

	ch, unsub, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	assert.Equal(t, 1, b.SubscriberCount("order:1"))

	unsub()
	assert.Equal(t, 0, b.SubscriberCount("order:1"))

	_, open := <-ch
	assert.False(t, open, "delivery channel closed on unsubscribe")

	// Idempotent.
	unsub()
}

func TestBroker_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroker()

	ch, unsub, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	defer unsub()

	// Fill the buffer and keep going; the overflow is dropped, not blocked.
	for i := 1; i <= subscriberBuffer+10; i++ {
		b.Dispatch("order:1", []byte(`{"type":"order.progress","seq":1}`))
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestBroker_DropsUndecodablePayload(t *testing.T) {
	b := NewBroker()

	ch, unsub, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	defer unsub()

	b.Dispatch("order:1", []byte("not json"))

	select {
	case <-ch:
		t.Fatal("undecodable payload was delivered")
	default:
	}
}

func TestBroker_TruncatedFlagPropagates(t *testing.T) {
	b := NewBroker()

	ch, unsub, err := b.Subscribe(context.Background(), "order:1")
	require.NoError(t, err)
	defer unsub()

	b.Dispatch("order:1", []byte(`{"type":"article.upserted","seq":9,"truncated":true}`))

	n := <-ch
	assert.True(t, n.Truncated)
	assert.Equal(t, 9, n.Seq)
}
