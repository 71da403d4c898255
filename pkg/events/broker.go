package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Notification is one event as delivered to an in-process subscriber.
// Data is the full NOTIFY envelope (payload fields plus type and seq).
// Truncated notifications carry routing fields only; the subscriber
// refetches the row by (channel, seq).
type Notification struct {
	Channel   string
	Seq       int
	Type      string
	Truncated bool
	Data      []byte
}

const subscriberBuffer = 32

// Broker fans NOTIFY traffic out to in-process subscribers (the SSE
// handlers). It reference-counts channels against the NotifyListener:
// LISTEN on first subscriber, UNLISTEN on last.
//
// Delivery is non-blocking. A subscriber that cannot keep up drops events;
// the SSE handler recovers by replaying from its last delivered seq.
type Broker struct {
	mu       sync.Mutex
	subs     map[string]map[int]chan Notification
	nextID   int
	listener *NotifyListener
}

// NewBroker creates a Broker with no listener bound. Bind attaches one;
// tests drive Dispatch directly.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[int]chan Notification)}
}

// Bind attaches the NOTIFY listener used for channel subscriptions.
func (b *Broker) Bind(l *NotifyListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listener = l
}

// Subscribe registers a subscriber for channel and returns its delivery
// channel plus an idempotent unsubscribe func. The delivery channel is
// closed on unsubscribe.
func (b *Broker) Subscribe(ctx context.Context, channel string) (<-chan Notification, func(), error) {
	ch := make(chan Notification, subscriberBuffer)

	b.mu.Lock()
	set, ok := b.subs[channel]
	if !ok {
		set = make(map[int]chan Notification)
		b.subs[channel] = set
	}
	b.nextID++
	id := b.nextID
	set[id] = ch
	first := len(set) == 1
	listener := b.listener
	b.mu.Unlock()

	if first && listener != nil {
		if err := listener.Listen(ctx, channel); err != nil {
			b.remove(channel, id)
			return nil, nil, err
		}
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			last := b.remove(channel, id)
			if last && listener != nil {
				// Shutdown-tolerant; the listener ignores unknown channels.
				if err := listener.Unlisten(context.Background(), channel); err != nil {
					slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
				}
			}
		})
	}
	return ch, unsubscribe, nil
}

// remove drops one subscriber and reports whether the channel is now empty.
func (b *Broker) remove(channel string, id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	set, ok := b.subs[channel]
	if !ok {
		return false
	}
	ch, ok := set[id]
	if !ok {
		return false
	}
	delete(set, id)
	close(ch)
	if len(set) == 0 {
		delete(b.subs, channel)
		return true
	}
	return false
}

// Dispatch parses a raw NOTIFY envelope and delivers it to every
// subscriber of channel. Called by the NotifyListener's receive goroutine.
func (b *Broker) Dispatch(channel string, raw []byte) {
	var envelope struct {
		Type      string `json:"type"`
		Seq       int    `json:"seq"`
		Truncated bool   `json:"truncated"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		slog.Warn("Dropping undecodable NOTIFY payload", "channel", channel, "error", err)
		return
	}

	n := Notification{
		Channel:   channel,
		Seq:       envelope.Seq,
		Type:      envelope.Type,
		Truncated: envelope.Truncated,
		Data:      raw,
	}

	dropped := 0
	b.mu.Lock()
	for _, ch := range b.subs[channel] {
		select {
		case ch <- n:
		default:
			dropped++
		}
	}
	b.mu.Unlock()

	if dropped > 0 {
		slog.Warn("Dropped event for slow subscribers",
			"channel", channel, "seq", n.Seq, "type", n.Type, "dropped", dropped)
	}
}

// SubscriberCount reports active subscribers for a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[channel])
}
