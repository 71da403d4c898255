package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/orderevent"
)

// DefaultCatchupLimit bounds one replay page.
const DefaultCatchupLimit = 500

// StoredEvent is a persisted event row projected for replay.
type StoredEvent struct {
	Seq       int            `json:"seq"`
	Type      string         `json:"type"`
	OrderID   *int           `json:"orderId,omitempty"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EventService reads the append-only event log for SSE replay and for
// refetching events whose NOTIFY envelope was truncated.
type EventService struct {
	db *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(db *ent.Client) *EventService {
	return &EventService{db: db}
}

// GetCatchupEvents returns events on channel with seq > afterSeq, ordered
// by seq ascending, at most limit rows.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, afterSeq, limit int) ([]StoredEvent, error) {
	if limit <= 0 || limit > DefaultCatchupLimit {
		limit = DefaultCatchupLimit
	}
	rows, err := s.db.OrderEvent.Query().
		Where(orderevent.Channel(channel), orderevent.SeqGT(afterSeq)).
		Order(ent.Asc(orderevent.FieldSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catchup events: %w", err)
	}

	out := make([]StoredEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectEvent(row))
	}
	return out, nil
}

// GetEvent returns the single event at (channel, seq).
func (s *EventService) GetEvent(ctx context.Context, channel string, seq int) (*StoredEvent, error) {
	row, err := s.db.OrderEvent.Query().
		Where(orderevent.Channel(channel), orderevent.Seq(seq)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s/%d: %w", channel, seq, err)
	}
	ev := projectEvent(row)
	return &ev, nil
}

// MaxSeq returns the highest seq on channel, 0 when the channel is empty.
func (s *EventService) MaxSeq(ctx context.Context, channel string) (int, error) {
	row, err := s.db.OrderEvent.Query().
		Where(orderevent.Channel(channel)).
		Order(ent.Desc(orderevent.FieldSeq)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read max seq: %w", err)
	}
	return row.Seq, nil
}

func projectEvent(row *ent.OrderEvent) StoredEvent {
	payload := row.Payload
	if payload == nil {
		// Tolerant replay: a row with an unreadable payload still surfaces
		// with its type and seq so the client cursor can advance.
		payload = map[string]any{}
	}
	return StoredEvent{
		Seq:       row.Seq,
		Type:      row.EventType,
		OrderID:   row.OrderID,
		Payload:   payload,
		CreatedAt: row.CreatedAt,
	}
}
