package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// notifyLimit is the usable size of a NOTIFY payload. PostgreSQL caps
// payloads at 8000 bytes; the margin covers envelope fields.
const notifyLimit = 7900

// Publisher appends events to the order_events table and broadcasts them
// via NOTIFY in the same transaction. The insert computes the next dense
// per-channel seq, so the returned seq is the client resume cursor.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database.Client's *sql.DB.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Emit persists the payload on channel and notifies listeners, returning
// the assigned seq. orderID 0 means the event has no owning order (mail
// metadata events). The unique (channel, seq) index can race with another
// writer on the same channel; that conflict is retried once.
func (p *Publisher) Emit(ctx context.Context, channel string, orderID int, payload Payload) (int, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s payload: %w", payload.EventType(), err)
	}

	seq, err := p.insertAndNotify(ctx, channel, orderID, payload.EventType(), payloadJSON)
	if isUniqueViolation(err) {
		seq, err = p.insertAndNotify(ctx, channel, orderID, payload.EventType(), payloadJSON)
	}
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (p *Publisher) insertAndNotify(ctx context.Context, channel string, orderID int, eventType string, payloadJSON []byte) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var orderIDArg any
	if orderID > 0 {
		orderIDArg = orderID
	}

	var seq int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO order_events (channel, order_id, seq, event_type, payload, created_at)
		 VALUES ($1, $2, COALESCE((SELECT MAX(seq) FROM order_events WHERE channel = $1), 0) + 1, $3, $4, $5)
		 RETURNING seq`,
		channel, orderIDArg, eventType, payloadJSON, time.Now(),
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := buildEnvelope(channel, seq, eventType, payloadJSON)
	if err != nil {
		return 0, err
	}

	// pg_notify inside the tx: held until COMMIT, so listeners never see
	// an event before it is durable.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return seq, nil
}

// buildEnvelope wraps the payload with routing fields for NOTIFY delivery.
// Oversized envelopes collapse to a routing stub; the subscriber refetches
// the full row by (channel, seq).
func buildEnvelope(channel string, seq int, eventType string, payloadJSON []byte) (string, error) {
	var fields map[string]any
	if err := json.Unmarshal(payloadJSON, &fields); err != nil {
		return "", fmt.Errorf("failed to decode payload for envelope: %w", err)
	}
	fields["type"] = eventType
	fields["seq"] = seq

	envelope, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY envelope: %w", err)
	}
	if len(envelope) <= notifyLimit {
		return string(envelope), nil
	}

	stub, err := json.Marshal(map[string]any{
		"type":      eventType,
		"channel":   channel,
		"seq":       seq,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated envelope: %w", err)
	}
	return string(stub), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
