package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/services"
)

// heartbeatInterval paces SSE keepalive comments so idle connections
// survive proxies.
const heartbeatInterval = 15 * time.Second

// handleOrderStream answers GET /api/orders/:id/stream. Each order has its
// own channel; the stream replays that order's log from seq 1 and closes on
// its terminal event.
func (s *Server) handleOrderStream(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	// Mail orders publish on the thread channel, not an order channel.
	if order.QueryID == nil {
		respondError(c, fmt.Errorf("order %d has no order channel: %w", id, services.ErrNotFound))
		return
	}
	s.streamChannel(c, events.OrderChannel(order.ID))
}

// handleMailStream answers GET /api/mail/thread/:uid/stream.
func (s *Server) handleMailStream(c *gin.Context) {
	thread, err := s.mail.ThreadByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	s.streamChannel(c, events.MailChannel(thread.UID))
}

// streamChannel serves one SSE connection: subscribe first, replay the
// persisted log past the client's cursor, then forward live notifications.
// Subscribing before replay closes the window where an event lands between
// the catchup read and the first live delivery; duplicates are filtered by
// seq instead.
func (s *Server) streamChannel(c *gin.Context, channel string) {
	ctx := c.Request.Context()

	notifications, unsubscribe, err := s.broker.Subscribe(ctx, channel)
	if err != nil {
		respondError(c, fmt.Errorf("failed to subscribe to %s: %w", channel, err))
		return
	}
	defer unsubscribe()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	lastSeq, lastType, err := s.replay(c, channel, resumeCursor(c))
	if err != nil {
		slog.Warn("SSE replay aborted", "channel", channel, "error", err)
		return
	}
	if events.IsTerminal(lastType) {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()

		case n, open := <-notifications:
			if !open {
				return
			}
			if n.Seq <= lastSeq {
				continue
			}
			if n.Seq > lastSeq+1 {
				// The broker dropped events for us; refill from the log.
				var refillType string
				lastSeq, refillType, err = s.replay(c, channel, lastSeq)
				if err != nil {
					return
				}
				if events.IsTerminal(refillType) {
					return
				}
				if n.Seq <= lastSeq {
					continue
				}
			}

			data := n.Data
			if n.Truncated {
				data, err = s.refetch(c, channel, n.Seq)
				if err != nil {
					slog.Warn("Failed to refetch truncated event",
						"channel", channel, "seq", n.Seq, "error", err)
					continue
				}
			}
			if err := writeFrame(c, n.Seq, n.Type, data); err != nil {
				return
			}
			lastSeq = n.Seq
			if events.IsTerminal(n.Type) {
				return
			}
		}
	}
}

// replay streams persisted events with seq > afterSeq and returns the last
// seq and event type written (afterSeq and "" when the log holds nothing
// newer). The caller closes the stream when the replayed range ends on a
// terminal event.
func (s *Server) replay(c *gin.Context, channel string, afterSeq int) (int, string, error) {
	ctx := c.Request.Context()
	lastSeq := afterSeq
	lastType := ""
	for {
		page, err := s.events.GetCatchupEvents(ctx, channel, lastSeq, services.DefaultCatchupLimit)
		if err != nil {
			return lastSeq, lastType, err
		}
		for _, ev := range page {
			data, err := encodeStored(ev)
			if err != nil {
				return lastSeq, lastType, err
			}
			if err := writeFrame(c, ev.Seq, ev.Type, data); err != nil {
				return lastSeq, lastType, err
			}
			lastSeq = ev.Seq
			lastType = ev.Type
		}
		if len(page) < services.DefaultCatchupLimit {
			return lastSeq, lastType, nil
		}
	}
}

// refetch loads the full payload of an event whose NOTIFY envelope was
// truncated.
func (s *Server) refetch(c *gin.Context, channel string, seq int) ([]byte, error) {
	ev, err := s.events.GetEvent(c.Request.Context(), channel, seq)
	if err != nil {
		return nil, err
	}
	return encodeStored(*ev)
}

// encodeStored rebuilds the wire envelope for a persisted event: the stored
// payload with type and seq injected, matching what Publisher notifies.
func encodeStored(ev services.StoredEvent) ([]byte, error) {
	envelope := make(map[string]any, len(ev.Payload)+2)
	for k, v := range ev.Payload {
		envelope[k] = v
	}
	envelope["type"] = ev.Type
	envelope["seq"] = ev.Seq
	return json.Marshal(envelope)
}

// writeFrame emits one SSE event with the seq as its id.
func writeFrame(c *gin.Context, seq int, eventType string, data []byte) error {
	if _, err := fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", seq, eventType, data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// resumeCursor reads the client's replay cursor: the Last-Event-ID header
// from an automatic reconnect, or the lastEventId / afterSeq query params on
// a fresh connect. 0 replays the whole channel.
func resumeCursor(c *gin.Context) int {
	candidates := []string{
		c.GetHeader("Last-Event-ID"),
		c.Query("lastEventId"),
		c.Query("afterSeq"),
	}
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		if seq, err := strconv.Atoi(raw); err == nil && seq >= 0 {
			return seq
		}
	}
	return 0
}
