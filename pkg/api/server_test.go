package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/pkg/config"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/queue"
	"github.com/lumenlabs/lumen/pkg/services"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	provider := llm.NewStubProvider("test-model")
	llmExec := llm.NewExecutor(client.Client)
	settings := services.NewSettingsService(client.Client)
	queries := services.NewQueryService(client.Client, provider, llmExec, settings)
	articles := services.NewArticleService(client.Client)
	orders := services.NewOrderService(client.Client, articles)
	mail := services.NewMailService(client.Client, orders)
	leaseMgr := leases.NewManager(client.Client, time.Minute)
	worker := queue.NewWorker(client.Client, config.DefaultQueueConfig(), nil, leaseMgr, orders)

	server := NewServer(client, queries, orders, services.NewEventService(client.Client),
		mail, events.NewBroker(), worker)
	return server, client
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func submitQuery(t *testing.T, handler http.Handler, query string) int {
	t.Helper()
	rec, body := doJSON(t, handler, http.MethodPost, "/api/query",
		`{"query":`+jsonString(query)+`,"spellCorrectionMode":"off"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return int(body["queryId"].(float64))
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSubmitQueryEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	t.Run("accepts a query", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/query",
			`{"query":"sqlite fts5 filetype:go"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "sqlite fts5", body["query"])
		assert.Equal(t, "go", body["filetype"])
		assert.Equal(t, "en", body["language"])
		assert.NotZero(t, body["queryId"])
	})

	t.Run("missing query is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/query", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})

	t.Run("blank query is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/query", `{"query":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})
}

func TestOrderEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()
	queryID := submitQuery(t, handler, "sqlite fts5")
	qid := jsonInt(queryID)

	var orderID int
	t.Run("create order", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/orders",
			`{"kind":"query_full","queryId":`+qid+`}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "query_full", body["kind"])
		assert.Equal(t, "queued", body["status"])
		orderID = int(body["orderId"].(float64))
		require.NotZero(t, orderID)
	})

	t.Run("conflicting order is a 409 with the lock envelope", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/orders",
			`{"kind":"query_full","queryId":`+qid+`}`)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, CodeResourceLocked, body["code"])
		assert.Equal(t, float64(orderID), body["activeOrderId"])
		assert.Equal(t, "query", body["scope"])
	})

	t.Run("availability reflects the held scope", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet,
			"/api/orders/availability?kind=query_full&queryId="+qid, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["available"])
	})

	t.Run("list filters by status", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/orders?status=queued&queryId="+qid, "")
		require.Equal(t, http.StatusOK, rec.Code)
		orders := body["orders"].([]any)
		require.Len(t, orders, 1)
	})

	t.Run("get order", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/orders/"+jsonInt(orderID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		order := body["order"].(map[string]any)
		assert.Equal(t, float64(orderID), order["id"])
	})

	t.Run("order logs", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/orders/"+jsonInt(orderID)+"/logs", "")
		require.Equal(t, http.StatusOK, rec.Code)
		logs := body["logs"].([]any)
		require.NotEmpty(t, logs)
	})

	t.Run("cancel order", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/orders/"+jsonInt(orderID)+"/cancel", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		order := body["order"].(map[string]any)
		assert.Equal(t, "cancelled", order["status"])
	})

	t.Run("cancel again is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/orders/"+jsonInt(orderID)+"/cancel", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/orders/999999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeNotFound, body["code"])
	})

	t.Run("unknown kind is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/orders",
			`{"kind":"paint_query","queryId":`+qid+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})

	t.Run("non-numeric order id is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/orders/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})
}

func TestMailEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	var threadUID string
	t.Run("create thread", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/mail/thread",
			`{"content":"How do leases work?"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		threadUID = body["threadUid"].(string)
		require.NotEmpty(t, threadUID)
		assert.NotZero(t, body["jobId"])
	})

	t.Run("get thread", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/mail/thread/"+threadUID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, threadUID, body["uid"])
		replies := body["replies"].([]any)
		require.Len(t, replies, 1)
	})

	t.Run("append reply", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/mail/thread/"+threadUID+"/reply",
			`{"content":"And how do they expire?"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, threadUID, body["threadUid"])
	})

	t.Run("missing content is a bad request", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodPost, "/api/mail/thread", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeBadRequest, body["code"])
	})

	t.Run("unknown thread is a 404", func(t *testing.T) {
		rec, body := doJSON(t, handler, http.MethodGet, "/api/mail/thread/no-such-uid", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeNotFound, body["code"])
	})
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec, body := doJSON(t, server.Handler(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "healthy", body["status"])

	worker := body["worker"].(map[string]any)
	assert.Equal(t, "idle", worker["status"])
}

func TestOrderStreamReplay(t *testing.T) {
	server, client := newTestServer(t)
	ctx := context.Background()

	handler := server.Handler()
	queryID := submitQuery(t, handler, "stream test query")
	order, err := client.GenerationOrder.Create().
		SetKind(generationorder.KindQueryFull).
		SetStatus(generationorder.StatusCompleted).
		SetRequestedBy(generationorder.RequestedByUser).
		SetQueryID(queryID).
		Save(ctx)
	require.NoError(t, err)

	channel := events.OrderChannel(order.ID)
	seedEvent(t, client, channel, 1, events.EventTypeOrderStarted, map[string]any{"orderId": order.ID})
	seedEvent(t, client, channel, 2, events.EventTypeOrderProgress, map[string]any{"stage": "intent"})
	seedEvent(t, client, channel, 3, events.EventTypeOrderCompleted, map[string]any{"orderId": order.ID})

	ts := httptest.NewServer(handler)
	defer ts.Close()

	httpClient := &http.Client{Timeout: 5 * time.Second}

	t.Run("replays the log and closes on the terminal event", func(t *testing.T) {
		resp, err := httpClient.Get(ts.URL + "/api/orders/" + jsonInt(order.ID) + "/stream")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		// The body must end on its own: replay stops at order.completed.
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		body := string(raw)

		assert.Contains(t, body, "id: 1\nevent: order.started\n")
		assert.Contains(t, body, "id: 2\nevent: order.progress\n")
		assert.Contains(t, body, "id: 3\nevent: order.completed\n")
		assert.Contains(t, body, `"seq":3`)
	})

	t.Run("afterSeq resumes past the cursor", func(t *testing.T) {
		resp, err := httpClient.Get(ts.URL + "/api/orders/" + jsonInt(order.ID) + "/stream?afterSeq=2")
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		body := string(raw)

		assert.NotContains(t, body, "event: order.started")
		assert.Contains(t, body, "id: 3\nevent: order.completed\n")
	})

	t.Run("Last-Event-ID header wins as the cursor", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/orders/"+jsonInt(order.ID)+"/stream", nil)
		require.NoError(t, err)
		req.Header.Set("Last-Event-ID", "2")

		resp, err := httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "event: order.progress")
		assert.Contains(t, string(raw), "event: order.completed")
	})

	t.Run("a later order on the same query starts its own stream", func(t *testing.T) {
		second, err := client.GenerationOrder.Create().
			SetKind(generationorder.KindQueryFull).
			SetStatus(generationorder.StatusRunning).
			SetRequestedBy(generationorder.RequestedByUser).
			SetQueryID(queryID).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		secondChannel := events.OrderChannel(second.ID)
		seedEvent(t, client, secondChannel, 1, events.EventTypeOrderStarted, map[string]any{"orderId": second.ID})
		seedEvent(t, client, secondChannel, 2, events.EventTypeOrderFailed, map[string]any{"orderId": second.ID, "message": "boom"})

		resp, err := httpClient.Get(ts.URL + "/api/orders/" + jsonInt(second.ID) + "/stream")
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		body := string(raw)

		// The first order already completed, but its log belongs to its own
		// channel and must not replay or terminate this stream.
		assert.NotContains(t, body, "event: order.completed")
		assert.NotContains(t, body, "event: order.progress")
		assert.Contains(t, body, "id: 1\nevent: order.started\n")
		assert.Contains(t, body, "id: 2\nevent: order.failed\n")
	})
}

func TestMailStreamReplay(t *testing.T) {
	server, client := newTestServer(t)
	handler := server.Handler()

	rec, body := doJSON(t, handler, http.MethodPost, "/api/mail/thread", `{"content":"stream me"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	threadUID := body["threadUid"].(string)

	channel := events.MailChannel(threadUID)
	seedEvent(t, client, channel, 1, events.EventTypeMailJobStarted, map[string]any{"threadUid": threadUID})
	seedEvent(t, client, channel, 2, events.EventTypeMailJobCompleted, map[string]any{"threadUid": threadUID})

	ts := httptest.NewServer(handler)
	defer ts.Close()

	httpClient := &http.Client{Timeout: 5 * time.Second}
	resp, err := httpClient.Get(ts.URL + "/api/mail/thread/" + threadUID + "/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "event: mail.job.started")
	assert.Contains(t, string(raw), "event: mail.job.completed")
}

func seedEvent(t *testing.T, client *database.Client, channel string, seq int, eventType string, payload map[string]any) {
	t.Helper()
	require.NoError(t, client.OrderEvent.Create().
		SetChannel(channel).
		SetSeq(seq).
		SetEventType(eventType).
		SetPayload(payload).
		Exec(context.Background()))
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
