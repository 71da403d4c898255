package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationorder"
	entlease "github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/services"
	testdb "github.com/lumenlabs/lumen/test/database"
)

type searchFixture struct {
	executor *SearchExecutor
	queries  *services.QueryService
	events   *services.EventService
	leases   *leases.Manager
}

func newSearchFixture(t *testing.T, client *database.Client) *searchFixture {
	t.Helper()
	provider := llm.NewStubProvider("test-model")
	llmExec := llm.NewExecutor(client.Client)
	settings := services.NewSettingsService(client.Client)
	queries := services.NewQueryService(client.Client, provider, llmExec, settings)
	articles := services.NewArticleService(client.Client)
	orders := services.NewOrderService(client.Client, articles)
	publisher := events.NewPublisher(client.DB())
	leaseMgr := leases.NewManager(client.Client, time.Minute)

	return &searchFixture{
		executor: NewSearchExecutor(provider, llmExec, settings, queries, articles, orders, publisher, leaseMgr),
		queries:  queries,
		events:   services.NewEventService(client.Client),
		leases:   leaseMgr,
	}
}

func createRunningOrder(t *testing.T, client *database.Client, kind generationorder.Kind, queryID int, intentID *int) *ent.GenerationOrder {
	t.Helper()
	create := client.GenerationOrder.Create().
		SetKind(kind).
		SetStatus(generationorder.StatusRunning).
		SetRequestedBy(generationorder.RequestedByUser).
		SetQueryID(queryID).
		SetStartedAt(time.Now())
	if intentID != nil {
		create.SetIntentID(*intentID)
	}
	order, err := create.Save(context.Background())
	require.NoError(t, err)
	return order
}

func createSearchQuery(t *testing.T, client *database.Client, value string) *ent.SearchQuery {
	t.Helper()
	q, err := client.SearchQuery.Create().
		SetValue(value).
		SetOriginalValue(value).
		SetLanguage("en").
		SetFiletype("md").
		Save(context.Background())
	require.NoError(t, err)
	return q
}

func eventTypes(evs []services.StoredEvent) []string {
	out := make([]string, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Type)
	}
	return out
}

func TestSearchExecutor_QueryFull(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newSearchFixture(t, client)
	ctx := context.Background()

	q := createSearchQuery(t, client, "sqlite fts5")
	order := createRunningOrder(t, client, generationorder.KindQueryFull, q.ID, nil)

	result := fx.executor.Execute(ctx, order)
	require.NotNil(t, result)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Summary, "3 article(s)")

	t.Run("intents linked to the query", func(t *testing.T) {
		intents, err := fx.queries.IntentsForQuery(ctx, q.ID)
		require.NoError(t, err)
		assert.Len(t, intents, 3)
	})

	t.Run("one article per intent", func(t *testing.T) {
		n, err := client.Article.Query().Where(article.StatusEQ(article.StatusContentReady)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("event stream covers the pipeline", func(t *testing.T) {
		evs, err := fx.events.GetCatchupEvents(ctx, events.OrderChannel(order.ID), 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, evs)

		types := eventTypes(evs)
		assert.Equal(t, events.EventTypeOrderStarted, types[0])
		assert.Equal(t, events.EventTypeOrderCompleted, types[len(types)-1])

		counts := map[string]int{}
		for _, typ := range types {
			counts[typ]++
		}
		assert.Equal(t, 3, counts[events.EventTypeIntentUpserted])
		assert.Equal(t, 3, counts[events.EventTypeArticleUpserted])

		for i, ev := range evs {
			assert.Equal(t, i+1, ev.Seq, "dense ascending seq")
		}

		last := evs[len(evs)-1]
		assert.EqualValues(t, order.ID, last.Payload["orderId"])
		assert.EqualValues(t, q.ID, last.Payload["queryId"])
	})

	t.Run("rerun regenerates against the same rows", func(t *testing.T) {
		// The worker releases leases after each order; mirror that here.
		require.NoError(t, fx.leases.ReleaseOrderLeases(ctx, order.ID))

		rerun := createRunningOrder(t, client, generationorder.KindQueryFull, q.ID, nil)
		result := fx.executor.Execute(ctx, rerun)
		require.NoError(t, result.Err)

		intents, err := fx.queries.IntentsForQuery(ctx, q.ID)
		require.NoError(t, err)
		assert.Len(t, intents, 3, "links rebuilt, not duplicated")
	})

	t.Run("rerun gets its own channel with seq from 1", func(t *testing.T) {
		_, err := client.Lease.Delete().Exec(ctx)
		require.NoError(t, err)

		rerun := createRunningOrder(t, client, generationorder.KindQueryFull, q.ID, nil)
		require.NoError(t, fx.executor.Execute(ctx, rerun).Err)

		evs, err := fx.events.GetCatchupEvents(ctx, events.OrderChannel(rerun.ID), 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, evs)
		assert.Equal(t, 1, evs[0].Seq)
		assert.Equal(t, events.EventTypeOrderStarted, evs[0].Type)
		for _, ev := range evs {
			assert.EqualValues(t, rerun.ID, ev.Payload["orderId"], "no frames from the earlier order")
		}
	})
}

func TestSearchExecutor_IntentRegen(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newSearchFixture(t, client)
	ctx := context.Background()

	q := createSearchQuery(t, client, "postgres vacuum")
	full := createRunningOrder(t, client, generationorder.KindQueryFull, q.ID, nil)
	require.NoError(t, fx.executor.Execute(ctx, full).Err)
	require.NoError(t, fx.leases.ReleaseOrderLeases(ctx, full.ID))

	intents, err := fx.queries.IntentsForQuery(ctx, q.ID)
	require.NoError(t, err)
	require.NotEmpty(t, intents)
	target := intents[0]

	before, err := client.Article.Query().Count(ctx)
	require.NoError(t, err)

	regen := createRunningOrder(t, client, generationorder.KindIntentRegen, q.ID, &target.ID)
	result := fx.executor.Execute(ctx, regen)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Summary, "1 article(s)")

	after, err := client.Article.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "regen replaces in place")
}

func TestSearchExecutor_Failures(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := newSearchFixture(t, client)
	ctx := context.Background()

	t.Run("lease conflict fails the order with a terminal event", func(t *testing.T) {
		q := createSearchQuery(t, client, "locked query")
		res, err := fx.leases.TryAcquire(ctx, entlease.ScopeTypeQuery, leases.QueryScopeKey(q.ID), 999999)
		require.NoError(t, err)
		require.True(t, res.OK)

		order := createRunningOrder(t, client, generationorder.KindQueryFull, q.ID, nil)
		result := fx.executor.Execute(ctx, order)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "locked by order 999999")

		evs, err := fx.events.GetCatchupEvents(ctx, events.OrderChannel(order.ID), 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, evs)
		last := evs[len(evs)-1]
		assert.Equal(t, events.EventTypeOrderFailed, last.Type)
		assert.EqualValues(t, q.ID, last.Payload["queryId"])
		assert.Contains(t, last.Payload["message"], "locked by order 999999")
	})

	t.Run("order without query fails fast", func(t *testing.T) {
		order, err := client.GenerationOrder.Create().
			SetKind(generationorder.KindQueryFull).
			SetStatus(generationorder.StatusRunning).
			SetRequestedBy(generationorder.RequestedByUser).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		result := fx.executor.Execute(ctx, order)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "has no query")
	})

	t.Run("per-intent order without intent fails", func(t *testing.T) {
		q := createSearchQuery(t, client, "intentless regen")
		order := createRunningOrder(t, client, generationorder.KindIntentRegen, q.ID, nil)

		result := fx.executor.Execute(ctx, order)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "has no intent")
	})
}
