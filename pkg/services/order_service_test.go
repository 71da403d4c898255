package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/pkg/database"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func setupTestOrderService(t *testing.T, client *database.Client) *OrderService {
	t.Helper()
	return NewOrderService(client.Client, NewArticleService(client.Client))
}

func createTestQuery(t *testing.T, client *database.Client, value string) *ent.SearchQuery {
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

func linkTestIntent(t *testing.T, client *database.Client, q *ent.SearchQuery, text string) *ent.Intent {
	t.Helper()
	in := createTestIntent(t, client, text)
	require.NoError(t, client.SearchQuery.UpdateOne(q).AddIntents(in).Exec(context.Background()))
	return in
}

func finishOrder(t *testing.T, client *database.Client, orderID int) {
	t.Helper()
	err := client.GenerationOrder.UpdateOneID(orderID).
		SetStatus(generationorder.StatusCompleted).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestOrderService_CreateOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestOrderService(t, client)
	ctx := context.Background()

	q := createTestQuery(t, client, "sqlite fts5")
	in := linkTestIntent(t, client, q, "sqlite fts5 overview")
	in2 := linkTestIntent(t, client, q, "sqlite fts5 usage")

	t.Run("accepts query_full", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusQueued, order.Status)
		finishOrder(t, client, order.ID)
	})

	t.Run("active query_full blocks everything on the query", func(t *testing.T) {
		blocker, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:     generationorder.KindIntentRegen,
			QueryID:  q.ID,
			IntentID: &in.ID,
		})
		lockErr, ok := AsLockError(err)
		require.True(t, ok, "expected lock error, got %v", err)
		assert.Equal(t, blocker.ID, lockErr.ActiveOrderID)
		assert.Equal(t, ScopeQuery, lockErr.Scope)

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		lockErr, ok = AsLockError(err)
		require.True(t, ok)
		assert.Equal(t, ScopeQuery, lockErr.Scope)

		finishOrder(t, client, blocker.ID)
	})

	t.Run("per-intent blocks the same intent only", func(t *testing.T) {
		blocker, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:     generationorder.KindIntentRegen,
			QueryID:  q.ID,
			IntentID: &in.ID,
		})
		require.NoError(t, err)

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:     generationorder.KindArticleRegenKeepTitle,
			QueryID:  q.ID,
			IntentID: &in.ID,
		})
		lockErr, ok := AsLockError(err)
		require.True(t, ok)
		assert.Equal(t, blocker.ID, lockErr.ActiveOrderID)
		assert.Equal(t, ScopeIntent, lockErr.Scope)

		other, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:     generationorder.KindIntentRegen,
			QueryID:  q.ID,
			IntentID: &in2.ID,
		})
		require.NoError(t, err, "a different intent is free")
		finishOrder(t, client, other.ID)

		// query_full waits for per-intent work too.
		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		lockErr, ok = AsLockError(err)
		require.True(t, ok)
		assert.Equal(t, ScopeIntent, lockErr.Scope)

		finishOrder(t, client, blocker.ID)
	})

	t.Run("completed orders do not block", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)
		finishOrder(t, client, order.ID)
	})

	t.Run("validation failures", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, CreateOrderRequest{Kind: "paint_query", QueryID: q.ID})
		assert.True(t, IsValidationError(err), "unknown kind")

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindIntentRegen,
			QueryID: q.ID,
		})
		assert.True(t, IsValidationError(err), "per-intent without intentId")

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: 999999,
		})
		assert.ErrorIs(t, err, ErrNotFound, "unknown query")

		unlinked := createTestIntent(t, client, "not linked to query")
		_, err = svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:     generationorder.KindIntentRegen,
			QueryID:  q.ID,
			IntentID: &unlinked.ID,
		})
		assert.ErrorIs(t, err, ErrNotFound, "intent not linked to query")
	})
}

func TestOrderService_Availability(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestOrderService(t, client)
	ctx := context.Background()

	q := createTestQuery(t, client, "availability query")

	t.Run("free scope is available", func(t *testing.T) {
		out, err := svc.Availability(ctx, generationorder.KindQueryFull, q.ID, nil)
		require.NoError(t, err)
		assert.True(t, out.Available)
		assert.Nil(t, out.ActiveOrderID)
	})

	t.Run("held scope names the blocker", func(t *testing.T) {
		blocker, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)

		out, err := svc.Availability(ctx, generationorder.KindQueryFull, q.ID, nil)
		require.NoError(t, err)
		assert.False(t, out.Available)
		require.NotNil(t, out.ActiveOrderID)
		assert.Equal(t, blocker.ID, *out.ActiveOrderID)
		assert.Equal(t, ScopeQuery, out.Scope)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestOrderService(t, client)
	ctx := context.Background()

	q := createTestQuery(t, client, "cancel query")

	t.Run("queued order cancels", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.FinishedAt)
	})

	t.Run("non-queued order refuses", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, CreateOrderRequest{
			Kind:    generationorder.KindQueryFull,
			QueryID: q.ID,
		})
		require.NoError(t, err)
		finishOrder(t, client, order.ID)

		_, err = svc.Cancel(ctx, order.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.Cancel(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestOrderService(t, client)
	ctx := context.Background()

	q := createTestQuery(t, client, "list query")
	order, err := svc.CreateOrder(ctx, CreateOrderRequest{
		Kind:    generationorder.KindQueryFull,
		QueryID: q.ID,
	})
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		rows, err := svc.List(ctx, ListOrdersParams{Status: "queued", QueryID: q.ID})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, order.ID, rows[0].ID)

		rows, err = svc.List(ctx, ListOrdersParams{Status: "failed", QueryID: q.ID})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.List(ctx, ListOrdersParams{Status: "exploded"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("logs include the acceptance breadcrumb", func(t *testing.T) {
		logs, err := svc.Logs(ctx, order.ID)
		require.NoError(t, err)
		require.NotEmpty(t, logs)
		assert.Contains(t, logs[0].Message, "order accepted")
	})
}
