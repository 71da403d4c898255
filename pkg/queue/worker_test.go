package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	entlease "github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/pkg/config"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/services"
	testdb "github.com/lumenlabs/lumen/test/database"
)

// fakeExecutor returns a canned result and counts invocations.
type fakeExecutor struct {
	result *ExecutionResult
	calls  atomic.Int64
}

func (f *fakeExecutor) Execute(_ context.Context, _ *ent.GenerationOrder) *ExecutionResult {
	f.calls.Add(1)
	return f.result
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		PollInterval:            10 * time.Millisecond,
		MaxRunTime:              time.Minute,
		LeaseTTL:                time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func newTestWorker(client *database.Client, executors map[generationorder.Kind]OrderExecutor) *Worker {
	orders := services.NewOrderService(client.Client, services.NewArticleService(client.Client))
	leaseMgr := leases.NewManager(client.Client, time.Minute)
	return NewWorker(client.Client, testQueueConfig(), executors, leaseMgr, orders)
}

func enqueueOrder(t *testing.T, client *database.Client, kind generationorder.Kind) *ent.GenerationOrder {
	t.Helper()
	order, err := client.GenerationOrder.Create().
		SetKind(kind).
		SetStatus(generationorder.StatusQueued).
		SetRequestedBy(generationorder.RequestedByUser).
		Save(context.Background())
	require.NoError(t, err)
	return order
}

func TestWorker_ClaimNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, nil)
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		_, err := w.claimNext(ctx)
		assert.ErrorIs(t, err, ErrNoOrdersAvailable)
	})

	t.Run("claims the oldest queued order", func(t *testing.T) {
		first := enqueueOrder(t, client, generationorder.KindQueryFull)
		enqueueOrder(t, client, generationorder.KindQueryFull)

		claimed, err := w.claimNext(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, generationorder.StatusRunning, claimed.Status)
		assert.NotNil(t, claimed.StartedAt)
	})
}

func TestWorker_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("completes the order", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		exec := &fakeExecutor{result: &ExecutionResult{Summary: "3 article(s) generated"}}
		w := newTestWorker(client, map[generationorder.Kind]OrderExecutor{
			generationorder.KindQueryFull: exec,
		})
		enqueueOrder(t, client, generationorder.KindQueryFull)

		require.NoError(t, w.tick(ctx))
		assert.Equal(t, int64(1), exec.calls.Load())

		rows, err := client.GenerationOrder.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, generationorder.StatusCompleted, rows[0].Status)
		assert.Equal(t, "3 article(s) generated", rows[0].ResultSummary)
		assert.NotNil(t, rows[0].FinishedAt)

		health := w.Health()
		assert.Equal(t, WorkerStatusIdle, health.Status)
		assert.Equal(t, 1, health.OrdersProcessed)
	})

	t.Run("fails the order and records the cause", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		exec := &fakeExecutor{result: &ExecutionResult{Err: errors.New("provider exploded")}}
		w := newTestWorker(client, map[generationorder.Kind]OrderExecutor{
			generationorder.KindQueryFull: exec,
		})
		order := enqueueOrder(t, client, generationorder.KindQueryFull)

		require.NoError(t, w.tick(ctx))

		got, err := client.GenerationOrder.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusFailed, got.Status)
		assert.Equal(t, "provider exploded", got.ErrorMessage)
	})

	t.Run("order kind without executor fails", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		w := newTestWorker(client, nil)
		order := enqueueOrder(t, client, generationorder.KindMailReply)

		require.NoError(t, w.tick(ctx))

		got, err := client.GenerationOrder.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusFailed, got.Status)
		assert.Contains(t, got.ErrorMessage, "no executor for kind")
	})

	t.Run("releases leases with the completed status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		exec := &fakeExecutor{result: &ExecutionResult{Summary: "done"}}
		w := newTestWorker(client, map[generationorder.Kind]OrderExecutor{
			generationorder.KindQueryFull: exec,
		})
		order := enqueueOrder(t, client, generationorder.KindQueryFull)

		leaseMgr := leases.NewManager(client.Client, time.Minute)
		res, err := leaseMgr.TryAcquire(ctx, entlease.ScopeTypeQuery, leases.QueryScopeKey(1), order.ID)
		require.NoError(t, err)
		require.True(t, res.OK)

		require.NoError(t, w.tick(ctx))

		got, err := client.GenerationOrder.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusCompleted, got.Status)

		n, err := client.Lease.Query().
			Where(entlease.OwnerOrderID(order.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "terminal order holds no leases")
	})

	t.Run("releases leases with the failed status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		exec := &fakeExecutor{result: &ExecutionResult{Err: errors.New("pipeline broke")}}
		w := newTestWorker(client, map[generationorder.Kind]OrderExecutor{
			generationorder.KindQueryFull: exec,
		})
		order := enqueueOrder(t, client, generationorder.KindQueryFull)

		leaseMgr := leases.NewManager(client.Client, time.Minute)
		res, err := leaseMgr.TryAcquire(ctx, entlease.ScopeTypeQuery, leases.QueryScopeKey(2), order.ID)
		require.NoError(t, err)
		require.True(t, res.OK)

		require.NoError(t, w.tick(ctx))

		got, err := client.GenerationOrder.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, generationorder.StatusFailed, got.Status)

		n, err := client.Lease.Query().
			Where(entlease.OwnerOrderID(order.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "failed order holds no leases")
	})
}

func TestWorker_RequeueExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, nil)
	ctx := context.Background()

	stale, err := client.GenerationOrder.Create().
		SetKind(generationorder.KindQueryFull).
		SetStatus(generationorder.StatusRunning).
		SetRequestedBy(generationorder.RequestedByUser).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.GenerationOrder.Create().
		SetKind(generationorder.KindQueryFull).
		SetStatus(generationorder.StatusRunning).
		SetRequestedBy(generationorder.RequestedByUser).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	leaseMgr := leases.NewManager(client.Client, time.Hour)
	res, err := leaseMgr.TryAcquire(ctx, entlease.ScopeTypeQuery, leases.QueryScopeKey(5), stale.ID)
	require.NoError(t, err)
	require.True(t, res.OK)

	require.NoError(t, w.requeueExpired(ctx))

	got, err := client.GenerationOrder.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, generationorder.StatusQueued, got.Status)
	assert.Nil(t, got.StartedAt)
	assert.Contains(t, got.ErrorMessage, "requeued")

	row, err := leaseMgr.ActiveLease(ctx, entlease.ScopeTypeQuery, leases.QueryScopeKey(5))
	require.NoError(t, err)
	assert.Nil(t, row, "requeue releases the dead owner's leases")

	untouched, err := client.GenerationOrder.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, generationorder.StatusRunning, untouched.Status)
}

func TestWorker_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	exec := &fakeExecutor{result: &ExecutionResult{Summary: "done"}}
	w := newTestWorker(client, map[generationorder.Kind]OrderExecutor{
		generationorder.KindQueryFull: exec,
	})
	order := enqueueOrder(t, client, generationorder.KindQueryFull)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	require.Eventually(t, func() bool {
		got, err := client.GenerationOrder.Get(context.Background(), order.ID)
		return err == nil && got.Status == generationorder.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)
}
