package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/pkg/config"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/services"
)

// Worker is the single order processor. Each tick requeues expired running
// orders, claims the oldest queued order, and dispatches it to the executor
// registered for its kind.
type Worker struct {
	db        *ent.Client
	cfg       *config.QueueConfig
	executors map[generationorder.Kind]OrderExecutor
	leases    *leases.Manager
	orders    *services.OrderService

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu              sync.RWMutex
	status          WorkerStatus
	currentOrderID  int
	ordersProcessed int
	lastActivity    time.Time
}

// NewWorker creates the worker. executors maps each order kind to its
// pipeline.
func NewWorker(db *ent.Client, cfg *config.QueueConfig, executors map[generationorder.Kind]OrderExecutor, leaseMgr *leases.Manager, orders *services.OrderService) *Worker {
	return &Worker{
		db:           db,
		cfg:          cfg,
		executors:    executors,
		leases:       leaseMgr,
		orders:       orders,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start launches the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the loop to exit and waits for the in-flight order, bounded
// by the graceful shutdown timeout. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(w.cfg.GracefulShutdownTimeout):
		slog.Warn("Worker did not stop within graceful shutdown timeout",
			"timeout", w.cfg.GracefulShutdownTimeout)
	}
}

// Health returns the current worker snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		Status:          w.status,
		CurrentOrderID:  w.currentOrderID,
		OrdersProcessed: w.ordersProcessed,
		LastActivity:    w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	slog.Info("Worker started", "poll_interval", w.cfg.PollInterval)
	for {
		select {
		case <-w.stopCh:
			slog.Info("Worker shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.tick(ctx); err != nil {
				if errors.Is(err, ErrNoOrdersAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				slog.Error("Worker tick failed", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for d or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval applies jitter so restarts don't align ticks.
func (w *Worker) pollInterval() time.Duration {
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return w.cfg.PollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	return w.cfg.PollInterval + offset
}

func (w *Worker) tick(ctx context.Context) error {
	if err := w.requeueExpired(ctx); err != nil {
		slog.Error("Requeue of expired orders failed", "error", err)
	}

	order, err := w.claimNext(ctx)
	if err != nil {
		return err
	}
	w.process(ctx, order)
	return nil
}

// requeueExpired is the crash-recovery path: running rows whose started_at
// is older than MaxRunTime belong to a dead process and go back to queued.
func (w *Worker) requeueExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-w.cfg.MaxRunTime)

	stale, err := w.db.GenerationOrder.Query().
		Where(
			generationorder.StatusEQ(generationorder.StatusRunning),
			generationorder.StartedAtLTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired orders: %w", err)
	}

	for _, order := range stale {
		n, err := w.db.GenerationOrder.Update().
			Where(
				generationorder.ID(order.ID),
				generationorder.StatusEQ(generationorder.StatusRunning),
			).
			SetStatus(generationorder.StatusQueued).
			ClearStartedAt().
			SetErrorMessage(fmt.Sprintf("requeued: exceeded max run time of %s", w.cfg.MaxRunTime)).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to requeue expired order", "order_id", order.ID, "error", err)
			continue
		}
		if n > 0 {
			ordersRequeued.Inc()
			w.orders.AppendLog(ctx, order.ID, orderlog.StageOrder, orderlog.LevelWarn,
				"order requeued after exceeding max run time", nil)
			if err := w.leases.ReleaseOrderLeases(ctx, order.ID); err != nil {
				slog.Warn("Failed to release leases of requeued order", "order_id", order.ID, "error", err)
			}
			slog.Warn("Requeued expired order", "order_id", order.ID)
		}
	}
	return nil
}

// claimNext claims the oldest queued order with FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNext(ctx context.Context) (*ent.GenerationOrder, error) {
	tx, err := w.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	order, err := tx.GenerationOrder.Query().
		Where(generationorder.StatusEQ(generationorder.StatusQueued)).
		Order(ent.Asc(generationorder.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNoOrdersAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query queued orders: %w", err)
	}

	// Conditional update: zero rows means a lost race, treat as no work.
	n, err := tx.GenerationOrder.Update().
		Where(
			generationorder.ID(order.ID),
			generationorder.StatusEQ(generationorder.StatusQueued),
		).
		SetStatus(generationorder.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim order %d: %w", order.ID, err)
	}
	if n == 0 {
		return nil, ErrNoOrdersAvailable
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return w.db.GenerationOrder.Get(ctx, order.ID)
}

func (w *Worker) process(ctx context.Context, order *ent.GenerationOrder) {
	log := slog.With("order_id", order.ID, "kind", order.Kind)
	log.Info("Order claimed")

	w.setStatus(WorkerStatusWorking, order.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	start := time.Now()
	defer func() {
		orderDuration.WithLabelValues(string(order.Kind)).Observe(time.Since(start).Seconds())
	}()

	execCtx, cancel := context.WithTimeout(ctx, w.cfg.MaxRunTime)
	defer cancel()

	var result *ExecutionResult
	executor, ok := w.executors[order.Kind]
	if !ok {
		result = &ExecutionResult{Err: fmt.Errorf("no executor for kind %q", order.Kind)}
	} else {
		result = executor.Execute(execCtx, order)
	}
	if result == nil {
		result = &ExecutionResult{Err: errors.New("executor returned no result")}
	}

	if result.Err != nil {
		log.Error("Order failed", "error", result.Err)
		w.failOrder(ctx, order.ID, result.Err)
		ordersProcessed.WithLabelValues(string(order.Kind), string(generationorder.StatusFailed)).Inc()
	} else {
		log.Info("Order completed", "duration", time.Since(start))
		w.completeOrder(ctx, order.ID, result.Summary)
		ordersProcessed.WithLabelValues(string(order.Kind), string(generationorder.StatusCompleted)).Inc()
	}

	w.mu.Lock()
	w.ordersProcessed++
	w.mu.Unlock()
}

// completeOrder flips running → completed and releases the order's leases in
// the same transaction, so no observer sees a terminal order still holding a
// scope. Conditional: a concurrent requeue wins over a late completion.
func (w *Worker) completeOrder(ctx context.Context, orderID int, summary string) {
	err := w.finishOrder(ctx, orderID, func(tx *ent.Tx) error {
		update := tx.GenerationOrder.Update().
			Where(
				generationorder.ID(orderID),
				generationorder.StatusEQ(generationorder.StatusRunning),
			).
			SetStatus(generationorder.StatusCompleted).
			SetFinishedAt(time.Now())
		if summary != "" {
			update.SetResultSummary(summary)
		}
		_, err := update.Save(ctx)
		return err
	})
	if err != nil {
		slog.Error("Failed to mark order completed", "order_id", orderID, "error", err)
	}
}

// failOrder flips running → failed, releasing leases in the same
// transaction. The executor emitted the failure event before returning.
func (w *Worker) failOrder(ctx context.Context, orderID int, cause error) {
	err := w.finishOrder(ctx, orderID, func(tx *ent.Tx) error {
		_, err := tx.GenerationOrder.Update().
			Where(
				generationorder.ID(orderID),
				generationorder.StatusEQ(generationorder.StatusRunning),
			).
			SetStatus(generationorder.StatusFailed).
			SetFinishedAt(time.Now()).
			SetErrorMessage(cause.Error()).
			Save(ctx)
		return err
	})
	if err != nil {
		slog.Error("Failed to mark order failed", "order_id", orderID, "error", err)
	}
	w.orders.AppendLog(ctx, orderID, orderlog.StageOrder, orderlog.LevelError, cause.Error(), nil)
}

// finishOrder runs the terminal status update and the lease release of one
// order atomically.
func (w *Worker) finishOrder(ctx context.Context, orderID int, update func(tx *ent.Tx) error) error {
	tx, err := w.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start finish transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := update(tx); err != nil {
		return err
	}
	if _, err := tx.Lease.Delete().
		Where(lease.OwnerOrderID(orderID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to release leases of order %d: %w", orderID, err)
	}
	return tx.Commit()
}

func (w *Worker) setStatus(status WorkerStatus, orderID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentOrderID = orderID
	w.lastActivity = time.Now()
}
