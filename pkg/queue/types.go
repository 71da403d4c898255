// Package queue provides the order scheduler: a single cooperative worker
// that claims queued orders and runs them through their pipeline.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/lumenlabs/lumen/ent"
)

// ErrNoOrdersAvailable indicates no queued orders are waiting.
var ErrNoOrdersAvailable = errors.New("no orders available")

// OrderExecutor runs one order kind end to end.
//
// The executor owns the pipeline: provider calls, store writes, and every
// event emission including the terminal order.completed / order.failed
// (resp. mail.job.*) event. The worker only claims, applies the terminal
// status row, releases leases, and records metrics. The terminal event is
// emitted by the executor BEFORE the worker flips the status row, so
// subscribers never observe a terminal status without its event.
type OrderExecutor interface {
	Execute(ctx context.Context, order *ent.GenerationOrder) *ExecutionResult
}

// ExecutionResult is the pipeline's terminal state. Intermediate results
// were already written during execution.
type ExecutionResult struct {
	// Summary becomes the order's result_summary on success.
	Summary string

	// Err marks the order failed. The executor has already emitted the
	// failure event when Err is set.
	Err error
}

// WorkerStatus reports what the worker is doing.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is the worker snapshot served by the health endpoint.
type WorkerHealth struct {
	Status          WorkerStatus `json:"status"`
	CurrentOrderID  int          `json:"current_order_id,omitempty"`
	OrdersProcessed int          `json:"orders_processed"`
	LastActivity    time.Time    `json:"last_activity"`
}
