package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lumenlabs/lumen/ent"
)

// CallSpec describes one provider invocation for retry and failure
// accounting. Component and Trigger end up on LLMFailure rows.
type CallSpec struct {
	// Provider is the implementation name (Provider.Name()).
	Provider string

	// Component is the engine component making the call,
	// e.g. "search_pipeline", "mail_pipeline", "query".
	Component string

	// Trigger is the operation, e.g. "resolve_intents", "create_article".
	Trigger string

	// MaxAttempts below 1 is treated as 1.
	MaxAttempts int

	// Timeout applies per attempt, not across the whole call.
	Timeout time.Duration

	// Snapshot reconstructs the request body for the failure record.
	// Only invoked when an attempt times out.
	Snapshot func() string
}

// CallMeta reports how a successful call went.
type CallMeta struct {
	Attempts      int
	Duration      time.Duration
	CorrelationID string
}

// CallError wraps the last provider error after all attempts failed.
type CallError struct {
	Attempts int
	Duration time.Duration
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("provider call failed after %d attempt(s) (last took %s): %v",
		e.Attempts, e.Duration.Round(time.Millisecond), e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Executor runs provider calls with per-attempt timeouts and records a
// LLMFailure row for every failed attempt.
type Executor struct {
	db *ent.Client
}

// NewExecutor creates a retry executor writing failures through db.
func NewExecutor(db *ent.Client) *Executor {
	return &Executor{db: db}
}

// Do runs op up to spec.MaxAttempts times. Each attempt gets a fresh
// correlation id and its own deadline derived from ctx. The first success
// wins; after exhaustion the last error is returned wrapped in *CallError.
//
// op must be a pure provider invocation. Validation of the result happens
// at the caller and is never retried.
func Do[T any](ctx context.Context, ex *Executor, spec CallSpec, op func(context.Context) (T, error)) (T, CallMeta, error) {
	var zero T

	attempts := spec.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		made        int
		lastErr     error
		lastElapsed time.Duration
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		corrID := uuid.NewString()
		attemptCtx, cancel := context.WithTimeout(ctx, spec.Timeout)
		start := time.Now()
		result, err := op(attemptCtx)
		elapsed := time.Since(start)
		// Read before cancel: cancel() turns the attempt context's error
		// into Canceled and would mask a hit deadline.
		timedOut := attemptCtx.Err() == context.DeadlineExceeded || isTimeout(err)
		cancel()

		if err == nil {
			return result, CallMeta{Attempts: attempt, Duration: elapsed, CorrelationID: corrID}, nil
		}
		if timedOut {
			// Normalize: gRPC surfaces the deadline as a status error, not
			// as context.DeadlineExceeded.
			err = fmt.Errorf("attempt timed out after %s: %w", spec.Timeout, err)
		}

		made = attempt
		lastErr = err
		lastElapsed = elapsed
		ex.recordFailure(ctx, spec, corrID, attempt, elapsed, err, timedOut)
		slog.Error("Provider call attempt failed",
			"provider", spec.Provider,
			"component", spec.Component,
			"trigger", spec.Trigger,
			"correlation_id", corrID,
			"attempt", attempt,
			"max_attempts", attempts,
			"duration", elapsed,
			"error", err)

		// Parent cancellation means the worker is shutting down or the
		// stage was abandoned; further attempts would fail the same way.
		if ctx.Err() != nil {
			break
		}
	}

	return zero, CallMeta{}, &CallError{Attempts: made, Duration: lastElapsed, Err: lastErr}
}

// isTimeout reports whether err is a per-attempt deadline hit, in either of
// the shapes providers return it: the raw context error (stub, local ops) or
// a gRPC DeadlineExceeded status (remote provider).
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return status.Code(err) == codes.DeadlineExceeded
}

// recordFailure persists one LLMFailure row. Best effort: a failed insert
// must not mask the provider error.
func (ex *Executor) recordFailure(ctx context.Context, spec CallSpec, corrID string, attempt int, elapsed time.Duration, callErr error, timedOut bool) {
	if ex.db == nil {
		return
	}

	create := ex.db.LLMFailure.Create().
		SetProvider(spec.Provider).
		SetComponent(spec.Component).
		SetTrigger(spec.Trigger).
		SetCorrelationID(corrID).
		SetAttempt(attempt).
		SetDurationMs(elapsed.Milliseconds()).
		SetErrorName(errorName(callErr, timedOut)).
		SetErrorMessage(callErr.Error())
	if timedOut && spec.Snapshot != nil {
		create = create.SetRequestSnapshot(spec.Snapshot())
	}

	// The attempt context is already dead; the insert gets its own deadline.
	insertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := create.Save(insertCtx); err != nil {
		slog.Warn("Failed to record provider failure",
			"trigger", spec.Trigger, "correlation_id", corrID, "error", err)
	}
}

func errorName(err error, timedOut bool) string {
	switch {
	case timedOut:
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "provider_error"
	}
}
