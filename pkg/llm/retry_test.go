package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func testSpec(attempts int) CallSpec {
	return CallSpec{
		Provider:    "stub",
		Component:   "test",
		Trigger:     "op",
		MaxAttempts: attempts,
		Timeout:     time.Second,
	}
}

func TestDo_FirstAttemptSucceeds(t *testing.T) {
	ex := NewExecutor(nil)

	out, meta, err := Do(context.Background(), ex, testSpec(3), func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, meta.Attempts)
	assert.NotEmpty(t, meta.CorrelationID)
}

func TestDo_RetriesThenSucceeds(t *testing.T) {
	ex := NewExecutor(nil)

	calls := 0
	out, meta, err := Do(context.Background(), ex, testSpec(3), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, meta.Attempts)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	ex := NewExecutor(nil)

	cause := errors.New("provider down")
	calls := 0
	_, _, err := Do(context.Background(), ex, testSpec(2), func(ctx context.Context) (string, error) {
		calls++
		return "", cause
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, 2, callErr.Attempts)
	assert.ErrorIs(t, err, cause)
}

func TestDo_MaxAttemptsBelowOneMeansOne(t *testing.T) {
	ex := NewExecutor(nil)

	calls := 0
	_, _, err := Do(context.Background(), ex, testSpec(0), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_PerAttemptTimeout(t *testing.T) {
	ex := NewExecutor(nil)

	spec := testSpec(2)
	spec.Timeout = 20 * time.Millisecond

	calls := 0
	_, _, err := Do(context.Background(), ex, spec, func(ctx context.Context) (string, error) {
		calls++
		<-ctx.Done()
		return "", ctx.Err()
	})
	require.Error(t, err)
	// Both attempts ran: the per-attempt deadline does not kill the parent.
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
}

func TestDo_GRPCDeadlineIsATimeout(t *testing.T) {
	ex := NewExecutor(nil)

	spec := testSpec(2)
	spec.Timeout = 20 * time.Millisecond

	// A remote provider reports a hit deadline as a status error, never as
	// context.DeadlineExceeded.
	grpcErr := status.FromContextError(context.DeadlineExceeded).Err()
	require.False(t, errors.Is(grpcErr, context.DeadlineExceeded))

	calls := 0
	_, _, err := Do(context.Background(), ex, spec, func(ctx context.Context) (string, error) {
		calls++
		return "", grpcErr
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "timed out")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(callErr.Err))
}

func TestDo_StopsWhenParentCancelled(t *testing.T) {
	ex := NewExecutor(nil)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, _, err := Do(ctx, ex, testSpec(5), func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no retries after parent cancellation")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, 1, callErr.Attempts, "reports attempts actually made")
}
