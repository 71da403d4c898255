package leases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent/lease"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func TestScopeKeys(t *testing.T) {
	assert.Equal(t, "query:42", QueryScopeKey(42))
	assert.Equal(t, "intent:42:7", IntentScopeKey(42, 7))
	assert.Equal(t, "article:9", ArticleScopeKey(9))
}

func TestManager_TryAcquire(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("free scope acquires", func(t *testing.T) {
		m := NewManager(client.Client, time.Minute)
		res, err := m.TryAcquire(ctx, lease.ScopeTypeQuery, QueryScopeKey(1), 100)
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, 100, res.OwnerOrderID)
	})

	t.Run("held scope names the owner", func(t *testing.T) {
		m := NewManager(client.Client, time.Minute)
		res, err := m.TryAcquire(ctx, lease.ScopeTypeQuery, QueryScopeKey(1), 200)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, 100, res.OwnerOrderID)
	})

	t.Run("owner re-acquire renews the expiry", func(t *testing.T) {
		m := NewManager(client.Client, time.Minute)
		before, err := m.ActiveLease(ctx, lease.ScopeTypeQuery, QueryScopeKey(1))
		require.NoError(t, err)
		require.NotNil(t, before)

		time.Sleep(10 * time.Millisecond)
		res, err := m.TryAcquire(ctx, lease.ScopeTypeQuery, QueryScopeKey(1), 100)
		require.NoError(t, err)
		assert.True(t, res.OK)

		after, err := m.ActiveLease(ctx, lease.ScopeTypeQuery, QueryScopeKey(1))
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.True(t, after.LeaseExpiresAt.After(before.LeaseExpiresAt))
	})

	t.Run("expired lease is purged and retaken", func(t *testing.T) {
		short := NewManager(client.Client, time.Millisecond)
		res, err := short.TryAcquire(ctx, lease.ScopeTypeIntent, IntentScopeKey(1, 5), 300)
		require.NoError(t, err)
		require.True(t, res.OK)

		time.Sleep(20 * time.Millisecond)

		m := NewManager(client.Client, time.Minute)
		res, err = m.TryAcquire(ctx, lease.ScopeTypeIntent, IntentScopeKey(1, 5), 400)
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, 400, res.OwnerOrderID)
	})

	t.Run("scopes are independent", func(t *testing.T) {
		m := NewManager(client.Client, time.Minute)
		res, err := m.TryAcquire(ctx, lease.ScopeTypeIntent, IntentScopeKey(1, 6), 500)
		require.NoError(t, err)
		assert.True(t, res.OK, "intent scope is free even while query:1 is held")
	})
}

func TestManager_OrderLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := NewManager(client.Client, time.Minute)
	ctx := context.Background()

	res, err := m.TryAcquire(ctx, lease.ScopeTypeQuery, QueryScopeKey(9), 700)
	require.NoError(t, err)
	require.True(t, res.OK)
	res, err = m.TryAcquire(ctx, lease.ScopeTypeIntent, IntentScopeKey(9, 1), 700)
	require.NoError(t, err)
	require.True(t, res.OK)

	t.Run("renew extends every held lease", func(t *testing.T) {
		before, err := m.ActiveLease(ctx, lease.ScopeTypeQuery, QueryScopeKey(9))
		require.NoError(t, err)
		require.NotNil(t, before)

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, m.RenewOrderLeases(ctx, 700))

		after, err := m.ActiveLease(ctx, lease.ScopeTypeQuery, QueryScopeKey(9))
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.True(t, after.LeaseExpiresAt.After(before.LeaseExpiresAt))
	})

	t.Run("release drops every held lease", func(t *testing.T) {
		require.NoError(t, m.ReleaseOrderLeases(ctx, 700))

		for _, key := range []struct {
			scope lease.ScopeType
			key   string
		}{
			{lease.ScopeTypeQuery, QueryScopeKey(9)},
			{lease.ScopeTypeIntent, IntentScopeKey(9, 1)},
		} {
			row, err := m.ActiveLease(ctx, key.scope, key.key)
			require.NoError(t, err)
			assert.Nil(t, row)
		}
	})

	t.Run("release is idempotent", func(t *testing.T) {
		require.NoError(t, m.ReleaseOrderLeases(ctx, 700))
	})
}

func TestManager_ActiveLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("nil for a free scope", func(t *testing.T) {
		m := NewManager(client.Client, time.Minute)
		row, err := m.ActiveLease(ctx, lease.ScopeTypeArticle, ArticleScopeKey(1))
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("nil once expired", func(t *testing.T) {
		m := NewManager(client.Client, time.Millisecond)
		res, err := m.TryAcquire(ctx, lease.ScopeTypeArticle, ArticleScopeKey(2), 800)
		require.NoError(t, err)
		require.True(t, res.OK)

		time.Sleep(20 * time.Millisecond)
		row, err := m.ActiveLease(ctx, lease.ScopeTypeArticle, ArticleScopeKey(2))
		require.NoError(t, err)
		assert.Nil(t, row)
	})
}
