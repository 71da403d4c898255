// Package leases implements advisory locks with expiring leases keyed by
// scope. A lease row is authoritative only while unexpired; expired rows
// are deleted lazily at the next acquisition of the same scope.
package leases

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/lease"
)

// Scope key constructors. Keys are unique within their scope type.
func QueryScopeKey(queryID int) string {
	return "query:" + strconv.Itoa(queryID)
}

func IntentScopeKey(queryID, intentID int) string {
	return "intent:" + strconv.Itoa(queryID) + ":" + strconv.Itoa(intentID)
}

func ArticleScopeKey(articleID int) string {
	return "article:" + strconv.Itoa(articleID)
}

// AcquireResult reports the outcome of TryAcquire. On conflict OK is false
// and OwnerOrderID names the holder.
type AcquireResult struct {
	OK           bool
	OwnerOrderID int
}

// Manager acquires, renews, and releases leases.
type Manager struct {
	db  *ent.Client
	ttl time.Duration
}

// NewManager creates a Manager granting leases of the given TTL.
func NewManager(db *ent.Client, ttl time.Duration) *Manager {
	return &Manager{db: db, ttl: ttl}
}

// TTL returns the configured lease duration.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// TryAcquire takes the lease for (scopeType, scopeKey) on behalf of
// orderID. Expired rows are purged first; a live row held by another order
// is a conflict; a live row held by orderID is renewed.
func (m *Manager) TryAcquire(ctx context.Context, scopeType lease.ScopeType, scopeKey string, orderID int) (AcquireResult, error) {
	tx, err := m.db.Tx(ctx)
	if err != nil {
		return AcquireResult{}, fmt.Errorf("failed to begin lease transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	_, err = tx.Lease.Delete().
		Where(
			lease.ScopeTypeEQ(scopeType),
			lease.ScopeKey(scopeKey),
			lease.LeaseExpiresAtLTE(now),
		).
		Exec(ctx)
	if err != nil {
		return AcquireResult{}, fmt.Errorf("failed to purge expired lease: %w", err)
	}

	existing, err := tx.Lease.Query().
		Where(lease.ScopeTypeEQ(scopeType), lease.ScopeKey(scopeKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return AcquireResult{}, fmt.Errorf("failed to query lease: %w", err)
	}

	expiry := now.Add(m.ttl)
	switch {
	case existing == nil:
		_, err = tx.Lease.Create().
			SetScopeType(scopeType).
			SetScopeKey(scopeKey).
			SetOwnerOrderID(orderID).
			SetLeaseExpiresAt(expiry).
			Save(ctx)
		if err != nil {
			// Unique (scope_type, scope_key) lost to a concurrent writer.
			if ent.IsConstraintError(err) {
				return m.conflictOwner(ctx, scopeType, scopeKey)
			}
			return AcquireResult{}, fmt.Errorf("failed to create lease: %w", err)
		}
	case existing.OwnerOrderID == orderID:
		_, err = tx.Lease.UpdateOne(existing).SetLeaseExpiresAt(expiry).Save(ctx)
		if err != nil {
			return AcquireResult{}, fmt.Errorf("failed to renew lease: %w", err)
		}
	default:
		return AcquireResult{OK: false, OwnerOrderID: existing.OwnerOrderID}, nil
	}

	if err := tx.Commit(); err != nil {
		return AcquireResult{}, fmt.Errorf("failed to commit lease transaction: %w", err)
	}
	return AcquireResult{OK: true, OwnerOrderID: orderID}, nil
}

// conflictOwner reports the current holder after a lost insert race.
func (m *Manager) conflictOwner(ctx context.Context, scopeType lease.ScopeType, scopeKey string) (AcquireResult, error) {
	row, err := m.db.Lease.Query().
		Where(lease.ScopeTypeEQ(scopeType), lease.ScopeKey(scopeKey)).
		Only(ctx)
	if err != nil {
		return AcquireResult{}, fmt.Errorf("failed to resolve lease owner: %w", err)
	}
	return AcquireResult{OK: false, OwnerOrderID: row.OwnerOrderID}, nil
}

// RenewOrderLeases extends every lease held by orderID.
func (m *Manager) RenewOrderLeases(ctx context.Context, orderID int) error {
	_, err := m.db.Lease.Update().
		Where(lease.OwnerOrderID(orderID)).
		SetLeaseExpiresAt(time.Now().Add(m.ttl)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to renew leases for order %d: %w", orderID, err)
	}
	return nil
}

// ReleaseOrderLeases deletes every lease held by orderID. Called on the
// worker's completion path regardless of outcome.
func (m *Manager) ReleaseOrderLeases(ctx context.Context, orderID int) error {
	_, err := m.db.Lease.Delete().
		Where(lease.OwnerOrderID(orderID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to release leases for order %d: %w", orderID, err)
	}
	return nil
}

// ActiveLease returns the unexpired lease for a scope, or nil.
func (m *Manager) ActiveLease(ctx context.Context, scopeType lease.ScopeType, scopeKey string) (*ent.Lease, error) {
	row, err := m.db.Lease.Query().
		Where(
			lease.ScopeTypeEQ(scopeType),
			lease.ScopeKey(scopeKey),
			lease.LeaseExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active lease: %w", err)
	}
	return row, nil
}
