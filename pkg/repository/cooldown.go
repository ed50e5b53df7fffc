package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/cheerbot/pkg/domain"
)

// CooldownRepository implements the time-boxed locks used both for user
// facing rate limits and for the scheduler's double-send guard. Expiry is
// lazy: a row whose expiry is not in the future is treated as absent on
// every read; physical removal happens in Cleanup, which runs on a slow
// cadence decoupled from the per-minute scheduler.
//
// All operations are atomic at single-key granularity, which is all the
// callers need: every key is scoped to one tenant or one user.
type CooldownRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewCooldownRepository creates a new cooldown repository
func NewCooldownRepository(db *sqlx.DB) *CooldownRepository {
	return &CooldownRepository{db: db, now: time.Now}
}

// Set inserts or overwrites the expiry for a key.
func (r *CooldownRepository) Set(ctx context.Context, key string, expiresAt time.Time) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO cooldowns (key, expires_at) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET expires_at = excluded.expires_at`,
			key, expiresAt.UnixMilli())
		return err
	})
	if err != nil {
		return fmt.Errorf("set cooldown %s: %w", key, err)
	}
	return nil
}

// SetWithTTL sets a cooldown expiring after the duration.
func (r *CooldownRepository) SetWithTTL(ctx context.Context, key string, ttl time.Duration) error {
	return r.Set(ctx, key, r.now().Add(ttl))
}

// Get returns the expiry for a key, reporting absence for unknown keys and
// for expired-but-unswept rows alike.
func (r *CooldownRepository) Get(ctx context.Context, key string) (time.Time, bool, error) {
	var ms int64
	err := r.db.GetContext(ctx, &ms, `SELECT expires_at FROM cooldowns WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get cooldown %s: %w", key, err)
	}

	expiresAt := time.UnixMilli(ms)
	if !expiresAt.After(r.now()) {
		return time.Time{}, false, nil
	}
	return expiresAt, true, nil
}

// IsOnCooldown reports whether the key has an unexpired entry.
func (r *CooldownRepository) IsOnCooldown(ctx context.Context, key string) (bool, error) {
	_, found, err := r.Get(ctx, key)
	return found, err
}

// Remaining returns how long the key stays on cooldown, zero for absent or
// expired keys.
func (r *CooldownRepository) Remaining(ctx context.Context, key string) (time.Duration, error) {
	expiresAt, found, err := r.Get(ctx, key)
	if err != nil || !found {
		return 0, err
	}
	remaining := expiresAt.Sub(r.now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// Delete removes a key; deleting an absent key is not an error.
func (r *CooldownRepository) Delete(ctx context.Context, key string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM cooldowns WHERE key = ?`, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete cooldown %s: %w", key, err)
	}
	return nil
}

// DeleteTenant bulk-removes every cooldown in the tenant's namespace
// (scheduled slot guards and guild-level limits) and returns the count.
// Keys of other tenants are never touched.
func (r *CooldownRepository) DeleteTenant(ctx context.Context, tenantID string) (int, error) {
	var count int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			`DELETE FROM cooldowns WHERE key LIKE ? OR key LIKE ?`,
			"guild:"+tenantID+":%", "scheduled:"+tenantID+":%")
		if err != nil {
			return err
		}
		count, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete cooldowns for tenant %s: %w", tenantID, err)
	}
	return int(count), nil
}

// Cleanup physically removes every expired row and returns the count.
func (r *CooldownRepository) Cleanup(ctx context.Context) (int, error) {
	var count int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM cooldowns WHERE expires_at <= ?`, r.now().UnixMilli())
		if err != nil {
			return err
		}
		count, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("cleanup cooldowns: %w", err)
	}
	return int(count), nil
}

// ListActive returns unexpired entries ordered by soonest to expire, capped
// at limit. Diagnostic use only.
func (r *CooldownRepository) ListActive(ctx context.Context, limit int) ([]domain.CooldownEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows := []struct {
		Key       string `db:"key"`
		ExpiresAt int64  `db:"expires_at"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT key, expires_at FROM cooldowns WHERE expires_at > ? ORDER BY expires_at LIMIT ?`,
		r.now().UnixMilli(), limit)
	if err != nil {
		return nil, fmt.Errorf("list active cooldowns: %w", err)
	}

	res := make([]domain.CooldownEntry, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.CooldownEntry{Key: row.Key, ExpiresAt: time.UnixMilli(row.ExpiresAt)})
	}
	return res, nil
}
