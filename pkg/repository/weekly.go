package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/cheerbot/pkg/domain"
)

// WeeklyRepository persists the weekly surprise slot per tenant so a random
// draw survives restarts within the same ISO week.
type WeeklyRepository struct {
	db *sqlx.DB
}

// NewWeeklyRepository creates a new weekly-slot repository
func NewWeeklyRepository(db *sqlx.DB) *WeeklyRepository {
	return &WeeklyRepository{db: db}
}

// Get returns the persisted slot for the tenant, or nil when none exists.
func (r *WeeklyRepository) Get(ctx context.Context, tenantID string) (*domain.WeeklySlot, error) {
	var row struct {
		TenantID string `db:"tenant_id"`
		Week     string `db:"week"`
		Day      int    `db:"day"`
		Slot     string `db:"slot"`
	}
	err := r.db.GetContext(ctx, &row, `SELECT * FROM weekly_slots WHERE tenant_id = ?`, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weekly slot for tenant %s: %w", tenantID, err)
	}
	return &domain.WeeklySlot{TenantID: row.TenantID, Week: row.Week, Day: row.Day, Slot: row.Slot}, nil
}

// Set inserts or replaces the tenant's weekly slot.
func (r *WeeklyRepository) Set(ctx context.Context, ws *domain.WeeklySlot) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO weekly_slots (tenant_id, week, day, slot) VALUES (?, ?, ?, ?)
			 ON CONFLICT(tenant_id) DO UPDATE SET week = excluded.week, day = excluded.day, slot = excluded.slot`,
			ws.TenantID, ws.Week, ws.Day, ws.Slot)
		return err
	})
	if err != nil {
		return fmt.Errorf("set weekly slot for tenant %s: %w", ws.TenantID, err)
	}
	return nil
}

// Delete removes the tenant's weekly slot; unknown tenants are not an error.
func (r *WeeklyRepository) Delete(ctx context.Context, tenantID string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM weekly_slots WHERE tenant_id = ?`, tenantID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete weekly slot for tenant %s: %w", tenantID, err)
	}
	return nil
}
