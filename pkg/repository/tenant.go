package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/cheerbot/pkg/domain"
)

// TenantRepository handles tenant schedule configuration. Read-mostly: the
// scheduler enumerates every tenant once a minute, writes only come from
// the admin surface.
type TenantRepository struct {
	db *sqlx.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *sqlx.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// tenantSQL mirrors the tenants table. Days and slots are comma-joined in
// storage; the adapter types keep that encoding out of the domain model.
type tenantSQL struct {
	ID         string    `db:"id"`
	ChatID     int64     `db:"chat_id"`
	Timezone   string    `db:"timezone"`
	Cadence    int       `db:"cadence"`
	Days       daysSQL   `db:"days"`
	Slots      slotsSQL  `db:"slots"`
	Contextual bool      `db:"contextual"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// daysSQL is a comma-joined list of ISO weekdays for SQL operations
type daysSQL []int

// Value implements driver.Valuer for database storage
func (d daysSQL) Value() (driver.Value, error) {
	parts := make([]string, 0, len(d))
	for _, v := range d {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ","), nil
}

// Scan implements sql.Scanner for database retrieval
func (d *daysSQL) Scan(value interface{}) error {
	s, err := scanString(value)
	if err != nil {
		return err
	}
	*d = daysSQL{}
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("parse day %q: %w", part, err)
		}
		*d = append(*d, v)
	}
	return nil
}

// slotsSQL is a comma-joined ordered list of HH:MM times for SQL operations
type slotsSQL []string

// Value implements driver.Valuer for database storage
func (s slotsSQL) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *slotsSQL) Scan(value interface{}) error {
	str, err := scanString(value)
	if err != nil {
		return err
	}
	*s = slotsSQL{}
	if str == "" {
		return nil
	}
	for _, part := range strings.Split(str, ",") {
		*s = append(*s, strings.TrimSpace(part))
	}
	return nil
}

func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("unsupported scan type %T", value)
}

// Get returns the tenant config, or nil when the tenant is unknown.
func (r *TenantRepository) Get(ctx context.Context, id string) (*domain.Tenant, error) {
	var row tenantSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tenants WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// List returns every tenant config; the scheduler calls this once per tick.
func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var rows []tenantSQL
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM tenants ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	res := make([]domain.Tenant, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row.toDomain())
	}
	return res, nil
}

// Upsert inserts or fully replaces the tenant config. The created timestamp
// of an existing row is preserved, the updated timestamp always refreshes.
func (r *TenantRepository) Upsert(ctx context.Context, t *domain.Tenant) error {
	now := time.Now().UTC()
	row := tenantSQL{
		ID:         t.ID,
		ChatID:     t.ChatID,
		Timezone:   t.Timezone,
		Cadence:    t.Cadence,
		Days:       daysSQL(t.Days),
		Slots:      slotsSQL(t.Slots),
		Contextual: t.Contextual,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO tenants (id, chat_id, timezone, cadence, days, slots, contextual, created_at, updated_at)
			VALUES (:id, :chat_id, :timezone, :cadence, :days, :slots, :contextual, :created_at, :updated_at)
			ON CONFLICT(id) DO UPDATE SET
				chat_id = excluded.chat_id,
				timezone = excluded.timezone,
				cadence = excluded.cadence,
				days = excluded.days,
				slots = excluded.slots,
				contextual = excluded.contextual,
				updated_at = excluded.updated_at`,
			row)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert tenant %s: %w", t.ID, err)
	}
	return nil
}

// Delete removes the tenant config; unknown tenants are not an error.
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete tenant %s: %w", id, err)
	}
	return nil
}

func (t *tenantSQL) toDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:         t.ID,
		ChatID:     t.ChatID,
		Timezone:   t.Timezone,
		Cadence:    t.Cadence,
		Days:       t.Days,
		Slots:      t.Slots,
		Contextual: t.Contextual,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
