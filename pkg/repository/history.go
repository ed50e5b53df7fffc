package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/cheerbot/pkg/domain"
)

// HistoryRepository keeps the append-only log of delivered messages. It is
// written after confirmed deliveries, read for per-tenant anti-repetition
// and pruned on a slow cadence.
type HistoryRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db, now: time.Now}
}

// Record appends one sent-message entry.
func (r *HistoryRepository) Record(ctx context.Context, rec *domain.SentRecord) error {
	sentAt := rec.SentAt
	if sentAt.IsZero() {
		sentAt = r.now()
	}
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sent_messages (tenant_id, chat_id, content_id, category, provider, sent_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.TenantID, rec.ChatID, rec.ContentID, rec.Category, rec.Provider, sentAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("record sent message: %w", err)
	}
	return nil
}

// SeenRecently reports whether the content was sent to the tenant within
// the lookback window.
func (r *HistoryRepository) SeenRecently(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error) {
	var seen bool
	err := r.db.GetContext(ctx, &seen,
		`SELECT EXISTS(SELECT 1 FROM sent_messages WHERE tenant_id = ? AND content_id = ? AND sent_at >= ?)`,
		tenantID, contentID, r.now().Add(-window).UTC())
	if err != nil {
		return false, fmt.Errorf("check recency for tenant %s: %w", tenantID, err)
	}
	return seen, nil
}

// Recent returns the tenant's latest entries, newest first. Diagnostic use.
func (r *HistoryRepository) Recent(ctx context.Context, tenantID string, limit int) ([]domain.SentRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows := []struct {
		ID        int64     `db:"id"`
		TenantID  string    `db:"tenant_id"`
		ChatID    int64     `db:"chat_id"`
		ContentID string    `db:"content_id"`
		Category  string    `db:"category"`
		Provider  string    `db:"provider"`
		SentAt    time.Time `db:"sent_at"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM sent_messages WHERE tenant_id = ? ORDER BY sent_at DESC, id DESC LIMIT ?`,
		tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent history for tenant %s: %w", tenantID, err)
	}

	res := make([]domain.SentRecord, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.SentRecord{
			ID:        row.ID,
			TenantID:  row.TenantID,
			ChatID:    row.ChatID,
			ContentID: row.ContentID,
			Category:  domain.Category(row.Category),
			Provider:  row.Provider,
			SentAt:    row.SentAt,
		})
	}
	return res, nil
}

// Prune removes entries older than the retention window and returns the
// count removed.
func (r *HistoryRepository) Prune(ctx context.Context, retention time.Duration) (int, error) {
	var count int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM sent_messages WHERE sent_at < ?`,
			r.now().Add(-retention).UTC())
		if err != nil {
			return err
		}
		count, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("prune sent messages: %w", err)
	}
	return int(count), nil
}
