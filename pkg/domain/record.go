package domain

import "time"

// SentRecord is an append-only log entry written after a confirmed delivery.
// It feeds anti-repetition lookups and is pruned after a retention window.
type SentRecord struct {
	ID        int64
	TenantID  string
	ChatID    int64
	ContentID string
	Category  Category
	Provider  string
	SentAt    time.Time
}

// CooldownEntry is a time-boxed lock keyed by a namespaced string. An entry
// whose expiry is not in the future is logically absent even if still stored.
type CooldownEntry struct {
	Key       string
	ExpiresAt time.Time
}

// WeeklySlot is the persisted random delivery slot for the weekly surprise
// drop. It is re-drawn when the ISO week rolls over and survives restarts.
type WeeklySlot struct {
	TenantID string
	Week     string // ISO week key, e.g. "2026-W35"
	Day      int    // ISO weekday
	Slot     string // HH:MM
}
