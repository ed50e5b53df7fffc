package schedule

import (
	"fmt"
	"math/rand"
	"time"
)

// WeekKey returns the ISO week identifier for t, e.g. "2026-W35". The weekly
// surprise slot is persisted under this key and re-drawn when it changes.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// RandomSlot draws a random weekly delivery slot: any ISO weekday, any
// minute within working hours (09:00-17:59).
func RandomSlot() (day int, slot string) {
	day = rand.Intn(7) + 1 //nolint:gosec // scheduling jitter, not crypto
	hour := 9 + rand.Intn(9)
	minute := rand.Intn(60)
	return day, fmt.Sprintf("%02d:%02d", hour, minute)
}
