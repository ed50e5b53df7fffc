package domain

import "time"

// Tenant represents a single community with its own delivery schedule.
// Days hold active ISO weekdays (1=Monday, 7=Sunday) and Slots hold daily
// HH:MM delivery times. Slot order is meaningful: position i maps to the
// i-th daily delivery and drives category selection. Day order is not.
type Tenant struct {
	ID         string
	ChatID     int64    // destination chat the messages are posted to
	Timezone   string   // IANA name; may be invalid, resolver falls back to UTC
	Cadence    int      // number of daily slots, 2 or 3
	Days       []int    // active ISO weekdays
	Slots      []string // ordered HH:MM slot times, count should match cadence
	Contextual bool     // contextual replies toggle, consumed by the chat surface
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActiveOn reports whether the tenant receives scheduled sends on the given
// ISO weekday.
func (t *Tenant) ActiveOn(weekday int) bool {
	for _, d := range t.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// HasSlot reports whether the slot time is in the tenant's scheduled set.
func (t *Tenant) HasSlot(slot string) bool {
	for _, s := range t.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
