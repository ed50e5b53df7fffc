package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ValidTimezones(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // Wednesday noon UTC

	tests := []struct {
		name     string
		timezone string
		clock    string
		weekday  int
	}{
		{"utc", "UTC", "12:00", 3},
		{"berlin summer", "Europe/Berlin", "14:00", 3},
		{"new york", "America/New_York", "08:00", 3},
		{"tokyo next day boundary", "Asia/Tokyo", "21:00", 3},
		{"kathmandu offset minutes", "Asia/Kathmandu", "17:45", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.timezone, now)
			assert.Equal(t, tt.clock, res.Clock)
			assert.Equal(t, tt.weekday, res.Weekday)
			assert.False(t, res.FallbackUsed)
		})
	}
}

func TestResolve_WellFormedForAnyInput(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC) // Sunday

	for _, tz := range []string{"", "garbage", "Not/AZone", "Europe/Nowhere", "   ", "UTC+25"} {
		res := Resolve(tz, now)
		assert.Regexp(t, `^\d{2}:\d{2}$`, res.Clock, "tz %q", tz)
		assert.GreaterOrEqual(t, res.Weekday, 1, "tz %q", tz)
		assert.LessOrEqual(t, res.Weekday, 7, "tz %q", tz)
		assert.True(t, res.FallbackUsed, "tz %q", tz)
		assert.Equal(t, "23:59", res.Clock, "fallback should be UTC for %q", tz)
		assert.Equal(t, 7, res.Weekday, "sunday maps to 7 for %q", tz)
	}
}

func TestResolve_CrossesDateLine(t *testing.T) {
	// late Saturday UTC is already Sunday in Auckland
	now := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)
	res := Resolve("Pacific/Auckland", now)
	assert.Equal(t, 7, res.Weekday)
	assert.False(t, res.FallbackUsed)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "00:15", normalizeClock("24:15"))
	assert.Equal(t, "00:00", normalizeClock("24:00"))
	assert.Equal(t, "23:59", normalizeClock("23:59"))
	assert.Equal(t, "09:15", normalizeClock("09:15"))
}

func TestIsoWeekday_AllDays(t *testing.T) {
	// iterate a full week to cover the whole mapping
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) // Monday
	for i := 0; i < 7; i++ {
		res := Resolve("UTC", start.AddDate(0, 0, i))
		require.Equal(t, i+1, res.Weekday)
	}
}

func TestValidSlotTime(t *testing.T) {
	valid := []string{"00:00", "09:15", "12:45", "16:30", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidSlotTime(s), s)
	}

	invalid := []string{"24:00", "9:15", "12:5", "12:60", "12-45", "", "ab:cd", "012:45"}
	for _, s := range invalid {
		assert.False(t, ValidSlotTime(s), s)
	}
}
