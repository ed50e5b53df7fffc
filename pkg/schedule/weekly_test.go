package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekKey(t *testing.T) {
	assert.Equal(t, "2026-W35", WeekKey(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)))
	// early January belongs to the previous year's last ISO week
	assert.Equal(t, "2020-W53", WeekKey(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-W01", WeekKey(time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)))
}

func TestRandomSlot_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		day, slot := RandomSlot()
		assert.GreaterOrEqual(t, day, 1)
		assert.LessOrEqual(t, day, 7)
		assert.True(t, ValidSlotTime(slot), slot)
		assert.GreaterOrEqual(t, slot, "09:00")
		assert.LessOrEqual(t, slot, "17:59")
	}
}
