package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/cheerbot/pkg/domain"
)

func TestCategoryForSlot(t *testing.T) {
	tests := []struct {
		name    string
		slot    string
		cadence int
		want    domain.Category
	}{
		{"morning slot", "09:15", 2, domain.CategoryMotivation},
		{"afternoon slot", "16:30", 2, domain.CategoryTeam},
		{"midday extended", "12:45", 3, domain.CategoryWellbeing},
		{"unknown slot defaults", "11:00", 2, domain.CategoryMotivation},
		{"unknown slot extended defaults", "11:00", 3, domain.CategoryMotivation},
		{"empty slot", "", 2, domain.CategoryMotivation},
		{"zero cadence", "07:00", 0, domain.CategoryMotivation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryForSlot(tt.slot, tt.cadence))
		})
	}
}
