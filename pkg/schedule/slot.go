package schedule

import "github.com/umputun/cheerbot/pkg/domain"

// CadenceExtended is the three-a-day cadence; the extra midday slot carries
// wellbeing content.
const CadenceExtended = 3

// middaySlot is the designated midday time for extended cadence tenants.
const middaySlot = "12:45"

// categories for the well-known slot times
var slotCategories = map[string]domain.Category{
	"09:15": domain.CategoryMotivation,
	"12:45": domain.CategoryWellbeing,
	"16:30": domain.CategoryTeam,
}

// CategoryForSlot maps a slot time and tenant cadence to a content category.
// Unknown slots fall back to motivation, except the designated midday slot
// of an extended-cadence tenant which stays wellbeing. Total function, a
// valid category always comes back.
func CategoryForSlot(slot string, cadence int) domain.Category {
	if c, ok := slotCategories[slot]; ok {
		return c
	}
	if cadence == CadenceExtended && slot == middaySlot {
		return domain.CategoryWellbeing
	}
	return domain.CategoryMotivation
}
