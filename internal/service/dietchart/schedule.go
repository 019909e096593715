package dietchart

import "github.com/godhanfeeds/godhan/internal/domain/models"

// Schedule returns the per-species feeding-time template. The slots depend
// only on the species, never on the computed quantities; cattle and buffalo
// get three slots, goats two.
func Schedule(species models.Species) []models.ScheduleSlot {
	if species == models.SpeciesGoat {
		return []models.ScheduleSlot{
			{
				TimeLabel: "Morning (7:00 - 8:00 AM)",
				Items:     []string{"Green fodder mixed with concentrate", "Fresh drinking water"},
			},
			{
				TimeLabel: "Evening (5:00 - 6:00 PM)",
				Items:     []string{"Dry fodder", "Mineral mix and salt", "Fresh drinking water"},
			},
		}
	}

	return []models.ScheduleSlot{
		{
			TimeLabel: "Morning (6:00 - 7:00 AM)",
			Items:     []string{"Half of the green fodder", "Half of the concentrate", "Fresh drinking water"},
		},
		{
			TimeLabel: "Afternoon (12:00 - 1:00 PM)",
			Items:     []string{"Dry fodder", "Mineral mix and salt", "Fresh drinking water"},
		},
		{
			TimeLabel: "Evening (5:00 - 6:00 PM)",
			Items:     []string{"Remaining green fodder", "Remaining concentrate", "Fresh drinking water"},
		},
	}
}
