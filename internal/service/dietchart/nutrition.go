package dietchart

import (
	"math"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// Fixed per-kg metabolizable-energy coefficients (MJ). A first-order
// approximation shared by all species, not a per-feed lookup.
const (
	energyGreenMJPerKg       = 2
	energyDryMJPerKg         = 6
	energyConcentrateMJPerKg = 12
)

// computeNutrition derives the dry-matter, crude-protein and energy totals
// for a finalized ration using the preset's per-kg coefficients. DM and ME
// are rounded to 2 decimals, CP to the nearest gram.
func computeNutrition(ration models.Ration, preset BreedPreset) models.NutritionSummary {
	dryMatter := ration.GreenFodderKg*preset.DryMatterPerKg.Green +
		ration.DryFodderKg*preset.DryMatterPerKg.Dry +
		ration.ConcentrateKg*preset.DryMatterPerKg.Concentrate

	protein := ration.GreenFodderKg*preset.CrudeProteinPerKg.Green +
		ration.DryFodderKg*preset.CrudeProteinPerKg.Dry +
		ration.ConcentrateKg*preset.CrudeProteinPerKg.Concentrate

	energy := ration.GreenFodderKg*energyGreenMJPerKg +
		ration.DryFodderKg*energyDryMJPerKg +
		ration.ConcentrateKg*energyConcentrateMJPerKg

	return models.NutritionSummary{
		DryMatterKg:   round2(dryMatter),
		CrudeProteinG: int(math.Round(protein)),
		EnergyMJ:      round2(energy),
	}
}
