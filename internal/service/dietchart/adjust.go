package dietchart

import (
	"math"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// Concentrate increments applied per weight band. Bands not listed here get
// no adjustment: the mid-range bands are already centered in the presets.
var weightConcentrateBump = map[string]float64{
	"0-300kg": 0.5,
	"500kg+":  1.0,
	"20-50kg": 0.1,
	"80kg+":   0.2,
}

const (
	noteHighDairy   = "High-yielding dairy animal: concentrate and mineral allowance increased to support milk production."
	noteDairy       = "Dairy animal: concentrate allowance increased slightly to support lactation."
	noteDualPurpose = "Dual-purpose animal: balanced ration for milk and draught use; no extra supplementation needed."
	noteMeat        = "Meat-type animal: keep the ration steady and focus on consistent body-weight gain."
	noteSick        = "Animal marked sick: concentrate reduced. Offer soft green fodder and clean water, and consult a veterinarian before any further diet change."
	notePregnant    = "Pregnant animal: ration enriched with extra concentrate, minerals and green fodder. Ask a veterinarian for trimester-specific feeding guidance."
)

// adjust runs the three-stage pipeline over a copy of the preset baseline:
// weight-band increment first, then the production-profile multiplier, then
// the health-state multiplier. Intermediate math keeps full precision; every
// quantity is rounded to 2 decimals once, at the end.
func adjust(preset BreedPreset, species models.Species, weightClass string, health models.HealthState) (models.Ration, []string) {
	ration := preset.Baseline
	notes := make([]string, 0, 2)
	goat := species == models.SpeciesGoat

	if bump, ok := weightConcentrateBump[weightClass]; ok {
		ration.ConcentrateKg += bump
	}

	switch preset.Profile {
	case ProfileHighDairy:
		ration.ConcentrateKg *= 1.10
		if goat {
			ration.MineralMixG += 5
		} else {
			ration.MineralMixG += 10
		}
		notes = append(notes, noteHighDairy)
	case ProfileDairy:
		ration.ConcentrateKg *= 1.05
		notes = append(notes, noteDairy)
	case ProfileMeat:
		notes = append(notes, noteMeat)
	default:
		notes = append(notes, noteDualPurpose)
	}

	switch health {
	case models.HealthSick:
		ration.ConcentrateKg *= 0.90
		notes = append(notes, noteSick)
	case models.HealthPregnant:
		if goat {
			ration.ConcentrateKg *= 1.12
			ration.MineralMixG += 10
			ration.GreenFodderKg *= 1.05
		} else {
			ration.ConcentrateKg *= 1.10
			ration.MineralMixG += 15
			ration.GreenFodderKg *= 1.03
		}
		notes = append(notes, notePregnant)
	}

	ration.GreenFodderKg = round2(ration.GreenFodderKg)
	ration.DryFodderKg = round2(ration.DryFodderKg)
	ration.ConcentrateKg = round2(ration.ConcentrateKg)
	ration.MineralMixG = round2(ration.MineralMixG)
	ration.SaltG = round2(ration.SaltG)
	ration.WaterL = round2(ration.WaterL)

	return ration, notes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
