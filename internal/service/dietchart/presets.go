package dietchart

import (
	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// ProfileTag is the coarse production category of a breed. It drives the
// concentrate/mineral multipliers in the adjustment pipeline.
type ProfileTag string

const (
	ProfileHighDairy   ProfileTag = "high_dairy"
	ProfileDairy       ProfileTag = "dairy"
	ProfileDualPurpose ProfileTag = "dual_purpose"
	ProfileMeat        ProfileTag = "meat"
)

// OtherBreed is the catch-all preset key every species carries. Unknown
// breeds resolve to it instead of failing.
const OtherBreed = "Other"

// ComponentValues holds one per-kg coefficient for each of the three feed
// components of a ration.
type ComponentValues struct {
	Green       float64
	Dry         float64
	Concentrate float64
}

// BreedPreset is the static baseline for one (species, breed) pair: the
// starting ration, the per-kg dry-matter and crude-protein coefficients and
// the production profile. Presets are defined once below and never mutated;
// the pipeline always works on copies.
type BreedPreset struct {
	Profile           ProfileTag
	Baseline          models.Ration
	DryMatterPerKg    ComponentValues
	CrudeProteinPerKg ComponentValues
	Region            string
}

// Per-species coefficient sets. Green fodder is mostly water, so its
// dry-matter fraction is low; concentrate is the protein-dense component.
var (
	cowCoefficients = struct{ dm, cp ComponentValues }{
		dm: ComponentValues{Green: 0.22, Dry: 0.88, Concentrate: 0.90},
		cp: ComponentValues{Green: 18, Dry: 55, Concentrate: 180},
	}
	buffaloCoefficients = struct{ dm, cp ComponentValues }{
		dm: ComponentValues{Green: 0.23, Dry: 0.88, Concentrate: 0.90},
		cp: ComponentValues{Green: 20, Dry: 50, Concentrate: 180},
	}
	goatCoefficients = struct{ dm, cp ComponentValues }{
		dm: ComponentValues{Green: 0.25, Dry: 0.90, Concentrate: 0.90},
		cp: ComponentValues{Green: 22, Dry: 60, Concentrate: 190},
	}
)

func cowPreset(profile ProfileTag, green, dry, conc, mineral, salt, water float64, region string) BreedPreset {
	return BreedPreset{
		Profile: profile,
		Baseline: models.Ration{
			GreenFodderKg: green,
			DryFodderKg:   dry,
			ConcentrateKg: conc,
			MineralMixG:   mineral,
			SaltG:         salt,
			WaterL:        water,
		},
		DryMatterPerKg:    cowCoefficients.dm,
		CrudeProteinPerKg: cowCoefficients.cp,
		Region:            region,
	}
}

func buffaloPreset(profile ProfileTag, green, dry, conc, mineral, salt, water float64, region string) BreedPreset {
	p := cowPreset(profile, green, dry, conc, mineral, salt, water, region)
	p.DryMatterPerKg = buffaloCoefficients.dm
	p.CrudeProteinPerKg = buffaloCoefficients.cp
	return p
}

func goatPreset(profile ProfileTag, green, dry, conc, mineral, salt, water float64, region string) BreedPreset {
	p := cowPreset(profile, green, dry, conc, mineral, salt, water, region)
	p.DryMatterPerKg = goatCoefficients.dm
	p.CrudeProteinPerKg = goatCoefficients.cp
	return p
}

// breedOrder fixes the display order of breeds per species; presets holds
// the lookup table itself. Both are built from the same literals, so the
// intake form's option list and the engine can never drift apart.
var (
	breedOrder = map[models.Species][]string{
		models.SpeciesCow: {
			"Gir", "Sahiwal", "Red Sindhi", "Tharparkar", "Kankrej",
			"Hariana", "Ongole", "Holstein Friesian", "Jersey", OtherBreed,
		},
		models.SpeciesBuffalo: {
			"Murrah", "Jaffarabadi", "Mehsana", "Surti", "Nili-Ravi",
			"Bhadawari", OtherBreed,
		},
		models.SpeciesGoat: {
			"Jamunapari", "Beetal", "Barbari", "Sirohi", "Black Bengal",
			"Osmanabadi", "Boer", OtherBreed,
		},
	}

	presets = map[models.Species]map[string]BreedPreset{
		models.SpeciesCow: {
			"Gir":               cowPreset(ProfileDairy, 28, 6, 6.0, 50, 30, 70, "Gujarat"),
			"Sahiwal":           cowPreset(ProfileDairy, 30, 6, 6.5, 50, 30, 75, "Punjab"),
			"Red Sindhi":        cowPreset(ProfileDairy, 26, 5.5, 5.5, 50, 30, 65, "Rajasthan"),
			"Tharparkar":        cowPreset(ProfileDualPurpose, 26, 6, 5.0, 45, 25, 65, "Rajasthan"),
			"Kankrej":           cowPreset(ProfileDualPurpose, 25, 6.5, 5.0, 45, 25, 65, "Gujarat"),
			"Hariana":           cowPreset(ProfileDualPurpose, 24, 6, 4.5, 45, 25, 60, "Haryana"),
			"Ongole":            cowPreset(ProfileDualPurpose, 25, 6.5, 4.5, 45, 25, 65, "Andhra Pradesh"),
			"Holstein Friesian": cowPreset(ProfileHighDairy, 35, 7, 8.0, 60, 35, 90, "Crossbred (exotic)"),
			"Jersey":            cowPreset(ProfileHighDairy, 30, 6, 7.0, 55, 30, 80, "Crossbred (exotic)"),
			OtherBreed:          cowPreset(ProfileDualPurpose, 25, 6, 5.0, 45, 25, 60, ""),
		},
		models.SpeciesBuffalo: {
			"Murrah":      buffaloPreset(ProfileHighDairy, 32, 7, 7.0, 55, 30, 80, "Haryana"),
			"Jaffarabadi": buffaloPreset(ProfileDairy, 30, 7, 6.5, 50, 30, 80, "Gujarat"),
			"Mehsana":     buffaloPreset(ProfileDairy, 30, 6.5, 6.5, 50, 30, 75, "Gujarat"),
			"Surti":       buffaloPreset(ProfileDairy, 28, 6, 6.0, 50, 30, 70, "Gujarat"),
			"Nili-Ravi":   buffaloPreset(ProfileHighDairy, 31, 7, 6.8, 55, 30, 80, "Punjab"),
			"Bhadawari":   buffaloPreset(ProfileDualPurpose, 26, 6, 5.5, 45, 25, 65, "Uttar Pradesh"),
			OtherBreed:    buffaloPreset(ProfileDairy, 28, 6.5, 6.0, 50, 30, 70, ""),
		},
		models.SpeciesGoat: {
			"Jamunapari":   goatPreset(ProfileHighDairy, 3.2, 0.8, 0.95, 15, 8, 9, "Uttar Pradesh"),
			"Beetal":       goatPreset(ProfileDairy, 3.0, 0.8, 0.9, 15, 8, 8, "Punjab"),
			"Barbari":      goatPreset(ProfileDairy, 2.5, 0.6, 0.7, 12, 6, 7, "Uttar Pradesh"),
			"Sirohi":       goatPreset(ProfileDualPurpose, 2.8, 0.7, 0.75, 12, 6, 8, "Rajasthan"),
			"Black Bengal": goatPreset(ProfileMeat, 2.2, 0.5, 0.6, 10, 5, 6, "West Bengal"),
			"Osmanabadi":   goatPreset(ProfileMeat, 2.5, 0.6, 0.65, 10, 5, 7, "Maharashtra"),
			"Boer":         goatPreset(ProfileMeat, 3.0, 0.8, 0.9, 15, 8, 8, "Crossbred (exotic)"),
			OtherBreed:     goatPreset(ProfileDualPurpose, 2.5, 0.6, 0.7, 12, 6, 7, ""),
		},
	}

	weightClasses = map[models.Species][]string{
		models.SpeciesCow:     {"0-300kg", "300-500kg", "500kg+"},
		models.SpeciesBuffalo: {"0-300kg", "300-500kg", "500kg+"},
		models.SpeciesGoat:    {"20-50kg", "50-80kg", "80kg+"},
	}
)

// Lookup resolves the preset for a (species, breed) pair. It is total: an
// unknown or empty breed resolves to the species' "Other" preset, which is
// the documented default-safety rule rather than an error.
func Lookup(species models.Species, breed string) BreedPreset {
	table, ok := presets[species]
	if !ok {
		// Unknown species never reaches the engine through validated
		// input; fall back to the most conservative table.
		table = presets[models.SpeciesGoat]
	}
	if preset, ok := table[breed]; ok {
		return preset
	}
	return table[OtherBreed]
}

// Breeds returns the selectable breeds for a species in display order.
func Breeds(species models.Species) []string {
	out := make([]string, len(breedOrder[species]))
	copy(out, breedOrder[species])
	return out
}

// WeightClasses returns the selectable weight bands for a species.
func WeightClasses(species models.Species) []string {
	out := make([]string, len(weightClasses[species]))
	copy(out, weightClasses[species])
	return out
}

// KnownBreed reports whether breed is part of the species' enumeration.
func KnownBreed(species models.Species, breed string) bool {
	_, ok := presets[species][breed]
	return ok
}

// KnownWeightClass reports whether class is part of the species' bands.
func KnownWeightClass(species models.Species, class string) bool {
	for _, c := range weightClasses[species] {
		if c == class {
			return true
		}
	}
	return false
}
