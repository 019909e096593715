package dietchart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// Service assembles diet charts from animal profiles. It is pure and holds
// no mutable state, so one instance serves all requests concurrently.
type Service struct {
	logger *zap.Logger
}

// NewService wires a diet-chart service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Compute runs the full engine for one profile: preset lookup, the
// adjustment pipeline, derived nutrition and the feeding schedule. It is
// total over validated profiles; an unknown breed silently resolves to the
// species' "Other" preset.
func (s *Service) Compute(profile models.AnimalProfile) models.DietChart {
	preset := Lookup(profile.Species, profile.Breed)
	ration, notes := adjust(preset, profile.Species, profile.WeightCategory, profile.HealthState)

	region := profile.BreedRegion
	if region == "" {
		region = preset.Region
	}

	s.logger.Debug("diet chart computed",
		zap.String("species", string(profile.Species)),
		zap.String("breed", profile.Breed),
		zap.String("weight_category", profile.WeightCategory),
		zap.String("health_status", string(profile.HealthState)))

	return models.DietChart{
		Profile:    profile,
		RegionHint: region,
		Ration:     ration,
		Nutrition:  computeNutrition(ration, preset),
		Schedule:   Schedule(profile.Species),
		Notes:      notes,
	}
}

// ValidateProfile applies the intake form's schema check: every enumerated
// field must belong to its per-species enumeration. This is stricter than
// the result view, which lets unknown breeds fall back to "Other".
func (s *Service) ValidateProfile(profile models.AnimalProfile) error {
	if _, ok := models.ParseSpecies(string(profile.Species)); !ok {
		return fmt.Errorf("unknown cattleType %q", profile.Species)
	}
	if !KnownBreed(profile.Species, profile.Breed) {
		return fmt.Errorf("unknown breed %q for %s", profile.Breed, profile.Species)
	}
	if !KnownWeightClass(profile.Species, profile.WeightCategory) {
		return fmt.Errorf("unknown weightCategory %q for %s", profile.WeightCategory, profile.Species)
	}
	if _, ok := models.ParseHealthState(string(profile.HealthState)); !ok {
		return fmt.Errorf("unknown healthStatus %q", profile.HealthState)
	}
	if profile.AgeYears < 0 {
		return fmt.Errorf("age must not be negative")
	}
	return nil
}

// Summary renders a chart as the one-line string stored on a DietLogEntry.
func Summary(chart models.DietChart) string {
	r := chart.Ration
	n := chart.Nutrition
	return fmt.Sprintf(
		"Green %.2f kg, Dry %.2f kg, Concentrate %.2f kg, Mineral %.0f g, Salt %.0f g, Water %.0f L | DM %.2f kg, CP %d g, ME %.2f MJ",
		r.GreenFodderKg, r.DryFodderKg, r.ConcentrateKg, r.MineralMixG, r.SaltG, r.WaterL,
		n.DryMatterKg, n.CrudeProteinG, n.EnergyMJ,
	)
}

// SpeciesOptions is the per-species slice of the intake form's option
// lists, served by the options endpoint.
type SpeciesOptions struct {
	Species       models.Species `json:"cattleType"`
	Breeds        []string       `json:"breeds"`
	WeightClasses []string       `json:"weightCategories"`
}

// Options returns the option lists for every species plus the shared health
// states, all derived from the preset table itself.
func (s *Service) Options() ([]SpeciesOptions, []models.HealthState) {
	options := make([]SpeciesOptions, 0, len(models.AllSpecies))
	for _, species := range models.AllSpecies {
		options = append(options, SpeciesOptions{
			Species:       species,
			Breeds:        Breeds(species),
			WeightClasses: WeightClasses(species),
		})
	}
	return options, models.AllHealthStates
}
