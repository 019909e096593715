package dietchart_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
)

func profile(species models.Species, breed, weight string, health models.HealthState) models.AnimalProfile {
	return models.AnimalProfile{
		Species:        species,
		Breed:          breed,
		WeightCategory: weight,
		AgeYears:       4,
		HealthState:    health,
	}
}

func TestComputeHealthyGir(t *testing.T) {
	svc := dietchart.NewService(nil)

	chart := svc.Compute(profile(models.SpeciesCow, "Gir", "0-300kg", models.HealthHealthy))

	// (6.0 + 0.5 weight bump) * 1.05 dairy multiplier = 6.825 -> 6.83.
	require.Equal(t, 6.83, chart.Ration.ConcentrateKg)
	require.Equal(t, 28.0, chart.Ration.GreenFodderKg)
	require.Equal(t, "Gujarat", chart.RegionHint)
	require.Len(t, chart.Schedule, 3)
	require.Len(t, chart.Notes, 1)
}

func TestComputePregnantJamunapari(t *testing.T) {
	svc := dietchart.NewService(nil)

	chart := svc.Compute(profile(models.SpeciesGoat, "Jamunapari", "20-50kg", models.HealthPregnant))

	// (0.95 + 0.1) * 1.10 high-dairy * 1.12 pregnant = 1.2936 -> 1.29.
	require.Equal(t, 1.29, chart.Ration.ConcentrateKg)
	// 3.2 * 1.05 pregnant green bump = 3.36.
	require.Equal(t, 3.36, chart.Ration.GreenFodderKg)
	// 15 baseline + 5 high-dairy + 10 pregnant.
	require.Equal(t, 30.0, chart.Ration.MineralMixG)
	require.Len(t, chart.Schedule, 2)
	require.Len(t, chart.Notes, 2)
}

func TestComputeSickReducesConcentrate(t *testing.T) {
	svc := dietchart.NewService(nil)

	healthy := svc.Compute(profile(models.SpeciesBuffalo, "Murrah", "300-500kg", models.HealthHealthy))
	sick := svc.Compute(profile(models.SpeciesBuffalo, "Murrah", "300-500kg", models.HealthSick))

	require.Less(t, sick.Ration.ConcentrateKg, healthy.Ration.ConcentrateKg)
	require.NotEmpty(t, sick.Notes)
	assert.Contains(t, sick.Notes[len(sick.Notes)-1], "veterinarian")
}

func TestConcentrateMonotonicAcrossHealthStates(t *testing.T) {
	svc := dietchart.NewService(nil)

	for _, species := range models.AllSpecies {
		for _, breed := range dietchart.Breeds(species) {
			for _, weight := range dietchart.WeightClasses(species) {
				healthy := svc.Compute(profile(species, breed, weight, models.HealthHealthy))
				sick := svc.Compute(profile(species, breed, weight, models.HealthSick))
				pregnant := svc.Compute(profile(species, breed, weight, models.HealthPregnant))

				require.Greater(t, pregnant.Ration.ConcentrateKg, healthy.Ration.ConcentrateKg,
					"%s/%s/%s pregnant vs healthy", species, breed, weight)
				require.Greater(t, healthy.Ration.ConcentrateKg, sick.Ration.ConcentrateKg,
					"%s/%s/%s healthy vs sick", species, breed, weight)
			}
		}
	}
}

func TestComputeTotalOverEnumerations(t *testing.T) {
	svc := dietchart.NewService(nil)

	assertRounded := func(t *testing.T, v float64, field string) {
		t.Helper()
		scaled := v * 100
		require.InDelta(t, math.Round(scaled), scaled, 1e-6, "%s not rounded to 2 decimals: %v", field, v)
	}

	for _, species := range models.AllSpecies {
		for _, breed := range dietchart.Breeds(species) {
			for _, weight := range dietchart.WeightClasses(species) {
				for _, health := range models.AllHealthStates {
					chart := svc.Compute(profile(species, breed, weight, health))

					r := chart.Ration
					for field, v := range map[string]float64{
						"greenFodderKg": r.GreenFodderKg,
						"dryFodderKg":   r.DryFodderKg,
						"concentrateKg": r.ConcentrateKg,
						"mineralMixG":   r.MineralMixG,
						"saltG":         r.SaltG,
						"waterL":        r.WaterL,
						"dryMatterKg":   chart.Nutrition.DryMatterKg,
						"energyMJ":      chart.Nutrition.EnergyMJ,
					} {
						require.GreaterOrEqual(t, v, 0.0, "%s/%s/%s/%s %s", species, breed, weight, health, field)
						assertRounded(t, v, field)
					}
					require.GreaterOrEqual(t, chart.Nutrition.CrudeProteinG, 0)
					require.NotEmpty(t, chart.Schedule)
				}
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	svc := dietchart.NewService(nil)
	p := profile(models.SpeciesCow, "Sahiwal", "500kg+", models.HealthPregnant)

	first := svc.Compute(p)
	second := svc.Compute(p)

	require.Equal(t, first, second)
}

func TestValidateProfile(t *testing.T) {
	svc := dietchart.NewService(nil)

	require.NoError(t, svc.ValidateProfile(profile(models.SpeciesCow, "Gir", "0-300kg", models.HealthHealthy)))

	tests := []struct {
		name    string
		profile models.AnimalProfile
	}{
		{"unknown species", profile("Camel", "Gir", "0-300kg", models.HealthHealthy)},
		{"unknown breed", profile(models.SpeciesCow, "Murrah", "0-300kg", models.HealthHealthy)},
		{"unknown weight class", profile(models.SpeciesGoat, "Beetal", "0-300kg", models.HealthHealthy)},
		{"unknown health state", profile(models.SpeciesCow, "Gir", "0-300kg", "Tired")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, svc.ValidateProfile(tc.profile))
		})
	}
}

func TestSummaryMentionsEveryComponent(t *testing.T) {
	svc := dietchart.NewService(nil)
	chart := svc.Compute(profile(models.SpeciesCow, "Gir", "0-300kg", models.HealthHealthy))

	summary := dietchart.Summary(chart)
	for _, fragment := range []string{"Green", "Dry", "Concentrate", "Mineral", "Salt", "Water", "DM", "CP", "ME"} {
		assert.Contains(t, summary, fragment)
	}
	assert.Contains(t, summary, "6.83")
}

func TestOptionsDeriveFromPresetTable(t *testing.T) {
	svc := dietchart.NewService(nil)

	options, healthStates := svc.Options()
	require.Len(t, options, len(models.AllSpecies))
	require.Equal(t, models.AllHealthStates, healthStates)

	for _, opt := range options {
		require.Equal(t, dietchart.Breeds(opt.Species), opt.Breeds)
		require.Equal(t, dietchart.WeightClasses(opt.Species), opt.WeightClasses)
	}
}
