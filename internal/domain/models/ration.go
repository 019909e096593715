package models

// Ration holds the daily feed-component quantities recommended for one
// animal. Quantities shown to the farmer are rounded to 2 decimals by the
// adjustment pipeline before they reach this struct's consumers.
type Ration struct {
	GreenFodderKg float64 `json:"greenFodderKg"`
	DryFodderKg   float64 `json:"dryFodderKg"`
	ConcentrateKg float64 `json:"concentrateKg"`
	MineralMixG   float64 `json:"mineralMixG"`
	SaltG         float64 `json:"saltG"`
	WaterL        float64 `json:"waterL"`
}

// NutritionSummary carries the derived nutrition estimates for a finalized
// ration. The energy figure uses fixed per-kg coefficients and is a
// first-order approximation, not a veterinary-grade computation.
type NutritionSummary struct {
	DryMatterKg   float64 `json:"targetDryMatterKg"`
	CrudeProteinG int     `json:"crudeProteinG"`
	EnergyMJ      float64 `json:"energyMJ"`
}

// ScheduleSlot is one feeding-time entry: a display label plus the feed
// items offered in that slot. Purely presentational.
type ScheduleSlot struct {
	TimeLabel string   `json:"timeLabel"`
	Items     []string `json:"items"`
}

// DietChart is the full engine output handed to the result view: the
// adjusted ration, derived nutrition, the per-species feeding schedule and
// any advisory notes accumulated during adjustment.
type DietChart struct {
	Profile    AnimalProfile    `json:"profile"`
	RegionHint string           `json:"breedRegion,omitempty"`
	Ration     Ration           `json:"ration"`
	Nutrition  NutritionSummary `json:"nutrition"`
	Schedule   []ScheduleSlot   `json:"schedule"`
	Notes      []string         `json:"notes"`
}
