package models

import "time"

// DailyActivityReport aggregates one day of site activity for the sales
// team: how many diet-chart inquiries and order inquiries came in.
type DailyActivityReport struct {
	Date          time.Time        `bson:"date" json:"date"`
	DietLogCount  int64            `bson:"diet_log_count" json:"dietLogCount"`
	OrderCount    int64            `bson:"order_count" json:"orderCount"`
	LogsBySpecies map[string]int64 `bson:"logs_by_species" json:"logsBySpecies"`
	Summary       string           `bson:"summary" json:"summary"`
	CreatedAt     time.Time        `bson:"created_at" json:"createdAt"`
}
