package models

import "time"

// DietLogEntry is the persisted record of one diet-chart inquiry. Entries
// are written once by the intake flow and only ever read back for history
// display.
type DietLogEntry struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	Date           time.Time   `bson:"date" json:"date"`
	CattleType     Species     `bson:"cattle_type" json:"cattleType"`
	Breed          string      `bson:"breed" json:"breed"`
	WeightCategory string      `bson:"weight_category" json:"weightCategory"`
	AgeYears       int         `bson:"age" json:"age"`
	HealthStatus   HealthState `bson:"health_status" json:"healthStatus"`
	Tagged         bool        `bson:"tagged" json:"tagged"`
	DietPlanResult string      `bson:"diet_plan_result" json:"dietPlanResult"`
	CreatedAt      time.Time   `bson:"created_at" json:"createdAt"`
}

// CreateDietLogRequest is the POST /api/diet-logs payload.
type CreateDietLogRequest struct {
	Date           string `json:"date"`
	CattleType     string `json:"cattleType" binding:"required"`
	Breed          string `json:"breed" binding:"required"`
	WeightCategory string `json:"weightCategory" binding:"required"`
	Age            int    `json:"age" binding:"min=0"`
	HealthStatus   string `json:"healthStatus" binding:"required"`
	Tagged         string `json:"tagged"`
	DietPlanResult string `json:"dietPlanResult"`
}
