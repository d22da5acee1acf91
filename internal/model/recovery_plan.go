package model

import "time"

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

func ValidPriorityLevel(level string) bool {
	switch level {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type RecoveryPlan struct {
	ID                     int64     `json:"id"`
	FarmID                 int64     `json:"farm_id"`
	PredictionID           int64     `json:"prediction_id"`
	PlanTitle              string    `json:"plan_title"`
	PlanDescription        string    `json:"plan_description"`
	RecommendedActions     []string  `json:"recommended_actions"`
	EstimatedCost          float64   `json:"estimated_cost"`
	ImplementationTimeline string    `json:"implementation_timeline"`
	PriorityLevel          string    `json:"priority_level"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	// Joined from the linked prediction on list queries.
	DroughtProbability *float64 `json:"drought_probability,omitempty"`
	SeverityLevel      *string  `json:"severity_level,omitempty"`
}
