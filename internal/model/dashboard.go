package model

type DashboardStats struct {
	TotalFarms        int `json:"total_farms"`
	UnreadAlerts      int `json:"unread_alerts"`
	ActivePredictions int `json:"active_predictions"`
	PendingPlans      int `json:"pending_plans"`
}
