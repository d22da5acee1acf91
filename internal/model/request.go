package model

import "encoding/json"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateFarmRequest struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AreaHectares float64 `json:"area_hectares"`
	CropType     string  `json:"crop_type"`
}

type CreatePredictionRequest struct {
	FarmID             int64           `json:"farm_id"`
	PredictionDate     string          `json:"prediction_date"`
	DroughtProbability float64         `json:"drought_probability"`
	SeverityLevel      string          `json:"severity_level"`
	ConfidenceScore    float64         `json:"confidence_score"`
	SoilMoisture       float64         `json:"soil_moisture"`
	SatelliteData      json.RawMessage `json:"satellite_data"`
	WeatherData        json.RawMessage `json:"weather_data"`
}

type CreateRecoveryPlanRequest struct {
	FarmID                 int64    `json:"farm_id"`
	PredictionID           int64    `json:"prediction_id"`
	PlanTitle              string   `json:"plan_title"`
	PlanDescription        string   `json:"plan_description"`
	RecommendedActions     []string `json:"recommended_actions"`
	EstimatedCost          float64  `json:"estimated_cost"`
	ImplementationTimeline string   `json:"implementation_timeline"`
	PriorityLevel          string   `json:"priority_level"`
}

type CreateAlertRequest struct {
	FarmID    int64  `json:"farm_id"`
	AlertType string `json:"alert_type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

type IngestSatelliteDataRequest struct {
	FarmID                 int64           `json:"farm_id"`
	DataDate               string          `json:"data_date"`
	DataSource             string          `json:"data_source"`
	SoilMoisture           float64         `json:"soil_moisture"`
	VegetationIndex        float64         `json:"vegetation_index"`
	LandSurfaceTemperature float64         `json:"land_surface_temperature"`
	Precipitation          float64         `json:"precipitation"`
	RawData                json.RawMessage `json:"raw_data"`
	ProcessedData          json.RawMessage `json:"processed_data"`
}
