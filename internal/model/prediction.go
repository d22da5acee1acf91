package model

import (
	"encoding/json"
	"time"
)

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
	SeverityExtreme  = "extreme"
)

func ValidSeverityLevel(level string) bool {
	switch level {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityExtreme:
		return true
	}
	return false
}

type DroughtPrediction struct {
	ID                 int64           `json:"id"`
	FarmID             int64           `json:"farm_id"`
	PredictionDate     time.Time       `json:"prediction_date"`
	DroughtProbability float64         `json:"drought_probability"`
	SeverityLevel      string          `json:"severity_level"`
	ConfidenceScore    float64         `json:"confidence_score"`
	SoilMoisture       float64         `json:"soil_moisture"`
	SatelliteData      json.RawMessage `json:"satellite_data,omitempty"`
	WeatherData        json.RawMessage `json:"weather_data,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
