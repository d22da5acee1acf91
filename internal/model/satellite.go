package model

import (
	"encoding/json"
	"time"
)

type SatelliteData struct {
	ID                     int64           `json:"id"`
	FarmID                 int64           `json:"farm_id"`
	DataDate               time.Time       `json:"data_date"`
	DataSource             string          `json:"data_source"`
	SoilMoisture           float64         `json:"soil_moisture"`
	VegetationIndex        float64         `json:"vegetation_index"`
	LandSurfaceTemperature float64         `json:"land_surface_temperature"`
	Precipitation          float64         `json:"precipitation"`
	RawData                json.RawMessage `json:"raw_data,omitempty"`
	ProcessedData          json.RawMessage `json:"processed_data,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
}
