package service

import (
	"context"
	"strings"
	"time"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

const predictionDateLayout = "2006-01-02"

type predictionStore interface {
	Create(ctx context.Context, p model.DroughtPrediction) (model.DroughtPrediction, error)
	ListByFarmID(ctx context.Context, farmID int64) ([]model.DroughtPrediction, error)
	FindLatestByFarmID(ctx context.Context, farmID int64) (model.DroughtPrediction, error)
}

type PredictionService struct {
	predictions predictionStore
}

func NewPredictionService(predictions predictionStore) *PredictionService {
	return &PredictionService{predictions: predictions}
}

func (s *PredictionService) Create(ctx context.Context, req model.CreatePredictionRequest) (model.DroughtPrediction, error) {
	if req.FarmID <= 0 {
		return model.DroughtPrediction{}, apierror.BadRequest("farm_id is required", "")
	}
	if strings.TrimSpace(req.PredictionDate) == "" {
		return model.DroughtPrediction{}, apierror.BadRequest("prediction_date is required", "")
	}

	date, err := time.Parse(predictionDateLayout, req.PredictionDate)
	if err != nil {
		return model.DroughtPrediction{}, apierror.BadRequest("prediction_date must be YYYY-MM-DD", req.PredictionDate)
	}

	if !model.ValidSeverityLevel(req.SeverityLevel) {
		return model.DroughtPrediction{}, apierror.BadRequest("invalid severity_level", req.SeverityLevel)
	}
	if req.DroughtProbability < 0 || req.DroughtProbability > 100 {
		return model.DroughtPrediction{}, apierror.BadRequest("drought_probability must be between 0 and 100", "")
	}
	if req.ConfidenceScore < 0 || req.ConfidenceScore > 100 {
		return model.DroughtPrediction{}, apierror.BadRequest("confidence_score must be between 0 and 100", "")
	}

	return s.predictions.Create(ctx, model.DroughtPrediction{
		FarmID:             req.FarmID,
		PredictionDate:     date,
		DroughtProbability: req.DroughtProbability,
		SeverityLevel:      req.SeverityLevel,
		ConfidenceScore:    req.ConfidenceScore,
		SoilMoisture:       req.SoilMoisture,
		SatelliteData:      req.SatelliteData,
		WeatherData:        req.WeatherData,
	})
}

func (s *PredictionService) ListForFarm(ctx context.Context, farmID int64) ([]model.DroughtPrediction, error) {
	if farmID <= 0 {
		return nil, apierror.BadRequest("farm_id is required", "")
	}
	return s.predictions.ListByFarmID(ctx, farmID)
}

func (s *PredictionService) LatestForFarm(ctx context.Context, farmID int64) (model.DroughtPrediction, error) {
	if farmID <= 0 {
		return model.DroughtPrediction{}, apierror.BadRequest("farm_id is required", "")
	}
	return s.predictions.FindLatestByFarmID(ctx, farmID)
}
