package service

import (
	"context"
	"strings"
	"time"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type satelliteStore interface {
	Create(ctx context.Context, d model.SatelliteData) (model.SatelliteData, error)
	ListByFarmID(ctx context.Context, farmID int64, limit int) ([]model.SatelliteData, error)
}

type SatelliteService struct {
	data     satelliteStore
	maxLimit int
}

func NewSatelliteService(data satelliteStore, maxLimit int) *SatelliteService {
	if maxLimit <= 0 {
		maxLimit = 30
	}
	return &SatelliteService{data: data, maxLimit: maxLimit}
}

func (s *SatelliteService) Ingest(ctx context.Context, req model.IngestSatelliteDataRequest) (model.SatelliteData, error) {
	req.DataSource = strings.TrimSpace(req.DataSource)

	if req.FarmID <= 0 {
		return model.SatelliteData{}, apierror.BadRequest("farm_id is required", "")
	}
	if req.DataSource == "" {
		return model.SatelliteData{}, apierror.BadRequest("data_source is required", "")
	}
	if strings.TrimSpace(req.DataDate) == "" {
		return model.SatelliteData{}, apierror.BadRequest("data_date is required", "")
	}

	date, err := time.Parse(predictionDateLayout, req.DataDate)
	if err != nil {
		return model.SatelliteData{}, apierror.BadRequest("data_date must be YYYY-MM-DD", req.DataDate)
	}

	return s.data.Create(ctx, model.SatelliteData{
		FarmID:                 req.FarmID,
		DataDate:               date,
		DataSource:             req.DataSource,
		SoilMoisture:           req.SoilMoisture,
		VegetationIndex:        req.VegetationIndex,
		LandSurfaceTemperature: req.LandSurfaceTemperature,
		Precipitation:          req.Precipitation,
		RawData:                req.RawData,
		ProcessedData:          req.ProcessedData,
	})
}

func (s *SatelliteService) ListForFarm(ctx context.Context, farmID int64, limit int) ([]model.SatelliteData, error) {
	if farmID <= 0 {
		return nil, apierror.BadRequest("farm_id is required", "")
	}
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.data.ListByFarmID(ctx, farmID, limit)
}
