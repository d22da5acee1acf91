package service

import (
	"context"
	"strings"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type farmStore interface {
	Create(ctx context.Context, f model.Farm) (model.Farm, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Farm, error)
	FindByID(ctx context.Context, id int64) (model.Farm, error)
}

type FarmService struct {
	farms farmStore
}

func NewFarmService(farms farmStore) *FarmService {
	return &FarmService{farms: farms}
}

func (s *FarmService) Create(ctx context.Context, userID int64, req model.CreateFarmRequest) (model.Farm, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	req.CropType = strings.TrimSpace(req.CropType)

	if req.Name == "" || req.Location == "" || req.CropType == "" {
		return model.Farm{}, apierror.BadRequest("name, location and crop_type are required", "")
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return model.Farm{}, apierror.BadRequest("latitude/longitude out of range", "")
	}
	if req.AreaHectares <= 0 {
		return model.Farm{}, apierror.BadRequest("area_hectares must be positive", "")
	}

	return s.farms.Create(ctx, model.Farm{
		UserID:       userID,
		Name:         req.Name,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AreaHectares: req.AreaHectares,
		CropType:     req.CropType,
	})
}

func (s *FarmService) ListForUser(ctx context.Context, userID int64) ([]model.Farm, error) {
	return s.farms.ListByUserID(ctx, userID)
}

func (s *FarmService) Get(ctx context.Context, id int64) (model.Farm, error) {
	if id <= 0 {
		return model.Farm{}, apierror.BadRequest("farm id is required", "")
	}
	return s.farms.FindByID(ctx, id)
}
