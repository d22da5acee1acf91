package service

import (
	"context"

	"droughtwatch/internal/model"
)

type dashboardStore interface {
	Stats(ctx context.Context, userID int64) (model.DashboardStats, error)
}

type DashboardService struct {
	stats dashboardStore
}

func NewDashboardService(stats dashboardStore) *DashboardService {
	return &DashboardService{stats: stats}
}

func (s *DashboardService) StatsForUser(ctx context.Context, userID int64) (model.DashboardStats, error) {
	return s.stats.Stats(ctx, userID)
}
