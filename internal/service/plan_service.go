package service

import (
	"context"
	"strings"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type planStore interface {
	Create(ctx context.Context, p model.RecoveryPlan) (model.RecoveryPlan, error)
	ListByFarmID(ctx context.Context, farmID int64) ([]model.RecoveryPlan, error)
}

type RecoveryPlanService struct {
	plans planStore
}

func NewRecoveryPlanService(plans planStore) *RecoveryPlanService {
	return &RecoveryPlanService{plans: plans}
}

func (s *RecoveryPlanService) Create(ctx context.Context, req model.CreateRecoveryPlanRequest) (model.RecoveryPlan, error) {
	req.PlanTitle = strings.TrimSpace(req.PlanTitle)
	req.PlanDescription = strings.TrimSpace(req.PlanDescription)
	req.ImplementationTimeline = strings.TrimSpace(req.ImplementationTimeline)

	if req.FarmID <= 0 || req.PredictionID <= 0 {
		return model.RecoveryPlan{}, apierror.BadRequest("farm_id and prediction_id are required", "")
	}
	if req.PlanTitle == "" || req.PlanDescription == "" || req.ImplementationTimeline == "" {
		return model.RecoveryPlan{}, apierror.BadRequest("plan_title, plan_description and implementation_timeline are required", "")
	}

	if req.PriorityLevel == "" {
		req.PriorityLevel = model.PriorityMedium
	}
	if !model.ValidPriorityLevel(req.PriorityLevel) {
		return model.RecoveryPlan{}, apierror.BadRequest("invalid priority_level", req.PriorityLevel)
	}

	actions := req.RecommendedActions
	if actions == nil {
		actions = []string{}
	}

	return s.plans.Create(ctx, model.RecoveryPlan{
		FarmID:                 req.FarmID,
		PredictionID:           req.PredictionID,
		PlanTitle:              req.PlanTitle,
		PlanDescription:        req.PlanDescription,
		RecommendedActions:     actions,
		EstimatedCost:          req.EstimatedCost,
		ImplementationTimeline: req.ImplementationTimeline,
		PriorityLevel:          req.PriorityLevel,
	})
}

func (s *RecoveryPlanService) ListForFarm(ctx context.Context, farmID int64) ([]model.RecoveryPlan, error) {
	if farmID <= 0 {
		return nil, apierror.BadRequest("farm_id is required", "")
	}
	return s.plans.ListByFarmID(ctx, farmID)
}
