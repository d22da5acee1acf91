package service

import (
	"context"
	"strings"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type alertStore interface {
	Create(ctx context.Context, a model.Alert) (model.Alert, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]model.Alert, error)
	MarkRead(ctx context.Context, alertID int64, userID int64) (model.Alert, error)
}

type AlertService struct {
	alerts       alertStore
	defaultLimit int
}

func NewAlertService(alerts alertStore, defaultLimit int) *AlertService {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &AlertService{alerts: alerts, defaultLimit: defaultLimit}
}

func (s *AlertService) Create(ctx context.Context, userID int64, req model.CreateAlertRequest) (model.Alert, error) {
	req.AlertType = strings.TrimSpace(req.AlertType)
	req.Title = strings.TrimSpace(req.Title)
	req.Message = strings.TrimSpace(req.Message)

	if req.FarmID <= 0 {
		return model.Alert{}, apierror.BadRequest("farm_id is required", "")
	}
	if req.AlertType == "" || req.Title == "" || req.Message == "" {
		return model.Alert{}, apierror.BadRequest("alert_type, title and message are required", "")
	}

	if req.Severity == "" {
		req.Severity = model.AlertSeverityInfo
	}
	if !model.ValidAlertSeverity(req.Severity) {
		return model.Alert{}, apierror.BadRequest("invalid severity", req.Severity)
	}

	return s.alerts.Create(ctx, model.Alert{
		UserID:    userID,
		FarmID:    req.FarmID,
		AlertType: req.AlertType,
		Title:     req.Title,
		Message:   req.Message,
		Severity:  req.Severity,
	})
}

func (s *AlertService) ListForUser(ctx context.Context, userID int64, limit int) ([]model.Alert, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.alerts.ListByUserID(ctx, userID, limit)
}

func (s *AlertService) MarkRead(ctx context.Context, alertID int64, userID int64) (model.Alert, error) {
	if alertID <= 0 {
		return model.Alert{}, apierror.BadRequest("alert id is required", "")
	}
	return s.alerts.MarkRead(ctx, alertID, userID)
}
