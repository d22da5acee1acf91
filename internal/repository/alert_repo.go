package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type AlertRepository struct {
	pool *pgxpool.Pool
}

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

func (r *AlertRepository) Create(ctx context.Context, a model.Alert) (model.Alert, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO alerts (user_id, farm_id, alert_type, title, message, severity)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, is_read, created_at`,
		a.UserID, a.FarmID, a.AlertType, a.Title, a.Message, a.Severity).
		Scan(&a.ID, &a.IsRead, &a.CreatedAt)
	if err != nil {
		return model.Alert{}, dbErr("create alert", err)
	}
	return a, nil
}

func (r *AlertRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]model.Alert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.farm_id, a.alert_type, a.title, a.message, a.severity, a.is_read, a.created_at,
		        f.name AS farm_name
		 FROM alerts a
		 LEFT JOIN farms f ON a.farm_id = f.id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, dbErr("list alerts", err)
	}
	defer rows.Close()

	alerts := make([]model.Alert, 0)
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.FarmID, &a.AlertType, &a.Title, &a.Message,
			&a.Severity, &a.IsRead, &a.CreatedAt, &a.FarmName); err != nil {
			return nil, dbErr("scan alert", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkRead is scoped to the owning user so one user cannot acknowledge
// another user's alerts.
func (r *AlertRepository) MarkRead(ctx context.Context, alertID int64, userID int64) (model.Alert, error) {
	var a model.Alert
	err := r.pool.QueryRow(ctx,
		`UPDATE alerts SET is_read = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, farm_id, alert_type, title, message, severity, is_read, created_at`,
		alertID, userID).
		Scan(&a.ID, &a.UserID, &a.FarmID, &a.AlertType, &a.Title, &a.Message, &a.Severity, &a.IsRead, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Alert{}, apierror.NotFound("alert not found", strconv.FormatInt(alertID, 10))
	}
	if err != nil {
		return model.Alert{}, dbErr("mark alert read", err)
	}
	return a, nil
}
