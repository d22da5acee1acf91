package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"droughtwatch/internal/model"
)

type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Stats aggregates the four dashboard counters for one user. Predictions
// count as active while their prediction_date has not passed.
func (r *DashboardRepository) Stats(ctx context.Context, userID int64) (model.DashboardStats, error) {
	var stats model.DashboardStats

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM farms WHERE user_id = $1`, userID).
		Scan(&stats.TotalFarms)
	if err != nil {
		return model.DashboardStats{}, dbErr("count farms", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE user_id = $1 AND is_read = FALSE`, userID).
		Scan(&stats.UnreadAlerts)
	if err != nil {
		return model.DashboardStats{}, dbErr("count unread alerts", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM drought_predictions dp
		 JOIN farms f ON dp.farm_id = f.id
		 WHERE f.user_id = $1 AND dp.prediction_date >= CURRENT_DATE`, userID).
		Scan(&stats.ActivePredictions)
	if err != nil {
		return model.DashboardStats{}, dbErr("count active predictions", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM recovery_plans rp
		 JOIN farms f ON rp.farm_id = f.id
		 WHERE f.user_id = $1 AND rp.status = 'pending'`, userID).
		Scan(&stats.PendingPlans)
	if err != nil {
		return model.DashboardStats{}, dbErr("count pending plans", err)
	}

	return stats, nil
}
