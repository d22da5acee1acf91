package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type RecoveryPlanRepository struct {
	pool *pgxpool.Pool
}

func NewRecoveryPlanRepository(pool *pgxpool.Pool) *RecoveryPlanRepository {
	return &RecoveryPlanRepository{pool: pool}
}

func (r *RecoveryPlanRepository) Create(ctx context.Context, p model.RecoveryPlan) (model.RecoveryPlan, error) {
	actions, err := json.Marshal(p.RecommendedActions)
	if err != nil {
		return model.RecoveryPlan{}, dbErr("encode recommended actions", err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO recovery_plans
		     (farm_id, prediction_id, plan_title, plan_description, recommended_actions, estimated_cost, implementation_timeline, priority_level)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8)
		 RETURNING id, status, created_at, updated_at`,
		p.FarmID, p.PredictionID, p.PlanTitle, p.PlanDescription, string(actions),
		p.EstimatedCost, p.ImplementationTimeline, p.PriorityLevel).
		Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.RecoveryPlan{}, dbErr("create recovery plan", err)
	}
	return p, nil
}

// ListByFarmID returns plans newest first, joined with the probability and
// severity of the prediction each plan was written for.
func (r *RecoveryPlanRepository) ListByFarmID(ctx context.Context, farmID int64) ([]model.RecoveryPlan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rp.id, rp.farm_id, rp.prediction_id, rp.plan_title, rp.plan_description,
		        rp.recommended_actions, rp.estimated_cost, rp.implementation_timeline,
		        rp.priority_level, rp.status, rp.created_at, rp.updated_at,
		        dp.drought_probability, dp.severity_level
		 FROM recovery_plans rp
		 LEFT JOIN drought_predictions dp ON rp.prediction_id = dp.id
		 WHERE rp.farm_id = $1
		 ORDER BY rp.created_at DESC`, farmID)
	if err != nil {
		return nil, dbErr("list recovery plans", err)
	}
	defer rows.Close()

	plans := make([]model.RecoveryPlan, 0)
	for rows.Next() {
		var p model.RecoveryPlan
		if err := rows.Scan(&p.ID, &p.FarmID, &p.PredictionID, &p.PlanTitle, &p.PlanDescription,
			&p.RecommendedActions, &p.EstimatedCost, &p.ImplementationTimeline,
			&p.PriorityLevel, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.DroughtProbability, &p.SeverityLevel); err != nil {
			return nil, dbErr("scan recovery plan", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *RecoveryPlanRepository) FindByID(ctx context.Context, id int64) (model.RecoveryPlan, error) {
	var p model.RecoveryPlan
	err := r.pool.QueryRow(ctx,
		`SELECT id, farm_id, prediction_id, plan_title, plan_description, recommended_actions,
		        estimated_cost, implementation_timeline, priority_level, status, created_at, updated_at
		 FROM recovery_plans WHERE id = $1`, id).
		Scan(&p.ID, &p.FarmID, &p.PredictionID, &p.PlanTitle, &p.PlanDescription, &p.RecommendedActions,
			&p.EstimatedCost, &p.ImplementationTimeline, &p.PriorityLevel, &p.Status, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.RecoveryPlan{}, apierror.NotFound("recovery plan not found", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return model.RecoveryPlan{}, dbErr("find recovery plan by id", err)
	}
	return p, nil
}
