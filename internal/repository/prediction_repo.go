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

type PredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// jsonArg passes optional JSON payloads through to a jsonb column, mapping an
// empty payload to NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func (r *PredictionRepository) Create(ctx context.Context, p model.DroughtPrediction) (model.DroughtPrediction, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO drought_predictions
		     (farm_id, prediction_date, drought_probability, severity_level, confidence_score, soil_moisture, satellite_data, weather_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb)
		 RETURNING id, created_at`,
		p.FarmID, p.PredictionDate, p.DroughtProbability, p.SeverityLevel, p.ConfidenceScore,
		p.SoilMoisture, jsonArg(p.SatelliteData), jsonArg(p.WeatherData)).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.DroughtPrediction{}, dbErr("create prediction", err)
	}
	return p, nil
}

func (r *PredictionRepository) ListByFarmID(ctx context.Context, farmID int64) ([]model.DroughtPrediction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, farm_id, prediction_date, drought_probability, severity_level, confidence_score,
		        soil_moisture, satellite_data, weather_data, created_at
		 FROM drought_predictions WHERE farm_id = $1 ORDER BY prediction_date ASC`, farmID)
	if err != nil {
		return nil, dbErr("list predictions", err)
	}
	defer rows.Close()

	predictions := make([]model.DroughtPrediction, 0)
	for rows.Next() {
		var p model.DroughtPrediction
		if err := rows.Scan(&p.ID, &p.FarmID, &p.PredictionDate, &p.DroughtProbability, &p.SeverityLevel,
			&p.ConfidenceScore, &p.SoilMoisture, &p.SatelliteData, &p.WeatherData, &p.CreatedAt); err != nil {
			return nil, dbErr("scan prediction", err)
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (r *PredictionRepository) FindLatestByFarmID(ctx context.Context, farmID int64) (model.DroughtPrediction, error) {
	var p model.DroughtPrediction
	err := r.pool.QueryRow(ctx,
		`SELECT id, farm_id, prediction_date, drought_probability, severity_level, confidence_score,
		        soil_moisture, satellite_data, weather_data, created_at
		 FROM drought_predictions WHERE farm_id = $1 ORDER BY created_at DESC LIMIT 1`, farmID).
		Scan(&p.ID, &p.FarmID, &p.PredictionDate, &p.DroughtProbability, &p.SeverityLevel,
			&p.ConfidenceScore, &p.SoilMoisture, &p.SatelliteData, &p.WeatherData, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.DroughtPrediction{}, apierror.NotFound("prediction not found", strconv.FormatInt(farmID, 10))
	}
	if err != nil {
		return model.DroughtPrediction{}, dbErr("find latest prediction", err)
	}
	return p, nil
}
