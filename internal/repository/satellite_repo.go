package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"droughtwatch/internal/model"
)

type SatelliteRepository struct {
	pool *pgxpool.Pool
}

func NewSatelliteRepository(pool *pgxpool.Pool) *SatelliteRepository {
	return &SatelliteRepository{pool: pool}
}

func (r *SatelliteRepository) Create(ctx context.Context, d model.SatelliteData) (model.SatelliteData, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO satellite_data
		     (farm_id, data_date, data_source, soil_moisture, vegetation_index, land_surface_temperature, precipitation, raw_data, processed_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb)
		 RETURNING id, created_at`,
		d.FarmID, d.DataDate, d.DataSource, d.SoilMoisture, d.VegetationIndex,
		d.LandSurfaceTemperature, d.Precipitation, jsonArg(d.RawData), jsonArg(d.ProcessedData)).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return model.SatelliteData{}, dbErr("save satellite data", err)
	}
	return d, nil
}

func (r *SatelliteRepository) ListByFarmID(ctx context.Context, farmID int64, limit int) ([]model.SatelliteData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, farm_id, data_date, data_source, soil_moisture, vegetation_index,
		        land_surface_temperature, precipitation, raw_data, processed_data, created_at
		 FROM satellite_data WHERE farm_id = $1 ORDER BY data_date DESC LIMIT $2`, farmID, limit)
	if err != nil {
		return nil, dbErr("list satellite data", err)
	}
	defer rows.Close()

	entries := make([]model.SatelliteData, 0)
	for rows.Next() {
		var d model.SatelliteData
		if err := rows.Scan(&d.ID, &d.FarmID, &d.DataDate, &d.DataSource, &d.SoilMoisture,
			&d.VegetationIndex, &d.LandSurfaceTemperature, &d.Precipitation,
			&d.RawData, &d.ProcessedData, &d.CreatedAt); err != nil {
			return nil, dbErr("scan satellite data", err)
		}
		entries = append(entries, d)
	}
	return entries, rows.Err()
}
