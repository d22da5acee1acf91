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

type FarmRepository struct {
	pool *pgxpool.Pool
}

func NewFarmRepository(pool *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{pool: pool}
}

func (r *FarmRepository) Create(ctx context.Context, f model.Farm) (model.Farm, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO farms (user_id, name, location, latitude, longitude, area_hectares, crop_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		f.UserID, f.Name, f.Location, f.Latitude, f.Longitude, f.AreaHectares, f.CropType).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return model.Farm{}, dbErr("create farm", err)
	}
	return f, nil
}

func (r *FarmRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Farm, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, location, latitude, longitude, area_hectares, crop_type, created_at, updated_at
		 FROM farms WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, dbErr("list farms", err)
	}
	defer rows.Close()

	farms := make([]model.Farm, 0)
	for rows.Next() {
		var f model.Farm
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.Latitude, &f.Longitude,
			&f.AreaHectares, &f.CropType, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, dbErr("scan farm", err)
		}
		farms = append(farms, f)
	}
	return farms, rows.Err()
}

func (r *FarmRepository) FindByID(ctx context.Context, id int64) (model.Farm, error) {
	var f model.Farm
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, location, latitude, longitude, area_hectares, crop_type, created_at, updated_at
		 FROM farms WHERE id = $1`, id).
		Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.Latitude, &f.Longitude,
			&f.AreaHectares, &f.CropType, &f.CreatedAt, &f.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Farm{}, apierror.NotFound("farm not found", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return model.Farm{}, dbErr("find farm by id", err)
	}
	return f, nil
}
