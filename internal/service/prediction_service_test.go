package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type memPredictionStore struct {
	nextID      int64
	predictions []model.DroughtPrediction
}

func (m *memPredictionStore) Create(_ context.Context, p model.DroughtPrediction) (model.DroughtPrediction, error) {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now().UTC()
	m.predictions = append(m.predictions, p)
	return p, nil
}

func (m *memPredictionStore) ListByFarmID(_ context.Context, farmID int64) ([]model.DroughtPrediction, error) {
	var out []model.DroughtPrediction
	for _, p := range m.predictions {
		if p.FarmID == farmID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPredictionStore) FindLatestByFarmID(_ context.Context, farmID int64) (model.DroughtPrediction, error) {
	var latest *model.DroughtPrediction
	for i := range m.predictions {
		p := &m.predictions[i]
		if p.FarmID != farmID {
			continue
		}
		if latest == nil || p.PredictionDate.After(latest.PredictionDate) {
			latest = p
		}
	}
	if latest == nil {
		return model.DroughtPrediction{}, apierror.NotFound("prediction not found", "")
	}
	return *latest, nil
}

func validPredictionRequest() model.CreatePredictionRequest {
	return model.CreatePredictionRequest{
		FarmID:             1,
		PredictionDate:     "2026-09-15",
		DroughtProbability: 72.5,
		SeverityLevel:      model.SeveritySevere,
		ConfidenceScore:    88,
		SoilMoisture:       14.2,
	}
}

func TestPredictionService_Create(t *testing.T) {
	svc := NewPredictionService(&memPredictionStore{})

	p, err := svc.Create(context.Background(), validPredictionRequest())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, 2026, p.PredictionDate.Year())
	assert.Equal(t, time.September, p.PredictionDate.Month())
	assert.Equal(t, model.SeveritySevere, p.SeverityLevel)
}

func TestPredictionService_CreateValidation(t *testing.T) {
	svc := NewPredictionService(&memPredictionStore{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.CreatePredictionRequest)
	}{
		{"missing farm id", func(r *model.CreatePredictionRequest) { r.FarmID = 0 }},
		{"missing date", func(r *model.CreatePredictionRequest) { r.PredictionDate = "" }},
		{"bad date format", func(r *model.CreatePredictionRequest) { r.PredictionDate = "15/09/2026" }},
		{"unknown severity", func(r *model.CreatePredictionRequest) { r.SeverityLevel = "catastrophic" }},
		{"probability over 100", func(r *model.CreatePredictionRequest) { r.DroughtProbability = 101 }},
		{"negative probability", func(r *model.CreatePredictionRequest) { r.DroughtProbability = -1 }},
		{"confidence over 100", func(r *model.CreatePredictionRequest) { r.ConfidenceScore = 120 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validPredictionRequest()
			tc.mutate(&req)

			_, err := svc.Create(ctx, req)
			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "BAD_REQUEST", apiErr.Code)
		})
	}
}

func TestPredictionService_LatestForFarm(t *testing.T) {
	store := &memPredictionStore{}
	svc := NewPredictionService(store)
	ctx := context.Background()

	older := validPredictionRequest()
	older.PredictionDate = "2026-09-01"
	_, err := svc.Create(ctx, older)
	require.NoError(t, err)

	newer := validPredictionRequest()
	newer.PredictionDate = "2026-09-20"
	newer.SeverityLevel = model.SeverityExtreme
	_, err = svc.Create(ctx, newer)
	require.NoError(t, err)

	latest, err := svc.LatestForFarm(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SeverityExtreme, latest.SeverityLevel)

	_, err = svc.LatestForFarm(ctx, 99)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}
