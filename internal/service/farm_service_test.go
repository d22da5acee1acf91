package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type memFarmStore struct {
	nextID int64
	farms  map[int64]model.Farm
}

func newMemFarmStore() *memFarmStore {
	return &memFarmStore{farms: map[int64]model.Farm{}}
}

func (m *memFarmStore) Create(_ context.Context, f model.Farm) (model.Farm, error) {
	m.nextID++
	f.ID = m.nextID
	m.farms[f.ID] = f
	return f, nil
}

func (m *memFarmStore) ListByUserID(_ context.Context, userID int64) ([]model.Farm, error) {
	var out []model.Farm
	for _, f := range m.farms {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFarmStore) FindByID(_ context.Context, id int64) (model.Farm, error) {
	f, ok := m.farms[id]
	if !ok {
		return model.Farm{}, apierror.NotFound("farm not found", "")
	}
	return f, nil
}

func validFarmRequest() model.CreateFarmRequest {
	return model.CreateFarmRequest{
		Name:         "El Roble",
		Location:     "Valle del Cauca",
		Latitude:     3.45,
		Longitude:    -76.53,
		AreaHectares: 12.5,
		CropType:     "coffee",
	}
}

func TestFarmService_Create(t *testing.T) {
	svc := NewFarmService(newMemFarmStore())

	farm, err := svc.Create(context.Background(), 7, validFarmRequest())
	require.NoError(t, err)
	assert.NotZero(t, farm.ID)
	assert.Equal(t, int64(7), farm.UserID)
	assert.Equal(t, "El Roble", farm.Name)
}

func TestFarmService_CreateValidation(t *testing.T) {
	svc := NewFarmService(newMemFarmStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.CreateFarmRequest)
	}{
		{"missing name", func(r *model.CreateFarmRequest) { r.Name = "  " }},
		{"missing location", func(r *model.CreateFarmRequest) { r.Location = "" }},
		{"missing crop type", func(r *model.CreateFarmRequest) { r.CropType = "" }},
		{"latitude too high", func(r *model.CreateFarmRequest) { r.Latitude = 91 }},
		{"longitude too low", func(r *model.CreateFarmRequest) { r.Longitude = -181 }},
		{"zero area", func(r *model.CreateFarmRequest) { r.AreaHectares = 0 }},
		{"negative area", func(r *model.CreateFarmRequest) { r.AreaHectares = -3 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validFarmRequest()
			tc.mutate(&req)

			_, err := svc.Create(ctx, 7, req)
			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "BAD_REQUEST", apiErr.Code)
		})
	}
}

func TestFarmService_ListScopedToUser(t *testing.T) {
	store := newMemFarmStore()
	svc := NewFarmService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, validFarmRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, validFarmRequest())
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].UserID)
}

func TestFarmService_GetInvalidID(t *testing.T) {
	svc := NewFarmService(newMemFarmStore())

	_, err := svc.Get(context.Background(), 0)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}
