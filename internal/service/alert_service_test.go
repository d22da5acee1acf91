package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

type memAlertStore struct {
	nextID    int64
	alerts    []model.Alert
	lastLimit int
}

func (m *memAlertStore) Create(_ context.Context, a model.Alert) (model.Alert, error) {
	m.nextID++
	a.ID = m.nextID
	m.alerts = append(m.alerts, a)
	return a, nil
}

func (m *memAlertStore) ListByUserID(_ context.Context, userID int64, limit int) ([]model.Alert, error) {
	m.lastLimit = limit

	var out []model.Alert
	for _, a := range m.alerts {
		if a.UserID != userID {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memAlertStore) MarkRead(_ context.Context, alertID int64, userID int64) (model.Alert, error) {
	for i := range m.alerts {
		if m.alerts[i].ID == alertID && m.alerts[i].UserID == userID {
			m.alerts[i].IsRead = true
			return m.alerts[i], nil
		}
	}
	return model.Alert{}, apierror.NotFound("alert not found", "")
}

func validAlertRequest() model.CreateAlertRequest {
	return model.CreateAlertRequest{
		FarmID:    1,
		AlertType: "drought_warning",
		Title:     "Drought risk rising",
		Message:   "Severe drought predicted within two weeks",
		Severity:  model.AlertSeverityWarning,
	}
}

func TestAlertService_Create(t *testing.T) {
	store := &memAlertStore{}
	svc := NewAlertService(store, 10)

	alert, err := svc.Create(context.Background(), 5, validAlertRequest())
	require.NoError(t, err)
	assert.NotZero(t, alert.ID)
	assert.Equal(t, int64(5), alert.UserID)
	assert.False(t, alert.IsRead)
}

func TestAlertService_CreateDefaultsSeverity(t *testing.T) {
	svc := NewAlertService(&memAlertStore{}, 10)

	req := validAlertRequest()
	req.Severity = ""
	alert, err := svc.Create(context.Background(), 5, req)
	require.NoError(t, err)
	assert.Equal(t, model.AlertSeverityInfo, alert.Severity)
}

func TestAlertService_CreateRejectsUnknownSeverity(t *testing.T) {
	svc := NewAlertService(&memAlertStore{}, 10)

	req := validAlertRequest()
	req.Severity = "apocalyptic"
	_, err := svc.Create(context.Background(), 5, req)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestAlertService_ListAppliesDefaultLimit(t *testing.T) {
	store := &memAlertStore{}
	svc := NewAlertService(store, 10)
	ctx := context.Background()

	_, err := svc.ListForUser(ctx, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, store.lastLimit)

	_, err = svc.ListForUser(ctx, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, store.lastLimit)
}

func TestAlertService_MarkReadScopedToOwner(t *testing.T) {
	store := &memAlertStore{}
	svc := NewAlertService(store, 10)
	ctx := context.Background()

	created, err := svc.Create(ctx, 5, validAlertRequest())
	require.NoError(t, err)

	// Another user cannot flip someone else's alert.
	_, err = svc.MarkRead(ctx, created.ID, 99)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)

	updated, err := svc.MarkRead(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
}
