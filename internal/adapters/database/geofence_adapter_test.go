package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfence/backend/internal/domain/entities"
	apperrors "github.com/adfence/backend/pkg/errors"
)

func geofenceColumns() []string {
	return []string{"id", "business_id", "latitude", "longitude", "radius_km", "created_at"}
}

func TestGeofenceAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	mock.ExpectExec(`INSERT INTO "geofences"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	fence := &entities.Geofence{
		ID:         "fence-1",
		BusinessID: "biz-1",
		Center:     entities.Location{Latitude: 40.7128, Longitude: -74.0060},
		RadiusKm:   5,
	}
	err := adapter.Create(context.Background(), fence)

	require.NoError(t, err)
	assert.False(t, fence.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeofenceAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "geofences"`).
		WillReturnRows(sqlmock.NewRows(geofenceColumns()))

	_, err := adapter.GetByID(context.Background(), "fence-404")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestGeofenceAdapter_ListAll(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	created := time.Now()
	rows := sqlmock.NewRows(geofenceColumns()).
		AddRow("fence-1", "biz-1", 40.7128, -74.0060, 5.0, created).
		AddRow("fence-2", "biz-2", 34.0522, -118.2437, 2.0, created)

	mock.ExpectQuery(`SELECT .* FROM "geofences" ORDER BY "created_at" ASC`).
		WillReturnRows(rows)

	fences, err := adapter.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, fences, 2)
	assert.Equal(t, "fence-1", fences[0].ID)
	assert.Equal(t, 40.7128, fences[0].Center.Latitude)
	assert.Equal(t, 5.0, fences[0].RadiusKm)
}

func TestGeofenceAdapter_ListByBusiness(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	created := time.Now()
	title := "Coffee Discount"
	description := "20% off"
	rows := sqlmock.NewRows([]string{"id", "business_id", "latitude", "longitude", "radius_km", "created_at", "title", "description"}).
		AddRow("fence-2", "biz-1", 40.7580, -73.9855, 2.0, created, title, description).
		AddRow("fence-1", "biz-1", 40.7128, -74.0060, 5.0, created, nil, nil)

	mock.ExpectQuery("LEFT JOIN LATERAL").
		WithArgs("biz-1").
		WillReturnRows(rows)

	results, err := adapter.ListByBusiness(context.Background(), "biz-1")

	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NotNil(t, results[0].AdTitle)
	assert.Equal(t, "Coffee Discount", *results[0].AdTitle)
	assert.Nil(t, results[1].AdTitle)
}

func TestGeofenceAdapter_LatestForBusiness_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "geofences"`).
		WillReturnRows(sqlmock.NewRows(geofenceColumns()))

	_, err := adapter.LatestForBusiness(context.Background(), "biz-404")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestGeofenceAdapter_Exists(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewGeofenceAdapter(client)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := adapter.Exists(context.Background(), "fence-1")

	require.NoError(t, err)
	assert.True(t, exists)
}
