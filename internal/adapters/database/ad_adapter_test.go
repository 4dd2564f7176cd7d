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

func TestAdAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewAdAdapter(client)

	mock.ExpectExec(`INSERT INTO "ads"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ad := &entities.Ad{
		ID:          "ad-1",
		GeofenceID:  "fence-1",
		Title:       "Coffee Discount",
		Description: "20% off",
	}
	err := adapter.Create(context.Background(), ad)

	require.NoError(t, err)
	assert.False(t, ad.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdAdapter_ListByGeofence(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewAdAdapter(client)

	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "geofence_id", "title", "description", "created_at"}).
		AddRow("ad-1", "fence-1", "Coffee Discount", "20% off", created).
		AddRow("ad-2", "fence-1", "Bagel Deal", "buy one get one", created)

	mock.ExpectQuery(`SELECT .* FROM "ads"`).
		WillReturnRows(rows)

	ads, err := adapter.ListByGeofence(context.Background(), "fence-1")

	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "ad-1", ads[0].ID)
	assert.Equal(t, "Bagel Deal", ads[1].Title)
}

func TestAdAdapter_Reassign(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewAdAdapter(client)

	mock.ExpectExec(`UPDATE "ads"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Reassign(context.Background(), "ad-1", "fence-2")

	assert.NoError(t, err)
}

func TestAdAdapter_Reassign_UnknownAd(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewAdAdapter(client)

	mock.ExpectExec(`UPDATE "ads"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Reassign(context.Background(), "ad-404", "fence-2")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
