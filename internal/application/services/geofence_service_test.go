package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfence/backend/internal/domain/entities"
	apperrors "github.com/adfence/backend/pkg/errors"
)

func newBusinessRepo() *memUserRepo {
	return &memUserRepo{users: []*entities.User{
		{ID: "biz-1", Username: "Downtown Coffee", Email: "biz@example.com", Role: entities.RoleBusiness},
		{ID: "user-1", Username: "demo", Email: "demo@example.com", Role: entities.RolePersonal},
	}}
}

func TestGeofenceService_Create_Success(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	adRepo := &memAdRepo{}
	service := NewGeofenceService(geofenceRepo, adRepo, newBusinessRepo())

	fence, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "biz-1",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		RadiusKm:   5,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, fence.ID)
	assert.Equal(t, "biz-1", fence.BusinessID)
	assert.Equal(t, 5.0, fence.RadiusKm)
	assert.Len(t, geofenceRepo.fences, 1)
	assert.Empty(t, adRepo.ads)
}

func TestGeofenceService_Create_WithInlineAd(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	adRepo := &memAdRepo{}
	service := NewGeofenceService(geofenceRepo, adRepo, newBusinessRepo())

	fence, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "biz-1",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		RadiusKm:   5,
		Ad: &AdContent{
			Title:       "Coffee Discount",
			Description: "20% off",
		},
	})

	require.NoError(t, err)
	require.Len(t, adRepo.ads, 1)
	assert.Equal(t, fence.ID, adRepo.ads[0].GeofenceID)
	assert.Equal(t, "Coffee Discount", adRepo.ads[0].Title)
}

func TestGeofenceService_Create_InvalidRadius(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	service := NewGeofenceService(geofenceRepo, &memAdRepo{}, newBusinessRepo())

	for _, radius := range []float64{0, -1} {
		_, err := service.Create(context.Background(), CreateGeofenceParams{
			BusinessID: "biz-1",
			Latitude:   40.7128,
			Longitude:  -74.0060,
			RadiusKm:   radius,
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
	assert.Empty(t, geofenceRepo.fences)
}

func TestGeofenceService_Create_InvalidCoordinates(t *testing.T) {
	service := NewGeofenceService(&memGeofenceRepo{}, &memAdRepo{}, newBusinessRepo())

	_, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "biz-1",
		Latitude:   40.7128,
		Longitude:  -200,
		RadiusKm:   5,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestGeofenceService_Create_UnknownOwner(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	service := NewGeofenceService(geofenceRepo, &memAdRepo{}, newBusinessRepo())

	_, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "nobody",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		RadiusKm:   5,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeReferential))
	assert.Empty(t, geofenceRepo.fences)
}

func TestGeofenceService_Create_NonBusinessOwner(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	service := NewGeofenceService(geofenceRepo, &memAdRepo{}, newBusinessRepo())

	_, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "user-1",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		RadiusKm:   5,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeReferential))
	assert.Empty(t, geofenceRepo.fences)
}

func TestGeofenceService_Create_InlineAdValidatedBeforeWrite(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{}
	adRepo := &memAdRepo{}
	service := NewGeofenceService(geofenceRepo, adRepo, newBusinessRepo())

	_, err := service.Create(context.Background(), CreateGeofenceParams{
		BusinessID: "biz-1",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		RadiusKm:   5,
		Ad:         &AdContent{Title: "  ", Description: "20% off"},
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, geofenceRepo.fences)
	assert.Empty(t, adRepo.ads)
}

func TestGeofenceService_ListByBusiness(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{fences: []*entities.Geofence{
		newFence("fence-1", "biz-1", 40.7128, -74.0060, 5),
		newFence("fence-2", "biz-1", 40.7580, -73.9855, 2),
		newFence("fence-3", "biz-2", 34.0522, -118.2437, 3),
	}}
	service := NewGeofenceService(geofenceRepo, &memAdRepo{}, newBusinessRepo())

	fences, err := service.ListByBusiness(context.Background(), "biz-1")

	require.NoError(t, err)
	require.Len(t, fences, 2)
	assert.Equal(t, "fence-2", fences[0].ID)
	assert.Equal(t, "fence-1", fences[1].ID)
}

func TestGeofenceService_ValidateExists(t *testing.T) {
	geofenceRepo := &memGeofenceRepo{fences: []*entities.Geofence{
		newFence("fence-1", "biz-1", 40.7128, -74.0060, 5),
	}}
	service := NewGeofenceService(geofenceRepo, &memAdRepo{}, newBusinessRepo())

	assert.NoError(t, service.ValidateExists(context.Background(), "fence-1"))

	err := service.ValidateExists(context.Background(), "fence-404")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeReferential))
}
