package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	apperrors "github.com/adfence/backend/pkg/errors"
	"github.com/adfence/backend/pkg/geo"
)

// AdService handles ad creation and geofence assignment
type AdService struct {
	adRepo       repositories.AdRepository
	geofenceRepo repositories.GeofenceRepository
}

// NewAdService creates a new ad service
func NewAdService(adRepo repositories.AdRepository, geofenceRepo repositories.GeofenceRepository) *AdService {
	return &AdService{
		adRepo:       adRepo,
		geofenceRepo: geofenceRepo,
	}
}

// Create validates and persists an ad attached to an existing geofence.
// The geofence existence check runs before the write.
func (s *AdService) Create(ctx context.Context, geofenceID, title, description string) (*entities.Ad, error) {
	if err := validateAdFields(title, description); err != nil {
		return nil, err
	}

	exists, err := s.geofenceRepo.Exists(ctx, geofenceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewReferentialError(fmt.Sprintf("geofence %s does not exist", geofenceID))
	}

	ad := &entities.Ad{
		ID:          uuid.New().String(),
		GeofenceID:  geofenceID,
		Title:       title,
		Description: description,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// CreateForBusiness attaches the ad to the business's most-recently-created
// geofence
func (s *AdService) CreateForBusiness(ctx context.Context, businessID, title, description string) (*entities.Ad, error) {
	if err := validateAdFields(title, description); err != nil {
		return nil, err
	}

	latest, err := s.geofenceRepo.LatestForBusiness(ctx, businessID)
	if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, apperrors.NewNotFoundError("no geofence found for this business")
	}
	if err != nil {
		return nil, err
	}

	ad := &entities.Ad{
		ID:          uuid.New().String(),
		GeofenceID:  latest.ID,
		Title:       title,
		Description: description,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// ReassignNearestGeofence repoints the ad to the geofence whose center is
// closest to the given coordinate. Unlike matching, radius containment is
// ignored: there is always a nearest geofence as long as any exist. Ties
// go to the earlier-created geofence.
func (s *AdService) ReassignNearestGeofence(ctx context.Context, adID string, lat, lon float64) (*entities.Geofence, error) {
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return nil, err
	}

	if _, err := s.adRepo.GetByID(ctx, adID); err != nil {
		return nil, err
	}

	geofences, err := s.geofenceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(geofences) == 0 {
		return nil, apperrors.NewNotFoundError("no geofences exist to assign")
	}

	point := geo.Point{Latitude: lat, Longitude: lon}

	nearest := geofences[0]
	nearestDistance := geo.Distance(point, geo.Point{
		Latitude:  nearest.Center.Latitude,
		Longitude: nearest.Center.Longitude,
	})
	for _, fence := range geofences[1:] {
		distance := geo.Distance(point, geo.Point{
			Latitude:  fence.Center.Latitude,
			Longitude: fence.Center.Longitude,
		})
		if distance < nearestDistance {
			nearest = fence
			nearestDistance = distance
		}
	}

	if err := s.adRepo.Reassign(ctx, adID, nearest.ID); err != nil {
		return nil, err
	}

	return nearest, nil
}

func validateAdFields(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("ad title is required")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidationError("ad description is required")
	}
	return nil
}
