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

// AdContent is the title/description pair of an ad to create
type AdContent struct {
	Title       string
	Description string
}

// CreateGeofenceParams are the inputs for creating a geofence. Ad is
// optional; when present, the ad is created inside the same request after
// the geofence ("add geofence and ad" flow).
type CreateGeofenceParams struct {
	BusinessID string
	Latitude   float64
	Longitude  float64
	RadiusKm   float64
	Ad         *AdContent
}

// GeofenceService handles geofence creation and listing for businesses
type GeofenceService struct {
	geofenceRepo repositories.GeofenceRepository
	adRepo       repositories.AdRepository
	userRepo     repositories.UserRepository
}

// NewGeofenceService creates a new geofence service
func NewGeofenceService(
	geofenceRepo repositories.GeofenceRepository,
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
) *GeofenceService {
	return &GeofenceService{
		geofenceRepo: geofenceRepo,
		adRepo:       adRepo,
		userRepo:     userRepo,
	}
}

// Create validates and persists a new geofence, plus its inline ad when
// one is supplied. All preconditions run before the first write so a
// failed request never leaves an orphaned geofence or ad behind.
func (s *GeofenceService) Create(ctx context.Context, params CreateGeofenceParams) (*entities.Geofence, error) {
	if params.RadiusKm <= 0 {
		return nil, apperrors.NewValidationError("radius must be greater than zero")
	}
	if err := geo.ValidateCoordinate(params.Latitude, params.Longitude); err != nil {
		return nil, err
	}
	if params.Ad != nil {
		if strings.TrimSpace(params.Ad.Title) == "" || strings.TrimSpace(params.Ad.Description) == "" {
			return nil, apperrors.NewValidationError("ad title and description are required")
		}
	}

	owner, err := s.userRepo.GetByID(ctx, params.BusinessID)
	if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, apperrors.NewReferentialError(fmt.Sprintf("owner %s does not exist", params.BusinessID))
	}
	if err != nil {
		return nil, err
	}
	if owner.Role != entities.RoleBusiness {
		return nil, apperrors.NewReferentialError(fmt.Sprintf("owner %s is not a business account", params.BusinessID))
	}

	geofence := &entities.Geofence{
		ID:         uuid.New().String(),
		BusinessID: params.BusinessID,
		Center: entities.Location{
			Latitude:  params.Latitude,
			Longitude: params.Longitude,
		},
		RadiusKm: params.RadiusKm,
	}

	if err := s.geofenceRepo.Create(ctx, geofence); err != nil {
		return nil, err
	}

	if params.Ad != nil {
		ad := &entities.Ad{
			ID:          uuid.New().String(),
			GeofenceID:  geofence.ID,
			Title:       params.Ad.Title,
			Description: params.Ad.Description,
		}
		if err := s.adRepo.Create(ctx, ad); err != nil {
			return nil, err
		}
	}

	return geofence, nil
}

// ListByBusiness returns the business's geofences most-recent-first, each
// joined with its latest ad for display
func (s *GeofenceService) ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error) {
	return s.geofenceRepo.ListByBusiness(ctx, businessID)
}

// ValidateExists fails with a referential error when the geofence is not
// present; used as a precondition gate before ad creation
func (s *GeofenceService) ValidateExists(ctx context.Context, id string) error {
	exists, err := s.geofenceRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewReferentialError(fmt.Sprintf("geofence %s does not exist", id))
	}
	return nil
}
