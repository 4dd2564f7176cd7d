package repositories

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
)

// AdRepository defines persistence operations for ads
type AdRepository interface {
	// Create inserts a new ad
	Create(ctx context.Context, ad *entities.Ad) error

	// GetByID retrieves an ad by id
	GetByID(ctx context.Context, id string) (*entities.Ad, error)

	// ListByGeofence returns the geofence's ads in creation order
	// (oldest first, id as tiebreak)
	ListByGeofence(ctx context.Context, geofenceID string) ([]*entities.Ad, error)

	// Reassign repoints an ad to another geofence
	Reassign(ctx context.Context, adID, geofenceID string) error
}
