package repositories

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
)

// GeofenceRepository defines persistence operations for geofences
type GeofenceRepository interface {
	// Create inserts a new geofence
	Create(ctx context.Context, geofence *entities.Geofence) error

	// GetByID retrieves a geofence by id
	GetByID(ctx context.Context, id string) (*entities.Geofence, error)

	// ListAll returns every geofence in creation order (oldest first,
	// id as tiebreak) so match results stay deterministic
	ListAll(ctx context.Context) ([]*entities.Geofence, error)

	// ListByBusiness returns the business's geofences most-recent-first,
	// each joined with its latest ad (if any) for display
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error)

	// LatestForBusiness returns the business's most-recently-created
	// geofence, or a not found error
	LatestForBusiness(ctx context.Context, businessID string) (*entities.Geofence, error)

	// Exists reports whether a geofence with the given id exists
	Exists(ctx context.Context, id string) (bool, error)
}
