package repositories

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
)

// AnalyticsRepository defines persistence operations for the append-only
// usage logs (ad impressions and geofence entries)
type AnalyticsRepository interface {
	// LogAdView appends one impression row for an ad
	LogAdView(ctx context.Context, view *entities.AdView) error

	// LogGeofenceEntry appends one user-inside-geofence row
	LogGeofenceEntry(ctx context.Context, entry *entities.GeofenceEntry) error

	// CountAdViews returns (ad title, view count) rows for every ad whose
	// geofence belongs to the business, zero-view ads included, ordered by
	// view count descending (title, then id, as tiebreaks)
	CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error)
}
