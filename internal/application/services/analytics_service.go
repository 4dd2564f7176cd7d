package services

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/pkg/geo"
)

// AnalyticsService aggregates the usage logs into the counts the business
// dashboard renders
type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// CountAdViews returns per-ad view counts for the business, descending by
// count, zero-view ads included
func (s *AnalyticsService) CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error) {
	return s.analyticsRepo.CountAdViews(ctx, businessID)
}

// CountUsersPerGeofence counts, for each geofence, how many of the given
// user locations fall inside it, using the same boundary-inclusive distance
// test as ad matching. The result maps geofence index to count; every
// index appears, zero counts included.
func (s *AnalyticsService) CountUsersPerGeofence(geofences []*entities.Geofence, userLocations []geo.Point) map[int]int {
	counts := make(map[int]int, len(geofences))
	for i, fence := range geofences {
		counts[i] = 0
		center := geo.Point{Latitude: fence.Center.Latitude, Longitude: fence.Center.Longitude}
		for _, location := range userLocations {
			if geo.Within(location, center, fence.RadiusKm) {
				counts[i]++
			}
		}
	}
	return counts
}
