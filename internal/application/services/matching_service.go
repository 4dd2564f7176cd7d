package services

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/observability"
	"github.com/adfence/backend/pkg/geo"
)

// MatchQuery is one end-user location query. UserID is optional; when
// present, geofence entries are logged for analytics.
type MatchQuery struct {
	Latitude  float64
	Longitude float64
	UserID    string
}

// MatchedAd is one ad relevant to the queried location
type MatchedAd struct {
	AdID        string `json:"ad_id"`
	GeofenceID  string `json:"geofence_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MatchingService computes which ads are relevant to a coordinate. It
// scans every geofence and applies the great-circle distance test against
// each radius; no spatial index, which is fine at the current fence count.
type MatchingService struct {
	geofenceRepo  repositories.GeofenceRepository
	adRepo        repositories.AdRepository
	analyticsRepo repositories.AnalyticsRepository
	metrics       *observability.Metrics
}

// NewMatchingService creates a new matching service. metrics may be nil.
func NewMatchingService(
	geofenceRepo repositories.GeofenceRepository,
	adRepo repositories.AdRepository,
	analyticsRepo repositories.AnalyticsRepository,
	metrics *observability.Metrics,
) *MatchingService {
	return &MatchingService{
		geofenceRepo:  geofenceRepo,
		adRepo:        adRepo,
		analyticsRepo: analyticsRepo,
		metrics:       metrics,
	}
}

// FindMatchingAds returns the ads of every geofence containing the queried
// point. A point exactly on a fence boundary counts as inside. Results are
// ordered by geofence creation order, then ad creation order, so a fixed
// store state always yields the same output. An empty store yields an
// empty result, not an error.
//
// Each returned ad is logged as one impression, and each matched geofence
// as one user entry when the query carries a user id. Log failures are
// reported and swallowed; they never fail the match itself.
func (s *MatchingService) FindMatchingAds(ctx context.Context, query MatchQuery) ([]*MatchedAd, error) {
	if err := geo.ValidateCoordinate(query.Latitude, query.Longitude); err != nil {
		return nil, err
	}

	geofences, err := s.geofenceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	point := geo.Point{Latitude: query.Latitude, Longitude: query.Longitude}

	var matched []*entities.Geofence
	for _, fence := range geofences {
		center := geo.Point{Latitude: fence.Center.Latitude, Longitude: fence.Center.Longitude}
		if geo.Within(point, center, fence.RadiusKm) {
			matched = append(matched, fence)
		}
	}

	results := make([]*MatchedAd, 0)
	for _, fence := range matched {
		ads, err := s.adRepo.ListByGeofence(ctx, fence.ID)
		if err != nil {
			return nil, err
		}
		for _, ad := range ads {
			results = append(results, &MatchedAd{
				AdID:        ad.ID,
				GeofenceID:  ad.GeofenceID,
				Title:       ad.Title,
				Description: ad.Description,
			})
		}
	}

	s.logUsage(ctx, query, matched, results)

	if s.metrics != nil {
		observability.RecordMatchMetric(ctx, s.metrics, len(results))
	}

	return results, nil
}

func (s *MatchingService) logUsage(ctx context.Context, query MatchQuery, matched []*entities.Geofence, results []*MatchedAd) {
	logger := observability.LoggerFromContext(ctx)

	for _, result := range results {
		view := &entities.AdView{AdID: result.AdID}
		if err := s.analyticsRepo.LogAdView(ctx, view); err != nil {
			logger.Warn().Err(err).Str("ad_id", result.AdID).Msg("failed to log ad view")
		}
	}

	if query.UserID == "" {
		return
	}
	for _, fence := range matched {
		entry := &entities.GeofenceEntry{GeofenceID: fence.ID, UserID: query.UserID}
		if err := s.analyticsRepo.LogGeofenceEntry(ctx, entry); err != nil {
			logger.Warn().Err(err).Str("geofence_id", fence.ID).Msg("failed to log geofence entry")
		}
	}
}
