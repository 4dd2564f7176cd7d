package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/providers"
	"github.com/adfence/backend/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	geofenceListAllTTL  = 60 // matching engine scans; keep it short
	geofenceBusinessTTL = 180
)

const geofenceListAllKey = "geofences:all"

func geofenceBusinessKey(businessID string) string {
	return fmt.Sprintf("geofences:business:%s", businessID)
}

// CachedGeofenceAdapter wraps a GeofenceRepository with Redis caching of
// the two list queries. Existence and single-row lookups stay uncached:
// they gate referential integrity and must see fresh state.
type CachedGeofenceAdapter struct {
	adapter repositories.GeofenceRepository
	cache   providers.CacheProvider
}

// NewCachedGeofenceAdapter creates a new cached geofence adapter
func NewCachedGeofenceAdapter(adapter repositories.GeofenceRepository, cache providers.CacheProvider) repositories.GeofenceRepository {
	return &CachedGeofenceAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Create inserts a geofence and invalidates the list caches
func (a *CachedGeofenceAdapter) Create(ctx context.Context, geofence *entities.Geofence) error {
	if err := a.adapter.Create(ctx, geofence); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, geofenceListAllKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate geofence list cache")
	}
	if err := a.cache.Delete(ctx, geofenceBusinessKey(geofence.BusinessID)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate business geofence cache")
	}

	return nil
}

// GetByID passes through to the underlying adapter
func (a *CachedGeofenceAdapter) GetByID(ctx context.Context, id string) (*entities.Geofence, error) {
	return a.adapter.GetByID(ctx, id)
}

// ListAll returns every geofence, served from cache when possible
func (a *CachedGeofenceAdapter) ListAll(ctx context.Context) ([]*entities.Geofence, error) {
	if cached, err := a.cache.Get(ctx, geofenceListAllKey); err == nil {
		var geofences []*entities.Geofence
		if err := json.Unmarshal(cached, &geofences); err != nil {
			log.Warn().Err(err).Msg("failed to unmarshal cached geofence list")
		} else {
			return geofences, nil
		}
	}

	geofences, err := a.adapter.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(geofences); err == nil {
		if err := a.cache.Set(ctx, geofenceListAllKey, data, geofenceListAllTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache geofence list")
		}
	}

	return geofences, nil
}

// ListByBusiness returns the business listing, served from cache when possible
func (a *CachedGeofenceAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error) {
	cacheKey := geofenceBusinessKey(businessID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var results []*entities.GeofenceWithAd
		if err := json.Unmarshal(cached, &results); err != nil {
			log.Warn().Err(err).Str("business_id", businessID).Msg("failed to unmarshal cached business geofences")
		} else {
			return results, nil
		}
	}

	results, err := a.adapter.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(results); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, geofenceBusinessTTL); err != nil {
			log.Warn().Err(err).Str("business_id", businessID).Msg("failed to cache business geofences")
		}
	}

	return results, nil
}

// LatestForBusiness passes through to the underlying adapter
func (a *CachedGeofenceAdapter) LatestForBusiness(ctx context.Context, businessID string) (*entities.Geofence, error) {
	return a.adapter.LatestForBusiness(ctx, businessID)
}

// Exists passes through to the underlying adapter
func (a *CachedGeofenceAdapter) Exists(ctx context.Context, id string) (bool, error) {
	return a.adapter.Exists(ctx, id)
}
