package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/pkg/geo"
)

// AnalyticsService defines the analytics operations used by the handler.
type AnalyticsService interface {
	CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error)
	CountUsersPerGeofence(geofences []*entities.Geofence, userLocations []geo.Point) map[int]int
}

// AnalyticsHandler serves the business analytics views.
type AnalyticsHandler struct {
	service AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetAdViews handles GET /api/analytics/ad-views?business_id=...
func (h *AnalyticsHandler) GetAdViews(w http.ResponseWriter, r *http.Request) {
	businessID := strings.TrimSpace(r.URL.Query().Get("business_id"))
	if businessID == "" {
		respondWithError(w, http.StatusBadRequest, "business_id parameter is required")
		return
	}

	counts, err := h.service.CountAdViews(r.Context(), businessID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ad_views": counts,
		"count":    len(counts),
	})
}

type geofenceDefinition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

type userLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geofenceUsersRequest struct {
	Geofences     []geofenceDefinition `json:"geofences"`
	UserLocations []userLocation       `json:"user_locations"`
}

// CountGeofenceUsers handles POST /api/analytics/geofence-users. It is a
// pure computation over the posted fences and locations; nothing is read
// from or written to the store.
func (h *AnalyticsHandler) CountGeofenceUsers(w http.ResponseWriter, r *http.Request) {
	var payload geofenceUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	geofences := make([]*entities.Geofence, len(payload.Geofences))
	for i, def := range payload.Geofences {
		if def.RadiusKm <= 0 {
			respondWithError(w, http.StatusBadRequest, "radius must be greater than zero")
			return
		}
		if err := geo.ValidateCoordinate(def.Latitude, def.Longitude); err != nil {
			respondWithAppError(w, err)
			return
		}
		geofences[i] = &entities.Geofence{
			Center:   entities.Location{Latitude: def.Latitude, Longitude: def.Longitude},
			RadiusKm: def.RadiusKm,
		}
	}

	locations := make([]geo.Point, len(payload.UserLocations))
	for i, loc := range payload.UserLocations {
		if err := geo.ValidateCoordinate(loc.Latitude, loc.Longitude); err != nil {
			respondWithAppError(w, err)
			return
		}
		locations[i] = geo.Point{Latitude: loc.Latitude, Longitude: loc.Longitude}
	}

	counts := h.service.CountUsersPerGeofence(geofences, locations)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"counts": counts,
	})
}
