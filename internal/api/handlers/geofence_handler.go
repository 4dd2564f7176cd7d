package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adfence/backend/internal/application/services"
	"github.com/adfence/backend/internal/domain/entities"
)

// GeofenceService defines the geofence operations used by the handler.
type GeofenceService interface {
	Create(ctx context.Context, params services.CreateGeofenceParams) (*entities.Geofence, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error)
}

// GeofenceHandler handles geofence-related HTTP requests
type GeofenceHandler struct {
	service GeofenceService
}

// NewGeofenceHandler creates a new geofence handler
func NewGeofenceHandler(service GeofenceService) *GeofenceHandler {
	return &GeofenceHandler{service: service}
}

type adContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createGeofenceRequest struct {
	BusinessID string            `json:"business_id"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	RadiusKm   float64           `json:"radius_km"`
	Ad         *adContentRequest `json:"ad,omitempty"`
}

// CreateGeofence handles POST /api/geofences
func (h *GeofenceHandler) CreateGeofence(w http.ResponseWriter, r *http.Request) {
	var payload createGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.BusinessID) == "" {
		respondWithError(w, http.StatusBadRequest, "business_id is required")
		return
	}

	params := services.CreateGeofenceParams{
		BusinessID: payload.BusinessID,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
		RadiusKm:   payload.RadiusKm,
	}
	if payload.Ad != nil {
		params.Ad = &services.AdContent{
			Title:       payload.Ad.Title,
			Description: payload.Ad.Description,
		}
	}

	geofence, err := h.service.Create(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, geofence)
}

// ListGeofences handles GET /api/geofences?business_id=...
func (h *GeofenceHandler) ListGeofences(w http.ResponseWriter, r *http.Request) {
	businessID := strings.TrimSpace(r.URL.Query().Get("business_id"))
	if businessID == "" {
		respondWithError(w, http.StatusBadRequest, "business_id parameter is required")
		return
	}

	geofences, err := h.service.ListByBusiness(r.Context(), businessID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"geofences": geofences,
		"count":     len(geofences),
	})
}
