package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adfence/backend/internal/domain/entities"
)

// AdService defines the ad operations used by the handler.
type AdService interface {
	Create(ctx context.Context, geofenceID, title, description string) (*entities.Ad, error)
	CreateForBusiness(ctx context.Context, businessID, title, description string) (*entities.Ad, error)
	ReassignNearestGeofence(ctx context.Context, adID string, lat, lon float64) (*entities.Geofence, error)
}

// AdHandler handles ad-related HTTP requests
type AdHandler struct {
	service AdService
}

// NewAdHandler creates a new ad handler
func NewAdHandler(service AdService) *AdHandler {
	return &AdHandler{service: service}
}

type createAdRequest struct {
	GeofenceID  string `json:"geofence_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createBusinessAdRequest struct {
	BusinessID  string `json:"business_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type reassignAdRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateAd handles POST /api/ads
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var payload createAdRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.GeofenceID) == "" {
		respondWithError(w, http.StatusBadRequest, "geofence_id is required")
		return
	}

	ad, err := h.service.Create(r.Context(), payload.GeofenceID, payload.Title, payload.Description)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ad)
}

// CreateAdForBusiness handles POST /api/ads/business. The ad attaches to
// the business's most-recently-created geofence.
func (h *AdHandler) CreateAdForBusiness(w http.ResponseWriter, r *http.Request) {
	var payload createBusinessAdRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.BusinessID) == "" {
		respondWithError(w, http.StatusBadRequest, "business_id is required")
		return
	}

	ad, err := h.service.CreateForBusiness(r.Context(), payload.BusinessID, payload.Title, payload.Description)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ad)
}

// ReassignAd handles POST /api/ads/{id}/reassign
func (h *AdHandler) ReassignAd(w http.ResponseWriter, r *http.Request) {
	adID := r.PathValue("id")
	if adID == "" {
		respondWithError(w, http.StatusBadRequest, "ad ID is required")
		return
	}

	var payload reassignAdRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	geofence, err := h.service.ReassignNearestGeofence(r.Context(), adID, payload.Latitude, payload.Longitude)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ad_id":    adID,
		"geofence": geofence,
	})
}
