package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adfence/backend/internal/application/services"
)

// MatchingService defines the matching operations used by the handler.
type MatchingService interface {
	FindMatchingAds(ctx context.Context, query services.MatchQuery) ([]*services.MatchedAd, error)
}

// OffersHandler serves the end-user offer lookup.
type OffersHandler struct {
	service MatchingService
}

// NewOffersHandler creates a new offers handler.
func NewOffersHandler(service MatchingService) *OffersHandler {
	return &OffersHandler{service: service}
}

// GetOffers handles GET /api/offers?lat=...&lon=...&user_id=...
func (h *OffersHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lonStr := strings.TrimSpace(r.URL.Query().Get("lon"))
	if latStr == "" || lonStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lon parameter")
		return
	}

	offers, err := h.service.FindMatchingAds(r.Context(), services.MatchQuery{
		Latitude:  lat,
		Longitude: lon,
		UserID:    strings.TrimSpace(r.URL.Query().Get("user_id")),
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"offers": offers,
		"count":  len(offers),
	})
}
