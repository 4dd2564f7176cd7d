package handlers

import (
	"net/http"

	"github.com/adfence/backend/internal/domain/providers"
	"github.com/adfence/backend/internal/infrastructure/observability"
)

// GeolocationHandler handles automatic location detection.
type GeolocationHandler struct {
	provider providers.GeolocationProvider
}

// NewGeolocationHandler creates a new geolocation handler.
func NewGeolocationHandler(provider providers.GeolocationProvider) *GeolocationHandler {
	return &GeolocationHandler{provider: provider}
}

// GetLocation handles GET /api/location. Detection failure is not an
// error for the client; the response degrades to available=false and the
// frontend falls back to manual coordinate entry.
func (h *GeolocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	coords, err := h.provider.CurrentLocation(r.Context())
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("location detection failed")
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"available": false,
			"message":   "no location available",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	})
}
