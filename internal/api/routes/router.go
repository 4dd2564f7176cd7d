package routes

import (
	"net/http"

	"github.com/adfence/backend/internal/api/handlers"
	"github.com/adfence/backend/internal/api/middleware"
	"github.com/adfence/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler        *handlers.AuthHandler
	geofenceHandler    *handlers.GeofenceHandler
	adHandler          *handlers.AdHandler
	offersHandler      *handlers.OffersHandler
	analyticsHandler   *handlers.AnalyticsHandler
	geolocationHandler *handlers.GeolocationHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	geofenceHandler *handlers.GeofenceHandler,
	adHandler *handlers.AdHandler,
	offersHandler *handlers.OffersHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	geolocationHandler *handlers.GeolocationHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:        authHandler,
		geofenceHandler:    geofenceHandler,
		adHandler:          adHandler,
		offersHandler:      offersHandler,
		analyticsHandler:   analyticsHandler,
		geolocationHandler: geolocationHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Account endpoints
	r.mux.HandleFunc("POST /api/users/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/users/login", r.authHandler.Login)

	// Geofence endpoints
	r.mux.HandleFunc("POST /api/geofences", r.geofenceHandler.CreateGeofence)
	r.mux.HandleFunc("GET /api/geofences", r.geofenceHandler.ListGeofences)

	// Ad endpoints
	r.mux.HandleFunc("POST /api/ads", r.adHandler.CreateAd)
	r.mux.HandleFunc("POST /api/ads/business", r.adHandler.CreateAdForBusiness)
	r.mux.HandleFunc("POST /api/ads/{id}/reassign", r.adHandler.ReassignAd)

	// Offer matching endpoint
	r.mux.HandleFunc("GET /api/offers", r.offersHandler.GetOffers)

	// Analytics endpoints
	r.mux.HandleFunc("GET /api/analytics/ad-views", r.analyticsHandler.GetAdViews)
	r.mux.HandleFunc("POST /api/analytics/geofence-users", r.analyticsHandler.CountGeofenceUsers)

	// Geolocation endpoint
	r.mux.HandleFunc("GET /api/location", r.geolocationHandler.GetLocation)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so every response carries its headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
