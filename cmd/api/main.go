package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adfence/backend/internal/adapters/cache"
	"github.com/adfence/backend/internal/adapters/database"
	"github.com/adfence/backend/internal/adapters/providers/geolocation"
	"github.com/adfence/backend/internal/api/handlers"
	"github.com/adfence/backend/internal/api/routes"
	"github.com/adfence/backend/internal/application/services"
	"github.com/adfence/backend/internal/domain/providers"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	"github.com/adfence/backend/internal/infrastructure/clients/redis"
	"github.com/adfence/backend/internal/infrastructure/observability"
	"github.com/adfence/backend/pkg/config"
)

const (
	mockLatitude  = 40.7128
	mockLongitude = -74.0060
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; the application works without caching
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	adAdapter := database.NewAdAdapter(pgClient)
	analyticsAdapter := database.NewAnalyticsAdapter(pgClient)

	baseGeofenceAdapter := database.NewGeofenceAdapter(pgClient)
	var geofenceAdapter repositories.GeofenceRepository
	if cacheProvider != nil {
		geofenceAdapter = database.NewCachedGeofenceAdapter(baseGeofenceAdapter, cacheProvider)
		logger.Info().Msg("geofence adapter wrapped with caching layer")
	} else {
		geofenceAdapter = baseGeofenceAdapter
		logger.Warn().Msg("geofence adapter running without cache")
	}

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		if cfg.Geolocation.APIKey == "" {
			logger.Warn().Msg("GEOLOCATION_API_KEY is not set; using mock geolocation provider")
			geolocationProvider = geolocation.NewMockGeolocationProvider(mockLatitude, mockLongitude)
		} else {
			timeout := time.Duration(cfg.Geolocation.TimeoutMs) * time.Millisecond
			geolocationProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, timeout)
		}
	default:
		geolocationProvider = geolocation.NewMockGeolocationProvider(mockLatitude, mockLongitude)
	}

	// Initialize services
	userService := services.NewUserService(userAdapter)
	geofenceService := services.NewGeofenceService(geofenceAdapter, adAdapter, userAdapter)
	adService := services.NewAdService(adAdapter, geofenceAdapter)
	matchingService := services.NewMatchingService(geofenceAdapter, adAdapter, analyticsAdapter, metrics)
	analyticsService := services.NewAnalyticsService(analyticsAdapter)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	geofenceHandler := handlers.NewGeofenceHandler(geofenceService)
	adHandler := handlers.NewAdHandler(adService)
	offersHandler := handlers.NewOffersHandler(matchingService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	geolocationHandler := handlers.NewGeolocationHandler(geolocationProvider)

	router := routes.NewRouter(
		authHandler,
		geofenceHandler,
		adHandler,
		offersHandler,
		analyticsHandler,
		geolocationHandler,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
