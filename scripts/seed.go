package main

import (
	"context"
	"log"
	"os"

	"github.com/adfence/backend/internal/adapters/database"
	"github.com/adfence/backend/internal/application/services"
	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	"github.com/adfence/backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('business', 'personal')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS geofences (
	id UUID PRIMARY KEY,
	business_id UUID NOT NULL REFERENCES users(id),
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	radius_km DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ads (
	id UUID PRIMARY KEY,
	geofence_id UUID NOT NULL REFERENCES geofences(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ad_views (
	id UUID PRIMARY KEY,
	ad_id UUID NOT NULL REFERENCES ads(id),
	viewed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_entries (
	id UUID PRIMARY KEY,
	geofence_id UUID NOT NULL REFERENCES geofences(id),
	user_id UUID NOT NULL REFERENCES users(id),
	entered_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_geofences_business_id ON geofences(business_id);
CREATE INDEX IF NOT EXISTS idx_ads_geofence_id ON ads(geofence_id);
CREATE INDEX IF NOT EXISTS idx_ad_views_ad_id ON ad_views(ad_id);
CREATE INDEX IF NOT EXISTS idx_user_entries_geofence_id ON user_entries(geofence_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			DROP TABLE IF EXISTS user_entries, ad_views, ads, geofences, users CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema ready")

	userRepo := database.NewUserAdapter(pgClient)
	geofenceRepo := database.NewGeofenceAdapter(pgClient)
	adRepo := database.NewAdAdapter(pgClient)

	userService := services.NewUserService(userRepo)
	geofenceService := services.NewGeofenceService(geofenceRepo, adRepo, userRepo)
	adService := services.NewAdService(adRepo, geofenceRepo)

	// 1. Seed users
	business, err := userService.Register(ctx, services.RegisterParams{
		Username: "Downtown Coffee",
		Email:    "owner@downtowncoffee.example",
		Password: "changeme123",
		Role:     entities.RoleBusiness,
	})
	if err != nil {
		log.Fatalf("Failed to create business user: %v", err)
	}

	if _, err := userService.Register(ctx, services.RegisterParams{
		Username: "demo",
		Email:    "demo@example.com",
		Password: "changeme123",
		Role:     entities.RolePersonal,
	}); err != nil {
		log.Printf("Failed to create personal user: %v", err)
	}

	// 2. Seed geofences with inline ads
	fences := []services.CreateGeofenceParams{
		{
			BusinessID: business.ID,
			Latitude:   40.7128,
			Longitude:  -74.0060,
			RadiusKm:   5,
			Ad: &services.AdContent{
				Title:       "Coffee Discount",
				Description: "20% off all espresso drinks this week",
			},
		},
		{
			BusinessID: business.ID,
			Latitude:   40.7580,
			Longitude:  -73.9855,
			RadiusKm:   2,
			Ad: &services.AdContent{
				Title:       "Midtown Opening",
				Description: "Free pastry with any drink at our new location",
			},
		},
	}

	for _, params := range fences {
		fence, err := geofenceService.Create(ctx, params)
		if err != nil {
			log.Printf("Failed to create geofence: %v", err)
			continue
		}
		log.Printf("Created geofence %s at (%.4f, %.4f)", fence.ID, params.Latitude, params.Longitude)
	}

	// 3. One extra ad on the latest geofence
	if _, err := adService.CreateForBusiness(ctx, business.ID, "Loyalty Cards", "Buy nine drinks, get the tenth free"); err != nil {
		log.Printf("Failed to create extra ad: %v", err)
	}

	log.Println("Seeding complete")
}
