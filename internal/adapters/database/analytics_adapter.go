package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/adfence/backend/pkg/errors"
)

// AnalyticsAdapter implements the AnalyticsRepository interface over the
// append-only ad_views and user_entries logs
type AnalyticsAdapter struct {
	client *postgres.Client
	db     *sqlx.DB
}

// NewAnalyticsAdapter creates a new analytics adapter
func NewAnalyticsAdapter(client *postgres.Client) repositories.AnalyticsRepository {
	return &AnalyticsAdapter{
		client: client,
		db:     sqlx.NewDb(client.DB(), "postgres"),
	}
}

// LogAdView appends one impression row for an ad
func (a *AnalyticsAdapter) LogAdView(ctx context.Context, view *entities.AdView) error {
	if view.ID == "" {
		view.ID = uuid.New().String()
	}
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}

	query := `
		INSERT INTO ad_views (id, ad_id, viewed_at)
		VALUES ($1, $2, $3)
	`

	if _, err := a.db.ExecContext(ctx, query, view.ID, view.AdID, view.ViewedAt); err != nil {
		return apperrors.NewInternalError("failed to log ad view", err)
	}

	return nil
}

// LogGeofenceEntry appends one user-inside-geofence row
func (a *AnalyticsAdapter) LogGeofenceEntry(ctx context.Context, entry *entities.GeofenceEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.EnteredAt.IsZero() {
		entry.EnteredAt = time.Now()
	}

	query := `
		INSERT INTO user_entries (id, geofence_id, user_id, entered_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := a.db.ExecContext(ctx, query, entry.ID, entry.GeofenceID, entry.UserID, entry.EnteredAt); err != nil {
		return apperrors.NewInternalError("failed to log geofence entry", err)
	}

	return nil
}

// CountAdViews returns per-ad view counts for the business's ads, zero-view
// ads included, ordered by view count descending
func (a *AnalyticsAdapter) CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error) {
	query := `
		SELECT ads.title AS ad_title, COUNT(ad_views.id) AS view_count
		FROM ads
		JOIN geofences ON ads.geofence_id = geofences.id
		LEFT JOIN ad_views ON ad_views.ad_id = ads.id
		WHERE geofences.business_id = $1
		GROUP BY ads.id, ads.title
		ORDER BY view_count DESC, ads.title ASC, ads.id ASC
	`

	var counts []*entities.AdViewCount
	if err := a.db.SelectContext(ctx, &counts, query, businessID); err != nil {
		return nil, apperrors.NewInternalError("failed to count ad views", err)
	}

	return counts, nil
}
