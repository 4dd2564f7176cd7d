package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/adfence/backend/pkg/errors"
)

// GeofenceAdapter implements the GeofenceRepository interface
type GeofenceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewGeofenceAdapter creates a new geofence adapter
func NewGeofenceAdapter(client *postgres.Client) repositories.GeofenceRepository {
	return &GeofenceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new geofence
func (a *GeofenceAdapter) Create(ctx context.Context, geofence *entities.Geofence) error {
	if geofence.CreatedAt.IsZero() {
		geofence.CreatedAt = time.Now()
	}

	record := goqu.Record{
		"id":          geofence.ID,
		"business_id": geofence.BusinessID,
		"latitude":    geofence.Center.Latitude,
		"longitude":   geofence.Center.Longitude,
		"radius_km":   geofence.RadiusKm,
		"created_at":  geofence.CreatedAt,
	}

	query, args, err := a.db.Insert("geofences").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build geofence insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create geofence", err)
	}

	return nil
}

// GetByID retrieves a geofence by id
func (a *GeofenceAdapter) GetByID(ctx context.Context, id string) (*entities.Geofence, error) {
	query, args, err := a.db.From("geofences").
		Select("id", "business_id", "latitude", "longitude", "radius_km", "created_at").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build geofence select query", err)
	}

	geofence := &entities.Geofence{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&geofence.ID,
		&geofence.BusinessID,
		&geofence.Center.Latitude,
		&geofence.Center.Longitude,
		&geofence.RadiusKm,
		&geofence.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("geofence with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get geofence", err)
	}

	return geofence, nil
}

// ListAll returns every geofence in creation order. The matching engine
// does a full scan over this list; fine at the current scale, revisit with
// a spatial index if the fence count ever grows past a few thousand.
func (a *GeofenceAdapter) ListAll(ctx context.Context) ([]*entities.Geofence, error) {
	query, args, err := a.db.From("geofences").
		Select("id", "business_id", "latitude", "longitude", "radius_km", "created_at").
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build geofence list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list geofences", err)
	}
	defer rows.Close()

	var geofences []*entities.Geofence
	for rows.Next() {
		g := &entities.Geofence{}
		err := rows.Scan(
			&g.ID,
			&g.BusinessID,
			&g.Center.Latitude,
			&g.Center.Longitude,
			&g.RadiusKm,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan geofence", err)
		}
		geofences = append(geofences, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate geofences", err)
	}

	return geofences, nil
}

// ListByBusiness returns the business's geofences most-recent-first, each
// joined with its latest ad (if any) for display
func (a *GeofenceAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error) {
	query := `
		SELECT g.id, g.business_id, g.latitude, g.longitude, g.radius_km, g.created_at,
		       a.title, a.description
		FROM geofences g
		LEFT JOIN LATERAL (
			SELECT title, description
			FROM ads
			WHERE ads.geofence_id = g.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) a ON true
		WHERE g.business_id = $1
		ORDER BY g.created_at DESC, g.id DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list business geofences", err)
	}
	defer rows.Close()

	var results []*entities.GeofenceWithAd
	for rows.Next() {
		r := &entities.GeofenceWithAd{}
		err := rows.Scan(
			&r.ID,
			&r.BusinessID,
			&r.Center.Latitude,
			&r.Center.Longitude,
			&r.RadiusKm,
			&r.CreatedAt,
			&r.AdTitle,
			&r.AdDescription,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan business geofence", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate business geofences", err)
	}

	return results, nil
}

// LatestForBusiness returns the business's most-recently-created geofence
func (a *GeofenceAdapter) LatestForBusiness(ctx context.Context, businessID string) (*entities.Geofence, error) {
	query, args, err := a.db.From("geofences").
		Select("id", "business_id", "latitude", "longitude", "radius_km", "created_at").
		Where(goqu.Ex{"business_id": businessID}).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build latest geofence query", err)
	}

	geofence := &entities.Geofence{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&geofence.ID,
		&geofence.BusinessID,
		&geofence.Center.Latitude,
		&geofence.Center.Longitude,
		&geofence.RadiusKm,
		&geofence.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no geofence found for business %s", businessID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get latest geofence", err)
	}

	return geofence, nil
}

// Exists reports whether a geofence with the given id exists
func (a *GeofenceAdapter) Exists(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.From("geofences").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build geofence exists query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check geofence existence", err)
	}

	return count > 0, nil
}
