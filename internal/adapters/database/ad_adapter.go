package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/adfence/backend/pkg/errors"
)

// AdAdapter implements the AdRepository interface
type AdAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAdAdapter creates a new ad adapter
func NewAdAdapter(client *postgres.Client) repositories.AdRepository {
	return &AdAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new ad
func (a *AdAdapter) Create(ctx context.Context, ad *entities.Ad) error {
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	record := goqu.Record{
		"id":          ad.ID,
		"geofence_id": ad.GeofenceID,
		"title":       ad.Title,
		"description": ad.Description,
		"created_at":  ad.CreatedAt,
	}

	query, args, err := a.db.Insert("ads").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build ad insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create ad", err)
	}

	return nil
}

// GetByID retrieves an ad by id
func (a *AdAdapter) GetByID(ctx context.Context, id string) (*entities.Ad, error) {
	query, args, err := a.db.From("ads").
		Select("id", "geofence_id", "title", "description", "created_at").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build ad select query", err)
	}

	ad := &entities.Ad{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&ad.ID,
		&ad.GeofenceID,
		&ad.Title,
		&ad.Description,
		&ad.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("ad with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get ad", err)
	}

	return ad, nil
}

// ListByGeofence returns the geofence's ads in creation order
func (a *AdAdapter) ListByGeofence(ctx context.Context, geofenceID string) ([]*entities.Ad, error) {
	query, args, err := a.db.From("ads").
		Select("id", "geofence_id", "title", "description", "created_at").
		Where(goqu.Ex{"geofence_id": geofenceID}).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build ad list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list ads", err)
	}
	defer rows.Close()

	var ads []*entities.Ad
	for rows.Next() {
		ad := &entities.Ad{}
		err := rows.Scan(
			&ad.ID,
			&ad.GeofenceID,
			&ad.Title,
			&ad.Description,
			&ad.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan ad", err)
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate ads", err)
	}

	return ads, nil
}

// Reassign repoints an ad to another geofence
func (a *AdAdapter) Reassign(ctx context.Context, adID, geofenceID string) error {
	query, args, err := a.db.Update("ads").
		Set(goqu.Record{"geofence_id": geofenceID}).
		Where(goqu.Ex{"id": adID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build ad reassign query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to reassign ad", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read reassign result", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ad with id %s not found", adID))
	}

	return nil
}
