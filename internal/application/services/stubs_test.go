package services

import (
	"context"
	"fmt"

	"github.com/adfence/backend/internal/domain/entities"
	apperrors "github.com/adfence/backend/pkg/errors"
)

// In-memory repository implementations shared by the service tests.

type memUserRepo struct {
	users []*entities.User
}

func (m *memUserRepo) Create(ctx context.Context, user *entities.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with email %s not found", email))
}

func (m *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memGeofenceRepo struct {
	fences    []*entities.Geofence
	createErr error
}

func (m *memGeofenceRepo) Create(ctx context.Context, geofence *entities.Geofence) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.fences = append(m.fences, geofence)
	return nil
}

func (m *memGeofenceRepo) GetByID(ctx context.Context, id string) (*entities.Geofence, error) {
	for _, f := range m.fences {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("geofence with id %s not found", id))
}

func (m *memGeofenceRepo) ListAll(ctx context.Context) ([]*entities.Geofence, error) {
	return m.fences, nil
}

func (m *memGeofenceRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entities.GeofenceWithAd, error) {
	var result []*entities.GeofenceWithAd
	for i := len(m.fences) - 1; i >= 0; i-- {
		if m.fences[i].BusinessID == businessID {
			result = append(result, &entities.GeofenceWithAd{Geofence: *m.fences[i]})
		}
	}
	return result, nil
}

func (m *memGeofenceRepo) LatestForBusiness(ctx context.Context, businessID string) (*entities.Geofence, error) {
	for i := len(m.fences) - 1; i >= 0; i-- {
		if m.fences[i].BusinessID == businessID {
			return m.fences[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("no geofence found for business %s", businessID))
}

func (m *memGeofenceRepo) Exists(ctx context.Context, id string) (bool, error) {
	for _, f := range m.fences {
		if f.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type memAdRepo struct {
	ads []*entities.Ad
}

func (m *memAdRepo) Create(ctx context.Context, ad *entities.Ad) error {
	m.ads = append(m.ads, ad)
	return nil
}

func (m *memAdRepo) GetByID(ctx context.Context, id string) (*entities.Ad, error) {
	for _, ad := range m.ads {
		if ad.ID == id {
			return ad, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("ad with id %s not found", id))
}

func (m *memAdRepo) ListByGeofence(ctx context.Context, geofenceID string) ([]*entities.Ad, error) {
	var result []*entities.Ad
	for _, ad := range m.ads {
		if ad.GeofenceID == geofenceID {
			result = append(result, ad)
		}
	}
	return result, nil
}

func (m *memAdRepo) Reassign(ctx context.Context, adID, geofenceID string) error {
	for _, ad := range m.ads {
		if ad.ID == adID {
			ad.GeofenceID = geofenceID
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("ad with id %s not found", adID))
}

type memAnalyticsRepo struct {
	views   []*entities.AdView
	entries []*entities.GeofenceEntry
	counts  []*entities.AdViewCount
	logErr  error
}

func (m *memAnalyticsRepo) LogAdView(ctx context.Context, view *entities.AdView) error {
	if m.logErr != nil {
		return m.logErr
	}
	m.views = append(m.views, view)
	return nil
}

func (m *memAnalyticsRepo) LogGeofenceEntry(ctx context.Context, entry *entities.GeofenceEntry) error {
	if m.logErr != nil {
		return m.logErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memAnalyticsRepo) CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error) {
	return m.counts, nil
}
