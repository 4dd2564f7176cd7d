package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfence/backend/internal/api/handlers"
	"github.com/adfence/backend/internal/application/services"
	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/pkg/geo"
)

type stubAnalyticsService struct {
	counts []*entities.AdViewCount
	err    error
	inner  *services.AnalyticsService
}

func (s *stubAnalyticsService) CountAdViews(ctx context.Context, businessID string) ([]*entities.AdViewCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.counts, nil
}

func (s *stubAnalyticsService) CountUsersPerGeofence(geofences []*entities.Geofence, userLocations []geo.Point) map[int]int {
	if s.inner == nil {
		s.inner = services.NewAnalyticsService(nil)
	}
	return s.inner.CountUsersPerGeofence(geofences, userLocations)
}

func TestAnalyticsHandler_GetAdViews(t *testing.T) {
	service := &stubAnalyticsService{counts: []*entities.AdViewCount{
		{AdTitle: "Coffee Discount", ViewCount: 7},
	}}
	handler := handlers.NewAnalyticsHandler(service)

	req := httptest.NewRequest("GET", "/api/analytics/ad-views?business_id=biz-1", nil)
	w := httptest.NewRecorder()

	handler.GetAdViews(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AdViews []*entities.AdViewCount `json:"ad_views"`
		Count   int                     `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "Coffee Discount", response.AdViews[0].AdTitle)
}

func TestAnalyticsHandler_GetAdViews_MissingBusinessID(t *testing.T) {
	handler := handlers.NewAnalyticsHandler(&stubAnalyticsService{})

	req := httptest.NewRequest("GET", "/api/analytics/ad-views", nil)
	w := httptest.NewRecorder()

	handler.GetAdViews(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandler_CountGeofenceUsers(t *testing.T) {
	handler := handlers.NewAnalyticsHandler(&stubAnalyticsService{})

	body := `{
		"geofences": [
			{"latitude": 40.7128, "longitude": -74.0060, "radius_km": 5},
			{"latitude": 51.5074, "longitude": -0.1278, "radius_km": 5}
		],
		"user_locations": [
			{"latitude": 40.7128, "longitude": -74.0060},
			{"latitude": 40.7200, "longitude": -74.0000}
		]
	}`
	req := httptest.NewRequest("POST", "/api/analytics/geofence-users", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CountGeofenceUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Counts["0"])
	assert.Equal(t, 0, response.Counts["1"])
}

func TestAnalyticsHandler_CountGeofenceUsers_InvalidRadius(t *testing.T) {
	handler := handlers.NewAnalyticsHandler(&stubAnalyticsService{})

	body := `{"geofences": [{"latitude": 40.7128, "longitude": -74.0060, "radius_km": 0}], "user_locations": []}`
	req := httptest.NewRequest("POST", "/api/analytics/geofence-users", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CountGeofenceUsers(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandler_CountGeofenceUsers_InvalidLocation(t *testing.T) {
	handler := handlers.NewAnalyticsHandler(&stubAnalyticsService{})

	body := `{"geofences": [], "user_locations": [{"latitude": 95, "longitude": 0}]}`
	req := httptest.NewRequest("POST", "/api/analytics/geofence-users", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CountGeofenceUsers(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
