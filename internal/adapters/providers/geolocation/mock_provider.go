package geolocation

import (
	"context"

	"github.com/adfence/backend/internal/domain/providers"
)

// MockGeolocationProvider implements a fixed-location provider for
// development and tests
type MockGeolocationProvider struct {
	Coordinates providers.Coordinates
}

// NewMockGeolocationProvider creates a mock provider reporting the given
// coordinates
func NewMockGeolocationProvider(lat, lon float64) providers.GeolocationProvider {
	return &MockGeolocationProvider{
		Coordinates: providers.Coordinates{Latitude: lat, Longitude: lon},
	}
}

// CurrentLocation returns the configured coordinates
func (m *MockGeolocationProvider) CurrentLocation(ctx context.Context) (*providers.Coordinates, error) {
	coords := m.Coordinates
	return &coords, nil
}
