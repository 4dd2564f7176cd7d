package geolocation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/adfence/backend/internal/domain/providers"
	apperrors "github.com/adfence/backend/pkg/errors"
)

const (
	googleGeolocateURL = "https://www.googleapis.com/geolocation/v1/geolocate"
	defaultHTTPTimeout = 8 * time.Second
)

// GoogleGeolocationProvider implements GeolocationProvider using the Google
// Geolocation API. The request carries no location hints beyond considerIp,
// matching what a thin client without GPS can offer. Calls go through a
// circuit breaker so a flapping upstream degrades to "no location" fast
// instead of holding every request for the full timeout.
type GoogleGeolocationProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
}

// NewGoogleGeolocationProvider creates a new Google geolocation provider
func NewGoogleGeolocationProvider(apiKey string, timeout time.Duration) providers.GeolocationProvider {
	return NewGoogleGeolocationProviderWithOptions(apiKey, googleGeolocateURL, &http.Client{Timeout: timeout})
}

// NewGoogleGeolocationProviderWithOptions allows overriding base URL and
// HTTP client (used for tests)
func NewGoogleGeolocationProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) providers.GeolocationProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleGeolocateURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "google-geolocation",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &GoogleGeolocationProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		breaker:    breaker,
	}
}

// CurrentLocation detects the caller's current coordinates
func (g *GoogleGeolocationProvider) CurrentLocation(ctx context.Context) (*providers.Coordinates, error) {
	if g.apiKey == "" {
		return nil, apperrors.NewExternalError("geolocation api key is not configured", nil)
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.doGeolocateRequest(ctx)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, apperrors.NewExternalError("geolocation service temporarily unavailable", err)
	}
	if err != nil {
		return nil, apperrors.NewExternalError("failed to detect current location", err)
	}

	return result.(*providers.Coordinates), nil
}

func (g *GoogleGeolocationProvider) doGeolocateRequest(ctx context.Context) (*providers.Coordinates, error) {
	body, err := json.Marshal(geolocateRequest{ConsiderIP: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal geolocate request: %w", err)
	}

	reqURL := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build geolocate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geolocate request returned status %d", resp.StatusCode)
	}

	var payload geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geolocate response: %w", err)
	}

	if payload.Location == nil {
		return nil, fmt.Errorf("geolocate response carried no location")
	}

	return &providers.Coordinates{
		Latitude:  payload.Location.Lat,
		Longitude: payload.Location.Lng,
	}, nil
}

type geolocateRequest struct {
	ConsiderIP bool `json:"considerIp"`
}

type geolocateResponse struct {
	Location *geolocateLocation `json:"location"`
	Accuracy float64            `json:"accuracy"`
}

type geolocateLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
