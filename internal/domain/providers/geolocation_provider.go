package providers

import (
	"context"
)

// GeolocationProvider defines the interface for automatic location
// detection. Implementations must apply a bounded timeout; callers treat
// any failure as "no location available" and fall back to manual entry.
type GeolocationProvider interface {
	// CurrentLocation detects the caller's current coordinates
	CurrentLocation(ctx context.Context) (*Coordinates, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
