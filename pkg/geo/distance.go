package geo

import (
	"math"

	apperrors "github.com/adfence/backend/pkg/errors"
)

const earthRadiusKm = 6371.0

// Point represents a coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two points in
// kilometers, using the spherical law of cosines. The intermediate value is
// clamped to [-1, 1] so floating-point overshoot at near-identical or
// antipodal points never reaches Acos out of domain.
func Distance(a, b Point) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLon := degreesToRadians(b.Longitude - a.Longitude)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	return earthRadiusKm * math.Acos(clamp(cosAngle, -1, 1))
}

// Within reports whether point p lies inside the circle around center with
// the given radius in kilometers. The boundary counts as inside.
func Within(p, center Point, radiusKm float64) bool {
	return Distance(p, center) <= radiusKm
}

// ValidateCoordinate checks that a latitude/longitude pair is a real
// coordinate in decimal degrees.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
