package entities

import (
	"time"
)

// Location represents geographical coordinates in decimal degrees
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Geofence is a circular region owned by a business user. Geofences are
// never updated in place; they are created once and only read afterwards.
type Geofence struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	Center     Location  `json:"center" db:"-"`
	RadiusKm   float64   `json:"radius_km" db:"radius_km"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// GeofenceWithAd is a geofence row joined with at most one ad, used by the
// business listing view.
type GeofenceWithAd struct {
	Geofence
	AdTitle       *string `json:"ad_title,omitempty"`
	AdDescription *string `json:"ad_description,omitempty"`
}
