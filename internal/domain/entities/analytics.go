package entities

import (
	"time"
)

// AdView is one logged ad impression. Append-only; never mutated.
type AdView struct {
	ID       string    `json:"id" db:"id"`
	AdID     string    `json:"ad_id" db:"ad_id"`
	ViewedAt time.Time `json:"viewed_at" db:"viewed_at"`
}

// GeofenceEntry is one logged detection of a user inside a geofence.
// Append-only; feeds the per-geofence user counts.
type GeofenceEntry struct {
	ID         string    `json:"id" db:"id"`
	GeofenceID string    `json:"geofence_id" db:"geofence_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	EnteredAt  time.Time `json:"entered_at" db:"entered_at"`
}

// AdViewCount pairs an ad title with its accumulated impression count
type AdViewCount struct {
	AdTitle   string `json:"ad_title" db:"ad_title"`
	ViewCount int    `json:"view_count" db:"view_count"`
}
