package entities

import (
	"time"
)

// Ad is a title/description pair attached to exactly one geofence. A
// geofence may carry many ads; the association can later be repointed to
// the geofence nearest to an arbitrary coordinate.
type Ad struct {
	ID          string    `json:"id" db:"id"`
	GeofenceID  string    `json:"geofence_id" db:"geofence_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
