package entities

import (
	"time"
)

// Role distinguishes business accounts (geofence/ad owners) from personal
// accounts (offer consumers). Fixed at registration.
type Role string

const (
	RoleBusiness Role = "business"
	RolePersonal Role = "personal"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleBusiness || r == RolePersonal
}

// User represents a registered account
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
