package repositories

import (
	"context"

	"github.com/adfence/backend/internal/domain/entities"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// EmailExists reports whether the email is already registered
	EmailExists(ctx context.Context, email string) (bool, error)
}
