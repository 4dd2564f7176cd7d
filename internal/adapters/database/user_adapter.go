package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/adfence/backend/pkg/errors"
)

const uniqueViolation = "23505"

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{client: client}
}

// Create inserts a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := a.client.DB().ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
		return apperrors.NewConflictError(fmt.Sprintf("email %s is already registered", user.Email))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByID retrieves a user by id
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	return a.scanUser(a.client.DB().QueryRowContext(ctx, query, id), fmt.Sprintf("user with id %s not found", id))
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	return a.scanUser(a.client.DB().QueryRowContext(ctx, query, email), fmt.Sprintf("user with email %s not found", email))
}

// EmailExists reports whether the email is already registered
func (a *UserAdapter) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE email = $1`

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check email", err)
	}

	return count > 0, nil
}

func (a *UserAdapter) scanUser(row *sql.Row, notFoundMsg string) (*entities.User, error) {
	user := &entities.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}
