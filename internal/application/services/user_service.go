package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/domain/repositories"
	apperrors "github.com/adfence/backend/pkg/errors"
)

// RegisterParams are the inputs for creating an account
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Role     entities.Role
}

// UserService handles registration and authentication. There is no session
// state here; callers pass the authenticated user id into subsequent
// operations explicitly.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates and persists a new account. The role is fixed at
// creation.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*entities.User, error) {
	if strings.TrimSpace(params.Username) == "" ||
		strings.TrimSpace(params.Email) == "" ||
		params.Password == "" {
		return nil, apperrors.NewValidationError("username, email and password are required")
	}
	if !params.Role.Valid() {
		return nil, apperrors.NewValidationError("role must be business or personal")
	}

	exists, err := s.userRepo.EmailExists(ctx, params.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		ID:           uuid.New().String(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         params.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks email, password and role. All failure modes collapse
// into the same unauthorized error so callers cannot probe which part was
// wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string, role entities.Role) (*entities.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, apperrors.NewUnauthorizedError("invalid credentials or user type")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials or user type")
	}
	if user.Role != role {
		return nil, apperrors.NewUnauthorizedError("invalid credentials or user type")
	}

	return user, nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
