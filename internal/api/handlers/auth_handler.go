package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adfence/backend/internal/application/services"
	"github.com/adfence/backend/internal/domain/entities"
)

// UserService defines the account operations used by the handler.
type UserService interface {
	Register(ctx context.Context, params services.RegisterParams) (*entities.User, error)
	Authenticate(ctx context.Context, email, password string, role entities.Role) (*entities.User, error)
}

// AuthHandler handles account registration and login.
type AuthHandler struct {
	service UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register handles POST /api/users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.Register(r.Context(), services.RegisterParams{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     entities.Role(payload.Role),
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password, entities.Role(payload.Role))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
