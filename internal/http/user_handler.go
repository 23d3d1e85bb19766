package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type UserHandler struct {
	userRepository usecase.UserRepository
	secret         string
	tokenTTL       time.Duration
}

func NewUserHandler(repo usecase.UserRepository, secret string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{
		userRepository: repo,
		secret:         secret,
		tokenTTL:       tokenTTL,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body registerRequest true "Registration payload"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	user := entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}
	if err := h.userRepository.Create(r.Context(), &user); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "A user with that username or email already exists", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, user)
}

// @Summary Log in and receive an access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login payload"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.userRepository.GetByEmail(r.Context(), input.Email)
	if err != nil || !auth.VerifyPassword(user.Password, input.Password) {
		// Same response for unknown email and wrong password.
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials", nil)
		return
	}

	token, _, err := auth.GenerateToken(h.secret, user.ID, user.Role, h.tokenTTL)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.tokenTTL.Seconds()),
	}, nil)
}

// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	user, err := h.userRepository.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, user, nil)
}
