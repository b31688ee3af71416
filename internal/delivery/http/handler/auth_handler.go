package handler

import (
	"encoding/json"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles admin login
// @Summary Login admin
// @Description Authenticate the console admin and get an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Logout handles admin logout
// @Summary Logout admin
// @Description Revoke the current access token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentUser handles getting current admin info
// @Summary Get current admin
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
