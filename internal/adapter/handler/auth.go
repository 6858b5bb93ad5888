package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/auth"
	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/usecase/auth"
)

// Auth handles authentication and profile endpoints
type Auth struct {
	service *auth.Service
	logger  *zap.Logger
}

// NewAuth creates the auth handler
func NewAuth(service *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

// Register handles POST /v1/auth/register
func (h *Auth) Register(c echo.Context) error {
	var req authDTO.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.Register(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAuthResponse(resp))
}

// Login handles POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.Login(c.Request().Context(), req.Email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(resp))
}

// RefreshToken handles POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authDTO.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.RefreshAccessToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToRefreshTokenResponse(resp))
}

// Me handles GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

// UpdatePreferences handles PUT /v1/auth/me/preferences
func (h *Auth) UpdatePreferences(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req authDTO.UpdatePreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.service.UpdatePreferences(c.Request().Context(), userID, entities.NotificationPrefs{
		TaskAssignments: req.TaskAssignments,
		TeamInvitations: req.TeamInvitations,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}
