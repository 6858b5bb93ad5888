package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	teamDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/team"
	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/usecase/team"
)

// Team handles team management endpoints
type Team struct {
	service *team.Service
	logger  *zap.Logger
}

// NewTeam creates the team handler
func NewTeam(service *team.Service, logger *zap.Logger) *Team {
	return &Team{service: service, logger: logger}
}

// Create handles POST /v1/teams
func (h *Team) Create(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req teamDTO.CreateTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.service.CreateTeam(c.Request().Context(), userID, req.Name, req.Description)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTeamResponse(created))
}

// List handles GET /v1/teams
func (h *Team) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	teams, err := h.service.ListUserTeams(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTeamResponses(teams))
}

// Get handles GET /v1/teams/:id
func (h *Team) Get(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.service.Get(c.Request().Context(), teamID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTeamResponse(t))
}

// Invite handles POST /v1/teams/:id/members
func (h *Team) Invite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req teamDTO.InviteMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.service.InviteMember(c.Request().Context(), teamID, userID, req.Email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTeamResponse(updated))
}

// AcceptInvite handles POST /v1/teams/:id/accept
func (h *Team) AcceptInvite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.service.AcceptInvite(c.Request().Context(), teamID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTeamResponse(updated))
}
