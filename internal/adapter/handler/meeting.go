package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/meeting"
	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/usecase/meeting"
)

// Meeting handles transcript processing and meeting reads
type Meeting struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewMeeting creates the meeting handler
func NewMeeting(service *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{service: service, logger: logger}
}

// Create handles POST /v1/meetings. The transcript is analyzed synchronously
// and the stored meeting, summary and action items included, is returned.
func (h *Meeting) Create(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meeting.CreateInput{
		OwnerID:    userID,
		Title:      req.Title,
		Transcript: req.Transcript,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	if req.TeamID != nil {
		teamID, err := uuid.Parse(*req.TeamID)
		if err == nil {
			input.TeamID = &teamID
		}
	}

	created, err := h.service.CreateFromTranscript(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingResponse(created))
}

// List handles GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponses(meetings))
}

// Get handles GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	if _, err := userIDFromContext(c); err != nil {
		return HandleError(h.logger, c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// Delete handles DELETE /v1/meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
