package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	taskDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/task"
	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
)

// Task handles task listing, status changes and assignment
type Task struct {
	service *task.Service
	logger  *zap.Logger
}

// NewTask creates the task handler
func NewTask(service *task.Service, logger *zap.Logger) *Task {
	return &Task{service: service, logger: logger}
}

// List handles GET /v1/tasks
func (h *Task) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	tasks, err := h.service.GetUserTasks(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponses(tasks))
}

// UpdateStatus handles PUT /v1/tasks/:id/status
func (h *Task) UpdateStatus(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	taskID := c.Param("id")

	var req taskDTO.UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, _ := uuid.Parse(req.MeetingID)

	updated, err := h.service.UpdateTaskStatus(c.Request().Context(), taskID, meetingID,
		entities.ActionItemStatus(req.Status), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(updated))
}

// Reassign handles PUT /v1/tasks/:id/assignee
func (h *Task) Reassign(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	taskID := c.Param("id")

	var req taskDTO.ReassignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, _ := uuid.Parse(req.MeetingID)
	assigneeID, _ := uuid.Parse(req.AssigneeID)

	updated, err := h.service.ReassignTask(c.Request().Context(), taskID, meetingID, assigneeID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(updated))
}

// AutoAssign handles POST /v1/tasks/auto-assign
func (h *Task) AutoAssign(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.AutoAssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, _ := uuid.Parse(req.MeetingID)

	updated, err := h.service.AutoAssignTasks(c.Request().Context(), meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(updated))
}
