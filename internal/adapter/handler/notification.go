package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
)

// Notification handles notification access endpoints
type Notification struct {
	service notification.Service
	logger  *zap.Logger
}

// NewNotification creates the notification handler
func NewNotification(service notification.Service, logger *zap.Logger) *Notification {
	return &Notification{service: service, logger: logger}
}

// List handles GET /v1/notifications
func (h *Notification) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	notifications, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToNotificationResponses(notifications))
}

// MarkRead handles PUT /v1/notifications/:id/read
func (h *Notification) MarkRead(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	notificationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
