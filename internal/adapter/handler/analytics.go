package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/usecase/analytics"
)

// Analytics handles productivity statistics endpoints
type Analytics struct {
	service *analytics.Service
	logger  *zap.Logger
}

// NewAnalytics creates the analytics handler
func NewAnalytics(service *analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{service: service, logger: logger}
}

// Summary handles GET /v1/analytics/summary
func (h *Analytics) Summary(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.service.GetUserAnalytics(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, summary)
}
