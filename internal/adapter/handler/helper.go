package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/errors"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Info    string            `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// userIDFromContext reads the authenticated user id stored by the auth
// middleware
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    status,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging. Usecase sentinels are
// translated to their API error first, anything else is an internal error.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	err = translateUsecaseError(err)
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		return c.JSON(appErr.HTTPCode, errs{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Details: appErr.Details,
			Info:    info,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, errs{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
	})
}

// translateUsecaseError maps usecase sentinel errors onto API errors
func translateUsecaseError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrTaskNotFound):
		return errors.ErrNotFound("Task")
	case stdErrors.Is(err, usecaseErrors.ErrTeamNotFound):
		return errors.ErrNotFound("Team")
	case stdErrors.Is(err, usecaseErrors.ErrNotificationNotFound):
		return errors.ErrNotFound("Notification")
	case stdErrors.Is(err, usecaseErrors.ErrUserNotFound):
		return errors.ErrNotFound("User")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidTaskStatus):
		return errors.ErrInvalidArgument("Invalid task status")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyTranscript):
		return errors.ErrInvalidArgument("Transcript must not be empty")
	case stdErrors.Is(err, usecaseErrors.ErrMemberAlreadyInTeam):
		return errors.ErrAlreadyExists("Team member")
	case stdErrors.Is(err, usecaseErrors.ErrNotTeamMember):
		return errors.ErrPermissionDenied("not a team member")
	case stdErrors.Is(err, usecaseErrors.ErrNotTeamAdmin):
		return errors.ErrPermissionDenied("not a team admin")
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return errors.ErrPermissionDenied("access denied")
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUserNotActive):
		return errors.ErrPermissionDenied("account is deactivated")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument("Invalid input")
	case stdErrors.Is(err, usecaseErrors.ErrEngineClosed):
		return errors.ErrInternal(err)
	default:
		return err
	}
}

// bindAndValidate decodes the request body and runs struct validation
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errors.ErrInvalidArgument("Malformed request body")
	}
	if err := c.Validate(v); err != nil {
		return errors.ErrValidationFailed(err)
	}
	return nil
}

// parseUUIDParam reads a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("Invalid " + name)
	}
	return id, nil
}
