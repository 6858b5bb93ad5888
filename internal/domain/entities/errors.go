package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")

	// Meeting and task errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrActionItemNotFound = errors.New("action item not found in meeting")
	ErrInvalidStatus      = errors.New("invalid action item status")
	ErrInvalidPriority    = errors.New("invalid action item priority")

	// Team errors
	ErrTeamNotFound        = errors.New("team not found")
	ErrMemberAlreadyExists = errors.New("member already in team")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
