package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Meeting and task errors
var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrTaskNotFound      = errors.New("task not found in meeting")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrEmptyTranscript   = errors.New("transcript must not be empty")
)

// Team errors
var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrMemberAlreadyInTeam  = errors.New("user is already a member of the team")
	ErrNotTeamMember        = errors.New("user is not a member of the team")
	ErrNotTeamAdmin         = errors.New("user is not a team admin")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotActive    = errors.New("user is not active")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)

// Sync errors
var (
	ErrEngineClosed = errors.New("sync engine has been cleaned up")
)
