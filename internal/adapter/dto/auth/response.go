package auth

import "time"

// NotificationPrefsResponse reports the effective notification gates
type NotificationPrefsResponse struct {
	TaskAssignments bool `json:"task_assignments"`
	TeamInvitations bool `json:"team_invitations"`
}

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID                      string                    `json:"id"`
	Email                   string                    `json:"email"`
	Name                    string                    `json:"name"`
	NotificationPreferences NotificationPrefsResponse `json:"notification_preferences"`
	CreatedAt               time.Time                 `json:"created_at"`
	UpdatedAt               time.Time                 `json:"updated_at"`
}

// AuthResponse represents a successful sign-in
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int           `json:"expires_in"`
	TokenType    string        `json:"token_type"`
	User         *UserResponse `json:"user"`
}

// RefreshTokenResponse represents a refreshed access token
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
