package auth

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=255"`
}

// LoginRequest represents the request to sign in an existing user
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RefreshTokenRequest represents the request to refresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdatePreferencesRequest represents the request to change notification
// preferences. Omitted fields reset to the default (enabled).
type UpdatePreferencesRequest struct {
	TaskAssignments *bool `json:"task_assignments,omitempty"`
	TeamInvitations *bool `json:"team_invitations,omitempty"`
}
