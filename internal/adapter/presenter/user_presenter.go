package presenter

import (
	authDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/auth"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	prefs := u.Prefs()
	return &authDTO.UserResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		NotificationPreferences: authDTO.NotificationPrefsResponse{
			TaskAssignments: prefs.TaskAssignmentsEnabled(),
			TeamInvitations: prefs.TeamInvitations == nil || *prefs.TeamInvitations,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAuthResponse converts usecase AuthResponse to DTO AuthResponse
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken:  usecaseResp.AccessToken,
		RefreshToken: usecaseResp.RefreshToken,
		ExpiresIn:    int(usecaseResp.ExpiresIn),
		TokenType:    "Bearer",
		User:         ToUserResponse(usecaseResp.User),
	}
}

// ToRefreshTokenResponse converts usecase AuthResponse to the refresh
// endpoint's slimmer DTO
func ToRefreshTokenResponse(usecaseResp *auth.AuthResponse) *authDTO.RefreshTokenResponse {
	if usecaseResp == nil {
		return nil
	}
	return &authDTO.RefreshTokenResponse{
		AccessToken: usecaseResp.AccessToken,
		ExpiresIn:   int(usecaseResp.ExpiresIn),
		TokenType:   "Bearer",
	}
}
