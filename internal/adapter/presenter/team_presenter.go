package presenter

import (
	teamDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/team"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// ToTeamResponse converts a Team entity to TeamResponse DTO
func ToTeamResponse(t *entities.Team) *teamDTO.TeamResponse {
	if t == nil {
		return nil
	}

	members := make([]teamDTO.MemberResponse, 0, len(t.Members))
	for i := range t.Members {
		m := t.Members[i]
		members = append(members, teamDTO.MemberResponse{
			UserID:      m.UserID.String(),
			Email:       m.Email,
			DisplayName: m.DisplayName,
			Role:        string(m.Role),
			Status:      string(m.Status),
			JoinedAt:    m.JoinedAt,
		})
	}

	return &teamDTO.TeamResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		CreatedBy:   t.CreatedBy.String(),
		Members:     members,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTeamResponses converts a slice of teams
func ToTeamResponses(teams []*entities.Team) []*teamDTO.TeamResponse {
	out := make([]*teamDTO.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToTeamResponse(t))
	}
	return out
}
