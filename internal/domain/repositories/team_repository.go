package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create persists a new team
	Create(ctx context.Context, team *entities.Team) error

	// FindByID finds a team by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)

	// FindByUser returns every team the user is a member of
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error)

	// UpdateMembers rewrites the full member list of a team
	UpdateMembers(ctx context.Context, teamID uuid.UUID, members []entities.TeamMember) error
}
