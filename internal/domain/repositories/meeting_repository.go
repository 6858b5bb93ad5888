package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByOwner returns the meetings owned directly by the user
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error)

	// FindByTeam returns the meetings attached to a team
	FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Meeting, error)

	// FindVisibleToUser returns the user's own meetings plus the meetings of
	// every team the user belongs to
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)

	// UpdateActionItems rewrites the full action item list of a meeting
	UpdateActionItems(ctx context.Context, meetingID uuid.UUID, items []entities.ActionItem) error

	// Delete removes a meeting
	Delete(ctx context.Context, id uuid.UUID) error
}
