package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
)

// TeamRepository implements the team repository interface using GORM
type TeamRepository struct {
	db     *gorm.DB
	bus    repositories.EventBus
	logger *zap.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, bus repositories.EventBus, logger *zap.Logger) *TeamRepository {
	return &TeamRepository{
		db:     db,
		bus:    bus,
		logger: logger,
	}
}

// Create persists a new team
func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	r.publishChange(ctx, team)
	return nil
}

// FindByID finds a team by ID
func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var team entities.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team by ID: %w", err)
	}
	return &team, nil
}

// FindByUser returns every team the user is a member of, using JSONB
// containment on the embedded member list
func (r *TeamRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	membership := fmt.Sprintf(`[{"user_id":%q}]`, userID)

	var teams []*entities.Team
	if err := r.db.WithContext(ctx).
		Where("members @> ?::jsonb", membership).
		Order("created_at ASC").
		Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to find teams by user: %w", err)
	}
	return teams, nil
}

// UpdateMembers rewrites the full member list of a team
func (r *TeamRepository) UpdateMembers(ctx context.Context, teamID uuid.UUID, members []entities.TeamMember) error {
	team, err := r.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	team.Members = datatypes.NewJSONSlice(members)
	if err := r.db.WithContext(ctx).
		Model(&entities.Team{}).
		Where("id = ?", teamID).
		Update("members", team.Members).Error; err != nil {
		return fmt.Errorf("failed to update team members: %w", err)
	}

	r.publishChange(ctx, team)
	return nil
}

// publishChange notifies every member's team feed. Best-effort.
func (r *TeamRepository) publishChange(ctx context.Context, team *entities.Team) {
	if r.bus == nil {
		return
	}

	payload := []byte(team.ID.String())
	for _, member := range team.Members {
		topic := repositories.TeamsTopic(member.UserID)
		if err := r.bus.Publish(ctx, topic, payload); err != nil && r.logger != nil {
			r.logger.Warn("failed to publish team change event",
				zap.String("topic", topic),
				zap.String("team_id", team.ID.String()),
				zap.Error(err),
			)
		}
	}
}
