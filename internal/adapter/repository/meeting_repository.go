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

// MeetingRepository implements the meeting repository interface using GORM.
// Successful writes publish change events so live subscribers can refresh.
type MeetingRepository struct {
	db     *gorm.DB
	bus    repositories.EventBus
	logger *zap.Logger
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB, bus repositories.EventBus, logger *zap.Logger) *MeetingRepository {
	return &MeetingRepository{
		db:     db,
		bus:    bus,
		logger: logger,
	}
}

// Create persists a new meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	r.publishChange(ctx, meeting)
	return nil
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// FindByOwner returns the meetings owned directly by the user
func (r *MeetingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings by owner: %w", err)
	}
	return meetings, nil
}

// FindByTeam returns the meetings attached to a team
func (r *MeetingRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("date DESC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings by team: %w", err)
	}
	return meetings, nil
}

// FindVisibleToUser returns the user's own meetings plus the meetings of
// every team the user belongs to
func (r *MeetingRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	membership := fmt.Sprintf(`[{"user_id":%q}]`, userID)

	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? OR team_id IN (SELECT id FROM teams WHERE members @> ?::jsonb)", userID, membership).
		Order("date DESC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings visible to user: %w", err)
	}
	return meetings, nil
}

// UpdateActionItems rewrites the full action item list of a meeting.
// Last-write-wins: the whole list is replaced in a single row update.
func (r *MeetingRepository) UpdateActionItems(ctx context.Context, meetingID uuid.UUID, items []entities.ActionItem) error {
	meeting, err := r.FindByID(ctx, meetingID)
	if err != nil {
		return err
	}

	meeting.ActionItems = datatypes.NewJSONSlice(items)
	if err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meetingID).
		Update("action_items", meeting.ActionItems).Error; err != nil {
		return fmt.Errorf("failed to update action items: %w", err)
	}

	r.publishChange(ctx, meeting)
	return nil
}

// Delete removes a meeting
func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	meeting, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&entities.Meeting{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	r.publishChange(ctx, meeting)
	return nil
}

// publishChange notifies the owner's and team's change feeds. Event delivery
// is best-effort; a failed publish never fails the write.
func (r *MeetingRepository) publishChange(ctx context.Context, meeting *entities.Meeting) {
	if r.bus == nil {
		return
	}

	payload := []byte(meeting.ID.String())
	topics := []string{repositories.MeetingsTopic(meeting.OwnerID)}
	if meeting.TeamID != nil {
		topics = append(topics, repositories.TeamMeetingsTopic(*meeting.TeamID))
	}

	for _, topic := range topics {
		if err := r.bus.Publish(ctx, topic, payload); err != nil && r.logger != nil {
			r.logger.Warn("failed to publish meeting change event",
				zap.String("topic", topic),
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err),
			)
		}
	}
}
