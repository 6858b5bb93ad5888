package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	"github.com/meetsync-team/meetsync/internal/infrastructure/metrics"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
)

// TaskAssignmentInput carries everything needed to notify a user about a
// task assigned or reassigned to them
type TaskAssignmentInput struct {
	TaskID          string
	TaskDescription string
	RecipientID     uuid.UUID
	RecipientName   string
	MeetingID       uuid.UUID
	MeetingTitle    string
	ActorID         uuid.UUID
	TeamID          *uuid.UUID
	TeamName        string
}

// TeamInvitationInput carries everything needed to notify a user about a
// team invitation
type TeamInvitationInput struct {
	TeamID      uuid.UUID
	TeamName    string
	InviterID   uuid.UUID
	InviterName string
	InviteeID   uuid.UUID
}

// Service defines notification delivery and access methods
type Service interface {
	SendTaskAssignment(ctx context.Context, input TaskAssignmentInput) error
	SendTeamInvitation(ctx context.Context, input TeamInvitationInput) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

type service struct {
	notifRepo repositories.NotificationRepository
	userRepo  repositories.UserRepository
	metrics   *metrics.Registry
	logger    *zap.Logger
}

// NewService constructs the notification management service
func NewService(
	notifRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	reg *metrics.Registry,
	logger *zap.Logger,
) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		metrics:   reg,
		logger:    logger,
	}
}

// SendTaskAssignment persists a task_assignment notification unless the
// recipient has disabled them.
func (s *service) SendTaskAssignment(ctx context.Context, input TaskAssignmentInput) error {
	// A missing profile or unreadable preference field counts as opted in:
	// delivery fails open instead of silently dropping.
	enabled := true
	recipient, err := s.userRepo.FindByID(ctx, input.RecipientID)
	if err == nil {
		enabled = recipient.Prefs().TaskAssignmentsEnabled()
	} else if s.logger != nil {
		s.logger.Warn("could not resolve notification preferences, defaulting to enabled",
			zap.String("user_id", input.RecipientID.String()),
			zap.Error(err),
		)
	}

	if !enabled {
		if s.metrics != nil {
			s.metrics.NotificationsSuppressed.Inc()
		}
		if s.logger != nil {
			s.logger.Debug("task assignment notification suppressed by preference",
				zap.String("user_id", input.RecipientID.String()),
				zap.String("task_id", input.TaskID),
			)
		}
		return nil
	}

	message := fmt.Sprintf("You have been assigned a task: %s (from meeting %q)",
		input.TaskDescription, input.MeetingTitle)
	if input.TeamName != "" {
		message = fmt.Sprintf("%s in team %q", message, input.TeamName)
	}

	notification := entities.NewNotification(
		input.RecipientID,
		entities.NotificationTypeTaskAssignment,
		"New task assignment",
		message,
	)
	notification.TaskID = &input.TaskID
	meetingID := input.MeetingID
	notification.MeetingID = &meetingID
	actorID := input.ActorID
	notification.ActorID = &actorID
	notification.TeamID = input.TeamID

	if err := s.notifRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to send task assignment notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.NotificationsSent.WithLabelValues(string(entities.NotificationTypeTaskAssignment)).Inc()
	}
	return nil
}

// SendTeamInvitation always persists a team_invitation notification;
// invitations are not suppressible by preference.
func (s *service) SendTeamInvitation(ctx context.Context, input TeamInvitationInput) error {
	message := fmt.Sprintf("%s invited you to join team %q", input.InviterName, input.TeamName)

	notification := entities.NewNotification(
		input.InviteeID,
		entities.NotificationTypeTeamInvitation,
		"Team invitation",
		message,
	)
	teamID := input.TeamID
	notification.TeamID = &teamID
	inviterID := input.InviterID
	notification.ActorID = &inviterID

	if err := s.notifRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to send team invitation notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.NotificationsSent.WithLabelValues(string(entities.NotificationTypeTeamInvitation)).Inc()
	}
	return nil
}

// ListForUser returns the user's notifications, newest first
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	notifications, err := s.notifRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags a notification as read
func (s *service) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.notifRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, entities.ErrNotificationNotFound) {
			return usecaseErrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
