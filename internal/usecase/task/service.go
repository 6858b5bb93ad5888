package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
)

// Service handles task derivation, assignment and status tracking over the
// action items embedded in meetings
type Service struct {
	meetingRepo repositories.MeetingRepository
	teamRepo    repositories.TeamRepository
	userRepo    repositories.UserRepository
	matcher     Matcher
	notifier    notification.Service
	logger      *zap.Logger
}

// NewService creates a new task management service. notifier may be nil, in
// which case assignment events are not announced.
func NewService(
	meetingRepo repositories.MeetingRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	matcher Matcher,
	notifier notification.Service,
	logger *zap.Logger,
) *Service {
	if matcher == nil {
		matcher = NewNameMatcher()
	}
	return &Service{
		meetingRepo: meetingRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		matcher:     matcher,
		notifier:    notifier,
		logger:      logger,
	}
}

// ExtractTasksFromMeeting maps every action item of the meeting to a task
// carrying meeting and team context. A team id that does not resolve to an
// existing team leaves the team name empty; that is not a failure.
func (s *Service) ExtractTasksFromMeeting(ctx context.Context, meeting *entities.Meeting, teamID *uuid.UUID) []entities.Task {
	effectiveTeamID := teamID
	if effectiveTeamID == nil {
		effectiveTeamID = meeting.TeamID
	}

	teamName := ""
	if effectiveTeamID != nil {
		team, err := s.teamRepo.FindByID(ctx, *effectiveTeamID)
		if err == nil {
			teamName = team.Name
		} else if !errors.Is(err, entities.ErrTeamNotFound) && s.logger != nil {
			s.logger.Warn("team lookup failed while extracting tasks",
				zap.String("team_id", effectiveTeamID.String()),
				zap.Error(err),
			)
		}
	}

	tasks := make([]entities.Task, 0, len(meeting.ActionItems))
	for i := range meeting.ActionItems {
		tasks = append(tasks, entities.Task{
			ActionItem:   meeting.ActionItems[i],
			MeetingID:    meeting.ID,
			MeetingTitle: meeting.Title,
			MeetingDate:  meeting.Date,
			TeamID:       effectiveTeamID,
			TeamName:     teamName,
		})
	}
	return tasks
}

// AutoAssignTasks matches every unassigned action item of the meeting
// against the members of its team and persists the resolved assignments in
// one rewrite. Items with no match stay unassigned; that is not a failure.
func (s *Service) AutoAssignTasks(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	if meeting.TeamID == nil {
		// Nothing to match against; a personal meeting has no members.
		return meeting, nil
	}

	team, err := s.teamRepo.FindByID(ctx, *meeting.TeamID)
	if err != nil {
		if errors.Is(err, entities.ErrTeamNotFound) {
			return nil, usecaseErrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	members := team.MemberList()
	items := []entities.ActionItem(meeting.ActionItems)

	var assigned []entities.ActionItem
	for i := range items {
		if items[i].IsAssigned() || items[i].Owner == "" {
			continue
		}
		member := s.matcher.Match(items[i].Owner, members)
		if member == nil {
			continue
		}
		items[i].Assign(member.UserID, member.DisplayName)
		assigned = append(assigned, items[i])
	}

	if len(assigned) == 0 {
		return meeting, nil
	}

	if err := s.meetingRepo.UpdateActionItems(ctx, meeting.ID, items); err != nil {
		return nil, fmt.Errorf("failed to persist auto-assignments: %w", err)
	}
	meeting.ActionItems = items

	for _, item := range assigned {
		s.notifyAssignment(ctx, meeting, team, item, actingUserID)
	}

	return meeting, nil
}

// UpdateTaskStatus rewrites the status of one action item and persists the
// meeting's full item list. A task id not present in the meeting fails with
// ErrTaskNotFound and issues no write.
func (s *Service) UpdateTaskStatus(ctx context.Context, taskID string, meetingID uuid.UUID, status entities.ActionItemStatus, actingUserID uuid.UUID) (*entities.Meeting, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidTaskStatus
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	idx := meeting.FindActionItem(taskID)
	if idx < 0 {
		return nil, usecaseErrors.ErrTaskNotFound
	}

	items := []entities.ActionItem(meeting.ActionItems)
	items[idx].Status = status

	if err := s.meetingRepo.UpdateActionItems(ctx, meeting.ID, items); err != nil {
		return nil, fmt.Errorf("failed to persist status change: %w", err)
	}
	meeting.ActionItems = items

	if s.logger != nil {
		s.logger.Info("task status updated",
			zap.String("task_id", taskID),
			zap.String("meeting_id", meetingID.String()),
			zap.String("status", string(status)),
			zap.String("acting_user", actingUserID.String()),
		)
	}

	return meeting, nil
}

// ReassignTask sets a new assignee on one action item, resolving the display
// name from the assignee's profile, and notifies them.
func (s *Service) ReassignTask(ctx context.Context, taskID string, meetingID, newAssigneeID, actingUserID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	idx := meeting.FindActionItem(taskID)
	if idx < 0 {
		return nil, usecaseErrors.ErrTaskNotFound
	}

	assignee, err := s.userRepo.FindByID(ctx, newAssigneeID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	items := []entities.ActionItem(meeting.ActionItems)
	items[idx].Assign(assignee.ID, assignee.Name)

	if err := s.meetingRepo.UpdateActionItems(ctx, meeting.ID, items); err != nil {
		return nil, fmt.Errorf("failed to persist reassignment: %w", err)
	}
	meeting.ActionItems = items

	var team *entities.Team
	if meeting.TeamID != nil {
		if t, err := s.teamRepo.FindByID(ctx, *meeting.TeamID); err == nil {
			team = t
		}
	}
	s.notifyAssignment(ctx, meeting, team, items[idx], actingUserID)

	return meeting, nil
}

// GetUserTasks flattens the action items of every meeting visible to the
// user (own plus team) into context-carrying tasks. Storage failures
// propagate to the caller.
func (s *Service) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]entities.Task, error) {
	meetings, err := s.meetingRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user meetings: %w", err)
	}

	teams, err := s.teamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user teams: %w", err)
	}
	teamNames := make(map[uuid.UUID]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	var tasks []entities.Task
	for _, meeting := range meetings {
		teamName := ""
		if meeting.TeamID != nil {
			teamName = teamNames[*meeting.TeamID]
		}
		for i := range meeting.ActionItems {
			tasks = append(tasks, entities.Task{
				ActionItem:   meeting.ActionItems[i],
				MeetingID:    meeting.ID,
				MeetingTitle: meeting.Title,
				MeetingDate:  meeting.Date,
				TeamID:       meeting.TeamID,
				TeamName:     teamName,
			})
		}
	}
	return tasks, nil
}

// notifyAssignment announces an assignment to its new assignee. Failures are
// logged, never propagated; the assignment itself already persisted.
func (s *Service) notifyAssignment(ctx context.Context, meeting *entities.Meeting, team *entities.Team, item entities.ActionItem, actingUserID uuid.UUID) {
	if s.notifier == nil || item.AssigneeID == nil {
		return
	}

	input := notification.TaskAssignmentInput{
		TaskID:          item.ID,
		TaskDescription: item.Description,
		RecipientID:     *item.AssigneeID,
		MeetingID:       meeting.ID,
		MeetingTitle:    meeting.Title,
		ActorID:         actingUserID,
	}
	if item.AssigneeName != nil {
		input.RecipientName = *item.AssigneeName
	}
	if team != nil {
		teamID := team.ID
		input.TeamID = &teamID
		input.TeamName = team.Name
	}

	if err := s.notifier.SendTaskAssignment(ctx, input); err != nil && s.logger != nil {
		s.logger.Warn("failed to send assignment notification",
			zap.String("task_id", item.ID),
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
	}
}
