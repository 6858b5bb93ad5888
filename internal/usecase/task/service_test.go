package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
)

type fakeMeetingRepo struct {
	meetings    map[uuid.UUID]*entities.Meeting
	updateCalls int
	updateErr   error
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	r := &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
	for _, m := range meetings {
		r.meetings[m.ID] = m
	}
	return r
}

func (r *fakeMeetingRepo) Create(_ context.Context, meeting *entities.Meeting) error {
	r.meetings[meeting.ID] = meeting
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMeetingRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) FindByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.TeamID != nil && *m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) FindVisibleToUser(_ context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	return r.FindByOwner(context.Background(), userID)
}

func (r *fakeMeetingRepo) UpdateActionItems(_ context.Context, meetingID uuid.UUID, items []entities.ActionItem) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	m, ok := r.meetings[meetingID]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	m.ActionItems = datatypes.NewJSONSlice(items)
	return nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.meetings, id)
	return nil
}

type fakeTeamRepo struct {
	teams map[uuid.UUID]*entities.Team
}

func newFakeTeamRepo(teams ...*entities.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[uuid.UUID]*entities.Team)}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

func (r *fakeTeamRepo) Create(_ context.Context, team *entities.Team) error {
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return t, nil
}

func (r *fakeTeamRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	var out []*entities.Team
	for _, t := range r.teams {
		if t.HasMember(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) UpdateMembers(_ context.Context, teamID uuid.UUID, members []entities.TeamMember) error {
	t, ok := r.teams[teamID]
	if !ok {
		return entities.ErrTeamNotFound
	}
	t.Members = datatypes.NewJSONSlice(members)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

type recordingNotifier struct {
	assignments []notification.TaskAssignmentInput
	invitations []notification.TeamInvitationInput
}

func (n *recordingNotifier) SendTaskAssignment(_ context.Context, input notification.TaskAssignmentInput) error {
	n.assignments = append(n.assignments, input)
	return nil
}

func (n *recordingNotifier) SendTeamInvitation(_ context.Context, input notification.TeamInvitationInput) error {
	n.invitations = append(n.invitations, input)
	return nil
}

func (n *recordingNotifier) ListForUser(_ context.Context, _ uuid.UUID) ([]*entities.Notification, error) {
	return nil, nil
}

func (n *recordingNotifier) MarkRead(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func teamWith(names ...string) *entities.Team {
	members := make([]entities.TeamMember, 0, len(names))
	for _, name := range names {
		members = append(members, entities.TeamMember{
			UserID:      uuid.New(),
			DisplayName: name,
			Role:        entities.TeamMemberRoleMember,
			Status:      entities.TeamMemberStatusActive,
		})
	}
	return &entities.Team{
		ID:      uuid.New(),
		Name:    "Engineering",
		Members: datatypes.NewJSONSlice(members),
	}
}

func meetingWithItems(teamID *uuid.UUID, items ...entities.ActionItem) *entities.Meeting {
	return &entities.Meeting{
		ID:          uuid.New(),
		Title:       "Sprint planning",
		Date:        time.Now(),
		OwnerID:     uuid.New(),
		TeamID:      teamID,
		ActionItems: datatypes.NewJSONSlice(items),
	}
}

func TestExtractTasksFromMeeting(t *testing.T) {
	team := teamWith("John Doe")
	meeting := meetingWithItems(&team.ID,
		entities.NewActionItem("Ship the release", entities.ActionItemPriorityHigh),
		entities.NewActionItem("Write the changelog", entities.ActionItemPriorityLow),
	)

	svc := NewService(newFakeMeetingRepo(meeting), newFakeTeamRepo(team), newFakeUserRepo(), nil, nil, zap.NewNop())

	tasks := svc.ExtractTasksFromMeeting(context.Background(), meeting, nil)
	require.Len(t, tasks, 2)
	assert.Equal(t, meeting.ID, tasks[0].MeetingID)
	assert.Equal(t, "Sprint planning", tasks[0].MeetingTitle)
	assert.Equal(t, "Engineering", tasks[0].TeamName)
	assert.Equal(t, "Ship the release", tasks[0].Description)
}

func TestExtractTasksFromMeeting_UnknownTeam(t *testing.T) {
	unknown := uuid.New()
	meeting := meetingWithItems(nil, entities.NewActionItem("Follow up", entities.ActionItemPriorityMedium))

	svc := NewService(newFakeMeetingRepo(meeting), newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	tasks := svc.ExtractTasksFromMeeting(context.Background(), meeting, &unknown)
	require.Len(t, tasks, 1)
	assert.Empty(t, tasks[0].TeamName)
	require.NotNil(t, tasks[0].TeamID)
	assert.Equal(t, unknown, *tasks[0].TeamID)
}

func TestAutoAssignTasks(t *testing.T) {
	team := teamWith("John Doe", "Jane Smith")
	itemJohn := entities.NewActionItem("Prepare the demo", entities.ActionItemPriorityHigh)
	itemJohn.Owner = "John"
	itemNobody := entities.NewActionItem("Book the venue", entities.ActionItemPriorityLow)
	itemNobody.Owner = "Maria"
	meeting := meetingWithItems(&team.ID, itemJohn, itemNobody)

	meetingRepo := newFakeMeetingRepo(meeting)
	notifier := &recordingNotifier{}
	svc := NewService(meetingRepo, newFakeTeamRepo(team), newFakeUserRepo(), nil, notifier, zap.NewNop())

	updated, err := svc.AutoAssignTasks(context.Background(), meeting.ID, uuid.New())
	require.NoError(t, err)

	require.True(t, updated.ActionItems[0].IsAssigned())
	assert.Equal(t, "John Doe", *updated.ActionItems[0].AssigneeName)
	assert.False(t, updated.ActionItems[1].IsAssigned())

	assert.Equal(t, 1, meetingRepo.updateCalls)
	require.Len(t, notifier.assignments, 1)
	assert.Equal(t, itemJohn.ID, notifier.assignments[0].TaskID)
	assert.Equal(t, "Engineering", notifier.assignments[0].TeamName)
}

func TestAutoAssignTasks_NoMatchesSkipsWrite(t *testing.T) {
	team := teamWith("John Doe")
	item := entities.NewActionItem("Order pizza", entities.ActionItemPriorityLow)
	item.Owner = "Maria"
	meeting := meetingWithItems(&team.ID, item)

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(team), newFakeUserRepo(), nil, &recordingNotifier{}, zap.NewNop())

	_, err := svc.AutoAssignTasks(context.Background(), meeting.ID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, meetingRepo.updateCalls)
}

func TestAutoAssignTasks_PersonalMeeting(t *testing.T) {
	meeting := meetingWithItems(nil, entities.NewActionItem("Solo work", entities.ActionItemPriorityMedium))

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(), nil, &recordingNotifier{}, zap.NewNop())

	updated, err := svc.AutoAssignTasks(context.Background(), meeting.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, updated.ActionItems[0].IsAssigned())
	assert.Zero(t, meetingRepo.updateCalls)
}

func TestAutoAssignTasks_MeetingNotFound(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	_, err := svc.AutoAssignTasks(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestUpdateTaskStatus(t *testing.T) {
	item := entities.NewActionItem("Review the PR", entities.ActionItemPriorityHigh)
	meeting := meetingWithItems(nil, item)

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	updated, err := svc.UpdateTaskStatus(context.Background(), item.ID, meeting.ID, entities.ActionItemStatusCompleted, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entities.ActionItemStatusCompleted, updated.ActionItems[0].Status)
	assert.Equal(t, 1, meetingRepo.updateCalls)
}

func TestUpdateTaskStatus_InvalidStatus(t *testing.T) {
	item := entities.NewActionItem("Review the PR", entities.ActionItemPriorityHigh)
	meeting := meetingWithItems(nil, item)

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	_, err := svc.UpdateTaskStatus(context.Background(), item.ID, meeting.ID, "done", uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidTaskStatus)
	assert.Zero(t, meetingRepo.updateCalls)
}

func TestUpdateTaskStatus_TaskNotFound(t *testing.T) {
	meeting := meetingWithItems(nil, entities.NewActionItem("Review the PR", entities.ActionItemPriorityHigh))

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	_, err := svc.UpdateTaskStatus(context.Background(), uuid.New().String(), meeting.ID, entities.ActionItemStatusInProgress, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrTaskNotFound)
	assert.Zero(t, meetingRepo.updateCalls)
}

func TestReassignTask(t *testing.T) {
	item := entities.NewActionItem("Update the runbook", entities.ActionItemPriorityMedium)
	meeting := meetingWithItems(nil, item)
	assignee := &entities.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane Smith"}

	meetingRepo := newFakeMeetingRepo(meeting)
	notifier := &recordingNotifier{}
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(assignee), nil, notifier, zap.NewNop())

	updated, err := svc.ReassignTask(context.Background(), item.ID, meeting.ID, assignee.ID, uuid.New())
	require.NoError(t, err)

	require.True(t, updated.ActionItems[0].IsAssigned())
	assert.Equal(t, assignee.ID, *updated.ActionItems[0].AssigneeID)
	assert.Equal(t, "Jane Smith", *updated.ActionItems[0].AssigneeName)

	require.Len(t, notifier.assignments, 1)
	assert.Equal(t, assignee.ID, notifier.assignments[0].RecipientID)
}

func TestReassignTask_UnknownAssignee(t *testing.T) {
	item := entities.NewActionItem("Update the runbook", entities.ActionItemPriorityMedium)
	meeting := meetingWithItems(nil, item)

	meetingRepo := newFakeMeetingRepo(meeting)
	svc := NewService(meetingRepo, newFakeTeamRepo(), newFakeUserRepo(), nil, nil, zap.NewNop())

	_, err := svc.ReassignTask(context.Background(), item.ID, meeting.ID, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrUserNotFound)
	assert.Zero(t, meetingRepo.updateCalls)
}

func TestGetUserTasks(t *testing.T) {
	userID := uuid.New()
	team := teamWith("John Doe")
	team.Members = datatypes.NewJSONSlice(append(team.MemberList(), entities.TeamMember{
		UserID:      userID,
		DisplayName: "Owner",
		Role:        entities.TeamMemberRoleAdmin,
		Status:      entities.TeamMemberStatusActive,
	}))

	teamMeeting := meetingWithItems(&team.ID, entities.NewActionItem("Team task", entities.ActionItemPriorityHigh))
	teamMeeting.OwnerID = userID
	personal := meetingWithItems(nil, entities.NewActionItem("Personal task", entities.ActionItemPriorityLow))
	personal.OwnerID = userID

	svc := NewService(newFakeMeetingRepo(teamMeeting, personal), newFakeTeamRepo(team), newFakeUserRepo(), nil, nil, zap.NewNop())

	tasks, err := svc.GetUserTasks(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	byDesc := make(map[string]entities.Task, len(tasks))
	for _, task := range tasks {
		byDesc[task.Description] = task
	}
	assert.Equal(t, "Engineering", byDesc["Team task"].TeamName)
	assert.Empty(t, byDesc["Personal task"].TeamName)
}
