package analytics

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
	"github.com/meetsync-team/meetsync/internal/infrastructure/cache"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
)

type fakeMeetingRepo struct {
	meetings  []*entities.Meeting
	findCalls int
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error { return nil }

func (r *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, entities.ErrMeetingNotFound
}

func (r *fakeMeetingRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	return r.meetings, nil
}

func (r *fakeMeetingRepo) FindByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.Meeting, error) {
	return r.meetings, nil
}

func (r *fakeMeetingRepo) FindVisibleToUser(_ context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	r.findCalls++
	return r.meetings, nil
}

func (r *fakeMeetingRepo) UpdateActionItems(_ context.Context, meetingID uuid.UUID, items []entities.ActionItem) error {
	return nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

type fakeTeamRepo struct {
	teams []*entities.Team
}

func (r *fakeTeamRepo) Create(_ context.Context, t *entities.Team) error { return nil }

func (r *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	return nil, entities.ErrTeamNotFound
}

func (r *fakeTeamRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	return r.teams, nil
}

func (r *fakeTeamRepo) UpdateMembers(_ context.Context, teamID uuid.UUID, members []entities.TeamMember) error {
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error { return nil }

func itemWithStatus(status entities.ActionItemStatus) entities.ActionItem {
	item := entities.NewActionItem("task", entities.ActionItemPriorityMedium)
	item.Status = status
	return item
}

func meetingWith(teamID *uuid.UUID, items ...entities.ActionItem) *entities.Meeting {
	return &entities.Meeting{
		ID:          uuid.New(),
		Title:       "Weekly sync",
		Date:        time.Now(),
		OwnerID:     uuid.New(),
		TeamID:      teamID,
		ActionItems: datatypes.NewJSONSlice(items),
	}
}

func newTestService(meetingRepo *fakeMeetingRepo, teamRepo *fakeTeamRepo, store *cache.MemoryStore) *Service {
	logger := zap.NewNop()
	tasks := task.NewService(meetingRepo, teamRepo, &fakeUserRepo{}, nil, nil, logger)
	return NewService(meetingRepo, teamRepo, tasks, store, logger)
}

func TestGetUserAnalytics(t *testing.T) {
	teamID := uuid.New()
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{
		meetingWith(&teamID,
			itemWithStatus(entities.ActionItemStatusCompleted),
			itemWithStatus(entities.ActionItemStatusCompleted),
			itemWithStatus(entities.ActionItemStatusInProgress),
		),
		meetingWith(nil, itemWithStatus(entities.ActionItemStatusPending)),
	}}
	teamRepo := &fakeTeamRepo{teams: []*entities.Team{{ID: teamID, Name: "Engineering"}}}

	svc := newTestService(meetingRepo, teamRepo, nil)

	summary, err := svc.GetUserAnalytics(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalTasks)
	assert.Equal(t, 2, summary.CompletedTasks)
	assert.Equal(t, 1, summary.InProgressTasks)
	assert.Equal(t, 1, summary.PendingTasks)
	assert.Equal(t, 50, summary.CompletionRate)
	assert.Equal(t, 2, summary.TotalMeetings)
	assert.Equal(t, 1, summary.TeamMeetings)
	assert.Equal(t, 1, summary.TotalTeams)
}

func TestGetUserAnalytics_NoTasks(t *testing.T) {
	svc := newTestService(&fakeMeetingRepo{}, &fakeTeamRepo{}, nil)

	summary, err := svc.GetUserAnalytics(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalTasks)
	assert.Zero(t, summary.CompletionRate)
}

func TestGetUserAnalytics_RateRounds(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{
		meetingWith(nil,
			itemWithStatus(entities.ActionItemStatusCompleted),
			itemWithStatus(entities.ActionItemStatusCompleted),
			itemWithStatus(entities.ActionItemStatusPending),
		),
	}}

	svc := newTestService(meetingRepo, &fakeTeamRepo{}, nil)

	summary, err := svc.GetUserAnalytics(context.Background(), uuid.New())
	require.NoError(t, err)
	// 2/3 rounds up to 67
	assert.Equal(t, 67, summary.CompletionRate)
}

func TestGetUserAnalytics_CachesSummary(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{
		meetingWith(nil, itemWithStatus(entities.ActionItemStatusPending)),
	}}

	svc := newTestService(meetingRepo, &fakeTeamRepo{}, cache.NewMemoryStore())

	first, err := svc.GetUserAnalytics(context.Background(), userID)
	require.NoError(t, err)
	callsAfterFirst := meetingRepo.findCalls

	second, err := svc.GetUserAnalytics(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, meetingRepo.findCalls)

	svc.Invalidate(userID)
	_, err = svc.GetUserAnalytics(context.Background(), userID)
	require.NoError(t, err)
	assert.Greater(t, meetingRepo.findCalls, callsAfterFirst)
}
