package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/infrastructure/events"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
)

type fakeMeetingRepo struct {
	meetings []*entities.Meeting
	findErr  error
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	r.meetings = append(r.meetings, m)
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	for _, m := range r.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (r *fakeMeetingRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	return r.meetings, r.findErr
}

func (r *fakeMeetingRepo) FindByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.Meeting, error) {
	return r.meetings, r.findErr
}

func (r *fakeMeetingRepo) FindVisibleToUser(_ context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.meetings, nil
}

func (r *fakeMeetingRepo) UpdateActionItems(_ context.Context, meetingID uuid.UUID, items []entities.ActionItem) error {
	return nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	return nil
}

type fakeTeamRepo struct {
	teams []*entities.Team
}

func (r *fakeTeamRepo) Create(_ context.Context, t *entities.Team) error {
	r.teams = append(r.teams, t)
	return nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			return t, nil
		}
	}
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

type fakeNotifRepo struct {
	notifications []*entities.Notification
}

func (r *fakeNotifRepo) Create(_ context.Context, n *entities.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotifRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	return nil
}

func newTestEngine(meetingRepo *fakeMeetingRepo, teamRepo *fakeTeamRepo, bus *events.MemoryBus) *Engine {
	logger := zap.NewNop()
	notifier := notification.NewService(&fakeNotifRepo{}, &fakeUserRepo{}, nil, logger)
	tasks := task.NewService(meetingRepo, teamRepo, &fakeUserRepo{}, nil, notifier, logger)
	return NewEngine(meetingRepo, teamRepo, tasks, notifier, bus, nil, logger)
}

func testMeeting(teamID *uuid.UUID) *entities.Meeting {
	return &entities.Meeting{
		ID:      uuid.New(),
		Title:   "Standup",
		Date:    time.Now(),
		OwnerID: uuid.New(),
		TeamID:  teamID,
		ActionItems: datatypes.NewJSONSlice([]entities.ActionItem{
			entities.NewActionItem("Follow up", entities.ActionItemPriorityMedium),
		}),
	}
}

func TestSyncAllUserData(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{testMeeting(nil)}}
	engine := newTestEngine(meetingRepo, &fakeTeamRepo{}, events.NewMemoryBus())

	snapshot, err := engine.SyncAllUserData(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, snapshot.Meetings, 1)
	assert.Len(t, snapshot.Tasks, 1)
	assert.True(t, snapshot.Online)
	assert.WithinDuration(t, time.Now(), snapshot.LastUpdated, time.Second)
}

func TestSyncAllUserData_FailedReadAbortsSnapshot(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{findErr: errors.New("connection reset")}
	engine := newTestEngine(meetingRepo, &fakeTeamRepo{}, events.NewMemoryBus())

	snapshot, err := engine.SyncAllUserData(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestSyncAllUserData_ReportsOffline(t *testing.T) {
	engine := newTestEngine(&fakeMeetingRepo{}, &fakeTeamRepo{}, events.NewMemoryBus())
	engine.SetConnectionState(false)

	snapshot, err := engine.SyncAllUserData(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, snapshot.Online)
	assert.False(t, engine.ConnectionState())
}

func TestSubscribeMeetingUpdates(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{testMeeting(nil)}}
	bus := events.NewMemoryBus()
	engine := newTestEngine(meetingRepo, &fakeTeamRepo{}, bus)

	var received [][]*entities.Meeting
	cancel, err := engine.SubscribeMeetingUpdates(context.Background(), userID, func(meetings []*entities.Meeting) {
		received = append(received, meetings)
	})
	require.NoError(t, err)
	defer cancel()

	err = bus.Publish(context.Background(), "meetings:user:"+userID.String(), []byte("changed"))
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Len(t, received[0], 1)
}

func TestSubscribeMeetingUpdates_TeamTopic(t *testing.T) {
	userID := uuid.New()
	team := &entities.Team{ID: uuid.New(), Name: "Engineering"}
	meetingRepo := &fakeMeetingRepo{meetings: []*entities.Meeting{testMeeting(&team.ID)}}
	bus := events.NewMemoryBus()
	engine := newTestEngine(meetingRepo, &fakeTeamRepo{teams: []*entities.Team{team}}, bus)

	var calls int
	cancel, err := engine.SubscribeMeetingUpdates(context.Background(), userID, func([]*entities.Meeting) {
		calls++
	})
	require.NoError(t, err)
	defer cancel()

	err = bus.Publish(context.Background(), "meetings:team:"+team.ID.String(), []byte("changed"))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSubscribeMeetingUpdates_UnsubscribeStopsDelivery(t *testing.T) {
	userID := uuid.New()
	bus := events.NewMemoryBus()
	engine := newTestEngine(&fakeMeetingRepo{}, &fakeTeamRepo{}, bus)

	var calls int
	cancel, err := engine.SubscribeMeetingUpdates(context.Background(), userID, func([]*entities.Meeting) {
		calls++
	})
	require.NoError(t, err)

	cancel()
	cancel() // safe to repeat

	err = bus.Publish(context.Background(), "meetings:user:"+userID.String(), []byte("changed"))
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestCleanup(t *testing.T) {
	userID := uuid.New()
	bus := events.NewMemoryBus()
	engine := newTestEngine(&fakeMeetingRepo{}, &fakeTeamRepo{}, bus)

	var calls int
	_, err := engine.SubscribeMeetingUpdates(context.Background(), userID, func([]*entities.Meeting) {
		calls++
	})
	require.NoError(t, err)

	engine.Cleanup()
	engine.Cleanup() // idempotent

	err = bus.Publish(context.Background(), "meetings:user:"+userID.String(), []byte("changed"))
	require.NoError(t, err)
	assert.Zero(t, calls)

	_, err = engine.SubscribeMeetingUpdates(context.Background(), userID, func([]*entities.Meeting) {})
	assert.ErrorIs(t, err, usecaseErrors.ErrEngineClosed)

	_, err = engine.SyncAllUserData(context.Background(), userID)
	assert.ErrorIs(t, err, usecaseErrors.ErrEngineClosed)
}
