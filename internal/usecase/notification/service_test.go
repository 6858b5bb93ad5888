package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
)

type fakeNotifRepo struct {
	created  []*entities.Notification
	markRead map[uuid.UUID]bool
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{markRead: make(map[uuid.UUID]bool)}
}

func (r *fakeNotifRepo) Create(_ context.Context, n *entities.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotifRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for _, n := range r.created {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return entities.ErrNotificationNotFound
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

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	r.users[u.ID] = u
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
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	r.users[u.ID] = u
	return nil
}

func assignmentInput(recipient uuid.UUID) TaskAssignmentInput {
	return TaskAssignmentInput{
		TaskID:          uuid.New().String(),
		TaskDescription: "Finalize the release notes",
		RecipientID:     recipient,
		MeetingID:       uuid.New(),
		MeetingTitle:    "Q3 planning",
		ActorID:         uuid.New(),
	}
}

func TestSendTaskAssignment(t *testing.T) {
	recipient := entities.NewUser("jane@example.com", "Jane Smith")
	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(recipient), nil, zap.NewNop())

	err := svc.SendTaskAssignment(context.Background(), assignmentInput(recipient.ID))
	require.NoError(t, err)

	require.Len(t, notifRepo.created, 1)
	n := notifRepo.created[0]
	assert.Equal(t, entities.NotificationTypeTaskAssignment, n.Type)
	assert.Equal(t, recipient.ID, n.UserID)
	assert.False(t, n.Read)
	assert.Contains(t, n.Message, "Finalize the release notes")
}

func TestSendTaskAssignment_SuppressedByPreference(t *testing.T) {
	recipient := entities.NewUser("jane@example.com", "Jane Smith")
	disabled := false
	require.NoError(t, recipient.SetPrefs(entities.NotificationPrefs{TaskAssignments: &disabled}))

	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(recipient), nil, zap.NewNop())

	err := svc.SendTaskAssignment(context.Background(), assignmentInput(recipient.ID))
	require.NoError(t, err)
	assert.Empty(t, notifRepo.created)
}

func TestSendTaskAssignment_MissingProfileDefaultsToEnabled(t *testing.T) {
	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(), nil, zap.NewNop())

	err := svc.SendTaskAssignment(context.Background(), assignmentInput(uuid.New()))
	require.NoError(t, err)
	assert.Len(t, notifRepo.created, 1)
}

func TestSendTeamInvitation_IgnoresPreferences(t *testing.T) {
	invitee := entities.NewUser("jane@example.com", "Jane Smith")
	disabled := false
	require.NoError(t, invitee.SetPrefs(entities.NotificationPrefs{
		TaskAssignments: &disabled,
		TeamInvitations: &disabled,
	}))

	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(invitee), nil, zap.NewNop())

	err := svc.SendTeamInvitation(context.Background(), TeamInvitationInput{
		TeamID:      uuid.New(),
		TeamName:    "Engineering",
		InviterID:   uuid.New(),
		InviterName: "John Doe",
		InviteeID:   invitee.ID,
	})
	require.NoError(t, err)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, entities.NotificationTypeTeamInvitation, notifRepo.created[0].Type)
	assert.Contains(t, notifRepo.created[0].Message, "John Doe")
	assert.Contains(t, notifRepo.created[0].Message, "Engineering")
}

func TestListForUser(t *testing.T) {
	recipient := entities.NewUser("jane@example.com", "Jane Smith")
	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(recipient), nil, zap.NewNop())

	require.NoError(t, svc.SendTaskAssignment(context.Background(), assignmentInput(recipient.ID)))
	require.NoError(t, svc.SendTaskAssignment(context.Background(), assignmentInput(uuid.New())))

	got, err := svc.ListForUser(context.Background(), recipient.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMarkRead(t *testing.T) {
	recipient := entities.NewUser("jane@example.com", "Jane Smith")
	notifRepo := newFakeNotifRepo()
	svc := NewService(notifRepo, newFakeUserRepo(recipient), nil, zap.NewNop())

	require.NoError(t, svc.SendTaskAssignment(context.Background(), assignmentInput(recipient.ID)))
	created := notifRepo.created[0]

	require.NoError(t, svc.MarkRead(context.Background(), created.ID, recipient.ID))
	assert.True(t, created.Read)

	err := svc.MarkRead(context.Background(), uuid.New(), recipient.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrNotificationNotFound)
}
