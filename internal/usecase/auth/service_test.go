package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/pkg/jwt"
)

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
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	r.users[u.ID] = u
	return nil
}

func newTestService(repo *fakeUserRepo) *Service {
	manager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, manager, zap.NewNop())
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), "john@example.com", "John Doe")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "john@example.com", resp.User.Email)
	assert.Len(t, repo.users, 1)
}

func TestRegister_ExistingEmailSignsIn(t *testing.T) {
	existing := entities.NewUser("john@example.com", "John Doe")
	repo := newFakeUserRepo(existing)
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), "john@example.com", "Johnny")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)
	assert.Len(t, repo.users, 1)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "John Doe")
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	existing := entities.NewUser("john@example.com", "John Doe")
	svc := newTestService(newFakeUserRepo(existing))

	resp, err := svc.Login(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)

	_, err = svc.Login(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, usecaseErrors.ErrUserNotFound)
}

func TestLogin_InactiveUser(t *testing.T) {
	existing := entities.NewUser("john@example.com", "John Doe")
	existing.IsActive = false
	svc := newTestService(newFakeUserRepo(existing))

	_, err := svc.Login(context.Background(), "john@example.com")
	assert.ErrorIs(t, err, usecaseErrors.ErrUserNotActive)
}

func TestRefreshAccessToken(t *testing.T) {
	existing := entities.NewUser("john@example.com", "John Doe")
	svc := newTestService(newFakeUserRepo(existing))

	login, err := svc.Login(context.Background(), "john@example.com")
	require.NoError(t, err)

	refreshed, err := svc.RefreshAccessToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, existing.ID, refreshed.User.ID)

	_, err = svc.RefreshAccessToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, usecaseErrors.ErrUnauthorized)
}

func TestUpdatePreferences(t *testing.T) {
	existing := entities.NewUser("john@example.com", "John Doe")
	repo := newFakeUserRepo(existing)
	svc := newTestService(repo)

	disabled := false
	updated, err := svc.UpdatePreferences(context.Background(), existing.ID, entities.NotificationPrefs{
		TaskAssignments: &disabled,
	})
	require.NoError(t, err)
	assert.False(t, updated.Prefs().TaskAssignmentsEnabled())

	stored := repo.users[existing.ID]
	assert.False(t, stored.Prefs().TaskAssignmentsEnabled())
}
