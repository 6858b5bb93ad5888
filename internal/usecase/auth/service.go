package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/pkg/jwt"
)

// Service handles registration, sign-in and profile access. Identity
// verification happens upstream (SSO gateway); this service maps verified
// identities to local users and issues API tokens.
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewService creates the auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// AuthResponse carries the signed-in user and their tokens
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int64          `json:"expires_in"`
}

// Register creates a user for a verified identity and signs them in. An
// already registered email signs in the existing user instead.
func (s *Service) Register(ctx context.Context, email, name string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return s.issueTokens(user)
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user = entities.NewUser(email, name)
	if err := user.Validate(); err != nil {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	}
	return s.issueTokens(user)
}

// Login signs in an existing user by their verified email
func (s *Service) Login(ctx context.Context, email string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}
	return s.issueTokens(user)
}

// RefreshAccessToken exchanges a valid refresh token for a new access token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}
	return s.issueTokens(user)
}

// GetProfile returns a user's profile
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

// UpdatePreferences replaces the user's notification preferences
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entities.NotificationPrefs) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := user.SetPrefs(prefs); err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return user, nil
}

func (s *Service) issueTokens(user *entities.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
