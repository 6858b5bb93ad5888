package team

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
)

// Service manages teams and their embedded member lists
type Service struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	notifier notification.Service
	logger   *zap.Logger
}

// NewService creates the team service. notifier may be nil, in which case
// invitations are persisted without a notification.
func NewService(
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	notifier notification.Service,
	logger *zap.Logger,
) *Service {
	return &Service{
		teamRepo: teamRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateTeam creates a team with the creator as its first admin member
func (s *Service) CreateTeam(ctx context.Context, creatorID uuid.UUID, name string, description *string) (*entities.Team, error) {
	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve creator: %w", err)
	}

	team := entities.NewTeam(name, description, creator)
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("team created",
			zap.String("team_id", team.ID.String()),
			zap.String("created_by", creatorID.String()),
		)
	}
	return team, nil
}

// Get returns a single team. Only members may read it.
func (s *Service) Get(ctx context.Context, teamID, userID uuid.UUID) (*entities.Team, error) {
	team, err := s.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(userID) {
		return nil, usecaseErrors.ErrNotTeamMember
	}
	return team, nil
}

// InviteMember adds a user to the team in invited state and notifies them.
// Any active member may invite; inviting an existing member fails.
func (s *Service) InviteMember(ctx context.Context, teamID, inviterID uuid.UUID, inviteeEmail string) (*entities.Team, error) {
	team, err := s.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(inviterID) {
		return nil, usecaseErrors.ErrNotTeamMember
	}

	invitee, err := s.userRepo.FindByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve invitee: %w", err)
	}
	if team.HasMember(invitee.ID) {
		return nil, usecaseErrors.ErrMemberAlreadyInTeam
	}

	members := append(team.MemberList(), entities.TeamMember{
		UserID:      invitee.ID,
		Email:       invitee.Email,
		DisplayName: invitee.Name,
		Role:        entities.TeamMemberRoleMember,
		Status:      entities.TeamMemberStatusInvited,
		JoinedAt:    time.Now(),
	})
	if err := s.teamRepo.UpdateMembers(ctx, team.ID, members); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	team.Members = datatypes.NewJSONSlice(members)

	if s.notifier != nil {
		inviterName := ""
		if inviter, err := s.userRepo.FindByID(ctx, inviterID); err == nil {
			inviterName = inviter.Name
		}
		err := s.notifier.SendTeamInvitation(ctx, notification.TeamInvitationInput{
			TeamID:      team.ID,
			TeamName:    team.Name,
			InviterID:   inviterID,
			InviterName: inviterName,
			InviteeID:   invitee.ID,
		})
		if err != nil && s.logger != nil {
			s.logger.Warn("failed to send invitation notification",
				zap.String("team_id", team.ID.String()),
				zap.String("invitee_id", invitee.ID.String()),
				zap.Error(err),
			)
		}
	}

	return team, nil
}

// AcceptInvite flips the user's membership from invited to active
func (s *Service) AcceptInvite(ctx context.Context, teamID, userID uuid.UUID) (*entities.Team, error) {
	team, err := s.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members := team.MemberList()
	found := false
	for i := range members {
		if members[i].UserID == userID {
			members[i].Status = entities.TeamMemberStatusActive
			members[i].JoinedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		return nil, usecaseErrors.ErrNotTeamMember
	}

	if err := s.teamRepo.UpdateMembers(ctx, team.ID, members); err != nil {
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}
	team.Members = datatypes.NewJSONSlice(members)
	return team, nil
}

// ListUserTeams returns every team the user is a member of
func (s *Service) ListUserTeams(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	teams, err := s.teamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *Service) findTeam(ctx context.Context, teamID uuid.UUID) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, entities.ErrTeamNotFound) {
			return nil, usecaseErrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return team, nil
}
