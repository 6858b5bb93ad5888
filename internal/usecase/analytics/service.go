package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	"github.com/meetsync-team/meetsync/internal/infrastructure/cache"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
)

const summaryTTL = 5 * time.Minute

// Service computes aggregate statistics over a user's meetings, tasks and
// teams. Summaries are derived on demand and cached briefly; they are never
// persisted.
type Service struct {
	meetingRepo repositories.MeetingRepository
	teamRepo    repositories.TeamRepository
	tasks       *task.Service
	store       *cache.MemoryStore
	logger      *zap.Logger
}

// NewService creates the analytics service. store may be nil to disable
// caching.
func NewService(
	meetingRepo repositories.MeetingRepository,
	teamRepo repositories.TeamRepository,
	tasks *task.Service,
	store *cache.MemoryStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		teamRepo:    teamRepo,
		tasks:       tasks,
		store:       store,
		logger:      logger,
	}
}

// GetUserAnalytics aggregates task, meeting and team counts for the user.
// The completion rate is rounded to a whole percentage and is 0 when the
// user has no tasks.
func (s *Service) GetUserAnalytics(ctx context.Context, userID uuid.UUID) (*entities.AnalyticsSummary, error) {
	cacheKey := "analytics:" + userID.String()
	if s.store != nil {
		if cached, ok := s.store.Get(cacheKey); ok {
			if summary, ok := cached.(*entities.AnalyticsSummary); ok {
				return summary, nil
			}
		}
	}

	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for analytics: %w", err)
	}

	meetings, err := s.meetingRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meetings for analytics: %w", err)
	}

	teams, err := s.teamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for analytics: %w", err)
	}

	summary := &entities.AnalyticsSummary{
		TotalTasks:    len(tasks),
		TotalMeetings: len(meetings),
		TotalTeams:    len(teams),
	}

	for _, t := range tasks {
		switch t.Status {
		case entities.ActionItemStatusCompleted:
			summary.CompletedTasks++
		case entities.ActionItemStatusInProgress:
			summary.InProgressTasks++
		default:
			summary.PendingTasks++
		}
	}
	for _, m := range meetings {
		if m.TeamID != nil {
			summary.TeamMeetings++
		}
	}

	if summary.TotalTasks > 0 {
		rate := float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
		summary.CompletionRate = int(math.Round(rate))
	}

	if s.store != nil {
		s.store.Set(cacheKey, summary, summaryTTL)
	}
	return summary, nil
}

// Invalidate drops the cached summary for a user, forcing the next request
// to recompute
func (s *Service) Invalidate(userID uuid.UUID) {
	if s.store != nil {
		s.store.Delete("analytics:" + userID.String())
	}
}
