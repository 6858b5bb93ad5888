package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	"github.com/meetsync-team/meetsync/internal/infrastructure/metrics"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
)

// Analyzer produces the raw model output for a meeting transcript
type Analyzer interface {
	AnalyzeTranscript(ctx context.Context, transcript string) (string, error)
}

// Archiver stores raw transcripts and returns a retrieval URL
type Archiver interface {
	Store(ctx context.Context, meetingID uuid.UUID, transcript string) (string, error)
}

// CreateInput carries everything needed to process a new transcript
type CreateInput struct {
	OwnerID    uuid.UUID
	Title      string
	Date       time.Time
	TeamID     *uuid.UUID
	Transcript string
}

// Service processes transcripts into meetings with summaries and action
// items, and serves meeting reads
type Service struct {
	meetingRepo repositories.MeetingRepository
	analyzer    Analyzer
	parser      *Parser
	archiver    Archiver
	metrics     *metrics.Registry
	logger      *zap.Logger
}

// NewService creates the meeting service. archiver may be nil to skip
// transcript archival.
func NewService(
	meetingRepo repositories.MeetingRepository,
	analyzer Analyzer,
	archiver Archiver,
	reg *metrics.Registry,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		analyzer:    analyzer,
		parser:      NewParser(),
		archiver:    archiver,
		metrics:     reg,
		logger:      logger,
	}
}

// CreateFromTranscript runs AI analysis over the transcript and persists the
// resulting meeting. Archival of the raw transcript is best-effort; a failed
// upload never fails the meeting.
func (s *Service) CreateFromTranscript(ctx context.Context, input CreateInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return nil, usecaseErrors.ErrEmptyTranscript
	}

	raw, err := s.analyzer.AnalyzeTranscript(ctx, input.Transcript)
	if err != nil {
		s.countAI("error")
		return nil, fmt.Errorf("transcript analysis failed: %w", err)
	}

	summary, items, err := s.parser.Parse(raw)
	if err != nil {
		s.countAI("parse_error")
		return nil, fmt.Errorf("transcript analysis failed: %w", err)
	}
	s.countAI("success")

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Meeting on " + date.Format("2006-01-02")
	}

	meeting := &entities.Meeting{
		ID:          uuid.New(),
		Title:       title,
		Date:        date,
		Summary:     summary,
		Transcript:  input.Transcript,
		ActionItems: datatypes.NewJSONSlice(items),
		OwnerID:     input.OwnerID,
		TeamID:      input.TeamID,
	}

	if s.archiver != nil {
		url, err := s.archiver.Store(ctx, meeting.ID, input.Transcript)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("transcript archival failed",
					zap.String("meeting_id", meeting.ID.String()),
					zap.Error(err),
				)
			}
		} else {
			meeting.TranscriptURL = &url
		}
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to persist meeting: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("meeting created from transcript",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("action_items", len(items)),
		)
	}
	return meeting, nil
}

// Get returns a single meeting
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	return meeting, nil
}

// ListForUser returns every meeting the user can see, own and team
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Delete removes a meeting. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to load meeting: %w", err)
	}
	if meeting.OwnerID != userID {
		return usecaseErrors.ErrForbidden
	}
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

func (s *Service) countAI(outcome string) {
	if s.metrics != nil {
		s.metrics.AIRequests.WithLabelValues(outcome).Inc()
	}
}
