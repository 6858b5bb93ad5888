package sync

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
	"github.com/meetsync-team/meetsync/internal/infrastructure/metrics"
	usecaseErrors "github.com/meetsync-team/meetsync/internal/usecase/errors"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
)

// MeetingUpdateHandler receives the user's refreshed meeting list after a
// change event
type MeetingUpdateHandler func(meetings []*entities.Meeting)

// Engine assembles full user snapshots and fans live change events out to
// registered handlers. One engine serves all users of a process.
type Engine struct {
	meetingRepo repositories.MeetingRepository
	teamRepo    repositories.TeamRepository
	tasks       *task.Service
	notifier    notification.Service
	bus         repositories.EventBus
	metrics     *metrics.Registry
	logger      *zap.Logger

	online atomic.Bool
	closed atomic.Bool

	mu     sync.Mutex
	nextID int
	subs   map[int]repositories.UnsubscribeFunc
}

// NewEngine creates the sync engine. The connection state starts online.
func NewEngine(
	meetingRepo repositories.MeetingRepository,
	teamRepo repositories.TeamRepository,
	tasks *task.Service,
	notifier notification.Service,
	bus repositories.EventBus,
	reg *metrics.Registry,
	logger *zap.Logger,
) *Engine {
	e := &Engine{
		meetingRepo: meetingRepo,
		teamRepo:    teamRepo,
		tasks:       tasks,
		notifier:    notifier,
		bus:         bus,
		metrics:     reg,
		logger:      logger,
		subs:        make(map[int]repositories.UnsubscribeFunc),
	}
	e.online.Store(true)
	return e
}

// SyncAllUserData assembles a point-in-time snapshot of everything the user
// can see. The four reads run concurrently and the first failure aborts the
// whole snapshot; a partial snapshot is never returned.
func (e *Engine) SyncAllUserData(ctx context.Context, userID uuid.UUID) (*entities.SyncSnapshot, error) {
	if e.closed.Load() {
		return nil, usecaseErrors.ErrEngineClosed
	}

	snapshot := &entities.SyncSnapshot{
		Online: e.online.Load(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		meetings, err := e.meetingRepo.FindVisibleToUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("meetings read failed: %w", err)
		}
		snapshot.Meetings = meetings
		return nil
	})
	g.Go(func() error {
		tasks, err := e.tasks.GetUserTasks(gctx, userID)
		if err != nil {
			return fmt.Errorf("tasks read failed: %w", err)
		}
		snapshot.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		teams, err := e.teamRepo.FindByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("teams read failed: %w", err)
		}
		snapshot.Teams = teams
		return nil
	})
	g.Go(func() error {
		notifications, err := e.notifier.ListForUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("notifications read failed: %w", err)
		}
		snapshot.Notifications = notifications
		return nil
	})

	if err := g.Wait(); err != nil {
		if e.metrics != nil {
			e.metrics.SyncSnapshotFailures.Inc()
		}
		return nil, err
	}

	snapshot.LastUpdated = time.Now()
	if e.metrics != nil {
		e.metrics.SyncSnapshots.Inc()
	}
	return snapshot, nil
}

// SubscribeMeetingUpdates registers a handler that is called with the user's
// refreshed meeting list whenever one of their own or team meetings changes.
// The returned handle cancels the subscription and is safe to call more than
// once.
func (e *Engine) SubscribeMeetingUpdates(ctx context.Context, userID uuid.UUID, handler MeetingUpdateHandler) (repositories.UnsubscribeFunc, error) {
	if e.closed.Load() {
		return nil, usecaseErrors.ErrEngineClosed
	}

	topics := []string{repositories.MeetingsTopic(userID)}
	teams, err := e.teamRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team subscriptions: %w", err)
	}
	for _, team := range teams {
		topics = append(topics, repositories.TeamMeetingsTopic(team.ID))
	}

	onEvent := func(_ []byte) {
		// Events only say that something changed; the fresh state always
		// comes from a re-read.
		meetings, err := e.meetingRepo.FindVisibleToUser(context.Background(), userID)
		if err != nil {
			if e.logger != nil {
				e.logger.Warn("re-read after change event failed",
					zap.String("user_id", userID.String()),
					zap.Error(err),
				)
			}
			return
		}
		handler(meetings)
	}

	cancels := make([]repositories.UnsubscribeFunc, 0, len(topics))
	for _, topic := range topics {
		cancel, err := e.bus.Subscribe(ctx, topic, onEvent)
		if err != nil {
			for _, c := range cancels {
				c()
			}
			return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
		cancels = append(cancels, cancel)
	}

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			for _, c := range cancels {
				c()
			}
			e.mu.Lock()
			delete(e.subs, id)
			e.mu.Unlock()
			if e.metrics != nil {
				e.metrics.ActiveSubscriptions.Dec()
			}
		})
	}
	e.subs[id] = unsubscribe
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.ActiveSubscriptions.Inc()
	}
	return unsubscribe, nil
}

// SetConnectionState records whether the process considers itself online.
// Snapshots report the state they were assembled under.
func (e *Engine) SetConnectionState(online bool) {
	e.online.Store(online)
	if e.logger != nil {
		e.logger.Info("connection state changed", zap.Bool("online", online))
	}
}

// ConnectionState reports the current connection state
func (e *Engine) ConnectionState() bool {
	return e.online.Load()
}

// Cleanup cancels every live subscription and refuses further work. It is
// idempotent.
func (e *Engine) Cleanup() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	subs := make([]repositories.UnsubscribeFunc, 0, len(e.subs))
	for _, cancel := range e.subs {
		subs = append(subs, cancel)
	}
	e.mu.Unlock()

	for _, cancel := range subs {
		cancel()
	}

	if e.logger != nil {
		e.logger.Info("sync engine cleaned up", zap.Int("cancelled_subscriptions", len(subs)))
	}
}
