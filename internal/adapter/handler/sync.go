package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/adapter/presenter"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/usecase/sync"
)

// Sync handles snapshot reads and the live update stream
type Sync struct {
	engine *sync.Engine
	logger *zap.Logger
}

// NewSync creates the sync handler
func NewSync(engine *sync.Engine, logger *zap.Logger) *Sync {
	return &Sync{engine: engine, logger: logger}
}

// Snapshot handles GET /v1/sync. It returns the full aggregated view of the
// user's meetings, tasks, teams and notifications.
func (h *Sync) Snapshot(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	snapshot, err := h.engine.SyncAllUserData(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSnapshotResponse(snapshot))
}

// Stream handles GET /v1/sync/stream. It holds the connection open as a
// server-sent event stream and pushes the user's refreshed meeting list
// whenever one of their meetings changes.
func (h *Sync) Stream(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	updates := make(chan []*entities.Meeting, 8)
	unsubscribe, err := h.engine.SubscribeMeetingUpdates(c.Request().Context(), userID, func(meetings []*entities.Meeting) {
		select {
		case updates <- meetings:
		default:
			// Slow consumer; drop the event. The next change delivers a
			// fresh full list anyway.
		}
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer unsubscribe()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case meetings := <-updates:
			payload, err := json.Marshal(presenter.ToMeetingResponses(meetings))
			if err != nil {
				if h.logger != nil {
					h.logger.Error("failed to encode stream event", zap.Error(err))
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "event: meetings\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
