package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UnsubscribeFunc cancels a live subscription. Implementations must make
// repeated calls safe.
type UnsubscribeFunc func()

// EventBus carries change notifications from the storage layer to live
// subscribers. Payloads identify what changed; subscribers re-read through
// the repositories.
type EventBus interface {
	// Publish emits an event on a topic
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe registers a handler for a topic and returns a cancellation
	// handle. The handler may be invoked from a background goroutine.
	Subscribe(ctx context.Context, topic string, handler func(payload []byte)) (UnsubscribeFunc, error)
}

// Topic names for change events

// MeetingsTopic is the per-user meeting change feed
func MeetingsTopic(userID uuid.UUID) string {
	return fmt.Sprintf("meetings:user:%s", userID)
}

// TeamMeetingsTopic is the per-team meeting change feed
func TeamMeetingsTopic(teamID uuid.UUID) string {
	return fmt.Sprintf("meetings:team:%s", teamID)
}

// NotificationsTopic is the per-user notification change feed
func NotificationsTopic(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:user:%s", userID)
}

// TeamsTopic is the per-user team membership change feed
func TeamsTopic(userID uuid.UUID) string {
	return fmt.Sprintf("teams:user:%s", userID)
}
