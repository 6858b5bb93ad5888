package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create persists a new notification
	Create(ctx context.Context, notification *entities.Notification) error

	// FindByUser returns the user's notifications, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)

	// MarkRead flags a notification as read; the notification must belong to
	// the given user
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}
