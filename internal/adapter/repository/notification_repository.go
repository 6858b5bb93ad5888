package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/domain/repositories"
)

// NotificationRepository implements the notification repository interface
// using GORM
type NotificationRepository struct {
	db     *gorm.DB
	bus    repositories.EventBus
	logger *zap.Logger
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB, bus repositories.EventBus, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		bus:    bus,
		logger: logger,
	}
}

// Create persists a new notification and notifies the recipient's feed
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if r.bus != nil {
		topic := repositories.NotificationsTopic(notification.UserID)
		if err := r.bus.Publish(ctx, topic, []byte(notification.ID.String())); err != nil && r.logger != nil {
			r.logger.Warn("failed to publish notification event",
				zap.String("topic", topic),
				zap.Error(err),
			)
		}
	}

	return nil
}

// FindByUser returns the user's notifications, newest first
func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to find notifications by user: %w", err)
	}
	return notifications, nil
}

// MarkRead flags a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}
