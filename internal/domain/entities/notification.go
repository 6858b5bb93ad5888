package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what event produced a notification
type NotificationType string

const (
	NotificationTypeTaskAssignment NotificationType = "task_assignment"
	NotificationTypeTeamInvitation NotificationType = "team_invitation"
)

// Notification is a persisted message addressed to a single user
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	TaskID    *string          `gorm:"type:varchar(64)" json:"task_id,omitempty"`
	MeetingID *uuid.UUID       `gorm:"type:uuid" json:"meeting_id,omitempty"`
	TeamID    *uuid.UUID       `gorm:"type:uuid" json:"team_id,omitempty"`
	ActorID   *uuid.UUID       `gorm:"type:uuid" json:"actor_id,omitempty"`
	Read      bool             `gorm:"default:false;not null" json:"read"`
	CreatedAt time.Time        `gorm:"default:now();index" json:"created_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// NewNotification creates an unread notification for the given recipient
func NewNotification(userID uuid.UUID, notifType NotificationType, title, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
