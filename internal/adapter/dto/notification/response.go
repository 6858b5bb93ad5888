package notification

import "time"

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TaskID    *string   `json:"task_id,omitempty"`
	MeetingID *string   `json:"meeting_id,omitempty"`
	TeamID    *string   `json:"team_id,omitempty"`
	ActorID   *string   `json:"actor_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
