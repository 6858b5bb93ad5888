package entities

import (
	"time"

	"github.com/google/uuid"
)

// Task is the read model joining an action item with its parent meeting and
// team context. Tasks are derived on read and never persisted.
type Task struct {
	ActionItem

	MeetingID    uuid.UUID  `json:"meeting_id"`
	MeetingTitle string     `json:"meeting_title"`
	MeetingDate  time.Time  `json:"meeting_date"`
	TeamID       *uuid.UUID `json:"team_id,omitempty"`
	TeamName     string     `json:"team_name,omitempty"`
}
