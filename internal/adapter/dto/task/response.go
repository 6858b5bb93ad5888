package task

import (
	"time"

	"github.com/meetsync-team/meetsync/internal/adapter/dto/meeting"
)

// TaskResponse represents an action item with its meeting and team context
type TaskResponse struct {
	meeting.ActionItemResponse
	MeetingID    string    `json:"meeting_id"`
	MeetingTitle string    `json:"meeting_title"`
	MeetingDate  time.Time `json:"meeting_date"`
	TeamID       *string   `json:"team_id,omitempty"`
	TeamName     string    `json:"team_name,omitempty"`
}
