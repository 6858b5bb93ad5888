package sync

import (
	"time"

	"github.com/meetsync-team/meetsync/internal/adapter/dto/meeting"
	"github.com/meetsync-team/meetsync/internal/adapter/dto/notification"
	"github.com/meetsync-team/meetsync/internal/adapter/dto/task"
	"github.com/meetsync-team/meetsync/internal/adapter/dto/team"
)

// SnapshotResponse represents a full point-in-time view of the user's data
type SnapshotResponse struct {
	Meetings      []*meeting.MeetingResponse           `json:"meetings"`
	Tasks         []task.TaskResponse                  `json:"tasks"`
	Teams         []*team.TeamResponse                 `json:"teams"`
	Notifications []*notification.NotificationResponse `json:"notifications"`
	LastUpdated   time.Time                            `json:"last_updated"`
	Online        bool                                 `json:"online"`
}
