package presenter

import (
	syncDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/sync"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// ToSnapshotResponse converts a SyncSnapshot entity to its DTO
func ToSnapshotResponse(s *entities.SyncSnapshot) *syncDTO.SnapshotResponse {
	if s == nil {
		return nil
	}
	return &syncDTO.SnapshotResponse{
		Meetings:      ToMeetingResponses(s.Meetings),
		Tasks:         ToTaskResponses(s.Tasks),
		Teams:         ToTeamResponses(s.Teams),
		Notifications: ToNotificationResponses(s.Notifications),
		LastUpdated:   s.LastUpdated,
		Online:        s.Online,
	}
}
