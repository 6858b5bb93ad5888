package presenter

import (
	notifDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/notification"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// ToNotificationResponse converts a Notification entity to its DTO
func ToNotificationResponse(n *entities.Notification) *notifDTO.NotificationResponse {
	if n == nil {
		return nil
	}

	resp := &notifDTO.NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		TaskID:    n.TaskID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if n.MeetingID != nil {
		id := n.MeetingID.String()
		resp.MeetingID = &id
	}
	if n.TeamID != nil {
		id := n.TeamID.String()
		resp.TeamID = &id
	}
	if n.ActorID != nil {
		id := n.ActorID.String()
		resp.ActorID = &id
	}
	return resp
}

// ToNotificationResponses converts a slice of notifications
func ToNotificationResponses(notifications []*entities.Notification) []*notifDTO.NotificationResponse {
	out := make([]*notifDTO.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
