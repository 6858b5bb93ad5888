package presenter

import (
	meetingDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/meeting"
	taskDTO "github.com/meetsync-team/meetsync/internal/adapter/dto/task"
	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(item entities.ActionItem) meetingDTO.ActionItemResponse {
	resp := meetingDTO.ActionItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Priority:    string(item.Priority),
		Status:      string(item.Status),
		Owner:       item.Owner,
		Deadline:    item.Deadline,
	}
	if item.AssigneeID != nil {
		id := item.AssigneeID.String()
		resp.AssigneeID = &id
	}
	resp.AssigneeName = item.AssigneeName
	return resp
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	items := make([]meetingDTO.ActionItemResponse, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, ToActionItemResponse(m.ActionItems[i]))
	}

	resp := &meetingDTO.MeetingResponse{
		ID:            m.ID.String(),
		Title:         m.Title,
		Date:          m.Date,
		Summary:       m.Summary,
		TranscriptURL: m.TranscriptURL,
		ActionItems:   items,
		OwnerID:       m.OwnerID.String(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.TeamID != nil {
		id := m.TeamID.String()
		resp.TeamID = &id
	}
	return resp
}

// ToMeetingResponses converts a slice of meetings
func ToMeetingResponses(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t entities.Task) taskDTO.TaskResponse {
	resp := taskDTO.TaskResponse{
		ActionItemResponse: ToActionItemResponse(t.ActionItem),
		MeetingID:          t.MeetingID.String(),
		MeetingTitle:       t.MeetingTitle,
		MeetingDate:        t.MeetingDate,
		TeamName:           t.TeamName,
	}
	if t.TeamID != nil {
		id := t.TeamID.String()
		resp.TeamID = &id
	}
	return resp
}

// ToTaskResponses converts a slice of tasks
func ToTaskResponses(tasks []entities.Task) []taskDTO.TaskResponse {
	out := make([]taskDTO.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskResponse(t))
	}
	return out
}
