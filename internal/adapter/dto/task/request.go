package task

// UpdateStatusRequest represents the request to change a task's status
type UpdateStatusRequest struct {
	MeetingID string `json:"meeting_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,task_status"`
}

// ReassignRequest represents the request to hand a task to another user
type ReassignRequest struct {
	MeetingID  string `json:"meeting_id" validate:"required,uuid"`
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
}

// AutoAssignRequest represents the request to auto-assign a meeting's
// unassigned tasks
type AutoAssignRequest struct {
	MeetingID string `json:"meeting_id" validate:"required,uuid"`
}
