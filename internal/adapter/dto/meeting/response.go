package meeting

import "time"

// ActionItemResponse represents one action item in API responses
type ActionItemResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Owner        string     `json:"owner,omitempty"`
	AssigneeID   *string    `json:"assignee_id,omitempty"`
	AssigneeName *string    `json:"assignee_name,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// MeetingResponse represents a meeting in API responses. The raw transcript
// is not included; clients fetch it through the transcript URL.
type MeetingResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Date          time.Time            `json:"date"`
	Summary       string               `json:"summary"`
	TranscriptURL *string              `json:"transcript_url,omitempty"`
	ActionItems   []ActionItemResponse `json:"action_items"`
	OwnerID       string               `json:"owner_id"`
	TeamID        *string              `json:"team_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
