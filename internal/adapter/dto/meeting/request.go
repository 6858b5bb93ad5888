package meeting

import "time"

// CreateMeetingRequest represents the request to process a transcript into
// a meeting
type CreateMeetingRequest struct {
	Title      string     `json:"title" validate:"omitempty,max=255"`
	Date       *time.Time `json:"date,omitempty"`
	TeamID     *string    `json:"team_id,omitempty" validate:"omitempty,uuid"`
	Transcript string     `json:"transcript" validate:"required"`
}
