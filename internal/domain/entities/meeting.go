package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a processed meeting: transcript, AI summary and the
// embedded ordered action item list
type Meeting struct {
	ID            uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string                              `gorm:"type:varchar(255);not null" json:"title"`
	Date          time.Time                           `gorm:"not null;index" json:"date"`
	Summary       string                              `gorm:"type:text" json:"summary"`
	Transcript    string                              `gorm:"type:text" json:"transcript"`
	TranscriptURL *string                             `gorm:"type:varchar(500)" json:"transcript_url,omitempty"`
	ActionItems   datatypes.JSONSlice[ActionItem]     `gorm:"type:jsonb;default:'[]'" json:"action_items"`
	OwnerID       uuid.UUID                           `gorm:"type:uuid;not null;index" json:"owner_id"`
	TeamID        *uuid.UUID                          `gorm:"type:uuid;index" json:"team_id,omitempty"`
	CreatedAt     time.Time                           `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time                           `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// FindActionItem returns the index of the action item with the given id,
// or -1 if it is not part of this meeting
func (m *Meeting) FindActionItem(itemID string) int {
	for i := range m.ActionItems {
		if m.ActionItems[i].ID == itemID {
			return i
		}
	}
	return -1
}
