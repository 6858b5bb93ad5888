package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents a user in the system
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	IsActive bool      `json:"is_active" gorm:"default:true;not null"`

	// Preferences (stored as JSONB in PostgreSQL)
	NotificationPreferences datatypes.JSON `json:"notification_preferences" gorm:"type:jsonb;default:'{}'"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NotificationPrefs holds the per-user notification gates. A nil field means
// the preference was never set and the notification is delivered.
type NotificationPrefs struct {
	TaskAssignments *bool `json:"task_assignments,omitempty"`
	TeamInvitations *bool `json:"team_invitations,omitempty"`
}

// TaskAssignmentsEnabled reports whether task assignment notifications
// should be delivered. Unset defaults to enabled.
func (p NotificationPrefs) TaskAssignmentsEnabled() bool {
	return p.TaskAssignments == nil || *p.TaskAssignments
}

// NewUser creates a new user with default values
func NewUser(email, name string) *User {
	now := time.Now()

	// Default: everything enabled
	prefs, _ := json.Marshal(NotificationPrefs{})

	return &User{
		ID:                      uuid.New(),
		Email:                   email,
		Name:                    name,
		IsActive:                true,
		NotificationPreferences: prefs,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// Prefs decodes the stored notification preferences. Malformed or empty
// preference data yields the zero value (all notifications enabled).
func (u *User) Prefs() NotificationPrefs {
	var p NotificationPrefs
	if len(u.NotificationPreferences) == 0 {
		return p
	}
	if err := json.Unmarshal(u.NotificationPreferences, &p); err != nil {
		return NotificationPrefs{}
	}
	return p
}

// SetPrefs replaces the stored notification preferences
func (u *User) SetPrefs(p NotificationPrefs) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	u.NotificationPreferences = b
	u.UpdatedAt = time.Now()
	return nil
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	return nil
}
