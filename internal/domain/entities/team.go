package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamMemberRole represents a member's role within a team
type TeamMemberRole string

const (
	TeamMemberRoleAdmin  TeamMemberRole = "admin"
	TeamMemberRoleMember TeamMemberRole = "member"
)

// TeamMemberStatus represents a member's membership state
type TeamMemberStatus string

const (
	TeamMemberStatusActive  TeamMemberStatus = "active"
	TeamMemberStatusInvited TeamMemberStatus = "invited"
)

// TeamMember is one member entry embedded in a team. Members are unique by
// user id within a team.
type TeamMember struct {
	UserID      uuid.UUID        `json:"user_id"`
	Email       string           `json:"email"`
	DisplayName string           `json:"display_name"`
	Role        TeamMemberRole   `json:"role"`
	Status      TeamMemberStatus `json:"status"`
	JoinedAt    time.Time        `json:"joined_at"`
}

// Team represents a group of users sharing meetings and tasks
type Team struct {
	ID          uuid.UUID                       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string                          `gorm:"type:varchar(255);not null" json:"name"`
	Description *string                         `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   uuid.UUID                       `gorm:"type:uuid;not null;index" json:"created_by"`
	Members     datatypes.JSONSlice[TeamMember] `gorm:"type:jsonb;default:'[]'" json:"members"`
	CreatedAt   time.Time                       `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time                       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// NewTeam creates a team with the creator as its first admin member
func NewTeam(name string, description *string, creator *User) *Team {
	now := time.Now()
	return &Team{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedBy:   creator.ID,
		Members: datatypes.NewJSONSlice([]TeamMember{{
			UserID:      creator.ID,
			Email:       creator.Email,
			DisplayName: creator.Name,
			Role:        TeamMemberRoleAdmin,
			Status:      TeamMemberStatusActive,
			JoinedAt:    now,
		}}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasMember reports whether the user is already part of the team
func (t *Team) HasMember(userID uuid.UUID) bool {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			return true
		}
	}
	return false
}

// MemberList returns the members as a plain slice
func (t *Team) MemberList() []TeamMember {
	return []TeamMember(t.Members)
}
