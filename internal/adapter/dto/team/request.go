package team

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// InviteMemberRequest represents the request to invite a user by email
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}
