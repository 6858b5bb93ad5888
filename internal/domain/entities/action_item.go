package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemPriority represents the urgency of an action item
type ActionItemPriority string

const (
	ActionItemPriorityHigh   ActionItemPriority = "high"
	ActionItemPriorityMedium ActionItemPriority = "medium"
	ActionItemPriorityLow    ActionItemPriority = "low"
)

// IsValid checks if the priority is valid
func (p ActionItemPriority) IsValid() bool {
	switch p {
	case ActionItemPriorityHigh, ActionItemPriorityMedium, ActionItemPriorityLow:
		return true
	}
	return false
}

// ActionItemStatus represents the lifecycle state of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

// IsValid checks if the status is valid
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted:
		return true
	}
	return false
}

// ActionItem is a single task extracted from a meeting transcript. Items are
// embedded in their parent meeting and have no identity outside it; any
// mutation rewrites the meeting's full item list.
type ActionItem struct {
	ID           string             `json:"id"`
	Description  string             `json:"description"`
	Priority     ActionItemPriority `json:"priority"`
	Status       ActionItemStatus   `json:"status"`
	Owner        string             `json:"owner,omitempty"`
	AssigneeID   *uuid.UUID         `json:"assignee_id,omitempty"`
	AssigneeName *string            `json:"assignee_name,omitempty"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
}

// NewActionItem creates a pending action item with a fresh identifier
func NewActionItem(description string, priority ActionItemPriority) ActionItem {
	if !priority.IsValid() {
		priority = ActionItemPriorityMedium
	}
	return ActionItem{
		ID:          uuid.New().String(),
		Description: description,
		Priority:    priority,
		Status:      ActionItemStatusPending,
	}
}

// IsAssigned reports whether the item has a resolved assignee
func (a *ActionItem) IsAssigned() bool {
	return a.AssigneeID != nil
}

// Assign sets the assignee on the item
func (a *ActionItem) Assign(userID uuid.UUID, name string) {
	a.AssigneeID = &userID
	a.AssigneeName = &name
}
