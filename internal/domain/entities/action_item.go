package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionItemPriority represents the urgency of an action item
type ActionItemPriority string

const (
	ActionItemPriorityLow    ActionItemPriority = "low"
	ActionItemPriorityMedium ActionItemPriority = "medium"
	ActionItemPriorityHigh   ActionItemPriority = "high"
	ActionItemPriorityUrgent ActionItemPriority = "urgent"
)

// ActionItemStatus represents the lifecycle state of an action item
type ActionItemStatus string

const (
	ActionItemStatusOpen       ActionItemStatus = "open"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
	ActionItemStatusCancelled  ActionItemStatus = "cancelled"
	ActionItemStatusOnHold     ActionItemStatus = "on_hold"
)

// ActionItem represents a task extracted from a meeting transcript
type ActionItem struct {
	ID           uuid.UUID          `json:"id"`
	TranscriptID uuid.UUID          `json:"transcript_id,omitempty"`
	Description  string             `json:"description"`
	AssignedTo   string             `json:"assigned_to,omitempty"`
	Priority     ActionItemPriority `json:"priority"`
	Status       ActionItemStatus   `json:"status"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewActionItem creates a new open action item with medium priority
func NewActionItem(description string) *ActionItem {
	now := time.Now()
	return &ActionItem{
		ID:          uuid.New(),
		Description: description,
		Priority:    ActionItemPriorityMedium,
		Status:      ActionItemStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ParseActionItemPriority maps free text to a priority, defaulting to medium
// for anything unparseable.
func ParseActionItemPriority(s string) ActionItemPriority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ActionItemPriorityLow
	case "medium":
		return ActionItemPriorityMedium
	case "high":
		return ActionItemPriorityHigh
	case "urgent":
		return ActionItemPriorityUrgent
	default:
		return ActionItemPriorityMedium
	}
}
