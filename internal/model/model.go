package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists the valid priority values in ascending urgency order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Tags      []string   `json:"tags,omitempty"`

	// EstimatedTime and ActualTime are minute counts.
	EstimatedTime *int     `json:"estimatedTime,omitempty"`
	ActualTime    *int     `json:"actualTime,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Links         []string `json:"links,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Settings struct {
	Theme string `json:"theme,omitempty"`

	// DefaultPriority applies to tasks created without an explicit priority.
	DefaultPriority Priority `json:"defaultPriority,omitempty"`
}
