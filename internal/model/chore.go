package model

import "time"

type Chore struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	AssignedTo  *string    `json:"assigned_to"`
	IsCompleted bool       `json:"is_completed"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// IsAssigned reports whether the chore has an assignee.
func (c Chore) IsAssigned() bool {
	return c.AssignedTo != nil
}
