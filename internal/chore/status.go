package chore

import (
	"time"

	"github.com/dukerupert/choresplit/internal/model"
	"github.com/dustin/go-humanize"
)

type Status string

const (
	StatusUnassigned Status = "unassigned"
	StatusAssigned   Status = "assigned"
	StatusCompleted  Status = "completed"
)

// ChoreWithStatus is a chore joined with what a view needs to render it.
type ChoreWithStatus struct {
	model.Chore
	Status       Status `json:"status"`
	AssigneeName string `json:"assignee_name,omitempty"`
	CompletedAgo string `json:"completed_ago,omitempty"`
}

// ComputeStatus derives the display status of a chore.
func ComputeStatus(c model.Chore) Status {
	switch {
	case c.IsCompleted:
		return StatusCompleted
	case c.IsAssigned():
		return StatusAssigned
	default:
		return StatusUnassigned
	}
}

// Annotate resolves assignee names and statuses for a list of chores.
func Annotate(chores []model.Chore, roommates []model.Roommate, now time.Time) []ChoreWithStatus {
	names := make(map[string]string, len(roommates))
	for _, r := range roommates {
		names[r.ID] = r.Name
	}

	out := make([]ChoreWithStatus, 0, len(chores))
	for _, c := range chores {
		cs := ChoreWithStatus{Chore: c, Status: ComputeStatus(c)}
		if c.AssignedTo != nil {
			cs.AssigneeName = names[*c.AssignedTo]
		}
		if c.CompletedAt != nil {
			cs.CompletedAgo = Ago(*c.CompletedAt, now)
		}
		out = append(out, cs)
	}
	return out
}

// Ago renders the time since t relative to now, e.g. "2 hours ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
