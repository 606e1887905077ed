package chore

import (
	"testing"
	"time"

	"github.com/dukerupert/choresplit/internal/model"
)

func TestComputeStatus(t *testing.T) {
	alex := "alex"
	done := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		chore model.Chore
		want  Status
	}{
		{"unassigned", model.Chore{Title: "Buy groceries"}, StatusUnassigned},
		{"assigned", model.Chore{Title: "Take out trash", AssignedTo: &alex}, StatusAssigned},
		{"completed", model.Chore{Title: "Vacuum", AssignedTo: &alex, IsCompleted: true, CompletedAt: &done}, StatusCompleted},
		{"completed then unassigned", model.Chore{Title: "Vacuum", IsCompleted: true, CompletedAt: &done}, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStatus(tt.chore); got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	now := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	done := now.Add(-2 * time.Hour)
	jordan := "r-jordan"
	ghost := "r-ghost"

	roommates := []model.Roommate{{ID: jordan, Name: "Jordan"}}
	chores := []model.Chore{
		{ID: "c1", Title: "Vacuum living room", AssignedTo: &jordan, IsCompleted: true, CompletedAt: &done},
		{ID: "c2", Title: "Buy groceries"},
		{ID: "c3", Title: "Water plants", AssignedTo: &ghost},
	}

	got := Annotate(chores, roommates, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 chores, got %d", len(got))
	}

	if got[0].Status != StatusCompleted {
		t.Errorf("c1 status = %q, want %q", got[0].Status, StatusCompleted)
	}
	if got[0].AssigneeName != "Jordan" {
		t.Errorf("c1 assignee = %q, want %q", got[0].AssigneeName, "Jordan")
	}
	if got[0].CompletedAgo != "2 hours ago" {
		t.Errorf("c1 completed_ago = %q, want %q", got[0].CompletedAgo, "2 hours ago")
	}

	if got[1].Status != StatusUnassigned || got[1].AssigneeName != "" {
		t.Errorf("c2 = %+v, want unassigned with no name", got[1])
	}
	if got[2].AssigneeName != "" {
		t.Errorf("c3 assignee = %q, want empty for unknown roommate", got[2].AssigneeName)
	}
}
