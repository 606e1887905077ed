package ledger

import "testing"

func TestRankingOrder(t *testing.T) {
	l := setupSeeded(t)

	var names []string
	var ranks []int
	for rank, r := range l.Ranking() {
		names = append(names, r.Name)
		ranks = append(ranks, rank)
	}

	want := []string{"Alex", "Sam", "Jordan"}
	if len(names) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ranking[%d] = %q, want %q", i, names[i], want[i])
		}
		if ranks[i] != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, ranks[i], i+1)
		}
	}
}

func TestRankingDescendingPoints(t *testing.T) {
	l := setupSeeded(t)
	for _, name := range []string{"Riley", "Casey"} {
		if _, err := l.AddRoommate(name); err != nil {
			t.Fatalf("add roommate: %v", err)
		}
	}
	kitchen := findChore(t, l, "Clean kitchen")
	if _, err := l.CompleteChore(kitchen.ID); err != nil {
		t.Fatalf("complete chore: %v", err)
	}

	prev := -1
	first := true
	for _, r := range l.Ranking() {
		if !first && r.Points > prev {
			t.Errorf("%s has %d points after an entry with %d", r.Name, r.Points, prev)
		}
		prev = r.Points
		first = false
	}
}

func TestRankingTieBreakByCreationOrder(t *testing.T) {
	l := setupLedger(t)
	for _, name := range []string{"Zed", "Amy", "Bob"} {
		if _, err := l.AddRoommate(name); err != nil {
			t.Fatalf("add roommate: %v", err)
		}
	}

	for attempt := 0; attempt < 3; attempt++ {
		var names []string
		for _, r := range l.Ranking() {
			names = append(names, r.Name)
		}
		want := []string{"Zed", "Amy", "Bob"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("attempt %d: ranking[%d] = %q, want %q", attempt, i, names[i], want[i])
			}
		}
	}
}

func TestRankingReflectsLaterChanges(t *testing.T) {
	l := setupSeeded(t)
	seq := l.Ranking()

	jordan := findRoommate(t, l, "Jordan")
	c, _ := l.AddChore("Deep clean oven", "", 10)
	if _, err := l.AssignChore(c.ID, jordan.ID); err != nil {
		t.Fatalf("assign chore: %v", err)
	}
	if _, err := l.CompleteChore(c.ID); err != nil {
		t.Fatalf("complete chore: %v", err)
	}

	for rank, r := range seq {
		if rank != 1 {
			t.Fatal("expected to stop after first entry")
		}
		if r.Name != "Jordan" {
			t.Errorf("top = %q, want %q", r.Name, "Jordan")
		}
		break
	}
}

func TestTopPerformer(t *testing.T) {
	l := setupLedger(t)

	if _, ok := l.TopPerformer(); ok {
		t.Error("expected no top performer for empty ledger")
	}

	Seed(l)
	top, ok := l.TopPerformer()
	if !ok {
		t.Fatal("expected a top performer")
	}
	if top.Name != "Alex" || top.Points != 15 {
		t.Errorf("top = %s (%d), want Alex (15)", top.Name, top.Points)
	}
}

func TestLeaderboard(t *testing.T) {
	l := setupLedger(t)
	if got := l.Leaderboard(); got == nil || len(got) != 0 {
		t.Errorf("empty leaderboard = %v, want empty slice", got)
	}

	Seed(l)
	entries := l.Leaderboard()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[2].Rank != 3 || entries[2].Name != "Jordan" || entries[2].Points != 8 {
		t.Errorf("entries[2] = %+v, want rank 3 Jordan 8", entries[2])
	}
}
