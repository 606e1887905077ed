package ledger

import "time"

type seedChore struct {
	title        string
	description  string
	points       int
	assignee     int // index into seed roommates, -1 for none
	completedAgo time.Duration
}

var (
	seedRoommates = []struct {
		name   string
		points int
	}{
		{"Alex", 15},
		{"Sam", 12},
		{"Jordan", 8},
	}

	seedChores = []seedChore{
		{title: "Take out trash", description: "Trash day is Tuesday", points: 2, assignee: 0},
		{title: "Clean kitchen", description: "Dishes, counters, stove", points: 3, assignee: 1},
		{title: "Vacuum living room", points: 2, assignee: 2, completedAgo: 2 * time.Hour},
		{title: "Buy groceries", points: 2, assignee: -1},
		{title: "Clean bathroom", points: 3, assignee: -1},
	}
)

// Seed loads the sample household: three roommates with existing balances and
// five chores, one of them already completed. The balances are loaded as is;
// no completion awards are replayed.
func Seed(l *Ledger) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]string, len(seedRoommates))
	for i, sr := range seedRoommates {
		ids[i] = l.insertRoommate(sr.name, sr.points).ID
	}

	for _, sc := range seedChores {
		c := l.insertChore(sc.title, sc.description, sc.points)
		if sc.assignee >= 0 {
			id := ids[sc.assignee]
			c.AssignedTo = &id
		}
		if sc.completedAgo > 0 {
			completedAt := l.now().Add(-sc.completedAgo)
			c.IsCompleted = true
			c.CompletedAt = &completedAt
		}
	}
}
