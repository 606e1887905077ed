package ledger

import (
	"cmp"
	"iter"
	"slices"

	"github.com/dukerupert/choresplit/internal/model"
)

// Ranking yields roommates with their 1-based rank, highest points first.
// Ties go to the roommate created earlier. The order is computed from a
// snapshot each time the sequence is ranged over, so it is never stale
// and can be restarted.
func (l *Ledger) Ranking() iter.Seq2[int, model.Roommate] {
	return func(yield func(int, model.Roommate) bool) {
		ranked := l.Roommates()
		slices.SortFunc(ranked, compareRank)
		for i, r := range ranked {
			if !yield(i+1, r) {
				return
			}
		}
	}
}

// TopPerformer returns the first roommate in Ranking order. The bool is
// false when there are no roommates.
func (l *Ledger) TopPerformer() (model.Roommate, bool) {
	for _, r := range l.Ranking() {
		return r, true
	}
	return model.Roommate{}, false
}

// Leaderboard materializes Ranking.
func (l *Ledger) Leaderboard() []model.LeaderboardEntry {
	entries := []model.LeaderboardEntry{}
	for rank, r := range l.Ranking() {
		entries = append(entries, model.LeaderboardEntry{
			Rank:       rank,
			RoommateID: r.ID,
			Name:       r.Name,
			Points:     r.Points,
		})
	}
	return entries
}

func compareRank(a, b model.Roommate) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	return cmp.Compare(a.SortOrder, b.SortOrder)
}
