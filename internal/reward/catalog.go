// Package reward holds the fixed catalog of rewards roommates work toward.
// Balances are never spent; a reward is unlocked once a balance reaches
// its point cost.
package reward

import "github.com/dukerupert/choresplit/internal/model"

var catalog = []model.Reward{
	{Title: "Choose next week's dinner", PointCost: 10},
	{Title: "Get out of one chore", PointCost: 15},
	{Title: "Movie night pick", PointCost: 20},
	{Title: "Breakfast in bed", PointCost: 25},
	{Title: "Grocery shopping paid for", PointCost: 30},
}

// Catalog returns every reward, cheapest first.
func Catalog() []model.Reward {
	out := make([]model.Reward, len(catalog))
	copy(out, catalog)
	return out
}

// Unlocked returns the rewards a balance of points has reached.
func Unlocked(points int) []model.Reward {
	out := []model.Reward{}
	for _, r := range catalog {
		if r.PointCost <= points {
			out = append(out, r)
		}
	}
	return out
}

// Next returns the cheapest reward not yet reached. The bool is false once
// every reward is unlocked.
func Next(points int) (model.Reward, bool) {
	for _, r := range catalog {
		if r.PointCost > points {
			return r, true
		}
	}
	return model.Reward{}, false
}
