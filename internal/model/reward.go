package model

type Reward struct {
	Title     string `json:"title"`
	PointCost int    `json:"point_cost"`
}

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	RoommateID string `json:"roommate_id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
}
