package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/metrics"
	"github.com/dukerupert/choresplit/internal/model"
	"github.com/dukerupert/choresplit/internal/reward"
)

// RewardHandler serves read-only views, so it never broadcasts.
type RewardHandler struct {
	notifier
}

func NewRewardHandler(l *ledger.Ledger, rec metrics.Recorder, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{notifier: newNotifier(l, nil, rec, logger)}
}

type rewardsResponse struct {
	TopPerformer *model.Roommate `json:"top_performer"`
	Rewards      []model.Reward  `json:"rewards"`
}

// List returns the reward catalog together with the current top performer.
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := rewardsResponse{Rewards: reward.Catalog()}
	if top, ok := h.ledger.TopPerformer(); ok {
		resp.TopPerformer = &top
	}
	writeJSON(w, http.StatusOK, resp)
}

type progressResponse struct {
	Roommate model.Roommate `json:"roommate"`
	Unlocked []model.Reward `json:"unlocked"`
	Next     *model.Reward  `json:"next"`
}

// Progress shows which rewards a roommate has reached and what comes next.
func (h *RewardHandler) Progress(w http.ResponseWriter, r *http.Request) {
	roommate, err := h.ledger.Roommate(r.PathValue("id"))
	if err != nil {
		h.ledgerError(w, "roommate_rewards", err)
		return
	}

	resp := progressResponse{
		Roommate: roommate,
		Unlocked: reward.Unlocked(roommate.Points),
	}
	if next, ok := reward.Next(roommate.Points); ok {
		resp.Next = &next
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RewardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Leaderboard())
}
