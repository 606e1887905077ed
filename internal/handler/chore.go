package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/choresplit/internal/chore"
	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/metrics"
	"github.com/dukerupert/choresplit/internal/websocket"
)

type ChoreHandler struct {
	notifier
}

func NewChoreHandler(l *ledger.Ledger, hub websocket.Broadcaster, rec metrics.Recorder, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{notifier: newNotifier(l, hub, rec, logger)}
}

// pointsInput accepts points as a JSON number or as the raw text a user typed.
// Both go through ledger.ParsePoints, so missing or unusable input falls back
// to ledger.DefaultPoints and numbers too large for an int are rejected by
// AddChore.
type pointsInput struct {
	value int
	set   bool
}

func (p *pointsInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	p.set = true

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.value = ledger.ParsePoints(s)
		return nil
	}
	p.value = ledger.ParsePoints(string(data))
	return nil
}

func (p pointsInput) Int() int {
	if !p.set {
		return ledger.DefaultPoints
	}
	return p.value
}

type choreRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Points      pointsInput `json:"points"`
}

// List returns every chore with its status and assignee name resolved.
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chore.Annotate(h.ledger.Chores(), h.ledger.Roommates(), time.Now()))
}

func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req choreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.ledger.AddChore(req.Title, req.Description, req.Points.Int())
	if err != nil {
		h.ledgerError(w, "add_chore", err)
		return
	}

	h.logger.Info("chore added", "chore_id", c.ID, "points", c.Points)
	h.changed(websocket.NewMessage("chore", "created", c.ID, nil))

	writeJSON(w, http.StatusCreated, c)
}

func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.ledger.RemoveChore(id); err != nil {
		h.ledgerError(w, "remove_chore", err)
		return
	}

	h.logger.Info("chore removed", "chore_id", id)
	h.changed(websocket.NewMessage("chore", "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChoreHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		RoommateID string `json:"roommate_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.ledger.AssignChore(id, req.RoommateID)
	if err != nil {
		h.ledgerError(w, "assign_chore", err)
		return
	}

	h.logger.Info("chore assigned", "chore_id", id, "roommate_id", req.RoommateID)
	h.changed(websocket.NewMessage("chore", "assigned", id, map[string]any{"roommate_id": req.RoommateID}))

	writeJSON(w, http.StatusOK, c)
}

func (h *ChoreHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, err := h.ledger.CompleteChore(id)
	if err != nil {
		h.ledgerError(w, "complete_chore", err)
		return
	}

	h.metrics.ChoreCompleted(c.Points)
	h.logger.Info("chore completed", "chore_id", id, "roommate_id", *c.AssignedTo, "points", c.Points)
	h.changed(websocket.NewMessage("chore", "completed", id, map[string]any{
		"roommate_id": *c.AssignedTo,
		"points":      c.Points,
	}))

	writeJSON(w, http.StatusOK, c)
}
