package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/choresplit/internal/chore"
	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/metrics"
	"github.com/dukerupert/choresplit/internal/websocket"
)

type RoommateHandler struct {
	notifier
}

func NewRoommateHandler(l *ledger.Ledger, hub websocket.Broadcaster, rec metrics.Recorder, logger *slog.Logger) *RoommateHandler {
	return &RoommateHandler{notifier: newNotifier(l, hub, rec, logger)}
}

func (h *RoommateHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Roommates())
}

func (h *RoommateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	roommate, err := h.ledger.AddRoommate(req.Name)
	if err != nil {
		h.ledgerError(w, "add_roommate", err)
		return
	}

	h.logger.Info("roommate added", "roommate_id", roommate.ID, "name", roommate.Name)
	h.changed(websocket.NewMessage("roommate", "created", roommate.ID, nil))

	writeJSON(w, http.StatusCreated, roommate)
}

func (h *RoommateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.ledger.RemoveRoommate(id); err != nil {
		h.ledgerError(w, "remove_roommate", err)
		return
	}

	h.logger.Info("roommate removed", "roommate_id", id)
	h.changed(websocket.NewMessage("roommate", "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}

// Chores lists the chores currently assigned to the roommate.
func (h *RoommateHandler) Chores(w http.ResponseWriter, r *http.Request) {
	chores, err := h.ledger.ChoresFor(r.PathValue("id"))
	if err != nil {
		h.ledgerError(w, "chores_for", err)
		return
	}
	writeJSON(w, http.StatusOK, chore.Annotate(chores, h.ledger.Roommates(), time.Now()))
}
