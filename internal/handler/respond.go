package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/metrics"
	"github.com/dukerupert/choresplit/internal/websocket"
)

// notifier fans a successful mutation out to connected views and refreshes
// the ledger gauges.
type notifier struct {
	ledger  *ledger.Ledger
	hub     websocket.Broadcaster
	metrics metrics.Recorder
	logger  *slog.Logger
}

func newNotifier(l *ledger.Ledger, hub websocket.Broadcaster, rec metrics.Recorder, logger *slog.Logger) notifier {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return notifier{ledger: l, hub: hub, metrics: rec, logger: logger}
}

func (n notifier) changed(msg websocket.Message) {
	if n.hub != nil {
		n.hub.Broadcast(msg)
	}
	n.metrics.Observe(n.ledger.Roommates(), n.ledger.Chores())
}

// ledgerError maps a rejected ledger operation onto an HTTP response.
func (n notifier) ledgerError(w http.ResponseWriter, op string, err error) {
	kind := ledger.Kind(err)
	n.metrics.LedgerError(op, kind)

	switch {
	case errors.Is(err, ledger.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ledger.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidState):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		n.logger.Error("ledger operation failed", "op", op, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
