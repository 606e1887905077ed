package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/choresplit/internal/handler"
	"github.com/dukerupert/choresplit/internal/ledger"
	"github.com/dukerupert/choresplit/internal/metrics"
	"github.com/dukerupert/choresplit/internal/middleware"
	ws "github.com/dukerupert/choresplit/internal/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Options struct {
	RateLimit      float64
	RateBurst      int
	OriginPatterns []string
	// TrustProxy keys rate limits on X-Forwarded-For instead of the peer
	// address. Only set it behind a proxy that overwrites the header.
	TrustProxy bool
}

type Server struct {
	ledger      *ledger.Ledger
	hub         *ws.Hub
	registry    *prometheus.Registry
	roommateH   *handler.RoommateHandler
	choreH      *handler.ChoreHandler
	rewardH     *handler.RewardHandler
	rateLimiter *middleware.RateLimiter
	opts        Options
	logger      *slog.Logger
}

func New(l *ledger.Ledger, opts Options, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)
	metrics.RegisterBroadcastDrops(registry, hub.Dropped)
	collector.Observe(l.Roommates(), l.Chores())

	return &Server{
		ledger:      l,
		hub:         hub,
		registry:    registry,
		roommateH:   handler.NewRoommateHandler(l, hub, collector, logger.With("component", "roommate")),
		choreH:      handler.NewChoreHandler(l, hub, collector, logger.With("component", "chore")),
		rewardH:     handler.NewRewardHandler(l, collector, logger.With("component", "reward")),
		rateLimiter: middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst),
		opts:        opts,
		logger:      logger,
	}
}

// Hub returns the websocket hub views subscribe to.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /metrics", metrics.Handler(s.registry))
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.opts.OriginPatterns, s.logger.With("component", "websocket")))

	// Roommates
	mux.HandleFunc("GET /api/roommates", s.roommateH.List)
	mux.HandleFunc("POST /api/roommates", s.limited(s.roommateH.Create))
	mux.HandleFunc("DELETE /api/roommates/{id}", s.limited(s.roommateH.Delete))
	mux.HandleFunc("GET /api/roommates/{id}/chores", s.roommateH.Chores)
	mux.HandleFunc("GET /api/roommates/{id}/rewards", s.rewardH.Progress)

	// Chores
	mux.HandleFunc("GET /api/chores", s.choreH.List)
	mux.HandleFunc("POST /api/chores", s.limited(s.choreH.Create))
	mux.HandleFunc("DELETE /api/chores/{id}", s.limited(s.choreH.Delete))
	mux.HandleFunc("PUT /api/chores/{id}/assignee", s.limited(s.choreH.Assign))
	mux.HandleFunc("POST /api/chores/{id}/complete", s.limited(s.choreH.Complete))

	// Leaderboard and rewards
	mux.HandleFunc("GET /api/leaderboard", s.rewardH.Leaderboard)
	mux.HandleFunc("GET /api/rewards", s.rewardH.List)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"clients":   s.hub.ClientCount(),
		"roommates": len(s.ledger.Roommates()),
		"time":      time.Now().UTC().Format(time.RFC3339),
	})
}

// limited applies the per-client rate limit to ledger mutations.
func (s *Server) limited(h http.HandlerFunc) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, middleware.ClientIP(s.opts.TrustProxy))
	return rl(h).ServeHTTP
}
