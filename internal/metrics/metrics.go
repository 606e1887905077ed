// Package metrics exposes ledger activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/dukerupert/choresplit/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers report to. A nil *Collector is not valid; use
// Nop when metrics are disabled.
type Recorder interface {
	ChoreCompleted(points int)
	LedgerError(op, kind string)
	Observe(roommates []model.Roommate, chores []model.Chore)
}

type Collector struct {
	choresCompleted prometheus.Counter
	pointsAwarded   prometheus.Counter
	ledgerErrors    *prometheus.CounterVec
	roommates       prometheus.Gauge
	chores          *prometheus.GaugeVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		choresCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "choresplit_chores_completed_total",
			Help: "Chores marked complete.",
		}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "choresplit_points_awarded_total",
			Help: "Points credited to roommates for completed chores.",
		}),
		ledgerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "choresplit_ledger_errors_total",
			Help: "Rejected ledger operations by operation and error kind.",
		}, []string{"op", "kind"}),
		roommates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "choresplit_roommates",
			Help: "Roommates in the ledger.",
		}),
		chores: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "choresplit_chores",
			Help: "Chores in the ledger by state.",
		}, []string{"state"}),
	}

	reg.MustRegister(
		c.choresCompleted,
		c.pointsAwarded,
		c.ledgerErrors,
		c.roommates,
		c.chores,
	)

	return c
}

func (c *Collector) ChoreCompleted(points int) {
	c.choresCompleted.Inc()
	c.pointsAwarded.Add(float64(points))
}

func (c *Collector) LedgerError(op, kind string) {
	c.ledgerErrors.WithLabelValues(op, kind).Inc()
}

// Observe refreshes the gauges from a ledger snapshot.
func (c *Collector) Observe(roommates []model.Roommate, chores []model.Chore) {
	c.roommates.Set(float64(len(roommates)))

	var unassigned, assigned, completed int
	for _, ch := range chores {
		switch {
		case ch.IsCompleted:
			completed++
		case ch.IsAssigned():
			assigned++
		default:
			unassigned++
		}
	}
	c.chores.WithLabelValues("unassigned").Set(float64(unassigned))
	c.chores.WithLabelValues("assigned").Set(float64(assigned))
	c.chores.WithLabelValues("completed").Set(float64(completed))
}

// RegisterBroadcastDrops exports a drop count kept by the websocket hub as
// choresplit_ws_dropped_total.
func RegisterBroadcastDrops(reg prometheus.Registerer, dropped func() int64) {
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "choresplit_ws_dropped_total",
		Help: "Change messages skipped for views whose send buffer was full.",
	}, func() float64 {
		return float64(dropped())
	}))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) ChoreCompleted(int)                      {}
func (Nop) LedgerError(string, string)              {}
func (Nop) Observe([]model.Roommate, []model.Chore) {}
