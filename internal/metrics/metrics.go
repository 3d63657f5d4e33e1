// Package metrics counts gameplay events for Prometheus.
//
// Metrics implements core.Events, so games report moves and solves without
// knowing about Prometheus. The SSH server additionally tracks active sessions.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hexes"

// Metrics holds the Prometheus collectors of one process.
type Metrics struct {
	// MovesTotal counts applied moves.
	// Labels: pack, kind (move, undo, redo)
	MovesTotal *prometheus.CounterVec

	// RejectedTotal counts picks that did not form a legal move.
	// Labels: pack
	RejectedTotal *prometheus.CounterVec

	// SolvesTotal counts solved levels.
	// Labels: pack, bonus (true, false)
	SolvesTotal *prometheus.CounterVec

	// SolveMoves is the distribution of move counts at solve time.
	// Labels: pack
	SolveMoves *prometheus.HistogramVec

	// ActiveSessions tracks connected SSH players.
	ActiveSessions prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg.
// Registering twice with the same registry panics.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MovesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "play",
			Name:      "moves_total",
			Help:      "Applied moves by pack and kind",
		}, []string{"pack", "kind"}),

		RejectedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "play",
			Name:      "rejected_moves_total",
			Help:      "Picks that did not form a legal move",
		}, []string{"pack"}),

		SolvesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "play",
			Name:      "solves_total",
			Help:      "Solved levels by pack and whether par was met",
		}, []string{"pack", "bonus"}),

		SolveMoves: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "play",
			Name:      "solve_moves",
			Help:      "Moves standing when a level was solved",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		}, []string{"pack"}),

		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "active_sessions",
			Help:      "Connected SSH sessions",
		}),

		gatherer: reg,
	}
}

// Move implements core.Events.
func (m *Metrics) Move(game, kind string) {
	m.MovesTotal.WithLabelValues(game, kind).Inc()
}

// Rejected implements core.Events.
func (m *Metrics) Rejected(game string) {
	m.RejectedTotal.WithLabelValues(game).Inc()
}

// Solved implements core.Events.
func (m *Metrics) Solved(game, _ string, moves, par int) {
	m.SolvesTotal.WithLabelValues(game, strconv.FormatBool(moves <= par)).Inc()
	m.SolveMoves.WithLabelValues(game).Observe(float64(moves))
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() { m.ActiveSessions.Inc() }

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() { m.ActiveSessions.Dec() }

// Handler serves the registered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
