// Package metrics counts game activity for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/logger"
)

// Metrics holds the game counters. It implements engine.Listener.
type Metrics struct {
	registry *prometheus.Registry

	RoundsStarted prometheus.Counter
	RoundsWon     *prometheus.CounterVec
	Actions       *prometheus.CounterVec
	PointsAwarded prometheus.Counter
	PointsLost    prometheus.Counter
	LettersPerHit prometheus.Histogram
}

// New creates the game metrics on their own registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RoundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Number of rounds started",
		}),
		RoundsWon: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_won_total",
			Help:      "Number of rounds won, by how the phrase was completed",
		}, []string{"how"}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Player actions by outcome",
		}, []string{"outcome"}),
		PointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Points scored from correct letters",
		}),
		PointsLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_lost_total",
			Help:      "Points wiped out by bankrupt spins",
		}),
		LettersPerHit: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "letters_per_correct_guess",
			Help:      "Occurrences revealed by each correct letter guess",
			Buckets:   prometheus.LinearBuckets(1, 1, 8),
		}),
	}

	m.registry.MustRegister(
		m.RoundsStarted,
		m.RoundsWon,
		m.Actions,
		m.PointsAwarded,
		m.PointsLost,
		m.LettersPerHit,
	)

	return m
}

// OnResult records one engine action.
func (m *Metrics) OnResult(r engine.Result) {
	m.Actions.WithLabelValues(r.Outcome.String()).Inc()

	switch r.Outcome {
	case engine.OutcomeRoundStarted:
		m.RoundsStarted.Inc()
	case engine.OutcomeBankrupt:
		m.PointsLost.Add(float64(-r.Delta))
	case engine.OutcomeWonBySolve:
		m.RoundsWon.WithLabelValues("solve").Inc()
	}

	if r.Count > 0 {
		m.PointsAwarded.Add(float64(r.Delta))
		m.LettersPerHit.Observe(float64(r.Count))
	}
	if r.Outcome == engine.OutcomeWonByReveal {
		m.RoundsWon.WithLabelValues("reveal").Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Log.Infow("metrics listener started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Warnw("metrics listener stopped", "addr", addr, "error", err)
		}
	}()
}
