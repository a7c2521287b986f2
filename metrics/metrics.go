// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "emerge"

// Metrics holds the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	reflections   prometheus.Counter
	fallbacks     prometheus.Counter
	trends        *prometheus.CounterVec
	interventions prometheus.Counter
	companion     *prometheus.CounterVec
}

// New registers the collectors on reg. Passing nil creates a private
// registry, which is what tests want.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		reflections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reflections_analyzed_total",
			Help:      "Reflections scored for sentiment.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentiment_fallbacks_total",
			Help:      "Sentiment estimations that failed and returned the neutral result.",
		}),
		trends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_classifications_total",
			Help:      "Trend analyses by resulting direction.",
		}, []string{"trend"}),
		interventions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interventions_signalled_total",
			Help:      "Trend requests where support was recommended.",
		}),
		companion: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "companion_actions_total",
			Help:      "Companion states served by action.",
		}, []string{"action"}),
	}

	reg.MustRegister(m.reflections, m.fallbacks, m.trends, m.interventions, m.companion)
	return m
}

func (m *Metrics) ReflectionAnalyzed() {
	if m == nil {
		return
	}
	m.reflections.Inc()
}

// SentimentFallback matches the scorer's onFallback hook signature.
func (m *Metrics) SentimentFallback(error) {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}

func (m *Metrics) TrendClassified(trend string) {
	if m == nil {
		return
	}
	m.trends.WithLabelValues(trend).Inc()
}

func (m *Metrics) InterventionSignalled() {
	if m == nil {
		return
	}
	m.interventions.Inc()
}

func (m *Metrics) CompanionAction(action string) {
	if m == nil {
		return
	}
	m.companion.WithLabelValues(action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
