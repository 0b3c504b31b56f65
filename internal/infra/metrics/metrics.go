// Package metrics exposes sign-in counters to Prometheus.
package metrics

import (
	"net/http"

	"authhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "authhub"

// Metrics owns a private registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	otpSent  prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Sign-in attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		otpSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_sent_total",
			Help:      "One-time passwords delivered over WhatsApp.",
		}),
	}
	registry.MustRegister(m.attempts, m.otpSent)

	return m
}

// NewAuthMetrics adapts Metrics to the use-case facing interface.
func NewAuthMetrics(m *Metrics) service.AuthMetrics {
	return m
}

func (m *Metrics) ObserveAttempt(provider, outcome string) {
	m.attempts.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) ObserveOTPSent() {
	m.otpSent.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
