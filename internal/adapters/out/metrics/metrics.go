// Package metrics exposes settlement and order lifecycle counters to prometheus.
package metrics

import (
	"context"
	"net/http"
	"time"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSettled  = "settled"
	OutcomeDeclined = "declined"
)

var _ ports.CancellationRecorder = (*LifecycleMetrics)(nil)

type LifecycleMetrics struct {
	Attempts      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	Cancellations *prometheus.CounterVec
}

// NewLifecycleMetrics creates the collectors and registers them with reg.
func NewLifecycleMetrics(reg prometheus.Registerer) *LifecycleMetrics {
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusfood",
		Subsystem: "settlement",
		Name:      "attempts_total",
		Help:      "Settlement attempts by payment method and outcome.",
	}, []string{"method", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campusfood",
		Subsystem: "settlement",
		Name:      "attempt_duration_ms",
		Help:      "Settlement attempt latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"method"})
	cancellations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusfood",
		Subsystem: "orders",
		Name:      "canceled_total",
		Help:      "Orders that ended Canceled, by reason.",
	}, []string{"reason"})

	reg.MustRegister(attempts, latency, cancellations)
	return &LifecycleMetrics{Attempts: attempts, LatencyMS: latency, Cancellations: cancellations}
}

func (m *LifecycleMetrics) OrderCanceled(reason string) {
	m.Cancellations.WithLabelValues(reason).Inc()
}

// Instrument wraps gateway so that each attempt is counted under method.
func (m *LifecycleMetrics) Instrument(method string, gateway ports.SettlementGateway) *InstrumentedGateway {
	return &InstrumentedGateway{next: gateway, method: method, metrics: m}
}

// Handler serves the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

var _ ports.SettlementGateway = (*InstrumentedGateway)(nil)

type InstrumentedGateway struct {
	next    ports.SettlementGateway
	method  string
	metrics *LifecycleMetrics
}

func (g *InstrumentedGateway) Attempt(ctx context.Context, o *order.Order) bool {
	start := time.Now()
	ok := g.next.Attempt(ctx, o)

	outcome := OutcomeDeclined
	if ok {
		outcome = OutcomeSettled
	}
	g.metrics.Attempts.WithLabelValues(g.method, outcome).Inc()
	g.metrics.LatencyMS.WithLabelValues(g.method).Observe(float64(time.Since(start).Milliseconds()))
	return ok
}
