// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Spin outcomes
const (
	OutcomeSpecial = "special"
	OutcomePrize   = "prize"
	OutcomeLoss    = "loss"
)

var (
	// Registry holds the application collectors plus Go runtime metrics.
	Registry = prometheus.NewRegistry()

	spinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fortune_wheel",
			Name:      "spins_total",
			Help:      "Spins recorded, by outcome.",
		},
		[]string{"outcome"},
	)

	rejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fortune_wheel",
			Name:      "spin_rejections_total",
			Help:      "Spin requests rejected before recording, by reason.",
		},
		[]string{"reason"},
	)

	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fortune_wheel",
			Name:      "notifications_total",
			Help:      "Prize notifications attempted, by result.",
		},
		[]string{"result"},
	)

	disbursementsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fortune_wheel",
			Name:      "disbursements_total",
			Help:      "Disbursement updates applied.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fortune_wheel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fortune_wheel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		spinsTotal,
		rejectionsTotal,
		notificationsTotal,
		disbursementsTotal,
		httpRequests,
		httpDuration,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveSpin(outcome string) {
	spinsTotal.WithLabelValues(outcome).Inc()
}

func ObserveRejection(reason string) {
	rejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveNotification records a notification attempt; err == nil is success.
func ObserveNotification(err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	notificationsTotal.WithLabelValues(result).Inc()
}

func ObserveDisbursement() {
	disbursementsTotal.Inc()
}

// ObserveRequest records one handled request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveRequest(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Counter lookups for tests.

func SpinCount(outcome string) prometheus.Counter {
	return spinsTotal.WithLabelValues(outcome)
}

func RejectionCount(reason string) prometheus.Counter {
	return rejectionsTotal.WithLabelValues(reason)
}

func NotificationCount(result string) prometheus.Counter {
	return notificationsTotal.WithLabelValues(result)
}

func RequestCount(method, path string, status int) prometheus.Counter {
	return httpRequests.WithLabelValues(method, path, strconv.Itoa(status))
}
