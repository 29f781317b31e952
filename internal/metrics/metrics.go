// Package metrics holds the Prometheus collectors for the relay and the HTTP
// server that exposes them.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Reply outcomes recorded by RecordReply.
const (
	OutcomeOK         = "ok"
	OutcomeAPIError   = "api_error"
	OutcomeKeyMissing = "key_missing"
)

var (
	once sync.Once

	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_updates_total",
			Help: "Telegram updates received, by kind.",
		},
		[]string{"kind"},
	)

	repliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_replies_total",
			Help: "Replies sent for relayed text messages, by outcome.",
		},
		[]string{"outcome"},
	)

	completionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deepseek_request_duration_seconds",
			Help:    "Latency of chat completion calls.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"outcome"},
	)

	upstreamUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "deepseek_upstream_up",
			Help: "1 if the last scheduled probe of the completion API succeeded.",
		},
	)
)

// MustRegister registers all collectors with reg exactly once.
func MustRegister(reg prometheus.Registerer) {
	once.Do(func() {
		reg.MustRegister(updatesTotal, repliesTotal, completionDuration, upstreamUp)
	})
}

// UpdateReceived counts one incoming update of the given kind.
func UpdateReceived(kind string) {
	updatesTotal.WithLabelValues(kind).Inc()
}

// RecordReply counts one reply to a relayed message.
func RecordReply(outcome string) {
	repliesTotal.WithLabelValues(outcome).Inc()
}

// ObserveCompletion records the latency of a completion call.
func ObserveCompletion(d time.Duration, success bool) {
	outcome := OutcomeOK
	if !success {
		outcome = OutcomeAPIError
	}
	completionDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// SetUpstreamUp stores the result of the latest upstream probe.
func SetUpstreamUp(up bool) {
	if up {
		upstreamUp.Set(1)
		return
	}
	upstreamUp.Set(0)
}
