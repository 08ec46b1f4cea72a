package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	NoteOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notekeep", Name: "note_operations_total", Help: "Number of note operations by operation and outcome."},
		[]string{"operation", "status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notekeep", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notekeep", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(NoteOperations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
