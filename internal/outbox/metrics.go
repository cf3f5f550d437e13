package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePublished = "published"
	outcomeFailed    = "failed"
)

// Metrics tracks relay throughput and the outbox backlog
type Metrics struct {
	published *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

// NewMetrics creates relay metrics registered with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_engine",
			Subsystem: "outbox",
			Name:      "publish_total",
			Help:      "Outbox publish attempts by entry kind and outcome.",
		}, []string{"kind", "outcome"}),
		entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "carbon_engine",
			Subsystem: "outbox",
			Name:      "entries",
			Help:      "Outbox entries by status.",
		}, []string{"status"}),
	}
}
