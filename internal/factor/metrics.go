package factor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stepExact    = "exact"
	stepLastYear = "last_year"
	stepFallback = "fallback"
	stepDivision = "division"
	stepMiss     = "miss"
)

// Metrics counts resolutions by the step that produced them
type Metrics struct {
	resolutions *prometheus.CounterVec
}

// NewMetrics creates resolver metrics registered with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		resolutions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_engine",
			Subsystem: "factor",
			Name:      "resolutions_total",
			Help:      "Factor resolutions by the lookup step that matched.",
		}, []string{"step"}),
	}
}

func (m *Metrics) observe(step string) {
	m.resolutions.WithLabelValues(step).Inc()
}
