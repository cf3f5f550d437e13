package ledger

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/feral-file/carbon-engine/internal/domain"
)

const (
	opIssue         = "issue"
	opTransfer      = "transfer"
	opRetire        = "retire"
	opTrackerStatus = "tracker_status"

	outcomeApplied    = "applied"
	outcomeReconciled = "reconciled"
	outcomeDuplicate  = "duplicate"
	outcomeRejected   = "rejected"
	outcomeError      = "error"
)

// Metrics counts ledger operations and mirrored chain events
type Metrics struct {
	operations  *prometheus.CounterVec
	events      *prometheus.CounterVec
	discrepancy *prometheus.GaugeVec
}

// NewMetrics creates ledger metrics registered with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_engine",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations by asset kind, operation and outcome.",
		}, []string{"kind", "operation", "outcome"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_engine",
			Subsystem: "ledger",
			Name:      "events_total",
			Help:      "Mirrored chain events by type and outcome.",
		}, []string{"type", "outcome"}),
		discrepancy: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "carbon_engine",
			Subsystem: "ledger",
			Name:      "audit_discrepancy",
			Help:      "Held minus expected quantity found by the last audit of an asset kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) operation(kind domain.AssetKind, op string, err error) {
	m.operations.WithLabelValues(string(kind), op, outcomeOf(err)).Inc()
}

func (m *Metrics) event(eventType domain.LedgerEventType, outcome string) {
	m.events.WithLabelValues(string(eventType), outcome).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeApplied
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidHolder),
		errors.Is(err, domain.ErrInvalidAssetKind),
		errors.Is(err, domain.ErrInvalidTrackerStatus),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrBalanceNotFound),
		errors.Is(err, domain.ErrAssetNotFound):
		return outcomeRejected
	default:
		return outcomeError
	}
}
