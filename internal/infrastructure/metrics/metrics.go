package metrics

import (
	"time"

	"mangopay_billable/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks reconciliation outcomes and remote provider calls.
type Metrics struct {
	Reconciliations        *prometheus.CounterVec
	OrphanedRemoteUsers    prometheus.Counter
	ProviderRequestLatency *prometheus.HistogramVec
}

var _ interfaces.IReconciliationMetrics = (*Metrics)(nil)

// New registers every metric on reg. Pass prometheus.DefaultRegisterer to
// expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Reconciliations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billable_reconciliations_total",
			Help: "Reconciliation attempts by operation and outcome",
		}, []string{"operation", "outcome"}),
		OrphanedRemoteUsers: factory.NewCounter(prometheus.CounterOpts{
			Name: "billable_orphaned_remote_users_total",
			Help: "Remote users created whose link could not be persisted",
		}),
		ProviderRequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billable_provider_request_duration_seconds",
			Help:    "Duration of remote provider HTTP calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "status"}),
	}
}

func (m *Metrics) ObserveReconciliation(operation, outcome string) {
	m.Reconciliations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) IncOrphanedRemoteUser() {
	m.OrphanedRemoteUsers.Inc()
}

// ObserveProviderRequest records one provider call. Call with time.Now()
// taken before the request.
func (m *Metrics) ObserveProviderRequest(method, status string, start time.Time) {
	m.ProviderRequestLatency.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}
