package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the deletion workflow. A nil
// *Metrics is valid and turns every recording call into a no-op so services
// can be constructed without metrics in tests.
type Metrics struct {
	DeletionsRequested   prometheus.Counter
	DeletionsExecuted    prometheus.Counter
	DeletionsCancelled   prometheus.Counter
	CascadePurges        prometheus.Counter
	CollaboratorFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DeletionsRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custodia_deletions_requested_total",
			Help: "Total number of pending deletions created (four-eyes path).",
		}),
		DeletionsExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custodia_deletions_executed_total",
			Help: "Total number of committed personal-data purges via the administrative API.",
		}),
		DeletionsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custodia_deletions_cancelled_total",
			Help: "Total number of pending deletions cancelled before execution.",
		}),
		CascadePurges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custodia_cascade_purges_total",
			Help: "Total number of purges driven by participant-deleted events.",
		}),
		CollaboratorFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodia_collaborator_failures_total",
			Help: "Failures of post-commit collaborator calls, by collaborator.",
		}, []string{"collaborator"}),
	}
}

func (m *Metrics) IncRequested() {
	if m == nil {
		return
	}
	m.DeletionsRequested.Inc()
}

func (m *Metrics) IncExecuted() {
	if m == nil {
		return
	}
	m.DeletionsExecuted.Inc()
}

func (m *Metrics) IncCancelled() {
	if m == nil {
		return
	}
	m.DeletionsCancelled.Inc()
}

func (m *Metrics) IncCascadePurge() {
	if m == nil {
		return
	}
	m.CascadePurges.Inc()
}

func (m *Metrics) IncCollaboratorFailure(collaborator string) {
	if m == nil {
		return
	}
	m.CollaboratorFailures.WithLabelValues(collaborator).Inc()
}
