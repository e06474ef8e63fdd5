// Package metrics holds the Prometheus collectors of the service request registry.
package metrics

import (
	"errors"

	"servicerequest/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the request lifecycle.
type Metrics struct {
	EventsPublished  *prometheus.CounterVec
	PublishFailures  prometheus.Counter
	CommandsHandled  *prometheus.CounterVec
	RequestsByStatus *prometheus.GaugeVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicerequest_events_published_total",
			Help: "Lifecycle events handed to subscribers, by event name",
		}, []string{"event"}),
		PublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "servicerequest_event_publish_failures_total",
			Help: "Publish calls that failed for at least one sink",
		}),
		CommandsHandled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicerequest_commands_total",
			Help: "Handled commands by operation and outcome",
		}, []string{"operation", "outcome"}),
		RequestsByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "servicerequest_requests",
			Help: "Stored requests by lifecycle status",
		}, []string{"status"}),
	}
}

// IncEvent records one published event.
func (m *Metrics) IncEvent(name string) {
	m.EventsPublished.WithLabelValues(name).Inc()
}

// IncPublishFailure records a failed publish call.
func (m *Metrics) IncPublishFailure() {
	m.PublishFailures.Inc()
}

// ObserveCommand records the outcome of a command handler.
func (m *Metrics) ObserveCommand(operation string, err error) {
	m.CommandsHandled.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetStatusCounts replaces the per-status gauge. Statuses missing from counts are set to zero.
func (m *Metrics) SetStatusCounts(statuses []string, counts map[string]int64) {
	for _, s := range statuses {
		m.RequestsByStatus.WithLabelValues(s).Set(float64(counts[s]))
	}
}

// Outcome classifies a command error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrComplianceViolation):
		return "compliance_rejected"
	case errors.Is(err, errs.ErrAlreadyClosed),
		errors.Is(err, errs.ErrAlreadyApproved),
		errors.Is(err, errs.ErrWrongPredecessorState):
		return "wrong_state"
	case errors.Is(err, errs.ErrConflict):
		return "conflict"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrApproverNotAuthorized):
		return "not_authorized"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return "invalid"
	default:
		return "error"
	}
}
