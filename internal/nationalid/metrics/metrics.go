package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for national identifier operations.
// Labels never carry the identifier itself.
type Metrics struct {
	// Operations by name ("format", "generate", "validate") and identifier kind
	Operations *prometheus.CounterVec

	// Validation outcomes by identifier kind, result and error kind
	ValidationOutcome *prometheus.CounterVec

	// Identifiers generated by kind and whether a recognized region hint was used
	Generated *prometheus.CounterVec

	OperationLatency *prometheus.HistogramVec
}

// New creates the module metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "natid_operations_total",
			Help: "Total national identifier operations by operation and type",
		}, []string{"operation", "type"}), // type: "SIN", "SSN", "unsupported"

		ValidationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "natid_validation_outcomes_total",
			Help: "Validation outcomes by type, result and error kind",
		}, []string{"type", "result", "error_kind"}),

		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "natid_generated_total",
			Help: "Synthetic identifiers generated by type and hint usage",
		}, []string{"type", "hinted"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "natid_operation_duration_seconds",
			Help:    "Duration of national identifier operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}),
	}
}

// IncrementOperation records one call of operation for the identifier type.
func (m *Metrics) IncrementOperation(operation, idType string) {
	if m != nil {
		m.Operations.WithLabelValues(operation, idType).Inc()
	}
}

// IncrementValidation records a validation result.
func (m *Metrics) IncrementValidation(idType string, valid bool, errorKind string) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	if errorKind == "" {
		errorKind = "none"
	}
	m.ValidationOutcome.WithLabelValues(idType, result, errorKind).Inc()
}

// AddGenerated records n generated identifiers.
func (m *Metrics) AddGenerated(idType string, hinted bool, n int) {
	if m == nil {
		return
	}
	label := "false"
	if hinted {
		label = "true"
	}
	m.Generated.WithLabelValues(idType, label).Add(float64(n))
}

// ObserveLatency records the duration of operation.
func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
