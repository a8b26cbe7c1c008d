package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOperation("validate", "SSN")
	m.IncrementValidation("SSN", true, "")
	m.IncrementValidation("SIN", false, "invalid_length")
	m.AddGenerated("SIN", true, 3)
	m.ObserveLatency("validate", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("validate", "SSN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationOutcome.WithLabelValues("SSN", "valid", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationOutcome.WithLabelValues("SIN", "invalid", "invalid_length")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Generated.WithLabelValues("SIN", "true")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationLatency))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOperation("format", "SIN")
		m.IncrementValidation("SIN", true, "")
		m.AddGenerated("SIN", false, 1)
		m.ObserveLatency("format", time.Second)
	})
}
