package services

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter and timing names accepted by the metrics recorder
const (
	MetricCustomerCreated       = "customer_created"
	MetricCustomerUpdated       = "customer_updated"
	MetricCustomerDeleted       = "customer_deleted"
	MetricCustomerSearchRequest = "customer_search_request"
	MetricSegmentRequest        = "segment_request"
	MetricValidationFailure     = "validation_failure"
)

type PrometheusMetrics struct {
	customerCreatedTotal   prometheus.Counter
	customerUpdatedTotal   *prometheus.CounterVec
	customerDeletedTotal   prometheus.Counter
	customerSearchRequests *prometheus.CounterVec
	segmentRequests        *prometheus.CounterVec
	validationFailures     *prometheus.CounterVec
	operationDuration      *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the customer metrics on reg. A nil reg
// falls back to the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerUpdatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customer updates by field",
			},
			[]string{"field"},
		),
		customerDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		customerSearchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_search_requests_total",
				Help: "Total number of customer search requests",
			},
			[]string{"status"},
		),
		segmentRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "segment_requests_total",
				Help: "Total number of region segmentation requests by strategy",
			},
			[]string{"strategy"},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_validation_failures_total",
				Help: "Total number of rejected customer forms by operation",
			},
			[]string{"operation"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_operation_duration_seconds",
				Help:    "Customer operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCustomerCreated:
		m.customerCreatedTotal.Inc()
	case MetricCustomerUpdated:
		if field := tags["field"]; field != "" {
			m.customerUpdatedTotal.WithLabelValues(field).Inc()
		}
	case MetricCustomerDeleted:
		m.customerDeletedTotal.Inc()
	case MetricCustomerSearchRequest:
		if status := tags["status"]; status != "" {
			m.customerSearchRequests.WithLabelValues(status).Inc()
		}
	case MetricSegmentRequest:
		if strategy := tags["strategy"]; strategy != "" {
			m.segmentRequests.WithLabelValues(strategy).Inc()
		}
	case MetricValidationFailure:
		if operation := tags["operation"]; operation != "" {
			m.validationFailures.WithLabelValues(operation).Inc()
		}
	}
}

// RecordProcessingTime observes duration under the operation label name
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "" {
		return
	}
	m.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// WriteMetricsTextfile writes everything gathered from g to path in the
// node-exporter textfile format. An empty path is a no-op.
func WriteMetricsTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// noopMetrics discards every measurement
type noopMetrics struct{}

// NewNoopMetrics returns a recorder that records nothing
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
