package services

import (
	"context"
	"log/slog"
	"time"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

type contextKey string

// RequestIDKey is the context key holding the per-invocation request id
const RequestIDKey contextKey = "request_id"

// ContextWithRequestID returns a copy of ctx carrying requestID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, or ""
func RequestIDFromContext(ctx context.Context) string {
	return getRequestID(ctx)
}

// CustomerLogger provides structured logging for customer-related operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerCreated logs customer creation
func (cl *CustomerLogger) LogCustomerCreated(ctx context.Context, customerID uint, email string) {
	cl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("email", email),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerUpdated logs which columns of a customer changed
func (cl *CustomerLogger) LogCustomerUpdated(ctx context.Context, customerID uint, updatedFields []string) {
	cl.logger.InfoContext(ctx, "customer updated",
		slog.String("event_type", "customer_updated"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerDeleted logs customer deletion
func (cl *CustomerLogger) LogCustomerDeleted(ctx context.Context, customerID uint) {
	cl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearchCompleted logs the completion of a customer search
func (cl *CustomerLogger) LogCustomerSearchCompleted(ctx context.Context, resultsCount int, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer search completed",
		slog.String("event_type", "customer_search_completed"),
		slog.String("query", RedactedValue),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearchFailed logs a failed customer search
func (cl *CustomerLogger) LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "customer search failed",
		slog.String("event_type", "customer_search_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSegmentsComputed logs a finished region segmentation
func (cl *CustomerLogger) LogSegmentsComputed(ctx context.Context, state, strategy string, customers int, durationMs int64) {
	cl.logger.InfoContext(ctx, "segments computed",
		slog.String("event_type", "segments_computed"),
		slog.String("state", state),
		slog.String("strategy", strategy),
		slog.Int("customers", customers),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
