package middleware

import (
	"context"
	"os"

	"cdms/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	// TraceIDEnv lets a caller supply the trace ID, e.g. from a wrapping script
	TraceIDEnv = "CDMS_TRACE_ID"
)

// RequestID is a middleware that assigns a trace ID to each command
// invocation and stores it in the command context
func RequestID() Middleware {
	return func(next CommandFunc) CommandFunc {
		return func(cmd *cobra.Command, args []string) error {
			traceID := os.Getenv(TraceIDEnv)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(services.ContextWithRequestID(ctx, traceID))
			return next(cmd, args)
		}
	}
}

// GetTraceID extracts the trace ID from the command context
// Returns empty string if not found
func GetTraceID(cmd *cobra.Command) string {
	ctx := cmd.Context()
	if ctx == nil {
		return ""
	}
	return services.RequestIDFromContext(ctx)
}
