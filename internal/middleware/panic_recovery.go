package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"cdms/internal/errors"

	"github.com/spf13/cobra"
)

// PanicRecovery is a middleware that turns a panic inside a command into a
// SYSTEM_001 error so the process still exits through the error handler
func PanicRecovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next CommandFunc) CommandFunc {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(cmd)
					if traceID == "" {
						traceID = "unknown"
					}

					logger.Error("Panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"command", cmd.CommandPath(),
					)

					err = errors.Wrap(errors.SystemInternalError, fmt.Errorf("panic: %v", r))
				}
			}()

			return next(cmd, args)
		}
	}
}
