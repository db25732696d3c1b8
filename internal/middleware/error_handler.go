package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cdms/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler renders command errors as standardized error responses,
// logs them and maps them to process exit codes
type ErrorHandler struct {
	out         io.Writer
	logger      *slog.Logger
	jsonOutput  bool
	errorsTotal *prometheus.CounterVec
}

// NewErrorHandler creates an error handler writing to out. The error
// counter is registered on reg.
func NewErrorHandler(out io.Writer, logger *slog.Logger, reg prometheus.Registerer, jsonOutput bool) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &ErrorHandler{
		out:        out,
		logger:     logger,
		jsonOutput: jsonOutput,
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cli_errors_total",
				Help: "Total number of failed commands by code and command",
			},
			[]string{"code", "command"},
		),
	}
}

// SetJSON switches between JSON and one-line text output
func (h *ErrorHandler) SetJSON(jsonOutput bool) {
	h.jsonOutput = jsonOutput
}

// Handle reports err for command and returns the exit code. A nil err
// returns errors.ExitSuccess and prints nothing.
func (h *ErrorHandler) Handle(err error, command, traceID string) int {
	if err == nil {
		return errors.ExitSuccess
	}
	if traceID == "" {
		traceID = "unknown"
	}

	response := errors.FromError(err, traceID)
	exitCode := response.GetExitCode()

	logLevel := slog.LevelWarn
	if exitCode == errors.ExitSysError {
		logLevel = slog.LevelError
	}
	h.logger.Log(context.Background(), logLevel, "command failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"exit_code", exitCode,
		"command", command,
		"error", err.Error(),
	)

	h.errorsTotal.WithLabelValues(response.Error.Code, command).Inc()

	if h.jsonOutput {
		body, marshalErr := response.ToJSON()
		if marshalErr == nil {
			fmt.Fprintln(h.out, string(body))
			return exitCode
		}
		h.logger.Error("Failed to encode error response",
			"trace_id", traceID,
			"error", marshalErr.Error(),
		)
	}

	fmt.Fprintln(h.out, "Error:", response.String())
	for _, detail := range response.Error.Details {
		fmt.Fprintln(h.out, "  -", detail)
	}
	return exitCode
}
