package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorResponse represents the standardized error report printed by the CLI
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromError builds the response for any error returned by the core.
// Application errors keep their code, message and details; system errors
// only expose the generic message so storage internals stay in the logs.
func FromError(err error, traceID string) *ErrorResponse {
	var appErr *Error
	if !stderrors.As(err, &appErr) {
		return NewErrorResponse(SystemUnexpectedError, traceID)
	}

	if GetExitCode(appErr.Code) == ExitSysError {
		return NewErrorResponse(appErr.Code, traceID)
	}

	details := appErr.Details
	if details == nil {
		details = []string{}
	}
	return NewErrorResponse(appErr.Code, traceID,
		WithMessage(appErr.Message),
		WithDetails(details...),
	)
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetExitCode returns the process exit code for the error response
func (er *ErrorResponse) GetExitCode() int {
	return GetExitCode(ErrorCode(er.Error.Code))
}

// IsUserError returns true if the error was caused by user input
func (er *ErrorResponse) IsUserError() bool {
	return er.GetExitCode() == ExitUserError
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
