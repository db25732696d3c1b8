package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Error is the application error returned by services. It carries a
// standardized code, a user-facing message and optional detail lines, and
// wraps the underlying cause when there is one.
type Error struct {
	Code    ErrorCode
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Details, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same code, so callers can compare
// against the sentinel values below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrNotFound   = &Error{Code: CustomerNotFound}
	ErrValidation = &Error{Code: ValidationGeneral}
)

// New creates an error with the default message for code
func New(code ErrorCode, details ...string) *Error {
	return &Error{
		Code:    code,
		Message: GetErrorMessage(code),
		Details: details,
	}
}

// Wrap creates an error with the default message for code wrapping err
func Wrap(code ErrorCode, err error) *Error {
	return &Error{
		Code:    code,
		Message: GetErrorMessage(code),
		Err:     err,
	}
}

// NewValidationError creates a validation error with field-specific error details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string) *Error {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return &Error{
		Code:    ValidationGeneral,
		Message: GetErrorMessage(ValidationGeneral),
		Details: details,
	}
}

// NewNotFoundError creates a not found error for the given customer id
func NewNotFoundError(id uint) *Error {
	return &Error{
		Code:    CustomerNotFound,
		Message: GetErrorMessage(CustomerNotFound),
		Details: []string{fmt.Sprintf("customer_id: %d", id)},
	}
}

// WrapDatabaseError wraps a storage failure. The cause stays available
// through Unwrap for logging.
func WrapDatabaseError(err error) *Error {
	return Wrap(SystemDatabaseError, err)
}

// CodeOf returns the code of the first *Error in err's chain, or
// SystemUnexpectedError for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return SystemUnexpectedError
}

// IsValidationError reports whether err is any VALIDATION_* error
func IsValidationError(err error) bool {
	var appErr *Error
	if !stderrors.As(err, &appErr) {
		return false
	}
	return IsValidationCode(appErr.Code)
}

// IsNotFoundError reports whether err references a nonexistent customer
func IsNotFoundError(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
