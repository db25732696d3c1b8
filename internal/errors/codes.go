package errors

// ErrorCode represents a standardized error code used throughout the application
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_002"
)

// Segment error codes (SEGMENT_*)
const (
	SegmentInvalidRegion   ErrorCode = "SEGMENT_001"
	SegmentInvalidStrategy ErrorCode = "SEGMENT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemExportError        ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// Process exit codes returned by the command line for each error family.
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitSysError  = 2
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "All fields are required",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Customer errors
	CustomerNotFound:  "Customer not found",
	CustomerInvalidID: "Invalid customer ID",

	// Segment errors
	SegmentInvalidRegion:   "Region is required",
	SegmentInvalidStrategy: "Unknown segmentation strategy",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database error",
	SystemConfigurationError: "System configuration error",
	SystemExportError:        "Export failed",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetExitCode returns the process exit code for the error code
func GetExitCode(code ErrorCode) int {
	switch code {
	// User errors - the operation was rejected and may be retried with other input
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, CustomerNotFound, CustomerInvalidID,
		SegmentInvalidRegion:
		return ExitUserError

	// System errors
	case SegmentInvalidStrategy, SystemInternalError, SystemDatabaseError,
		SystemConfigurationError, SystemExportError, SystemUnexpectedError:
		return ExitSysError

	default:
		return ExitSysError
	}
}

// IsValidationCode reports whether the code belongs to the VALIDATION family
func IsValidationCode(code ErrorCode) bool {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange:
		return true
	}
	return false
}
