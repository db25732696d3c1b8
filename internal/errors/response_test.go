package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CustomerNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("CUSTOMER_001", response.Error.Code)
	s.Equal("Customer not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithMessage("Custom message"),
		WithDetails(details...),
	)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Custom message", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestFromError_Validation() {
	err := NewValidationError(map[string]string{
		"phone": "must be exactly 10 digits",
		"email": "must look like local@domain.tld",
	})

	response := FromError(err, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"email: must look like local@domain.tld",
		"phone: must be exactly 10 digits",
	}, response.Error.Details)
	s.True(response.IsUserError())
	s.Equal(ExitUserError, response.GetExitCode())
}

func (s *ResponseTestSuite) TestFromError_NotFoundWrapped() {
	err := fmt.Errorf("delete customer: %w", NewNotFoundError(42))

	response := FromError(err, s.traceID)

	s.Equal("CUSTOMER_001", response.Error.Code)
	s.Equal([]string{"customer_id: 42"}, response.Error.Details)
	s.Equal(ExitUserError, response.GetExitCode())
}

func (s *ResponseTestSuite) TestFromError_DatabaseErrorHidesCause() {
	err := WrapDatabaseError(errors.New("disk I/O error"))

	response := FromError(err, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database error", response.Error.Message)
	s.NotContains(response.String(), "disk I/O")
	s.Equal(ExitSysError, response.GetExitCode())
}

func (s *ResponseTestSuite) TestFromError_ForeignError() {
	response := FromError(errors.New("boom"), s.traceID)

	s.Equal("SYSTEM_005", response.Error.Code)
	s.False(response.IsUserError())
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(CustomerNotFound, s.traceID, WithDetails("customer_id: 7"))

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("CUSTOMER_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.Equal("[SYSTEM_002] Database error (trace: 550e8400-e29b-41d4-a716-446655440000)", response.String())
}
