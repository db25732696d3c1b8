package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	apperrors "cdms/internal/errors"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	logs   bytes.Buffer
	logger *slog.Logger
	cmd    *cobra.Command
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.logs.Reset()
	s.logger = slog.New(slog.NewJSONHandler(&s.logs, nil))
	s.cmd = &cobra.Command{Use: "segments"}
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_RecoverFromPanic tests that middleware recovers from panic
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	handler := Chain(func(cmd *cobra.Command, args []string) error {
		panic("test panic")
	}, RequestID(), PanicRecovery(s.logger))

	var err error
	s.NotPanics(func() {
		err = handler(s.cmd, nil)
	})

	s.Equal(apperrors.SystemInternalError, apperrors.CodeOf(err))
	s.Contains(err.Error(), "test panic")
	s.Contains(s.logs.String(), "Panic recovered")
	s.Contains(s.logs.String(), "stack_trace")
	s.Contains(s.logs.String(), GetTraceID(s.cmd))
}

// TestPanicRecovery_NoPanic tests that errors pass through untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanic() {
	want := errors.New("plain failure")
	handler := PanicRecovery(s.logger)(func(cmd *cobra.Command, args []string) error {
		return want
	})

	s.Equal(want, handler(s.cmd, nil))
	s.Empty(s.logs.String())
}

// TestPanicRecovery_UnknownTraceID tests logging without a request ID
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	handler := PanicRecovery(s.logger)(func(cmd *cobra.Command, args []string) error {
		panic(errors.New("nil map"))
	})

	s.Error(handler(s.cmd, nil))
	s.Contains(s.logs.String(), `"trace_id":"unknown"`)
}

func (s *PanicRecoveryTestSuite) TestChain_Order() {
	var order []string
	mark := func(name string) Middleware {
		return func(next CommandFunc) CommandFunc {
			return func(cmd *cobra.Command, args []string) error {
				order = append(order, name)
				return next(cmd, args)
			}
		}
	}

	handler := Chain(func(cmd *cobra.Command, args []string) error {
		order = append(order, "handler")
		return nil
	}, mark("outer"), mark("inner"))

	s.NoError(handler(s.cmd, nil))
	s.Equal([]string{"outer", "inner", "handler"}, order)
}
