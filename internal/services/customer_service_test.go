package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cdms/internal/dto"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"
	"cdms/internal/repositories"
	"cdms/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CustomerServiceTestSuite is the test suite for CustomerService
type CustomerServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	metrics      *PrometheusMetrics
	service      CustomerServiceInterface
	ctx          context.Context
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	logger := NewCustomerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.service = NewCustomerService(s.customerRepo, logger, s.metrics)
	s.ctx = ContextWithRequestID(context.Background(), "test-request")
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func validRequest() *dto.CustomerRequest {
	return &dto.CustomerRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "a.b@example.com",
		Phone:          "5551234567",
		State:          "CA",
		PurchaseAmount: "150.50",
	}
}

func storedCustomer(id uint) *models.Customer {
	return &models.Customer{
		ID:             id,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "a.b@example.com",
		Phone:          "5551234567",
		State:          "CA",
		PurchaseAmount: decimal.RequireFromString("150.50"),
	}
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	s.customerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Customer) error {
		s.Equal("Ada", c.FirstName)
		s.True(c.PurchaseAmount.Equal(decimal.RequireFromString("150.5")))
		c.ID = 7
		return nil
	})

	customer, err := s.service.CreateCustomer(s.ctx, validRequest())

	s.Require().NoError(err)
	s.Equal(uint(7), customer.ID)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerCreatedTotal))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_TrimsInput() {
	req := validRequest()
	req.FirstName = "  Ada  "
	req.Phone = " 5551234567 "

	s.customerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Customer) error {
		s.Equal("Ada", c.FirstName)
		s.Equal("5551234567", c.Phone)
		c.ID = 1
		return nil
	})

	_, err := s.service.CreateCustomer(s.ctx, req)
	s.NoError(err)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_RejectsInvalidFields() {
	tests := []struct {
		name   string
		mutate func(r *dto.CustomerRequest)
		field  string
	}{
		{"bad email", func(r *dto.CustomerRequest) { r.Email = "bad-email" }, "email"},
		{"short phone", func(r *dto.CustomerRequest) { r.Phone = "12345" }, "phone"},
		{"letters in phone", func(r *dto.CustomerRequest) { r.Phone = "12345abcde" }, "phone"},
		{"missing first name", func(r *dto.CustomerRequest) { r.FirstName = " " }, "first_name"},
		{"missing state", func(r *dto.CustomerRequest) { r.State = "" }, "state"},
		{"non numeric amount", func(r *dto.CustomerRequest) { r.PurchaseAmount = "lots" }, "purchase_amount"},
		{"negative amount", func(r *dto.CustomerRequest) { r.PurchaseAmount = "-1" }, "purchase_amount"},
		{"exponent amount", func(r *dto.CustomerRequest) { r.PurchaseAmount = "1e400" }, "purchase_amount"},
		{"amount wider than column", func(r *dto.CustomerRequest) { r.PurchaseAmount = "12345678901234567.89" }, "purchase_amount"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := validRequest()
			tt.mutate(req)

			customer, err := s.service.CreateCustomer(s.ctx, req)

			s.Nil(customer)
			s.True(apperrors.IsValidationError(err))
			s.Contains(err.Error(), tt.field)
		})
	}

	s.Equal(float64(len(tests)), testutil.ToFloat64(s.metrics.validationFailures.WithLabelValues("create")))
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.customerCreatedTotal))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_ReportsEveryFailingField() {
	req := &dto.CustomerRequest{Email: "bad-email", Phone: "12345"}

	_, err := s.service.CreateCustomer(s.ctx, req)

	var appErr *apperrors.Error
	s.Require().True(errors.As(err, &appErr))
	s.Len(appErr.Details, 6)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_NilRequest() {
	_, err := s.service.CreateCustomer(s.ctx, nil)
	s.True(apperrors.IsValidationError(err))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_DatabaseError() {
	s.customerRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.CreateCustomer(s.ctx, validRequest())

	s.Equal(apperrors.SystemDatabaseError, apperrors.CodeOf(err))
	s.Contains(err.Error(), "disk full")
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_Success() {
	s.customerRepo.EXPECT().GetByID(uint(3)).Return(storedCustomer(3), nil)
	s.customerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.Customer) error {
		s.Equal(uint(3), c.ID)
		s.Equal("NV", c.State)
		return nil
	})

	req := validRequest()
	req.State = "NV"
	req.PurchaseAmount = "900"

	customer, err := s.service.UpdateCustomer(s.ctx, 3, req)

	s.Require().NoError(err)
	s.Equal(uint(3), customer.ID)
	s.Equal("NV", customer.State)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerUpdatedTotal.WithLabelValues("state")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerUpdatedTotal.WithLabelValues("purchase_amount")))
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.customerUpdatedTotal.WithLabelValues("email")))
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	s.customerRepo.EXPECT().GetByID(uint(99)).Return(nil, repositories.ErrCustomerNotFound)

	_, err := s.service.UpdateCustomer(s.ctx, 99, validRequest())

	s.True(apperrors.IsNotFoundError(err))
	s.Contains(err.Error(), "customer_id: 99")
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_RemovedConcurrently() {
	s.customerRepo.EXPECT().GetByID(uint(3)).Return(storedCustomer(3), nil)
	s.customerRepo.EXPECT().Update(gomock.Any()).Return(repositories.ErrCustomerNotFound)

	_, err := s.service.UpdateCustomer(s.ctx, 3, validRequest())

	s.True(apperrors.IsNotFoundError(err))
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_InvalidData() {
	s.customerRepo.EXPECT().GetByID(uint(3)).Return(storedCustomer(3), nil)

	req := validRequest()
	req.Email = "bad-email"

	_, err := s.service.UpdateCustomer(s.ctx, 3, req)

	s.True(apperrors.IsValidationError(err))
}

func (s *CustomerServiceTestSuite) TestZeroID_IsNotFound() {
	s.customerRepo.EXPECT().Delete(uint(0)).Return(repositories.ErrCustomerNotFound)

	_, err := s.service.UpdateCustomer(s.ctx, 0, validRequest())
	s.True(apperrors.IsNotFoundError(err))

	_, err = s.service.GetCustomer(s.ctx, 0)
	s.True(apperrors.IsNotFoundError(err))

	err = s.service.DeleteCustomer(s.ctx, 0)
	s.True(apperrors.IsNotFoundError(err))
}

func (s *CustomerServiceTestSuite) TestDeleteCustomer() {
	s.customerRepo.EXPECT().Delete(uint(4)).Return(nil)
	s.customerRepo.EXPECT().Delete(uint(4)).Return(repositories.ErrCustomerNotFound)

	s.NoError(s.service.DeleteCustomer(s.ctx, 4))
	err := s.service.DeleteCustomer(s.ctx, 4)

	s.True(apperrors.IsNotFoundError(err))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerDeletedTotal))
}

func (s *CustomerServiceTestSuite) TestGetCustomer() {
	s.customerRepo.EXPECT().GetByID(uint(3)).Return(storedCustomer(3), nil)
	s.customerRepo.EXPECT().GetByID(uint(5)).Return(nil, errors.New("connection lost"))

	customer, err := s.service.GetCustomer(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("Ada", customer.FirstName)

	_, err = s.service.GetCustomer(s.ctx, 5)
	s.Equal(apperrors.SystemDatabaseError, apperrors.CodeOf(err))
}

func (s *CustomerServiceTestSuite) TestListCustomersByState_RequiresRegion() {
	_, err := s.service.ListCustomersByState(s.ctx, "  ")

	s.Equal(apperrors.SegmentInvalidRegion, apperrors.CodeOf(err))
}

func (s *CustomerServiceTestSuite) TestSearchCustomers() {
	alice := storedCustomer(1)
	alice.FirstName = "Alice"
	bob := storedCustomer(2)
	bob.FirstName = "Bob"
	bob.Email = "bob@mail.net"
	bob.PurchaseAmount = decimal.NewFromInt(200)
	s.customerRepo.EXPECT().ListAll().Return([]models.Customer{*bob, *alice}, nil).Times(4)

	ids, err := s.service.SearchCustomers(s.ctx, "ALI")
	s.Require().NoError(err)
	s.Equal([]uint{1}, ids)

	ids, err = s.service.SearchCustomers(s.ctx, "200")
	s.Require().NoError(err)
	s.Equal([]uint{2}, ids)

	ids, err = s.service.SearchCustomers(s.ctx, "example.com")
	s.Require().NoError(err)
	s.Equal([]uint{1}, ids)

	ids, err = s.service.SearchCustomers(s.ctx, "zzz")
	s.Require().NoError(err)
	s.Empty(ids)

	s.Equal(float64(4), testutil.ToFloat64(s.metrics.customerSearchRequests.WithLabelValues("success")))
}

func (s *CustomerServiceTestSuite) TestSearchCustomers_EmptyTerm() {
	_, err := s.service.SearchCustomers(s.ctx, "   ")

	s.True(apperrors.IsValidationError(err))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerSearchRequests.WithLabelValues("invalid")))
}

func (s *CustomerServiceTestSuite) TestSearchCustomers_DatabaseError() {
	s.customerRepo.EXPECT().ListAll().Return(nil, errors.New("locked"))

	_, err := s.service.SearchCustomers(s.ctx, "ada")

	s.Equal(apperrors.SystemDatabaseError, apperrors.CodeOf(err))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.customerSearchRequests.WithLabelValues("error")))
}

func (s *CustomerServiceTestSuite) TestNextID() {
	s.customerRepo.EXPECT().LastAssignedID().Return(uint(0), nil)
	s.customerRepo.EXPECT().LastAssignedID().Return(uint(12), nil)

	next, err := s.service.NextID(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint(1), next)

	last, err := s.service.LastAssignedID(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint(12), last)
}

func (s *CustomerServiceTestSuite) TestChangedFields() {
	before := storedCustomer(1)
	after := *before
	s.Empty(changedFields(before, &after))

	after.Email = "new@example.com"
	after.PurchaseAmount = decimal.RequireFromString("150.5")
	s.Equal([]string{"email"}, changedFields(before, &after))
}
