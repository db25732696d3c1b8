package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cdms/internal/dto"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"
	"cdms/internal/repositories"
	"cdms/internal/validation"
)

// CustomerService implements the record store on top of the customer
// repository. It validates forms, translates repository errors into
// application errors and emits log events and metrics.
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
	validator    *validation.Validator
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger CustomerLoggerInterface, metrics MetricsRecorderInterface) CustomerServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
		validator:    validation.GetValidator(),
	}
}

// CreateCustomer validates req and stores it under the next id. Nothing is
// written when any field is invalid.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *dto.CustomerRequest) (*models.Customer, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("create", time.Since(start)) }()

	if err := s.validateRequest(ctx, "create", req); err != nil {
		return nil, err
	}

	customer := &models.Customer{}
	req.ApplyTo(customer)

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	s.logger.LogCustomerCreated(ctx, customer.ID, customer.Email)
	s.metrics.IncrementCounter(MetricCustomerCreated, nil)

	return customer, nil
}

// UpdateCustomer replaces every field of an existing customer. The id
// never changes.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, req *dto.CustomerRequest) (*models.Customer, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("update", time.Since(start)) }()

	existing, err := s.getCustomer(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateRequest(ctx, "update", req); err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)

	if err := s.customerRepo.Update(&updated); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.NewNotFoundError(id)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	changed := changedFields(existing, &updated)
	for _, field := range changed {
		s.metrics.IncrementCounter(MetricCustomerUpdated, map[string]string{"field": field})
	}
	s.logger.LogCustomerUpdated(ctx, id, changed)

	return &updated, nil
}

// DeleteCustomer removes one customer. Asking the user for confirmation is
// the caller's job.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("delete", time.Since(start)) }()

	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return apperrors.NewNotFoundError(id)
		}
		return apperrors.WrapDatabaseError(err)
	}

	s.logger.LogCustomerDeleted(ctx, id)
	s.metrics.IncrementCounter(MetricCustomerDeleted, nil)

	return nil
}

// GetCustomer retrieves a customer by id
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return s.getCustomer(id)
}

// ListCustomers returns every customer, highest purchase first
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepo.ListAll()
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	return customers, nil
}

// ListCustomersByState returns the customers of one region, highest purchase first
func (s *CustomerService) ListCustomersByState(ctx context.Context, state string) ([]models.Customer, error) {
	if strings.TrimSpace(state) == "" {
		return nil, apperrors.New(apperrors.SegmentInvalidRegion, "state: is required")
	}

	customers, err := s.customerRepo.ListByState(state)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	return customers, nil
}

// SearchCustomers returns the ids of every customer having a field that
// contains term, ignoring case. Ids come back in list order.
func (s *CustomerService) SearchCustomers(ctx context.Context, term string) ([]uint, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("search", time.Since(start)) }()

	if strings.TrimSpace(term) == "" {
		err := apperrors.NewValidationError(map[string]string{"term": "is required"})
		s.logger.LogCustomerSearchFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		s.metrics.IncrementCounter(MetricCustomerSearchRequest, map[string]string{"status": "invalid"})
		return nil, err
	}

	customers, err := s.customerRepo.ListAll()
	if err != nil {
		s.logger.LogCustomerSearchFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		s.metrics.IncrementCounter(MetricCustomerSearchRequest, map[string]string{"status": "error"})
		return nil, apperrors.WrapDatabaseError(err)
	}

	ids := make([]uint, 0)
	for i := range customers {
		if customers[i].Matches(term) {
			ids = append(ids, customers[i].ID)
		}
	}

	s.logger.LogCustomerSearchCompleted(ctx, len(ids), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter(MetricCustomerSearchRequest, map[string]string{"status": "success"})

	return ids, nil
}

// LastAssignedID returns the highest id ever handed out, 0 for a fresh store
func (s *CustomerService) LastAssignedID(ctx context.Context) (uint, error) {
	last, err := s.customerRepo.LastAssignedID()
	if err != nil {
		return 0, apperrors.WrapDatabaseError(err)
	}
	return last, nil
}

// NextID returns the id the next created customer will receive
func (s *CustomerService) NextID(ctx context.Context) (uint, error) {
	last, err := s.LastAssignedID(ctx)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

func (s *CustomerService) getCustomer(id uint) (*models.Customer, error) {
	// ids start at 1 so 0 never names a stored row
	if id == 0 {
		return nil, apperrors.NewNotFoundError(id)
	}

	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.NewNotFoundError(id)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}
	return customer, nil
}

func (s *CustomerService) validateRequest(ctx context.Context, operation string, req *dto.CustomerRequest) error {
	if req == nil {
		return apperrors.New(apperrors.ValidationGeneral, "request: is required")
	}
	req.Normalize()

	fieldErrors, err := s.validator.ValidateStruct(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ValidationGeneral, err)
	}
	if fieldErrors == nil {
		return nil
	}

	validationErr := apperrors.NewValidationError(fieldErrors)
	s.logger.LogValidationFailure(ctx, operation, validationErr.Error())
	s.metrics.IncrementCounter(MetricValidationFailure, map[string]string{"operation": operation})
	return validationErr
}

// changedFields lists the columns whose value differs between before and after
func changedFields(before, after *models.Customer) []string {
	var fields []string
	if before.FirstName != after.FirstName {
		fields = append(fields, "first_name")
	}
	if before.LastName != after.LastName {
		fields = append(fields, "last_name")
	}
	if before.Email != after.Email {
		fields = append(fields, "email")
	}
	if before.Phone != after.Phone {
		fields = append(fields, "phone")
	}
	if before.State != after.State {
		fields = append(fields, "state")
	}
	if !before.PurchaseAmount.Equal(after.PurchaseAmount) {
		fields = append(fields, "purchase_amount")
	}
	return fields
}
