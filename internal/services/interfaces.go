package services

import (
	"context"
	"time"

	"cdms/internal/dto"
	"cdms/internal/models"
)

// CustomerServiceInterface defines the record store operations
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, req *dto.CustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, req *dto.CustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListCustomersByState(ctx context.Context, state string) ([]models.Customer, error)
	SearchCustomers(ctx context.Context, term string) ([]uint, error)
	LastAssignedID(ctx context.Context) (uint, error)
	NextID(ctx context.Context) (uint, error)
}

// SegmentationServiceInterface defines the per-region aggregate and
// value-segment operations
type SegmentationServiceInterface interface {
	GetRegionStats(ctx context.Context, state string) (*models.RegionStats, error)
	GetSegments(ctx context.Context, state string) ([]*models.SegmentResult, error)
	Strategy() string
}

// CustomerSeederInterface fills the store with generated customers
type CustomerSeederInterface interface {
	Seed(ctx context.Context, count int) ([]*models.Customer, error)
}

type CustomerLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID uint, email string)
	LogCustomerUpdated(ctx context.Context, customerID uint, updatedFields []string)
	LogCustomerDeleted(ctx context.Context, customerID uint)
	LogCustomerSearchCompleted(ctx context.Context, resultsCount int, durationMs int64)
	LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogSegmentsComputed(ctx context.Context, state, strategy string, customers int, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
