package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cdms/internal/config"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"
	"cdms/internal/repositories"

	"github.com/shopspring/decimal"
)

// WindowFunctionProber reports whether the store can evaluate SQL window
// functions
type WindowFunctionProber interface {
	SupportsWindowFunctions() (bool, error)
}

// ResolveStrategy turns the configured segmentation strategy into the one
// that will run. "auto" becomes "window" when the prober reports window
// function support and "memory" otherwise.
func ResolveStrategy(configured string, prober WindowFunctionProber) (string, error) {
	switch strings.ToLower(strings.TrimSpace(configured)) {
	case config.SegmentStrategyWindow:
		return config.SegmentStrategyWindow, nil
	case config.SegmentStrategyMemory:
		return config.SegmentStrategyMemory, nil
	case config.SegmentStrategyAuto, "":
		if prober == nil {
			return config.SegmentStrategyMemory, nil
		}
		ok, err := prober.SupportsWindowFunctions()
		if err != nil {
			return "", apperrors.WrapDatabaseError(err)
		}
		if ok {
			return config.SegmentStrategyWindow, nil
		}
		return config.SegmentStrategyMemory, nil
	default:
		return "", apperrors.New(apperrors.SegmentInvalidStrategy, fmt.Sprintf("strategy: %q", configured))
	}
}

// SegmentationService computes region statistics and the four-way value
// segmentation of a region's customers
type SegmentationService struct {
	customerRepo repositories.CustomerRepositoryInterface
	strategy     string
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewSegmentationService creates a segmentation service running the given
// resolved strategy ("window" or "memory")
func NewSegmentationService(customerRepo repositories.CustomerRepositoryInterface, strategy string, logger CustomerLoggerInterface, metrics MetricsRecorderInterface) (SegmentationServiceInterface, error) {
	if strategy != config.SegmentStrategyWindow && strategy != config.SegmentStrategyMemory {
		return nil, apperrors.New(apperrors.SegmentInvalidStrategy, fmt.Sprintf("strategy: %q", strategy))
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &SegmentationService{
		customerRepo: customerRepo,
		strategy:     strategy,
		logger:       logger,
		metrics:      metrics,
	}, nil
}

func (s *SegmentationService) Strategy() string {
	return s.strategy
}

// GetRegionStats counts the customers of state and averages their purchase
// amounts, rounded half away from zero to two places. An unknown region
// yields a zero count and a zero average.
func (s *SegmentationService) GetRegionStats(ctx context.Context, state string) (*models.RegionStats, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("stats", time.Since(start)) }()

	if strings.TrimSpace(state) == "" {
		return nil, apperrors.New(apperrors.SegmentInvalidRegion, "state: is required")
	}

	customers, err := s.customerRepo.ListByState(state)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	stats := &models.RegionStats{
		State:           state,
		Count:           int64(len(customers)),
		AveragePurchase: decimal.Zero,
	}
	if len(customers) == 0 {
		return stats, nil
	}

	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.PurchaseAmount)
	}
	stats.AveragePurchase = total.Div(decimal.NewFromInt(stats.Count)).Round(2)

	return stats, nil
}

// GetSegments classifies every customer of state as High, Medium or Low
// Value by purchase quartile. Results are ordered by purchase amount,
// highest first.
func (s *SegmentationService) GetSegments(ctx context.Context, state string) ([]*models.SegmentResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("segments", time.Since(start)) }()

	if strings.TrimSpace(state) == "" {
		return nil, apperrors.New(apperrors.SegmentInvalidRegion, "state: is required")
	}

	var ranked []models.RankedCustomer
	switch s.strategy {
	case config.SegmentStrategyWindow:
		rows, err := s.customerRepo.RankByState(state, models.SegmentBuckets)
		if err != nil {
			return nil, apperrors.WrapDatabaseError(err)
		}
		ranked = rows
	default:
		customers, err := s.customerRepo.ListByState(state)
		if err != nil {
			return nil, apperrors.WrapDatabaseError(err)
		}
		ranked = RankCustomers(customers, models.SegmentBuckets)
	}

	results := toSegmentResults(ranked)

	s.metrics.IncrementCounter(MetricSegmentRequest, map[string]string{"strategy": s.strategy})
	s.logger.LogSegmentsComputed(ctx, state, s.strategy, len(results), time.Since(start).Milliseconds())

	return results, nil
}
