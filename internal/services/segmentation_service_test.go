package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"cdms/internal/config"
	"cdms/internal/database"
	"cdms/internal/dto"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"
	"cdms/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SegmentationServiceTestSuite runs the segmentation engine against a real
// in-memory store
type SegmentationServiceTestSuite struct {
	suite.Suite
	db        *database.DB
	customers CustomerServiceInterface
	window    SegmentationServiceInterface
	memory    SegmentationServiceInterface
	metrics   *PrometheusMetrics
	ctx       context.Context
}

func (s *SegmentationServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewCustomerRepository(s.db.DB)
	logger := NewCustomerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	s.customers = NewCustomerService(repo, logger, s.metrics)

	var err error
	s.window, err = NewSegmentationService(repo, config.SegmentStrategyWindow, logger, s.metrics)
	s.Require().NoError(err)
	s.memory, err = NewSegmentationService(repo, config.SegmentStrategyMemory, logger, s.metrics)
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func TestSegmentationServiceSuite(t *testing.T) {
	suite.Run(t, new(SegmentationServiceTestSuite))
}

func (s *SegmentationServiceTestSuite) addCustomer(first, state, amount string) *models.Customer {
	c, err := s.customers.CreateCustomer(s.ctx, &dto.CustomerRequest{
		FirstName:      first,
		LastName:       "Shopper",
		Email:          first + "@example.com",
		Phone:          "5550001111",
		State:          state,
		PurchaseAmount: amount,
	})
	s.Require().NoError(err)
	return c
}

func categories(results []*models.SegmentResult) []models.SegmentCategory {
	out := make([]models.SegmentCategory, 0, len(results))
	for _, r := range results {
		out = append(out, r.Category)
	}
	return out
}

func (s *SegmentationServiceTestSuite) TestGetSegments_EightCustomers() {
	for i := 1; i <= 8; i++ {
		s.addCustomer(fmt.Sprintf("ca%d", i), "CA", fmt.Sprintf("%d", i*100))
	}
	s.addCustomer("nv", "NV", "99999")

	for _, svc := range []SegmentationServiceInterface{s.window, s.memory} {
		results, err := svc.GetSegments(s.ctx, "CA")
		s.Require().NoError(err, svc.Strategy())
		s.Require().Len(results, 8)

		s.Equal([]models.SegmentCategory{
			models.SegmentHighValue, models.SegmentHighValue,
			models.SegmentMediumValue, models.SegmentMediumValue,
			models.SegmentMediumValue, models.SegmentMediumValue,
			models.SegmentLowValue, models.SegmentLowValue,
		}, categories(results), svc.Strategy())

		for i := 1; i < len(results); i++ {
			s.True(results[i-1].PurchaseAmount.GreaterThanOrEqual(results[i].PurchaseAmount))
		}
		s.Equal("ca8 Shopper", results[0].FullName)
		s.Equal("CA", results[7].State)
	}

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.segmentRequests.WithLabelValues("window")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.segmentRequests.WithLabelValues("memory")))
}

func (s *SegmentationServiceTestSuite) TestGetSegments_StrategiesAgree() {
	amounts := []string{"50", "50", "75.25", "10", "300", "300", "1", "0", "42.42", "75.25", "5000"}
	for i, amount := range amounts {
		s.addCustomer(fmt.Sprintf("tx%d", i), "TX", amount)
	}

	for n := 0; n < len(amounts); n++ {
		fromWindow, err := s.window.GetSegments(s.ctx, "TX")
		s.Require().NoError(err)
		fromMemory, err := s.memory.GetSegments(s.ctx, "TX")
		s.Require().NoError(err)

		s.Require().Len(fromMemory, len(fromWindow))
		for i := range fromWindow {
			s.Equal(fromWindow[i].ID, fromMemory[i].ID)
			s.Equal(fromWindow[i].Category, fromMemory[i].Category)
		}

		all, err := s.customers.ListCustomersByState(s.ctx, "TX")
		s.Require().NoError(err)
		if len(all) == 0 {
			break
		}
		s.Require().NoError(s.customers.DeleteCustomer(s.ctx, all[len(all)-1].ID))
	}
}

func (s *SegmentationServiceTestSuite) TestGetSegments_SmallRegions() {
	s.addCustomer("solo", "WA", "10")

	results, err := s.memory.GetSegments(s.ctx, "WA")
	s.Require().NoError(err)
	s.Equal([]models.SegmentCategory{models.SegmentHighValue}, categories(results))

	s.addCustomer("duo", "WA", "5")
	s.addCustomer("trio", "WA", "1")
	results, err = s.window.GetSegments(s.ctx, "WA")
	s.Require().NoError(err)
	s.Equal([]models.SegmentCategory{
		models.SegmentHighValue, models.SegmentMediumValue, models.SegmentMediumValue,
	}, categories(results))
}

func (s *SegmentationServiceTestSuite) TestGetSegments_UnknownRegion() {
	s.addCustomer("ann", "CA", "10")

	results, err := s.window.GetSegments(s.ctx, "ZZ")

	s.Require().NoError(err)
	s.Empty(results)
}

func (s *SegmentationServiceTestSuite) TestGetSegments_EmptyRegion() {
	_, err := s.memory.GetSegments(s.ctx, "")

	s.Equal(apperrors.SegmentInvalidRegion, apperrors.CodeOf(err))
}

func (s *SegmentationServiceTestSuite) TestGetRegionStats() {
	s.addCustomer("a", "CA", "100")
	s.addCustomer("b", "CA", "200")
	s.addCustomer("c", "CA", "300")
	s.addCustomer("d", "ca", "1000")

	stats, err := s.window.GetRegionStats(s.ctx, "CA")

	s.Require().NoError(err)
	s.Equal(int64(3), stats.Count)
	s.Equal("200.00", stats.AveragePurchase.StringFixed(2))
}

func (s *SegmentationServiceTestSuite) TestGetRegionStats_RoundsHalfAwayFromZero() {
	s.addCustomer("a", "OR", "0.01")
	s.addCustomer("b", "OR", "0.02")

	stats, err := s.memory.GetRegionStats(s.ctx, "OR")

	s.Require().NoError(err)
	s.Equal("0.02", stats.AveragePurchase.StringFixed(2))
}

func (s *SegmentationServiceTestSuite) TestGetRegionStats_UnknownRegion() {
	stats, err := s.memory.GetRegionStats(s.ctx, "ZZ")

	s.Require().NoError(err)
	s.Equal(int64(0), stats.Count)
	s.True(stats.AveragePurchase.IsZero())
}

func (s *SegmentationServiceTestSuite) TestGetRegionStats_EmptyRegion() {
	_, err := s.memory.GetRegionStats(s.ctx, " ")

	s.Equal(apperrors.SegmentInvalidRegion, apperrors.CodeOf(err))
}

type stubProber struct {
	ok  bool
	err error
}

func (p stubProber) SupportsWindowFunctions() (bool, error) {
	return p.ok, p.err
}

func TestResolveStrategy(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		prober     WindowFunctionProber
		want       string
		wantCode   apperrors.ErrorCode
	}{
		{"explicit window", "window", stubProber{ok: false}, config.SegmentStrategyWindow, ""},
		{"explicit memory", "MEMORY", stubProber{ok: true}, config.SegmentStrategyMemory, ""},
		{"auto with support", "auto", stubProber{ok: true}, config.SegmentStrategyWindow, ""},
		{"auto without support", "auto", stubProber{ok: false}, config.SegmentStrategyMemory, ""},
		{"empty means auto", "", stubProber{ok: true}, config.SegmentStrategyWindow, ""},
		{"auto without prober", "auto", nil, config.SegmentStrategyMemory, ""},
		{"probe failure", "auto", stubProber{err: errors.New("closed")}, "", apperrors.SystemDatabaseError},
		{"unknown", "fastest", nil, "", apperrors.SegmentInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStrategy(tt.configured, tt.prober)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStrategy_RealStore(t *testing.T) {
	db := database.SetupTestDB(t)

	got, err := ResolveStrategy(config.SegmentStrategyAuto, db)

	require.NoError(t, err)
	assert.Equal(t, config.SegmentStrategyWindow, got)
}

func TestNewSegmentationService_RejectsUnresolvedStrategy(t *testing.T) {
	_, err := NewSegmentationService(nil, config.SegmentStrategyAuto, nil, nil)

	assert.Equal(t, apperrors.SegmentInvalidStrategy, apperrors.CodeOf(err))
}
