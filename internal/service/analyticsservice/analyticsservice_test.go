package analyticsservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo, *MockVendorRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	transactionRepo := NewMockTransactionRepo(ctrl)
	vendorRepo := NewMockVendorRepo(ctrl)
	cache := NewMockCache(ctrl)

	service := New(transactionRepo, vendorRepo, cache)
	defer ctrl.Finish()
	return service, transactionRepo, vendorRepo, cache
}

func TestAnalytics(t *testing.T) {
	t.Run("Cache miss aggregates from the store and fills the cache", func(t *testing.T) {
		service, transactionRepo, _, cache := NewMock(t)

		cache.EXPECT().Get(gomock.Any(), "analytics:1:7").Return(nil, nil)
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return([]domain.Transaction{
				{ID: 1, CustomerID: 7, Amount: 500, PointsEarned: 75, PointsRedeemed: 0, Timestamp: time.Now().UTC()},
			}, nil)
		cache.EXPECT().Set(gomock.Any(), "analytics:1:7", gomock.Any(), cacheTTL).Return(nil)

		report, err := service.Analytics(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.UniqueCustomers)
		assert.Equal(t, 75.0, report.PointsMetrics.TotalEarned)
		assert.Equal(t, 500.0, report.AvgTransaction)
	})

	t.Run("Cache hit skips the store", func(t *testing.T) {
		service, _, _, cache := NewMock(t)

		cached := &Report{
			DailySales:      map[string]float64{"2024-01-01": 500},
			UniqueCustomers: 3,
			AvgTransaction:  166.67,
		}
		raw, err := json.Marshal(cached)
		assert.NoError(t, err)
		cache.EXPECT().Get(gomock.Any(), "analytics:1:7").Return(raw, nil)

		report, err := service.Analytics(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, cached, report)
	})

	t.Run("Corrupt cache payload falls back to the store", func(t *testing.T) {
		service, transactionRepo, _, cache := NewMock(t)

		cache.EXPECT().Get(gomock.Any(), "analytics:1:7").Return([]byte("{not json"), nil)
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), "analytics:1:7", gomock.Any(), cacheTTL).Return(nil)

		report, err := service.Analytics(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.UniqueCustomers)
	})

	t.Run("Store failure", func(t *testing.T) {
		service, transactionRepo, _, cache := NewMock(t)

		cache.EXPECT().Get(gomock.Any(), "analytics:1:7").Return(nil, nil)
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		report, err := service.Analytics(context.Background(), 1, 7)
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Nil cache disables caching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactionRepo := NewMockTransactionRepo(ctrl)
		service := New(transactionRepo, NewMockVendorRepo(ctrl), nil)

		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := service.Analytics(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.NotNil(t, report)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("Warmed snapshot served from cache", func(t *testing.T) {
		service, _, _, cache := NewMock(t)

		cached := &Metrics{TotalSales: 1500, PointsIssued: 120, PointsRedeemed: 50}
		raw, err := json.Marshal(cached)
		assert.NoError(t, err)
		cache.EXPECT().Get(gomock.Any(), "dashboard:1").Return(raw, nil)

		metrics, err := service.Dashboard(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, cached, metrics)
	})

	t.Run("Cache miss sums today's transactions", func(t *testing.T) {
		service, transactionRepo, _, cache := NewMock(t)

		cache.EXPECT().Get(gomock.Any(), "dashboard:1").Return(nil, nil)
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, from, to time.Time) ([]domain.Transaction, error) {
				assert.Equal(t, 0, from.Hour())
				assert.Equal(t, 0, from.Minute())
				assert.True(t, to.After(from) || to.Equal(from))
				return []domain.Transaction{
					{Amount: 1000, PointsEarned: 75, PointsRedeemed: 500},
					{Amount: 500, PointsEarned: 50, PointsRedeemed: 0},
				}, nil
			})
		cache.EXPECT().Set(gomock.Any(), "dashboard:1", gomock.Any(), cacheTTL).Return(nil)

		metrics, err := service.Dashboard(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &Metrics{TotalSales: 1500, PointsIssued: 125, PointsRedeemed: 500}, metrics)
	})

	t.Run("Cache read failure falls back to the store", func(t *testing.T) {
		service, transactionRepo, _, cache := NewMock(t)

		cache.EXPECT().Get(gomock.Any(), "dashboard:1").Return(nil, errors.New("redis down"))
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), "dashboard:1", gomock.Any(), cacheTTL).Return(errors.New("redis down"))

		metrics, err := service.Dashboard(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &Metrics{}, metrics)
	})
}

func TestTransactions(t *testing.T) {
	t.Run("Window bounds passed to the store", func(t *testing.T) {
		service, transactionRepo, _, _ := NewMock(t)

		expected := []domain.Transaction{{ID: 1, Amount: 500}}
		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, from, to time.Time) ([]domain.Transaction, error) {
				assert.InDelta(t, 7*24*time.Hour, to.Sub(from), float64(time.Minute))
				return expected, nil
			})

		transactions, err := service.Transactions(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, expected, transactions)
	})

	t.Run("Store failure", func(t *testing.T) {
		service, transactionRepo, _, _ := NewMock(t)

		transactionRepo.EXPECT().
			ListByVendorSince(gomock.Any(), 1, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		transactions, err := service.Transactions(context.Background(), 1, 7)
		assert.Error(t, err)
		assert.Nil(t, transactions)
	})
}
