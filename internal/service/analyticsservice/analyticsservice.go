package analyticsservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

//go:generate mockgen -source=analyticsservice.go -destination=mock_analyticsservice.go -package=analyticsservice

type TransactionRepo interface {
	ListByVendorSince(ctx context.Context, vendorID int, from, to time.Time) ([]domain.Transaction, error)
	ListByVendor(ctx context.Context, vendorID int) ([]domain.Transaction, error)
}

type VendorRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Vendor, error)
}

// Cache stores marshaled payloads; Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

var ErrVendorNotFound = errors.New("vendor not found")

const cacheTTL = time.Minute

type Service struct {
	transactionRepo TransactionRepo
	vendorRepo      VendorRepo
	cache           Cache
}

// New builds the analytics service. A nil cache disables caching entirely.
func New(transactionRepo TransactionRepo, vendorRepo VendorRepo, cache Cache) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		vendorRepo:      vendorRepo,
		cache:           cache,
	}
}

func DashboardCacheKey(vendorID int) string {
	return fmt.Sprintf("dashboard:%d", vendorID)
}

func analyticsCacheKey(vendorID, days int) string {
	return fmt.Sprintf("analytics:%d:%d", vendorID, days)
}

// Analytics aggregates the vendor's transactions over the last N days.
func (s *Service) Analytics(ctx context.Context, vendorID, days int) (*Report, error) {
	key := analyticsCacheKey(vendorID, days)
	if cached, ok := cacheGet[Report](ctx, s.cache, key); ok {
		return cached, nil
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	transactions, err := s.transactionRepo.ListByVendorSince(ctx, vendorID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch transactions for analytics", zap.Error(err))
		return nil, err
	}

	report := Aggregate(transactions, from, to)
	s.cacheSet(ctx, key, report)
	return report, nil
}

// Dashboard returns today's totals, preferring the warmed snapshot.
func (s *Service) Dashboard(ctx context.Context, vendorID int) (*Metrics, error) {
	key := DashboardCacheKey(vendorID)
	if cached, ok := cacheGet[Metrics](ctx, s.cache, key); ok {
		return cached, nil
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	transactions, err := s.transactionRepo.ListByVendorSince(ctx, vendorID, dayStart, now)
	if err != nil {
		zap.L().Error("failed to fetch transactions for dashboard", zap.Error(err))
		return nil, err
	}

	metrics := DashboardMetrics(transactions)
	s.cacheSet(ctx, key, &metrics)
	return &metrics, nil
}

// Transactions lists the vendor's transactions over the last N days.
func (s *Service) Transactions(ctx context.Context, vendorID, days int) ([]domain.Transaction, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	transactions, err := s.transactionRepo.ListByVendorSince(ctx, vendorID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func cacheGet[T any](ctx context.Context, cache Cache, key string) (*T, bool) {
	if cache == nil {
		return nil, false
	}
	raw, err := cache.Get(ctx, key)
	if err != nil {
		zap.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		zap.L().Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &value, true
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
