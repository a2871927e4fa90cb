// Package snapshot keeps per-vendor dashboard metrics warm in the cache so
// the dashboard endpoint rarely has to aggregate on the request path.
package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chaitanyakumarcodes/urs-web/internal/config"
	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/analyticsservice"
)

//go:generate mockgen -source=snapshot.go -destination=mock_snapshot.go -package=snapshot

type VendorRepo interface {
	ListActiveIDs(ctx context.Context) ([]int, error)
}

type TransactionRepo interface {
	ListByVendorSince(ctx context.Context, vendorID int, from, to time.Time) ([]domain.Transaction, error)
}

type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Service struct {
	vendorRepo      VendorRepo
	transactionRepo TransactionRepo
	cache           Cache
	workerPool      WorkerPoolI
	interval        time.Duration
}

func New(cfg *config.Config, vendorRepo VendorRepo, transactionRepo TransactionRepo, cache Cache) *Service {
	return &Service{
		vendorRepo:      vendorRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		workerPool:      NewWorkerPool(10),
		interval:        time.Duration(cfg.SnapshotInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Snapshot service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping snapshot service")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Service) refresh(ctx context.Context) {
	vendorIDs, err := s.vendorRepo.ListActiveIDs(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch vendors for snapshot", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, vendorID := range vendorIDs {
		vendorID := vendorID
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.warmVendor(ctx, vendorID)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error warming dashboard snapshots", zap.Error(err))
	}
}

func (s *Service) warmVendor(ctx context.Context, vendorID int) error {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	transactions, err := s.transactionRepo.ListByVendorSince(ctx, vendorID, dayStart, now)
	if err != nil {
		return err
	}

	metrics := analyticsservice.DashboardMetrics(transactions)
	raw, err := json.Marshal(metrics)
	if err != nil {
		return err
	}

	// TTL of two intervals, so a skipped refresh falls back to the
	// request-path computation instead of serving stale figures.
	return s.cache.Set(ctx, analyticsservice.DashboardCacheKey(vendorID), raw, 2*s.interval)
}
