package service

import (
	"github.com/chaitanyakumarcodes/urs-web/internal/cache"
	"github.com/chaitanyakumarcodes/urs-web/internal/handlers/analytics"
	"github.com/chaitanyakumarcodes/urs-web/internal/handlers/auth"
	"github.com/chaitanyakumarcodes/urs-web/internal/handlers/settlement"

	pkgauth "github.com/chaitanyakumarcodes/urs-web/pkg/auth"

	"github.com/chaitanyakumarcodes/urs-web/internal/pg"
	"github.com/chaitanyakumarcodes/urs-web/internal/repo"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/analyticsservice"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/authservice"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/settlementservice"
)

type Services struct {
	AuthService       auth.Service
	SettlementService settlement.Service
	AnalyticsService  analytics.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, redisCache *cache.Redis) *Services {
	// A typed nil must not leak into the interface, or the cache looks
	// configured when it is not.
	var analyticsCache analyticsservice.Cache
	if redisCache != nil {
		analyticsCache = redisCache
	}

	authService := authservice.New(repo.VendorRepo, repo.PolicyRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})
	settlementService := settlementservice.New(repo.PolicyRepo, repo.CustomerRepo, repo.TransactionRepo, txManager)
	analyticsService := analyticsservice.New(repo.TransactionRepo, repo.VendorRepo, analyticsCache)

	return &Services{
		AuthService:       authService,
		SettlementService: settlementService,
		AnalyticsService:  analyticsService,
	}
}
