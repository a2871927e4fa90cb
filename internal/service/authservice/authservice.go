package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/pg"
	"github.com/chaitanyakumarcodes/urs-web/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type VendorRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	GetByID(ctx context.Context, id int) (*domain.Vendor, error)
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	ListActiveIDs(ctx context.Context) ([]int, error)
}

type PolicyRepo interface {
	GetByVendorID(ctx context.Context, vendorID int) (*domain.RewardPolicy, error)
	Create(ctx context.Context, policy *domain.RewardPolicy) (*domain.RewardPolicy, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	vendorRepo  VendorRepo
	policyRepo  PolicyRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(vendorRepo VendorRepo, policyRepo PolicyRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		vendorRepo:  vendorRepo,
		policyRepo:  policyRepo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the vendor together with its reward policy. Both inserts
// run in one transaction: a vendor row without a policy row never commits.
func (s *Service) Register(ctx context.Context, name, email, password, vendorType string) (*domain.Vendor, error) {
	policy, err := ClassToPolicy(vendorType)
	if err != nil {
		return nil, err
	}

	existing, err := s.vendorRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find vendor: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("vendor already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	vendor := &domain.Vendor{
		Name:               name,
		Email:              email,
		PasswordHash:       hashedPassword,
		VendorType:         vendorType,
		SubscriptionStatus: true,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.vendorRepo.Create(ctx, vendor); err != nil {
			zap.L().Error("can't create vendor: ", zap.Error(err))
			return err
		}
		policy.VendorID = vendor.ID
		if _, err := s.policyRepo.Create(ctx, policy); err != nil {
			zap.L().Error("can't create vendor policy: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("vendor successfully registered", zap.String("email", email), zap.String("type", vendorType))
	return vendor, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindByEmail(ctx, email)
	if err != nil || vendor == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(vendor.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials")
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("vendor successfully authenticated", zap.String("email", email))
	return vendor, nil
}

func (s *Service) GenerateToken(vendorID int) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(vendorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
