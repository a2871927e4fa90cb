package settlementservice

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/pg"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type PolicyRepo interface {
	GetByVendorID(ctx context.Context, vendorID int) (*domain.RewardPolicy, error)
}

type CustomerRepo interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	GetByPhoneForUpdate(ctx context.Context, phone string) (*domain.Customer, error)
	UpdateWallet(ctx context.Context, customerID int, newBalance float64) (*domain.Customer, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPolicyNotFound   = errors.New("vendor policy not found")
	ErrInvalidAmount    = errors.New("invalid bill amount")
	ErrBelowThreshold   = errors.New("bill amount below policy threshold")
)

// Result carries the figures of one settled bill.
type Result struct {
	TransactionID int
	Amount        float64
	Discount      float64
	FinalBill     float64
	PointsEarned  float64
	NewBalance    float64
}

type Service struct {
	policyRepo      PolicyRepo
	customerRepo    CustomerRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(policyRepo PolicyRepo, customerRepo CustomerRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		policyRepo:      policyRepo,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Settle applies a bill against the customer wallet under the vendor policy.
// The wallet read, wallet update and transaction insert run in one database
// transaction with the customer row locked, so concurrent settlements against
// the same customer cannot lose updates and the ledger always matches the
// wallet.
func (s *Service) Settle(ctx context.Context, vendorID int, phone string, billAmount float64) (*Result, error) {
	if math.IsNaN(billAmount) || math.IsInf(billAmount, 0) || billAmount < 0 {
		return nil, ErrInvalidAmount
	}

	policy, err := s.policyRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		zap.L().Error("failed to get vendor policy", zap.Error(err))
		return nil, err
	}
	if policy == nil {
		return nil, ErrPolicyNotFound
	}

	var result *Result
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByPhoneForUpdate(ctx, phone)
		if err != nil {
			zap.L().Error("failed to get customer", zap.Error(err))
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		if billAmount < policy.ThresholdAmount {
			return ErrBelowThreshold
		}

		// Discount is capped at both what the customer holds and what
		// the bill costs. Redeemed points are 1:1 with currency.
		discount := 0.0
		if policy.CanRedeem {
			discount = math.Min(customer.WalletBalance, billAmount)
		}
		finalBill := billAmount - discount
		pointsEarned := finalBill * policy.EarnPercentageMax / 100
		newBalance := customer.WalletBalance - discount + pointsEarned

		if _, err := s.customerRepo.UpdateWallet(ctx, customer.ID, newBalance); err != nil {
			zap.L().Error("failed to update customer wallet", zap.Error(err))
			return err
		}

		transaction := &domain.Transaction{
			VendorID:       vendorID,
			CustomerID:     customer.ID,
			Amount:         billAmount,
			PointsEarned:   pointsEarned,
			PointsRedeemed: discount,
			Timestamp:      time.Now().UTC(),
		}
		created, err := s.transactionRepo.Create(ctx, transaction)
		if err != nil {
			zap.L().Error("failed to create transaction record", zap.Error(err))
			return err
		}

		result = &Result{
			TransactionID: created.ID,
			Amount:        billAmount,
			Discount:      discount,
			FinalBill:     finalBill,
			PointsEarned:  pointsEarned,
			NewBalance:    newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("bill settled",
		zap.Int("vendor_id", vendorID),
		zap.Float64("amount", result.Amount),
		zap.Float64("discount", result.Discount),
		zap.Float64("points_earned", result.PointsEarned),
	)
	return result, nil
}

// LookupCustomer resolves a customer by phone for the point-of-sale check.
func (s *Service) LookupCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("failed to look up customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}
