package policyrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByVendorID(ctx context.Context, vendorID int) (*domain.RewardPolicy, error) {
	query := `
        SELECT id, vendor_id, threshold_amount, earn_percentage_min, earn_percentage_max, redeem_percentage, can_redeem
        FROM vendor_policies
        WHERE vendor_id = $1
    `
	var policy domain.RewardPolicy
	err := r.db.QueryRow(ctx, query, vendorID).
		Scan(&policy.ID, &policy.VendorID, &policy.ThresholdAmount, &policy.EarnPercentageMin,
			&policy.EarnPercentageMax, &policy.RedeemPercentage, &policy.CanRedeem)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vendor policy", zap.Error(err))
		return nil, err
	}
	return &policy, nil
}

func (r *Repository) Create(ctx context.Context, policy *domain.RewardPolicy) (*domain.RewardPolicy, error) {
	query := `
		INSERT INTO vendor_policies (vendor_id, threshold_amount, earn_percentage_min, earn_percentage_max, redeem_percentage, can_redeem)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, policy.VendorID, policy.ThresholdAmount, policy.EarnPercentageMin,
		policy.EarnPercentageMax, policy.RedeemPercentage, policy.CanRedeem).
		Scan(&policy.ID)
	if err != nil {
		zap.L().Error("can't save vendor policy", zap.Error(err))
		return nil, err
	}
	return policy, nil
}
