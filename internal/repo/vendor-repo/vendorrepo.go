package vendorrepo

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	query := `
        SELECT id, name, email, password_hash, vendor_type, subscription_status
        FROM vendors
        WHERE email = $1
    `
	var vendor domain.Vendor
	err := r.db.QueryRow(ctx, query, email).
		Scan(&vendor.ID, &vendor.Name, &vendor.Email, &vendor.PasswordHash, &vendor.VendorType, &vendor.SubscriptionStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vendor by email", zap.Error(err))
		return nil, err
	}
	return &vendor, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Vendor, error) {
	query := `
        SELECT id, name, email, password_hash, vendor_type, subscription_status
        FROM vendors
        WHERE id = $1
    `
	var vendor domain.Vendor
	err := r.db.QueryRow(ctx, query, id).
		Scan(&vendor.ID, &vendor.Name, &vendor.Email, &vendor.PasswordHash, &vendor.VendorType, &vendor.SubscriptionStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vendor by id", zap.Error(err))
		return nil, err
	}
	return &vendor, nil
}

func (r *Repository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (name, email, password_hash, vendor_type, subscription_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, vendor.Name, vendor.Email, vendor.PasswordHash, vendor.VendorType, vendor.SubscriptionStatus).
		Scan(&vendor.ID)
	if err != nil {
		zap.L().Error("can't save vendor", zap.Error(err))
		return nil, err
	}
	return vendor, nil
}

func (r *Repository) ListActiveIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM vendors
        WHERE subscription_status = TRUE
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch active vendors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan vendor id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
