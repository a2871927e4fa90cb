package transactionrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, transaction.VendorID, transaction.CustomerID, transaction.Amount,
		transaction.PointsEarned, transaction.PointsRedeemed, transaction.Timestamp).
		Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) ListByVendorSince(ctx context.Context, vendorID int, from, to time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT id, vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp
        FROM transactions
        WHERE vendor_id = $1 AND timestamp >= $2 AND timestamp <= $3
        ORDER BY timestamp
    `
	rows, err := r.db.Query(ctx, query, vendorID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return scanTransactions(rows)
}

func (r *Repository) ListByVendor(ctx context.Context, vendorID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp
        FROM transactions
        WHERE vendor_id = $1
        ORDER BY timestamp
    `
	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.VendorID, &t.CustomerID, &t.Amount, &t.PointsEarned, &t.PointsRedeemed, &t.Timestamp)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
