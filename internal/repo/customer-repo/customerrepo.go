package customerrepo

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

const customerColumns = "id, name, email, phone, wallet_balance, created_at, updated_at"

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE phone = $1
    `
	return r.scanCustomer(r.db.QueryRow(ctx, query, phone))
}

// GetByPhoneForUpdate locks the customer row for the rest of the enclosing
// transaction. Concurrent settlements against one customer serialize here.
func (r *Repository) GetByPhoneForUpdate(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE phone = $1
        FOR UPDATE
    `
	return r.scanCustomer(r.db.QueryRow(ctx, query, phone))
}

func (r *Repository) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.WalletBalance, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

func (r *Repository) UpdateWallet(ctx context.Context, customerID int, newBalance float64) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET wallet_balance = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + customerColumns + `
	`
	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, newBalance, customerID).
		Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
			&customer.WalletBalance, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to update customer wallet", zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, email, phone, wallet_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, customer.Name, customer.Email, customer.Phone, customer.WalletBalance).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}
