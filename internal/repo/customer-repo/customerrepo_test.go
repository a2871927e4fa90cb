package customerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var customerRowColumns = []string{"id", "name", "email", "phone", "wallet_balance", "created_at", "updated_at"}

func TestRepository_GetByPhone(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name      string
		phone     string
		mockSetup func()
		expectErr bool
		result    *domain.Customer
	}{
		{
			name:  "Customer found",
			phone: "9876543210",
			mockSetup: func() {
				rows := pgxmock.NewRows(customerRowColumns).
					AddRow(7, "Alice Johnson", "alice@example.com", "9876543210", 500.0, now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+customerColumns+" FROM customers WHERE phone = $1")).
					WithArgs("9876543210").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Customer{
				ID:            7,
				Name:          "Alice Johnson",
				Email:         "alice@example.com",
				Phone:         "9876543210",
				WalletBalance: 500,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		{
			name:  "Customer not found",
			phone: "0000000000",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+customerColumns+" FROM customers WHERE phone = $1")).
					WithArgs("0000000000").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			phone: "9876543210",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+customerColumns+" FROM customers WHERE phone = $1")).
					WithArgs("9876543210").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByPhone(context.Background(), tt.phone)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetByPhoneForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	t.Run("Row locked and returned", func(t *testing.T) {
		rows := pgxmock.NewRows(customerRowColumns).
			AddRow(7, "Alice Johnson", "alice@example.com", "9876543210", 500.0, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT "+customerColumns+" FROM customers WHERE phone = $1 FOR UPDATE")).
			WithArgs("9876543210").
			WillReturnRows(rows)

		result, err := repo.GetByPhoneForUpdate(context.Background(), "9876543210")
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
		assert.Equal(t, 500.0, result.WalletBalance)
	})

	t.Run("Customer not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT "+customerColumns+" FROM customers WHERE phone = $1 FOR UPDATE")).
			WithArgs("0000000000").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.GetByPhoneForUpdate(context.Background(), "0000000000")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_UpdateWallet(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name       string
		customerID int
		newBalance float64
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Wallet updated",
			customerID: 7,
			newBalance: 75.0,
			mockSetup: func() {
				rows := pgxmock.NewRows(customerRowColumns).
					AddRow(7, "Alice Johnson", "alice@example.com", "9876543210", 75.0, now, now)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE customers SET wallet_balance = $1, updated_at = NOW() WHERE id = $2 RETURNING "+customerColumns)).
					WithArgs(75.0, 7).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:       "Database error",
			customerID: 7,
			newBalance: 75.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE customers SET wallet_balance = $1, updated_at = NOW() WHERE id = $2 RETURNING "+customerColumns)).
					WithArgs(75.0, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateWallet(context.Background(), tt.customerID, tt.newBalance)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.newBalance, result.WalletBalance)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	t.Run("Create customer successfully", func(t *testing.T) {
		customer := &domain.Customer{
			Name:          "Alice Johnson",
			Email:         "alice@example.com",
			Phone:         "9876543210",
			WalletBalance: 500,
		}
		rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (name, email, phone, wallet_balance) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at")).
			WithArgs("Alice Johnson", "alice@example.com", "9876543210", 500.0).
			WillReturnRows(rows)

		result, err := repo.Create(context.Background(), customer)
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
		assert.Equal(t, now, result.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (name, email, phone, wallet_balance) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at")).
			WithArgs("Alice Johnson", "alice@example.com", "9876543210", 500.0).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), &domain.Customer{
			Name: "Alice Johnson", Email: "alice@example.com", Phone: "9876543210", WalletBalance: 500,
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
