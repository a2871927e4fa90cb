package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var transactionRowColumns = []string{"id", "vendor_id", "customer_id", "amount", "points_earned", "points_redeemed", "timestamp"}

const transactionQuery = "SELECT id, vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp FROM transactions"

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name        string
		transaction *domain.Transaction
		mockSetup   func()
		expectErr   bool
	}{
		{
			name: "Create transaction successfully",
			transaction: &domain.Transaction{
				VendorID:       1,
				CustomerID:     7,
				Amount:         1000,
				PointsEarned:   75,
				PointsRedeemed: 500,
				Timestamp:      now,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(42)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
					WithArgs(1, 7, 1000.0, 75.0, 500.0, now).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			transaction: &domain.Transaction{
				VendorID:   1,
				CustomerID: 7,
				Amount:     1000,
				Timestamp:  now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (vendor_id, customer_id, amount, points_earned, points_redeemed, timestamp) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
					WithArgs(1, 7, 1000.0, 0.0, 0.0, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.transaction)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, result.ID)
			}
		})
	}
}

func TestRepository_ListByVendorSince(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Transactions in window",
			mockSetup: func() {
				rows := pgxmock.NewRows(transactionRowColumns).
					AddRow(1, 1, 7, 1000.0, 75.0, 500.0, from.Add(2*time.Hour)).
					AddRow(2, 1, 8, 400.0, 60.0, 0.0, from.Add(26*time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 AND timestamp >= $2 AND timestamp <= $3 ORDER BY timestamp")).
					WithArgs(1, from, to).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  2,
		},
		{
			name: "Empty window",
			mockSetup: func() {
				rows := pgxmock.NewRows(transactionRowColumns)
				mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 AND timestamp >= $2 AND timestamp <= $3 ORDER BY timestamp")).
					WithArgs(1, from, to).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 AND timestamp >= $2 AND timestamp <= $3 ORDER BY timestamp")).
					WithArgs(1, from, to).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByVendorSince(context.Background(), 1, from, to)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expected)
			}
		})
	}
}

func TestRepository_ListByVendor(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	t.Run("Full history", func(t *testing.T) {
		rows := pgxmock.NewRows(transactionRowColumns).
			AddRow(1, 1, 7, 1000.0, 75.0, 500.0, now.Add(-48*time.Hour)).
			AddRow(2, 1, 7, 950.0, 142.5, 50.0, now)
		mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 ORDER BY timestamp")).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.ListByVendor(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, domain.Transaction{
			ID: 1, VendorID: 1, CustomerID: 7, Amount: 1000, PointsEarned: 75, PointsRedeemed: 500, Timestamp: now.Add(-48 * time.Hour),
		}, result[0])
	})

	t.Run("Scan error on malformed row", func(t *testing.T) {
		rows := pgxmock.NewRows(transactionRowColumns).
			AddRow("bad", 1, 7, 1000.0, 75.0, 500.0, now)
		mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 ORDER BY timestamp")).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.ListByVendor(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(transactionQuery + " WHERE vendor_id = $1 ORDER BY timestamp")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		result, err := repo.ListByVendor(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
