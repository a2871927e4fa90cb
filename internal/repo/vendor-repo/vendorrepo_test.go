package vendorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

const vendorQuery = "SELECT id, name, email, password_hash, vendor_type, subscription_status FROM vendors"

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.Vendor
	}{
		{
			name:  "Vendor found",
			email: "owner@chaipoint.in",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "vendor_type", "subscription_status"}).
					AddRow(1, "Chai Point", "owner@chaipoint.in", "hashed_password", "medium", true)
				mock.ExpectQuery(regexp.QuoteMeta(vendorQuery + " WHERE email = $1")).
					WithArgs("owner@chaipoint.in").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Vendor{
				ID:                 1,
				Name:               "Chai Point",
				Email:              "owner@chaipoint.in",
				PasswordHash:       "hashed_password",
				VendorType:         "medium",
				SubscriptionStatus: true,
			},
		},
		{
			name:  "Vendor not found",
			email: "stranger@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(vendorQuery + " WHERE email = $1")).
					WithArgs("stranger@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "owner@chaipoint.in",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(vendorQuery + " WHERE email = $1")).
					WithArgs("owner@chaipoint.in").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Vendor
	}{
		{
			name: "Vendor found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "vendor_type", "subscription_status"}).
					AddRow(1, "Chai Point", "owner@chaipoint.in", "hashed_password", "medium", true)
				mock.ExpectQuery(regexp.QuoteMeta(vendorQuery + " WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Vendor{
				ID:                 1,
				Name:               "Chai Point",
				Email:              "owner@chaipoint.in",
				PasswordHash:       "hashed_password",
				VendorType:         "medium",
				SubscriptionStatus: true,
			},
		},
		{
			name: "Vendor not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(vendorQuery + " WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		vendor    *domain.Vendor
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create vendor successfully",
			vendor: &domain.Vendor{
				Name:               "Chai Point",
				Email:              "owner@chaipoint.in",
				PasswordHash:       "hashed_password",
				VendorType:         "medium",
				SubscriptionStatus: true,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vendors (name, email, password_hash, vendor_type, subscription_status) VALUES ($1, $2, $3, $4, $5) RETURNING id")).
					WithArgs("Chai Point", "owner@chaipoint.in", "hashed_password", "medium", true).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			vendor: &domain.Vendor{
				Name:  "Chai Point",
				Email: "owner@chaipoint.in",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vendors (name, email, password_hash, vendor_type, subscription_status) VALUES ($1, $2, $3, $4, $5) RETURNING id")).
					WithArgs("Chai Point", "owner@chaipoint.in", "", "", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.vendor)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_ListActiveIDs(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name: "Active vendors listed",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(3)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM vendors WHERE subscription_status = TRUE")).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []int{1, 3},
		},
		{
			name: "No active vendors",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"})
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM vendors WHERE subscription_status = TRUE")).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM vendors WHERE subscription_status = TRUE")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListActiveIDs(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
