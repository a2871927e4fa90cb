package repo

import (
	"github.com/chaitanyakumarcodes/urs-web/internal/pg"
	customerrepo "github.com/chaitanyakumarcodes/urs-web/internal/repo/customer-repo"
	policyrepo "github.com/chaitanyakumarcodes/urs-web/internal/repo/policy-repo"
	transactionrepo "github.com/chaitanyakumarcodes/urs-web/internal/repo/transaction-repo"
	vendorrepo "github.com/chaitanyakumarcodes/urs-web/internal/repo/vendor-repo"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/analyticsservice"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/authservice"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/settlementservice"
)

// TransactionRepo is the full transaction surface: creation for settlements,
// listings for analytics and exports.
type TransactionRepo interface {
	settlementservice.TransactionRepo
	analyticsservice.TransactionRepo
}

type Repositories struct {
	VendorRepo      authservice.VendorRepo
	PolicyRepo      authservice.PolicyRepo
	CustomerRepo    settlementservice.CustomerRepo
	TransactionRepo TransactionRepo
}

func New(conn pg.Database) *Repositories {
	vendorRepo := vendorrepo.New(conn)
	policyRepo := policyrepo.New(conn)
	customerRepo := customerrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		VendorRepo:      vendorRepo,
		PolicyRepo:      policyRepo,
		CustomerRepo:    customerRepo,
		TransactionRepo: transactionRepo,
	}
}
