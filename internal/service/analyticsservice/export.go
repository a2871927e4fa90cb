package analyticsservice

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeader = []string{"Transaction ID", "Amount (INR)", "Points Earned", "Points Redeemed", "Timestamp"}

// ExportCSV renders the vendor's full transaction history as CSV.
func (s *Service) ExportCSV(ctx context.Context, vendorID int) ([]byte, error) {
	transactions, err := s.transactionRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		zap.L().Error("failed to fetch transactions for export", zap.Error(err))
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range transactions {
		if err := w.Write(exportRow(t)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the same history as a PDF table with a vendor header.
func (s *Service) ExportPDF(ctx context.Context, vendorID int) ([]byte, error) {
	var (
		vendor       *domain.Vendor
		transactions []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendor, err = s.vendorRepo.GetByID(gctx, vendorID)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListByVendor(gctx, vendorID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch export data", zap.Error(err))
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(19, 19, 19)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Transaction Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s (%s)", vendor.Name, vendor.Email))
	pdf.Ln(12)

	widths := []float64{28, 36, 32, 34, 42}
	pdf.SetFont("Arial", "B", 10)
	for i, col := range exportHeader {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, t := range transactions {
		for i, cell := range exportRow(t) {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		zap.L().Error("failed to render pdf", zap.Error(err))
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(t domain.Transaction) []string {
	return []string{
		strconv.Itoa(t.ID),
		fmt.Sprintf("%.2f", t.Amount),
		strconv.FormatFloat(t.PointsEarned, 'f', -1, 64),
		strconv.FormatFloat(t.PointsRedeemed, 'f', -1, 64),
		t.Timestamp.Format(exportTimeLayout),
	}
}
