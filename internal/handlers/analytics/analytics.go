package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/dto"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/analyticsservice"
	"github.com/chaitanyakumarcodes/urs-web/pkg/auth"
	"github.com/chaitanyakumarcodes/urs-web/pkg/utils"
)

const defaultWindowDays = 7

type Service interface {
	Analytics(ctx context.Context, vendorID, days int) (*analyticsservice.Report, error)
	Dashboard(ctx context.Context, vendorID int) (*analyticsservice.Metrics, error)
	Transactions(ctx context.Context, vendorID, days int) ([]domain.Transaction, error)
	ExportCSV(ctx context.Context, vendorID int) ([]byte, error)
	ExportPDF(ctx context.Context, vendorID int) ([]byte, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalytics godoc
//
//	@Summary		Get vendor analytics
//	@Description	Aggregate daily sales, points metrics, unique customers, customer activity and hourly distribution over the last N days.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int	false	"Window size in days"	default(7)
//	@Success		200		{object}	analyticsservice.Report
//	@Failure		400		{object}	utils.Response	"Invalid days parameter"
//	@Failure		401		{object}	utils.Response	"Vendor not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.VendorIDKey).(int)

	days, err := windowDays(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.analyticsService.Analytics(r.Context(), vendorID, days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// GetDashboard godoc
//
//	@Summary		Get today's dashboard metrics
//	@Description	Today's total sales, points issued and points redeemed for the authenticated vendor.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	analyticsservice.Metrics
//	@Failure		401	{object}	utils.Response	"Vendor not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.VendorIDKey).(int)

	metrics, err := h.analyticsService.Dashboard(r.Context(), vendorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, metrics)
}

// GetTransactions godoc
//
//	@Summary		List recent transactions
//	@Description	Transactions recorded for the authenticated vendor over the last N days.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int	false	"Window size in days"	default(7)
//	@Success		200		{array}		dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid days parameter"
//	@Failure		401		{object}	utils.Response	"Vendor not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *AnalyticsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.VendorIDKey).(int)

	days, err := windowDays(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.analyticsService.Transactions(r.Context(), vendorID, days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, dto.TransactionDTO{
			ID:             t.ID,
			Amount:         t.Amount,
			PointsEarned:   t.PointsEarned,
			PointsRedeemed: t.PointsRedeemed,
			Timestamp:      t.Timestamp,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Export godoc
//
//	@Summary		Export transaction history
//	@Description	Download the full transaction history as a CSV or PDF attachment.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			format	query		string	false	"csv or pdf"	default(csv)
//	@Success		200		{file}		file
//	@Failure		400		{object}	utils.Response	"Unknown format"
//	@Failure		401		{object}	utils.Response	"Vendor not authorized"
//	@Failure		404		{object}	utils.Response	"Vendor not found"
//	@Failure		500		{object}	utils.Response	"Export failed"
//	@Router			/api/export [get]
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.VendorIDKey).(int)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		data, err = h.analyticsService.ExportCSV(r.Context(), vendorID)
	case "pdf":
		contentType = "application/pdf"
		data, err = h.analyticsService.ExportPDF(r.Context(), vendorID)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid format")
		return
	}
	if err != nil {
		if errors.Is(err, analyticsservice.ErrVendorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}

func windowDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, errors.New("invalid days parameter")
	}
	return days, nil
}
