package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
	"github.com/chaitanyakumarcodes/urs-web/internal/dto"
	"github.com/chaitanyakumarcodes/urs-web/internal/service/settlementservice"
	"github.com/chaitanyakumarcodes/urs-web/pkg/auth"
	"github.com/chaitanyakumarcodes/urs-web/pkg/utils"
	"github.com/chaitanyakumarcodes/urs-web/pkg/validate"
)

type Service interface {
	Settle(ctx context.Context, vendorID int, phone string, billAmount float64) (*settlementservice.Result, error)
	LookupCustomer(ctx context.Context, phone string) (*domain.Customer, error)
}

type SettlementHandler struct {
	settlementService Service
	validate          *validator.Validate
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		validate:          validator.New(),
	}
}

// Settle godoc
//
//	@Summary		Settle a bill
//	@Description	Apply a bill against the customer's wallet under the vendor's reward policy, recording the transaction.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettlementRequestDTO	true	"Settlement request payload"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Settlement figures"
//	@Failure		400		{object}	utils.Response				"Invalid body, phone or amount"
//	@Failure		401		{object}	utils.Response				"Vendor not authorized"
//	@Failure		404		{object}	utils.Response				"Customer or policy not found"
//	@Failure		422		{object}	utils.Response				"Bill below policy threshold"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/settlement [post]
func (h *SettlementHandler) Settle(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.VendorIDKey).(int)

	var req dto.SettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsPhone(req.Phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	result, err := h.settlementService.Settle(r.Context(), vendorID, req.Phone, req.BillAmount)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, settlementservice.ErrCustomerNotFound),
			errors.Is(err, settlementservice.ErrPolicyNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrBelowThreshold):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		TransactionID: result.TransactionID,
		Amount:        result.Amount,
		Discount:      result.Discount,
		FinalBill:     result.FinalBill,
		PointsEarned:  result.PointsEarned,
		NewBalance:    result.NewBalance,
	})
}

// LookupCustomer godoc
//
//	@Summary		Look up a customer by phone
//	@Description	Point-of-sale customer check before settling a bill.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Param			phone	query		string	true	"Customer phone number"
//	@Success		200		{object}	dto.CustomerResponseDTO	"Customer name, phone and wallet balance"
//	@Failure		400		{object}	utils.Response			"Missing or malformed phone"
//	@Failure		401		{object}	utils.Response			"Vendor not authorized"
//	@Failure		404		{object}	utils.Response			"Customer not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/customers [get]
func (h *SettlementHandler) LookupCustomer(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if !validate.IsPhone(phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	customer, err := h.settlementService.LookupCustomer(r.Context(), phone)
	if err != nil {
		if errors.Is(err, settlementservice.ErrCustomerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerResponseDTO{
		Name:          customer.Name,
		Phone:         customer.Phone,
		WalletBalance: customer.WalletBalance,
	})
}
