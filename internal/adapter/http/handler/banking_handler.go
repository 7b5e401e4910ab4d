package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/adapter/http/dto"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// BankingService defines the behavior needed by BankingHandler.
type BankingService interface {
	Bank(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error)
	Apply(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error)
	GetBankedTotal(ctx context.Context, vesselID string, period int) (decimal.Decimal, error)
}

// BankingHandler handles banking HTTP requests. Bank and apply run through
// the retrier so transient lock contention is retried before surfacing as a
// conflict.
type BankingHandler struct {
	bankingUC BankingService
	retrier   usecase.Retrier
}

// NewBankingHandler creates a new BankingHandler.
func NewBankingHandler(bankingUC BankingService, retrier usecase.Retrier) *BankingHandler {
	return &BankingHandler{
		bankingUC: bankingUC,
		retrier:   retrier,
	}
}

// Bank moves surplus from the ledger into the bank.
func (h *BankingHandler) Bank(w http.ResponseWriter, r *http.Request) {
	var req dto.BankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var result *domain.BankingResult
	err := h.retry(r.Context(), func() error {
		var err error
		result, err = h.bankingUC.Bank(r.Context(), req.ToUseCaseInput())
		return err
	})
	if err != nil {
		writeDomainError(w, "failed to bank surplus", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankingResultFromDomain(result))
}

// Apply consumes banked value and credits the ledger.
func (h *BankingHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.BankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var result *domain.BankingResult
	err := h.retry(r.Context(), func() error {
		var err error
		result, err = h.bankingUC.Apply(r.Context(), req.ToUseCaseInput())
		return err
	})
	if err != nil {
		writeDomainError(w, "failed to apply banked value", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankingResultFromDomain(result))
}

// GetTotal returns the banked total for a vessel and period.
func (h *BankingHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	vesselID := chi.URLParam(r, "vesselID")
	if vesselID == "" {
		writeError(w, http.StatusBadRequest, "missing vessel ID", "")
		return
	}

	period := parseIntQuery(r, "period", 0)

	total, err := h.bankingUC.GetBankedTotal(r.Context(), vesselID, period)
	if err != nil {
		writeDomainError(w, "failed to get banked total", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankedTotalResponse{
		VesselID: vesselID,
		Period:   period,
		Total:    total,
	})
}

func (h *BankingHandler) retry(ctx context.Context, op func() error) error {
	if h.retrier == nil {
		return op()
	}
	return h.retrier.Retry(ctx, op)
}
