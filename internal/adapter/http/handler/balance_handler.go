package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mariner/fueleuledger/internal/adapter/http/dto"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	ComputeBalance(ctx context.Context, input usecase.ComputeBalanceInput) (*domain.ComplianceBalance, error)
	GetBalance(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error)
	ListBalances(ctx context.Context, input usecase.ListBalancesInput) ([]*domain.ComplianceBalance, error)
}

// BalanceHandler handles compliance balance HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Compute derives the balance for a vessel and period from voyage activity.
func (h *BalanceHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	balance, err := h.balanceUC.ComputeBalance(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to compute balance", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// Get retrieves the balance for a vessel and period.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	vesselID := chi.URLParam(r, "vesselID")
	if vesselID == "" {
		writeError(w, http.StatusBadRequest, "missing vessel ID", "")
		return
	}

	period := parseIntQuery(r, "period", 0)

	balance, err := h.balanceUC.GetBalance(r.Context(), vesselID, period)
	if err != nil {
		writeDomainError(w, "failed to get balance", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// List lists balances for a period.
func (h *BalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceUC.ListBalances(r.Context(), usecase.ListBalancesInput{
		Period: parseIntQuery(r, "period", 0),
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, "failed to list balances", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBalancesResponse{
		Balances: dto.BalancesFromDomain(balances),
		Total:    int64(len(balances)),
	})
}
