package handler

import (
	"errors"
	"net/http"

	"github.com/mariner/fueleuledger/internal/usecase"
)

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	consistencyUC *usecase.ConsistencyUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(consistencyUC *usecase.ConsistencyUseCase) *LedgerHandler {
	return &LedgerHandler{consistencyUC: consistencyUC}
}

// CheckConsistency checks the ledger-wide invariants.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.consistencyUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"status":     "inconsistent",
				"consistent": false,
				"message":    err.Error(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to check consistency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "consistent",
		"consistent": consistent,
	})
}
