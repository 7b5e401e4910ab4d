package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/usecase"
)

// ComputeBalanceRequest represents a request to compute a compliance balance.
type ComputeBalanceRequest struct {
	VesselID string `json:"vessel_id"`
	Period   int    `json:"period"`
}

// ToUseCaseInput converts to use case input.
func (r *ComputeBalanceRequest) ToUseCaseInput() usecase.ComputeBalanceInput {
	return usecase.ComputeBalanceInput{
		VesselID: r.VesselID,
		Period:   r.Period,
	}
}

// BankingRequest represents a request to bank surplus or apply banked value.
type BankingRequest struct {
	VesselID string          `json:"vessel_id"`
	Period   int             `json:"period"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *BankingRequest) ToUseCaseInput() usecase.BankingInput {
	return usecase.BankingInput{
		VesselID: r.VesselID,
		Period:   r.Period,
		Amount:   r.Amount,
	}
}

// CreatePoolRequest represents a request to create a pool.
type CreatePoolRequest struct {
	Period    int      `json:"period"`
	Name      string   `json:"name,omitempty"`
	VesselIDs []string `json:"vessel_ids"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePoolRequest) ToUseCaseInput() usecase.CreatePoolInput {
	return usecase.CreatePoolInput{
		Period:    r.Period,
		Name:      r.Name,
		VesselIDs: r.VesselIDs,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
