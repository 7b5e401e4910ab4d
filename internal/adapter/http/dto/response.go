package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
)

// BalanceResponse represents a compliance balance in API responses.
type BalanceResponse struct {
	VesselID  string          `json:"vessel_id"`
	Period    int             `json:"period"`
	Value     decimal.Decimal `json:"value"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.ComplianceBalance) *BalanceResponse {
	return &BalanceResponse{
		VesselID:  b.VesselID,
		Period:    b.Period,
		Value:     b.Value,
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BalancesFromDomain converts domain balances to responses.
func BalancesFromDomain(balances []*domain.ComplianceBalance) []*BalanceResponse {
	result := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = BalanceFromDomain(b)
	}
	return result
}

// ListBalancesResponse wraps a page of balances.
type ListBalancesResponse struct {
	Balances []*BalanceResponse `json:"balances"`
	Total    int64              `json:"total"`
}

// BankingResultResponse represents the outcome of a bank or apply operation.
type BankingResultResponse struct {
	VesselID      string          `json:"vessel_id"`
	Period        int             `json:"period"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	Applied       decimal.Decimal `json:"applied"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

// BankingResultFromDomain converts a domain banking result to a response.
func BankingResultFromDomain(r *domain.BankingResult) *BankingResultResponse {
	return &BankingResultResponse{
		VesselID:      r.VesselID,
		Period:        r.Period,
		BalanceBefore: r.BalanceBefore,
		Applied:       r.Applied,
		BalanceAfter:  r.BalanceAfter,
	}
}

// BankedTotalResponse represents the banked total of a vessel and period.
type BankedTotalResponse struct {
	VesselID string          `json:"vessel_id"`
	Period   int             `json:"period"`
	Total    decimal.Decimal `json:"total"`
}

// PoolMemberResponse represents a pool member in API responses.
type PoolMemberResponse struct {
	VesselID      string          `json:"vessel_id"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

// PoolResponse represents a pool snapshot in API responses.
type PoolResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name,omitempty"`
	Period    int                  `json:"period"`
	SumBefore decimal.Decimal      `json:"sum_before"`
	Members   []PoolMemberResponse `json:"members"`
	CreatedAt time.Time            `json:"created_at"`
}

// PoolFromDomain converts a domain pool to a response.
func PoolFromDomain(p *domain.Pool) *PoolResponse {
	members := make([]PoolMemberResponse, len(p.Members))
	for i, m := range p.Members {
		members[i] = PoolMemberResponse{
			VesselID:      m.VesselID,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
		}
	}

	return &PoolResponse{
		ID:        p.ID,
		Name:      p.Name,
		Period:    p.Period,
		SumBefore: p.SumBefore,
		Members:   members,
		CreatedAt: p.CreatedAt,
	}
}

// PoolsFromDomain converts domain pools to responses.
func PoolsFromDomain(pools []*domain.Pool) []*PoolResponse {
	result := make([]*PoolResponse, len(pools))
	for i, p := range pools {
		result[i] = PoolFromDomain(p)
	}
	return result
}

// ListPoolsResponse wraps a page of pools.
type ListPoolsResponse struct {
	Pools []*PoolResponse `json:"pools"`
	Total int64           `json:"total"`
}

// ViolationDetail identifies one member that failed an allocation rule.
type ViolationDetail struct {
	VesselID      string          `json:"vessel_id"`
	Rule          string          `json:"rule"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

// ErrorResponse represents an error in API responses. Violations is set only
// for pool allocation rejections and lists every offending member.
type ErrorResponse struct {
	Error      string            `json:"error"`
	Message    string            `json:"message,omitempty"`
	Violations []ViolationDetail `json:"violations,omitempty"`
}
