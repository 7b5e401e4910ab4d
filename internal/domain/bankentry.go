package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankEntry is one slice of banked compliance surplus. Entries for a
// (vessel, period) form a FIFO queue ordered by Seq and are consumed
// oldest-first when banked surplus is applied back to the ledger.
type BankEntry struct {
	ID        string
	VesselID  string
	Period    int
	Amount    decimal.Decimal
	Seq       int64
	CreatedAt time.Time
}

// Validate checks the entry invariant: amount is strictly positive.
func (e *BankEntry) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// BankingResult reports the outcome of a bank or apply operation.
type BankingResult struct {
	VesselID      string
	Period        int
	BalanceBefore decimal.Decimal
	Applied       decimal.Decimal
	BalanceAfter  decimal.Decimal
}
