package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComplianceBalance represents the current FuelEU compliance balance of one
// vessel for one reporting period. The value is expressed in grams of
// CO2-equivalent: positive means surplus, negative means deficit.
type ComplianceBalance struct {
	VesselID  string
	Period    int
	Value     decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateBank checks if amount can be moved from the balance into the bank.
func (b *ComplianceBalance) ValidateBank(amount decimal.Decimal) error {
	if b.Value.LessThanOrEqual(decimal.Zero) {
		return ErrInsufficientSurplus
	}
	if b.Value.LessThan(amount) {
		return ErrInsufficientSurplus
	}
	return nil
}

// ApplyDebit returns the balance value after removing amount.
func (b *ComplianceBalance) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return b.Value.Sub(amount)
}

// ApplyCredit returns the balance value after adding amount.
func (b *ComplianceBalance) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return b.Value.Add(amount)
}

// IsSurplus reports whether the balance is positive.
func (b *ComplianceBalance) IsSurplus() bool {
	return b.Value.IsPositive()
}

// IsDeficit reports whether the balance is negative.
func (b *ComplianceBalance) IsDeficit() bool {
	return b.Value.IsNegative()
}
