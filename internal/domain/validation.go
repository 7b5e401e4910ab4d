package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	// MinPeriod admits the reporting year preceding the first reduction
	// step: balances are computed and banked for 2024 even though the
	// target only tightens from 2025 on.
	MinPeriod = 2024
	MaxPeriod = 2050

	MaxPoolNameLength = 255

	// MaxAmount bounds a single bank/apply operation. 1e15 gCO2e is far
	// beyond any single vessel's annual balance.
	MaxAmount = "1000000000000000"
)

// Vessel identifiers are IMO-style: the literal "IMO" followed by seven
// digits, or a plain alphanumeric registry code.
var (
	imoNumberRegex    = regexp.MustCompile(`^IMO[0-9]{7}$`)
	registryCodeRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)
)

// ValidateVesselID validates a vessel identifier.
func ValidateVesselID(id string) error {
	id = strings.TrimSpace(id)

	if id == "" {
		return fmt.Errorf("%w: identifier cannot be empty", ErrInvalidVesselID)
	}

	// An id claiming the IMO prefix must carry exactly seven digits; it
	// never falls back to the registry-code form.
	if strings.HasPrefix(id, "IMO") {
		if !imoNumberRegex.MatchString(id) {
			return fmt.Errorf("%w: %q", ErrInvalidVesselID, id)
		}
		return nil
	}

	if !registryCodeRegex.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidVesselID, id)
	}

	return nil
}

// ValidatePeriod validates a reporting period against the FuelEU horizon.
func ValidatePeriod(period int) error {
	if period < MinPeriod || period > MaxPeriod {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPeriod, period, MinPeriod, MaxPeriod)
	}

	return nil
}

// ValidateAmount validates a bank/apply amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}

// ValidatePoolName validates an optional pool name.
func ValidatePoolName(name string) error {
	if len(name) > MaxPoolNameLength {
		return fmt.Errorf("pool name exceeds %d characters", MaxPoolNameLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
