package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateVesselID(t *testing.T) {
	valid := []string{"IMO9074729", "IMO1234567", "V-42", "vessel1"}
	for _, id := range valid {
		if err := ValidateVesselID(id); err != nil {
			t.Errorf("ValidateVesselID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{"", "   ", "IMO123", "IMO12345678", "IMOABCDEFG", "has space", "x@y"}
	for _, id := range invalid {
		if err := ValidateVesselID(id); !errors.Is(err, ErrInvalidVesselID) {
			t.Errorf("ValidateVesselID(%q) = %v, want ErrInvalidVesselID", id, err)
		}
	}
}

func TestValidatePeriod(t *testing.T) {
	for _, p := range []int{2024, 2025, 2030, 2050} {
		if err := ValidatePeriod(p); err != nil {
			t.Errorf("ValidatePeriod(%d) = %v, want nil", p, err)
		}
	}

	for _, p := range []int{0, 2023, 2051, -1} {
		if err := ValidatePeriod(p); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ValidatePeriod(%d) = %v, want ErrInvalidPeriod", p, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(6000)); err != nil {
		t.Errorf("positive amount: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount = %v, want ErrInvalidAmount", err)
	}

	if err := ValidateAmount(decimal.NewFromInt(-100)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount = %v, want ErrInvalidAmount", err)
	}

	huge := decimal.RequireFromString(MaxAmount).Add(decimal.NewFromInt(1))
	if err := ValidateAmount(huge); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("oversized amount = %v, want ErrInvalidAmount", err)
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("defaults = (%d, %d), want (50, 0)", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("capped limit = %d, want 1000", limit)
	}
}
