package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBalanceRequest_ToUseCaseInput(t *testing.T) {
	req := &ComputeBalanceRequest{
		VesselID: "IMO9074729",
		Period:   2025,
	}

	got := req.ToUseCaseInput()
	assert.Equal(t, "IMO9074729", got.VesselID)
	assert.Equal(t, 2025, got.Period)
}

func TestBankingRequest_ToUseCaseInput(t *testing.T) {
	req := &BankingRequest{
		VesselID: "IMO9074729",
		Period:   2025,
		Amount:   decimal.RequireFromString("1234.56"),
	}

	got := req.ToUseCaseInput()
	assert.Equal(t, "IMO9074729", got.VesselID)
	assert.Equal(t, 2025, got.Period)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1234.56")), "Amount = %s", got.Amount)
}

func TestCreatePoolRequest_ToUseCaseInput(t *testing.T) {
	req := &CreatePoolRequest{
		Period:    2025,
		Name:      "northern fleet",
		VesselIDs: []string{"IMO9074729", "IMO9198379"},
	}

	got := req.ToUseCaseInput()
	assert.Equal(t, 2025, got.Period)
	assert.Equal(t, "northern fleet", got.Name)
	assert.Len(t, got.VesselIDs, 2)
}
