package domain

import (
	"github.com/shopspring/decimal"
)

// ReferenceIntensity is the 2020 fleet-average GHG intensity baseline in
// gCO2e/MJ that the FuelEU reduction schedule is applied against.
var ReferenceIntensity = decimal.RequireFromString("91.16")

// reductionSchedule maps the first period of each FuelEU step to the
// required reduction in percent.
var reductionSchedule = []struct {
	fromPeriod int
	percent    decimal.Decimal
}{
	{2050, decimal.RequireFromString("80")},
	{2045, decimal.RequireFromString("62")},
	{2040, decimal.RequireFromString("31")},
	{2035, decimal.RequireFromString("14.5")},
	{2030, decimal.RequireFromString("6")},
	{2025, decimal.RequireFromString("2")},
}

var hundred = decimal.NewFromInt(100)

// TargetIntensity returns the regulatory GHG intensity target in gCO2e/MJ
// for the given reporting period.
func TargetIntensity(period int) decimal.Decimal {
	for _, step := range reductionSchedule {
		if period >= step.fromPeriod {
			factor := hundred.Sub(step.percent).Div(hundred)
			return ReferenceIntensity.Mul(factor)
		}
	}
	return ReferenceIntensity
}

// VoyageActivity is the aggregated reporting activity of one vessel for one
// period, as produced by the voyage data system: the actual GHG intensity
// achieved (gCO2e/MJ) and the total energy used on board (MJ).
type VoyageActivity struct {
	VesselID        string
	Period          int
	IntensityActual decimal.Decimal
	EnergyUsedMJ    decimal.Decimal
}

// ComplianceValue computes the compliance balance for the activity:
// (target - actual) * energy, in grams of CO2-equivalent.
func (a *VoyageActivity) ComplianceValue() decimal.Decimal {
	return TargetIntensity(a.Period).Sub(a.IntensityActual).Mul(a.EnergyUsedMJ)
}
