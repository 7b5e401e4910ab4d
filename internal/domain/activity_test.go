package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTargetIntensity(t *testing.T) {
	tests := []struct {
		period int
		want   string
	}{
		{2024, "91.16"},
		{2025, "89.3368"},
		{2029, "89.3368"},
		{2030, "85.6904"},
		{2035, "77.9418"},
		{2040, "62.9004"},
		{2045, "34.6408"},
		{2050, "18.232"},
	}

	for _, tt := range tests {
		got := TargetIntensity(tt.period)
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("TargetIntensity(%d) = %s, want %s", tt.period, got, want)
		}
	}
}

func TestVoyageActivity_ComplianceValue(t *testing.T) {
	tests := []struct {
		name      string
		intensity string
		energy    string
		period    int
		want      string
	}{
		{
			name:      "below target yields surplus",
			intensity: "85.3368",
			energy:    "1000",
			period:    2025,
			want:      "4000",
		},
		{
			name:      "above target yields deficit",
			intensity: "94.3368",
			energy:    "1000",
			period:    2025,
			want:      "-5000",
		},
		{
			name:      "exactly on target",
			intensity: "89.3368",
			energy:    "123456",
			period:    2025,
			want:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &VoyageActivity{
				VesselID:        "IMO9074729",
				Period:          tt.period,
				IntensityActual: decimal.RequireFromString(tt.intensity),
				EnergyUsedMJ:    decimal.RequireFromString(tt.energy),
			}

			got := a.ComplianceValue()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ComplianceValue() = %s, want %s", got, tt.want)
			}
		})
	}
}
