package costcalc_test

import (
	"testing"

	"team-backoffice/internal/costcalc"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_Rate(t *testing.T) {
	s := costcalc.DefaultSettings()

	assert.Equal(t, 9000, s.TotalAnnualHours())
	assert.InDelta(t, 1130000, s.TotalIndirectCosts(), 1e-9)
	assert.InDelta(t, 125.5555, s.Rate(), 1e-3)
	assert.InDelta(t, 17577.78, s.ProjectCost(140), 1e-2)
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		settings costcalc.Settings
		want     float64
	}{
		{
			name: "simple",
			settings: costcalc.Settings{
				NumberOfEmployees:       2,
				AverageHoursPerEmployee: 1000,
				OverheadCosts:           []costcalc.CostItem{{Name: "a", Amount: 10000}},
				EquipmentCosts:          []costcalc.CostItem{{Name: "b", Amount: 6000}},
				GeneralCosts:            []costcalc.CostItem{{Name: "c", Amount: 4000}},
			},
			want: 10,
		},
		{
			name: "no employees",
			settings: costcalc.Settings{
				AverageHoursPerEmployee: 1800,
				OverheadCosts:           []costcalc.CostItem{{Name: "a", Amount: 10000}},
			},
			want: 0,
		},
		{
			name: "no costs",
			settings: costcalc.Settings{
				NumberOfEmployees:       3,
				AverageHoursPerEmployee: 1500,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.settings.Rate(), 1e-9)
		})
	}
}

func TestCompute_Breakdown(t *testing.T) {
	s := costcalc.Settings{
		NumberOfEmployees:       2,
		AverageHoursPerEmployee: 1000,
		OverheadCosts:           []costcalc.CostItem{{Name: "a", Amount: 6000}, {Name: "b", Amount: 4000}},
		EquipmentCosts:          []costcalc.CostItem{{Name: "c", Amount: 6000}},
		GeneralCosts:            []costcalc.CostItem{{Name: "d", Amount: 4000}},
	}

	b := costcalc.Compute(s, "Bolig Nord", 100)

	assert.Equal(t, "Bolig Nord", b.ProjectName)
	assert.Equal(t, 2000, b.TotalAnnualHours)
	assert.InDelta(t, 20000, b.TotalAnnualIndirectCosts, 1e-9)
	assert.InDelta(t, 10, b.IndirectCostRate, 1e-9)
	assert.InDelta(t, 1000, b.ProjectIndirectCost, 1e-9)

	assert.InDelta(t, 10000, b.Overhead.Total, 1e-9)
	assert.InDelta(t, 500, b.Overhead.ProjectCost, 1e-9)
	assert.InDelta(t, 50, b.Overhead.Percentage, 1e-9)
	assert.InDelta(t, 300, b.Equipment.ProjectCost, 1e-9)
	assert.InDelta(t, 30, b.Equipment.Percentage, 1e-9)
	assert.InDelta(t, 200, b.General.ProjectCost, 1e-9)
	assert.InDelta(t, 20, b.General.Percentage, 1e-9)

	sum := b.Overhead.ProjectCost + b.Equipment.ProjectCost + b.General.ProjectCost
	assert.InDelta(t, b.ProjectIndirectCost, sum, 1e-9)
}

func TestCompute_ZeroDenominators(t *testing.T) {
	b := costcalc.Compute(costcalc.Settings{}, "", 140)

	assert.Zero(t, b.IndirectCostRate)
	assert.Zero(t, b.ProjectIndirectCost)
	assert.Zero(t, b.Overhead.ProjectCost)
	assert.Zero(t, b.Overhead.Percentage)
}
