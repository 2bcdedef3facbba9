package pricing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/template"
)

func testTemplate() template.ProjectTemplate {
	return template.ProjectTemplate{
		ID:             "tpl-test",
		Name:           "Test Sprinkler Install",
		Category:       template.CategoryCommercial,
		EstimatedHours: 100,
		EstimatedCost:  50000,
	}
}

func TestEstimateProjectCostStandard(t *testing.T) {
	est := EstimateProjectCost(testTemplate(), ComplexityStandard)

	assert.Equal(t, 100*85.0, est.LaborCost)
	assert.Equal(t, 50000*0.4*1.25, est.MaterialCost)
	assert.Equal(t, 50000.0, est.BaseCost)

	require.Len(t, est.Breakdown, 4)
	assert.Equal(t, "Labor", est.Breakdown[0].Item)
	assert.Equal(t, "Materials & Equipment", est.Breakdown[1].Item)
	assert.Equal(t, "Permits & Compliance", est.Breakdown[2].Item)
	assert.Equal(t, "Project Management", est.Breakdown[3].Item)
	assert.Equal(t, 5000.0, est.Breakdown[2].Cost)
	assert.Equal(t, 7500.0, est.Breakdown[3].Cost)
}

func TestEstimateProjectCostMultipliers(t *testing.T) {
	tests := []struct {
		complexity Complexity
		multiplier float64
	}{
		{ComplexityStandard, 1.0},
		{ComplexityComplex, 1.3},
		{ComplexityHighlyComplex, 1.6},
		{Complexity("unknown"), 1.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.complexity), func(t *testing.T) {
			est := EstimateProjectCost(testTemplate(), tt.complexity)
			assert.Equal(t, 100*85.0*tt.multiplier, est.LaborCost)
			assert.Equal(t, 50000*tt.multiplier, est.BaseCost)
			// Materials are not multiplied by complexity.
			assert.Equal(t, 25000.0, est.MaterialCost)
		})
	}
}

func TestEstimateProjectCostTotalIsBreakdownSum(t *testing.T) {
	for _, c := range []Complexity{ComplexityStandard, ComplexityComplex, ComplexityHighlyComplex} {
		est := EstimateProjectCost(testTemplate(), c)
		var sum float64
		for _, item := range est.Breakdown {
			sum += item.Cost
		}
		assert.Equal(t, sum, est.TotalCost)
	}
}

func TestGenerateQuote(t *testing.T) {
	tmpl := testTemplate()
	tmpl.DefaultTasks = []template.TemplateTask{
		{Name: "Site Survey"},
		{Name: "Installation"},
	}
	quote := GenerateQuote(tmpl, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	assert.True(t, strings.Contains(quote, "FIRE PROTECTION PROJECT QUOTE"))
	assert.True(t, strings.Contains(quote, "Generated: 2026-03-10"))
	assert.True(t, strings.Contains(quote, "Test Sprinkler Install"))
	assert.True(t, strings.Contains(quote, "- Site Survey"))
	assert.True(t, strings.Contains(quote, "- Installation"))
	assert.True(t, strings.Contains(quote, "Labor: R8500.00"))
}
