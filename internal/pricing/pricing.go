// Package pricing turns a project template and a complexity tier into a cost
// estimate with a fixed four-line breakdown.
package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/firedeskhq/firedesk/internal/template"
)

// HourlyRate is the fire protection technician hourly rate in rand.
const HourlyRate = 85

// materialMarkup is the markup applied on top of the base material cost.
const materialMarkup = 1.25

type Complexity string

const (
	ComplexityStandard      Complexity = "standard"
	ComplexityComplex       Complexity = "complex"
	ComplexityHighlyComplex Complexity = "highly-complex"
)

// Multiplier returns the cost multiplier for the tier. Unknown tiers fall
// back to the standard multiplier.
func (c Complexity) Multiplier() float64 {
	switch c {
	case ComplexityComplex:
		return 1.3
	case ComplexityHighlyComplex:
		return 1.6
	default:
		return 1.0
	}
}

type LineItem struct {
	Item string  `json:"item"`
	Cost float64 `json:"cost"`
}

type Estimate struct {
	BaseCost     float64    `json:"base_cost"`
	LaborCost    float64    `json:"labor_cost"`
	MaterialCost float64    `json:"material_cost"`
	TotalCost    float64    `json:"total_cost"`
	Breakdown    []LineItem `json:"breakdown"`
}

// EstimateProjectCost prices a template at the given complexity tier.
// The breakdown always holds exactly four line items and TotalCost is their
// sum; materials carry a 25% markup on the assumed 40% material share.
func EstimateProjectCost(tmpl template.ProjectTemplate, complexity Complexity) Estimate {
	multiplier := complexity.Multiplier()

	laborCost := tmpl.EstimatedHours * HourlyRate * multiplier
	baseMaterialCost := tmpl.EstimatedCost * 0.4
	materialCost := baseMaterialCost * materialMarkup
	baseCost := tmpl.EstimatedCost * multiplier

	breakdown := []LineItem{
		{Item: "Labor", Cost: laborCost},
		{Item: "Materials & Equipment", Cost: materialCost},
		{Item: "Permits & Compliance", Cost: baseCost * 0.10},
		{Item: "Project Management", Cost: baseCost * 0.15},
	}

	var total float64
	for _, item := range breakdown {
		total += item.Cost
	}

	return Estimate{
		BaseCost:     baseCost,
		LaborCost:    laborCost,
		MaterialCost: materialCost,
		TotalCost:    total,
		Breakdown:    breakdown,
	}
}

// GenerateQuote renders a plain-text quote for the template at standard
// complexity. Amounts are in rand.
func GenerateQuote(tmpl template.ProjectTemplate, now time.Time) string {
	est := EstimateProjectCost(tmpl, ComplexityStandard)

	var lines []string
	for _, item := range est.Breakdown {
		lines = append(lines, fmt.Sprintf("  %s: R%.2f", item.Item, item.Cost))
	}

	var services []string
	for _, t := range tmpl.DefaultTasks {
		services = append(services, t.Name)
	}

	return fmt.Sprintf(`FIRE PROTECTION PROJECT QUOTE
Generated: %s

Project: %s
Category: %s
Estimated Duration: %g hours

PRICING BREAKDOWN:
%s

TOTAL PROJECT COST: R%.2f

INCLUDED SERVICES:
- %s

TERMS:
- Payment: 50%% on start, 50%% on completion
- Validity: 30 days
- Warranty: 1 year on all equipment
`,
		now.Format("2006-01-02"),
		tmpl.Name,
		tmpl.Category,
		tmpl.EstimatedHours,
		strings.Join(lines, "\n"),
		est.TotalCost,
		strings.Join(services, "\n- "),
	)
}
