// Package budget derives project cost figures and health from task estimates
// and logged hours.
package budget

import (
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/timelog"
)

// StandardRate is the blended hourly rate used for budget tracking.
const StandardRate = 150

type Status string

const (
	StatusWithinBudget Status = "within_budget"
	StatusAtRisk       Status = "at_risk"
	StatusOverBudget   Status = "over_budget"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type Breakdown struct {
	Labor        float64 `json:"labor"`
	Materials    float64 `json:"materials"`
	Overhead     float64 `json:"overhead"`
	ProfitMargin float64 `json:"profit_margin"`
}

type Costs struct {
	Estimated          float64   `json:"estimated"`
	Actual             float64   `json:"actual"`
	Variance           float64   `json:"variance"`
	VariancePercentage float64   `json:"variance_percentage"`
	Status             Status    `json:"status"`
	Breakdown          Breakdown `json:"breakdown"`
}

type Alert struct {
	Alert          string   `json:"alert"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// CalculateProjectCosts computes budget figures for one project.
// Estimated cost comes from task hour estimates at the standard rate; actual
// cost comes from closed time logs only. The materials figure is a rough
// running-total heuristic (30% of the estimate accumulated per task) and
// should be treated as indicative, not a ledger value.
func CalculateProjectCosts(tasks []*task.Task, logsByTask map[string][]*timelog.TimeLog) Costs {
	var estimatedTotal, actualTotal, laborCost, materialCost float64

	for _, t := range tasks {
		estimatedTotal += t.EstimatedHours * StandardRate

		var actualHours float64
		for _, l := range logsByTask[t.ID] {
			actualHours += l.Hours()
		}
		actualTotal += actualHours * StandardRate
		laborCost += actualHours * StandardRate

		materialCost += estimatedTotal * 0.3
	}

	variance := actualTotal - estimatedTotal
	var variancePercentage float64
	if estimatedTotal > 0 {
		variancePercentage = variance / estimatedTotal * 100
	}

	status := StatusWithinBudget
	if variancePercentage > 10 {
		status = StatusOverBudget
	} else if variancePercentage > 5 {
		status = StatusAtRisk
	}

	return Costs{
		Estimated:          estimatedTotal,
		Actual:             actualTotal,
		Variance:           variance,
		VariancePercentage: variancePercentage,
		Status:             status,
		Breakdown: Breakdown{
			Labor:        laborCost,
			Materials:    materialCost,
			Overhead:     estimatedTotal * 0.15,
			ProfitMargin: estimatedTotal * 0.20,
		},
	}
}

// Alerts returns budget warnings for the given figures. The over-budget and
// spending-pace conditions can both fire, producing up to two alerts.
func Alerts(estimated, actual, variancePercentage float64) []Alert {
	var alerts []Alert

	if variancePercentage > 10 {
		alerts = append(alerts, Alert{
			Alert:          "Project is over budget",
			Recommendation: "Review expenses immediately. Consider material alternatives or scope reduction.",
			Severity:       SeverityDanger,
		})
	} else if variancePercentage > 5 {
		alerts = append(alerts, Alert{
			Alert:          "Project budget at risk",
			Recommendation: "Monitor costs closely. Optimize remaining tasks to stay within budget.",
			Severity:       SeverityWarning,
		})
	}

	if actual > estimated*0.8 && variancePercentage > 0 {
		alerts = append(alerts, Alert{
			Alert:          "Spending pace higher than planned",
			Recommendation: "Re-evaluate project timeline and resource allocation.",
			Severity:       SeverityWarning,
		})
	}

	return alerts
}

var costSavings = map[string][]string{
	"sprinkler_system": {
		"Consider pre-fabricated pipe sections to reduce installation time",
		"Bulk order materials at start to get better pricing",
		"Schedule work during off-peak hours to avoid delays",
		"Reuse existing mounting brackets where possible",
		"Negotiate better rates with suppliers for repeat orders",
	},
	"fire_alarm": {
		"Use wireless detectors where possible to reduce installation time",
		"Bulk purchase smoke detectors for better rates",
		"Coordinate with other trades to reduce site visits",
		"Pre-program panels off-site to save time",
	},
}

// SuggestCostSavings lists cost saving measures for a project type. Unknown
// types get an empty list.
func SuggestCostSavings(projectType string) []string {
	return costSavings[projectType]
}
