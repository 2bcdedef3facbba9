package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/timelog"
)

func closedLog(taskID string, start time.Time, hours float64) *timelog.TimeLog {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return &timelog.TimeLog{TaskID: taskID, StartTime: start, EndTime: &end}
}

func TestCalculateProjectCostsNoTasks(t *testing.T) {
	costs := CalculateProjectCosts(nil, nil)

	assert.Equal(t, 0.0, costs.Estimated)
	assert.Equal(t, 0.0, costs.Actual)
	assert.Equal(t, 0.0, costs.VariancePercentage)
	assert.Equal(t, StatusWithinBudget, costs.Status)
}

func TestCalculateProjectCosts(t *testing.T) {
	start := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	tasks := []*task.Task{
		{ID: "t1", EstimatedHours: 10},
		{ID: "t2", EstimatedHours: 20},
	}
	logsByTask := map[string][]*timelog.TimeLog{
		"t1": {
			closedLog("t1", start, 4),
			closedLog("t1", start.Add(24*time.Hour), 6),
			// Ongoing session contributes nothing.
			{TaskID: "t1", StartTime: start.Add(48 * time.Hour)},
		},
		"t2": {closedLog("t2", start, 12)},
	}

	costs := CalculateProjectCosts(tasks, logsByTask)

	assert.Equal(t, 30*150.0, costs.Estimated)
	assert.Equal(t, 22*150.0, costs.Actual)
	assert.Equal(t, costs.Actual-costs.Estimated, costs.Variance)
	assert.InDelta(t, -26.666, costs.VariancePercentage, 0.01)
	assert.Equal(t, StatusWithinBudget, costs.Status)

	assert.Equal(t, 22*150.0, costs.Breakdown.Labor)
	assert.Equal(t, costs.Estimated*0.15, costs.Breakdown.Overhead)
	assert.Equal(t, costs.Estimated*0.20, costs.Breakdown.ProfitMargin)
	// Materials accumulate the running estimate total per task:
	// after t1 the total is 1500, after t2 it is 4500.
	assert.Equal(t, 1500*0.3+4500*0.3, costs.Breakdown.Materials)
}

func TestCalculateProjectCostsStatusThresholds(t *testing.T) {
	tests := []struct {
		name        string
		actualHours float64
		status      Status
	}{
		{"exactly 10 percent over stays at risk", 11.0, StatusAtRisk},
		{"just over 10 percent is over budget", 11.01, StatusOverBudget},
		{"exactly 5 percent over stays within budget", 10.5, StatusWithinBudget},
		{"just over 5 percent is at risk", 10.6, StatusAtRisk},
		{"under budget is within budget", 8, StatusWithinBudget},
	}
	start := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []*task.Task{{ID: "t1", EstimatedHours: 10}}
			logsByTask := map[string][]*timelog.TimeLog{
				"t1": {closedLog("t1", start, tt.actualHours)},
			}
			costs := CalculateProjectCosts(tasks, logsByTask)
			assert.Equal(t, tt.status, costs.Status)
		})
	}
}

func TestAlerts(t *testing.T) {
	t.Run("no alerts when on budget", func(t *testing.T) {
		assert.Empty(t, Alerts(1000, 500, -50))
	})

	t.Run("danger when over budget", func(t *testing.T) {
		alerts := Alerts(1000, 1150, 15)
		require.Len(t, alerts, 2)
		assert.Equal(t, "Project is over budget", alerts[0].Alert)
		assert.Equal(t, SeverityDanger, alerts[0].Severity)
		assert.Equal(t, "Spending pace higher than planned", alerts[1].Alert)
		assert.Equal(t, SeverityWarning, alerts[1].Severity)
	})

	t.Run("warning when at risk", func(t *testing.T) {
		alerts := Alerts(1000, 700, 7)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Project budget at risk", alerts[0].Alert)
		assert.Equal(t, SeverityWarning, alerts[0].Severity)
	})

	t.Run("spending pace alone", func(t *testing.T) {
		alerts := Alerts(1000, 850, 3)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Spending pace higher than planned", alerts[0].Alert)
	})
}

func TestSuggestCostSavings(t *testing.T) {
	assert.Len(t, SuggestCostSavings("sprinkler_system"), 5)
	assert.Len(t, SuggestCostSavings("fire_alarm"), 4)
	assert.Empty(t, SuggestCostSavings("unknown"))
}
