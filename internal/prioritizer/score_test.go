package prioritizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/metric"
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/team"
)

var scoreNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

// baselineTask triggers no scoring factor at all.
func baselineTask() *task.Task {
	return &task.Task{
		ID:         "t1",
		Name:       "Replace the worn gasket on the east wing feed",
		Priority:   task.PriorityLow,
		Status:     task.StatusPending,
		AssigneeID: "u1",
		CreatedAt:  scoreNow,
	}
}

func TestScoreBaseline(t *testing.T) {
	pt := Score(baselineTask(), nil, nil, nil, scoreNow)

	assert.Equal(t, 50, pt.PriorityScore)
	assert.Equal(t, PriorityMedium, pt.SuggestedPriority)
	assert.Empty(t, pt.Reasoning)
	assert.Empty(t, pt.RecommendedAssignee)
}

func TestScoreHighOverdueUnassigned(t *testing.T) {
	due := scoreNow.Add(-36 * time.Hour)
	tk := baselineTask()
	tk.Priority = task.PriorityHigh
	tk.DueDate = &due
	tk.AssigneeID = ""

	pt := Score(tk, nil, nil, nil, scoreNow)

	assert.GreaterOrEqual(t, pt.PriorityScore, 50+20+25+5)
	assert.LessOrEqual(t, pt.PriorityScore, 100)
	assert.Contains(t, pt.Reasoning, "Marked as high priority")
	assert.Contains(t, pt.Reasoning, "OVERDUE by 2 days")
	assert.Contains(t, pt.Reasoning, "Unassigned task needs attention")
}

func TestScoreClampedTo100(t *testing.T) {
	due := scoreNow.Add(-72 * time.Hour)
	tk := &task.Task{
		ID:          "t1",
		Name:        "Urgent client install",
		Description: "critical deadline",
		Priority:    task.PriorityHigh,
		Status:      task.StatusPending,
		DueDate:     &due,
		CreatedAt:   scoreNow.Add(-40 * 24 * time.Hour),
	}
	allTasks := []*task.Task{tk, {ID: "t2", Name: "Follow up on urgent client install"}}
	metrics := &metric.Metrics{
		ScheduleHealth: metric.ScheduleDelayed,
		BudgetHealth:   metric.BudgetCritical,
		RiskLevel:      metric.RiskCritical,
	}

	pt := Score(tk, allTasks, metrics, nil, scoreNow)

	assert.Equal(t, 100, pt.PriorityScore)
	assert.Equal(t, PriorityCritical, pt.SuggestedPriority)
}

func TestScoreDueDateBands(t *testing.T) {
	tests := []struct {
		name   string
		due    time.Duration
		points int
		reason string
	}{
		{"due today", 12 * time.Hour, 25, "Due today"},
		{"due in 2 days", 2 * 24 * time.Hour, 20, "Due within 3 days"},
		{"due in 5 days", 5 * 24 * time.Hour, 15, "Due within a week"},
		{"due in 10 days", 10 * 24 * time.Hour, 10, "Due within 2 weeks"},
		{"due in a month", 30 * 24 * time.Hour, 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := baselineTask()
			due := scoreNow.Add(tt.due)
			tk.DueDate = &due

			pt := Score(tk, nil, nil, nil, scoreNow)
			assert.Equal(t, 50+tt.points, pt.PriorityScore)
			if tt.reason != "" {
				assert.Contains(t, pt.Reasoning, tt.reason)
			} else {
				assert.Empty(t, pt.Reasoning)
			}
		})
	}
}

func TestScoreDependentsExcludesSelf(t *testing.T) {
	tk := baselineTask()
	tk.Name = "Pressure test"

	// Only the task itself matches its own name.
	pt := Score(tk, []*task.Task{tk}, nil, nil, scoreNow)
	assert.NotContains(t, pt.Reasoning, "1 tasks depend on this")

	other := &task.Task{ID: "t2", Name: "Verify pressure test results"}
	pt = Score(tk, []*task.Task{tk, other}, nil, nil, scoreNow)
	assert.Contains(t, pt.Reasoning, "1 tasks depend on this")
	assert.Equal(t, 50+15, pt.PriorityScore)
}

func TestScoreReasoningOrder(t *testing.T) {
	due := scoreNow.Add(12 * time.Hour)
	tk := baselineTask()
	tk.Priority = task.PriorityHigh
	tk.DueDate = &due
	tk.Name = "Call client"
	tk.AssigneeID = ""

	pt := Score(tk, nil, nil, nil, scoreNow)

	require.Equal(t, []string{
		"Marked as high priority",
		"Due today",
		"Customer-facing task",
		"Quick win opportunity",
		"Unassigned task needs attention",
	}, pt.Reasoning)
}

func TestScoreBucketBoundaries(t *testing.T) {
	// Base 50 lands in medium.
	pt := Score(baselineTask(), nil, nil, nil, scoreNow)
	assert.Equal(t, PriorityMedium, pt.SuggestedPriority)

	// 50 + 15 dependents = 65 lands in high.
	tk := baselineTask()
	tk.Name = "Pressure test"
	other := &task.Task{ID: "t2", Name: "Verify pressure test results"}
	pt = Score(tk, []*task.Task{tk, other}, nil, nil, scoreNow)
	assert.Equal(t, 65, pt.PriorityScore)
	assert.Equal(t, PriorityHigh, pt.SuggestedPriority)

	// 50 + 20 priority + 10 due in 2 weeks = 80 lands in critical.
	tk = baselineTask()
	tk.Priority = task.PriorityHigh
	tk.Name = "Replace the worn gasket on the east wing feed line today"
	due := scoreNow.Add(10 * 24 * time.Hour)
	tk.DueDate = &due
	pt = Score(tk, nil, nil, nil, scoreNow)
	assert.Equal(t, 80, pt.PriorityScore)
	assert.Equal(t, PriorityCritical, pt.SuggestedPriority)
}

func TestFindBestAssignee(t *testing.T) {
	members := []*team.Member{
		{ID: "u1", FullName: "John Smith"},
		{ID: "u2", FullName: "Sarah Williams"},
		{ID: "u3", FullName: "Mike Johnson"},
	}
	allTasks := []*task.Task{
		{ID: "t1", AssigneeID: "u1", Status: task.StatusPending},
		{ID: "t2", AssigneeID: "u1", Status: task.StatusInProgress},
		{ID: "t3", AssigneeID: "u2", Status: task.StatusPending},
		// Completed work does not count toward load.
		{ID: "t4", AssigneeID: "u3", Status: task.StatusCompleted},
	}

	assert.Equal(t, "u3", FindBestAssignee(allTasks, members))
}

func TestFindBestAssigneeTieKeepsInputOrder(t *testing.T) {
	members := []*team.Member{
		{ID: "u1", FullName: "John Smith"},
		{ID: "u2", FullName: "Sarah Williams"},
	}
	assert.Equal(t, "u1", FindBestAssignee(nil, members))
}

func TestFindBestAssigneeNoTeam(t *testing.T) {
	assert.Empty(t, FindBestAssignee(nil, nil))
}

func TestEstimateTaskHours(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		desc     string
		priority task.Priority
		hours    float64
	}{
		{"base", "Replace gasket", "", task.PriorityMedium, 4},
		{"install", "Install sprinkler heads", "", task.PriorityMedium, 8},
		{"inspect", "Inspect risers", "", task.PriorityMedium, 6},
		{"complex install", "Install comprehensive alarm loop", "", task.PriorityMedium, 16},
		{"quick", "Quick valve swap", "", task.PriorityMedium, 2},
		{"high priority adds", "Replace gasket", "", task.PriorityHigh, 6},
		{"clamped low", "Quick simple check", "", task.PriorityLow, 2},
		{"clamped high", "Install large complex comprehensive major system", "", task.PriorityMedium, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &task.Task{Name: tt.taskName, Description: tt.desc, Priority: tt.priority}
			assert.Equal(t, tt.hours, EstimateTaskHours(tk))
		})
	}
}

func TestEstimateTaskHoursClampFloor(t *testing.T) {
	// quick + simple both match but subtraction applies once per keyword
	// group, so the floor clamp needs a low starting point.
	tk := &task.Task{Name: "quick simple", Priority: task.PriorityLow}
	assert.GreaterOrEqual(t, EstimateTaskHours(tk), 1.0)
	assert.LessOrEqual(t, EstimateTaskHours(tk), 40.0)
}
