// Package prioritizer scores open tasks with a weighted rule set and turns
// the scores into suggested priorities, assignee recommendations and hour
// estimates.
package prioritizer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/firedeskhq/firedesk/internal/metric"
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/team"
)

// baseScore is the starting point before any factor is applied.
const baseScore = 50

type SuggestedPriority string

const (
	PriorityLow      SuggestedPriority = "low"
	PriorityMedium   SuggestedPriority = "medium"
	PriorityHigh     SuggestedPriority = "high"
	PriorityCritical SuggestedPriority = "critical"
)

type PrioritizedTask struct {
	TaskID              string            `json:"task_id"`
	TaskName            string            `json:"task_name"`
	PriorityScore       int               `json:"priority_score"`
	SuggestedPriority   SuggestedPriority `json:"suggested_priority"`
	Reasoning           []string          `json:"reasoning"`
	RecommendedAssignee string            `json:"recommended_assignee,omitempty"`
	EstimatedHours      float64           `json:"estimated_hours,omitempty"`
}

// Score rates one task against its surrounding project. The score starts at
// 50 and each factor adds its points; the result is clamped to [0,100].
// Reasoning lists the triggered factors in evaluation order. A nil metrics
// snapshot simply skips the health factors.
func Score(t *task.Task, allTasks []*task.Task, metrics *metric.Metrics, members []*team.Member, now time.Time) PrioritizedTask {
	score := float64(baseScore)
	var reasoning []string

	// Stated priority.
	priorityPoints := 0
	switch t.Priority {
	case task.PriorityHigh:
		priorityPoints = 20
	case task.PriorityMedium:
		priorityPoints = 10
	}
	score += float64(priorityPoints)
	if priorityPoints > 10 {
		reasoning = append(reasoning, fmt.Sprintf("Marked as %s priority", t.Priority))
	}

	// Due date urgency.
	if t.DueDate != nil {
		daysUntilDue := t.DueDate.Sub(now).Hours() / 24
		switch {
		case daysUntilDue < 0:
			score += 25
			reasoning = append(reasoning, fmt.Sprintf("OVERDUE by %d days", int(math.Round(math.Abs(daysUntilDue)))))
		case daysUntilDue < 1:
			score += 25
			reasoning = append(reasoning, "Due today")
		case daysUntilDue < 3:
			score += 20
			reasoning = append(reasoning, "Due within 3 days")
		case daysUntilDue < 7:
			score += 15
			reasoning = append(reasoning, "Due within a week")
		case daysUntilDue < 14:
			score += 10
			reasoning = append(reasoning, "Due within 2 weeks")
		default:
			score += 5
		}
	}

	// Dependents: other tasks whose name references this one.
	thisName := strings.ToLower(t.Name)
	dependents := 0
	for _, other := range allTasks {
		if other.ID == t.ID {
			continue
		}
		if thisName != "" && strings.Contains(strings.ToLower(other.Name), thisName) {
			dependents++
		}
	}
	if dependents > 0 {
		score += 15
		reasoning = append(reasoning, fmt.Sprintf("%d tasks depend on this", dependents))
	}

	// Project schedule health.
	if metrics != nil {
		switch metrics.ScheduleHealth {
		case metric.ScheduleDelayed:
			score += 15
			reasoning = append(reasoning, "Project is delayed - high urgency")
		case metric.ScheduleAtRisk:
			score += 10
			reasoning = append(reasoning, "Project at risk - increased urgency")
		}
	}

	// Task age.
	ageInDays := now.Sub(t.CreatedAt).Hours() / 24
	if ageInDays > 30 {
		score += 10
		reasoning = append(reasoning, fmt.Sprintf("Task is %d days old", int(math.Round(ageInDays))))
	} else if ageInDays > 14 {
		score += 5
	}

	taskText := strings.ToLower(t.Name + " " + t.Description)

	// Customer impact.
	if containsAny(taskText, "client", "customer", "deadline") {
		score += 10
		reasoning = append(reasoning, "Customer-facing task")
	}

	// Risk mitigation.
	if containsAny(taskText, "risk", "critical", "urgent") {
		score += 10
		reasoning = append(reasoning, "Risk mitigation task")
	}

	// Quick wins: short description, not low priority, not flagged complex.
	if len(strings.Fields(taskText)) < 10 && !strings.Contains(taskText, "complex") && t.Priority != task.PriorityLow {
		score += 5
		reasoning = append(reasoning, "Quick win opportunity")
	}

	// Assignee availability.
	var recommendedAssignee string
	if t.AssigneeID == "" {
		score += 5
		reasoning = append(reasoning, "Unassigned task needs attention")
		recommendedAssignee = FindBestAssignee(allTasks, members)
	}

	// Budget and risk health.
	if metrics != nil {
		if metrics.BudgetHealth == metric.BudgetCritical {
			score += 5
			reasoning = append(reasoning, "Budget critical - need efficiency")
		}
		if metrics.RiskLevel == metric.RiskHigh || metrics.RiskLevel == metric.RiskCritical {
			score += 5
			reasoning = append(reasoning, "High project risk")
		}
	}

	score = math.Min(100, math.Max(0, score))

	suggested := PriorityLow
	switch {
	case score >= 80:
		suggested = PriorityCritical
	case score >= 60:
		suggested = PriorityHigh
	case score >= 40:
		suggested = PriorityMedium
	}

	return PrioritizedTask{
		TaskID:              t.ID,
		TaskName:            t.Name,
		PriorityScore:       int(math.Round(score)),
		SuggestedPriority:   suggested,
		Reasoning:           reasoning,
		RecommendedAssignee: recommendedAssignee,
		EstimatedHours:      EstimateTaskHours(t),
	}
}

// FindBestAssignee picks the team member with the fewest open tasks. Ties
// keep the earlier member in the input order. Returns "" when there is no
// team.
func FindBestAssignee(allTasks []*task.Task, members []*team.Member) string {
	if len(members) == 0 {
		return ""
	}

	type workload struct {
		userID    string
		taskCount int
	}
	workloads := make([]workload, 0, len(members))
	for _, m := range members {
		count := 0
		for _, t := range allTasks {
			if t.AssigneeID == m.ID && t.Open() {
				count++
			}
		}
		workloads = append(workloads, workload{userID: m.ID, taskCount: count})
	}

	sort.SliceStable(workloads, func(i, j int) bool {
		return workloads[i].taskCount < workloads[j].taskCount
	})
	return workloads[0].userID
}

// EstimateTaskHours guesses a task's effort from keywords in its name and
// description, clamped to [1,40].
func EstimateTaskHours(t *task.Task) float64 {
	taskText := strings.ToLower(t.Name + " " + t.Description)

	hours := 4.0
	if strings.Contains(taskText, "install") {
		hours += 4
	}
	if strings.Contains(taskText, "inspect") {
		hours += 2
	}
	if containsAny(taskText, "complex", "comprehensive") {
		hours += 8
	}
	if containsAny(taskText, "quick", "simple") {
		hours -= 2
	}
	if containsAny(taskText, "large", "major") {
		hours += 6
	}
	if t.Priority == task.PriorityHigh {
		hours += 2
	}

	return math.Max(1, math.Min(40, hours))
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
