// Package planning builds structured phase plans for fire protection
// projects.
package planning

type PhaseStatus string

const (
	PhaseNotStarted PhaseStatus = "not_started"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
)

type PlannedTask struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	HourlyRate     float64 `json:"hourly_rate"`
	MaterialsCost  float64 `json:"materials_cost"`
	EstimatedCost  float64 `json:"estimated_cost"`
	ActualCost     float64 `json:"actual_cost"`
	Status         string  `json:"status"`
	AssignedTo     string  `json:"assigned_to,omitempty"`
}

type Phase struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Tasks         []PlannedTask `json:"tasks"`
	EstimatedCost float64       `json:"estimated_cost"`
	ActualCost    float64       `json:"actual_cost"`
	Status        PhaseStatus   `json:"status"`
	Dependencies  []string      `json:"dependencies,omitempty"`
}

type ProjectPlan struct {
	ProjectID          string  `json:"project_id"`
	ProjectName        string  `json:"project_name"`
	Phases             []Phase `json:"phases"`
	TotalEstimatedCost float64 `json:"total_estimated_cost"`
	BudgetStatus       string  `json:"budget_status"`
}
