package metric

import "time"

type ScheduleHealth string

const (
	ScheduleOnTrack ScheduleHealth = "on-track"
	ScheduleAtRisk  ScheduleHealth = "at-risk"
	ScheduleDelayed ScheduleHealth = "delayed"
)

type BudgetHealth string

const (
	BudgetHealthy  BudgetHealth = "healthy"
	BudgetWarning  BudgetHealth = "warning"
	BudgetCritical BudgetHealth = "critical"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Metrics is the latest health snapshot for a project. Snapshots are
// optional; scoring treats a missing snapshot as "no adjustment".
type Metrics struct {
	ProjectID      string         `yaml:"project_id"`
	ScheduleHealth ScheduleHealth `yaml:"schedule_health"`
	BudgetHealth   BudgetHealth   `yaml:"budget_health"`
	RiskLevel      RiskLevel      `yaml:"risk_level"`
	RecordedAt     time.Time      `yaml:"recorded_at"`
}
