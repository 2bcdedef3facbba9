package task

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID             string     `yaml:"id"`
	ProjectID      string     `yaml:"project_id"`
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	Status         Status     `yaml:"status"`
	Priority       Priority   `yaml:"priority"`
	AssigneeID     string     `yaml:"assignee_id,omitempty"`
	DueDate        *time.Time `yaml:"due_date,omitempty"`
	EstimatedHours float64    `yaml:"estimated_hours"`
	CreatedAt      time.Time  `yaml:"created_at"`
	UpdatedAt      time.Time  `yaml:"updated_at"`
}

// Open reports whether the task still needs work.
func (t *Task) Open() bool {
	return t.Status != StatusCompleted
}
