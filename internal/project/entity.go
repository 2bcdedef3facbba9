package project

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Project struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Status     Status     `yaml:"status"`
	ClientName string     `yaml:"client_name"`
	TemplateID string     `yaml:"template_id,omitempty"`
	DueDate    *time.Time `yaml:"due_date,omitempty"`
	CreatedAt  time.Time  `yaml:"created_at"`
	UpdatedAt  time.Time  `yaml:"updated_at"`
}

// Active reports whether the project still has work in front of it.
func (p *Project) Active() bool {
	return p.Status == StatusPending || p.Status == StatusInProgress
}
