package template

import "github.com/firedeskhq/firedesk/internal/task"

type Category string

const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryIndustrial  Category = "industrial"
)

// TemplateTask is one default task in a project template. Dependencies
// reference other template tasks by name.
type TemplateTask struct {
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description"`
	Priority       task.Priority `yaml:"priority"`
	EstimatedHours float64       `yaml:"estimated_hours"`
	RequiredSkills []string      `yaml:"required_skills,omitempty"`
	Equipment      []string      `yaml:"equipment,omitempty"`
	Dependencies   []string      `yaml:"dependencies,omitempty"`
}

type ProjectTemplate struct {
	ID                string         `yaml:"id"`
	Name              string         `yaml:"name"`
	Description       string         `yaml:"description"`
	Category          Category       `yaml:"category"`
	EstimatedHours    float64        `yaml:"estimated_hours"`
	EstimatedCost     float64        `yaml:"estimated_cost"`
	DefaultTasks      []TemplateTask `yaml:"default_tasks"`
	RequiredResources []string       `yaml:"required_resources,omitempty"`
}

// SubcontractorInfo describes an external trade that can be pulled onto a
// project.
type SubcontractorInfo struct {
	Name       string  `yaml:"name"`
	Trade      string  `yaml:"trade"`
	HourlyRate float64 `yaml:"hourly_rate"`
	Available  bool    `yaml:"available"`
}
