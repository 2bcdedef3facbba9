package template

import (
	"fmt"
	"strings"

	"github.com/firedeskhq/firedesk/internal/task"
)

// GeneratedProject is a project draft produced from a template, before it is
// persisted and given an id.
type GeneratedProject struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TemplateID     string  `json:"template_id"`
	EstimatedHours float64 `json:"estimated_hours"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// GeneratedTask is a task draft produced alongside a GeneratedProject.
type GeneratedTask struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Priority       task.Priority `json:"priority"`
	EstimatedHours float64       `json:"estimated_hours"`
}

// CreateProjectFromTemplate expands a template into a project draft and its
// task drafts. When projectName is empty the name is derived from the
// template and client names.
func CreateProjectFromTemplate(tmpl ProjectTemplate, clientName, projectName string) (GeneratedProject, []GeneratedTask) {
	name := projectName
	if name == "" {
		name = fmt.Sprintf("%s - %s", tmpl.Name, clientName)
	}

	proj := GeneratedProject{
		Name:           name,
		Description:    fmt.Sprintf("%s\n\nGenerated from template: %s", tmpl.Description, tmpl.Name),
		TemplateID:     tmpl.ID,
		EstimatedHours: tmpl.EstimatedHours,
		EstimatedCost:  tmpl.EstimatedCost,
	}

	tasks := make([]GeneratedTask, 0, len(tmpl.DefaultTasks))
	for _, tt := range tmpl.DefaultTasks {
		skills := "General"
		if len(tt.RequiredSkills) > 0 {
			skills = strings.Join(tt.RequiredSkills, ", ")
		}
		tasks = append(tasks, GeneratedTask{
			Name: tt.Name,
			Description: fmt.Sprintf("%s\n\nEstimated hours: %gh\nRequired skills: %s",
				tt.Description, tt.EstimatedHours, skills),
			Priority:       tt.Priority,
			EstimatedHours: tt.EstimatedHours,
		})
	}
	return proj, tasks
}

// SuggestSubcontractors returns the available subcontractors whose trade
// matches any of the required skills. Matching is a case-insensitive
// substring check; unavailable subcontractors are always excluded.
func SuggestSubcontractors(requiredSkills []string, available []SubcontractorInfo) []SubcontractorInfo {
	var matched []SubcontractorInfo
	for _, sub := range available {
		if !sub.Available {
			continue
		}
		trade := strings.ToLower(sub.Trade)
		for _, skill := range requiredSkills {
			if strings.Contains(trade, strings.ToLower(skill)) {
				matched = append(matched, sub)
				break
			}
		}
	}
	return matched
}
