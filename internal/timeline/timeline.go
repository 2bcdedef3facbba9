// Package timeline sequences a project template's default tasks into dated
// entries with priority based buffers between them.
package timeline

import (
	"strings"
	"time"

	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/template"
)

type Phase string

const (
	PhasePlanning      Phase = "Planning"
	PhaseInstallation  Phase = "Installation"
	PhaseCommissioning Phase = "Commissioning"
	PhaseCompletion    Phase = "Completion"
	PhasePreparation   Phase = "Preparation"
)

type Entry struct {
	TaskName      string    `json:"task_name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
	Phase         Phase     `json:"phase"`
}

// phaseKeywords maps substrings of a task name to its phase. Order matters:
// the first matching group wins.
var phaseKeywords = []struct {
	keywords []string
	phase    Phase
}{
	{[]string{"survey", "design", "planning"}, PhasePlanning},
	{[]string{"install", "mount"}, PhaseInstallation},
	{[]string{"test", "commission"}, PhaseCommissioning},
	{[]string{"train", "documentation"}, PhaseCompletion},
}

// DeterminePhase classifies a task name into a project phase by
// case-insensitive substring match.
func DeterminePhase(taskName string) Phase {
	name := strings.ToLower(taskName)
	for _, group := range phaseKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(name, kw) {
				return group.phase
			}
		}
	}
	return PhasePreparation
}

// bufferAfter returns the gap scheduled after a finished task before the
// next one may start. High priority work gets the short buffer.
func bufferAfter(priority task.Priority) time.Duration {
	if priority == task.PriorityHigh {
		return 2 * time.Hour
	}
	return 4 * time.Hour
}

// Generate schedules the template's default tasks back to back from start,
// preserving template order. Each task runs for its estimated hours and is
// followed by a 2 hour buffer when high priority, 4 hours otherwise. A
// template with no tasks yields an empty timeline.
func Generate(tmpl template.ProjectTemplate, start time.Time) []Entry {
	entries := make([]Entry, 0, len(tmpl.DefaultTasks))
	current := start
	for _, t := range tmpl.DefaultTasks {
		end := current.Add(time.Duration(t.EstimatedHours * float64(time.Hour)))
		entries = append(entries, Entry{
			TaskName:      t.Name,
			Start:         current,
			End:           end,
			DurationHours: t.EstimatedHours,
			Phase:         DeterminePhase(t.Name),
		})
		current = end.Add(bufferAfter(t.Priority))
	}
	return entries
}
