package workday

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/task"
)

// updateStalenessDays is the age at which a project is flagged for a client
// update.
const updateStalenessDays = 3

// daysUntil counts full days from now to due, rounded up. A deadline later
// today counts as 0.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// daysSince counts elapsed full days from then to now, rounded down.
func daysSince(now, then time.Time) int {
	return int(math.Floor(now.Sub(then).Hours() / 24))
}

// DailyWorkItems derives the attention list for active projects. In-progress
// projects due within a day produce an urgent deadline item, other
// in-progress projects a medium "Active project" item, and every open high
// priority task an urgent item of its own. Items are ordered urgent first,
// preserving input order within each type.
func DailyWorkItems(projects []*project.Project, tasksByProject map[string][]*task.Task, now time.Time) []WorkItem {
	var items []WorkItem

	for _, p := range projects {
		if p.Status == project.StatusInProgress && p.DueDate != nil && daysUntil(now, *p.DueDate) <= 1 {
			d := daysUntil(now, *p.DueDate)
			title := fmt.Sprintf("Project deadline in %d days", d)
			if d == 0 {
				title = "Project deadline in TODAY"
			}
			items = append(items, WorkItem{
				ID:          p.ID,
				Type:        ItemTypeUrgent,
				Title:       title,
				ProjectName: p.Name,
				ClientName:  p.ClientName,
				Status:      string(p.Status),
				Priority:    task.PriorityHigh,
				DueDate:     p.DueDate,
			})
		} else if p.Status == project.StatusInProgress {
			items = append(items, WorkItem{
				ID:          p.ID,
				Type:        ItemTypeToday,
				Title:       "Active project",
				ProjectName: p.Name,
				ClientName:  p.ClientName,
				Status:      string(p.Status),
				Priority:    task.PriorityMedium,
			})
		}

		for _, t := range tasksByProject[p.ID] {
			if t.Priority == task.PriorityHigh && t.Status != task.StatusCompleted {
				items = append(items, WorkItem{
					ID:          t.ID,
					Type:        ItemTypeUrgent,
					Title:       t.Name,
					ProjectName: p.Name,
					ClientName:  p.ClientName,
					Status:      string(t.Status),
					Priority:    task.PriorityHigh,
					Description: t.Description,
				})
			}
		}
	}

	typeRank := map[ItemType]int{ItemTypeUrgent: 0, ItemTypeToday: 1, ItemTypeUpcoming: 2}
	sort.SliceStable(items, func(i, j int) bool {
		return typeRank[items[i].Type] < typeRank[items[j].Type]
	})
	return items
}

// ClientUpdatesNeeded flags in-progress projects whose record has not been
// touched for three or more days, stalest first.
func ClientUpdatesNeeded(projects []*project.Project, tasksByProject map[string][]*task.Task, now time.Time) []ClientUpdate {
	var updates []ClientUpdate

	for _, p := range projects {
		if p.Status != project.StatusInProgress {
			continue
		}
		days := daysSince(now, p.UpdatedAt)
		if days < updateStalenessDays {
			continue
		}

		tasks := tasksByProject[p.ID]
		completed := 0
		for _, t := range tasks {
			if t.Status == task.StatusCompleted {
				completed++
			}
		}
		progress := 0
		if len(tasks) > 0 {
			progress = int(math.Round(float64(completed) / float64(len(tasks)) * 100))
		}

		nextAction := "Update client on progress"
		for _, t := range tasks {
			if t.Status == task.StatusPending {
				nextAction = fmt.Sprintf("Complete: %s", t.Name)
				break
			}
		}

		updates = append(updates, ClientUpdate{
			ProjectID:          p.ID,
			ProjectName:        p.Name,
			ClientName:         p.ClientName,
			Status:             string(p.Status),
			LastUpdate:         p.UpdatedAt,
			DaysSinceUpdate:    days,
			ProgressPercentage: progress,
			NextAction:         nextAction,
		})
	}

	sort.SliceStable(updates, func(i, j int) bool {
		return updates[i].DaysSinceUpdate > updates[j].DaysSinceUpdate
	})
	return updates
}

// GenerateClientUpdate renders the ready-to-send update message for one
// project.
func GenerateClientUpdate(u ClientUpdate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi, just an update on the %s project. ", u.ProjectName)
	fmt.Fprintf(&b, "Progress is at %d%% completion. ", u.ProgressPercentage)
	if u.NextAction != "" {
		fmt.Fprintf(&b, "Next step: %s. ", u.NextAction)
	}
	if u.DaysSinceUpdate == 1 {
		b.WriteString("Updated yesterday.")
	} else {
		fmt.Fprintf(&b, "Last update was %d days ago. ", u.DaysSinceUpdate)
	}
	b.WriteString("Should have it completed soon. Will keep you posted.")
	return b.String()
}

// QuickActions condenses the work item and client update lists into at most
// three suggested actions.
func QuickActions(items []WorkItem, updates []ClientUpdate) []QuickAction {
	var actions []QuickAction

	urgent := 0
	active := 0
	for _, item := range items {
		switch item.Type {
		case ItemTypeUrgent:
			urgent++
		case ItemTypeToday:
			active++
		}
	}

	if urgent > 0 {
		noun := "items"
		if urgent == 1 {
			noun = "item"
		}
		actions = append(actions, QuickAction{
			Title:   fmt.Sprintf("%d urgent %s need attention", urgent, noun),
			Action:  "Review urgent tasks",
			Urgency: UrgencyHigh,
		})
	}

	if len(updates) > 0 {
		verb := "clients need"
		if len(updates) == 1 {
			verb = "client needs"
		}
		actions = append(actions, QuickAction{
			Title:   fmt.Sprintf("%d %s an update", len(updates), verb),
			Action:  "Send client updates",
			Urgency: UrgencyHigh,
		})
	}

	if active > 0 {
		noun := "projects"
		if active == 1 {
			noun = "project"
		}
		actions = append(actions, QuickAction{
			Title:   fmt.Sprintf("%d active %s in progress", active, noun),
			Action:  "Review project status",
			Urgency: UrgencyMedium,
		})
	}

	return actions
}

// requiredDocuments is the fire protection compliance checklist every
// project must eventually satisfy.
var requiredDocuments = []struct {
	name    string
	docType string
}{
	{"Work Appointment Schedule", "form"},
	{"Site File Request", "form"},
	{"ASIB Inspection Request", "form"},
	{"Pressure Test Certificate", "certificate"},
	{"Installation QCP", "checklist"},
	{"Site Daily Diary", "form"},
	{"Commissioning Certificate", "certificate"},
}

// DocumentationChecklist reports the checklist state for one project given
// the names of its linked active documents. Matching is a case-insensitive
// substring test; a missing document on a completed project is overdue.
func DocumentationChecklist(p *project.Project, linkedDocNames []string) []DocumentationStatus {
	statuses := make([]DocumentationStatus, 0, len(requiredDocuments))
	for _, req := range requiredDocuments {
		exists := false
		for _, name := range linkedDocNames {
			if strings.Contains(strings.ToLower(name), strings.ToLower(req.name)) {
				exists = true
				break
			}
		}

		status := DocumentStatusRequired
		if exists {
			status = DocumentStatusCompleted
		} else if p.Status == project.StatusCompleted {
			status = DocumentStatusOverdue
		}

		statuses = append(statuses, DocumentationStatus{
			DocumentType: req.docType,
			DocumentName: req.name,
			ProjectID:    p.ID,
			ProjectName:  p.Name,
			Status:       status,
		})
	}
	return statuses
}
