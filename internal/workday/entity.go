// Package workday derives the project manager's daily view from project and
// task records: what needs attention now, which clients are overdue for an
// update, and which documents are still outstanding.
package workday

import (
	"time"

	"github.com/firedeskhq/firedesk/internal/task"
)

type ItemType string

const (
	ItemTypeUrgent   ItemType = "urgent"
	ItemTypeToday    ItemType = "today"
	ItemTypeUpcoming ItemType = "upcoming"
)

type WorkItem struct {
	ID          string        `json:"id"`
	Type        ItemType      `json:"type"`
	Title       string        `json:"title"`
	ProjectName string        `json:"project_name"`
	ClientName  string        `json:"client_name"`
	Status      string        `json:"status"`
	Priority    task.Priority `json:"priority"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Description string        `json:"description,omitempty"`
}

type ClientUpdate struct {
	ProjectID          string    `json:"project_id"`
	ProjectName        string    `json:"project_name"`
	ClientName         string    `json:"client_name"`
	Status             string    `json:"status"`
	LastUpdate         time.Time `json:"last_update"`
	DaysSinceUpdate    int       `json:"days_since_update"`
	ProgressPercentage int       `json:"progress_percentage"`
	NextAction         string    `json:"next_action,omitempty"`
}

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type QuickAction struct {
	Title   string  `json:"title"`
	Action  string  `json:"action"`
	Urgency Urgency `json:"urgency"`
}

type DocumentStatus string

const (
	DocumentStatusRequired   DocumentStatus = "required"
	DocumentStatusInProgress DocumentStatus = "in_progress"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusOverdue    DocumentStatus = "overdue"
)

type DocumentationStatus struct {
	DocumentType string         `json:"document_type"`
	DocumentName string         `json:"document_name"`
	ProjectID    string         `json:"project_id"`
	ProjectName  string         `json:"project_name"`
	Status       DocumentStatus `json:"status"`
}
