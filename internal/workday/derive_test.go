package workday

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/task"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func inProgressProject(id, name string, due *time.Time) *project.Project {
	return &project.Project{
		ID:         id,
		Name:       name,
		Status:     project.StatusInProgress,
		ClientName: "Acme Warehousing",
		DueDate:    due,
	}
}

func TestDailyWorkItemsDeadlineToday(t *testing.T) {
	// Due earlier today: ceil rounds the negative fraction up to zero days.
	due := testNow.Add(-6 * time.Hour)
	items := DailyWorkItems([]*project.Project{inProgressProject("p1", "Warehouse Sprinklers", &due)}, nil, testNow)

	require.Len(t, items, 1)
	assert.Equal(t, ItemTypeUrgent, items[0].Type)
	assert.Equal(t, "Project deadline in TODAY", items[0].Title)
	assert.Equal(t, task.PriorityHigh, items[0].Priority)
	require.NotNil(t, items[0].DueDate)
}

func TestDailyWorkItemsDeadlineTomorrow(t *testing.T) {
	due := testNow.Add(20 * time.Hour)
	items := DailyWorkItems([]*project.Project{inProgressProject("p1", "Warehouse Sprinklers", &due)}, nil, testNow)

	require.Len(t, items, 1)
	assert.Equal(t, "Project deadline in 1 days", items[0].Title)
}

func TestDailyWorkItemsActiveProject(t *testing.T) {
	due := testNow.Add(10 * 24 * time.Hour)
	items := DailyWorkItems([]*project.Project{inProgressProject("p1", "Warehouse Sprinklers", &due)}, nil, testNow)

	require.Len(t, items, 1)
	assert.Equal(t, ItemTypeToday, items[0].Type)
	assert.Equal(t, "Active project", items[0].Title)
	assert.Equal(t, task.PriorityMedium, items[0].Priority)
	assert.Nil(t, items[0].DueDate)
}

func TestDailyWorkItemsPendingProjectOnlyEmitsTasks(t *testing.T) {
	p := &project.Project{ID: "p1", Name: "Office Alarm", Status: project.StatusPending, ClientName: "Beta Ltd"}
	tasks := map[string][]*task.Task{
		"p1": {
			{ID: "t1", Name: "Order detectors", Priority: task.PriorityHigh, Status: task.StatusPending, Description: "smoke heads for floors 1-3"},
			{ID: "t2", Name: "Done already", Priority: task.PriorityHigh, Status: task.StatusCompleted},
			{ID: "t3", Name: "Low key", Priority: task.PriorityLow, Status: task.StatusPending},
		},
	}

	items := DailyWorkItems([]*project.Project{p}, tasks, testNow)

	require.Len(t, items, 1)
	assert.Equal(t, ItemTypeUrgent, items[0].Type)
	assert.Equal(t, "Order detectors", items[0].Title)
	assert.Equal(t, "smoke heads for floors 1-3", items[0].Description)
}

func TestDailyWorkItemsSortsUrgentFirstStable(t *testing.T) {
	dueFar := testNow.Add(20 * 24 * time.Hour)
	dueSoon := testNow.Add(2 * time.Hour)
	projects := []*project.Project{
		inProgressProject("p1", "Calm Project", &dueFar),
		inProgressProject("p2", "Hot Project", &dueSoon),
	}
	tasks := map[string][]*task.Task{
		"p1": {{ID: "t1", Name: "Fix leak", Priority: task.PriorityHigh, Status: task.StatusInProgress}},
	}

	items := DailyWorkItems(projects, tasks, testNow)

	require.Len(t, items, 3)
	// Urgent items keep their input order: p1's task came before p2's
	// deadline item.
	assert.Equal(t, "Fix leak", items[0].Title)
	assert.Equal(t, "Project deadline in 1 days", items[1].Title)
	assert.Equal(t, "Active project", items[2].Title)
}

func TestClientUpdatesNeeded(t *testing.T) {
	fresh := inProgressProject("p1", "Fresh", nil)
	fresh.UpdatedAt = testNow.Add(-24 * time.Hour)
	stale := inProgressProject("p2", "Stale", nil)
	stale.UpdatedAt = testNow.Add(-4 * 24 * time.Hour)
	staler := inProgressProject("p3", "Staler", nil)
	staler.UpdatedAt = testNow.Add(-9 * 24 * time.Hour)

	tasks := map[string][]*task.Task{
		"p2": {
			{ID: "t1", Name: "Hang pipe", Status: task.StatusCompleted},
			{ID: "t2", Name: "Pressure test", Status: task.StatusPending},
			{ID: "t3", Name: "Paint pipe", Status: task.StatusPending},
		},
	}

	updates := ClientUpdatesNeeded([]*project.Project{fresh, stale, staler}, tasks, testNow)

	require.Len(t, updates, 2)
	assert.Equal(t, "p3", updates[0].ProjectID)
	assert.Equal(t, 9, updates[0].DaysSinceUpdate)
	assert.Equal(t, 0, updates[0].ProgressPercentage)
	assert.Equal(t, "Update client on progress", updates[0].NextAction)

	assert.Equal(t, "p2", updates[1].ProjectID)
	assert.Equal(t, 33, updates[1].ProgressPercentage)
	assert.Equal(t, "Complete: Pressure test", updates[1].NextAction)
}

func TestGenerateClientUpdate(t *testing.T) {
	msg := GenerateClientUpdate(ClientUpdate{
		ProjectName:        "Warehouse Sprinklers",
		DaysSinceUpdate:    5,
		ProgressPercentage: 60,
		NextAction:         "Complete: Pressure test",
	})

	assert.True(t, strings.Contains(msg, "Warehouse Sprinklers"))
	assert.True(t, strings.Contains(msg, "60%"))
	assert.True(t, strings.Contains(msg, "Next step: Complete: Pressure test."))
	assert.True(t, strings.Contains(msg, "Last update was 5 days ago."))
	assert.True(t, strings.Contains(msg, "Will keep you posted."))
}

func TestGenerateClientUpdateYesterday(t *testing.T) {
	msg := GenerateClientUpdate(ClientUpdate{ProjectName: "Office Alarm", DaysSinceUpdate: 1})
	assert.True(t, strings.Contains(msg, "Updated yesterday."))
	assert.False(t, strings.Contains(msg, "days ago"))
}

func TestQuickActions(t *testing.T) {
	items := []WorkItem{
		{Type: ItemTypeUrgent},
		{Type: ItemTypeUrgent},
		{Type: ItemTypeToday},
	}
	updates := []ClientUpdate{{ProjectID: "p1"}}

	actions := QuickActions(items, updates)

	require.Len(t, actions, 3)
	assert.Equal(t, "2 urgent items need attention", actions[0].Title)
	assert.Equal(t, UrgencyHigh, actions[0].Urgency)
	assert.Equal(t, "1 client needs an update", actions[1].Title)
	assert.Equal(t, "1 active project in progress", actions[2].Title)
	assert.Equal(t, UrgencyMedium, actions[2].Urgency)
}

func TestQuickActionsEmpty(t *testing.T) {
	assert.Empty(t, QuickActions(nil, nil))
}

func TestDocumentationChecklist(t *testing.T) {
	p := inProgressProject("p1", "Warehouse Sprinklers", nil)
	statuses := DocumentationChecklist(p, []string{"Signed pressure test certificate (bay 4)"})

	require.Len(t, statuses, 7)
	byName := map[string]DocumentStatus{}
	for _, s := range statuses {
		byName[s.DocumentName] = s.Status
	}
	assert.Equal(t, DocumentStatusCompleted, byName["Pressure Test Certificate"])
	assert.Equal(t, DocumentStatusRequired, byName["Commissioning Certificate"])
}

func TestDocumentationChecklistCompletedProjectOverdue(t *testing.T) {
	p := &project.Project{ID: "p1", Name: "Done Job", Status: project.StatusCompleted}
	statuses := DocumentationChecklist(p, nil)

	for _, s := range statuses {
		assert.Equal(t, DocumentStatusOverdue, s.Status)
	}
}
