package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/task"
)

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range Catalog() {
		assert.False(t, seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.DefaultTasks, "template %s has no tasks", tmpl.ID)
	}
}

func TestFind(t *testing.T) {
	tmpl := Find("tpl-fire-alarm")
	require.NotNil(t, tmpl)
	assert.Equal(t, "tpl-fire-alarm", tmpl.ID)

	assert.Nil(t, Find("tpl-unknown"))
}

func TestCreateProjectFromTemplate(t *testing.T) {
	tmpl := ProjectTemplate{
		ID:             "tpl-x",
		Name:           "Fire Alarm Install",
		Description:    "Standard alarm install",
		EstimatedHours: 40,
		EstimatedCost:  12000,
		DefaultTasks: []TemplateTask{
			{
				Name:           "Wiring",
				Description:    "Run cabling",
				Priority:       task.PriorityHigh,
				EstimatedHours: 12.5,
				RequiredSkills: []string{"Electrical", "Fire Alarm"},
			},
			{
				Name:           "Handover",
				Description:    "Client walkthrough",
				Priority:       task.PriorityLow,
				EstimatedHours: 2,
			},
		},
	}

	proj, tasks := CreateProjectFromTemplate(tmpl, "Acme Warehousing", "")

	assert.Equal(t, "Fire Alarm Install - Acme Warehousing", proj.Name)
	assert.Equal(t, "Standard alarm install\n\nGenerated from template: Fire Alarm Install", proj.Description)
	assert.Equal(t, "tpl-x", proj.TemplateID)
	assert.Equal(t, 40.0, proj.EstimatedHours)
	assert.Equal(t, 12000.0, proj.EstimatedCost)

	require.Len(t, tasks, 2)
	assert.Equal(t, "Run cabling\n\nEstimated hours: 12.5h\nRequired skills: Electrical, Fire Alarm", tasks[0].Description)
	assert.Equal(t, task.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "Client walkthrough\n\nEstimated hours: 2h\nRequired skills: General", tasks[1].Description)
}

func TestCreateProjectFromTemplateExplicitName(t *testing.T) {
	proj, _ := CreateProjectFromTemplate(ProjectTemplate{Name: "Tpl"}, "Client", "Warehouse Retrofit")
	assert.Equal(t, "Warehouse Retrofit", proj.Name)
}

func TestSuggestSubcontractors(t *testing.T) {
	subs := []SubcontractorInfo{
		{Name: "A", Trade: "Fire Alarm Technician", Available: true},
		{Name: "B", Trade: "Sprinkler Systems Specialist", Available: true},
		{Name: "C", Trade: "Fire Alarm Technician", Available: false},
	}

	t.Run("case insensitive match", func(t *testing.T) {
		matched := SuggestSubcontractors([]string{"FIRE ALARM"}, subs)
		require.Len(t, matched, 1)
		assert.Equal(t, "A", matched[0].Name)
	})

	t.Run("unavailable excluded even on exact match", func(t *testing.T) {
		matched := SuggestSubcontractors([]string{"Fire Alarm Technician"}, subs)
		require.Len(t, matched, 1)
		assert.Equal(t, "A", matched[0].Name)
	})

	t.Run("multiple skills no duplicates", func(t *testing.T) {
		matched := SuggestSubcontractors([]string{"alarm", "technician"}, subs)
		require.Len(t, matched, 1)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SuggestSubcontractors([]string{"plumbing"}, subs))
	})
}
