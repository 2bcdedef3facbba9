package planning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/project"
	projectimpl "github.com/firedeskhq/firedesk/internal/project/repositoryimpl"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

func TestPhasesForProjectType(t *testing.T) {
	phases := PhasesForProjectType("sprinkler_system")
	require.Len(t, phases, 4)

	assert.Equal(t, "Planning & Design", phases[0].Name)
	assert.Empty(t, phases[0].Dependencies)
	assert.Equal(t, []string{"3"}, phases[3].Dependencies)

	// Phase totals match their task data.
	assert.Equal(t, 2600.0, phases[0].EstimatedCost)
	assert.Equal(t, 34580.0, phases[1].EstimatedCost)
	assert.Equal(t, 14900.0, phases[2].EstimatedCost)
	assert.Equal(t, 2400.0, phases[3].EstimatedCost)

	for _, phase := range phases {
		assert.Equal(t, PhaseNotStarted, phase.Status)
		assert.Len(t, phase.Tasks, 3)
	}
}

func TestPhasesForUnknownType(t *testing.T) {
	assert.Empty(t, PhasesForProjectType("fire_alarm"))
	assert.Empty(t, PhasesForProjectType("unknown"))
}

func TestGenerateProjectPlan(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := projectimpl.NewYAMLRepository(s)

	require.NoError(t, repo.Create(ctx, &project.Project{
		ID:     "p1",
		Name:   "Warehouse Sprinklers",
		Status: project.StatusInProgress,
	}))

	planner := NewPlanner(repo)
	plan, err := planner.GenerateProjectPlan(ctx, "p1", "sprinkler_system")
	require.NoError(t, err)

	assert.Equal(t, "p1", plan.ProjectID)
	assert.Equal(t, "Warehouse Sprinklers", plan.ProjectName)
	assert.Len(t, plan.Phases, 4)
	assert.Equal(t, 2600+34580+14900+2400.0, plan.TotalEstimatedCost)
	assert.Equal(t, "within_budget", plan.BudgetStatus)
}

func TestGenerateProjectPlanMissingProject(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	planner := NewPlanner(projectimpl.NewYAMLRepository(s))

	_, err = planner.GenerateProjectPlan(ctx, "missing", "sprinkler_system")
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}
