package planning

import (
	"context"

	"github.com/firedeskhq/firedesk/internal/project"
)

// Planner builds phase plans for stored projects.
type Planner struct {
	projectRepo project.Repository
}

func NewPlanner(projectRepo project.Repository) *Planner {
	return &Planner{projectRepo: projectRepo}
}

// GenerateProjectPlan assembles the standard phase plan for a project. The
// plan starts as within budget; actuals accrue as phases run.
func (p *Planner) GenerateProjectPlan(ctx context.Context, projectID, projectType string) (*ProjectPlan, error) {
	proj, err := p.projectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	phases := PhasesForProjectType(projectType)
	var total float64
	for _, phase := range phases {
		total += phase.EstimatedCost
	}

	return &ProjectPlan{
		ProjectID:          proj.ID,
		ProjectName:        proj.Name,
		Phases:             phases,
		TotalEstimatedCost: total,
		BudgetStatus:       "within_budget",
	}, nil
}
