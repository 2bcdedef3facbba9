package budget

import (
	"context"

	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/timelog"
)

// Engine loads a project's tasks and time logs and derives its cost figures.
type Engine struct {
	taskRepo    task.Repository
	timeLogRepo timelog.Repository
}

func NewEngine(taskRepo task.Repository, timeLogRepo timelog.Repository) *Engine {
	return &Engine{taskRepo: taskRepo, timeLogRepo: timeLogRepo}
}

// CostsForProject computes budget figures and alerts for one project.
func (e *Engine) CostsForProject(ctx context.Context, projectID string) (Costs, []Alert, error) {
	tasks, err := e.taskRepo.List(ctx, projectID, "")
	if err != nil {
		return Costs{}, nil, err
	}

	logsByTask := make(map[string][]*timelog.TimeLog, len(tasks))
	for _, t := range tasks {
		logs, err := e.timeLogRepo.ListByTask(ctx, t.ID)
		if err != nil {
			return Costs{}, nil, err
		}
		logsByTask[t.ID] = logs
	}

	costs := CalculateProjectCosts(tasks, logsByTask)
	alerts := Alerts(costs.Estimated, costs.Actual, costs.VariancePercentage)
	return costs, alerts, nil
}
