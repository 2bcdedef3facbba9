package prioritizer

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/firedeskhq/firedesk/internal/metric"
	"github.com/firedeskhq/firedesk/internal/prediction"
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/team"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

// Prioritizer runs scoring over a project's open tasks and persists the
// results as predictions. Prioritization is advisory: collaborator failures
// are logged and reported as an empty list, never propagated.
type Prioritizer struct {
	taskRepo       task.Repository
	teamRepo       team.Repository
	metricRepo     metric.Repository
	predictionRepo prediction.Repository
}

func New(taskRepo task.Repository, teamRepo team.Repository, metricRepo metric.Repository, predictionRepo prediction.Repository) *Prioritizer {
	return &Prioritizer{
		taskRepo:       taskRepo,
		teamRepo:       teamRepo,
		metricRepo:     metricRepo,
		predictionRepo: predictionRepo,
	}
}

// PrioritizeProject scores every open task in the project, highest score
// first. An empty result can mean either "no open tasks" or "unable to
// prioritize" after a logged failure.
func (p *Prioritizer) PrioritizeProject(ctx context.Context, projectID string) []PrioritizedTask {
	now := time.Now()

	allTasks, err := p.taskRepo.List(ctx, projectID, "")
	if err != nil {
		slog.ErrorContext(ctx, "failed to load tasks for prioritization", "project_id", projectID, "error", err)
		return nil
	}
	members, err := p.teamRepo.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load team for prioritization", "project_id", projectID, "error", err)
		return nil
	}

	// A missing snapshot just skips the health factors.
	metrics, err := p.metricRepo.Get(ctx, projectID)
	if err != nil {
		if !cerr.IsCode(err, cerr.NotFound) {
			slog.ErrorContext(ctx, "failed to load project metrics", "project_id", projectID, "error", err)
			return nil
		}
		metrics = nil
	}

	var prioritized []PrioritizedTask
	for _, t := range allTasks {
		if !t.Open() {
			continue
		}
		prioritized = append(prioritized, Score(t, allTasks, metrics, members, now))
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].PriorityScore > prioritized[j].PriorityScore
	})

	p.savePredictions(ctx, prioritized, now)
	return prioritized
}

// RecommendedTaskOrder scores the user's open tasks across all their
// projects, highest score first.
func (p *Prioritizer) RecommendedTaskOrder(ctx context.Context, userID string) []PrioritizedTask {
	now := time.Now()

	userTasks, err := p.taskRepo.List(ctx, "", userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load user tasks", "user_id", userID, "error", err)
		return nil
	}
	members, err := p.teamRepo.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load team", "user_id", userID, "error", err)
		return nil
	}

	projectTasks := map[string][]*task.Task{}
	projectMetrics := map[string]*metric.Metrics{}

	var prioritized []PrioritizedTask
	for _, t := range userTasks {
		if !t.Open() {
			continue
		}

		allTasks, ok := projectTasks[t.ProjectID]
		if !ok {
			allTasks, err = p.taskRepo.List(ctx, t.ProjectID, "")
			if err != nil {
				slog.ErrorContext(ctx, "failed to load project tasks", "project_id", t.ProjectID, "error", err)
				return nil
			}
			projectTasks[t.ProjectID] = allTasks

			metrics, err := p.metricRepo.Get(ctx, t.ProjectID)
			if err != nil && !cerr.IsCode(err, cerr.NotFound) {
				slog.ErrorContext(ctx, "failed to load project metrics", "project_id", t.ProjectID, "error", err)
				return nil
			}
			projectMetrics[t.ProjectID] = metrics
		}

		prioritized = append(prioritized, Score(t, allTasks, projectMetrics[t.ProjectID], members, now))
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].PriorityScore > prioritized[j].PriorityScore
	})
	return prioritized
}

// savePredictions writes one prediction per scored task. A failed write is a
// cache miss, not a scoring failure, so it is only logged.
func (p *Prioritizer) savePredictions(ctx context.Context, prioritized []PrioritizedTask, now time.Time) {
	for _, pt := range prioritized {
		pred := &prediction.Prediction{
			TaskID:              pt.TaskID,
			PriorityScore:       pt.PriorityScore,
			SuggestedPriority:   string(pt.SuggestedPriority),
			PredictedHours:      pt.EstimatedHours,
			RecommendedAssignee: pt.RecommendedAssignee,
			ConfidenceScore:     75,
			ModelVersion:        "1.0",
			UpdatedAt:           now,
		}
		if err := p.predictionRepo.Upsert(ctx, pred); err != nil {
			slog.ErrorContext(ctx, "failed to save task prediction", "task_id", pt.TaskID, "error", err)
		}
	}
}
