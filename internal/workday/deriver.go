package workday

import (
	"context"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/firedeskhq/firedesk/internal/document"
	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/task"
)

// Deriver assembles the daily view from the project, task and document
// repositories. Load failures propagate to the caller; the daily view is on
// the critical path and must fail loud.
type Deriver struct {
	projectRepo  project.Repository
	taskRepo     task.Repository
	documentRepo document.Repository
}

func NewDeriver(projectRepo project.Repository, taskRepo task.Repository, documentRepo document.Repository) *Deriver {
	return &Deriver{projectRepo: projectRepo, taskRepo: taskRepo, documentRepo: documentRepo}
}

func (d *Deriver) loadTasks(ctx context.Context, projects []*project.Project) (map[string][]*task.Task, error) {
	tasksByProject := make(map[string][]*task.Task, len(projects))
	for _, p := range projects {
		tasks, err := d.taskRepo.List(ctx, p.ID, "")
		if err != nil {
			return nil, err
		}
		tasksByProject[p.ID] = tasks
	}
	return tasksByProject, nil
}

// DailyWorkItems returns today's attention list across all active projects.
func (d *Deriver) DailyWorkItems(ctx context.Context, now time.Time) ([]WorkItem, error) {
	projects, err := d.projectRepo.List(ctx, []project.Status{project.StatusPending, project.StatusInProgress})
	if err != nil {
		return nil, err
	}
	tasksByProject, err := d.loadTasks(ctx, projects)
	if err != nil {
		return nil, err
	}
	return DailyWorkItems(projects, tasksByProject, now), nil
}

// ClientUpdatesNeeded returns the projects overdue for a client update,
// stalest first.
func (d *Deriver) ClientUpdatesNeeded(ctx context.Context, now time.Time) ([]ClientUpdate, error) {
	projects, err := d.projectRepo.List(ctx, []project.Status{project.StatusInProgress})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.Before(projects[j].UpdatedAt)
	})
	tasksByProject, err := d.loadTasks(ctx, projects)
	if err != nil {
		return nil, err
	}
	return ClientUpdatesNeeded(projects, tasksByProject, now), nil
}

// QuickActions derives the suggested action list from the current work items
// and pending client updates. The two source views operate on disjoint data
// and are loaded concurrently.
func (d *Deriver) QuickActions(ctx context.Context, now time.Time) ([]QuickAction, error) {
	var (
		items   []WorkItem
		updates []ClientUpdate
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		items, err = d.DailyWorkItems(ctx, now)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		updates, err = d.ClientUpdatesNeeded(ctx, now)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return QuickActions(items, updates), nil
}

// DocumentationStatus reports the compliance checklist. With a projectID it
// covers that project only, otherwise every in-progress or completed
// project.
func (d *Deriver) DocumentationStatus(ctx context.Context, projectID string) ([]DocumentationStatus, error) {
	var projects []*project.Project
	if projectID != "" {
		p, err := d.projectRepo.Get(ctx, projectID)
		if err != nil {
			return nil, err
		}
		projects = []*project.Project{p}
	} else {
		var err error
		projects, err = d.projectRepo.List(ctx, []project.Status{project.StatusInProgress, project.StatusCompleted})
		if err != nil {
			return nil, err
		}
	}

	var statuses []DocumentationStatus
	for _, p := range projects {
		docs, err := d.documentRepo.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		var names []string
		for _, doc := range docs {
			if doc.Status == document.StatusActive {
				names = append(names, doc.Name)
			}
		}
		statuses = append(statuses, DocumentationChecklist(p, names)...)
	}
	return statuses, nil
}
