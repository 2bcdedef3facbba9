package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/firedeskhq/firedesk/internal/eventbus"
	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/task"
)

// Dispatcher turns bus events into push notifications. Only task completions
// and budget alerts reach the user's phone; everything else is too noisy.
type Dispatcher struct {
	eventBus    *eventbus.Bus
	taskRepo    task.Repository
	projectRepo project.Repository
	sender      *Sender
}

func NewDispatcher(eventBus *eventbus.Bus, taskRepo task.Repository, projectRepo project.Repository, sender *Sender) *Dispatcher {
	return &Dispatcher{
		eventBus:    eventBus,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		sender:      sender,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	subID, ch := d.eventBus.Subscribe(256)
	defer d.eventBus.Unsubscribe(subID)

	slog.Info("push notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("push notification dispatcher stopped")
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			switch event.Type {
			case eventbus.EventTaskCompleted:
				d.handleTaskCompleted(ctx, event)
			case eventbus.EventBudgetAlert:
				d.handleBudgetAlert(ctx, event)
			}
		}
	}
}

func (d *Dispatcher) handleTaskCompleted(ctx context.Context, event *eventbus.Event) {
	t, err := d.taskRepo.Get(ctx, event.ResourceID)
	if err != nil {
		slog.Error("push dispatcher: failed to get task", "id", event.ResourceID, "error", err)
		return
	}

	body := t.Name
	if p, err := d.projectRepo.Get(ctx, t.ProjectID); err == nil {
		body = fmt.Sprintf("%s (%s)", t.Name, p.Name)
	}

	d.sender.SendToAll(ctx, &Payload{
		Title: "Task completed",
		Body:  body,
		URL:   fmt.Sprintf("/projects/%s/tasks/%s", t.ProjectID, t.ID),
		Tag:   t.ID,
	})
}

func (d *Dispatcher) handleBudgetAlert(ctx context.Context, event *eventbus.Event) {
	title := "Budget alert"
	if p, err := d.projectRepo.Get(ctx, event.ResourceID); err == nil {
		title = fmt.Sprintf("Budget alert: %s", p.Name)
	}

	d.sender.SendToAll(ctx, &Payload{
		Title: title,
		Body:  event.Payload,
		URL:   fmt.Sprintf("/projects/%s/costs", event.ResourceID),
		Tag:   event.ID,
	})
}
