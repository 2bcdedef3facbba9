package task

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/firedeskhq/firedesk/internal/eventbus"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	repo Repository
	bus  *eventbus.Bus
}

func NewServer(repo Repository, bus *eventbus.Bus) *Server {
	return &Server{repo: repo, bus: bus}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/tasks", s.create)
	r.Get("/tasks", s.list)
	r.Get("/tasks/{taskID}", s.get)
	r.Put("/tasks/{taskID}", s.update)
	r.Delete("/tasks/{taskID}", s.delete)
}

type createRequest struct {
	ProjectID      string     `json:"project_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Priority       Priority   `json:"priority,omitempty"`
	AssigneeID     string     `json:"assignee_id,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.ProjectID == "" || req.Name == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "project_id and name are required", nil)
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := time.Now()
	t := &Task{
		ID:             ulid.Make().String(),
		ProjectID:      req.ProjectID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         StatusPending,
		Priority:       priority,
		AssigneeID:     req.AssigneeID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	s.bus.PublishNew(eventbus.EventTaskCreated, t.ID, t.Name, map[string]string{"project_id": t.ProjectID})
	cerr.SetJSONResponse(ctx, t)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.repo.List(ctx, r.URL.Query().Get("project_id"), r.URL.Query().Get("assignee_id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, tasks)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := s.repo.Get(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, t)
}

type updateRequest struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *Status    `json:"status,omitempty"`
	Priority       *Priority  `json:"priority,omitempty"`
	AssigneeID     *string    `json:"assignee_id,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}

	t, err := s.repo.Get(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	wasCompleted := t.Status == StatusCompleted
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		t.AssigneeID = *req.AssigneeID
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = *req.EstimatedHours
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	if !wasCompleted && t.Status == StatusCompleted {
		s.bus.PublishNew(eventbus.EventTaskCompleted, t.ID, t.Name, map[string]string{"project_id": t.ProjectID})
	} else {
		s.bus.PublishNew(eventbus.EventTaskUpdated, t.ID, t.Name, map[string]string{"project_id": t.ProjectID})
	}
	cerr.SetJSONResponse(ctx, t)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "taskID")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
