package template

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/firedeskhq/firedesk/internal/eventbus"
	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

// Server exposes the template catalog, subcontractor suggestions and
// template-to-project instantiation. Quote and timeline generation live on
// the pricing and timeline servers.
type Server struct {
	projectRepo project.Repository
	taskRepo    task.Repository
	bus         *eventbus.Bus
}

func NewServer(projectRepo project.Repository, taskRepo task.Repository, bus *eventbus.Bus) *Server {
	return &Server{projectRepo: projectRepo, taskRepo: taskRepo, bus: bus}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/templates", s.list)
	r.Get("/templates/{templateID}", s.get)
	r.Post("/templates/{templateID}/project", s.createProject)
	r.Get("/subcontractors", s.subcontractors)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	cerr.SetJSONResponse(r.Context(), Catalog())
}

func (s *Server) find(r *http.Request) *ProjectTemplate {
	tmpl := Find(chi.URLParam(r, "templateID"))
	if tmpl == nil {
		cerr.SetNewJSONError(r.Context(), cerr.NotFound, "template not found", nil)
	}
	return tmpl
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	if tmpl := s.find(r); tmpl != nil {
		cerr.SetJSONResponse(r.Context(), tmpl)
	}
}

type createProjectRequest struct {
	ClientName  string     `json:"client_name"`
	ProjectName string     `json:"project_name,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tmpl := s.find(r)
	if tmpl == nil {
		return
	}
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.ClientName == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "client_name is required", nil)
		return
	}

	draft, taskDrafts := CreateProjectFromTemplate(*tmpl, req.ClientName, req.ProjectName)

	now := time.Now()
	p := &project.Project{
		ID:         ulid.Make().String(),
		Name:       draft.Name,
		Status:     project.StatusPending,
		ClientName: req.ClientName,
		TemplateID: tmpl.ID,
		DueDate:    req.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	tasks := make([]*task.Task, 0, len(taskDrafts))
	for _, td := range taskDrafts {
		t := &task.Task{
			ID:             ulid.Make().String(),
			ProjectID:      p.ID,
			Name:           td.Name,
			Description:    td.Description,
			Status:         task.StatusPending,
			Priority:       td.Priority,
			EstimatedHours: td.EstimatedHours,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.taskRepo.Create(ctx, t); err != nil {
			cerr.SetJSONError(ctx, err)
			return
		}
		tasks = append(tasks, t)
	}

	s.bus.PublishNew(eventbus.EventProjectCreated, p.ID, p.Name, map[string]string{"template_id": tmpl.ID})
	cerr.SetJSONResponse(ctx, map[string]any{
		"project": p,
		"tasks":   tasks,
	})
}

func (s *Server) subcontractors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skills := r.URL.Query()["skill"]
	if len(skills) == 0 {
		cerr.SetJSONResponse(ctx, DefaultSubcontractors())
		return
	}
	cerr.SetJSONResponse(ctx, SuggestSubcontractors(skills, DefaultSubcontractors()))
}
