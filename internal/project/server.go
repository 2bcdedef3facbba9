package project

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
	r.Post("/projects", s.create)
	r.Get("/projects", s.list)
	r.Get("/projects/{projectID}", s.get)
	r.Put("/projects/{projectID}", s.update)
	r.Delete("/projects/{projectID}", s.delete)
}

type createRequest struct {
	Name       string     `json:"name"`
	ClientName string     `json:"client_name"`
	TemplateID string     `json:"template_id,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Name == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "name is required", nil)
		return
	}

	now := time.Now()
	p := &Project{
		ID:         ulid.Make().String(),
		Name:       req.Name,
		Status:     StatusPending,
		ClientName: req.ClientName,
		TemplateID: req.TemplateID,
		DueDate:    req.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	s.bus.PublishNew(eventbus.EventProjectCreated, p.ID, p.Name, nil)
	cerr.SetJSONResponse(ctx, p)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var statuses []Status
	for _, v := range r.URL.Query()["status"] {
		statuses = append(statuses, Status(v))
	}
	projects, err := s.repo.List(ctx, statuses)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, projects)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.repo.Get(ctx, chi.URLParam(r, "projectID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, p)
}

type updateRequest struct {
	Name       *string    `json:"name,omitempty"`
	Status     *Status    `json:"status,omitempty"`
	ClientName *string    `json:"client_name,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}

	p, err := s.repo.Get(ctx, chi.URLParam(r, "projectID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	s.bus.PublishNew(eventbus.EventProjectUpdated, p.ID, p.Name, nil)
	cerr.SetJSONResponse(ctx, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "projectID")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
