package team

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	repo Repository
}

func NewServer(repo Repository) *Server {
	return &Server{repo: repo}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/team", s.create)
	r.Get("/team", s.list)
	r.Get("/team/{memberID}", s.get)
	r.Delete("/team/{memberID}", s.delete)
}

type createRequest struct {
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.FullName == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "full_name is required", nil)
		return
	}

	m := &Member{
		ID:        ulid.Make().String(),
		FullName:  req.FullName,
		Role:      req.Role,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, m)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	members, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, members)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m, err := s.repo.Get(ctx, chi.URLParam(r, "memberID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, m)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "memberID")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
