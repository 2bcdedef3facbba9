package planning

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	planner *Planner
}

func NewServer(planner *Planner) *Server {
	return &Server{planner: planner}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/projects/{projectID}/plan", s.plan)
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectType := r.URL.Query().Get("type")
	if projectType == "" {
		projectType = "sprinkler_system"
	}

	plan, err := s.planner.GenerateProjectPlan(ctx, chi.URLParam(r, "projectID"), projectType)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, plan)
}
