package prioritizer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	prioritizer *Prioritizer
}

func NewServer(p *Prioritizer) *Server {
	return &Server{prioritizer: p}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/projects/{projectID}/prioritize", s.prioritize)
	r.Get("/team/{memberID}/task-order", s.taskOrder)
}

func (s *Server) prioritize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	// An empty list can mean no open tasks or a logged scoring failure;
	// the response carries the tasks either way.
	tasks := s.prioritizer.PrioritizeProject(ctx, chi.URLParam(r, "projectID"))
	if tasks == nil {
		tasks = []PrioritizedTask{}
	}
	cerr.SetJSONResponse(ctx, tasks)
}

func (s *Server) taskOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks := s.prioritizer.RecommendedTaskOrder(ctx, chi.URLParam(r, "memberID"))
	if tasks == nil {
		tasks = []PrioritizedTask{}
	}
	cerr.SetJSONResponse(ctx, tasks)
}
