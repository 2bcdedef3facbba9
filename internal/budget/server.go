package budget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/internal/eventbus"
	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	engine      *Engine
	projectRepo project.Repository
	bus         *eventbus.Bus
}

func NewServer(engine *Engine, projectRepo project.Repository, bus *eventbus.Bus) *Server {
	return &Server{engine: engine, projectRepo: projectRepo, bus: bus}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/projects/{projectID}/costs", s.costs)
	r.Get("/cost-savings", s.costSavings)
}

type costsResponse struct {
	Costs  Costs   `json:"costs"`
	Alerts []Alert `json:"alerts"`
}

func (s *Server) costs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	if _, err := s.projectRepo.Get(ctx, projectID); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	costs, alerts, err := s.engine.CostsForProject(ctx, projectID)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	for _, alert := range alerts {
		if alert.Severity == SeverityDanger {
			s.bus.PublishNew(eventbus.EventBudgetAlert, projectID, alert.Alert, nil)
		}
	}

	cerr.SetJSONResponse(ctx, costsResponse{Costs: costs, Alerts: alerts})
}

func (s *Server) costSavings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectType := r.URL.Query().Get("type")
	if projectType == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "type is required", nil)
		return
	}
	cerr.SetJSONResponse(ctx, SuggestCostSavings(projectType))
}
