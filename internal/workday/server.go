package workday

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	deriver *Deriver
}

func NewServer(deriver *Deriver) *Server {
	return &Server{deriver: deriver}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/workday/items", s.items)
	r.Get("/workday/client-updates", s.clientUpdates)
	r.Get("/workday/quick-actions", s.quickActions)
	r.Get("/workday/documentation", s.documentation)
}

func (s *Server) items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := s.deriver.DailyWorkItems(ctx, time.Now())
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, items)
}

type clientUpdateResponse struct {
	ClientUpdate
	Message string `json:"message"`
}

func (s *Server) clientUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	updates, err := s.deriver.ClientUpdatesNeeded(ctx, time.Now())
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	resp := make([]clientUpdateResponse, 0, len(updates))
	for _, u := range updates {
		resp = append(resp, clientUpdateResponse{ClientUpdate: u, Message: GenerateClientUpdate(u)})
	}
	cerr.SetJSONResponse(ctx, resp)
}

func (s *Server) quickActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actions, err := s.deriver.QuickActions(ctx, time.Now())
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, actions)
}

func (s *Server) documentation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	statuses, err := s.deriver.DocumentationStatus(ctx, r.URL.Query().Get("project_id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, statuses)
}
