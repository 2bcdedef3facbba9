package timeline

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/internal/template"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

// Server exposes schedule generation for catalog templates.
type Server struct{}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/templates/{templateID}/timeline", s.timeline)
}

type timelineRequest struct {
	Start time.Time `json:"start"`
}

func (s *Server) timeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tmpl := template.Find(chi.URLParam(r, "templateID"))
	if tmpl == nil {
		cerr.SetNewJSONError(ctx, cerr.NotFound, "template not found", nil)
		return
	}
	var req timelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Start.IsZero() {
		req.Start = time.Now()
	}
	cerr.SetJSONResponse(ctx, Generate(*tmpl, req.Start))
}
