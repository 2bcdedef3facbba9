package pricing

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/firedeskhq/firedesk/internal/template"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

// Server exposes quote generation for catalog templates.
type Server struct{}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/templates/{templateID}/quote", s.quote)
}

type quoteRequest struct {
	Complexity Complexity `json:"complexity,omitempty"`
}

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tmpl := template.Find(chi.URLParam(r, "templateID"))
	if tmpl == nil {
		cerr.SetNewJSONError(ctx, cerr.NotFound, "template not found", nil)
		return
	}
	var req quoteRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
			return
		}
	}
	complexity := req.Complexity
	if complexity == "" {
		complexity = ComplexityStandard
	}

	cerr.SetJSONResponse(ctx, map[string]any{
		"estimate": EstimateProjectCost(*tmpl, complexity),
		"quote":    GenerateQuote(*tmpl, time.Now()),
	})
}
