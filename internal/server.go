package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/firedeskhq/firedesk/internal/budget"
	"github.com/firedeskhq/firedesk/internal/config"
	"github.com/firedeskhq/firedesk/internal/planning"
	"github.com/firedeskhq/firedesk/internal/pricing"
	"github.com/firedeskhq/firedesk/internal/prioritizer"
	"github.com/firedeskhq/firedesk/internal/project"
	"github.com/firedeskhq/firedesk/internal/pushsubscription"
	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/internal/team"
	"github.com/firedeskhq/firedesk/internal/template"
	"github.com/firedeskhq/firedesk/internal/timeline"
	"github.com/firedeskhq/firedesk/internal/timelog"
	"github.com/firedeskhq/firedesk/internal/workday"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/clog"
)

type Server struct {
	server                 *http.Server
	env                    *config.Env
	projectServer          *project.Server
	taskServer             *task.Server
	timeLogServer          *timelog.Server
	teamServer             *team.Server
	templateServer         *template.Server
	pricingServer          *pricing.Server
	timelineServer         *timeline.Server
	budgetServer           *budget.Server
	planningServer         *planning.Server
	prioritizerServer      *prioritizer.Server
	workdayServer          *workday.Server
	pushSubscriptionServer *pushsubscription.Server
}

func NewServer(
	env *config.Env,
	projectServer *project.Server,
	taskServer *task.Server,
	timeLogServer *timelog.Server,
	teamServer *team.Server,
	templateServer *template.Server,
	pricingServer *pricing.Server,
	timelineServer *timeline.Server,
	budgetServer *budget.Server,
	planningServer *planning.Server,
	prioritizerServer *prioritizer.Server,
	workdayServer *workday.Server,
	pushSubscriptionServer *pushsubscription.Server,
) *Server {
	return &Server{
		env:                    env,
		projectServer:          projectServer,
		taskServer:             taskServer,
		timeLogServer:          timeLogServer,
		teamServer:             teamServer,
		templateServer:         templateServer,
		pricingServer:          pricingServer,
		timelineServer:         timelineServer,
		budgetServer:           budgetServer,
		planningServer:         planningServer,
		prioritizerServer:      prioritizerServer,
		workdayServer:          workdayServer,
		pushSubscriptionServer: pushSubscriptionServer,
	}
}

// ListenAndServe starts the HTTP server. The provided context is used as the
// base context for all incoming requests via http.Server.BaseContext, so
// cancelling it on shutdown also cancels in-flight request contexts.
func (s *Server) ListenAndServe(ctx context.Context) error {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(
			clog.SlogChiMiddleware(),
			cerr.NewJSONResponseChiMiddleware(),
		)
		s.projectServer.Routes(r)
		s.taskServer.Routes(r)
		s.timeLogServer.Routes(r)
		s.teamServer.Routes(r)
		s.templateServer.Routes(r)
		s.pricingServer.Routes(r)
		s.timelineServer.Routes(r)
		s.budgetServer.Routes(r)
		s.planningServer.Routes(r)
		s.prioritizerServer.Routes(r)
		s.workdayServer.Routes(r)
		s.pushSubscriptionServer.Routes(r)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
		})
	})

	mux := http.NewServeMux()
	mux.Handle("/health", &HealthChecker{})
	mux.Handle("/api/", r)

	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr: addr,
		Handler: h2c.NewHandler(cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(s.apiKeyMiddleware(mux)), &http2.Server{}),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip API key check for the health endpoint.
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			apiKey = r.Header.Get("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}
		if apiKey != s.env.APIKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
