package pushsubscription

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/firedeskhq/firedesk/internal/config"
	"github.com/firedeskhq/firedesk/pkg/cerr"
)

type Server struct {
	repo     Repository
	vapidEnv *config.VAPIDEnv
}

func NewServer(repo Repository, vapidEnv *config.VAPIDEnv) *Server {
	return &Server{repo: repo, vapidEnv: vapidEnv}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/push/vapid-public-key", s.publicKey)
	r.Post("/push/subscriptions", s.register)
	r.Delete("/push/subscriptions", s.remove)
}

func (s *Server) publicKey(w http.ResponseWriter, r *http.Request) {
	cerr.SetJSONResponse(r.Context(), map[string]string{"public_key": s.vapidEnv.VAPIDPublicKey})
}

type registerRequest struct {
	Endpoint  string `json:"endpoint"`
	P256dhKey string `json:"p256dh_key"`
	AuthKey   string `json:"auth_key"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Endpoint == "" || req.P256dhKey == "" || req.AuthKey == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "endpoint, p256dh_key and auth_key are required", nil)
		return
	}

	// Re-registering the same endpoint replaces the stored keys.
	if existing, err := s.repo.FindByEndpoint(ctx, req.Endpoint); err == nil && existing != nil {
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			cerr.SetJSONError(ctx, err)
			return
		}
	}

	sub := &Subscription{
		ID:        ulid.Make().String(),
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dhKey,
		AuthKey:   req.AuthKey,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, sub)
}

type removeRequest struct {
	Endpoint string `json:"endpoint"`
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Endpoint == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "endpoint is required", nil)
		return
	}
	if err := s.repo.DeleteByEndpoint(ctx, req.Endpoint); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
