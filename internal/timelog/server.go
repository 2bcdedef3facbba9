package timelog

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
	r.Post("/timelogs", s.start)
	r.Get("/timelogs", s.list)
	r.Post("/timelogs/{timeLogID}/stop", s.stop)
	r.Delete("/timelogs/{timeLogID}", s.delete)
}

type startRequest struct {
	TaskID    string     `json:"task_id"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

func (s *Server) start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.TaskID == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "task_id is required", nil)
		return
	}

	start := time.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}
	l := &TimeLog{
		ID:        ulid.Make().String(),
		TaskID:    req.TaskID,
		StartTime: start,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, l)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := r.URL.Query().Get("task_id")
	if taskID == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "task_id is required", nil)
		return
	}
	logs, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, logs)
}

type stopRequest struct {
	EndTime *time.Time `json:"end_time,omitempty"`
}

func (s *Server) stop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req stopRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
			return
		}
	}

	l, err := s.repo.Get(ctx, chi.URLParam(r, "timeLogID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if l.EndTime != nil {
		cerr.SetNewJSONError(ctx, cerr.FailedPrecondition, "time log already stopped", nil)
		return
	}

	end := time.Now()
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if end.Before(l.StartTime) {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "end time before start time", nil)
		return
	}
	l.EndTime = &end

	if err := s.repo.Update(ctx, l); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, l)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "timeLogID")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}
