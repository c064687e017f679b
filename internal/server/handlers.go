package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mazetrace/pkg/buildinfo"
	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/maze"
	"github.com/matzehuels/mazetrace/pkg/observability"
	"github.com/matzehuels/mazetrace/pkg/pipeline"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// =============================================================================
// Wire types
// =============================================================================

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and a human message.
type ErrorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleListMazes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, maze.ListResponse{Mazes: s.runner.Catalog.Names()})
}

func (s *Server) handleGetMaze(w http.ResponseWriter, r *http.Request) {
	m, err := s.runner.Catalog.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m.Info())
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req maze.RunRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Custom == nil {
		s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "maze_custom is required"))
		return
	}
	s.execute(w, r, pipeline.Options{
		Algorithm: req.Algorithm,
		Custom:    req.Custom,
	})
}

func (s *Server) handlePreset(algo search.Algorithm) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req maze.PresetRequest
		if err := s.decode(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		if req.MazeName == "" {
			s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "maze_name is required"))
			return
		}
		s.execute(w, r, pipeline.Options{
			Algorithm: algo.String(),
			Maze:      req.MazeName,
			Start:     req.Start,
			End:       req.End,
		})
	}
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Response())
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errs.New(errs.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: ErrorBody{
		Code:    errs.ErrCodeInvalidInput,
		Message: r.Method + " not allowed on " + r.URL.Path,
	}})
}

// =============================================================================
// Encoding
// =============================================================================

// decode reads a JSON body into v. Unknown fields are ignored so older
// clients sending extra keys keep working.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request body: %v", err)
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	code := errs.GetCode(err)
	msg := errs.UserMessage(err)
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
		code, msg = errs.ErrCodeInternal, "internal error"
	}
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
