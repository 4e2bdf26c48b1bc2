// Package api implements the HTTP service: a thin transport layer over the
// shared pipeline Runner, so API responses and CLI output always come from
// the same code path.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/draftline/draftline/pkg/buildinfo"
	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/layout"
	"github.com/draftline/draftline/pkg/observability"
	"github.com/draftline/draftline/pkg/pipeline"
	"github.com/draftline/draftline/pkg/validate"
)

// Server handles HTTP requests for layout computation.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layouts", s.handleLayouts)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// observe reports request timing to the logger and observability hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
	})
}

// LayoutRequest is the body of POST /v1/layouts.
type LayoutRequest struct {
	// Rows are raw cell values keyed by column name, one map per room.
	Rows []map[string]string `json:"rows"`
	// Strict elevates warnings to errors.
	Strict bool `json:"strict,omitempty"`
	// Refresh bypasses the layout cache.
	Refresh bool `json:"refresh,omitempty"`
}

// LayoutResponse is the body of a successful POST /v1/layouts.
type LayoutResponse struct {
	Summary    validate.Summary   `json:"summary"`
	Outcomes   []validate.Outcome `json:"outcomes"`
	Layouts    []*layout.Layout   `json:"layouts"`
	ConfigHash string             `json:"config_hash"`
	CacheHits  int                `json:"cache_hits"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleLayouts(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid JSON body: " + err.Error(),
			Code:  string(errors.ErrCodeInvalidInput),
		})
		return
	}
	if len(req.Rows) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "rows must not be empty",
			Code:  string(errors.ErrCodeInvalidInput),
		})
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Rows:    req.Rows,
		Strict:  req.Strict,
		Refresh: req.Refresh,
		Logger:  s.logger,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
			status = http.StatusBadRequest
		case errors.ErrCodeInvalidConfig:
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, errorResponse{
			Error: errors.UserMessage(err),
			Code:  string(errors.GetCode(err)),
		})
		return
	}

	writeJSON(w, http.StatusOK, LayoutResponse{
		Summary:    result.Batch.Summary,
		Outcomes:   result.Batch.Outcomes,
		Layouts:    result.Layouts,
		ConfigHash: result.ConfigHash,
		CacheHits:  result.CacheInfo.LayoutHits,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
