// Package server exposes a watcher over HTTP.
//
// An editor integration posts document changes and reads annotations back:
//
//	POST   /v1/documents/change   {"path": "...", "content": "..."}
//	POST   /v1/documents/refresh  {"path": "...", "content": "..."}
//	GET    /v1/documents          tracked paths with annotations
//	DELETE /v1/documents?path=    clear one document (all when path is omitted)
//	GET    /v1/annotations?path=  current annotations of a document
//	GET    /v1/files              supported manifest file names
//	GET    /v1/inline             inline annotation toggle
//	POST   /v1/inline/toggle      flip the toggle
//	GET    /healthz
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/versionlens/pkg/annotation"
	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/state"
	"github.com/matzehuels/versionlens/pkg/watcher"
)

// maxBodyBytes bounds a posted manifest.
const maxBodyBytes = 4 << 20

// Server routes HTTP requests to a watcher.
type Server struct {
	watcher *watcher.Watcher
	state   *state.State
	logger  *log.Logger
	router  chi.Router
}

// New builds the HTTP API around w and st.
func New(w *watcher.Watcher, st *state.State, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{watcher: w, state: st, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/documents/change", s.handleChange)
			r.Post("/documents/refresh", s.handleRefresh)
		})
		r.Get("/documents", s.handleDocuments)
		r.Delete("/documents", s.handleClear)
		r.Get("/annotations", s.handleAnnotations)
		r.Get("/files", s.handleFiles)
		r.Get("/inline", s.handleInline)
		r.Post("/inline/toggle", s.handleToggle)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type changeRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type changeResponse struct {
	Path        string                  `json:"path"`
	Outcome     string                  `json:"outcome"`
	Annotations []annotation.Annotation `json:"annotations"`
}

type annotationsResponse struct {
	Path          string                  `json:"path"`
	InlineEnabled bool                    `json:"inline_enabled"`
	Annotations   []annotation.Annotation `json:"annotations"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleChange(w http.ResponseWriter, r *http.Request) {
	s.change(w, r, s.watcher.OnChange)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.change(w, r, s.watcher.Refresh)
}

func (s *Server) change(w http.ResponseWriter, r *http.Request, run func(ctx context.Context, path, content string) (watcher.Outcome, error)) {
	var req changeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Path == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "path is required"))
		return
	}

	outcome, err := run(r.Context(), req.Path, req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	list, _ := s.watcher.Annotations(req.Path)
	if list == nil {
		list = []annotation.Annotation{}
	}
	writeJSON(w, http.StatusOK, changeResponse{Path: req.Path, Outcome: outcome.String(), Annotations: list})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"paths": s.watcher.Paths()})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if path := r.URL.Query().Get("path"); path != "" {
		s.watcher.Clear(path)
	} else {
		s.watcher.ClearAll()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnnotations(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "path is required"))
		return
	}
	list, ok := s.watcher.Annotations(path)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no annotations for %s", path))
		return
	}
	if list == nil {
		list = []annotation.Annotation{}
	}
	writeJSON(w, http.StatusOK, annotationsResponse{
		Path:          path,
		InlineEnabled: s.state.InlineEnabled(),
		Annotations:   list,
	})
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"files": s.watcher.SupportedFiles()})
}

func (s *Server) handleInline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"inline_enabled": s.state.InlineEnabled()})
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	enabled := s.state.ToggleInline()
	s.logger.Info("inline annotations toggled", "enabled", enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"inline_enabled": enabled})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPackage:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidManifest:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
