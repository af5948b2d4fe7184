// Package httpapi serves scene documents and their resolved layouts as JSON.
package httpapi

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/registry"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// Server answers layout queries. Documents are parsed and resolved per
// request so edits on disk show up immediately.
type Server struct {
	resolver *assets.Resolver
	display  config.DisplayConfig
	logger   *log.Logger
	builtin  bool
}

// New creates a server. builtin restricts registered scenes to their
// embedded copies.
func New(resolver *assets.Resolver, display config.DisplayConfig, logger *log.Logger, builtin bool) *Server {
	return &Server{
		resolver: resolver,
		display:  display,
		logger:   logger,
		builtin:  builtin,
	}
}

// Handler returns the routes of the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/scenes", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleScene)
		r.Get("/{name}/layout", s.handleLayout)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		if s.logger != nil {
			s.logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"took", time.Since(start),
				"id", middleware.GetReqID(r.Context()),
			)
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var out []sceneInfo
	seen := make(map[string]bool)

	for _, e := range registry.List() {
		out = append(out, sceneInfo{Name: e.Name, Title: e.Title, Source: "registry"})
		seen[e.Name] = true
	}

	docs, err := s.fileLoader().LoadAll()
	if err != nil && s.logger != nil {
		s.logger.Debug("no scene directory", "err", err)
	}
	for _, doc := range docs {
		if seen[doc.Name] {
			continue
		}
		out = append(out, sceneInfo{Name: doc.Name, Title: doc.Title, Source: "file"})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDocumentJSON(doc))
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	width, err := viewportParam(r, "w", s.display.Width())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}
	height, err := viewportParam(r, "h", s.display.Height())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	doc, err := s.load(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	layout, err := scene.Resolve(doc, width, height)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newLayoutJSON(doc, width, height, layout))
}

// load finds a scene in the registry first, then among the documents in
// <root>/assets/ui.
func (s *Server) load(name string) (*scene.Document, error) {
	if registry.Exists(name) {
		return registry.Load(s.resolver, name, s.builtin)
	}
	return s.fileLoader().LoadByName(name)
}

func (s *Server) fileLoader() *scene.Loader {
	return &scene.Loader{Root: s.resolver.Path("ui"), Logger: s.logger}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var fe *scene.FormatError
	var le *scene.LayoutError
	switch {
	case errors.As(err, &fe):
		writeJSON(w, http.StatusUnprocessableEntity, errorJSON{Error: err.Error(), Code: fe.Code, Path: fe.Path})
	case errors.As(err, &le):
		writeJSON(w, http.StatusUnprocessableEntity, errorJSON{Error: err.Error(), Node: le.NodeID})
	case errors.Is(err, scene.ErrNotFound), errors.Is(err, assets.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		writeJSON(w, http.StatusNotFound, errorJSON{Error: err.Error()})
	default:
		if s.logger != nil {
			s.logger.Error("request failed", "err", err)
		}
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: err.Error()})
	}
}

// viewportParam reads a positive dimension from the query string.
func viewportParam(r *http.Request, key string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, errors.New("viewport " + key + " must be a positive number")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
