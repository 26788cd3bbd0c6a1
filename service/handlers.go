package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dkrizic/nbmem/api"
	"github.com/dkrizic/nbmem/meta"
	"github.com/dkrizic/nbmem/service/registry"
	"github.com/dkrizic/nbmem/telemetry/localmetrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "service/handlers"

// Server holds the HTTP server and the notebook registry it exposes.
type Server struct {
	address    string
	registry   registry.Registry
	httpServer *http.Server
}

func NewServer(address string, reg registry.Registry) (*Server, error) {
	if err := localmetrics.New(); err != nil {
		slog.Error("Failed to initialize local metrics", "error", err)
		return nil, err
	}
	return &Server{
		address:  address,
		registry: reg,
	}, nil
}

// RegisterHandlers registers all HTTP handlers on the provided mux.
func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/contents", otelhttp.NewHandler(http.HandlerFunc(s.handleContents), "handleContents").ServeHTTP)
	mux.HandleFunc("GET /api/contents/{ref...}", otelhttp.NewHandler(http.HandlerFunc(s.handleContents), "handleContents").ServeHTTP)
	mux.HandleFunc("PUT /api/contents/{ref...}", otelhttp.NewHandler(http.HandlerFunc(s.handleSave), "handleSave").ServeHTTP)
	mux.HandleFunc("PATCH /api/contents/{ref...}", otelhttp.NewHandler(http.HandlerFunc(s.handleRename), "handleRename").ServeHTTP)
	mux.HandleFunc("POST /api/contents", otelhttp.NewHandler(http.HandlerFunc(s.handleCreate), "handleCreate").ServeHTTP)
	mux.HandleFunc("POST /api/contents/{ref...}", otelhttp.NewHandler(http.HandlerFunc(s.handleCreate), "handleCreate").ServeHTTP)
	mux.HandleFunc("DELETE /api/contents/{ref...}", otelhttp.NewHandler(http.HandlerFunc(s.handleDelete), "handleDelete").ServeHTTP)

	// no tracing on liveness and meta endpoints
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /version", s.handleVersion)
}

// handleContents serves both directory listings and single notebooks,
// depending on whether the reference names a notebook.
func (s *Server) handleContents(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "handleContents")
	defer span.End()

	path, name, isNotebook := splitRef(r.PathValue("ref"))
	if !isNotebook {
		notebooks, err := s.registry.List(ctx, path)
		if err != nil {
			s.writeError(ctx, w, http.StatusInternalServerError, "failed to list notebooks")
			span.SetStatus(codes.Error, err.Error())
			return
		}
		models := make([]api.Model, 0, len(notebooks))
		for _, nb := range notebooks {
			models = append(models, modelFromNotebook(nb, false))
		}
		slog.InfoContext(ctx, "List completed", "path", path, "count", len(models))
		localmetrics.ListCounter().Add(ctx, 1)
		s.recordActive(ctx)
		writeJSON(w, http.StatusOK, api.Listing{Path: path, Content: models})
		return
	}

	withContent := r.URL.Query().Get("content") != "0"
	nb, err := s.registry.Get(ctx, path, name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			s.writeError(ctx, w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to get notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	slog.InfoContext(ctx, "Get completed", "path", path, "name", name)
	localmetrics.GetCounter().Add(ctx, 1)
	s.recordActive(ctx)
	writeJSON(w, http.StatusOK, modelFromNotebook(nb, withContent))
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "handleSave")
	defer span.End()

	path, name, isNotebook := splitRef(r.PathValue("ref"))
	if !isNotebook {
		s.writeError(ctx, w, http.StatusBadRequest, "target is not a notebook name")
		return
	}

	var req api.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	if len(req.Content) == 0 {
		s.writeError(ctx, w, http.StatusBadRequest, "no notebook data provided")
		return
	}

	newPath, newName := path, name
	if req.Path != nil {
		newPath = strings.Trim(*req.Path, "/")
	}
	if req.Name != nil {
		newName = *req.Name
	}
	if !strings.HasSuffix(newName, registry.Extension) {
		s.writeError(ctx, w, http.StatusBadRequest, "notebook name must end with "+registry.Extension)
		return
	}

	// saving under a new name moves the existing notebook first, so the
	// creation date survives
	if newPath != path || newName != name {
		err := s.registry.Rename(ctx, path, name, newPath, newName)
		if err != nil && !errors.Is(err, registry.ErrNotFound) {
			s.writeError(ctx, w, http.StatusInternalServerError, "failed to rename notebook")
			span.SetStatus(codes.Error, err.Error())
			return
		}
	}

	err := s.registry.Save(ctx, registry.Notebook{
		Path:    newPath,
		Name:    newName,
		Content: req.Content,
	})
	if err != nil {
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to save notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	slog.InfoContext(ctx, "Save completed", "path", newPath, "name", newName)
	localmetrics.SaveCounter().Add(ctx, 1)
	s.recordActive(ctx)

	nb, err := s.registry.Get(ctx, newPath, newName)
	if err != nil {
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to get notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, modelFromNotebook(nb, false))
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "handleRename")
	defer span.End()

	path, name, isNotebook := splitRef(r.PathValue("ref"))
	if !isNotebook {
		s.writeError(ctx, w, http.StatusBadRequest, "target is not a notebook name")
		return
	}

	var req api.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	if req.Name == nil && req.Path == nil {
		s.writeError(ctx, w, http.StatusBadRequest, "no rename target provided")
		return
	}

	newPath, newName := path, name
	if req.Path != nil {
		newPath = strings.Trim(*req.Path, "/")
	}
	if req.Name != nil {
		newName = *req.Name
	}
	if !strings.HasSuffix(newName, registry.Extension) {
		s.writeError(ctx, w, http.StatusBadRequest, "notebook name must end with "+registry.Extension)
		return
	}

	if err := s.registry.Rename(ctx, path, name, newPath, newName); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			s.writeError(ctx, w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to rename notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	slog.InfoContext(ctx, "Rename completed", "path", path, "name", name, "newPath", newPath, "newName", newName)
	localmetrics.RenameCounter().Add(ctx, 1)
	s.recordActive(ctx)

	nb, err := s.registry.Get(ctx, newPath, newName)
	if err != nil {
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to get notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, modelFromNotebook(nb, false))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "handleCreate")
	defer span.End()

	path := strings.Trim(r.PathValue("ref"), "/")
	if strings.HasSuffix(path, registry.Extension) {
		s.writeError(ctx, w, http.StatusBadRequest, "target is not a directory")
		return
	}

	var req api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	basename := req.Basename
	if basename == "" {
		basename = "Untitled"
	}

	nb, err := s.registry.Create(ctx, path, basename)
	if err != nil {
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to create notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	slog.InfoContext(ctx, "Create completed", "path", nb.Path, "name", nb.Name)
	localmetrics.CreateCounter().Add(ctx, 1)
	s.recordActive(ctx)
	writeJSON(w, http.StatusCreated, modelFromNotebook(nb, false))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "handleDelete")
	defer span.End()

	path, name, isNotebook := splitRef(r.PathValue("ref"))
	if !isNotebook {
		s.writeError(ctx, w, http.StatusBadRequest, "target is not a notebook name")
		return
	}

	if err := s.registry.Delete(ctx, path, name); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			s.writeError(ctx, w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(ctx, w, http.StatusInternalServerError, "failed to delete notebook")
		span.SetStatus(codes.Error, err.Error())
		return
	}
	slog.InfoContext(ctx, "Delete completed", "path", path, "name", name)
	localmetrics.DeleteCounter().Add(ctx, 1)
	s.recordActive(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.VersionResponse{
		Service: meta.Service,
		Version: meta.Version,
	})
}

// recordActive updates the active notebooks gauge.
func (s *Server) recordActive(ctx context.Context) {
	count, err := s.registry.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to count notebooks", "error", err)
		return
	}
	localmetrics.ActiveGauge().Record(ctx, int64(count))
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	slog.WarnContext(ctx, "Request failed", "status", status, "message", message)
	writeJSON(w, status, api.Error{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// splitRef splits a contents reference into directory path and notebook
// name. A reference whose last segment does not carry the notebook
// extension is a directory.
func splitRef(ref string) (path, name string, isNotebook bool) {
	ref = strings.Trim(ref, "/")
	if !strings.HasSuffix(ref, registry.Extension) {
		return ref, "", false
	}
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[:idx], ref[idx+1:], true
	}
	return "", ref, true
}

func modelFromNotebook(nb registry.Notebook, withContent bool) api.Model {
	m := api.Model{
		Name:         nb.Name,
		Path:         nb.Path,
		Created:      nb.Created,
		LastModified: nb.LastModified,
	}
	if withContent {
		m.Content = nb.Content
	}
	return m
}
