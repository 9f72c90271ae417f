// Package server exposes the painting engine as an HTTP tool service.
//
// The API is a flat tool catalog: GET /v1/tools lists every tool with its
// description, and POST /v1/tools/{name} invokes one with a JSON parameter
// object. Composite tools render a complete widget and save it; pen tools
// operate on registry canvases across calls, so a client can build up a
// drawing step by step before saving it.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pixelsmith/gamepainter/internal/config"
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
)

// Server holds the live engine state shared by all tool invocations: the
// canvas registry for the pen workflow and the resolved configuration.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	reg    *canvas.Registry
}

// New creates a server from the given configuration. A nil logger discards
// all log output.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		reg:    canvas.NewRegistry(cfg.MaxCanvases),
	}
}

// Router builds the chi handler for the tool API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/v1/tools", func(r chi.Router) {
		r.Get("/", s.handleListTools)
		r.Post("/{name}", s.handleCallTool)
	})
	return r
}

// Run serves the tool API on the configured address until ctx is cancelled,
// then drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("tool server listening", "addr", s.cfg.Addr)
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// toolResult is the success payload every tool returns: a human-readable
// summary plus whichever artifacts the tool produced.
type toolResult struct {
	Text     string `json:"text"`
	File     string `json:"file,omitempty"`
	CanvasID string `json:"canvas_id,omitempty"`
	Image    string `json:"image_base64,omitempty"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	type toolInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	infos := make([]toolInfo, 0, len(toolOrder))
	for _, name := range toolOrder {
		infos = append(infos, toolInfo{Name: name, Description: tools[name].description})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"tools": infos})
}

func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := tools[name]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeUnknownTool, "unknown tool %q", name))
		return
	}

	var params json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && err != io.EOF {
		s.writeError(w, errors.Wrap(errors.ErrCodeBadRequest, err, "malformed JSON body"))
		return
	}
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}

	result, err := tool.handle(s, params)
	if err != nil {
		s.logger.Warn("tool failed", "tool", name, "err", err)
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// writeError maps engine error codes onto HTTP statuses: validation
// failures are the client's fault, unknown resources are 404, and anything
// touching the filesystem or the encoder is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidDimension, errors.ErrCodeInvalidGeometry, errors.ErrCodeInvalidEnum,
		errors.ErrCodeInvalidColor, errors.ErrCodeInvalidPath, errors.ErrCodeBadRequest:
		status = http.StatusBadRequest
	case errors.ErrCodeUnknownCanvas, errors.ErrCodeUnknownTool:
		status = http.StatusNotFound
	}

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

// outputPath resolves where a tool writes its image: the validated filename
// joined onto the explicit directory or the configured default.
func (s *Server) outputPath(filename, outputDir string) (string, error) {
	if err := errors.ValidateFilename(filename); err != nil {
		return "", err
	}
	dir := outputDir
	if dir == "" {
		dir = s.cfg.OutputDir
	}
	return filepath.Join(dir, filename), nil
}

// saveAndPreview writes the canvas to its output path and packages the
// standard artifact pair (absolute file path, base64 PNG preview).
func (s *Server) saveAndPreview(c *canvas.Canvas, filename, outputDir string) (file, preview string, err error) {
	path, err := s.outputPath(filename, outputDir)
	if err != nil {
		return "", "", err
	}
	abs, err := c.Save(path)
	if err != nil {
		return "", "", err
	}
	b64, err := c.Base64PNG()
	if err != nil {
		return "", "", err
	}
	return abs, b64, nil
}
