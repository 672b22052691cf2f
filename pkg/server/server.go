package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/render"
)

// DocumentSource produces the document to preview. It is called once per
// request; the returned tree must not be mutated concurrently with the
// call, since the dom package requires exclusive access per mutation.
type DocumentSource func() *dom.Document

// Server serves one document for preview, with metrics and live reload.
type Server struct {
	config   *Config
	logger   *slog.Logger
	source   DocumentSource
	renderer *render.Renderer
	reload   *ReloadServer
	metrics  *metrics
	router   chi.Router

	httpServer *http.Server
}

// New creates a preview server for the given document source.
func New(config *Config, source DocumentSource) *Server {
	config = config.withDefaults()

	m := newMetrics(config.Registry)
	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "preview"),
		source:   source,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		reload:   NewReloadServer(m),
		metrics:  m,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(tracingMiddleware)
	r.Get("/", s.handleDocument)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{}))
	r.Get("/__reload", s.reload.HandleWebSocket)
	r.Get("/__reload.js", s.handleReloadScript)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload broadcasts a full-page reload to all connected preview clients.
// Call it after mutating the source document.
func (s *Server) Reload() {
	s.reload.NotifyReload()
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops the server, closing reload connections first.
func (s *Server) Shutdown() error {
	s.reload.Close()
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	doc := s.source()
	if doc == nil {
		s.metrics.rendersTotal.WithLabelValues("unavailable").Inc()
		http.Error(w, "no document available", http.StatusServiceUnavailable)
		return
	}

	// Render to a buffer first so a failure never sends half a page.
	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(&buf, doc); err != nil {
		s.metrics.rendersTotal.WithLabelValues("error").Inc()
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("writing response", "error", err)
	}

	s.metrics.rendersTotal.WithLabelValues("ok").Inc()
	s.metrics.renderBytes.Add(float64(buf.Len()))
	s.metrics.renderDuration.Observe(time.Since(start).Seconds())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReloadScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write([]byte(reloadClientScript))
}
