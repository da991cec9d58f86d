package dev

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom/memdom"
	"github.com/eltkit/elt/internal/build"
	"github.com/eltkit/elt/internal/config"
	elterrors "github.com/eltkit/elt/internal/errors"
	"github.com/eltkit/elt/internal/metrics"
	"github.com/eltkit/elt/pkg/render"
)

// MetricsPath is where the dev server exposes Prometheus metrics.
const MetricsPath = "/metrics"

// Options configures the development server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server logs. Defaults to a discarding logger.
	Logger *slog.Logger

	// Build configures the bundle builder.
	Build build.Options

	// Registry collects the server metrics. Defaults to a new registry.
	Registry *prometheus.Registry

	// TracerProvider traces requests. Defaults to the global provider.
	TracerProvider trace.TracerProvider

	// OnBuildComplete is called after every compile.
	OnBuildComplete func(result build.BuildResult)

	// OnReload is called when browsers are told to reload.
	OnReload func(clients int)
}

// Server builds the bundle, serves it and reloads browsers on change.
type Server struct {
	config   *config.Config
	options  Options
	logger   *slog.Logger
	builder  *build.Builder
	watcher  *Watcher
	reload   *ReloadHub
	http     *metrics.HTTP
	observer *metrics.Observer
	changeCh chan Change

	mu         sync.Mutex
	running    bool
	httpServer *http.Server
	addr       net.Addr
}

// NewServer creates a development server.
func NewServer(options Options) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Registry == nil {
		options.Registry = prometheus.NewRegistry()
	}

	ignore := append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...)
	if rel, err := filepath.Rel(cfg.Dir(), cfg.OutputPath()); err == nil && !strings.HasPrefix(rel, "..") {
		ignore = append(ignore, filepath.ToSlash(rel))
	}

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		builder: build.New(cfg, options.Build),
		watcher: NewWatcher(WatcherConfig{
			Paths:  cfg.WatchPaths(),
			Ignore: ignore,
		}),
		http:     metrics.NewHTTP(metrics.WithRegistry(options.Registry)),
		observer: metrics.NewObserver(metrics.WithRegistry(options.Registry)),
		changeCh: make(chan Change, 64),
	}
	if cfg.Dev.HotReload {
		s.reload = NewReloadHub(logger)
	}
	return s
}

// Handler returns the HTTP handler of the dev server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(Tracing(WithTracerProvider(s.options.TracerProvider)))
	r.Use(s.http.Middleware)

	if s.reload != nil {
		r.Get(ReloadPath, s.reload.ServeHTTP)
	}
	r.Method(http.MethodGet, MetricsPath, s.http.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/", s.serveIndex)
		r.Get("/"+build.IndexFile, s.serveIndex)
		r.Handle("/*", http.FileServer(http.Dir(s.config.OutputPath())))
	})
	return r
}

// serveIndex renders the host page. With hot reload on, the page also
// carries the reload client.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	b := elt.New(
		elt.WithDocument(memdom.NewDocument()),
		elt.WithObserver(s.observer),
		elt.WithLogger(s.logger),
	)
	page, err := build.IndexPage(b, s.config.Title())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.reload != nil {
		page.Scripts = append(page.Scripts, render.ScriptTag{Inline: ClientScript})
	}
	if err := render.NewStreamingRenderer(w, render.Config{Pretty: true}).RenderPage(page); err != nil {
		s.logger.Warn("index render failed", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Start builds the bundle, starts watching and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("building", "package", s.config.PackagePath())
	if res, err := s.builder.Build(ctx); err != nil {
		s.reportBuildError(err)
	} else {
		s.logger.Info("built", "duration", res.Duration.Round(time.Millisecond), "wasm_bytes", res.WasmSize)
	}

	s.watcher.OnChange(func(c Change) {
		select {
		case s.changeCh <- c:
		default:
		}
	})
	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	ln, err := net.Listen("tcp", s.config.DevAddress())
	if err != nil {
		s.Stop()
		return elterrors.New("E123").Wrap(err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.addr = ln.Addr()
	s.mu.Unlock()
	s.logger.Info("server running", "url", "http://"+ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return elterrors.New("E123").Wrap(err)
		}
		return nil
	}
}

// Addr returns the address the server listens on, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// processChanges serialises change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-s.changeCh:
			changes := []Change{c}
			for draining := true; draining; {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges rebuilds for Go changes, swaps stylesheets for CSS
// changes and reloads the page otherwise.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	var goChange, cssChange *Change
	for i := range changes {
		c := &changes[i]
		s.logger.Info("changed", "path", c.Path, "type", c.Type)
		switch c.Type {
		case ChangeGo:
			if goChange == nil {
				goChange = c
			}
		case ChangeCSS:
			if cssChange == nil {
				cssChange = c
			}
		}
	}

	switch {
	case goChange != nil:
		s.Rebuild(ctx)
	case cssChange != nil:
		if s.reload != nil {
			s.reload.NotifyCSS(cssChange.Path)
		}
	default:
		s.notifyReload()
	}
}

// Rebuild recompiles main.wasm and reloads browsers when it succeeds.
func (s *Server) Rebuild(ctx context.Context) build.BuildResult {
	s.logger.Info("rebuilding")
	res := s.builder.Compiler().Build(ctx)
	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(res)
	}
	if !res.Success {
		s.reportBuildError(res.Error)
		return res
	}

	s.logger.Info("built", "duration", res.Duration.Round(time.Millisecond))
	if s.reload != nil {
		s.reload.ClearError()
	}
	s.notifyReload()
	return res
}

func (s *Server) reportBuildError(err error) {
	msg := err.Error()
	var e *elterrors.Error
	if errors.As(err, &e) {
		s.logger.Error("build failed", "error", e.FormatCompact())
		if e.Detail != "" {
			msg = e.Detail
		}
	} else {
		s.logger.Error("build failed", "error", err)
	}
	if s.reload != nil {
		s.reload.NotifyError(msg)
	}
}

func (s *Server) notifyReload() {
	if s.reload == nil {
		s.logger.Info("hot reload disabled; refresh the browser")
		return
	}
	s.reload.NotifyReload()
	clients := s.reload.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
	s.logger.Info("reloaded", "browsers", clients)
}
