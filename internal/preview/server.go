package preview

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/topus-dev/topus/internal/config"
	"github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/internal/metrics"
	"github.com/topus-dev/topus/pkg/dom"
	"github.com/topus-dev/topus/pkg/page"
	"github.com/topus-dev/topus/pkg/render"
)

// ReloadPath is the websocket endpoint of the reload client.
const ReloadPath = "/_topus/reload"

// Options configures the preview server.
type Options struct {
	// Config is the project configuration (default: config.New()).
	Config *config.Config

	// PagePath is the page file to serve. Required.
	PagePath string

	// Renderer renders the page (default: a renderer with Logger).
	Renderer *render.Renderer

	// Gatherer backs /metrics (default: prometheus.DefaultGatherer).
	Gatherer prometheus.Gatherer

	// Metrics, if set, counts reload broadcasts.
	Metrics *metrics.Metrics

	// Logger receives request and reload logs.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server is the preview server.
type Server struct {
	config     *config.Config
	pagePath   string
	renderer   *render.Renderer
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	hub        *ReloadHub
	watcher    *Watcher
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a preview server.
func NewServer(opts Options) (*Server, error) {
	if opts.PagePath == "" {
		return nil, errors.New("T140").
			WithDetail("preview needs a page file").
			WithSuggestion("Run 'topus serve page.yaml'")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	interval, err := cfg.PollDuration()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{Logger: logger})
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	hub := NewReloadHub(logger)
	if opts.Metrics != nil {
		m := opts.Metrics
		hub.OnReload = func(int) { m.ObserveReload() }
	}

	return &Server{
		config:   cfg,
		pagePath: opts.PagePath,
		renderer: renderer,
		gatherer: gatherer,
		logger:   logger,
		hub:      hub,
		watcher: NewWatcher(WatcherConfig{
			Paths:    []string{opts.PagePath},
			Interval: interval,
		}),
	}, nil
}

// Hub returns the server's reload hub.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	if s.config.ReloadEnabled() {
		r.Get(ReloadPath, s.hub.HandleWebSocket)
	}
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	return r
}

// Start listens on the configured preview address and serves until ctx is
// done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.PreviewAddress())
	if err != nil {
		return errors.New("T121").WithDetailf("listen on %s", s.config.PreviewAddress()).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		ln.Close()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	if s.config.ReloadEnabled() {
		s.watcher.OnChange(s.handleChange)
		go s.watcher.Start(ctx)
	}

	s.logger.Info("preview running", "url", "http://"+ln.Addr().String(), "page", s.pagePath)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	s.hub.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// handlePage renders the page file as it is now.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	body, err := s.renderPage(r.Context())
	if err != nil {
		s.logger.Warn("page render failed", "page", s.pagePath, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		body = errorPage(err)
	}
	if s.config.ReloadEnabled() {
		body = injectScript(body)
	}
	w.Write([]byte(body))
}

func (s *Server) renderPage(ctx context.Context) (string, error) {
	p, err := page.Load(s.pagePath)
	if err != nil {
		return "", err
	}
	return p.Render(ctx, s.renderer)
}

// handleChange reloads browsers when the page is valid and shows the error
// otherwise.
func (s *Server) handleChange(c Change) {
	if c.Removed {
		s.logger.Warn("page file removed", "page", c.Path)
		s.hub.NotifyError("page file " + c.Path + " was removed")
		return
	}
	if _, err := page.Load(s.pagePath); err != nil {
		s.logger.Warn("page file invalid", "page", c.Path, "error", err)
		s.hub.NotifyError(err.Error())
		return
	}
	s.logger.Info("page changed, reloading", "page", c.Path, "clients", s.hub.ClientCount())
	s.hub.NotifyReload()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if r.URL.Path == ReloadPath {
			return
		}
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

var errorPolicy = bluemonday.StrictPolicy()

// errorPage renders err as a minimal document. Text nodes are emitted
// verbatim, so the message goes through a strict policy first.
func errorPage(err error) string {
	doc := dom.Html(dom.Sep,
		dom.Head(dom.Sep, dom.Title(dom.Sep, dom.NewText("topus error"))),
		dom.Body(dom.Sep, dom.Pre(dom.Sep, dom.NewText(errorPolicy.Sanitize(err.Error())))),
	)
	return dom.Render(dom.Doctype()) + doc.String()
}

// injectScript places the reload client before the last </body>, or at the
// end when there is none.
func injectScript(body string) string {
	if i := strings.LastIndex(body, "</body>"); i >= 0 {
		return body[:i] + ClientScript + body[i:]
	}
	return body + ClientScript
}
