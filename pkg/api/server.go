package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/queue"
)

// Server is the HTTP control plane for one orchestrator namespace. It
// exposes task submission, inspection, and lifecycle operations backed by
// the queue store, plus health and namespace discovery endpoints. All
// responses are JSON; errors use the {"error": "..."} envelope.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	store    *queue.Store
	pool     *queue.PollerPool

	echo    *echo.Echo
	httpSrv *http.Server
}

// NewServer wires middleware and routes. The poller pool may be nil when
// the server runs without claim workers (maintenance mode).
func NewServer(cfg *config.Config, dbClient *database.Client, store *queue.Store, pool *queue.PollerPool) *Server {
	e := echo.New()
	e.HTTPErrorHandler = errorEnvelopeHandler

	s := &Server{
		cfg:      cfg,
		dbClient: dbClient,
		store:    store,
		pool:     pool,
		echo:     e,
	}

	e.Use(requestLogger())
	e.Use(securityHeaders())

	// Task lifecycle
	e.POST("/api/tasks", s.createTaskHandler)
	e.GET("/api/tasks", s.listTasksHandler)
	e.GET("/api/tasks/:task_id", s.getTaskHandler)
	e.POST("/api/tasks/:task_id/cancel", s.cancelTaskHandler)
	e.POST("/api/tasks/:task_id/reply", s.replyTaskHandler)
	e.GET("/api/task-groups", s.listTaskGroupsHandler)

	// Introspection
	e.GET("/api/health", s.healthHandler)
	e.GET("/api/namespace", s.namespaceHandler)
	e.GET("/api/queue/health", s.queueHealthHandler)

	return s
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr and blocks until the listener fails or
// Shutdown is called. A clean shutdown returns http.ErrServerClosed.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves HTTP on an existing listener. Tests use this to
// bind a random port before the server goroutine starts.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown stops accepting new connections and waits for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// errorEnvelopeHandler renders every handler and router error as the
// {"error": "..."} envelope. *echo.HTTPError carries the intended status
// code; anything else is logged and reported as a 500.
func errorEnvelopeHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
		if he.Message != "" {
			message = he.Message
		}
	} else {
		slog.Error("Unhandled handler error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		if writeErr := c.NoContent(code); writeErr != nil {
			slog.Error("Failed to write error response", "error", writeErr)
		}
		return
	}
	if writeErr := c.JSON(code, &ErrorResponse{Error: message}); writeErr != nil {
		slog.Error("Failed to write error response", "error", writeErr)
	}
}
