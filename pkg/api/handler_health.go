package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/pm-runner/pmrunner/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the orchestrator's own components (database, poller pool) are
// checked; the executor service is excluded so an executor outage does not
// make supervisors restart a healthy control plane.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := s.dbClient.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health(reqCtx)
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := poolHealth.DegradedReason
			if msg == "" {
				msg = poolHealth.DBError
			}
			checks["poller_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["poller_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:               status,
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
		Version:              version.GitCommit,
		Namespace:            s.cfg.Namespace.Name,
		NamespaceAutoDerived: s.cfg.Namespace.AutoDerived,
		TableName:            s.cfg.TableName(),
		StateDir:             s.cfg.StateDir,
		Checks:               checks,
	})
}

// namespaceHandler handles GET /api/namespace.
// Lets CLI clients discover which namespace, table, and state directory a
// locally running server is bound to before submitting anything.
func (s *Server) namespaceHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &NamespaceResponse{
		Namespace:   s.cfg.Namespace.Name,
		AutoDerived: s.cfg.Namespace.AutoDerived,
		TableName:   s.cfg.TableName(),
		StateDir:    s.cfg.StateDir,
		Port:        s.cfg.Server.Port,
	})
}

// queueHealthHandler handles GET /api/queue/health.
// Returns the full poller pool and connection pool detail, 503 when the
// queue cannot make progress.
func (s *Server) queueHealthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &QueueHealthResponse{Status: healthStatusHealthy}

	dbHealth, err := s.dbClient.Health(reqCtx)
	if err != nil {
		resp.Status = healthStatusUnhealthy
		resp.DatabaseError = err.Error()
	} else {
		resp.Database = dbHealth
	}

	if s.pool != nil {
		resp.Pool = s.pool.Health(reqCtx)
		if resp.Pool != nil && !resp.Pool.IsHealthy {
			resp.Status = healthStatusUnhealthy
		}
	}

	httpStatus := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, resp)
}
