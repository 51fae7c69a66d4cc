package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/pm-runner/pmrunner/pkg/queue"
)

// mapStoreError maps queue store errors to HTTP error responses.
func mapStoreError(err error) *echo.HTTPError {
	if errors.Is(err, queue.ErrTaskNotFound) || errors.Is(err, queue.ErrNamespaceMismatch) {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	if errors.Is(err, queue.ErrTaskExists) {
		return echo.NewHTTPError(http.StatusConflict, "task already exists")
	}
	if errors.Is(err, queue.ErrIllegalTransition) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, queue.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "task was modified concurrently, retry the request")
	}

	// Unexpected error
	slog.Error("Unexpected store error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
