package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pm-runner/pmrunner/pkg/queue"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "task not found maps to 404",
			err:        fmt.Errorf("%w: task-42", queue.ErrTaskNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "task not found",
		},
		{
			name:       "namespace mismatch hides as 404",
			err:        fmt.Errorf("%w: task-42", queue.ErrNamespaceMismatch),
			expectCode: http.StatusNotFound,
			expectMsg:  "task not found",
		},
		{
			name:       "task exists maps to 409",
			err:        fmt.Errorf("%w: task-42", queue.ErrTaskExists),
			expectCode: http.StatusConflict,
			expectMsg:  "task already exists",
		},
		{
			name:       "illegal transition maps to 409 with detail",
			err:        fmt.Errorf("%w: cannot cancel a COMPLETE task", queue.ErrIllegalTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "cannot cancel a COMPLETE task",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        fmt.Errorf("%w: task-42", queue.ErrConcurrentModification),
			expectCode: http.StatusConflict,
			expectMsg:  "concurrently",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapStoreError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
