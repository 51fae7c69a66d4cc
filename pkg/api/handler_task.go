package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/queue"
)

// createTaskHandler handles POST /api/tasks.
// Enqueues a task and returns immediately; a poller claims and runs it.
func (s *Server) createTaskHandler(c *echo.Context) error {
	// 1. Bind HTTP request
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	// 2. Validate required fields
	if strings.TrimSpace(req.Prompt) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt field is required")
	}
	if maxBytes := s.cfg.Server.MaxPromptBytes; maxBytes > 0 && len(req.Prompt) > maxBytes {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("prompt exceeds maximum size of %d bytes", maxBytes))
	}

	// 3. Validate the optional task type override
	var taskType models.TaskType
	if req.TaskType != "" {
		taskType = models.TaskType(strings.ToUpper(req.TaskType))
		if !taskType.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("invalid task_type %q", req.TaskType))
		}
	}

	// 4. Enqueue
	task, err := s.store.Enqueue(c.Request().Context(), queue.EnqueueInput{
		SessionID:   req.SessionID,
		TaskGroupID: req.TaskGroupID,
		Prompt:      req.Prompt,
		TaskID:      req.TaskID,
		TaskType:    taskType,
	})
	if err != nil {
		return mapStoreError(err)
	}

	// 5. Return the assigned ID and initial status
	return c.JSON(http.StatusOK, &CreateTaskResponse{
		TaskID: task.ID,
		Status: string(queue.WireStatus(task.Status)),
	})
}

// getTaskHandler handles GET /api/tasks/:task_id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("task_id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}

	task, err := s.store.GetItem(c.Request().Context(), taskID)
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, taskResponse(task))
}

// listTasksHandler handles GET /api/tasks with optional status, task_group,
// session_id, limit, and offset query filters.
func (s *Server) listTasksHandler(c *echo.Context) error {
	var filters models.TaskFilters

	if v := c.QueryParam("status"); v != "" {
		status := models.TaskStatus(strings.ToUpper(v))
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid status %q", v))
		}
		filters.Status = status
	}
	filters.TaskGroupID = c.QueryParam("task_group")
	filters.SessionID = c.QueryParam("session_id")

	var err error
	if filters.Limit, err = intQueryParam(c, "limit"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if filters.Offset, err = intQueryParam(c, "offset"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tasks, err := s.store.List(c.Request().Context(), filters)
	if err != nil {
		return mapStoreError(err)
	}

	resp := &TaskListResponse{Tasks: make([]*TaskResponse, 0, len(tasks))}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, taskResponse(task))
	}
	resp.Count = len(resp.Tasks)
	return c.JSON(http.StatusOK, resp)
}

// cancelTaskHandler handles POST /api/tasks/:task_id/cancel.
// Terminal tasks refuse with 409; cancelling a RUNNING task marks it so the
// in-flight result is dropped at completion.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("task_id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}

	task, err := s.store.Cancel(c.Request().Context(), taskID)
	if err != nil {
		return mapStoreError(err)
	}

	// Abort the in-flight pipeline, if a poller is running this task.
	if s.pool != nil && s.pool.CancelTask(task.ID) {
		slog.Info("Cancelled in-flight task", "task_id", task.ID)
	}

	return c.JSON(http.StatusOK, &CancelTaskResponse{
		TaskID: task.ID,
		Status: string(queue.WireStatus(task.Status)),
	})
}

// replyTaskHandler handles POST /api/tasks/:task_id/reply.
// Answers a clarification on an AWAITING_RESPONSE task and requeues it.
func (s *Server) replyTaskHandler(c *echo.Context) error {
	taskID := c.Param("task_id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}

	var req ReplyTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if strings.TrimSpace(req.Response) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "response field is required")
	}

	task, err := s.store.Reply(c.Request().Context(), taskID, req.Response)
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, &ReplyTaskResponse{
		TaskID: task.ID,
		Status: string(queue.WireStatus(task.Status)),
	})
}

// listTaskGroupsHandler handles GET /api/task-groups.
func (s *Server) listTaskGroupsHandler(c *echo.Context) error {
	groups, err := s.store.GetAllTaskGroups(c.Request().Context())
	if err != nil {
		return mapStoreError(err)
	}
	if groups == nil {
		groups = []models.TaskGroupSummary{}
	}
	return c.JSON(http.StatusOK, &TaskGroupsResponse{TaskGroups: groups})
}

// intQueryParam parses an optional non-negative integer query parameter.
func intQueryParam(c *echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}
