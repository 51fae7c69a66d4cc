package api

import (
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/queue"
)

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateTaskResponse is returned by POST /api/tasks.
type CreateTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskResponse is the wire form of a queue task, returned by
// GET /api/tasks/:task_id and as the element type of list responses.
type TaskResponse struct {
	TaskID        string                `json:"task_id"`
	TaskGroupID   string                `json:"task_group_id"`
	SessionID     string                `json:"session_id"`
	TaskType      string                `json:"task_type"`
	Status        string                `json:"status"`
	Output        string                `json:"output,omitempty"`
	ErrorMessage  string                `json:"error_message,omitempty"`
	Clarification *models.Clarification `json:"clarification,omitempty"`
	Events        []models.TaskEvent    `json:"events,omitempty"`
	Attempt       int                   `json:"attempt"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// taskResponse converts a queue row to its wire form.
func taskResponse(task *ent.QueueTask) *TaskResponse {
	resp := &TaskResponse{
		TaskID:        task.ID,
		TaskGroupID:   task.TaskGroupID,
		SessionID:     task.SessionID,
		TaskType:      string(queue.WireTaskType(task.TaskType)),
		Status:        string(queue.WireStatus(task.Status)),
		Clarification: task.Clarification,
		Events:        task.Events,
		Attempt:       task.Attempt,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
	if task.Output != nil {
		resp.Output = *task.Output
	}
	if task.ErrorMessage != nil {
		resp.ErrorMessage = *task.ErrorMessage
	}
	return resp
}

// TaskListResponse is returned by GET /api/tasks.
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Count int             `json:"count"`
}

// TaskGroupsResponse is returned by GET /api/task-groups.
type TaskGroupsResponse struct {
	TaskGroups []models.TaskGroupSummary `json:"task_groups"`
}

// CancelTaskResponse is returned by POST /api/tasks/:task_id/cancel.
type CancelTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// ReplyTaskResponse is returned by POST /api/tasks/:task_id/reply.
type ReplyTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// HealthCheck is one component entry in HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status               string                 `json:"status"`
	Timestamp            string                 `json:"timestamp"`
	Version              string                 `json:"version"`
	Namespace            string                 `json:"namespace"`
	NamespaceAutoDerived bool                   `json:"namespace_auto_derived"`
	TableName            string                 `json:"table_name"`
	StateDir             string                 `json:"state_dir"`
	Checks               map[string]HealthCheck `json:"checks"`
}

// NamespaceResponse is returned by GET /api/namespace.
type NamespaceResponse struct {
	Namespace   string `json:"namespace"`
	AutoDerived bool   `json:"auto_derived"`
	TableName   string `json:"table_name"`
	StateDir    string `json:"state_dir"`
	Port        int    `json:"port"`
}

// QueueHealthResponse is returned by GET /api/queue/health.
type QueueHealthResponse struct {
	Status        string                 `json:"status"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	DatabaseError string                 `json:"database_error,omitempty"`
	Pool          *queue.PoolHealth      `json:"pool,omitempty"`
}
