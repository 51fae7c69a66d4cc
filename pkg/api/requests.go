package api

// CreateTaskRequest is the HTTP request body for POST /api/tasks.
type CreateTaskRequest struct {
	TaskGroupID string `json:"task_group_id"`
	Prompt      string `json:"prompt"`
	SessionID   string `json:"session_id,omitempty"`
	TaskType    string `json:"task_type,omitempty"`
	TaskID      string `json:"task_id,omitempty"`
}

// ReplyTaskRequest is the HTTP request body for POST /api/tasks/:task_id/reply.
type ReplyTaskRequest struct {
	Response string `json:"response"`
}
