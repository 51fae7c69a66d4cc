// Code generated by ent, DO NOT EDIT.

package queuetask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuetask type in the database.
	Label = "queue_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldNamespace holds the string denoting the namespace field in the database.
	FieldNamespace = "namespace"
	// FieldTaskGroupID holds the string denoting the task_group_id field in the database.
	FieldTaskGroupID = "task_group_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldClarification holds the string denoting the clarification field in the database.
	FieldClarification = "clarification"
	// FieldEvents holds the string denoting the events field in the database.
	FieldEvents = "events"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// Table holds the table name of the queuetask in the database.
	Table = "queue_tasks"
)

// Columns holds all SQL columns for queuetask fields.
var Columns = []string{
	FieldID,
	FieldNamespace,
	FieldTaskGroupID,
	FieldSessionID,
	FieldStatus,
	FieldPrompt,
	FieldTaskType,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOutput,
	FieldErrorMessage,
	FieldClarification,
	FieldEvents,
	FieldAttempt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued           Status = "queued"
	StatusRunning          Status = "running"
	StatusComplete         Status = "complete"
	StatusError            Status = "error"
	StatusCancelled        Status = "cancelled"
	StatusAwaitingResponse Status = "awaiting_response"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusComplete, StatusError, StatusCancelled, StatusAwaitingResponse:
		return nil
	default:
		return fmt.Errorf("queuetask: invalid enum value for status field: %q", s)
	}
}

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskTypeImplementation is the default value of the TaskType enum.
const DefaultTaskType = TaskTypeImplementation

// TaskType values.
const (
	TaskTypeImplementation TaskType = "implementation"
	TaskTypeReadInfo       TaskType = "read_info"
	TaskTypeReport         TaskType = "report"
	TaskTypeLightEdit      TaskType = "light_edit"
	TaskTypeConfigCiChange TaskType = "config_ci_change"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeImplementation, TaskTypeReadInfo, TaskTypeReport, TaskTypeLightEdit, TaskTypeConfigCiChange:
		return nil
	default:
		return fmt.Errorf("queuetask: invalid enum value for task_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the QueueTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNamespace orders the results by the namespace field.
func ByNamespace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespace, opts...).ToFunc()
}

// ByTaskGroupID orders the results by the task_group_id field.
func ByTaskGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskGroupID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}
