// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// QueueTask is the model entity for the QueueTask schema.
type QueueTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Isolation key; every query is scoped to one namespace
	Namespace string `json:"namespace,omitempty"`
	// Conversation thread the task belongs to
	TaskGroupID string `json:"task_group_id,omitempty"`
	// Evidence/trace session the task runs under
	SessionID string `json:"session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status queuetask.Status `json:"status,omitempty"`
	// User-submitted natural-language task
	Prompt string `json:"prompt,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType queuetask.TaskType `json:"task_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Monotonic per task; advanced by every status write and by event appends with later timestamps
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Output holds the value of the "output" field.
	Output *string `json:"output,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Question+context while awaiting the user
	Clarification *models.Clarification `json:"clarification,omitempty"`
	// Ordered progress-event log
	Events []models.TaskEvent `json:"events,omitempty"`
	// Incremented on recovery requeue and clarification reply
	Attempt      int `json:"attempt,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuetask.FieldClarification, queuetask.FieldEvents:
			values[i] = new([]byte)
		case queuetask.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case queuetask.FieldID, queuetask.FieldNamespace, queuetask.FieldTaskGroupID, queuetask.FieldSessionID, queuetask.FieldStatus, queuetask.FieldPrompt, queuetask.FieldTaskType, queuetask.FieldOutput, queuetask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case queuetask.FieldCreatedAt, queuetask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueTask fields.
func (_m *QueueTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuetask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuetask.FieldNamespace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace", values[i])
			} else if value.Valid {
				_m.Namespace = value.String
			}
		case queuetask.FieldTaskGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_group_id", values[i])
			} else if value.Valid {
				_m.TaskGroupID = value.String
			}
		case queuetask.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case queuetask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = queuetask.Status(value.String)
			}
		case queuetask.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case queuetask.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = queuetask.TaskType(value.String)
			}
		case queuetask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case queuetask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case queuetask.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = new(string)
				*_m.Output = value.String
			}
		case queuetask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case queuetask.FieldClarification:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field clarification", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Clarification); err != nil {
					return fmt.Errorf("unmarshal field clarification: %w", err)
				}
			}
		case queuetask.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		case queuetask.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueTask.
// This includes values selected through modifiers, order, etc.
func (_m *QueueTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueTask.
// Note that you need to call QueueTask.Unwrap() before calling this method if this QueueTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueTask) Update() *QueueTaskUpdateOne {
	return NewQueueTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueTask) Unwrap() *QueueTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueTask) String() string {
	var builder strings.Builder
	builder.WriteString("QueueTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("namespace=")
	builder.WriteString(_m.Namespace)
	builder.WriteString(", ")
	builder.WriteString("task_group_id=")
	builder.WriteString(_m.TaskGroupID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Output; v != nil {
		builder.WriteString("output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("clarification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clarification))
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteByte(')')
	return builder.String()
}

// QueueTasks is a parsable slice of QueueTask.
type QueueTasks []*QueueTask
