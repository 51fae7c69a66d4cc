// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QueueEventsColumns holds the columns for the "queue_events" table.
	QueueEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "namespace", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueueEventsTable holds the schema information for the "queue_events" table.
	QueueEventsTable = &schema.Table{
		Name:       "queue_events",
		Columns:    QueueEventsColumns,
		PrimaryKey: []*schema.Column{QueueEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queueevent_namespace_id",
				Unique:  false,
				Columns: []*schema.Column{QueueEventsColumns[1], QueueEventsColumns[0]},
			},
			{
				Name:    "queueevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{QueueEventsColumns[2]},
			},
			{
				Name:    "queueevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueEventsColumns[5]},
			},
		},
	}
	// QueueTasksColumns holds the columns for the "queue_tasks" table.
	QueueTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "namespace", Type: field.TypeString},
		{Name: "task_group_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "complete", "error", "cancelled", "awaiting_response"}, Default: "queued"},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"implementation", "read_info", "report", "light_edit", "config_ci_change"}, Default: "implementation"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "clarification", Type: field.TypeJSON, Nullable: true},
		{Name: "events", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
	}
	// QueueTasksTable holds the schema information for the "queue_tasks" table.
	QueueTasksTable = &schema.Table{
		Name:       "queue_tasks",
		Columns:    QueueTasksColumns,
		PrimaryKey: []*schema.Column{QueueTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuetask_namespace_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[1], QueueTasksColumns[4], QueueTasksColumns[7]},
			},
			{
				Name:    "queuetask_namespace_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[1], QueueTasksColumns[3], QueueTasksColumns[7]},
			},
			{
				Name:    "queuetask_namespace_task_group_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[1], QueueTasksColumns[2], QueueTasksColumns[7]},
			},
			{
				Name:    "queuetask_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[4], QueueTasksColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QueueEventsTable,
		QueueTasksTable,
	}
)

func init() {
	QueueEventsTable.Annotation = &entsql.Annotation{
		Table: "queue_events",
	}
	QueueTasksTable.Annotation = &entsql.Annotation{
		Table: "queue_tasks",
	}
}
