package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// QueueTask holds the schema definition for the QueueTask entity.
// Statuses and task types are stored lowercase; the wire-format enums in
// pkg/models are mapped at the store boundary.
type QueueTask struct {
	ent.Schema
}

// Fields of the QueueTask.
func (QueueTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("namespace").
			Immutable().
			Comment("Isolation key; every query is scoped to one namespace"),
		field.String("task_group_id").
			Comment("Conversation thread the task belongs to"),
		field.String("session_id").
			Comment("Evidence/trace session the task runs under"),
		field.Enum("status").
			Values("queued", "running", "complete", "error", "cancelled", "awaiting_response").
			Default("queued"),
		field.Text("prompt").
			Comment("User-submitted natural-language task"),
		field.Enum("task_type").
			Values("implementation", "read_info", "report", "light_edit", "config_ci_change").
			Default("implementation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Monotonic per task; advanced by every status write and by event appends with later timestamps"),
		field.Text("output").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("clarification", &models.Clarification{}).
			Optional().
			Comment("Question+context while awaiting the user"),
		field.JSON("events", []models.TaskEvent{}).
			Optional().
			Comment("Ordered progress-event log"),
		field.Int("attempt").
			Default(0).
			Comment("Incremented on recovery requeue and clarification reply"),
	}
}

// Indexes of the QueueTask. The three composite indexes back the secondary
// read paths (by status, by session, by task group), all created_at-ordered.
func (QueueTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace", "status", "created_at"),
		index.Fields("namespace", "session_id", "created_at"),
		index.Fields("namespace", "task_group_id", "created_at"),

		// Stale-recovery sweep scans running tasks by last write time.
		index.Fields("status", "updated_at"),
	}
}

// Annotations for PostgreSQL-specific features.
func (QueueTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queue_tasks"},
	}
}
